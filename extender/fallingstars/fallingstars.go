// This file is part of GopherKart.
//
// GopherKart is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherKart is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherKart.  If not, see <https://www.gnu.org/licenses/>.

// Package fallingstars makes the falling star objects customizable. The
// game's meteor objects always drop a star item on a fixed random chance;
// a course author can instead configure each object with an item kind, a
// drop rate and whether the object trails particles. The custom fields
// live in padding at the end of the object's authored data.
//
// Items dropped this way have no kart owner. The game's item watchman
// assumes an owner when handling item collisions, so the watchman call is
// suppressed for synthetic items.
package fallingstars

import (
	"github.com/jetsetilly/gopherkart/hostmem"
	"github.com/pkg/errors"
)

// Offsets into the falling star object's authored data for the custom
// fields. the fields occupy bytes the game never reads
const (
	OffDropRate  = uint32(0x3a) // uint8: percent chance per attempt
	OffItemKind  = uint32(0x3b) // uint8: item kind to drop
	OffParticles = uint32(0x3c) // uint8: zero disables the particle trail
)

// NoOwner is the kart owner index carried by items that were not dropped
// by a kart.
const NoOwner = -1

// Object is a view onto one falling star object's authored data.
type Object struct {
	mem  hostmem.Memory
	base uint32
}

// NewObject creates a view onto the falling star object at the given base
// address.
func NewObject(mem hostmem.Memory, base uint32) Object {
	return Object{mem: mem, base: base}
}

// DropRate returns the authored drop rate as a percentage.
func (o Object) DropRate() (uint8, error) {
	return o.mem.Read8(o.base + OffDropRate)
}

// ItemKind returns the authored item kind.
func (o Object) ItemKind() (uint8, error) {
	return o.mem.Read8(o.base + OffItemKind)
}

// Particles returns true if the object trails particles.
func (o Object) Particles() (bool, error) {
	v, err := o.mem.Read8(o.base + OffParticles)
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

// Rand is the surface of the game's geometry random number source used by
// the controller.
type Rand interface {
	// GeoRnd returns a uniformly distributed value in [0, n)
	GeoRnd(n int) int
}

// Controller is the falling star controller. Create with NewController()
type Controller struct {
	rnd Rand
}

// NewController is the preferred method of initialisation for the
// Controller type.
func NewController(rnd Rand) (*Controller, error) {
	if rnd == nil {
		return nil, errors.New("fallingstars: no random source")
	}
	return &Controller{rnd: rnd}, nil
}

// ShouldDropItem replaces the game's fixed random roll with a check
// against the object's authored drop rate.
func (c *Controller) ShouldDropItem(obj Object) (bool, error) {
	rate, err := obj.DropRate()
	if err != nil {
		return false, err
	}
	if rate == 0 {
		return false, nil
	}
	if rate >= 100 {
		return true, nil
	}
	return c.rnd.GeoRnd(100) < int(rate), nil
}

// OccurItemKind returns the item kind the object drops, substituted for
// the star the game would have spawned.
func (c *Controller) OccurItemKind(obj Object) (uint8, error) {
	return obj.ItemKind()
}

// WantParticles gates the effect manager calls that create the object's
// particle trail.
func (c *Controller) WantParticles(obj Object) (bool, error) {
	return obj.Particles()
}

// WatchItem gates the game's item watchman. the watchman dereferences the
// owning kart, so items without a kart owner must never reach it
func (c *Controller) WatchItem(owner int) bool {
	return owner != NoOwner
}
