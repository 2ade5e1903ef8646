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

// Package itembox implements type-specific item boxes. A course author can
// mark an item box with a fixed item kind; a player rolling that box always
// receives the authored item instead of a shuffled one.
//
// The game decides a roll's outcome in two stages: the box asks whether the
// player has a free rolling slot, and the shuffle manager later picks the
// item. The two stages do not share the box object, so the controller
// records the authored kind per player at the first stage and substitutes
// it at the second. The recorded rolls live in host memory, one byte per
// player, with 0xff meaning no roll is recorded.
package itembox

import (
	"github.com/jetsetilly/gopherkart/extender/kart"
	"github.com/jetsetilly/gopherkart/hostmem"
	"github.com/jetsetilly/gopherkart/hostmem/addresses"
	"github.com/pkg/errors"
)

// NoRoll is the recorded-roll byte value meaning no authored item is
// pending for the player. the roll bytes are seeded to this value at game
// init
const NoRoll = uint8(0xff)

// Box describes the item box a player is rolling. Typed boxes carry an
// authored item kind; for untyped boxes ItemKind is ignored
type Box struct {
	Typed    bool
	ItemKind uint8
}

// Shuffler is the surface of the game's item machinery used by the
// controller.
type Shuffler interface {
	// IsAvailableRollingSlot is the game's own check that the player has a
	// free rolling slot
	IsAvailableRollingSlot(player int, slot int) (bool, error)

	// CalcSlot is the game's own item shuffle
	CalcSlot(player int) (uint8, error)
}

// Boxes is the type-specific item box controller. Create with NewBoxes()
type Boxes struct {
	cat     addresses.Catalog
	mem     hostmem.Memory
	shuffle Shuffler
}

// NewBoxes is the preferred method of initialisation for the Boxes type.
func NewBoxes(cat addresses.Catalog, mem hostmem.Memory, shuffle Shuffler) (*Boxes, error) {
	if shuffle == nil {
		return nil, errors.New("itembox: no shuffle surface")
	}
	return &Boxes{
		cat:     cat,
		mem:     mem,
		shuffle: shuffle,
	}, nil
}

func (b *Boxes) rollAddress(player int) (uint32, error) {
	if player < 0 || player >= kart.MaxKarts {
		return 0, errors.Errorf("itembox: player out of range: %d", player)
	}
	return b.cat.PlayerItemRolls + uint32(player), nil
}

// Roll returns the recorded roll for a player. NoRoll means no authored
// item is pending
func (b *Boxes) Roll(player int) (uint8, error) {
	addr, err := b.rollAddress(player)
	if err != nil {
		return 0, err
	}
	return b.mem.Read8(addr)
}

// ClearRolls resets every player's recorded roll. called at game init and
// course load
func (b *Boxes) ClearRolls() error {
	for player := 0; player < kart.MaxKarts; player++ {
		addr, err := b.rollAddress(player)
		if err != nil {
			return err
		}
		if err := b.mem.Write8(addr, NoRoll); err != nil {
			return err
		}
	}
	return nil
}

// AvailableRollingSlot wraps the game's rolling-slot check. a typed box
// records its authored kind for the player before deferring; the roll is
// only consumed when CalcSlot later picks the item
func (b *Boxes) AvailableRollingSlot(player int, slot int, box Box) (bool, error) {
	if box.Typed {
		addr, err := b.rollAddress(player)
		if err != nil {
			return false, err
		}
		if err := b.mem.Write8(addr, box.ItemKind); err != nil {
			return false, err
		}
	}

	return b.shuffle.IsAvailableRollingSlot(player, slot)
}

// CalcSlot wraps the game's item shuffle. a recorded roll forces the
// authored kind and is cleared; otherwise the game's own shuffle decides
func (b *Boxes) CalcSlot(player int) (uint8, error) {
	roll, err := b.Roll(player)
	if err != nil {
		return 0, err
	}

	if roll != NoRoll {
		addr, err := b.rollAddress(player)
		if err != nil {
			return 0, err
		}
		if err := b.mem.Write8(addr, NoRoll); err != nil {
			return 0, err
		}
		return roll, nil
	}

	return b.shuffle.CalcSlot(player)
}
