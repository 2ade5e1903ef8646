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

// Package kart provides a typed view onto the host-owned kart array. The
// karts themselves are allocated, moved and destroyed by the game; this
// package only knows how to find the fields the extender cares about, given
// a Layout describing where they live.
//
// The extended terrain flag byte is the exception: it is not part of the
// game's kart structure. The byte lives in repurposed padding memory, one
// byte per kart slot, and is entirely owned by the bounce controller.
package kart

import (
	"strings"

	"github.com/jetsetilly/gopherkart/hostmem"
	"github.com/pkg/errors"
)

// MaxKarts is the size of the host's kart array. slots at and beyond the
// number of active karts are present in memory but inert
const MaxKarts = 8

// Flag is the per-kart extended terrain flag byte
type Flag uint8

// Values for the extended terrain flag byte. both bits are owned by the
// bounce controller
const (
	FlagBounce  = Flag(0x01) // a bounce episode is active
	FlagLiftoff = Flag(0x02) // the liftoff impulse has been applied but the kart has not yet left the ground
)

func (f Flag) String() string {
	s := strings.Builder{}
	if f&FlagBounce == FlagBounce {
		s.WriteString("BOUNCE ")
	}
	if f&FlagLiftoff == FlagLiftoff {
		s.WriteString("LIFTOFF ")
	}
	if s.Len() == 0 {
		return "none"
	}
	return strings.TrimSpace(s.String())
}

// Boost is the kart's boost flag word
type Boost uint16

// Values for the boost flag word.
const (
	BoostDash      = Boost(0x0001) // a generic item dash is active
	BoostMiniTurbo = Boost(0x0002) // a mini-turbo is active
	BoostSecondary = Boost(0x0004) // the follow-on boost state
	BoostGoPending = Boost(0x0008) // transition to the follow-on boost when the dash expires
	DriftLeft      = Boost(0x0010)
	DriftRight     = Boost(0x0020)
)

func (b Boost) String() string {
	s := strings.Builder{}
	if b&BoostDash == BoostDash {
		s.WriteString("DASH ")
	}
	if b&BoostMiniTurbo == BoostMiniTurbo {
		s.WriteString("MINITURBO ")
	}
	if b&BoostSecondary == BoostSecondary {
		s.WriteString("SECONDARY ")
	}
	if b&BoostGoPending == BoostGoPending {
		s.WriteString("GOPENDING ")
	}
	if b&DriftLeft == DriftLeft {
		s.WriteString("DRIFTLEFT ")
	}
	if b&DriftRight == DriftRight {
		s.WriteString("DRIFTRIGHT ")
	}
	if s.Len() == 0 {
		return "none"
	}
	return strings.TrimSpace(s.String())
}

// GoBoostFrames is the duration loaded into the secondary boost timer when a
// dash expires with the go flag raised
const GoBoostFrames = 45

// Layout locates the kart fields within the host's kart structure. Base is
// the address of kart slot zero and Stride the size of one kart structure;
// the remaining fields are offsets from the start of a slot.
//
// The extender never depends on fields other than those named here, and
// makes no assumption about what lies between them.
type Layout struct {
	Base   uint32
	Stride uint32

	Position      uint32 // 3 x float32
	Movement      uint32 // 3 x float32
	Velocity      uint32 // float32
	MovementScale uint32 // float32

	GroundedWheels uint32 // uint8: number of wheels in ground contact
	TerrainCode    uint32 // uint8: material of the ground triangle

	BoostFlags          uint32 // uint16: Boost values
	MiniTurboTimer      uint32 // uint16: frames remaining
	SecondaryBoostTimer uint32 // uint16: frames remaining
	DashTimer           uint32 // uint16: frames remaining

	StickX uint32 // float32: -1.0 to 1.0, positive right
	StickY uint32 // float32: -1.0 to 1.0, positive up
}

// Array provides access to every kart slot in the host's kart array.
type Array struct {
	mem hostmem.Memory
	lay Layout

	// address of the extended terrain flag byte for slot zero. one byte per
	// slot, consecutively
	flags uint32
}

// NewArray is the preferred method of initialisation for the Array type.
// flags is the address of the extended terrain flag byte for slot zero.
func NewArray(mem hostmem.Memory, lay Layout, flags uint32) *Array {
	return &Array{
		mem:   mem,
		lay:   lay,
		flags: flags,
	}
}

// View returns a View of the numbered kart slot. an error is returned if the
// slot is outside the host's kart array
func (a *Array) View(slot int) (*View, error) {
	if slot < 0 || slot >= MaxKarts {
		return nil, errors.Errorf("kart: slot out of range: %d", slot)
	}
	return &View{
		mem:   a.mem,
		lay:   a.lay,
		base:  a.lay.Base + uint32(slot)*a.lay.Stride,
		flags: a.flags + uint32(slot),
		slot:  slot,
	}, nil
}

// View is a window onto a single kart slot. it holds no kart state of its
// own: every accessor goes to host memory
type View struct {
	mem   hostmem.Memory
	lay   Layout
	base  uint32
	flags uint32
	slot  int
}

// Slot returns the kart slot number the view was created for.
func (v *View) Slot() int {
	return v.slot
}

func (v *View) readVector(offset uint32) (Vector, error) {
	var vec Vector
	var err error

	vec.X, err = v.mem.ReadF32(v.base + offset)
	if err != nil {
		return Vector{}, err
	}
	vec.Y, err = v.mem.ReadF32(v.base + offset + 4)
	if err != nil {
		return Vector{}, err
	}
	vec.Z, err = v.mem.ReadF32(v.base + offset + 8)
	if err != nil {
		return Vector{}, err
	}

	return vec, nil
}

func (v *View) writeVector(offset uint32, vec Vector) error {
	if err := v.mem.WriteF32(v.base+offset, vec.X); err != nil {
		return err
	}
	if err := v.mem.WriteF32(v.base+offset+4, vec.Y); err != nil {
		return err
	}
	return v.mem.WriteF32(v.base+offset+8, vec.Z)
}

// Position returns the kart's world position.
func (v *View) Position() (Vector, error) {
	return v.readVector(v.lay.Position)
}

// SetPosition writes the kart's world position.
func (v *View) SetPosition(vec Vector) error {
	return v.writeVector(v.lay.Position, vec)
}

// Movement returns the kart's movement vector.
func (v *View) Movement() (Vector, error) {
	return v.readVector(v.lay.Movement)
}

// SetMovement writes the kart's movement vector.
func (v *View) SetMovement(vec Vector) error {
	return v.writeVector(v.lay.Movement, vec)
}

// Velocity returns the kart's internal velocity field.
func (v *View) Velocity() (float32, error) {
	return v.mem.ReadF32(v.base + v.lay.Velocity)
}

// SetVelocity writes the kart's internal velocity field.
func (v *View) SetVelocity(value float32) error {
	return v.mem.WriteF32(v.base+v.lay.Velocity, value)
}

// MovementScale returns the kart's movement scale.
func (v *View) MovementScale() (float32, error) {
	return v.mem.ReadF32(v.base + v.lay.MovementScale)
}

// SetMovementScale writes the kart's movement scale.
func (v *View) SetMovementScale(value float32) error {
	return v.mem.WriteF32(v.base+v.lay.MovementScale, value)
}

// GroundedWheels returns the number of wheels in ground contact.
func (v *View) GroundedWheels() (uint8, error) {
	return v.mem.Read8(v.base + v.lay.GroundedWheels)
}

// SetGroundedWheels writes the number of wheels in ground contact.
func (v *View) SetGroundedWheels(value uint8) error {
	return v.mem.Write8(v.base+v.lay.GroundedWheels, value)
}

// Grounded returns true if at least one wheel is in ground contact.
func (v *View) Grounded() (bool, error) {
	w, err := v.GroundedWheels()
	if err != nil {
		return false, err
	}
	return w > 0, nil
}

// TerrainCode returns the material code of the ground triangle under the
// kart
func (v *View) TerrainCode() (uint8, error) {
	return v.mem.Read8(v.base + v.lay.TerrainCode)
}

// SetTerrainCode writes the material code of the ground triangle under the
// kart
func (v *View) SetTerrainCode(value uint8) error {
	return v.mem.Write8(v.base+v.lay.TerrainCode, value)
}

// BoostFlags returns the kart's boost flag word.
func (v *View) BoostFlags() (Boost, error) {
	b, err := v.mem.Read16(v.base + v.lay.BoostFlags)
	return Boost(b), err
}

// SetBoostFlags writes the kart's boost flag word.
func (v *View) SetBoostFlags(value Boost) error {
	return v.mem.Write16(v.base+v.lay.BoostFlags, uint16(value))
}

// MiniTurboTimer returns the mini-turbo timer.
func (v *View) MiniTurboTimer() (uint16, error) {
	return v.mem.Read16(v.base + v.lay.MiniTurboTimer)
}

// SetMiniTurboTimer writes the mini-turbo timer.
func (v *View) SetMiniTurboTimer(value uint16) error {
	return v.mem.Write16(v.base+v.lay.MiniTurboTimer, value)
}

// SecondaryBoostTimer returns the secondary boost timer.
func (v *View) SecondaryBoostTimer() (uint16, error) {
	return v.mem.Read16(v.base + v.lay.SecondaryBoostTimer)
}

// SetSecondaryBoostTimer writes the secondary boost timer.
func (v *View) SetSecondaryBoostTimer(value uint16) error {
	return v.mem.Write16(v.base+v.lay.SecondaryBoostTimer, value)
}

// DashTimer returns the generic dash timer.
func (v *View) DashTimer() (uint16, error) {
	return v.mem.Read16(v.base + v.lay.DashTimer)
}

// SetDashTimer writes the generic dash timer.
func (v *View) SetDashTimer(value uint16) error {
	return v.mem.Write16(v.base+v.lay.DashTimer, value)
}

// StickX returns the control stick deflection on the X axis. positive is
// right
func (v *View) StickX() (float32, error) {
	return v.mem.ReadF32(v.base + v.lay.StickX)
}

// SetStickX writes the control stick deflection on the X axis.
func (v *View) SetStickX(value float32) error {
	return v.mem.WriteF32(v.base+v.lay.StickX, value)
}

// StickY returns the control stick deflection on the Y axis. positive is
// up
func (v *View) StickY() (float32, error) {
	return v.mem.ReadF32(v.base + v.lay.StickY)
}

// SetStickY writes the control stick deflection on the Y axis.
func (v *View) SetStickY(value float32) error {
	return v.mem.WriteF32(v.base+v.lay.StickY, value)
}

// Flags returns the kart's extended terrain flag byte.
func (v *View) Flags() (Flag, error) {
	f, err := v.mem.Read8(v.flags)
	return Flag(f), err
}

// SetFlags writes the kart's extended terrain flag byte.
func (v *View) SetFlags(value Flag) error {
	return v.mem.Write8(v.flags, uint8(value))
}
