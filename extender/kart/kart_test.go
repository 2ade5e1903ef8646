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

package kart_test

import (
	"testing"

	"github.com/jetsetilly/gopherkart/extender/kart"
	"github.com/jetsetilly/gopherkart/hostmem"
	"github.com/jetsetilly/gopherkart/test"
)

func testLayout() kart.Layout {
	return kart.Layout{
		Base:   0x80400000,
		Stride: 0x100,

		Position:      0x00,
		Movement:      0x0c,
		Velocity:      0x18,
		MovementScale: 0x1c,

		GroundedWheels: 0x20,
		TerrainCode:    0x21,

		BoostFlags:          0x22,
		MiniTurboTimer:      0x24,
		SecondaryBoostTimer: 0x26,
		DashTimer:           0x28,

		StickX: 0x2c,
		StickY: 0x30,
	}
}

func TestViewBounds(t *testing.T) {
	ram := hostmem.NewRAM(0x80400000, 0x1000)
	karts := kart.NewArray(ram, testLayout(), 0x80400f00)

	for slot := 0; slot < kart.MaxKarts; slot++ {
		_, err := karts.View(slot)
		test.ExpectSuccess(t, err, slot)
	}

	_, err := karts.View(-1)
	test.ExpectFailure(t, err)
	_, err = karts.View(kart.MaxKarts)
	test.ExpectFailure(t, err)
}

func TestViewAccess(t *testing.T) {
	ram := hostmem.NewRAM(0x80400000, 0x1000)
	karts := kart.NewArray(ram, testLayout(), 0x80400f00)

	v, err := karts.View(2)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v.Slot(), 2)

	err = v.SetPosition(kart.Vector{X: 1.0, Y: 2.0, Z: 3.0})
	test.ExpectSuccess(t, err)
	pos, err := v.Position()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pos, kart.Vector{X: 1.0, Y: 2.0, Z: 3.0})

	// the write landed in slot 2's stride
	f, err := ram.ReadF32(0x80400000 + 2*0x100)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, f, 1.0)

	err = v.SetMovement(kart.Vector{Y: -300.0})
	test.ExpectSuccess(t, err)
	mov, err := v.Movement()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, mov.Y, -300.0)

	err = v.SetVelocity(98.5)
	test.ExpectSuccess(t, err)
	vel, err := v.Velocity()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, vel, 98.5)

	err = v.SetBoostFlags(kart.BoostDash | kart.DriftLeft)
	test.ExpectSuccess(t, err)
	b, err := v.BoostFlags()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, kart.BoostDash|kart.DriftLeft)

	err = v.SetDashTimer(120)
	test.ExpectSuccess(t, err)
	d, err := v.DashTimer()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, d, 120)

	err = v.SetGroundedWheels(4)
	test.ExpectSuccess(t, err)
	g, err := v.Grounded()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, g, true)

	err = v.SetGroundedWheels(0)
	test.ExpectSuccess(t, err)
	g, err = v.Grounded()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, g, false)
}

func TestFlagBytes(t *testing.T) {
	ram := hostmem.NewRAM(0x80400000, 0x1000)
	karts := kart.NewArray(ram, testLayout(), 0x80400f00)

	// flag bytes for different slots are independent and consecutive
	for slot := 0; slot < kart.MaxKarts; slot++ {
		v, err := karts.View(slot)
		test.ExpectSuccess(t, err)
		err = v.SetFlags(kart.Flag(slot))
		test.ExpectSuccess(t, err)
	}

	for slot := 0; slot < kart.MaxKarts; slot++ {
		b, err := ram.Read8(0x80400f00 + uint32(slot))
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, b, uint8(slot))
	}

	v, _ := karts.View(1)
	f, err := v.Flags()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, f, kart.FlagBounce)
	test.ExpectEquality(t, f.String(), "BOUNCE")

	err = v.SetFlags(f | kart.FlagLiftoff)
	test.ExpectSuccess(t, err)
	f, _ = v.Flags()
	test.ExpectEquality(t, f.String(), "BOUNCE LIFTOFF")
}

func TestVector(t *testing.T) {
	a := kart.Vector{X: 1, Y: 2, Z: 3}
	b := kart.Vector{X: -1, Y: 0.5, Z: 10}

	test.ExpectEquality(t, a.Add(b), kart.Vector{X: 0, Y: 2.5, Z: 13})
	test.ExpectEquality(t, a.Scale(2), kart.Vector{X: 2, Y: 4, Z: 6})
	test.ExpectEquality(t, a.MagSquared(), 14.0)

	// facing along positive Z, the sideways axis is positive X
	fwd := kart.Vector{X: 0, Y: 0, Z: 1}
	test.ExpectEquality(t, fwd.PerpXZ(), kart.Vector{X: 1, Y: 0, Z: 0})

	// a quarter turn leaves the magnitude unchanged and discards Y
	test.ExpectEquality(t, a.PerpXZ(), kart.Vector{X: 3, Y: 0, Z: -1})

	test.ExpectApproximate(t, kart.Vector{X: 3, Y: 4, Z: 0}.Mag(), 5.0, 0.0001)
}
