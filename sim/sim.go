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

// Package sim is a stand-in for the game process. It owns a RAM image
// addressed and seeded like the patched game's memory, doubles for the
// host routines the controllers call back into, and an Extender attached
// to both. The probe and the integration tests drive the extender through
// the simulation exactly as the game's per-frame hijack sites would:
// single-threaded, run to completion, one call per frame.
//
// The doubles implement only the behaviour the controllers can observe.
// There is no emulation of the game beyond that.
package sim

import (
	"github.com/jetsetilly/gopherkart/environment"
	"github.com/jetsetilly/gopherkart/extender"
	"github.com/jetsetilly/gopherkart/extender/courseselect"
	"github.com/jetsetilly/gopherkart/extender/kart"
	"github.com/jetsetilly/gopherkart/hostmem"
	"github.com/jetsetilly/gopherkart/hostmem/addresses"
	"github.com/pkg/errors"
)

// the simulated RAM image. large enough to cover the catalog addresses of
// every supported build
const ramSize = uint32(0x00800000)

// where the simulated kart array lives. the real array is heap allocated
// by the game; the simulation pins it above the catalogued statics
const (
	kartArrayBase   = uint32(0x80600000)
	kartArrayStride = uint32(0x400)
)

// KartLayout returns the layout of the simulated kart array.
func KartLayout() kart.Layout {
	return kart.Layout{
		Base:   kartArrayBase,
		Stride: kartArrayStride,

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

// Simulation is the simulated game process. Create with NewSimulation()
type Simulation struct {
	Env *environment.Environment
	Cat addresses.Catalog
	RAM *hostmem.RAM
	Ext *extender.Extender

	// the host routine doubles the extender is attached to
	Audio     *AudioLog
	MapSelect *MapSelectLog
	Scenes    *SceneLog
	Physics   *Physics
	Checker   *LapLog
	Shuffle   *Shuffle
	Rand      *Rand

	// the number of kart slots StepRace drives
	activeKarts int
}

// NewSimulation builds a simulation for the given environment. the RAM
// image is seeded the way the injection step seeds the patched game
func NewSimulation(env *environment.Environment) (*Simulation, error) {
	if err := env.Validate(); err != nil {
		return nil, err
	}

	cat, err := addresses.Lookup(env.GameID)
	if err != nil {
		return nil, err
	}

	sim := &Simulation{
		Env: env,
		Cat: cat,
		RAM: hostmem.NewRAM(hostmem.OriginRAM, ramSize),

		Audio:     &AudioLog{},
		MapSelect: &MapSelectLog{},
		Scenes:    &SceneLog{},
		Checker:   NewLapLog(),
		Shuffle:   NewShuffle(1),
		Rand:      NewRand(1),

		activeKarts: 1,
	}
	sim.Physics = NewPhysics(sim.RAM, KartLayout())

	if err := sim.seed(); err != nil {
		return nil, err
	}

	att := extender.Attachments{
		Audio:      sim.Audio,
		Scenes:     sim.Scenes,
		KartLayout: KartLayout(),
		MapSelect:  sim.MapSelect,
		Physics:    sim.Physics,
		LapChecker: sim.Checker,
		Shuffle:    sim.Shuffle,
		Rand:       sim.Rand,
	}

	sim.Ext, err = extender.NewExtender(env, sim.RAM, sim.RAM, SyntheticPageData(env), att)
	if err != nil {
		return nil, err
	}

	return sim, nil
}

// seed initialises the statics the injection step writes into the game
// binary
func (sim *Simulation) seed() error {
	if err := sim.RAM.Write8(sim.Cat.SpamFlag, 0); err != nil {
		return err
	}
	if err := sim.RAM.Write8(sim.Cat.CurrentPage(), uint8(sim.Env.InitialPage)); err != nil {
		return err
	}
	if err := sim.RAM.Write8(sim.Cat.GPGlobalCourseIndex(), 0); err != nil {
		return err
	}

	for i := 0; i < kart.MaxKarts; i++ {
		if err := sim.RAM.Write8(sim.Cat.PlayerItemRolls+uint32(i), 0xff); err != nil {
			return err
		}
		if err := sim.RAM.Write8(sim.Cat.KartExtendedTerrainFlags+uint32(i), 0); err != nil {
			return err
		}
	}
	if err := sim.RAM.Write32(sim.Cat.BounceSplashDefault(), 0x50005000); err != nil {
		return err
	}

	// the game initialises every kart's movement scale to one
	lay := KartLayout()
	for i := 0; i < kart.MaxKarts; i++ {
		base := lay.Base + uint32(i)*lay.Stride
		if err := sim.RAM.WriteF32(base+lay.MovementScale, 1.0); err != nil {
			return err
		}
	}

	// the redraw float idles at its no-redraw value
	return sim.RAM.WriteF32(sim.Cat.RedrawCourseSelect, 13.0)
}

// SetActiveKarts sets the number of kart slots StepRace drives.
func (sim *Simulation) SetActiveKarts(n int) error {
	if n < 1 || n > kart.MaxKarts {
		return errors.Errorf("sim: active kart count out of range: %d", n)
	}
	sim.activeKarts = n
	return nil
}

// HoldButtons writes the full pad word, as the game's pad read would.
func (sim *Simulation) HoldButtons(buttons uint16) error {
	return sim.RAM.Write16(sim.Cat.ButtonsState, buttons)
}

// ReleaseButtons clears the full pad word.
func (sim *Simulation) ReleaseButtons() error {
	return sim.RAM.Write16(sim.Cat.ButtonsState, 0)
}

// HoldLANButtons writes the reduced 1-byte pad structure used by the LAN
// menus.
func (sim *Simulation) HoldLANButtons(buttons uint8) error {
	return sim.RAM.Write8(sim.Cat.AltButtonsState, buttons)
}

// SetStick writes a kart's control stick deflection.
func (sim *Simulation) SetStick(slot int, x float32, y float32) error {
	v, err := sim.Ext.Karts.View(slot)
	if err != nil {
		return err
	}
	if err := v.SetStickX(x); err != nil {
		return err
	}
	return v.SetStickY(y)
}

// PlaceKart puts a kart on the ground at a position, with the given
// terrain under its wheels.
func (sim *Simulation) PlaceKart(slot int, pos kart.Vector, terrain uint8, wheels uint8) error {
	v, err := sim.Ext.Karts.View(slot)
	if err != nil {
		return err
	}
	if err := v.SetPosition(pos); err != nil {
		return err
	}
	if err := v.SetTerrainCode(terrain); err != nil {
		return err
	}
	return v.SetGroundedWheels(wheels)
}

// StepCourseSelect advances the named selection screen by a number of
// frames, invoking the hijacked animation update once per frame
func (sim *Simulation) StepCourseSelect(mode courseselect.Mode, frames int) error {
	for i := 0; i < frames; i++ {
		var err error
		switch mode {
		case courseselect.Race:
			err = sim.Ext.CalcAnmRace()
		case courseselect.Battle:
			err = sim.Ext.CalcAnmBattle()
		case courseselect.LAN:
			err = sim.Ext.CalcAnmLAN()
		default:
			err = errors.Errorf("sim: unknown selection screen: %v", mode)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// StepRace advances the race by a number of frames, invoking the hijacked
// speed control once per active kart per frame
func (sim *Simulation) StepRace(frames int) error {
	for i := 0; i < frames; i++ {
		for slot := 0; slot < sim.activeKarts; slot++ {
			if err := sim.Ext.SpeedControl(slot); err != nil {
				return err
			}
		}
	}
	return nil
}

// Page returns the course page currently in effect.
func (sim *Simulation) Page() (int, error) {
	return sim.Ext.CourseSelect.Page()
}

// SpamFlag returns the page change debounce counter.
func (sim *Simulation) SpamFlag() (uint8, error) {
	return sim.RAM.Read8(sim.Cat.SpamFlag)
}

// RedrawDelay returns the redraw-delay float consumed by the course select
// renderer.
func (sim *Simulation) RedrawDelay() (float32, error) {
	return sim.RAM.ReadF32(sim.Cat.RedrawCourseSelect)
}
