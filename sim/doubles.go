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

package sim

import (
	"math"
	"math/rand"

	"github.com/jetsetilly/gopherkart/extender/courseselect"
	"github.com/jetsetilly/gopherkart/extender/kart"
	"github.com/jetsetilly/gopherkart/hostmem"
)

// AudioLog records the sound effect cues the extender triggers.
type AudioLog struct {
	Cues []uint32
}

// StartSystemSE implements the courseselect.Audio interface.
func (a *AudioLog) StartSystemSE(main uint32, cue uint32) {
	a.Cues = append(a.Cues, cue)
}

// MapSelectLog records the battle map select resets and init frames the
// extender replays.
type MapSelectLog struct {
	Resets int
	Inits  int
}

// Reset implements the courseselect.MapSelect interface.
func (m *MapSelectLog) Reset() {
	m.Resets++
}

// Init implements the courseselect.MapSelect interface.
func (m *MapSelectLog) Init() {
	m.Inits++
}

// SceneLog counts the native scene animation updates made on the game's
// behalf.
type SceneLog struct {
	Calls map[courseselect.Mode]int
}

// CalcAnm implements the extender.Scenes interface.
func (s *SceneLog) CalcAnm(mode courseselect.Mode) {
	if s.Calls == nil {
		s.Calls = map[courseselect.Mode]int{}
	}
	s.Calls[mode]++
}

// LapLog records the lap bookkeeping the extender forces through the
// game's kart checker.
type LapLog struct {
	Laps     map[int]int
	LapTimes map[int]int
}

// NewLapLog is the preferred method of initialisation for the LapLog type.
func NewLapLog() *LapLog {
	return &LapLog{
		Laps:     map[int]int{},
		LapTimes: map[int]int{},
	}
}

// IncrementLap implements the sections.LapChecker interface.
func (l *LapLog) IncrementLap(slot int) error {
	l.Laps[slot]++
	return nil
}

// SetLapTime implements the sections.LapChecker interface.
func (l *LapLog) SetLapTime(slot int) error {
	l.LapTimes[slot]++
	return nil
}

// Shuffle is a deterministic double for the game's item shuffle.
type Shuffle struct {
	rnd *rand.Rand

	// number of native shuffles per player
	Calcs map[int]int
}

// NewShuffle is the preferred method of initialisation for the Shuffle
// type.
func NewShuffle(seed int64) *Shuffle {
	return &Shuffle{
		rnd:   rand.New(rand.NewSource(seed)),
		Calcs: map[int]int{},
	}
}

// IsAvailableRollingSlot implements the itembox.Shuffler interface. the
// simulated player always has a free slot
func (s *Shuffle) IsAvailableRollingSlot(player int, slot int) (bool, error) {
	return true, nil
}

// CalcSlot implements the itembox.Shuffler interface.
func (s *Shuffle) CalcSlot(player int) (uint8, error) {
	s.Calcs[player]++
	return uint8(s.rnd.Intn(20)), nil
}

// Rand is a deterministic double for the game's geometry random source.
type Rand struct {
	rnd *rand.Rand
}

// NewRand is the preferred method of initialisation for the Rand type.
func NewRand(seed int64) *Rand {
	return &Rand{rnd: rand.New(rand.NewSource(seed))}
}

// GeoRnd implements the fallingstars.Rand interface.
func (r *Rand) GeoRnd(n int) int {
	return r.rnd.Intn(n)
}

// the native integrator's per-frame gravity and its own descent floor.
// both are bypassed for a kart in a bounce episode
const (
	nativeGravity      = 1.7
	nativeDescentFloor = -120.0
)

// Physics is the double for the game's kart physics surface: facing
// queries, ground collision data, and the native speed control routine.
type Physics struct {
	mem hostmem.Memory
	lay kart.Layout

	// per-slot facing as an angle in the ground plane, radians. zero faces
	// along positive Z
	headings [kart.MaxKarts]float64

	// per-slot splash value of the triangle under the kart
	splash [kart.MaxKarts]uint32

	mirrored bool
	players  int

	// slots the native speed control routine has run for, in call order
	NativeCalls []int
}

// NewPhysics is the preferred method of initialisation for the Physics
// type.
func NewPhysics(mem hostmem.Memory, lay kart.Layout) *Physics {
	return &Physics{
		mem:     mem,
		lay:     lay,
		players: kart.MaxKarts,
	}
}

// SetHeading sets a kart's facing angle in the ground plane.
func (p *Physics) SetHeading(slot int, radians float64) {
	p.headings[slot] = radians
}

// SetSplash sets the splash value of the triangle under a kart.
func (p *Physics) SetSplash(slot int, hash uint32) {
	p.splash[slot] = hash
}

// SetMirrored sets mirror mode.
func (p *Physics) SetMirrored(mirrored bool) {
	p.mirrored = mirrored
}

// SetControllablePlayers sets the number of kart slots receiving real
// controller input.
func (p *Physics) SetControllablePlayers(n int) {
	p.players = n
}

// ZDirection implements the bounce.Physics interface.
func (p *Physics) ZDirection(slot int) (kart.Vector, error) {
	return kart.Vector{
		X: float32(math.Sin(p.headings[slot])),
		Z: float32(math.Cos(p.headings[slot])),
	}, nil
}

// SplashHash implements the bounce.Physics interface.
func (p *Physics) SplashHash(slot int) (uint32, error) {
	return p.splash[slot], nil
}

// Mirrored implements the bounce.Physics interface.
func (p *Physics) Mirrored() bool {
	return p.mirrored
}

// ControllablePlayers implements the bounce.Physics interface.
func (p *Physics) ControllablePlayers() int {
	return p.players
}

// SpeedControl implements the bounce.Physics interface: the game's own
// per-kart integrator, reduced to what the bounce controller can observe.
// the movement vector is applied to the position, gravity pulls on the
// movement vector, and descent is floored at the native limit
func (p *Physics) SpeedControl(slot int) error {
	p.NativeCalls = append(p.NativeCalls, slot)

	base := p.lay.Base + uint32(slot)*p.lay.Stride

	var pos, mov kart.Vector
	var err error

	read := func(offset uint32) (kart.Vector, error) {
		var v kart.Vector
		if v.X, err = p.mem.ReadF32(base + offset); err != nil {
			return v, err
		}
		if v.Y, err = p.mem.ReadF32(base + offset + 4); err != nil {
			return v, err
		}
		v.Z, err = p.mem.ReadF32(base + offset + 8)
		return v, err
	}
	write := func(offset uint32, v kart.Vector) error {
		if err := p.mem.WriteF32(base+offset, v.X); err != nil {
			return err
		}
		if err := p.mem.WriteF32(base+offset+4, v.Y); err != nil {
			return err
		}
		return p.mem.WriteF32(base+offset+8, v.Z)
	}

	if pos, err = read(p.lay.Position); err != nil {
		return err
	}
	if mov, err = read(p.lay.Movement); err != nil {
		return err
	}

	pos = pos.Add(mov)
	mov.Y -= nativeGravity
	if mov.Y < nativeDescentFloor {
		mov.Y = nativeDescentFloor
	}

	if err := write(p.lay.Position, pos); err != nil {
		return err
	}
	return write(p.lay.Movement, mov)
}
