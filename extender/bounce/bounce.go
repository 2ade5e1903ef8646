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

// Package bounce implements the bounce terrain controller. Driving onto a
// triangle with the designated terrain type launches the kart with an
// impulse authored into the triangle's splash value, and for as long as the
// bounce episode lasts the controller runs its own kinematics in place of
// the game's speed control routine.
//
// The controller is interposed where the game would call speed control for
// each kart, once per kart per frame. Episode state is two flag bits in the
// kart's extended terrain flag byte: BOUNCE marks an active episode and
// LIFTOFF guards against re-triggering before the impulse has carried the
// kart off the ground. The lateral momentum accumulated while steering in
// the air is not part of the game's kart structure; it is shadowed here,
// one value per kart slot.
package bounce

import (
	"github.com/jetsetilly/gopherkart/environment"
	"github.com/jetsetilly/gopherkart/extender/kart"
	"github.com/jetsetilly/gopherkart/hostmem"
	"github.com/jetsetilly/gopherkart/hostmem/addresses"
	"github.com/pkg/errors"
)

// Physics is the surface of the game's physics engine used by the
// controller.
type Physics interface {
	// ZDirection returns the kart's facing as a unit vector
	ZDirection(slot int) (kart.Vector, error)

	// SplashHash returns the authored splash value of the ground collision
	// triangle under the kart. zero when the course author left the value
	// unset
	SplashHash(slot int) (uint32, error)

	// Mirrored returns true if the race is running in mirror mode
	Mirrored() bool

	// ControllablePlayers returns the number of kart slots receiving real
	// controller input. slots beyond this hold stale values in their stick
	// fields
	ControllablePlayers() int

	// SpeedControl runs the game's native per-kart speed control routine
	SpeedControl(slot int) error
}

// the splash value packs the impulse as two unsigned 8.8 fixed point
// components: vertical speed in the high halfword, lateral speed in the low
// halfword
const impulseScale = 256.0

// a boosted kart never bounces with less lateral speed than this.
const boostedLateralFloor = 80.0

// impulse multipliers while a boost is active. a mini-turbo held through a
// drift bounces a little higher than a released one
const (
	dashVertical          = 1.1
	dashLateral           = 1.28
	miniTurboVertical     = 0.8
	miniTurboVerticalHeld = 0.95
	miniTurboLateral      = 1.33
)

// velocityScale reconciles the velocity field with the movement vector. the
// game normalizes one against the other and would otherwise rescale the
// composed impulse on the next frame
const velocityScale = 2.16

// lateral momentum shaping. steering accelerates the momentum toward the
// cap; a released stick decays it toward rest
const (
	momentumStep  = 0.02
	momentumDecay = 0.004
	momentumCap   = 1.0
	momentumScale = 10.0
)

// sustained vertical stick response, applied to the movement vector every
// frame the stick is deflected
const (
	stickClimb   = 1.25
	stickDescend = 0.675
)

// the stick deflection needed before the drift and vertical responses
// engage
const stickThreshold = 0.5

// the descent clamp. the native integrator applies its own floor but it is
// bypassed during an episode
const descentFloor = -300.0

// Controller is the bounce terrain controller. Create with NewController()
type Controller struct {
	mem   hostmem.Memory
	karts *kart.Array
	phys  Physics

	// the terrain type code that triggers an episode
	code uint8

	// address of the default impulse word, used when a triangle has no
	// authored splash value
	def uint32

	// the lateral momentum shadow values, indexed by kart slot
	momentum [kart.MaxKarts]float32
}

// NewController is the preferred method of initialisation for the
// Controller type.
func NewController(env *environment.Environment, cat addresses.Catalog,
	mem hostmem.Memory, karts *kart.Array, phys Physics) (*Controller, error) {

	if karts == nil {
		return nil, errors.New("bounce: no kart array")
	}
	if phys == nil {
		return nil, errors.New("bounce: no physics surface")
	}

	return &Controller{
		mem:   mem,
		karts: karts,
		phys:  phys,
		code:  uint8(env.BouncyTerrainCode),
		def:   cat.BounceSplashDefault(),
	}, nil
}

// Reset clears the lateral momentum shadow values for every kart. called on
// course load
func (c *Controller) Reset() {
	c.momentum = [kart.MaxKarts]float32{}
}

// Momentum returns the lateral momentum shadow value for a kart slot.
func (c *Controller) Momentum(slot int) float32 {
	if slot < 0 || slot >= kart.MaxKarts {
		return 0
	}
	return c.momentum[slot]
}

// Update advances the bounce state machine for one kart by one frame and
// runs whichever speed control applies. it is called once per kart per
// frame, in place of the game's own speed control call
func (c *Controller) Update(slot int) error {
	v, err := c.karts.View(slot)
	if err != nil {
		return err
	}

	flags, err := v.Flags()
	if err != nil {
		return err
	}
	grounded, err := v.Grounded()
	if err != nil {
		return err
	}
	terrain, err := v.TerrainCode()
	if err != nil {
		return err
	}
	bouncy := terrain == c.code

	if grounded && !bouncy {
		// ordinary ground clears everything. this also heals any stale
		// flags left by a path the transitions below don't anticipate
		if flags != 0 {
			flags = 0
			if err := v.SetFlags(flags); err != nil {
				return err
			}
		}
	} else if flags&kart.FlagBounce != 0 {
		if grounded {
			// touchdown ends the episode, but only once the liftoff guard
			// has resolved. on a bouncy triangle the episode restart below
			// launches the kart straight back up
			if flags&kart.FlagLiftoff == 0 {
				flags &^= kart.FlagBounce
				if err := v.SetFlags(flags); err != nil {
					return err
				}
			}
		} else if flags&kart.FlagLiftoff != 0 {
			// the guard expires once the kart is airborne
			flags &^= kart.FlagLiftoff
			if err := v.SetFlags(flags); err != nil {
				return err
			}
		}
	}

	if flags == 0 && grounded && bouncy {
		c.momentum[slot] = 0
		if err := c.liftoff(v); err != nil {
			return err
		}
		flags = kart.FlagBounce | kart.FlagLiftoff
		if err := v.SetFlags(flags); err != nil {
			return err
		}
	}

	if flags&kart.FlagBounce != 0 {
		return c.kinematics(v)
	}
	return c.phys.SpeedControl(slot)
}

// liftoff composes and applies the launch impulse for a new episode.
func (c *Controller) liftoff(v *kart.View) error {
	hash, err := c.phys.SplashHash(v.Slot())
	if err != nil {
		return err
	}
	if hash == 0 {
		// nothing authored on the triangle. the default word is seeded at
		// game init and can be tuned live when developing a course
		hash, err = c.mem.Read32(c.def)
		if err != nil {
			return err
		}
	}

	vertical := float32(hash>>16) / impulseScale
	lateral := float32(hash&0xffff) / impulseScale

	boost, err := v.BoostFlags()
	if err != nil {
		return err
	}

	if boost&(kart.BoostDash|kart.BoostMiniTurbo) != 0 {
		if lateral < boostedLateralFloor {
			lateral = boostedLateralFloor
		}
		if boost&kart.BoostDash != 0 {
			vertical *= dashVertical
			lateral *= dashLateral
		} else if boost&(kart.DriftLeft|kart.DriftRight) != 0 {
			vertical *= miniTurboVerticalHeld
			lateral *= miniTurboLateral
		} else {
			vertical *= miniTurboVertical
			lateral *= miniTurboLateral
		}
	}

	forward, err := c.phys.ZDirection(v.Slot())
	if err != nil {
		return err
	}

	movement := forward.Scale(lateral)
	movement.Y += vertical

	// the velocity field must agree with the movement vector or the game
	// rescales the movement on the next frame
	scale, err := v.MovementScale()
	if err != nil {
		return err
	}
	if err := v.SetVelocity(movement.MagSquared() * velocityScale * scale); err != nil {
		return err
	}

	return v.SetMovement(movement)
}

// kinematics is the per-frame replacement for the bypassed speed control
// routine.
func (c *Controller) kinematics(v *kart.View) error {
	if err := c.boostBookkeeping(v); err != nil {
		return err
	}

	slot := v.Slot()

	// slots beyond the controllable player count hold whatever the game
	// left in the stick fields, not input
	var stickX, stickY float32
	if slot < c.phys.ControllablePlayers() {
		var err error
		stickX, err = v.StickX()
		if err != nil {
			return err
		}
		stickY, err = v.StickY()
		if err != nil {
			return err
		}
	}

	m := c.momentum[slot]
	switch {
	case stickX > stickThreshold || stickX < -stickThreshold:
		step := float32(momentumStep)
		if stickX < 0 {
			step = -step
		}
		if c.phys.Mirrored() {
			step = -step
		}
		m += step
		if m > momentumCap {
			m = momentumCap
		} else if m < -momentumCap {
			m = -momentumCap
		}
	case m > momentumDecay:
		m -= momentumDecay
	case m < -momentumDecay:
		m += momentumDecay
	default:
		m = 0
	}
	c.momentum[slot] = m

	if m != 0 {
		// the momentum moves the kart by absolute position. routing it
		// through the movement vector would let the game rescale it
		forward, err := c.phys.ZDirection(slot)
		if err != nil {
			return err
		}
		pos, err := v.Position()
		if err != nil {
			return err
		}
		pos = pos.Add(forward.PerpXZ().Scale(m * momentumScale))
		if err := v.SetPosition(pos); err != nil {
			return err
		}
	}

	// the vertical response stays on the movement vector so the game still
	// integrates it
	movement, err := v.Movement()
	if err != nil {
		return err
	}

	if stickY > stickThreshold {
		movement.Y += stickClimb
	} else if stickY < -stickThreshold {
		movement.Y -= stickDescend
	}

	if movement.Y <= descentFloor {
		movement.Y = descentFloor
	}

	return v.SetMovement(movement)
}

// boostBookkeeping replicates the boost timer upkeep the bypassed speed
// control routine would have performed.
func (c *Controller) boostBookkeeping(v *kart.View) error {
	boost, err := v.BoostFlags()
	if err != nil {
		return err
	}

	if boost&kart.BoostMiniTurbo != 0 {
		t, err := v.MiniTurboTimer()
		if err != nil {
			return err
		}
		if t > 0 {
			t--
			if err := v.SetMiniTurboTimer(t); err != nil {
				return err
			}
		}
		if t == 0 {
			boost &^= kart.BoostMiniTurbo
		}
	}

	if boost&kart.BoostSecondary != 0 {
		t, err := v.SecondaryBoostTimer()
		if err != nil {
			return err
		}
		if t > 0 {
			t--
			if err := v.SetSecondaryBoostTimer(t); err != nil {
				return err
			}
		}
		if t == 0 {
			boost &^= kart.BoostSecondary
		}
	}

	if boost&kart.BoostDash != 0 {
		t, err := v.DashTimer()
		if err != nil {
			return err
		}
		if t > 0 {
			t--
			if err := v.SetDashTimer(t); err != nil {
				return err
			}
		}
		if t == 0 {
			boost &^= kart.BoostDash
			if boost&kart.BoostGoPending != 0 {
				// an expiring dash with the go flag raised rolls over into
				// the follow-on boost
				boost &^= kart.BoostGoPending
				boost |= kart.BoostSecondary
				if err := v.SetSecondaryBoostTimer(kart.GoBoostFrames); err != nil {
					return err
				}
			}
		}
	}

	return v.SetBoostFlags(boost)
}
