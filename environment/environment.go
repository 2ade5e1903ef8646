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

// Package environment holds the feature configuration that the original
// patch resolved at compile time. It is resolved once at startup and passed
// to the extender; the controllers branch on its fields and never on build
// tags.
//
// For the command line front end the fields are populated from GOPHERKART_*
// environment variables. Tests and other programmatic users start from
// DefaultEnvironment() and adjust fields directly. Either way the result
// must pass Validate() before it reaches the extender.
package environment

import (
	"github.com/caarlos0/env"
	"github.com/jetsetilly/gopherkart/hostmem/addresses"
	"github.com/pkg/errors"
)

// Label is used to name the environment
type Label string

// MaxPageCount is the largest usable page count. The page is displayed as a
// single digit appended to the course label strings, so ten pages is the
// most that can be represented
const MaxPageCount = 10

// MaxExtenderCupPageCount is the largest page count compatible with the
// extender cup. The GP scoreboard cannot show more than 999 points and the
// lowered score table only keeps the winner under that limit for up to
// eight pages
const MaxExtenderCupPageCount = 8

// Environment is the resolved feature configuration for one extender
// instance. Particularly useful when running multiple simulations
type Environment struct {
	Label Label

	// the build of the game being patched. one of the addresses.GM4*
	// values. the region and debug distinctions derive from this field
	GameID string `env:"GOPHERKART_GAME_ID"`

	// number of course pages, including the page natively in the game
	PageCount int `env:"GOPHERKART_PAGE_COUNT"`

	// the page selected when the game boots, and the page restored by the
	// reset hooks
	InitialPage int `env:"GOPHERKART_INITIAL_PAGE"`

	// feature selection
	BattleStages          bool `env:"GOPHERKART_BATTLE_STAGES"`
	LANMode               bool `env:"GOPHERKART_LAN_MODE"`
	AltButtons            bool `env:"GOPHERKART_ALT_BUTTONS"`
	ExtenderCup           bool `env:"GOPHERKART_EXTENDER_CUP"`
	TypeSpecificItemBoxes bool `env:"GOPHERKART_TYPE_SPECIFIC_ITEM_BOXES"`
	SectionedCourses      bool `env:"GOPHERKART_SECTIONED_COURSES"`
	TiltingCourses        bool `env:"GOPHERKART_TILTING_COURSES"`
	BouncyTerrain         bool `env:"GOPHERKART_BOUNCY_TERRAIN"`
	FallingStars          bool `env:"GOPHERKART_FALLING_STARS"`
	ResetPageOnTitle      bool `env:"GOPHERKART_RESET_PAGE_ON_TITLE"`
	ResetPageOnLANStart   bool `env:"GOPHERKART_RESET_PAGE_ON_LAN_START"`

	// how minimap orientations are written: true patches the immediate
	// operand of the displaced load instruction (requires an instruction
	// cache sync), false writes the orientation to data memory
	PatchedOrientations bool `env:"GOPHERKART_PATCHED_ORIENTATIONS"`

	// the terrain type code that triggers the bounce controller
	BouncyTerrainCode int `env:"GOPHERKART_BOUNCY_TERRAIN_CODE"`
}

// DefaultEnvironment returns an Environment with every field at its default
// value. the process environment is not consulted
func DefaultEnvironment(label Label) *Environment {
	return &Environment{
		Label:             label,
		GameID:            addresses.GM4E01,
		PageCount:         2,
		InitialPage:       0,
		BouncyTerrainCode: 0x7f,
	}
}

// NewEnvironment creates an Environment from the default values overlaid
// with any GOPHERKART_* variables present in the process environment. the
// result has been validated
func NewEnvironment(label Label) (*Environment, error) {
	e := DefaultEnvironment(label)

	if err := env.Parse(e); err != nil {
		return nil, errors.Wrap(err, "environment")
	}

	if err := e.Validate(); err != nil {
		return nil, err
	}

	return e, nil
}

// Validate checks the configuration for combinations the extender cannot
// honour. an Environment must be validated before use
func (e *Environment) Validate() error {
	if _, err := addresses.Lookup(e.GameID); err != nil {
		return err
	}

	if e.PageCount < 1 || e.PageCount > MaxPageCount {
		return errors.Errorf("environment: page count must be between 1 and %d: %d", MaxPageCount, e.PageCount)
	}

	if e.InitialPage < 0 || e.InitialPage >= e.PageCount {
		return errors.Errorf("environment: initial page out of range: %d (page count %d)", e.InitialPage, e.PageCount)
	}

	if e.BouncyTerrain && e.IsDebugBuild() {
		return errors.New("environment: the bouncy terrain patch is not compatible with the NTSC-U debug build")
	}

	if e.ExtenderCup && e.PageCount > MaxExtenderCupPageCount {
		return errors.Errorf("environment: the extender cup supports at most %d pages: %d", MaxExtenderCupPageCount, e.PageCount)
	}

	if e.BouncyTerrainCode < 0 || e.BouncyTerrainCode > 0xff {
		return errors.Errorf("environment: bouncy terrain code must fit in one byte: %d", e.BouncyTerrainCode)
	}

	return nil
}

// IsDebugBuild returns true if the configured build is the NTSC-U debug
// build
func (e *Environment) IsDebugBuild() bool {
	return e.GameID == addresses.GM4E01dbg
}

// IsPAL returns true if the configured build is the PAL build
func (e *Environment) IsPAL() bool {
	return e.GameID == addresses.GM4P01
}

// IsMainEmulation returns true if the environment is intended for the main
// emulation in the system
func (e *Environment) IsMainEmulation() bool {
	return e.Label == ""
}

// IsEmulation checks the emulation label and returns true if it matches
func (e *Environment) IsEmulation(label Label) bool {
	return e.Label == label
}
