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

// Package extender assembles the patch controllers into one unit and
// exposes the entry points the hijack sites call. Every entry point is a
// plain function with explicit arguments: the register conventions of the
// original hijack sites are a property of the game's compiled code, not of
// the logic, and are left to the injection layer.
//
// Features that are disabled in the environment leave their controller
// unbuilt; the corresponding entry points fall through to the game's own
// behaviour.
package extender

import (
	"github.com/jetsetilly/gopherkart/environment"
	"github.com/jetsetilly/gopherkart/extender/bounce"
	"github.com/jetsetilly/gopherkart/extender/courseselect"
	"github.com/jetsetilly/gopherkart/extender/extendercup"
	"github.com/jetsetilly/gopherkart/extender/fallingstars"
	"github.com/jetsetilly/gopherkart/extender/itembox"
	"github.com/jetsetilly/gopherkart/extender/kart"
	"github.com/jetsetilly/gopherkart/extender/sections"
	"github.com/jetsetilly/gopherkart/hostmem"
	"github.com/jetsetilly/gopherkart/hostmem/addresses"
	"github.com/jetsetilly/gopherkart/logger"
	"github.com/pkg/errors"
)

// Scenes is the surface of the game's scene animation updates. the hijack
// sites displace the game's own calcAnm calls, so the extender must make
// them on the game's behalf
type Scenes interface {
	CalcAnm(mode courseselect.Mode)
}

// Attachments collects the host surfaces the controllers call back into.
// Audio, Scenes and the kart layout are always required; the remaining
// surfaces are required only when the feature using them is enabled.
type Attachments struct {
	Audio  courseselect.Audio
	Scenes Scenes

	// the layout of the game's kart array
	KartLayout kart.Layout

	// required with battle stages
	MapSelect courseselect.MapSelect

	// required with bouncy terrain
	Physics bounce.Physics

	// required with sectioned courses
	LapChecker sections.LapChecker

	// required with type-specific item boxes
	Shuffle itembox.Shuffler

	// required with customizable falling stars
	Rand fallingstars.Rand
}

// Extender is the assembled patch set. Create with NewExtender()
type Extender struct {
	env *environment.Environment
	cat addresses.Catalog
	mem hostmem.Memory
	att Attachments

	Karts *kart.Array

	// per-feature controllers. a nil controller means the feature is
	// disabled and the entry points defer to the game
	CourseSelect *courseselect.Selector
	Bounce       *bounce.Controller
	Cup          *extendercup.Cup
	Sections     *sections.Counter
	ItemBoxes    *itembox.Boxes
	FallingStars *fallingstars.Controller
}

// NewExtender creates the patch set described by the environment and wires
// it to the host surfaces in the attachments. construction fails on an
// invalid environment or a missing required surface
func NewExtender(env *environment.Environment, mem hostmem.Memory, code hostmem.CodeMemory,
	data courseselect.PageData, att Attachments) (*Extender, error) {

	if err := env.Validate(); err != nil {
		return nil, err
	}

	cat, err := addresses.Lookup(env.GameID)
	if err != nil {
		return nil, err
	}

	if att.Scenes == nil {
		return nil, errors.New("extender: no scene surface")
	}

	ext := &Extender{
		env: env,
		cat: cat,
		mem: mem,
		att: att,
	}

	ext.Karts = kart.NewArray(mem, att.KartLayout, cat.KartExtendedTerrainFlags)

	ext.CourseSelect, err = courseselect.NewSelector(env, cat, mem, code, data, att.Audio, att.MapSelect)
	if err != nil {
		return nil, err
	}

	if env.BouncyTerrain {
		ext.Bounce, err = bounce.NewController(env, cat, mem, ext.Karts, att.Physics)
		if err != nil {
			return nil, err
		}
	}

	if env.ExtenderCup {
		ext.Cup, err = extendercup.NewCup(env, cat, mem, ext.CourseSelect)
		if err != nil {
			return nil, err
		}
	}

	if env.SectionedCourses {
		ext.Sections, err = sections.NewCounter(att.LapChecker)
		if err != nil {
			return nil, err
		}
	}

	if env.TypeSpecificItemBoxes {
		ext.ItemBoxes, err = itembox.NewBoxes(cat, mem, att.Shuffle)
		if err != nil {
			return nil, err
		}
	}

	if env.FallingStars {
		ext.FallingStars, err = fallingstars.NewController(att.Rand)
		if err != nil {
			return nil, err
		}
	}

	logger.Logf(logger.Allow, "extender", "attached to %s: %d pages, initial page %d",
		env.GameID, env.PageCount, env.InitialPage)

	return ext, nil
}

// Catalog returns the address catalog the extender was built for.
func (ext *Extender) Catalog() addresses.Catalog {
	return ext.cat
}

// Environment returns the environment the extender was built for.
func (ext *Extender) Environment() *environment.Environment {
	return ext.env
}

// The per-frame animation update hijacks. each runs the game's own scene
// animation first, then the page selector, exactly as the displaced call
// sites do.

// CalcAnmRace is the per-frame hijack for the race course selection screen.
func (ext *Extender) CalcAnmRace() error {
	ext.att.Scenes.CalcAnm(courseselect.Race)
	return ext.CourseSelect.Update(courseselect.Race)
}

// CalcAnmBattle is the per-frame hijack for the battle map selection
// screen.
func (ext *Extender) CalcAnmBattle() error {
	ext.att.Scenes.CalcAnm(courseselect.Battle)
	return ext.CourseSelect.Update(courseselect.Battle)
}

// CalcAnmLAN is the per-frame hijack for the LAN selection screen.
func (ext *Extender) CalcAnmLAN() error {
	ext.att.Scenes.CalcAnm(courseselect.LAN)
	return ext.CourseSelect.Update(courseselect.LAN)
}

// TitleScreenInit is the hijack for the game's title screen init. the
// course page is restored to the configured initial page if the
// environment asks for it
func (ext *Extender) TitleScreenInit() error {
	if !ext.env.ResetPageOnTitle {
		return nil
	}
	return ext.CourseSelect.ResetPage()
}

// LANPlayInit is the hijack for the LAN session init.
func (ext *Extender) LANPlayInit() error {
	if !ext.env.ResetPageOnLANStart {
		return nil
	}
	return ext.CourseSelect.ResetPage()
}

// IsTiltingCourse is the hijack for the course reset tilt query.
func (ext *Extender) IsTiltingCourse(courseID uint8) (bool, error) {
	return ext.CourseSelect.IsTiltingCourse(courseID)
}

// SpeedControl is the per-kart per-frame hijack displacing the game's
// speed control call. without the bouncy terrain feature the game's own
// routine runs unconditionally
func (ext *Extender) SpeedControl(slot int) error {
	if ext.Bounce == nil {
		if ext.att.Physics == nil {
			return nil
		}
		return ext.att.Physics.SpeedControl(slot)
	}
	return ext.Bounce.Update(slot)
}

// LoadCourseData is the hijack run as course data begins to load. it is
// the course lifecycle boundary: per-course state in every controller is
// reset here
func (ext *Extender) LoadCourseData() error {
	if ext.Bounce != nil {
		ext.Bounce.Reset()
	}
	if ext.Sections != nil {
		ext.Sections.ResetCount()
	}
	if ext.ItemBoxes != nil {
		return ext.ItemBoxes.ClearRolls()
	}
	return nil
}

// CountSectionPoint is the hijack run for each checkpoint as course data
// loads.
func (ext *Extender) CountSectionPoint(param uint16) {
	if ext.Sections == nil {
		return
	}
	ext.Sections.CountSectionPoint(param)
}

// OverrideTotalLapCount is the hijack for the course's lap count read.
func (ext *Extender) OverrideTotalLapCount(authored uint8) uint8 {
	if ext.Sections == nil {
		return authored
	}
	return ext.Sections.OverrideTotalLapCount(authored)
}

// CheckLap is the hijack run after the game's own sector-pass bookkeeping.
func (ext *Extender) CheckLap(slot int, sectorParam uint16) error {
	if ext.Sections == nil {
		return nil
	}
	return ext.Sections.CheckLap(slot, sectorParam)
}

// OnGPStart is the hijack run when the A button confirms a cup.
func (ext *Extender) OnGPStart() error {
	if ext.Cup == nil {
		return nil
	}
	return ext.Cup.OnGPStart()
}

// OnSetClrGPCourse is the hijack run after the game advances a grand prix
// to its next race.
func (ext *Extender) OnSetClrGPCourse() error {
	if ext.Cup == nil {
		return nil
	}
	return ext.Cup.OnSetClrGPCourse()
}

// GPCourseIndexForHUD is the hijack for the pre-race HUD course index
// read.
func (ext *Extender) GPCourseIndexForHUD(native uint8) (uint8, error) {
	if ext.Cup == nil {
		return native, nil
	}
	return ext.Cup.CourseIndexForHUD(native)
}

// AvailableRollingSlot is the hijack for the item box rolling-slot check.
func (ext *Extender) AvailableRollingSlot(player int, slot int, box itembox.Box) (bool, error) {
	if ext.ItemBoxes == nil {
		if ext.att.Shuffle == nil {
			return true, nil
		}
		return ext.att.Shuffle.IsAvailableRollingSlot(player, slot)
	}
	return ext.ItemBoxes.AvailableRollingSlot(player, slot, box)
}

// CalcItemSlot is the hijack for the item shuffle.
func (ext *Extender) CalcItemSlot(player int) (uint8, error) {
	if ext.ItemBoxes == nil {
		if ext.att.Shuffle == nil {
			return 0, errors.New("extender: no item shuffle surface")
		}
		return ext.att.Shuffle.CalcSlot(player)
	}
	return ext.ItemBoxes.CalcSlot(player)
}

// The ground query hijacks. with bouncy terrain enabled a triangle's
// splash value may be an impulse, which must not leak into the game's
// splash, thickness and stagger readings.

// SplashCode filters the splash value read by the splash height and splash
// identifier queries.
func (ext *Extender) SplashCode(terrain uint8, code uint32) uint32 {
	if ext.Bounce == nil {
		return code
	}
	return ext.Bounce.SplashCode(terrain, code)
}

// AddThickness filters the additional ground thickness read during ground
// position checks.
func (ext *Extender) AddThickness(terrain uint8, thickness float32) float32 {
	if ext.Bounce == nil {
		return thickness
	}
	return ext.Bounce.AddThickness(terrain, thickness)
}

// StaggerCode filters the stagger value read by the air check and the
// danger loop animation check.
func (ext *Extender) StaggerCode(terrain uint8, stagger uint32) uint32 {
	if ext.Bounce == nil {
		return stagger
	}
	return ext.Bounce.StaggerCode(terrain, stagger)
}

// ItemInvalidatingGround filters the ground query made when an item lands.
func (ext *Extender) ItemInvalidatingGround(terrain uint8, invalid bool) bool {
	if ext.Bounce == nil {
		return invalid
	}
	return ext.Bounce.ItemInvalidatingGround(terrain, invalid)
}

// ShouldDropItem is the hijack for the falling star drop roll.
func (ext *Extender) ShouldDropItem(obj fallingstars.Object) (bool, error) {
	if ext.FallingStars == nil {
		return false, errors.New("extender: falling stars not enabled")
	}
	return ext.FallingStars.ShouldDropItem(obj)
}

// OccurItemKind is the hijack for the falling star item spawn.
func (ext *Extender) OccurItemKind(obj fallingstars.Object) (uint8, error) {
	if ext.FallingStars == nil {
		return 0, errors.New("extender: falling stars not enabled")
	}
	return ext.FallingStars.OccurItemKind(obj)
}

// WantParticles is the hijack gating the falling star particle trail.
func (ext *Extender) WantParticles(obj fallingstars.Object) (bool, error) {
	if ext.FallingStars == nil {
		return true, nil
	}
	return ext.FallingStars.WantParticles(obj)
}

// WatchItem is the hijack gating the game's item watchman.
func (ext *Extender) WatchItem(owner int) bool {
	if ext.FallingStars == nil {
		return true
	}
	return ext.FallingStars.WatchItem(owner)
}
