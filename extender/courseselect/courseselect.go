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

// Package courseselect implements the course page selector. The game's
// selection screens show a fixed set of course slots; the selector cycles a
// page index in response to directional input and rewrites every view of
// the selection that the game derives from the slots: the digit in the
// course label strings, the minimap coordinates and orientations, and the
// course-to-audio-stream mapping.
//
// The selector runs once per frame for whichever selection screen is
// active, immediately after the screen's own animation update. Input is
// debounced with the spam flag so that a held direction produces a page
// change roughly twice a second rather than one per frame.
package courseselect

import (
	"github.com/jetsetilly/gopherkart/environment"
	"github.com/jetsetilly/gopherkart/hostmem"
	"github.com/jetsetilly/gopherkart/hostmem/addresses"
	"github.com/pkg/errors"
)

// Mode identifies which selection screen the selector is updating for.
type Mode int

// The three selection screens with a page selector.
const (
	Race Mode = iota
	Battle
	LAN
)

func (m Mode) String() string {
	switch m {
	case Race:
		return "course select"
	case Battle:
		return "map select"
	case LAN:
		return "LAN select"
	}
	return "unknown"
}

// Button bits in the 16-bit pad word.
const (
	ButtonDPadDown = uint16(0x0004)
	ButtonDPadUp   = uint16(0x0008)
	ButtonX        = uint16(0x0400)
	ButtonY        = uint16(0x0800)
)

// Button bits in the reduced 1-byte pad structure used by the LAN menus.
const (
	LANButtonX = uint8(0x04)
	LANButtonY = uint8(0x08)
)

// PageChangeCue is the system sound effect played on an accepted page
// change. it is the same cue the game plays when navigating cups
const PageChangeCue = uint32(0x0002000c)

// debounce values for the spam flag. a fresh press waits longer before
// repeating than a held one
const (
	debounceFirst  = 30
	debounceRepeat = 10
)

// values for the redraw-delay float consumed by the course select renderer.
const (
	redrawHeld = float32(10.0)
	redrawIdle = float32(13.0)
)

// the number of frames of the map select init sequence replayed after a
// page change on the battle screen
const mapSelectInitFrames = 16

// Audio is the surface of the game's audio manager used by the selector.
type Audio interface {
	// StartSystemSE plays a system sound effect. main is the address of the
	// game audio singleton
	StartSystemSE(main uint32, cue uint32)
}

// MapSelect is the surface of the battle map select screen used by the
// selector. changing page mid-animation leaves the screen stale, so the
// selector resets it and replays its init sequence
type MapSelect interface {
	Reset()
	Init()
}

// Selector is the course page selector. Create with NewSelector()
type Selector struct {
	env  *environment.Environment
	cat  addresses.Catalog
	mem  hostmem.Memory
	code hostmem.CodeMemory
	data PageData

	audio  Audio
	mapsel MapSelect

	// number of course slots the fan-out touches
	slots int
}

// NewSelector is the preferred method of initialisation for the Selector
// type. code is only dereferenced when the environment selects patched
// orientations. mapsel is only dereferenced on the battle screen
func NewSelector(env *environment.Environment, cat addresses.Catalog,
	mem hostmem.Memory, code hostmem.CodeMemory,
	data PageData, audio Audio, mapsel MapSelect) (*Selector, error) {

	sel := &Selector{
		env:    env,
		cat:    cat,
		mem:    mem,
		code:   code,
		data:   data,
		audio:  audio,
		mapsel: mapsel,
		slots:  16,
	}

	if env.BattleStages {
		sel.slots = addresses.NumMinimapSlots
	}

	// a single page means there is nothing to select and the page data is
	// never indexed
	if env.PageCount <= 1 {
		return sel, nil
	}

	if audio == nil {
		return nil, errors.New("courseselect: no audio manager")
	}
	if env.BattleStages && mapsel == nil {
		return nil, errors.New("courseselect: battle stages require the map select screen")
	}
	if env.PatchedOrientations && code == nil {
		return nil, errors.New("courseselect: patched orientations require code memory")
	}

	tilt := env.TiltingCourses || env.BattleStages
	if err := data.validate(env.PageCount, sel.slots, tilt); err != nil {
		return nil, err
	}

	return sel, nil
}

// Page returns the course page currently in effect.
func (sel *Selector) Page() (int, error) {
	p, err := sel.mem.Read8(sel.cat.CurrentPage())
	return int(p), err
}

// Update processes one frame of directional input for the named selection
// screen. it must be called after the screen's own animation update
func (sel *Selector) Update(mode Mode) error {
	if sel.env.PageCount <= 1 {
		return nil
	}

	up, down, err := sel.readDirections(mode)
	if err != nil {
		return err
	}

	if !up && !down {
		if err := sel.mem.Write8(sel.cat.SpamFlag, 0); err != nil {
			return err
		}
		return sel.writeRedraw(mode, redrawIdle)
	}

	spam, err := sel.mem.Read8(sel.cat.SpamFlag)
	if err != nil {
		return err
	}

	if spam <= 1 {
		next := uint8(debounceFirst)
		if spam != 0 {
			next = debounceRepeat
		}

		// down wins if both directions are held
		delta := -1
		if down {
			delta = 1
		}

		if err := sel.changePage(mode, delta); err != nil {
			return err
		}

		spam = next
	} else {
		spam--
	}

	if err := sel.mem.Write8(sel.cat.SpamFlag, spam); err != nil {
		return err
	}
	return sel.writeRedraw(mode, redrawHeld)
}

// readDirections returns the state of the previous/next page inputs for the
// given screen. builds with alternative buttons use Y and X in place of the
// D-pad; in the LAN menus the full pad word is not maintained by the game so
// the reduced 1-byte structure is read instead
func (sel *Selector) readDirections(mode Mode) (up bool, down bool, err error) {
	if sel.env.AltButtons {
		if mode == LAN {
			b, err := sel.mem.Read8(sel.cat.AltButtonsState)
			if err != nil {
				return false, false, err
			}
			return b&LANButtonY != 0, b&LANButtonX != 0, nil
		}

		b, err := sel.mem.Read16(sel.cat.ButtonsState)
		if err != nil {
			return false, false, err
		}
		return b&ButtonY != 0, b&ButtonX != 0, nil
	}

	b, err := sel.mem.Read16(sel.cat.ButtonsState)
	if err != nil {
		return false, false, err
	}
	return b&ButtonDPadUp != 0, b&ButtonDPadDown != 0, nil
}

// the redraw-delay float is only consumed by the race course select
// renderer. the original wrote it unconditionally to save a branch; there
// is no such cost here
func (sel *Selector) writeRedraw(mode Mode, value float32) error {
	if mode != Race {
		return nil
	}
	return sel.mem.WriteF32(sel.cat.RedrawCourseSelect, value)
}

// changePage moves the page by delta and performs the mode-specific
// screen refresh. the sound cue plays on every accepted change
func (sel *Selector) changePage(mode Mode, delta int) error {
	page, err := sel.Page()
	if err != nil {
		return err
	}

	page = (page + delta + sel.env.PageCount) % sel.env.PageCount

	sel.audio.StartSystemSE(sel.cat.GameAudioMain, PageChangeCue)

	if err := sel.SetPage(page); err != nil {
		return err
	}

	switch mode {
	case LAN:
		return sel.refreshLANSelect()
	case Battle:
		// the map select screen animates its slots in over several frames;
		// restart the animation and run it to completion so the new page is
		// fully presented on the next draw
		sel.mapsel.Reset()
		for i := 0; i < mapSelectInitFrames; i++ {
			sel.mapsel.Init()
		}
	}

	return nil
}

// SetPage writes the page byte and refreshes every fan-out view: label
// digits, minimap coordinates and orientations, and the audio stream
// mapping. no sound is played and the debounce state is not touched.
//
// SetPage completes synchronously: all views read the new page's values
// before the host draws another frame
func (sel *Selector) SetPage(page int) error {
	if sel.env.PageCount <= 1 {
		return nil
	}
	if page < 0 || page >= sel.env.PageCount {
		return errors.Errorf("courseselect: page out of range: %d", page)
	}

	if err := sel.mem.Write8(sel.cat.CurrentPage(), uint8(page)); err != nil {
		return err
	}

	suffix := uint8('0' + page)
	for _, addr := range sel.cat.LabelSlots {
		if err := sel.mem.Write8(addr, suffix); err != nil {
			return err
		}
	}
	if sel.env.BattleStages {
		for _, addr := range sel.cat.BattleLabelSlots {
			if err := sel.mem.Write8(addr, suffix); err != nil {
				return err
			}
		}
	}

	for i := 0; i < sel.slots; i++ {
		slot := sel.cat.MinimapSlots[i]

		coords := sel.data.Coordinates[page][i]
		for j, addr := range slot.Coords {
			if err := sel.mem.WriteF32(addr, coords[j]); err != nil {
				return err
			}
		}

		if err := sel.writeOrientation(slot, sel.data.Orientations[page][i]); err != nil {
			return err
		}
	}

	audio := sel.data.AudioIndexes[page]
	for i := 0; i < len(audio); i++ {
		addr := sel.cat.CourseToStreamFileIndex + uint32(i)*4
		if err := sel.mem.Write32(addr, uint32(audio[i])); err != nil {
			return err
		}
	}

	return nil
}

// writeOrientation delivers one course slot's minimap orientation. in the
// patched variant the byte is the immediate operand of a load instruction:
// the write is self-modifying code and the instruction cache must be
// resynchronized before the instruction next executes
func (sel *Selector) writeOrientation(slot addresses.MinimapSlot, orientation uint8) error {
	if !sel.env.PatchedOrientations {
		return sel.mem.Write8(slot.OrientationImmediate(), orientation)
	}

	instr, err := sel.mem.Read32(slot.Orientation)
	if err != nil {
		return err
	}
	instr = (instr &^ 0xff) | uint32(orientation)

	if err := sel.code.WriteCode(slot.Orientation, instr); err != nil {
		return err
	}
	return sel.code.SyncICache(slot.Orientation, 4)
}

// ResetPage restores the configured initial page and refreshes the fan-out
// views. used by the title screen and LAN session init hooks
func (sel *Selector) ResetPage() error {
	return sel.SetPage(sel.env.InitialPage)
}

// refreshLANSelect forces the LAN menus to redraw. the game only repaints
// them when the application manager is asked for the next app, so the
// selector replays the tail of that request: queue the LAN menu app, flag
// the change, skip the stale draw, force the SELECT MODE substate and mark
// the current app for deletion
func (sel *Selector) refreshLANSelect() error {
	lan := sel.cat.LAN

	if err := sel.mem.Write32(lan.NextAppID(), lanMenuAppID); err != nil {
		return err
	}
	if err := sel.mem.Write8(lan.AppIDChanged(), 1); err != nil {
		return err
	}
	if err := sel.mem.Write8(lan.SkipNextDraw(), 1); err != nil {
		return err
	}
	if err := sel.mem.Write8(lan.SubstateID(), 0); err != nil {
		return err
	}

	w, err := sel.mem.Read32(lan.MarkForDeletion())
	if err != nil {
		return err
	}
	return sel.mem.Write32(lan.MarkForDeletion(), w|0x1)
}

// the application ID of the LAN menus in the game's application manager.
const lanMenuAppID = uint32(0x0b)

// IsTiltingCourse returns true if the course tilts the kart camera. without
// the tilt features only the one stock battle stage tilts; with them the
// answer comes from the current page's tilt set
func (sel *Selector) IsTiltingCourse(courseID uint8) (bool, error) {
	if !sel.env.TiltingCourses && !sel.env.BattleStages {
		return courseID == TiltAKartCourseID, nil
	}
	if sel.env.PageCount <= 1 {
		return courseID == TiltAKartCourseID, nil
	}

	page, err := sel.Page()
	if err != nil {
		return false, err
	}
	if page < 0 || page >= len(sel.data.TiltSets) {
		return false, errors.Errorf("courseselect: current page out of range: %d", page)
	}

	for _, id := range sel.data.TiltSets[page] {
		if id == courseID {
			return true, nil
		}
	}
	return false, nil
}
