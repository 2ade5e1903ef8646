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

// Package addresses catalogues the host memory locations that the extender
// reads and writes. The locations were recovered from the four supported
// builds of the game by reverse engineering and differ between builds, so
// there is one Catalog per build, selected at startup with the Lookup()
// function.
//
// Addresses fall into two groups. Scalars name a single variable in the
// game's static memory (the buttons state, the spam flag, the GP cup index,
// etc). Slices name repeated structures: one entry per course label string,
// or one MinimapSlot per course slot on the selection screen.
//
// A small number of locations are not stored explicitly because they are
// defined by their position relative to another location. Those are exposed
// as methods on Catalog (CurrentPage, GPInitialPage, etc) so the
// relationship is stated once.
package addresses

import (
	"github.com/pkg/errors"
)

// The four supported builds of the game.
const (
	GM4E01    = "GM4E01"    // NTSC-U retail
	GM4P01    = "GM4P01"    // PAL retail
	GM4J01    = "GM4J01"    // NTSC-J retail
	GM4E01dbg = "GM4E01dbg" // NTSC-U debug
)

// NumLabelSlots is the number of course label strings that carry a page
// digit in every build. NumBattleLabelSlots is the number of additional
// strings that only exist for the battle stages
const (
	NumLabelSlots       = 61
	NumBattleLabelSlots = 13
)

// NumMinimapSlots is the number of course slots with minimap data. The first
// sixteen are the racing courses, the remaining six are the battle stages
const NumMinimapSlots = 22

// MinimapSlot groups the addresses that position one course's minimap on
// screen. Coords are the addresses of the four float32 display coordinates.
// Orientation is the address of the "li" instruction whose immediate operand
// selects the minimap rotation
type MinimapSlot struct {
	Coords      [4]uint32
	Orientation uint32
}

// OrientationImmediate returns the address of the low byte of the "li"
// instruction's immediate operand. writing a single byte there changes the
// loaded value without touching the opcode
func (m MinimapSlot) OrientationImmediate() uint32 {
	return m.Orientation + 3
}

// LANSelect describes the block of fields, addressed relative to the r13
// small-data base, that the LAN SELECT MODE screen is driven by. the field
// names follow the behaviour observed in the game's application manager:
// requesting the next app redraws the screen
type LANSelect struct {
	Base uint32

	// offsets are subtracted from Base
	OffNextAppID       uint32 // int: ID of the app to switch to
	OffAppIDChanged    uint32 // byte: app ID has changed
	OffSkipNextDraw    uint32 // byte: skip the next draw call
	OffSubstateID      uint32 // byte: 0 is the SELECT MODE screen
	OffMarkForDeletion uint32 // word: bit 0 marks the current app for deletion
}

// NextAppID is the address of the ID of the app to switch to.
func (l LANSelect) NextAppID() uint32 { return l.Base - l.OffNextAppID }

// AppIDChanged is the address of the flag indicating the app ID has changed.
func (l LANSelect) AppIDChanged() uint32 { return l.Base - l.OffAppIDChanged }

// SkipNextDraw is the address of the flag that skips the next draw call.
func (l LANSelect) SkipNextDraw() uint32 { return l.Base - l.OffSkipNextDraw }

// SubstateID is the address of the LAN menu substate.
func (l LANSelect) SubstateID() uint32 { return l.Base - l.OffSubstateID }

// MarkForDeletion is the address of the word whose lowest bit marks the
// current app for deletion.
func (l LANSelect) MarkForDeletion() uint32 { return l.Base - l.OffMarkForDeletion }

// Catalog is the complete address table for one build of the game. the zero
// value is not usable: acquire a Catalog with Lookup()
type Catalog struct {
	// the build this catalog describes. one of the GM4* constant values
	ID string

	// course selection screen
	ButtonsState       uint32 // uint16: button bits for player one
	AltButtonsState    uint32 // uint8: reduced pad structure used by LAN mode
	RedrawCourseSelect uint32 // float32: countdown forcing a screen redraw
	SpamFlag           uint32 // uint8: page change debounce counter

	// item boxes
	PlayerItemRolls uint32 // uint8 per kart: forced item roll, 0xff when unset

	// audio
	CourseToStreamFileIndex uint32 // uint32 per course slot: music stream index
	GameAudioMain           uint32 // pointer to the game audio singleton

	// grand prix sequence
	GPCupIndex      uint32 // uint8: cup being played
	GPCourseIndex   uint32 // uint8: race number within the cup
	GPAwardedScores uint32 // uint32 per rank: points awarded at race end

	// bounce terrain
	KartExtendedTerrainFlags uint32 // uint8 per kart: bounce episode flags

	LAN LANSelect

	// address of the page digit character within each course label string
	LabelSlots       []uint32
	BattleLabelSlots []uint32

	// minimap display data per course slot, in course slot order
	MinimapSlots []MinimapSlot
}

// CurrentPage is the address of the byte holding the course page currently
// in effect. it occupies the byte immediately after the spam flag
func (c Catalog) CurrentPage() uint32 { return c.SpamFlag + 1 }

// GPInitialPage is the address of the byte recording the course page that
// was selected when an extender cup was started
func (c Catalog) GPInitialPage() uint32 { return c.SpamFlag + 2 }

// GPGlobalCourseIndex is the address of the byte counting races across the
// whole of an extender cup, as opposed to the per-cup count kept by the game
func (c Catalog) GPGlobalCourseIndex() uint32 { return c.SpamFlag + 3 }

// BounceSplashDefault is the address of the word holding the bounce impulse
// used for terrain whose splash code carries no impulse of its own. it sits
// after the eight per-kart terrain flag bytes
func (c Catalog) BounceSplashDefault() uint32 { return c.KartExtendedTerrainFlags + 8 }

// Builds returns the IDs of the supported builds in a stable order.
func Builds() []string {
	return []string{GM4E01, GM4P01, GM4J01, GM4E01dbg}
}

// Lookup returns the address catalog for the named build. the returned
// Catalog is a copy: mutating it, or the slices it carries, does not affect
// the canonical tables
func Lookup(id string) (Catalog, error) {
	c, ok := catalogs[id]
	if !ok {
		return Catalog{}, errors.Errorf("addresses: unsupported game ID: %s", id)
	}

	c.LabelSlots = append([]uint32(nil), c.LabelSlots...)
	c.BattleLabelSlots = append([]uint32(nil), c.BattleLabelSlots...)
	c.MinimapSlots = append([]MinimapSlot(nil), c.MinimapSlots...)

	return c, nil
}
