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

package addresses_test

import (
	"testing"

	"github.com/jetsetilly/gopherkart/hostmem"
	"github.com/jetsetilly/gopherkart/hostmem/addresses"
	"github.com/jetsetilly/gopherkart/test"
)

func TestLookup(t *testing.T) {
	for _, id := range addresses.Builds() {
		c, err := addresses.Lookup(id)
		test.ExpectSuccess(t, err, id)
		test.ExpectEquality(t, c.ID, id)
	}

	_, err := addresses.Lookup("GM4X99")
	test.ExpectFailure(t, err)

	_, err = addresses.Lookup("")
	test.ExpectFailure(t, err)
}

func TestTableSizes(t *testing.T) {
	for _, id := range addresses.Builds() {
		c, err := addresses.Lookup(id)
		test.ExpectSuccess(t, err, id)

		test.ExpectEquality(t, len(c.LabelSlots), addresses.NumLabelSlots, id)
		test.ExpectEquality(t, len(c.BattleLabelSlots), addresses.NumBattleLabelSlots, id)
		test.ExpectEquality(t, len(c.MinimapSlots), addresses.NumMinimapSlots, id)
	}
}

func TestDerivedAddresses(t *testing.T) {
	for _, id := range addresses.Builds() {
		c, err := addresses.Lookup(id)
		test.ExpectSuccess(t, err, id)

		// the four extender bytes are consecutive
		test.ExpectEquality(t, c.CurrentPage(), c.SpamFlag+1, id)
		test.ExpectEquality(t, c.GPInitialPage(), c.SpamFlag+2, id)
		test.ExpectEquality(t, c.GPGlobalCourseIndex(), c.SpamFlag+3, id)

		// the course index follows the cup index in the sequence info
		test.ExpectEquality(t, c.GPCourseIndex, c.GPCupIndex+4, id)

		// the default bounce impulse follows the eight per-kart flag bytes
		test.ExpectEquality(t, c.BounceSplashDefault(), c.KartExtendedTerrainFlags+8, id)
	}
}

func TestAddressesInRAM(t *testing.T) {
	inRAM := func(t *testing.T, id string, address uint32) {
		t.Helper()
		if address < hostmem.OriginRAM || address > hostmem.MemtopRAM {
			t.Errorf("%s: address %08x is outside main memory", id, address)
		}
	}

	for _, id := range addresses.Builds() {
		c, err := addresses.Lookup(id)
		test.ExpectSuccess(t, err, id)

		for _, a := range []uint32{
			c.ButtonsState, c.AltButtonsState, c.RedrawCourseSelect,
			c.SpamFlag, c.PlayerItemRolls, c.CourseToStreamFileIndex,
			c.GameAudioMain, c.GPCupIndex, c.GPCourseIndex,
			c.GPAwardedScores, c.KartExtendedTerrainFlags,
			c.LAN.NextAppID(), c.LAN.AppIDChanged(), c.LAN.SkipNextDraw(),
			c.LAN.SubstateID(), c.LAN.MarkForDeletion(),
		} {
			inRAM(t, id, a)
		}

		for _, a := range c.LabelSlots {
			inRAM(t, id, a)
		}
		for _, a := range c.BattleLabelSlots {
			inRAM(t, id, a)
		}
		for _, m := range c.MinimapSlots {
			for _, a := range m.Coords {
				inRAM(t, id, a)
			}
			inRAM(t, id, m.Orientation)
			inRAM(t, id, m.OrientationImmediate())
		}
	}
}

func TestLANOffsets(t *testing.T) {
	ntsc, err := addresses.Lookup(addresses.GM4E01)
	test.ExpectSuccess(t, err)
	pal, err := addresses.Lookup(addresses.GM4P01)
	test.ExpectSuccess(t, err)
	jap, err := addresses.Lookup(addresses.GM4J01)
	test.ExpectSuccess(t, err)

	// the PAL build lays out the r13 block differently to the two NTSC-region
	// retail builds, which share their offsets
	test.ExpectEquality(t, jap.LAN.OffNextAppID, ntsc.LAN.OffNextAppID)
	test.ExpectEquality(t, jap.LAN.OffSubstateID, ntsc.LAN.OffSubstateID)
	test.ExpectInequality(t, pal.LAN.OffNextAppID, ntsc.LAN.OffNextAppID)
	test.ExpectInequality(t, pal.LAN.OffSubstateID, ntsc.LAN.OffSubstateID)

	// address methods subtract their offset from the base
	test.ExpectEquality(t, ntsc.LAN.NextAppID(), ntsc.LAN.Base-0x567c)
	test.ExpectEquality(t, ntsc.LAN.MarkForDeletion(), ntsc.LAN.Base-0x566c)
}

func TestLookupCopies(t *testing.T) {
	a, err := addresses.Lookup(addresses.GM4E01)
	test.ExpectSuccess(t, err)

	labelSlot := a.LabelSlots[0]
	coord := a.MinimapSlots[0].Coords[0]

	a.LabelSlots[0] = 0xdeadbeef
	a.BattleLabelSlots[0] = 0xdeadbeef
	a.MinimapSlots[0].Coords[0] = 0xdeadbeef

	b, err := addresses.Lookup(addresses.GM4E01)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b.LabelSlots[0], labelSlot)
	test.ExpectEquality(t, b.MinimapSlots[0].Coords[0], coord)
	test.ExpectInequality(t, b.BattleLabelSlots[0], 0xdeadbeef)
}
