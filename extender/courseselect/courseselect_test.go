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

package courseselect_test

import (
	"testing"

	"github.com/jetsetilly/gopherkart/environment"
	"github.com/jetsetilly/gopherkart/extender/courseselect"
	"github.com/jetsetilly/gopherkart/hostmem"
	"github.com/jetsetilly/gopherkart/hostmem/addresses"
	"github.com/jetsetilly/gopherkart/test"
)

// mockAudio records every system sound effect request
type mockAudio struct {
	main uint32
	cues []uint32
}

func (a *mockAudio) StartSystemSE(main uint32, cue uint32) {
	a.main = main
	a.cues = append(a.cues, cue)
}

// mockMapSelect records the battle screen refresh calls
type mockMapSelect struct {
	resets int
	inits  int
}

func (m *mockMapSelect) Reset() { m.resets++ }
func (m *mockMapSelect) Init()  { m.inits++ }

// testPageData builds page data in which every value encodes the page and
// slot it belongs to, so a test can tell which page's content reached memory
func testPageData(pages int, slots int) courseselect.PageData {
	var d courseselect.PageData
	for p := 0; p < pages; p++ {
		coords := make([][4]float32, slots)
		orient := make([]uint8, slots)
		for s := 0; s < slots; s++ {
			for j := 0; j < 4; j++ {
				coords[s][j] = float32(p*1000 + s*10 + j)
			}
			orient[s] = uint8((p + s) % 4)
		}

		var audio [32]uint8
		for i := range audio {
			audio[i] = uint8(p*32 + i)
		}

		d.Coordinates = append(d.Coordinates, coords)
		d.Orientations = append(d.Orientations, orient)
		d.AudioIndexes = append(d.AudioIndexes, audio)
		d.TiltSets = append(d.TiltSets, []uint8{courseselect.TiltAKartCourseID, uint8(0x60 + p)})
	}
	return d
}

type selectorTest struct {
	sel    *courseselect.Selector
	ram    *hostmem.RAM
	cat    addresses.Catalog
	data   courseselect.PageData
	audio  *mockAudio
	mapsel *mockMapSelect
}

// startSelector assembles a selector over fresh RAM for the given
// environment
func startSelector(t *testing.T, env *environment.Environment) *selectorTest {
	t.Helper()

	cat, err := addresses.Lookup(env.GameID)
	test.ExpectSuccess(t, err)

	st := &selectorTest{
		ram:    hostmem.NewRAM(hostmem.OriginRAM, 0x00600000),
		cat:    cat,
		audio:  &mockAudio{},
		mapsel: &mockMapSelect{},
	}

	slots := 16
	if env.BattleStages {
		slots = addresses.NumMinimapSlots
	}
	st.data = testPageData(env.PageCount, slots)

	st.sel, err = courseselect.NewSelector(env, cat, st.ram, st.ram, st.data, st.audio, st.mapsel)
	test.ExpectSuccess(t, err)

	return st
}

// frame writes a pad word and runs one frame of the selector
func (st *selectorTest) frame(t *testing.T, mode courseselect.Mode, buttons uint16) {
	t.Helper()
	test.ExpectSuccess(t, st.ram.Write16(st.cat.ButtonsState, buttons))
	test.ExpectSuccess(t, st.sel.Update(mode))
}

func (st *selectorTest) page(t *testing.T) int {
	t.Helper()
	p, err := st.sel.Page()
	test.ExpectSuccess(t, err)
	return p
}

func TestDebounce(t *testing.T) {
	env := environment.DefaultEnvironment("test")
	env.PageCount = 6
	st := startSelector(t, env)

	// hold the next-page button for one hundred frames, noting the frame of
	// every page change
	var changes []int
	prev := st.page(t)
	for frame := 0; frame < 100; frame++ {
		st.frame(t, courseselect.Race, courseselect.ButtonDPadDown)
		if p := st.page(t); p != prev {
			changes = append(changes, frame)
			prev = p
		}
	}

	// an immediate change, another after the first debounce period and then
	// one every repeat period
	expected := []int{0, 30, 40, 50, 60, 70, 80, 90}
	test.ExpectEquality(t, len(changes), len(expected))
	for i := range expected {
		test.ExpectEquality(t, changes[i], expected[i], i)
	}
	test.ExpectEquality(t, prev, len(expected)%env.PageCount)

	// every change played the page change cue through the audio manager
	test.ExpectEquality(t, len(st.audio.cues), len(expected))
	for _, cue := range st.audio.cues {
		test.ExpectEquality(t, cue, courseselect.PageChangeCue)
	}
	test.ExpectEquality(t, st.audio.main, st.cat.GameAudioMain)

	// releasing the button resets the debounce. the next press takes effect
	// immediately
	st.frame(t, courseselect.Race, 0)
	st.frame(t, courseselect.Race, courseselect.ButtonDPadDown)
	test.ExpectEquality(t, st.page(t), (len(expected)+1)%env.PageCount)
}

func TestWraparound(t *testing.T) {
	env := environment.DefaultEnvironment("test")
	env.PageCount = 4
	st := startSelector(t, env)

	// previous-page from page zero wraps to the last page
	st.frame(t, courseselect.Race, courseselect.ButtonDPadUp)
	test.ExpectEquality(t, st.page(t), 3)

	// next-page from the last page wraps back to zero
	st.frame(t, courseselect.Race, 0)
	st.frame(t, courseselect.Race, courseselect.ButtonDPadDown)
	test.ExpectEquality(t, st.page(t), 0)

	// next-page wins when both directions are held
	st.frame(t, courseselect.Race, 0)
	st.frame(t, courseselect.Race, courseselect.ButtonDPadUp|courseselect.ButtonDPadDown)
	test.ExpectEquality(t, st.page(t), 1)
}

func TestRedrawDelay(t *testing.T) {
	env := environment.DefaultEnvironment("test")
	st := startSelector(t, env)

	// idle and held frames write different delays for the course select
	// renderer
	st.frame(t, courseselect.Race, 0)
	f, err := st.ram.ReadF32(st.cat.RedrawCourseSelect)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, f, float32(13.0))

	st.frame(t, courseselect.Race, courseselect.ButtonDPadDown)
	f, err = st.ram.ReadF32(st.cat.RedrawCourseSelect)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, f, float32(10.0))

	// the delay is owned by the race screen renderer. the other screens
	// leave it alone
	test.ExpectSuccess(t, st.ram.WriteF32(st.cat.RedrawCourseSelect, 99))
	st.frame(t, courseselect.Battle, courseselect.ButtonDPadDown)
	st.frame(t, courseselect.LAN, 0)
	f, err = st.ram.ReadF32(st.cat.RedrawCourseSelect)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, f, float32(99))
}

func TestSetPageFanOut(t *testing.T) {
	env := environment.DefaultEnvironment("test")
	env.PageCount = 3
	env.BattleStages = true
	st := startSelector(t, env)

	test.ExpectSuccess(t, st.sel.SetPage(2))

	// the page byte
	b, err := st.ram.Read8(st.cat.CurrentPage())
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, uint8(2))

	// every course label shows the page digit
	for _, addr := range st.cat.LabelSlots {
		b, err := st.ram.Read8(addr)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, b, uint8('2'), addr)
	}
	for _, addr := range st.cat.BattleLabelSlots {
		b, err := st.ram.Read8(addr)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, b, uint8('2'), addr)
	}

	// minimap coordinates and orientations for every course slot
	for s, slot := range st.cat.MinimapSlots {
		for j, addr := range slot.Coords {
			f, err := st.ram.ReadF32(addr)
			test.ExpectSuccess(t, err)
			test.ExpectEquality(t, f, st.data.Coordinates[2][s][j], s, j)
		}
		b, err := st.ram.Read8(slot.OrientationImmediate())
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, b, st.data.Orientations[2][s], s)
	}

	// the course-to-audio-stream table. every entry is widened to a word
	for i := range st.data.AudioIndexes[2] {
		w, err := st.ram.Read32(st.cat.CourseToStreamFileIndex + uint32(i)*4)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, w, uint32(st.data.AudioIndexes[2][i]), i)
	}

	// a direct page set is silent and leaves the debounce state alone
	test.ExpectEquality(t, len(st.audio.cues), 0)
	spam, err := st.ram.Read8(st.cat.SpamFlag)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, spam, uint8(0))

	// out of range pages are rejected
	test.ExpectFailure(t, st.sel.SetPage(3))
	test.ExpectFailure(t, st.sel.SetPage(-1))
}

func TestPatchedOrientations(t *testing.T) {
	env := environment.DefaultEnvironment("test")
	env.PatchedOrientations = true
	st := startSelector(t, env)

	// seed the sixteen displaced load instructions. li r3, 0
	for _, slot := range st.cat.MinimapSlots[:16] {
		test.ExpectSuccess(t, st.ram.Write32(slot.Orientation, 0x38600000))
	}

	test.ExpectSuccess(t, st.sel.SetPage(1))

	// the immediate operand of each instruction carries the orientation
	for s, slot := range st.cat.MinimapSlots[:16] {
		w, err := st.ram.Read32(slot.Orientation)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, w, 0x38600000|uint32(st.data.Orientations[1][s]), s)
	}

	// no patched instruction is left outside an instruction cache sync
	test.ExpectEquality(t, len(st.ram.UnsyncedCode()), 0)
	test.ExpectEquality(t, len(st.ram.Syncs()), 16)
}

func TestBattleRefresh(t *testing.T) {
	env := environment.DefaultEnvironment("test")
	env.BattleStages = true
	st := startSelector(t, env)

	// a page change on the battle screen restarts the map select animation
	// and replays the init sequence in full
	st.frame(t, courseselect.Battle, courseselect.ButtonDPadDown)
	test.ExpectEquality(t, st.page(t), 1)
	test.ExpectEquality(t, st.mapsel.resets, 1)
	test.ExpectEquality(t, st.mapsel.inits, 16)

	// held frames between changes leave the screen alone
	st.frame(t, courseselect.Battle, courseselect.ButtonDPadDown)
	test.ExpectEquality(t, st.mapsel.resets, 1)
	test.ExpectEquality(t, st.mapsel.inits, 16)
}

func TestLANRefresh(t *testing.T) {
	env := environment.DefaultEnvironment("test")
	st := startSelector(t, env)

	lan := st.cat.LAN
	test.ExpectSuccess(t, st.ram.Write32(lan.MarkForDeletion(), 0x100))
	test.ExpectSuccess(t, st.ram.Write8(lan.SubstateID(), 3))

	st.frame(t, courseselect.LAN, courseselect.ButtonDPadDown)
	test.ExpectEquality(t, st.page(t), 1)

	// the LAN menus only repaint when the application manager is asked for
	// the next app: the menu app is queued, the change flagged, the stale
	// draw skipped and the substate forced back to SELECT MODE
	w, err := st.ram.Read32(lan.NextAppID())
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w, uint32(0x0b))

	b, err := st.ram.Read8(lan.AppIDChanged())
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, uint8(1))

	b, err = st.ram.Read8(lan.SkipNextDraw())
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, uint8(1))

	b, err = st.ram.Read8(lan.SubstateID())
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, uint8(0))

	// the deletion mark is ORed over the existing word
	w, err = st.ram.Read32(lan.MarkForDeletion())
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w, uint32(0x101))
}

func TestAltButtons(t *testing.T) {
	env := environment.DefaultEnvironment("test")
	env.PageCount = 4
	env.AltButtons = true
	st := startSelector(t, env)

	// Y selects the previous page, X the next
	st.frame(t, courseselect.Race, courseselect.ButtonY)
	test.ExpectEquality(t, st.page(t), 3)

	// the D-pad is inert in alternative buttons builds
	st.frame(t, courseselect.Race, courseselect.ButtonDPadUp|courseselect.ButtonDPadDown)
	test.ExpectEquality(t, st.page(t), 3)

	st.frame(t, courseselect.Race, courseselect.ButtonX)
	test.ExpectEquality(t, st.page(t), 0)

	// the LAN menus do not maintain the full pad word so the reduced one
	// byte structure is read instead
	test.ExpectSuccess(t, st.ram.Write16(st.cat.ButtonsState, 0))
	test.ExpectSuccess(t, st.ram.Write8(st.cat.AltButtonsState, 0))
	test.ExpectSuccess(t, st.sel.Update(courseselect.LAN))

	test.ExpectSuccess(t, st.ram.Write8(st.cat.AltButtonsState, courseselect.LANButtonY))
	test.ExpectSuccess(t, st.sel.Update(courseselect.LAN))
	test.ExpectEquality(t, st.page(t), 3)
}

func TestSinglePage(t *testing.T) {
	env := environment.DefaultEnvironment("test")
	env.PageCount = 1

	cat, err := addresses.Lookup(env.GameID)
	test.ExpectSuccess(t, err)
	ram := hostmem.NewRAM(hostmem.OriginRAM, 0x00600000)

	// with a single page there is nothing to select: no collaborators and
	// no page data are required
	sel, err := courseselect.NewSelector(env, cat, ram, nil, courseselect.PageData{}, nil, nil)
	test.ExpectSuccess(t, err)

	test.ExpectSuccess(t, ram.Write16(cat.ButtonsState, courseselect.ButtonDPadDown))
	test.ExpectSuccess(t, sel.Update(courseselect.Race))

	p, err := sel.Page()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, 0)

	// direct page sets are inert rather than an error
	test.ExpectSuccess(t, sel.SetPage(0))
	test.ExpectSuccess(t, sel.SetPage(5))
}

func TestNewSelectorValidation(t *testing.T) {
	env := environment.DefaultEnvironment("test")
	cat, err := addresses.Lookup(env.GameID)
	test.ExpectSuccess(t, err)
	ram := hostmem.NewRAM(hostmem.OriginRAM, 0x00600000)
	data := testPageData(env.PageCount, 16)

	// no audio manager
	_, err = courseselect.NewSelector(env, cat, ram, ram, data, nil, &mockMapSelect{})
	test.ExpectFailure(t, err)

	// battle stages need the map select screen
	env.BattleStages = true
	_, err = courseselect.NewSelector(env, cat, ram, ram,
		testPageData(env.PageCount, addresses.NumMinimapSlots), &mockAudio{}, nil)
	test.ExpectFailure(t, err)
	env.BattleStages = false

	// patched orientations need code memory
	env.PatchedOrientations = true
	_, err = courseselect.NewSelector(env, cat, ram, nil, data, &mockAudio{}, &mockMapSelect{})
	test.ExpectFailure(t, err)
	env.PatchedOrientations = false

	// page data must cover every page
	_, err = courseselect.NewSelector(env, cat, ram, ram,
		testPageData(env.PageCount-1, 16), &mockAudio{}, &mockMapSelect{})
	test.ExpectFailure(t, err)

	// and every course slot
	env.BattleStages = true
	_, err = courseselect.NewSelector(env, cat, ram, ram,
		testPageData(env.PageCount, 16), &mockAudio{}, &mockMapSelect{})
	test.ExpectFailure(t, err)
}

func TestResetPage(t *testing.T) {
	env := environment.DefaultEnvironment("test")
	env.PageCount = 5
	env.InitialPage = 2
	st := startSelector(t, env)

	test.ExpectSuccess(t, st.sel.SetPage(4))
	test.ExpectSuccess(t, st.sel.ResetPage())
	test.ExpectEquality(t, st.page(t), 2)
	test.ExpectEquality(t, len(st.audio.cues), 0)
}

func TestIsTiltingCourse(t *testing.T) {
	// without the tilt features only the one stock battle stage tilts,
	// whatever the page
	env := environment.DefaultEnvironment("test")
	st := startSelector(t, env)

	tilt, err := st.sel.IsTiltingCourse(courseselect.TiltAKartCourseID)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, tilt, true)

	tilt, err = st.sel.IsTiltingCourse(0x24)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, tilt, false)

	// with the tilting courses feature the answer comes from the current
	// page's tilt set
	env = environment.DefaultEnvironment("test")
	env.TiltingCourses = true
	st = startSelector(t, env)

	tilt, err = st.sel.IsTiltingCourse(0x60)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, tilt, true)

	tilt, err = st.sel.IsTiltingCourse(0x61)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, tilt, false)

	test.ExpectSuccess(t, st.sel.SetPage(1))
	tilt, err = st.sel.IsTiltingCourse(0x61)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, tilt, true)

	// the stock battle stage keeps tilting when listed by the page
	tilt, err = st.sel.IsTiltingCourse(courseselect.TiltAKartCourseID)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, tilt, true)
}
