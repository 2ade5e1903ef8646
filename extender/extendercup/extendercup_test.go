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

package extendercup_test

import (
	"testing"

	"github.com/jetsetilly/gopherkart/environment"
	"github.com/jetsetilly/gopherkart/extender/extendercup"
	"github.com/jetsetilly/gopherkart/hostmem"
	"github.com/jetsetilly/gopherkart/hostmem/addresses"
	"github.com/jetsetilly/gopherkart/test"
)

// mockPages stands in for the course page selector. SetPage is recorded but
// the fan-out is not simulated
type mockPages struct {
	page    int
	changes []int
}

func (p *mockPages) Page() (int, error) {
	return p.page, nil
}

func (p *mockPages) SetPage(page int) error {
	p.page = page
	p.changes = append(p.changes, page)
	return nil
}

type cupTest struct {
	env   *environment.Environment
	cup   *extendercup.Cup
	ram   *hostmem.RAM
	cat   addresses.Catalog
	pages *mockPages
}

func startCup(t *testing.T, pageCount int, initialPage int) *cupTest {
	t.Helper()

	env := environment.DefaultEnvironment("test")
	env.PageCount = pageCount
	env.InitialPage = initialPage
	env.ExtenderCup = true
	test.DemandSuccess(t, env.Validate())

	cat, err := addresses.Lookup(env.GameID)
	test.DemandSuccess(t, err)

	ct := &cupTest{
		env:   env,
		ram:   hostmem.NewRAM(hostmem.OriginRAM, 0x00600000),
		cat:   cat,
		pages: &mockPages{page: initialPage},
	}

	ct.cup, err = extendercup.NewCup(env, cat, ct.ram, ct.pages)
	test.DemandSuccess(t, err)

	return ct
}

func (ct *cupTest) selectCup(t *testing.T, cup uint8) {
	t.Helper()
	test.ExpectSuccess(t, ct.ram.Write8(ct.cat.GPCupIndex, cup))
}

// race simulates the game's own sequencing advancing to the next race,
// followed by the hijacked tail of setClrGPCourse
func (ct *cupTest) race(t *testing.T) {
	t.Helper()

	course, err := ct.ram.Read8(ct.cat.GPCourseIndex)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ct.ram.Write8(ct.cat.GPCourseIndex, course+1))

	test.ExpectSuccess(t, ct.cup.OnSetClrGPCourse())
}

func TestGPStart(t *testing.T) {
	ct := startCup(t, 8, 2)
	ct.selectCup(t, extendercup.AllCupTourIndex)

	// the page the tour starts on is whatever the selector is showing
	ct.pages.page = 5

	test.ExpectSuccess(t, ct.cup.OnGPStart())

	initial, err := ct.ram.Read8(ct.cat.GPInitialPage())
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, initial, 5)

	global, err := ct.ram.Read8(ct.cat.GPGlobalCourseIndex())
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, global, 0)

	// the limited score table is in place
	scores := extendercup.Scores(true)
	for i, s := range scores {
		v, err := ct.ram.Read32(ct.cat.GPAwardedScores + uint32(i)*4)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, v, s, "score", i)
	}
}

func TestGPStartOrdinaryCup(t *testing.T) {
	ct := startCup(t, 8, 0)
	ct.selectCup(t, 1)

	test.ExpectSuccess(t, ct.cup.OnGPStart())

	// an ordinary cup keeps the game's own score table
	scores := extendercup.Scores(false)
	for i, s := range scores {
		v, err := ct.ram.Read32(ct.cat.GPAwardedScores + uint32(i)*4)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, v, s, "score", i)
	}
}

func TestPageProgression(t *testing.T) {
	ct := startCup(t, 8, 2)
	ct.selectCup(t, extendercup.AllCupTourIndex)
	ct.pages.page = 2

	test.ExpectSuccess(t, ct.cup.OnGPStart())

	// the page observed at the start of each group of sixteen races. the
	// wrap is observed one page late so the first group boundary repeats
	// the initial page
	observed := []int{ct.pages.page}

	for race := 0; race < 112; race++ {
		ct.race(t)

		course, err := ct.ram.Read8(ct.cat.GPCourseIndex)
		test.ExpectSuccess(t, err)
		if course == 0 {
			observed = append(observed, ct.pages.page)
		}
	}

	expected := []int{2, 2, 3, 4, 5, 6, 7, 0}
	test.DemandEquality(t, len(observed), len(expected))
	for i := range expected {
		test.ExpectEquality(t, observed[i], expected[i], "group", i)
	}
}

func TestPageProgressionFirstBoundary(t *testing.T) {
	ct := startCup(t, 8, 2)
	ct.selectCup(t, extendercup.AllCupTourIndex)
	ct.pages.page = 2

	test.ExpectSuccess(t, ct.cup.OnGPStart())

	for race := 0; race < 16; race++ {
		ct.race(t)
	}

	// global course counter is exactly sixteen and the formula holds the
	// initial page across the first boundary
	global, err := ct.ram.Read8(ct.cat.GPGlobalCourseIndex())
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, global, 16)
	test.ExpectEquality(t, ct.pages.page, 2)

	// the per-page course index has wrapped
	course, err := ct.ram.Read8(ct.cat.GPCourseIndex)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, course, 0)
}

func TestOrdinaryCupLeavesPageAlone(t *testing.T) {
	ct := startCup(t, 8, 2)
	ct.selectCup(t, 3)
	ct.pages.page = 2

	test.ExpectSuccess(t, ct.cup.OnGPStart())

	for race := 0; race < 32; race++ {
		ct.race(t)
	}

	test.ExpectEquality(t, len(ct.pages.changes), 0)
}

func TestCourseIndexForHUD(t *testing.T) {
	ct := startCup(t, 8, 0)

	// ordinary cup: the native value passes through
	ct.selectCup(t, 0)
	v, err := ct.cup.CourseIndexForHUD(3)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 3)

	// extender cup: the race's position in the whole tour
	ct.selectCup(t, extendercup.AllCupTourIndex)
	test.ExpectSuccess(t, ct.cup.OnGPStart())
	for race := 0; race < 20; race++ {
		ct.race(t)
	}
	v, err = ct.cup.CourseIndexForHUD(4)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 21)
}

func TestTotalCourseCount(t *testing.T) {
	ct := startCup(t, 8, 0)

	ct.selectCup(t, 0)
	n, err := ct.cup.TotalCourseCount()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, extendercup.CoursesPerPage)

	ct.selectCup(t, extendercup.AllCupTourIndex)
	n, err = ct.cup.TotalCourseCount()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, extendercup.CoursesPerPage*8)
}

func TestLimitedScoresUnderScoreboardCap(t *testing.T) {
	scores := extendercup.Scores(true)

	// winning every race of an eight page tour must stay under the 999
	// point scoreboard limit
	total := scores[0] * extendercup.CoursesPerPage * environment.MaxExtenderCupPageCount
	test.ExpectSuccess(t, total <= 999)

	// relative ordering of the positions is preserved
	for i := 1; i < len(scores); i++ {
		test.ExpectSuccess(t, scores[i] <= scores[i-1], "position", i)
	}
}
