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

// Package extendercup turns the game's All-Cup Tour into a tour of every
// course page. The game's own grand prix sequencing only knows about the
// sixteen course slots; the cup controller keeps a second course counter
// that spans every page, and steps the course page forward whenever the
// per-page counter wraps so that the next race loads from the right page.
//
// The controller also rewrites the awarded-score table when a grand prix
// starts. The scoreboard cannot display more than 999 points, so the
// extended tour awards lowered scores to keep a perfect run under the limit.
package extendercup

import (
	"github.com/jetsetilly/gopherkart/environment"
	"github.com/jetsetilly/gopherkart/hostmem"
	"github.com/jetsetilly/gopherkart/hostmem/addresses"
	"github.com/pkg/errors"
)

// AllCupTourIndex is the cup index of the All-Cup Tour in the game's cup
// list. the extender cup reuses the slot
const AllCupTourIndex = uint8(4)

// CoursesPerPage is the number of races one course page contributes to the
// extender cup
const CoursesPerPage = 16

// the scores awarded to each finishing position after a race. the original
// table is the game's own RANKPOINT array. the limited table is written in
// its place for the extender cup: the winner of every race on eight pages
// scores 7 * 16 * 8 = 896, under the 999 point scoreboard limit
var (
	originalScores = [8]uint32{10, 8, 6, 4, 3, 2, 1, 0}
	limitedScores  = [8]uint32{7, 5, 4, 3, 2, 1, 0, 0}
)

// PageSetter is the surface of the course page selector used by the cup
// controller. the fan-out must run when the page steps forward mid-tour or
// the next race loads the previous page's course data
type PageSetter interface {
	Page() (int, error)
	SetPage(page int) error
}

// Cup is the extender cup controller. Create with NewCup()
type Cup struct {
	env   *environment.Environment
	cat   addresses.Catalog
	mem   hostmem.Memory
	pages PageSetter
}

// NewCup is the preferred method of initialisation for the Cup type.
func NewCup(env *environment.Environment, cat addresses.Catalog,
	mem hostmem.Memory, pages PageSetter) (*Cup, error) {

	if pages == nil {
		return nil, errors.New("extendercup: no page setter")
	}

	return &Cup{
		env:   env,
		cat:   cat,
		mem:   mem,
		pages: pages,
	}, nil
}

// active returns true if the cup being played is the extender cup.
func (c *Cup) active() (bool, error) {
	cup, err := c.mem.Read8(c.cat.GPCupIndex)
	if err != nil {
		return false, err
	}
	return cup == AllCupTourIndex, nil
}

// OnGPStart runs when the A button confirms a cup on the course selection
// screen, before the grand prix sequence begins. the global course counter
// and the page the tour started on are recorded, and the awarded-score
// table appropriate to the cup is put in place
func (c *Cup) OnGPStart() error {
	page, err := c.pages.Page()
	if err != nil {
		return err
	}
	if err := c.mem.Write8(c.cat.GPInitialPage(), uint8(page)); err != nil {
		return err
	}
	if err := c.mem.Write8(c.cat.GPGlobalCourseIndex(), 0); err != nil {
		return err
	}

	active, err := c.active()
	if err != nil {
		return err
	}

	scores := originalScores
	if active {
		scores = limitedScores
	}
	for i, s := range scores {
		if err := c.mem.Write32(c.cat.GPAwardedScores+uint32(i)*4, s); err != nil {
			return err
		}
	}

	return nil
}

// OnSetClrGPCourse runs after the game's own sequencing has advanced to the
// next race of a grand prix. for the extender cup the global course counter
// advances; when the per-page course index has run off the end of the page
// the index wraps and the course page steps forward
func (c *Cup) OnSetClrGPCourse() error {
	active, err := c.active()
	if err != nil {
		return err
	}
	if !active {
		return nil
	}

	global, err := c.mem.Read8(c.cat.GPGlobalCourseIndex())
	if err != nil {
		return err
	}
	global++
	if err := c.mem.Write8(c.cat.GPGlobalCourseIndex(), global); err != nil {
		return err
	}

	course, err := c.mem.Read8(c.cat.GPCourseIndex)
	if err != nil {
		return err
	}
	if course < CoursesPerPage {
		return nil
	}

	if err := c.mem.Write8(c.cat.GPCourseIndex, 0); err != nil {
		return err
	}

	page, err := c.pageForGlobal(int(global))
	if err != nil {
		return err
	}
	return c.pages.SetPage(page)
}

// pageForGlobal computes the course page for a global course counter value.
// the counter wraps the per-page index after the last race of a page, so
// the division is one page ahead by the time the wrap is observed
func (c *Cup) pageForGlobal(global int) (int, error) {
	initial, err := c.mem.Read8(c.cat.GPInitialPage())
	if err != nil {
		return 0, err
	}

	n := c.env.PageCount
	return (int(initial) + global/CoursesPerPage - 1 + n) % n, nil
}

// CourseIndexForHUD returns the race number shown by the pre-race HUD. the
// extender cup shows the race's position in the whole tour rather than
// within the current page
func (c *Cup) CourseIndexForHUD(native uint8) (uint8, error) {
	active, err := c.active()
	if err != nil {
		return 0, err
	}
	if !active {
		return native, nil
	}

	global, err := c.mem.Read8(c.cat.GPGlobalCourseIndex())
	if err != nil {
		return 0, err
	}
	return global + 1, nil
}

// TotalCourseCount returns the race count shown by the pre-race HUD. the
// game hardcodes sixteen for the All-Cup Tour; the extender cup multiplies
// that by the page count
func (c *Cup) TotalCourseCount() (int, error) {
	active, err := c.active()
	if err != nil {
		return 0, err
	}
	if !active {
		return CoursesPerPage, nil
	}
	return CoursesPerPage * c.env.PageCount, nil
}

// Scores returns the awarded-score table the controller writes for the
// named cup selection. exposed for inspection; OnGPStart performs the write
func Scores(extenderCup bool) [8]uint32 {
	if extenderCup {
		return limitedScores
	}
	return originalScores
}
