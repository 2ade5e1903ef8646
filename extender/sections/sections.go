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

// Package sections forces lap counts on sectioned courses. A sectioned
// course is a point-to-point track split into segments by checkpoints that
// the author has marked with an otherwise unused checkpoint parameter. The
// game has no native idea of sections: the controller counts the marked
// checkpoints as the course data loads and reports the section count, plus
// one, as the course's lap count. Crossing a marked checkpoint then forces
// a lap through the game's own lap bookkeeping so that the race finishes at
// the end of the final section.
package sections

import (
	"github.com/pkg/errors"
)

// SectorLapFlag is the bit in a sector's unused parameter halfword that
// marks the end of a section.
const SectorLapFlag = uint16(0x0001)

// MaxLapCount is the largest lap count the controller will report. the game
// crashes on courses claiming more laps than this
const MaxLapCount = 9

// LapChecker is the surface of the game's per-kart lap bookkeeping used by
// the controller. both routines belong to the game's KartChecker
type LapChecker interface {
	IncrementLap(slot int) error
	SetLapTime(slot int) error
}

// Counter is the sectioned course controller. Create with NewCounter()
type Counter struct {
	checker LapChecker

	// the number of section points counted in the loaded course data. zero
	// means the course is not sectioned
	count int
}

// NewCounter is the preferred method of initialisation for the Counter
// type.
func NewCounter(checker LapChecker) (*Counter, error) {
	if checker == nil {
		return nil, errors.New("sections: no lap checker")
	}
	return &Counter{checker: checker}, nil
}

// ResetCount zeroes the section point counter. called as course data begins
// to load
func (c *Counter) ResetCount() {
	c.count = 0
}

// SectionCount returns the number of section points counted in the loaded
// course data.
func (c *Counter) SectionCount() int {
	return c.count
}

// CountSectionPoint examines one checkpoint as the course data loads.
// checkpoints whose unused parameter carries the section flag are counted
func (c *Counter) CountSectionPoint(param uint16) {
	if param&SectorLapFlag != 0 {
		c.count++
	}
}

// OverrideTotalLapCount returns the lap count the game should use for the
// loaded course. a sectioned course reports one more lap than it has
// section points, capped to avoid a crash; a course without section points
// keeps its authored count
func (c *Counter) OverrideTotalLapCount(authored uint8) uint8 {
	if c.count == 0 {
		return authored
	}

	laps := c.count + 1
	if laps > MaxLapCount {
		laps = MaxLapCount
	}
	return uint8(laps)
}

// CheckLap runs after the game's own sector-pass bookkeeping for one kart.
// a sector whose unused parameter carries the section flag forces a lap
// increment and stamps the lap time, exactly as crossing the finish line
// would
func (c *Counter) CheckLap(slot int, sectorParam uint16) error {
	if sectorParam&SectorLapFlag == 0 {
		return nil
	}

	if err := c.checker.IncrementLap(slot); err != nil {
		return err
	}
	return c.checker.SetLapTime(slot)
}
