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

package courseselect

import (
	"github.com/pkg/errors"
)

// PageData is the authored per-page content delivered by the fan-out. the
// data is produced outside this module, alongside the course files
// themselves; the selector only indexes it by page and slot.
//
// Course slots are in the catalog's minimap slot order: the sixteen racing
// courses followed by the six battle stages.
type PageData struct {
	// Coordinates[page][slot] holds the four minimap display coordinates
	// for one course slot
	Coordinates [][][4]float32

	// Orientations[page][slot] is the minimap rotation for one course slot.
	// values are quarter turns, 0 to 3
	Orientations [][]uint8

	// AudioIndexes[page] is the page's course-to-audio-stream table. all 32
	// entries are written regardless of how many course slots are in use
	AudioIndexes [][32]uint8

	// TiltSets[page] lists the course IDs on the page that tilt the camera.
	// only consulted when battle stages or tilting courses are enabled. a
	// page carrying the stock courses must list TiltAKartCourseID itself
	TiltSets [][]uint8
}

// validate checks that every table covers every page, and every page covers
// every course slot the fan-out touches
func (d PageData) validate(pages int, slots int, tilt bool) error {
	if len(d.Coordinates) != pages {
		return errors.Errorf("courseselect: coordinates cover %d pages, want %d", len(d.Coordinates), pages)
	}
	for p := range d.Coordinates {
		if len(d.Coordinates[p]) < slots {
			return errors.Errorf("courseselect: coordinates for page %d cover %d slots, want %d", p, len(d.Coordinates[p]), slots)
		}
	}

	if len(d.Orientations) != pages {
		return errors.Errorf("courseselect: orientations cover %d pages, want %d", len(d.Orientations), pages)
	}
	for p := range d.Orientations {
		if len(d.Orientations[p]) < slots {
			return errors.Errorf("courseselect: orientations for page %d cover %d slots, want %d", p, len(d.Orientations[p]), slots)
		}
	}

	if len(d.AudioIndexes) != pages {
		return errors.Errorf("courseselect: audio indexes cover %d pages, want %d", len(d.AudioIndexes), pages)
	}

	if tilt && len(d.TiltSets) != pages {
		return errors.Errorf("courseselect: tilt sets cover %d pages, want %d", len(d.TiltSets), pages)
	}

	return nil
}
