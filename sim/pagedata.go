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

package sim

import (
	"github.com/jetsetilly/gopherkart/environment"
	"github.com/jetsetilly/gopherkart/extender/courseselect"
	"github.com/jetsetilly/gopherkart/hostmem/addresses"
)

// SyntheticPageData builds deterministic per-page data for a simulation.
// Real page data is authored alongside the course files; the synthetic
// tables only need to be distinguishable per page and slot so that tests
// and the probe can verify the fan-out. Page zero carries the stock
// courses, so its tilt set holds the one stock tilting stage
func SyntheticPageData(env *environment.Environment) courseselect.PageData {
	pages := env.PageCount

	data := courseselect.PageData{
		Coordinates:  make([][][4]float32, pages),
		Orientations: make([][]uint8, pages),
		AudioIndexes: make([][32]uint8, pages),
		TiltSets:     make([][]uint8, pages),
	}

	for p := 0; p < pages; p++ {
		data.Coordinates[p] = make([][4]float32, addresses.NumMinimapSlots)
		data.Orientations[p] = make([]uint8, addresses.NumMinimapSlots)

		for s := 0; s < addresses.NumMinimapSlots; s++ {
			base := float32(p*100 + s)
			data.Coordinates[p][s] = [4]float32{base, base + 0.25, base + 0.5, base + 0.75}
			data.Orientations[p][s] = uint8((p + s) % 4)
		}

		for i := 0; i < 32; i++ {
			data.AudioIndexes[p][i] = uint8(p*32 + i)
		}

		if p == 0 {
			data.TiltSets[p] = []uint8{courseselect.TiltAKartCourseID}
		} else {
			// every custom page gets one synthetic tilting course
			data.TiltSets[p] = []uint8{courseselect.StockCourseIDs[p%len(courseselect.StockCourseIDs)]}
		}
	}

	return data
}
