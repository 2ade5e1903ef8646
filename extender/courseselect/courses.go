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
	"github.com/jetsetilly/gopherkart/hostmem/addresses"
)

// TiltAKartCourseID is the course ID of the one stock stage that tilts the
// kart camera
const TiltAKartCourseID = uint8(0x38)

// StockCourseIDs are the course IDs of the courses natively in the course
// slots, in the catalog's slot order
var StockCourseIDs = [addresses.NumMinimapSlots]uint8{
	0x24, // Luigi Circuit
	0x22, // Peach Beach
	0x21, // Baby Park
	0x32, // Dry Dry Desert
	0x28, // Mushroom Bridge
	0x25, // Mario Circuit
	0x23, // Daisy Cruiser
	0x2a, // Waluigi Stadium
	0x33, // Sherbet Land
	0x29, // Mushroom City
	0x26, // Yoshi Circuit
	0x2d, // DK Mountain
	0x2b, // Wario Colosseum
	0x2c, // Dino Dino Jungle
	0x2f, // Bowser's Castle
	0x31, // Rainbow Road
	0x3a, // Cookie Land
	0x35, // Nintendo GameCube
	0x36, // Block City
	0x3b, // Pipe Plaza
	0x34, // Luigi's Mansion
	0x38, // Tilt-A-Kart
}
