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

package bounce

// The bouncy terrain type repurposes a triangle's splash value as an impulse
// and so the value no longer means what the game's ground queries think it
// means. The functions below sit between those queries and the collision
// data. For any other terrain type the queried value passes through
// untouched.

// SplashCode filters the splash value read by the splash height and splash
// identifier queries. a bouncy triangle's splash value is an impulse, not a
// splash effect
func (c *Controller) SplashCode(terrain uint8, code uint32) uint32 {
	if terrain == c.code {
		return 0
	}
	return code
}

// AddThickness filters the additional ground thickness read during ground
// position checks.
func (c *Controller) AddThickness(terrain uint8, thickness float32) float32 {
	if terrain == c.code {
		return 0
	}
	return thickness
}

// StaggerCode filters the stagger value read by the air check and the danger
// loop animation check. an impulse with a set second byte would otherwise
// read as a stagger trigger
func (c *Controller) StaggerCode(terrain uint8, stagger uint32) uint32 {
	if terrain == c.code {
		return 0
	}
	return stagger
}

// ItemInvalidatingGround filters the ground query made when an item lands.
// bouncy terrain never invalidates items
func (c *Controller) ItemInvalidatingGround(terrain uint8, invalid bool) bool {
	if terrain == c.code {
		return false
	}
	return invalid
}
