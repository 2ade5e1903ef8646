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

package kart

import (
	"fmt"
	"math"
)

// Vector is a world-space float32 triple, matching the layout of the vectors
// in the host's kart structure. Y is up
type Vector struct {
	X float32
	Y float32
	Z float32
}

func (v Vector) String() string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}

// Add returns the sum of the two vectors.
func (v Vector) Add(w Vector) Vector {
	return Vector{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Scale returns the vector scaled by s.
func (v Vector) Scale(s float32) Vector {
	return Vector{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// MagSquared returns the squared magnitude of the vector.
func (v Vector) MagSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Mag returns the magnitude of the vector.
func (v Vector) Mag() float32 {
	return float32(math.Sqrt(float64(v.MagSquared())))
}

// PerpXZ returns the vector rotated a quarter turn in the ground plane: the
// sideways axis for a kart facing along v. the Y component is discarded
func (v Vector) PerpXZ() Vector {
	return Vector{X: v.Z, Y: 0, Z: -v.X}
}
