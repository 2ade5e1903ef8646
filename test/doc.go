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

// Package test contains helper functions that remove common boilerplate from
// the package tests.
//
// The Expect functions test a condition and mark the test as having failed
// if the condition does not hold. The Demand functions test the same
// conditions but treat failure as a testing fatality. Demand is appropriate
// when subsequent test steps would be meaningless, or would panic, if the
// condition does not hold.
//
// ExpectSuccess and ExpectFailure interpret their argument according to its
// type. A bool succeeds when true and an error succeeds when nil. An untyped
// nil is counted as a success, which is how a nil error arriving through an
// interface value must be read.
//
// All functions accept optional trailing tags. Tags are printed as a prefix
// to any failure message and are useful for identifying the failed entry in
// a table driven test.
//
// The CompareWriter type implements io.Writer and should be used to capture
// output for comparison with an expected string.
package test
