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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherkart/modalflag"
	"github.com/jetsetilly/gopherkart/test"
)

func TestDumpMode(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "extender.dot")

	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs([]string{"DUMP", "-o", filename})
	md.NewMode()
	md.AddSubModes("RUN", "DUMP", "VERSION")
	md.AddDefaultSubMode("RUN")

	p, err := md.Parse()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "DUMP")

	test.ExpectSuccess(t, dump(md))

	b, err := os.ReadFile(filename)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(string(b), "digraph"))
}

func TestDefaultSubMode(t *testing.T) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs([]string{})
	md.NewMode()
	md.AddSubModes("RUN", "DUMP", "VERSION")
	md.AddDefaultSubMode("RUN")

	p, err := md.Parse()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "RUN")
}
