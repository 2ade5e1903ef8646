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

package probe

import (
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/pkg/errors"
)

// dumpGraph writes a graphviz representation of the simulation's object
// graph, controllers and doubles included. the output can be rendered with
// the dot tool
func (p *probe) dumpGraph(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "dump")
	}
	defer f.Close()

	memviz.Map(f, p.sim.Ext)
	return nil
}
