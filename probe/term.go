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

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// terminal wraps "github.com/pkg/term/termios" with friendlier names for
// the two modes the probe uses. canonical mode is restored on quit; cbreak
// mode lets a held page button be read per-frame rather than per-line
type terminal struct {
	input *os.File

	available  bool
	canAttr    unix.Termios
	cbreakAttr unix.Termios
}

func (t *terminal) initialise(input *os.File) {
	t.input = input

	// when stdin is not a tty, for example when a script is piped in, the
	// attribute read fails and the probe stays in line mode
	if err := termios.Tcgetattr(input.Fd(), &t.canAttr); err != nil {
		t.available = false
		return
	}

	t.cbreakAttr = t.canAttr
	termios.Cfmakecbreak(&t.cbreakAttr)
	t.available = true
}

func (t *terminal) canonicalMode() {
	if !t.available {
		return
	}
	_ = termios.Tcsetattr(t.input.Fd(), termios.TCIFLUSH, &t.canAttr)
}

func (t *terminal) cbreakMode() {
	if !t.available {
		return
	}
	_ = termios.Tcsetattr(t.input.Fd(), termios.TCIFLUSH, &t.cbreakAttr)
}

func (t *terminal) flush() {
	if !t.available {
		return
	}
	_ = termios.Tcflush(t.input.Fd(), termios.TCIFLUSH)
}
