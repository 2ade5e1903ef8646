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

import "github.com/charmbracelet/lipgloss"

type styles struct {
	page  lipgloss.Style
	kart  lipgloss.Style
	mem   lipgloss.Style
	cup   lipgloss.Style
	err   lipgloss.Style
	watch lipgloss.Style
	probe lipgloss.Style
}

// ANSI Color reference
// 0	Black
// 1	Red
// 2	Green
// 3	Yellow
// 4	Blue
// 5	Magenta
// 6	Cyan
// 7	White
// 8	Bright Black (Gray)
// 9	Bright Red
// 10	Bright Green
// 11	Bright Yellow
// 12	Bright Blue
// 13	Bright Magenta
// 14	Bright Cyan
// 15	Bright White

func newStyles() styles {
	return styles{
		page:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(3)),
		kart:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(4)),
		mem:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(5)),
		cup:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(6)),
		err:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(1)),
		watch: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(4)),
		probe: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(2)),
	}
}
