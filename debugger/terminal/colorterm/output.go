// This file is part of Gopher8080.
//
// Gopher8080 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8080 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8080.  If not, see <https://www.gnu.org/licenses/>.

package colorterm

import (
	"github.com/gopher8080/gopher8080/debugger/terminal"
	"github.com/gopher8080/gopher8080/debugger/terminal/colorterm/easyterm/ansi"
)

// the terminal is in raw mode so every line must end with a carriage return
// as well as a newline
const newline = "\r\n"

var pens = map[terminal.Style]string{
	terminal.StyleInstruction: ansi.YellowPen,
	terminal.StyleRegisters:   ansi.CyanPen,
	terminal.StyleFeedback:    ansi.DimPen,
	terminal.StyleHelp:        ansi.DimPen,
	terminal.StyleError:       ansi.RedPen,
}

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	if ct.silenced && style != terminal.StyleError {
		return
	}

	ct.Print("\r")
	ct.Print("%s", pens[style])
	if style == terminal.StyleError {
		ct.Print("* ")
	}
	ct.Print("%s", s)
	ct.Print("%s", ansi.NormalPen)
	ct.Print(newline)
}
