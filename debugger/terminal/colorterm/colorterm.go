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

// Package colorterm implements the Terminal interface for the gopher8080
// debugger. It supports color output and single key commands.
//
// Most commands are bound to a single key. Pressing ':' opens a command line
// where any debugger command can be typed. The key bindings are:
//
//	s, space, enter	STEP
//	r		RUN
//	m		MEM HL
//	x		RESET
//	h, ?		HELP
//	q		QUIT
//
// The ColorTerminal requires a real terminal. The PlainTerminal should be used
// when input is not a terminal.
package colorterm

import (
	"os"

	"github.com/gopher8080/gopher8080/debugger/terminal"
	"github.com/gopher8080/gopher8080/debugger/terminal/colorterm/easyterm"
)

// ColorTerminal implements debugger UI interface with a basic ANSI terminal.
type ColorTerminal struct {
	easyterm.EasyTerm

	silenced bool
}

// Initialise performs any setting up required for the terminal.
func (ct *ColorTerminal) Initialise() error {
	if err := ct.EasyTerm.Initialise(easyterm.DefaultDevice, os.Stdout); err != nil {
		return err
	}
	return ct.RawMode()
}

// CleanUp performs any cleaning up required for the terminal.
func (ct *ColorTerminal) CleanUp() {
	ct.Print("\r\n")
	ct.EasyTerm.CleanUp()
}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

// Silence implements the terminal.Terminal interface.
func (ct *ColorTerminal) Silence(silenced bool) {
	ct.silenced = silenced
}

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt terminal.Prompt) (string, error) {
	ct.Print("\r%s", prompt.String())
	return readCommand(&ct.EasyTerm, func(s string) { ct.Print("%s", s) })
}
