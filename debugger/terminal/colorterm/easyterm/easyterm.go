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

// Package easyterm is a wrapper for "github.com/pkg/term". It provides the
// raw mode terminal handling required by the ColorTerminal.
package easyterm

import (
	"fmt"
	"io"

	"github.com/gopher8080/gopher8080/curated"
	"github.com/pkg/term"
)

// TerminalError is returned when the terminal device cannot be used.
const TerminalError = "easyterm: %v"

// DefaultDevice is the controlling terminal on posix systems.
const DefaultDevice = "/dev/tty"

// EasyTerm is the main container for posix terminals. Usually embedded in
// other struct types.
type EasyTerm struct {
	term   *term.Term
	output io.Writer
}

// Initialise opens the terminal device for input. Output is written to the
// output writer.
func (et *EasyTerm) Initialise(device string, output io.Writer) error {
	if output == nil {
		return curated.Errorf(TerminalError, "easyterm requires an output")
	}

	t, err := term.Open(device)
	if err != nil {
		return curated.Errorf(TerminalError, err)
	}

	et.term = t
	et.output = output

	return nil
}

// CleanUp restores the terminal to the mode it was in when Initialise() was
// called and closes the device.
func (et *EasyTerm) CleanUp() {
	if et.term == nil {
		return
	}
	_ = et.term.Restore()
	_ = et.term.Close()
	et.term = nil
}

// RawMode puts the terminal into raw mode. Keys are delivered as they are
// pressed and are not echoed.
func (et *EasyTerm) RawMode() error {
	if err := et.term.SetRaw(); err != nil {
		return curated.Errorf(TerminalError, err)
	}
	return nil
}

// CanonicalMode restores the terminal to the mode it was in when
// Initialise() was called.
func (et *EasyTerm) CanonicalMode() error {
	if err := et.term.Restore(); err != nil {
		return curated.Errorf(TerminalError, err)
	}
	return nil
}

// ReadKey waits for and returns the next byte from the terminal.
func (et *EasyTerm) ReadKey() (byte, error) {
	b := make([]byte, 1)
	for {
		n, err := et.term.Read(b)
		if err != nil {
			return 0, err
		}
		if n == 1 {
			return b[0], nil
		}
	}
}

// Print writes the formatted string to the output.
func (et *EasyTerm) Print(s string, a ...any) {
	io.WriteString(et.output, fmt.Sprintf(s, a...))
}
