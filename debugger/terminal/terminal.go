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

package terminal

// Style indicates the type of information being printed.
type Style int

// List of terminal styles.
const (
	// the instruction that has just been executed
	StyleInstruction Style = iota

	// register and memory dumps
	StyleRegisters

	// information about the state of the debugger
	StyleFeedback

	// output of the HELP command
	StyleHelp

	// error messages. printed even when the terminal is silenced
	StyleError
)

// UserInterrupt is returned by TermRead() when the user has interrupted the
// terminal (with CTRL-C for example).
const UserInterrupt = "terminal: user interrupt"

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns a single command. The io.EOF error is returned when
	// there is no more input.
	//
	// Implementations that accept single key presses will return the command
	// that the key is bound to.
	TermRead(prompt Prompt) (string, error)

	// IsInteractive() should return true for implementations that require user
	// interaction. Instances that don't expect user intervention should return
	// false.
	IsInteractive() bool
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the debugger's command line
// interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all terminal implementations will need to
	// do anything.
	Initialise() error

	// Restore the terminal to its original state, if possible.
	CleanUp()

	// Silence all output except error messages.
	Silence(silenced bool)
}
