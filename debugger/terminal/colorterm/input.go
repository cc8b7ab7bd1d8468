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
	"unicode"

	"github.com/gopher8080/gopher8080/curated"
	"github.com/gopher8080/gopher8080/debugger/terminal"
	"github.com/gopher8080/gopher8080/debugger/terminal/colorterm/easyterm"
	"github.com/gopher8080/gopher8080/debugger/terminal/colorterm/easyterm/ansi"
)

// the commands bound to single keys
var keyBindings = map[byte]string{
	's':                        "STEP",
	' ':                        "STEP",
	easyterm.KeyCarriageReturn: "STEP",
	easyterm.KeyLineFeed:       "STEP",
	'r':                        "RUN",
	'm':                        "MEM HL",
	'x':                        "RESET",
	'h':                        "HELP",
	'?':                        "HELP",
	'q':                        "QUIT",
}

type keyReader interface {
	ReadKey() (byte, error)
}

// readCommand waits for a bound key or for a command line to be entered after
// the ':' key. echo is used to write feedback to the terminal.
func readCommand(kr keyReader, echo func(string)) (string, error) {
	for {
		k, err := kr.ReadKey()
		if err != nil {
			return "", err
		}

		switch k {
		case easyterm.KeyInterrupt:
			echo("\r\n")
			return "", curated.Errorf(terminal.UserInterrupt)
		case ':':
			echo(":")
			s, ok, err := readLine(kr, echo)
			if err != nil {
				return "", err
			}
			if ok {
				return s, nil
			}
		default:
			if c, ok := keyBindings[k]; ok {
				echo(c)
				echo("\r\n")
				return c, nil
			}
		}
	}
}

// readLine reads a line of input with rudimentary editing. returns false if
// the line was abandoned with the escape key.
func readLine(kr keyReader, echo func(string)) (string, bool, error) {
	input := make([]byte, 0, 32)

	for {
		k, err := kr.ReadKey()
		if err != nil {
			return "", false, err
		}

		switch k {
		case easyterm.KeyInterrupt:
			echo("\r\n")
			return "", false, curated.Errorf(terminal.UserInterrupt)
		case easyterm.KeyEsc:
			echo(ansi.ClearLine)
			echo("\r")
			return "", false, nil
		case easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
			echo("\r\n")
			return string(input), true, nil
		case easyterm.KeyBackspace, easyterm.KeyDelete:
			if len(input) > 0 {
				input = input[:len(input)-1]
				echo(ansi.CursorBackwardOne + " " + ansi.CursorBackwardOne)
			}
		default:
			if k < unicode.MaxASCII && unicode.IsPrint(rune(k)) {
				input = append(input, k)
				echo(string(rune(k)))
			}
		}
	}
}
