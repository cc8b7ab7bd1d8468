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

package disassembly

import (
	"fmt"
	"io"
	"strings"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool
	Cycles   bool
}

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	for _, e := range dsm.Entries {
		if err := dsm.WriteEntry(output, attr, e); err != nil {
			return err
		}
	}
	return nil
}

// WriteEntry writes a single entry to io.Writer.
func (dsm *Disassembly) WriteEntry(output io.Writer, attr WriteAttr, e *Entry) error {
	s := strings.Builder{}

	if e.Label != "" {
		s.WriteString(fmt.Sprintf("%s:\n", e.Label))
	}

	s.WriteString(fmt.Sprintf("%04x  ", e.Result.Address))

	if attr.ByteCode {
		s.WriteString(fmt.Sprintf("%-10s", e.Bytecode()))
	}

	asm := fmt.Sprintf("%-5s %s", e.Result.Defn.Mnemonic, e.Operand(dsm))
	s.WriteString(strings.TrimRight(asm, " "))

	if attr.Cycles {
		s.WriteString(fmt.Sprintf("\t; %s", e.Cycles()))
	}

	if e.Result.Defn.Undocumented {
		s.WriteString(" *")
	}

	s.WriteString("\n")

	_, err := io.WriteString(output, s.String())
	return err
}
