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
	"strings"

	"github.com/gopher8080/gopher8080/hardware/cpu/execution"
	"github.com/gopher8080/gopher8080/hardware/cpu/instructions"
)

// EntryLevel describes the level of the Entry.
type EntryLevel int

// List of valid EntryLevel in increasing reliability.
//
// Decoded entries have been decoded as though the preceding entry is an
// instruction. Executed entries have been reached by the CPU.
const (
	EntryLevelDecoded EntryLevel = iota
	EntryLevelExecuted
)

// Entry is a disassembled instruction.
type Entry struct {
	Level EntryLevel

	// copy of the decoded or executed instruction. must not be updated
	// except through the updateExecutionEntry() function
	Result execution.Result

	// non-empty if the entry is the target of a jump or call
	Label string
}

func labelName(address uint16) string {
	return fmt.Sprintf("L%04x", address)
}

func (e *Entry) updateExecutionEntry(result execution.Result) {
	e.Result = result
	e.Level = EntryLevelExecuted
}

// Cycles returns the number of cycles for the entry. For an executed entry
// this is the number of cycles the most recent execution took. Otherwise it
// is the cost from the definition, which will show both costs for
// conditional calls and returns.
func (e *Entry) Cycles() string {
	if e.Level == EntryLevelExecuted {
		return fmt.Sprintf("%d", e.Result.Cycles)
	}
	return e.Result.Defn.Cycles.String()
}

// Operand returns the operand of the entry. Direct addresses that have a
// label are replaced by the label.
func (e *Entry) Operand(dsm *Disassembly) string {
	defn := e.Result.Defn
	if defn.IsBranch() && defn.AddressingMode == instructions.Direct && dsm != nil {
		if t, ok := dsm.Get(e.Result.InstructionData); ok && t.Label != "" {
			return t.Label
		}
	}
	return e.Result.Operand()
}

// Bytecode returns the bytes of the instruction as a string of hex values.
func (e *Entry) Bytecode() string {
	b := e.Result.Bytes()
	s := make([]string, len(b))
	for i := range b {
		s[i] = fmt.Sprintf("%02x", b[i])
	}
	return strings.Join(s, " ")
}

func (e *Entry) String() string {
	return e.Result.String()
}
