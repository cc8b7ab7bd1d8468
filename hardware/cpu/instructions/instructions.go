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

package instructions

import (
	"fmt"
	"strings"
)

// Cycles is the cost of an instruction in T-states. For conditional calls and
// returns the cost depends on whether the condition is met. For every other
// instruction Base and Taken are the same.
type Cycles struct {
	Base  int
	Taken int
}

func (c Cycles) String() string {
	if c.Base == c.Taken {
		return fmt.Sprintf("%d", c.Base)
	}
	return fmt.Sprintf("%d/%d", c.Base, c.Taken)
}

// Definition defines each instruction in the instruction set; one per opcode.
type Definition struct {
	OpCode         uint8
	Mnemonic       string
	Operator       Operator
	Bytes          int
	Cycles         Cycles
	AddressingMode AddressingMode
	Effect         Category

	// the operands named by the instruction. instructions with one operand
	// (INR, PUSH, etc.) use Dest, except for the accumulator instructions
	// (ADD, CMP, etc.) where the named operand is the source and the
	// accumulator is the implied destination
	Dest Operand
	Src  Operand

	// conditional jumps, calls and returns
	Condition Condition

	// the address called by RST
	Vector uint16

	// the instruction is an undocumented duplicate of another
	Undocumented bool
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.Mnemonic == "" {
		return "undecoded instruction"
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%02x %s", defn.OpCode, defn.Mnemonic))
	if o := defn.OperandString(); o != "" {
		s.WriteString(" ")
		s.WriteString(o)
	}
	s.WriteString(fmt.Sprintf(" +%dbytes (%s cycles) [mode=%s effect=%s]", defn.Bytes, defn.Cycles, defn.AddressingMode, defn.Effect))
	if defn.Undocumented {
		s.WriteString(" undocumented")
	}
	return s.String()
}

// OperandString returns the register operands of the instruction in
// assembler syntax. Immediate and address operands are not included because
// they are not part of the definition.
func (defn Definition) OperandString() string {
	if defn.Operator == Rst {
		return fmt.Sprintf("%d", defn.Vector>>3)
	}
	if defn.Dest == NoOperand {
		return defn.Src.String()
	}
	if defn.Src == NoOperand {
		return defn.Dest.String()
	}
	return fmt.Sprintf("%s,%s", defn.Dest, defn.Src)
}

// IsConditional returns true if the instruction only has an effect when the
// Condition is met.
func (defn Definition) IsConditional() bool {
	return defn.Condition != Always
}

// IsBranch returns true if the instruction can change the program counter to
// something other than the next instruction.
func (defn Definition) IsBranch() bool {
	return defn.Effect == Flow || defn.Effect == Subroutine
}
