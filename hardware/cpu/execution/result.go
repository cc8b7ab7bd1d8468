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

package execution

import (
	"fmt"
	"strings"

	"github.com/gopher8080/gopher8080/hardware/cpu/instructions"
)

// Result records the execution of a single instruction.
type Result struct {
	// the address of the opcode
	Address uint16

	// the definition of the opcode. nil if nothing has been decoded
	Defn *instructions.Definition

	// the operand bytes following the opcode. an 8-bit value for the Immediate
	// addressing mode or a 16-bit value for the ImmediateExtended and Direct
	// modes. zero otherwise
	InstructionData uint16

	// the number of bytes read during decoding, including the opcode
	ByteCount int

	// the number of cycles the instruction took. either Cycles.Base or
	// Cycles.Taken from the definition
	Cycles int

	// whether the condition of a conditional instruction was met
	BranchSuccess bool

	// the instruction was executed to completion. false if execution failed
	// or if the result was produced by the disassembler
	Final bool
}

// hex formats a number in assembler syntax. numbers that begin with a letter
// are given a leading zero.
func hex(v uint16, digits int) string {
	s := fmt.Sprintf("%0*xh", digits, v)
	if s[0] >= 'a' {
		return "0" + s
	}
	return s
}

// Operand returns the operand field of the instruction in assembler syntax.
func (r Result) Operand() string {
	if r.Defn == nil {
		return ""
	}

	reg := r.Defn.OperandString()

	var data string
	switch r.Defn.AddressingMode {
	case instructions.Immediate:
		data = hex(r.InstructionData&0x00ff, 2)
	case instructions.ImmediateExtended, instructions.Direct:
		data = hex(r.InstructionData, 4)
	}

	if reg == "" {
		return data
	}
	if data == "" {
		return reg
	}
	return fmt.Sprintf("%s,%s", reg, data)
}

// Assembly returns the instruction in assembler syntax. For example:
//
//	MVI A,05h
//	JNZ 0105h
//	RST 1
func (r Result) Assembly() string {
	if r.Defn == nil {
		return "???"
	}
	if o := r.Operand(); o != "" {
		return fmt.Sprintf("%s %s", r.Defn.Mnemonic, o)
	}
	return r.Defn.Mnemonic
}

// Bytes returns the bytes of the instruction in the order they appear in
// memory.
func (r Result) Bytes() []uint8 {
	if r.Defn == nil {
		return nil
	}

	b := []uint8{r.Defn.OpCode}
	switch r.Defn.Bytes {
	case 2:
		b = append(b, uint8(r.InstructionData))
	case 3:
		b = append(b, uint8(r.InstructionData), uint8(r.InstructionData>>8))
	}
	return b
}

// String returns the address, the bytes and the assembly of the instruction.
func (r Result) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%04x  ", r.Address))

	b := make([]string, 0, 3)
	for _, v := range r.Bytes() {
		b = append(b, fmt.Sprintf("%02x", v))
	}
	s.WriteString(fmt.Sprintf("%-10s", strings.Join(b, " ")))
	s.WriteString(r.Assembly())

	if r.Defn != nil && r.Defn.Undocumented {
		s.WriteString(" *")
	}

	return s.String()
}
