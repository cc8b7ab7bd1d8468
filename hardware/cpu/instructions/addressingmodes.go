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

// AddressingMode describes where the operand data for an instruction comes
// from. The addressing mode also determines how many bytes the instruction
// occupies.
type AddressingMode int

// List of supported addressing modes.
const (
	// no operand or the operand is implied by the instruction (RLC, XCHG)
	Implied AddressingMode = iota

	// the operand is a register or register pair named by the instruction
	Register

	// the operand is in memory at the address in the HL pair (M)
	RegisterIndirect

	// the operand is in memory at the address in the BC or DE pair (LDAX, STAX)
	PairIndirect

	// 8-bit operand following the opcode
	Immediate

	// 16-bit operand following the opcode (LXI)
	ImmediateExtended

	// 16-bit address following the opcode (LDA, JMP, CALL)
	Direct
)

func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "Implied"
	case Register:
		return "Register"
	case RegisterIndirect:
		return "RegisterIndirect"
	case PairIndirect:
		return "PairIndirect"
	case Immediate:
		return "Immediate"
	case ImmediateExtended:
		return "ImmediateExtended"
	case Direct:
		return "Direct"
	}
	return "unknown addressing mode"
}

// Bytes returns the number of bytes occupied by an instruction using the
// addressing mode, including the opcode.
func (m AddressingMode) Bytes() int {
	switch m {
	case Immediate:
		return 2
	case ImmediateExtended, Direct:
		return 3
	}
	return 1
}
