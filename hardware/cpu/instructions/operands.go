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

// Operand names a register, the memory location M or a register pair.
type Operand int

// List of operands. The order of the 8-bit operands is the order in which
// they are encoded in the opcode.
const (
	NoOperand Operand = iota
	RegB
	RegC
	RegD
	RegE
	RegH
	RegL
	RegM
	RegA
	PairBC
	PairDE
	PairHL
	PairSP
	PairPSW
)

func (o Operand) String() string {
	switch o {
	case RegB, PairBC:
		return "B"
	case RegC:
		return "C"
	case RegD, PairDE:
		return "D"
	case RegE:
		return "E"
	case RegH, PairHL:
		return "H"
	case RegL:
		return "L"
	case RegM:
		return "M"
	case RegA:
		return "A"
	case PairSP:
		return "SP"
	case PairPSW:
		return "PSW"
	}
	return ""
}

// IsPair returns true if the operand is a register pair.
func (o Operand) IsPair() bool {
	return o >= PairBC
}

// Condition is the test made by a conditional jump, call or return.
type Condition int

// List of conditions. Always is used by the unconditional instructions.
const (
	Always Condition = iota
	NotZero
	Zero
	NoCarry
	Carry
	ParityOdd
	ParityEven
	Plus
	Minus
)

func (c Condition) String() string {
	switch c {
	case Always:
		return ""
	case NotZero:
		return "NZ"
	case Zero:
		return "Z"
	case NoCarry:
		return "NC"
	case Carry:
		return "C"
	case ParityOdd:
		return "PO"
	case ParityEven:
		return "PE"
	case Plus:
		return "P"
	case Minus:
		return "M"
	}
	return "unknown condition"
}
