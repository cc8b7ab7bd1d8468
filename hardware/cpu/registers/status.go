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

package registers

import (
	"math/bits"
	"strings"
)

// StatusRegister holds the five condition flags of the 8080.
type StatusRegister struct {
	Sign     bool
	Zero     bool
	AuxCarry bool
	Parity   bool
	Carry    bool
}

// NewStatusRegister is the preferred method of initialisation for the status
// register.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "F"
}

// String returns the flags in the order of the packed byte. A set flag is
// shown in upper case. Reserved bits are shown as a dash.
func (sr StatusRegister) String() string {
	s := strings.Builder{}

	flag := func(set bool, r rune) {
		if set {
			s.WriteRune(r)
		} else {
			s.WriteRune(r + ('a' - 'A'))
		}
	}

	flag(sr.Sign, 'S')
	flag(sr.Zero, 'Z')
	s.WriteRune('-')
	flag(sr.AuxCarry, 'A')
	s.WriteRune('-')
	flag(sr.Parity, 'P')
	s.WriteRune('-')
	flag(sr.Carry, 'C')

	return s.String()
}

// Reset all flags.
func (sr *StatusRegister) Reset() {
	*sr = StatusRegister{}
}

// Value packs the flags into the byte used by PUSH PSW.
//
//	bit 7  Sign
//	bit 6  Zero
//	bit 5  always 0
//	bit 4  AuxCarry
//	bit 3  always 0
//	bit 2  Parity
//	bit 1  always 1
//	bit 0  Carry
func (sr StatusRegister) Value() uint8 {
	v := uint8(0x02)

	if sr.Sign {
		v |= 0x80
	}
	if sr.Zero {
		v |= 0x40
	}
	if sr.AuxCarry {
		v |= 0x10
	}
	if sr.Parity {
		v |= 0x04
	}
	if sr.Carry {
		v |= 0x01
	}

	return v
}

// FromValue unpacks a byte (taken from the stack by POP PSW) into the flags.
// The reserved bits are ignored.
func (sr *StatusRegister) FromValue(v uint8) {
	sr.Sign = v&0x80 == 0x80
	sr.Zero = v&0x40 == 0x40
	sr.AuxCarry = v&0x10 == 0x10
	sr.Parity = v&0x04 == 0x04
	sr.Carry = v&0x01 == 0x01
}

// SetSZP sets the Sign, Zero and Parity flags according to an 8-bit result.
func (sr *StatusRegister) SetSZP(v uint8) {
	sr.Sign = v&0x80 == 0x80
	sr.Zero = v == 0
	sr.Parity = bits.OnesCount8(v)&0x01 == 0
}
