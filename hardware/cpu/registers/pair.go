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

import "fmt"

// Pair is a 16-bit view of two 8-bit registers. The register named first in
// the label holds the high byte.
type Pair struct {
	hi    *Register
	lo    *Register
	label string
}

// NewPair returns a view of hi and lo as a single 16-bit value.
func NewPair(label string, hi *Register, lo *Register) Pair {
	return Pair{
		hi:    hi,
		lo:    lo,
		label: label,
	}
}

func (p Pair) String() string {
	return fmt.Sprintf("%s=%04x", p.label, p.Value())
}

// Label returns the canonical name of the pair.
func (p Pair) Label() string {
	return p.label
}

// Value returns the value of the pair.
func (p Pair) Value() uint16 {
	return uint16(p.hi.value)<<8 | uint16(p.lo.value)
}

// Load a 16-bit value into the pair. The high byte goes into the first
// register of the pair.
func (p Pair) Load(val uint16) {
	p.hi.value = uint8(val >> 8)
	p.lo.value = uint8(val)
}

// Hi returns the register containing the high byte.
func (p Pair) Hi() *Register {
	return p.hi
}

// Lo returns the register containing the low byte.
func (p Pair) Lo() *Register {
	return p.lo
}
