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

// StackPointer is the 16-bit SP register. The stack grows downwards and there
// is no bounds checking. The pointer wraps at either end of the address space.
type StackPointer struct {
	value uint16
}

// NewStackPointer is the preferred method of initialisation for StackPointer.
func NewStackPointer(val uint16) StackPointer {
	return StackPointer{value: val}
}

// Label returns the canonical name of the stack pointer.
func (sp StackPointer) Label() string {
	return "SP"
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("%04x", sp.value)
}

// Address returns the current value of the SP.
func (sp StackPointer) Address() uint16 {
	return sp.value
}

// Load a value into the SP.
func (sp *StackPointer) Load(val uint16) {
	sp.value = val
}

// Add a value to the SP.
func (sp *StackPointer) Add(val uint16) {
	sp.value += val
}

// Subtract a value from the SP.
func (sp *StackPointer) Subtract(val uint16) {
	sp.value -= val
}
