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

package memory

import (
	"fmt"
	"strings"

	"github.com/gopher8080/gopher8080/curated"
)

// Size of the address space.
const Size = 0x10000

// ImageTooLarge is returned by Load() when the data would extend beyond the
// top of the address space.
const ImageTooLarge = "memory: image too large (%d bytes at origin %#04x)"

// Memory is the entire address space of the machine.
type Memory struct {
	data [Size]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	return &Memory{}
}

func (mem *Memory) String() string {
	return mem.Dump(0x0000, 0x80)
}

// Read implements the cpubus.Memory interface.
func (mem *Memory) Read(address uint16) uint8 {
	return mem.data[address]
}

// Write implements the cpubus.Memory interface.
func (mem *Memory) Write(address uint16, data uint8) {
	mem.data[address] = data
}

// Clear sets every byte to zero.
func (mem *Memory) Clear() {
	mem.data = [Size]uint8{}
}

// Fits returns ImageTooLarge if an image of size bytes cannot be placed at
// origin.
func Fits(origin uint16, size int) error {
	if size > Size-int(origin) {
		return curated.Errorf(ImageTooLarge, size, origin)
	}
	return nil
}

// Load copies data into memory beginning at origin. Data that would extend
// past 0xffff is not truncated or wrapped. Instead, ImageTooLarge is returned
// and memory is left untouched.
func (mem *Memory) Load(origin uint16, data []uint8) error {
	if err := Fits(origin, len(data)); err != nil {
		return err
	}
	copy(mem.data[origin:], data)
	return nil
}

// Dump returns a hex listing of count bytes beginning at from. Addresses wrap
// at the top of memory.
func (mem *Memory) Dump(from uint16, count int) string {
	s := strings.Builder{}
	s.WriteString("        -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")

	// rows are aligned to sixteen bytes
	a := from &^ 0x000f
	end := int(from) + count
	for row := int(a); row < end; row += 16 {
		s.WriteString(fmt.Sprintf("%04x | ", uint16(row)))
		for x := 0; x < 16; x++ {
			i := row + x
			if i < int(from) || i >= end {
				s.WriteString("   ")
				continue
			}
			s.WriteString(fmt.Sprintf(" %02x", mem.data[uint16(i)]))
		}
		s.WriteString("\n")
	}

	return strings.TrimSuffix(s.String(), "\n")
}
