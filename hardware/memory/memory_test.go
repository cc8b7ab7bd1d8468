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

package memory_test

import (
	"strings"
	"testing"

	"github.com/gopher8080/gopher8080/curated"
	"github.com/gopher8080/gopher8080/hardware/memory"
	"github.com/gopher8080/gopher8080/test"
)

func TestReadWrite(t *testing.T) {
	mem := memory.NewMemory()
	test.ExpectEquality(t, mem.Read(0x0000), 0x00)
	test.ExpectEquality(t, mem.Read(0xffff), 0x00)

	mem.Write(0xffff, 0x76)
	test.ExpectEquality(t, mem.Read(0xffff), 0x76)

	// a 16-bit address past the top of memory wraps to the bottom
	var a uint16 = 0xffff
	a++
	mem.Write(a, 0x3e)
	test.ExpectEquality(t, mem.Read(0x0000), 0x3e)

	mem.Clear()
	test.ExpectEquality(t, mem.Read(0xffff), 0x00)
	test.ExpectEquality(t, mem.Read(0x0000), 0x00)
}

func TestLoad(t *testing.T) {
	mem := memory.NewMemory()

	test.ExpectSuccess(t, mem.Load(0x0100, []uint8{0x3e, 0x05, 0x3c, 0x76}))
	test.ExpectEquality(t, mem.Read(0x0100), 0x3e)
	test.ExpectEquality(t, mem.Read(0x0103), 0x76)
	test.ExpectEquality(t, mem.Read(0x0104), 0x00)

	// exactly fills the top of memory
	test.ExpectSuccess(t, mem.Load(0xfffe, []uint8{0x01, 0x02}))
	test.ExpectEquality(t, mem.Read(0xffff), 0x02)

	// one byte too many
	err := mem.Load(0xfffe, []uint8{0xaa, 0xbb, 0xcc})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, memory.ImageTooLarge))
	test.ExpectEquality(t, mem.Read(0xfffe), 0x01)
	test.ExpectEquality(t, mem.Read(0x0000), 0x00)

	// an image the size of the entire address space fits at origin zero
	test.ExpectSuccess(t, mem.Load(0x0000, make([]uint8, memory.Size)))

	test.ExpectSuccess(t, memory.Fits(0x0100, 0xff00))
	test.ExpectFailure(t, memory.Fits(0x0100, 0xff01))
}

func TestDump(t *testing.T) {
	mem := memory.NewMemory()
	mem.Write(0x2001, 0x42)
	d := strings.Split(mem.Dump(0x2001, 2), "\n")
	test.DemandEquality(t, len(d), 2)
	test.ExpectEquality(t, d[1], "2000 |     42 00"+strings.Repeat("   ", 13))
}
