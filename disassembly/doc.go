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

// Package disassembly produces a static listing of 8080 instructions from
// memory. The listing is linear: every instruction is decoded on the
// assumption that the previous instruction was decoded correctly. Data
// embedded in code will be decoded as instructions.
//
// For a quick disassembly of the attached image the FromMemory() function can
// be used:
//
//	dsm, err := disassembly.FromMemory(m.Mem, m.Origin, end)
//	dsm.Write(os.Stdout, disassembly.WriteAttr{ByteCode: true})
//
// The debugger updates entries as instructions are executed with the
// ExecutedEntry() function. Executed entries show the cycles the instruction
// actually took.
package disassembly
