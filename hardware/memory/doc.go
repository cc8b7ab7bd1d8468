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

// Package memory implements the address space of the emulated machine: a
// single flat area of 65536 bytes shared by code, data and the stack. There is
// no banking, no protection and no memory mapped I/O.
//
//	    CPU ---- cpu bus ---- MEMORY ---- debugger
//
// The CPU accesses memory through the cpubus.Memory interface. The image
// loader, the disassembler and the debugger use the additional functions of
// the Memory type.
package memory
