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

// Package instructions defines the instruction set of the 8080. The
// Definition type describes a single opcode: its mnemonic, its operator,
// how many bytes it occupies, how many cycles it costs and where its
// operands come from.
//
// The table of definitions is created by GetDefinitions() in table.go. The
// table is generated from the CSV file in the generator directory and should
// not be edited by hand. To regenerate the table:
//
//	cd generator
//	go generate
//
// Every one of the 256 opcodes has a definition. Some opcodes are undocumented
// duplicates of other instructions and are flagged as such. Whether an
// undocumented opcode is executed is decided by the CPU.
package instructions
