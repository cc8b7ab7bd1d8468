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

// Package registers implements the register types of the 8080.
//
// The seven 8-bit registers (A, B, C, D, E, H and L) are instances of the
// Register type. The register pairs BC, DE and HL are not storage in their own
// right. The Pair type is a view over two Register instances, the first being
// the high byte.
//
// The program counter and the stack pointer are 16 bits wide and have their
// own types. The flags are stored in the StatusRegister type, which also knows
// how to pack the flags into the byte pushed onto the stack by PUSH PSW.
package registers
