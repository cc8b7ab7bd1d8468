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

// Package alu contains the arithmetic and logic operations of the 8080.
//
// The functions are pure. They take operand values and return a Result. They
// know nothing about registers, memory or the program counter and so can be
// tested without a CPU.
//
// A Result carries the value and the two carry flags. The Sign, Zero and
// Parity flags are a function of the value alone and are set by the CPU with
// StatusRegister.SetSZP(). Which of the flags in a Result are applied to the
// status register is decided by the CPU according to the instruction. For
// example, INR and DCR never change the Carry flag and the rotate
// instructions only change the Carry flag.
//
// AuxCarry is the carry out of bit 3. For subtraction the 8080 produces
// AuxCarry from the internal addition of the two's complement of the operand,
// so that the flag is set when no borrow from bit 4 was needed.
package alu
