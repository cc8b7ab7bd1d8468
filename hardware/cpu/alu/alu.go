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

package alu

import "math/bits"

// Result of an 8-bit operation.
type Result struct {
	Value    uint8
	Carry    bool
	AuxCarry bool
}

func bit(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// Add returns a + b + carry. Carry is set if the unconstrained sum is greater
// than 255.
func Add(a uint8, b uint8, carry bool) Result {
	c := bit(carry)
	sum := uint16(a) + uint16(b) + uint16(c)
	return Result{
		Value:    uint8(sum),
		Carry:    sum > 0xff,
		AuxCarry: a&0x0f+b&0x0f+c > 0x0f,
	}
}

// Sub returns a - b - borrow. Carry is set if a borrow occurred, ie. if b plus
// the incoming borrow is greater than a.
func Sub(a uint8, b uint8, borrow bool) Result {
	c := 1 - bit(borrow)
	nb := ^b
	sum := uint16(a) + uint16(nb) + uint16(c)
	return Result{
		Value:    uint8(sum),
		Carry:    sum <= 0xff,
		AuxCarry: a&0x0f+nb&0x0f+c > 0x0f,
	}
}

// Compare is a subtraction without borrow. The caller must not store the
// value.
func Compare(a uint8, b uint8) Result {
	return Sub(a, b, false)
}

// Inc returns v + 1. The Carry field is always false and must not be applied
// to the status register.
func Inc(v uint8) Result {
	return Result{
		Value:    v + 1,
		AuxCarry: v&0x0f == 0x0f,
	}
}

// Dec returns v - 1. The Carry field is always false and must not be applied
// to the status register.
func Dec(v uint8) Result {
	return Result{
		Value:    v - 1,
		AuxCarry: v&0x0f != 0x00,
	}
}

// And returns a & b. Both carry flags are clear.
func And(a uint8, b uint8) Result {
	return Result{Value: a & b}
}

// Or returns a | b. Both carry flags are clear.
func Or(a uint8, b uint8) Result {
	return Result{Value: a | b}
}

// Xor returns a ^ b. Both carry flags are clear.
func Xor(a uint8, b uint8) Result {
	return Result{Value: a ^ b}
}

// Complement returns ^a. No flags are affected by CMA.
func Complement(a uint8) uint8 {
	return ^a
}

// RotateLeft rotates a left. Bit 7 goes into both bit 0 and Carry (RLC).
func RotateLeft(a uint8) Result {
	return Result{
		Value: bits.RotateLeft8(a, 1),
		Carry: a&0x80 == 0x80,
	}
}

// RotateRight rotates a right. Bit 0 goes into both bit 7 and Carry (RRC).
func RotateRight(a uint8) Result {
	return Result{
		Value: bits.RotateLeft8(a, -1),
		Carry: a&0x01 == 0x01,
	}
}

// RotateLeftThroughCarry rotates the nine bits formed by Carry and a (RAL).
func RotateLeftThroughCarry(a uint8, carry bool) Result {
	return Result{
		Value: a<<1 | bit(carry),
		Carry: a&0x80 == 0x80,
	}
}

// RotateRightThroughCarry rotates the nine bits formed by a and Carry (RAR).
func RotateRightThroughCarry(a uint8, carry bool) Result {
	return Result{
		Value: a>>1 | bit(carry)<<7,
		Carry: a&0x01 == 0x01,
	}
}

// AddPair returns the 16-bit sum of a and b and whether the sum overflowed.
// This is the only 16-bit arithmetic that affects a flag (DAD).
func AddPair(a uint16, b uint16) (uint16, bool) {
	sum := uint32(a) + uint32(b)
	return uint16(sum), sum > 0xffff
}

// Parity returns true if v has an even number of set bits.
func Parity(v uint8) bool {
	return bits.OnesCount8(v)&0x01 == 0
}
