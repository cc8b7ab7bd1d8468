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

package cpu

import (
	"github.com/gopher8080/gopher8080/hardware/cpu/instructions"
	"github.com/gopher8080/gopher8080/hardware/cpu/registers"
)

// register returns the 8-bit register named by the operand. returns nil for
// RegM and for operands that are not 8-bit registers.
func (mc *CPU) register(op instructions.Operand) *registers.Register {
	switch op {
	case instructions.RegA:
		return &mc.A
	case instructions.RegB:
		return &mc.B
	case instructions.RegC:
		return &mc.C
	case instructions.RegD:
		return &mc.D
	case instructions.RegE:
		return &mc.E
	case instructions.RegH:
		return &mc.H
	case instructions.RegL:
		return &mc.L
	}
	return nil
}

// read8 returns the value of an 8-bit operand. RegM is the memory location
// addressed by HL.
func (mc *CPU) read8(op instructions.Operand) uint8 {
	if op == instructions.RegM {
		return mc.mem.Read(mc.HL().Value())
	}
	return mc.register(op).Value()
}

// write8 stores a value in an 8-bit operand.
func (mc *CPU) write8(op instructions.Operand, v uint8) {
	if op == instructions.RegM {
		mc.mem.Write(mc.HL().Value(), v)
		return
	}
	mc.register(op).Load(v)
}

// pair returns the 16-bit value of a register pair operand.
func (mc *CPU) pair(op instructions.Operand) uint16 {
	switch op {
	case instructions.PairBC:
		return mc.BC().Value()
	case instructions.PairDE:
		return mc.DE().Value()
	case instructions.PairHL:
		return mc.HL().Value()
	case instructions.PairSP:
		return mc.SP.Address()
	case instructions.PairPSW:
		return mc.PSW()
	}
	panic("cpu: not a register pair: " + op.String())
}

// loadPair stores a 16-bit value in a register pair operand.
func (mc *CPU) loadPair(op instructions.Operand, v uint16) {
	switch op {
	case instructions.PairBC:
		mc.BC().Load(v)
	case instructions.PairDE:
		mc.DE().Load(v)
	case instructions.PairHL:
		mc.HL().Load(v)
	case instructions.PairSP:
		mc.SP.Load(v)
	case instructions.PairPSW:
		mc.A.Load(uint8(v >> 8))
		mc.Status.FromValue(uint8(v))
	default:
		panic("cpu: not a register pair: " + op.String())
	}
}

// push a 16-bit value onto the stack. the high byte is written to SP-1 and the
// low byte to SP-2.
func (mc *CPU) push(v uint16) {
	sp := mc.SP.Address()
	mc.mem.Write(sp-1, uint8(v>>8))
	mc.mem.Write(sp-2, uint8(v))
	mc.SP.Subtract(2)
}

// pop a 16-bit value from the stack.
func (mc *CPU) pop() uint16 {
	sp := mc.SP.Address()
	lo := mc.mem.Read(sp)
	hi := mc.mem.Read(sp + 1)
	mc.SP.Add(2)
	return uint16(hi)<<8 | uint16(lo)
}

// condition returns true if the condition is met by the current flags.
func (mc *CPU) condition(c instructions.Condition) bool {
	switch c {
	case instructions.NotZero:
		return !mc.Status.Zero
	case instructions.Zero:
		return mc.Status.Zero
	case instructions.NoCarry:
		return !mc.Status.Carry
	case instructions.Carry:
		return mc.Status.Carry
	case instructions.ParityOdd:
		return !mc.Status.Parity
	case instructions.ParityEven:
		return mc.Status.Parity
	case instructions.Plus:
		return !mc.Status.Sign
	case instructions.Minus:
		return mc.Status.Sign
	}
	return true
}
