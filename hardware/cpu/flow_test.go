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

package cpu_test

import (
	"fmt"
	"testing"

	"github.com/gopher8080/gopher8080/curated"
	"github.com/gopher8080/gopher8080/hardware/cpu"
	"github.com/gopher8080/gopher8080/test"
)

// flag masks as packed by PUSH PSW
const (
	flagSign   = 0x80
	flagZero   = 0x40
	flagParity = 0x04
	flagCarry  = 0x01
)

// the mask tested by each condition in opcode order (NZ, Z, NC, C, PO, PE,
// P, M). odd numbered conditions are true when the flag is set
var conditionMasks = []uint8{
	flagZero, flagZero,
	flagCarry, flagCarry,
	flagParity, flagParity,
	flagSign, flagSign,
}

func TestStackRoundTrip(t *testing.T) {
	mc, mem, _ := newCPU(t)

	for _, sp := range []uint16{0x0000, 0x0001, 0x0100, 0xfffe, 0xffff} {
		mem.Clear()
		mc.Reset()
		mc.PC.Load(0x8000)
		mc.SP.Load(sp)

		mc.BC().Load(0x1234)
		mc.DE().Load(0x5678)
		mc.HL().Load(0x9abc)
		mc.A.Load(0xde)
		mc.Status.FromValue(0xff)

		// PUSH B; PUSH D; PUSH H; PUSH PSW
		origin := mem.putInstructions(0x8000, 0xc5, 0xd5, 0xe5, 0xf5)
		for j := 0; j < 4; j++ {
			r := step(t, mc)
			test.ExpectEquality(t, r.Cycles, 11)
		}
		test.ExpectEquality(t, mc.SP.Address(), sp-8)

		mc.BC().Load(0)
		mc.DE().Load(0)
		mc.HL().Load(0)
		mc.A.Load(0)
		mc.Status.Reset()

		// POP PSW; POP H; POP D; POP B
		mem.putInstructions(origin, 0xf1, 0xe1, 0xd1, 0xc1)
		for j := 0; j < 4; j++ {
			r := step(t, mc)
			test.ExpectEquality(t, r.Cycles, 10)
		}

		test.ExpectEquality(t, mc.SP.Address(), sp, sp)
		test.ExpectEquality(t, mc.BC().Value(), 0x1234, sp)
		test.ExpectEquality(t, mc.DE().Value(), 0x5678, sp)
		test.ExpectEquality(t, mc.HL().Value(), 0x9abc, sp)
		test.ExpectEquality(t, mc.A.Value(), 0xde, sp)
		test.ExpectEquality(t, mc.Status.String(), "SZ-A-P-C", sp)
	}
}

func TestStackLayout(t *testing.T) {
	mc, mem, _ := newCPU(t)
	mc.SP.Load(0x2000)
	mc.BC().Load(0x1234)
	mc.A.Load(0xde)

	// PUSH B; PUSH PSW
	mem.putInstructions(0x0000, 0xc5, 0xf5)
	step(t, mc)
	mem.assert(t, 0x1fff, 0x12)
	mem.assert(t, 0x1ffe, 0x34)
	test.ExpectEquality(t, mc.SP.Address(), 0x1ffe)
	step(t, mc)
	mem.assert(t, 0x1ffd, 0xde)

	// the packed flags have bit 1 set and bits 3 and 5 clear
	mem.assert(t, 0x1ffc, 0x02)
	test.ExpectEquality(t, mc.SP.Address(), 0x1ffc)

	// POP PSW ignores the fixed bits
	mem.Write(0x1ffc, 0xff)
	mem.putInstructions(0x0002, 0xf1)
	step(t, mc)
	test.ExpectEquality(t, mc.Status.Value(), 0xd7)
	test.ExpectEquality(t, mc.PSW(), 0xded7)

	// the stack wraps at the top of memory
	mem.Clear()
	mc.Reset()
	mc.SP.Load(0x0000)
	mc.BC().Load(0xabcd)
	mem.putInstructions(0x0100, 0xc5, 0xd1)
	mc.PC.Load(0x0100)
	step(t, mc)
	mem.assert(t, 0xffff, 0xab)
	mem.assert(t, 0xfffe, 0xcd)
	test.ExpectEquality(t, mc.SP.Address(), 0xfffe)

	// POP D with SP at the top of memory reads the high byte from 0x0000
	mc.SP.Load(0xffff)
	mem.Write(0x0000, 0x12)
	step(t, mc)
	test.ExpectEquality(t, mc.DE().Value(), 0x12ab)
	test.ExpectEquality(t, mc.SP.Address(), 0x0001)
}

func TestSubroutine(t *testing.T) {
	mc, mem, _ := newCPU(t)

	// LXI SP,2400h; CALL 0200h; HLT
	mem.putInstructions(0x0100, 0x31, 0x00, 0x24, 0xcd, 0x00, 0x02, 0x76)

	// RET
	mem.putInstructions(0x0200, 0xc9)

	mc.PC.Load(0x0100)
	step(t, mc)
	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 17)
	test.ExpectSuccess(t, r.BranchSuccess)
	test.ExpectEquality(t, mc.PC.Address(), 0x0200)
	test.ExpectEquality(t, mc.SP.Address(), 0x23fe)
	mem.assert(t, 0x23ff, 0x01)
	mem.assert(t, 0x23fe, 0x06)

	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 10)
	test.ExpectEquality(t, mc.PC.Address(), 0x0106)
	test.ExpectEquality(t, mc.SP.Address(), 0x2400)

	run(t, mc)
	test.ExpectEquality(t, mc.Cycles, 44)
	test.ExpectFailure(t, mc.Killed)
}

func TestConditionalJump(t *testing.T) {
	mc, mem, _ := newCPU(t)

	for i, mask := range conditionMasks {
		for _, set := range []bool{false, true} {
			opcode := uint8(0xc2) | uint8(i)<<3
			taken := set == (i%2 == 1)

			mem.Clear()
			mc.Reset()
			mc.PC.Load(0x0100)
			mem.putInstructions(0x0100, opcode, 0x34, 0x12)
			if set {
				mc.Status.FromValue(mask)
			}

			r := step(t, mc)
			tag := fmt.Sprintf("%#02x %v", opcode, set)
			test.ExpectEquality(t, r.Cycles, 10, tag)
			test.ExpectEquality(t, r.BranchSuccess, taken, tag)
			if taken {
				test.ExpectEquality(t, mc.PC.Address(), 0x1234, tag)
			} else {
				test.ExpectEquality(t, mc.PC.Address(), 0x0103, tag)
			}
		}
	}
}

func TestConditionalCall(t *testing.T) {
	mc, mem, _ := newCPU(t)

	for i, mask := range conditionMasks {
		for _, set := range []bool{false, true} {
			opcode := uint8(0xc4) | uint8(i)<<3
			taken := set == (i%2 == 1)

			mem.Clear()
			mc.Reset()
			mc.PC.Load(0x0100)
			mc.SP.Load(0x2000)
			mem.putInstructions(0x0100, opcode, 0x34, 0x12)
			if set {
				mc.Status.FromValue(mask)
			}

			r := step(t, mc)
			tag := fmt.Sprintf("%#02x %v", opcode, set)
			test.ExpectEquality(t, r.BranchSuccess, taken, tag)
			if taken {
				test.ExpectEquality(t, r.Cycles, 17, tag)
				test.ExpectEquality(t, mc.PC.Address(), 0x1234, tag)
				test.ExpectEquality(t, mc.SP.Address(), 0x1ffe, tag)
				mem.assert(t, 0x1fff, 0x01)
				mem.assert(t, 0x1ffe, 0x03)
			} else {
				test.ExpectEquality(t, r.Cycles, 11, tag)
				test.ExpectEquality(t, mc.PC.Address(), 0x0103, tag)
				test.ExpectEquality(t, mc.SP.Address(), 0x2000, tag)
			}
		}
	}
}

func TestConditionalReturn(t *testing.T) {
	mc, mem, _ := newCPU(t)

	for i, mask := range conditionMasks {
		for _, set := range []bool{false, true} {
			opcode := uint8(0xc0) | uint8(i)<<3
			taken := set == (i%2 == 1)

			mem.Clear()
			mc.Reset()
			mc.PC.Load(0x0100)
			mc.SP.Load(0x2000)
			mem.putInstructions(0x0100, opcode)
			mem.putInstructions(0x2000, 0x34, 0x12)
			if set {
				mc.Status.FromValue(mask)
			}

			r := step(t, mc)
			tag := fmt.Sprintf("%#02x %v", opcode, set)
			test.ExpectEquality(t, r.BranchSuccess, taken, tag)
			if taken {
				test.ExpectEquality(t, r.Cycles, 11, tag)
				test.ExpectEquality(t, mc.PC.Address(), 0x1234, tag)
				test.ExpectEquality(t, mc.SP.Address(), 0x2002, tag)
			} else {
				test.ExpectEquality(t, r.Cycles, 5, tag)
				test.ExpectEquality(t, mc.PC.Address(), 0x0101, tag)
				test.ExpectEquality(t, mc.SP.Address(), 0x2000, tag)
			}
		}
	}
}

func TestRestart(t *testing.T) {
	mc, mem, _ := newCPU(t)

	for n := uint16(0); n < 8; n++ {
		mem.Clear()
		mc.Reset()
		mc.PC.Load(0x0100)
		mc.SP.Load(0x2000)
		mem.putInstructions(0x0100, 0xc7|uint8(n)<<3)

		r := step(t, mc)
		test.ExpectEquality(t, r.Cycles, 11, n)
		test.ExpectEquality(t, mc.PC.Address(), n*8, n)
		test.ExpectEquality(t, mc.SP.Address(), 0x1ffe, n)
		mem.assert(t, 0x1fff, 0x01)
		mem.assert(t, 0x1ffe, 0x01)
	}
}

func TestIndirectFlow(t *testing.T) {
	mc, mem, _ := newCPU(t)

	// PCHL
	mc.HL().Load(0x4321)
	mem.putInstructions(0x0000, 0xe9)
	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 5)
	test.ExpectEquality(t, mc.PC.Address(), 0x4321)

	// SPHL
	mem.putInstructions(0x4321, 0xf9, 0xe3)
	step(t, mc)
	test.ExpectEquality(t, mc.SP.Address(), 0x4321)

	// XTHL
	mc.SP.Load(0x2000)
	mem.putInstructions(0x2000, 0x34, 0x12)
	mc.HL().Load(0xabcd)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 18)
	test.ExpectEquality(t, mc.HL().Value(), 0x1234)
	test.ExpectEquality(t, mc.SP.Address(), 0x2000)
	mem.assert(t, 0x2000, 0xcd)
	mem.assert(t, 0x2001, 0xab)
}

func TestProgramCounterWrap(t *testing.T) {
	mc, mem, _ := newCPU(t)

	// NOP at the top of memory
	mc.PC.Load(0xffff)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), 0x0000)

	// JMP with the operand split across the top of memory
	mem.Clear()
	mc.Reset()
	mc.PC.Load(0xfffe)
	mem.putInstructions(0xfffe, 0xc3, 0x34)
	mem.Write(0x0000, 0x12)
	r := step(t, mc)
	test.ExpectEquality(t, r.InstructionData, 0x1234)
	test.ExpectEquality(t, mc.PC.Address(), 0x1234)
}

func TestUndocumented(t *testing.T) {
	mc, mem, prefs := newCPU(t)
	test.ExpectSuccess(t, prefs.Undocumented.Get())

	// the undocumented NOPs
	for _, opcode := range []uint8{0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38} {
		mem.Clear()
		mc.Reset()
		mem.putInstructions(0x0000, opcode)
		r := step(t, mc)
		test.ExpectEquality(t, r.Cycles, 4, opcode)
		test.ExpectEquality(t, mc.PC.Address(), 0x0001, opcode)
	}

	// CB is a JMP
	mem.Clear()
	mc.Reset()
	mem.putInstructions(0x0000, 0xcb, 0x34, 0x12)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), 0x1234)

	// DD, ED and FD are a CALL and D9 is a RET
	for _, opcode := range []uint8{0xdd, 0xed, 0xfd} {
		mem.Clear()
		mc.Reset()
		mc.SP.Load(0x2000)
		mem.putInstructions(0x0100, opcode, 0x00, 0x02)
		mem.putInstructions(0x0200, 0xd9)
		mc.PC.Load(0x0100)
		r := step(t, mc)
		test.ExpectEquality(t, r.Cycles, 17, opcode)
		test.ExpectEquality(t, mc.PC.Address(), 0x0200, opcode)
		step(t, mc)
		test.ExpectEquality(t, mc.PC.Address(), 0x0103, opcode)
		test.ExpectEquality(t, mc.SP.Address(), 0x2000, opcode)
	}

	// with undocumented opcodes disabled the same opcodes are fatal
	test.DemandSuccess(t, prefs.Undocumented.Set(false))
	mem.Clear()
	mc.Reset()
	mem.putInstructions(0x0000, 0x00, 0x08)
	step(t, mc)
	err := mc.ExecuteInstruction()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cpu.UnimplementedInstruction))
	test.ExpectEquality(t, mc.PC.Address(), 0x0001)
	test.ExpectSuccess(t, mc.Killed)
	test.ExpectFailure(t, mc.Running)
}

func TestUnsupported(t *testing.T) {
	mc, mem, _ := newCPU(t)

	// DAA, IN and OUT are decoded but are fatal when executed
	for _, opcode := range []uint8{0x27, 0xdb, 0xd3} {
		mem.Clear()
		mc.Reset()

		// MVI A,05h; MVI B,07h
		origin := mem.putInstructions(0x0000, 0x3e, 0x05, 0x06, 0x07)
		mem.putInstructions(origin, opcode, 0x10)
		step(t, mc)
		step(t, mc)

		err := mc.ExecuteInstruction()
		test.ExpectFailure(t, err, opcode)
		test.ExpectSuccess(t, curated.Is(err, cpu.UnsupportedInstruction), opcode)
		test.ExpectFailure(t, curated.Is(err, cpu.UnimplementedInstruction), opcode)

		// state is as it was before the instruction
		test.ExpectEquality(t, mc.A.Value(), 0x05, opcode)
		test.ExpectEquality(t, mc.B.Value(), 0x07, opcode)
		test.ExpectEquality(t, mc.PC.Address(), origin, opcode)
		test.ExpectEquality(t, mc.Cycles, 14, opcode)
		test.ExpectSuccess(t, mc.Killed, opcode)
		test.ExpectFailure(t, mc.Running, opcode)
		test.ExpectFailure(t, mc.LastResult.Final, opcode)

		// a killed CPU does nothing
		test.ExpectSuccess(t, mc.ExecuteInstruction(), opcode)
		test.ExpectEquality(t, mc.PC.Address(), origin, opcode)
		test.ExpectEquality(t, mc.Cycles, 14, opcode)
	}

	// the error message names the instruction
	mem.Clear()
	mc.Reset()
	mem.putInstructions(0x0000, 0x27)
	err := mc.ExecuteInstruction()
	test.ExpectEquality(t, err.Error(), "cpu: DAA not implemented (0x27) at (0x0000)")

	// reset revives a killed CPU
	mc.Reset()
	test.ExpectSuccess(t, mc.Running)
	test.ExpectFailure(t, mc.Killed)
}

func TestIndependence(t *testing.T) {
	programs := []struct {
		program []uint8
		a       uint8
	}{
		// MVI A,01h; INR A; HLT
		{program: []uint8{0x3e, 0x01, 0x3c, 0x76}, a: 0x02},

		// MVI A,10h; ADI 20h; HLT
		{program: []uint8{0x3e, 0x10, 0xc6, 0x20, 0x76}, a: 0x30},

		// MVI A,ffh; CMA; HLT
		{program: []uint8{0x3e, 0xff, 0x2f, 0x76}, a: 0x00},
	}

	for i, p := range programs {
		i, p := i, p
		t.Run(fmt.Sprintf("program %d", i), func(t *testing.T) {
			t.Parallel()
			mc, mem, _ := newCPU(t)
			mem.putInstructions(0x0100, p.program...)
			mc.PC.Load(0x0100)
			run(t, mc)
			test.ExpectEquality(t, mc.A.Value(), p.a)
		})
	}
}
