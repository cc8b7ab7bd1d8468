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
	"testing"

	"github.com/gopher8080/gopher8080/hardware/cpu"
	"github.com/gopher8080/gopher8080/hardware/cpu/execution"
	"github.com/gopher8080/gopher8080/hardware/preferences"
	"github.com/gopher8080/gopher8080/test"
)

type mockMem struct {
	internal []uint8
}

func newMockMem() *mockMem {
	return &mockMem{
		internal: make([]uint8, 0x10000),
	}
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.Write(origin+uint16(i), b)
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	if d := mem.Read(address); d != value {
		t.Errorf("memory assertion failed (%02x - wanted %02x at address %04x)", d, value, address)
	}
}

func (mem *mockMem) Clear() {
	for i := range mem.internal {
		mem.internal[i] = 0
	}
}

func (mem *mockMem) Read(address uint16) uint8 {
	return mem.internal[address]
}

func (mem *mockMem) Write(address uint16, data uint8) {
	mem.internal[address] = data
}

func newCPU(t *testing.T) (*cpu.CPU, *mockMem, *preferences.Preferences) {
	t.Helper()
	prefs, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	mem := newMockMem()
	mc := cpu.NewCPU(prefs, mem)
	mc.Reset()
	return mc, mem, prefs
}

// step executes a single instruction and checks that the result is valid
func step(t *testing.T, mc *cpu.CPU) execution.Result {
	t.Helper()
	err := mc.ExecuteInstruction()
	if err != nil {
		t.Fatal(err)
	}
	err = mc.LastResult.IsValid()
	if err != nil {
		t.Fatal(err)
	}
	return mc.LastResult
}

// run executes instructions until the CPU stops running
func run(t *testing.T, mc *cpu.CPU) {
	t.Helper()
	for i := 0; mc.Running; i++ {
		if i > 10000 {
			t.Fatalf("program did not halt")
		}
		step(t, mc)
	}
}

func TestScenarios(t *testing.T) {
	mc, mem, _ := newCPU(t)

	// MVI A,5; INR A; HLT
	mem.putInstructions(0x0100, 0x3e, 0x05, 0x3c, 0x76)
	mc.PC.Load(0x0100)
	run(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 6)
	test.ExpectFailure(t, mc.Status.Zero)
	test.ExpectFailure(t, mc.Running)
	test.ExpectFailure(t, mc.Killed)
	test.ExpectEquality(t, mc.Status.String(), "sz-a-P-c")
	test.ExpectEquality(t, mc.Cycles, 19)
	test.ExpectEquality(t, mc.PC.Address(), 0x0104)

	// MVI B,0xFF; INR B; HLT
	mem.Clear()
	mc.Reset()
	mem.putInstructions(0x0100, 0x06, 0xff, 0x04, 0x76)
	mc.PC.Load(0x0100)
	run(t, mc)
	test.ExpectEquality(t, mc.B.Value(), 0)
	test.ExpectSuccess(t, mc.Status.Zero)
	test.ExpectEquality(t, mc.Status.String(), "sZ-A-P-c")

	// LXI H,0x2000; MVI M,0x42; HLT
	mem.Clear()
	mc.Reset()
	mem.putInstructions(0x0100, 0x21, 0x00, 0x20, 0x36, 0x42, 0x76)
	mc.PC.Load(0x0100)
	run(t, mc)
	mem.assert(t, 0x2000, 0x42)
	test.ExpectEquality(t, mc.HL().Value(), 0x2000)
	test.ExpectEquality(t, mc.Cycles, 27)
}

func TestCPU(t *testing.T) {
	mc, mem, _ := newCPU(t)

	testDataTransfer(t, mc, mem)
	testDirectAddressing(t, mc, mem)
	testArithmetic(t, mc, mem)
	testLogical(t, mc, mem)
	testCompare(t, mc, mem)
	testIncrementDecrement(t, mc, mem)
	testPairArithmetic(t, mc, mem)
	testRotate(t, mc, mem)
	testMachineControl(t, mc, mem)
}

func testDataTransfer(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	mem.Clear()
	mc.Reset()

	// MVI B,11h; MOV C,B; MOV A,C
	origin = mem.putInstructions(origin, 0x06, 0x11, 0x48, 0x79)
	step(t, mc)
	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 5)
	step(t, mc)
	test.ExpectEquality(t, mc.C.Value(), 0x11)
	test.ExpectEquality(t, mc.A.Value(), 0x11)

	// LXI H,3300h; MOV M,A; MOV E,M
	origin = mem.putInstructions(origin, 0x21, 0x00, 0x33, 0x77, 0x5e)
	step(t, mc)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 7)
	mem.assert(t, 0x3300, 0x11)
	step(t, mc)
	test.ExpectEquality(t, mc.E.Value(), 0x11)

	// XCHG
	mem.putInstructions(origin, 0xeb)
	mc.DE().Load(0x1234)
	step(t, mc)
	test.ExpectEquality(t, mc.HL().Value(), 0x1234)
	test.ExpectEquality(t, mc.DE().Value(), 0x3300)

	// data transfer does not affect the flags
	test.ExpectEquality(t, mc.Status.String(), "sz-a-p-c")
}

func testDirectAddressing(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	mem.Clear()
	mc.Reset()

	// MVI A,55h; STA 3000h; MVI A,00h; LDA 3000h
	origin = mem.putInstructions(origin, 0x3e, 0x55, 0x32, 0x00, 0x30, 0x3e, 0x00, 0x3a, 0x00, 0x30)
	step(t, mc)
	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 13)
	mem.assert(t, 0x3000, 0x55)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x55)

	// LXI H,beefh; SHLD 3100h; LXI H,0000h; LHLD 3100h
	origin = mem.putInstructions(origin, 0x21, 0xef, 0xbe, 0x22, 0x00, 0x31, 0x21, 0x00, 0x00, 0x2a, 0x00, 0x31)
	step(t, mc)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 16)
	mem.assert(t, 0x3100, 0xef)
	mem.assert(t, 0x3101, 0xbe)
	step(t, mc)
	test.ExpectEquality(t, mc.HL().Value(), 0x0000)
	step(t, mc)
	test.ExpectEquality(t, mc.H.Value(), 0xbe)
	test.ExpectEquality(t, mc.L.Value(), 0xef)

	// LXI B,3200h; STAX B; LXI D,3000h; MVI A,00h; LDAX D
	mem.putInstructions(origin, 0x01, 0x00, 0x32, 0x02, 0x11, 0x00, 0x30, 0x3e, 0x00, 0x1a)
	step(t, mc)
	test.ExpectEquality(t, mc.B.Value(), 0x32)
	test.ExpectEquality(t, mc.C.Value(), 0x00)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 7)
	mem.assert(t, 0x3200, 0x55)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x00)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x55)
}

func testArithmetic(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	mem.Clear()
	mc.Reset()

	// MVI A,6ch; ADI 2eh
	origin = mem.putInstructions(origin, 0x3e, 0x6c, 0xc6, 0x2e)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x9a)
	test.ExpectEquality(t, mc.Status.String(), "Sz-A-P-c")

	// ACI 66h (carry clear)
	origin = mem.putInstructions(origin, 0xce, 0x66)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x00)
	test.ExpectEquality(t, mc.Status.String(), "sZ-A-P-C")

	// ACI 00h (carry set)
	origin = mem.putInstructions(origin, 0xce, 0x00)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x01)
	test.ExpectEquality(t, mc.Status.String(), "sz-a-p-c")

	// SUI 02h
	origin = mem.putInstructions(origin, 0xd6, 0x02)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0xff)
	test.ExpectEquality(t, mc.Status.String(), "Sz-a-P-C")

	// SBI 0fh (borrow set)
	origin = mem.putInstructions(origin, 0xde, 0x0f)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0xef)
	test.ExpectEquality(t, mc.Status.String(), "Sz-a-p-c")

	// MVI B,efh; SBB B
	origin = mem.putInstructions(origin, 0x06, 0xef, 0x98)
	step(t, mc)
	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 4)
	test.ExpectEquality(t, mc.A.Value(), 0x00)
	test.ExpectEquality(t, mc.Status.String(), "sZ-A-P-c")

	// LXI H,3000h; MVI M,01h; MVI A,0fh; ADD M
	origin = mem.putInstructions(origin, 0x21, 0x00, 0x30, 0x36, 0x01, 0x3e, 0x0f, 0x86)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 7)
	test.ExpectEquality(t, mc.A.Value(), 0x10)
	test.ExpectEquality(t, mc.Status.String(), "sz-A-p-c")

	// STC; MVI C,f0h; ADC C
	origin = mem.putInstructions(origin, 0x37, 0x0e, 0xf0, 0x89)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x01)
	test.ExpectSuccess(t, mc.Status.Carry)

	// SUB A
	mem.putInstructions(origin, 0x97)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x00)
	test.ExpectEquality(t, mc.Status.String(), "sZ-A-P-c")
}

func testLogical(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	mem.Clear()
	mc.Reset()

	// MVI A,fch; STC; ANI 0fh
	origin = mem.putInstructions(origin, 0x3e, 0xfc, 0x37, 0xe6, 0x0f)
	step(t, mc)
	step(t, mc)
	test.ExpectSuccess(t, mc.Status.Carry)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x0c)
	test.ExpectEquality(t, mc.Status.String(), "sz-a-P-c")

	// XRI ffh
	origin = mem.putInstructions(origin, 0xee, 0xff)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0xf3)
	test.ExpectEquality(t, mc.Status.String(), "Sz-a-P-c")

	// ORI 0ch
	origin = mem.putInstructions(origin, 0xf6, 0x0c)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0xff)
	test.ExpectEquality(t, mc.Status.String(), "Sz-a-P-c")

	// MVI B,01h; ANA B; ORA B; XRA A
	mem.putInstructions(origin, 0x06, 0x01, 0xa0, 0xb0, 0xaf)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x01)
	test.ExpectEquality(t, mc.Status.String(), "sz-a-p-c")
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x01)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x00)
	test.ExpectEquality(t, mc.Status.String(), "sZ-a-P-c")
}

func testCompare(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	mem.Clear()
	mc.Reset()

	// MVI A,0ah; CPI 05h
	origin = mem.putInstructions(origin, 0x3e, 0x0a, 0xfe, 0x05)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x0a)
	test.ExpectEquality(t, mc.Status.String(), "sz-A-P-c")

	// CPI 0bh
	origin = mem.putInstructions(origin, 0xfe, 0x0b)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x0a)
	test.ExpectEquality(t, mc.Status.String(), "Sz-a-P-C")

	// CMP A is computed the same as any other comparison. the accumulator
	// is unchanged
	origin = mem.putInstructions(origin, 0x3e, 0x85, 0xbf)
	step(t, mc)
	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 4)
	test.ExpectEquality(t, mc.A.Value(), 0x85)
	test.ExpectEquality(t, mc.Status.String(), "sZ-A-P-c")

	// LXI H,3000h; MVI M,86h; CMP M
	mem.putInstructions(origin, 0x21, 0x00, 0x30, 0x36, 0x86, 0xbe)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x85)
	test.ExpectSuccess(t, mc.Status.Carry)
	test.ExpectSuccess(t, mc.Status.Sign)
	test.ExpectFailure(t, mc.Status.Zero)
}

func testIncrementDecrement(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	mem.Clear()
	mc.Reset()

	// STC; MVI C,00h; DCR C; INR C
	origin = mem.putInstructions(origin, 0x37, 0x0e, 0x00, 0x0d, 0x0c)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.C.Value(), 0xff)
	test.ExpectEquality(t, mc.Status.String(), "Sz-a-P-C")
	step(t, mc)
	test.ExpectEquality(t, mc.C.Value(), 0x00)
	test.ExpectEquality(t, mc.Status.String(), "sZ-A-P-C")

	// CMC; INR C
	origin = mem.putInstructions(origin, 0x3f, 0x0c)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.C.Value(), 0x01)
	test.ExpectEquality(t, mc.Status.String(), "sz-a-p-c")

	// LXI H,4000h; INR M; DCR M; DCR M
	mem.putInstructions(origin, 0x21, 0x00, 0x40, 0x34, 0x35, 0x35)
	step(t, mc)
	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 10)
	mem.assert(t, 0x4000, 0x01)
	step(t, mc)
	mem.assert(t, 0x4000, 0x00)
	test.ExpectSuccess(t, mc.Status.Zero)
	step(t, mc)
	mem.assert(t, 0x4000, 0xff)
	test.ExpectFailure(t, mc.Status.Carry)

	// every register and every starting value. carry is never affected
	for op := uint8(0); op < 8; op++ {
		if op == 6 {
			// M
			continue
		}
		for v := 0; v <= 0xff; v++ {
			for _, carry := range []bool{false, true} {
				mem.Clear()
				mc.Reset()
				mem.putInstructions(0, 0x06|op<<3, uint8(v), 0x04|op<<3, 0x05|op<<3)
				mc.Status.Carry = carry
				step(t, mc)
				step(t, mc)
				test.DemandEquality(t, mc.Status.Carry, carry, "INR", op, v)
				step(t, mc)
				test.DemandEquality(t, mc.Status.Carry, carry, "DCR", op, v)
			}
		}
	}
}

func testPairArithmetic(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	mem.Clear()
	mc.Reset()

	// XRA A sets Zero and Parity
	origin = mem.putInstructions(origin, 0xaf)
	step(t, mc)
	test.ExpectEquality(t, mc.Status.String(), "sZ-a-P-c")

	// LXI H,ffffh; LXI B,0001h; DAD B
	origin = mem.putInstructions(origin, 0x21, 0xff, 0xff, 0x01, 0x01, 0x00, 0x09)
	step(t, mc)
	step(t, mc)
	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 10)
	test.ExpectEquality(t, mc.HL().Value(), 0x0000)
	test.ExpectEquality(t, mc.Status.String(), "sZ-a-P-C")

	// LXI D,1000h; DAD D; DAD H
	origin = mem.putInstructions(origin, 0x11, 0x00, 0x10, 0x19, 0x29)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.HL().Value(), 0x1000)
	test.ExpectEquality(t, mc.Status.String(), "sZ-a-P-c")
	step(t, mc)
	test.ExpectEquality(t, mc.HL().Value(), 0x2000)

	// LXI SP,0100h; DAD SP
	origin = mem.putInstructions(origin, 0x31, 0x00, 0x01, 0x39)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.HL().Value(), 0x2100)

	// LXI B,ffffh; INX B; DCX B; INX SP; DCX D
	mem.putInstructions(origin, 0x01, 0xff, 0xff, 0x03, 0x0b, 0x33, 0x1b)
	step(t, mc)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 5)
	test.ExpectEquality(t, mc.BC().Value(), 0x0000)
	step(t, mc)
	test.ExpectEquality(t, mc.BC().Value(), 0xffff)
	step(t, mc)
	test.ExpectEquality(t, mc.SP.Address(), 0x0101)
	step(t, mc)
	test.ExpectEquality(t, mc.DE().Value(), 0x0fff)

	// INX and DCX do not affect any flags. not even the zero flag when the
	// pair wraps to zero
	test.ExpectEquality(t, mc.Status.String(), "sZ-a-P-c")
}

func testRotate(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	mem.Clear()
	mc.Reset()

	// MVI A,f2h; RLC; RRC; RAL; RAR; CMA
	mem.putInstructions(0, 0x3e, 0xf2, 0x07, 0x0f, 0x17, 0x1f, 0x2f)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0xe5)
	test.ExpectEquality(t, mc.Status.String(), "sz-a-p-C")
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0xf2)
	test.ExpectEquality(t, mc.Status.String(), "sz-a-p-C")
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0xe5)
	test.ExpectEquality(t, mc.Status.String(), "sz-a-p-C")
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0xf2)
	test.ExpectEquality(t, mc.Status.String(), "sz-a-p-C")
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x0d)
	test.ExpectEquality(t, mc.Status.String(), "sz-a-p-C")
}

func testMachineControl(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	mem.Clear()
	mc.Reset()

	// EI; DI; NOP; HLT
	mem.putInstructions(0, 0xfb, 0xf3, 0x00, 0x76)
	step(t, mc)
	test.ExpectSuccess(t, mc.InterruptsEnabled)
	step(t, mc)
	test.ExpectFailure(t, mc.InterruptsEnabled)
	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 4)
	test.ExpectEquality(t, mc.PC.Address(), 0x0003)
	step(t, mc)
	test.ExpectFailure(t, mc.Running)
	test.ExpectFailure(t, mc.Killed)
	test.ExpectEquality(t, mc.Cycles, 19)

	// executing a halted CPU does nothing
	test.ExpectSuccess(t, mc.ExecuteInstruction())
	test.ExpectEquality(t, mc.PC.Address(), 0x0004)
	test.ExpectEquality(t, mc.Cycles, 19)
}

func TestSnapshot(t *testing.T) {
	mc, _, _ := newCPU(t)
	mc.PC.Load(0x0100)
	mc.A.Load(0x42)

	s := mc.Snapshot()
	mc.A.Load(0x00)
	test.ExpectEquality(t, s.A.Value(), 0x42)
	test.ExpectEquality(t, s.String(), "PC=0100 SP=0000 A=42 B=00 C=00 D=00 E=00 H=00 L=00 F=sz-a-p-c")

	// the pairs of the snapshot are views of the snapshot's registers
	s.HL().Load(0x1234)
	test.ExpectEquality(t, s.H.Value(), 0x12)
	test.ExpectEquality(t, mc.H.Value(), 0x00)
}
