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
	"fmt"

	"github.com/gopher8080/gopher8080/hardware/cpu/execution"
	"github.com/gopher8080/gopher8080/hardware/cpu/instructions"
	"github.com/gopher8080/gopher8080/hardware/cpu/registers"
	"github.com/gopher8080/gopher8080/hardware/memory/cpubus"
	"github.com/gopher8080/gopher8080/hardware/preferences"
)

// Sentinel error patterns. Both are fatal to the CPU.
const (
	// the opcode has no handler. this includes undocumented opcodes when the
	// preferences forbid them
	UnimplementedInstruction = "cpu: unimplemented instruction (%#02x) at (%#04x)"

	// the opcode is decoded but its operation is not emulated (DAA, IN, OUT)
	UnsupportedInstruction = "cpu: %s not implemented (%#02x) at (%#04x)"
)

// CPU implements the 8080. Register logic is implemented by the types in the
// registers sub-package. Arithmetic is implemented by the alu sub-package.
type CPU struct {
	prefs *preferences.Preferences

	PC     registers.ProgramCounter
	SP     registers.StackPointer
	A      registers.Register
	B      registers.Register
	C      registers.Register
	D      registers.Register
	E      registers.Register
	H      registers.Register
	L      registers.Register
	Status registers.StatusRegister

	// the number of cycles (T-states) executed since the last reset
	Cycles uint64

	// the CPU will execute instructions. false after HLT or when the CPU has
	// been killed
	Running bool

	// the CPU has encountered an instruction it cannot execute. requires a
	// Reset()
	Killed bool

	// set by EI and cleared by DI. no interrupt is ever delivered
	InterruptsEnabled bool

	// the result of the most recent instruction
	LastResult execution.Result

	mem          cpubus.Memory
	instructions []*instructions.Definition
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// CPU is not ready to run until Reset() has been called.
//
// The prefs argument can be nil, in which case undocumented opcodes are
// executed.
func NewCPU(prefs *preferences.Preferences, mem cpubus.Memory) *CPU {
	return &CPU{
		prefs:        prefs,
		mem:          mem,
		PC:           registers.NewProgramCounter(0),
		SP:           registers.NewStackPointer(0),
		A:            registers.NewRegister(0, "A"),
		B:            registers.NewRegister(0, "B"),
		C:            registers.NewRegister(0, "C"),
		D:            registers.NewRegister(0, "D"),
		E:            registers.NewRegister(0, "E"),
		H:            registers.NewRegister(0, "H"),
		L:            registers.NewRegister(0, "L"),
		Status:       registers.NewStatusRegister(),
		instructions: instructions.GetDefinitions(),
	}
}

// Snapshot creates a copy of the CPU in its current state. The copy is not
// connected to memory and cannot execute instructions.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	n.prefs = nil
	n.mem = nil
	n.instructions = nil
	return &n
}

// Plumb a new memory into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s %s %s %s %s %s %s %s=%s",
		mc.PC.Label(), mc.PC, mc.SP.Label(), mc.SP,
		mc.A, mc.B, mc.C, mc.D, mc.E, mc.H, mc.L,
		mc.Status.Label(), mc.Status)
}

// Reset zeroes all registers, flags and the cycle counter and readies the CPU
// for execution. The PC should be loaded with the entry address after the
// reset.
func (mc *CPU) Reset() {
	mc.PC.Load(0)
	mc.SP.Load(0)
	mc.A.Load(0)
	mc.B.Load(0)
	mc.C.Load(0)
	mc.D.Load(0)
	mc.E.Load(0)
	mc.H.Load(0)
	mc.L.Load(0)
	mc.Status.Reset()
	mc.Cycles = 0
	mc.Running = true
	mc.Killed = false
	mc.InterruptsEnabled = false
	mc.LastResult = execution.Result{}
}

// BC returns the BC register pair.
func (mc *CPU) BC() registers.Pair {
	return registers.NewPair("BC", &mc.B, &mc.C)
}

// DE returns the DE register pair.
func (mc *CPU) DE() registers.Pair {
	return registers.NewPair("DE", &mc.D, &mc.E)
}

// HL returns the HL register pair.
func (mc *CPU) HL() registers.Pair {
	return registers.NewPair("HL", &mc.H, &mc.L)
}

// PSW returns the value of the accumulator and the packed flags as pushed by
// PUSH PSW.
func (mc *CPU) PSW() uint16 {
	return uint16(mc.A.Value())<<8 | uint16(mc.Status.Value())
}
