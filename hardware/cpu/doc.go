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

// Package cpu emulates the Intel 8080 microprocessor. The CPU executes
// instructions according to the single byte value read from the address in
// the program counter. This byte is the opcode and is looked up in the
// instruction table. The definition for that opcode is then used to decode
// the operand bytes and to direct execution to one of a small number of
// generic handlers.
//
// The CPU accesses memory through the cpubus.Memory interface. Let's assume
// mem is an implementation of that interface loaded with 8080 instructions at
// address 0x0100.
//
//	mc := cpu.NewCPU(prefs, mem)
//	mc.Reset()
//	mc.PC.Load(0x0100)
//
//	for mc.Running {
//		if err := mc.ExecuteInstruction(); err != nil {
//			return err
//		}
//	}
//
// ExecuteInstruction() executes exactly one instruction. The program counter
// and the cycle counter are updated by the instruction and not by the loop.
// The loop ends when HLT is executed, in which case Running is false and no
// error is returned, or when an instruction cannot be executed, in which case
// an error is returned and the CPU is Killed. A killed CPU must be Reset()
// before it will execute again.
//
// A failed instruction has no effect on the state of the CPU or memory. The
// registers, the program counter and the cycle counter are left as they were
// after the last successful instruction.
//
// The LastResult field describes the most recent instruction. See the
// execution package.
//
// The flags are computed by the pure functions of the alu package. Whether
// the auxiliary carry flag is meaningful for the instruction is decided here:
// it is set by all additions, subtractions, increments, decrements and
// comparisons and is cleared by the logical instructions. Comparing the
// accumulator with itself (CMP A) is not a special case.
//
// Interrupts are never delivered. EI and DI change the InterruptsEnabled
// field and nothing else.
package cpu
