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
	"github.com/gopher8080/gopher8080/curated"
	"github.com/gopher8080/gopher8080/hardware/cpu/alu"
	"github.com/gopher8080/gopher8080/hardware/cpu/execution"
	"github.com/gopher8080/gopher8080/hardware/cpu/instructions"
)

// ExecuteInstruction executes the instruction at the program counter. Nothing
// happens if the CPU is not running.
//
// An error is returned if the instruction cannot be executed. The error will
// be either UnimplementedInstruction or UnsupportedInstruction. In both cases
// the CPU is killed and the state of the CPU is as it was before the call.
func (mc *CPU) ExecuteInstruction() error {
	if !mc.Running || mc.Killed {
		return nil
	}

	address := mc.PC.Address()
	mc.LastResult = mc.Decode(address)

	defn := mc.LastResult.Defn
	data := mc.LastResult.InstructionData

	if defn.Undocumented && mc.prefs != nil && !mc.prefs.Undocumented.Get() {
		mc.LastResult.ByteCount = 1
		return mc.kill(curated.Errorf(UnimplementedInstruction, defn.OpCode, address))
	}

	// the program counter points to the next instruction before the
	// instruction is executed. this is the return address for CALL and RST
	mc.PC.Load(address + uint16(defn.Bytes))

	taken, err := mc.execute(defn, data)
	if err != nil {
		mc.PC.Load(address)
		mc.LastResult.ByteCount = 1
		return mc.kill(err)
	}

	cycles := defn.Cycles.Base
	if taken {
		cycles = defn.Cycles.Taken
	}
	mc.Cycles += uint64(cycles)

	mc.LastResult.Cycles = cycles
	mc.LastResult.BranchSuccess = taken
	mc.LastResult.Final = true

	return nil
}

// Decode the instruction at address without executing it. The Final field of
// the returned Result is false.
func (mc *CPU) Decode(address uint16) execution.Result {
	defn := mc.instructions[mc.mem.Read(address)]

	r := execution.Result{
		Address:   address,
		Defn:      defn,
		ByteCount: defn.Bytes,
	}

	// the operand of a 3 byte instruction is stored low byte first
	switch defn.Bytes {
	case 2:
		r.InstructionData = uint16(mc.mem.Read(address + 1))
	case 3:
		r.InstructionData = uint16(mc.mem.Read(address+1)) | uint16(mc.mem.Read(address+2))<<8
	}

	return r
}

func (mc *CPU) kill(err error) error {
	mc.Running = false
	mc.Killed = true
	return err
}

// execute the decoded instruction. returns true if the instruction was a
// branch and the branch was taken.
//
// an error must only be returned before any state has been changed.
func (mc *CPU) execute(defn *instructions.Definition, data uint16) (bool, error) {
	switch defn.Operator {
	case instructions.Nop:

	case instructions.Hlt:
		mc.Running = false

	case instructions.Mov:
		// MVI is a MOV from immediate data
		var v uint8
		if defn.AddressingMode == instructions.Immediate {
			v = uint8(data)
		} else {
			v = mc.read8(defn.Src)
		}
		mc.write8(defn.Dest, v)

	case instructions.Lxi:
		mc.loadPair(defn.Dest, data)

	case instructions.Lda:
		mc.A.Load(mc.mem.Read(data))

	case instructions.Sta:
		mc.mem.Write(data, mc.A.Value())

	case instructions.Lhld:
		mc.L.Load(mc.mem.Read(data))
		mc.H.Load(mc.mem.Read(data + 1))

	case instructions.Shld:
		mc.mem.Write(data, mc.L.Value())
		mc.mem.Write(data+1, mc.H.Value())

	case instructions.Ldax:
		mc.A.Load(mc.mem.Read(mc.pair(defn.Dest)))

	case instructions.Stax:
		mc.mem.Write(mc.pair(defn.Dest), mc.A.Value())

	case instructions.Xchg:
		de := mc.DE().Value()
		mc.DE().Load(mc.HL().Value())
		mc.HL().Load(de)

	case instructions.Add, instructions.Adc, instructions.Sub, instructions.Sbb,
		instructions.Ana, instructions.Xra, instructions.Ora, instructions.Cmp:
		mc.accumulate(defn, data)

	case instructions.Inr:
		r := alu.Inc(mc.read8(defn.Dest))
		mc.write8(defn.Dest, r.Value)
		mc.Status.SetSZP(r.Value)
		mc.Status.AuxCarry = r.AuxCarry

	case instructions.Dcr:
		r := alu.Dec(mc.read8(defn.Dest))
		mc.write8(defn.Dest, r.Value)
		mc.Status.SetSZP(r.Value)
		mc.Status.AuxCarry = r.AuxCarry

	case instructions.Inx:
		mc.loadPair(defn.Dest, mc.pair(defn.Dest)+1)

	case instructions.Dcx:
		mc.loadPair(defn.Dest, mc.pair(defn.Dest)-1)

	case instructions.Dad:
		v, carry := alu.AddPair(mc.HL().Value(), mc.pair(defn.Dest))
		mc.HL().Load(v)
		mc.Status.Carry = carry

	case instructions.Rlc:
		mc.rotate(alu.RotateLeft(mc.A.Value()))

	case instructions.Rrc:
		mc.rotate(alu.RotateRight(mc.A.Value()))

	case instructions.Ral:
		mc.rotate(alu.RotateLeftThroughCarry(mc.A.Value(), mc.Status.Carry))

	case instructions.Rar:
		mc.rotate(alu.RotateRightThroughCarry(mc.A.Value(), mc.Status.Carry))

	case instructions.Cma:
		mc.A.Load(alu.Complement(mc.A.Value()))

	case instructions.Stc:
		mc.Status.Carry = true

	case instructions.Cmc:
		mc.Status.Carry = !mc.Status.Carry

	case instructions.Jmp:
		if mc.condition(defn.Condition) {
			mc.PC.Load(data)
			return true, nil
		}

	case instructions.Call:
		if mc.condition(defn.Condition) {
			mc.push(mc.PC.Address())
			mc.PC.Load(data)
			return true, nil
		}

	case instructions.Ret:
		if mc.condition(defn.Condition) {
			mc.PC.Load(mc.pop())
			return true, nil
		}

	case instructions.Rst:
		mc.push(mc.PC.Address())
		mc.PC.Load(defn.Vector)
		return true, nil

	case instructions.Pchl:
		mc.PC.Load(mc.HL().Value())
		return true, nil

	case instructions.Push:
		mc.push(mc.pair(defn.Dest))

	case instructions.Pop:
		mc.loadPair(defn.Dest, mc.pop())

	case instructions.Xthl:
		sp := mc.SP.Address()
		l := mc.mem.Read(sp)
		h := mc.mem.Read(sp + 1)
		mc.mem.Write(sp, mc.L.Value())
		mc.mem.Write(sp+1, mc.H.Value())
		mc.L.Load(l)
		mc.H.Load(h)

	case instructions.Sphl:
		mc.SP.Load(mc.HL().Value())

	case instructions.Ei:
		mc.InterruptsEnabled = true

	case instructions.Di:
		mc.InterruptsEnabled = false

	case instructions.Daa, instructions.In, instructions.Out:
		return false, curated.Errorf(UnsupportedInstruction, defn.Mnemonic, defn.OpCode, mc.LastResult.Address)

	default:
		return false, curated.Errorf(UnimplementedInstruction, defn.OpCode, mc.LastResult.Address)
	}

	return false, nil
}

// accumulate performs one of the eight accumulator operations. the operand is
// either immediate data or the register named as the source.
func (mc *CPU) accumulate(defn *instructions.Definition, data uint16) {
	var v uint8
	if defn.AddressingMode == instructions.Immediate {
		v = uint8(data)
	} else {
		v = mc.read8(defn.Src)
	}

	a := mc.A.Value()

	var r alu.Result
	switch defn.Operator {
	case instructions.Add:
		r = alu.Add(a, v, false)
	case instructions.Adc:
		r = alu.Add(a, v, mc.Status.Carry)
	case instructions.Sub:
		r = alu.Sub(a, v, false)
	case instructions.Sbb:
		r = alu.Sub(a, v, mc.Status.Carry)
	case instructions.Ana:
		r = alu.And(a, v)
	case instructions.Xra:
		r = alu.Xor(a, v)
	case instructions.Ora:
		r = alu.Or(a, v)
	case instructions.Cmp:
		r = alu.Compare(a, v)
	}

	// compare sets the flags but leaves the accumulator untouched
	if defn.Operator != instructions.Cmp {
		mc.A.Load(r.Value)
	}

	mc.Status.SetSZP(r.Value)
	mc.Status.Carry = r.Carry
	mc.Status.AuxCarry = r.AuxCarry
}

// rotate stores the result of a rotate instruction. only the carry flag is
// affected.
func (mc *CPU) rotate(r alu.Result) {
	mc.A.Load(r.Value)
	mc.Status.Carry = r.Carry
}
