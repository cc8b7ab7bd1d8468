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

package disassembly

import (
	"github.com/gopher8080/gopher8080/curated"
	"github.com/gopher8080/gopher8080/hardware/cpu"
	"github.com/gopher8080/gopher8080/hardware/cpu/execution"
	"github.com/gopher8080/gopher8080/hardware/cpu/instructions"
	"github.com/gopher8080/gopher8080/hardware/memory/cpubus"
)

// DisasmError is returned when a disassembly cannot be created.
const DisasmError = "disassembly: %v"

// Disassembly is a linear listing of instructions.
type Disassembly struct {
	Entries []*Entry

	// entries indexed by address
	byAddress map[uint16]*Entry
}

// FromMemory disassembles memory from the from address to the to address,
// inclusive. The last instruction may extend past the to address.
func FromMemory(mem cpubus.Memory, from uint16, to uint16) (*Disassembly, error) {
	if from > to {
		return nil, curated.Errorf(DisasmError, curated.Errorf("range is backwards (%04x to %04x)", from, to))
	}

	dsm := &Disassembly{
		byAddress: make(map[uint16]*Entry),
	}

	// the CPU is never reset and so cannot execute. it is used only for
	// decoding
	mc := cpu.NewCPU(nil, mem)

	// wider than an address so that a range ending at 0xffff terminates
	address := uint32(from)
	for address <= uint32(to) {
		r := mc.Decode(uint16(address))
		e := &Entry{
			Level:  EntryLevelDecoded,
			Result: r,
		}
		dsm.Entries = append(dsm.Entries, e)
		dsm.byAddress[r.Address] = e
		address += uint32(r.ByteCount)
	}

	dsm.label()

	return dsm, nil
}

// label entries that are the target of a jump or call from another entry.
func (dsm *Disassembly) label() {
	for _, e := range dsm.Entries {
		if !e.Result.Defn.IsBranch() || e.Result.Defn.AddressingMode != instructions.Direct {
			continue
		}
		if t, ok := dsm.byAddress[e.Result.InstructionData]; ok {
			t.Label = labelName(t.Result.Address)
		}
	}
}

// Get returns the entry at the address. Returns false if there is no entry
// beginning at that address.
func (dsm *Disassembly) Get(address uint16) (*Entry, bool) {
	e, ok := dsm.byAddress[address]
	return e, ok
}

// ExecutedEntry updates the disassembly with the result of an executed
// instruction. If the instruction does not begin at an existing entry, for
// example because code has been modified or because the CPU has jumped into
// the middle of an instruction, then nothing is updated and false is
// returned.
func (dsm *Disassembly) ExecutedEntry(result execution.Result) (*Entry, bool) {
	if result.Defn == nil || !result.Final {
		return nil, false
	}

	// every CPU has its own copy of the definition table so definitions are
	// compared by opcode
	e, ok := dsm.byAddress[result.Address]
	if !ok || e.Result.Defn.OpCode != result.Defn.OpCode {
		return nil, false
	}
	e.updateExecutionEntry(result)
	return e, true
}
