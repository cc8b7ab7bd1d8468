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

package hardware

import (
	"github.com/gopher8080/gopher8080/curated"
	"github.com/gopher8080/gopher8080/environment"
	"github.com/gopher8080/gopher8080/hardware/cpu"
	"github.com/gopher8080/gopher8080/hardware/memory"
	"github.com/gopher8080/gopher8080/imageloader"
	"github.com/gopher8080/gopher8080/logger"
)

// MachineError wraps any error that stops the machine.
const MachineError = "machine: %v"

// Machine is the emulated 8080 system. A CPU and 64K of memory.
type Machine struct {
	Env *environment.Environment

	CPU *cpu.CPU
	Mem *memory.Memory

	// the attached image and the address it was loaded at
	Image  imageloader.Loader
	Origin uint16
}

// NewMachine creates a new machine. The machine has no image attached and
// the CPU will not execute until AttachImage() has been called.
func NewMachine(env *environment.Environment) *Machine {
	m := &Machine{
		Env: env,
		Mem: memory.NewMemory(),
	}
	m.CPU = cpu.NewCPU(env.Prefs, m.Mem)
	return m
}

// AttachImage loads the image (if it has not already been loaded) and places
// it in memory at the origin address given by the preferences. The machine is
// reset and the PC is set to the origin.
//
// On error the machine is left unchanged.
func (m *Machine) AttachImage(ld *imageloader.Loader) error {
	if err := ld.Load(); err != nil {
		return curated.Errorf(MachineError, err)
	}

	origin := uint16(m.Env.Prefs.Origin.Get())

	if err := memory.Fits(origin, len(ld.Data)); err != nil {
		return curated.Errorf(MachineError, err)
	}

	m.Image = *ld
	m.Origin = origin

	logger.Logf(m.Env, "machine", "attached %s (%d bytes at %#04x) sha1 %s", m.Image.ShortName(), len(m.Image.Data), m.Origin, m.Image.Hash)

	return m.Reset()
}

// Reset clears memory, reloads the attached image and resets the CPU. The PC
// is set to the origin of the image.
func (m *Machine) Reset() error {
	m.Mem.Clear()
	if err := m.Mem.Load(m.Origin, m.Image.Data); err != nil {
		return curated.Errorf(MachineError, err)
	}

	m.CPU.Reset()
	m.CPU.PC.Load(m.Origin)

	logger.Logf(m.Env, "machine", "reset (PC=%04x)", m.Origin)

	return nil
}

// Halted returns true if the CPU has stopped because of a HLT instruction.
func (m *Machine) Halted() bool {
	return !m.CPU.Running && !m.CPU.Killed
}
