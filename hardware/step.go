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
	"github.com/gopher8080/gopher8080/hardware/cpu/execution"
	"github.com/gopher8080/gopher8080/logger"
)

// Step the emulation by a single CPU instruction. The result of the
// instruction is returned. If the CPU is not running the zero Result is
// returned and nothing happens.
func (m *Machine) Step() (execution.Result, error) {
	if !m.CPU.Running {
		return execution.Result{}, nil
	}

	if err := m.CPU.ExecuteInstruction(); err != nil {
		logger.Log(m.Env, "machine", err)
		return m.CPU.LastResult, curated.Errorf(MachineError, err)
	}

	if m.Halted() {
		logger.Logf(m.Env, "machine", "halted at %04x after %d cycles", m.CPU.LastResult.Address, m.CPU.Cycles)
	}

	return m.CPU.LastResult, nil
}
