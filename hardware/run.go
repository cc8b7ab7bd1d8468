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
	"github.com/gopher8080/gopher8080/debugger/govern"
)

// Run sets the emulation running as quickly as possible. The emulation
// continues until the CPU halts, a fatal error occurs or continueCheck()
// returns a state other than govern.Running.
//
// continueCheck() is called after every instruction. A nil continueCheck
// runs until the CPU stops.
func (m *Machine) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	state := govern.Running

	for m.CPU.Running {
		switch state {
		case govern.Running:
			if _, err := m.Step(); err != nil {
				return err
			}
		case govern.Ending:
			return nil
		default:
			return curated.Errorf(MachineError, curated.Errorf("unsupported emulation state (%s) in Run() function", state))
		}

		var err error
		state, err = continueCheck()
		if err != nil {
			return curated.Errorf(MachineError, err)
		}
	}

	return nil
}
