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

// Package environment describes the context in which an emulated machine
// runs. Every machine has its own environment and so its own preferences.
// Nothing about a machine is stored at the package level, which means any
// number of machines can exist at once.
package environment

import (
	"github.com/gopher8080/gopher8080/hardware/preferences"
)

// Label identifies an environment.
type Label string

// MainEmulation is the label of the environment the user is interacting
// with.
const MainEmulation = Label("")

// Environment is the context for a single emulated machine.
type Environment struct {
	Label Label
	Prefs *preferences.Preferences
}

// NewEnvironment is the preferred method of initialisation for the
// Environment type. If prefs is nil a new Preferences instance is created.
func NewEnvironment(label Label, prefs *preferences.Preferences) (*Environment, error) {
	env := &Environment{
		Label: label,
		Prefs: prefs,
	}

	if env.Prefs == nil {
		var err error
		env.Prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	return env, nil
}

// IsMainEmulation returns true if the environment is the main emulation.
func (env *Environment) IsMainEmulation() bool {
	return env.Label == MainEmulation
}

// AllowLogging implements the logger.Permission interface. Only the main
// emulation is allowed to log.
func (env *Environment) AllowLogging() bool {
	return env.IsMainEmulation()
}
