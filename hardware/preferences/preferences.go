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

// Package preferences contains the preferences that control how the emulated
// machine is set up and how it executes.
package preferences

import (
	"fmt"

	"github.com/gopher8080/gopher8080/curated"
	"github.com/gopher8080/gopher8080/logger"
	"github.com/gopher8080/gopher8080/prefs"
)

// Keys used on the command line preference stack.
const (
	KeyOrigin       = "hardware.origin"
	KeyUndocumented = "hardware.undocumented"
)

// OriginOutOfRange is returned when an origin cannot be represented as an
// address.
const OriginOutOfRange = "preferences: origin out of range (%#x)"

// DefaultOrigin is the conventional load address of CP/M programs and of the
// diagnostic test images that assume code begins at 0x100.
const DefaultOrigin = 0x0100

// Preferences for an emulated machine.
type Preferences struct {
	// the address at which an image is loaded and at which execution begins
	Origin prefs.Int

	// execute the undocumented duplicates of documented opcodes. when false
	// those opcodes are treated as unimplemented
	Undocumented prefs.Bool
}

func (p *Preferences) String() string {
	return fmt.Sprintf("%s::%#04x; %s::%v", KeyOrigin, p.Origin.Get(), KeyUndocumented, p.Undocumented.Get())
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Default values are set and then any values in the top
// group of the command line preference stack are applied.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}

	p.Origin.SetHook(func(v prefs.Value) error {
		o := v.(int)
		if o < 0 || o > 0xffff {
			return curated.Errorf(OriginOutOfRange, o)
		}
		return nil
	})

	p.SetDefaults()

	if ok, v := prefs.GetCommandLinePref(KeyOrigin); ok {
		if err := p.Origin.Set(v); err != nil {
			return nil, err
		}
		logger.Logf(logger.Allow, "preferences", "%s set to %#04x from command line", KeyOrigin, p.Origin.Get())
	}

	if ok, v := prefs.GetCommandLinePref(KeyUndocumented); ok {
		if err := p.Undocumented.Set(v); err != nil {
			return nil, err
		}
		logger.Logf(logger.Allow, "preferences", "%s set to %v from command line", KeyUndocumented, p.Undocumented.Get())
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.Origin.Set(DefaultOrigin)
	p.Undocumented.Set(true)
}
