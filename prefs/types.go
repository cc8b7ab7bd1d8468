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

package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// Value is the type accepted by the Set() function of the preference types.
type Value interface{}

// Bool is a boolean preference.
type Bool struct {
	value atomic.Value // bool
	hook  func(value Value) error
}

func (p *Bool) String() string {
	return fmt.Sprintf("%v", p.Get())
}

// Set accepts a bool or a string. Strings other than "true" (in any case) are
// false.
func (p *Bool) Set(v Value) error {
	var nv bool
	switch v := v.(type) {
	case bool:
		nv = v
	case string:
		nv = strings.ToLower(strings.TrimSpace(v)) == "true"
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Bool", v)
	}

	if p.hook != nil {
		if err := p.hook(nv); err != nil {
			return err
		}
	}

	p.value.Store(nv)
	return nil
}

// Get returns the value as a bool.
func (p *Bool) Get() bool {
	v := p.value.Load()
	if v == nil {
		return false
	}
	return v.(bool)
}

// SetHook sets the function called when the value changes.
func (p *Bool) SetHook(f func(value Value) error) {
	p.hook = f
}

// Int is an integer preference.
type Int struct {
	value atomic.Value // int
	hook  func(value Value) error
}

func (p *Int) String() string {
	return fmt.Sprintf("%d", p.Get())
}

// Set accepts any of the int types or a string. Strings are parsed with the Go
// literal rules so "0x0100", "256" and "0o400" are all the same value.
func (p *Int) Set(v Value) error {
	var nv int
	switch v := v.(type) {
	case int:
		nv = v
	case int32:
		nv = int(v)
	case int64:
		nv = int(v)
	case uint16:
		nv = int(v)
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 0, 0)
		if err != nil {
			return fmt.Errorf("prefs: cannot convert %q to prefs.Int: %w", v, err)
		}
		nv = int(n)
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Int", v)
	}

	if p.hook != nil {
		if err := p.hook(nv); err != nil {
			return err
		}
	}

	p.value.Store(nv)
	return nil
}

// Get returns the value as an int.
func (p *Int) Get() int {
	v := p.value.Load()
	if v == nil {
		return 0
	}
	return v.(int)
}

// SetHook sets the function called when the value changes.
func (p *Int) SetHook(f func(value Value) error) {
	p.hook = f
}
