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

// Package prefs contains the value types used for emulator preferences and
// the command line preference stack.
//
// Preference values are safe to read and write from more than one goroutine.
// A hook can be attached to a value and will be called with the new value
// every time it changes. An error from the hook prevents the change.
//
// The command line stack allows preferences to be overridden for a single
// run of the emulator without the change being made permanent. A group of
// preferences is pushed as a string of key/value pairs:
//
//	hardware.origin::0x0000; hardware.undocumented::false
//
// and the package owning the preference retrieves the value with
// GetCommandLinePref(). Retrieving a value removes it from the group.
package prefs
