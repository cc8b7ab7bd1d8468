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

// Package curated wraps the plain Go error type with a pattern that can be
// tested for. Errors that cross package boundaries in the emulator are
// created with Errorf() and classified by the caller with Is(), Has() or
// IsAny().
//
// The pattern passed to Errorf() is the identity of the error. Packages export
// their patterns as string constants:
//
//	const ImageTooLarge = "memory: image too large (%d bytes at origin %#04x)"
//
//	err := curated.Errorf(memory.ImageTooLarge, len(data), origin)
//	if curated.Is(err, memory.ImageTooLarge) {
//		...
//	}
//
// Is() only looks at the outermost error. Has() looks through every curated
// error used as a value in the chain:
//
//	f := curated.Errorf("machine: %v", err)
//	curated.Is(f, memory.ImageTooLarge)  // false
//	curated.Has(f, memory.ImageTooLarge) // true
//
// When the message is produced, adjacent duplicate prefixes are collapsed, so
// that wrapping an error with the same prefix at several levels doesn't
// result in "cpu: cpu: unimplemented instruction".
//
// Uncurated errors may be used as values too. They are reachable with
// errors.Is() and errors.As() from the standard library because curated
// errors implement Unwrap().
package curated
