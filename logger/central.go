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

// Package logger is the central log for the emulator. Packages record
// noteworthy events (an image being attached, the machine halting, a
// preference being overridden) with Log() and Logf(). The log can be written
// out in full with Write() or in part with Tail(), and it can be echoed as it
// happens with SetEcho().
//
// Every call names a Permission. Permission is usually the emulation
// environment making the call, which allows events from secondary emulations
// (the performance harness for example) to be kept out of the log. Use Allow
// when there is no environment to hand.
//
// Consecutive identical entries are folded into a single entry with a repeat
// count. The central log holds a fixed number of entries, the oldest being
// dropped first.
package logger

import "io"

// Permission implementations decide whether a log entry is recorded.
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (allow) AllowLogging() bool {
	return true
}

// Allow is the Permission to use when logging should always happen.
var Allow Permission = allow{}

const maxCentral = 256

var central = NewLogger(maxCentral)

// Log adds an entry to the central log.
func Log(perm Permission, tag string, detail any) {
	central.Log(perm, tag, detail)
}

// Logf adds a formatted entry to the central log.
func Logf(perm Permission, tag string, detail string, args ...any) {
	central.Logf(perm, tag, detail, args...)
}

// Clear all entries from the central log.
func Clear() {
	central.Clear()
}

// Write the contents of the central log to output.
func Write(output io.Writer) {
	central.Write(output)
}

// Tail writes the most recent entries of the central log to output.
func Tail(output io.Writer, number int) {
	central.Tail(output, number)
}

// SetEcho writes new entries to output as they are added. A nil writer stops
// the echo.
func SetEcho(output io.Writer) {
	central.SetEcho(output)
}
