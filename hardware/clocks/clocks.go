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


// Package clocks defines the clock speeds, in MHz, of the 8080 parts.
//
// Values taken from the Intel 8080A datasheet.
package clocks

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gopher8080/gopher8080/curated"
)

const (
	I8080   = 2.0
	I8080A1 = 3.125
	I8080A2 = 2.632
)

// UnknownClock is returned by Parse() when the string is neither a part name
// nor a positive number.
const UnknownClock = "clocks: unknown clock (%s)"

// Parse returns the clock speed for a part name ("8080", "8080A-1",
// "8080A-2") or a number of MHz.
func Parse(s string) (float64, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "8080", "8080A":
		return I8080, nil
	case "8080A-1", "8080A1":
		return I8080A1, nil
	case "8080A-2", "8080A2":
		return I8080A2, nil
	}

	mhz, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || mhz <= 0 {
		return 0, curated.Errorf(UnknownClock, s)
	}

	return mhz, nil
}

// Ratio describes a rate relative to the original 8080 part.
func Ratio(mhz float64) string {
	return fmt.Sprintf("%.1fx 8080", mhz/I8080)
}
