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


package clocks_test

import (
	"testing"

	"github.com/gopher8080/gopher8080/curated"
	"github.com/gopher8080/gopher8080/hardware/clocks"
	"github.com/gopher8080/gopher8080/test"
)

func TestParse(t *testing.T) {
	for _, c := range []struct {
		s   string
		mhz float64
	}{
		{"8080", clocks.I8080},
		{"8080a-1", clocks.I8080A1},
		{" 8080A2 ", clocks.I8080A2},
		{"4", 4.0},
		{"0.5", 0.5},
	} {
		mhz, err := clocks.Parse(c.s)
		test.ExpectSuccess(t, err, c.s)
		test.ExpectEquality(t, mhz, c.mhz, c.s)
	}

	for _, s := range []string{"", "z80", "0", "-2"} {
		_, err := clocks.Parse(s)
		test.ExpectSuccess(t, curated.Is(err, clocks.UnknownClock), s)
	}
}

func TestRatio(t *testing.T) {
	test.ExpectEquality(t, clocks.Ratio(2.0), "1.0x 8080")
	test.ExpectEquality(t, clocks.Ratio(100.0), "50.0x 8080")
}
