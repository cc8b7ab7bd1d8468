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

// Package test contains helper functions for the emulator's tests. The
// Expect*() functions report a failure and let the test continue. The
// Demand*() functions stop the test on failure.
//
// Every function takes an optional list of tags. The tags are printed at the
// start of a failure message and identify which iteration of a table driven
// test failed:
//
//	for _, tc := range cases {
//		test.ExpectEquality(t, got, tc.want, tc.name)
//	}
//
// CompareWriter is an io.Writer that captures output so that it can be
// compared with an expected string.
package test
