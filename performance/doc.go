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


// Package performance contains helper functions relating to performance.
//
// Check() is a quick way of running a program image for a fixed duration of
// time. The image is run repeatedly, being reset every time the CPU halts,
// and the throughput of the interpreter is reported at the end. It will
// optionally generate profiling information.
//
// RunProfiler() can be used to generate the various profile types. On it's
// own it will not limit the amount of time the program runs for.
//
// The limiter sub-package can be used to hold a running machine to a target
// clock rate.
package performance
