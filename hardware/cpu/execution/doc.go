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

// Package execution records the result of executing an instruction on the
// CPU. The Result type is used by the trace output, the disassembler and the
// debugger to show what an instruction did and how it should be written in
// assembler syntax.
//
// The Result.IsValid() function checks whether a result is consistent with the
// instruction definition. The CPU doesn't call it during normal execution
// because of the performance penalty but the tests do.
package execution
