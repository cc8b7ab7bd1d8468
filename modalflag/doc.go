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


// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Whereas with flag.FlagSet you call Parse() with the array of strings as the
// only argument, with modalflag you first NewArgs() with the array of
// arguments and then Parse() with no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DEBUG", "DISASM")
//	_, _ = md.Parse()
//
// After Parse(), Mode() returns the selected mode. The first sub-mode is the
// default and is selected when the first argument is not a mode name.
// Comparisons are case insensitive.
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		trace := md.AddBool("trace", false, "print every instruction")
//		switch r, err := md.Parse(); r {
//		case modalflag.ParseHelp:
//			return nil
//		case modalflag.ParseError:
//			return err
//		}
//		run(md.GetArg(0), *trace)
//	}
//
// Each call to NewMode() begins a new layer with its own flags. Modes can be
// nested as deeply as required and Path() returns the modes selected so far,
// separated by a slash.
package modalflag
