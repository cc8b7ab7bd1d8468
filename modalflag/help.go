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


package modalflag

import (
	"fmt"
	"strings"
)

// help prints the flags and sub-modes available for the current mode.
func (md *Modes) help() {
	w := md.output()

	var defaults strings.Builder
	md.flags.SetOutput(&defaults)
	md.flags.PrintDefaults()

	if defaults.Len() == 0 && len(md.subModes) == 0 && md.additionalHelp == "" {
		if p := md.Path(); p != "" {
			fmt.Fprintf(w, "No help available for %s\n", p)
		} else {
			fmt.Fprintln(w, "No help available")
		}
		return
	}

	if p := md.Path(); p != "" {
		fmt.Fprintf(w, "Usage of %s mode:\n", p)
	} else {
		fmt.Fprintln(w, "Usage:")
	}

	fmt.Fprint(w, defaults.String())

	if len(md.subModes) > 0 {
		if defaults.Len() > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "  available sub-modes: %s\n", strings.Join(md.subModes, ", "))
		fmt.Fprintf(w, "    default: %s\n", md.subModes[0])
	}

	if md.additionalHelp != "" {
		fmt.Fprintf(w, "\n%s\n", md.additionalHelp)
	}
}
