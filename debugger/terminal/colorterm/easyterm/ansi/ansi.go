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

// Package ansi defines ANSI control codes for styles and colours.
package ansi

import (
	"fmt"
	"strings"
)

// ansi color.
const (
	colBlack   = 0
	colRed     = 1
	colGreen   = 2
	colYellow  = 3
	colBlue    = 4
	colMagenta = 5
	colCyan    = 6
	colWhite   = 7
	colDefault = 9
)

// ansi target.
const (
	targetPen       = 3
	targetBrightPen = 9
)

// ansi attribute.
const (
	attrBold      = 1
	attrDim       = 2
	attrUnderline = 4
)

var colors = map[string]int{
	"BLACK":   colBlack,
	"RED":     colRed,
	"GREEN":   colGreen,
	"YELLOW":  colYellow,
	"BLUE":    colBlue,
	"MAGENTA": colMagenta,
	"CYAN":    colCyan,
	"WHITE":   colWhite,
	"NORMAL":  colDefault,
}

var attributes = map[string]int{
	"BOLD":      attrBold,
	"DIM":       attrDim,
	"UNDERLINE": attrUnderline,
}

// ColorBuild creates the ANSI sequence for the pen color and attribute. Either
// can be the empty string.
func ColorBuild(pen string, attribute string, bright bool) (string, error) {
	p := make([]string, 0, 2)

	if pen != "" {
		c, ok := colors[strings.ToUpper(pen)]
		if !ok {
			return "", fmt.Errorf("unknown ANSI pen (%s)", pen)
		}
		t := targetPen
		if bright {
			t = targetBrightPen
		}
		p = append(p, fmt.Sprintf("%d%d", t, c))
	}

	if attribute != "" {
		a, ok := attributes[strings.ToUpper(attribute)]
		if !ok {
			return "", fmt.Errorf("unknown ANSI attribute (%s)", attribute)
		}
		p = append(p, fmt.Sprintf("%d", a))
	}

	return fmt.Sprintf("\033[%sm", strings.Join(p, ";")), nil
}

// mustBuild is used to build the package level pens. the arguments are
// known to be valid.
func mustBuild(pen string, attribute string, bright bool) string {
	s, err := ColorBuild(pen, attribute, bright)
	if err != nil {
		panic(err)
	}
	return s
}

// Pens used by the colorterm package.
var (
	NormalPen = "\033[0m"
	BoldPen   = mustBuild("", "bold", false)
	DimPen    = mustBuild("", "dim", false)
	RedPen    = mustBuild("red", "", true)
	YellowPen = mustBuild("yellow", "", true)
	CyanPen   = mustBuild("cyan", "", false)
)

// ClearLine is the CSI sequence to clear the entire of the current line.
const ClearLine = "\033[2K"

// CursorBackwardOne is the CSI sequence to move the cursor backward one
// character.
const CursorBackwardOne = "\033[1D"
