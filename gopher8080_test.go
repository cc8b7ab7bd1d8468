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


package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gopher8080/gopher8080/curated"
	"github.com/gopher8080/gopher8080/disassembly"
	"github.com/gopher8080/gopher8080/hardware/cpu"
	"github.com/gopher8080/gopher8080/hardware/memory"
	"github.com/gopher8080/gopher8080/imageloader"
	"github.com/gopher8080/gopher8080/modalflag"
	"github.com/gopher8080/gopher8080/test"
)

// MVI A,05h; INR A; HLT
var program = []byte{0x3e, 0x05, 0x3c, 0x76}

func writeImage(t *testing.T, data ...byte) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "test.com")
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o644))
	return fn
}

// launchArgs runs the program with the arguments and returns the exit code
// and the output.
func launchArgs(t *testing.T, input string, args ...string) (int, string) {
	t.Helper()
	w := &test.CompareWriter{}
	md := &modalflag.Modes{Output: w}
	md.NewArgs(args)
	code := launch(md, strings.NewReader(input))
	return code, w.String()
}

func TestRun(t *testing.T) {
	fn := writeImage(t, program...)

	code, out := launchArgs(t, "", fn)
	test.ExpectEquality(t, code, exitHalt)
	test.ExpectSuccess(t, strings.Contains(out, "A=06"), out)
	test.ExpectSuccess(t, strings.HasSuffix(out, "halted after 19 cycles\n"), out)

	// explicit mode selection
	code, _ = launchArgs(t, "", "run", fn)
	test.ExpectEquality(t, code, exitHalt)
}

func TestRunTrace(t *testing.T) {
	fn := writeImage(t, program...)

	code, out := launchArgs(t, "", "RUN", "-trace", fn)
	test.ExpectEquality(t, code, exitHalt)

	lines := strings.Split(out, "\n")
	test.DemandSuccess(t, len(lines) > 3)
	test.ExpectEquality(t, lines[0], "0100  3e 05     MVI   A,05h\t; 7")
	test.ExpectEquality(t, lines[1], "0102  3c        INR   A\t; 5")
	test.ExpectEquality(t, lines[2], "0103  76        HLT\t; 7")
}

func TestRunOrigin(t *testing.T) {
	// JMP 8003h; HLT
	fn := writeImage(t, 0xc3, 0x03, 0x80, 0x76)

	code, out := launchArgs(t, "", "RUN", "-origin", "8000h", fn)
	test.ExpectEquality(t, code, exitHalt)
	test.ExpectSuccess(t, strings.HasSuffix(out, "halted after 17 cycles\n"), out)

	// the origin can also be set through the preferences
	code, _ = launchArgs(t, "", "RUN", "-prefs", "hardware.origin::0x8000", fn)
	test.ExpectEquality(t, code, exitHalt)

	// at the default origin the jump lands in empty memory, which is a
	// sequence of NOPs that never halts
	code, out = launchArgs(t, "", "RUN", "-steps", "100", fn)
	test.ExpectEquality(t, code, exitNoHalt)
	test.ExpectSuccess(t, strings.Contains(out, "no HLT after 100 instructions"), out)
}

func TestRunStepLimit(t *testing.T) {
	// JMP 0100h
	fn := writeImage(t, 0xc3, 0x00, 0x01)

	code, _ := launchArgs(t, "", "RUN", "-steps", "10", fn)
	test.ExpectEquality(t, code, exitNoHalt)

	// step limit exactly reached on the HLT is not an error
	fn = writeImage(t, program...)
	code, _ = launchArgs(t, "", "RUN", "-steps", "3", fn)
	test.ExpectEquality(t, code, exitHalt)

	code, _ = launchArgs(t, "", "RUN", "-steps", "-1", fn)
	test.ExpectEquality(t, code, exitCommandLine)
}

func TestRunFatal(t *testing.T) {
	// MVI A,05h; DAA
	fn := writeImage(t, 0x3e, 0x05, 0x27)
	code, out := launchArgs(t, "", "RUN", fn)
	test.ExpectEquality(t, code, exitFatal)
	test.ExpectSuccess(t, strings.Contains(out, "DAA not implemented (0x27) at (0x0102)"), out)
	test.ExpectSuccess(t, strings.Contains(out, "A=05"), out)

	// undocumented NOP is only fatal when the preference is off
	fn = writeImage(t, 0x08, 0x76)
	code, _ = launchArgs(t, "", "RUN", fn)
	test.ExpectEquality(t, code, exitHalt)
	code, out = launchArgs(t, "", "RUN", "-prefs", "hardware.undocumented::false", fn)
	test.ExpectEquality(t, code, exitFatal)
	test.ExpectSuccess(t, strings.Contains(out, "unimplemented instruction"), out)
}

func TestRunLoadFailure(t *testing.T) {
	code, _ := launchArgs(t, "", "RUN", filepath.Join(t.TempDir(), "missing.com"))
	test.ExpectEquality(t, code, exitLoad)

	fn := writeImage(t, program...)
	code, out := launchArgs(t, "", "RUN", "-origin", "0xfffe", fn)
	test.ExpectEquality(t, code, exitLoad)
	test.ExpectSuccess(t, strings.Contains(out, "image too large"), out)
}

func TestCommandLine(t *testing.T) {
	code, _ := launchArgs(t, "", "RUN")
	test.ExpectEquality(t, code, exitCommandLine)

	code, _ = launchArgs(t, "", "RUN", "a.com", "b.com")
	test.ExpectEquality(t, code, exitCommandLine)

	code, _ = launchArgs(t, "", "RUN", "-nothing", "a.com")
	test.ExpectEquality(t, code, exitCommandLine)

	code, _ = launchArgs(t, "", "RUN", "-origin", "10000h", "a.com")
	test.ExpectEquality(t, code, exitCommandLine)

	fn := writeImage(t, program...)
	code, _ = launchArgs(t, "", "RUN", "-clock", "z80", fn)
	test.ExpectEquality(t, code, exitCommandLine)

	code, _ = launchArgs(t, "", "RUN", "-prefs", "hardware.origin::banana", fn)
	test.ExpectEquality(t, code, exitCommandLine)

	code, out := launchArgs(t, "", "-help")
	test.ExpectEquality(t, code, exitHalt)
	test.ExpectSuccess(t, strings.Contains(out, "RUN, DEBUG, DISASM, PERFORMANCE"), out)
}

func TestRunLimited(t *testing.T) {
	fn := writeImage(t, program...)
	code, _ := launchArgs(t, "", "RUN", "-clock", "8080", fn)
	test.ExpectEquality(t, code, exitHalt)
}

func TestMemviz(t *testing.T) {
	fn := writeImage(t, program...)
	dot := filepath.Join(t.TempDir(), "cpu.dot")

	code, _ := launchArgs(t, "", "RUN", "-memviz", dot, fn)
	test.ExpectEquality(t, code, exitHalt)

	b, err := os.ReadFile(dot)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(b), "digraph"))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("write failed")
}

func TestTraceFailure(t *testing.T) {
	mc := cpu.NewCPU(nil, memory.NewMemory())
	tr := &tracer{
		output: failingWriter{},
		attr:   disassembly.WriteAttr{ByteCode: true, Cycles: true},
	}
	err := tr.trace(mc.Decode(0x0100))
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, err.Error(), "write failed")
}

func TestMemvizFailure(t *testing.T) {
	mc := cpu.NewCPU(nil, memory.NewMemory())
	test.ExpectFailure(t, writeMemviz(filepath.Join(t.TempDir(), "missing", "cpu.dot"), mc))
	test.ExpectSuccess(t, writeMemviz(filepath.Join(t.TempDir(), "cpu.dot"), mc))
}

func TestDisasm(t *testing.T) {
	fn := writeImage(t, program...)

	code, out := launchArgs(t, "", "DISASM", fn)
	test.ExpectEquality(t, code, exitHalt)
	test.ExpectEquality(t, out, "0100  MVI   A,05h\n0102  INR   A\n0103  HLT\n")

	code, out = launchArgs(t, "", "DISASM", "-bytecode", "-origin", "0", fn)
	test.ExpectEquality(t, code, exitHalt)
	test.ExpectEquality(t, out, "0000  3e 05     MVI   A,05h\n0002  3c        INR   A\n0003  76        HLT\n")
}

func TestDebug(t *testing.T) {
	fn := writeImage(t, program...)

	code, out := launchArgs(t, "STEP\nRUN\n", "DEBUG", "-term", "PLAIN", fn)
	test.ExpectEquality(t, code, exitHalt)
	test.ExpectSuccess(t, strings.Contains(out, "halted after 19 cycles"), out)

	// quitting before the halt is not an error
	code, _ = launchArgs(t, "QUIT\n", "DEBUG", fn)
	test.ExpectEquality(t, code, exitHalt)

	fn = writeImage(t, 0x27)
	code, _ = launchArgs(t, "RUN\n", "DEBUG", "-term", "plain", fn)
	test.ExpectEquality(t, code, exitFatal)

	code, _ = launchArgs(t, "", "DEBUG", "-term", "FANCY", fn)
	test.ExpectEquality(t, code, exitCommandLine)
}

func TestPerformance(t *testing.T) {
	fn := writeImage(t, program...)

	code, out := launchArgs(t, "", "PERFORMANCE", "-duration", "10ms", fn)
	test.ExpectEquality(t, code, exitHalt)
	test.ExpectSuccess(t, strings.Contains(out, "MHz"), out)

	code, out = launchArgs(t, "", "PERFORMANCE", "-duration", "10ms", "-instances", "2", fn)
	test.ExpectEquality(t, code, exitHalt)
	test.ExpectSuccess(t, strings.HasPrefix(out, "#0: "), out)

	code, _ = launchArgs(t, "", "PERFORMANCE", "-instances", "0", fn)
	test.ExpectEquality(t, code, exitCommandLine)

	code, _ = launchArgs(t, "", "PERFORMANCE", "-profile", "disk", fn)
	test.ExpectEquality(t, code, exitCommandLine)

	code, _ = launchArgs(t, "", "PERFORMANCE", "-duration", "10ms", filepath.Join(t.TempDir(), "missing.com"))
	test.ExpectEquality(t, code, exitLoad)
}

func TestExitCode(t *testing.T) {
	test.ExpectEquality(t, exitCode(nil), exitHalt)
	test.ExpectEquality(t, exitCode(curated.Errorf(commandLineError, "bad")), exitCommandLine)
	test.ExpectEquality(t, exitCode(curated.Errorf(imageloader.LoadError, "bad")), exitLoad)
	test.ExpectEquality(t, exitCode(curated.Errorf(cpu.UnsupportedInstruction, "DAA", 0x27, 0)), exitFatal)
	test.ExpectEquality(t, exitCode(curated.Errorf(noHalt, 10)), exitNoHalt)
	test.ExpectEquality(t, exitCode(curated.Errorf("other: %v", "bad")), exitOther)
}
