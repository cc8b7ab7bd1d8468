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

package debugger_test

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/gopher8080/gopher8080/curated"
	"github.com/gopher8080/gopher8080/debugger"
	"github.com/gopher8080/gopher8080/debugger/terminal"
	"github.com/gopher8080/gopher8080/environment"
	"github.com/gopher8080/gopher8080/hardware"
	"github.com/gopher8080/gopher8080/hardware/cpu"
	"github.com/gopher8080/gopher8080/imageloader"
	"github.com/gopher8080/gopher8080/test"
)

// mockTerm is a terminal that reads from a script of commands and records
// everything printed to it.
type mockTerm struct {
	script  []string
	prompts []string
	output  []string
	errors  []string
}

func (trm *mockTerm) Initialise() error {
	return nil
}

func (trm *mockTerm) CleanUp() {
}

func (trm *mockTerm) Silence(bool) {
}

func (trm *mockTerm) IsInteractive() bool {
	return false
}

func (trm *mockTerm) TermRead(prompt terminal.Prompt) (string, error) {
	trm.prompts = append(trm.prompts, prompt.String())
	if len(trm.script) == 0 {
		return "", io.EOF
	}
	s := trm.script[0]
	trm.script = trm.script[1:]
	return s, nil
}

func (trm *mockTerm) TermPrintLine(style terminal.Style, s string) {
	if style == terminal.StyleError {
		trm.errors = append(trm.errors, s)
	}
	trm.output = append(trm.output, s)
}

func (trm *mockTerm) contains(s string) bool {
	for _, o := range trm.output {
		if strings.Contains(o, s) {
			return true
		}
	}
	return false
}

func newDebugger(t *testing.T, script []string, data ...uint8) (*debugger.Debugger, *hardware.Machine, *mockTerm) {
	t.Helper()

	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	test.DemandSuccess(t, err)

	m := hardware.NewMachine(env)
	test.DemandSuccess(t, m.AttachImage(&imageloader.Loader{Filename: "test.com", Data: data}))

	trm := &mockTerm{script: script}
	dbg, err := debugger.NewDebugger(m, trm)
	test.DemandSuccess(t, err)

	return dbg, m, trm
}

func TestStepToHalt(t *testing.T) {
	dbg, m, trm := newDebugger(t, []string{"step", "STEP 2"}, 0x3e, 0x05, 0x3c, 0x76)

	test.ExpectSuccess(t, dbg.Start())
	test.ExpectEquality(t, m.CPU.A.Value(), 0x06)
	test.ExpectSuccess(t, m.Halted())

	test.DemandEquality(t, len(trm.prompts), 2)
	test.ExpectEquality(t, trm.prompts[0], "[ 0100  3e 05     MVI A,05h ] >> ")
	test.ExpectEquality(t, trm.prompts[1], "[ 0102  3c        INR A ] >> ")

	test.ExpectSuccess(t, trm.contains("0102  3c        INR A"))
	test.ExpectSuccess(t, trm.contains("halted after 19 cycles"))
	test.ExpectEquality(t, trm.output[len(trm.output)-1], m.CPU.String())
	test.ExpectEquality(t, len(trm.errors), 0)
}

func TestInspection(t *testing.T) {
	script := []string{
		"regs",
		"mem 100 4",
		"mem hl",
		"",
		"mem",
		"mem zz",
		"step x",
		"step 1 2",
		"bogus",
		"help",
		"quit",
		"step",
	}

	dbg, m, trm := newDebugger(t, script, 0x3e, 0x05, 0x3c, 0x76)
	test.ExpectSuccess(t, dbg.Start())

	// the step after quit is never reached
	test.ExpectEquality(t, len(trm.script), 1)
	test.ExpectEquality(t, m.CPU.PC.Address(), 0x0100)
	test.ExpectSuccess(t, m.CPU.Running)

	test.ExpectSuccess(t, trm.contains("PC=0100 SP=0000 A=00"))
	test.ExpectSuccess(t, trm.contains("0100 |  3e 05 3c 76"))
	test.ExpectSuccess(t, trm.contains("LIST [n]"))

	test.DemandEquality(t, len(trm.errors), 5)
	test.ExpectEquality(t, trm.errors[0], "debugger: MEM: address required")
	test.ExpectEquality(t, trm.errors[1], "debugger: MEM: invalid address (zz)")
	test.ExpectEquality(t, trm.errors[2], "debugger: STEP: invalid count (x)")
	test.ExpectEquality(t, trm.errors[3], "debugger: STEP: too many arguments")
	test.ExpectEquality(t, trm.errors[4], "debugger: unknown command (bogus)")
}

func TestRunFatal(t *testing.T) {
	dbg, m, trm := newDebugger(t, []string{"run"}, 0x3e, 0x05, 0x27, 0x76)

	err := dbg.Start()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, hardware.MachineError))
	test.ExpectSuccess(t, curated.Has(err, cpu.UnsupportedInstruction))
	test.ExpectSuccess(t, m.CPU.Killed)
	test.DemandEquality(t, len(trm.errors), 1)
	test.ExpectSuccess(t, strings.Contains(trm.errors[0], "DAA not implemented"))
	test.ExpectEquality(t, trm.output[len(trm.output)-1], m.CPU.String())
}

func TestReset(t *testing.T) {
	// MVI A,99h; STA 0100h; JMP 0100h
	script := []string{"step 2", "mem 100 1", "reset", "mem 100 1"}
	dbg, m, trm := newDebugger(t, script, 0x3e, 0x99, 0x32, 0x00, 0x01, 0xc3, 0x00, 0x01)

	test.ExpectSuccess(t, dbg.Start())
	test.ExpectSuccess(t, trm.contains("0100 |  99"))
	test.ExpectSuccess(t, trm.contains("0100 |  3e"))
	test.ExpectSuccess(t, trm.contains("machine reset"))
	test.ExpectEquality(t, m.CPU.PC.Address(), 0x0100)
	test.ExpectEquality(t, m.CPU.Cycles, 0)
}

func TestList(t *testing.T) {
	// MVI A,05h; JNZ 0100h; HLT
	dbg, _, trm := newDebugger(t, []string{"list 4"}, 0x3e, 0x05, 0xc2, 0x00, 0x01, 0x76)
	test.ExpectSuccess(t, dbg.Start())

	test.ExpectSuccess(t, trm.contains("L0100:"))
	test.ExpectSuccess(t, trm.contains("JNZ   L0100"))
	test.ExpectSuccess(t, trm.contains("HLT"))

	// the fourth instruction is beyond the image and decoded from memory
	test.ExpectSuccess(t, trm.contains("0106  00        NOP"))

	// the label is shown in the prompt
	test.ExpectSuccess(t, strings.HasPrefix(trm.prompts[0], "[ L0100 0100"))
}

func TestListExecuted(t *testing.T) {
	// CZ 0100h; JMP 0100h
	script := []string{"step", "step", "list 1"}
	dbg, m, trm := newDebugger(t, script, 0xcc, 0x00, 0x01, 0xc3, 0x00, 0x01)
	test.ExpectSuccess(t, dbg.Start())
	test.ExpectEquality(t, m.CPU.PC.Address(), 0x0100)

	// the call was not taken and the listing shows the actual cycle count
	test.ExpectSuccess(t, trm.contains("0100  cc 00 01  CZ    L0100\t; 11"))
	test.ExpectFailure(t, trm.contains("11/17"))
	test.ExpectEquality(t, len(trm.errors), 0)
}

func TestRunToHalt(t *testing.T) {
	// MVI B,00h; DCR B; JNZ 0102h; HLT
	dbg, m, trm := newDebugger(t, []string{"run"}, 0x06, 0x00, 0x05, 0xc2, 0x02, 0x01, 0x76)
	test.ExpectSuccess(t, dbg.Start())
	test.ExpectSuccess(t, m.Halted())
	test.ExpectEquality(t, m.CPU.B.Value(), 0x00)

	// 7 for the MVI, 256 iterations of DCR and JNZ and then the HLT
	cycles := 7 + 256*(5+10) + 7
	test.ExpectSuccess(t, trm.contains(fmt.Sprintf("halted after %d cycles", cycles)))
}
