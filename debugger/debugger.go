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

package debugger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/gopher8080/gopher8080/curated"
	"github.com/gopher8080/gopher8080/debugger/govern"
	"github.com/gopher8080/gopher8080/debugger/terminal"
	"github.com/gopher8080/gopher8080/disassembly"
	"github.com/gopher8080/gopher8080/hardware"
	"github.com/gopher8080/gopher8080/hardware/cpu/execution"
	"github.com/gopher8080/gopher8080/logger"
)

// Debugger is the basic debugging frontend for the emulation.
type Debugger struct {
	m    *hardware.Machine
	term terminal.Terminal

	// static disassembly of the attached image. updated as instructions are
	// executed
	dsm *disassembly.Disassembly

	// the state of the emulation as seen by the debugger
	state govern.State

	// interrupt signals from the operating system. stops a RUN command
	interrupt chan os.Signal
}

// NewDebugger creates a new debugger for the machine. The machine should
// already have an image attached.
func NewDebugger(m *hardware.Machine, term terminal.Terminal) (*Debugger, error) {
	dbg := &Debugger{
		m:         m,
		term:      term,
		state:     govern.Initialising,
		interrupt: make(chan os.Signal, 1),
	}

	if err := dbg.disassemble(); err != nil {
		return nil, err
	}

	return dbg, nil
}

// disassemble the attached image.
func (dbg *Debugger) disassemble() error {
	if len(dbg.m.Image.Data) == 0 {
		dbg.dsm = nil
		return nil
	}

	to := uint32(dbg.m.Origin) + uint32(len(dbg.m.Image.Data)) - 1

	var err error
	dbg.dsm, err = disassembly.FromMemory(dbg.m.Mem, dbg.m.Origin, uint16(to))
	return err
}

// Start the debugger session. The error returned is the error that ended
// the emulation, if any. Quitting is not an error.
func (dbg *Debugger) Start() error {
	if err := dbg.term.Initialise(); err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()

	signal.Notify(dbg.interrupt, os.Interrupt)
	defer signal.Stop(dbg.interrupt)

	logger.SetEcho(styleWriter{term: dbg.term, style: terminal.StyleFeedback})
	defer logger.SetEcho(nil)

	return dbg.inputLoop()
}

// styleWriter sends each line written to it to the terminal in the same
// style.
type styleWriter struct {
	term  terminal.Output
	style terminal.Style
}

func (sw styleWriter) Write(p []byte) (int, error) {
	for _, l := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		sw.term.TermPrintLine(sw.style, l)
	}
	return len(p), nil
}

func (dbg *Debugger) inputLoop() error {
	dbg.state = govern.Paused

	for dbg.state != govern.Ending {
		if !dbg.m.CPU.Running {
			return dbg.stopped()
		}

		input, err := dbg.term.TermRead(dbg.prompt())
		if err != nil {
			if errors.Is(err, io.EOF) || curated.Is(err, terminal.UserInterrupt) {
				return nil
			}
			return curated.Errorf("debugger: %v", err)
		}

		if err := dbg.parseCommand(input); err != nil {
			// errors from the machine end the session. any other error is the
			// result of bad input
			if curated.Is(err, hardware.MachineError) {
				dbg.term.TermPrintLine(terminal.StyleError, err.Error())
				dbg.printRegisters()
				return err
			}
			dbg.term.TermPrintLine(terminal.StyleError, err.Error())
		}
	}

	return nil
}

// stopped is called when the CPU is no longer running.
func (dbg *Debugger) stopped() error {
	dbg.state = govern.Ending
	dbg.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("halted after %d cycles", dbg.m.CPU.Cycles))
	dbg.printRegisters()
	return nil
}

// prompt shows the next instruction to be executed.
func (dbg *Debugger) prompt() terminal.Prompt {
	pc := dbg.m.CPU.PC.Address()
	content := dbg.m.CPU.Decode(pc).String()

	if dbg.dsm != nil {
		if e, ok := dbg.dsm.Get(pc); ok && e.Label != "" {
			content = fmt.Sprintf("%s %s", e.Label, content)
		}
	}

	return terminal.Prompt{
		Type:    terminal.PromptTypeStep,
		Content: content,
	}
}

// step the machine once and show the result.
func (dbg *Debugger) step() error {
	r, err := dbg.m.Step()
	if err != nil {
		return err
	}

	if dbg.dsm != nil {
		dbg.dsm.ExecutedEntry(r)
	}

	dbg.term.TermPrintLine(terminal.StyleInstruction, fmt.Sprintf("%-32s; %d", r.String(), r.Cycles))
	dbg.validate(r)

	return nil
}

// validate prints an error if the result is inconsistent with its
// definition. the emulation is not stopped.
func (dbg *Debugger) validate(r execution.Result) {
	if err := r.IsValid(); err != nil {
		dbg.term.TermPrintLine(terminal.StyleError, err.Error())
	}
}

// run the machine until it stops or until an interrupt signal is received.
func (dbg *Debugger) run() error {
	dbg.state = govern.Running
	defer func() {
		if dbg.state == govern.Running {
			dbg.state = govern.Paused
		}
	}()

	err := dbg.m.Run(func() (govern.State, error) {
		if dbg.dsm != nil {
			dbg.dsm.ExecutedEntry(dbg.m.CPU.LastResult)
		}

		select {
		case <-dbg.interrupt:
			dbg.term.TermPrintLine(terminal.StyleFeedback, "interrupted")
			return govern.Ending, nil
		default:
		}

		return govern.Running, nil
	})

	return err
}

func (dbg *Debugger) printRegisters() {
	dbg.term.TermPrintLine(terminal.StyleRegisters, dbg.m.CPU.String())
}
