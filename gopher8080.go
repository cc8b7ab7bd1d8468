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
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"golang.org/x/term"

	"github.com/gopher8080/gopher8080/curated"
	"github.com/gopher8080/gopher8080/debugger"
	"github.com/gopher8080/gopher8080/debugger/govern"
	"github.com/gopher8080/gopher8080/debugger/terminal"
	"github.com/gopher8080/gopher8080/debugger/terminal/colorterm"
	"github.com/gopher8080/gopher8080/debugger/terminal/plainterm"
	"github.com/gopher8080/gopher8080/disassembly"
	"github.com/gopher8080/gopher8080/environment"
	"github.com/gopher8080/gopher8080/hardware"
	"github.com/gopher8080/gopher8080/hardware/clocks"
	"github.com/gopher8080/gopher8080/hardware/cpu"
	"github.com/gopher8080/gopher8080/hardware/cpu/execution"
	"github.com/gopher8080/gopher8080/hardware/memory"
	"github.com/gopher8080/gopher8080/hardware/preferences"
	"github.com/gopher8080/gopher8080/imageloader"
	"github.com/gopher8080/gopher8080/logger"
	"github.com/gopher8080/gopher8080/modalflag"
	"github.com/gopher8080/gopher8080/performance"
	"github.com/gopher8080/gopher8080/performance/limiter"
	"github.com/gopher8080/gopher8080/prefs"
	"github.com/gopher8080/gopher8080/statsview"
)

// error patterns raised by the main package.
const (
	commandLineError = "command line: %v"
	noHalt           = "run: no HLT after %d instructions"
)

// exit codes.
const (
	exitHalt        = 0
	exitCommandLine = 10
	exitLoad        = 20
	exitFatal       = 30
	exitNoHalt      = 40
	exitOther       = 50
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	os.Exit(launch(md, os.Stdin))
}

// launch the mode selected by the command line. returns the exit code for
// the program.
func launch(md *modalflag.Modes, input io.Reader) int {
	md.AddSubModes("RUN", "DEBUG", "DISASM", "PERFORMANCE")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitHalt
	case modalflag.ParseError:
		fmt.Fprintf(md.Output, "* error: %v\n", err)
		return exitCommandLine
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "DEBUG":
		err = debug(md, input)
	case "DISASM":
		err = disasm(md)
	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Fprintf(md.Output, "* error in %s mode: %s\n", md, err)
	}

	return exitCode(err)
}

// exitCode classifies the error that ended the program.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitHalt
	case curated.Is(err, commandLineError):
		return exitCommandLine
	case curated.Has(err, imageloader.LoadError) || curated.Has(err, memory.ImageTooLarge):
		return exitLoad
	case curated.Has(err, cpu.UnimplementedInstruction) || curated.Has(err, cpu.UnsupportedInstruction):
		return exitFatal
	case curated.Has(err, noHalt):
		return exitNoHalt
	}
	return exitOther
}

// flags shared by every mode that creates a machine.
type machineFlags struct {
	prefs  *string
	origin *uint16
}

func addMachineFlags(md *modalflag.Modes) machineFlags {
	return machineFlags{
		prefs:  md.AddString("prefs", "", "preferences to apply (eg. \"hardware.undocumented::false\")"),
		origin: md.AddAddress("origin", preferences.DefaultOrigin, "load address of the image and initial PC"),
	}
}

// pushPrefs puts the preferences from the command line onto the preference
// stack. The -origin flag takes precedence over any origin in the -prefs
// string. The returned function should be called to pop the stack.
func (mf machineFlags) pushPrefs(md *modalflag.Modes) func() {
	s := *mf.prefs
	md.Visit(func(f string) {
		if f == "origin" {
			s = fmt.Sprintf("%s; %s::%d", s, preferences.KeyOrigin, *mf.origin)
		}
	})

	prefs.PushCommandLineStack(s)

	return func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "gopher8080", "unused preferences: %s", unused)
		}
	}
}

// image returns the loader for the single image argument.
func image(md *modalflag.Modes) (imageloader.Loader, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return imageloader.Loader{}, curated.Errorf(commandLineError, fmt.Sprintf("program image required for %s mode", md))
	case 1:
		return imageloader.NewLoader(md.GetArg(0)), nil
	}
	return imageloader.Loader{}, curated.Errorf(commandLineError, fmt.Sprintf("too many arguments for %s mode", md))
}

// newMachine creates a machine in the main environment and attaches the
// image.
func newMachine(ld imageloader.Loader) (*hardware.Machine, error) {
	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	if err != nil {
		// preferences only fail when a value from the command line is bad
		return nil, curated.Errorf(commandLineError, err)
	}

	m := hardware.NewMachine(env)
	if err := m.AttachImage(&ld); err != nil {
		return nil, err
	}

	return m, nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	mf := addMachineFlags(md)
	log := md.AddBool("log", false, "echo log to stdout")
	trace := md.AddBool("trace", false, "print every instruction as it is executed")
	steps := md.AddInt("steps", 0, "maximum number of instructions to execute (0 is unlimited)")
	clock := md.AddString("clock", "", "limit execution to a clock rate: 8080, 8080A-1, 8080A-2 or MHz (default unlimited)")
	memvizFile := md.AddString("memviz", "", "write graphviz rendering of the final CPU state to file")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return curated.Errorf(commandLineError, err)
	}

	if *steps < 0 {
		return curated.Errorf(commandLineError, fmt.Sprintf("invalid step limit (%d)", *steps))
	}

	ld, err := image(md)
	if err != nil {
		return err
	}

	if *log {
		logger.SetEcho(md.Output)
		defer logger.SetEcho(nil)
	}

	defer mf.pushPrefs(md)()

	m, err := newMachine(ld)
	if err != nil {
		return err
	}

	var lim *limiter.ClockLimiter
	if *clock != "" {
		mhz, err := clocks.Parse(*clock)
		if err != nil {
			return curated.Errorf(commandLineError, err)
		}
		lim, err = limiter.NewClockLimiter(mhz)
		if err != nil {
			return curated.Errorf(commandLineError, err)
		}
	}

	var tr *tracer
	if *trace {
		tr, err = newTracer(md.Output, m)
		if err != nil {
			return err
		}
	}

	var count int
	err = m.Run(func() (govern.State, error) {
		count++
		if tr != nil {
			if err := tr.trace(m.CPU.LastResult); err != nil {
				return govern.Ending, err
			}
		}
		if lim != nil {
			lim.Wait(m.CPU.LastResult.Cycles)
		}
		if *steps > 0 && count >= *steps && m.CPU.Running {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})

	printRegisters(md.Output, m.CPU)

	if *memvizFile != "" {
		if err := writeMemviz(*memvizFile, m.CPU); err != nil {
			return err
		}
	}

	if err != nil {
		return err
	}

	if m.CPU.Running {
		return curated.Errorf(noHalt, count)
	}

	fmt.Fprintf(md.Output, "halted after %d cycles\n", m.CPU.Cycles)

	return nil
}

// printRegisters prints the state of the CPU. If the output is a terminal
// that is too narrow for a single line then the state is split over two
// lines.
func printRegisters(output io.Writer, mc *cpu.CPU) {
	s := mc.String()

	if f, ok := output.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w < len(s) {
			if i := strings.Index(s, " A="); i > 0 {
				s = fmt.Sprintf("%s\n%s", s[:i], s[i+1:])
			}
		}
	}

	fmt.Fprintln(output, s)
}

func writeMemviz(filename string, mc *cpu.CPU) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}

	memviz.Map(f, mc.Snapshot())

	return f.Close()
}

// tracer prints executed instructions using the static disassembly of the
// image for labels.
type tracer struct {
	output io.Writer
	dsm    *disassembly.Disassembly
	attr   disassembly.WriteAttr
}

func newTracer(output io.Writer, m *hardware.Machine) (*tracer, error) {
	tr := &tracer{
		output: output,
		attr:   disassembly.WriteAttr{ByteCode: true, Cycles: true},
	}

	if len(m.Image.Data) > 0 {
		to := uint32(m.Origin) + uint32(len(m.Image.Data)) - 1

		var err error
		tr.dsm, err = disassembly.FromMemory(m.Mem, m.Origin, uint16(to))
		if err != nil {
			return nil, err
		}
	}

	return tr, nil
}

func (tr *tracer) trace(r execution.Result) error {
	e := &disassembly.Entry{
		Level:  disassembly.EntryLevelExecuted,
		Result: r,
	}
	return tr.dsm.WriteEntry(tr.output, tr.attr, e)
}

func debug(md *modalflag.Modes, input io.Reader) error {
	md.NewMode()

	mf := addMachineFlags(md)
	termType := md.AddString("term", "AUTO", "terminal type to use in debug mode: AUTO, COLOR, PLAIN")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return curated.Errorf(commandLineError, err)
	}

	ld, err := image(md)
	if err != nil {
		return err
	}

	// the debugger echoes the log to the terminal so there is no -log flag
	var dbgTerm terminal.Terminal
	switch strings.ToUpper(*termType) {
	case "AUTO":
		if isTerminal(input) {
			dbgTerm = &colorterm.ColorTerminal{}
		} else {
			dbgTerm = &plainterm.PlainTerminal{Input: input, Output: md.Output}
		}
	case "COLOR":
		dbgTerm = &colorterm.ColorTerminal{}
	case "PLAIN":
		dbgTerm = &plainterm.PlainTerminal{Input: input, Output: md.Output}
	default:
		return curated.Errorf(commandLineError, fmt.Sprintf("unknown terminal type (%s)", *termType))
	}

	defer mf.pushPrefs(md)()

	m, err := newMachine(ld)
	if err != nil {
		return err
	}

	dbg, err := debugger.NewDebugger(m, dbgTerm)
	if err != nil {
		return err
	}

	return dbg.Start()
}

// isTerminal returns true if the reader is connected to a terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	mf := addMachineFlags(md)
	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")
	cycles := md.AddBool("cycles", false, "include cycle costs in disassembly")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return curated.Errorf(commandLineError, err)
	}

	ld, err := image(md)
	if err != nil {
		return err
	}

	defer mf.pushPrefs(md)()

	m, err := newMachine(ld)
	if err != nil {
		return err
	}

	if len(m.Image.Data) == 0 {
		return nil
	}

	to := uint32(m.Origin) + uint32(len(m.Image.Data)) - 1
	dsm, err := disassembly.FromMemory(m.Mem, m.Origin, uint16(to))
	if err != nil {
		return err
	}

	return dsm.Write(md.Output, disassembly.WriteAttr{
		ByteCode: *bytecode,
		Cycles:   *cycles,
	})
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	mf := addMachineFlags(md)
	duration := md.AddString("duration", "5s", "run duration")
	instances := md.AddInt("instances", 1, "number of machines to run concurrently")
	profile := md.AddString("profile", "none", "create profiling reports: CPU, MEM, TRACE, ALL (comma separated)")
	log := md.AddBool("log", false, "echo log to stdout")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return curated.Errorf(commandLineError, err)
	}

	if *instances < 1 {
		return curated.Errorf(commandLineError, fmt.Sprintf("invalid number of instances (%d)", *instances))
	}

	prof, err := performance.ParseProfile(*profile)
	if err != nil {
		return curated.Errorf(commandLineError, err)
	}

	ld, err := image(md)
	if err != nil {
		return err
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	if *log {
		logger.SetEcho(md.Output)
		defer logger.SetEcho(nil)
	}

	defer mf.pushPrefs(md)()

	return performance.Check(md.Output, prof, ld, *duration, *instances)
}
