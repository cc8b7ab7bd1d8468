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
	"fmt"
	"strconv"
	"strings"

	"github.com/gopher8080/gopher8080/curated"
	"github.com/gopher8080/gopher8080/debugger/govern"
	"github.com/gopher8080/gopher8080/debugger/terminal"
	"github.com/gopher8080/gopher8080/disassembly"
)

// Sentinel error patterns for bad input.
const (
	UnknownCommand = "debugger: unknown command (%s)"
	BadArgument    = "debugger: %s: %v"
)

// debugger commands.
const (
	cmdStep  = "STEP"
	cmdRun   = "RUN"
	cmdRegs  = "REGS"
	cmdMem   = "MEM"
	cmdList  = "LIST"
	cmdReset = "RESET"
	cmdHelp  = "HELP"
	cmdQuit  = "QUIT"
)

var help = []string{
	"STEP [n]           execute n instructions (default 1)",
	"RUN                run until the CPU stops (CTRL-C to interrupt)",
	"REGS               show the registers",
	"MEM addr [count]   show count bytes of memory (default 16)",
	"LIST [n]           list n instructions from the PC (default 8)",
	"RESET              reset the machine and reload the image",
	"HELP               list the commands",
	"QUIT               end the session",
}

// parseCommand parses and executes a single line of input. an empty line is
// not an error and does nothing.
func (dbg *Debugger) parseCommand(input string) error {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return nil
	}

	command := strings.ToUpper(tokens[0])
	args := tokens[1:]

	switch command {
	case cmdStep:
		n, err := optionalCount(command, args, 1)
		if err != nil {
			return err
		}
		for i := 0; i < n && dbg.m.CPU.Running; i++ {
			if err := dbg.step(); err != nil {
				return err
			}
		}

	case cmdRun:
		return dbg.run()

	case cmdRegs:
		dbg.printRegisters()

	case cmdMem:
		if len(args) == 0 {
			return curated.Errorf(BadArgument, command, "address required")
		}
		address, err := dbg.parseAddress(args[0])
		if err != nil {
			return curated.Errorf(BadArgument, command, err)
		}
		count, err := optionalCount(command, args[1:], 16)
		if err != nil {
			return err
		}
		for _, l := range strings.Split(dbg.m.Mem.Dump(address, count), "\n") {
			if l != "" {
				dbg.term.TermPrintLine(terminal.StyleRegisters, l)
			}
		}

	case cmdList:
		n, err := optionalCount(command, args, 8)
		if err != nil {
			return err
		}
		if err := dbg.list(n); err != nil {
			return err
		}

	case cmdReset:
		if err := dbg.m.Reset(); err != nil {
			return err
		}
		if err := dbg.disassemble(); err != nil {
			return err
		}
		dbg.term.TermPrintLine(terminal.StyleFeedback, "machine reset")

	case cmdHelp:
		for _, h := range help {
			dbg.term.TermPrintLine(terminal.StyleHelp, h)
		}

	case cmdQuit:
		dbg.state = govern.Ending

	default:
		return curated.Errorf(UnknownCommand, tokens[0])
	}

	return nil
}

// optionalCount parses the first argument as a positive count. the default
// is returned if there are no arguments.
func optionalCount(command string, args []string, def int) (int, error) {
	if len(args) == 0 {
		return def, nil
	}
	if len(args) > 1 {
		return 0, curated.Errorf(BadArgument, command, "too many arguments")
	}
	n, err := strconv.ParseInt(args[0], 0, 32)
	if err != nil || n < 1 {
		return 0, curated.Errorf(BadArgument, command, fmt.Sprintf("invalid count (%s)", args[0]))
	}
	return int(n), nil
}

// parseAddress parses a hexadecimal address or the name of a register pair.
// hexadecimal addresses can have a leading 0x or a trailing h.
func (dbg *Debugger) parseAddress(s string) (uint16, error) {
	mc := dbg.m.CPU

	switch strings.ToUpper(s) {
	case "BC":
		return mc.BC().Value(), nil
	case "DE":
		return mc.DE().Value(), nil
	case "HL":
		return mc.HL().Value(), nil
	case "SP":
		return mc.SP.Address(), nil
	case "PC":
		return mc.PC.Address(), nil
	}

	h := strings.ToLower(s)
	h = strings.TrimPrefix(h, "0x")
	h = strings.TrimSuffix(h, "h")

	a, err := strconv.ParseUint(h, 16, 16)
	if err != nil {
		return 0, curated.Errorf("invalid address (%s)", s)
	}

	return uint16(a), nil
}

// list n instructions from the PC. instructions in the disassembly are
// listed with their labels. instructions outside of the disassembly are
// decoded from memory.
func (dbg *Debugger) list(n int) error {
	w := styleWriter{term: dbg.term, style: terminal.StyleInstruction}
	attr := disassembly.WriteAttr{ByteCode: true, Cycles: true}

	address := dbg.m.CPU.PC.Address()
	for i := 0; i < n; i++ {
		var e *disassembly.Entry
		var ok bool

		if dbg.dsm != nil {
			e, ok = dbg.dsm.Get(address)
		}
		if !ok {
			e = &disassembly.Entry{Result: dbg.m.CPU.Decode(address)}
		}

		if err := dbg.dsm.WriteEntry(w, attr, e); err != nil {
			return err
		}
		address += uint16(e.Result.ByteCount)
	}

	return nil
}
