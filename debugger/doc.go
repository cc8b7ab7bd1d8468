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

// Package debugger implements an interactive single-step front end for the
// emulated machine. Interaction happens through a terminal.Terminal
// implementation.
//
// The debugger shows the next instruction to be executed and waits for a
// command. The available commands are:
//
//	STEP [n]		execute n instructions (default 1)
//	RUN			run until the CPU stops or the user interrupts
//	REGS			show the registers
//	MEM addr [count]	show count bytes of memory (default 16)
//	LIST [n]		list n instructions from the PC (default 8)
//	RESET			reset the machine and reload the image
//	HELP			list the commands
//	QUIT			end the session
//
// Addresses are hexadecimal or the name of a register pair (BC, DE, HL, SP
// or PC). Commands are not case sensitive.
//
// The session ends when the CPU halts, when the CPU meets an instruction it
// cannot execute or when the user quits.
package debugger
