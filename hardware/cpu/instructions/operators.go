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

package instructions

// Operator is the operation performed by an instruction. Instructions that
// differ only in their operands share an Operator. For example, MOV B,C and
// MVI A,05h are both Mov and JMP and JNZ are both Jmp.
type Operator int

// List of operators.
const (
	Nop Operator = iota
	Hlt

	// data transfer
	Mov
	Lxi
	Lda
	Sta
	Lhld
	Shld
	Ldax
	Stax
	Xchg

	// arithmetic and logic
	Add
	Adc
	Sub
	Sbb
	Ana
	Xra
	Ora
	Cmp
	Inr
	Dcr
	Inx
	Dcx
	Dad
	Daa
	Rlc
	Rrc
	Ral
	Rar
	Cma
	Stc
	Cmc

	// branch
	Jmp
	Call
	Ret
	Rst
	Pchl

	// stack, i/o and machine control
	Push
	Pop
	Xthl
	Sphl
	In
	Out
	Ei
	Di
)

var operatorNames = [...]string{
	Nop: "NOP", Hlt: "HLT",
	Mov: "MOV", Lxi: "LXI", Lda: "LDA", Sta: "STA", Lhld: "LHLD", Shld: "SHLD",
	Ldax: "LDAX", Stax: "STAX", Xchg: "XCHG",
	Add: "ADD", Adc: "ADC", Sub: "SUB", Sbb: "SBB", Ana: "ANA", Xra: "XRA",
	Ora: "ORA", Cmp: "CMP", Inr: "INR", Dcr: "DCR", Inx: "INX", Dcx: "DCX",
	Dad: "DAD", Daa: "DAA", Rlc: "RLC", Rrc: "RRC", Ral: "RAL", Rar: "RAR",
	Cma: "CMA", Stc: "STC", Cmc: "CMC",
	Jmp: "JMP", Call: "CALL", Ret: "RET", Rst: "RST", Pchl: "PCHL",
	Push: "PUSH", Pop: "POP", Xthl: "XTHL", Sphl: "SPHL", In: "IN", Out: "OUT",
	Ei: "EI", Di: "DI",
}

func (o Operator) String() string {
	if o < 0 || int(o) >= len(operatorNames) {
		return "unknown operator"
	}
	return operatorNames[o]
}
