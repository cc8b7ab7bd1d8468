//go:generate go run instructions_gen.go

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
	"encoding/csv"
	"fmt"
	"go/format"
	"io"
	"os"
	"strconv"
	"strings"
)

const definitionsCSVFile = "./instructions.csv"
const generatedGoFile = "../table.go"

const leadingBoilerPlate = "// generated code - do not change\n\n" +
	"package instructions\n\n" +
	"// GetDefinitions returns the table of instruction definitions for the 8080,\n" +
	"// indexed by opcode.\n" +
	"func GetDefinitions() []*Definition {\n" +
	"return []*Definition{\n"

const trailingBoilerPlate = "}\n}\n"

var operators = map[string]string{
	"NOP": "Nop", "HLT": "Hlt",
	"MOV": "Mov", "LXI": "Lxi", "LDA": "Lda", "STA": "Sta", "LHLD": "Lhld", "SHLD": "Shld",
	"LDAX": "Ldax", "STAX": "Stax", "XCHG": "Xchg",
	"ADD": "Add", "ADC": "Adc", "SUB": "Sub", "SBB": "Sbb", "ANA": "Ana", "XRA": "Xra",
	"ORA": "Ora", "CMP": "Cmp", "INR": "Inr", "DCR": "Dcr", "INX": "Inx", "DCX": "Dcx",
	"DAD": "Dad", "DAA": "Daa", "RLC": "Rlc", "RRC": "Rrc", "RAL": "Ral", "RAR": "Rar",
	"CMA": "Cma", "STC": "Stc", "CMC": "Cmc",
	"JMP": "Jmp", "CALL": "Call", "RET": "Ret", "RST": "Rst", "PCHL": "Pchl",
	"PUSH": "Push", "POP": "Pop", "XTHL": "Xthl", "SPHL": "Sphl", "IN": "In", "OUT": "Out",
	"EI": "Ei", "DI": "Di",
}

// operators that name a register pair rather than a single register
var pairOperators = map[string]bool{
	"LXI": true, "INX": true, "DCX": true, "DAD": true,
	"LDAX": true, "STAX": true, "PUSH": true, "POP": true,
}

var registers = map[string]string{
	"-": "NoOperand",
	"B": "RegB", "C": "RegC", "D": "RegD", "E": "RegE",
	"H": "RegH", "L": "RegL", "M": "RegM", "A": "RegA",
}

var pairs = map[string]string{
	"-": "NoOperand",
	"B": "PairBC", "D": "PairDE", "H": "PairHL", "SP": "PairSP", "PSW": "PairPSW",
}

var addressingModes = map[string]struct {
	id    string
	bytes int
}{
	"IMPLIED":            {"Implied", 1},
	"REGISTER":           {"Register", 1},
	"REGISTER_INDIRECT":  {"RegisterIndirect", 1},
	"PAIR_INDIRECT":      {"PairIndirect", 1},
	"IMMEDIATE":          {"Immediate", 2},
	"IMMEDIATE_EXTENDED": {"ImmediateExtended", 3},
	"DIRECT":             {"Direct", 3},
}

var conditions = map[string]string{
	"-": "Always", "NZ": "NotZero", "Z": "Zero", "NC": "NoCarry", "C": "Carry",
	"PO": "ParityOdd", "PE": "ParityEven", "P": "Plus", "M": "Minus",
}

var effects = map[string]string{
	"READ": "Read", "WRITE": "Write", "MODIFY": "Modify",
	"FLOW": "Flow", "SUBROUTINE": "Subroutine", "INTERRUPT": "Interrupt",
}

func parseCycles(s string) (int, int, error) {
	c := strings.Split(s, "/")
	base, err := strconv.Atoi(c[0])
	if err != nil {
		return 0, 0, err
	}
	if len(c) == 1 {
		return base, base, nil
	}
	if len(c) != 2 {
		return 0, 0, fmt.Errorf("too many values")
	}
	taken, err := strconv.Atoi(c[1])
	if err != nil {
		return 0, 0, err
	}
	return base, taken, nil
}

func parseCSV() (string, error) {
	df, err := os.Open(definitionsCSVFile)
	if err != nil {
		return "", fmt.Errorf("error opening instruction definitions (%s)", err)
	}
	defer df.Close()

	csvr := csv.NewReader(df)
	csvr.Comment = rune('#')
	csvr.TrimLeadingSpace = true
	csvr.FieldsPerRecord = 10

	deftable := make(map[uint8]string)

	line := 0
	for {
		line++
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}

		n, err := strconv.ParseUint(rec[0], 0, 8)
		if err != nil {
			return "", fmt.Errorf("invalid opcode (%s) [line %d]", rec[0], line)
		}
		opcode := uint8(n)
		if _, ok := deftable[opcode]; ok {
			return "", fmt.Errorf("duplicate opcode (%#02x) [line %d]", opcode, line)
		}

		mnemonic := rec[1]

		operator, ok := operators[rec[2]]
		if !ok {
			return "", fmt.Errorf("invalid operator for %#02x (%s) [line %d]", opcode, rec[2], line)
		}

		am, ok := addressingModes[rec[3]]
		if !ok {
			return "", fmt.Errorf("invalid addressing mode for %#02x (%s) [line %d]", opcode, rec[3], line)
		}

		operands := registers
		if pairOperators[rec[2]] {
			operands = pairs
		}
		dest, ok := operands[rec[4]]
		if !ok {
			return "", fmt.Errorf("invalid destination for %#02x (%s) [line %d]", opcode, rec[4], line)
		}
		src, ok := operands[rec[5]]
		if !ok {
			return "", fmt.Errorf("invalid source for %#02x (%s) [line %d]", opcode, rec[5], line)
		}

		base, taken, err := parseCycles(rec[6])
		if err != nil {
			return "", fmt.Errorf("invalid cycle count for %#02x (%s) [line %d]", opcode, rec[6], line)
		}

		condition, ok := conditions[rec[7]]
		if !ok {
			return "", fmt.Errorf("invalid condition for %#02x (%s) [line %d]", opcode, rec[7], line)
		}

		effect, ok := effects[rec[8]]
		if !ok {
			return "", fmt.Errorf("unknown category for %#02x (%s) [line %d]", opcode, rec[8], line)
		}

		var undocumented bool
		switch rec[9] {
		case "-":
		case "UNDOCUMENTED":
			undocumented = true
		default:
			return "", fmt.Errorf("invalid undocumented field for %#02x (%s) [line %d]", opcode, rec[9], line)
		}

		// the vector of an RST instruction is encoded in the opcode
		var vector uint8
		if rec[2] == "RST" {
			vector = opcode & 0x38
		}

		deftable[opcode] = fmt.Sprintf("{OpCode: %#02x, Mnemonic: %q, Operator: %s, Bytes: %d, Cycles: Cycles{Base: %d, Taken: %d}, AddressingMode: %s, Effect: %s, Dest: %s, Src: %s, Condition: %s, Vector: %#04x, Undocumented: %v},",
			opcode, mnemonic, operator, am.bytes, base, taken, am.id, effect, dest, src, condition, vector, undocumented)
	}

	if len(deftable) != 256 {
		missing := make([]string, 0, 256)
		for i := 0; i <= 255; i++ {
			if _, ok := deftable[uint8(i)]; !ok {
				missing = append(missing, fmt.Sprintf("%#02x", i))
			}
		}
		return "", fmt.Errorf("missing definitions: %s", strings.Join(missing, ", "))
	}

	s := strings.Builder{}
	for i := 0; i <= 255; i++ {
		s.WriteString(deftable[uint8(i)])
		s.WriteString("\n")
	}

	return s.String(), nil
}

func main() {
	output, err := parseCSV()
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}

	output = fmt.Sprintf("%s%s%s", leadingBoilerPlate, output, trailingBoilerPlate)

	formattedOutput, err := format.Source([]byte(output))
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}

	err = os.WriteFile(generatedGoFile, formattedOutput, 0644)
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}
}
