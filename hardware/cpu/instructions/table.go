// generated code - do not change

package instructions

// GetDefinitions returns the table of instruction definitions for the 8080,
// indexed by opcode.
func GetDefinitions() []*Definition {
	return []*Definition{
		{OpCode: 0x00, Mnemonic: "NOP", Operator: Nop, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Implied, Effect: Read, Dest: NoOperand, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x01, Mnemonic: "LXI", Operator: Lxi, Bytes: 3, Cycles: Cycles{Base: 10, Taken: 10}, AddressingMode: ImmediateExtended, Effect: Read, Dest: PairBC, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x02, Mnemonic: "STAX", Operator: Stax, Bytes: 1, Cycles: Cycles{Base: 7, Taken: 7}, AddressingMode: PairIndirect, Effect: Write, Dest: PairBC, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x03, Mnemonic: "INX", Operator: Inx, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: PairBC, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x04, Mnemonic: "INR", Operator: Inr, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegB, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x05, Mnemonic: "DCR", Operator: Dcr, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegB, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x06, Mnemonic: "MVI", Operator: Mov, Bytes: 2, Cycles: Cycles{Base: 7, Taken: 7}, AddressingMode: Immediate, Effect: Read, Dest: RegB, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x07, Mnemonic: "RLC", Operator: Rlc, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Implied, Effect: Read, Dest: NoOperand, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x08, Mnemonic: "NOP", Operator: Nop, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Implied, Effect: Read, Dest: NoOperand, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: true},
		{OpCode: 0x09, Mnemonic: "DAD", Operator: Dad, Bytes: 1, Cycles: Cycles{Base: 10, Taken: 10}, AddressingMode: Register, Effect: Read, Dest: PairBC, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x0a, Mnemonic: "LDAX", Operator: Ldax, Bytes: 1, Cycles: Cycles{Base: 7, Taken: 7}, AddressingMode: PairIndirect, Effect: Read, Dest: PairBC, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x0b, Mnemonic: "DCX", Operator: Dcx, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: PairBC, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x0c, Mnemonic: "INR", Operator: Inr, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegC, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x0d, Mnemonic: "DCR", Operator: Dcr, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegC, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x0e, Mnemonic: "MVI", Operator: Mov, Bytes: 2, Cycles: Cycles{Base: 7, Taken: 7}, AddressingMode: Immediate, Effect: Read, Dest: RegC, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x0f, Mnemonic: "RRC", Operator: Rrc, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Implied, Effect: Read, Dest: NoOperand, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x10, Mnemonic: "NOP", Operator: Nop, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Implied, Effect: Read, Dest: NoOperand, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: true},
		{OpCode: 0x11, Mnemonic: "LXI", Operator: Lxi, Bytes: 3, Cycles: Cycles{Base: 10, Taken: 10}, AddressingMode: ImmediateExtended, Effect: Read, Dest: PairDE, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x12, Mnemonic: "STAX", Operator: Stax, Bytes: 1, Cycles: Cycles{Base: 7, Taken: 7}, AddressingMode: PairIndirect, Effect: Write, Dest: PairDE, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x13, Mnemonic: "INX", Operator: Inx, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: PairDE, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x14, Mnemonic: "INR", Operator: Inr, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegD, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x15, Mnemonic: "DCR", Operator: Dcr, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegD, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x16, Mnemonic: "MVI", Operator: Mov, Bytes: 2, Cycles: Cycles{Base: 7, Taken: 7}, AddressingMode: Immediate, Effect: Read, Dest: RegD, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x17, Mnemonic: "RAL", Operator: Ral, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Implied, Effect: Read, Dest: NoOperand, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x18, Mnemonic: "NOP", Operator: Nop, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Implied, Effect: Read, Dest: NoOperand, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: true},
		{OpCode: 0x19, Mnemonic: "DAD", Operator: Dad, Bytes: 1, Cycles: Cycles{Base: 10, Taken: 10}, AddressingMode: Register, Effect: Read, Dest: PairDE, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x1a, Mnemonic: "LDAX", Operator: Ldax, Bytes: 1, Cycles: Cycles{Base: 7, Taken: 7}, AddressingMode: PairIndirect, Effect: Read, Dest: PairDE, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x1b, Mnemonic: "DCX", Operator: Dcx, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: PairDE, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x1c, Mnemonic: "INR", Operator: Inr, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegE, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x1d, Mnemonic: "DCR", Operator: Dcr, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegE, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x1e, Mnemonic: "MVI", Operator: Mov, Bytes: 2, Cycles: Cycles{Base: 7, Taken: 7}, AddressingMode: Immediate, Effect: Read, Dest: RegE, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x1f, Mnemonic: "RAR", Operator: Rar, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Implied, Effect: Read, Dest: NoOperand, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x20, Mnemonic: "NOP", Operator: Nop, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Implied, Effect: Read, Dest: NoOperand, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: true},
		{OpCode: 0x21, Mnemonic: "LXI", Operator: Lxi, Bytes: 3, Cycles: Cycles{Base: 10, Taken: 10}, AddressingMode: ImmediateExtended, Effect: Read, Dest: PairHL, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x22, Mnemonic: "SHLD", Operator: Shld, Bytes: 3, Cycles: Cycles{Base: 16, Taken: 16}, AddressingMode: Direct, Effect: Write, Dest: NoOperand, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x23, Mnemonic: "INX", Operator: Inx, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: PairHL, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x24, Mnemonic: "INR", Operator: Inr, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegH, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x25, Mnemonic: "DCR", Operator: Dcr, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegH, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x26, Mnemonic: "MVI", Operator: Mov, Bytes: 2, Cycles: Cycles{Base: 7, Taken: 7}, AddressingMode: Immediate, Effect: Read, Dest: RegH, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x27, Mnemonic: "DAA", Operator: Daa, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Implied, Effect: Read, Dest: NoOperand, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x28, Mnemonic: "NOP", Operator: Nop, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Implied, Effect: Read, Dest: NoOperand, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: true},
		{OpCode: 0x29, Mnemonic: "DAD", Operator: Dad, Bytes: 1, Cycles: Cycles{Base: 10, Taken: 10}, AddressingMode: Register, Effect: Read, Dest: PairHL, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x2a, Mnemonic: "LHLD", Operator: Lhld, Bytes: 3, Cycles: Cycles{Base: 16, Taken: 16}, AddressingMode: Direct, Effect: Read, Dest: NoOperand, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x2b, Mnemonic: "DCX", Operator: Dcx, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: PairHL, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x2c, Mnemonic: "INR", Operator: Inr, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegL, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x2d, Mnemonic: "DCR", Operator: Dcr, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegL, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x2e, Mnemonic: "MVI", Operator: Mov, Bytes: 2, Cycles: Cycles{Base: 7, Taken: 7}, AddressingMode: Immediate, Effect: Read, Dest: RegL, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x2f, Mnemonic: "CMA", Operator: Cma, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Implied, Effect: Read, Dest: NoOperand, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x30, Mnemonic: "NOP", Operator: Nop, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Implied, Effect: Read, Dest: NoOperand, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: true},
		{OpCode: 0x31, Mnemonic: "LXI", Operator: Lxi, Bytes: 3, Cycles: Cycles{Base: 10, Taken: 10}, AddressingMode: ImmediateExtended, Effect: Read, Dest: PairSP, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x32, Mnemonic: "STA", Operator: Sta, Bytes: 3, Cycles: Cycles{Base: 13, Taken: 13}, AddressingMode: Direct, Effect: Write, Dest: NoOperand, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x33, Mnemonic: "INX", Operator: Inx, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: PairSP, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x34, Mnemonic: "INR", Operator: Inr, Bytes: 1, Cycles: Cycles{Base: 10, Taken: 10}, AddressingMode: RegisterIndirect, Effect: Modify, Dest: RegM, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x35, Mnemonic: "DCR", Operator: Dcr, Bytes: 1, Cycles: Cycles{Base: 10, Taken: 10}, AddressingMode: RegisterIndirect, Effect: Modify, Dest: RegM, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x36, Mnemonic: "MVI", Operator: Mov, Bytes: 2, Cycles: Cycles{Base: 10, Taken: 10}, AddressingMode: Immediate, Effect: Write, Dest: RegM, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x37, Mnemonic: "STC", Operator: Stc, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Implied, Effect: Read, Dest: NoOperand, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x38, Mnemonic: "NOP", Operator: Nop, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Implied, Effect: Read, Dest: NoOperand, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: true},
		{OpCode: 0x39, Mnemonic: "DAD", Operator: Dad, Bytes: 1, Cycles: Cycles{Base: 10, Taken: 10}, AddressingMode: Register, Effect: Read, Dest: PairSP, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x3a, Mnemonic: "LDA", Operator: Lda, Bytes: 3, Cycles: Cycles{Base: 13, Taken: 13}, AddressingMode: Direct, Effect: Read, Dest: NoOperand, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x3b, Mnemonic: "DCX", Operator: Dcx, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: PairSP, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x3c, Mnemonic: "INR", Operator: Inr, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegA, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x3d, Mnemonic: "DCR", Operator: Dcr, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegA, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x3e, Mnemonic: "MVI", Operator: Mov, Bytes: 2, Cycles: Cycles{Base: 7, Taken: 7}, AddressingMode: Immediate, Effect: Read, Dest: RegA, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x3f, Mnemonic: "CMC", Operator: Cmc, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Implied, Effect: Read, Dest: NoOperand, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x40, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegB, Src: RegB, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x41, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegB, Src: RegC, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x42, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegB, Src: RegD, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x43, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegB, Src: RegE, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x44, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegB, Src: RegH, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x45, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegB, Src: RegL, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x46, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 7, Taken: 7}, AddressingMode: RegisterIndirect, Effect: Read, Dest: RegB, Src: RegM, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x47, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegB, Src: RegA, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x48, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegC, Src: RegB, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x49, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegC, Src: RegC, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x4a, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegC, Src: RegD, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x4b, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegC, Src: RegE, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x4c, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegC, Src: RegH, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x4d, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegC, Src: RegL, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x4e, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 7, Taken: 7}, AddressingMode: RegisterIndirect, Effect: Read, Dest: RegC, Src: RegM, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x4f, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegC, Src: RegA, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x50, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegD, Src: RegB, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x51, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegD, Src: RegC, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x52, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegD, Src: RegD, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x53, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegD, Src: RegE, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x54, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegD, Src: RegH, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x55, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegD, Src: RegL, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x56, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 7, Taken: 7}, AddressingMode: RegisterIndirect, Effect: Read, Dest: RegD, Src: RegM, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x57, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegD, Src: RegA, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x58, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegE, Src: RegB, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x59, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegE, Src: RegC, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x5a, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegE, Src: RegD, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x5b, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegE, Src: RegE, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x5c, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegE, Src: RegH, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x5d, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegE, Src: RegL, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x5e, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 7, Taken: 7}, AddressingMode: RegisterIndirect, Effect: Read, Dest: RegE, Src: RegM, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x5f, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegE, Src: RegA, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x60, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegH, Src: RegB, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x61, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegH, Src: RegC, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x62, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegH, Src: RegD, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x63, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegH, Src: RegE, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x64, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegH, Src: RegH, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x65, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegH, Src: RegL, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x66, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 7, Taken: 7}, AddressingMode: RegisterIndirect, Effect: Read, Dest: RegH, Src: RegM, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x67, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegH, Src: RegA, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x68, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegL, Src: RegB, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x69, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegL, Src: RegC, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x6a, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegL, Src: RegD, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x6b, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegL, Src: RegE, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x6c, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegL, Src: RegH, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x6d, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegL, Src: RegL, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x6e, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 7, Taken: 7}, AddressingMode: RegisterIndirect, Effect: Read, Dest: RegL, Src: RegM, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x6f, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegL, Src: RegA, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x70, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 7, Taken: 7}, AddressingMode: RegisterIndirect, Effect: Write, Dest: RegM, Src: RegB, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x71, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 7, Taken: 7}, AddressingMode: RegisterIndirect, Effect: Write, Dest: RegM, Src: RegC, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x72, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 7, Taken: 7}, AddressingMode: RegisterIndirect, Effect: Write, Dest: RegM, Src: RegD, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x73, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 7, Taken: 7}, AddressingMode: RegisterIndirect, Effect: Write, Dest: RegM, Src: RegE, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x74, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 7, Taken: 7}, AddressingMode: RegisterIndirect, Effect: Write, Dest: RegM, Src: RegH, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x75, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 7, Taken: 7}, AddressingMode: RegisterIndirect, Effect: Write, Dest: RegM, Src: RegL, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x76, Mnemonic: "HLT", Operator: Hlt, Bytes: 1, Cycles: Cycles{Base: 7, Taken: 7}, AddressingMode: Implied, Effect: Interrupt, Dest: NoOperand, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x77, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 7, Taken: 7}, AddressingMode: RegisterIndirect, Effect: Write, Dest: RegM, Src: RegA, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x78, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegA, Src: RegB, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x79, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegA, Src: RegC, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x7a, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegA, Src: RegD, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x7b, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegA, Src: RegE, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x7c, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegA, Src: RegH, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x7d, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegA, Src: RegL, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x7e, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 7, Taken: 7}, AddressingMode: RegisterIndirect, Effect: Read, Dest: RegA, Src: RegM, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x7f, Mnemonic: "MOV", Operator: Mov, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Register, Effect: Read, Dest: RegA, Src: RegA, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x80, Mnemonic: "ADD", Operator: Add, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Register, Effect: Read, Dest: NoOperand, Src: RegB, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x81, Mnemonic: "ADD", Operator: Add, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Register, Effect: Read, Dest: NoOperand, Src: RegC, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x82, Mnemonic: "ADD", Operator: Add, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Register, Effect: Read, Dest: NoOperand, Src: RegD, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x83, Mnemonic: "ADD", Operator: Add, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Register, Effect: Read, Dest: NoOperand, Src: RegE, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x84, Mnemonic: "ADD", Operator: Add, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Register, Effect: Read, Dest: NoOperand, Src: RegH, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x85, Mnemonic: "ADD", Operator: Add, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Register, Effect: Read, Dest: NoOperand, Src: RegL, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x86, Mnemonic: "ADD", Operator: Add, Bytes: 1, Cycles: Cycles{Base: 7, Taken: 7}, AddressingMode: RegisterIndirect, Effect: Read, Dest: NoOperand, Src: RegM, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x87, Mnemonic: "ADD", Operator: Add, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Register, Effect: Read, Dest: NoOperand, Src: RegA, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x88, Mnemonic: "ADC", Operator: Adc, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Register, Effect: Read, Dest: NoOperand, Src: RegB, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x89, Mnemonic: "ADC", Operator: Adc, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Register, Effect: Read, Dest: NoOperand, Src: RegC, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x8a, Mnemonic: "ADC", Operator: Adc, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Register, Effect: Read, Dest: NoOperand, Src: RegD, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x8b, Mnemonic: "ADC", Operator: Adc, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Register, Effect: Read, Dest: NoOperand, Src: RegE, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x8c, Mnemonic: "ADC", Operator: Adc, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Register, Effect: Read, Dest: NoOperand, Src: RegH, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x8d, Mnemonic: "ADC", Operator: Adc, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Register, Effect: Read, Dest: NoOperand, Src: RegL, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x8e, Mnemonic: "ADC", Operator: Adc, Bytes: 1, Cycles: Cycles{Base: 7, Taken: 7}, AddressingMode: RegisterIndirect, Effect: Read, Dest: NoOperand, Src: RegM, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x8f, Mnemonic: "ADC", Operator: Adc, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Register, Effect: Read, Dest: NoOperand, Src: RegA, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x90, Mnemonic: "SUB", Operator: Sub, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Register, Effect: Read, Dest: NoOperand, Src: RegB, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x91, Mnemonic: "SUB", Operator: Sub, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Register, Effect: Read, Dest: NoOperand, Src: RegC, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x92, Mnemonic: "SUB", Operator: Sub, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Register, Effect: Read, Dest: NoOperand, Src: RegD, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x93, Mnemonic: "SUB", Operator: Sub, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Register, Effect: Read, Dest: NoOperand, Src: RegE, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x94, Mnemonic: "SUB", Operator: Sub, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Register, Effect: Read, Dest: NoOperand, Src: RegH, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x95, Mnemonic: "SUB", Operator: Sub, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Register, Effect: Read, Dest: NoOperand, Src: RegL, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x96, Mnemonic: "SUB", Operator: Sub, Bytes: 1, Cycles: Cycles{Base: 7, Taken: 7}, AddressingMode: RegisterIndirect, Effect: Read, Dest: NoOperand, Src: RegM, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x97, Mnemonic: "SUB", Operator: Sub, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Register, Effect: Read, Dest: NoOperand, Src: RegA, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x98, Mnemonic: "SBB", Operator: Sbb, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Register, Effect: Read, Dest: NoOperand, Src: RegB, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x99, Mnemonic: "SBB", Operator: Sbb, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Register, Effect: Read, Dest: NoOperand, Src: RegC, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x9a, Mnemonic: "SBB", Operator: Sbb, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Register, Effect: Read, Dest: NoOperand, Src: RegD, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x9b, Mnemonic: "SBB", Operator: Sbb, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Register, Effect: Read, Dest: NoOperand, Src: RegE, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x9c, Mnemonic: "SBB", Operator: Sbb, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Register, Effect: Read, Dest: NoOperand, Src: RegH, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x9d, Mnemonic: "SBB", Operator: Sbb, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Register, Effect: Read, Dest: NoOperand, Src: RegL, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x9e, Mnemonic: "SBB", Operator: Sbb, Bytes: 1, Cycles: Cycles{Base: 7, Taken: 7}, AddressingMode: RegisterIndirect, Effect: Read, Dest: NoOperand, Src: RegM, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0x9f, Mnemonic: "SBB", Operator: Sbb, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Register, Effect: Read, Dest: NoOperand, Src: RegA, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xa0, Mnemonic: "ANA", Operator: Ana, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Register, Effect: Read, Dest: NoOperand, Src: RegB, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xa1, Mnemonic: "ANA", Operator: Ana, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Register, Effect: Read, Dest: NoOperand, Src: RegC, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xa2, Mnemonic: "ANA", Operator: Ana, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Register, Effect: Read, Dest: NoOperand, Src: RegD, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xa3, Mnemonic: "ANA", Operator: Ana, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Register, Effect: Read, Dest: NoOperand, Src: RegE, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xa4, Mnemonic: "ANA", Operator: Ana, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Register, Effect: Read, Dest: NoOperand, Src: RegH, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xa5, Mnemonic: "ANA", Operator: Ana, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Register, Effect: Read, Dest: NoOperand, Src: RegL, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xa6, Mnemonic: "ANA", Operator: Ana, Bytes: 1, Cycles: Cycles{Base: 7, Taken: 7}, AddressingMode: RegisterIndirect, Effect: Read, Dest: NoOperand, Src: RegM, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xa7, Mnemonic: "ANA", Operator: Ana, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Register, Effect: Read, Dest: NoOperand, Src: RegA, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xa8, Mnemonic: "XRA", Operator: Xra, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Register, Effect: Read, Dest: NoOperand, Src: RegB, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xa9, Mnemonic: "XRA", Operator: Xra, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Register, Effect: Read, Dest: NoOperand, Src: RegC, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xaa, Mnemonic: "XRA", Operator: Xra, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Register, Effect: Read, Dest: NoOperand, Src: RegD, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xab, Mnemonic: "XRA", Operator: Xra, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Register, Effect: Read, Dest: NoOperand, Src: RegE, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xac, Mnemonic: "XRA", Operator: Xra, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Register, Effect: Read, Dest: NoOperand, Src: RegH, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xad, Mnemonic: "XRA", Operator: Xra, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Register, Effect: Read, Dest: NoOperand, Src: RegL, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xae, Mnemonic: "XRA", Operator: Xra, Bytes: 1, Cycles: Cycles{Base: 7, Taken: 7}, AddressingMode: RegisterIndirect, Effect: Read, Dest: NoOperand, Src: RegM, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xaf, Mnemonic: "XRA", Operator: Xra, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Register, Effect: Read, Dest: NoOperand, Src: RegA, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xb0, Mnemonic: "ORA", Operator: Ora, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Register, Effect: Read, Dest: NoOperand, Src: RegB, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xb1, Mnemonic: "ORA", Operator: Ora, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Register, Effect: Read, Dest: NoOperand, Src: RegC, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xb2, Mnemonic: "ORA", Operator: Ora, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Register, Effect: Read, Dest: NoOperand, Src: RegD, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xb3, Mnemonic: "ORA", Operator: Ora, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Register, Effect: Read, Dest: NoOperand, Src: RegE, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xb4, Mnemonic: "ORA", Operator: Ora, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Register, Effect: Read, Dest: NoOperand, Src: RegH, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xb5, Mnemonic: "ORA", Operator: Ora, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Register, Effect: Read, Dest: NoOperand, Src: RegL, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xb6, Mnemonic: "ORA", Operator: Ora, Bytes: 1, Cycles: Cycles{Base: 7, Taken: 7}, AddressingMode: RegisterIndirect, Effect: Read, Dest: NoOperand, Src: RegM, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xb7, Mnemonic: "ORA", Operator: Ora, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Register, Effect: Read, Dest: NoOperand, Src: RegA, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xb8, Mnemonic: "CMP", Operator: Cmp, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Register, Effect: Read, Dest: NoOperand, Src: RegB, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xb9, Mnemonic: "CMP", Operator: Cmp, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Register, Effect: Read, Dest: NoOperand, Src: RegC, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xba, Mnemonic: "CMP", Operator: Cmp, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Register, Effect: Read, Dest: NoOperand, Src: RegD, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xbb, Mnemonic: "CMP", Operator: Cmp, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Register, Effect: Read, Dest: NoOperand, Src: RegE, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xbc, Mnemonic: "CMP", Operator: Cmp, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Register, Effect: Read, Dest: NoOperand, Src: RegH, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xbd, Mnemonic: "CMP", Operator: Cmp, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Register, Effect: Read, Dest: NoOperand, Src: RegL, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xbe, Mnemonic: "CMP", Operator: Cmp, Bytes: 1, Cycles: Cycles{Base: 7, Taken: 7}, AddressingMode: RegisterIndirect, Effect: Read, Dest: NoOperand, Src: RegM, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xbf, Mnemonic: "CMP", Operator: Cmp, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Register, Effect: Read, Dest: NoOperand, Src: RegA, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xc0, Mnemonic: "RNZ", Operator: Ret, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 11}, AddressingMode: Implied, Effect: Subroutine, Dest: NoOperand, Src: NoOperand, Condition: NotZero, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xc1, Mnemonic: "POP", Operator: Pop, Bytes: 1, Cycles: Cycles{Base: 10, Taken: 10}, AddressingMode: Register, Effect: Read, Dest: PairBC, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xc2, Mnemonic: "JNZ", Operator: Jmp, Bytes: 3, Cycles: Cycles{Base: 10, Taken: 10}, AddressingMode: Direct, Effect: Flow, Dest: NoOperand, Src: NoOperand, Condition: NotZero, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xc3, Mnemonic: "JMP", Operator: Jmp, Bytes: 3, Cycles: Cycles{Base: 10, Taken: 10}, AddressingMode: Direct, Effect: Flow, Dest: NoOperand, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xc4, Mnemonic: "CNZ", Operator: Call, Bytes: 3, Cycles: Cycles{Base: 11, Taken: 17}, AddressingMode: Direct, Effect: Subroutine, Dest: NoOperand, Src: NoOperand, Condition: NotZero, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xc5, Mnemonic: "PUSH", Operator: Push, Bytes: 1, Cycles: Cycles{Base: 11, Taken: 11}, AddressingMode: Register, Effect: Write, Dest: PairBC, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xc6, Mnemonic: "ADI", Operator: Add, Bytes: 2, Cycles: Cycles{Base: 7, Taken: 7}, AddressingMode: Immediate, Effect: Read, Dest: NoOperand, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xc7, Mnemonic: "RST", Operator: Rst, Bytes: 1, Cycles: Cycles{Base: 11, Taken: 11}, AddressingMode: Implied, Effect: Subroutine, Dest: NoOperand, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xc8, Mnemonic: "RZ", Operator: Ret, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 11}, AddressingMode: Implied, Effect: Subroutine, Dest: NoOperand, Src: NoOperand, Condition: Zero, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xc9, Mnemonic: "RET", Operator: Ret, Bytes: 1, Cycles: Cycles{Base: 10, Taken: 10}, AddressingMode: Implied, Effect: Subroutine, Dest: NoOperand, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xca, Mnemonic: "JZ", Operator: Jmp, Bytes: 3, Cycles: Cycles{Base: 10, Taken: 10}, AddressingMode: Direct, Effect: Flow, Dest: NoOperand, Src: NoOperand, Condition: Zero, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xcb, Mnemonic: "JMP", Operator: Jmp, Bytes: 3, Cycles: Cycles{Base: 10, Taken: 10}, AddressingMode: Direct, Effect: Flow, Dest: NoOperand, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: true},
		{OpCode: 0xcc, Mnemonic: "CZ", Operator: Call, Bytes: 3, Cycles: Cycles{Base: 11, Taken: 17}, AddressingMode: Direct, Effect: Subroutine, Dest: NoOperand, Src: NoOperand, Condition: Zero, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xcd, Mnemonic: "CALL", Operator: Call, Bytes: 3, Cycles: Cycles{Base: 17, Taken: 17}, AddressingMode: Direct, Effect: Subroutine, Dest: NoOperand, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xce, Mnemonic: "ACI", Operator: Adc, Bytes: 2, Cycles: Cycles{Base: 7, Taken: 7}, AddressingMode: Immediate, Effect: Read, Dest: NoOperand, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xcf, Mnemonic: "RST", Operator: Rst, Bytes: 1, Cycles: Cycles{Base: 11, Taken: 11}, AddressingMode: Implied, Effect: Subroutine, Dest: NoOperand, Src: NoOperand, Condition: Always, Vector: 0x0008, Undocumented: false},
		{OpCode: 0xd0, Mnemonic: "RNC", Operator: Ret, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 11}, AddressingMode: Implied, Effect: Subroutine, Dest: NoOperand, Src: NoOperand, Condition: NoCarry, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xd1, Mnemonic: "POP", Operator: Pop, Bytes: 1, Cycles: Cycles{Base: 10, Taken: 10}, AddressingMode: Register, Effect: Read, Dest: PairDE, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xd2, Mnemonic: "JNC", Operator: Jmp, Bytes: 3, Cycles: Cycles{Base: 10, Taken: 10}, AddressingMode: Direct, Effect: Flow, Dest: NoOperand, Src: NoOperand, Condition: NoCarry, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xd3, Mnemonic: "OUT", Operator: Out, Bytes: 2, Cycles: Cycles{Base: 10, Taken: 10}, AddressingMode: Immediate, Effect: Write, Dest: NoOperand, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xd4, Mnemonic: "CNC", Operator: Call, Bytes: 3, Cycles: Cycles{Base: 11, Taken: 17}, AddressingMode: Direct, Effect: Subroutine, Dest: NoOperand, Src: NoOperand, Condition: NoCarry, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xd5, Mnemonic: "PUSH", Operator: Push, Bytes: 1, Cycles: Cycles{Base: 11, Taken: 11}, AddressingMode: Register, Effect: Write, Dest: PairDE, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xd6, Mnemonic: "SUI", Operator: Sub, Bytes: 2, Cycles: Cycles{Base: 7, Taken: 7}, AddressingMode: Immediate, Effect: Read, Dest: NoOperand, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xd7, Mnemonic: "RST", Operator: Rst, Bytes: 1, Cycles: Cycles{Base: 11, Taken: 11}, AddressingMode: Implied, Effect: Subroutine, Dest: NoOperand, Src: NoOperand, Condition: Always, Vector: 0x0010, Undocumented: false},
		{OpCode: 0xd8, Mnemonic: "RC", Operator: Ret, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 11}, AddressingMode: Implied, Effect: Subroutine, Dest: NoOperand, Src: NoOperand, Condition: Carry, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xd9, Mnemonic: "RET", Operator: Ret, Bytes: 1, Cycles: Cycles{Base: 10, Taken: 10}, AddressingMode: Implied, Effect: Subroutine, Dest: NoOperand, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: true},
		{OpCode: 0xda, Mnemonic: "JC", Operator: Jmp, Bytes: 3, Cycles: Cycles{Base: 10, Taken: 10}, AddressingMode: Direct, Effect: Flow, Dest: NoOperand, Src: NoOperand, Condition: Carry, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xdb, Mnemonic: "IN", Operator: In, Bytes: 2, Cycles: Cycles{Base: 10, Taken: 10}, AddressingMode: Immediate, Effect: Read, Dest: NoOperand, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xdc, Mnemonic: "CC", Operator: Call, Bytes: 3, Cycles: Cycles{Base: 11, Taken: 17}, AddressingMode: Direct, Effect: Subroutine, Dest: NoOperand, Src: NoOperand, Condition: Carry, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xdd, Mnemonic: "CALL", Operator: Call, Bytes: 3, Cycles: Cycles{Base: 17, Taken: 17}, AddressingMode: Direct, Effect: Subroutine, Dest: NoOperand, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: true},
		{OpCode: 0xde, Mnemonic: "SBI", Operator: Sbb, Bytes: 2, Cycles: Cycles{Base: 7, Taken: 7}, AddressingMode: Immediate, Effect: Read, Dest: NoOperand, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xdf, Mnemonic: "RST", Operator: Rst, Bytes: 1, Cycles: Cycles{Base: 11, Taken: 11}, AddressingMode: Implied, Effect: Subroutine, Dest: NoOperand, Src: NoOperand, Condition: Always, Vector: 0x0018, Undocumented: false},
		{OpCode: 0xe0, Mnemonic: "RPO", Operator: Ret, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 11}, AddressingMode: Implied, Effect: Subroutine, Dest: NoOperand, Src: NoOperand, Condition: ParityOdd, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xe1, Mnemonic: "POP", Operator: Pop, Bytes: 1, Cycles: Cycles{Base: 10, Taken: 10}, AddressingMode: Register, Effect: Read, Dest: PairHL, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xe2, Mnemonic: "JPO", Operator: Jmp, Bytes: 3, Cycles: Cycles{Base: 10, Taken: 10}, AddressingMode: Direct, Effect: Flow, Dest: NoOperand, Src: NoOperand, Condition: ParityOdd, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xe3, Mnemonic: "XTHL", Operator: Xthl, Bytes: 1, Cycles: Cycles{Base: 18, Taken: 18}, AddressingMode: Implied, Effect: Modify, Dest: NoOperand, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xe4, Mnemonic: "CPO", Operator: Call, Bytes: 3, Cycles: Cycles{Base: 11, Taken: 17}, AddressingMode: Direct, Effect: Subroutine, Dest: NoOperand, Src: NoOperand, Condition: ParityOdd, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xe5, Mnemonic: "PUSH", Operator: Push, Bytes: 1, Cycles: Cycles{Base: 11, Taken: 11}, AddressingMode: Register, Effect: Write, Dest: PairHL, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xe6, Mnemonic: "ANI", Operator: Ana, Bytes: 2, Cycles: Cycles{Base: 7, Taken: 7}, AddressingMode: Immediate, Effect: Read, Dest: NoOperand, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xe7, Mnemonic: "RST", Operator: Rst, Bytes: 1, Cycles: Cycles{Base: 11, Taken: 11}, AddressingMode: Implied, Effect: Subroutine, Dest: NoOperand, Src: NoOperand, Condition: Always, Vector: 0x0020, Undocumented: false},
		{OpCode: 0xe8, Mnemonic: "RPE", Operator: Ret, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 11}, AddressingMode: Implied, Effect: Subroutine, Dest: NoOperand, Src: NoOperand, Condition: ParityEven, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xe9, Mnemonic: "PCHL", Operator: Pchl, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Implied, Effect: Flow, Dest: NoOperand, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xea, Mnemonic: "JPE", Operator: Jmp, Bytes: 3, Cycles: Cycles{Base: 10, Taken: 10}, AddressingMode: Direct, Effect: Flow, Dest: NoOperand, Src: NoOperand, Condition: ParityEven, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xeb, Mnemonic: "XCHG", Operator: Xchg, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Implied, Effect: Read, Dest: NoOperand, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xec, Mnemonic: "CPE", Operator: Call, Bytes: 3, Cycles: Cycles{Base: 11, Taken: 17}, AddressingMode: Direct, Effect: Subroutine, Dest: NoOperand, Src: NoOperand, Condition: ParityEven, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xed, Mnemonic: "CALL", Operator: Call, Bytes: 3, Cycles: Cycles{Base: 17, Taken: 17}, AddressingMode: Direct, Effect: Subroutine, Dest: NoOperand, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: true},
		{OpCode: 0xee, Mnemonic: "XRI", Operator: Xra, Bytes: 2, Cycles: Cycles{Base: 7, Taken: 7}, AddressingMode: Immediate, Effect: Read, Dest: NoOperand, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xef, Mnemonic: "RST", Operator: Rst, Bytes: 1, Cycles: Cycles{Base: 11, Taken: 11}, AddressingMode: Implied, Effect: Subroutine, Dest: NoOperand, Src: NoOperand, Condition: Always, Vector: 0x0028, Undocumented: false},
		{OpCode: 0xf0, Mnemonic: "RP", Operator: Ret, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 11}, AddressingMode: Implied, Effect: Subroutine, Dest: NoOperand, Src: NoOperand, Condition: Plus, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xf1, Mnemonic: "POP", Operator: Pop, Bytes: 1, Cycles: Cycles{Base: 10, Taken: 10}, AddressingMode: Register, Effect: Read, Dest: PairPSW, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xf2, Mnemonic: "JP", Operator: Jmp, Bytes: 3, Cycles: Cycles{Base: 10, Taken: 10}, AddressingMode: Direct, Effect: Flow, Dest: NoOperand, Src: NoOperand, Condition: Plus, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xf3, Mnemonic: "DI", Operator: Di, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Implied, Effect: Interrupt, Dest: NoOperand, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xf4, Mnemonic: "CP", Operator: Call, Bytes: 3, Cycles: Cycles{Base: 11, Taken: 17}, AddressingMode: Direct, Effect: Subroutine, Dest: NoOperand, Src: NoOperand, Condition: Plus, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xf5, Mnemonic: "PUSH", Operator: Push, Bytes: 1, Cycles: Cycles{Base: 11, Taken: 11}, AddressingMode: Register, Effect: Write, Dest: PairPSW, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xf6, Mnemonic: "ORI", Operator: Ora, Bytes: 2, Cycles: Cycles{Base: 7, Taken: 7}, AddressingMode: Immediate, Effect: Read, Dest: NoOperand, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xf7, Mnemonic: "RST", Operator: Rst, Bytes: 1, Cycles: Cycles{Base: 11, Taken: 11}, AddressingMode: Implied, Effect: Subroutine, Dest: NoOperand, Src: NoOperand, Condition: Always, Vector: 0x0030, Undocumented: false},
		{OpCode: 0xf8, Mnemonic: "RM", Operator: Ret, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 11}, AddressingMode: Implied, Effect: Subroutine, Dest: NoOperand, Src: NoOperand, Condition: Minus, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xf9, Mnemonic: "SPHL", Operator: Sphl, Bytes: 1, Cycles: Cycles{Base: 5, Taken: 5}, AddressingMode: Implied, Effect: Read, Dest: NoOperand, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xfa, Mnemonic: "JM", Operator: Jmp, Bytes: 3, Cycles: Cycles{Base: 10, Taken: 10}, AddressingMode: Direct, Effect: Flow, Dest: NoOperand, Src: NoOperand, Condition: Minus, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xfb, Mnemonic: "EI", Operator: Ei, Bytes: 1, Cycles: Cycles{Base: 4, Taken: 4}, AddressingMode: Implied, Effect: Interrupt, Dest: NoOperand, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xfc, Mnemonic: "CM", Operator: Call, Bytes: 3, Cycles: Cycles{Base: 11, Taken: 17}, AddressingMode: Direct, Effect: Subroutine, Dest: NoOperand, Src: NoOperand, Condition: Minus, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xfd, Mnemonic: "CALL", Operator: Call, Bytes: 3, Cycles: Cycles{Base: 17, Taken: 17}, AddressingMode: Direct, Effect: Subroutine, Dest: NoOperand, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: true},
		{OpCode: 0xfe, Mnemonic: "CPI", Operator: Cmp, Bytes: 2, Cycles: Cycles{Base: 7, Taken: 7}, AddressingMode: Immediate, Effect: Read, Dest: NoOperand, Src: NoOperand, Condition: Always, Vector: 0x0000, Undocumented: false},
		{OpCode: 0xff, Mnemonic: "RST", Operator: Rst, Bytes: 1, Cycles: Cycles{Base: 11, Taken: 11}, AddressingMode: Implied, Effect: Subroutine, Dest: NoOperand, Src: NoOperand, Condition: Always, Vector: 0x0038, Undocumented: false},
	}
}
