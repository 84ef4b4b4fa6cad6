package cpu

const (
	// hlOperand is the index of (HL) in the canonical operand list.
	hlOperand = 6
	// prefixCB selects the extended instruction set.
	prefixCB = 0xCB
	// illegalTicks is the cost charged for an illegal opcode.
	illegalTicks = 4
)

// instructionLengths holds the length in bytes of every base opcode,
// indexed by its high and low nibble. Illegal opcodes have a length of
// 0 and are never used to advance the PC.
var instructionLengths = [256]uint8{
	//0 1  2  3  4  5  6  7  8  9  A  B  C  D  E  F
	1, 3, 1, 1, 1, 1, 2, 1, 3, 1, 1, 1, 1, 1, 2, 1, // 0
	2, 3, 1, 1, 1, 1, 2, 1, 2, 1, 1, 1, 1, 1, 2, 1, // 1
	2, 3, 1, 1, 1, 1, 2, 1, 2, 1, 1, 1, 1, 1, 2, 1, // 2
	2, 3, 1, 1, 1, 1, 2, 1, 2, 1, 1, 1, 1, 1, 2, 1, // 3
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 4
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 5
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 6
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 7
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 8
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 9
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // A
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // B
	1, 1, 3, 3, 3, 1, 2, 1, 1, 1, 3, 2, 3, 3, 2, 1, // C
	1, 1, 3, 0, 3, 1, 2, 1, 1, 1, 3, 0, 3, 0, 2, 1, // D
	2, 1, 1, 0, 0, 1, 2, 1, 2, 1, 3, 0, 0, 0, 2, 1, // E
	2, 1, 1, 1, 0, 1, 2, 1, 2, 1, 3, 1, 0, 0, 2, 1, // F
}

// instructionCycles holds the cost in ticks of every base opcode. A
// cost of 0 marks either an illegal opcode, or an instruction whose
// cost depends on its operands and is set when it executes.
var instructionCycles = [256]uint8{
	//0  1   2   3   4   5   6   7   8   9   A   B   C   D   E   F
	4, 12, 8, 8, 4, 4, 8, 4, 20, 8, 8, 8, 4, 4, 8, 4, // 0
	4, 12, 8, 8, 4, 4, 8, 4, 12, 8, 8, 8, 4, 4, 8, 4, // 1
	0, 12, 8, 8, 4, 4, 8, 4, 0, 8, 8, 8, 4, 4, 8, 4, // 2
	0, 12, 8, 8, 12, 12, 12, 4, 0, 8, 8, 8, 4, 4, 8, 4, // 3
	4, 4, 4, 4, 4, 4, 8, 4, 4, 4, 4, 4, 4, 4, 8, 4, // 4
	4, 4, 4, 4, 4, 4, 8, 4, 4, 4, 4, 4, 4, 4, 8, 4, // 5
	4, 4, 4, 4, 4, 4, 8, 4, 4, 4, 4, 4, 4, 4, 8, 4, // 6
	8, 8, 8, 8, 8, 8, 4, 8, 4, 4, 4, 4, 4, 4, 8, 4, // 7
	4, 4, 4, 4, 4, 4, 8, 4, 4, 4, 4, 4, 4, 4, 8, 4, // 8
	4, 4, 4, 4, 4, 4, 8, 4, 4, 4, 4, 4, 4, 4, 8, 4, // 9
	4, 4, 4, 4, 4, 4, 8, 4, 4, 4, 4, 4, 4, 4, 8, 4, // A
	4, 4, 4, 4, 4, 4, 8, 4, 4, 4, 4, 4, 4, 4, 8, 4, // B
	0, 12, 0, 16, 0, 16, 8, 16, 0, 16, 0, 0, 0, 24, 8, 16, // C
	0, 12, 0, 0, 0, 16, 8, 16, 0, 16, 0, 0, 0, 0, 8, 16, // D
	12, 12, 8, 0, 0, 16, 8, 16, 16, 4, 16, 0, 0, 0, 8, 16, // E
	12, 12, 8, 4, 0, 16, 8, 16, 12, 8, 16, 4, 0, 0, 8, 16, // F
}

// Decode fetches the instruction at the PC, along with its immediate
// operands, and advances the PC past it. Illegal opcodes are marked as
// such and always advance the PC by a single byte.
func (c *CPU) Decode() Instruction {
	opcode := c.mmu.Read(c.PC)
	in := Instruction{
		Address: c.PC,
		Opcode:  opcode,
		Length:  instructionLengths[opcode],
		Cycles:  instructionCycles[opcode],
	}
	if in.Length == 0 {
		in.Illegal = true
		in.Length = 1
		in.Cycles = illegalTicks
	}

	for i := uint8(1); i < in.Length; i++ {
		in.Operands[i-1] = c.mmu.Read(c.PC + uint16(i))
	}
	if opcode == prefixCB {
		in.Cycles = cbCycles(in.Operands[0])
	}

	c.PC += uint16(in.Length)
	return in
}

// cbCycles returns the cost of a CB prefixed instruction, including the
// prefix itself.
//
//	00 000 000
//	^^ ^^^ ^^^
//	op bit reg
func cbCycles(sub uint8) uint8 {
	switch {
	case sub&0x7 != hlOperand:
		return 8
	case sub>>6 == 1: // BIT n, (HL)
		return 12
	default:
		return 16
	}
}
