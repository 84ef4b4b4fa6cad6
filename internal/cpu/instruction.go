package cpu

import (
	"fmt"
	"strings"
)

// Instruction is a decoded instruction, as produced by Decode.
type Instruction struct {
	// Address is the address the opcode was fetched from.
	Address uint16
	// Opcode is the base opcode. For prefixed instructions it is 0xCB and
	// the sub opcode is the first operand.
	Opcode uint8
	// Length is the length of the instruction in bytes, including the
	// opcode. It is always between 1 and 3.
	Length uint8
	// Cycles is the base cost of the instruction in ticks. A value of 0
	// is resolved when the instruction is executed.
	Cycles uint8
	// Operands holds up to two immediate bytes, in the order they
	// appear in memory.
	Operands [2]uint8
	// Illegal is set for opcodes that the LR35902 does not define.
	Illegal bool
}

// Imm8 returns the first immediate byte.
func (i Instruction) Imm8() uint8 {
	return i.Operands[0]
}

// Imm16 returns the immediate operands as a little-endian word.
func (i Instruction) Imm16() uint16 {
	return uint16(i.Operands[1])<<8 | uint16(i.Operands[0])
}

// Prefixed reports whether the instruction belongs to the CB set.
func (i Instruction) Prefixed() bool {
	return i.Opcode == prefixCB && !i.Illegal
}

// Packed returns the instruction packed into a single word, as
// opcode<<24 | imm1<<16 | imm2<<8.
func (i Instruction) Packed() uint32 {
	return uint32(i.Opcode)<<24 | uint32(i.Operands[0])<<16 | uint32(i.Operands[1])<<8
}

// String returns the disassembly of the instruction.
func (i Instruction) String() string {
	switch {
	case i.Illegal:
		return fmt.Sprintf("ILLEGAL $%02X", i.Opcode)
	case i.Prefixed():
		return mnemonicsCB[i.Operands[0]]
	}

	name := mnemonics[i.Opcode]
	switch {
	case strings.Contains(name, "d16"):
		return strings.Replace(name, "d16", fmt.Sprintf("$%04X", i.Imm16()), 1)
	case strings.Contains(name, "a16"):
		return strings.Replace(name, "a16", fmt.Sprintf("$%04X", i.Imm16()), 1)
	case strings.Contains(name, "d8"):
		return strings.Replace(name, "d8", fmt.Sprintf("$%02X", i.Imm8()), 1)
	case strings.Contains(name, "a8"):
		return strings.Replace(name, "a8", fmt.Sprintf("$FF%02X", i.Imm8()), 1)
	case strings.HasPrefix(name, "JR"):
		target := uint16(int32(i.Address) + int32(i.Length) + int32(int8(i.Imm8())))
		return strings.Replace(name, "r8", fmt.Sprintf("$%04X", target), 1)
	case strings.Contains(name, "+r8"):
		return strings.Replace(name, "+r8", fmt.Sprintf("%+d", int8(i.Imm8())), 1)
	case strings.Contains(name, "r8"):
		return strings.Replace(name, "r8", fmt.Sprintf("%d", int8(i.Imm8())), 1)
	}
	return name
}

var (
	// operandNames is the canonical operand list.
	operandNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}
	pairNames    = [4]string{"BC", "DE", "HL", "SP"}
	stackNames   = [4]string{"BC", "DE", "HL", "AF"}
	aluNames     = [8]string{"ADD A,", "ADC A,", "SUB ", "SBC A,", "AND ", "XOR ", "OR ", "CP "}
	rotateNames  = [8]string{"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SWAP", "SRL"}
	bitNames     = [4]string{"", "BIT", "RES", "SET"}
	conditions   = [4]string{"NZ", "Z", "NC", "C"}

	mnemonics   [256]string
	mnemonicsCB [256]string
)

// irregular names the opcodes that fall outside of the regular blocks.
var irregular = map[uint8]string{
	0x00: "NOP",
	0x07: "RLCA",
	0x08: "LD (a16),SP",
	0x0F: "RRCA",
	0x10: "STOP",
	0x17: "RLA",
	0x18: "JR r8",
	0x1F: "RRA",
	0x27: "DAA",
	0x2F: "CPL",
	0x37: "SCF",
	0x3F: "CCF",
	0x76: "HALT",
	0xC3: "JP a16",
	0xC9: "RET",
	0xCB: "PREFIX CB",
	0xCD: "CALL a16",
	0xD9: "RETI",
	0xE0: "LDH (a8),A",
	0xE2: "LD (C),A",
	0xE8: "ADD SP,r8",
	0xE9: "JP HL",
	0xEA: "LD (a16),A",
	0xF0: "LDH A,(a8)",
	0xF2: "LD A,(C)",
	0xF3: "DI",
	0xF8: "LD HL,SP+r8",
	0xF9: "LD SP,HL",
	0xFA: "LD A,(a16)",
	0xFB: "EI",
}

func init() {
	for op := 0; op < 256; op++ {
		mnemonics[op] = regularName(uint8(op))
		mnemonicsCB[op] = cbName(uint8(op))
	}
	for op, name := range irregular {
		mnemonics[op] = name
	}
	for op, length := range instructionLengths {
		if length == 0 {
			mnemonics[op] = "ILLEGAL"
		}
	}
}

// regularName names an opcode from its position in the opcode table.
func regularName(op uint8) string {
	x, y, z := op>>6, op>>3&0x7, op&0x7
	p, q := y>>1, y&1
	switch x {
	case 1:
		return "LD " + operandNames[y] + "," + operandNames[z]
	case 2:
		return aluNames[y] + operandNames[z]
	}

	if x == 0 {
		switch z {
		case 0:
			return "JR " + conditions[y&0x3] + ",r8"
		case 1:
			if q == 1 {
				return "ADD HL," + pairNames[p]
			}
			return "LD " + pairNames[p] + ",d16"
		case 2:
			addr := [4]string{"(BC)", "(DE)", "(HL+)", "(HL-)"}[p]
			if q == 1 {
				return "LD A," + addr
			}
			return "LD " + addr + ",A"
		case 3:
			if q == 1 {
				return "DEC " + pairNames[p]
			}
			return "INC " + pairNames[p]
		case 4:
			return "INC " + operandNames[y]
		case 5:
			return "DEC " + operandNames[y]
		case 6:
			return "LD " + operandNames[y] + ",d8"
		}
		return ""
	}

	switch z {
	case 0:
		return "RET " + conditions[y&0x3]
	case 1:
		return "POP " + stackNames[p]
	case 2:
		return "JP " + conditions[y&0x3] + ",a16"
	case 4:
		return "CALL " + conditions[y&0x3] + ",a16"
	case 5:
		return "PUSH " + stackNames[p]
	case 6:
		return aluNames[y] + "d8"
	case 7:
		return fmt.Sprintf("RST $%02X", y*8)
	}
	return ""
}

func cbName(op uint8) string {
	if op < 0x40 {
		return rotateNames[op>>3&0x7] + " " + operandNames[op&0x7]
	}
	return fmt.Sprintf("%s %d,%s", bitNames[op>>6], bitIndex(op), operandNames[op&0x7])
}
