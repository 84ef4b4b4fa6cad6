package cpu

import "github.com/thelolagemann/dmgcore/internal/types"

// Execute executes a decoded instruction and sets the cycle budget to
// its cost. The PC must already point past the instruction, as it does
// after Decode.
func (c *CPU) Execute(in Instruction) {
	// EI takes effect once the instruction following it has begun
	if c.eiPending {
		c.ime = true
		c.eiPending = false
	}

	c.remaining = int(in.Cycles)
	switch {
	case in.Illegal:
		c.remaining = illegalTicks
		if c.onIllegal != nil {
			c.onIllegal(Diagnostic{PC: in.Address, Opcode: in.Opcode})
		}
	case in.Opcode == prefixCB:
		c.executeCB(in.Operands[0])
	default:
		c.execute(in)
	}

	if c.onExecute != nil {
		c.onExecute(in)
	}
}

// execute executes an instruction from the base set. The handful of
// instructions that don't fit the regular encoding are handled
// explicitly, the rest are dispatched by block.
func (c *CPU) execute(in Instruction) {
	op := in.Opcode
	switch op {
	case 0x00: // NOP
	case 0x08: // LD (a16), SP
		address := in.Imm16()
		c.mmu.Write(address, uint8(c.SP))
		c.mmu.Write(address+1, uint8(c.SP>>8))
	case 0x10: // STOP
		c.mode = ModeStop
	case 0x18: // JR e
		c.jumpRelative(in.Imm8())
	case 0x76: // HALT
		c.mode = ModeHalt
	case 0xC3: // JP a16
		c.PC = in.Imm16()
	case 0xC9: // RET
		c.ret()
	case 0xCD: // CALL a16
		c.call(in.Imm16())
	case 0xD9: // RETI
		c.ret()
		c.ime = true
	case 0xE0: // LDH (a8), A
		c.mmu.Write(types.IOStart+uint16(in.Imm8()), c.A)
	case 0xE2: // LD (C), A
		c.mmu.Write(types.IOStart+uint16(c.C), c.A)
	case 0xE8: // ADD SP, e
		c.SP = c.addSPSigned(in.Imm8())
	case 0xE9: // JP HL
		c.PC = c.HL.Uint16()
	case 0xEA: // LD (a16), A
		c.mmu.Write(in.Imm16(), c.A)
	case 0xF0: // LDH A, (a8)
		c.A = c.mmu.Read(types.IOStart + uint16(in.Imm8()))
	case 0xF2: // LD A, (C)
		c.A = c.mmu.Read(types.IOStart + uint16(c.C))
	case 0xF3: // DI
		c.ime = false
		c.eiPending = false
	case 0xF8: // LD HL, SP+e
		c.HL.SetUint16(c.addSPSigned(in.Imm8()))
	case 0xF9: // LD SP, HL
		c.SP = c.HL.Uint16()
	case 0xFA: // LD A, (a16)
		c.A = c.mmu.Read(in.Imm16())
	case 0xFB: // EI
		c.eiPending = true
	default:
		switch op >> 6 {
		case 0: // 0x00 - 0x3F
			c.executeLow(in)
		case 1: // 0x40 - 0x7F LD r, r'
			c.setOperand(op>>3, c.operand(op))
		case 2: // 0x80 - 0xBF ALU A, r
			aluOps[op>>3&0x7](c, c.operand(op))
		case 3: // 0xC0 - 0xFF
			c.executeHigh(in)
		}
	}
}

// executeLow executes the regular part of the 0x00-0x3F block.
//
//	00 000 000
//	^^ ^^^ ^^^
//	   yyy zzz
func (c *CPU) executeLow(in Instruction) {
	op := in.Opcode
	y := op >> 3 & 0x7
	pair := op >> 4 & 0x3
	switch op & 0x7 {
	case 0: // JR cc, e
		c.conditional(in)
	case 1:
		if y&1 == 1 { // ADD HL, rr
			c.addHL(c.readPair(pair))
		} else { // LD rr, d16
			c.writePair(pair, in.Imm16())
		}
	case 2:
		address := c.indirectAddress(pair)
		if y&1 == 1 { // LD A, (rr)
			c.A = c.mmu.Read(address)
		} else { // LD (rr), A
			c.mmu.Write(address, c.A)
		}
	case 3:
		if y&1 == 1 { // DEC rr
			c.writePair(pair, c.readPair(pair)-1)
		} else { // INC rr
			c.writePair(pair, c.readPair(pair)+1)
		}
	case 4: // INC r
		c.setOperand(y, c.increment(c.operand(y)))
	case 5: // DEC r
		c.setOperand(y, c.decrement(c.operand(y)))
	case 6: // LD r, d8
		c.setOperand(y, in.Imm8())
	case 7:
		accumulatorOps[y](c)
	}
}

// indirectAddress returns the address used by the LD (rr), A and
// LD A, (rr) forms. The HL forms post increment or decrement HL.
func (c *CPU) indirectAddress(pair uint8) uint16 {
	switch pair {
	case 0:
		return c.BC.Uint16()
	case 1:
		return c.DE.Uint16()
	case 2: // HL+
		hl := c.HL.Uint16()
		c.HL.SetUint16(hl + 1)
		return hl
	default: // HL-
		hl := c.HL.Uint16()
		c.HL.SetUint16(hl - 1)
		return hl
	}
}

// executeHigh executes the regular part of the 0xC0-0xFF block.
func (c *CPU) executeHigh(in Instruction) {
	op := in.Opcode
	switch op & 0x7 {
	case 0, 2, 4: // RET cc, JP cc, CALL cc
		c.conditional(in)
	case 1: // POP rr
		c.stackPair(op >> 4).SetUint16(c.popStack())
	case 5: // PUSH rr
		c.pushStack(c.stackPair(op >> 4).Uint16())
	case 6: // ALU A, d8
		aluOps[op>>3&0x7](c, in.Imm8())
	case 7: // RST
		c.call(uint16(op & 0x38))
	}
}
