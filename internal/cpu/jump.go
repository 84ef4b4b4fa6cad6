package cpu

// Branch costs, in ticks, of the conditional control flow instructions.
const (
	jrTaken, jrNotTaken     = 12, 8
	jpTaken, jpNotTaken     = 16, 12
	callTaken, callNotTaken = 24, 12
	retTaken, retNotTaken   = 20, 8
)

// pushStack pushes a 16 bit value onto the stack, high byte first.
func (c *CPU) pushStack(value uint16) {
	c.mmu.Write(c.SP-1, uint8(value>>8))
	c.mmu.Write(c.SP-2, uint8(value))
	c.SP -= 2
}

// popStack pops a 16 bit value off the stack.
func (c *CPU) popStack() uint16 {
	lower := uint16(c.mmu.Read(c.SP))
	upper := uint16(c.mmu.Read(c.SP+1)) << 8
	c.SP += 2
	return lower | upper
}

// branch charges the cycle budget for a conditional instruction and
// returns the condition unchanged.
func (c *CPU) branch(taken bool, takenTicks, notTakenTicks int) bool {
	if taken {
		c.remaining = takenTicks
	} else {
		c.remaining = notTakenTicks
	}
	return taken
}

// call pushes the address of the next instruction onto the stack and jumps to
// the given address.
//
//	CALL nn
//	nn = 16-bit immediate value
func (c *CPU) call(address uint16) {
	c.pushStack(c.PC)
	c.PC = address
}

// ret pops the return address off the stack and jumps to it.
//
//	RET
func (c *CPU) ret() {
	c.PC = c.popStack()
}

// jumpRelative jumps to the address relative to the address of the
// next instruction.
//
//	JR e
//	e = 8-bit signed immediate value
func (c *CPU) jumpRelative(offset uint8) {
	c.PC = uint16(int32(c.PC) + int32(int8(offset)))
}

// conditional executes the conditional control flow instructions, JR cc,
// RET cc, JP cc and CALL cc, setting their cost once the condition is
// known.
func (c *CPU) conditional(in Instruction) {
	cond := c.condition(in.Opcode)
	switch in.Opcode & 0xC7 {
	case 0x00: // JR cc, e
		if c.branch(cond, jrTaken, jrNotTaken) {
			c.jumpRelative(in.Imm8())
		}
	case 0xC0: // RET cc
		if c.branch(cond, retTaken, retNotTaken) {
			c.ret()
		}
	case 0xC2: // JP cc, nn
		if c.branch(cond, jpTaken, jpNotTaken) {
			c.PC = in.Imm16()
		}
	case 0xC4: // CALL cc, nn
		if c.branch(cond, callTaken, callNotTaken) {
			c.call(in.Imm16())
		}
	}
}
