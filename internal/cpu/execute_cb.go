package cpu

import "github.com/thelolagemann/dmgcore/pkg/bits"

// executeCB executes an instruction from the CB prefixed set.
//
//	00 000 000
//	^^ ^^^ ^^^
//	op bit reg
func (c *CPU) executeCB(sub uint8) {
	reg := sub & 0x7
	value := c.operand(reg)

	switch sub >> 6 {
	case 0:
		c.setOperand(reg, rotateOps[sub>>3&0x7](c, value))
	case 1: // BIT
		c.testBit(value, bitIndex(sub))
	case 2: // RES
		c.setOperand(reg, bits.Reset(value, bitIndex(sub)))
	case 3: // SET
		c.setOperand(reg, bits.Set(value, bitIndex(sub)))
	}
}
