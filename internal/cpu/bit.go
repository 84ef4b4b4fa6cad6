package cpu

import "github.com/thelolagemann/dmgcore/pkg/bits"

// testBit tests the bit at the given position in value.
//
//	BIT n, r
//	n = 0-7
//	r = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if bit n of r is 0.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func (c *CPU) testBit(value, position uint8) {
	c.setFlags(!bits.Test(value, position), false, true, c.isFlagSet(FlagCarry))
}

// bitIndex returns the bit selected by a BIT, RES or SET sub opcode.
// Each family spans 0x40 opcodes, with every row of 16 covering two
// bits: the low half of a row selects the even bit, the high half the
// odd one.
func bitIndex(opcode uint8) uint8 {
	return ((opcode>>4)&0x3)*2 + (opcode>>3)&1
}
