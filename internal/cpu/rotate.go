package cpu

import (
	"github.com/thelolagemann/dmgcore/internal/types"
	"github.com/thelolagemann/dmgcore/pkg/bits"
)

// rotateOps holds the shift and rotate family of the CB prefixed set,
// in the order selected by bits 3-5 of the sub opcode.
var rotateOps = [8]func(*CPU, uint8) uint8{
	(*CPU).rotateLeftCarry,
	(*CPU).rotateRightCarry,
	(*CPU).rotateLeft,
	(*CPU).rotateRight,
	(*CPU).shiftLeftArithmetic,
	(*CPU).shiftRightArithmetic,
	(*CPU).swap,
	(*CPU).shiftRightLogical,
}

// accumulatorOps holds the operations of the 0x07 column of the
// 0x00-0x3F block, indexed by bits 3-5 of the opcode.
var accumulatorOps = [8]func(*CPU){
	(*CPU).rotateLeftCarryAccumulator,
	(*CPU).rotateRightCarryAccumulator,
	(*CPU).rotateLeftAccumulator,
	(*CPU).rotateRightAccumulator,
	(*CPU).decimalAdjust,
	(*CPU).complement,
	(*CPU).setCarry,
	(*CPU).complementCarry,
}

// rotateLeftCarry rotates n left by 1 bit. The most significant bit is copied
// to both the carry flag and the least significant bit.
//
//	RLC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeftCarry(n uint8) uint8 {
	computed := n<<1 | n>>7
	c.setFlags(computed == 0, false, false, n&types.Bit7 != 0)
	return computed
}

// rotateRightCarry rotates n right by 1 bit. The least significant bit is
// copied to both the carry flag and the most significant bit.
//
//	RRC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRightCarry(n uint8) uint8 {
	computed := n>>1 | n<<7
	c.setFlags(computed == 0, false, false, n&types.Bit0 != 0)
	return computed
}

// rotateLeft rotates n left through the carry flag.
//
//	RL n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeft(n uint8) uint8 {
	computed := n<<1 | bits.Val(c.F, FlagCarry)
	c.setFlags(computed == 0, false, false, n&types.Bit7 != 0)
	return computed
}

// rotateRight rotates n right through the carry flag.
//
//	RR n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRight(n uint8) uint8 {
	computed := n>>1 | bits.Val(c.F, FlagCarry)<<7
	c.setFlags(computed == 0, false, false, n&types.Bit0 != 0)
	return computed
}

// shiftLeftArithmetic shifts n left into the carry flag. Bit 0 is reset.
//
//	SLA n
//	n = B, C, D, E, H, L, (HL), A
func (c *CPU) shiftLeftArithmetic(n uint8) uint8 {
	computed := n << 1
	c.setFlags(computed == 0, false, false, n&types.Bit7 != 0)
	return computed
}

// shiftRightArithmetic shifts n right into the carry flag. Bit 7 is
// left unchanged.
//
//	SRA n
//	n = B, C, D, E, H, L, (HL), A
func (c *CPU) shiftRightArithmetic(n uint8) uint8 {
	computed := n>>1 | n&types.Bit7
	c.setFlags(computed == 0, false, false, n&types.Bit0 != 0)
	return computed
}

// shiftRightLogical shifts n right into the carry flag. Bit 7 is reset.
//
//	SRL n
//	n = B, C, D, E, H, L, (HL), A
func (c *CPU) shiftRightLogical(n uint8) uint8 {
	computed := n >> 1
	c.setFlags(computed == 0, false, false, n&types.Bit0 != 0)
	return computed
}

// swap the upper and lower nibbles of n.
//
//	SWAP n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) swap(n uint8) uint8 {
	computed := bits.Swap(n)
	c.setFlags(computed == 0, false, false, false)
	return computed
}

// The accumulator rotates behave as their CB prefixed counterparts,
// except that the zero flag is always reset.

func (c *CPU) rotateLeftCarryAccumulator() {
	c.A = c.rotateLeftCarry(c.A)
	c.clearFlag(FlagZero)
}

func (c *CPU) rotateRightCarryAccumulator() {
	c.A = c.rotateRightCarry(c.A)
	c.clearFlag(FlagZero)
}

func (c *CPU) rotateLeftAccumulator() {
	c.A = c.rotateLeft(c.A)
	c.clearFlag(FlagZero)
}

func (c *CPU) rotateRightAccumulator() {
	c.A = c.rotateRight(c.A)
	c.clearFlag(FlagZero)
}
