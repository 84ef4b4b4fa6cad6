package cpu

import "github.com/thelolagemann/dmgcore/pkg/bits"

// aluOps holds the eight accumulator operations, in the order they are
// encoded by bits 3-5 of the 0x80-0xBF block and the ALU d8 opcodes.
var aluOps = [8]func(*CPU, uint8){
	(*CPU).add,
	(*CPU).addCarry,
	(*CPU).sub,
	(*CPU).subCarry,
	(*CPU).and,
	(*CPU).xor,
	(*CPU).or,
	(*CPU).compare,
}

// addN adds n and the carry in to the A Register, setting the flags
// accordingly.
func (c *CPU) addN(n, carry uint8) {
	sum := uint16(c.A) + uint16(n) + uint16(carry)
	c.setFlags(uint8(sum) == 0, false, bits.HalfCarryAdd(c.A, n, carry), sum > 0xFF)
	c.A = uint8(sum)
}

// add adds n to the A Register.
//
//	ADD A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(n uint8) {
	c.addN(n, 0)
}

// addCarry adds n plus the carry flag to the A Register.
//
//	ADC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) addCarry(n uint8) {
	c.addN(n, bits.Val(c.F, FlagCarry))
}

// subN subtracts n and the carry in from the A Register, returning the
// result without storing it.
func (c *CPU) subN(n, carry uint8) uint8 {
	diff := int(c.A) - int(n) - int(carry)
	c.setFlags(uint8(diff) == 0, true, bits.HalfCarrySub(c.A, n, carry), diff < 0)
	return uint8(diff)
}

// sub subtracts n from the A Register.
//
//	SUB n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sub(n uint8) {
	c.A = c.subN(n, 0)
}

// subCarry subtracts n plus the carry flag from the A Register.
//
//	SBC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) subCarry(n uint8) {
	c.A = c.subN(n, bits.Val(c.F, FlagCarry))
}

// and performs a bitwise AND operation on n and the A Register.
//
//	AND n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func (c *CPU) and(n uint8) {
	c.A &= n
	c.setFlags(c.A == 0, false, true, false)
}

// or performs a bitwise OR operation on n and the A Register.
//
//	OR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) or(n uint8) {
	c.A |= n
	c.setFlags(c.A == 0, false, false, false)
}

// xor performs a bitwise XOR operation on n and the A Register.
//
//	XOR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) xor(n uint8) {
	c.A ^= n
	c.setFlags(c.A == 0, false, false, false)
}

// compare compares n to the A Register. The flags are set as for SUB,
// but the result is thrown away.
//
//	CP n
//	n = d8, B, C, D, E, H, L, (HL), A
func (c *CPU) compare(n uint8) {
	c.subN(n, 0)
}

// increment returns n+1.
//
//	INC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(n uint8) uint8 {
	result := n + 1
	c.setFlags(result == 0, false, n&0xF == 0xF, c.isFlagSet(FlagCarry))
	return result
}

// decrement returns n-1.
//
//	DEC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(n uint8) uint8 {
	result := n - 1
	c.setFlags(result == 0, true, n&0xF == 0, c.isFlagSet(FlagCarry))
	return result
}

// addHL adds n to the HL Register pair.
//
//	ADD HL, nn
//	nn = BC, DE, HL, SP
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addHL(n uint16) {
	hl := c.HL.Uint16()
	sum := uint32(hl) + uint32(n)
	c.setFlags(c.isFlagSet(FlagZero), false, (hl&0xFFF)+(n&0xFFF) > 0xFFF, sum > 0xFFFF)
	c.HL.SetUint16(uint16(sum))
}

// addSPSigned returns SP plus the signed offset e. The half carry and
// carry flags come from the unsigned addition of the low byte of SP
// and e.
//
//	ADD SP, e
//	LD HL, SP+e
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) addSPSigned(e uint8) uint16 {
	result := uint16(int32(c.SP) + int32(int8(e)))
	low := uint8(c.SP)
	c.setFlags(false, false, bits.HalfCarryAdd(low, e, 0), uint16(low)+uint16(e) > 0xFF)
	return result
}

// decimalAdjust adjusts the A Register so that it holds the binary coded
// decimal result of the previous addition or subtraction.
//
//	DAA
//
// Flags affected:
//
//	Z - Set if register A is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set or reset according to operation.
func (c *CPU) decimalAdjust() {
	carry := c.isFlagSet(FlagCarry)
	if !c.isFlagSet(FlagSubtract) {
		if carry || c.A > 0x99 {
			c.A += 0x60
			carry = true
		}
		if c.isFlagSet(FlagHalfCarry) || c.A&0xF > 0x9 {
			c.A += 0x06
		}
	} else {
		if carry {
			c.A -= 0x60
		}
		if c.isFlagSet(FlagHalfCarry) {
			c.A -= 0x06
		}
	}
	c.setFlags(c.A == 0, c.isFlagSet(FlagSubtract), false, carry)
}

// complement flips every bit of the A Register.
//
//	CPL
func (c *CPU) complement() {
	c.A = ^c.A
	c.setFlag(FlagSubtract)
	c.setFlag(FlagHalfCarry)
}

// setCarry sets the carry flag.
//
//	SCF
func (c *CPU) setCarry() {
	c.setFlags(c.isFlagSet(FlagZero), false, false, true)
}

// complementCarry flips the carry flag.
//
//	CCF
func (c *CPU) complementCarry() {
	c.setFlags(c.isFlagSet(FlagZero), false, false, !c.isFlagSet(FlagCarry))
}
