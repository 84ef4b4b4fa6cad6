package cpu

import "github.com/thelolagemann/dmgcore/pkg/bits"

// Flag is the bit index of a flag in the F register.
type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// clearFlag clears a flag from the F register.
func (c *CPU) clearFlag(flag Flag) {
	c.F = bits.Reset(c.F, flag)
}

// setFlag sets a flag in the F register.
func (c *CPU) setFlag(flag Flag) {
	c.F = bits.Set(c.F, flag)
}

// setFlags sets all four flags at once.
func (c *CPU) setFlags(zero, subtract, halfCarry, carry bool) {
	c.F = bits.Bool(zero)<<FlagZero |
		bits.Bool(subtract)<<FlagSubtract |
		bits.Bool(halfCarry)<<FlagHalfCarry |
		bits.Bool(carry)<<FlagCarry
}

// isFlagSet returns true if the given flag is set.
func (c *CPU) isFlagSet(flag Flag) bool {
	return bits.Test(c.F, flag)
}

// Flags returns the state of the Z, N, H and C flags.
func (c *CPU) Flags() (zero, subtract, halfCarry, carry bool) {
	return c.isFlagSet(FlagZero), c.isFlagSet(FlagSubtract), c.isFlagSet(FlagHalfCarry), c.isFlagSet(FlagCarry)
}

// condition evaluates the branch condition encoded in bits 3-4 of
// a conditional opcode: NZ, Z, NC, C.
func (c *CPU) condition(opcode uint8) bool {
	switch (opcode >> 3) & 0x3 {
	case 0:
		return !c.isFlagSet(FlagZero)
	case 1:
		return c.isFlagSet(FlagZero)
	case 2:
		return !c.isFlagSet(FlagCarry)
	default:
		return c.isFlagSet(FlagCarry)
	}
}
