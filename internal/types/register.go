package types

// Register represents a GB Register which is used to hold an 8-bit value.
// The CPU has 8 registers: A, B, C, D, E, H, L, and F. The F register is
// special in that it is used to hold the flags.
type Register = uint8

// RegisterPair represents a pair of GB Registers which is used to hold a 16-bit
// value. The CPU has 4 register pairs: AF, BC, DE, and HL.
//
// A RegisterPair holds no storage of its own, it composes the two 8-bit
// registers it was created from. The first named register is always the
// high byte, so writing to B is visible through BC and vice versa.
type RegisterPair struct {
	High *Register
	Low  *Register

	// mask is applied to the low byte on every write. Only AF uses it, as
	// the lower nibble of F is hardwired to zero.
	mask uint8
}

// NewRegisterPair returns a RegisterPair composed of high and low.
func NewRegisterPair(high, low *Register) *RegisterPair {
	return &RegisterPair{High: high, Low: low, mask: 0xFF}
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r *RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 sets the value of the RegisterPair to the given value.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High = uint8(value >> 8)
	*r.Low = uint8(value) & r.mask
}

// Registers represents the GB CPU registers.
type Registers struct {
	A Register
	F Register
	B Register
	C Register
	D Register
	E Register
	H Register
	L Register

	AF *RegisterPair
	BC *RegisterPair
	DE *RegisterPair
	HL *RegisterPair
}

// NewRegisters returns a zeroed register file with its pair views
// wired to the underlying 8-bit registers.
func NewRegisters() *Registers {
	r := &Registers{}
	r.AF = &RegisterPair{High: &r.A, Low: &r.F, mask: HighNibble}
	r.BC = NewRegisterPair(&r.B, &r.C)
	r.DE = NewRegisterPair(&r.D, &r.E)
	r.HL = NewRegisterPair(&r.H, &r.L)
	return r
}
