// Package bits holds the small bit twiddling helpers shared by the
// CPU and the display.
package bits

// Val returns the value of the bit at the given index.
func Val(b uint8, i uint8) uint8 {
	return (b >> i) & 1
}

// Reset resets the bit at the given index.
func Reset(b, i uint8) uint8 {
	return b &^ (1 << i)
}

// Set sets the bit at the given index.
func Set(b, i uint8) uint8 {
	return b | (1 << i)
}

// Test tests the bit at the given index.
func Test(b, i uint8) bool {
	return (b>>i)&1 != 0
}

// Bool returns 1 if v is true, otherwise 0.
func Bool(v bool) uint8 {
	if v {
		return 1
	}
	return 0
}

// Swap exchanges the high and low nibbles of b.
func Swap(b uint8) uint8 {
	return b<<4 | b>>4
}

// HalfCarryAdd reports whether adding b and carry to a carries out
// of bit 3.
func HalfCarryAdd(a, b, carry uint8) bool {
	return (a&0xF)+(b&0xF)+carry > 0xF
}

// HalfCarrySub reports whether subtracting b and carry from a borrows
// from bit 4.
func HalfCarrySub(a, b, carry uint8) bool {
	return int(a&0xF)-int(b&0xF)-int(carry) < 0
}
