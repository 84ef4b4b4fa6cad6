package cpu

import "testing"

// flagsOf builds the F register value for the given flags.
func flagsOf(z, n, h, c bool) uint8 {
	var f uint8
	if z {
		f |= 1 << FlagZero
	}
	if n {
		f |= 1 << FlagSubtract
	}
	if h {
		f |= 1 << FlagHalfCarry
	}
	if c {
		f |= 1 << FlagCarry
	}
	return f
}

func TestALU_Add(t *testing.T) {
	// ADD A, B over every operand pair
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			cpu.A, cpu.B, cpu.F = uint8(a), uint8(b), 0
			cpu.Execute(Instruction{Opcode: 0x80, Length: 1, Cycles: 4})

			result := uint8(a + b)
			flags := flagsOf(result == 0, false, a&0xF+b&0xF > 0xF, a+b > 0xFF)
			if cpu.A != result || cpu.F != flags {
				t.Fatalf("0x%02X + 0x%02X: expected A 0x%02X F 0x%02X, got A 0x%02X F 0x%02X", a, b, result, flags, cpu.A, cpu.F)
			}
		}
	}
}

func TestALU_Sub(t *testing.T) {
	// SUB B over every operand pair
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			cpu.A, cpu.B, cpu.F = uint8(a), uint8(b), 0
			cpu.Execute(Instruction{Opcode: 0x90, Length: 1, Cycles: 4})

			result := uint8(a - b)
			flags := flagsOf(result == 0, true, a&0xF < b&0xF, a < b)
			if cpu.A != result || cpu.F != flags {
				t.Fatalf("0x%02X - 0x%02X: expected A 0x%02X F 0x%02X, got A 0x%02X F 0x%02X", a, b, result, flags, cpu.A, cpu.F)
			}
		}
	}
}

func TestALU_Compare(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b += 3 {
			cpu.A, cpu.F = uint8(a), 0
			cpu.compare(uint8(b))

			flags := flagsOf(a == b, true, a&0xF < b&0xF, a < b)
			if cpu.A != uint8(a) {
				t.Fatalf("CP 0x%02X changed A from 0x%02X to 0x%02X", b, a, cpu.A)
			}
			if cpu.F != flags {
				t.Fatalf("0x%02X cp 0x%02X: expected F 0x%02X, got 0x%02X", a, b, flags, cpu.F)
			}
		}
	}
}

func TestALU_Carry(t *testing.T) {
	tests := []struct {
		name    string
		fn      func(*CPU, uint8)
		a, n    uint8
		carry   bool
		want, f uint8
	}{
		{"ADC no carry", (*CPU).addCarry, 0x0E, 0x01, false, 0x0F, 0x00},
		{"ADC half carry", (*CPU).addCarry, 0x0E, 0x01, true, 0x10, 0x20},
		{"ADC overflow", (*CPU).addCarry, 0xFF, 0x00, true, 0x00, 0xB0},
		{"SBC no carry", (*CPU).subCarry, 0x10, 0x01, false, 0x0F, 0x60},
		{"SBC borrow", (*CPU).subCarry, 0x01, 0x01, true, 0xFF, 0x70},
		{"SBC zero", (*CPU).subCarry, 0x02, 0x01, true, 0x00, 0xC0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu.A = tt.a
			cpu.F = 0
			if tt.carry {
				cpu.setFlag(FlagCarry)
			}
			tt.fn(cpu, tt.n)
			if cpu.A != tt.want {
				t.Errorf("expected 0x%02X, got 0x%02X", tt.want, cpu.A)
			}
			if cpu.F != tt.f {
				t.Errorf("expected F 0x%02X, got 0x%02X", tt.f, cpu.F)
			}
		})
	}
}

func TestALU_Logic(t *testing.T) {
	tests := []struct {
		name    string
		op      uint8
		a, n    uint8
		want, f uint8
	}{
		{"AND", 0xA0, 0xF0, 0x3C, 0x30, 0x20},
		{"AND zero", 0xA0, 0xF0, 0x0F, 0x00, 0xA0},
		{"XOR", 0xA8, 0xF0, 0x3C, 0xCC, 0x00},
		{"OR", 0xB0, 0xF0, 0x0C, 0xFC, 0x00},
		{"OR zero", 0xB0, 0x00, 0x00, 0x00, 0x80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu.A, cpu.B, cpu.F = tt.a, tt.n, 0xF0
			cpu.Execute(Instruction{Opcode: tt.op, Length: 1, Cycles: 4})
			if cpu.A != tt.want {
				t.Errorf("expected 0x%02X, got 0x%02X", tt.want, cpu.A)
			}
			if cpu.F != tt.f {
				t.Errorf("expected F 0x%02X, got 0x%02X", tt.f, cpu.F)
			}
		})
	}

	// XOR A
	testInstruction(t, "XOR A", []uint8{0xAF}, func(t *testing.T, c *CPU) {
		if c.A != 0 {
			t.Errorf("expected 0x00, got 0x%02X", c.A)
		}
		if c.F != 0x80 {
			t.Errorf("expected F 0x80, got 0x%02X", c.F)
		}
	})
}

func TestALU_IncDec(t *testing.T) {
	testInstruction(t, "INC B half carry", []uint8{0x06, 0x0F, 0x04}, func(t *testing.T, c *CPU) {
		c.setFlag(FlagCarry)
		c.Step()
		if c.B != 0x10 {
			t.Errorf("expected 0x10, got 0x%02X", c.B)
		}
		if c.F != 0x30 {
			t.Errorf("expected F 0x30, got 0x%02X", c.F)
		}
	})
	testInstruction(t, "DEC (HL)", []uint8{0x21, 0x00, 0xC0, 0x35}, func(t *testing.T, c *CPU) {
		c.mmu.Write(0xC000, 0x01)
		if got := c.Step(); got != 12 {
			t.Errorf("expected 12 ticks, got %d", got)
		}
		if c.mmu.Read(0xC000) != 0x00 {
			t.Errorf("expected 0x00, got 0x%02X", c.mmu.Read(0xC000))
		}
		if c.F != 0xC0 {
			t.Errorf("expected F 0xC0, got 0x%02X", c.F)
		}
	})
	testInstruction(t, "INC BC wraps", []uint8{0x01, 0xFF, 0xFF, 0x03}, func(t *testing.T, c *CPU) {
		c.Step()
		if c.BC.Uint16() != 0x0000 {
			t.Errorf("expected 0x0000, got 0x%04X", c.BC.Uint16())
		}
		if c.F != 0 {
			t.Errorf("expected flags untouched, got 0x%02X", c.F)
		}
	})
	testInstruction(t, "DEC SP", []uint8{0x3B}, func(t *testing.T, c *CPU) {
		if c.SP != 0xFFFD {
			t.Errorf("expected 0xFFFD, got 0x%04X", c.SP)
		}
	})
}

func TestALU_16Bit(t *testing.T) {
	testInstruction(t, "ADD HL,DE", []uint8{0x21, 0xFF, 0x0F, 0x11, 0x01, 0x00, 0x19}, func(t *testing.T, c *CPU) {
		c.Step()
		c.setFlag(FlagZero)
		c.Step()
		if c.HL.Uint16() != 0x1000 {
			t.Errorf("expected 0x1000, got 0x%04X", c.HL.Uint16())
		}
		// Z is kept, H is the carry out of bit 11
		if c.F != 0xA0 {
			t.Errorf("expected F 0xA0, got 0x%02X", c.F)
		}
	})
	testInstruction(t, "ADD HL,HL carry", []uint8{0x21, 0x00, 0x80, 0x29}, func(t *testing.T, c *CPU) {
		c.Step()
		if c.HL.Uint16() != 0x0000 {
			t.Errorf("expected 0x0000, got 0x%04X", c.HL.Uint16())
		}
		if c.F != 0x10 {
			t.Errorf("expected F 0x10, got 0x%02X", c.F)
		}
	})
	testInstruction(t, "ADD SP,e", []uint8{0x31, 0xF8, 0xFF, 0xE8, 0x08}, func(t *testing.T, c *CPU) {
		c.Step()
		if c.SP != 0x0000 {
			t.Errorf("expected 0x0000, got 0x%04X", c.SP)
		}
		if c.F != 0x30 {
			t.Errorf("expected F 0x30, got 0x%02X", c.F)
		}
	})
	testInstruction(t, "LD HL,SP-1", []uint8{0x31, 0x00, 0xC0, 0xF8, 0xFF}, func(t *testing.T, c *CPU) {
		c.Step()
		if c.HL.Uint16() != 0xBFFF {
			t.Errorf("expected 0xBFFF, got 0x%04X", c.HL.Uint16())
		}
		if c.SP != 0xC000 {
			t.Errorf("expected SP untouched, got 0x%04X", c.SP)
		}
		if c.F != 0x00 {
			t.Errorf("expected F 0x00, got 0x%02X", c.F)
		}
	})
}

func TestALU_DecimalAdjust(t *testing.T) {
	tests := []struct {
		name    string
		program []uint8
		want, f uint8
	}{
		// LD A, 0x15 ; ADD A, 0x27 ; DAA
		{"add", []uint8{0x3E, 0x15, 0xC6, 0x27, 0x27}, 0x42, 0x00},
		// LD A, 0x99 ; ADD A, 0x01 ; DAA
		{"add carry", []uint8{0x3E, 0x99, 0xC6, 0x01, 0x27}, 0x00, 0x90},
		// LD A, 0x42 ; SUB 0x15 ; DAA
		{"sub", []uint8{0x3E, 0x42, 0xD6, 0x15, 0x27}, 0x27, 0x40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := load(tt.program...)
			c.Step()
			c.Step()
			c.Step()
			if c.A != tt.want {
				t.Errorf("expected 0x%02X, got 0x%02X", tt.want, c.A)
			}
			if c.F != tt.f {
				t.Errorf("expected F 0x%02X, got 0x%02X", tt.f, c.F)
			}
		})
	}
}

func TestALU_Accumulator(t *testing.T) {
	testInstruction(t, "CPL", []uint8{0x2F}, func(t *testing.T, c *CPU) {
		if c.A != 0xFF || c.F != 0x60 {
			t.Errorf("expected A 0xFF F 0x60, got A 0x%02X F 0x%02X", c.A, c.F)
		}
	})
	testInstruction(t, "SCF", []uint8{0x37}, func(t *testing.T, c *CPU) {
		if c.F != 0x10 {
			t.Errorf("expected F 0x10, got 0x%02X", c.F)
		}
	})
	testInstruction(t, "SCF CCF", []uint8{0x37, 0x3F}, func(t *testing.T, c *CPU) {
		c.Step()
		if c.F != 0x00 {
			t.Errorf("expected F 0x00, got 0x%02X", c.F)
		}
	})
}
