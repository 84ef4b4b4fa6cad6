package cpu

import "testing"

func TestInstruction_String(t *testing.T) {
	tests := []struct {
		program []uint8
		want    string
	}{
		{[]uint8{0x00}, "NOP"},
		{[]uint8{0x3E, 0x05}, "LD A,$05"},
		{[]uint8{0x01, 0x34, 0x12}, "LD BC,$1234"},
		{[]uint8{0x20, 0xFE}, "JR NZ,$0100"},
		{[]uint8{0x18, 0x03}, "JR $0105"},
		{[]uint8{0x7E}, "LD A,(HL)"},
		{[]uint8{0x86}, "ADD A,(HL)"},
		{[]uint8{0xAF}, "XOR A"},
		{[]uint8{0xE0, 0x40}, "LDH ($FF40),A"},
		{[]uint8{0xF8, 0xFE}, "LD HL,SP-2"},
		{[]uint8{0xE8, 0x08}, "ADD SP,8"},
		{[]uint8{0xCD, 0x00, 0x02}, "CALL $0200"},
		{[]uint8{0xC4, 0x00, 0x02}, "CALL NZ,$0200"},
		{[]uint8{0xF5}, "PUSH AF"},
		{[]uint8{0xFF}, "RST $38"},
		{[]uint8{0x22}, "LD (HL+),A"},
		{[]uint8{0xCB, 0x7C}, "BIT 7,H"},
		{[]uint8{0xCB, 0x86}, "RES 0,(HL)"},
		{[]uint8{0xCB, 0x37}, "SWAP A"},
		{[]uint8{0xD3}, "ILLEGAL $D3"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			c := load(tt.program...)
			if got := c.Decode().String(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestInstruction_Names(t *testing.T) {
	for op := 0; op < 256; op++ {
		if mnemonics[op] == "" {
			t.Errorf("0x%02X has no name", op)
		}
		if mnemonicsCB[op] == "" {
			t.Errorf("CB 0x%02X has no name", op)
		}
	}
}

func TestInstruction_Packed(t *testing.T) {
	in := Instruction{Opcode: 0xC3, Length: 3, Operands: [2]uint8{0x50, 0x01}}
	if got := in.Packed(); got != 0xC3500100 {
		t.Errorf("expected 0xC3500100, got 0x%08X", got)
	}
	if in.Imm16() != 0x0150 {
		t.Errorf("expected 0x0150, got 0x%04X", in.Imm16())
	}
}
