package mmu

import (
	"bytes"
	"testing"

	"github.com/thelolagemann/dmgcore/internal/types"
)

func TestMMU_ReadWrite(t *testing.T) {
	m := NewMMU()
	for _, addr := range []uint16{0x0000, 0x7FFF, 0x8000, 0xC000, 0xFF0F, 0xFFFF} {
		m.Write(addr, 0x42)
		if m.Read(addr) != 0x42 {
			t.Errorf("0x%04X: expected 0x42, got 0x%02X", addr, m.Read(addr))
		}
	}

	m.Write(0xFFFF, 0x34)
	m.Write(0x0000, 0x12)
	if got := m.Read16(0xFFFF); got != 0x1234 {
		t.Errorf("expected 0x1234, got 0x%04X", got)
	}

	m.Write(types.IF, 0x00)
	m.SetBit(types.IF, types.Bit2)
	if m.Read(types.IF) != 0x04 {
		t.Errorf("expected 0x04, got 0x%02X", m.Read(types.IF))
	}
	m.ClearBit(types.IF, types.Bit2)
	if m.Read(types.IF) != 0x00 {
		t.Errorf("expected 0x00, got 0x%02X", m.Read(types.IF))
	}
}

func TestMMU_LoadROM(t *testing.T) {
	m := NewMMU()
	rom := make([]byte, 0x9000)
	rom[0x7FFF] = 0x01
	rom[0x8000] = 0x02
	if n := m.LoadROM(rom); n != 0x8000 {
		t.Errorf("expected 0x8000 bytes, got 0x%X", n)
	}
	if m.Read(0x7FFF) != 0x01 || m.Read(0x8000) != 0x00 {
		t.Error("expected the rom to be truncated to the rom window")
	}
}

func TestMMU_Windows(t *testing.T) {
	m := NewMMU()
	t.Run("WRAM aliases memory", func(t *testing.T) {
		wram := m.WRAM()
		if len(wram) != 0x2000 {
			t.Fatalf("expected 0x2000 bytes, got 0x%X", len(wram))
		}
		wram[0x10] = 0xAB
		if m.Read(0xC010) != 0xAB {
			t.Errorf("expected 0xAB, got 0x%02X", m.Read(0xC010))
		}
		m.Write(0xDFFF, 0xCD)
		if wram[0x1FFF] != 0xCD {
			t.Errorf("expected 0xCD, got 0x%02X", wram[0x1FFF])
		}
	})
	t.Run("VRAM", func(t *testing.T) {
		vram := m.VRAM()
		if vram.Start() != 0x8000 || vram.Len() != 0x2000 {
			t.Fatalf("unexpected window 0x%04X+0x%X", vram.Start(), vram.Len())
		}
		m.Write(0x8001, 0x11)
		if vram.Read(0x8001) != 0x11 {
			t.Errorf("expected the window to follow writes, got 0x%02X", vram.Read(0x8001))
		}
		if vram.Read(0x7FFF) != 0xFF || vram.Read(0xA000) != 0xFF {
			t.Error("expected reads outside the window to return 0xFF")
		}

		b := vram.Bytes()
		b[1] = 0x00
		if m.Read(0x8001) != 0x11 {
			t.Error("expected Bytes to return a copy")
		}

		var buf bytes.Buffer
		if n, err := vram.WriteTo(&buf); err != nil || n != 0x2000 {
			t.Errorf("expected 0x2000 bytes written, got 0x%X %v", n, err)
		}
		if buf.Bytes()[1] != 0x11 {
			t.Errorf("expected 0x11, got 0x%02X", buf.Bytes()[1])
		}
	})
	t.Run("IO", func(t *testing.T) {
		io := m.IO()
		if io.Start() != types.IOStart || io.Len() != 0x80 {
			t.Errorf("unexpected window 0x%04X+0x%X", io.Start(), io.Len())
		}
	})
}

func TestMMU_Overlay(t *testing.T) {
	m := NewMMU()
	m.LoadROM([]byte{0xAA, 0xBB, 0xCC})
	if n := m.Overlay(0x0000, []byte{0x01, 0x02}); n != 2 {
		t.Errorf("expected 2, got %d", n)
	}
	if m.Read(0x0000) != 0x01 || m.Read(0x0002) != 0xCC {
		t.Error("expected the overlay to only cover its own bytes")
	}
}
