package boot

import (
	"errors"
	"testing"

	"github.com/thelolagemann/dmgcore/internal/mmu"
)

func TestLoadROM(t *testing.T) {
	t.Run("invalid size", func(t *testing.T) {
		for _, size := range []int{0, 255, 257, 2304} {
			if _, err := LoadROM(make([]byte, size)); !errors.Is(err, ErrInvalidSize) {
				t.Errorf("%d bytes: expected ErrInvalidSize, got %v", size, err)
			}
		}
	})
	t.Run("unknown model", func(t *testing.T) {
		r, err := LoadROM(make([]byte, Size))
		if err != nil {
			t.Fatal(err)
		}
		// md5 of 256 zero bytes
		if r.Checksum() != "348a9791dc41b89796ec3808b5b5262f" {
			t.Errorf("unexpected checksum %s", r.Checksum())
		}
		if r.Model() != "unknown" {
			t.Errorf("expected unknown, got %s", r.Model())
		}
	})
	t.Run("nil", func(t *testing.T) {
		var r *ROM
		if r.Model() != "none" || r.Checksum() != "" {
			t.Error("expected a nil ROM to report no model")
		}
	})
}

func TestROM_Overlay(t *testing.T) {
	b := make([]byte, Size)
	for i := range b {
		b[i] = byte(i)
	}
	r, err := LoadROM(b)
	if err != nil {
		t.Fatal(err)
	}
	// the rom keeps its own copy
	b[0] = 0xFF

	m := mmu.NewMMU()
	m.LoadROM([]byte{0: 0xAA, 0x100: 0xBB})
	r.Overlay(m)

	for i := 0; i < Size; i++ {
		if m.Read(uint16(i)) != byte(i) {
			t.Fatalf("expected 0x%02X at 0x%04X, got 0x%02X", byte(i), i, m.Read(uint16(i)))
		}
	}
	if m.Read(0x0100) != 0xBB {
		t.Errorf("expected the cartridge header to be left alone, got 0x%02X", m.Read(0x0100))
	}
	if r.Read(0x10) != 0x10 {
		t.Errorf("expected 0x10, got 0x%02X", r.Read(0x10))
	}
}
