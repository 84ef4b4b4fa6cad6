package bits

import "testing"

func TestSetReset(t *testing.T) {
	for i := uint8(0); i < 8; i++ {
		if got := Set(0, i); got != 1<<i {
			t.Errorf("expected 0x%02X, got 0x%02X", uint8(1<<i), got)
		}
		if got := Reset(0xFF, i); got != 0xFF&^(1<<i) {
			t.Errorf("expected 0x%02X, got 0x%02X", uint8(0xFF&^(1<<i)), got)
		}
		if !Test(1<<i, i) || Val(1<<i, i) != 1 {
			t.Errorf("expected bit %d to be set", i)
		}
	}
}

func TestSwap(t *testing.T) {
	if got := Swap(0x12); got != 0x21 {
		t.Errorf("expected 0x21, got 0x%02X", got)
	}
}

func TestHalfCarry(t *testing.T) {
	if !HalfCarryAdd(0x0F, 0x01, 0) {
		t.Error("expected half carry for 0x0F+0x01")
	}
	if HalfCarryAdd(0x0E, 0x01, 0) {
		t.Error("unexpected half carry for 0x0E+0x01")
	}
	if !HalfCarryAdd(0x0E, 0x01, 1) {
		t.Error("expected half carry for 0x0E+0x01+1")
	}
	if !HalfCarrySub(0x10, 0x01, 0) {
		t.Error("expected half borrow for 0x10-0x01")
	}
	if HalfCarrySub(0x11, 0x01, 0) {
		t.Error("unexpected half borrow for 0x11-0x01")
	}
	if !HalfCarrySub(0x11, 0x01, 1) {
		t.Error("expected half borrow for 0x11-0x01-1")
	}
}
