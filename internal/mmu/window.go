package mmu

import "io"

// Window is a read-only view over a sub-range of the memory image. It
// reads straight from the MMU, so it always reflects the latest writes.
type Window struct {
	mem   []uint8
	start uint16
}

// Start returns the first address covered by the window.
func (w Window) Start() uint16 {
	return w.start
}

// Len returns the number of bytes in the window.
func (w Window) Len() int {
	return len(w.mem)
}

// Read returns the byte at the given absolute address. Addresses
// outside of the window read as 0xFF, the value of an open bus.
func (w Window) Read(address uint16) uint8 {
	i := int(address) - int(w.start)
	if i < 0 || i >= len(w.mem) {
		return 0xFF
	}
	return w.mem[i]
}

// CopyTo copies the window into dst, returning the number of bytes copied.
func (w Window) CopyTo(dst []uint8) int {
	return copy(dst, w.mem)
}

// Bytes returns a copy of the window.
func (w Window) Bytes() []uint8 {
	b := make([]uint8, len(w.mem))
	copy(b, w.mem)
	return b
}

// WriteTo writes the window to w. It implements io.WriterTo.
func (w Window) WriteTo(dst io.Writer) (int64, error) {
	n, err := dst.Write(w.mem)
	return int64(n), err
}
