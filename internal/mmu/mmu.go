// Package mmu provides the memory image for the Game Boy. Unlike the
// banked bus of a full emulator, the MMU here is a single flat 64kB
// array: every read and write made by the CPU lands in it, and the
// other components are handed named windows over the same storage.
package mmu

import (
	"github.com/thelolagemann/dmgcore/internal/types"
	"github.com/thelolagemann/dmgcore/pkg/log"
)

// Size is the size of the address space.
const Size = 0x10000

// MMU is the memory image of the Game Boy. Addresses are uint16, so
// every access is in range by construction.
type MMU struct {
	// 64kB address space
	raw [Size]uint8

	Log log.Logger
}

// Opt configures an MMU.
type Opt func(m *MMU)

// WithLogger sets the logger used by the MMU.
func WithLogger(l log.Logger) Opt {
	return func(m *MMU) {
		m.Log = l
	}
}

// NewMMU returns a new, zeroed MMU.
func NewMMU(opts ...Opt) *MMU {
	m := &MMU{
		Log: log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Read returns the value at the given address.
func (m *MMU) Read(address uint16) uint8 {
	return m.raw[address]
}

// Write writes the value to the given address.
func (m *MMU) Write(address uint16, value uint8) {
	m.raw[address] = value
}

// Read16 returns the little-endian word at the given address. The
// second byte wraps around to 0x0000 at the top of memory.
func (m *MMU) Read16(address uint16) uint16 {
	return uint16(m.raw[address]) | uint16(m.raw[address+1])<<8
}

// SetBit sets the given bit of the byte at address.
func (m *MMU) SetBit(address uint16, bit types.Bit) {
	m.raw[address] |= bit
}

// ClearBit clears the given bit of the byte at address.
func (m *MMU) ClearBit(address uint16, bit types.Bit) {
	m.raw[address] &^= bit
}

// LoadROM copies the cartridge image into the ROM window and returns
// the number of bytes copied. Anything beyond the first 32kB would be
// reached through a bank controller, so it is left out.
func (m *MMU) LoadROM(rom []byte) int {
	n := copy(m.raw[types.ROMStart:uint32(types.ROMEnd)+1], rom)
	if len(rom) > n {
		m.Log.Warnf("rom is %d bytes, only the first %d are mapped", len(rom), n)
	}
	return n
}

// Overlay copies data over the address space starting at address,
// as is done with the boot ROM before execution begins.
func (m *MMU) Overlay(address uint16, data []byte) int {
	return copy(m.raw[address:], data)
}

// WRAM returns the work RAM window. The returned slice aliases the
// memory image, so writes through it are seen by the CPU.
func (m *MMU) WRAM() []uint8 {
	return m.raw[types.WRAMStart : uint32(types.WRAMEnd)+1]
}

// VRAM returns a read-only window over video memory.
func (m *MMU) VRAM() Window {
	return m.window(types.VRAMStart, types.VRAMEnd)
}

// IO returns a read-only window over the hardware register page.
func (m *MMU) IO() Window {
	return m.window(types.IOStart, types.IOEnd)
}

func (m *MMU) window(start, end uint16) Window {
	return Window{mem: m.raw[start : uint32(end)+1], start: start}
}
