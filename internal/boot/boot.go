// Package boot handles the 256 byte boot ROM of the DMG Game Boy
// models. The boot ROM is laid over the bottom of the address space
// before the first instruction is fetched, and execution begins at
// 0x0000 instead of the cartridge entry point.
package boot

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/thelolagemann/dmgcore/internal/mmu"
	"github.com/thelolagemann/dmgcore/internal/types"
)

// Size is the size of a boot ROM in bytes.
const Size = int(types.BootEnd) + 1

// ErrInvalidSize is returned when a boot ROM is not exactly Size bytes.
var ErrInvalidSize = errors.New("boot: invalid boot rom size")

// ROM is a boot ROM image, identified by its MD5 checksum.
type ROM struct {
	raw      [Size]byte
	checksum string
}

// LoadROM returns a ROM holding a copy of b.
func LoadROM(b []byte) (*ROM, error) {
	if len(b) != Size {
		return nil, fmt.Errorf("%w: %d bytes, expected %d", ErrInvalidSize, len(b), Size)
	}

	r := &ROM{}
	copy(r.raw[:], b)
	sum := md5.Sum(b)
	r.checksum = hex.EncodeToString(sum[:])

	return r, nil
}

// Overlay copies the boot ROM over 0x0000 - 0x00FF of m. The overlay
// is never unmapped, so the cartridge bytes underneath stay hidden
// until the cartridge is loaded again.
func (r *ROM) Overlay(m *mmu.MMU) {
	m.Overlay(types.ROMStart, r.raw[:])
}

// Read returns the byte at the given address.
func (r *ROM) Read(addr uint8) byte {
	return r.raw[addr]
}

// Checksum returns the MD5 checksum of the boot rom.
func (r *ROM) Checksum() string {
	if r == nil {
		return ""
	}
	return r.checksum
}

// Model returns the model of the boot rom, as determined by its
// checksum.
func (r *ROM) Model() string {
	if r == nil {
		return "none"
	}
	if model, ok := knownChecksums[r.checksum]; ok {
		return model
	}
	return "unknown"
}

// knownChecksums maps the checksums of the known 256 byte boot roms
// to the model they were dumped from.
var knownChecksums = map[string]string{
	DMG0: "Game Boy (DMG-0)",
	DMG:  "Game Boy (DMG-01)",
	MGB:  "Game Boy Pocket",
	SGB:  "Super Game Boy",
	SGB2: "Super Game Boy 2",
}

const (
	// DMG0 is the early boot rom found in very early Japanese DMG
	// units, which flashes the screen on a failed logo check.
	DMG0 = "a8f84a0ac44da5d3f0ee19f9cea80a8c"
	// DMG is the boot rom of the DMG-01.
	DMG = "32fbbd84168d3482956eb3c5051637f5"
	// MGB differs from DMG by a single byte, leaving 0xFF in A.
	MGB = "71a378e71ff30b2d8a1f02bf5c7896aa"
	// SGB hands the cartridge header to the SNES instead of
	// scrolling the logo.
	SGB = "d574d4f9c12f305074798f54c091a8b4"
	// SGB2 differs from SGB by a single byte, leaving 0xFF in A.
	SGB2 = "e0430bca9925fb9882148fd2dc2418c1"
)
