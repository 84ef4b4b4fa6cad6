// Package cartridge parses Game Boy cartridge images. The cartridge
// hardware itself is not emulated, the image is copied into the flat
// memory image and only the header is interpreted.
package cartridge

import (
	"github.com/thelolagemann/dmgcore/internal/mmu"
	"github.com/thelolagemann/dmgcore/internal/types"
)

// Cartridge holds a parsed cartridge image.
type Cartridge struct {
	rom    []byte
	header Header
}

// New parses the header of rom and returns a Cartridge holding it. The
// error wraps every fault found in the header.
func New(rom []byte) (*Cartridge, error) {
	header, err := Parse(rom)
	if err != nil {
		return nil, err
	}

	return &Cartridge{rom: rom, header: header}, nil
}

// Header returns the parsed cartridge header.
func (c *Cartridge) Header() Header {
	return c.header
}

// Title returns the cartridge title.
func (c *Cartridge) Title() string {
	return c.header.Title
}

// Mode returns the compatibility mode the cartridge selects.
func (c *Cartridge) Mode() types.Mode {
	return c.header.Mode()
}

// Size returns the size of the image in bytes.
func (c *Cartridge) Size() int {
	return len(c.rom)
}

// Load copies the image into the ROM window of m, returning the number
// of bytes mapped.
func (c *Cartridge) Load(m *mmu.MMU) int {
	return m.LoadROM(c.rom)
}
