package cartridge

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/thelolagemann/dmgcore/internal/types"
)

var (
	// ErrShortROM is returned when a ROM is too small to hold a header.
	ErrShortROM = errors.New("cartridge: rom too small to hold a header")
	// ErrUnsupportedROMSize is returned for a ROM size code above 0x08.
	ErrUnsupportedROMSize = errors.New("cartridge: unsupported rom size")
	// ErrUnsupportedRAMSize is returned for a RAM size code above 0x05.
	ErrUnsupportedRAMSize = errors.New("cartridge: unsupported ram size")
)

// Flag is the colour support advertised by the cartridge at 0x0143.
type Flag uint8

const (
	FlagOnlyDMG Flag = iota
	FlagSupportsCGB
	FlagOnlyCGB
)

const (
	// maxROMSizeCode is the largest ROM size code, 8MB.
	maxROMSizeCode = 0x08
	// sgbSupport is the value of 0x0146 for cartridges that support the
	// Super Game Boy functions.
	sgbSupport = 0x03
	// licenseeNew marks an old licensee code that defers to the new one.
	licenseeNew = 0x33
)

var ramMap = map[uint8]uint{
	0x00: 0,
	0x01: 2 * 1024,
	0x02: 8 * 1024,
	0x03: 32 * 1024,
	0x04: 128 * 1024,
	0x05: 64 * 1024,
}

// Type is the cartridge hardware, as found at 0x0147.
type Type uint8

const (
	ROM           Type = 0x00
	MBC1          Type = 0x01
	MBC1RAM       Type = 0x02
	MBC1RAMBATT   Type = 0x03
	MBC2          Type = 0x05
	MBC2BATT      Type = 0x06
	ROMRAM        Type = 0x08
	ROMRAMBATT    Type = 0x09
	MBC3TIMERBATT Type = 0x0F
	MBC3          Type = 0x11
	MBC3RAMBATT   Type = 0x13
	MBC5          Type = 0x19
	MBC5RAMBATT   Type = 0x1B
)

var typeNames = map[Type]string{
	ROM:           "ROM ONLY",
	MBC1:          "MBC1",
	MBC1RAM:       "MBC1+RAM",
	MBC1RAMBATT:   "MBC1+RAM+BATTERY",
	MBC2:          "MBC2",
	MBC2BATT:      "MBC2+BATTERY",
	ROMRAM:        "ROM+RAM",
	ROMRAMBATT:    "ROM+RAM+BATTERY",
	MBC3TIMERBATT: "MBC3+TIMER+BATTERY",
	MBC3:          "MBC3",
	MBC3RAMBATT:   "MBC3+RAM+BATTERY",
	MBC5:          "MBC5",
	MBC5RAMBATT:   "MBC5+RAM+BATTERY",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("unknown (0x%02X)", uint8(t))
}

// Header represents the header of a cartridge, located at the address
// space 0x0100-0x014F. It describes the cartridge itself, and the
// hardware it expects to run on.
type Header struct {
	// 0x0134-0x0143 - Title of the game
	Title string

	// 0x013F-0x0142 - ManufacturerCode of the game
	ManufacturerCode string

	// 0x0143 - CartridgeGBMode of the game. In older cartridges this byte was part
	// of the title.
	CartridgeGBMode Flag

	NewLicenseeCode string
	SGBFlag         uint8
	CartridgeType   Type
	ROMSizeCode     uint8
	RAMSizeCode     uint8
	ROMSize         uint
	RAMSize         uint
	CountryCode     uint8
	OldLicenseeCode uint8
	MaskROMVersion  uint8
	HeaderChecksum  uint8
	GlobalChecksum  uint16

	// computedChecksum is the header checksum calculated over
	// 0x0134-0x014C.
	computedChecksum uint8
}

// Parse parses the header of the given ROM. Every unsupported field is
// reported, with the individual faults wrapped in a single error.
func Parse(rom []byte) (Header, error) {
	if len(rom) <= int(types.HeaderEnd) {
		return Header{}, fmt.Errorf("%w: %d bytes", ErrShortROM, len(rom))
	}
	header := rom[types.HeaderStart : types.HeaderEnd+1]

	h := Header{}
	switch header[0x43] {
	case 0x80:
		h.CartridgeGBMode = FlagSupportsCGB
	case 0xC0:
		h.CartridgeGBMode = FlagOnlyCGB
	default:
		h.CartridgeGBMode = FlagOnlyDMG
	}

	if h.CartridgeGBMode == FlagOnlyDMG {
		h.Title = string(header[0x34:0x44])
	} else {
		h.Title = string(header[0x34:0x43])
	}
	h.Title = strings.TrimRight(h.Title, "\x00")
	h.ManufacturerCode = string(header[0x3F:0x43])
	h.NewLicenseeCode = string(header[0x44:0x46])
	h.SGBFlag = header[0x46]
	h.CartridgeType = Type(header[0x47])
	h.ROMSizeCode = header[0x48]
	h.RAMSizeCode = header[0x49]
	h.CountryCode = header[0x4A]
	h.OldLicenseeCode = header[0x4B]
	h.MaskROMVersion = header[0x4C]
	h.HeaderChecksum = header[0x4D]
	h.GlobalChecksum = uint16(header[0x4E])<<8 | uint16(header[0x4F])

	for _, b := range header[0x34:0x4D] {
		h.computedChecksum = h.computedChecksum - b - 1
	}

	var result *multierror.Error
	if h.ROMSizeCode > maxROMSizeCode {
		result = multierror.Append(result, fmt.Errorf("%w: code 0x%02X", ErrUnsupportedROMSize, h.ROMSizeCode))
	} else {
		// 32kB x (1 << n)
		h.ROMSize = (32 * 1024) << h.ROMSizeCode
	}
	if size, ok := ramMap[h.RAMSizeCode]; ok {
		h.RAMSize = size
	} else {
		result = multierror.Append(result, fmt.Errorf("%w: code 0x%02X", ErrUnsupportedRAMSize, h.RAMSizeCode))
	}

	return h, result.ErrorOrNil()
}

// Mode returns the compatibility mode the cartridge selects. Only
// cartridges that defer to the new licensee code and declare Super
// Game Boy support run in enhanced mode.
func (h Header) Mode() types.Mode {
	if h.OldLicenseeCode == licenseeNew && h.SGBFlag == sgbSupport {
		return types.Enhanced
	}
	return types.Legacy
}

// ChecksumValid reports whether the header checksum at 0x014D matches
// the header contents.
func (h Header) ChecksumValid() bool {
	return h.computedChecksum == h.HeaderChecksum
}

// ComputedChecksum returns the header checksum calculated over
// 0x0134-0x014C.
func (h Header) ComputedChecksum() uint8 {
	return h.computedChecksum
}

// GameboyColor reports whether the cartridge supports the CGB.
func (h Header) GameboyColor() bool {
	return h.CartridgeGBMode == FlagOnlyCGB || h.CartridgeGBMode == FlagSupportsCGB
}

// Hardware returns the hardware the cartridge was made for.
func (h Header) Hardware() string {
	switch h.CartridgeGBMode {
	case FlagOnlyDMG:
		return "DMG"
	case FlagSupportsCGB, FlagOnlyCGB:
		return "CGB"
	default:
		return "Unknown"
	}
}

func (h Header) String() string {
	return fmt.Sprintf("%s Mode: %s | Type: %s | ROM Size: %dkB | RAM Size: %dkB", h.Title, h.Mode(), h.CartridgeType, h.ROMSize/1024, h.RAMSize/1024)
}
