package types

// The Game Boy's 64kB address space is split into the following
// windows. The core treats it as one flat array, these bounds only
// name the sub-ranges the collaborators care about.
const (
	// ROMStart - ROMEnd is the cartridge ROM, bank 0 followed by bank 1.
	ROMStart uint16 = 0x0000
	ROMEnd   uint16 = 0x7FFF
	// BootEnd is the last address covered by the boot overlay.
	BootEnd uint16 = 0x00FF
	// HeaderStart - HeaderEnd is the cartridge header.
	HeaderStart uint16 = 0x0100
	HeaderEnd   uint16 = 0x014F
	// VRAMStart - VRAMEnd is video memory, sampled by the display.
	VRAMStart uint16 = 0x8000
	VRAMEnd   uint16 = 0x9FFF
	// ExternalRAMStart - ExternalRAMEnd is cartridge RAM.
	ExternalRAMStart uint16 = 0xA000
	ExternalRAMEnd   uint16 = 0xBFFF
	// WRAMStart - WRAMEnd is the work RAM.
	WRAMStart uint16 = 0xC000
	WRAMEnd   uint16 = 0xDFFF
	// OAMStart - OAMEnd is the sprite attribute table.
	OAMStart uint16 = 0xFE00
	OAMEnd   uint16 = 0xFE9F
	// IOStart - IOEnd is the hardware register window, addressed by
	// the LDH instructions relative to IOStart.
	IOStart uint16 = 0xFF00
	IOEnd   uint16 = 0xFF7F
	// HRAMStart - HRAMEnd is high RAM, where the stack usually lives.
	HRAMStart uint16 = 0xFF80
	HRAMEnd   uint16 = 0xFFFE
)

// HardwareAddress represents the address of a hardware
// register of the Game Boy. The hardware IO are mapped
// to memory addresses 0xFF00 - 0xFF7F & 0xFFFF.
type HardwareAddress = uint16

const (
	// P1 is the address of the P1 hardware register. The P1
	// hardware register is used to select the input keys to
	// be read by the CPU, and to read the state of the joypad.
	P1 HardwareAddress = 0xFF00
	// IF is the address of the IF hardware register. The IF
	// hardware register is used to request interrupts. Writing a 1
	// to a bit in IF requests an interrupt, and writing a 0 clears
	// the request.
	//
	//  Bit 0: V-Blank Interrupt Request (INT 40h)  (1=Request)
	//  Bit 1: LCD STAT Interrupt Request (INT 48h) (1=Request)
	//  Bit 2: Timer Interrupt Request (INT 50h)    (1=Request)
	//  Bit 3: Serial Interrupt Request (INT 58h)   (1=Request)
	//  Bit 4: Joypad Interrupt Request (INT 60h)   (1=Request)
	IF HardwareAddress = 0xFF0F
	// BDIS is the address of the boot ROM disable register. It is
	// only named here, unmapping the overlay is left to the cartridge
	// side of the emulator.
	BDIS HardwareAddress = 0xFF50
	// IE is the address of the IE hardware register. Each bit enables
	// the interrupt of the same bit in IF.
	IE HardwareAddress = 0xFFFF
)

// Interrupt is the bit index of an interrupt source in IF and IE.
type Interrupt = uint8

const (
	VBlankINT Interrupt = iota
	LCDINT
	TimerINT
	SerialINT
	JoypadINT
)

// InterruptVector returns the address jumped to when servicing i.
func InterruptVector(i Interrupt) uint16 {
	return 0x0040 + uint16(i)*8
}
