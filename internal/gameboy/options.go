package gameboy

import (
	"github.com/thelolagemann/dmgcore/internal/types"
	"github.com/thelolagemann/dmgcore/pkg/log"
)

// Opt is a function that modifies a GameBoy
// instance.
type Opt func(gb *GameBoy)

// FrameHandler is called at the end of every frame whose video memory
// differs from the previously presented frame.
type FrameHandler func(frame uint64, gb *GameBoy)

// WithLogger sets the logger used by the GameBoy and its components.
func WithLogger(log log.Logger) Opt {
	return func(gb *GameBoy) {
		gb.Logger = log
	}
}

// WithBootROM sets the boot ROM for the emulator. The boot ROM is laid
// over the cartridge and execution starts at 0x0000 with every register
// zeroed.
func WithBootROM(rom []byte) Opt {
	return func(gb *GameBoy) {
		gb.bootROM = rom
	}
}

// SkipBoot starts execution at the cartridge entry point, with the
// registers set as the boot ROM would have left them. This is the
// default when no boot ROM is given.
func SkipBoot() Opt {
	return func(gb *GameBoy) {
		gb.skipBoot = true
	}
}

// WithTrace logs every executed instruction at debug level.
func WithTrace() Opt {
	return func(gb *GameBoy) {
		gb.trace = true
	}
}

// WithFrameHandler sets the handler called when a new frame is ready.
func WithFrameHandler(fn FrameHandler) Opt {
	return func(gb *GameBoy) {
		gb.onFrame = fn
	}
}

// AsMode overrides the compatibility mode selected by the cartridge
// header.
func AsMode(m types.Mode) Opt {
	return func(gb *GameBoy) {
		gb.mode = &m
	}
}
