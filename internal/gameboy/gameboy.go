// Package gameboy drives the CPU core a frame at a time. It owns the
// memory image, wires the cartridge and boot ROM into it, and samples
// video memory at every frame boundary.
package gameboy

import (
	"context"
	"fmt"

	"github.com/cespare/xxhash"

	"github.com/thelolagemann/dmgcore/internal/boot"
	"github.com/thelolagemann/dmgcore/internal/cartridge"
	"github.com/thelolagemann/dmgcore/internal/cpu"
	"github.com/thelolagemann/dmgcore/internal/mmu"
	"github.com/thelolagemann/dmgcore/internal/types"
	"github.com/thelolagemann/dmgcore/pkg/log"
)

// GameBoy represents a Game Boy. It contains all the components of the Game Boy.
// It is the main entry point for the emulator.
type GameBoy struct {
	CPU       *cpu.CPU
	MMU       *mmu.MMU
	Cartridge *cartridge.Cartridge
	Boot      *boot.ROM

	log.Logger

	bootROM  []byte
	skipBoot bool
	trace    bool
	mode     *types.Mode
	onFrame  FrameHandler

	frames   uint64
	ticks    uint64
	distinct uint64
	digest   uint64
}

// New returns a new GameBoy running rom. The cartridge header is
// validated first, and any fault in it is returned before the CPU is
// created.
func New(rom []byte, opts ...Opt) (*GameBoy, error) {
	g := &GameBoy{
		Logger: log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}

	cart, err := cartridge.New(rom)
	if err != nil {
		return nil, err
	}
	g.Cartridge = cart
	header := cart.Header()
	if !header.ChecksumValid() {
		g.WithFields(log.Fields{
			"expected": fmt.Sprintf("0x%02X", header.HeaderChecksum),
			"computed": fmt.Sprintf("0x%02X", header.ComputedChecksum()),
		}).Warnf("cartridge: header checksum mismatch")
	}

	mode := cart.Mode()
	if g.mode != nil {
		mode = *g.mode
	}

	g.MMU = mmu.NewMMU(mmu.WithLogger(g.Logger))
	cart.Load(g.MMU)
	g.CPU = cpu.NewCPU(g.MMU, mode)

	if g.bootROM != nil && !g.skipBoot {
		if g.Boot, err = boot.LoadROM(g.bootROM); err != nil {
			return nil, err
		}
		g.Boot.Overlay(g.MMU)
		g.CPU.Reset()
	} else {
		g.CPU.SkipBoot()
	}

	g.CPU.OnIllegalOpcode(func(d cpu.Diagnostic) {
		g.WithFields(log.Fields{
			"pc":     fmt.Sprintf("0x%04X", d.PC),
			"opcode": fmt.Sprintf("0x%02X", d.Opcode),
		}).Warnf("cpu: illegal opcode")
	})
	if g.trace {
		g.CPU.OnExecute(g.traceInstruction)
	}
	g.digest = g.vramDigest()

	g.Infof("cartridge: %s", header)
	return g, nil
}

// traceInstruction logs an executed instruction along with the
// registers it left behind.
func (g *GameBoy) traceInstruction(in cpu.Instruction) {
	c := g.CPU
	g.Debugf("%04X  %-14s A:%02X F:%02X B:%02X C:%02X D:%02X E:%02X H:%02X L:%02X SP:%04X",
		in.Address, in, c.A, c.F, c.B, c.C, c.D, c.E, c.H, c.L, c.SP)
}

// vramDigest returns the xxhash digest of video memory.
func (g *GameBoy) vramDigest() uint64 {
	d := xxhash.New()
	g.MMU.VRAM().WriteTo(d)
	return d.Sum64()
}

// Frame steps the emulation for a single frame. At the frame boundary
// the VBlank interrupt is requested, and the frame handler is called if
// video memory has changed since the last frame it saw.
func (g *GameBoy) Frame() {
	for i := 0; i < types.TicksPerFrame; i++ {
		g.CPU.Tick()
	}
	g.ticks += types.TicksPerFrame
	g.frames++
	g.CPU.RequestInterrupt(types.VBlankINT)

	digest := g.vramDigest()
	if digest == g.digest {
		return
	}
	g.digest = digest
	g.distinct++
	if g.onFrame != nil {
		g.onFrame(g.frames, g)
	}
}

// Run runs n frames, or until ctx is done when n is 0. The context is
// only checked between frames.
func (g *GameBoy) Run(ctx context.Context, n uint64) error {
	for i := uint64(0); n == 0 || i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		g.Frame()
	}
	return nil
}

// Press signals a button press: the CPU is woken from stop mode and the
// joypad interrupt is requested.
func (g *GameBoy) Press() {
	g.CPU.Wake()
	g.CPU.RequestInterrupt(types.JoypadINT)
}

// Frames returns the number of frames run.
func (g *GameBoy) Frames() uint64 {
	return g.frames
}

// Ticks returns the number of clock ticks run.
func (g *GameBoy) Ticks() uint64 {
	return g.ticks
}

// DistinctFrames returns the number of frames whose video memory
// differed from the frame before.
func (g *GameBoy) DistinctFrames() uint64 {
	return g.distinct
}
