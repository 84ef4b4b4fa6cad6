package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/thelolagemann/dmgcore/internal/display"
	"github.com/thelolagemann/dmgcore/internal/gameboy"
	"github.com/thelolagemann/dmgcore/internal/types"
	"github.com/thelolagemann/dmgcore/pkg/log"
	"github.com/thelolagemann/dmgcore/pkg/utils"
)

func main() {
	romFile := flag.String("rom", "", "The rom file to load")
	bootROM := flag.String("boot", "", "The boot rom file to load")
	frames := flag.Uint64("frames", 60, "The number of frames to run, 0 runs until interrupted")
	trace := flag.Bool("trace", false, "Log every executed instruction")
	logLevel := flag.String("log-level", "info", "The log level (debug, info, warn, error)")
	asMode := flag.String("mode", "auto", "The compatibility mode. Can be auto, legacy or enhanced")
	dumpVRAM := flag.String("dump-vram", "", "Write the VRAM tile sheet to this PNG file when done")
	scale := flag.Int("scale", 2, "The scale of the VRAM tile sheet")
	palette := flag.String("palette", "greyscale", "The palette of the VRAM tile sheet. Can be greyscale or green")
	flag.Parse()

	if *trace {
		*logLevel = "debug"
	}
	logger := log.New(*logLevel)

	if err := run(logger, *romFile, *bootROM, *frames, *trace, *asMode, *dumpVRAM, *scale, *palette); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(logger log.Logger, romFile, bootROM string, frames uint64, trace bool, asMode, dumpVRAM string, scale int, palette string) error {
	if romFile == "" {
		return fmt.Errorf("no rom file given")
	}

	// open the rom file
	rom, err := utils.LoadFile(romFile)
	if err != nil {
		return err
	}

	opts := []gameboy.Opt{gameboy.WithLogger(logger)}
	if bootROM != "" {
		boot, err := utils.LoadFile(bootROM)
		if err != nil {
			return err
		}
		opts = append(opts, gameboy.WithBootROM(boot))
	}
	if trace {
		opts = append(opts, gameboy.WithTrace())
	}
	if asMode != "auto" {
		opts = append(opts, gameboy.AsMode(types.StringToMode(asMode)))
	}

	gb, err := gameboy.New(rom, opts...)
	if err != nil {
		return err
	}
	if gb.Boot != nil {
		logger.Infof("boot: %s (%s)", gb.Boot.Model(), gb.Boot.Checksum())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := gb.Run(ctx, frames); err != nil && ctx.Err() == nil {
		return err
	}

	c := gb.CPU
	logger.WithFields(log.Fields{
		"frames":   gb.Frames(),
		"ticks":    gb.Ticks(),
		"distinct": gb.DistinctFrames(),
		"mode":     c.Compatibility(),
	}).Infof("run complete")
	logger.Infof("PC:%04X SP:%04X AF:%04X BC:%04X DE:%04X HL:%04X IME:%t",
		c.PC, c.SP, c.AF.Uint16(), c.BC.Uint16(), c.DE.Uint16(), c.HL.Uint16(), c.InterruptsEnabled())

	if dumpVRAM == "" {
		return nil
	}
	pal := display.Greyscale
	if strings.EqualFold(palette, "green") {
		pal = display.Green
	}
	f, err := os.Create(dumpVRAM)
	if err != nil {
		return err
	}
	if err := display.WritePNG(f, gb.MMU.VRAM(), pal, utils.Clamp(1, scale, 16)); err != nil {
		f.Close()
		return err
	}
	logger.Infof("wrote vram tile sheet to %s", dumpVRAM)
	return f.Close()
}
