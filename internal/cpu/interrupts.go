package cpu

import (
	"github.com/thelolagemann/dmgcore/internal/types"
	"github.com/thelolagemann/dmgcore/pkg/bits"
)

// interruptMask covers the five interrupt sources in IF and IE.
const interruptMask = 0x1F

// RequestInterrupt requests the given interrupt by setting its bit in
// the IF register.
func (c *CPU) RequestInterrupt(i types.Interrupt) {
	c.mmu.Write(types.IF, bits.Set(c.mmu.Read(types.IF), i))
}

// pendingInterrupts returns the interrupts that are both requested and
// enabled.
func (c *CPU) pendingInterrupts() uint8 {
	return c.mmu.Read(types.IE) & c.mmu.Read(types.IF) & interruptMask
}

// serviceInterrupts checks for pending interrupts before an instruction
// is fetched. Any pending interrupt takes the CPU out of halt mode, but
// it is only dispatched when the IME is set. Dispatching clears the
// request, pushes the PC and jumps to the vector of the highest
// priority interrupt. It returns true if an interrupt was dispatched.
func (c *CPU) serviceInterrupts() bool {
	pending := c.pendingInterrupts()
	if pending == 0 {
		return false
	}
	if c.mode == ModeHalt {
		c.mode = ModeNormal
	}
	if !c.ime {
		return false
	}

	for i := types.VBlankINT; i <= types.JoypadINT; i++ {
		if !bits.Test(pending, i) {
			continue
		}
		c.mmu.Write(types.IF, bits.Reset(c.mmu.Read(types.IF), i))
		c.ime = false
		c.eiPending = false
		c.call(types.InterruptVector(i))
		c.remaining = interruptTicks
		return true
	}
	return false
}
