// Package cpu provides an emulation of the Sharp LR35902, the processor
// found in the Game Boy. The CPU is driven one clock tick at a time: a
// countdown holds the ticks still owed by the instruction in flight, and
// a new instruction is only fetched once it has reached zero.
package cpu

import (
	"github.com/thelolagemann/dmgcore/internal/mmu"
	"github.com/thelolagemann/dmgcore/internal/types"
)

type mode = uint8

const (
	// ModeNormal is the normal CPU mode.
	ModeNormal mode = iota
	// ModeHalt is the halt CPU mode. No instructions are fetched until
	// an interrupt is pending.
	ModeHalt
	// ModeStop is the stop CPU mode. No instructions are fetched until
	// the CPU is explicitly woken, usually by a button press.
	ModeStop
)

const (
	// idleTicks is the number of ticks spent per step while halted or
	// stopped.
	idleTicks = 4
	// interruptTicks is the cost of dispatching to an interrupt vector.
	interruptTicks = 20
)

// Diagnostic describes an event the CPU could not execute normally,
// such as an illegal opcode. It is handed to the handler registered
// with OnIllegalOpcode so the driver can decide how to report it.
type Diagnostic struct {
	// PC is the address the opcode was fetched from.
	PC uint16
	// Opcode is the offending opcode.
	Opcode uint8
}

// CPU represents the Gameboy CPU. It is responsible for executing instructions.
type CPU struct {
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// Registers contains the 8-bit registers, as well as the 16-bit register pairs.
	*types.Registers

	mmu *mmu.MMU

	// registerPointers holds the canonical operand list, indexed as it
	// is encoded in the opcodes: B, C, D, E, H, L, (HL), A. Index 6 is
	// nil as it is resolved through the MMU.
	registerPointers [8]*types.Register

	ime       bool
	eiPending bool
	mode      mode
	compat    types.Mode

	remaining int

	onIllegal func(Diagnostic)
	onExecute func(Instruction)
}

// NewCPU creates a new CPU instance with the given MMU.
// The MMU is used to read and write to the memory.
func NewCPU(m *mmu.MMU, compat types.Mode) *CPU {
	c := &CPU{
		Registers: types.NewRegisters(),
		mmu:       m,
		compat:    compat,
	}
	c.registerPointers = [8]*types.Register{&c.B, &c.C, &c.D, &c.E, &c.H, &c.L, nil, &c.A}

	return c
}

// OnIllegalOpcode registers fn to be called whenever an illegal opcode
// is executed.
func (c *CPU) OnIllegalOpcode(fn func(Diagnostic)) {
	c.onIllegal = fn
}

// OnExecute registers fn to be called after every executed instruction.
func (c *CPU) OnExecute(fn func(Instruction)) {
	c.onExecute = fn
}

// Compatibility returns the compatibility mode the CPU was created with.
func (c *CPU) Compatibility() types.Mode {
	return c.compat
}

// InterruptsEnabled returns the state of the interrupt master enable flag.
func (c *CPU) InterruptsEnabled() bool {
	return c.ime
}

// Halted reports whether the CPU is waiting for an interrupt.
func (c *CPU) Halted() bool {
	return c.mode == ModeHalt
}

// Stopped reports whether the CPU is waiting to be woken.
func (c *CPU) Stopped() bool {
	return c.mode == ModeStop
}

// Wake leaves stop mode. It has no effect in any other mode.
func (c *CPU) Wake() {
	if c.mode == ModeStop {
		c.mode = ModeNormal
	}
}

// Remaining returns the number of ticks left before the next fetch.
func (c *CPU) Remaining() int {
	return c.remaining
}

// Tick advances the CPU by a single clock tick, stepping the CPU when
// the previous instruction has paid for all of its ticks.
func (c *CPU) Tick() {
	if c.remaining == 0 {
		c.Step()
	}
	if c.remaining > 0 {
		c.remaining--
	}
}

// Step the CPU by one instruction and returns the
// number of ticks that it costs.
func (c *CPU) Step() int {
	switch {
	case c.mode == ModeStop:
		c.remaining = idleTicks
	case c.serviceInterrupts():
		// dispatch has set the cycle budget
	case c.mode == ModeHalt:
		c.remaining = idleTicks
	default:
		c.Execute(c.Decode())
	}

	return c.remaining
}

// Reset returns the CPU to its power on state: every register zeroed,
// interrupts disabled and execution starting at 0x0000.
func (c *CPU) Reset() {
	c.AF.SetUint16(0)
	c.BC.SetUint16(0)
	c.DE.SetUint16(0)
	c.HL.SetUint16(0)
	c.SP = 0
	c.PC = 0
	c.ime = false
	c.eiPending = false
	c.mode = ModeNormal
	c.remaining = 0
}

// SkipBoot sets the registers to the values left behind by the boot ROM
// for the CPU's compatibility mode, and starts execution at the
// cartridge entry point.
func (c *CPU) SkipBoot() {
	c.Reset()
	switch c.compat {
	case types.Enhanced:
		c.AF.SetUint16(0x0100)
		c.BC.SetUint16(0x0014)
		c.DE.SetUint16(0x0000)
		c.HL.SetUint16(0xC060)
	default:
		c.AF.SetUint16(0x01B0)
		c.BC.SetUint16(0x0013)
		c.DE.SetUint16(0x00D8)
		c.HL.SetUint16(0x014D)
	}
	c.SP = 0xFFFE
	c.PC = types.HeaderStart
}

// operand returns the value of the canonical operand at index.
func (c *CPU) operand(index uint8) uint8 {
	index &= 0x7
	if index == hlOperand {
		return c.mmu.Read(c.HL.Uint16())
	}
	return *c.registerPointers[index]
}

// setOperand writes value to the canonical operand at index.
func (c *CPU) setOperand(index, value uint8) {
	index &= 0x7
	if index == hlOperand {
		c.mmu.Write(c.HL.Uint16(), value)
		return
	}
	*c.registerPointers[index] = value
}

// readPair returns the register pair selected by bits 4-5 of an
// opcode in the 0x00-0x3F block, where index 3 is SP.
func (c *CPU) readPair(index uint8) uint16 {
	switch index & 0x3 {
	case 0:
		return c.BC.Uint16()
	case 1:
		return c.DE.Uint16()
	case 2:
		return c.HL.Uint16()
	default:
		return c.SP
	}
}

// writePair is the counterpart of readPair.
func (c *CPU) writePair(index uint8, value uint16) {
	switch index & 0x3 {
	case 0:
		c.BC.SetUint16(value)
	case 1:
		c.DE.SetUint16(value)
	case 2:
		c.HL.SetUint16(value)
	default:
		c.SP = value
	}
}

// stackPair returns the register pair selected by bits 4-5 of a PUSH
// or POP opcode, where index 3 is AF.
func (c *CPU) stackPair(index uint8) *types.RegisterPair {
	switch index & 0x3 {
	case 0:
		return c.BC
	case 1:
		return c.DE
	case 2:
		return c.HL
	default:
		return c.AF
	}
}
