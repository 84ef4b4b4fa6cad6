package types

import "strings"

// Mode is the compatibility mode the core runs in. It is selected
// once from the cartridge header and never changes during a session.
type Mode uint8

const (
	// Legacy is the plain DMG run mode.
	Legacy Mode = iota
	// Enhanced is selected for cartridges that declare Super Game Boy
	// support under the old licensee scheme.
	Enhanced
)

var ModeNames = map[Mode]string{
	Legacy:   "legacy",
	Enhanced: "enhanced",
}

// StringToMode converts a string to a Mode, defaulting to Legacy.
func StringToMode(s string) Mode {
	for m, n := range ModeNames {
		if n == strings.ToLower(s) {
			return m
		}
	}

	return Legacy
}

func (m Mode) String() string {
	if n, ok := ModeNames[m]; ok {
		return n
	}
	return "unknown"
}

const (
	// ClockSpeed is the clock speed of the CPU in ticks per second.
	ClockSpeed = 4194304
	// TicksPerFrame is the number of clock ticks in a single video frame.
	TicksPerFrame = 70224
)
