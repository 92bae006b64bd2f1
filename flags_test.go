package avr8

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagsSREGRoundTrip(t *testing.T) {
	f := Flags{C: true, Z: false, N: true, V: false, S: true, H: false, T: true, I: false}
	var f2 Flags
	f2.SetSREG(f.SREG())
	assert.Equal(t, f, f2)
}

func TestSetFlagsAddCarryAndOverflow(t *testing.T) {
	var cpu CPU
	cpu.setFlagsAdd(0x7F, 0x01, 0x80)
	assert.True(t, cpu.flags.V, "signed overflow: 127+1 overflows into negative")
	assert.True(t, cpu.flags.N)
	assert.False(t, cpu.flags.C)
	assert.False(t, cpu.flags.Z)
}

func TestSetFlagsSubBorrow(t *testing.T) {
	var cpu CPU
	cpu.setFlagsSub(0x00, 0x01, 0xFF)
	assert.True(t, cpu.flags.C, "0-1 borrows")
	assert.True(t, cpu.flags.N)
	assert.False(t, cpu.flags.Z)
}

func TestSetFlagsLogicalClearsVKeepsC(t *testing.T) {
	var cpu CPU
	cpu.flags.V = true
	cpu.flags.C = true
	cpu.setFlagsLogical(0x00)
	assert.False(t, cpu.flags.V)
	assert.True(t, cpu.flags.Z)
	assert.True(t, cpu.flags.C, "logical ops never touch C")
}

// Per §8: S == N xor V after any flag-setting instruction.
func TestSInvariantAcrossFlagHelpers(t *testing.T) {
	cases := []struct{ rd, rr uint8 }{
		{0x00, 0x00}, {0x7F, 0x01}, {0x80, 0x80}, {0xFF, 0x01}, {0x10, 0x20},
	}
	for _, c := range cases {
		var cpu CPU
		cpu.setFlagsAdd(c.rd, c.rr, c.rd+c.rr)
		assert.Equal(t, cpu.flags.N != cpu.flags.V, cpu.flags.S)

		var cpu2 CPU
		cpu2.setFlagsSub(c.rd, c.rr, c.rd-c.rr)
		assert.Equal(t, cpu2.flags.N != cpu2.flags.V, cpu2.flags.S)
	}
}
