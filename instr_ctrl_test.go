package avr8

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNOPAdvancesPCOnly(t *testing.T) {
	cpu, mem := newTestCPU(t, 1, 16)
	mem.Program[0] = 0x0000 // NOP

	cyc, err := cpu.Step()
	assert.NoError(t, err)
	assert.Equal(t, 1, cyc)
	assert.Equal(t, uint32(1), cpu.PC())
}

func TestSLEEPSetsAsleep(t *testing.T) {
	cpu, mem := newTestCPU(t, 1, 16)
	mem.Program[0] = 0x9588 // SLEEP

	_, err := cpu.Step()
	assert.NoError(t, err)
	assert.True(t, cpu.IsAsleep())
}

func TestBREAKReturnsBreakInterrupt(t *testing.T) {
	cpu, mem := newTestCPU(t, 1, 16)
	mem.Program[0] = 0x9598 // BREAK

	_, err := cpu.Step()
	var brk *BreakInterrupt
	assert.True(t, errors.As(err, &brk))
}

func TestWDRIsANoOp(t *testing.T) {
	cpu, mem := newTestCPU(t, 1, 16)
	mem.Program[0] = 0x95A8 // WDR
	cpu.SetR(0, 0x42)

	_, err := cpu.Step()
	assert.NoError(t, err)
	assert.Equal(t, uint8(0x42), cpu.R(0))
}

func TestDESIsNotImplemented(t *testing.T) {
	cpu, mem := newTestCPU(t, 1, 16)
	mem.Program[0] = 0x940B // DES 0

	_, err := cpu.Step()
	var ni *NotImplemented
	assert.True(t, errors.As(err, &ni))
}
