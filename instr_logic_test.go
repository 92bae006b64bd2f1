package avr8

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestANDClearsVAndAliasesTST(t *testing.T) {
	cpu, mem := newTestCPU(t, 1, 16)
	mem.Program[0] = 0x2000 // AND R0,R0 -> TST R0
	cpu.SetR(0, 0)

	_, err := cpu.Step()
	assert.NoError(t, err)
	assert.True(t, cpu.Flags().Z)
	assert.False(t, cpu.Flags().V)
}

func TestORICombinesImmediate(t *testing.T) {
	cpu, mem := newTestCPU(t, 1, 16)
	mem.Program[0] = 0x600F // ORI R16,0x0F
	cpu.SetR(16, 0xF0)

	_, err := cpu.Step()
	assert.NoError(t, err)
	assert.Equal(t, uint8(0xFF), cpu.R(16))
}

func TestEORSelfAliasesCLR(t *testing.T) {
	cpu, mem := newTestCPU(t, 1, 16)
	mem.Program[0] = 0x2400 // EOR R0,R0 -> CLR R0
	cpu.SetR(0, 0x77)

	_, err := cpu.Step()
	assert.NoError(t, err)
	assert.Equal(t, uint8(0), cpu.R(0))
	assert.True(t, cpu.Flags().Z)
}

func TestCOMSetsCarryAndInvertsBits(t *testing.T) {
	cpu, mem := newTestCPU(t, 1, 16)
	mem.Program[0] = 0x9400 // COM R0
	cpu.SetR(0, 0x0F)

	_, err := cpu.Step()
	assert.NoError(t, err)
	assert.Equal(t, uint8(0xF0), cpu.R(0))
	assert.True(t, cpu.Flags().C)
}

func TestSWAPExchangesNibbles(t *testing.T) {
	cpu, mem := newTestCPU(t, 1, 16)
	mem.Program[0] = 0x9402 // SWAP R0
	cpu.SetR(0, 0xAB)

	_, err := cpu.Step()
	assert.NoError(t, err)
	assert.Equal(t, uint8(0xBA), cpu.R(0))
}

func TestLSRShiftsInZeroAndSetsCarry(t *testing.T) {
	cpu, mem := newTestCPU(t, 1, 16)
	mem.Program[0] = 0x9406 // LSR R0
	cpu.SetR(0, 0x01)

	_, err := cpu.Step()
	assert.NoError(t, err)
	assert.Equal(t, uint8(0), cpu.R(0))
	assert.True(t, cpu.Flags().C)
	assert.False(t, cpu.Flags().N)
}

func TestRORPullsInCarry(t *testing.T) {
	cpu, mem := newTestCPU(t, 1, 16)
	mem.Program[0] = 0x9407 // ROR R0
	cpu.SetR(0, 0x00)
	cpu.SetFlags(Flags{C: true})

	_, err := cpu.Step()
	assert.NoError(t, err)
	assert.Equal(t, uint8(0x80), cpu.R(0))
	assert.False(t, cpu.Flags().C)
}
