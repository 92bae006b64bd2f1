package avr8

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestADDSetsCarryAndAliasesLSL(t *testing.T) {
	cpu, mem := newTestCPU(t, 1, 16)
	mem.Program[0] = 0x0C00 // ADD R0,R0 -> LSL R0
	cpu.SetR(0, 0x80)

	_, err := cpu.Step()
	assert.NoError(t, err)
	assert.Equal(t, uint8(0x00), cpu.R(0))
	assert.True(t, cpu.Flags().C)
	assert.True(t, cpu.Flags().Z)
}

func TestADCAddsCarryIn(t *testing.T) {
	cpu, mem := newTestCPU(t, 1, 16)
	mem.Program[0] = 0x1C01 // ADC R0,R1
	cpu.SetR(0, 1)
	cpu.SetR(1, 1)
	cpu.SetFlags(Flags{C: true})

	_, err := cpu.Step()
	assert.NoError(t, err)
	assert.Equal(t, uint8(3), cpu.R(0))
}

func TestSUBIComputesDifference(t *testing.T) {
	cpu, mem := newTestCPU(t, 1, 16)
	mem.Program[0] = 0x5005 // SUBI R16,0x05
	cpu.SetR(16, 0x07)

	_, err := cpu.Step()
	assert.NoError(t, err)
	assert.Equal(t, uint8(2), cpu.R(16))
	assert.False(t, cpu.Flags().C)
}

func TestCPDoesNotModifyOperands(t *testing.T) {
	cpu, mem := newTestCPU(t, 1, 16)
	mem.Program[0] = 0x1401 // CP R0,R1
	cpu.SetR(0, 5)
	cpu.SetR(1, 5)

	_, err := cpu.Step()
	assert.NoError(t, err)
	assert.True(t, cpu.Flags().Z)
	assert.Equal(t, uint8(5), cpu.R(0))
	assert.Equal(t, uint8(5), cpu.R(1))
}

func TestNEGOfZeroClearsCarry(t *testing.T) {
	cpu, mem := newTestCPU(t, 1, 16)
	mem.Program[0] = 0x9401 // NEG R0
	cpu.SetR(0, 0)

	_, err := cpu.Step()
	assert.NoError(t, err)
	assert.Equal(t, uint8(0), cpu.R(0))
	assert.False(t, cpu.Flags().C)
}

func TestINCDECOverflowFlags(t *testing.T) {
	cpu, mem := newTestCPU(t, 2, 16)
	mem.Program[0] = 0x9473 // INC R7
	mem.Program[1] = 0x947A // DEC R7

	cpu.SetR(7, 0x7F)
	_, err := cpu.Step()
	assert.NoError(t, err)
	assert.Equal(t, uint8(0x80), cpu.R(7))
	assert.True(t, cpu.Flags().V)

	_, err = cpu.Step()
	assert.NoError(t, err)
	assert.Equal(t, uint8(0x7F), cpu.R(7))
	assert.True(t, cpu.Flags().V)
}

func TestADIWTakesTwoCyclesAndWidensPair(t *testing.T) {
	cpu, mem := newTestCPU(t, 1, 16)
	mem.Program[0] = 0x9601 // ADIW R25:R24,1
	cpu.SetR(24, 0xFF)
	cpu.SetR(25, 0x00)

	cyc, err := cpu.Step()
	assert.NoError(t, err)
	assert.Equal(t, 2, cyc)
	assert.Equal(t, uint8(0x00), cpu.R(24))
	assert.Equal(t, uint8(0x01), cpu.R(25))
}

func TestMULSetsR0R1AndCostsTwoCycles(t *testing.T) {
	cpu, mem := newTestCPU(t, 1, 16)
	mem.Program[0] = 0x9C23 // MUL R2,R3
	cpu.SetR(2, 200)
	cpu.SetR(3, 2)

	cyc, err := cpu.Step()
	assert.NoError(t, err)
	assert.Equal(t, 2, cyc)
	assert.Equal(t, uint16(400), uint16(cpu.R(0))|uint16(cpu.R(1))<<8)
}
