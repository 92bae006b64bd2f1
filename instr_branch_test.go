package avr8

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/user-none/go-chip-avr8/internal/flatmem"
)

func TestRJMPTakesTwoCycles(t *testing.T) {
	cpu, mem := newTestCPU(t, 4, 16)
	mem.Program[0] = 0xC002 // RJMP +2

	cyc, err := cpu.Step()
	assert.NoError(t, err)
	assert.Equal(t, 2, cyc)
	assert.Equal(t, uint32(3), cpu.PC()) // PC(after fetch)=1, +2 = 3
}

func TestConditionalBranchCycleCost(t *testing.T) {
	cpu, mem := newTestCPU(t, 4, 16)
	mem.Program[0] = 0xF001 // BREQ +0 (s=1=Z)

	cpu.SetFlags(Flags{Z: false})
	cyc, err := cpu.Step()
	assert.NoError(t, err)
	assert.Equal(t, 1, cyc, "not taken costs 1 cycle")

	cpu.Reset()
	cpu.SetFlags(Flags{Z: true})
	cyc, err = cpu.Step()
	assert.NoError(t, err)
	assert.Equal(t, 2, cyc, "taken costs 2 cycles")
}

func TestJMPTotalsThreeCycles(t *testing.T) {
	mem := flatmem.New(4, 0)
	cpu := New(mem, true)
	mem.Program[0] = 0x940C // JMP
	mem.Program[1] = 0x0002

	cyc, err := cpu.Step()
	assert.NoError(t, err)
	assert.Equal(t, 3, cyc)
	assert.Equal(t, uint32(2), cpu.PC())
}

func TestCPSESkipsLongInstruction(t *testing.T) {
	cpu, mem := newTestCPU(t, 4, 16)
	mem.Program[0] = 0x1001 // CPSE R0,R1
	mem.Program[1] = 0x940C // JMP (long: skipped, costs 2 extra fetch cycles)
	mem.Program[2] = 0x0000
	mem.Program[3] = 0x0000 // NOP, landed on after skip

	cpu.SetR(0, 5)
	cpu.SetR(1, 5)
	cyc, err := cpu.Step()
	assert.NoError(t, err)
	assert.Equal(t, 3, cyc, "base fetch + 2-word skip")
	assert.Equal(t, uint32(3), cpu.PC())
}
