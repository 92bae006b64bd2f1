package avr8

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/user-none/go-chip-avr8/internal/flatmem"
)

func TestSerializeRoundTrip(t *testing.T) {
	mem := flatmem.New(4, 16)
	cpu := New(mem, true)

	for i := uint8(0); i < 32; i++ {
		cpu.SetR(i, i*7)
	}
	cpu.SetPC(0x1234)
	cpu.SetSP(0x00AB)
	cpu.SetSREG(0xA5)
	cpu.SetEIND(0x01)
	cpu.SetRAMPZ(0x02)
	cpu.SetAsleep(false)
	cpu.SetInvalidOpcodePolicy(DoNop)

	buf := make([]byte, cpu.SerializeSize())
	assert.NoError(t, cpu.Serialize(buf))

	cpu2 := New(mem, true)
	assert.NoError(t, cpu2.Deserialize(buf))

	assert.Equal(t, cpu.Registers(), cpu2.Registers())
	assert.Equal(t, cpu.ElapsedCycles(), cpu2.ElapsedCycles())
	assert.Equal(t, cpu.InvalidOpcodePolicy(), cpu2.InvalidOpcodePolicy())
}

func TestSerializeBufferTooSmall(t *testing.T) {
	mem := flatmem.New(1, 1)
	cpu := New(mem, false)
	err := cpu.Serialize(make([]byte, 2))
	assert.Error(t, err)
}

func TestDeserializeVersionMismatch(t *testing.T) {
	mem := flatmem.New(1, 1)
	cpu := New(mem, false)
	buf := make([]byte, cpu.SerializeSize())
	assert.NoError(t, cpu.Serialize(buf))
	buf[0] = 0xFF
	assert.Error(t, cpu.Deserialize(buf))
}
