package avr8

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLongRecognizesLDSSTSAndJMPCALL(t *testing.T) {
	assert.True(t, IsLong(0x9000))  // LDS
	assert.True(t, IsLong(0x9200))  // STS
	assert.True(t, IsLong(0x940C))  // JMP
	assert.True(t, IsLong(0x940E))  // CALL
	assert.False(t, IsLong(0x0000)) // NOP
	assert.False(t, IsLong(0xC000)) // RJMP
}

// define is called by every instr_*.go init(); this checks that those
// init() functions populated the table with at least one entry and no more
// entries than there are opcode words.
func TestOpcodeTableIsPopulated(t *testing.T) {
	var populated int
	for op := 0; op < 0x10000; op++ {
		if opcodeTable[uint16(op)] != nil {
			populated++
		}
	}
	assert.Greater(t, populated, 0)
	assert.LessOrEqual(t, populated, 0x10000)
}
