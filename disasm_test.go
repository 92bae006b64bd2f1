package avr8

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/user-none/go-chip-avr8/internal/flatmem"
)

// Scenario 7 — Disassembly table (§8): every one of the 65,536 possible
// 16-bit words, each followed by a filler second word for the ones that
// are long, must produce a line starting with a 5-digit hex PC and either
// a recognized mnemonic or the "*** ?!?" marker.
func TestDisassembleFullOpcodeSpace(t *testing.T) {
	mem := flatmem.New(2, 0)
	dis := NewDisassembler(mem, false)

	var longCount, wordsFetched int
	for op := 0; op < 0x10000; op++ {
		mem.Program[0] = uint16(op)
		mem.Program[1] = 0xBEEF // filler second word
		line := dis.disassembleInstructionAt(0)

		assert.Regexp(t, `^[0-9A-F]{5} :`, line)
		if opcodeTable[uint16(op)] == nil {
			assert.Contains(t, line, "*** ?!?")
		}

		if IsLong(uint16(op)) {
			longCount++
			assert.Equal(t, uint32(2), dis.pc)
			wordsFetched += 2
		} else {
			assert.Equal(t, uint32(1), dis.pc)
			wordsFetched++
		}
	}

	assert.Equal(t, 0x10000+longCount, wordsFetched)
}

// Per §8: disassembling a non-long opcode advances the internal cursor by
// exactly 1 word; a long opcode advances it by exactly 2.
func TestDisassemblerCursorAdvance(t *testing.T) {
	mem := flatmem.New(4, 0)
	dis := NewDisassembler(mem, false)

	mem.Program[0] = 0x0000 // NOP, not long
	dis.disassembleInstructionAt(0)
	assert.Equal(t, uint32(1), dis.pc)

	mem.Program[1] = 0x940C // JMP, long
	mem.Program[2] = 0x0000
	dis.disassembleInstructionAt(1)
	assert.Equal(t, uint32(3), dis.pc)
}

// A long opcode sitting at the very last address in range wraps the
// cursor past 0 (not onto it); DisassembleMemory must still terminate
// after that one instruction instead of looping back around forever.
func TestDisassembleMemoryTerminatesWhenLongOpcodeEndsRange(t *testing.T) {
	mem := flatmem.New(0x10000, 0)
	dis := NewDisassembler(mem, false)
	mem.Program[0xFFFF] = 0x940C // JMP, long: second word wraps to address 0
	mem.Program[0] = 0x0000

	out := dis.DisassembleMemory(0xFFFF, 0xFFFF)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 1)
	assert.Contains(t, lines[0], "JMP")
}

func TestDisassembleManyInstructions(t *testing.T) {
	mem := flatmem.New(4, 0)
	dis := NewDisassembler(mem, false)
	mem.Program[0] = 0x0000 // NOP
	mem.Program[1] = 0x9588 // SLEEP
	mem.Program[2] = 0x9598 // BREAK

	out := dis.DisassembleManyInstructionsAt(0, 3)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "NOP")
	assert.Contains(t, lines[1], "SLEEP")
	assert.Contains(t, lines[2], "BREAK")
}

func TestAliasMnemonics(t *testing.T) {
	mem := flatmem.New(2, 0)
	dis := NewDisassembler(mem, false)

	mem.Program[0] = 0x0C00 // ADD R0,R0 -> LSL R0
	assert.Contains(t, dis.disassembleInstructionAt(0), "LSL")

	mem.Program[0] = 0x2400 // EOR R0,R0 -> CLR R0
	assert.Contains(t, dis.disassembleInstructionAt(0), "CLR")

	mem.Program[0] = 0x2000 // AND R0,R0 -> TST R0
	assert.Contains(t, dis.disassembleInstructionAt(0), "TST")
}
