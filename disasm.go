package avr8

import (
	"fmt"
	"strings"
)

// Disassembler pairs the shared opcodeTable with a MemorySpace to produce
// human-readable listings. It keeps no execution state of its own beyond
// an internal cursor used by the multi-instruction listing methods.
type Disassembler struct {
	mem    MemorySpace
	pcMask uint32
	pc     uint32
}

// NewDisassembler creates a Disassembler reading program memory from mem.
// largePC selects the same 16-bit/22-bit PC width New does for a CPU.
func NewDisassembler(mem MemorySpace, largePC bool) *Disassembler {
	d := &Disassembler{mem: mem}
	if largePC {
		d.pcMask = 0x3FFFFF
	} else {
		d.pcMask = 0xFFFF
	}
	return d
}

// disassembleInstructionAt formats the single instruction at pc as one
// line: a 5-digit hex address, the instruction's one or two opcode words,
// padding out to column 18, then the mnemonic and formatted operands. It
// advances the Disassembler's internal cursor by 1 or 2 words, matching
// how many the instruction occupies.
func (d *Disassembler) disassembleInstructionAt(pc uint32) string {
	addr := pc & d.pcMask
	op, ok := d.mem.ReadProgramMemory(addr)
	if !ok {
		d.pc = (addr + 1) & d.pcMask
		return fmt.Sprintf("%05X : ????             : *** ?!?", addr)
	}

	long := IsLong(op)
	var op2 uint16
	wordsCol := fmt.Sprintf("%04X", op)
	if long {
		op2, _ = d.mem.ReadProgramMemory((addr + 1) & d.pcMask)
		wordsCol += fmt.Sprintf(" %04X", op2)
	}

	left := fmt.Sprintf("%05X : %s", addr, wordsCol)
	for len(left) < 18 {
		left += " "
	}

	instr := opcodeTable[op]
	var body string
	if instr == nil {
		body = "*** ?!?"
	} else {
		operands := instr.format(addr, op, op2)
		if operands == "" {
			body = instr.mnemonic
		} else {
			body = instr.mnemonic + " " + operands
		}
	}

	if long {
		d.pc = (addr + 2) & d.pcMask
	} else {
		d.pc = (addr + 1) & d.pcMask
	}
	return left + ": " + body
}

// DisassembleInstructionAt is the exported form of disassembleInstructionAt.
func (d *Disassembler) DisassembleInstructionAt(pc uint32) string {
	return d.disassembleInstructionAt(pc)
}

// DisassembleManyInstructionsAt formats n consecutive instructions
// starting at pc, one per line, newline-terminated.
func (d *Disassembler) DisassembleManyInstructionsAt(pc uint32, n int) string {
	d.pc = pc & d.pcMask
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteString(d.disassembleInstructionAt(d.pc))
		sb.WriteString("\n")
	}
	return sb.String()
}

// DisassembleMemory formats every instruction from from to to inclusive,
// one per line. If the last instruction in range is long, its second word
// is read and printed even though it lies past to.
func (d *Disassembler) DisassembleMemory(from, to uint32) string {
	addr := from & d.pcMask
	var sb strings.Builder
	for {
		sb.WriteString(d.disassembleInstructionAt(addr))
		sb.WriteString("\n")
		if addr >= to || d.pc <= addr {
			break
		}
		addr = d.pc
	}
	return sb.String()
}
