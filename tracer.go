package avr8

import (
	"fmt"
	"io"
)

// Tracer owns a Disassembler and writes one record per executed
// instruction to its sink, per §4.6. It holds no state of its own beyond
// the writer and the disassembler used to render the pre-execution line.
type Tracer struct {
	w      io.Writer
	disasm *Disassembler
}

func newTracer(w io.Writer, mem MemorySpace, largePC bool) *Tracer {
	return &Tracer{w: w, disasm: NewDisassembler(mem, largePC)}
}

// reset writes a clearly marked record noting that the CPU was reset.
func (t *Tracer) reset() {
	fmt.Fprintln(t.w, "*** RESET! ***")
}

// record writes traceLine (the disassembly captured before execution)
// followed by a PC/SP/register/flag snapshot taken after execution.
func (t *Tracer) record(traceLine string, c *CPU) {
	fmt.Fprintln(t.w, traceLine)
	fmt.Fprintf(t.w, "=> PC=$%05X\n", c.pc)
	fmt.Fprintf(t.w, "   SP=$%04X\n", c.sp)
	for i := 0; i < 32; i += 8 {
		fmt.Fprintf(t.w, "    R%d=$%02X R%d=$%02X R%d=$%02X R%d=$%02X R%d=$%02X R%d=$%02X R%d=$%02X R%d=$%02X\n",
			i, c.r[i], i+1, c.r[i+1], i+2, c.r[i+2], i+3, c.r[i+3],
			i+4, c.r[i+4], i+5, c.r[i+5], i+6, c.r[i+6], i+7, c.r[i+7])
	}
	f := c.flags
	fmt.Fprintf(t.w, "   SREG=$%02X (I=%s T=%s H=%s S=%s V=%s N=%s Z=%s C=%s)\n",
		f.SREG(), bitChar(f.I), bitChar(f.T), bitChar(f.H), bitChar(f.S),
		bitChar(f.V), bitChar(f.N), bitChar(f.Z), bitChar(f.C))
}

func bitChar(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
