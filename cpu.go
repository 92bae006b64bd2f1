// Package avr8 implements an instruction-accurate emulator core for the
// AVR8 family of 8-bit Harvard-architecture microcontrollers.
//
// The core is two tightly coupled subsystems: a decoder/disassembler for
// the AVR8 bit-pattern encoding (package-internal opcodeTable), and an
// execution engine (CPU) that fetches, decodes and executes one
// instruction per Step, charging cycles and raising typed errors for
// invalid opcodes, inaccessible memory, and the BREAK instruction.
//
// Peripheral emulation, interrupt-vector dispatch, the watchdog, and the
// SPM/DES instructions are out of scope for the core; SPM and DES report
// NotImplemented, and WDR is a no-op.
package avr8

import "io"

// MemorySpace is the external memory backend the core executes against.
// Program memory is word-addressed (up to 22 bits); data memory (RAM and
// the I/O register file at 0x0020 and up) is byte-addressed over 16 bits.
// A false/false-bool return signals the address is inaccessible.
type MemorySpace interface {
	ReadProgramMemory(addr uint32) (word uint16, ok bool)
	ReadDataMemory(addr uint16) (val uint8, ok bool)
	WriteDataMemory(addr uint16, val uint8) (ok bool)
}

// InvalidOpcodePolicy selects how the executor reacts to an opcode word
// the decoder cannot classify.
type InvalidOpcodePolicy int

const (
	// ThrowException raises UnknownOpcode from Step.
	ThrowException InvalidOpcodePolicy = iota
	// DoNop silently skips the instruction (PC has already advanced past
	// the opcode word) and continues execution.
	DoNop
	// EmulatePhysical is reserved; the core treats it identically to
	// ThrowException.
	EmulatePhysical
)

// Registers is a snapshot of the programmer-visible CPU state, returned by
// CPU.Registers and accepted by CPU.SetState.
type Registers struct {
	R     [32]uint8
	PC    uint32
	SP    uint16
	SREG  uint8
	EIND  uint8
	RAMPX uint8
	RAMPY uint8
	RAMPZ uint8
}

// CPU is the AVR8 processor core.
type CPU struct {
	r     [32]uint8
	pc    uint32
	sp    uint16
	flags Flags

	eind  uint8
	rampx uint8
	rampy uint8
	rampz uint8

	cycles uint64
	asleep bool

	policy  InvalidOpcodePolicy
	largePC bool
	pcMask  uint32

	mem MemorySpace

	trace  io.Writer
	tracer *Tracer

	// ir is the first word of the instruction currently executing, and
	// irPC is the program address it was fetched from. Both are latched
	// by Step before dispatch so exec handlers can recover them
	// without threading them through every call.
	ir   uint16
	irPC uint32
}

// opWord returns the first word of the instruction currently executing.
func (c *CPU) opWord() uint16 { return c.ir }

// instrPC returns the address the currently executing instruction was
// fetched from.
func (c *CPU) instrPC() uint32 { return c.irPC }

// New creates a CPU bound to the given MemorySpace. largePC selects a
// 22-bit program counter (large program space, EIND/RAMPZ meaningful for
// indirect jumps and LPM) versus a 16-bit program counter. PC width is
// immutable once constructed. The CPU is reset before being returned.
func New(mem MemorySpace, largePC bool) *CPU {
	c := &CPU{mem: mem, largePC: largePC}
	if largePC {
		c.pcMask = 0x3FFFFF
	} else {
		c.pcMask = 0xFFFF
	}
	c.Reset()
	return c
}

// Reset restores PC=0, SP=0, clears all flags, zeroes the cycle counter
// and clears the sleep flag. General registers and the extended-pointer
// registers (EIND/RAMPX/RAMPY/RAMPZ) are left untouched: their state after
// a real AVR reset is unspecified, and the core does not invent a value.
func (c *CPU) Reset() {
	c.pc = 0
	c.sp = 0
	c.flags = Flags{}
	c.cycles = 0
	c.asleep = false
	if c.tracer != nil {
		c.tracer.reset()
	}
}

// Registers returns a snapshot of the programmer-visible state.
func (c *CPU) Registers() Registers {
	return Registers{
		R:     c.r,
		PC:    c.pc,
		SP:    c.sp,
		SREG:  c.flags.SREG(),
		EIND:  c.eind,
		RAMPX: c.rampx,
		RAMPY: c.rampy,
		RAMPZ: c.rampz,
	}
}

// SetState installs an exact register/flag state without going through
// Reset, for constructing scenario tests. The cycle counter and sleep flag
// are cleared.
func (c *CPU) SetState(regs Registers) {
	c.r = regs.R
	c.pc = regs.PC & c.pcMask
	c.sp = regs.SP
	c.flags.SetSREG(regs.SREG)
	c.eind = regs.EIND
	c.rampx = regs.RAMPX
	c.rampy = regs.RAMPY
	c.rampz = regs.RAMPZ
	c.cycles = 0
	c.asleep = false
}

// R returns general register n (0..31).
func (c *CPU) R(n uint8) uint8 { return c.r[n] }

// SetR assigns general register n (0..31).
func (c *CPU) SetR(n uint8, v uint8) { c.r[n] = v }

// X returns the R27:R26 pointer pair (high:low).
func (c *CPU) X() uint16 { return uint16(c.r[27])<<8 | uint16(c.r[26]) }

// SetX assigns the R27:R26 pointer pair.
func (c *CPU) SetX(v uint16) { c.r[26] = uint8(v); c.r[27] = uint8(v >> 8) }

// Y returns the R29:R28 pointer pair (high:low).
func (c *CPU) Y() uint16 { return uint16(c.r[29])<<8 | uint16(c.r[28]) }

// SetY assigns the R29:R28 pointer pair.
func (c *CPU) SetY(v uint16) { c.r[28] = uint8(v); c.r[29] = uint8(v >> 8) }

// Z returns the R31:R30 pointer pair (high:low).
func (c *CPU) Z() uint16 { return uint16(c.r[31])<<8 | uint16(c.r[30]) }

// SetZ assigns the R31:R30 pointer pair.
func (c *CPU) SetZ(v uint16) { c.r[30] = uint8(v); c.r[31] = uint8(v >> 8) }

// PC returns the program counter (masked to the configured width).
func (c *CPU) PC() uint32 { return c.pc }

// SetPC assigns the program counter, masking it to the configured width.
func (c *CPU) SetPC(v uint32) { c.pc = v & c.pcMask }

// SP returns the stack pointer.
func (c *CPU) SP() uint16 { return c.sp }

// SetSP assigns the stack pointer.
func (c *CPU) SetSP(v uint16) { c.sp = v }

// SREG returns the packed 8-bit status register.
func (c *CPU) SREG() uint8 { return c.flags.SREG() }

// SetSREG assigns all eight status flags atomically.
func (c *CPU) SetSREG(v uint8) { c.flags.SetSREG(v) }

// Flags returns the individual status flags.
func (c *CPU) Flags() Flags { return c.flags }

// SetFlags assigns the individual status flags.
func (c *CPU) SetFlags(f Flags) { c.flags = f }

// EIND returns the extended-indirect-jump high byte.
func (c *CPU) EIND() uint8 { return c.eind }

// SetEIND assigns EIND.
func (c *CPU) SetEIND(v uint8) { c.eind = v }

// RAMPX, RAMPY, RAMPZ return the pointer-extension registers.
func (c *CPU) RAMPX() uint8 { return c.rampx }
func (c *CPU) RAMPY() uint8 { return c.rampy }
func (c *CPU) RAMPZ() uint8 { return c.rampz }

// SetRAMPX, SetRAMPY, SetRAMPZ assign the pointer-extension registers.
func (c *CPU) SetRAMPX(v uint8) { c.rampx = v }
func (c *CPU) SetRAMPY(v uint8) { c.rampy = v }
func (c *CPU) SetRAMPZ(v uint8) { c.rampz = v }

// ElapsedCycles returns the total cycle count since the last Reset.
func (c *CPU) ElapsedCycles() uint64 { return c.cycles }

// IsAsleep reports whether SLEEP has been executed since the last Reset
// (or interrupt/wake, when peripheral modeling outside the core clears it
// via SetAsleep).
func (c *CPU) IsAsleep() bool { return c.asleep }

// SetAsleep allows an external collaborator (e.g. an interrupt hook) to
// wake the CPU; the core itself only ever sets this true, via SLEEP.
func (c *CPU) SetAsleep(v bool) { c.asleep = v }

// LargePC reports whether this CPU was constructed with a 22-bit program
// counter.
func (c *CPU) LargePC() bool { return c.largePC }

// InvalidOpcodePolicy returns the current policy.
func (c *CPU) InvalidOpcodePolicy() InvalidOpcodePolicy { return c.policy }

// SetInvalidOpcodePolicy assigns the policy.
func (c *CPU) SetInvalidOpcodePolicy(p InvalidOpcodePolicy) { c.policy = p }

// SetTrace attaches (or, with nil, detaches) a line-writer trace sink. When
// attached, every Step writes one record as described by the Tracer.
func (c *CPU) SetTrace(w io.Writer) {
	c.trace = w
	if w == nil {
		c.tracer = nil
		return
	}
	c.tracer = newTracer(w, c.mem, c.largePC)
}

// readProgWord reads the 16-bit program-memory word at addr, charging one
// cycle, and fails with AddressUnreadable if the backend refuses.
func (c *CPU) readProgWord(addr uint32) (uint16, error) {
	word, ok := c.mem.ReadProgramMemory(addr & c.pcMask)
	c.cycles++
	if !ok {
		return 0, &AddressUnreadable{Addr: addr}
	}
	return word, nil
}

// readDataByte reads the data-memory byte at addr, charging one cycle, and
// fails with AddressUnreadable if the backend refuses.
func (c *CPU) readDataByte(addr uint16) (uint8, error) {
	val, ok := c.mem.ReadDataMemory(addr)
	c.cycles++
	if !ok {
		return 0, &AddressUnreadable{Addr: uint32(addr)}
	}
	return val, nil
}

// writeDataByte writes val to the data-memory byte at addr, charging one
// cycle, and fails with AddressUnwritable if the backend refuses.
func (c *CPU) writeDataByte(addr uint16, val uint8) error {
	c.cycles++
	if !c.mem.WriteDataMemory(addr, val) {
		return &AddressUnwritable{Addr: uint32(addr), Value: val}
	}
	return nil
}

// fetchPC reads the program word at PC and advances PC by one word.
func (c *CPU) fetchPC() (uint16, error) {
	w, err := c.readProgWord(c.pc)
	if err != nil {
		return 0, err
	}
	c.pc = (c.pc + 1) & c.pcMask
	return w, nil
}

// push writes v at the current SP and then decrements SP.
func (c *CPU) push(v uint8) error {
	if err := c.writeDataByte(c.sp, v); err != nil {
		return err
	}
	c.sp--
	return nil
}

// pop increments SP and then reads from the new SP.
func (c *CPU) pop() (uint8, error) {
	c.sp++
	return c.readDataByte(c.sp)
}

// Step performs one fetch-decode-execute cycle and returns the number of
// cycles it consumed. If the CPU is asleep, Step consumes no cycles and
// returns (0, nil).
func (c *CPU) Step() (int, error) {
	if c.asleep {
		return 0, nil
	}

	before := c.cycles
	pcAtFetch := c.pc

	var traceLine string
	if c.tracer != nil {
		traceLine = c.tracer.disasm.disassembleInstructionAt(pcAtFetch)
	}

	c.irPC = pcAtFetch
	op, err := c.fetchPC()
	if err != nil {
		return int(c.cycles - before), err
	}
	c.ir = op

	instr := opcodeTable[op]
	var execErr error
	if instr == nil {
		switch c.policy {
		case DoNop:
			execErr = nil
		default:
			execErr = &UnknownOpcode{PC: pcAtFetch, Opcode: op}
		}
	} else {
		execErr = instr.exec(c)
	}

	if c.tracer != nil {
		c.tracer.record(traceLine, c)
	}

	return int(c.cycles - before), execErr
}

// Run repeats Step until at least n cycles have elapsed or the CPU falls
// asleep, and returns the actual number of cycles elapsed since Run was
// called. Run stops and returns immediately if Step returns an error.
func (c *CPU) Run(n uint64) (uint64, error) {
	var total uint64
	for total < n && !c.asleep {
		cyc, err := c.Step()
		total += uint64(cyc)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
