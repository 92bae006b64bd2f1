// Package flatmem implements avr8.MemorySpace over flat, fixed-size
// program and data arrays, with optional unmapped address ranges for
// exercising AddressUnreadable/AddressUnwritable. It is not part of the
// emulator core: it exists so cmd/avr8run has something to execute
// against, and so tests can build a CPU without hand-rolling a backend.
package flatmem

// Space is a flat-array MemorySpace. Program is word-addressed; Data is
// byte-addressed and also backs the I/O register file at 0x0020 and up.
type Space struct {
	Program []uint16
	Data    []uint8

	// Unmapped, when non-nil, reports whether a data address is
	// inaccessible (neither readable nor writable). Program memory
	// outside len(Program) is always unmapped; Data defaults to fully
	// mapped when Unmapped is nil.
	Unmapped func(addr uint16) bool
}

// New creates a Space with progWords program-memory cells and dataBytes
// data-memory bytes, fully mapped.
func New(progWords, dataBytes int) *Space {
	return &Space{
		Program: make([]uint16, progWords),
		Data:    make([]uint8, dataBytes),
	}
}

func (s *Space) ReadProgramMemory(addr uint32) (uint16, bool) {
	if int(addr) >= len(s.Program) {
		return 0, false
	}
	return s.Program[addr], true
}

func (s *Space) ReadDataMemory(addr uint16) (uint8, bool) {
	if s.Unmapped != nil && s.Unmapped(addr) {
		return 0, false
	}
	if int(addr) >= len(s.Data) {
		return 0, false
	}
	return s.Data[addr], true
}

func (s *Space) WriteDataMemory(addr uint16, val uint8) bool {
	if s.Unmapped != nil && s.Unmapped(addr) {
		return false
	}
	if int(addr) >= len(s.Data) {
		return false
	}
	s.Data[addr] = val
	return true
}

// LoadProgram copies words into Program starting at word address 0,
// truncating if it overruns the backing array.
func (s *Space) LoadProgram(words []uint16) {
	copy(s.Program, words)
}

// BytesToWords packs a little-endian byte image into 16-bit program words,
// the layout AVR8 flash images are conventionally stored in. An odd final
// byte is paired with a zero high byte.
func BytesToWords(raw []byte) []uint16 {
	n := (len(raw) + 1) / 2
	words := make([]uint16, n)
	for i := 0; i < n; i++ {
		lo := raw[i*2]
		var hi byte
		if i*2+1 < len(raw) {
			hi = raw[i*2+1]
		}
		words[i] = uint16(lo) | uint16(hi)<<8
	}
	return words
}
