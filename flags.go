package avr8

// Flags holds the eight AVR8 status-register bits as individual booleans.
// SREG (the 8-bit composite) is always a computed view over these booleans:
// there is exactly one canonical store, never a byte and a set of bools
// that could drift apart.
type Flags struct {
	C bool // bit0 carry
	Z bool // bit1 zero
	N bool // bit2 negative
	V bool // bit3 signed overflow
	S bool // bit4 sign, N xor V
	H bool // bit5 half-carry
	T bool // bit6 user bit
	I bool // bit7 global interrupt enable
}

// SREG packs the flags into their canonical 8-bit representation.
func (f Flags) SREG() uint8 {
	var b uint8
	if f.C {
		b |= 1 << 0
	}
	if f.Z {
		b |= 1 << 1
	}
	if f.N {
		b |= 1 << 2
	}
	if f.V {
		b |= 1 << 3
	}
	if f.S {
		b |= 1 << 4
	}
	if f.H {
		b |= 1 << 5
	}
	if f.T {
		b |= 1 << 6
	}
	if f.I {
		b |= 1 << 7
	}
	return b
}

// SetSREG assigns all eight flags atomically from a packed byte.
func (f *Flags) SetSREG(b uint8) {
	f.C = b&(1<<0) != 0
	f.Z = b&(1<<1) != 0
	f.N = b&(1<<2) != 0
	f.V = b&(1<<3) != 0
	f.S = b&(1<<4) != 0
	f.H = b&(1<<5) != 0
	f.T = b&(1<<6) != 0
	f.I = b&(1<<7) != 0
}

// bit returns flag number n (0=C .. 7=I).
func (f Flags) bit(n uint8) bool {
	switch n {
	case 0:
		return f.C
	case 1:
		return f.Z
	case 2:
		return f.N
	case 3:
		return f.V
	case 4:
		return f.S
	case 5:
		return f.H
	case 6:
		return f.T
	case 7:
		return f.I
	}
	return false
}

// setBit sets flag number n (0=C .. 7=I) to v.
func (f *Flags) setBit(n uint8, v bool) {
	switch n {
	case 0:
		f.C = v
	case 1:
		f.Z = v
	case 2:
		f.N = v
	case 3:
		f.V = v
	case 4:
		f.S = v
	case 5:
		f.H = v
	case 6:
		f.T = v
	case 7:
		f.I = v
	}
}

// setNZS sets N, Z and S (=N xor V, V left as-is) from an 8-bit result.
func (c *CPU) setNZS(res uint8) {
	c.flags.N = res&0x80 != 0
	c.flags.Z = res == 0
	c.flags.S = c.flags.N != c.flags.V
}

// setFlagsAdd computes H,S,V,N,Z,C for an 8-bit add: res = rd + rr (+ carry
// already folded into res by the caller).
func (c *CPU) setFlagsAdd(rd, rr, res uint8) {
	rd3, rr3, res3 := bit3(rd), bit3(rr), bit3(res)
	rd7, rr7, res7 := bit7(rd), bit7(rr), bit7(res)

	c.flags.H = (rd3 && rr3) || (rr3 && !res3) || (!res3 && rd3)
	c.flags.V = (rd7 && rr7 && !res7) || (!rd7 && !rr7 && res7)
	c.flags.C = (rd7 && rr7) || (rr7 && !res7) || (!res7 && rd7)
	c.setNZS(res)
}

// setFlagsSub computes H,S,V,N,Z,C for an 8-bit subtract-with-borrow family
// (SUB/SUBI/CP/CPI/SBC/SBCI/CPC/NEG): res = rd - rr (borrow already folded
// into res by the caller).
func (c *CPU) setFlagsSub(rd, rr, res uint8) {
	rd3, rr3, res3 := bit3(rd), bit3(rr), bit3(res)
	rd7, rr7, res7 := bit7(rd), bit7(rr), bit7(res)

	c.flags.H = (!rd3 && rr3) || (rr3 && res3) || (res3 && !rd3)
	c.flags.V = (rd7 && !rr7 && !res7) || (!rd7 && rr7 && res7)
	c.flags.C = (!rd7 && rr7) || (rr7 && res7) || (res7 && !rd7)
	c.setNZS(res)
}

// setFlagsCmp is an alias for setFlagsSub: CP/CPI compute the same flags as
// SUB/SUBI without storing the result.
func (c *CPU) setFlagsCmp(rd, rr, res uint8) {
	c.setFlagsSub(rd, rr, res)
}

// setFlagsLogical sets N,Z,S from res and clears V (AND/ANDI/OR/ORI/EOR).
// C and H are left untouched.
func (c *CPU) setFlagsLogical(res uint8) {
	c.flags.V = false
	c.setNZS(res)
}

func bit3(v uint8) bool { return v&0x08 != 0 }
func bit7(v uint8) bool { return v&0x80 != 0 }
