package avr8

// Condition names for BRBS/BRBC indexed by the SREG bit they test, in the
// same C,Z,N,V,S,H,T,I order used throughout flags.go.
var brbsNames = [8]string{"BRCS", "BREQ", "BRMI", "BRVS", "BRLT", "BRHS", "BRTS", "BRIE"}
var brbcNames = [8]string{"BRCC", "BRNE", "BRPL", "BRVC", "BRGE", "BRHC", "BRTC", "BRID"}

func init() {
	registerRJMP()
	registerJMP()
	registerIJMP()
	registerEIJMP()
	registerRCALL()
	registerCALL()
	registerICALL()
	registerEICALL()
	registerRET()
	registerRETI()
	registerBRBS()
	registerBRBC()
	registerCPSE()
}

// --- RJMP k (1100 kkkk kkkk kkkk) ---

func registerRJMP() {
	for k := uint16(0); k < 4096; k++ {
		define(0xC000|k, "RJMP", false, execRJMP, fmtRel12)
	}
}

func fmtRel12(pc uint32, op, op2 uint16) string {
	disp := int32(rel12(op))
	target := uint32(int32(pc) + 1 + disp)
	return branchTargetStr(disp, target)
}

func execRJMP(c *CPU) error {
	disp := int32(rel12(c.opWord()))
	c.pc = uint32(int32(c.pc)+disp) & c.pcMask
	c.cycles++
	return nil
}

// --- JMP k22 (1001 010k kkkk 110k / kkkk kkkk kkkk kkkk) ---

func registerJMP() {
	for hi6 := uint16(0); hi6 < 64; hi6++ {
		op := 0x940C | (hi6>>1)<<4 | (hi6 & 0x01)
		define(op, "JMP", true, execJMP, fmtJMP)
	}
}

func fmtJMP(pc uint32, op, op2 uint16) string {
	return progAddrStr(abs22(op, op2))
}

func execJMP(c *CPU) error {
	op2, err := c.fetchPC()
	if err != nil {
		return err
	}
	target := abs22(c.opWord(), op2)
	c.pc = target & c.pcMask
	c.cycles++
	return nil
}

// --- IJMP (1001 0100 0000 1001) ---

func registerIJMP() {
	define(0x9409, "IJMP", false, execIJMP, fmtNone)
}

func execIJMP(c *CPU) error {
	c.pc = uint32(c.Z()) & c.pcMask
	c.cycles++
	return nil
}

// --- EIJMP (1001 0100 0001 1001) ---

func registerEIJMP() {
	define(0x9419, "EIJMP", false, execEIJMP, fmtNone)
}

func execEIJMP(c *CPU) error {
	if !c.largePC {
		return &InvalidOperation{Reason: "EIJMP requires a 22-bit program counter"}
	}
	c.pc = (uint32(c.eind)<<16 | uint32(c.Z())) & c.pcMask
	c.cycles++
	return nil
}

// --- RCALL k (1101 kkkk kkkk kkkk) ---

func registerRCALL() {
	for k := uint16(0); k < 4096; k++ {
		define(0xD000|k, "RCALL", false, execRCALL, fmtRel12)
	}
}

func execRCALL(c *CPU) error {
	disp := int32(rel12(c.opWord()))
	ret := c.pc
	if err := c.pushPC(ret); err != nil {
		return err
	}
	c.pc = uint32(int32(c.pc)+disp) & c.pcMask
	return nil
}

// --- CALL k22 (1001 010k kkkk 111k / kkkk kkkk kkkk kkkk) ---

func registerCALL() {
	for hi6 := uint16(0); hi6 < 64; hi6++ {
		op := 0x940E | (hi6>>1)<<4 | (hi6 & 0x01)
		define(op, "CALL", true, execCALL, fmtJMP)
	}
}

func execCALL(c *CPU) error {
	op2, err := c.fetchPC()
	if err != nil {
		return err
	}
	target := abs22(c.opWord(), op2)
	ret := c.pc
	if err := c.pushPC(ret); err != nil {
		return err
	}
	c.pc = target & c.pcMask
	return nil
}

// --- ICALL (1001 0101 0000 1001) ---

func registerICALL() {
	define(0x9509, "ICALL", false, execICALL, fmtNone)
}

func execICALL(c *CPU) error {
	ret := c.pc
	if err := c.pushPC(ret); err != nil {
		return err
	}
	c.pc = uint32(c.Z()) & c.pcMask
	return nil
}

// --- EICALL (1001 0101 0001 1001) ---

func registerEICALL() {
	define(0x9519, "EICALL", false, execEICALL, fmtNone)
}

func execEICALL(c *CPU) error {
	if !c.largePC {
		return &InvalidOperation{Reason: "EICALL requires a 22-bit program counter"}
	}
	ret := c.pc
	if err := c.pushPC(ret); err != nil {
		return err
	}
	c.pc = (uint32(c.eind)<<16 | uint32(c.Z())) & c.pcMask
	return nil
}

// --- RET (1001 0101 0000 1000) ---

func registerRET() {
	define(0x9508, "RET", false, execRET, fmtNone)
}

func execRET(c *CPU) error {
	pc, err := c.popPC()
	if err != nil {
		return err
	}
	c.pc = pc & c.pcMask
	c.cycles++
	return nil
}

// --- RETI (1001 0101 0001 1000) ---

func registerRETI() {
	define(0x9518, "RETI", false, execRETI, fmtNone)
}

func execRETI(c *CPU) error {
	pc, err := c.popPC()
	if err != nil {
		return err
	}
	c.pc = pc & c.pcMask
	c.flags.I = true
	c.cycles++
	return nil
}

// pushPC pushes the given return address onto the stack, 2 bytes on
// small-PC parts and 3 bytes (low to high, matching the teacher's push
// order) on large-PC parts.
func (c *CPU) pushPC(pc uint32) error {
	if c.largePC {
		if err := c.push(uint8(pc)); err != nil {
			return err
		}
		if err := c.push(uint8(pc >> 8)); err != nil {
			return err
		}
		return c.push(uint8(pc >> 16))
	}
	if err := c.push(uint8(pc)); err != nil {
		return err
	}
	return c.push(uint8(pc >> 8))
}

// popPC is the inverse of pushPC.
func (c *CPU) popPC() (uint32, error) {
	if c.largePC {
		hi, err := c.pop()
		if err != nil {
			return 0, err
		}
		mid, err := c.pop()
		if err != nil {
			return 0, err
		}
		lo, err := c.pop()
		if err != nil {
			return 0, err
		}
		return uint32(hi)<<16 | uint32(mid)<<8 | uint32(lo), nil
	}
	hi, err := c.pop()
	if err != nil {
		return 0, err
	}
	lo, err := c.pop()
	if err != nil {
		return 0, err
	}
	return uint32(hi)<<8 | uint32(lo), nil
}

// --- BRBS s,k (1111 00kk kkkk ksss) ---

func registerBRBS() {
	for k := uint16(0); k < 128; k++ {
		for s := uint16(0); s < 8; s++ {
			op := 0xF000 | (k&0x7F)<<3 | s
			define(op, brbsNames[s], false, makeExecBRBS(s), makeFmtBranch())
		}
	}
}

func makeExecBRBS(_ uint16) execFunc {
	return func(c *CPU) error {
		s := c.opWord() & 0x07
		if c.flags.bit(uint8(s)) {
			disp := int32(rel7(c.opWord()))
			c.pc = uint32(int32(c.pc)+disp) & c.pcMask
			c.cycles++
		}
		return nil
	}
}

func makeFmtBranch() formatFunc {
	return func(pc uint32, op, op2 uint16) string {
		disp := int32(rel7(op))
		target := uint32(int32(pc) + 1 + disp)
		return branchTargetStr(disp, target)
	}
}

// --- BRBC s,k (1111 01kk kkkk ksss) ---

func registerBRBC() {
	for k := uint16(0); k < 128; k++ {
		for s := uint16(0); s < 8; s++ {
			op := 0xF400 | (k&0x7F)<<3 | s
			define(op, brbcNames[s], false, makeExecBRBC(s), makeFmtBranch())
		}
	}
}

func makeExecBRBC(_ uint16) execFunc {
	return func(c *CPU) error {
		s := c.opWord() & 0x07
		if !c.flags.bit(uint8(s)) {
			disp := int32(rel7(c.opWord()))
			c.pc = uint32(int32(c.pc)+disp) & c.pcMask
			c.cycles++
		}
		return nil
	}
}

// --- CPSE Rd,Rr (0001 00rd dddd rrrr) ---

func registerCPSE() {
	for rd := uint8(0); rd < 32; rd++ {
		for rr := uint8(0); rr < 32; rr++ {
			op := 0x1000 | uint16(rr&0x10)<<5 | uint16(rd&0x1F)<<4 | uint16(rr&0x0F)
			define(op, "CPSE", false, execCPSE, fmtRdRr)
		}
	}
}

func execCPSE(c *CPU) error {
	rd, rr := rdFull(c.opWord()), rrFull(c.opWord())
	if c.R(rd) == c.R(rr) {
		return c.skipNextInstruction()
	}
	return nil
}
