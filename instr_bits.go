package avr8

// ioBase is the data-memory address the I/O register file starts at; the
// 5-bit (CBI/SBI/SBIC/SBIS) and 6-bit (IN/OUT) address fields are offsets
// from here.
const ioBase = 0x0020

var bsetNames = [8]string{"SEC", "SEZ", "SEN", "SEV", "SES", "SEH", "SET", "SEI"}
var bclrNames = [8]string{"CLC", "CLZ", "CLN", "CLV", "CLS", "CLH", "CLT", "CLI"}

func init() {
	registerBLD()
	registerBST()
	registerBSETBCLR()
	registerCBI()
	registerSBI()
	registerSBIC()
	registerSBIS()
	registerSBRC()
	registerSBRS()
}

// --- BLD Rd,b (1111 100d dddd 0bbb) ---

func registerBLD() {
	for rd := uint8(0); rd < 32; rd++ {
		for b := uint16(0); b < 8; b++ {
			op := 0xF800 | uint16(rd)<<4 | b
			define(op, "BLD", false, execBLD, fmtRegBit)
		}
	}
}

func fmtRegBit(pc uint32, op, op2 uint16) string {
	return regStr(rdFull(op)) + "," + itoa(int(bitNum3(op)))
}

func execBLD(c *CPU) error {
	rd, b := rdFull(c.opWord()), bitNum3(c.opWord())
	v := c.R(rd)
	if c.flags.T {
		v |= 1 << b
	} else {
		v &^= 1 << b
	}
	c.SetR(rd, v)
	return nil
}

// --- BST Rd,b (1111 101d dddd 0bbb) ---

func registerBST() {
	for rd := uint8(0); rd < 32; rd++ {
		for b := uint16(0); b < 8; b++ {
			op := 0xFA00 | uint16(rd)<<4 | b
			define(op, "BST", false, execBST, fmtRegBit)
		}
	}
}

func execBST(c *CPU) error {
	rd, b := rdFull(c.opWord()), bitNum3(c.opWord())
	c.flags.T = c.R(rd)&(1<<b) != 0
	return nil
}

// --- BSET s / BCLR s (1001 0100 0sss 1000 / 1001 0100 1sss 1000) ---

func registerBSETBCLR() {
	for s := uint16(0); s < 8; s++ {
		define(0x9408|s<<4, bsetNames[s], false, execBSET, fmtNone)
		define(0x9488|s<<4, bclrNames[s], false, execBCLR, fmtNone)
	}
}

func fmtNone(pc uint32, op, op2 uint16) string { return "" }

func execBSET(c *CPU) error {
	s := sregBit3(c.opWord())
	c.flags.setBit(s, true)
	return nil
}

func execBCLR(c *CPU) error {
	s := sregBit3(c.opWord())
	c.flags.setBit(s, false)
	return nil
}

// --- CBI A,b (1001 1000 aaaa abbb) ---

func registerCBI() {
	for a := uint16(0); a < 32; a++ {
		for b := uint16(0); b < 8; b++ {
			op := 0x9800 | a<<3 | b
			define(op, "CBI", false, execCBI, fmtIOBit)
		}
	}
}

func fmtIOBit(pc uint32, op, op2 uint16) string {
	return dataAddrStr(uint16(io5(op))+ioBase) + "," + itoa(int(bitNum3(op)))
}

func execCBI(c *CPU) error {
	a, b := io5(c.opWord()), bitNum3(c.opWord())
	addr := uint16(a) + ioBase
	v, err := c.readDataByte(addr)
	if err != nil {
		return err
	}
	c.cycles--
	v &^= 1 << b
	if err := c.writeDataByte(addr, v); err != nil {
		return err
	}
	return nil
}

// --- SBI A,b (1001 1010 aaaa abbb) ---

func registerSBI() {
	for a := uint16(0); a < 32; a++ {
		for b := uint16(0); b < 8; b++ {
			op := 0x9A00 | a<<3 | b
			define(op, "SBI", false, execSBI, fmtIOBit)
		}
	}
}

func execSBI(c *CPU) error {
	a, b := io5(c.opWord()), bitNum3(c.opWord())
	addr := uint16(a) + ioBase
	v, err := c.readDataByte(addr)
	if err != nil {
		return err
	}
	c.cycles--
	v |= 1 << b
	if err := c.writeDataByte(addr, v); err != nil {
		return err
	}
	return nil
}

// --- SBIC A,b (1001 1001 aaaa abbb) ---

func registerSBIC() {
	for a := uint16(0); a < 32; a++ {
		for b := uint16(0); b < 8; b++ {
			op := 0x9900 | a<<3 | b
			define(op, "SBIC", false, execSBIC, fmtIOBit)
		}
	}
}

func execSBIC(c *CPU) error {
	a, b := io5(c.opWord()), bitNum3(c.opWord())
	v, err := c.readDataByte(uint16(a) + ioBase)
	if err != nil {
		return err
	}
	c.cycles--
	if v&(1<<b) == 0 {
		return c.skipNextInstruction()
	}
	return nil
}

// --- SBIS A,b (1001 1011 aaaa abbb) ---

func registerSBIS() {
	for a := uint16(0); a < 32; a++ {
		for b := uint16(0); b < 8; b++ {
			op := 0x9B00 | a<<3 | b
			define(op, "SBIS", false, execSBIS, fmtIOBit)
		}
	}
}

func execSBIS(c *CPU) error {
	a, b := io5(c.opWord()), bitNum3(c.opWord())
	v, err := c.readDataByte(uint16(a) + ioBase)
	if err != nil {
		return err
	}
	c.cycles--
	if v&(1<<b) != 0 {
		return c.skipNextInstruction()
	}
	return nil
}

// --- SBRC Rr,b (1111 110r rrrr 0bbb) ---

func registerSBRC() {
	for rr := uint8(0); rr < 32; rr++ {
		for b := uint16(0); b < 8; b++ {
			op := 0xFC00 | uint16(rr)<<4 | b
			define(op, "SBRC", false, execSBRC, fmtRegBit)
		}
	}
}

func execSBRC(c *CPU) error {
	rr, b := rdFull(c.opWord()), bitNum3(c.opWord())
	if c.R(rr)&(1<<b) == 0 {
		return c.skipNextInstruction()
	}
	return nil
}

// --- SBRS Rr,b (1111 111r rrrr 0bbb) ---

func registerSBRS() {
	for rr := uint8(0); rr < 32; rr++ {
		for b := uint16(0); b < 8; b++ {
			op := 0xFE00 | uint16(rr)<<4 | b
			define(op, "SBRS", false, execSBRS, fmtRegBit)
		}
	}
}

func execSBRS(c *CPU) error {
	rr, b := rdFull(c.opWord()), bitNum3(c.opWord())
	if c.R(rr)&(1<<b) != 0 {
		return c.skipNextInstruction()
	}
	return nil
}

// skipNextInstruction advances PC past the next opcode word (charging one
// cycle to read it), and past a second word too if that opcode is itself
// long (charging one further cycle), as used by CPSE/SBRC/SBRS/SBIC/SBIS.
func (c *CPU) skipNextInstruction() error {
	next, err := c.fetchPC()
	if err != nil {
		return err
	}
	if IsLong(next) {
		if _, err := c.fetchPC(); err != nil {
			return err
		}
	}
	return nil
}
