package avr8

func init() {
	registerMOVW()
	registerLDI()
	registerMOV()
	registerLDSSTS()
	registerLDvariants()
	registerSTvariants()
	registerLPMELPM()
	registerXCHLASLACLAT()
	registerPUSHPOP()
	registerINOUT()
	registerSPM()
}

// --- MOVW Rd,Rr (0000 0001 dddd rrrr), register pairs ---

func registerMOVW() {
	for d := uint16(0); d < 16; d++ {
		for r := uint16(0); r < 16; r++ {
			op := 0x0100 | d<<4 | r
			define(op, "MOVW", false, execMOVW, fmtMOVW)
		}
	}
}

func fmtMOVW(pc uint32, op, op2 uint16) string {
	d, r := ((op>>4)&0x0F)*2, (op&0x0F)*2
	return pairStr(uint8(d+1), uint8(d)) + "," + pairStr(uint8(r+1), uint8(r))
}

func execMOVW(c *CPU) error {
	d, r := ((c.opWord()>>4)&0x0F)*2, (c.opWord()&0x0F)*2
	c.SetR(uint8(d), c.R(uint8(r)))
	c.SetR(uint8(d+1), c.R(uint8(r+1)))
	return nil
}

// --- LDI Rd,K (1110 KKKK dddd KKKK), Rd in 16..31 ---

func registerLDI() {
	for rd := uint8(0); rd < 16; rd++ {
		for k := uint16(0); k < 256; k++ {
			op := 0xE000 | (k&0xF0)<<4 | uint16(rd)<<4 | (k & 0x0F)
			define(op, "LDI", false, execLDI, fmtRdK)
		}
	}
}

func execLDI(c *CPU) error {
	c.SetR(rdShort(c.opWord()), k8(c.opWord()))
	return nil
}

// --- MOV Rd,Rr (0010 11rd dddd rrrr) ---

func registerMOV() {
	for rd := uint8(0); rd < 32; rd++ {
		for rr := uint8(0); rr < 32; rr++ {
			op := 0x2C00 | uint16(rr&0x10)<<5 | uint16(rd&0x1F)<<4 | uint16(rr&0x0F)
			define(op, "MOV", false, execMOV, fmtRdRr)
		}
	}
}

func execMOV(c *CPU) error {
	c.SetR(rdFull(c.opWord()), c.R(rrFull(c.opWord())))
	return nil
}

// --- LDS Rd,k16 / STS k16,Rr (long, two words) ---

func registerLDSSTS() {
	for rd := uint8(0); rd < 32; rd++ {
		define(0x9000|uint16(rd)<<4, "LDS", true, execLDS, fmtLDS)
		define(0x9200|uint16(rd)<<4, "STS", true, execSTS, fmtSTS)
	}
}

func fmtLDS(pc uint32, op, op2 uint16) string {
	return regStr(rdFull(op)) + "," + dataAddrStr(op2)
}

func fmtSTS(pc uint32, op, op2 uint16) string {
	return dataAddrStr(op2) + "," + regStr(rdFull(op))
}

func execLDS(c *CPU) error {
	k, err := c.fetchPC()
	if err != nil {
		return err
	}
	v, err := c.readDataByte(k)
	if err != nil {
		return err
	}
	c.SetR(rdFull(c.opWord()), v)
	return nil
}

func execSTS(c *CPU) error {
	k, err := c.fetchPC()
	if err != nil {
		return err
	}
	return c.writeDataByte(k, c.R(rdFull(c.opWord())))
}

// --- LD Rd,{X,X+,-X,Y,Y+,-Y,Y+q,Z,Z+,-Z,Z+q} ---

type indexMode int

const (
	modeDirect indexMode = iota
	modePostInc
	modePreDec
	modeDisp
)

func registerLDvariants() {
	for rd := uint8(0); rd < 32; rd++ {
		rdBits := uint16(rd) << 4
		define(0x900C|rdBits, "LD", false, makeExecLD('X', modeDirect), makeFmtLD('X', modeDirect))
		define(0x900D|rdBits, "LD", false, makeExecLD('X', modePostInc), makeFmtLD('X', modePostInc))
		define(0x900E|rdBits, "LD", false, makeExecLD('X', modePreDec), makeFmtLD('X', modePreDec))
		define(0x8008|rdBits, "LD", false, makeExecLD('Y', modeDirect), makeFmtLD('Y', modeDirect))
		define(0x9009|rdBits, "LD", false, makeExecLD('Y', modePostInc), makeFmtLD('Y', modePostInc))
		define(0x900A|rdBits, "LD", false, makeExecLD('Y', modePreDec), makeFmtLD('Y', modePreDec))
		define(0x8000|rdBits, "LD", false, makeExecLD('Z', modeDirect), makeFmtLD('Z', modeDirect))
		define(0x9001|rdBits, "LD", false, makeExecLD('Z', modePostInc), makeFmtLD('Z', modePostInc))
		define(0x9002|rdBits, "LD", false, makeExecLD('Z', modePreDec), makeFmtLD('Z', modePreDec))
		for q := uint16(1); q < 64; q++ {
			qBits := (q & 0x07) | ((q & 0x18) << 7) | ((q & 0x20) << 8)
			define(0x8008|rdBits|qBits, "LDD", false, makeExecLD('Y', modeDisp), makeFmtLD('Y', modeDisp))
			define(0x8000|rdBits|qBits, "LDD", false, makeExecLD('Z', modeDisp), makeFmtLD('Z', modeDisp))
		}
	}
}

func indexRegValue(c *CPU, which byte) uint16 {
	switch which {
	case 'X':
		return c.X()
	case 'Y':
		return c.Y()
	default:
		return c.Z()
	}
}

func setIndexRegValue(c *CPU, which byte, v uint16) {
	switch which {
	case 'X':
		c.SetX(v)
	case 'Y':
		c.SetY(v)
	default:
		c.SetZ(v)
	}
}

func indexAddr(c *CPU, which byte, mode indexMode) (addr uint16, post func()) {
	switch mode {
	case modePreDec:
		v := indexRegValue(c, which) - 1
		setIndexRegValue(c, which, v)
		return v, func() {}
	case modePostInc:
		v := indexRegValue(c, which)
		return v, func() { setIndexRegValue(c, which, v+1) }
	case modeDisp:
		return indexRegValue(c, which) + uint16(q6(c.opWord())), func() {}
	default:
		return indexRegValue(c, which), func() {}
	}
}

func makeExecLD(which byte, mode indexMode) execFunc {
	return func(c *CPU) error {
		addr, post := indexAddr(c, which, mode)
		v, err := c.readDataByte(addr)
		if err != nil {
			return err
		}
		post()
		c.SetR(rdFull(c.opWord()), v)
		return nil
	}
}

func indexRegName(which byte) string {
	switch which {
	case 'X':
		return "X"
	case 'Y':
		return "Y"
	default:
		return "Z"
	}
}

func fmtIndex(which byte, mode indexMode, q uint16) string {
	name := indexRegName(which)
	switch mode {
	case modePostInc:
		return name + "+"
	case modePreDec:
		return "-" + name
	case modeDisp:
		return name + "+" + itoa(int(q))
	default:
		return name
	}
}

func makeFmtLD(which byte, mode indexMode) formatFunc {
	return func(pc uint32, op, op2 uint16) string {
		return regStr(rdFull(op)) + "," + fmtIndex(which, mode, uint16(q6(op)))
	}
}

// --- ST {X,X+,-X,Y,Y+,-Y,Y+q,Z,Z+,-Z,Z+q},Rr ---

func registerSTvariants() {
	for rr := uint8(0); rr < 32; rr++ {
		rrBits := uint16(rr) << 4
		define(0x920C|rrBits, "ST", false, makeExecST('X', modeDirect), makeFmtST('X', modeDirect))
		define(0x920D|rrBits, "ST", false, makeExecST('X', modePostInc), makeFmtST('X', modePostInc))
		define(0x920E|rrBits, "ST", false, makeExecST('X', modePreDec), makeFmtST('X', modePreDec))
		define(0x8208|rrBits, "ST", false, makeExecST('Y', modeDirect), makeFmtST('Y', modeDirect))
		define(0x9209|rrBits, "ST", false, makeExecST('Y', modePostInc), makeFmtST('Y', modePostInc))
		define(0x920A|rrBits, "ST", false, makeExecST('Y', modePreDec), makeFmtST('Y', modePreDec))
		define(0x8200|rrBits, "ST", false, makeExecST('Z', modeDirect), makeFmtST('Z', modeDirect))
		define(0x9201|rrBits, "ST", false, makeExecST('Z', modePostInc), makeFmtST('Z', modePostInc))
		define(0x9202|rrBits, "ST", false, makeExecST('Z', modePreDec), makeFmtST('Z', modePreDec))
		for q := uint16(1); q < 64; q++ {
			qBits := (q & 0x07) | ((q & 0x18) << 7) | ((q & 0x20) << 8)
			define(0x8208|rrBits|qBits, "STD", false, makeExecST('Y', modeDisp), makeFmtST('Y', modeDisp))
			define(0x8200|rrBits|qBits, "STD", false, makeExecST('Z', modeDisp), makeFmtST('Z', modeDisp))
		}
	}
}

func makeExecST(which byte, mode indexMode) execFunc {
	return func(c *CPU) error {
		addr, post := indexAddr(c, which, mode)
		if err := c.writeDataByte(addr, c.R(rdFull(c.opWord()))); err != nil {
			return err
		}
		post()
		return nil
	}
}

func makeFmtST(which byte, mode indexMode) formatFunc {
	return func(pc uint32, op, op2 uint16) string {
		return fmtIndex(which, mode, uint16(q6(op))) + "," + regStr(rdFull(op))
	}
}

// --- LPM/ELPM ---

func registerLPMELPM() {
	define(0x95C8, "LPM", false, execLPMImplied, fmtNone)
	define(0x95D8, "ELPM", false, execELPMImplied, fmtNone)
	for rd := uint8(0); rd < 32; rd++ {
		rdBits := uint16(rd) << 4
		define(0x9004|rdBits, "LPM", false, makeExecLPM(false), fmt1Reg)
		define(0x9005|rdBits, "LPM", false, makeExecLPM(true), fmt1Reg)
		define(0x9006|rdBits, "ELPM", false, makeExecELPM(false), fmt1Reg)
		define(0x9007|rdBits, "ELPM", false, makeExecELPM(true), fmt1Reg)
	}
}

// readProgByte reads a single byte from program memory at a byte address,
// selecting the low or high half of the 16-bit word underneath it.
func (c *CPU) readProgByte(byteAddr uint32) (uint8, error) {
	word, err := c.readProgWord(byteAddr >> 1)
	if err != nil {
		return 0, err
	}
	if byteAddr&1 == 0 {
		return uint8(word), nil
	}
	return uint8(word >> 8), nil
}

func execLPMImplied(c *CPU) error {
	v, err := c.readProgByte(uint32(c.Z()))
	if err != nil {
		return err
	}
	c.SetR(0, v)
	c.cycles++
	return nil
}

func execELPMImplied(c *CPU) error {
	if !c.largePC {
		return &InvalidOperation{Reason: "ELPM requires a 22-bit program counter"}
	}
	v, err := c.readProgByte(uint32(c.rampz)<<16 | uint32(c.Z()))
	if err != nil {
		return err
	}
	c.SetR(0, v)
	c.cycles++
	return nil
}

func makeExecLPM(postInc bool) execFunc {
	return func(c *CPU) error {
		z := c.Z()
		v, err := c.readProgByte(uint32(z))
		if err != nil {
			return err
		}
		if postInc {
			c.SetZ(z + 1)
		}
		c.SetR(rdFull(c.opWord()), v)
		c.cycles++
		return nil
	}
}

func makeExecELPM(postInc bool) execFunc {
	return func(c *CPU) error {
		if !c.largePC {
			return &InvalidOperation{Reason: "ELPM requires a 22-bit program counter"}
		}
		z := c.Z()
		v, err := c.readProgByte(uint32(c.rampz)<<16 | uint32(z))
		if err != nil {
			return err
		}
		if postInc {
			z++
			c.SetZ(z)
			if z == 0 {
				c.rampz++
			}
		}
		c.SetR(rdFull(c.opWord()), v)
		c.cycles++
		return nil
	}
}

// --- XCH/LAS/LAC/LAT Z,Rd ---

func registerXCHLASLACLAT() {
	for rd := uint8(0); rd < 32; rd++ {
		rdBits := uint16(rd) << 4
		define(0x9204|rdBits, "XCH", false, execXCH, fmtZReg)
		define(0x9205|rdBits, "LAS", false, execLAS, fmtZReg)
		define(0x9206|rdBits, "LAC", false, execLAC, fmtZReg)
		define(0x9207|rdBits, "LAT", false, execLAT, fmtZReg)
	}
}

func fmtZReg(pc uint32, op, op2 uint16) string {
	return "Z," + regStr(rdFull(op))
}

func execXCH(c *CPU) error {
	rd := rdFull(c.opWord())
	addr := c.Z()
	mem, err := c.readDataByte(addr)
	if err != nil {
		return err
	}
	c.cycles--
	reg := c.R(rd)
	if err := c.writeDataByte(addr, reg); err != nil {
		return err
	}
	c.SetR(rd, mem)
	return nil
}

func execLAS(c *CPU) error {
	rd := rdFull(c.opWord())
	addr := c.Z()
	mem, err := c.readDataByte(addr)
	if err != nil {
		return err
	}
	c.cycles--
	reg := c.R(rd)
	if err := c.writeDataByte(addr, mem|reg); err != nil {
		return err
	}
	c.SetR(rd, mem)
	return nil
}

func execLAC(c *CPU) error {
	rd := rdFull(c.opWord())
	addr := c.Z()
	mem, err := c.readDataByte(addr)
	if err != nil {
		return err
	}
	c.cycles--
	reg := c.R(rd)
	if err := c.writeDataByte(addr, mem&^reg); err != nil {
		return err
	}
	c.SetR(rd, mem)
	return nil
}

func execLAT(c *CPU) error {
	rd := rdFull(c.opWord())
	addr := c.Z()
	mem, err := c.readDataByte(addr)
	if err != nil {
		return err
	}
	c.cycles--
	reg := c.R(rd)
	if err := c.writeDataByte(addr, mem^reg); err != nil {
		return err
	}
	c.SetR(rd, mem)
	return nil
}

// --- PUSH Rd / POP Rd ---

func registerPUSHPOP() {
	for rd := uint8(0); rd < 32; rd++ {
		define(0x920F|uint16(rd)<<4, "PUSH", false, execPUSH, fmt1Reg)
		define(0x900F|uint16(rd)<<4, "POP", false, execPOP, fmt1Reg)
	}
}

func execPUSH(c *CPU) error {
	return c.push(c.R(rdFull(c.opWord())))
}

func execPOP(c *CPU) error {
	v, err := c.pop()
	if err != nil {
		return err
	}
	c.SetR(rdFull(c.opWord()), v)
	return nil
}

// --- IN Rd,A / OUT A,Rr ---

func registerINOUT() {
	for rd := uint8(0); rd < 32; rd++ {
		for a := uint16(0); a < 64; a++ {
			op := 0xB000 | (a&0x30)<<5 | uint16(rd)<<4 | (a & 0x0F)
			define(op, "IN", false, execIN, fmtIO)
		}
	}
	for rr := uint8(0); rr < 32; rr++ {
		for a := uint16(0); a < 64; a++ {
			op := 0xB800 | (a&0x30)<<5 | uint16(rr)<<4 | (a & 0x0F)
			define(op, "OUT", false, execOUT, fmtOUT)
		}
	}
}

func fmtIO(pc uint32, op, op2 uint16) string {
	return regStr(rdFull(op)) + "," + dataAddrStr(uint16(io6(op))+ioBase)
}

func fmtOUT(pc uint32, op, op2 uint16) string {
	return dataAddrStr(uint16(io6(op))+ioBase) + "," + regStr(rdFull(op))
}

func execIN(c *CPU) error {
	v, err := c.readDataByte(uint16(io6(c.opWord())) + ioBase)
	if err != nil {
		return err
	}
	c.cycles--
	c.SetR(rdFull(c.opWord()), v)
	return nil
}

func execOUT(c *CPU) error {
	v := c.R(rdFull(c.opWord()))
	if err := c.writeDataByte(uint16(io6(c.opWord()))+ioBase, v); err != nil {
		return err
	}
	c.cycles--
	return nil
}

// --- SPM (not implemented: self-programming requires flash-write support
// that a MemorySpace backend does not expose) ---

func registerSPM() {
	define(0x95E8, "SPM", false, execSPM, fmtNone)
	define(0x95F8, "SPM", false, execSPM, fmtNone)
}

func execSPM(c *CPU) error {
	return &NotImplemented{Mnemonic: "SPM"}
}
