package avr8

func init() {
	registerADD()
	registerADC()
	registerSUB()
	registerSUBI()
	registerSBC()
	registerSBCI()
	registerCP()
	registerCPI()
	registerCPC()
	registerNEG()
	registerINCDEC()
	registerADIWSBIW()
	registerMULfamily()
}

// --- ADD Rd,Rr (0000 11rd dddd rrrr); Rd==Rr aliases LSL ---

func registerADD() {
	for rd := uint8(0); rd < 32; rd++ {
		for rr := uint8(0); rr < 32; rr++ {
			op := 0x0C00 | uint16(rr&0x10)<<5 | uint16(rd&0x1F)<<4 | uint16(rr&0x0F)
			mnemonic := "ADD"
			if rd == rr {
				mnemonic = "LSL"
			}
			define(op, mnemonic, false, execADD, fmtADD)
		}
	}
}

func execADD(c *CPU) error {
	rd, rr := rdFull(c.opWord()), rrFull(c.opWord())
	d, r := c.R(rd), c.R(rr)
	res := d + r
	c.setFlagsAdd(d, r, res)
	c.SetR(rd, res)
	return nil
}

func fmtADD(pc uint32, op, op2 uint16) string {
	rd, rr := rdFull(op), rrFull(op)
	if rd == rr {
		return regStr(rd)
	}
	return regStr(rd) + "," + regStr(rr)
}

// --- ADC Rd,Rr (0001 11rd dddd rrrr); Rd==Rr aliases ROL ---

func registerADC() {
	for rd := uint8(0); rd < 32; rd++ {
		for rr := uint8(0); rr < 32; rr++ {
			op := 0x1C00 | uint16(rr&0x10)<<5 | uint16(rd&0x1F)<<4 | uint16(rr&0x0F)
			mnemonic := "ADC"
			if rd == rr {
				mnemonic = "ROL"
			}
			define(op, mnemonic, false, execADC, fmtADC)
		}
	}
}

func execADC(c *CPU) error {
	rd, rr := rdFull(c.opWord()), rrFull(c.opWord())
	var carry uint8
	if c.flags.C {
		carry = 1
	}
	d, r := c.R(rd), c.R(rr)
	res := d + r + carry
	c.setFlagsAdd(d, r, res)
	c.SetR(rd, res)
	return nil
}

func fmtADC(pc uint32, op, op2 uint16) string {
	rd, rr := rdFull(op), rrFull(op)
	if rd == rr {
		return regStr(rd)
	}
	return regStr(rd) + "," + regStr(rr)
}

// --- SUB Rd,Rr (0001 10rd dddd rrrr) ---

func registerSUB() {
	for rd := uint8(0); rd < 32; rd++ {
		for rr := uint8(0); rr < 32; rr++ {
			op := 0x1800 | uint16(rr&0x10)<<5 | uint16(rd&0x1F)<<4 | uint16(rr&0x0F)
			define(op, "SUB", false, execSUB, fmtRdRr)
		}
	}
}

func execSUB(c *CPU) error {
	rd, rr := rdFull(c.opWord()), rrFull(c.opWord())
	d, r := c.R(rd), c.R(rr)
	res := d - r
	c.setFlagsSub(d, r, res)
	c.SetR(rd, res)
	return nil
}

func fmtRdRr(pc uint32, op, op2 uint16) string {
	return regStr(rdFull(op)) + "," + regStr(rrFull(op))
}

// --- SUBI Rd,K (0101 KKKK dddd KKKK), Rd in 16..31 ---

func registerSUBI() {
	for rd := uint8(0); rd < 16; rd++ {
		for k := uint16(0); k < 256; k++ {
			op := 0x5000 | (k&0xF0)<<4 | uint16(rd)<<4 | (k & 0x0F)
			define(op, "SUBI", false, execSUBI, fmtRdK)
		}
	}
}

func execSUBI(c *CPU) error {
	rd, k := rdShort(c.opWord()), k8(c.opWord())
	d := c.R(rd)
	res := d - k
	c.setFlagsSub(d, k, res)
	c.SetR(rd, res)
	return nil
}

func fmtRdK(pc uint32, op, op2 uint16) string {
	return regStr(rdShort(op)) + "," + immStr(k8(op))
}

// --- SBC Rd,Rr (0000 10rd dddd rrrr) ---

func registerSBC() {
	for rd := uint8(0); rd < 32; rd++ {
		for rr := uint8(0); rr < 32; rr++ {
			op := 0x0800 | uint16(rr&0x10)<<5 | uint16(rd&0x1F)<<4 | uint16(rr&0x0F)
			define(op, "SBC", false, execSBC, fmtRdRr)
		}
	}
}

func execSBC(c *CPU) error {
	rd, rr := rdFull(c.opWord()), rrFull(c.opWord())
	var borrow uint8
	if c.flags.C {
		borrow = 1
	}
	d, r := c.R(rd), c.R(rr)
	res := d - r - borrow
	wasZero := c.flags.Z
	c.setFlagsSub(d, r, res)
	c.flags.Z = res == 0 && wasZero
	c.SetR(rd, res)
	return nil
}

// --- SBCI Rd,K (0100 KKKK dddd KKKK) ---

func registerSBCI() {
	for rd := uint8(0); rd < 16; rd++ {
		for k := uint16(0); k < 256; k++ {
			op := 0x4000 | (k&0xF0)<<4 | uint16(rd)<<4 | (k & 0x0F)
			define(op, "SBCI", false, execSBCI, fmtRdK)
		}
	}
}

func execSBCI(c *CPU) error {
	rd, k := rdShort(c.opWord()), k8(c.opWord())
	var borrow uint8
	if c.flags.C {
		borrow = 1
	}
	d := c.R(rd)
	res := d - k - borrow
	wasZero := c.flags.Z
	c.setFlagsSub(d, k, res)
	c.flags.Z = res == 0 && wasZero
	c.SetR(rd, res)
	return nil
}

// --- CP Rd,Rr (0001 01rd dddd rrrr) ---

func registerCP() {
	for rd := uint8(0); rd < 32; rd++ {
		for rr := uint8(0); rr < 32; rr++ {
			op := 0x1400 | uint16(rr&0x10)<<5 | uint16(rd&0x1F)<<4 | uint16(rr&0x0F)
			define(op, "CP", false, execCP, fmtRdRr)
		}
	}
}

func execCP(c *CPU) error {
	rd, rr := rdFull(c.opWord()), rrFull(c.opWord())
	d, r := c.R(rd), c.R(rr)
	c.setFlagsCmp(d, r, d-r)
	return nil
}

// --- CPI Rd,K (0011 KKKK dddd KKKK) ---

func registerCPI() {
	for rd := uint8(0); rd < 16; rd++ {
		for k := uint16(0); k < 256; k++ {
			op := 0x3000 | (k&0xF0)<<4 | uint16(rd)<<4 | (k & 0x0F)
			define(op, "CPI", false, execCPI, fmtRdK)
		}
	}
}

func execCPI(c *CPU) error {
	rd, k := rdShort(c.opWord()), k8(c.opWord())
	d := c.R(rd)
	c.setFlagsCmp(d, k, d-k)
	return nil
}

// --- CPC Rd,Rr (0000 01rd dddd rrrr) ---

func registerCPC() {
	for rd := uint8(0); rd < 32; rd++ {
		for rr := uint8(0); rr < 32; rr++ {
			op := 0x0400 | uint16(rr&0x10)<<5 | uint16(rd&0x1F)<<4 | uint16(rr&0x0F)
			define(op, "CPC", false, execCPC, fmtRdRr)
		}
	}
}

func execCPC(c *CPU) error {
	rd, rr := rdFull(c.opWord()), rrFull(c.opWord())
	var borrow uint8
	if c.flags.C {
		borrow = 1
	}
	d, r := c.R(rd), c.R(rr)
	res := d - r - borrow
	wasZero := c.flags.Z
	c.setFlagsSub(d, r, res)
	c.flags.Z = res == 0 && wasZero
	return nil
}

// --- NEG Rd (1001 010d dddd 0001); treated as 0 - Rd ---

func registerNEG() {
	for rd := uint8(0); rd < 32; rd++ {
		op := 0x9401 | uint16(rd)<<4
		define(op, "NEG", false, execNEG, fmt1Reg)
	}
}

func execNEG(c *CPU) error {
	rd := rdFull(c.opWord())
	d := c.R(rd)
	res := uint8(0) - d
	c.setFlagsSub(0, d, res)
	c.flags.C = res != 0
	c.SetR(rd, res)
	return nil
}

func fmt1Reg(pc uint32, op, op2 uint16) string {
	return regStr(rdFull(op))
}

// --- INC Rd (1001 010d dddd 0011), DEC Rd (1001 010d dddd 1010) ---

func registerINCDEC() {
	for rd := uint8(0); rd < 32; rd++ {
		define(0x9403|uint16(rd)<<4, "INC", false, execINC, fmt1Reg)
		define(0x940A|uint16(rd)<<4, "DEC", false, execDEC, fmt1Reg)
	}
}

func execINC(c *CPU) error {
	rd := rdFull(c.opWord())
	res := c.R(rd) + 1
	c.flags.V = res == 0x80
	c.setNZS(res)
	c.SetR(rd, res)
	return nil
}

func execDEC(c *CPU) error {
	rd := rdFull(c.opWord())
	res := c.R(rd) - 1
	c.flags.V = res == 0x7F
	c.setNZS(res)
	c.SetR(rd, res)
	return nil
}

// --- ADIW Rd+1:Rd,K (1001 0110 KKdd KKKK); SBIW likewise (1001 0111) ---

func registerADIWSBIW() {
	for pair := uint8(0); pair < 4; pair++ {
		for k := uint16(0); k < 64; k++ {
			op := 0x9600 | (k&0x30)<<2 | uint16(pair)<<4 | (k & 0x0F)
			define(op, "ADIW", false, execADIW, fmtPairK)
		}
	}
	for pair := uint8(0); pair < 4; pair++ {
		for k := uint16(0); k < 64; k++ {
			op := 0x9700 | (k&0x30)<<2 | uint16(pair)<<4 | (k & 0x0F)
			define(op, "SBIW", false, execSBIW, fmtPairK)
		}
	}
}

func fmtPairK(pc uint32, op, op2 uint16) string {
	rd := rdPairTiny(op)
	return pairStr(rd+1, rd) + "," + immStr(k6(op))
}

func execADIW(c *CPU) error {
	rd := rdPairTiny(c.opWord())
	k := uint16(k6(c.opWord()))
	lo, hi := c.R(rd), c.R(rd+1)
	old := uint16(hi)<<8 | uint16(lo)
	res := old + k
	rdh7Old := hi&0x80 != 0
	n := res&0x8000 != 0
	c.flags.N = n
	c.flags.V = n && !rdh7Old
	c.flags.C = !n && rdh7Old
	c.flags.Z = res == 0
	c.flags.S = c.flags.N != c.flags.V
	c.SetR(rd, uint8(res))
	c.SetR(rd+1, uint8(res>>8))
	c.cycles++
	return nil
}

func execSBIW(c *CPU) error {
	rd := rdPairTiny(c.opWord())
	k := uint16(k6(c.opWord()))
	lo, hi := c.R(rd), c.R(rd+1)
	old := uint16(hi)<<8 | uint16(lo)
	res := old - k
	rdh7Old := hi&0x80 != 0
	n := res&0x8000 != 0
	c.flags.N = n
	c.flags.V = !n && rdh7Old
	c.flags.C = n && !rdh7Old
	c.flags.Z = res == 0
	c.flags.S = c.flags.N != c.flags.V
	c.SetR(rd, uint8(res))
	c.SetR(rd+1, uint8(res>>8))
	c.cycles++
	return nil
}

// --- MUL/MULS/MULSU/FMUL/FMULS/FMULSU ---

func registerMULfamily() {
	// MUL Rd,Rr (unsigned, full 0..31): 1001 11rd dddd rrrr
	for rd := uint8(0); rd < 32; rd++ {
		for rr := uint8(0); rr < 32; rr++ {
			op := 0x9C00 | uint16(rr&0x10)<<5 | uint16(rd&0x1F)<<4 | uint16(rr&0x0F)
			define(op, "MUL", false, execMUL, fmtRdRr)
		}
	}
	// MULS Rd,Rr (signed, 16..31): 0000 0010 dddd rrrr
	for rd := uint8(0); rd < 16; rd++ {
		for rr := uint8(0); rr < 16; rr++ {
			op := 0x0200 | uint16(rd)<<4 | uint16(rr)
			define(op, "MULS", false, execMULS, fmtShortRdRr)
		}
	}
	// MULSU/FMUL/FMULS/FMULSU (16..23): 0000 0011 xddd yrrr
	for rd := uint8(0); rd < 8; rd++ {
		for rr := uint8(0); rr < 8; rr++ {
			base := 0x0300 | uint16(rd)<<4 | uint16(rr)
			define(base, "MULSU", false, execMULSU, fmtTinyRdRr)
			define(base|0x0008, "FMUL", false, execFMUL, fmtTinyRdRr)
			define(base|0x0080, "FMULS", false, execFMULS, fmtTinyRdRr)
			define(base|0x0088, "FMULSU", false, execFMULSU, fmtTinyRdRr)
		}
	}
}

func fmtShortRdRr(pc uint32, op, op2 uint16) string {
	return regStr(rdShort(op)) + "," + regStr(rrShort(op))
}

func fmtTinyRdRr(pc uint32, op, op2 uint16) string {
	return regStr(rdTiny(op)) + "," + regStr(rrTiny(op))
}

func execMUL(c *CPU) error {
	rd, rr := rdFull(c.opWord()), rrFull(c.opWord())
	res := uint16(c.R(rd)) * uint16(c.R(rr))
	c.SetR(0, uint8(res))
	c.SetR(1, uint8(res>>8))
	c.flags.C = res&0x8000 != 0
	c.flags.Z = res == 0
	c.cycles++
	return nil
}

func execMULS(c *CPU) error {
	rd, rr := rdShort(c.opWord()), rrShort(c.opWord())
	res := uint16(int16(int8(c.R(rd))) * int16(int8(c.R(rr))))
	c.SetR(0, uint8(res))
	c.SetR(1, uint8(res>>8))
	c.flags.C = res&0x8000 != 0
	c.flags.Z = res == 0
	c.cycles++
	return nil
}

func execMULSU(c *CPU) error {
	rd, rr := rdTiny(c.opWord()), rrTiny(c.opWord())
	res := uint16(int16(int8(c.R(rd))) * int16(c.R(rr)))
	c.SetR(0, uint8(res))
	c.SetR(1, uint8(res>>8))
	c.flags.C = res&0x8000 != 0
	c.flags.Z = res == 0
	c.cycles++
	return nil
}

func execFMUL(c *CPU) error {
	rd, rr := rdTiny(c.opWord()), rrTiny(c.opWord())
	unshifted := uint16(c.R(rd)) * uint16(c.R(rr))
	c.flags.C = unshifted&0x8000 != 0
	res := unshifted << 1
	c.SetR(0, uint8(res))
	c.SetR(1, uint8(res>>8))
	c.flags.Z = res == 0
	c.cycles++
	return nil
}

func execFMULS(c *CPU) error {
	rd, rr := rdTiny(c.opWord()), rrTiny(c.opWord())
	unshifted := uint16(int16(int8(c.R(rd))) * int16(int8(c.R(rr))))
	c.flags.C = unshifted&0x8000 != 0
	res := unshifted << 1
	c.SetR(0, uint8(res))
	c.SetR(1, uint8(res>>8))
	c.flags.Z = res == 0
	c.cycles++
	return nil
}

func execFMULSU(c *CPU) error {
	rd, rr := rdTiny(c.opWord()), rrTiny(c.opWord())
	unshifted := uint16(int16(int8(c.R(rd))) * int16(c.R(rr)))
	c.flags.C = unshifted&0x8000 != 0
	res := unshifted << 1
	c.SetR(0, uint8(res))
	c.SetR(1, uint8(res>>8))
	c.flags.Z = res == 0
	c.cycles++
	return nil
}
