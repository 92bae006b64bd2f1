package avr8

func init() {
	registerAND()
	registerANDI()
	registerOR()
	registerORI()
	registerEOR()
	registerCOM()
	registerSWAP()
	registerShifts()
}

// --- AND Rd,Rr (0010 00rd dddd rrrr); Rd==Rr aliases TST ---

func registerAND() {
	for rd := uint8(0); rd < 32; rd++ {
		for rr := uint8(0); rr < 32; rr++ {
			op := 0x2000 | uint16(rr&0x10)<<5 | uint16(rd&0x1F)<<4 | uint16(rr&0x0F)
			mnemonic := "AND"
			if rd == rr {
				mnemonic = "TST"
			}
			define(op, mnemonic, false, execAND, fmtAND)
		}
	}
}

func execAND(c *CPU) error {
	rd, rr := rdFull(c.opWord()), rrFull(c.opWord())
	res := c.R(rd) & c.R(rr)
	c.setFlagsLogical(res)
	c.SetR(rd, res)
	return nil
}

func fmtAND(pc uint32, op, op2 uint16) string {
	rd, rr := rdFull(op), rrFull(op)
	if rd == rr {
		return regStr(rd)
	}
	return regStr(rd) + "," + regStr(rr)
}

// --- ANDI Rd,K (0111 KKKK dddd KKKK); also known as CBR Rd,~K ---

func registerANDI() {
	for rd := uint8(0); rd < 16; rd++ {
		for k := uint16(0); k < 256; k++ {
			op := 0x7000 | (k&0xF0)<<4 | uint16(rd)<<4 | (k & 0x0F)
			define(op, "ANDI", false, execANDI, fmtRdK)
		}
	}
}

func execANDI(c *CPU) error {
	rd, k := rdShort(c.opWord()), k8(c.opWord())
	res := c.R(rd) & k
	c.setFlagsLogical(res)
	c.SetR(rd, res)
	return nil
}

// --- OR Rd,Rr (0010 10rd dddd rrrr) ---

func registerOR() {
	for rd := uint8(0); rd < 32; rd++ {
		for rr := uint8(0); rr < 32; rr++ {
			op := 0x2800 | uint16(rr&0x10)<<5 | uint16(rd&0x1F)<<4 | uint16(rr&0x0F)
			define(op, "OR", false, execOR, fmtRdRr)
		}
	}
}

func execOR(c *CPU) error {
	rd, rr := rdFull(c.opWord()), rrFull(c.opWord())
	res := c.R(rd) | c.R(rr)
	c.setFlagsLogical(res)
	c.SetR(rd, res)
	return nil
}

// --- ORI Rd,K (0110 KKKK dddd KKKK); also known as SBR Rd,K ---

func registerORI() {
	for rd := uint8(0); rd < 16; rd++ {
		for k := uint16(0); k < 256; k++ {
			op := 0x6000 | (k&0xF0)<<4 | uint16(rd)<<4 | (k & 0x0F)
			define(op, "ORI", false, execORI, fmtRdK)
		}
	}
}

func execORI(c *CPU) error {
	rd, k := rdShort(c.opWord()), k8(c.opWord())
	res := c.R(rd) | k
	c.setFlagsLogical(res)
	c.SetR(rd, res)
	return nil
}

// --- EOR Rd,Rr (0010 01rd dddd rrrr); Rd==Rr aliases CLR ---

func registerEOR() {
	for rd := uint8(0); rd < 32; rd++ {
		for rr := uint8(0); rr < 32; rr++ {
			op := 0x2400 | uint16(rr&0x10)<<5 | uint16(rd&0x1F)<<4 | uint16(rr&0x0F)
			mnemonic := "EOR"
			if rd == rr {
				mnemonic = "CLR"
			}
			define(op, mnemonic, false, execEOR, fmtEOR)
		}
	}
}

func execEOR(c *CPU) error {
	rd, rr := rdFull(c.opWord()), rrFull(c.opWord())
	res := c.R(rd) ^ c.R(rr)
	c.setFlagsLogical(res)
	c.SetR(rd, res)
	return nil
}

func fmtEOR(pc uint32, op, op2 uint16) string {
	rd, rr := rdFull(op), rrFull(op)
	if rd == rr {
		return regStr(rd)
	}
	return regStr(rd) + "," + regStr(rr)
}

// --- COM Rd (1001 010d dddd 0000) ---

func registerCOM() {
	for rd := uint8(0); rd < 32; rd++ {
		define(0x9400|uint16(rd)<<4, "COM", false, execCOM, fmt1Reg)
	}
}

func execCOM(c *CPU) error {
	rd := rdFull(c.opWord())
	res := 0xFF - c.R(rd)
	c.flags.V = false
	c.flags.C = true
	c.setNZS(res)
	c.SetR(rd, res)
	return nil
}

// --- SWAP Rd (1001 010d dddd 0010) ---

func registerSWAP() {
	for rd := uint8(0); rd < 32; rd++ {
		define(0x9402|uint16(rd)<<4, "SWAP", false, execSWAP, fmt1Reg)
	}
}

func execSWAP(c *CPU) error {
	rd := rdFull(c.opWord())
	v := c.R(rd)
	c.SetR(rd, v<<4|v>>4)
	return nil
}

// --- LSR/ASR/ROR Rd ---

func registerShifts() {
	for rd := uint8(0); rd < 32; rd++ {
		define(0x9406|uint16(rd)<<4, "LSR", false, execLSR, fmt1Reg)
		define(0x9405|uint16(rd)<<4, "ASR", false, execASR, fmt1Reg)
		define(0x9407|uint16(rd)<<4, "ROR", false, execROR, fmt1Reg)
	}
}

func execLSR(c *CPU) error {
	rd := rdFull(c.opWord())
	v := c.R(rd)
	c.flags.C = v&0x01 != 0
	res := v >> 1
	c.flags.N = false
	c.flags.V = c.flags.N != c.flags.C
	c.flags.Z = res == 0
	c.flags.S = c.flags.N != c.flags.V
	c.SetR(rd, res)
	return nil
}

func execASR(c *CPU) error {
	rd := rdFull(c.opWord())
	v := c.R(rd)
	c.flags.C = v&0x01 != 0
	res := (v >> 1) | (v & 0x80)
	c.setNZS(res)
	c.flags.V = c.flags.N != c.flags.C
	c.flags.S = c.flags.N != c.flags.V
	c.SetR(rd, res)
	return nil
}

func execROR(c *CPU) error {
	rd := rdFull(c.opWord())
	v := c.R(rd)
	oldC := c.flags.C
	c.flags.C = v&0x01 != 0
	var top uint8
	if oldC {
		top = 0x80
	}
	res := top | (v >> 1)
	c.setNZS(res)
	c.flags.V = c.flags.N != c.flags.C
	c.flags.S = c.flags.N != c.flags.V
	c.SetR(rd, res)
	return nil
}
