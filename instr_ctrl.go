package avr8

func init() {
	define(0x0000, "NOP", false, execNOP, fmtNone)
	define(0x9588, "SLEEP", false, execSLEEP, fmtNone)
	define(0x9598, "BREAK", false, execBREAK, fmtNone)
	define(0x95A8, "WDR", false, execWDR, fmtNone)
	for k := uint16(0); k < 16; k++ {
		define(0x940B|k<<4, "DES", false, execDES, fmtDES)
	}
}

func execNOP(c *CPU) error { return nil }

func execSLEEP(c *CPU) error {
	c.asleep = true
	return nil
}

// execBREAK raises BreakInterrupt so a debugger-aware caller can suspend
// execution at this instruction; it performs no state change of its own.
func execBREAK(c *CPU) error {
	return &BreakInterrupt{PC: c.instrPC()}
}

func execWDR(c *CPU) error { return nil }

func fmtDES(pc uint32, op, op2 uint16) string {
	return immStr(uint8((op >> 4) & 0x0F))
}

func execDES(c *CPU) error {
	return &NotImplemented{Mnemonic: "DES"}
}
