package z80

// Block transfer/search/I/O instructions, all ED-prefixed (0xA0-0xBB). Each
// "single step" op also backs its repeating counterpart (LDIR etc.), which
// simply re-runs the step and rewinds PC by 2 while its loop condition
// holds, billing 5 extra T-states for the repeat.

func init() {
	edTable[0xA0] = opLDI
	edTable[0xA8] = opLDD
	edTable[0xB0] = opLDIR
	edTable[0xB8] = opLDDR

	edTable[0xA1] = opCPI
	edTable[0xA9] = opCPD
	edTable[0xB1] = opCPIR
	edTable[0xB9] = opCPDR

	edTable[0xA2] = opINI
	edTable[0xAA] = opIND
	edTable[0xB2] = opINIR
	edTable[0xBA] = opINDR

	edTable[0xA3] = opOUTI
	edTable[0xAB] = opOUTD
	edTable[0xB3] = opOTIR
	edTable[0xBB] = opOTDR
}

// --- LDI/LDD/LDIR/LDDR ---

func opLDI(c *CPU) {
	v := c.bus.Read8(c.HL())
	c.bus.Write8(c.DE(), v)
	c.SetHL(c.HL() + 1)
	c.SetDE(c.DE() + 1)
	c.SetBC(c.BC() - 1)
	c.blockMoveFlags(v, c.BC() != 0)
	c.cycles += 16
}

func opLDD(c *CPU) {
	v := c.bus.Read8(c.HL())
	c.bus.Write8(c.DE(), v)
	c.SetHL(c.HL() - 1)
	c.SetDE(c.DE() - 1)
	c.SetBC(c.BC() - 1)
	c.blockMoveFlags(v, c.BC() != 0)
	c.cycles += 16
}

func opLDIR(c *CPU) {
	opLDI(c)
	if c.BC() != 0 {
		c.reg.PC -= 2
		c.cycles += 5
	}
}

func opLDDR(c *CPU) {
	opLDD(c)
	if c.BC() != 0 {
		c.reg.PC -= 2
		c.cycles += 5
	}
}

// --- CPI/CPD/CPIR/CPDR ---

func opCPI(c *CPU) {
	v := c.bus.Read8(c.HL())
	c.SetHL(c.HL() + 1)
	c.SetBC(c.BC() - 1)
	c.blockCompareFlags(v, c.BC() != 0)
	c.cycles += 16
}

func opCPD(c *CPU) {
	v := c.bus.Read8(c.HL())
	c.SetHL(c.HL() - 1)
	c.SetBC(c.BC() - 1)
	c.blockCompareFlags(v, c.BC() != 0)
	c.cycles += 16
}

func opCPIR(c *CPU) {
	opCPI(c)
	if c.BC() != 0 && c.reg.F&FlagZ == 0 {
		c.reg.PC -= 2
		c.cycles += 5
	}
}

func opCPDR(c *CPU) {
	opCPD(c)
	if c.BC() != 0 && c.reg.F&FlagZ == 0 {
		c.reg.PC -= 2
		c.cycles += 5
	}
}

// --- INI/IND/INIR/INDR ---

func opINI(c *CPU) {
	port := c.BC()
	value := c.bus.In(port)
	c.bus.Write8(c.HL(), value)
	c.SetHL(c.HL() + 1)
	c.reg.B--
	jSum := uint16(value) + uint16((c.reg.C+1)&0xFF)
	c.blockIOFlags(value, jSum, c.reg.B)
	c.cycles += 16
}

func opIND(c *CPU) {
	port := c.BC()
	value := c.bus.In(port)
	c.bus.Write8(c.HL(), value)
	c.SetHL(c.HL() - 1)
	c.reg.B--
	jSum := uint16(value) + uint16((c.reg.C-1)&0xFF)
	c.blockIOFlags(value, jSum, c.reg.B)
	c.cycles += 16
}

func opINIR(c *CPU) {
	opINI(c)
	if c.reg.B != 0 {
		c.reg.PC -= 2
		c.cycles += 5
	}
}

func opINDR(c *CPU) {
	opIND(c)
	if c.reg.B != 0 {
		c.reg.PC -= 2
		c.cycles += 5
	}
}

// --- OUTI/OUTD/OTIR/OTDR ---

func opOUTI(c *CPU) {
	value := c.bus.Read8(c.HL())
	c.SetHL(c.HL() + 1)
	c.reg.B--
	c.bus.Out(c.BC(), value)
	jSum := uint16(value) + uint16(c.reg.L)
	c.blockIOFlags(value, jSum, c.reg.B)
	c.cycles += 16
}

func opOUTD(c *CPU) {
	value := c.bus.Read8(c.HL())
	c.SetHL(c.HL() - 1)
	c.reg.B--
	c.bus.Out(c.BC(), value)
	jSum := uint16(value) + uint16(c.reg.L)
	c.blockIOFlags(value, jSum, c.reg.B)
	c.cycles += 16
}

func opOTIR(c *CPU) {
	opOUTI(c)
	if c.reg.B != 0 {
		c.reg.PC -= 2
		c.cycles += 5
	}
}

func opOTDR(c *CPU) {
	opOUTD(c)
	if c.reg.B != 0 {
		c.reg.PC -= 2
		c.cycles += 5
	}
}
