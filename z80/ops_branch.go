package z80

func init() {
	registerJP()
	registerJPcc()
	registerJR()
	registerJRcc()
	registerDJNZ()
	registerCALL()
	registerCALLcc()
	registerRET()
	registerRETcc()
	registerRST()
	registerJPHL()
}

func registerJP() {
	mainTable[0xC3] = opJP
}

func opJP(c *CPU) {
	c.reg.PC = c.fetch16()
	c.cycles += 10
}

func registerJPcc() {
	for cc := uint8(0); cc < 8; cc++ {
		opcode := 0xC2 | cc<<3
		mainTable[opcode] = makeJPcc(cc)
	}
}

func makeJPcc(cc uint8) opFunc {
	return func(c *CPU) {
		addr := c.fetch16()
		if c.condition(cc) {
			c.reg.PC = addr
		}
		c.cycles += 10
	}
}

func registerJR() {
	mainTable[0x18] = opJR
}

func opJR(c *CPU) {
	e := int8(c.fetch8())
	c.reg.PC = uint16(int32(c.reg.PC) + int32(e))
	c.cycles += 12
}

// registerJRcc registers the four relative conditional jumps: NZ,Z,NC,C
// (the Z80 has no PO/PE/P/M variant of JR).
func registerJRcc() {
	for cc := uint8(0); cc < 4; cc++ {
		opcode := 0x20 | cc<<3
		mainTable[opcode] = makeJRcc(cc)
	}
}

func makeJRcc(cc uint8) opFunc {
	return func(c *CPU) {
		e := int8(c.fetch8())
		if c.condition(cc) {
			c.reg.PC = uint16(int32(c.reg.PC) + int32(e))
			c.cycles += 12
		} else {
			c.cycles += 7
		}
	}
}

func registerDJNZ() {
	mainTable[0x10] = opDJNZ
}

func opDJNZ(c *CPU) {
	e := int8(c.fetch8())
	c.reg.B--
	if c.reg.B != 0 {
		c.reg.PC = uint16(int32(c.reg.PC) + int32(e))
		c.cycles += 13
	} else {
		c.cycles += 8
	}
}

func registerCALL() {
	mainTable[0xCD] = opCALL
}

func opCALL(c *CPU) {
	addr := c.fetch16()
	c.push16(c.reg.PC)
	c.reg.PC = addr
	c.cycles += 17
}

func registerCALLcc() {
	for cc := uint8(0); cc < 8; cc++ {
		opcode := 0xC4 | cc<<3
		mainTable[opcode] = makeCALLcc(cc)
	}
}

func makeCALLcc(cc uint8) opFunc {
	return func(c *CPU) {
		addr := c.fetch16()
		if c.condition(cc) {
			c.push16(c.reg.PC)
			c.reg.PC = addr
			c.cycles += 17
		} else {
			c.cycles += 10
		}
	}
}

func registerRET() {
	mainTable[0xC9] = opRET
}

func opRET(c *CPU) {
	c.reg.PC = c.pop16()
	c.cycles += 10
}

func registerRETcc() {
	for cc := uint8(0); cc < 8; cc++ {
		opcode := 0xC0 | cc<<3
		mainTable[opcode] = makeRETcc(cc)
	}
}

func makeRETcc(cc uint8) opFunc {
	return func(c *CPU) {
		if c.condition(cc) {
			c.reg.PC = c.pop16()
			c.cycles += 11
		} else {
			c.cycles += 5
		}
	}
}

func registerRST() {
	for p := uint8(0); p < 8; p++ {
		opcode := 0xC7 | p<<3
		mainTable[opcode] = makeRST(p)
	}
}

func makeRST(p uint8) opFunc {
	vector := uint16(p) * 8
	return func(c *CPU) {
		c.push16(c.reg.PC)
		c.reg.PC = vector
		c.cycles += 11
	}
}

// registerJPHL registers JP (HL)/JP (IX)/JP (IY). Despite the parenthesized
// syntax this never dereferences memory: it loads PC directly from the
// register pair.
func registerJPHL() {
	mainTable[0xE9] = opJPHL
	xyTable[0xE9] = opJPHL
}

func opJPHL(c *CPU) {
	c.reg.PC = c.getHLSlot()
	c.cycles += 4
}
