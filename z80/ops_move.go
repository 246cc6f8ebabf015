package z80

func init() {
	registerLD8()
	registerLDImm8()
	registerLDImm16()
	registerLDIndirectA()
	registerLDHLMem()
	registerLDSPFromHL()
	registerPushPop()
	registerExchanges()
}

// --- LD r,r' (0x40-0x7F, minus 0x76 = HALT) ---

func registerLD8() {
	for dst := uint8(0); dst < 8; dst++ {
		for src := uint8(0); src < 8; src++ {
			if dst == 6 && src == 6 {
				continue
			}
			opcode := 0x40 | dst<<3 | src
			fn := makeLD8(dst, src)
			mainTable[opcode] = fn
			if dst == 4 || dst == 5 || dst == 6 || src == 4 || src == 5 || src == 6 {
				xyTable[opcode] = fn
			}
		}
	}
}

func makeLD8(dst, src uint8) opFunc {
	return func(c *CPU) {
		v := c.getReg8(src)
		c.setReg8(dst, v)
		switch {
		case c.active != xyNone && (dst == 6 || src == 6):
			c.cycles += 19
		case c.active != xyNone:
			c.cycles += 8
		case dst == 6 || src == 6:
			c.cycles += 7
		default:
			c.cycles += 4
		}
	}
}

// --- LD r,n ---

func registerLDImm8() {
	for dst := uint8(0); dst < 8; dst++ {
		opcode := 0x06 | dst<<3
		fn := makeLDImm8(dst)
		mainTable[opcode] = fn
		if dst == 4 || dst == 5 || dst == 6 {
			xyTable[opcode] = fn
		}
	}
}

func makeLDImm8(dst uint8) opFunc {
	return func(c *CPU) {
		if dst == 6 {
			// Displacement (if any) precedes the immediate byte.
			addr := c.effAddr()
			n := c.fetch8()
			c.bus.Write8(addr, n)
			if c.active != xyNone {
				c.cycles += 19
			} else {
				c.cycles += 10
			}
			return
		}
		n := c.fetch8()
		c.setReg8(dst, n)
		if c.active != xyNone {
			c.cycles += 11
		} else {
			c.cycles += 7
		}
	}
}

// --- LD dd,nn ---

func registerLDImm16() {
	mainTable[0x01] = opLDBCImm
	mainTable[0x11] = opLDDEImm
	mainTable[0x21] = opLDHLImm
	mainTable[0x31] = opLDSPImm
	xyTable[0x21] = opLDHLImm
}

func opLDBCImm(c *CPU) {
	c.SetBC(c.fetch16())
	c.cycles += 10
}

func opLDDEImm(c *CPU) {
	c.SetDE(c.fetch16())
	c.cycles += 10
}

func opLDHLImm(c *CPU) {
	c.setHLSlot(c.fetch16())
	if c.active != xyNone {
		c.cycles += 14
	} else {
		c.cycles += 10
	}
}

func opLDSPImm(c *CPU) {
	c.reg.SP = c.fetch16()
	c.cycles += 10
}

// --- LD A,(BC)/(DE)/(nn), LD (BC)/(DE)/(nn),A ---

func registerLDIndirectA() {
	mainTable[0x0A] = opLDAFromBC
	mainTable[0x1A] = opLDAFromDE
	mainTable[0x02] = opLDBCFromA
	mainTable[0x12] = opLDDEFromA
	mainTable[0x3A] = opLDAFromMem
	mainTable[0x32] = opLDMemFromA
}

func opLDAFromBC(c *CPU) {
	c.reg.A = c.bus.Read8(c.BC())
	c.cycles += 7
}

func opLDAFromDE(c *CPU) {
	c.reg.A = c.bus.Read8(c.DE())
	c.cycles += 7
}

func opLDBCFromA(c *CPU) {
	c.bus.Write8(c.BC(), c.reg.A)
	c.cycles += 7
}

func opLDDEFromA(c *CPU) {
	c.bus.Write8(c.DE(), c.reg.A)
	c.cycles += 7
}

func opLDAFromMem(c *CPU) {
	addr := c.fetch16()
	c.reg.A = c.bus.Read8(addr)
	c.cycles += 13
}

func opLDMemFromA(c *CPU) {
	addr := c.fetch16()
	c.bus.Write8(addr, c.reg.A)
	c.cycles += 13
}

// --- LD HL,(nn) / LD (nn),HL ---

func registerLDHLMem() {
	mainTable[0x2A] = opLDHLFromMem
	mainTable[0x22] = opLDMemFromHL
	xyTable[0x2A] = opLDHLFromMem
	xyTable[0x22] = opLDMemFromHL
}

func opLDHLFromMem(c *CPU) {
	addr := c.fetch16()
	lo := c.bus.Read8(addr)
	hi := c.bus.Read8(addr + 1)
	c.setHLSlot(uint16(hi)<<8 | uint16(lo))
	if c.active != xyNone {
		c.cycles += 20
	} else {
		c.cycles += 16
	}
}

func opLDMemFromHL(c *CPU) {
	addr := c.fetch16()
	v := c.getHLSlot()
	c.bus.Write8(addr, uint8(v))
	c.bus.Write8(addr+1, uint8(v>>8))
	if c.active != xyNone {
		c.cycles += 20
	} else {
		c.cycles += 16
	}
}

// --- LD SP,HL ---

func registerLDSPFromHL() {
	mainTable[0xF9] = opLDSPFromHL
	xyTable[0xF9] = opLDSPFromHL
}

func opLDSPFromHL(c *CPU) {
	c.reg.SP = c.getHLSlot()
	if c.active != xyNone {
		c.cycles += 10
	} else {
		c.cycles += 6
	}
}

// --- PUSH qq / POP qq ---

func registerPushPop() {
	for qq := uint8(0); qq < 4; qq++ {
		pushOp := 0xC5 | qq<<4
		popOp := 0xC1 | qq<<4
		mainTable[pushOp] = makePush(qq)
		mainTable[popOp] = makePop(qq)
		if qq == 2 {
			xyTable[pushOp] = makePush(qq)
			xyTable[popOp] = makePop(qq)
		}
	}
}

func makePush(qq uint8) opFunc {
	return func(c *CPU) {
		var v uint16
		switch qq {
		case 0:
			v = c.BC()
		case 1:
			v = c.DE()
		case 2:
			v = c.getHLSlot()
		case 3:
			v = c.AF()
		}
		c.push16(v)
		if c.active != xyNone {
			c.cycles += 15
		} else {
			c.cycles += 11
		}
	}
}

func makePop(qq uint8) opFunc {
	return func(c *CPU) {
		v := c.pop16()
		switch qq {
		case 0:
			c.SetBC(v)
		case 1:
			c.SetDE(v)
		case 2:
			c.setHLSlot(v)
		case 3:
			c.SetAF(v)
		}
		if c.active != xyNone {
			c.cycles += 14
		} else {
			c.cycles += 10
		}
	}
}

// --- EX DE,HL / EX AF,AF' / EXX / EX (SP),HL ---

// registerExchanges registers the four exchange instructions. EX DE,HL is
// deliberately left out of xyTable: real hardware ignores a DD/FD prefix
// in front of it entirely, which is exactly what the xyIllegal fallback
// (re-dispatch through mainTable) already does.
func registerExchanges() {
	mainTable[0xEB] = opEXDEHL
	mainTable[0x08] = opEXAFAF
	mainTable[0xD9] = opEXX
	mainTable[0xE3] = opEXSPHL
	xyTable[0xE3] = opEXSPHL
}

func opEXDEHL(c *CPU) {
	de := c.DE()
	c.SetDE(c.HL())
	c.SetHL(de)
	c.cycles += 4
}

func opEXAFAF(c *CPU) {
	c.reg.A, c.reg.A_ = c.reg.A_, c.reg.A
	c.reg.F, c.reg.F_ = c.reg.F_, c.reg.F
	c.cycles += 4
}

func opEXX(c *CPU) {
	c.reg.B, c.reg.B_ = c.reg.B_, c.reg.B
	c.reg.C, c.reg.C_ = c.reg.C_, c.reg.C
	c.reg.D, c.reg.D_ = c.reg.D_, c.reg.D
	c.reg.E, c.reg.E_ = c.reg.E_, c.reg.E
	c.reg.H, c.reg.H_ = c.reg.H_, c.reg.H
	c.reg.L, c.reg.L_ = c.reg.L_, c.reg.L
	c.cycles += 4
}

func opEXSPHL(c *CPU) {
	addr := c.reg.SP
	lo := c.bus.Read8(addr)
	hi := c.bus.Read8(addr + 1)
	mem := uint16(hi)<<8 | uint16(lo)

	v := c.getHLSlot()
	c.bus.Write8(addr, uint8(v))
	c.bus.Write8(addr+1, uint8(v>>8))
	c.setHLSlot(mem)

	if c.active != xyNone {
		c.cycles += 23
	} else {
		c.cycles += 19
	}
}
