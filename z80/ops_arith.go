package z80

func init() {
	registerALU8()
	registerALU8Imm()
	registerIncDec8()
	registerIncDec16()
	registerAddHL()
	registerMisc1Byte()
}

// --- ADD/ADC/SUB/SBC/AND/XOR/OR/CP A,r (0x80-0xBF) ---

// aluOp is one of the eight ALU operation codes selected by bits 5-3 of an
// 0x80-0xBF or 0xC6-0xFE opcode.
type aluOp uint8

const (
	aluADD aluOp = iota
	aluADC
	aluSUB
	aluSBC
	aluAND
	aluXOR
	aluOR
	aluCP
)

func (c *CPU) applyALU(op aluOp, operand uint8) {
	switch op {
	case aluADD:
		c.reg.A = c.add8(c.reg.A, operand, 0)
	case aluADC:
		c.reg.A = c.add8(c.reg.A, operand, c.reg.F&FlagC)
	case aluSUB:
		c.reg.A = c.sub8(c.reg.A, operand, 0)
	case aluSBC:
		c.reg.A = c.sub8(c.reg.A, operand, c.reg.F&FlagC)
	case aluAND:
		c.reg.A = c.and8(c.reg.A, operand)
	case aluXOR:
		c.reg.A = c.orXor8(c.reg.A ^ operand)
	case aluOR:
		c.reg.A = c.orXor8(c.reg.A | operand)
	case aluCP:
		c.cp8(c.reg.A, operand)
	}
}

func registerALU8() {
	for op := aluOp(0); op < 8; op++ {
		for src := uint8(0); src < 8; src++ {
			opcode := 0x80 | uint8(op)<<3 | src
			fn := makeALU8(op, src)
			mainTable[opcode] = fn
			if src == 4 || src == 5 || src == 6 {
				xyTable[opcode] = fn
			}
		}
	}
}

func makeALU8(op aluOp, src uint8) opFunc {
	return func(c *CPU) {
		operand := c.getReg8(src)
		c.applyALU(op, operand)
		switch {
		case c.active != xyNone && src == 6:
			c.cycles += 19
		case c.active != xyNone:
			c.cycles += 8
		case src == 6:
			c.cycles += 7
		default:
			c.cycles += 4
		}
	}
}

// --- ADD/ADC/SUB/SBC/AND/XOR/OR/CP A,n (0xC6-0xFE) ---

func registerALU8Imm() {
	for op := aluOp(0); op < 8; op++ {
		opcode := 0xC6 | uint8(op)<<3
		mainTable[opcode] = makeALU8Imm(op)
	}
}

func makeALU8Imm(op aluOp) opFunc {
	return func(c *CPU) {
		n := c.fetch8()
		c.applyALU(op, n)
		c.cycles += 7
	}
}

// --- INC r / DEC r (8-bit) ---

func registerIncDec8() {
	for r := uint8(0); r < 8; r++ {
		incOp := 0x04 | r<<3
		decOp := 0x05 | r<<3
		incFn := makeInc8(r)
		decFn := makeDec8(r)
		mainTable[incOp] = incFn
		mainTable[decOp] = decFn
		if r == 4 || r == 5 || r == 6 {
			xyTable[incOp] = incFn
			xyTable[decOp] = decFn
		}
	}
}

func makeInc8(r uint8) opFunc {
	return func(c *CPU) {
		if r == 6 {
			// effAddr fetches the displacement byte (if any); cache it so
			// the read and the write-back share one resolved address
			// instead of each fetching their own displacement.
			addr := c.effAddr()
			v := c.inc8(c.bus.Read8(addr))
			c.bus.Write8(addr, v)
			if c.active != xyNone {
				c.cycles += 23
			} else {
				c.cycles += 11
			}
			return
		}
		v := c.inc8(c.getReg8(r))
		c.setReg8(r, v)
		if c.active != xyNone {
			c.cycles += 8
		} else {
			c.cycles += 4
		}
	}
}

func makeDec8(r uint8) opFunc {
	return func(c *CPU) {
		if r == 6 {
			addr := c.effAddr()
			v := c.dec8(c.bus.Read8(addr))
			c.bus.Write8(addr, v)
			if c.active != xyNone {
				c.cycles += 23
			} else {
				c.cycles += 11
			}
			return
		}
		v := c.dec8(c.getReg8(r))
		c.setReg8(r, v)
		if c.active != xyNone {
			c.cycles += 8
		} else {
			c.cycles += 4
		}
	}
}

// --- INC ss / DEC ss (16-bit, no flags) ---

func registerIncDec16() {
	pairs := []struct {
		get func(*CPU) uint16
		set func(*CPU, uint16)
	}{
		{(*CPU).BC, (*CPU).SetBC},
		{(*CPU).DE, (*CPU).SetDE},
		{(*CPU).getHLSlot, (*CPU).setHLSlot},
		{(*CPU).GetSP, (*CPU).SetSP},
	}
	for i, p := range pairs {
		get, set := p.get, p.set
		incOp := uint8(0x03 | i<<4)
		decOp := uint8(0x0B | i<<4)
		mainTable[incOp] = func(c *CPU) {
			set(c, get(c)+1)
			c.bumpIncDec16Cycles()
		}
		mainTable[decOp] = func(c *CPU) {
			set(c, get(c)-1)
			c.bumpIncDec16Cycles()
		}
		if i == 2 {
			xyTable[incOp] = mainTable[incOp]
			xyTable[decOp] = mainTable[decOp]
		}
	}
}

func (c *CPU) bumpIncDec16Cycles() {
	if c.active != xyNone {
		c.cycles += 10
	} else {
		c.cycles += 6
	}
}

// --- ADD HL,ss / ADD IX,pp / ADD IY,rr ---

func registerAddHL() {
	srcs := []func(*CPU) uint16{(*CPU).BC, (*CPU).DE, nil, (*CPU).GetSP}
	for i, src := range srcs {
		opcode := uint8(0x09 | i<<4)
		src := src
		mainTable[opcode] = func(c *CPU) {
			var operand uint16
			if src == nil {
				operand = c.getHLSlot() // ADD HL,HL / ADD IX,IX / ADD IY,IY
			} else {
				operand = src(c)
			}
			c.setHLSlot(c.add16(c.getHLSlot(), operand))
			if c.active != xyNone {
				c.cycles += 15
			} else {
				c.cycles += 11
			}
		}
		// ADD IX,BC/DE/IX/SP and ADD IY,BC/DE/IY/SP all add into the
		// xy-redirected HL slot, so every index needs the xy entry, not
		// just HL,HL's.
		xyTable[opcode] = mainTable[opcode]
	}
}

// --- DAA / CPL / SCF / CCF ---

func registerMisc1Byte() {
	mainTable[0x27] = func(c *CPU) { c.daa(); c.cycles += 4 }
	mainTable[0x2F] = func(c *CPU) { c.cpl(); c.cycles += 4 }
	mainTable[0x37] = func(c *CPU) { c.scf(); c.cycles += 4 }
	mainTable[0x3F] = func(c *CPU) { c.ccf(); c.cycles += 4 }
}
