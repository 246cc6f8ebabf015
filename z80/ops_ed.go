package z80

// ED-prefixed instructions not covered by ops_block.go/ops_io.go: the
// I/R transfer instructions, NEG, the three interrupt modes, RETN/RETI,
// RLD/RRD, and the 16-bit ADC/SBC/LD forms only reachable via ED.

func init() {
	registerLDIR_()
	registerNEG()
	registerIM()
	registerRETN_RETI()
	registerRLDRRD()
	registerADCSBCHL()
	registerEDMem16()
}

// registerLDIR_ is named with a trailing underscore only to avoid colliding
// with the LDIR opcode handler in ops_block.go; it wires LD I,A/LD R,A/
// LD A,I/LD A,R.
func registerLDIR_() {
	edTable[0x47] = opLDIFromA
	edTable[0x4F] = opLDRFromA
	edTable[0x57] = opLDAFromI
	edTable[0x5F] = opLDAFromR
}

func opLDIFromA(c *CPU) {
	c.reg.I = c.reg.A
	c.cycles += 9
}

func opLDRFromA(c *CPU) {
	c.reg.R = c.reg.A
	// Keep the r7 shadow in sync so Run's end-of-call reapplication doesn't
	// clobber the bit 7 this instruction just set.
	c.r7 = c.reg.A & 0x80
	c.cycles += 9
}

func opLDAFromI(c *CPU) {
	c.ldAIR(c.reg.I)
	c.cycles += 9
}

func opLDAFromR(c *CPU) {
	r := c.r7&0x80 | c.reg.R&0x7F
	c.ldAIR(r)
	c.cycles += 9
}

// registerNEG wires NEG onto all eight of its documented-duplicate opcodes.
func registerNEG() {
	for _, opcode := range []uint8{0x44, 0x4C, 0x54, 0x5C, 0x64, 0x6C, 0x74, 0x7C} {
		edTable[opcode] = opNEG
	}
}

func opNEG(c *CPU) {
	c.neg()
	c.cycles += 8
}

func registerIM() {
	for _, opcode := range []uint8{0x46, 0x4E, 0x66, 0x6E} {
		edTable[opcode] = makeIM(0)
	}
	for _, opcode := range []uint8{0x56, 0x76} {
		edTable[opcode] = makeIM(1)
	}
	for _, opcode := range []uint8{0x5E, 0x7E} {
		edTable[opcode] = makeIM(2)
	}
}

func makeIM(mode uint8) opFunc {
	return func(c *CPU) {
		c.reg.IM = mode
		c.cycles += 8
	}
}

func registerRETN_RETI() {
	for _, opcode := range []uint8{0x45, 0x55, 0x5D, 0x65, 0x6D, 0x75, 0x7D} {
		edTable[opcode] = opRETN
	}
	edTable[0x4D] = opRETI
}

func opRETN(c *CPU) {
	c.reg.IFF1 = c.reg.IFF2
	c.reg.PC = c.pop16()
	c.cycles += 14
}

func opRETI(c *CPU) {
	c.reg.PC = c.pop16()
	c.cycles += 14
}

func registerRLDRRD() {
	edTable[0x6F] = opRLD
	edTable[0x67] = opRRD
}

func opRLD(c *CPU) {
	addr := c.HL()
	m := c.bus.Read8(addr)
	newM := m<<4 | c.reg.A&0x0F
	newA := c.reg.A&0xF0 | m>>4
	c.bus.Write8(addr, newM)
	c.reg.A = newA
	c.setFlagsNibbleRotate(newA)
	c.cycles += 18
}

func opRRD(c *CPU) {
	addr := c.HL()
	m := c.bus.Read8(addr)
	newM := c.reg.A<<4 | m>>4
	newA := c.reg.A&0xF0 | m&0x0F
	c.bus.Write8(addr, newM)
	c.reg.A = newA
	c.setFlagsNibbleRotate(newA)
	c.cycles += 18
}

// setFlagsNibbleRotate implements the shared RLD/RRD flag update: S,Z,P/V
// from the new A; H,N cleared; C unchanged.
func (c *CPU) setFlagsNibbleRotate(newA uint8) {
	f := resultFlags(newA)
	if parityEven(newA) {
		f |= FlagPV
	}
	f |= c.reg.F & FlagC
	c.reg.F = f
}

// registerADCSBCHL wires the ED-only 16-bit ADC HL,ss/SBC HL,ss forms (ADD
// HL,ss lives in ops_arith.go; only ADC/SBC need the carry-aware helpers
// and both have an ED-only encoding since the unprefixed 0x?9 slots are
// all taken by ADD).
func registerADCSBCHL() {
	getters := []func(*CPU) uint16{(*CPU).BC, (*CPU).DE, (*CPU).HL, (*CPU).GetSP}
	for i, get := range getters {
		get := get
		sbcOp := uint8(0x42 | i<<4)
		adcOp := uint8(0x4A | i<<4)
		edTable[sbcOp] = func(c *CPU) {
			c.SetHL(c.sbc16(c.HL(), get(c)))
			c.cycles += 15
		}
		edTable[adcOp] = func(c *CPU) {
			c.SetHL(c.adc16(c.HL(), get(c)))
			c.cycles += 15
		}
	}
}

// registerEDMem16 wires the ED-only LD (nn),dd/LD dd,(nn) forms for BC, DE,
// HL (redundant with but identical to 0x22/0x2A), and SP.
func registerEDMem16() {
	pairs := []struct {
		get func(*CPU) uint16
		set func(*CPU, uint16)
	}{
		{(*CPU).BC, (*CPU).SetBC},
		{(*CPU).DE, (*CPU).SetDE},
		{(*CPU).HL, (*CPU).SetHL},
		{(*CPU).GetSP, (*CPU).SetSP},
	}
	for i, p := range pairs {
		get, set := p.get, p.set
		storeOp := uint8(0x43 | i<<4)
		loadOp := uint8(0x4B | i<<4)
		edTable[storeOp] = func(c *CPU) {
			addr := c.fetch16()
			v := get(c)
			c.bus.Write8(addr, uint8(v))
			c.bus.Write8(addr+1, uint8(v>>8))
			c.cycles += 20
		}
		edTable[loadOp] = func(c *CPU) {
			addr := c.fetch16()
			lo := c.bus.Read8(addr)
			hi := c.bus.Read8(addr + 1)
			set(c, uint16(hi)<<8|uint16(lo))
			c.cycles += 20
		}
	}
}
