package z80

func init() {
	registerNOP()
	registerHALT()
	registerDIEI()
	registerPrefixes()
}

// --- NOP ---

func registerNOP() {
	mainTable[0x00] = opNOP
}

func opNOP(c *CPU) {
	c.cycles += 4
}

// --- HALT ---

func registerHALT() {
	mainTable[0x76] = opHALT
}

func opHALT(c *CPU) {
	c.setHalted(true)
	c.cycles += 4
}

// --- DI / EI ---

func registerDIEI() {
	mainTable[0xF3] = opDI
	mainTable[0xFB] = opEI
}

func opDI(c *CPU) {
	c.reg.IFF1 = false
	c.reg.IFF2 = false
	c.cycles += 4
}

func opEI(c *CPU) {
	c.reg.IFF1 = true
	c.reg.IFF2 = true
	c.eiJustDid = true
	c.cycles += 4
}

// --- Prefix dispatch ---

func registerPrefixes() {
	mainTable[0xCB] = opPrefixCB
	mainTable[0xED] = opPrefixED
	mainTable[0xDD] = opPrefixDD
	mainTable[0xFD] = opPrefixFD
}

func opPrefixCB(c *CPU) {
	opcode := c.fetchOpcode()
	c.byte0 = opcode
	fn := cbTable[opcode]
	if fn == nil {
		c.cycles += 8
		return
	}
	fn(c)
}

func opPrefixED(c *CPU) {
	opcode := c.fetchOpcode()
	c.byte0 = opcode
	fn := edTable[opcode]
	if fn == nil {
		c.edIllegal()
		return
	}
	fn(c)
}

func opPrefixDD(c *CPU) {
	c.dispatchXY(xyIX)
}

func opPrefixFD(c *CPU) {
	c.dispatchXY(xyIY)
}

// dispatchXY handles a DD or FD prefix: it redirects HL-slot references to
// IX or IY for the instruction that follows, including the DD CB d/FD CB d
// sub-dispatch for bit operations on (IX+d)/(IY+d). A second DD/FD prefix
// back to back simply restarts the sequence against the new register, per
// real hardware; the first prefix's 4 cycles are billed and the second is
// dispatched recursively.
func (c *CPU) dispatchXY(mode xyMode) {
	c.active = mode
	if mode == xyIX {
		c.xy = c.IX()
	} else {
		c.xy = c.IY()
	}

	opcode := c.fetchOpcode()

	switch opcode {
	case 0xDD:
		c.cycles += 4
		c.dispatchXY(xyIX)
		return
	case 0xFD:
		c.cycles += 4
		c.dispatchXY(xyIY)
		return
	}

	c.byte0 = opcode

	if opcode == 0xCB {
		c.displ = int8(c.fetch8())
		sub := c.fetch8()
		c.byte3 = sub
		fn := xyCBTable[sub]
		if fn == nil {
			c.cycles += 4
		} else {
			fn(c)
		}
	} else {
		fn := xyTable[opcode]
		if fn == nil {
			c.xyIllegal()
		} else {
			fn(c)
		}
	}

	if mode == xyIX {
		c.SetIX(c.xy)
	} else {
		c.SetIY(c.xy)
	}
}
