package z80

// getReg8/setReg8 resolve one of the eight 3-bit register-field encodings
// shared by the main and CB tables: 0=B 1=C 2=D 3=E 4=H 5=L 6=(HL) 7=A. When
// a DD/FD prefix is active, slots 4/5 are redirected to the high/low byte
// of IX or IY and slot 6 is redirected to (IX+d)/(IY+d) instead of (HL),
// per the register-aliasing design: the xy scratch field is read here, not
// a pointer into the real IX/IY storage.

func (c *CPU) getReg8(idx uint8) uint8 {
	switch idx {
	case 0:
		return c.reg.B
	case 1:
		return c.reg.C
	case 2:
		return c.reg.D
	case 3:
		return c.reg.E
	case 4:
		if c.active != xyNone {
			return uint8(c.xy >> 8)
		}
		return c.reg.H
	case 5:
		if c.active != xyNone {
			return uint8(c.xy)
		}
		return c.reg.L
	case 6:
		return c.bus.Read8(c.effAddr())
	case 7:
		return c.reg.A
	}
	return 0
}

func (c *CPU) setReg8(idx uint8, v uint8) {
	switch idx {
	case 0:
		c.reg.B = v
	case 1:
		c.reg.C = v
	case 2:
		c.reg.D = v
	case 3:
		c.reg.E = v
	case 4:
		if c.active != xyNone {
			c.xy = uint16(v)<<8 | c.xy&0x00FF
			return
		}
		c.reg.H = v
	case 5:
		if c.active != xyNone {
			c.xy = c.xy&0xFF00 | uint16(v)
			return
		}
		c.reg.L = v
	case 6:
		c.bus.Write8(c.effAddr(), v)
	case 7:
		c.reg.A = v
	}
}

// effAddr resolves the (HL)-slot address for a non-CB-prefixed instruction:
// plain (HL) when no DD/FD prefix is active, otherwise (IX+d)/(IY+d) with
// the displacement byte fetched from the instruction stream at the point of
// the call. Only one handler call per instruction should resolve this, so
// the displacement is fetched exactly once.
func (c *CPU) effAddr() uint16 {
	if c.active == xyNone {
		return c.HL()
	}
	d := int8(c.fetch8())
	c.displ = d
	return uint16(int32(c.xy) + int32(d))
}

// xyCBAddr resolves (IX+d)/(IY+d) for a DD CB d/FD CB d sequence, whose
// displacement was already fetched by dispatchXY before the sub-opcode.
func (c *CPU) xyCBAddr() uint16 {
	return uint16(int32(c.xy) + int32(c.displ))
}

// getHLSlot/setHLSlot read and write the HL-slot register pair as a unit:
// HL itself, or the xy scratch word while a DD/FD prefix is active.

func (c *CPU) getHLSlot() uint16 {
	if c.active == xyNone {
		return c.HL()
	}
	return c.xy
}

func (c *CPU) setHLSlot(v uint16) {
	if c.active == xyNone {
		c.SetHL(v)
		return
	}
	c.xy = v
}
