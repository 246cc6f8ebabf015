package z80

// The Z80 has no hardware exception/vector table; unlike the 68000 there is
// no illegal-instruction trap. What this file holds instead is the defined
// fallback behavior for the two places the instruction set has holes: ED
// opcodes with no assigned meaning, and DD/FD prefixes in front of opcodes
// the xy tables don't override.

// edIllegal handles an ED-prefixed opcode with no defined behavior. Real
// silicon treats it as a silent no-op that still costs the prefix fetch
// plus one more byte; several ROMs rely on exactly this.
func (c *CPU) edIllegal() {
	c.cycles += 8
}

// xyIllegal handles a DD/FD prefix in front of an opcode the xy table
// doesn't override: behavior is identical to the unprefixed instruction,
// re-dispatched through the main table, billing the prefix's own 4 cycles
// on top of whatever the main-table handler charges.
func (c *CPU) xyIllegal() {
	opcode := c.byte0
	c.active = xyNone
	fn := mainTable[opcode]
	if fn == nil {
		c.cycles += 4
		return
	}
	fn(c)
	c.cycles += 4
}
