package z80

// Interrupt/HALT T-state costs. Per-instruction costs for the ~1500 normal
// opcodes are billed inline by their own handlers (they vary with every
// register/addressing combination, unlike the handful of fixed-cost
// interrupt-acceptance sequences collected here).
const (
	cyclesHalt = 4

	cyclesNMIAccept = 11

	// cyclesIM0ExtraLatency is the "+2 extra cycles" the design notes call
	// out: the interrupt acknowledge cycle runs two T-states longer than a
	// plain opcode fetch. It is added on top of the IM 0 and IM 1 costs
	// below; cyclesIM2Accept is the full IM 2 cost and gets no extra.
	cyclesIM0ExtraLatency = 2
	cyclesIM0RST          = 11
	cyclesIM0JP           = 10
	cyclesIM0Call         = 17
	cyclesIM1Accept       = 11
	cyclesIM2Accept       = 19
)
