package z80

// opFunc is the handler signature for a single Z80 instruction. By the time
// it is called, the opcode byte that selected it is in c.byte0 (for a DD-CB/
// FD-CB sequence, the sub-opcode is also in c.byte3 and the displacement in
// c.displ). The handler is responsible for adding its own cost to c.cycles.
type opFunc func(*CPU)

// Five parallel 256-entry dispatch tables, one per prefix, keyed by a single
// opcode byte (spec.md §4.1 "Instruction tables"). xyCBTable is additionally
// keyed by the CB-style sub-opcode byte after a DD/FD CB d sequence (kept
// in CPU.byte3).
var (
	mainTable [256]opFunc
	cbTable   [256]opFunc
	edTable   [256]opFunc
	xyTable   [256]opFunc // dispatched via byte 1 after a DD/FD prefix
	xyCBTable [256]opFunc // dispatched via byte 3 after DD/FD CB d
)
