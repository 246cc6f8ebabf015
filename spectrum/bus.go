package spectrum

// Bus adapts Memory and IO into the z80.Bus interface. Grounded on eMkIII's
// bus.go (SMSBus gluing Memory+SMSIO into the external CPU's bus interface);
// our analog binds the CPU built in this same module instead of an
// external dependency.
type Bus struct {
	mem *Memory
	io  *IO

	// cycleRef points at Machine's running count of cycles elapsed this
	// frame. The z80.Bus interface has no per-call cycle parameter, so IO's
	// audio-edge and EAR-sample placement use whatever value this pointed
	// at when Machine last updated it (the start of the current CPU.Run
	// slice) rather than the exact T-state of the access — an approximation
	// of the same kind the audio edge-timing design note already accepts.
	cycleRef *int
}

// NewBus wires mem and io into a Bus sharing Machine's cycle counter.
func NewBus(mem *Memory, io *IO, cycleRef *int) *Bus {
	return &Bus{mem: mem, io: io, cycleRef: cycleRef}
}

func (b *Bus) Read8(addr uint16) uint8       { return b.mem.Read8(addr) }
func (b *Bus) Write8(addr uint16, val uint8) { b.mem.Write8(addr, val) }
func (b *Bus) In(port uint16) uint8          { return b.io.In(port, *b.cycleRef) }
func (b *Bus) Out(port uint16, val uint8)    { b.io.Out(port, val, *b.cycleRef) }

// IntData returns the value placed on the data bus during interrupt
// acknowledge: 0xFF, the floating-bus convention used elsewhere. IM 1
// ignores it (it pushes PC and jumps to 0x0038 unconditionally); IM 2 uses
// its low byte as the low half of the vector table address.
func (b *Bus) IntData() uint32 { return 0xFF }
