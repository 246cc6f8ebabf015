package spectrum

import "github.com/user-none/go-chip-zxspectrum/z80"

// Machine ties one Model's memory, I/O, video and audio together with a CPU
// and drives them through frames. Grounded on eMkIII's EmulatorBase (the
// struct gluing CPU+Memory+IO+VDP+PSG together behind Power/Reset/RunFrame),
// generalized from a fixed SMS/GG console to the table-driven Models above.
type Machine struct {
	model Model

	cpu      *z80.CPU
	mem      *Memory
	io       *IO
	video    *Video
	audio    *Audio
	keyboard Keyboard

	rawImage []byte // host-supplied ROM source, sliced by Model.ROMs offsets
	timing   Timing

	frameCycles      int // cycles elapsed in the current RunFrame call
	flash            bool
	framesSinceFlash int
}

// NewMachine builds a Machine for Models[modelIndex]. rawImage must be at
// least Model.MemorySize bytes, with the ROM images named in Model.ROMs
// already copied into it at their declared offsets; the machine starts
// powered off until Power(true) is called.
func NewMachine(modelIndex int, rawImage []byte) *Machine {
	model := Models[modelIndex]
	if len(rawImage) < model.MemorySize {
		panic("spectrum: rawImage shorter than model's MemorySize")
	}

	m := &Machine{model: model, rawImage: rawImage, keyboard: NewKeyboard()}
	model.Initialize(m)
	return m
}

// initCommon is called from each Model's Initialize closure once it has
// sliced its ROM(s) out of rawImage into mem.
func (m *Machine) initCommon(mem *Memory, timing Timing, is128K bool) {
	m.mem = mem
	m.timing = timing
	m.audio = NewAudio()
	m.io = NewIO(mem, &m.keyboard, m.audio, timing, is128K)
	m.video = NewVideo(timing)

	bus := NewBus(mem, m.io, &m.frameCycles)
	m.cpu = z80.New(bus)
}

// Model returns the descriptor this Machine was built from.
func (m *Machine) Model() Model { return m.model }

// Power applies or releases power per spec.md §4.2; on==false is a no-op, as
// the hardware defines no meaningful "power off and retain state" behavior.
func (m *Machine) Power(on bool) { m.model.Power(m, on) }

// Reset performs a warm reset, equivalent to the hardware RESET line.
func (m *Machine) Reset() { m.model.Reset(m) }

// RunFrame advances the machine exactly one video frame.
func (m *Machine) RunFrame() { m.model.RunFrame(m) }

// SetKey sets one keyboard matrix element (row 0-7, bit 0-4), pressed true
// meaning the key is held down.
func (m *Machine) SetKey(row, bit int, pressed bool) { m.keyboard.SetKey(row, bit, pressed) }

// SetKeyboardRow overwrites an entire matrix row directly (active-low, as
// stored: 0 bits are pressed keys).
func (m *Machine) SetKeyboardRow(row int, value uint8) {
	if row < 0 || row >= len(m.keyboard) {
		return
	}
	m.keyboard[row] = value
}

// SetKeyboard overwrites the whole 8-row matrix as a single atomic snapshot
// (spec.md §5: the host supplies the whole bitmap between frames).
func (m *Machine) SetKeyboard(rows [8]uint8) { m.keyboard = Keyboard(rows) }

// SetAudioIn installs the tape EAR pulse buffer sampled by port 0xFE reads
// during the next RunFrame; nil disables it (EAR always reads high).
func (m *Machine) SetAudioIn(buf []byte) { m.io.SetAudioIn(buf) }

// SetKempston sets the Kempston joystick port value (bit 0=right, 1=left,
// 2=down, 3=up, 4=fire, active high).
func (m *Machine) SetKempston(v uint8) { m.io.SetKempston(v) }

// Frame returns the most recently rendered framebuffer, row-major RGBA32.
func (m *Machine) Frame() []uint32 { return m.video.Frame() }

// FrameWidth and FrameHeight describe the Frame buffer's dimensions.
func (m *Machine) FrameWidth() int  { return m.video.Width() }
func (m *Machine) FrameHeight() int { return m.video.Height() }

// AudioBuffer returns the most recently completed frame's beeper samples.
func (m *Machine) AudioBuffer() [SamplesPerFrame]int16 { return m.audio.Buffer() }

// BorderColor returns the currently latched 3-bit border color index.
func (m *Machine) BorderColor() uint8 { return m.io.BorderColor() }

// Registers exposes the CPU's programmer-visible state, for inspection and
// snapshotting.
func (m *Machine) Registers() z80.Registers { return m.cpu.Registers() }

// CPU exposes the underlying processor for callers that need direct control
// (snapshot restore, conformance harnesses).
func (m *Machine) CPU() *z80.CPU { return m.cpu }

// runFrameStandard is the run_1_frame algorithm from spec.md §4.2, shared by
// every Model in this package: run to the interrupt point, assert the
// maskable interrupt for its documented duration, then render border and
// paper scanlines interleaved with CPU execution so mid-frame port/memory
// writes take visible effect on the correct line.
func runFrameStandard(m *Machine) {
	t := m.timing
	m.frameCycles = m.frameCycles % t.CyclesPerFrame

	// runTo advances the CPU from the current frameCycles position up to
	// the absolute target cycle, using the actual cycles CPU.Run reports
	// consumed (which can overshoot the request when an instruction
	// straddles the boundary) rather than the requested delta. Each
	// subsequent call's delta shrinks or grows to compensate, so drift
	// from an overrun never accumulates across scanlines.
	runTo := func(target int) {
		delta := target - m.frameCycles
		if delta <= 0 {
			return
		}
		m.frameCycles += m.cpu.Run(delta)
	}

	runTo(t.CyclesAtInt)

	m.cpu.IRQ(true)
	runTo(t.CyclesAtInt + t.CyclesPerInt)
	m.cpu.IRQ(false)

	runTo(t.CyclesAtVisibleTopBorder)

	row := 0
	for i := 0; i < t.TopBorderLines; i++ {
		runTo(t.CyclesAtVisibleTopBorder + (i+1)*t.CyclesPerScanline)
		m.video.borderLine(row, palette[0][m.io.BorderColor()])
		row++
	}

	paperBase := t.CyclesAtVisibleTopBorder + t.TopBorderLines*t.CyclesPerScanline
	vram := m.mem.VRAMBank(m.mem.is128K && m.mem.pagingLatch&0x08 != 0)
	for line := 0; line < t.PaperLines; line++ {
		runTo(paperBase + (line+1)*t.CyclesPerScanline)
		m.video.paperLine(row, vram, line, m.flash, palette[0][m.io.BorderColor()])
		row++
	}

	bottomBase := paperBase + t.PaperLines*t.CyclesPerScanline
	for i := 0; i < t.BottomBorderLines; i++ {
		runTo(bottomBase + (i+1)*t.CyclesPerScanline)
		m.video.borderLine(row, palette[0][m.io.BorderColor()])
		row++
	}

	runTo(t.CyclesPerFrame)
	m.frameCycles = m.frameCycles % t.CyclesPerFrame // spec.md §4.2 phase 7 wraparound

	m.audio.endFrame()

	m.framesSinceFlash++
	if m.framesSinceFlash >= 16 {
		m.framesSinceFlash = 0
		m.flash = !m.flash
	}
}
