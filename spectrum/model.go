package spectrum

// Model describes one machine variant: its memory layout, the named ROM
// images a host must place into the raw image buffer before Initialize, and
// the four lifecycle hooks spec.md §4.2 calls out. Mirrors eMkIII's
// small-structs-of-function-pointers EmulatorBase/region-table pattern and
// this module's own teacher's handler-table convention, one level up.
type Model struct {
	Name       string
	MemorySize int
	ROMs       []ROMDescriptor

	Initialize  func(*Machine)
	Power       func(*Machine, bool)
	Reset       func(*Machine)
	RunFrame    func(*Machine)
	RunScanline func(*Machine) // optional; same contract as RunFrame, one scanline
}

func standardPower(m *Machine, on bool) {
	if !on {
		return
	}
	m.cpu.Power(true)
	m.frameCycles = 0
	m.flash = false
	m.framesSinceFlash = 0
	m.io.border = 0
}

func standardReset(m *Machine) {
	m.cpu.Reset()
	m.frameCycles = 0
}

// Models is the immutable ABI table built at package init time (spec.md §9
// "Global state: none required... immutable once constructed at startup").
var Models = []Model{
	{
		Name:       "ZX Spectrum 16K Issue 1",
		MemorySize: 0x8000,
		ROMs:       []ROMDescriptor{{Name: "16K ROM", Offset: 0, Length: 0x4000}},
		Initialize: func(m *Machine) {
			rom := m.rawImage[0:0x4000]
			m.initCommon(NewMemory16K(rom), timingFor16K, false)
		},
		Power:    standardPower,
		Reset:    standardReset,
		RunFrame: runFrameStandard,
	},
	{
		Name:       "ZX Spectrum 48K Issue 2",
		MemorySize: 0x10000,
		ROMs:       []ROMDescriptor{{Name: "48K ROM", Offset: 0, Length: 0x4000}},
		Initialize: func(m *Machine) {
			rom := m.rawImage[0:0x4000]
			m.initCommon(NewMemory48K(rom), standardTiming48K, false)
		},
		Power:    standardPower,
		Reset:    standardReset,
		RunFrame: runFrameStandard,
	},
	{
		Name:       "ZX Spectrum 48K Issue 3",
		MemorySize: 0x10000,
		ROMs:       []ROMDescriptor{{Name: "48K ROM", Offset: 0, Length: 0x4000}},
		Initialize: func(m *Machine) {
			rom := m.rawImage[0:0x4000]
			m.initCommon(NewMemory48K(rom), standardTiming48K, false)
		},
		Power:    standardPower,
		Reset:    standardReset,
		RunFrame: runFrameStandard,
	},
	{
		Name:       "ZX Spectrum +",
		MemorySize: 0x10000,
		ROMs:       []ROMDescriptor{{Name: "+ ROM", Offset: 0, Length: 0x4000}},
		Initialize: func(m *Machine) {
			rom := m.rawImage[0:0x4000]
			m.initCommon(NewMemory48K(rom), standardTiming48K, false)
		},
		Power:    standardPower,
		Reset:    standardReset,
		RunFrame: runFrameStandard,
	},
	{
		Name:       "ZX Spectrum 128K (EN)",
		MemorySize: 0x28000,
		ROMs: []ROMDescriptor{
			{Name: "128K ROM0 (editor/128 BASIC, EN)", Offset: 0, Length: 0x4000},
			{Name: "128K ROM1 (48 BASIC)", Offset: 0x4000, Length: 0x4000},
		},
		Initialize: func(m *Machine) {
			rom0 := m.rawImage[0:0x4000]
			rom1 := m.rawImage[0x4000:0x8000]
			m.initCommon(NewMemory128K(rom0, rom1), standardTiming128K, true)
		},
		Power:    power128K,
		Reset:    reset128K,
		RunFrame: runFrameStandard,
	},
	{
		Name:       "ZX Spectrum 128K (ES)",
		MemorySize: 0x28000,
		ROMs: []ROMDescriptor{
			{Name: "128K ROM0 (editor/128 BASIC, ES)", Offset: 0, Length: 0x4000},
			{Name: "128K ROM1 (48 BASIC)", Offset: 0x4000, Length: 0x4000},
		},
		Initialize: func(m *Machine) {
			rom0 := m.rawImage[0:0x4000]
			rom1 := m.rawImage[0x4000:0x8000]
			m.initCommon(NewMemory128K(rom0, rom1), standardTiming128K, true)
		},
		Power:    power128K,
		Reset:    reset128K,
		RunFrame: runFrameStandard,
	},
	{
		// The Inves Spectrum + is a Spanish 48K clone with its own ROM and
		// slightly different paging/contention quirks (original_source/
		// models it as a distinct row rather than a ROM swap over the
		// stock 48K model; kept as such here).
		Name:       "Inves Spectrum +",
		MemorySize: 0x10000,
		ROMs:       []ROMDescriptor{{Name: "Inves ROM", Offset: 0, Length: 0x4000}},
		Initialize: func(m *Machine) {
			rom := m.rawImage[0:0x4000]
			m.initCommon(NewMemory48K(rom), standardTiming48K, false)
		},
		Power:    standardPower,
		Reset:    standardReset,
		RunFrame: runFrameStandard,
	},
}

func power128K(m *Machine, on bool) {
	standardPower(m, on)
	if !on {
		return
	}
	m.mem.pagingDisabled = false
	m.mem.SetPaging(0)
}

func reset128K(m *Machine) {
	standardReset(m)
	m.mem.pagingDisabled = false
	m.mem.SetPaging(0)
}
