package spectrum

// page is one of the four 16KiB CPU address slots. A nil bank models the
// 16K model's unmapped upper address space: reads return 0, writes are
// ignored, matching spec's 16K bus-callback carve-out.
type page struct {
	bank []byte // always len 0x4000 when non-nil
	rom  bool   // writes ignored when true
}

// Memory implements the ZX Spectrum bus address map: a 48K/16K model is a
// fixed mapping of ROM + RAM banks into the four slots; a 128K model adds
// the 0x7FFD paging latch that can re-point three of those slots at
// runtime. Grounded on eMkIII's mem.go bank-slot/mapper split, adapted from
// Sega cartridge bank-switching to the Spectrum's fixed four-slot design.
type Memory struct {
	romBanks [][]byte // each 0x4000 bytes
	ramBanks [][]byte // each 0x4000 bytes

	slots [4]page

	is128K         bool
	pagingDisabled bool
	pagingLatch    uint8 // last value written to 0x7FFD, for Snapshot/readback
}

// NewMemory48K builds the fixed 48K map: ROM at slot 0, three contiguous
// 16KiB RAM banks at slots 1-3.
func NewMemory48K(rom []byte) *Memory {
	m := &Memory{
		romBanks: [][]byte{padBank(rom)},
		ramBanks: [][]byte{make([]byte, 0x4000), make([]byte, 0x4000), make([]byte, 0x4000)},
	}
	m.slots[0] = page{bank: m.romBanks[0], rom: true}
	m.slots[1] = page{bank: m.ramBanks[0]}
	m.slots[2] = page{bank: m.ramBanks[1]}
	m.slots[3] = page{bank: m.ramBanks[2]}
	return m
}

// NewMemory16K is the 48K map with the top 32KiB of RAM left unmapped:
// reads there return 0, writes are dropped.
func NewMemory16K(rom []byte) *Memory {
	m := &Memory{
		romBanks: [][]byte{padBank(rom)},
		ramBanks: [][]byte{make([]byte, 0x4000)},
	}
	m.slots[0] = page{bank: m.romBanks[0], rom: true}
	m.slots[1] = page{bank: m.ramBanks[0]}
	m.slots[2] = page{}
	m.slots[3] = page{}
	return m
}

// NewMemory128K builds the two-ROM/eight-RAM-bank map with slot 0 fixed to
// ROM, and slots 1-3 initialized per spec.md §4.2 Initialization: page 1 ->
// RAM bank 5 (also the VRAM for screen 0), page 2 -> RAM bank 2, page 3 ->
// RAM bank 0.
func NewMemory128K(romEN, romES []byte) *Memory {
	ram := make([][]byte, 8)
	for i := range ram {
		ram[i] = make([]byte, 0x4000)
	}
	m := &Memory{
		romBanks: [][]byte{padBank(romEN), padBank(romES)},
		ramBanks: ram,
		is128K:   true,
	}
	m.slots[0] = page{bank: m.romBanks[0], rom: true}
	m.slots[1] = page{bank: m.ramBanks[5]}
	m.slots[2] = page{bank: m.ramBanks[2]}
	m.slots[3] = page{bank: m.ramBanks[0]}
	return m
}

func padBank(rom []byte) []byte {
	b := make([]byte, 0x4000)
	copy(b, rom)
	return b
}

func (m *Memory) Read8(addr uint16) uint8 {
	p := m.slots[addr>>14]
	if p.bank == nil {
		return 0
	}
	return p.bank[addr&0x3FFF]
}

func (m *Memory) Write8(addr uint16, val uint8) {
	p := m.slots[addr>>14]
	if p.bank == nil || p.rom {
		return
	}
	p.bank[addr&0x3FFF] = val
}

// VRAMBank returns the RAM bank currently backing the screen 0 page (bank
// 5) or screen 1 page (bank 7), for video.go to read directly without
// going through the slotted address map.
func (m *Memory) VRAMBank(screen7 bool) []byte {
	if screen7 && len(m.ramBanks) > 7 {
		return m.ramBanks[7]
	}
	return m.ramBanks[5%len(m.ramBanks)]
}

// SetPaging implements the 0x7FFD write per spec.md §4.2 "Paging latch": no
// effect on 48K/16K models (they have no ramBanks[7] to select), and a
// one-way latch on 128K models once bit 5 is set.
func (m *Memory) SetPaging(val uint8) {
	if !m.is128K || m.pagingDisabled {
		return
	}

	romBank := (val >> 4) & 1
	m.slots[0] = page{bank: m.romBanks[romBank], rom: true}

	videoBank := 5
	if val&0x08 != 0 {
		videoBank = 7
	}
	m.slots[1] = page{bank: m.ramBanks[videoBank]}

	ramBank := val & 0x07
	m.slots[3] = page{bank: m.ramBanks[ramBank]}

	m.pagingLatch = val
	if val&0x20 != 0 {
		m.pagingDisabled = true
	}

	// Mirror the latch value into RAM at logical offset 0x5B5C (inside
	// slot 1) so resident system software can read back its own paging
	// state.
	m.slots[1].bank[0x5B5C&0x3FFF] = val
}

// PagingLatch returns the last value accepted by SetPaging, for Snapshot.
func (m *Memory) PagingLatch() uint8 { return m.pagingLatch }

// PagingDisabled reports whether the one-way paging-lock bit has latched.
func (m *Memory) PagingDisabled() bool { return m.pagingDisabled }

// RestorePaging re-applies a snapshot's latch value and lock bit without
// re-running SetPaging's one-way-lock guard (a loaded snapshot may resume
// with the lock already set).
func (m *Memory) RestorePaging(val uint8, disabled bool) {
	if !m.is128K {
		return
	}
	m.pagingDisabled = false
	m.SetPaging(val)
	m.pagingDisabled = disabled
}
