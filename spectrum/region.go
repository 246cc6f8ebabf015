package spectrum

// Timing holds the per-model frame/scanline cycle constants that
// Machine.RunFrame uses to interleave CPU execution with rendering.
// Grounded on eMkIII's RegionTiming/GetTimingForRegion pattern, adapted from
// a region table (NTSC/PAL) to a per-Model table (every Spectrum model in
// this package's scope runs at the PAL-derived 50Hz frame rate; the constants
// still vary by model because the CPU clock and scanline length differ).
type Timing struct {
	CPUClockHz int // Z80 clock frequency

	CyclesPerFrame int // total T-states in one frame
	CyclesPerInt   int // T-states the ULA holds /INT asserted
	CyclesAtInt    int // frame_cycles value at which /INT is raised

	CyclesPerScanline int // T-states per scanline
	TopBorderLines    int
	PaperLines        int // always 192 on every model
	BottomBorderLines int
	LeftBorderCols    int // 8-pixel character columns
	RightBorderCols   int

	CyclesAtVisibleTopBorder int // frame_cycles value at which border rendering starts
}

// FrameWidth and FrameHeight in pixels, derived from the border geometry.
func (t Timing) FrameWidth() int  { return (t.LeftBorderCols + 32 + t.RightBorderCols) * 8 }
func (t Timing) FrameHeight() int { return t.TopBorderLines + t.PaperLines + t.BottomBorderLines }

// standardTiming48K and standardTiming128K are the 48K and 128K PAL timings,
// 50Hz refresh: a 3.5MHz Z80 clock with 312 scanlines of 224 T-states (48K),
// or 3.5469MHz with 311 scanlines of 228 T-states (128K).
var standardTiming48K = Timing{
	CPUClockHz:               3500000,
	CyclesPerFrame:           69888,
	CyclesPerInt:             32,
	CyclesAtInt:              0,
	CyclesPerScanline:        224,
	TopBorderLines:           48,
	PaperLines:               192,
	BottomBorderLines:        40,
	LeftBorderCols:           4,
	RightBorderCols:          4,
	CyclesAtVisibleTopBorder: 0,
}

var standardTiming128K = Timing{
	CPUClockHz:               3546900,
	CyclesPerFrame:           70908,
	CyclesPerInt:             36,
	CyclesAtInt:              0,
	CyclesPerScanline:        228,
	TopBorderLines:           48,
	PaperLines:               192,
	BottomBorderLines:        40,
	LeftBorderCols:           4,
	RightBorderCols:          4,
	CyclesAtVisibleTopBorder: 0,
}

// timingFor16K is identical to the 48K timing: the 16K model differs only
// in installed RAM, not in ULA/border timing.
var timingFor16K = standardTiming48K
