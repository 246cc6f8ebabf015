package spectrum

// Sample amplitudes for the two speaker states. The beeper is a single bit
// (MIC or EAR output latched together on real hardware); zero-order-hold
// just repeats whichever amplitude is currently latched until the next
// edge.
const (
	waveLow  int16 = -6550
	waveHigh int16 = 6550
)

// SamplesPerFrame is fixed by the PAL refresh rate: 44100Hz / 50Hz.
const SamplesPerFrame = 882

// Audio accumulates one frame's worth of beeper output as a zero-order-hold
// signal, flushed incrementally on every MIC/EAR port write and topped up
// at end of frame. Grounded on eMkIII's psg.go buffer-indexing and
// flush-on-edge-change convention, simplified from the SN76489's tone
// channels down to the Spectrum's single-bit beeper.
type Audio struct {
	buffer [SamplesPerFrame]int16

	currentSample int16 // the level new samples are filled with
	writtenUpTo   int    // buffer index already written this frame

	// portFEUpdateCycle is the CPU cycle of the last MIC/EAR edge. setLevel
	// assigns it on every edge and Machine snapshots save and restore it;
	// flushTo does not read it (it places samples from its cycle argument).
	portFEUpdateCycle int
}

// NewAudio returns a silent (speaker low) audio accumulator.
func NewAudio() *Audio {
	return &Audio{currentSample: waveLow}
}

// flushTo fills the buffer from writtenUpTo through the sample
// corresponding to cycle (exclusive) with the currently latched level, then
// advances writtenUpTo. cyclesPerFrame is the model's frame length, used to
// convert a cycle position into a sample index.
func (a *Audio) flushTo(cycle int, cyclesPerFrame int) {
	target := cycle * SamplesPerFrame / cyclesPerFrame
	if target > SamplesPerFrame {
		target = SamplesPerFrame
	}
	for a.writtenUpTo < target {
		a.buffer[a.writtenUpTo] = a.currentSample
		a.writtenUpTo++
	}
}

// setLevel flushes up to cycle with the old level, then latches the new
// one. Called from io.go on every MIC/EAR-affecting OUT.
func (a *Audio) setLevel(high bool, cycle int, cyclesPerFrame int) {
	a.flushTo(cycle, cyclesPerFrame)
	if high {
		a.currentSample = waveHigh
	} else {
		a.currentSample = waveLow
	}
	a.portFEUpdateCycle = cycle
}

// endFrame flushes the remainder of the buffer (spec.md §4.2 run_1_frame
// phase 7: "flush audio to fill the remainder... with current_audio_sample")
// and resets the write cursor for the next frame.
func (a *Audio) endFrame() {
	for a.writtenUpTo < SamplesPerFrame {
		a.buffer[a.writtenUpTo] = a.currentSample
		a.writtenUpTo++
	}
	a.writtenUpTo = 0
}

// Buffer returns the completed frame's samples. Valid after RunFrame
// returns, until the next RunFrame call overwrites it.
func (a *Audio) Buffer() [SamplesPerFrame]int16 { return a.buffer }
