package spectrum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAudioStartsLow(t *testing.T) {
	a := NewAudio()
	a.endFrame()
	buf := a.Buffer()
	assert.Equal(t, waveLow, buf[0])
	assert.Equal(t, waveLow, buf[SamplesPerFrame-1])
}

func TestAudioSetLevelSplitsBuffer(t *testing.T) {
	a := NewAudio()
	mid := standardTiming48K.CyclesPerFrame / 2
	a.setLevel(true, mid, standardTiming48K.CyclesPerFrame)
	a.endFrame()

	buf := a.Buffer()
	assert.Equal(t, waveLow, buf[0])
	assert.Equal(t, waveHigh, buf[SamplesPerFrame-1])
	assert.Equal(t, mid, a.portFEUpdateCycle)
}

func TestAudioEndFrameResetsCursor(t *testing.T) {
	a := NewAudio()
	a.setLevel(true, 100, standardTiming48K.CyclesPerFrame)
	a.endFrame()
	assert.Equal(t, 0, a.writtenUpTo)

	buf := a.Buffer()
	assert.Equal(t, waveHigh, buf[SamplesPerFrame-1], "tail of the frame carries the latched level")
	assert.Equal(t, waveHigh, a.currentSample, "next frame starts from the last latched level")
}
