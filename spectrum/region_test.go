package spectrum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrameDimensionsFromBorderGeometry(t *testing.T) {
	assert.Equal(t, 320, standardTiming48K.FrameWidth())
	assert.Equal(t, 280, standardTiming48K.FrameHeight())
}

func TestTimingFor16KMatchesStandard48K(t *testing.T) {
	assert.Equal(t, standardTiming48K, timingFor16K)
}

func TestTiming128KHasLongerFrame(t *testing.T) {
	assert.Greater(t, standardTiming128K.CyclesPerFrame, standardTiming48K.CyclesPerFrame)
}
