package spectrum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBusDelegatesMemoryAccess(t *testing.T) {
	mem := NewMemory48K(rom(0x00))
	kb := NewKeyboard()
	audio := NewAudio()
	io := NewIO(mem, &kb, audio, standardTiming48K, false)
	cycle := 0
	bus := NewBus(mem, io, &cycle)

	bus.Write8(0x4000, 0x99)
	assert.Equal(t, uint8(0x99), bus.Read8(0x4000))
}

func TestBusDelegatesPortAccessAtCurrentCycle(t *testing.T) {
	mem := NewMemory48K(rom(0x00))
	kb := NewKeyboard()
	audio := NewAudio()
	io := NewIO(mem, &kb, audio, standardTiming48K, false)
	cycle := 1000
	bus := NewBus(mem, io, &cycle)

	bus.Out(0xFE, 0x03)
	assert.Equal(t, uint8(0x03), io.BorderColor())
}

func TestBusIntDataIsFloatingBusValue(t *testing.T) {
	mem := NewMemory48K(rom(0x00))
	kb := NewKeyboard()
	audio := NewAudio()
	io := NewIO(mem, &kb, audio, standardTiming48K, false)
	cycle := 0
	bus := NewBus(mem, io, &cycle)
	assert.Equal(t, uint32(0xFF), bus.IntData())
}
