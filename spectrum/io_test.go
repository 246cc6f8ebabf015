package spectrum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestIO48K() (*IO, *Keyboard, *Memory) {
	mem := NewMemory48K(rom(0x00))
	kb := NewKeyboard()
	audio := NewAudio()
	io := NewIO(mem, &kb, audio, standardTiming48K, false)
	return io, &kb, mem
}

func TestULAKeyboardReadNoKeysPressed(t *testing.T) {
	io, _, _ := newTestIO48K()
	v := io.In(0xFEFE, 0)
	assert.Equal(t, uint8(0x1F), v&0x1F, "no key pressed reads all five bits set")
	assert.NotZero(t, v&0x20)
	assert.NotZero(t, v&0x40, "EAR floats high with no tape connected")
}

func TestULAKeyboardReadPressedKeyClearsBit(t *testing.T) {
	io, kb, _ := newTestIO48K()
	kb.SetKey(1, 1, true) // row 1, bit 1: the "A" key position

	v := io.In(0xFDFE, 0)
	assert.Zero(t, v&0x02, "bit 1 must read low for the pressed key")
	assert.NotZero(t, v&0x20)
	assert.NotZero(t, v&0x40)
}

func TestKempstonPortReadsLatchedValue(t *testing.T) {
	io, _, _ := newTestIO48K()
	io.SetKempston(0x10)
	assert.Equal(t, uint8(0x10), io.In(0x1F, 0))
}

func TestULABorderWriteLatches(t *testing.T) {
	io, _, _ := newTestIO48K()
	io.Out(0xFE, 0x05, 0)
	assert.Equal(t, uint8(0x05), io.BorderColor())
}

func TestPagingLatchOnlyOn128K(t *testing.T) {
	mem := NewMemory128K(rom(0x01), rom(0x02))
	kb := NewKeyboard()
	audio := NewAudio()
	io := NewIO(mem, &kb, audio, standardTiming128K, true)

	io.Out(0x7FFD, 0x10, 0)
	assert.Equal(t, uint8(0x10), mem.PagingLatch())
}

func TestPagingLatchIgnoredOn48K(t *testing.T) {
	io, _, mem := newTestIO48K()
	io.Out(0x7FFD, 0x10, 0)
	assert.Equal(t, uint8(0), mem.PagingLatch())
}

func TestAYPortsAreSilentlyIgnoredOn128K(t *testing.T) {
	mem := NewMemory128K(rom(0x01), rom(0x02))
	kb := NewKeyboard()
	audio := NewAudio()
	io := NewIO(mem, &kb, audio, standardTiming128K, true)

	io.Out(0xFFFD, 0x07, 0) // register select
	io.Out(0xBFFD, 0x3F, 0) // register data
	assert.Equal(t, uint8(0), mem.PagingLatch())
}
