package spectrum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rom(seed byte) []byte {
	b := make([]byte, 0x4000)
	for i := range b {
		b[i] = seed
	}
	return b
}

func TestMemory48KFixedSlots(t *testing.T) {
	m := NewMemory48K(rom(0xAA))
	assert.Equal(t, uint8(0xAA), m.Read8(0x0000))
	m.Write8(0x0000, 0xFF) // ROM write ignored
	assert.Equal(t, uint8(0xAA), m.Read8(0x0000))

	m.Write8(0x4000, 0x42)
	assert.Equal(t, uint8(0x42), m.Read8(0x4000))
}

func TestMemory16KUnmappedUpperSpace(t *testing.T) {
	m := NewMemory16K(rom(0x11))
	assert.Equal(t, uint8(0x11), m.Read8(0x0000))
	assert.Equal(t, uint8(0), m.Read8(0x8000))
	m.Write8(0x8000, 0x77) // dropped, no bank there
	assert.Equal(t, uint8(0), m.Read8(0x8000))
}

func TestMemory128KPagingLatch(t *testing.T) {
	rom0 := rom(0x01)
	rom1 := rom(0x02)
	m := NewMemory128K(rom0, rom1)

	require.Equal(t, uint8(0x01), m.Read8(0x0000))

	m.SetPaging(0x10) // bit4 set -> ROM bank 1
	assert.Equal(t, uint8(0x02), m.Read8(0x0000))
	assert.Equal(t, uint8(0x10), m.PagingLatch())

	// Mirror write lands at logical 0x5B5C, inside slot 1.
	assert.Equal(t, uint8(0x10), m.Read8(0x5B5C))
}

func TestMemory128KPagingLockIsOneWay(t *testing.T) {
	m := NewMemory128K(rom(0x01), rom(0x02))

	m.SetPaging(0x20) // bit5 set: lock engaged, ROM stays bank 0
	require.True(t, m.PagingDisabled())
	assert.Equal(t, uint8(0x01), m.Read8(0x0000))

	m.SetPaging(0x10) // further writes must be ignored
	assert.Equal(t, uint8(0x01), m.Read8(0x0000))
	assert.Equal(t, uint8(0x20), m.PagingLatch())
}

func TestMemory128KVideoBankSelect(t *testing.T) {
	m := NewMemory128K(rom(0x01), rom(0x02))
	m.ramBanks[5][0] = 0x55
	m.ramBanks[7][0] = 0x77

	assert.Equal(t, uint8(0x55), m.VRAMBank(false)[0])
	assert.Equal(t, uint8(0x77), m.VRAMBank(true)[0])
}

func TestMemoryRestorePagingReappliesLockedLatch(t *testing.T) {
	m := NewMemory128K(rom(0x01), rom(0x02))
	m.RestorePaging(0x13, true)

	assert.Equal(t, uint8(0x13), m.PagingLatch())
	assert.True(t, m.PagingDisabled())

	m.SetPaging(0x00) // locked, must not move
	assert.Equal(t, uint8(0x13), m.PagingLatch())
}
