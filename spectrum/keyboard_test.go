package spectrum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyboardAllReleased(t *testing.T) {
	kb := NewKeyboard()
	for _, row := range kb {
		assert.Equal(t, uint8(0xFF), row)
	}
}

func TestKeyboardSetKeyTogglesSingleBit(t *testing.T) {
	kb := NewKeyboard()
	kb.SetKey(3, 4, true)
	assert.Equal(t, uint8(0xEF), kb[3])

	kb.SetKey(3, 4, false)
	assert.Equal(t, uint8(0xFF), kb[3])
}

func TestRowsForHighByteANDsSelectedRows(t *testing.T) {
	kb := NewKeyboard()
	kb.SetKey(0, 0, true)
	kb.SetKey(1, 0, true)

	// addrHigh with bits 0 and 1 both clear selects rows 0 and 1.
	result := kb.RowsForHighByte(0xFC)
	assert.Zero(t, result&0x01, "bit 0 held low in both selected rows")
}

func TestRowsForHighByteNoLineClearedFloats(t *testing.T) {
	kb := NewKeyboard()
	assert.Equal(t, uint8(0xFF), kb.RowsForHighByte(0xFF))
}
