package bitx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppendBits(t *testing.T) {
	var b Buffer

	b.AppendBits(0, 0)
	assert.Equal(t, 0, b.Len())

	b.AppendBits(1, 1)
	assert.Equal(t, []byte{1}, []byte(b))

	b.AppendBits(0, 1)
	assert.Equal(t, []byte{1, 0}, []byte(b))

	b.AppendBits(5, 3)
	assert.Equal(t, []byte{1, 0, 1, 0, 1}, []byte(b))

	b.AppendBits(6, 3)
	assert.Equal(t, []byte{1, 0, 1, 0, 1, 1, 1, 0}, []byte(b))
}

func TestAppendBitsPanicsOnOutOfRange(t *testing.T) {
	assert.Panics(t, func() {
		var b Buffer
		b.AppendBits(1, 32)
	})
	assert.Panics(t, func() {
		var b Buffer
		b.AppendBits(-1, 4)
	})
	assert.Panics(t, func() {
		var b Buffer
		b.AppendBits(8, 3) // value has a bit set at position >= length
	})
}

func TestPackBytes(t *testing.T) {
	var b Buffer
	b.AppendBits(0xA5, 8)
	b.AppendBits(0x0F, 8)
	assert.Equal(t, []byte{0xA5, 0x0F}, b.PackBytes())
}

func TestPackBytesPanicsOnMisalignedLength(t *testing.T) {
	var b Buffer
	b.AppendBits(1, 3)
	assert.Panics(t, func() { b.PackBytes() })
}

func TestGetBit(t *testing.T) {
	assert.Equal(t, 1, GetBit(0b0110, 1))
	assert.Equal(t, 0, GetBit(0b0110, 0))
	assert.True(t, GetBitBool(0b1000, 3))
	assert.False(t, GetBitBool(0b1000, 2))
}

func TestAssert(t *testing.T) {
	assert.NotPanics(t, func() { Assert(true, "ok") })
	assert.Panics(t, func() { Assert(false, "should trip") })
}
