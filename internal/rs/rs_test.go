package rs

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMultiply(t *testing.T) {
	cases := [][3]byte{
		{0x00, 0x00, 0x00},
		{0x01, 0x01, 0x01},
		{0x02, 0x02, 0x04},
		{0x00, 0x6E, 0x00},
		{0xB2, 0xDD, 0xE6},
		{0x41, 0x11, 0x25},
		{0xB0, 0x1F, 0x11},
		{0x05, 0x75, 0xBC},
		{0x52, 0xB5, 0xAE},
		{0xA8, 0x20, 0xA4},
		{0x0E, 0x44, 0x9F},
		{0xD4, 0x13, 0xA0},
		{0x31, 0x10, 0x37},
		{0x6C, 0x58, 0xCB},
		{0xB6, 0x75, 0x3E},
		{0xFF, 0xFF, 0xE2},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%v", tc), func(t *testing.T) {
			assert.Equal(t, tc[2], Multiply(tc[0], tc[1]))
		})
	}
}

func TestComputeDivisor(t *testing.T) {
	gen := ComputeDivisor(1)
	assert.Equal(t, byte(0x01), gen[0])

	gen = ComputeDivisor(2)
	assert.Equal(t, byte(0x03), gen[0])
	assert.Equal(t, byte(0x02), gen[1])

	gen = ComputeDivisor(5)
	assert.Equal(t, []byte{0x1F, 0xC6, 0x3F, 0x93, 0x74}, gen)

	gen = ComputeDivisor(30)
	assert.Equal(t, byte(0xD4), gen[0])
	assert.Equal(t, byte(0xF6), gen[1])
	assert.Equal(t, byte(0xC0), gen[5])
	assert.Equal(t, byte(0x16), gen[12])
	assert.Equal(t, byte(0xD9), gen[13])
	assert.Equal(t, byte(0x12), gen[20])
	assert.Equal(t, byte(0x6A), gen[27])
	assert.Equal(t, byte(0x96), gen[29])
}

func TestComputeDivisorPanicsOnOutOfRangeDegree(t *testing.T) {
	assert.Panics(t, func() { ComputeDivisor(0) })
	assert.Panics(t, func() { ComputeDivisor(256) })
}

func TestComputeRemainder(t *testing.T) {
	gen := ComputeDivisor(3)
	rem := ComputeRemainder([]byte{0}, gen)
	assert.Equal(t, []byte{0, 0, 0}, rem)

	rem = ComputeRemainder([]byte{0, 1}, gen)
	assert.Equal(t, []byte(gen), rem)

	gen5 := ComputeDivisor(5)
	rem = ComputeRemainder([]byte{0x03, 0x3A, 0x60, 0x12, 0xC7}, gen5)
	assert.Equal(t, []byte{0xCB, 0x36, 0x16}, rem[:3])

	gen30 := ComputeDivisor(30)
	data := []byte{
		0x38, 0x71, 0xDB, 0xF9, 0xD7, 0x28, 0xF6, 0x8E, 0xFE, 0x5E,
		0xE6, 0x7D, 0x7D, 0xB2, 0xA5, 0x58, 0xBC, 0x28, 0x23, 0x53,
		0x14, 0xD5, 0x61, 0xC0, 0x20, 0x6C, 0xDE, 0xDE, 0xFC, 0x79,
		0xB0, 0x8B, 0x78, 0x6B, 0x49, 0xD0, 0x1A, 0xAD, 0xF3, 0xEF,
		0x52, 0x7D, 0x9A,
	}
	rem = ComputeRemainder(data, gen30)
	assert.Len(t, rem, 30)
	assert.Equal(t, byte(0xCE), rem[0])
	assert.Equal(t, byte(0xF0), rem[1])
	assert.Equal(t, byte(0x31), rem[2])
	assert.Equal(t, byte(0xDE), rem[3])
	assert.Equal(t, byte(0xE1), rem[8])
	assert.Equal(t, byte(0xCA), rem[12])
	assert.Equal(t, byte(0xE3), rem[17])
	assert.Equal(t, byte(0x85), rem[19])
	assert.Equal(t, byte(0x50), rem[20])
	assert.Equal(t, byte(0xBE), rem[24])
	assert.Equal(t, byte(0xB3), rem[29])
}
