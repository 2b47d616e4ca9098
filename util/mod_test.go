package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotL(t *testing.T) {
	assert.Equal(t, uint64(0x0000000000060000), RotL(uint64(3), 17))
	assert.Equal(t, uint64(0x8000000000000001), RotL(uint64(0xC000000000000000), 1))
	assert.Equal(t, uint32(0x00000003), RotL(uint32(0x80000001), 1))
	assert.Equal(t, uint8(0x1E), RotL(uint8(0xE1), 4))

	// no special case needed for k == 0
	assert.Equal(t, uint64(0xDEADBEEFCAFEBABE), RotL(uint64(0xDEADBEEFCAFEBABE), 0))
	assert.Equal(t, uint32(0xDEADBEEF), RotL(uint32(0xDEADBEEF), 0))
}

func TestBitWidth(t *testing.T) {
	assert.Equal(t, 8, BitWidth[uint8]())
	assert.Equal(t, 16, BitWidth[uint16]())
	assert.Equal(t, 32, BitWidth[uint32]())
	assert.Equal(t, 64, BitWidth[uint64]())
}

func TestFormatWord(t *testing.T) {
	cases := []struct {
		v        uint64
		bits     int
		expected string
	}{
		{0, 8, "0x00"},
		{0xAB, 8, "0xAB"},
		{0x1, 16, "0x0001"},
		{0x9E3779BB, 32, "0x9E3779BB"},
		{0x60001, 64, "0x0000000000060001"},
		{0xFFFFFFFFFFFFFFFF, 64, "0xFFFFFFFFFFFFFFFF"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, FormatWord(tc.v, tc.bits))
	}
}

func TestJoinWords(t *testing.T) {
	assert.Equal(t, "", JoinWords(nil, 64))
	assert.Equal(t, "0x0001", JoinWords([]uint64{1}, 16))
	assert.Equal(t, "0x00000001, 0xFFFFFFFF", JoinWords([]uint64{1, 0xFFFFFFFF}, 32))
	assert.Equal(t, "0x01, 0x02, 0x03", ArrayToString([]uint8{1, 2, 3}))
}

func TestMask(t *testing.T) {
	assert.Equal(t, uint64(0xFF), Mask(8))
	assert.Equal(t, uint64(0xFFFFFFFF), Mask(32))
	assert.Equal(t, ^uint64(0), Mask(64))
}
