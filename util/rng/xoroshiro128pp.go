package rng

import "github.com/xor-shift/xoshiro-testgen/util"

var (
	xoroshiro128PPJump     = [2]uint64{0x2bd7a6a6e99c2ddc, 0x0992ccaf6a6fca05}
	xoroshiro128PPLongJump = [2]uint64{0x360fd5f2cf8d5d99, 0x9c6e6877736c46e3}

	// shared by xoroshiro128+ and xoroshiro128**
	xoroshiro128Jump     = [2]uint64{0xdf900294d8f554a5, 0x170865df4b3201fc}
	xoroshiro128LongJump = [2]uint64{0xd2a98b26625eee7b, 0xdddf9b1090aa7ac1}
)

type Xoroshiro128PPState struct {
	State [2]uint64
}

func NewXoroshiro128PP(s0, s1 uint64) *Xoroshiro128PPState {
	state := Xoroshiro128PPState{
		State: [2]uint64{s0, s1},
	}

	return &state
}

func (state *Xoroshiro128PPState) Next() uint64 {
	return xoroshiro128PPPermuteState(state.State[:])
}

// Jump64 is equivalent to 2^64 calls to Next.
func (state *Xoroshiro128PPState) Jump64() {
	jumpImpl(state.State[:], xoroshiro128PPJump[:], xoroshiro128PPPermuteState)
}

// Jump96 is equivalent to 2^96 calls to Next.
func (state *Xoroshiro128PPState) Jump96() {
	jumpImpl(state.State[:], xoroshiro128PPLongJump[:], xoroshiro128PPPermuteState)
}

func (state *Xoroshiro128PPState) String() string {
	return util.ArrayToString(state.State[:])
}
