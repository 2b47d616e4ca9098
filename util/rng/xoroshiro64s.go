package rng

import "github.com/xor-shift/xoshiro-testgen/util"

// Xoroshiro64SState is a xoroshiro64* generator. There are no published jump
// polynomials for it.
type Xoroshiro64SState struct {
	State [2]uint32
}

func NewXoroshiro64S(s0, s1 uint32) *Xoroshiro64SState {
	return &Xoroshiro64SState{
		State: [2]uint32{s0, s1},
	}
}

func (state *Xoroshiro64SState) Next() uint32 {
	return xoroshiro64SPermuteState(state.State[:])
}

func (state *Xoroshiro64SState) String() string {
	return util.ArrayToString(state.State[:])
}
