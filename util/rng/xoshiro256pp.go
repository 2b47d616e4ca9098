package rng

import (
	"github.com/xor-shift/xoshiro-testgen/util"
)

// the xoshiro256 polynomials do not depend on the scrambler
var (
	xoshiro256Jump = [4]uint64{
		0x180ec6d33cfd0aba,
		0xd5a61266f0c9392c,
		0xa9582618e03fc9aa,
		0x39abdc4529b1661c,
	}

	xoshiro256LongJump = [4]uint64{
		0x76e15d3efefdcbbf,
		0xc5004e441c522fb3,
		0x77710069854ee241,
		0x39109bb02acbe635,
	}

	// xoshiro128 counterparts, 2^64 and 2^96 steps
	xoshiro128Jump     = [4]uint32{0x8764000b, 0xf542d2d3, 0x6fa035c3, 0x77f2db5b}
	xoshiro128LongJump = [4]uint32{0xb523952e, 0x0b6f099f, 0xccf5a0ef, 0x1c580662}
)

type Xoshiro256PPState struct {
	State [4]uint64
}

func NewXoshiro256PP(s [4]uint64) *Xoshiro256PPState {
	state := Xoshiro256PPState{
		State: s,
	}

	return &state
}

func (state *Xoshiro256PPState) Next() uint64 {
	return xoshiro256PPPermuteState(state.State[:])
}

// Jump128 is equivalent to 2^128 calls to Next.
func (state *Xoshiro256PPState) Jump128() {
	jumpImpl(state.State[:], xoshiro256Jump[:], xoshiro256PPPermuteState)
}

// Jump192 is equivalent to 2^192 calls to Next.
func (state *Xoshiro256PPState) Jump192() {
	jumpImpl(state.State[:], xoshiro256LongJump[:], xoshiro256PPPermuteState)
}

func (state *Xoshiro256PPState) String() string {
	return util.ArrayToString(state.State[:])
}

type Xoshiro256SSState struct {
	State [4]uint64
}

func NewXoshiro256SS(s [4]uint64) *Xoshiro256SSState {
	return &Xoshiro256SSState{State: s}
}

func (state *Xoshiro256SSState) Next() uint64 {
	return xoshiro256SSPermuteState(state.State[:])
}

func (state *Xoshiro256SSState) Jump128() {
	jumpImpl(state.State[:], xoshiro256Jump[:], xoshiro256SSPermuteState)
}

func (state *Xoshiro256SSState) Jump192() {
	jumpImpl(state.State[:], xoshiro256LongJump[:], xoshiro256SSPermuteState)
}

func (state *Xoshiro256SSState) String() string {
	return util.ArrayToString(state.State[:])
}
