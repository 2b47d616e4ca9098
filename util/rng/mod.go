package rng

import "github.com/xor-shift/xoshiro-testgen/util"

// jumpImpl advances state by the polynomial encoded in table, as if permute
// had been called the corresponding number of times. Each table word
// contributes as many bits as the state word is wide.
func jumpImpl[T util.Word](state []T, table []T, permute func([]T) T) {
	var buf [4]T
	s := buf[:len(state)]
	bitWidth := util.BitWidth[T]()

	for i := 0; i < len(table); i++ {
		for b := 0; b < bitWidth; b++ {
			if table[i]&(T(1)<<b) != 0 {
				for j := range s {
					s[j] ^= state[j]
				}
			}
			_ = permute(state)
		}
	}

	copy(state, s)
}
