package rng

import (
	"errors"
	"fmt"

	"github.com/xor-shift/xoshiro-testgen/util"
)

var (
	ErrUnknownVariant = errors.New("unknown generator variant")
	ErrNoJump         = errors.New("variant has no jump polynomials")
	ErrArity          = errors.New("state has the wrong number of words")
)

// Kind enumerates every generator this package can drive.
type Kind int

const (
	Xoroshiro64S Kind = iota
	Xoroshiro128PP
	Xoshiro256PP
	Xoshiro256SS

	Xoroshiro64SS
	Xoroshiro128P
	Xoroshiro128SS
	Xoshiro128P
	Xoshiro128PP
	Xoshiro128SS
	Xoshiro256P
)

func (k Kind) String() string {
	if k < 0 || int(k) >= len(variants) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return variants[k].Name
}

// Variant describes one generator independently of its word type. States
// handed to Next, Jump and LongJump are Arity words long and hold values
// zero-extended to 64 bits.
type Variant struct {
	Kind     Kind
	Name     string
	WordBits int
	Arity    int

	next     func([]uint64) uint64
	jump     func([]uint64)
	longJump func([]uint64)
}

var variants = [...]Variant{
	Xoroshiro64S: {
		Kind: Xoroshiro64S, Name: "xoroshiro64s", WordBits: 32, Arity: 2,
		next: widen(xoroshiro64SPermuteState),
	},
	Xoroshiro128PP: {
		Kind: Xoroshiro128PP, Name: "xoroshiro128pp", WordBits: 64, Arity: 2,
		next:     widen(xoroshiro128PPPermuteState),
		jump:     widenJump(xoroshiro128PPJump[:], xoroshiro128PPPermuteState),
		longJump: widenJump(xoroshiro128PPLongJump[:], xoroshiro128PPPermuteState),
	},
	Xoshiro256PP: {
		Kind: Xoshiro256PP, Name: "xoshiro256pp", WordBits: 64, Arity: 4,
		next:     widen(xoshiro256PPPermuteState),
		jump:     widenJump(xoshiro256Jump[:], xoshiro256PPPermuteState),
		longJump: widenJump(xoshiro256LongJump[:], xoshiro256PPPermuteState),
	},
	Xoshiro256SS: {
		Kind: Xoshiro256SS, Name: "xoshiro256ss", WordBits: 64, Arity: 4,
		next:     widen(xoshiro256SSPermuteState),
		jump:     widenJump(xoshiro256Jump[:], xoshiro256SSPermuteState),
		longJump: widenJump(xoshiro256LongJump[:], xoshiro256SSPermuteState),
	},
	Xoroshiro64SS: {
		Kind: Xoroshiro64SS, Name: "xoroshiro64ss", WordBits: 32, Arity: 2,
		next: widen(xoroshiro64SSPermuteState),
	},
	Xoroshiro128P: {
		Kind: Xoroshiro128P, Name: "xoroshiro128p", WordBits: 64, Arity: 2,
		next:     widen(xoroshiro128PPermuteState),
		jump:     widenJump(xoroshiro128Jump[:], xoroshiro128PPermuteState),
		longJump: widenJump(xoroshiro128LongJump[:], xoroshiro128PPermuteState),
	},
	Xoroshiro128SS: {
		Kind: Xoroshiro128SS, Name: "xoroshiro128ss", WordBits: 64, Arity: 2,
		next:     widen(xoroshiro128SSPermuteState),
		jump:     widenJump(xoroshiro128Jump[:], xoroshiro128SSPermuteState),
		longJump: widenJump(xoroshiro128LongJump[:], xoroshiro128SSPermuteState),
	},
	Xoshiro128P: {
		Kind: Xoshiro128P, Name: "xoshiro128p", WordBits: 32, Arity: 4,
		next:     widen(xoshiro128PPermuteState),
		jump:     widenJump(xoshiro128Jump[:], xoshiro128PPermuteState),
		longJump: widenJump(xoshiro128LongJump[:], xoshiro128PPermuteState),
	},
	Xoshiro128PP: {
		Kind: Xoshiro128PP, Name: "xoshiro128pp", WordBits: 32, Arity: 4,
		next:     widen(xoshiro128PPPermuteState),
		jump:     widenJump(xoshiro128Jump[:], xoshiro128PPPermuteState),
		longJump: widenJump(xoshiro128LongJump[:], xoshiro128PPPermuteState),
	},
	Xoshiro128SS: {
		Kind: Xoshiro128SS, Name: "xoshiro128ss", WordBits: 32, Arity: 4,
		next:     widen(xoshiro128SSPermuteState),
		jump:     widenJump(xoshiro128Jump[:], xoshiro128SSPermuteState),
		longJump: widenJump(xoshiro128LongJump[:], xoshiro128SSPermuteState),
	},
	Xoshiro256P: {
		Kind: Xoshiro256P, Name: "xoshiro256p", WordBits: 64, Arity: 4,
		next:     widen(xoshiro256PPermuteState),
		jump:     widenJump(xoshiro256Jump[:], xoshiro256PPermuteState),
		longJump: widenJump(xoshiro256LongJump[:], xoshiro256PPermuteState),
	},
}

func narrow[T util.Word](buf *[4]T, s []uint64) []T {
	n := buf[:len(s)]
	for i, v := range s {
		n[i] = T(v)
	}
	return n
}

func writeBack[T util.Word](s []uint64, n []T) {
	for i, v := range n {
		s[i] = uint64(v)
	}
}

func widen[T util.Word](permute func([]T) T) func([]uint64) uint64 {
	return func(s []uint64) uint64 {
		var buf [4]T
		n := narrow(&buf, s)
		result := permute(n)
		writeBack(s, n)
		return uint64(result)
	}
}

func widenJump[T util.Word](table []T, permute func([]T) T) func([]uint64) {
	return func(s []uint64) {
		var buf [4]T
		n := narrow(&buf, s)
		jumpImpl(n, table, permute)
		writeBack(s, n)
	}
}

// Lookup returns the variant registered under name.
func Lookup(name string) (*Variant, error) {
	for i := range variants {
		if variants[i].Name == name {
			return &variants[i], nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

// ByKind panics on a Kind outside the enumeration.
func ByKind(k Kind) *Variant {
	return &variants[k]
}

// All returns every registered variant in Kind order.
func All() []*Variant {
	ret := make([]*Variant, len(variants))
	for i := range variants {
		ret[i] = &variants[i]
	}
	return ret
}

func Names() []string {
	ret := make([]string, len(variants))
	for i := range variants {
		ret[i] = variants[i].Name
	}
	return ret
}

// NewState returns a zeroed state of the right arity.
func (v *Variant) NewState() []uint64 {
	return make([]uint64, v.Arity)
}

func (v *Variant) checkArity(s []uint64) error {
	if len(s) != v.Arity {
		return fmt.Errorf("%w: %s takes %d words, got %d", ErrArity, v.Name, v.Arity, len(s))
	}
	return nil
}

// Next advances s by one step and returns the output, zero-extended. s must
// hold exactly Arity words; Next panics otherwise.
func (v *Variant) Next(s []uint64) uint64 {
	if err := v.checkArity(s); err != nil {
		panic(err)
	}
	return v.next(s)
}

func (v *Variant) CanJump() bool {
	return v.jump != nil && v.longJump != nil
}

// Jump advances s by the variant's short jump distance.
func (v *Variant) Jump(s []uint64) error {
	if v.jump == nil {
		return fmt.Errorf("%w: %s", ErrNoJump, v.Name)
	}
	if err := v.checkArity(s); err != nil {
		return err
	}
	v.jump(s)
	return nil
}

// LongJump advances s by the variant's long jump distance.
func (v *Variant) LongJump(s []uint64) error {
	if v.longJump == nil {
		return fmt.Errorf("%w: %s", ErrNoJump, v.Name)
	}
	if err := v.checkArity(s); err != nil {
		return err
	}
	v.longJump(s)
	return nil
}

func (v *Variant) String() string {
	return v.Name
}
