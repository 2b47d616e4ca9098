package testgen

import (
	"bufio"
	"fmt"
	"io"

	"github.com/xor-shift/xoshiro-testgen/util"
	"github.com/xor-shift/xoshiro-testgen/util/rng"
)

// Source is where initial states come from. Only the full-range 64-bit draw
// is needed; narrower words take the low bits.
type Source interface {
	Uint64() uint64
}

type Generator struct {
	src  Source
	tags TagStyle
}

func NewGenerator(src Source, tags TagStyle) *Generator {
	return &Generator{
		src:  src,
		tags: tags,
	}
}

func (g *Generator) Tags() TagStyle {
	return g.tags
}

func (g *Generator) drawState(v *rng.Variant) []uint64 {
	mask := util.Mask(v.WordBits)

	state := v.NewState()
	for i := range state {
		state[i] = g.src.Uint64() & mask
	}

	return state
}

// NewNextRecord runs next NextOutputs times from state. state is consumed.
func NewNextRecord(v *rng.Variant, state []uint64) NextRecord {
	record := NextRecord{
		State:   append([]uint64(nil), state...),
		Outputs: make([]uint64, NextOutputs),
	}

	for i := range record.Outputs {
		record.Outputs[i] = v.Next(state)
	}

	return record
}

// NewJumpRecord follows two lineages from state, one advanced by the short
// jump and one by the long jump, for JumpIterations steps.
func NewJumpRecord(v *rng.Variant, state []uint64) (JumpRecord, error) {
	record := JumpRecord{
		State: append([]uint64(nil), state...),
		Pairs: make([][2][]uint64, JumpIterations),
	}

	short := append([]uint64(nil), state...)
	long := append([]uint64(nil), state...)

	for i := range record.Pairs {
		if err := v.Jump(short); err != nil {
			return JumpRecord{}, err
		}

		if err := v.LongJump(long); err != nil {
			return JumpRecord{}, err
		}

		record.Pairs[i] = [2][]uint64{
			append([]uint64(nil), short...),
			append([]uint64(nil), long...),
		}
	}

	return record, nil
}

func writeHeader(w *bufio.Writer, v *rng.Variant) {
	_, _ = w.WriteString(v.Name)
	_, _ = w.WriteString(":\n")
}

// GenNextTest writes a header followed by NextRecords next-records.
func (g *Generator) GenNextTest(w io.Writer, v *rng.Variant) error {
	bw := bufio.NewWriter(w)
	writeHeader(bw, v)

	for i := 0; i < NextRecords; i++ {
		record := NewNextRecord(v, g.drawState(v))

		_, _ = bw.WriteString(record.Format(v.WordBits, g.tags))
		_ = bw.WriteByte('\n')
	}

	return bw.Flush()
}

// GenJumpTest writes a header followed by JumpRecords jump-records. Variants
// without jump polynomials fail with rng.ErrNoJump before anything is written.
func (g *Generator) GenJumpTest(w io.Writer, v *rng.Variant) error {
	if !v.CanJump() {
		return fmt.Errorf("%w: %s", rng.ErrNoJump, v.Name)
	}

	bw := bufio.NewWriter(w)
	writeHeader(bw, v)

	for i := 0; i < JumpRecords; i++ {
		record, err := NewJumpRecord(v, g.drawState(v))
		if err != nil {
			return err
		}

		_, _ = bw.WriteString(record.Format(v.WordBits, g.tags))
		_ = bw.WriteByte('\n')
	}

	return bw.Flush()
}
