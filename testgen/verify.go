package testgen

import (
	"errors"
	"fmt"

	"github.com/xor-shift/xoshiro-testgen/util"
	"github.com/xor-shift/xoshiro-testgen/util/rng"
)

var ErrMismatch = errors.New("fixture does not match the generator")

func equalWords(a, b []uint64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Verify replays every record of every section against the engine.
func Verify(sections []Section) error {
	for i := range sections {
		if err := VerifySection(&sections[i]); err != nil {
			return fmt.Errorf("section %d (%s): %w", i, sections[i].Variant, err)
		}
	}

	return nil
}

func VerifySection(s *Section) error {
	v, err := rng.Lookup(s.Variant)
	if err != nil {
		return err
	}

	if s.WordBits != 0 && s.WordBits != v.WordBits {
		return fmt.Errorf("%w: %d-bit words, %s uses %d", ErrMalformed, s.WordBits, v.Name, v.WordBits)
	}

	for i, record := range s.Next {
		if err := verifyNext(v, record); err != nil {
			return fmt.Errorf("next record %d: %w", i, err)
		}
	}

	if len(s.Jump) != 0 && !v.CanJump() {
		return fmt.Errorf("%w: %s", rng.ErrNoJump, v.Name)
	}

	for i, record := range s.Jump {
		if err := verifyJump(v, record); err != nil {
			return fmt.Errorf("jump record %d: %w", i, err)
		}
	}

	return nil
}

func verifyNext(v *rng.Variant, record NextRecord) error {
	if len(record.State) != v.Arity {
		return fmt.Errorf("%w: %d state words, expected %d", ErrMalformed, len(record.State), v.Arity)
	}

	if len(record.Outputs) != NextOutputs {
		return fmt.Errorf("%w: %d outputs, expected %d", ErrMalformed, len(record.Outputs), NextOutputs)
	}

	expected := NewNextRecord(v, append([]uint64(nil), record.State...))

	for i, got := range record.Outputs {
		if got != expected.Outputs[i] {
			return fmt.Errorf("%w: bad output %d (got: %s, expected: %s)", ErrMismatch, i,
				util.FormatWord(got, v.WordBits),
				util.FormatWord(expected.Outputs[i], v.WordBits))
		}
	}

	return nil
}

func verifyJump(v *rng.Variant, record JumpRecord) error {
	if len(record.State) != v.Arity {
		return fmt.Errorf("%w: %d state words, expected %d", ErrMalformed, len(record.State), v.Arity)
	}

	if len(record.Pairs) != JumpIterations {
		return fmt.Errorf("%w: %d jump pairs, expected %d", ErrMalformed, len(record.Pairs), JumpIterations)
	}

	expected, err := NewJumpRecord(v, record.State)
	if err != nil {
		return err
	}

	prevShort, prevLong := record.State, record.State

	for i, pair := range record.Pairs {
		if equalWords(pair[0], pair[1]) {
			return fmt.Errorf("%w: lineages collide at iteration %d", ErrMismatch, i)
		}

		if err := checkCrossed(v, prevShort, prevLong, pair); err != nil {
			return fmt.Errorf("%w at iteration %d", err, i)
		}
		prevShort, prevLong = pair[0], pair[1]

		for j, name := range [2]string{"short", "long"} {
			if !equalWords(pair[j], expected.Pairs[i][j]) {
				return fmt.Errorf("%w: bad %s lineage at iteration %d (got: {%s}, expected: {%s})", ErrMismatch, name, i,
					util.JoinWords(pair[j], v.WordBits),
					util.JoinWords(expected.Pairs[i][j], v.WordBits))
			}
		}
	}

	return nil
}

// checkCrossed rejects a lineage value that the other lineage's jump would
// have produced from the same predecessor.
func checkCrossed(v *rng.Variant, prevShort, prevLong []uint64, pair [2][]uint64) error {
	crossShort := append([]uint64(nil), prevShort...)
	if err := v.LongJump(crossShort); err != nil {
		return err
	}
	if equalWords(crossShort, pair[0]) {
		return fmt.Errorf("%w: short lineage took a long jump", ErrMismatch)
	}

	crossLong := append([]uint64(nil), prevLong...)
	if err := v.Jump(crossLong); err != nil {
		return err
	}
	if equalWords(crossLong, pair[1]) {
		return fmt.Errorf("%w: long lineage took a short jump", ErrMismatch)
	}

	return nil
}
