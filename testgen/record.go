package testgen

import (
	"fmt"
	"strings"

	"github.com/xor-shift/xoshiro-testgen/util"
)

const (
	NextRecords = 16
	NextOutputs = 16

	JumpRecords    = 8
	JumpIterations = 8
)

// TagStyle picks the type labels written in front of fixture literals.
type TagStyle int

const (
	// GoTags writes uint8..uint64, so records paste straight into Go tables.
	GoTags TagStyle = iota
	// ShortTags writes u8..u64.
	ShortTags
)

func ParseTagStyle(s string) (TagStyle, error) {
	switch s {
	case "", "go":
		return GoTags, nil
	case "short":
		return ShortTags, nil
	}

	return GoTags, fmt.Errorf("unknown tag style %q (expected go or short)", s)
}

func (t TagStyle) String() string {
	if t == ShortTags {
		return "short"
	}
	return "go"
}

// Name returns the label for a word of the given width.
func (t TagStyle) Name(bits int) string {
	if t == ShortTags {
		return fmt.Sprintf("u%d", bits)
	}
	return fmt.Sprintf("uint%d", bits)
}

// tagBits maps either style's label back to a width.
func tagBits(name string) (int, bool) {
	switch name {
	case "uint8", "u8":
		return 8, true
	case "uint16", "u16":
		return 16, true
	case "uint32", "u32":
		return 32, true
	case "uint64", "u64":
		return 64, true
	}
	return 0, false
}

// NextRecord is an initial state and the outputs of consecutive next calls.
type NextRecord struct {
	State   []uint64
	Outputs []uint64
}

// JumpRecord is an initial state and, per iteration, the short and long
// lineages after one more jump each.
type JumpRecord struct {
	State []uint64
	Pairs [][2][]uint64
}

// Format renders the record as {[N]T{...}, []T{...}},
func (r NextRecord) Format(bits int, tags TagStyle) string {
	tag := tags.Name(bits)

	return fmt.Sprintf("{[%d]%s{%s}, []%s{%s}},",
		len(r.State), tag, util.JoinWords(r.State, bits),
		tag, util.JoinWords(r.Outputs, bits))
}

// Format renders the record as {[N]T{...}, [][2][N]T{{{...}, {...}}, ...}},
func (r JumpRecord) Format(bits int, tags TagStyle) string {
	tag := tags.Name(bits)
	n := len(r.State)

	pairs := make([]string, len(r.Pairs))
	for i, p := range r.Pairs {
		pairs[i] = fmt.Sprintf("{{%s}, {%s}}", util.JoinWords(p[0], bits), util.JoinWords(p[1], bits))
	}

	return fmt.Sprintf("{[%d]%s{%s}, [][2][%d]%s{%s}},",
		n, tag, util.JoinWords(r.State, bits),
		n, tag, strings.Join(pairs, ", "))
}
