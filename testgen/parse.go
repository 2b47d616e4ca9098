package testgen

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var ErrMalformed = errors.New("malformed fixture")

// Section is everything below one "<variant>:" header.
type Section struct {
	Variant  string
	WordBits int

	Next []NextRecord
	Jump []JumpRecord
}

type fixtureFile struct {
	Entries []*fixtureEntry `parser:"@@*"`
}

type fixtureEntry struct {
	Header string         `parser:"  @Ident \":\""`
	Record *fixtureRecord `parser:"| @@ \",\"?"`
}

// fixtureRecord is {<state>, <results>}.
type fixtureRecord struct {
	Pos lexer.Position

	State  *fixtureLiteral `parser:"\"{\" @@ \",\""`
	Result *fixtureLiteral `parser:"@@ \",\"? \"}\""`
}

// fixtureLiteral is a brace list, typed ([N]uint64{...}) or not ({...}).
type fixtureLiteral struct {
	Pos lexer.Position

	Type  *fixtureType      `parser:"@@?"`
	Items []*fixtureElement `parser:"\"{\" ( @@ \",\"? )* \"}\""`
}

type fixtureType struct {
	Dims []*fixtureDim `parser:"@@*"`
	Elem string        `parser:"@Ident"`
}

type fixtureDim struct {
	Open string `parser:"@\"[\""`
	Len  string `parser:"@Int? \"]\""`
}

type fixtureElement struct {
	Pos lexer.Position

	Number *string         `parser:"  @Int"`
	List   *fixtureLiteral `parser:"| @@"`
}

var fixtureLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `0[xX][0-9a-zA-Z_]+|[0-9][0-9a-zA-Z_]*`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `[{}\[\],:]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var fixtureParser = participle.MustBuild[fixtureFile](
	participle.Lexer(fixtureLexer),
	participle.Elide("Whitespace"),
)

func malformed(pos lexer.Position, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrMalformed, pos.Line, fmt.Sprintf(format, args...))
}

func (t *fixtureType) String() string {
	var sb strings.Builder
	for _, d := range t.Dims {
		sb.WriteString("[" + d.Len + "]")
	}
	sb.WriteString(t.Elem)
	return sb.String()
}

func (t *fixtureType) bits() (int, bool) {
	return tagBits(t.Elem)
}

func words(lit *fixtureLiteral, bits int) ([]uint64, error) {
	ret := make([]uint64, len(lit.Items))

	for i, item := range lit.Items {
		if item.Number == nil {
			return nil, malformed(item.Pos, "expected a word")
		}

		v, err := strconv.ParseUint(*item.Number, 0, 64)
		if err != nil {
			return nil, malformed(item.Pos, "bad number %q", *item.Number)
		}
		if bits < 64 && v>>bits != 0 {
			return nil, malformed(item.Pos, "0x%X does not fit in %d bits", v, bits)
		}

		ret[i] = v
	}

	return ret, nil
}

func addRecord(sect *Section, rec *fixtureRecord) error {
	if sect == nil {
		return malformed(rec.Pos, "record before any variant header")
	}

	stateLit, resultLit := rec.State, rec.Result
	if stateLit.Type == nil || resultLit.Type == nil {
		return malformed(rec.Pos, "a record is {<state>, <results>} with typed lists")
	}

	stateType, resultType := stateLit.Type.String(), resultLit.Type.String()

	bits, ok := stateLit.Type.bits()
	if !ok {
		return malformed(rec.Pos, "unknown word type %q", stateType)
	}
	if want := fmt.Sprintf("[%d]", len(stateLit.Items)); !strings.HasPrefix(stateType, want) {
		return malformed(rec.Pos, "state type %q does not match %d words", stateType, len(stateLit.Items))
	}
	if sect.WordBits == 0 {
		sect.WordBits = bits
	} else if sect.WordBits != bits {
		return malformed(rec.Pos, "%d-bit record in a %d-bit section", bits, sect.WordBits)
	}

	state, err := words(stateLit, bits)
	if err != nil {
		return err
	}

	if resultBits, ok := resultLit.Type.bits(); !ok || resultBits != bits {
		return malformed(rec.Pos, "result type %q does not match state type %q", resultType, stateType)
	}

	if strings.HasPrefix(resultType, "[][2]") {
		record := JumpRecord{State: state}

		for _, item := range resultLit.Items {
			if item.List == nil || len(item.List.Items) != 2 {
				return malformed(item.Pos, "a jump result is {{<short>}, {<long>}}")
			}

			var pair [2][]uint64
			for i, half := range item.List.Items {
				if half.List == nil {
					return malformed(half.Pos, "expected a list of words")
				}
				if pair[i], err = words(half.List, bits); err != nil {
					return err
				}
			}
			record.Pairs = append(record.Pairs, pair)
		}

		sect.Jump = append(sect.Jump, record)
		return nil
	}

	outputs, err := words(resultLit, bits)
	if err != nil {
		return err
	}

	sect.Next = append(sect.Next, NextRecord{State: state, Outputs: outputs})
	return nil
}

// Parse reads fixture text back into sections. Header lines, blank lines and
// trailing commas are accepted; both tag styles are understood.
func Parse(r io.Reader) ([]Section, error) {
	file, err := fixtureParser.Parse("", r)
	if err != nil {
		var perr participle.Error
		if errors.As(err, &perr) {
			return nil, malformed(perr.Position(), "%s", perr.Message())
		}
		return nil, fmt.Errorf("%w: %s", ErrMalformed, err)
	}

	var out []Section
	for _, entry := range file.Entries {
		if entry.Record == nil {
			out = append(out, Section{Variant: entry.Header})
			continue
		}

		var sect *Section
		if len(out) != 0 {
			sect = &out[len(out)-1]
		}
		if err = addRecord(sect, entry.Record); err != nil {
			return nil, err
		}
	}

	return out, nil
}
