package testgen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/seehuhn/mt19937"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xor-shift/xoshiro-testgen/util/rng"
)

// cycleSource hands out vals over and over, so every record of a run starts
// from the same state.
type cycleSource struct {
	vals []uint64
	i    int
}

func (c *cycleSource) Uint64() uint64 {
	v := c.vals[c.i%len(c.vals)]
	c.i++
	return v
}

const (
	goldenXoroshiro128PPNext = "{[2]uint64{0x0000000000000001, 0x0000000000000002}, []uint64{0x0000000000060001, 0x000260C000660007, 0x180ACC04718606D3, 0x9E226D35036FC4C7, 0x849BC9AC6B960BE4, 0x31C5870FC130361B, 0x17790D7CD5B2E061, 0x94FC9BB11DA24A91, 0xD32B1882A2515CDF, 0xC5B860879A3F7E53, 0x799C7D57040AEAEC, 0xE6E2A42652C15B3C, 0xCE02863C1F0D296E, 0x939D522D09FDFD1B, 0xD49019C455FCA558, 0xBAD218E12BF612D8}},"

	goldenXoroshiro64SNext = "{[2]uint32{0x00000001, 0x00000002}, []uint32{0x9E3779BB, 0x1380CF31, 0xF233F6B9, 0xFDE6B3B9, 0x0F9C9E6C, 0x0A055D19, 0x20F23337, 0x63B1CF93, 0x3D746C32, 0xA43AC7DA, 0xF46C537A, 0x535B07AA, 0xE9B24C3E, 0x7CCD9A17, 0xDB643260, 0xEBA2A089}},"

	goldenXoroshiro128PPJump = "{[2]uint64{0x0000000000000001, 0x0000000000000002}, [][2][2]uint64{{{0x77B2EAD123DDE4BB, 0xF60F09E0665F8D42}, {0x1ECB960BEFAF39E9, 0x85FE3812041D7A83}}, {{0xEA1675003F5956D2, 0xB2B37B23E9E4F80E}, {0x162063D405130762, 0xDFEF63FE131941D6}}, {{0xC96565D710A9CAF9, 0x0D3AF88A70DC29AA}, {0x98BD22429CDEA9A8, 0x4502D8EF53F3AB9D}}, {{0x76042CD72C18DF2A, 0xCA6CB2E3FF14E023}, {0x945CA1276FA8F20A, 0x79E5EB18573EF1FA}}, {{0x590175386B7418BD, 0xF1F0416D95BC136D}, {0xFF3C2BF00C31C168, 0x06E09D7F6E3D00EE}}, {{0xE23EF95B5C93DCAB, 0x5E1B0D77F71C0848}, {0x66161A57BD8F77E5, 0xF0BDCCED5301B117}}, {{0xFB5D9714FF777092, 0xC22FAC1BF14A79CB}, {0xAC6E552AC737BBC0, 0xA46EB538EF3E4E60}}, {{0x41392B4E4487422C, 0x03290CA071D087FA}, {0x85D84F2DBDB5E8FE, 0x1CAC4FB8557B1215}}}},"

	goldenXoshiro256SSNextShort = "{[4]u64{0x0000000000000001, 0x0000000000000002, 0x0000000000000003, 0x0000000000000004}, []u64{0x0000000000002D00, 0x0000000000000000, 0x000000005A007080, 0x10E0000000009D80, 0x10E0B61CE1009D80, 0x0870021CE143AD00, 0xE071C3C2E143F089, 0x75A1690EF7A20380, 0x9309685B465C23F9, 0x284F3CC2E13E3C88, 0xC8D749005A413820, 0x1194B410FEF20904, 0xB54A54470263B28C, 0x959E65495DAF641C, 0xE561CCECEA17F527, 0xD7713C78965A463C}},"
)

func lines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func TestNextRecordFormat(t *testing.T) {
	v := rng.ByKind(rng.Xoroshiro128PP)
	state := []uint64{1, 2}

	record := NewNextRecord(v, state)
	assert.Equal(t, goldenXoroshiro128PPNext, record.Format(v.WordBits, GoTags))

	// the caller's state is consumed
	assert.NotEqual(t, []uint64{1, 2}, state)

	v = rng.ByKind(rng.Xoshiro256SS)
	record = NewNextRecord(v, []uint64{1, 2, 3, 4})
	assert.Equal(t, goldenXoshiro256SSNextShort, record.Format(v.WordBits, ShortTags))
}

func TestJumpRecordFormat(t *testing.T) {
	v := rng.ByKind(rng.Xoroshiro128PP)
	state := []uint64{1, 2}

	record, err := NewJumpRecord(v, state)
	require.NoError(t, err)
	assert.Equal(t, goldenXoroshiro128PPJump, record.Format(v.WordBits, GoTags))
	assert.Equal(t, []uint64{1, 2}, state)

	_, err = NewJumpRecord(rng.ByKind(rng.Xoroshiro64S), []uint64{1, 2})
	assert.ErrorIs(t, err, rng.ErrNoJump)
}

func TestGenNextTest(t *testing.T) {
	var buf bytes.Buffer
	gen := NewGenerator(&cycleSource{vals: []uint64{1, 2}}, GoTags)

	require.NoError(t, gen.GenNextTest(&buf, rng.ByKind(rng.Xoroshiro128PP)))

	out := lines(buf.String())
	require.Len(t, out, 1+NextRecords)
	assert.Equal(t, "xoroshiro128pp:", out[0])
	for _, line := range out[1:] {
		assert.Equal(t, goldenXoroshiro128PPNext, line)
	}
}

func TestGenNextTestMasksNarrowWords(t *testing.T) {
	var buf bytes.Buffer
	gen := NewGenerator(&cycleSource{vals: []uint64{0xFFFFFFFF00000001, 0xABCDEF0000000002}}, GoTags)

	require.NoError(t, gen.GenNextTest(&buf, rng.ByKind(rng.Xoroshiro64S)))

	out := lines(buf.String())
	require.Len(t, out, 1+NextRecords)
	assert.Equal(t, "xoroshiro64s:", out[0])
	assert.Equal(t, goldenXoroshiro64SNext, out[1])
}

func TestGenJumpTest(t *testing.T) {
	var buf bytes.Buffer
	gen := NewGenerator(&cycleSource{vals: []uint64{1, 2}}, GoTags)

	require.NoError(t, gen.GenJumpTest(&buf, rng.ByKind(rng.Xoroshiro128PP)))

	out := lines(buf.String())
	require.Len(t, out, 1+JumpRecords)
	assert.Equal(t, "xoroshiro128pp:", out[0])
	assert.Equal(t, goldenXoroshiro128PPJump, out[1])

	buf.Reset()
	err := gen.GenJumpTest(&buf, rng.ByKind(rng.Xoroshiro64S))
	assert.ErrorIs(t, err, rng.ErrNoJump)
	assert.Zero(t, buf.Len())
}

func TestTagStyle(t *testing.T) {
	style, err := ParseTagStyle("short")
	require.NoError(t, err)
	assert.Equal(t, ShortTags, style)
	assert.Equal(t, "u32", style.Name(32))
	assert.Equal(t, "short", style.String())

	style, err = ParseTagStyle("")
	require.NoError(t, err)
	assert.Equal(t, GoTags, style)
	assert.Equal(t, "uint16", style.Name(16))

	_, err = ParseTagStyle("rust")
	assert.Error(t, err)
}

func TestEntropySource(t *testing.T) {
	a, err := NewEntropySource()
	require.NoError(t, err)
	b, err := NewEntropySource()
	require.NoError(t, err)

	// two independently seeded engines agreeing on four draws would mean
	// the seed is not coming from the OS
	same := 0
	for i := 0; i < 4; i++ {
		if a.Uint64() == b.Uint64() {
			same++
		}
	}
	assert.Less(t, same, 4)
}

func TestEntropyEngineReference(t *testing.T) {
	mt := mt19937.New()
	mt.Seed(5489)
	assert.Equal(t, uint64(14514284786278117030), mt.Uint64())

	for i := 1; i < 9999; i++ {
		mt.Uint64()
	}
	// the 10000th output, as required of std::mt19937_64
	assert.Equal(t, uint64(9981545732273789042), mt.Uint64())
}
