package parse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLines(t *testing.T) {
	v, err := New("1\n2\n3").Lines().Get()
	require.NoError(t, err)
	assert.True(t, v.Equal(List(Str("1"), Str("2"), Str("3"))), "got %s", v)
}

func TestLinesDropsEmpty(t *testing.T) {
	v, err := New("\na\n\nb\n\n").Lines().Get()
	require.NoError(t, err)
	assert.True(t, v.Equal(List(Str("a"), Str("b"))), "got %s", v)
}

func TestLinesNoOpOnList(t *testing.T) {
	v, err := New("a b").Lines().Lines().Get()
	require.NoError(t, err)
	assert.True(t, v.Equal(List(Str("a b"))), "got %s", v)
}

func TestBlocks(t *testing.T) {
	v, err := New("1\n2\n\na,b\n\n#.#\n.#.").Blocks().Get()
	require.NoError(t, err)
	require.Equal(t, 3, v.Len())
	assert.Equal(t, "1\n2", v.At(0).Str())
	assert.Equal(t, "a,b", v.At(1).Str())
	assert.Equal(t, "#.#\n.#.", v.At(2).Str())
}

func TestSplitRecursesThroughNesting(t *testing.T) {
	v, err := New("a,b\nc,d").Lines().Split(",").Get()
	require.NoError(t, err)
	want := List(
		List(Str("a"), Str("b")),
		List(Str("c"), Str("d")),
	)
	assert.True(t, v.Equal(want), "got %s", v)
}

func TestStripPreservesShape(t *testing.T) {
	p := New(" a , b \n c , d ").Lines().Split(",")
	v, err := p.Strip().Get()
	require.NoError(t, err)
	want := List(
		List(Str("a"), Str("b")),
		List(Str("c"), Str("d")),
	)
	assert.True(t, v.Equal(want), "got %s", v)
}

func TestStripIdempotent(t *testing.T) {
	once, err := New("  x  \n y ").Lines().Strip().Get()
	require.NoError(t, err)
	twice, err := New("  x  \n y ").Lines().Strip().Strip().Get()
	require.NoError(t, err)
	assert.True(t, once.Equal(twice))
}

func TestStripPassesNonStringLeaves(t *testing.T) {
	v, err := New("1\n2").Lines().Ints().Strip().Get()
	require.NoError(t, err)
	assert.True(t, v.Equal(List(Int(1), Int(2))), "got %s", v)
}

func TestApplyIdentityPreservesShape(t *testing.T) {
	identity := func(v Value) (Value, error) { return v, nil }
	v, err := New("a b\nc d").Lines().Split(" ").Apply(identity).Get()
	require.NoError(t, err)
	want := List(
		List(Str("a"), Str("b")),
		List(Str("c"), Str("d")),
	)
	assert.True(t, v.Equal(want), "got %s", v)
}

func TestInts(t *testing.T) {
	got, err := New("1\n2\n3").Lines().IntSlice()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestIntsNested(t *testing.T) {
	v, err := New("1,2\n3,4").Lines().Split(",").Ints().Get()
	require.NoError(t, err)
	want := List(
		List(Int(1), Int(2)),
		List(Int(3), Int(4)),
	)
	assert.True(t, v.Equal(want), "got %s", v)
}

func TestIntsInvalidLeafFailsPipeline(t *testing.T) {
	_, err := New("1\ntwo\n3").Lines().Ints().Get()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"two"`)
}

func TestStickyErrorFreezesChain(t *testing.T) {
	p := New("x").Ints()
	require.Error(t, p.Err())
	// Later transforms and terminators keep reporting the original failure.
	_, err := p.Strip().Split(",").Get()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ints")
}

func TestFloats(t *testing.T) {
	v, err := New("1.5\n2").Lines().Floats().Get()
	require.NoError(t, err)
	assert.True(t, v.Equal(List(Float(1.5), Float(2))), "got %s", v)
}

func TestExtractMultipleGroups(t *testing.T) {
	v, err := New("mem[8] = 11\nmem[7] = 101").
		Lines().
		Extract(`mem\[(\d+)\] = (\d+)`).
		Get()
	require.NoError(t, err)
	want := List(
		List(Tuple(Str("8"), Str("11"))),
		List(Tuple(Str("7"), Str("101"))),
	)
	assert.True(t, v.Equal(want), "got %s", v)
}

func TestExtractSingleGroup(t *testing.T) {
	v, err := New("x=3 y=7").Extract(`=(\d+)`).Get()
	require.NoError(t, err)
	assert.True(t, v.Equal(List(Str("3"), Str("7"))), "got %s", v)
}

func TestExtractNoGroups(t *testing.T) {
	v, err := New("12 ab 34").Extract(`\d+`).Get()
	require.NoError(t, err)
	assert.True(t, v.Equal(List(Str("12"), Str("34"))), "got %s", v)
}

func TestExtractZeroMatchesYieldsEmptyList(t *testing.T) {
	v, err := New("abc\n123").Lines().Extract(`z(\d)`).Get()
	require.NoError(t, err)
	want := List(List(), List())
	assert.True(t, v.Equal(want), "got %s", v)
}

func TestExtractBadPattern(t *testing.T) {
	_, err := New("abc").Extract(`(`).Get()
	require.Error(t, err)
}

func TestFindAll(t *testing.T) {
	v, err := New("a1 b22 c333").FindAll(`\d+`).Get()
	require.NoError(t, err)
	assert.True(t, v.Equal(List(Str("1"), Str("22"), Str("333"))), "got %s", v)
}

func TestMapAndFilterCompositeChain(t *testing.T) {
	sum := func(v Value) (Value, error) {
		total := 0
		for _, item := range v.Items() {
			total += item.Int()
		}
		return Int(total), nil
	}
	got, err := New("1000\n2000\n\n4000\n\n5000\n6000").
		Blocks().
		Split("\n").
		Ints().
		Map(sum).
		Filter(func(v Value) bool { return v.Int() > 4000 }).
		IntSlice()
	require.NoError(t, err)
	assert.Equal(t, []int{11000}, got)
}

func TestFlatten(t *testing.T) {
	got, err := New("1 2\n3 4").Lines().Split(" ").Flatten().Ints().IntSlice()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, got)
}

func TestFlattenKeepsLeafItems(t *testing.T) {
	p := New("ignored")
	p.value = List(Int(1), List(Int(2), Int(3)))
	got, err := p.Flatten().IntSlice()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestGridSingle(t *testing.T) {
	g, err := New("#.#\n.#.").Grid("")
	require.NoError(t, err)
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, "#", g.Get(0, 0, ""))
	assert.Equal(t, ".", g.Get(1, 0, ""))
}

func TestGridWithDelimiter(t *testing.T) {
	g, err := New("1,2,3\n4,5,6").Grid(",")
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, "5", g.Get(1, 1, ""))
}

func TestGridsOnePerBlock(t *testing.T) {
	input := "ab\ncd\n\n..\n..\n\n#.#\n.#.\n###"
	grids, err := New(input).Blocks().Grids("")
	require.NoError(t, err)
	require.Len(t, grids, 3)

	third := grids[2]
	want := [][]string{
		{"#", ".", "#"},
		{".", "#", "."},
		{"#", "#", "#"},
	}
	assert.Equal(t, want, third.Rows())
}

func TestGridOnBlocksIsAnError(t *testing.T) {
	_, err := New("ab\n\ncd").Blocks().Grid("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Grids")
}

func TestIntMatrix(t *testing.T) {
	m, err := New("12\n34").IntMatrix("")
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2}, {3, 4}}, m)
}

func TestIntMatrices(t *testing.T) {
	ms, err := New("1 2\n3 4\n\n5 6\n7 8").Blocks().IntMatrices(" ")
	require.NoError(t, err)
	require.Len(t, ms, 2)
	assert.Equal(t, [][]int{{5, 6}, {7, 8}}, ms[1])
}

func TestIntMatrixRaggedRows(t *testing.T) {
	_, err := New("1,2,3\n4,5").IntMatrix(",")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRagged)
}

func TestValueString(t *testing.T) {
	v := List(Tuple(Str("8"), Int(11)))
	assert.Equal(t, `[("8" 11)]`, v.String())
}

func TestStringsRejectsMixedList(t *testing.T) {
	v, err := New("1\n2").Lines().Ints().Get()
	require.NoError(t, err)
	_, serr := v.Strings()
	require.Error(t, serr)
	assert.True(t, strings.Contains(serr.Error(), "not a string"))
}
