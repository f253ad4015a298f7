package xlquick

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare_Scenario(t *testing.T) {
	a := GridOf([]any{"x", "y"}, []any{"y", "x"})
	b := GridOf([]any{"x", "z"}, []any{"y", "x"})

	res := Compare(a, b)
	assert.False(t, res.Identical)
	require.Len(t, res.Entries, 1)
	d := res.Entries[0]
	assert.Equal(t, "B1", d.Label)
	assert.Equal(t, 0, d.Row)
	assert.Equal(t, 1, d.Col)
	assert.Equal(t, Text("y"), d.ValueA)
	assert.Equal(t, Text("z"), d.ValueB)
}

func TestCompare_Identical(t *testing.T) {
	grids := []Grid{
		nil,
		GridOf([]any{1, "a", nil}),
		GridOf([]any{"x"}, []any{nil, 2}),
	}
	for _, g := range grids {
		res := Compare(g, g)
		assert.True(t, res.Identical)
		assert.Empty(t, res.Entries)
	}
}

func TestCompare_Symmetric(t *testing.T) {
	a := GridOf([]any{1, "a", nil}, []any{"b", 2})
	b := GridOf([]any{1, "A"}, []any{"b", 3, "extra"}, []any{"new"})

	ab := Compare(a, b)
	ba := Compare(b, a)
	require.Len(t, ba.Entries, len(ab.Entries))
	for i := range ab.Entries {
		assert.Equal(t, ab.Entries[i].Label, ba.Entries[i].Label)
		assert.Equal(t, ab.Entries[i].ValueA, ba.Entries[i].ValueB)
		assert.Equal(t, ab.Entries[i].ValueB, ba.Entries[i].ValueA)
	}
}

func TestCompare_RaggedAndTyped(t *testing.T) {
	a := GridOf([]any{1, nil})
	b := GridOf([]any{"1", ""}, []any{nil})

	res := Compare(a, b)
	assert.Equal(t, 2, res.Rows)
	assert.Equal(t, 2, res.Cols)
	require.Len(t, res.Entries, 1, "number 1 and text 1 differ; empty and blank text do not")
	assert.Equal(t, "A1", res.Entries[0].Label)
}

func TestDiffEntry_Display(t *testing.T) {
	d := DiffEntry{ValueA: Empty(), ValueB: Number(0)}
	assert.Equal(t, Text(EmptyMarker), d.DisplayA())
	assert.Equal(t, Number(0), d.DisplayB(), "zero is data, not empty")
}

func TestFindMissing_Scenario(t *testing.T) {
	m := FindMissing(GridOf([]any{1, 2, 3}), GridOf([]any{2, 3, 4}))
	assert.Equal(t, []Value{Number(1)}, m.InSecond)
	assert.Equal(t, []Value{Number(4)}, m.InFirst)
	assert.False(t, m.Empty())
}

func TestFindMissing_TrimsAndDedupes(t *testing.T) {
	a := GridOf([]any{" apple", "pear", "pear"}, []any{nil, "", "kiwi"})
	b := GridOf([]any{"apple "}, []any{"plum"}, []any{"plum"})

	m := FindMissing(a, b)
	assert.Equal(t, []Value{Text("pear"), Text("kiwi")}, m.InSecond)
	assert.Equal(t, []Value{Text("plum")}, m.InFirst)

	assert.True(t, FindMissing(a, a).Empty())
}

func TestNewCompareReport(t *testing.T) {
	entries := Compare(
		GridOf([]any{"x", "y"}, []any{nil, 1}),
		GridOf([]any{"x", "z"}, []any{"w", 1}),
	).Entries
	rep := NewCompareReport(entries, "Jan", "Feb")

	assert.Equal(t, []string{"Jan Cell Contains", "Reference", "Feb Cell Contains", "Reference"}, rep.Header)
	require.Equal(t, 2, rep.Rows.Rows())
	assert.Equal(t, []Value{Text("y"), Text("B1"), Text("z"), Text("B1")}, rep.Rows[0])
	assert.Equal(t, []Value{Text(EmptyMarker), Text("A2"), Text("w"), Text("A2")}, rep.Rows[1])

	require.Len(t, rep.Links, 4)
	assert.Equal(t, ReportLink{Row: 0, Col: 1, Link: HyperlinkValue{URL: "#'Jan'!B1", Display: "B1"}}, rep.Links[0])
	assert.Equal(t, ReportLink{Row: 0, Col: 3, Link: HyperlinkValue{URL: "#'Feb'!B1", Display: "B1"}}, rep.Links[1])
}

func TestNewMissingReport(t *testing.T) {
	m := Missing{InSecond: []Value{Number(1)}, InFirst: []Value{Number(4), Number(5)}}
	rep := NewMissingReport(m, "A1:A3", "B1:B3")

	assert.Equal(t, []string{"Missing in A1:A3", "Missing in B1:B3"}, rep.Header)
	assert.True(t, GridOf([]any{4, 1}, []any{5, nil}).Equal(rep.Rows))
	assert.Empty(t, rep.Links)
	assert.Equal(t, 2, rep.Width())
}
