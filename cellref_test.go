package xlquick

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColToName(t *testing.T) {
	tests := []struct {
		col  int
		want string
	}{
		{0, "A"},
		{25, "Z"},
		{26, "AA"},
		{27, "AB"},
		{701, "ZZ"},
		{702, "AAA"},
		{16383, "XFD"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ColToName(tt.col), "col %d", tt.col)
	}
}

func TestColToName_RoundTrip(t *testing.T) {
	seen := make(map[string]bool)
	for col := 0; col < 20000; col++ {
		name := ColToName(col)
		require.False(t, seen[name], "duplicate name %q", name)
		seen[name] = true
		back, err := NameToCol(name)
		if col >= 16384 {
			assert.Error(t, err)
			continue
		}
		require.NoError(t, err)
		require.Equal(t, col, back)
	}
}

func TestCellName(t *testing.T) {
	assert.Equal(t, "A1", CellName(0, 0))
	assert.Equal(t, "C5", CellName(4, 2))
	assert.Equal(t, "AB10", CellName(9, 27))
}

func TestParseCellRef(t *testing.T) {
	ref, err := ParseCellRef("Sheet1!B5")
	require.NoError(t, err)
	assert.Equal(t, NewCellRef("Sheet1", 4, 1), ref)

	ref, err = ParseCellRef("$A$1")
	require.NoError(t, err)
	assert.Equal(t, NewCellRef("", 0, 0), ref)

	ref, err = ParseCellRef("'Q1 Data'!AZ10")
	require.NoError(t, err)
	assert.Equal(t, "Q1 Data", ref.Sheet)
	assert.Equal(t, 9, ref.Row)
	assert.Equal(t, 51, ref.Col)
}

func TestParseCellRef_Invalid(t *testing.T) {
	for _, s := range []string{"", "A", "123", "Sheet1!", "A0"} {
		_, err := ParseCellRef(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestCellRef_String(t *testing.T) {
	assert.Equal(t, "Sheet1!B2", NewCellRef("Sheet1", 1, 1).String())
	assert.Equal(t, "'My Sheet'!B2", NewCellRef("My Sheet", 1, 1).String())
	assert.Equal(t, "B2", NewCellRef("", 1, 1).String())
}

func TestQuoteSheet(t *testing.T) {
	assert.Equal(t, "Sheet1", QuoteSheet("Sheet1"))
	assert.Equal(t, "'2024'", QuoteSheet("2024"))
	assert.Equal(t, "'Bob''s'", QuoteSheet("Bob's"))
}

func TestParseAreaRef(t *testing.T) {
	area, err := ParseAreaRef("Sheet1!C5:A1")
	require.NoError(t, err)
	assert.Equal(t, NewCellRef("Sheet1", 0, 0), area.First)
	assert.Equal(t, NewCellRef("Sheet1", 4, 2), area.Last)
	assert.Equal(t, Size{Width: 3, Height: 5}, area.Size())
	assert.Equal(t, 15, area.CellCount())
	assert.Equal(t, "Sheet1!A1:C5", area.String())
	assert.Equal(t, "A1:C5", area.CellRange())

	single, err := ParseAreaRef("B2")
	require.NoError(t, err)
	assert.Equal(t, "B2", single.CellRange())
	assert.Equal(t, 1, single.CellCount())
}

func TestAreaRef_Intersect(t *testing.T) {
	a := NewAreaRef(NewCellRef("S", 0, 0), NewCellRef("S", 9, 3))
	b := NewAreaRef(NewCellRef("S", 5, 2), NewCellRef("S", 20, 8))
	got, ok := a.Intersect(b)
	require.True(t, ok)
	assert.Equal(t, "S!C6:D10", got.String())

	_, ok = a.Intersect(NewAreaRef(NewCellRef("S", 10, 0), NewCellRef("S", 12, 0)))
	assert.False(t, ok)
}

func TestAreaRef_Contains(t *testing.T) {
	a := AreaOf("S", 1, 1, Size{Width: 2, Height: 2})
	assert.True(t, a.Contains(NewCellRef("S", 2, 2)))
	assert.False(t, a.Contains(NewCellRef("S", 3, 2)))
	assert.False(t, a.Contains(NewCellRef("T", 1, 1)))
}

func TestParseSelection(t *testing.T) {
	sel, err := ParseSelection("Sheet1!B:B")
	require.NoError(t, err)
	assert.True(t, sel.EntireColumn)
	assert.False(t, sel.EntireRow)
	assert.Equal(t, 1, sel.Area.First.Col)
	assert.Equal(t, 1, sel.Area.Last.Col)
	assert.Equal(t, "Sheet1!B:B", sel.String())

	sel, err = ParseSelection("3:7")
	require.NoError(t, err)
	assert.True(t, sel.EntireRow)
	assert.Equal(t, 2, sel.Area.First.Row)
	assert.Equal(t, 6, sel.Area.Last.Row)
	assert.Equal(t, "3:7", sel.String())

	sel, err = ParseSelection("'Q1 Data'!$A$1:$C$3")
	require.NoError(t, err)
	assert.False(t, sel.EntireColumn || sel.EntireRow)
	assert.Equal(t, "'Q1 Data'!A1:C3", sel.String())

	_, err = ParseSelection("nonsense!!")
	assert.Error(t, err)
}

func TestSafeSheetName(t *testing.T) {
	assert.Equal(t, "a_b_c", SafeSheetName("a/b?c"))
	assert.Len(t, []rune(SafeSheetName("abcdefghijklmnopqrstuvwxyz0123456789")), 31)
}
