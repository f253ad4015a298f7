package xlquick

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApp_CompareWorksheets(t *testing.T) {
	h := newTestHost(t, []any{"x", "y"}, []any{"y", "x"})
	addTestSheet(t, h, "B", []any{"x", "z"}, []any{"y", "x"}, []any{nil, 5})
	app := newTestApp(t, h, "")

	res := app.Run(ActionCompareWorksheets, Params{SourceA: "Sheet1", SourceB: "B", Highlight: true})
	require.True(t, res.Success, res.Message)
	assert.Equal(t, "Report created with 2 differences.", res.Message)

	rep := DefaultCompareReportSheet
	assert.Equal(t, rep, h.ActiveSheet())
	assert.Equal(t, Text("Sheet1 Cell Contains"), cell(t, h, rep, "A1"))
	assert.Equal(t, []Value{Text("y"), Text("B1"), Text("z"), Text("B1")}, []Value{
		cell(t, h, rep, "A2"), cell(t, h, rep, "B2"), cell(t, h, rep, "C2"), cell(t, h, rep, "D2"),
	})
	assert.Equal(t, Text(EmptyMarker), cell(t, h, rep, "A3"))
	assert.Equal(t, Number(5), cell(t, h, rep, "C3"))

	for _, sheet := range []string{"Sheet1", "B"} {
		color, err := h.FillColor(NewCellRef(sheet, 0, 1))
		require.NoError(t, err)
		assert.Equal(t, DefaultHighlightColor, color, sheet)
	}
	color, err := h.FillColor(NewCellRef("Sheet1", 0, 0))
	require.NoError(t, err)
	assert.Empty(t, color)
}

func TestApp_CompareWorksheets_Identical(t *testing.T) {
	h := newTestHost(t, []any{"a", 1})
	addTestSheet(t, h, "Copy", []any{"a", 1})
	app := newTestApp(t, h, "")

	res := app.Run(ActionCompareWorksheets, Params{SourceA: "Sheet1", SourceB: "Copy"})
	require.True(t, res.Success, res.Message)
	assert.Equal(t, "The sheets are identical!", res.Message)
	assert.False(t, h.HasSheet(DefaultCompareReportSheet))
}

func TestApp_CompareWorksheets_Errors(t *testing.T) {
	h := newTestHost(t, []any{"a"})
	addTestSheet(t, h, "Blank")
	app := newTestApp(t, h, "")

	res := app.Run(ActionCompareWorksheets, Params{SourceA: "Sheet1"})
	assert.ErrorIs(t, res.Err, ErrBadParameter)

	res = app.Run(ActionCompareWorksheets, Params{SourceA: "Sheet1", SourceB: "Nope"})
	assert.ErrorIs(t, res.Err, ErrSheetNotFound)

	res = app.Run(ActionCompareWorksheets, Params{SourceA: "Sheet1", SourceB: "Blank"})
	require.True(t, res.Success)
	assert.Equal(t, "One or both sheets are empty.", res.Message)
}

func TestApp_CompareWorksheets_HighlightLimit(t *testing.T) {
	h := newTestHost(t, []any{1, 2, 3})
	addTestSheet(t, h, "B", []any{4, 5, 6})
	app := newTestApp(t, h, "", WithHighlightLimit(2), WithLinkLimit(0))

	res := app.Run(ActionCompareWorksheets, Params{SourceA: "Sheet1", SourceB: "B", Highlight: true})
	require.True(t, res.Success, res.Message)
	assert.Equal(t, "Report created with 3 differences. Hyperlinks skipped for performance with large datasets."+
		" Highlighted the first 2 differences.", res.Message)

	color, err := h.FillColor(NewCellRef("B", 0, 2))
	require.NoError(t, err)
	assert.Empty(t, color)
}

func TestApp_FindMissingData(t *testing.T) {
	h := newTestHost(t,
		[]any{1, 2},
		[]any{2, 3},
		[]any{3, 4},
	)
	app := newTestApp(t, h, "", WithReportSheets("", "Missing"))

	res := app.Run(ActionFindMissingData, Params{SourceA: "A1:A3", SourceB: "Sheet1!$B$1:$B$3", Highlight: true})
	require.True(t, res.Success, res.Message)
	assert.Equal(t, "Missing data report created: 1 values missing from Sheet1!A1:A3, 1 missing from Sheet1!B1:B3.", res.Message)

	assert.Equal(t, Text("Missing in Sheet1!A1:A3"), cell(t, h, "Missing", "A1"))
	assert.Equal(t, Text("Missing in Sheet1!B1:B3"), cell(t, h, "Missing", "B1"))
	assert.Equal(t, Number(4), cell(t, h, "Missing", "A2"))
	assert.Equal(t, Number(1), cell(t, h, "Missing", "B2"))

	color, err := h.FillColor(NewCellRef("Sheet1", 0, 0))
	require.NoError(t, err)
	assert.Equal(t, DefaultHighlightColor, color)
	color, err = h.FillColor(NewCellRef("Sheet1", 2, 1))
	require.NoError(t, err)
	assert.Equal(t, DefaultHighlightColor, color)
	color, err = h.FillColor(NewCellRef("Sheet1", 1, 0))
	require.NoError(t, err)
	assert.Empty(t, color)
}

func TestApp_FindMissingData_SheetsAndErrors(t *testing.T) {
	h := newTestHost(t, []any{"a"}, []any{"b"})
	addTestSheet(t, h, "Other", []any{" a "}, []any{"b"})
	app := newTestApp(t, h, "")

	res := app.Run(ActionFindMissingData, Params{SourceA: "Sheet1", SourceB: "Other"})
	require.True(t, res.Success, res.Message)
	assert.Equal(t, "No missing data found between ranges.", res.Message)

	res = app.Run(ActionFindMissingData, Params{SourceA: "Sheet1"})
	assert.ErrorIs(t, res.Err, ErrBadParameter)

	res = app.Run(ActionFindMissingData, Params{SourceA: "Sheet1", SourceB: "Nope!A1:A2"})
	assert.ErrorIs(t, res.Err, ErrSheetNotFound)

	res = app.Run(ActionFindMissingData, Params{SourceA: "Sheet1", SourceB: "not a range"})
	assert.ErrorIs(t, res.Err, ErrBadParameter)
}
