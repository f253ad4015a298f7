package xlquick

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinSelection(t *testing.T) {
	text := [][]string{{" a ", ""}, {"b", "c"}}

	s, n := JoinSelection(text, "'", "'", ",")
	assert.Equal(t, "'a', 'b', 'c'", s)
	assert.Equal(t, 3, n)

	s, _ = JoinSelection(text, "", "", "\n")
	assert.Equal(t, "a\nb\nc", s)

	s, n = JoinSelection([][]string{{"", " "}}, "", "", ",")
	assert.Empty(t, s)
	assert.Zero(t, n)
}

func TestApp_SelectionToClipboard(t *testing.T) {
	h := newTestHost(t, []any{"x", 1}, []any{nil, "y"})
	app := newTestApp(t, h, "A1:B2")

	res := app.Run(ActionSelectionToClipboard, Params{Delimiter: ";", Leading: "[", Trailing: "]"})
	require.True(t, res.Success, res.Message)
	assert.Equal(t, "Copied 3 values to the clipboard.", res.Message)
	assert.Equal(t, "[x]; [1]; [y]", h.Clipboard())
}

func TestApp_CopyHighlighted(t *testing.T) {
	h := newTestHost(t, []any{"keep", "skip"}, []any{"also", nil})
	require.NoError(t, h.SetFillColor(NewCellRef("Sheet1", 0, 0), "FFFF00"))
	require.NoError(t, h.SetFillColor(NewCellRef("Sheet1", 1, 0), "C6EFCE"))
	require.NoError(t, h.SetFillColor(NewCellRef("Sheet1", 1, 1), "C6EFCE"))
	app := newTestApp(t, h, "A1:B2")

	res := app.Run(ActionCopyHighlighted, Params{})
	require.True(t, res.Success, res.Message)
	assert.Equal(t, "Copied 2 highlighted cells to the clipboard.", res.Message)
	assert.Equal(t, "keep\nalso", h.Clipboard())

	selectOn(t, h, "B1")
	res = app.Run(ActionCopyHighlighted, Params{})
	require.True(t, res.Success)
	assert.Equal(t, "No highlighted cells found.", res.Message)
}
