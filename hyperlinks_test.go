package xlquick

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkTarget(t *testing.T) {
	url, ok := LinkTarget(Text(" 42 "), "https://tracker/issue/", false)
	assert.True(t, ok)
	assert.Equal(t, "https://tracker/issue/42", url)

	url, ok = LinkTarget(Number(7), "https://x/", false)
	assert.True(t, ok)
	assert.Equal(t, "https://x/7", url)

	url, ok = LinkTarget(Text("https://a.b"), "", true)
	assert.True(t, ok)
	assert.Equal(t, "https://a.b", url)

	_, ok = LinkTarget(Text("  "), "https://x/", false)
	assert.False(t, ok)
}

func TestLocationLink(t *testing.T) {
	l := LocationLink("My Sheet", 3, 1)
	assert.Equal(t, "#'My Sheet'!B4", l.URL)
	assert.Equal(t, "B4", l.String())
	assert.True(t, l.IsLocation())
	assert.False(t, Hyperlink("https://x", "").IsLocation())
}

func TestApp_AddAndRemoveHyperlinks(t *testing.T) {
	h := newTestHost(t, []any{"Ticket"}, []any{"101"}, []any{nil}, []any{"102"})
	app := newTestApp(t, h, "A1:A4")

	res := app.Run(ActionAddHyperlinks, Params{})
	assert.ErrorIs(t, res.Err, ErrBadParameter)

	res = app.Run(ActionAddHyperlinks, Params{BaseURL: "https://tracker/", HasHeader: true})
	require.True(t, res.Success, res.Message)
	assert.Equal(t, "Added 2 hyperlinks.", res.Message)

	ok, target, err := h.File().GetCellHyperLink("Sheet1", "A2")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "https://tracker/101", target)
	ok, _, err = h.File().GetCellHyperLink("Sheet1", "A1")
	require.NoError(t, err)
	assert.False(t, ok, "header row is skipped")

	res = app.Run(ActionRemoveHyperlinks, Params{})
	require.True(t, res.Success, res.Message)
	assert.Equal(t, "Removed 2 hyperlinks.", res.Message)
	assert.Equal(t, Text("101"), cell(t, h, "Sheet1", "A2"))
}
