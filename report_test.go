package xlquick

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bigReport(rows int) *Report {
	entries := make([]DiffEntry, rows)
	for i := range entries {
		entries[i] = DiffEntry{Row: i, Col: 0, Label: CellName(i, 0), ValueA: Number(float64(i)), ValueB: Text(fmt.Sprint("v", i))}
	}
	return NewCompareReport(entries, "A", "B")
}

func TestWriteReport(t *testing.T) {
	h := newTestHost(t)
	rep := bigReport(3)

	stats, err := WriteReport(h, "Report", rep, ReportOptions{ChunkSize: 10, LinkLimit: 10, Logger: discardLogger()})
	require.NoError(t, err)
	assert.Equal(t, ReportStats{Rows: 3, Chunks: 1, Links: 6}, stats)

	assert.Equal(t, "Report", h.ActiveSheet())
	assert.Equal(t, Text("A Cell Contains"), cell(t, h, "Report", "A1"))
	assert.Equal(t, Number(2), cell(t, h, "Report", "A4"))
	assert.Equal(t, Text("v2"), cell(t, h, "Report", "C4"))

	ok, target, err := h.File().GetCellHyperLink("Report", "B2")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "'A'!A1", target)
}

func TestWriteReport_Chunks(t *testing.T) {
	spy := &spyHost{Host: newTestHost(t)}
	rep := bigReport(25)

	stats, err := WriteReport(spy, "Report", rep, ReportOptions{ChunkSize: 10, LinkLimit: 100, Logger: discardLogger()})
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Chunks)
	assert.Equal(t, 25, stats.Rows)
	// header, then chunks of at most 10 rows
	assert.Equal(t, []int{1, 10, 10, 5}, spy.setValuesRows)
	assert.Equal(t, 50, spy.hyperlinks)
	assert.Equal(t, Number(24), cell(t, spy, "Report", "A26"))
}

func TestWriteReport_LinksSkippedAboveLimit(t *testing.T) {
	spy := &spyHost{Host: newTestHost(t)}
	rep := bigReport(12)

	stats, err := WriteReport(spy, "Report", rep, ReportOptions{ChunkSize: 5, LinkLimit: 11, Logger: discardLogger()})
	require.NoError(t, err)
	assert.True(t, stats.LinksSkipped)
	assert.Zero(t, stats.Links)
	assert.Zero(t, spy.hyperlinks)
	assert.Equal(t, 12, stats.Rows, "data is always written in full")
	assert.Equal(t, Text("v11"), cell(t, spy, "Report", "C13"))
}

func TestWriteReport_ReplacesExistingSheet(t *testing.T) {
	h := newTestHost(t)
	addTestSheet(t, h, "Report", []any{"stale", "stale"}, []any{"stale"}, []any{"stale"}, []any{"stale"})
	spy := &spyHost{Host: h}

	_, err := WriteReport(spy, "Report", bigReport(1), ReportOptions{Logger: discardLogger()})
	require.NoError(t, err)
	assert.Equal(t, 1, spy.clearSheetCalls)
	assert.Equal(t, Empty(), cell(t, h, "Report", "A4"))
	assert.Equal(t, Number(0), cell(t, h, "Report", "A2"))
}

func TestWriteReport_HostFailure(t *testing.T) {
	spy := &spyHost{Host: newTestHost(t), failAddSheet: true}
	_, err := WriteReport(spy, "Report", bigReport(1), ReportOptions{Logger: discardLogger()})
	assert.ErrorIs(t, err, errInjected)

	spy = &spyHost{Host: newTestHost(t), failSetHyperlink: true}
	stats, err := WriteReport(spy, "Report", bigReport(2), ReportOptions{LinkLimit: 10, Logger: discardLogger()})
	assert.ErrorIs(t, err, errInjected)
	assert.Equal(t, 1, stats.Chunks, "rows written before the failure stay written")
}
