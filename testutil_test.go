package xlquick

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// discardLogger keeps test output quiet.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestHost creates an in-memory workbook whose Sheet1 holds rows starting at A1.
// A nil cell is left unset.
func newTestHost(t *testing.T, rows ...[]any) *ExcelizeHost {
	t.Helper()
	f := excelize.NewFile()
	t.Cleanup(func() { f.Close() })
	h := NewExcelizeHost(f, WithHostLogger(discardLogger()))
	writeRows(t, h, "Sheet1", rows...)
	return h
}

// addTestSheet creates sheet (if needed) and writes rows starting at A1.
func addTestSheet(t *testing.T, h *ExcelizeHost, sheet string, rows ...[]any) {
	t.Helper()
	if !h.HasSheet(sheet) {
		require.NoError(t, h.AddSheet(sheet))
	}
	writeRows(t, h, sheet, rows...)
}

func writeRows(t *testing.T, h *ExcelizeHost, sheet string, rows ...[]any) {
	t.Helper()
	for r, row := range rows {
		for c, v := range row {
			if v == nil {
				continue
			}
			require.NoError(t, h.File().SetCellValue(sheet, CellName(r, c), v))
		}
	}
}

// newTestApp wraps h in an App that selects sel on the active sheet.
func newTestApp(t *testing.T, h *ExcelizeHost, sel string, opts ...Option) *App {
	t.Helper()
	if sel != "" {
		selectOn(t, h, sel)
	}
	return NewApp(h, append([]Option{WithLogger(discardLogger())}, opts...)...)
}

func selectOn(t *testing.T, h *ExcelizeHost, sel string) {
	t.Helper()
	s, err := ParseSelection(sel)
	require.NoError(t, err)
	if s.Area.SheetName() == "" {
		s.Area = s.Area.WithSheet(h.ActiveSheet())
	}
	h.SetSelection(s)
}

// cell reads one value through the host.
func cell(t *testing.T, h Host, sheet, name string) Value {
	t.Helper()
	ref, err := ParseCellRef(name)
	require.NoError(t, err)
	g, err := h.Values(NewAreaRef(NewCellRef(sheet, ref.Row, ref.Col), NewCellRef(sheet, ref.Row, ref.Col)))
	require.NoError(t, err)
	return g.At(0, 0)
}

// column reads rows [0, n) of one column.
func column(t *testing.T, h Host, sheet string, col, n int) []Value {
	t.Helper()
	g, err := h.Values(AreaOf(sheet, 0, col, Size{Width: 1, Height: n}))
	require.NoError(t, err)
	out := make([]Value, n)
	for i := range out {
		out[i] = g.At(i, 0)
	}
	return out
}

var errInjected = errors.New("injected host failure")

// spyHost wraps a Host, counting calls and failing selected ones.
type spyHost struct {
	Host
	setValuesCalls   int
	setValuesRows    []int
	failSetValues    bool
	failSetFormats   bool
	hyperlinks       int
	clearSheetCalls  int
	failAddSheet     bool
	failSetHyperlink bool
}

func (s *spyHost) SetValues(area AreaRef, values Grid) error {
	s.setValuesCalls++
	s.setValuesRows = append(s.setValuesRows, values.Rows())
	if s.failSetValues {
		return errInjected
	}
	return s.Host.SetValues(area, values)
}

func (s *spyHost) SetNumberFormats(area AreaRef, formats [][]string) error {
	if s.failSetFormats {
		return errInjected
	}
	return s.Host.SetNumberFormats(area, formats)
}

func (s *spyHost) SetHyperlink(ref CellRef, link HyperlinkValue) error {
	if s.failSetHyperlink {
		return errInjected
	}
	s.hyperlinks++
	return s.Host.SetHyperlink(ref, link)
}

func (s *spyHost) ClearSheet(name string) error {
	s.clearSheetCalls++
	return s.Host.ClearSheet(name)
}

func (s *spyHost) AddSheet(name string) error {
	if s.failAddSheet {
		return errInjected
	}
	return s.Host.AddSheet(name)
}
