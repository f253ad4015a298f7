package xlquick

// Host abstracts the spreadsheet application. Every call is one round-trip to the
// spreadsheet engine; all per-cell work happens in memory between calls.
type Host interface {
	// Selection and sheets
	Selection() (Selection, error)
	Select(area AreaRef) error
	ActiveSheet() string
	ActivateSheet(name string) error
	SheetNames() []string
	HasSheet(name string) bool
	AddSheet(name string) error
	ClearSheet(name string) error

	// UsedRange returns the bounding area of all non-empty cells; false when the sheet is empty.
	UsedRange(sheet string) (AreaRef, bool, error)

	// Batched cell access. Grids passed to setters are written starting at area.First.
	Values(area AreaRef) (Grid, error)
	SetValues(area AreaRef, values Grid) error
	DisplayText(area AreaRef) ([][]string, error)
	NumberFormats(area AreaRef) ([][]string, error)
	SetNumberFormats(area AreaRef, formats [][]string) error
	ClearFormats(area AreaRef) error

	// Structure. Indexes are 0-based.
	InsertRows(sheet string, row, n int) error
	DeleteRows(sheet string, row, n int) error
	InsertCols(sheet string, col, n int) error
	DeleteCols(sheet string, col, n int) error

	// Autofilter
	AutoFilterEnabled(sheet string) (bool, error)
	ApplyAutoFilter(area AreaRef) error
	RemoveAutoFilter(sheet string) error

	// Formatting and links
	FillColor(ref CellRef) (string, error)
	SetFillColor(ref CellRef, color string) error
	SetHeaderStyle(area AreaRef) error
	AutofitColumns(sheet string) error
	SetHyperlink(ref CellRef, link HyperlinkValue) error
	RemoveHyperlink(ref CellRef) (bool, error)

	// Clipboard
	WriteClipboard(text string) error
}
