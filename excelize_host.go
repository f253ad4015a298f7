package xlquick

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

const filterDatabaseName = "_xlnm._FilterDatabase"

// Column widths used by AutofitColumns, in character units.
const (
	minColWidth = 8
	maxColWidth = 80
)

// builtinNumFmts maps the built-in number format IDs to their format codes (en-US).
var builtinNumFmts = map[int]string{
	0:  "General",
	1:  "0",
	2:  "0.00",
	3:  "#,##0",
	4:  "#,##0.00",
	5:  "($#,##0_);($#,##0)",
	6:  "($#,##0_);[Red]($#,##0)",
	7:  "($#,##0.00_);($#,##0.00)",
	8:  "($#,##0.00_);[Red]($#,##0.00)",
	9:  "0%",
	10: "0.00%",
	11: "0.00E+00",
	12: "# ?/?",
	13: "# ??/??",
	14: "mm-dd-yy",
	15: "d-mmm-yy",
	16: "d-mmm",
	17: "mmm-yy",
	18: "h:mm AM/PM",
	19: "h:mm:ss AM/PM",
	20: "h:mm",
	21: "h:mm:ss",
	22: "m/d/yy h:mm",
	37: "#,##0 ;(#,##0)",
	38: "#,##0 ;[Red](#,##0)",
	39: "#,##0.00;(#,##0.00)",
	40: "#,##0.00;[Red](#,##0.00)",
	41: `_(* #,##0_);_(* \(#,##0\);_(* "-"_);_(@_)`,
	42: `_("$"* #,##0_);_("$"* \(#,##0\);_("$"* "-"_);_(@_)`,
	43: `_(* #,##0.00_);_(* \(#,##0.00\);_(* "-"??_);_(@_)`,
	44: `_("$"* #,##0.00_);_("$"* \(#,##0.00\);_("$"* "-"??_);_(@_)`,
	45: "mm:ss",
	46: "[h]:mm:ss",
	47: "mmss.0",
	48: "##0.0E+0",
	49: "@",
}

// builtinNumFmtIDs is the reverse of builtinNumFmts.
var builtinNumFmtIDs = func() map[string]int {
	ids := make(map[string]int, len(builtinNumFmts))
	for id, code := range builtinNumFmts {
		ids[code] = id
	}
	return ids
}()

// numFmtIDPrefix marks a built-in format whose code depends on the locale (IDs 23-36, 50+).
// Such formats are carried as "numfmt#27" so they survive a read-write round trip.
const numFmtIDPrefix = "numfmt#"

// HostOptions configures an ExcelizeHost.
type HostOptions struct {
	clipboard io.Writer
	logger    *slog.Logger
}

// HostOption configures an ExcelizeHost.
type HostOption func(*HostOptions)

// WithClipboard mirrors every clipboard write to w (e.g. os.Stdout for the CLI).
func WithClipboard(w io.Writer) HostOption {
	return func(o *HostOptions) {
		o.clipboard = w
	}
}

// WithHostLogger sets the logger used by the host.
func WithHostLogger(l *slog.Logger) HostOption {
	return func(o *HostOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// ExcelizeHost implements Host on top of an excelize workbook.
// Values written through it keep the existing cell style.
type ExcelizeHost struct {
	file       *excelize.File
	sel        *Selection
	clipboard  string
	mirror     io.Writer
	styleCache map[styleKey]int // (base style, variant) → derived style ID
	logger     *slog.Logger

	mu sync.Mutex
}

type styleKey struct {
	base    int
	variant string
}

var _ Host = (*ExcelizeHost)(nil)

// NewExcelizeHost wraps an open excelize file.
func NewExcelizeHost(f *excelize.File, opts ...HostOption) *ExcelizeHost {
	o := &HostOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(o)
	}
	return &ExcelizeHost{
		file:       f,
		mirror:     o.clipboard,
		styleCache: make(map[styleKey]int),
		logger:     o.logger.With(slog.String("component", "host")),
	}
}

// OpenWorkbook opens an xlsx file and wraps it in a host.
func OpenWorkbook(path string, opts ...HostOption) (*ExcelizeHost, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %q: %w", path, err)
	}
	return NewExcelizeHost(f, opts...), nil
}

// File returns the underlying excelize file for advanced operations.
func (h *ExcelizeHost) File() *excelize.File {
	return h.file
}

// Write writes the workbook to the given writer.
func (h *ExcelizeHost) Write(w io.Writer) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.file.Write(w)
}

// SaveAs writes the workbook to path.
func (h *ExcelizeHost) SaveAs(path string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.file.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %q: %w", path, err)
	}
	return nil
}

// Close closes the underlying excelize file.
func (h *ExcelizeHost) Close() error {
	return h.file.Close()
}

// Clipboard returns the text most recently written to the clipboard.
func (h *ExcelizeHost) Clipboard() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.clipboard
}

// Selection returns the selection set with Select. Without one, the selection saved in the
// active sheet's view is used.
func (h *ExcelizeHost) Selection() (Selection, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.sel != nil {
		return *h.sel, nil
	}
	sheet := h.activeSheet()
	panes, err := h.file.GetPanes(sheet)
	if err != nil {
		return Selection{}, fmt.Errorf("read selection of %q: %w", sheet, err)
	}
	for _, s := range panes.Selection {
		sqref := strings.Fields(s.SQRef)
		if len(sqref) == 0 {
			continue
		}
		sel, err := ParseSelection(sqref[0])
		if err != nil {
			return Selection{}, err
		}
		sel.Area = sel.Area.WithSheet(sheet)
		return sel, nil
	}
	return Selection{}, ErrNoSelection
}

// SetSelection replaces the current selection. A missing sheet binds to the active sheet.
func (h *ExcelizeHost) SetSelection(sel Selection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if sel.Area.SheetName() == "" {
		sel.Area = sel.Area.WithSheet(h.activeSheet())
	}
	h.sel = &sel
}

// Select selects area, activating its sheet.
func (h *ExcelizeHost) Select(area AreaRef) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	sheet := area.SheetName()
	if sheet == "" {
		sheet = h.activeSheet()
		area = area.WithSheet(sheet)
	} else if err := h.activate(sheet); err != nil {
		return err
	}
	h.sel = &Selection{Area: area}
	return nil
}

// ActiveSheet returns the name of the active sheet.
func (h *ExcelizeHost) ActiveSheet() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.activeSheet()
}

func (h *ExcelizeHost) activeSheet() string {
	return h.file.GetSheetName(h.file.GetActiveSheetIndex())
}

// ActivateSheet makes name the active sheet.
func (h *ExcelizeHost) ActivateSheet(name string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.activate(name)
}

func (h *ExcelizeHost) activate(name string) error {
	idx, err := h.file.GetSheetIndex(name)
	if err != nil {
		return fmt.Errorf("activate sheet %q: %w", name, err)
	}
	if idx < 0 {
		return fmt.Errorf("activate sheet %q: %w", name, ErrSheetNotFound)
	}
	if h.sel != nil && h.sel.Area.SheetName() != name {
		h.sel = nil
	}
	h.file.SetActiveSheet(idx)
	return nil
}

// SheetNames returns all sheet names in workbook order.
func (h *ExcelizeHost) SheetNames() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.file.GetSheetList()
}

// HasSheet reports whether a sheet named name exists.
func (h *ExcelizeHost) HasSheet(name string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	idx, err := h.file.GetSheetIndex(name)
	return err == nil && idx >= 0
}

// AddSheet appends a new empty sheet.
func (h *ExcelizeHost) AddSheet(name string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, err := h.file.NewSheet(name); err != nil {
		return fmt.Errorf("create sheet %q: %w", name, err)
	}
	return nil
}

// ClearSheet removes all content from a sheet. When the workbook has other sheets the sheet
// is recreated, which moves it to the end of the sheet list.
func (h *ExcelizeHost) ClearSheet(name string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	idx, err := h.file.GetSheetIndex(name)
	if err != nil {
		return fmt.Errorf("clear sheet %q: %w", name, err)
	}
	if idx < 0 {
		return fmt.Errorf("clear sheet %q: %w", name, ErrSheetNotFound)
	}
	if len(h.file.GetSheetList()) > 1 {
		if err := h.file.DeleteSheet(name); err != nil {
			return fmt.Errorf("clear sheet %q: %w", name, err)
		}
		if _, err := h.file.NewSheet(name); err != nil {
			return fmt.Errorf("clear sheet %q: %w", name, err)
		}
		h.logger.Debug("sheet recreated", slog.String("sheet", name))
		return nil
	}
	rows, err := h.file.GetRows(name)
	if err != nil {
		return fmt.Errorf("clear sheet %q: %w", name, err)
	}
	for r := len(rows); r >= 1; r-- {
		if err := h.file.RemoveRow(name, r); err != nil {
			return fmt.Errorf("clear sheet %q row %d: %w", name, r, err)
		}
	}
	return nil
}

// UsedRange returns the bounding box of all non-empty cells.
func (h *ExcelizeHost) UsedRange(sheet string) (AreaRef, bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	rows, err := h.file.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return AreaRef{}, false, fmt.Errorf("read used range of %q: %w", sheet, sheetError(err))
	}
	first := NewCellRef(sheet, -1, -1)
	last := NewCellRef(sheet, -1, -1)
	for r, row := range rows {
		for c, v := range row {
			if v == "" {
				continue
			}
			if first.Row < 0 {
				first.Row = r
			}
			if first.Col < 0 || c < first.Col {
				first.Col = c
			}
			last.Row = r
			last.Col = max(last.Col, c)
		}
	}
	if first.Row < 0 {
		return AreaRef{}, false, nil
	}
	return AreaRef{First: first, Last: last}, true, nil
}

// Values reads area as typed values. Booleans become "TRUE"/"FALSE"; every other
// non-numeric cell becomes text of its raw value.
func (h *ExcelizeHost) Values(area AreaRef) (Grid, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	sheet := area.SheetName()
	rows, err := h.file.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read values of %s: %w", area, sheetError(err))
	}
	size := area.Size()
	g := NewGrid(size.Height, size.Width)
	for r := 0; r < size.Height; r++ {
		row := area.First.Row + r
		if row >= len(rows) {
			break
		}
		for c := 0; c < size.Width; c++ {
			col := area.First.Col + c
			if col >= len(rows[row]) || rows[row][col] == "" {
				continue
			}
			v, err := h.typedValue(sheet, CellName(row, col), rows[row][col])
			if err != nil {
				return nil, err
			}
			g[r][c] = v
		}
	}
	return g, nil
}

func (h *ExcelizeHost) typedValue(sheet, cell, raw string) (Value, error) {
	typ, err := h.file.GetCellType(sheet, cell)
	if err != nil {
		return Value{}, fmt.Errorf("read type of %s!%s: %w", sheet, cell, err)
	}
	switch typ {
	case excelize.CellTypeUnset, excelize.CellTypeNumber:
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return Number(f), nil
		}
	case excelize.CellTypeBool:
		if raw == "1" || strings.EqualFold(raw, "true") {
			return Text("TRUE"), nil
		}
		return Text("FALSE"), nil
	}
	return Text(raw), nil
}

// SetValues writes values starting at area.First, keeping each cell's style.
func (h *ExcelizeHost) SetValues(area AreaRef, values Grid) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	sheet := area.SheetName()
	for r, row := range values {
		for c, v := range row {
			cell := CellName(area.First.Row+r, area.First.Col+c)
			if err := h.setValue(sheet, cell, v); err != nil {
				return fmt.Errorf("write %s!%s: %w", sheet, cell, err)
			}
		}
	}
	return nil
}

func (h *ExcelizeHost) setValue(sheet, cell string, v Value) error {
	styleID, err := h.file.GetCellStyle(sheet, cell)
	if err != nil {
		return err
	}
	switch v.Kind {
	case KindNumber:
		err = h.file.SetCellFloat(sheet, cell, v.Num, -1, 64)
	case KindText:
		err = h.file.SetCellStr(sheet, cell, v.Str)
	default:
		err = h.file.SetCellValue(sheet, cell, nil)
	}
	if err != nil {
		return err
	}
	if styleID > 0 {
		return h.file.SetCellStyle(sheet, cell, cell, styleID)
	}
	return nil
}

// DisplayText reads area as the formatted text the user sees.
func (h *ExcelizeHost) DisplayText(area AreaRef) ([][]string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	rows, err := h.file.GetRows(area.SheetName())
	if err != nil {
		return nil, fmt.Errorf("read text of %s: %w", area, err)
	}
	size := area.Size()
	out := make([][]string, size.Height)
	for r := range out {
		out[r] = make([]string, size.Width)
		row := area.First.Row + r
		if row >= len(rows) {
			continue
		}
		for c := range out[r] {
			if col := area.First.Col + c; col < len(rows[row]) {
				out[r][c] = rows[row][col]
			}
		}
	}
	return out, nil
}

// NumberFormats returns the number format code of every cell in area.
func (h *ExcelizeHost) NumberFormats(area AreaRef) ([][]string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	sheet := area.SheetName()
	size := area.Size()
	formats := make(map[int]string)
	out := make([][]string, size.Height)
	for r := range out {
		out[r] = make([]string, size.Width)
		for c := range out[r] {
			cell := CellName(area.First.Row+r, area.First.Col+c)
			styleID, err := h.file.GetCellStyle(sheet, cell)
			if err != nil {
				return nil, fmt.Errorf("read number format of %s!%s: %w", sheet, cell, err)
			}
			code, ok := formats[styleID]
			if !ok {
				if code, err = h.numFmtOf(styleID); err != nil {
					return nil, err
				}
				formats[styleID] = code
			}
			out[r][c] = code
		}
	}
	return out, nil
}

func (h *ExcelizeHost) numFmtOf(styleID int) (string, error) {
	style, err := h.file.GetStyle(styleID)
	if err != nil {
		return "", fmt.Errorf("read style %d: %w", styleID, err)
	}
	if style.CustomNumFmt != nil {
		return *style.CustomNumFmt, nil
	}
	if code, ok := builtinNumFmts[style.NumFmt]; ok {
		return code, nil
	}
	return numFmtIDPrefix + strconv.Itoa(style.NumFmt), nil
}

// SetNumberFormats applies one format code per cell, keeping the rest of each cell's style.
func (h *ExcelizeHost) SetNumberFormats(area AreaRef, formats [][]string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	sheet := area.SheetName()
	for r, row := range formats {
		for c, code := range row {
			cell := CellName(area.First.Row+r, area.First.Col+c)
			base, err := h.file.GetCellStyle(sheet, cell)
			if err != nil {
				return fmt.Errorf("read style of %s!%s: %w", sheet, cell, err)
			}
			styleID, err := h.derivedStyle(base, "numfmt:"+code, func(s *excelize.Style) {
				setNumFmt(s, code)
			})
			if err != nil {
				return fmt.Errorf("number format %q for %s!%s: %w", code, sheet, cell, err)
			}
			if styleID == base {
				continue
			}
			if err := h.file.SetCellStyle(sheet, cell, cell, styleID); err != nil {
				return fmt.Errorf("apply number format to %s!%s: %w", sheet, cell, err)
			}
		}
	}
	return nil
}

func setNumFmt(s *excelize.Style, code string) {
	s.CustomNumFmt = nil
	s.DecimalPlaces = nil
	s.NumFmt = 0
	if code == "" || strings.EqualFold(code, "General") {
		return
	}
	if id, ok := builtinNumFmtIDs[code]; ok {
		s.NumFmt = id
		return
	}
	if rest, ok := strings.CutPrefix(code, numFmtIDPrefix); ok {
		if id, err := strconv.Atoi(rest); err == nil && id >= 0 {
			s.NumFmt = id
			return
		}
	}
	s.CustomNumFmt = &code
}

// derivedStyle returns the ID of base modified by apply, creating and caching it on first use.
func (h *ExcelizeHost) derivedStyle(base int, variant string, apply func(*excelize.Style)) (int, error) {
	key := styleKey{base: base, variant: variant}
	if id, ok := h.styleCache[key]; ok {
		return id, nil
	}
	style, err := h.file.GetStyle(base)
	if err != nil {
		return 0, err
	}
	apply(style)
	id, err := h.file.NewStyle(style)
	if err != nil {
		return 0, err
	}
	h.styleCache[key] = id
	return id, nil
}

// ClearFormats resets every cell in area to the default style.
func (h *ExcelizeHost) ClearFormats(area AreaRef) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.file.SetCellStyle(area.SheetName(), area.First.CellName(), area.Last.CellName(), 0); err != nil {
		return fmt.Errorf("clear formats of %s: %w", area, err)
	}
	return nil
}

// InsertRows inserts n empty rows before the 0-based row.
func (h *ExcelizeHost) InsertRows(sheet string, row, n int) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if n <= 0 {
		return nil
	}
	if err := h.file.InsertRows(sheet, row+1, n); err != nil {
		return fmt.Errorf("insert %d rows at %s!%d: %w", n, sheet, row+1, err)
	}
	return nil
}

// DeleteRows removes n rows starting at the 0-based row.
func (h *ExcelizeHost) DeleteRows(sheet string, row, n int) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i := 0; i < n; i++ {
		if err := h.file.RemoveRow(sheet, row+1); err != nil {
			return fmt.Errorf("delete row %s!%d: %w", sheet, row+1, err)
		}
	}
	return nil
}

// InsertCols inserts n empty columns before the 0-based col.
func (h *ExcelizeHost) InsertCols(sheet string, col, n int) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if n <= 0 {
		return nil
	}
	if err := h.file.InsertCols(sheet, ColToName(col), n); err != nil {
		return fmt.Errorf("insert %d columns at %s!%s: %w", n, sheet, ColToName(col), err)
	}
	return nil
}

// DeleteCols removes n columns starting at the 0-based col.
func (h *ExcelizeHost) DeleteCols(sheet string, col, n int) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	name := ColToName(col)
	for i := 0; i < n; i++ {
		if err := h.file.RemoveCol(sheet, name); err != nil {
			return fmt.Errorf("delete column %s!%s: %w", sheet, name, err)
		}
	}
	return nil
}

// AutoFilterEnabled reports whether the sheet carries an autofilter.
func (h *ExcelizeHost) AutoFilterEnabled(sheet string) (bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, dn := range h.file.GetDefinedName() {
		if dn.Name == filterDatabaseName && dn.Scope == sheet {
			return true, nil
		}
	}
	return false, nil
}

// ApplyAutoFilter puts an autofilter on area, replacing any existing one on the sheet.
func (h *ExcelizeHost) ApplyAutoFilter(area AreaRef) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	ref := area.First.CellName() + ":" + area.Last.CellName()
	if err := h.file.AutoFilter(area.SheetName(), ref, nil); err != nil {
		return fmt.Errorf("apply autofilter to %s: %w", area, err)
	}
	return nil
}

// RemoveAutoFilter is not available: excelize can set an autofilter but not remove one.
func (h *ExcelizeHost) RemoveAutoFilter(sheet string) error {
	return fmt.Errorf("remove autofilter from %q: %w", sheet, ErrUnsupported)
}

// FillColor returns the solid fill color of a cell as RGB hex, or "" when unfilled.
func (h *ExcelizeHost) FillColor(ref CellRef) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	styleID, err := h.file.GetCellStyle(ref.Sheet, ref.CellName())
	if err != nil {
		return "", fmt.Errorf("read style of %s: %w", ref, err)
	}
	style, err := h.file.GetStyle(styleID)
	if err != nil {
		return "", fmt.Errorf("read style of %s: %w", ref, err)
	}
	if style.Fill.Type != "pattern" || style.Fill.Pattern != 1 || len(style.Fill.Color) == 0 {
		return "", nil
	}
	return strings.ToUpper(style.Fill.Color[0]), nil
}

// SetFillColor gives a cell a solid fill, keeping the rest of its style.
func (h *ExcelizeHost) SetFillColor(ref CellRef, color string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	cell := ref.CellName()
	base, err := h.file.GetCellStyle(ref.Sheet, cell)
	if err != nil {
		return fmt.Errorf("read style of %s: %w", ref, err)
	}
	color = strings.TrimPrefix(strings.ToUpper(color), "#")
	styleID, err := h.derivedStyle(base, "fill:"+color, func(s *excelize.Style) {
		s.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}}
	})
	if err != nil {
		return fmt.Errorf("fill %s: %w", ref, err)
	}
	return h.file.SetCellStyle(ref.Sheet, cell, cell, styleID)
}

// SetHeaderStyle makes area bold with a thin bottom border.
func (h *ExcelizeHost) SetHeaderStyle(area AreaRef) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	styleID, err := h.derivedStyle(0, "header", func(s *excelize.Style) {
		s.Font = &excelize.Font{Bold: true}
		s.Border = []excelize.Border{{Type: "bottom", Color: "000000", Style: 1}}
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	return h.file.SetCellStyle(area.SheetName(), area.First.CellName(), area.Last.CellName(), styleID)
}

// AutofitColumns sizes every used column to its longest displayed value.
func (h *ExcelizeHost) AutofitColumns(sheet string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	rows, err := h.file.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("autofit %q: %w", sheet, err)
	}
	var widths []int
	for _, row := range rows {
		for c, v := range row {
			if c >= len(widths) {
				widths = append(widths, make([]int, c-len(widths)+1)...)
			}
			widths[c] = max(widths[c], utf8.RuneCountInString(v))
		}
	}
	for c, w := range widths {
		width := float64(min(max(w+2, minColWidth), maxColWidth))
		name := ColToName(c)
		if err := h.file.SetColWidth(sheet, name, name, width); err != nil {
			return fmt.Errorf("autofit %q column %s: %w", sheet, name, err)
		}
	}
	return nil
}

// SetHyperlink attaches link to a cell. Links starting with "#" target a workbook location.
func (h *ExcelizeHost) SetHyperlink(ref CellRef, link HyperlinkValue) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	linkType, target := "External", link.URL
	if link.IsLocation() {
		linkType, target = "Location", strings.TrimPrefix(link.URL, "#")
	}
	var opts []excelize.HyperlinkOpts
	if link.Display != "" {
		display := link.Display
		opts = append(opts, excelize.HyperlinkOpts{Display: &display})
	}
	if err := h.file.SetCellHyperLink(ref.Sheet, ref.CellName(), target, linkType, opts...); err != nil {
		return fmt.Errorf("set hyperlink on %s: %w", ref, err)
	}
	return nil
}

// RemoveHyperlink removes the link on a cell, keeping its value. It reports whether a link existed.
func (h *ExcelizeHost) RemoveHyperlink(ref CellRef) (bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	ok, _, err := h.file.GetCellHyperLink(ref.Sheet, ref.CellName())
	if err != nil {
		return false, fmt.Errorf("read hyperlink on %s: %w", ref, err)
	}
	if !ok {
		return false, nil
	}
	if err := h.file.SetCellHyperLink(ref.Sheet, ref.CellName(), "", "None"); err != nil {
		return false, fmt.Errorf("remove hyperlink on %s: %w", ref, err)
	}
	return true, nil
}

// WriteClipboard stores text as the clipboard content and mirrors it when configured.
func (h *ExcelizeHost) WriteClipboard(text string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clipboard = text
	if h.mirror == nil {
		return nil
	}
	if _, err := io.WriteString(h.mirror, text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	if !strings.HasSuffix(text, "\n") {
		if _, err := io.WriteString(h.mirror, "\n"); err != nil {
			return fmt.Errorf("write clipboard: %w", err)
		}
	}
	return nil
}

// sheetError maps excelize's missing-sheet error onto ErrSheetNotFound.
func sheetError(err error) error {
	var missing excelize.ErrSheetNotExist
	if errors.As(err, &missing) {
		return fmt.Errorf("%w: %s", ErrSheetNotFound, missing.SheetName)
	}
	return err
}
