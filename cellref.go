package xlquick

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// CellRef represents a single cell reference in a workbook.
type CellRef struct {
	Sheet string // sheet name (empty = active sheet)
	Row   int    // 0-based row index
	Col   int    // 0-based column index
}

// NewCellRef creates a CellRef with explicit sheet, row, col.
func NewCellRef(sheet string, row, col int) CellRef {
	return CellRef{Sheet: sheet, Row: row, Col: col}
}

// ParseCellRef parses a cell reference string like "A1", "Sheet1!B5", "'My Sheet'!C2" or "$A$1".
func ParseCellRef(s string) (CellRef, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return CellRef{}, fmt.Errorf("empty cell reference")
	}

	sheet, cellPart := splitSheet(s)
	cellPart = strings.ReplaceAll(cellPart, "$", "")
	if cellPart == "" {
		return CellRef{}, fmt.Errorf("invalid cell reference: %q", s)
	}

	col, row, err := parseCellName(cellPart)
	if err != nil {
		return CellRef{}, fmt.Errorf("invalid cell reference %q: %w", s, err)
	}

	return CellRef{Sheet: sheet, Row: row, Col: col}, nil
}

// splitSheet separates an optional "Sheet!" prefix from the rest of a reference.
func splitSheet(s string) (sheet, rest string) {
	idx := strings.LastIndex(s, "!")
	if idx < 0 {
		return "", s
	}
	sheet = s[:idx]
	if len(sheet) >= 2 && sheet[0] == '\'' && sheet[len(sheet)-1] == '\'' {
		sheet = strings.ReplaceAll(sheet[1:len(sheet)-1], "''", "'")
	}
	return sheet, s[idx+1:]
}

// parseCellName parses "A1" into col=0, row=0.
func parseCellName(name string) (col, row int, err error) {
	i := 0
	for i < len(name) && isAlpha(name[i]) {
		i++
	}
	if i == 0 || i == len(name) {
		return 0, 0, fmt.Errorf("invalid cell name: %q", name)
	}

	col, err = NameToCol(name[:i])
	if err != nil {
		return 0, 0, err
	}
	rowNum, err := parseRowNumber(name[i:])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid row in cell name %q: %w", name, err)
	}
	return col, rowNum - 1, nil
}

func parseRowNumber(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > excelize.TotalRows {
		return 0, fmt.Errorf("row number out of range: %q", s)
	}
	return n, nil
}

func isAlpha(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// String formats the CellRef as "Sheet1!A1" or "A1" if no sheet.
func (c CellRef) String() string {
	name := c.CellName()
	if c.Sheet != "" {
		return QuoteSheet(c.Sheet) + "!" + name
	}
	return name
}

// CellName returns just the cell part like "A1" without sheet name.
func (c CellRef) CellName() string {
	return CellName(c.Row, c.Col)
}

// CellName converts zero-based coordinates to an A1-style label: (4, 2) → "C5".
func CellName(row, col int) string {
	return ColToName(col) + strconv.Itoa(row+1)
}

// ColToName converts a 0-based column index to a column name.
// 0→"A", 25→"Z", 26→"AA", 701→"ZZ", 702→"AAA"
func ColToName(col int) string {
	var buf [8]byte
	i := len(buf)
	col++
	for col > 0 {
		col--
		i--
		buf[i] = byte('A' + col%26)
		col /= 26
	}
	return string(buf[i:])
}

// NameToCol converts a column name to a 0-based column index.
// "A"→0, "Z"→25, "AA"→26
func NameToCol(name string) (int, error) {
	name = strings.ToUpper(name)
	if name == "" {
		return 0, fmt.Errorf("empty column name")
	}
	col := 0
	for _, ch := range name {
		if ch < 'A' || ch > 'Z' {
			return 0, fmt.Errorf("invalid column name: %q", name)
		}
		col = col*26 + int(ch-'A') + 1
		if col > excelize.MaxColumns {
			return 0, fmt.Errorf("column name out of range: %q", name)
		}
	}
	return col - 1, nil
}

// QuoteSheet wraps a sheet name in single quotes when it is not a plain identifier.
func QuoteSheet(sheet string) string {
	plain := sheet != ""
	for _, r := range sheet {
		if !(r == '_' || r == '.' || (r >= '0' && r <= '9') || (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')) {
			plain = false
			break
		}
	}
	if plain && !(sheet[0] >= '0' && sheet[0] <= '9') {
		return sheet
	}
	return "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
}

// AreaRef represents a rectangular area defined by two cell references.
type AreaRef struct {
	First CellRef
	Last  CellRef
}

// NewAreaRef creates an AreaRef from two cell references.
func NewAreaRef(first, last CellRef) AreaRef {
	return AreaRef{First: first, Last: last}
}

// AreaOf returns the area of the given size anchored at (row, col) on sheet.
func AreaOf(sheet string, row, col int, size Size) AreaRef {
	return AreaRef{
		First: NewCellRef(sheet, row, col),
		Last:  NewCellRef(sheet, row+size.Height-1, col+size.Width-1),
	}
}

// ParseAreaRef parses an area reference string like "A1:C5", "Sheet1!A1:C5" or a single cell.
func ParseAreaRef(s string) (AreaRef, error) {
	s = strings.TrimSpace(s)
	parts := strings.SplitN(s, ":", 2)
	if len(parts) == 1 {
		ref, err := ParseCellRef(s)
		if err != nil {
			return AreaRef{}, err
		}
		return AreaRef{First: ref, Last: ref}, nil
	}

	first, err := ParseCellRef(parts[0])
	if err != nil {
		return AreaRef{}, fmt.Errorf("invalid area reference %q: %w", s, err)
	}

	last, err := ParseCellRef(parts[1])
	if err != nil {
		return AreaRef{}, fmt.Errorf("invalid area reference %q: %w", s, err)
	}

	// Inherit sheet name from first cell if last doesn't have one
	if last.Sheet == "" && first.Sheet != "" {
		last.Sheet = first.Sheet
	}

	return normalizeArea(first, last), nil
}

func normalizeArea(first, last CellRef) AreaRef {
	if first.Row > last.Row {
		first.Row, last.Row = last.Row, first.Row
	}
	if first.Col > last.Col {
		first.Col, last.Col = last.Col, first.Col
	}
	return AreaRef{First: first, Last: last}
}

// String formats the AreaRef as "Sheet1!A1:C5" or "A1:C5".
func (a AreaRef) String() string {
	if a.First.Sheet != "" {
		return QuoteSheet(a.First.Sheet) + "!" + a.CellRange()
	}
	return a.CellRange()
}

// CellRange returns the area without a sheet prefix, e.g. "A1:C5". Single cells render as "A1".
func (a AreaRef) CellRange() string {
	if a.First.Row == a.Last.Row && a.First.Col == a.Last.Col {
		return a.First.CellName()
	}
	return a.First.CellName() + ":" + a.Last.CellName()
}

// Size returns the dimensions of the area.
func (a AreaRef) Size() Size {
	return Size{
		Width:  a.Last.Col - a.First.Col + 1,
		Height: a.Last.Row - a.First.Row + 1,
	}
}

// CellCount returns the number of cells covered by the area.
func (a AreaRef) CellCount() int {
	s := a.Size()
	if s.Width <= 0 || s.Height <= 0 {
		return 0
	}
	return s.Width * s.Height
}

// Contains returns true if the given cell reference is within this area.
func (a AreaRef) Contains(ref CellRef) bool {
	if a.First.Sheet != "" && ref.Sheet != "" && a.First.Sheet != ref.Sheet {
		return false
	}
	return ref.Row >= a.First.Row && ref.Row <= a.Last.Row &&
		ref.Col >= a.First.Col && ref.Col <= a.Last.Col
}

// SheetName returns the sheet name of this area (from First cell).
func (a AreaRef) SheetName() string {
	return a.First.Sheet
}

// WithSheet returns a copy of the area bound to sheet.
func (a AreaRef) WithSheet(sheet string) AreaRef {
	a.First.Sheet = sheet
	a.Last.Sheet = sheet
	return a
}

// Intersect returns the overlap of two areas. The second result is false when they are disjoint.
func (a AreaRef) Intersect(b AreaRef) (AreaRef, bool) {
	first := NewCellRef(a.First.Sheet, max(a.First.Row, b.First.Row), max(a.First.Col, b.First.Col))
	last := NewCellRef(a.First.Sheet, min(a.Last.Row, b.Last.Row), min(a.Last.Col, b.Last.Col))
	if first.Row > last.Row || first.Col > last.Col {
		return AreaRef{}, false
	}
	return AreaRef{First: first, Last: last}, true
}

// Size represents width (columns) and height (rows).
type Size struct {
	Width  int
	Height int
}

// ZeroSize is a Size with zero width and height.
var ZeroSize = Size{Width: 0, Height: 0}

// String formats the Size as "(WxH)".
func (s Size) String() string {
	return fmt.Sprintf("(%dx%d)", s.Width, s.Height)
}

// Selection is what the user picked in the host: an area, possibly spanning entire columns or rows.
type Selection struct {
	Area         AreaRef
	EntireColumn bool
	EntireRow    bool
}

// ParseSelection parses "A1:C5", "Sheet1!B:B", "3:7" or "'Q1 Data'!A:C".
func ParseSelection(s string) (Selection, error) {
	s = strings.TrimSpace(s)
	sheet, rest := splitSheet(s)
	rest = strings.ReplaceAll(rest, "$", "")
	parts := strings.SplitN(rest, ":", 2)
	if len(parts) == 2 {
		lo, hi := parts[0], parts[1]
		switch {
		case isLetters(lo) && isLetters(hi):
			c1, err := NameToCol(lo)
			if err != nil {
				return Selection{}, fmt.Errorf("invalid selection %q: %w", s, err)
			}
			c2, err := NameToCol(hi)
			if err != nil {
				return Selection{}, fmt.Errorf("invalid selection %q: %w", s, err)
			}
			area := normalizeArea(NewCellRef(sheet, 0, c1), NewCellRef(sheet, excelize.TotalRows-1, c2))
			return Selection{Area: area, EntireColumn: true}, nil
		case isDigits(lo) && isDigits(hi):
			r1, err := parseRowNumber(lo)
			if err != nil {
				return Selection{}, fmt.Errorf("invalid selection %q: %w", s, err)
			}
			r2, err := parseRowNumber(hi)
			if err != nil {
				return Selection{}, fmt.Errorf("invalid selection %q: %w", s, err)
			}
			area := normalizeArea(NewCellRef(sheet, r1-1, 0), NewCellRef(sheet, r2-1, excelize.MaxColumns-1))
			return Selection{Area: area, EntireRow: true}, nil
		}
	}
	area, err := ParseAreaRef(rest)
	if err != nil {
		return Selection{}, fmt.Errorf("invalid selection %q: %w", s, err)
	}
	return Selection{Area: area.WithSheet(sheet)}, nil
}

func isLetters(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isAlpha(s[i]) {
			return false
		}
	}
	return true
}

// String renders the selection the way it was parsed.
func (s Selection) String() string {
	prefix := ""
	if s.Area.First.Sheet != "" {
		prefix = QuoteSheet(s.Area.First.Sheet) + "!"
	}
	switch {
	case s.EntireColumn:
		return prefix + ColToName(s.Area.First.Col) + ":" + ColToName(s.Area.Last.Col)
	case s.EntireRow:
		return prefix + strconv.Itoa(s.Area.First.Row+1) + ":" + strconv.Itoa(s.Area.Last.Row+1)
	}
	return s.Area.String()
}

// SafeSheetName sanitizes a string for use as an Excel sheet name.
// It replaces forbidden characters ([]*?/\:) with underscore and truncates to 31 chars.
func SafeSheetName(name string) string {
	runes := []rune(name)
	for i, r := range runes {
		if strings.ContainsRune(`/\:*?[]`, r) {
			runes[i] = '_'
		}
	}
	if len(runes) > 31 {
		runes = runes[:31]
	}
	return string(runes)
}
