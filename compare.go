package xlquick

import "strings"

// EmptyMarker is shown in reports in place of an empty cell.
const EmptyMarker = "Empty"

// DiffEntry records one positional mismatch between two compared grids.
type DiffEntry struct {
	Row    int    // 0-based row shared by both sides
	Col    int    // 0-based column shared by both sides
	Label  string // A1-style label of (Row, Col)
	ValueA Value
	ValueB Value
}

// DisplayA returns the left value for a report, with EmptyMarker substituted for empty cells.
func (d DiffEntry) DisplayA() Value { return displayValue(d.ValueA) }

// DisplayB returns the right value for a report, with EmptyMarker substituted for empty cells.
func (d DiffEntry) DisplayB() Value { return displayValue(d.ValueB) }

func displayValue(v Value) Value {
	if v.Kind == KindEmpty || (v.Kind == KindText && v.Str == "") {
		return Text(EmptyMarker)
	}
	return v
}

// CompareResult is the outcome of a positional comparison.
type CompareResult struct {
	Entries   []DiffEntry
	Identical bool
	Rows      int // rows scanned
	Cols      int // columns scanned
}

// Compare performs a cell-by-cell positional comparison of two grids.
// Ragged or differently sized grids are treated as padded with Empty out to the larger extent.
// No alignment is attempted: a row inserted in one grid makes every following row differ.
func Compare(a, b Grid) CompareResult {
	rows := max(a.Rows(), b.Rows())
	cols := max(a.Cols(), b.Cols())

	res := CompareResult{Rows: rows, Cols: cols}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			va, vb := a.At(row, col), b.At(row, col)
			if va.Equal(vb) {
				continue
			}
			res.Entries = append(res.Entries, DiffEntry{
				Row:    row,
				Col:    col,
				Label:  CellName(row, col),
				ValueA: va,
				ValueB: vb,
			})
		}
	}
	res.Identical = len(res.Entries) == 0
	return res
}

// Missing holds the two set differences computed by FindMissing.
type Missing struct {
	InSecond []Value // values of the first grid absent from the second
	InFirst  []Value // values of the second grid absent from the first
}

// Empty reports whether neither side is missing anything.
func (m Missing) Empty() bool {
	return len(m.InSecond) == 0 && len(m.InFirst) == 0
}

// FindMissing treats both grids as unordered collections of non-blank values and returns
// A − B and B − A. Text is trimmed before comparison. Output order is first-seen order in
// row-major flattening, and each value appears once.
func FindMissing(a, b Grid) Missing {
	setA, orderA := valueSet(a)
	setB, orderB := valueSet(b)

	var m Missing
	for _, v := range orderA {
		if _, ok := setB[v]; !ok {
			m.InSecond = append(m.InSecond, v)
		}
	}
	for _, v := range orderB {
		if _, ok := setA[v]; !ok {
			m.InFirst = append(m.InFirst, v)
		}
	}
	return m
}

// missingKey canonicalizes a value for set membership.
func missingKey(v Value) (Value, bool) {
	if IsBlank(v) {
		return Value{}, false
	}
	if v.Kind == KindText {
		return Text(strings.TrimSpace(v.Str)), true
	}
	return v, true
}

func valueSet(g Grid) (map[Value]struct{}, []Value) {
	set := make(map[Value]struct{})
	var order []Value
	for _, v := range g.Flatten() {
		key, ok := missingKey(v)
		if !ok {
			continue
		}
		if _, seen := set[key]; seen {
			continue
		}
		set[key] = struct{}{}
		order = append(order, key)
	}
	return set, order
}
