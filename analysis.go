package xlquick

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
)

// DuplicateCounts counts how often each value occurs in a single column. With hasHeader the
// first cell is excluded and gets a count of 0. Values are compared by their text.
func DuplicateCounts(column []Value, hasHeader bool) (counts []int, duplicates bool) {
	seen := make(map[string]int, len(column))
	for i, v := range column {
		if i == 0 && hasHeader {
			continue
		}
		key := v.String()
		seen[key]++
		if seen[key] > 1 {
			duplicates = true
		}
	}
	counts = make([]int, len(column))
	for i, v := range column {
		if i == 0 && hasHeader {
			continue
		}
		counts[i] = seen[v.String()]
	}
	return counts, duplicates
}

// ColumnStats summarizes one column.
type ColumnStats struct {
	Unique   int
	NonBlank int
	Blank    int
	Rows     int
}

// ColumnStatsOf counts unique trimmed values and blank cells across g.
func ColumnStatsOf(g Grid) ColumnStats {
	unique := make(map[string]struct{})
	st := ColumnStats{Rows: g.Rows()}
	for _, v := range g.Flatten() {
		if IsBlank(v) {
			st.Blank++
			continue
		}
		st.NonBlank++
		unique[strings.TrimSpace(v.String())] = struct{}{}
	}
	st.Unique = len(unique)
	return st
}

// ResetNumber turns numeric text into a number. A trailing minus sign is moved to the front,
// so "123-" becomes -123. Everything else is returned unchanged.
func ResetNumber(v Value) Value {
	if v.Kind != KindText {
		return v
	}
	s := strings.TrimSpace(v.Str)
	if s == "" {
		return v
	}
	if len(s) > 1 && strings.HasSuffix(s, "-") {
		if body := strings.TrimSpace(s[:len(s)-1]); body != "" {
			if _, err := strconv.ParseFloat(body, 64); err == nil {
				s = "-" + body
			}
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return v
	}
	return Number(f)
}

func (a *App) checkDuplicates(Params) (string, error) {
	_, area, err := a.entireColumnRange()
	if err != nil {
		return "", err
	}
	if area.Size().Width != 1 || area.CellCount() <= 1 {
		return "", ErrNeedSingleColumn
	}
	values, err := a.host.Values(area)
	if err != nil {
		return "", err
	}
	column := make([]Value, values.Rows())
	for r := range values {
		column[r] = values.At(r, 0)
	}
	hasHeader := area.First.Row == 0
	counts, dup := DuplicateCounts(column, hasHeader)
	if !dup {
		return "No duplicates found in the selected column.", nil
	}

	sheet := area.SheetName()
	countCol := area.First.Col + 1
	if err := a.host.InsertCols(sheet, countCol, 1); err != nil {
		return "", fmt.Errorf("insert count column: %w", err)
	}

	headerRow, dataStart := area.First.Row-1, 0
	if hasHeader {
		headerRow, dataStart = 0, 1
	}
	if err := a.host.SetValues(NewAreaRef(NewCellRef(sheet, headerRow, countCol), NewCellRef(sheet, headerRow, countCol)), Grid{{Text("Count")}}); err != nil {
		return "", err
	}
	if n := len(counts) - dataStart; n > 0 {
		out := NewGrid(n, 1)
		for i := range out {
			out[i][0] = Number(float64(counts[dataStart+i]))
		}
		if err := a.host.SetValues(AreaOf(sheet, area.First.Row+dataStart, countCol, Size{Width: 1, Height: n}), out); err != nil {
			return "", err
		}
	}

	if used, ok, err := a.host.UsedRange(sheet); err == nil && ok {
		if err := a.host.ApplyAutoFilter(used); err != nil {
			a.logger.Warn("apply autofilter after duplicate check", slog.String("error", err.Error()))
		}
	}
	return "Duplicates found. Count column added.", nil
}

func (a *App) uniqueCount(Params) (string, error) {
	sel, area, err := a.entireColumnRange()
	if err != nil {
		return "", err
	}
	values, err := a.host.Values(area)
	if err != nil {
		return "", err
	}
	st := ColumnStatsOf(values)
	return fmt.Sprintf("Column %s contains:\n"+
		"  Unique Values:         %d\n"+
		"  Total Non-Blank Cells: %d\n"+
		"  Total Blank Cells:     %d\n"+
		"  Total Rows with Data:  %d",
		ColToName(sel.Area.First.Col), st.Unique, st.NonBlank, st.Blank, st.Rows), nil
}

func (a *App) toggleAutoFilter(Params) (string, error) {
	sheet := a.host.ActiveSheet()
	enabled, err := a.host.AutoFilterEnabled(sheet)
	if err != nil {
		return "", err
	}
	if enabled {
		if err := a.host.RemoveAutoFilter(sheet); err != nil {
			return "", err
		}
		return "AutoFilter removed.", nil
	}
	used, err := a.usedRange(sheet)
	if errors.Is(err, ErrNoEffectiveRange) {
		return "Not enough data to apply an AutoFilter.", nil
	}
	if err != nil {
		return "", err
	}
	if used.CellCount() <= 1 {
		return "Not enough data to apply an AutoFilter.", nil
	}
	if err := a.host.ApplyAutoFilter(used); err != nil {
		return "", err
	}
	return fmt.Sprintf("AutoFilter applied to %s.", used), nil
}

func (a *App) resetColumn(Params) (string, error) {
	_, area, err := a.entireColumnRange()
	if err != nil {
		return "", err
	}
	values, err := a.host.Values(area)
	if err != nil {
		return "", err
	}
	out, err := MapGrid(values, Pure(ResetNumber))
	if err != nil {
		return "", err
	}
	if err := a.snapshot(area, values); err != nil {
		return "", err
	}
	if err := a.host.ClearFormats(area); err != nil {
		return "", err
	}
	if err := a.host.SetValues(area, out); err != nil {
		return "", err
	}
	return "Column reset successfully.", nil
}
