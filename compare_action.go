package xlquick

import (
	"fmt"
	"log/slog"
	"strings"
)

func (a *App) compareWorksheets(p Params) (string, error) {
	nameA, nameB := strings.TrimSpace(p.SourceA), strings.TrimSpace(p.SourceB)
	if nameA == "" || nameB == "" {
		return "", fmt.Errorf("%w: two sheet names are required", ErrBadParameter)
	}
	for _, name := range []string{nameA, nameB} {
		if !a.host.HasSheet(name) {
			return "", fmt.Errorf("sheet %q: %w", name, ErrSheetNotFound)
		}
	}

	gridA, okA, err := a.sheetGrid(nameA)
	if err != nil {
		return "", err
	}
	gridB, okB, err := a.sheetGrid(nameB)
	if err != nil {
		return "", err
	}
	if !okA || !okB {
		return "One or both sheets are empty.", nil
	}

	res := Compare(gridA, gridB)
	a.logger.Debug("sheets compared",
		slog.String("a", nameA), slog.String("b", nameB),
		slog.Int("rows", res.Rows), slog.Int("cols", res.Cols),
		slog.Int("differences", len(res.Entries)))
	if res.Identical {
		return "The sheets are identical!", nil
	}

	highlighted := 0
	if p.Highlight {
		if highlighted, err = a.highlightDiffs(res.Entries, nameA, nameB); err != nil {
			return "", err
		}
	}

	rep := NewCompareReport(res.Entries, nameA, nameB)
	stats, err := WriteReport(a.host, a.opts.compareReportSheet, rep, a.opts.reportOptions())
	if err != nil {
		return "", err
	}

	msg := fmt.Sprintf("Report created with %d differences.", len(res.Entries))
	if stats.LinksSkipped {
		msg += " Hyperlinks skipped for performance with large datasets."
	}
	if p.Highlight && highlighted < len(res.Entries) {
		msg += fmt.Sprintf(" Highlighted the first %d differences.", highlighted)
	}
	return msg, nil
}

// sheetGrid reads a sheet from A1 to the end of its used range, so grid coordinates are
// sheet coordinates.
func (a *App) sheetGrid(sheet string) (Grid, bool, error) {
	used, ok, err := a.host.UsedRange(sheet)
	if err != nil || !ok {
		return nil, false, err
	}
	area := NewAreaRef(NewCellRef(sheet, 0, 0), NewCellRef(sheet, used.Last.Row, used.Last.Col))
	g, err := a.host.Values(area)
	if err != nil {
		return nil, false, err
	}
	return g, true, nil
}

// highlightDiffs fills differing cells in both sheets, up to the configured limit.
func (a *App) highlightDiffs(entries []DiffEntry, sheetA, sheetB string) (int, error) {
	n := min(len(entries), a.opts.highlightLimit)
	for _, d := range entries[:n] {
		for _, sheet := range []string{sheetA, sheetB} {
			if err := a.host.SetFillColor(NewCellRef(sheet, d.Row, d.Col), a.opts.highlightColor); err != nil {
				return 0, fmt.Errorf("highlight %s!%s: %w", sheet, d.Label, err)
			}
		}
	}
	return n, nil
}

func (a *App) findMissingData(p Params) (string, error) {
	areaA, err := a.sourceArea(p.SourceA)
	if err != nil {
		return "", err
	}
	areaB, err := a.sourceArea(p.SourceB)
	if err != nil {
		return "", err
	}
	gridA, err := a.host.Values(areaA)
	if err != nil {
		return "", err
	}
	gridB, err := a.host.Values(areaB)
	if err != nil {
		return "", err
	}

	m := FindMissing(gridA, gridB)
	if m.Empty() {
		return "No missing data found between ranges.", nil
	}
	if p.Highlight {
		if err := a.highlightValues(areaA, gridA, m.InSecond); err != nil {
			return "", err
		}
		if err := a.highlightValues(areaB, gridB, m.InFirst); err != nil {
			return "", err
		}
	}

	rep := NewMissingReport(m, areaA.String(), areaB.String())
	if _, err := WriteReport(a.host, a.opts.missingReportSheet, rep, a.opts.reportOptions()); err != nil {
		return "", err
	}
	return fmt.Sprintf("Missing data report created: %d values missing from %s, %d missing from %s.",
		len(m.InFirst), areaA, len(m.InSecond), areaB), nil
}

// sourceArea resolves a range address such as "Sheet1!A1:A50". A bare sheet name means the
// sheet's used range; an address without a sheet refers to the active sheet.
func (a *App) sourceArea(addr string) (AreaRef, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return AreaRef{}, fmt.Errorf("%w: two range addresses are required", ErrBadParameter)
	}
	if a.host.HasSheet(addr) {
		used, err := a.usedRange(addr)
		if err != nil {
			return AreaRef{}, fmt.Errorf("sheet %q: %w", addr, err)
		}
		return used, nil
	}
	area, err := ParseAreaRef(addr)
	if err != nil {
		return AreaRef{}, fmt.Errorf("%w: %v", ErrBadParameter, err)
	}
	sheet := area.SheetName()
	if sheet == "" {
		sheet = a.host.ActiveSheet()
	} else if !a.host.HasSheet(sheet) {
		return AreaRef{}, fmt.Errorf("sheet %q: %w", sheet, ErrSheetNotFound)
	}
	return area.WithSheet(sheet), nil
}

// highlightValues fills every cell of area whose value is one of values.
func (a *App) highlightValues(area AreaRef, g Grid, values []Value) error {
	if len(values) == 0 {
		return nil
	}
	want := make(map[Value]struct{}, len(values))
	for _, v := range values {
		want[v] = struct{}{}
	}
	for r, row := range g {
		for c, v := range row {
			key, ok := missingKey(v)
			if !ok {
				continue
			}
			if _, hit := want[key]; !hit {
				continue
			}
			ref := NewCellRef(area.SheetName(), area.First.Row+r, area.First.Col+c)
			if err := a.host.SetFillColor(ref, a.opts.highlightColor); err != nil {
				return fmt.Errorf("highlight %s: %w", ref, err)
			}
		}
	}
	return nil
}
