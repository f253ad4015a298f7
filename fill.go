package xlquick

import (
	"fmt"
	"strings"
)

func (a *App) fillDown(Params) (string, error) {
	area, err := a.selectedRange()
	if err != nil {
		return "", err
	}
	values, err := a.host.Values(area)
	if err != nil {
		return "", err
	}
	out, filled := FillDown(values)
	if filled == 0 {
		return "No blank cells found to fill in the selected range.", nil
	}
	if err := a.snapshot(area, values); err != nil {
		return "", err
	}
	if err := a.host.SetValues(area, out); err != nil {
		return "", err
	}
	return fmt.Sprintf("Updates made to %d cells.", filled), nil
}

// SplitResult is a grid after delimited cells were spread over new rows.
type SplitResult struct {
	Grid Grid
	// Extra[i] is the number of rows inserted below source row i.
	Extra []int
	// Split counts the source rows that needed new rows.
	Split int
}

// SplitRows splits every delimited cell of g into consecutive rows. A source row grows by the
// largest number of parts any of its cells has; parts are trimmed and cleaned. Cells without
// the delimiter keep their value, and the rows added below them are left Empty.
// With hasHeader the first row is copied unchanged.
func SplitRows(g Grid, delimiter string, hasHeader bool) SplitResult {
	g = g.Normalize()
	res := SplitResult{Extra: make([]int, len(g))}
	for r, row := range g {
		if r == 0 && hasHeader {
			res.Grid = append(res.Grid, append([]Value(nil), row...))
			continue
		}
		parts := make([][]string, len(row))
		height := 1
		for c, v := range row {
			if v.IsEmpty() || v.String() == "" {
				continue
			}
			s := v.String()
			if !strings.Contains(s, delimiter) {
				continue
			}
			parts[c] = strings.Split(s, delimiter)
			height = max(height, len(parts[c]))
		}
		block := NewGrid(height, len(row))
		for c, v := range row {
			if parts[c] == nil {
				block[0][c] = v
				continue
			}
			for i, p := range parts[c] {
				block[i][c] = TextOrEmpty(CleanString(strings.TrimSpace(p)))
			}
		}
		if height > 1 {
			res.Extra[r] = height - 1
			res.Split++
		}
		res.Grid = append(res.Grid, block...)
	}
	return res
}

func (a *App) splitToRows(p Params) (string, error) {
	if p.Delimiter == "" {
		return "", fmt.Errorf("%w: a delimiter is required", ErrBadParameter)
	}
	sheet := a.host.ActiveSheet()
	used, err := a.usedRange(sheet)
	if err != nil {
		return "", err
	}
	if p.HasHeader && used.Size().Height < 2 {
		return "No data rows to process after skipping headers.", nil
	}
	values, err := a.host.Values(used)
	if err != nil {
		return "", err
	}
	res := SplitRows(values, p.Delimiter, p.HasHeader)
	if res.Split == 0 {
		return "No delimited values found.", nil
	}

	// bottom-up so earlier insertions do not shift later ones
	for r := len(res.Extra) - 1; r >= 0; r-- {
		if res.Extra[r] == 0 {
			continue
		}
		if err := a.host.InsertRows(sheet, used.First.Row+r+1, res.Extra[r]); err != nil {
			return "", fmt.Errorf("insert rows below row %d: %w", used.First.Row+r+1, err)
		}
	}
	target := AreaOf(sheet, used.First.Row, used.First.Col, res.Grid.Size())
	if err := a.host.SetValues(target, res.Grid); err != nil {
		return "", err
	}

	added := res.Grid.Rows() - values.Rows()
	filled, err := a.fillUsedRange(sheet)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Split %d rows, adding %d rows; filled %d blank cells.", res.Split, added, filled), nil
}

// fillUsedRange runs FillDown over the whole used range of sheet.
func (a *App) fillUsedRange(sheet string) (int, error) {
	used, ok, err := a.host.UsedRange(sheet)
	if err != nil || !ok {
		return 0, err
	}
	values, err := a.host.Values(used)
	if err != nil {
		return 0, err
	}
	out, filled := FillDown(values)
	if filled == 0 {
		return 0, nil
	}
	if err := a.host.SetValues(used, out); err != nil {
		return 0, err
	}
	return filled, nil
}
