package xlquick

import "fmt"

// EmptyRows returns the indexes of rows whose cells are all blank, in descending order.
func EmptyRows(g Grid) []int {
	var out []int
	for r := len(g) - 1; r >= 0; r-- {
		if allBlank(g[r]) {
			out = append(out, r)
		}
	}
	return out
}

// EmptyCols returns the indexes of columns whose cells are all blank, in descending order.
func EmptyCols(g Grid) []int {
	var out []int
	for c := g.Cols() - 1; c >= 0; c-- {
		blank := true
		for r := range g {
			if !IsBlank(g.At(r, c)) {
				blank = false
				break
			}
		}
		if blank {
			out = append(out, c)
		}
	}
	return out
}

func allBlank(row []Value) bool {
	for _, v := range row {
		if !IsBlank(v) {
			return false
		}
	}
	return true
}

func (a *App) deleteEmptyRows(Params) (string, error) {
	sheet := a.host.ActiveSheet()
	used, err := a.usedRange(sheet)
	if err != nil {
		return "", err
	}
	if used.Size().Height <= 1 {
		return "Deleted 0 empty rows.", nil
	}
	values, err := a.host.Values(used)
	if err != nil {
		return "", err
	}
	rows := EmptyRows(values)
	for _, r := range rows {
		if err := a.host.DeleteRows(sheet, used.First.Row+r, 1); err != nil {
			return "", err
		}
	}
	return fmt.Sprintf("Deleted %d empty rows.", len(rows)), nil
}

func (a *App) deleteEmptyColumns(Params) (string, error) {
	sheet := a.host.ActiveSheet()
	used, err := a.usedRange(sheet)
	if err != nil {
		return "", err
	}
	if used.Size().Width <= 1 {
		return "Deleted 0 empty columns.", nil
	}
	values, err := a.host.Values(used)
	if err != nil {
		return "", err
	}
	cols := EmptyCols(values)
	for _, c := range cols {
		if err := a.host.DeleteCols(sheet, used.First.Col+c, 1); err != nil {
			return "", err
		}
	}
	return fmt.Sprintf("Deleted %d empty columns.", len(cols)), nil
}
