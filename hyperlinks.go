package xlquick

import (
	"fmt"
	"strings"
)

func (a *App) removeHyperlinks(Params) (string, error) {
	area, err := a.selectedRange()
	if err != nil {
		return "", err
	}
	sheet := area.SheetName()
	removed := 0
	for r := area.First.Row; r <= area.Last.Row; r++ {
		for c := area.First.Col; c <= area.Last.Col; c++ {
			ok, err := a.host.RemoveHyperlink(NewCellRef(sheet, r, c))
			if err != nil {
				return "", err
			}
			if ok {
				removed++
			}
		}
	}
	return fmt.Sprintf("Removed %d hyperlinks.", removed), nil
}

// LinkTarget returns the URL for a cell: the cell text itself when cellURLs is set,
// otherwise base followed by the cell text. Blank cells get no link.
func LinkTarget(v Value, base string, cellURLs bool) (string, bool) {
	if IsBlank(v) {
		return "", false
	}
	s := strings.TrimSpace(v.String())
	if cellURLs {
		return s, true
	}
	return base + s, true
}

func (a *App) addHyperlinks(p Params) (string, error) {
	base := strings.TrimSpace(p.BaseURL)
	if !p.CellURLs && base == "" {
		return "", fmt.Errorf("%w: a base URL is required", ErrBadParameter)
	}
	area, err := a.selectedRange()
	if err != nil {
		return "", err
	}
	values, err := a.host.Values(area)
	if err != nil {
		return "", err
	}
	sheet := area.SheetName()
	added := 0
	for r, row := range values {
		if r == 0 && p.HasHeader {
			continue
		}
		for c, v := range row {
			url, ok := LinkTarget(v, base, p.CellURLs)
			if !ok {
				continue
			}
			ref := NewCellRef(sheet, area.First.Row+r, area.First.Col+c)
			if err := a.host.SetHyperlink(ref, Hyperlink(url, v.String())); err != nil {
				return "", err
			}
			added++
		}
	}
	return fmt.Sprintf("Added %d hyperlinks.", added), nil
}
