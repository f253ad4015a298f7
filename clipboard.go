package xlquick

import (
	"fmt"
	"strings"
)

// JoinSelection concatenates the non-blank display texts in row-major order. Each text is
// trimmed and wrapped in leading and trailing; values are separated by delimiter plus a space,
// except for line-break delimiters.
func JoinSelection(text [][]string, leading, trailing, delimiter string) (string, int) {
	sep := delimiter
	switch delimiter {
	case "\n", "\r", "\r\n":
	default:
		sep += " "
	}
	var b strings.Builder
	n := 0
	for _, row := range text {
		for _, cell := range row {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			if n > 0 {
				b.WriteString(sep)
			}
			b.WriteString(leading)
			b.WriteString(cell)
			b.WriteString(trailing)
			n++
		}
	}
	return b.String(), n
}

func (a *App) selectionToClipboard(p Params) (string, error) {
	area, err := a.selectedRange()
	if err != nil {
		return "", err
	}
	text, err := a.host.DisplayText(area)
	if err != nil {
		return "", err
	}
	joined, n := JoinSelection(text, p.Leading, p.Trailing, p.Delimiter)
	if n == 0 {
		return "No values to copy.", nil
	}
	if err := a.host.WriteClipboard(joined); err != nil {
		return "", err
	}
	return fmt.Sprintf("Copied %d values to the clipboard.", n), nil
}

func (a *App) copyHighlighted(Params) (string, error) {
	area, err := a.selectedRange()
	if err != nil {
		return "", err
	}
	text, err := a.host.DisplayText(area)
	if err != nil {
		return "", err
	}
	sheet := area.SheetName()
	var lines []string
	for r, row := range text {
		for c, cell := range row {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			color, err := a.host.FillColor(NewCellRef(sheet, area.First.Row+r, area.First.Col+c))
			if err != nil {
				return "", err
			}
			if color != "" {
				lines = append(lines, cell)
			}
		}
	}
	if len(lines) == 0 {
		return "No highlighted cells found.", nil
	}
	if err := a.host.WriteClipboard(strings.Join(lines, "\n")); err != nil {
		return "", err
	}
	return fmt.Sprintf("Copied %d highlighted cells to the clipboard.", len(lines)), nil
}
