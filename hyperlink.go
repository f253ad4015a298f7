package xlquick

import "strings"

// HyperlinkValue represents a clickable hyperlink in a cell.
// A URL starting with "#" points inside the workbook, e.g. "#'Sheet1'!B4".
type HyperlinkValue struct {
	URL     string
	Display string
}

// String returns the display text for the hyperlink.
func (h HyperlinkValue) String() string {
	if h.Display != "" {
		return h.Display
	}
	return h.URL
}

// IsLocation reports whether the link targets a cell in the same workbook.
func (h HyperlinkValue) IsLocation() bool {
	return strings.HasPrefix(h.URL, "#")
}

// Hyperlink creates a HyperlinkValue.
func Hyperlink(url, display string) HyperlinkValue {
	return HyperlinkValue{URL: url, Display: display}
}

// LocationLink builds an in-workbook link to ref, displayed as the cell label.
func LocationLink(sheet string, row, col int) HyperlinkValue {
	label := CellName(row, col)
	return HyperlinkValue{URL: "#" + quoteSheetAlways(sheet) + "!" + label, Display: label}
}

func quoteSheetAlways(sheet string) string {
	return "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
}
