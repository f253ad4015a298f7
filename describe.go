package xlquick

import (
	"fmt"
	"strings"
)

// describeHeaderLimit caps how many header cells are listed per sheet.
const describeHeaderLimit = 8

// DescribeWorkbook returns a human-readable outline of the workbook: every sheet with its
// used range, autofilter state and header row, plus the current selection. Useful for
// choosing sheet names and ranges before running compare or missing-data actions.
func DescribeWorkbook(h Host) (string, error) {
	var b strings.Builder
	names := h.SheetNames()
	active := h.ActiveSheet()
	fmt.Fprintf(&b, "Workbook: %d sheets\n", len(names))

	for _, name := range names {
		if err := describeSheet(&b, h, name, name == active); err != nil {
			return "", err
		}
	}

	sel, err := h.Selection()
	switch {
	case err == nil:
		fmt.Fprintf(&b, "Selection: %s\n", sel)
	default:
		b.WriteString("Selection: none\n")
	}
	return b.String(), nil
}

// describeSheet writes one sheet's line and, when it has data, its header row.
func describeSheet(b *strings.Builder, h Host, name string, active bool) error {
	marker := " "
	if active {
		marker = "*"
	}

	used, ok, err := h.UsedRange(name)
	if err != nil {
		return fmt.Errorf("describe %q: %w", name, err)
	}
	if !ok {
		fmt.Fprintf(b, "%s %s <empty>\n", marker, QuoteSheet(name))
		return nil
	}

	fmt.Fprintf(b, "%s %s %s", marker, used, used.Size())
	filtered, err := h.AutoFilterEnabled(name)
	if err != nil {
		return fmt.Errorf("describe %q: %w", name, err)
	}
	if filtered {
		b.WriteString(" autofilter")
	}
	b.WriteByte('\n')

	header := AreaOf(name, used.First.Row, used.First.Col, Size{Width: min(used.Size().Width, describeHeaderLimit), Height: 1})
	text, err := h.DisplayText(header)
	if err != nil {
		return fmt.Errorf("describe %q: %w", name, err)
	}
	if len(text) == 0 {
		return nil
	}
	cells := make([]string, 0, len(text[0]))
	for _, t := range text[0] {
		if t = strings.TrimSpace(t); t == "" {
			t = "-"
		}
		cells = append(cells, t)
	}
	more := ""
	if used.Size().Width > describeHeaderLimit {
		more = ", ..."
	}
	fmt.Fprintf(b, "    header: %s%s\n", strings.Join(cells, ", "), more)
	return nil
}
