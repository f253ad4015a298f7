package xlquick

import (
	"fmt"
	"log/slog"
)

// ReportLink is a back-reference hyperlink placed in a report cell.
// Row is relative to the first data row; Col is the report column.
type ReportLink struct {
	Row  int
	Col  int
	Link HyperlinkValue
}

// Report is a tabular result: a header row followed by data rows, plus optional links.
type Report struct {
	Header []string
	Rows   Grid
	Links  []ReportLink
}

// Width returns the number of report columns.
func (r *Report) Width() int {
	return max(len(r.Header), r.Rows.Cols())
}

// NewCompareReport renders a comparison diff list. Columns B and D link back to the
// differing cell in each compared sheet.
func NewCompareReport(entries []DiffEntry, labelA, labelB string) *Report {
	rep := &Report{
		Header: []string{
			labelA + " Cell Contains",
			"Reference",
			labelB + " Cell Contains",
			"Reference",
		},
		Rows:  make(Grid, 0, len(entries)),
		Links: make([]ReportLink, 0, 2*len(entries)),
	}
	for i, d := range entries {
		rep.Rows = append(rep.Rows, []Value{d.DisplayA(), Text(d.Label), d.DisplayB(), Text(d.Label)})
		rep.Links = append(rep.Links,
			ReportLink{Row: i, Col: 1, Link: LocationLink(labelA, d.Row, d.Col)},
			ReportLink{Row: i, Col: 3, Link: LocationLink(labelB, d.Row, d.Col)},
		)
	}
	return rep
}

// NewMissingReport renders the two set differences side by side. The first column lists
// what the first source is missing (values only in the second), the second column the reverse.
func NewMissingReport(m Missing, labelA, labelB string) *Report {
	rows := max(len(m.InFirst), len(m.InSecond))
	rep := &Report{
		Header: []string{"Missing in " + labelA, "Missing in " + labelB},
		Rows:   NewGrid(rows, 2),
	}
	for i := 0; i < rows; i++ {
		if i < len(m.InFirst) {
			rep.Rows[i][0] = m.InFirst[i]
		}
		if i < len(m.InSecond) {
			rep.Rows[i][1] = m.InSecond[i]
		}
	}
	return rep
}

// ReportOptions controls how a report is written.
type ReportOptions struct {
	ChunkSize int // data rows per SetValues call
	LinkLimit int // links are skipped entirely above this many rows
	Logger    *slog.Logger
}

// ReportStats describes what WriteReport did.
type ReportStats struct {
	Rows         int
	Chunks       int
	Links        int
	LinksSkipped bool
}

// WriteReport writes rep to sheet, creating and activating it as needed. Existing content is
// cleared first on a best-effort basis. Data rows are written in chunks so no single host
// call carries more than ChunkSize rows. Links are written only when the row count is within
// LinkLimit; the data itself is always written in full.
func WriteReport(host Host, sheet string, rep *Report, opts ReportOptions) (ReportStats, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "report"), slog.String("sheet", sheet))
	if opts.ChunkSize <= 0 {
		opts.ChunkSize = DefaultChunkSize
	}

	if !host.HasSheet(sheet) {
		if err := host.AddSheet(sheet); err != nil {
			return ReportStats{}, fmt.Errorf("add report sheet %q: %w", sheet, err)
		}
	} else if err := host.ClearSheet(sheet); err != nil {
		logger.Warn("clear existing report content", slog.String("error", err.Error()))
	}
	if err := host.ActivateSheet(sheet); err != nil {
		return ReportStats{}, fmt.Errorf("activate report sheet %q: %w", sheet, err)
	}

	width := rep.Width()
	header := NewGrid(1, width)
	for c, h := range rep.Header {
		header[0][c] = TextOrEmpty(h)
	}
	headerArea := AreaOf(sheet, 0, 0, Size{Width: width, Height: 1})
	if err := host.SetValues(headerArea, header); err != nil {
		return ReportStats{}, fmt.Errorf("write report header: %w", err)
	}
	if err := host.SetHeaderStyle(headerArea); err != nil {
		logger.Warn("format report header", slog.String("error", err.Error()))
	}

	stats := ReportStats{Rows: rep.Rows.Rows()}
	writeLinks := stats.Rows <= opts.LinkLimit
	stats.LinksSkipped = !writeLinks && len(rep.Links) > 0

	// links are ordered by row, so each chunk consumes a contiguous run
	nextLink := 0
	for start := 0; start < stats.Rows; start += opts.ChunkSize {
		end := min(start+opts.ChunkSize, stats.Rows)
		chunk := rep.Rows[start:end].Normalize()
		area := AreaOf(sheet, start+1, 0, Size{Width: chunk.Cols(), Height: end - start})
		if err := host.SetValues(area, chunk); err != nil {
			return stats, fmt.Errorf("write report rows %d-%d: %w", start+2, end+1, err)
		}
		stats.Chunks++

		if !writeLinks {
			continue
		}
		for ; nextLink < len(rep.Links) && rep.Links[nextLink].Row < end; nextLink++ {
			l := rep.Links[nextLink]
			if err := host.SetHyperlink(NewCellRef(sheet, l.Row+1, l.Col), l.Link); err != nil {
				return stats, fmt.Errorf("write report link at row %d: %w", l.Row+2, err)
			}
			stats.Links++
		}
	}

	if err := host.AutofitColumns(sheet); err != nil {
		logger.Warn("autofit report columns", slog.String("error", err.Error()))
	}
	logger.Info("report written",
		slog.Int("rows", stats.Rows),
		slog.Int("chunks", stats.Chunks),
		slog.Int("links", stats.Links),
		slog.Bool("links_skipped", stats.LinksSkipped))
	return stats, nil
}
