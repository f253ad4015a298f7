package xlquick

import "log/slog"

// Default limits for reports and highlighting.
const (
	DefaultChunkSize      = 10000
	DefaultLinkLimit      = 20000
	DefaultHighlightLimit = 500
	DefaultHighlightColor = "FFFF00"

	DefaultCompareReportSheet = "Compare Report"
	DefaultMissingReportSheet = "Missing Data Report"
)

// Options holds configuration for an App.
type Options struct {
	logger             *slog.Logger
	chunkSize          int
	linkLimit          int
	highlightLimit     int
	highlightColor     string
	compareReportSheet string
	missingReportSheet string
}

func defaultOptions() *Options {
	return &Options{
		logger:             slog.Default(),
		chunkSize:          DefaultChunkSize,
		linkLimit:          DefaultLinkLimit,
		highlightLimit:     DefaultHighlightLimit,
		highlightColor:     DefaultHighlightColor,
		compareReportSheet: DefaultCompareReportSheet,
		missingReportSheet: DefaultMissingReportSheet,
	}
}

// Option configures an App.
type Option func(*Options)

// WithLogger sets the structured logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithChunkSize sets how many report rows are written per host call (default: 10000).
func WithChunkSize(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.chunkSize = n
		}
	}
}

// WithLinkLimit sets the row count above which report back-reference links are skipped (default: 20000).
func WithLinkLimit(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.linkLimit = n
		}
	}
}

// WithHighlightLimit caps how many differing cells a comparison highlights (default: 500).
func WithHighlightLimit(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.highlightLimit = n
		}
	}
}

// WithHighlightColor sets the fill color used to highlight cells, as RGB hex (default: "FFFF00").
func WithHighlightColor(color string) Option {
	return func(o *Options) {
		if color != "" {
			o.highlightColor = color
		}
	}
}

// WithReportSheets overrides the names of the comparison and missing-data report sheets.
func WithReportSheets(compare, missing string) Option {
	return func(o *Options) {
		if compare != "" {
			o.compareReportSheet = SafeSheetName(compare)
		}
		if missing != "" {
			o.missingReportSheet = SafeSheetName(missing)
		}
	}
}

// reportOptions extracts the report-writing subset.
func (o *Options) reportOptions() ReportOptions {
	return ReportOptions{ChunkSize: o.chunkSize, LinkLimit: o.linkLimit, Logger: o.logger}
}
