package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/javajack/xlquick"
)

// Config is the optional YAML file passed with --config. Flags given on the command line
// override the params it sets.
type Config struct {
	LogLevel string `yaml:"log_level,omitempty"`

	ChunkSize      int    `yaml:"chunk_size,omitempty"`
	LinkLimit      *int   `yaml:"link_limit,omitempty"`
	HighlightLimit *int   `yaml:"highlight_limit,omitempty"`
	HighlightColor string `yaml:"highlight_color,omitempty"`

	CompareReportSheet string `yaml:"compare_report_sheet,omitempty"`
	MissingReportSheet string `yaml:"missing_report_sheet,omitempty"`

	Params ParamsConfig `yaml:"params,omitempty"`
}

// ParamsConfig holds default action parameters.
type ParamsConfig struct {
	Leading    string `yaml:"leading,omitempty"`
	Trailing   string `yaml:"trailing,omitempty"`
	Delimiter  string `yaml:"delimiter,omitempty"`
	HasHeader  bool   `yaml:"has_header,omitempty"`
	BaseURL    string `yaml:"base_url,omitempty"`
	CellURLs   bool   `yaml:"cell_urls,omitempty"`
	DateMode   string `yaml:"date_mode,omitempty"`
	DateFormat string `yaml:"date_format,omitempty"`
	DateLocale string `yaml:"date_locale,omitempty"`
	Highlight  bool   `yaml:"highlight,omitempty"`
	Expression string `yaml:"expression,omitempty"`
}

// LoadConfig reads and validates a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig parses YAML config data.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	if cfg.ChunkSize < 0 {
		return nil, fmt.Errorf("chunk_size must not be negative")
	}
	if _, err := xlquick.ParseDateMode(cfg.Params.DateMode); err != nil {
		return nil, err
	}
	if _, err := xlquick.ParseDateLocale(cfg.Params.DateLocale); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Options converts the config into App options.
func (c *Config) Options() []xlquick.Option {
	var opts []xlquick.Option
	if c.ChunkSize > 0 {
		opts = append(opts, xlquick.WithChunkSize(c.ChunkSize))
	}
	if c.LinkLimit != nil {
		opts = append(opts, xlquick.WithLinkLimit(*c.LinkLimit))
	}
	if c.HighlightLimit != nil {
		opts = append(opts, xlquick.WithHighlightLimit(*c.HighlightLimit))
	}
	if c.HighlightColor != "" {
		opts = append(opts, xlquick.WithHighlightColor(strings.TrimPrefix(c.HighlightColor, "#")))
	}
	if c.CompareReportSheet != "" || c.MissingReportSheet != "" {
		opts = append(opts, xlquick.WithReportSheets(c.CompareReportSheet, c.MissingReportSheet))
	}
	return opts
}

// ActionParams converts the params section. ParseConfig has already validated the enums.
func (c *Config) ActionParams() xlquick.Params {
	mode, _ := xlquick.ParseDateMode(c.Params.DateMode)
	locale, _ := xlquick.ParseDateLocale(c.Params.DateLocale)
	return xlquick.Params{
		Leading:    c.Params.Leading,
		Trailing:   c.Params.Trailing,
		Delimiter:  c.Params.Delimiter,
		HasHeader:  c.Params.HasHeader,
		BaseURL:    c.Params.BaseURL,
		CellURLs:   c.Params.CellURLs,
		DateMode:   mode,
		DateFormat: c.Params.DateFormat,
		DateLocale: locale,
		Highlight:  c.Params.Highlight,
		Expression: c.Params.Expression,
	}
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("invalid log_level %q (must be debug, info, warn or error)", s)
}
