// Package main provides the xlquick command line tool.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/javajack/xlquick"
)

type runFlags struct {
	actions    []string
	selection  string
	sheet      string
	output     string
	configPath string
	verbose    bool
	check      bool

	leading    string
	trailing   string
	delimiter  string
	hasHeader  bool
	baseURL    string
	cellURLs   bool
	dateMode   string
	dateFormat string
	dateLocale string
	sourceA    string
	sourceB    string
	highlight  bool
	expression string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "xlquick",
		Short: "Quick data-cleaning tools for xlsx workbooks",
		Long: `xlquick runs spreadsheet cleanup actions (trim, case changes, fill-down,
duplicate checks, sheet comparison and more) against an xlsx workbook.`,
		SilenceUsage: true,
	}
	rootCmd.AddCommand(newRunCmd(), newActionsCmd(), newDescribeCmd())
	return rootCmd
}

func newActionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "actions",
		Short: "List the available actions",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), xlquick.DescribeActions())
		},
	}
}

func newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe [input.xlsx]",
		Short: "Show the sheets, used ranges and header rows of a workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); os.IsNotExist(err) {
				return fmt.Errorf("file not found: %s", args[0])
			}
			host, err := xlquick.OpenWorkbook(args[0])
			if err != nil {
				return err
			}
			defer host.Close()

			out, err := xlquick.DescribeWorkbook(host)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newRunCmd() *cobra.Command {
	f := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run [input.xlsx]",
		Short: "Run one or more actions against a workbook",
		Example: `  xlquick run book.xlsx --do trim-clean-selected --select "Sheet1!A1:C20" -o out.xlsx
  xlquick run book.xlsx --do check-duplicates --select "Sheet1!B:B" -o out.xlsx
  xlquick run book.xlsx --do compare-worksheets --source-a Jan --source-b Feb --highlight -o out.xlsx`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runActions(cmd, args[0], f)
		},
	}

	fl := cmd.Flags()
	fl.StringSliceVar(&f.actions, "do", nil, "Action code to run; repeat to run several in order (see 'xlquick actions')")
	fl.StringVar(&f.selection, "select", "", `Selection such as "Sheet1!A1:C10", "B:B" or "2:4"`)
	fl.StringVar(&f.sheet, "sheet", "", "Sheet to activate before running")
	fl.StringVarP(&f.output, "output", "o", "", "Output file path (default: overwrite the input)")
	fl.StringVar(&f.configPath, "config", "", "YAML config file")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "Log debug output to stderr")
	fl.BoolVar(&f.check, "check", false, "Only check the action parameters; do not touch the workbook")

	fl.StringVar(&f.leading, "leading", "", "Leading text")
	fl.StringVar(&f.trailing, "trailing", "", "Trailing text")
	fl.StringVar(&f.delimiter, "delimiter", "", "Delimiter for split-to-rows and selection-to-clipboard")
	fl.BoolVar(&f.hasHeader, "has-header", false, "Leave the first row of the selection alone")
	fl.StringVar(&f.baseURL, "base-url", "", "Base URL for add-hyperlinks")
	fl.BoolVar(&f.cellURLs, "cell-urls", false, "Cells already hold full URLs")
	fl.StringVar(&f.dateMode, "date-mode", "", "Date converter mode: text or serial")
	fl.StringVar(&f.dateFormat, "date-format", "", "Date format, e.g. yyyy-MM-dd")
	fl.StringVar(&f.dateLocale, "date-locale", "", "How ambiguous dates are read: US or Other")
	fl.StringVar(&f.sourceA, "source-a", "", "First sheet (compare) or range (find-missing-data)")
	fl.StringVar(&f.sourceB, "source-b", "", "Second sheet (compare) or range (find-missing-data)")
	fl.BoolVar(&f.highlight, "highlight", false, "Highlight differences or missing values")
	fl.StringVar(&f.expression, "expr", "", "Expression evaluated for each selected cell")

	_ = cmd.MarkFlagRequired("do")
	return cmd
}

func runActions(cmd *cobra.Command, inputPath string, f *runFlags) error {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	cfg := &Config{}
	if f.configPath != "" {
		var err error
		if cfg, err = LoadConfig(f.configPath); err != nil {
			return err
		}
	}
	level, _ := parseLevel(cfg.LogLevel)
	if f.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	params, err := f.params(cmd, cfg.ActionParams())
	if err != nil {
		return err
	}
	if err := checkParams(cmd, logger, f.actions, params); err != nil {
		return err
	}
	if f.check {
		fmt.Fprintf(cmd.OutOrStdout(), "%d actions OK\n", len(f.actions))
		return nil
	}

	host, err := xlquick.OpenWorkbook(inputPath,
		xlquick.WithClipboard(cmd.OutOrStdout()),
		xlquick.WithHostLogger(logger))
	if err != nil {
		return err
	}
	defer host.Close()

	if f.sheet != "" {
		if err := host.ActivateSheet(f.sheet); err != nil {
			return err
		}
	}
	if f.selection != "" {
		sel, err := xlquick.ParseSelection(f.selection)
		if err != nil {
			return fmt.Errorf("invalid --select: %w", err)
		}
		if sel.Area.SheetName() == "" {
			sel.Area = sel.Area.WithSheet(host.ActiveSheet())
		}
		host.SetSelection(sel)
	}

	app := xlquick.NewApp(host, append(cfg.Options(), xlquick.WithLogger(logger))...)
	failed := 0
	for _, code := range f.actions {
		res := app.RunCode(code, params)
		fmt.Fprintln(cmd.ErrOrStderr(), renderResult(res))
		if !res.Success {
			failed++
		}
	}

	out := f.output
	if out == "" {
		out = inputPath
	}
	if err := host.SaveAs(out); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d actions failed", failed, len(f.actions))
	}
	return nil
}

// checkParams validates every action before the workbook is opened. Warnings are logged;
// any error aborts the run.
func checkParams(cmd *cobra.Command, logger *slog.Logger, codes []string, p xlquick.Params) error {
	var issues []xlquick.ValidationIssue
	for _, code := range codes {
		action, err := xlquick.ParseAction(code)
		if err != nil {
			return err
		}
		issues = append(issues, xlquick.ValidateParams(action, p)...)
	}
	for _, issue := range issues {
		if issue.Severity == xlquick.SeverityWarning {
			logger.Warn(issue.Message, slog.String("action", issue.Action.String()))
			continue
		}
		fmt.Fprintln(cmd.ErrOrStderr(), issue)
	}
	if xlquick.HasErrors(issues) {
		return fmt.Errorf("parameter check failed")
	}
	return nil
}

// params overlays flags that were set explicitly on top of the config defaults.
func (f *runFlags) params(cmd *cobra.Command, p xlquick.Params) (xlquick.Params, error) {
	changed := cmd.Flags().Changed
	if changed("leading") {
		p.Leading = f.leading
	}
	if changed("trailing") {
		p.Trailing = f.trailing
	}
	if changed("delimiter") {
		p.Delimiter = f.delimiter
	}
	if changed("has-header") {
		p.HasHeader = f.hasHeader
	}
	if changed("base-url") {
		p.BaseURL = f.baseURL
	}
	if changed("cell-urls") {
		p.CellURLs = f.cellURLs
	}
	if changed("date-mode") {
		mode, err := xlquick.ParseDateMode(f.dateMode)
		if err != nil {
			return p, err
		}
		p.DateMode = mode
	}
	if changed("date-format") {
		p.DateFormat = f.dateFormat
	}
	if changed("date-locale") {
		locale, err := xlquick.ParseDateLocale(f.dateLocale)
		if err != nil {
			return p, err
		}
		p.DateLocale = locale
	}
	if changed("source-a") {
		p.SourceA = f.sourceA
	}
	if changed("source-b") {
		p.SourceB = f.sourceB
	}
	if changed("highlight") {
		p.Highlight = f.highlight
	}
	if changed("expr") {
		p.Expression = f.expression
	}
	return p, nil
}
