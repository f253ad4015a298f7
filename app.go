package xlquick

import (
	"errors"
	"fmt"
	"log/slog"
)

// Params carries the already-validated arguments an action may need. Each action reads only
// the fields it documents; the rest are ignored.
type Params struct {
	Leading   string // text-add-leadtrail, selection-to-clipboard
	Trailing  string // text-add-leadtrail, selection-to-clipboard
	Delimiter string // split-to-rows, selection-to-clipboard
	HasHeader bool   // split-to-rows, add-hyperlinks: leave the first row alone

	BaseURL  string // add-hyperlinks
	CellURLs bool   // add-hyperlinks: cells already hold the full URL

	DateMode   DateMode   // date-converter
	DateFormat string     // date-converter, one of DateFormats()
	DateLocale DateLocale // date-converter: how ambiguous text dates are read

	SourceA   string // compare-worksheets: sheet name; find-missing-data: range address
	SourceB   string
	Highlight bool // compare-worksheets, find-missing-data

	Expression string // expression
}

// Result is what an action reports back to the user.
type Result struct {
	Action        Action
	Title         string
	Message       string
	Success       bool
	UndoAvailable bool
	Err           error
}

type handler func(a *App, p Params) (string, error)

var handlers = map[Action]handler{
	ActionUndo:                 (*App).undoLast,
	ActionTrimCleanSelected:    (*App).trimCleanSelected,
	ActionTrimCleanSheet:       (*App).trimCleanSheet,
	ActionTrimCleanWorkbook:    (*App).trimCleanWorkbook,
	ActionUppercase:            textHandler(TextUppercase),
	ActionLowercase:            textHandler(TextLowercase),
	ActionPropercase:           textHandler(TextPropercase),
	ActionRemoveLetters:        textHandler(TextRemoveLetters),
	ActionRemoveNumbers:        textHandler(TextRemoveNumbers),
	ActionRemoveSpecial:        textHandler(TextRemoveSpecial),
	ActionSubscriptNumbers:     textHandler(TextSubscriptNumbers),
	ActionAddLeadTrail:         (*App).addLeadTrail,
	ActionDateConverter:        (*App).convertDates,
	ActionDeleteEmptyRows:      (*App).deleteEmptyRows,
	ActionDeleteEmptyColumns:   (*App).deleteEmptyColumns,
	ActionRemoveHyperlinks:     (*App).removeHyperlinks,
	ActionAddHyperlinks:        (*App).addHyperlinks,
	ActionFillDown:             (*App).fillDown,
	ActionSplitToRows:          (*App).splitToRows,
	ActionSelectionToClipboard: (*App).selectionToClipboard,
	ActionCopyHighlighted:      (*App).copyHighlighted,
	ActionCheckDuplicates:      (*App).checkDuplicates,
	ActionUniqueCount:          (*App).uniqueCount,
	ActionToggleAutoFilter:     (*App).toggleAutoFilter,
	ActionFindMissingData:      (*App).findMissingData,
	ActionCompareWorksheets:    (*App).compareWorksheets,
	ActionResetColumn:          (*App).resetColumn,
	ActionExpression:           (*App).evalExpression,
}

// App runs menu actions against a host. It owns the session's undo cache.
// Actions are expected to run one at a time.
type App struct {
	host   Host
	undo   *UndoCache
	eval   *ExprEvaluator
	opts   *Options
	logger *slog.Logger
}

// NewApp creates an App for host.
func NewApp(host Host, opts ...Option) *App {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	logger := o.logger.With(slog.String("component", "app"))
	return &App{
		host:   host,
		undo:   NewUndoCache(o.logger),
		eval:   NewExprEvaluator(),
		opts:   o,
		logger: logger,
	}
}

// Host returns the host the App acts on.
func (a *App) Host() Host {
	return a.host
}

// CanUndo reports whether an undo snapshot is held.
func (a *App) CanUndo() bool {
	return a.undo.CanRestore()
}

// RunCode parses code and runs the action.
func (a *App) RunCode(code string, p Params) Result {
	action, err := ParseAction(code)
	if err != nil {
		return Result{Title: "Unknown", Message: err.Error(), Err: err, UndoAvailable: a.CanUndo()}
	}
	return a.Run(action, p)
}

// Run executes one action and converts its outcome into a Result. It never panics on
// host failures; writes made before a failure are not rolled back.
func (a *App) Run(action Action, p Params) Result {
	res := Result{Action: action, Title: action.Title()}
	h, ok := handlers[action]
	if !ok {
		res.Err = fmt.Errorf("%w: %s", ErrUnknownAction, action)
		res.Message = res.Err.Error()
		res.UndoAvailable = a.CanUndo()
		return res
	}

	logger := a.logger.With(slog.String("action", action.String()))
	logger.Debug("action started")
	msg, err := h(a, p)
	res.UndoAvailable = a.CanUndo()
	if err != nil {
		res.Err = &ActionError{Action: action, Err: err}
		res.Message = userMessage(err)
		logger.Warn("action failed", slog.String("error", err.Error()))
		return res
	}
	res.Success = true
	res.Message = msg
	logger.Info("action finished", slog.String("message", msg))
	return res
}

// userMessage turns an action error into the text shown to the user.
func userMessage(err error) string {
	switch {
	case errors.Is(err, ErrNoEffectiveRange):
		return "No effective range found for the current selection."
	case errors.Is(err, ErrNoSelection):
		return "Nothing is selected."
	case errors.Is(err, ErrNeedEntireColumn):
		return "Please select an entire column to use."
	case errors.Is(err, ErrNeedSingleColumn):
		return "Please select a single column that contains more than one cell of data."
	case errors.Is(err, ErrBadParameter), errors.Is(err, ErrSheetNotFound), errors.Is(err, ErrUnsupported):
		return err.Error()
	case errors.Is(err, ErrInvalidArgument):
		return "Internal error: " + err.Error()
	default:
		return "An error occurred: " + err.Error()
	}
}

// selection returns the current selection bound to a sheet.
func (a *App) selection() (Selection, error) {
	sel, err := a.host.Selection()
	if err != nil {
		return Selection{}, err
	}
	if sel.Area.SheetName() == "" {
		sel.Area = sel.Area.WithSheet(a.host.ActiveSheet())
	}
	return sel, nil
}

// effectiveRange resolves a selection to the cells worth processing: whole-column and
// whole-row selections are cut down to the sheet's used range.
func (a *App) effectiveRange(sel Selection) (AreaRef, error) {
	if !sel.EntireColumn && !sel.EntireRow {
		if sel.Area.CellCount() == 0 {
			return AreaRef{}, ErrNoEffectiveRange
		}
		return sel.Area, nil
	}
	sheet := sel.Area.SheetName()
	used, ok, err := a.host.UsedRange(sheet)
	if err != nil {
		return AreaRef{}, err
	}
	if !ok {
		return AreaRef{}, ErrNoEffectiveRange
	}
	area, ok := sel.Area.Intersect(used)
	if !ok || area.CellCount() == 0 {
		return AreaRef{}, ErrNoEffectiveRange
	}
	return area.WithSheet(sheet), nil
}

// selectedRange is selection followed by effectiveRange.
func (a *App) selectedRange() (AreaRef, error) {
	sel, err := a.selection()
	if err != nil {
		return AreaRef{}, err
	}
	return a.effectiveRange(sel)
}

// entireColumnRange resolves the selection for actions that only work on whole columns.
func (a *App) entireColumnRange() (Selection, AreaRef, error) {
	sel, err := a.selection()
	if err != nil {
		return Selection{}, AreaRef{}, err
	}
	if !sel.EntireColumn {
		return Selection{}, AreaRef{}, ErrNeedEntireColumn
	}
	area, err := a.effectiveRange(sel)
	if err != nil {
		return Selection{}, AreaRef{}, err
	}
	return sel, area, nil
}

// usedRange returns the used range of sheet, or ErrNoEffectiveRange when it is empty.
func (a *App) usedRange(sheet string) (AreaRef, error) {
	used, ok, err := a.host.UsedRange(sheet)
	if err != nil {
		return AreaRef{}, err
	}
	if !ok {
		return AreaRef{}, ErrNoEffectiveRange
	}
	return used, nil
}

// snapshot stores the current values and number formats of area in the undo cache.
func (a *App) snapshot(area AreaRef, values Grid) error {
	formats, err := a.host.NumberFormats(area)
	if err != nil {
		return fmt.Errorf("read number formats for undo: %w", err)
	}
	return a.undo.StoreArea(area, values, formats)
}

// rewrite applies f to every cell of area and writes the result back. When undoable is set
// the prior state is stored first. It returns how many cells changed.
func (a *App) rewrite(area AreaRef, f CellFunc, undoable bool) (int, error) {
	values, err := a.host.Values(area)
	if err != nil {
		return 0, err
	}
	out, err := MapGrid(values, f)
	if err != nil {
		return 0, err
	}
	changed := countChanged(values, out)
	if changed == 0 {
		return 0, nil
	}
	if undoable {
		if err := a.snapshot(area, values); err != nil {
			return 0, err
		}
	}
	if err := a.host.SetValues(area, out); err != nil {
		return 0, err
	}
	return changed, nil
}

func countChanged(before, after Grid) int {
	n := 0
	for r := range after {
		for c := range after[r] {
			if before.At(r, c) != after[r][c] {
				n++
			}
		}
	}
	return n
}

func (a *App) undoLast(Params) (string, error) {
	if !a.undo.CanRestore() {
		return "Nothing to undo.", nil
	}
	if err := a.undo.Restore(a.host); err != nil {
		return "", fmt.Errorf("undo failed, the change can still be undone: %w", err)
	}
	return "The last change was undone.", nil
}
