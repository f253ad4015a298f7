package xlquick

import (
	"fmt"
	"strings"
)

// Action is one entry of the tool menu.
type Action int

const (
	ActionUndo Action = iota + 1
	ActionTrimCleanSelected
	ActionTrimCleanSheet
	ActionTrimCleanWorkbook
	ActionUppercase
	ActionLowercase
	ActionPropercase
	ActionRemoveLetters
	ActionRemoveNumbers
	ActionRemoveSpecial
	ActionSubscriptNumbers
	ActionAddLeadTrail
	ActionDateConverter
	ActionDeleteEmptyRows
	ActionDeleteEmptyColumns
	ActionRemoveHyperlinks
	ActionAddHyperlinks
	ActionFillDown
	ActionSplitToRows
	ActionSelectionToClipboard
	ActionCopyHighlighted
	ActionCheckDuplicates
	ActionUniqueCount
	ActionToggleAutoFilter
	ActionFindMissingData
	ActionCompareWorksheets
	ActionResetColumn
	ActionExpression
)

type actionInfo struct {
	code    string
	title   string
	summary string
}

var actionInfos = map[Action]actionInfo{
	ActionUndo:                 {"undo", "Undo", "restore the range changed by the last in-place action"},
	ActionTrimCleanSelected:    {"trim-clean-selected", "Trim and Clean", "strip control characters and extra spaces in the selection"},
	ActionTrimCleanSheet:       {"trim-clean-sheet", "Trim and Clean", "strip control characters and extra spaces in the active sheet"},
	ActionTrimCleanWorkbook:    {"trim-clean-workbook", "Trim and Clean", "strip control characters and extra spaces in every sheet"},
	ActionUppercase:            {"text-uppercase", "Text Options", "convert the selection to UPPER CASE"},
	ActionLowercase:            {"text-lowercase", "Text Options", "convert the selection to lower case"},
	ActionPropercase:           {"text-propercase", "Text Options", "convert the selection to Proper Case"},
	ActionRemoveLetters:        {"text-remove-letters", "Text Options", "remove letters from the selection"},
	ActionRemoveNumbers:        {"text-remove-numbers", "Text Options", "remove digits from the selection"},
	ActionRemoveSpecial:        {"text-remove-special", "Text Options", "remove punctuation and symbols from the selection"},
	ActionSubscriptNumbers:     {"subscript-numbers", "Subscript Numbers", "turn digits into subscript digits (H2O becomes H₂O)"},
	ActionAddLeadTrail:         {"text-add-leadtrail", "Add Leading/Trailing", "wrap every non-blank cell in leading and trailing text"},
	ActionDateConverter:        {"date-converter", "Date/Text Converter", "convert dates to text or to date serials"},
	ActionDeleteEmptyRows:      {"delete-empty-rows", "Delete Empty Rows", "delete blank rows inside the used range"},
	ActionDeleteEmptyColumns:   {"delete-empty-columns", "Delete Empty Columns", "delete blank columns inside the used range"},
	ActionRemoveHyperlinks:     {"remove-hyperlinks", "Remove Hyperlinks", "remove links from the selection, keeping the text"},
	ActionAddHyperlinks:        {"add-hyperlinks", "Add Hyperlinks", "link cells to a base URL plus their value, or to their own URL"},
	ActionFillDown:             {"fill-down", "Fill Down", "fill blank cells with the value above"},
	ActionSplitToRows:          {"split-to-rows", "Split to Rows", "split delimited cells into new rows, then fill down"},
	ActionSelectionToClipboard: {"selection-to-clipboard", "Selection Plus", "join the selection into one delimited string on the clipboard"},
	ActionCopyHighlighted:      {"copy-highlighted", "Copy Highlighted", "copy the text of filled cells to the clipboard"},
	ActionCheckDuplicates:      {"check-duplicates", "Check for Duplicates", "add a Count column next to the selected column"},
	ActionUniqueCount:          {"unique-count", "Column Information", "count unique, blank and non-blank cells in a column"},
	ActionToggleAutoFilter:     {"toggle-autofilter", "AutoFilter", "turn the sheet autofilter on or off"},
	ActionFindMissingData:      {"find-missing-data", "Find Missing Data", "list values present in one range but not the other"},
	ActionCompareWorksheets:    {"compare-worksheets", "Compare Sheets", "compare two sheets cell by cell"},
	ActionResetColumn:          {"reset-column", "Reset Column", "turn numeric text into numbers and clear formats"},
	ActionExpression:           {"expression", "Expression", "replace every cell with the result of an expression"},
}

// String returns the action code, e.g. "fill-down".
func (a Action) String() string {
	if info, ok := actionInfos[a]; ok {
		return info.code
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Title returns the heading shown with the action's result.
func (a Action) Title() string {
	if info, ok := actionInfos[a]; ok {
		return info.title
	}
	return "Unknown"
}

// Summary returns a one-line description of the action.
func (a Action) Summary() string {
	return actionInfos[a].summary
}

// ParseAction resolves an action code.
func ParseAction(code string) (Action, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	for _, a := range Actions() {
		if actionInfos[a].code == code {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAction, code)
}

// Actions returns every action in menu order.
func Actions() []Action {
	out := make([]Action, 0, len(actionInfos))
	for a := ActionUndo; a <= ActionExpression; a++ {
		out = append(out, a)
	}
	return out
}

// DescribeActions returns a human-readable listing of every action code.
func DescribeActions() string {
	var b strings.Builder
	width := 0
	for _, a := range Actions() {
		width = max(width, len(a.String()))
	}
	for _, a := range Actions() {
		fmt.Fprintf(&b, "%-*s  %s\n", width, a, a.Summary())
	}
	return b.String()
}
