package xlquick

import (
	"fmt"
	"strings"
)

// Severity indicates the severity of a validation issue.
type Severity int

const (
	SeverityError   Severity = iota // Action will fail when run
	SeverityWarning                 // Action may produce unexpected results
)

// ValidationIssue represents a single problem found in an action's parameters.
type ValidationIssue struct {
	Severity Severity
	Action   Action
	Message  string
}

// String formats the issue as "[ERROR] date-converter: message" or "[WARN] ...".
func (v ValidationIssue) String() string {
	sev := "ERROR"
	if v.Severity == SeverityWarning {
		sev = "WARN"
	}
	return fmt.Sprintf("[%s] %s: %s", sev, v.Action, v.Message)
}

// HasErrors reports whether any issue is an error.
func HasErrors(issues []ValidationIssue) bool {
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

// ValidateParams checks an action's parameters without touching the workbook. Checks that
// need the workbook, such as whether a sheet exists, happen when the action runs.
func ValidateParams(action Action, p Params) []ValidationIssue {
	if _, ok := handlers[action]; !ok {
		return []ValidationIssue{{Severity: SeverityError, Action: action, Message: ErrUnknownAction.Error()}}
	}
	v := &paramValidator{action: action}

	switch action {
	case ActionAddLeadTrail:
		if p.Leading == "" && p.Trailing == "" {
			v.errorf("leading or trailing text is required")
		}
	case ActionSplitToRows:
		if p.Delimiter == "" {
			v.errorf("a delimiter is required")
		}
	case ActionSelectionToClipboard:
		if p.Delimiter == "" {
			v.warnf("no delimiter; values will be separated by a space")
		}
	case ActionAddHyperlinks:
		if !p.CellURLs && strings.TrimSpace(p.BaseURL) == "" {
			v.errorf("a base URL is required")
		}
		if p.CellURLs && p.BaseURL != "" {
			v.warnf("base URL %q is ignored when cells hold full URLs", p.BaseURL)
		}
	case ActionDateConverter:
		if p.DateFormat != "" {
			if _, ok := dateLayouts[p.DateFormat]; !ok {
				v.errorf("unsupported date format %q", p.DateFormat)
			}
		}
	case ActionCompareWorksheets:
		v.checkSources(p, func(s string) bool { return true })
	case ActionFindMissingData:
		v.checkSources(p, func(s string) bool {
			if strings.ContainsAny(s, ":!") {
				if _, err := ParseAreaRef(s); err != nil {
					v.errorf("range %q: %v", s, err)
					return false
				}
			}
			return true
		})
	case ActionExpression:
		if strings.TrimSpace(p.Expression) == "" {
			v.errorf("an expression is required")
		} else if _, err := NewExprEvaluator().Compile(p.Expression); err != nil {
			v.errorf("invalid expression %q: %v", p.Expression, err)
		}
	}

	if p.Highlight && action != ActionCompareWorksheets && action != ActionFindMissingData {
		v.warnf("highlight has no effect on this action")
	}
	if p.Expression != "" && action != ActionExpression {
		v.warnf("expression has no effect on this action")
	}
	return v.issues
}

type paramValidator struct {
	action Action
	issues []ValidationIssue
}

func (v *paramValidator) errorf(format string, args ...any) {
	v.issues = append(v.issues, ValidationIssue{Severity: SeverityError, Action: v.action, Message: fmt.Sprintf(format, args...)})
}

func (v *paramValidator) warnf(format string, args ...any) {
	v.issues = append(v.issues, ValidationIssue{Severity: SeverityWarning, Action: v.action, Message: fmt.Sprintf(format, args...)})
}

// checkSources requires both sources and flags a source compared with itself.
func (v *paramValidator) checkSources(p Params, valid func(string) bool) {
	a, b := strings.TrimSpace(p.SourceA), strings.TrimSpace(p.SourceB)
	if a == "" || b == "" {
		v.errorf("two sources are required")
		return
	}
	if !valid(a) || !valid(b) {
		return
	}
	if strings.EqualFold(a, b) {
		v.warnf("source %q is compared with itself", a)
	}
}
