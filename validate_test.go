package xlquick

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateParams(t *testing.T) {
	tests := []struct {
		name    string
		action  Action
		params  Params
		wantErr bool
		warns   int
	}{
		{"uppercase needs nothing", ActionUppercase, Params{}, false, 0},
		{"lead trail missing", ActionAddLeadTrail, Params{}, true, 0},
		{"lead only", ActionAddLeadTrail, Params{Leading: "'"}, false, 0},
		{"split without delimiter", ActionSplitToRows, Params{}, true, 0},
		{"clipboard without delimiter", ActionSelectionToClipboard, Params{}, false, 1},
		{"hyperlinks without base", ActionAddHyperlinks, Params{}, true, 0},
		{"hyperlinks cell urls", ActionAddHyperlinks, Params{CellURLs: true}, false, 0},
		{"hyperlinks ignored base", ActionAddHyperlinks, Params{CellURLs: true, BaseURL: "https://x/"}, false, 1},
		{"bad date format", ActionDateConverter, Params{DateFormat: "yy"}, true, 0},
		{"default date format", ActionDateConverter, Params{}, false, 0},
		{"compare one sheet", ActionCompareWorksheets, Params{SourceA: "A"}, true, 0},
		{"compare itself", ActionCompareWorksheets, Params{SourceA: "A", SourceB: "a"}, false, 1},
		{"missing bad range", ActionFindMissingData, Params{SourceA: "A1:A3", SourceB: "Sheet1!"}, true, 0},
		{"missing ok", ActionFindMissingData, Params{SourceA: "A1:A3", SourceB: "Sheet2"}, false, 0},
		{"expression empty", ActionExpression, Params{}, true, 0},
		{"expression syntax", ActionExpression, Params{Expression: "text +"}, true, 0},
		{"expression ok", ActionExpression, Params{Expression: "upper(text)"}, false, 0},
		{"stray params", ActionLowercase, Params{Highlight: true, Expression: "text"}, false, 2},
		{"unknown action", Action(99), Params{}, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := ValidateParams(tt.action, tt.params)
			assert.Equal(t, tt.wantErr, HasErrors(issues), "%v", issues)
			warns := 0
			for _, issue := range issues {
				if issue.Severity == SeverityWarning {
					warns++
				}
			}
			assert.Equal(t, tt.warns, warns, "%v", issues)
		})
	}
}

func TestValidationIssue_String(t *testing.T) {
	issue := ValidationIssue{Severity: SeverityError, Action: ActionSplitToRows, Message: "a delimiter is required"}
	assert.Equal(t, "[ERROR] split-to-rows: a delimiter is required", issue.String())

	issue.Severity = SeverityWarning
	assert.Equal(t, "[WARN] split-to-rows: a delimiter is required", issue.String())
}
