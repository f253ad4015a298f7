package xlquick

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

var (
	controlChars    = regexp.MustCompile(`[\x00-\x1F\x7F]`)
	whitespaceRuns  = regexp.MustCompile(`[\s\p{Zs}]{2,}`)
	letters         = regexp.MustCompile(`\p{L}`)
	asciiDigits     = regexp.MustCompile(`[0-9]`)
	specialChars    = regexp.MustCompile(`[^a-zA-Z0-9\x{00C0}-\x{024F}\s]`)
	subscriptDigits = strings.NewReplacer(
		"0", "₀", "1", "₁", "2", "₂", "3", "₃", "4", "₄",
		"5", "₅", "6", "₆", "7", "₇", "8", "₈", "9", "₉",
	)
)

// CleanString removes ASCII control characters.
func CleanString(s string) string {
	return controlChars.ReplaceAllString(s, "")
}

// TrimCleanString removes control characters, collapses whitespace runs to one space and trims.
func TrimCleanString(s string) string {
	s = CleanString(s)
	s = whitespaceRuns.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// TrimClean applies TrimCleanString to text values. Numbers pass through unchanged and text
// that cleans down to nothing becomes Empty.
func TrimClean(v Value) Value {
	if v.Kind != KindText {
		return v
	}
	return TextOrEmpty(TrimCleanString(v.Str))
}

// TextOption selects a text transform.
type TextOption int

const (
	TextUppercase TextOption = iota
	TextLowercase
	TextPropercase
	TextRemoveLetters
	TextRemoveNumbers
	TextRemoveSpecial
	TextSubscriptNumbers
)

// String returns a human-readable name for the TextOption.
func (o TextOption) String() string {
	switch o {
	case TextUppercase:
		return "uppercase"
	case TextLowercase:
		return "lowercase"
	case TextPropercase:
		return "propercase"
	case TextRemoveLetters:
		return "remove-letters"
	case TextRemoveNumbers:
		return "remove-numbers"
	case TextRemoveSpecial:
		return "remove-special"
	case TextSubscriptNumbers:
		return "subscript-numbers"
	default:
		return fmt.Sprintf("TextOption(%d)", int(o))
	}
}

// TransformString applies opt to s.
func TransformString(s string, opt TextOption) string {
	switch opt {
	case TextUppercase:
		return strings.ToUpper(s)
	case TextLowercase:
		return strings.ToLower(s)
	case TextPropercase:
		return properCase(s)
	case TextRemoveLetters:
		return letters.ReplaceAllString(s, "")
	case TextRemoveNumbers:
		return asciiDigits.ReplaceAllString(s, "")
	case TextRemoveSpecial:
		return specialChars.ReplaceAllString(s, "")
	case TextSubscriptNumbers:
		return subscriptDigits.Replace(s)
	default:
		return s
	}
}

// properCase lowercases s and capitalizes the first character of every word.
func properCase(s string) string {
	runes := []rune(strings.ToLower(s))
	inWord := false
	for i, r := range runes {
		word := unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
		if word && !inWord {
			runes[i] = unicode.ToUpper(r)
		}
		inWord = word
	}
	return string(runes)
}

// TransformValue applies opt to the text of v. Empty stays Empty, and a value whose text
// does not change keeps its original kind, so numbers survive case changes.
func TransformValue(v Value, opt TextOption) Value {
	if v.IsEmpty() {
		return v
	}
	s := v.String()
	out := TransformString(s, opt)
	if out == s {
		return v
	}
	return TextOrEmpty(out)
}

// LeadTrail wraps every non-blank value in leading and trailing text.
func LeadTrail(leading, trailing string) func(Value) Value {
	return func(v Value) Value {
		if IsBlank(v) {
			return v
		}
		return Text(leading + v.String() + trailing)
	}
}

func (a *App) trimCleanSelected(Params) (string, error) {
	area, err := a.selectedRange()
	if err != nil {
		return "", err
	}
	n, err := a.rewrite(area, Pure(TrimClean), true)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Trimmed and cleaned %d cells in %s.", n, area), nil
}

func (a *App) trimCleanSheet(Params) (string, error) {
	used, err := a.usedRange(a.host.ActiveSheet())
	if err != nil {
		return "", err
	}
	if _, err := a.rewrite(used, Pure(TrimClean), false); err != nil {
		return "", err
	}
	return "All cells in the active worksheet have been trimmed and cleaned.", nil
}

func (a *App) trimCleanWorkbook(Params) (string, error) {
	for _, sheet := range a.host.SheetNames() {
		used, ok, err := a.host.UsedRange(sheet)
		if err != nil {
			return "", err
		}
		if !ok {
			continue
		}
		if _, err := a.rewrite(used, Pure(TrimClean), false); err != nil {
			return "", fmt.Errorf("sheet %q: %w", sheet, err)
		}
	}
	return "All cells in the active workbook have been trimmed and cleaned.", nil
}

func textHandler(opt TextOption) handler {
	return func(a *App, _ Params) (string, error) {
		area, err := a.selectedRange()
		if err != nil {
			return "", err
		}
		n, err := a.rewrite(area, Pure(func(v Value) Value { return TransformValue(v, opt) }), true)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Updated %d cells in %s.", n, area), nil
	}
}

func (a *App) addLeadTrail(p Params) (string, error) {
	if p.Leading == "" && p.Trailing == "" {
		return "", fmt.Errorf("%w: leading or trailing text is required", ErrBadParameter)
	}
	area, err := a.selectedRange()
	if err != nil {
		return "", err
	}
	n, err := a.rewrite(area, Pure(LeadTrail(p.Leading, p.Trailing)), true)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Added leading/trailing text to %d cells.", n), nil
}
