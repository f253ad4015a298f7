package xlquick

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// DateMode selects the direction of the date converter.
type DateMode int

const (
	// DateToText turns dates and date serials into text in the chosen format.
	DateToText DateMode = iota
	// DateToSerial turns date text into serial numbers displayed with the chosen format.
	DateToSerial
)

// String returns a human-readable name for the DateMode.
func (m DateMode) String() string {
	if m == DateToSerial {
		return "serial"
	}
	return "text"
}

// ParseDateMode accepts "text" or "serial".
func ParseDateMode(s string) (DateMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return DateToText, nil
	case "serial", "date", "number":
		return DateToSerial, nil
	}
	return 0, fmt.Errorf("%w: date mode %q", ErrBadParameter, s)
}

// DateLocale decides how ambiguous numeric dates such as 03/04/2024 are read.
type DateLocale int

const (
	// LocaleUS reads month first.
	LocaleUS DateLocale = iota
	// LocaleOther reads day first.
	LocaleOther
)

// String returns a human-readable name for the DateLocale.
func (l DateLocale) String() string {
	if l == LocaleOther {
		return "Other"
	}
	return "US"
}

// ParseDateLocale accepts "US" or "Other".
func ParseDateLocale(s string) (DateLocale, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "us", "en-us":
		return LocaleUS, nil
	case "other", "eu", "intl":
		return LocaleOther, nil
	}
	return 0, fmt.Errorf("%w: date locale %q", ErrBadParameter, s)
}

// DefaultDateFormat is used when no format is chosen.
const DefaultDateFormat = "yyyy-MM-dd"

// dateLayouts maps each display format the user can pick to its Go layout.
var dateLayouts = map[string]string{
	"yyyy-MM-dd":    "2006-01-02",
	"M/d/yyyy":      "1/2/2006",
	"MM/dd/yyyy":    "01/02/2006",
	"dd/MM/yyyy":    "02/01/2006",
	"d/M/yyyy":      "2/1/2006",
	"MMM dd, yyyy":  "Jan 02, 2006",
	"MMMM dd, yyyy": "January 02, 2006",
	"dd MMM yyyy":   "02 Jan 2006",
	"dd MMMM yyyy":  "02 January 2006",
	"yyyy/MM/dd":    "2006/01/02",
	"yyyy.MM.dd":    "2006.01.02",
	"yyyy MMM dd":   "2006 Jan 02",
}

// DateFormats lists the supported display formats.
func DateFormats() []string {
	out := make([]string, 0, len(dateLayouts))
	for f := range dateLayouts {
		out = append(out, f)
	}
	slices.Sort(out)
	return out
}

// excelDateFormat converts a display format into the spreadsheet number format code.
func excelDateFormat(format string) string {
	return strings.ToLower(format)
}

var (
	isoLayouts = []string{
		"2006-01-02",
		"2006-1-2",
		"2006/1/2",
		"2006.1.2",
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
	}
	monthFirstLayouts = []string{"1/2/2006", "1-2-2006", "1.2.2006", "1/2/06"}
	dayFirstLayouts   = []string{"2/1/2006", "2-1-2006", "2.1.2006", "2/1/06"}
	namedLayouts      = []string{
		"Jan 2, 2006",
		"January 2, 2006",
		"Jan 2 2006",
		"January 2 2006",
		"2 Jan 2006",
		"2 January 2006",
		"2-Jan-2006",
		"2-Jan-06",
		"2006 Jan 2",
		"Mon, Jan 2, 2006",
		"Monday, January 2, 2006",
	}
)

// ParseDate reads date text. Numeric day/month order follows locale.
func ParseDate(s string, locale DateLocale) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	numeric := monthFirstLayouts
	if locale == LocaleOther {
		numeric = dayFirstLayouts
	}
	for _, group := range [][]string{isoLayouts, numeric, namedLayouts} {
		for _, layout := range group {
			if t, err := time.Parse(layout, s); err == nil {
				return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
			}
		}
	}
	return time.Time{}, false
}

// excelEpoch is day zero of the 1900 date system as spreadsheets count it.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// DateToSerialNumber converts a date to its spreadsheet serial number.
func DateToSerialNumber(t time.Time) float64 {
	return math.Round(t.Sub(excelEpoch).Hours() / 24)
}

// FormatDate renders t with one of DateFormats(); unknown formats fall back to DefaultDateFormat.
func FormatDate(t time.Time, format string) string {
	layout, ok := dateLayouts[format]
	if !ok {
		layout = dateLayouts[DefaultDateFormat]
	}
	return t.Format(layout)
}

// ConvertDate converts one cell and returns the new value with the number format to apply.
// Cells that are not dates are returned unchanged with a neutral format.
func ConvertDate(v Value, mode DateMode, format string, locale DateLocale) (Value, string) {
	if mode == DateToSerial {
		return convertToSerial(v, format, locale)
	}
	return convertToText(v, format, locale)
}

func convertToText(v Value, format string, locale DateLocale) (Value, string) {
	switch v.Kind {
	case KindNumber:
		t, err := excelize.ExcelDateToTime(v.Num, false)
		if err != nil {
			return v, "@"
		}
		return Text(FormatDate(t, format)), "@"
	case KindText:
		t, ok := ParseDate(v.Str, locale)
		if !ok {
			return v, "@"
		}
		return Text(FormatDate(t, format)), "@"
	default:
		return v, "@"
	}
}

func convertToSerial(v Value, format string, locale DateLocale) (Value, string) {
	switch v.Kind {
	case KindNumber:
		return v, excelDateFormat(format)
	case KindText:
		t, ok := ParseDate(v.Str, locale)
		if !ok {
			return v, "General"
		}
		return Number(DateToSerialNumber(t)), excelDateFormat(format)
	default:
		return v, "General"
	}
}

func (a *App) convertDates(p Params) (string, error) {
	format := p.DateFormat
	if format == "" {
		format = DefaultDateFormat
	}
	if _, ok := dateLayouts[format]; !ok {
		return "", fmt.Errorf("%w: unsupported date format %q", ErrBadParameter, format)
	}
	area, err := a.selectedRange()
	if err != nil {
		return "", err
	}
	values, err := a.host.Values(area)
	if err != nil {
		return "", err
	}

	out := NewGrid(values.Rows(), values.Cols())
	formats := make([][]string, values.Rows())
	for r, row := range values {
		formats[r] = make([]string, len(row))
		for c, v := range row {
			out[r][c], formats[r][c] = ConvertDate(v, p.DateMode, format, p.DateLocale)
		}
	}

	if err := a.snapshot(area, values); err != nil {
		return "", err
	}
	if err := a.host.SetNumberFormats(area, formats); err != nil {
		return "", err
	}
	if err := a.host.SetValues(area, out); err != nil {
		return "", err
	}
	return "Date conversion complete!", nil
}
