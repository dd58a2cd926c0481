package yearmonth

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// YearMonth is a calendar month without a day component.
type YearMonth struct {
	Year  int
	Month time.Month
}

// layouts are tried in order. Non-padded month/day verbs also accept
// zero-padded input, so "2006-1" covers both "2024-1" and "2024-01".
var layouts = []string{
	"2006-1",
	"2006/1",
	"2006.1",
	"200601",
	"2006-1-2",
	"2006/1/2",
	"2006.1.2",
	"20060102",
	"2006-1-2 15:04:05",
	"2006-1-2 15:04",
	"2006/1/2 15:04:05",
	time.RFC3339,
}

var koreanPattern = regexp.MustCompile(`^(\d{4})\s*년\s*(\d{1,2})\s*월(?:\s*(\d{1,2})\s*일)?$`)

// New returns a YearMonth, validating the month.
func New(year int, month time.Month) (YearMonth, error) {
	if month < time.January || month > time.December {
		return YearMonth{}, fmt.Errorf("month %d out of range", month)
	}
	return YearMonth{Year: year, Month: month}, nil
}

// Parse reads a year-month value like "2024-01", "202401", "2024/01/15"
// or "2024년 1월". Day and time components are accepted and dropped.
func Parse(s string) (YearMonth, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return YearMonth{}, fmt.Errorf("empty year-month")
	}

	if m := koreanPattern.FindStringSubmatch(v); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		return New(year, time.Month(month))
	}

	for _, layout := range layouts {
		t, err := time.Parse(layout, v)
		if err == nil {
			return YearMonth{Year: t.Year(), Month: t.Month()}, nil
		}
	}
	return YearMonth{}, fmt.Errorf("unrecognized year-month %q", s)
}

// MustParse is Parse for literals in tests and tables. It panics on error.
func MustParse(s string) YearMonth {
	ym, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return ym
}

// String formats as "2006-01".
func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// Time returns midnight UTC on the first day of the month.
func (ym YearMonth) Time() time.Time {
	return time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Before reports whether ym is earlier than other.
func (ym YearMonth) Before(other YearMonth) bool {
	if ym.Year != other.Year {
		return ym.Year < other.Year
	}
	return ym.Month < other.Month
}

// IsZero reports whether ym is the zero value.
func (ym YearMonth) IsZero() bool {
	return ym.Year == 0 && ym.Month == 0
}
