package normalize

import (
	"regexp"
	"strings"
	"time"
)

var (
	dmyRe     = regexp.MustCompile(`^(\d{1,2})[/\-. ](\d{1,2})[/\-. ](\d{2,4})$`)
	ymdRe     = regexp.MustCompile(`^(\d{4})[/\-. ](\d{1,2})[/\-. ](\d{1,2})$`)
	textualRe = regexp.MustCompile(`^(\d{1,2})\s*([A-Za-z]{3,})\s*(\d{2,4})?$`)
	compactRe = regexp.MustCompile(`^(\d{6}|\d{8})$`)
	junkRe    = regexp.MustCompile(`[^\w\-/. ]`)
	spaceRe   = regexp.MustCompile(`\s+`)
)

var monthAbbrevs = map[string]time.Month{
	"JAN": time.January, "FEB": time.February, "MAR": time.March,
	"APR": time.April, "MAY": time.May, "JUN": time.June,
	"JUL": time.July, "AUG": time.August, "SEP": time.September,
	"OCT": time.October, "NOV": time.November, "DEC": time.December,
}

// ParseDate parses a date-like string from bank statements. It accepts
// day-first numeric forms (12-06-2023, 12/06/23, 12.06.2023), ISO
// (2023-06-12), textual forms ("12 Jan 2023", "12JAN23", year optional
// defaulting to the current year), and compact 6- or 8-digit ddmmyy/ddmmyyyy.
// The second return value is false on total failure; callers drop the row
// rather than abort the file.
func ParseDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(strings.ReplaceAll(raw, "\n", " "))
	s = junkRe.ReplaceAllString(s, " ")
	s = strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
	if s == "" {
		return time.Time{}, false
	}

	if m := dmyRe.FindStringSubmatch(s); m != nil {
		return makeDate(atoi(m[3]), atoi(m[2]), atoi(m[1]))
	}
	if m := ymdRe.FindStringSubmatch(s); m != nil {
		return makeDate(atoi(m[1]), atoi(m[2]), atoi(m[3]))
	}
	if m := textualRe.FindStringSubmatch(s); m != nil {
		month, ok := monthAbbrevs[strings.ToUpper(m[2][:3])]
		if !ok {
			return time.Time{}, false
		}
		year := time.Now().Year()
		if m[3] != "" {
			year = atoi(m[3])
		}
		return makeDate(year, int(month), atoi(m[1]))
	}
	if m := compactRe.FindStringSubmatch(s); m != nil {
		digits := m[1]
		day := atoi(digits[0:2])
		month := atoi(digits[2:4])
		year := atoi(digits[4:])
		return makeDate(year, month, day)
	}

	return time.Time{}, false
}

// makeDate validates components, widening two-digit years: <70 maps to 20xx,
// otherwise 19xx.
func makeDate(year, month, day int) (time.Time, bool) {
	if year < 100 {
		if year < 70 {
			year += 2000
		} else {
			year += 1900
		}
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// Reject normalized overflow like 31-02.
	if d.Day() != day || int(d.Month()) != month {
		return time.Time{}, false
	}
	return d, true
}

func atoi(s string) int {
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0
		}
		n = n*10 + int(c-'0')
	}
	return n
}
