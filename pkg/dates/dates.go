// Package dates normalizes the free-text date strings that arrive from order
// forms and imported spreadsheets into ISO YYYY-MM-DD.
package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const ISO = "2006-01-02"

var (
	isoPattern   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	slashPattern = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{2}|\d{4})$`)
)

// fallbackLayouts covers the formats spreadsheet tools commonly emit. Parsing
// uses the local calendar date so a timezone offset never shifts the day.
var fallbackLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"02-01-2006",
	"2 Jan 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"02 Jan 06",
}

// Normalize converts s to YYYY-MM-DD. The boolean is false when s cannot be
// read as a date; empty input is treated as "no date", not an error.
func Normalize(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}

	if isoPattern.MatchString(s) {
		return s, true
	}

	// D/M/Y with optional two-digit year, assumed 2000s
	if m := slashPattern.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if len(m[3]) == 2 {
			year += 2000
		}
		if !validCivilDate(year, month, day) {
			return "", false
		}
		return fmt.Sprintf("%04d-%02d-%02d", year, month, day), true
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t.Format(ISO), true
		}
	}

	return "", false
}

func validCivilDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}
