package models

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// DateLayout is the Go layout used to display birth dates (dd/MM/yyyy).
const DateLayout = "02/01/2006"

// Default age bounds, both inclusive.
const (
	DefaultMinAge = 18
	DefaultMaxAge = 130
)

// dateFormat is one accepted textual birth-date format.
type dateFormat struct {
	name     string
	pattern  *regexp.Regexp
	layout   string
	yearBase int // added to two-digit years
}

var dateFormats = []dateFormat{
	{name: "dd/MM/yyyy", pattern: regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`), layout: "02/01/2006"},
	{name: "ddMMyyyy", pattern: regexp.MustCompile(`^(\d{2})(\d{2})(\d{4})$`), layout: "02012006"},
	{name: "ddMMyy", pattern: regexp.MustCompile(`^(\d{2})(\d{2})(\d{2})$`), layout: "020106", yearBase: 2000},
}

// ValidateBirthDate parses a trimmed birth date and checks that it exists and
// that the age on today falls within [minAge, maxAge] years. The checks stop
// at the first failure.
func ValidateBirthDate(raw string, today time.Time, minAge, maxAge int) (time.Time, error) {
	if raw == "" {
		return time.Time{}, newValidationError(FieldBirthDate, BlankDate)
	}

	birth, format, ok := parseDate(raw)
	if !ok {
		return time.Time{}, newValidationError(FieldBirthDate, InvalidDateFormat)
	}

	// time.Date normalizes day overflow (30/02 becomes 02/03), so a date
	// that does not format back to the input never existed.
	if birth.Format(format.layout) != raw {
		return time.Time{}, newValidationError(FieldBirthDate, NonexistentDate)
	}

	today = dateOf(today)
	if yearsBefore(today, minAge).Before(birth) {
		return time.Time{}, &ValidationError{
			Field:   FieldBirthDate,
			Kind:    Underage,
			message: fmt.Sprintf("You must be %d or older to continue.", minAge),
		}
	}
	if birth.Before(yearsBefore(today, maxAge)) {
		return time.Time{}, &ValidationError{
			Field:   FieldBirthDate,
			Kind:    TooOld,
			message: fmt.Sprintf("Invalid birth date. Please enter a date at most %d years ago.", maxAge),
		}
	}

	return birth, nil
}

// AcceptedDateFormats lists the accepted formats in the order they are tried.
func AcceptedDateFormats() []string {
	names := make([]string, 0, len(dateFormats))
	for _, f := range dateFormats {
		names = append(names, f.name)
	}
	return names
}

// parseDate tries each accepted format in order and returns the first that
// matches structurally: the right shape, month 1-12 and day 1-31. Whether
// the day exists in that month is left to the caller.
func parseDate(raw string) (time.Time, dateFormat, bool) {
	for _, f := range dateFormats {
		m := f.pattern.FindStringSubmatch(raw)
		if m == nil {
			continue
		}

		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if day < 1 || day > 31 || month < 1 || month > 12 {
			continue
		}
		// There is no year 0 in the calendar; 00 is only valid as a two-digit year.
		if f.yearBase == 0 && year == 0 {
			continue
		}

		return time.Date(f.yearBase+year, time.Month(month), day, 0, 0, 0, 0, time.UTC), f, true
	}
	return time.Time{}, dateFormat{}, false
}

// dateOf drops the clock part of t, keeping its calendar date.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// yearsBefore subtracts n calendar years from t. A day that does not exist in
// the target year (29 February) is clamped to the last day of the month.
func yearsBefore(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	y -= n
	if last := daysIn(m, y); d > last {
		d = last
	}
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysIn(m time.Month, year int) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
