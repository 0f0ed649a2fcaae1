// Package dates implements the service-desk calendar date format.
//
// All dates are exchanged as DD-MM-YYYY strings, ASCII digits and
// hyphens only. Parsing is strict: lenient rollover (day 32, month 13)
// is rejected so that typos never silently become neighbouring dates.
package dates

import (
	"time"

	"github.com/bibagei/Hudoleev-kursovaya/internal/models/errs"
)

// Layout is the only accepted textual date layout.
const Layout = "02-01-2006"

// Parse converts a DD-MM-YYYY string into a calendar date.
// Returns errs.ErrInvalidDate for anything that is not exactly ten
// characters of digits with hyphens at positions 2 and 5, or that does
// not denote a real calendar date.
func Parse(s string) (time.Time, error) {
	if len(s) != 10 || s[2] != '-' || s[5] != '-' {
		return time.Time{}, errs.ErrInvalidDate
	}
	for i, c := range s {
		if i == 2 || i == 5 {
			continue
		}
		if c < '0' || c > '9' {
			return time.Time{}, errs.ErrInvalidDate
		}
	}

	// time.Parse does not roll impossible dates over.
	d, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, errs.ErrInvalidDate
	}
	return d, nil
}

// Valid reports whether s is a well-formed DD-MM-YYYY calendar date.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// DaysBetween counts calendar days by stepping a forward one day at a
// time until it reaches or passes b. The result is never negative:
// when a is on or after b the count is 0.
func DaysBetween(a, b time.Time) int {
	days := 0
	for a.Before(b) {
		a = a.AddDate(0, 0, 1)
		days++
	}
	return days
}
