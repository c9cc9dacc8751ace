// Package types provides type definitions for structured data used throughout the cv-generator system.
package types

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Period represents a point in time with month resolution, as used in
// CV date ranges. The zero value is the open-ended sentinel: for an
// engagement end date it means "Present", for optional dates (projects,
// certifications) it means "not provided".
type Period struct {
	Year  int
	Month time.Month
}

// openEndedTokens are the spellings accepted for an open-ended period.
var openEndedTokens = map[string]bool{
	"":        true,
	"present": true,
	"current": true,
	"ongoing": true,
}

// ParsePeriod parses a period string. Accepted forms: "2006-01",
// "2006/01", "2006", and the open-ended tokens "present"/"current"/
// "ongoing"/"" which all yield the zero Period.
func ParsePeriod(s string) (Period, error) {
	trimmed := strings.TrimSpace(s)
	if openEndedTokens[strings.ToLower(trimmed)] {
		return Period{}, nil
	}

	normalized := strings.ReplaceAll(trimmed, "/", "-")
	if t, err := time.Parse("2006-01", normalized); err == nil {
		return Period{Year: t.Year(), Month: t.Month()}, nil
	}

	if year, err := strconv.Atoi(normalized); err == nil && year >= 1000 && year <= 9999 {
		return Period{Year: year}, nil
	}

	return Period{}, fmt.Errorf("invalid period %q (expected YYYY-MM, YYYY, or \"present\")", s)
}

// IsZero reports whether the period is the open-ended sentinel.
func (p Period) IsZero() bool {
	return p.Year == 0 && p.Month == 0
}

// Display returns the single consistent display form used across all
// sections: "Jan 2006" for full periods, "2006" for year-only periods,
// and "Present" for the open-ended sentinel.
func (p Period) Display() string {
	if p.IsZero() {
		return "Present"
	}
	if p.Month == 0 {
		return strconv.Itoa(p.Year)
	}
	return fmt.Sprintf("%s %d", p.Month.String()[:3], p.Year)
}

// Before reports whether p is strictly earlier than other. An open-ended
// period is never earlier than anything; a concrete period is always
// earlier than an open-ended one.
func (p Period) Before(other Period) bool {
	if p.IsZero() {
		return false
	}
	if other.IsZero() {
		return true
	}
	if p.Year != other.Year {
		return p.Year < other.Year
	}
	return p.Month < other.Month
}
