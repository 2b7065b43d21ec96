// Package dateutils provides common date parsing operations used by the
// report commands.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Common date format constants
const (
	DateLayoutISO      = "2006-01-02"
	DateLayoutEuropean = "02.01.2006"
	DateLayoutUS       = "01/02/2006"
	DateLayoutFull     = "2006-01-02 15:04:05"
)

// CommonFormats is a list of standard formats to try when parsing dates
var CommonFormats = []string{
	DateLayoutISO,
	DateLayoutEuropean,
	DateLayoutUS,
	DateLayoutFull,
	"02-01-2006",
	"02/01/2006",
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
}

// ParseDate attempts to parse a date string using multiple common formats.
// Returns the parsed time and the detected format.
func ParseDate(dateStr string) (time.Time, string, error) {
	dateStr = CleanDateString(dateStr)

	for _, format := range CommonFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, format, nil
		}
	}

	return time.Time{}, "", fmt.Errorf("unable to parse date: %s", dateStr)
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// NormalizeRange parses the from/to bounds of a report range into ISO dates.
// Either bound may be empty, meaning unbounded on that side. A reversed
// range is an error.
func NormalizeRange(from, to string) (string, string, error) {
	var fromISO, toISO string
	var fromTime, toTime time.Time

	if from != "" {
		t, _, err := ParseDate(from)
		if err != nil {
			return "", "", fmt.Errorf("invalid 'from' date: %w", err)
		}
		fromTime = t
		fromISO = ToISODate(t)
	}
	if to != "" {
		t, _, err := ParseDate(to)
		if err != nil {
			return "", "", fmt.Errorf("invalid 'to' date: %w", err)
		}
		toTime = t
		toISO = ToISODate(t)
	}
	if from != "" && to != "" && toTime.Before(fromTime) {
		return "", "", fmt.Errorf("'to' date %s is before 'from' date %s", toISO, fromISO)
	}
	return fromISO, toISO, nil
}

// CleanDateString removes unwanted characters and normalizes a date string
func CleanDateString(dateStr string) string {
	dateStr = strings.TrimSpace(dateStr)
	re := regexp.MustCompile(`\s+`)
	return re.ReplaceAllString(dateStr, " ")
}
