package calendarlink

import (
	"fmt"
	"math"
	"strings"
	"time"
)

const DefaultDurationHours = 2.0

var (
	dateLayouts = []string{
		"2006-01-02",
		"2006/01/02",
		"1/2/2006",
		"January 2 2006",
		"Jan 2 2006",
		"Monday January 2 2006",
		"Monday Jan 2 2006",
		"Mon January 2 2006",
		"Mon Jan 2 2006",
		"2 January 2006",
		"2 Jan 2006",
		"Monday 2 January 2006",
		"Mon 2 Jan 2006",
	}
	clockLayouts = []string{
		"15:04",
		"15:04:05",
		"3:04 PM",
		"3:04PM",
		"3 PM",
		"3PM",
	}
)

// DateParseError means neither the raw nor the comma-stripped date could be
// combined with the time into a valid instant.
type DateParseError struct {
	Date string
	Time string
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("can't parse date %q with time %q", e.Date, e.Time)
}

// parse "<date> <time>" as a wall-clock time in loc
func parseLocal(dateTime string, loc *time.Location) (time.Time, bool) {
	// month and weekday names match case-insensitively, AM/PM does not
	value := strings.ToUpper(collapseSpaces(dateTime))
	if value == "" {
		return time.Time{}, false
	}
	for _, dateLayout := range dateLayouts {
		for _, clockLayout := range clockLayouts {
			if t, err := time.ParseInLocation(dateLayout+" "+clockLayout, value, loc); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

// ResolveStart turns a loosely formatted date and time of day into an instant.
//
// It first tries the raw concatenation, then retries with every comma removed
// from the date, so "Monday, June 10, 2024" works through the second attempt.
func (b *Builder) ResolveStart(date, clock string) (time.Time, error) {
	if t, ok := parseLocal(date+" "+clock, b.location); ok {
		return t, nil
	}
	stripped := strings.ReplaceAll(date, ",", "")
	if t, ok := parseLocal(stripped+" "+clock, b.location); ok {
		return t, nil
	}
	return time.Time{}, &DateParseError{Date: date, Time: clock}
}

// longest duration a time.Duration can hold, in hours
var maxDurationHours = float64(math.MaxInt64) / float64(time.Hour)

// Duration converts an optional length in hours. Missing, zero, negative,
// non-finite or unrepresentable values map to DefaultDurationHours.
func Duration(hours float64) time.Duration {
	if math.IsNaN(hours) || math.IsInf(hours, 0) || hours <= 0 || hours >= maxDurationHours {
		hours = DefaultDurationHours
	}
	return time.Duration(hours * float64(time.Hour))
}
