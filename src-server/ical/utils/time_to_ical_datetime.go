package utils

import (
	"fmt"
	"time"
)

// Compact UTC layout: ISO-8601 without '-', ':' and the fractional part.
const UTCDatetimeLayout = "20060102T150405Z"

// Convert a time to a string in iCalendar UTC format: YYYYMMDDTHHMMSSZ.
// Sub-second precision is dropped.
func TimeToUTCDatetime(time_ time.Time) (string, error) {
	if time_.IsZero() {
		return "", fmt.Errorf("time is zero")
	}
	return time_.UTC().Format(UTCDatetimeLayout), nil
}
