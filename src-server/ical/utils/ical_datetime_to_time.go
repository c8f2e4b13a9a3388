package utils

import (
	"fmt"
	"regexp"
	"time"
)

var utcTimePattern = regexp.MustCompile(`^\d{8}T\d{6}Z$`)

// Parse a compact UTC date-time such as `20240610T150000Z`, the inverse of
// TimeToUTCDatetime.
func UTCDatetimeToTime(rawText string) (time.Time, error) {
	if !utcTimePattern.MatchString(rawText) {
		return time.Time{}, fmt.Errorf("invalid date-time format, got %q", rawText)
	}
	result, err := time.Parse(UTCDatetimeLayout, rawText)
	if err != nil {
		return time.Time{}, err
	}
	return result, nil
}
