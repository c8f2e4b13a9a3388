package ical

import (
	"fmt"
	"sort"
	"strings"
)

var (
	ErrIDNotInit             = "id not initialized"
	ErrSummaryNotSet         = "summary not set"
	ErrStartDateInvalid      = "start date not set"
	ErrEndDateInvalid        = "end date not set"
	ErrStartDateAfterEndDate = "start date is after end date"
)

type CustomError struct {
	msg  string
	args map[string]any
}

// Create a new custom error
func NewCustomError(msg string, args map[string]any) *CustomError {
	if args == nil {
		args = make(map[string]any)
	}
	return &CustomError{
		msg:  msg,
		args: args,
	}
}

// Get the error message
func (e CustomError) Error() string {
	if len(e.args) == 0 {
		return e.msg
	}
	keys := make([]string, 0, len(e.args))
	for key := range e.args {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString(e.msg)
	sb.WriteString(" |")
	for _, key := range keys {
		sb.WriteString(fmt.Sprintf(" %s: %v", key, e.args[key]))
	}
	return sb.String()
}
