package calendarlink

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// strips surrounding spaces and folds the text into NFC so composed and
// decomposed accents encode to the same bytes
func cleanupString(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// collapse runs of whitespace into a single space
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
