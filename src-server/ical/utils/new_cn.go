package utils

import (
	"fmt"
	"strings"
)

// Create a new iCalendar-compatible common name, e.g. `CN=Jane:mailto:jane@x.io`.
//
// The name and email must not contain any of the following characters:
// `:`, `;`, `,`, `\n`, `\r`, `\t`.
//
// An empty name falls back to the email address.
func NewCommonName(name string, email string) (string, error) {
	prohibitChars := []string{":", ";", ",", "\n", "\r", "\t"}
	for _, c := range prohibitChars {
		if strings.Contains(name, c) || strings.Contains(email, c) {
			return "", fmt.Errorf("name and email must not contain %q", c)
		}
	}
	if email == "" {
		return "", fmt.Errorf("email must not be empty")
	}
	if name == "" {
		name = email
	}
	return fmt.Sprintf("CN=%s:mailto:%s", name, email), nil
}
