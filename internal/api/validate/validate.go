package validate

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// zipRx is the US ZIP format: 5 digits with an optional 4-digit extension.
var zipRx = regexp.MustCompile(`^\d{5}(-\d{4})?$`)

// UserName validates a display name: 1-100 characters, non-empty.
// The limit counts characters, not bytes.
func UserName(v string) error {
	if v == "" {
		return fmt.Errorf("name is required")
	}
	if utf8.RuneCountInString(v) > 100 {
		return fmt.Errorf("name exceeds 100 characters")
	}
	return nil
}

// ZipCode validates the US ZIP format (e.g., 12345 or 12345-6789).
func ZipCode(v string) error {
	if v == "" {
		return fmt.Errorf("zipCode is required")
	}
	if !zipRx.MatchString(v) {
		return fmt.Errorf("zipCode must be in valid US format (e.g., 12345 or 12345-6789)")
	}
	return nil
}
