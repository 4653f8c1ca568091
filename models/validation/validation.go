package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/NomadCrew/tourist-travel-backend/errors"
)

// emailPattern is a loose shape check, not RFC 5322.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Field is a named form value checked by RequireFields.
type Field struct {
	Name  string
	Value string
}

// IsValidEmail reports whether s looks like local@domain.tld.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// RequireFields returns a validation error carrying message for the first field
// that is empty or only whitespace. Fields are checked in the order given.
func RequireFields(message string, fields ...Field) error {
	for _, f := range fields {
		if strings.TrimSpace(f.Value) == "" {
			return errors.ValidationFailed(message, fmt.Sprintf("%s is required", f.Name))
		}
	}
	return nil
}

// ValidateEmail returns a validation error when s fails the shape check.
func ValidateEmail(s string) error {
	if !IsValidEmail(s) {
		return errors.ValidationFailed("Please enter a valid email address", "email")
	}
	return nil
}

// NormalizeEmail trims and lower-cases an address for storage and comparison.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
