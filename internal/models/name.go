package models

import (
	"regexp"
	"strings"
)

var namePattern = regexp.MustCompile(`^[A-Za-z ]+$`)

// ValidateName checks a trimmed name. Only ASCII letters and spaces are
// accepted; when strict is set a double space is rejected as well.
func ValidateName(name string, strict bool) (string, error) {
	if name == "" {
		return "", newValidationError(FieldName, BlankName)
	}
	if !namePattern.MatchString(name) {
		return "", newValidationError(FieldName, InvalidName)
	}
	if strict && strings.Contains(name, "  ") {
		return "", newValidationError(FieldName, InvalidName)
	}
	return name, nil
}
