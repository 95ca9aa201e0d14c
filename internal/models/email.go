package models

import "regexp"

var emailPattern = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,6}$`)

// ValidateEmail checks a trimmed email against the general
// local@domain.tld shape. The address is returned unchanged.
func ValidateEmail(email string) (string, error) {
	if email == "" {
		return "", newValidationError(FieldEmail, BlankEmail)
	}
	if !emailPattern.MatchString(email) {
		return "", newValidationError(FieldEmail, InvalidEmail)
	}
	return email, nil
}
