package models

import (
	"strings"
)

// Field names used in ValidationError.
const (
	FieldName      = "name"
	FieldEmail     = "email"
	FieldCPF       = "cpf"
	FieldBirthDate = "birth_date"
)

// Kind identifies which validation rule failed. Kinds are comparable errors,
// so a ValidationError can be matched with errors.Is(err, models.Underage).
type Kind string

// Validation kinds, one per rule.
const (
	BlankName         Kind = "blank_name"
	InvalidName       Kind = "invalid_name"
	BlankEmail        Kind = "blank_email"
	InvalidEmail      Kind = "invalid_email"
	BlankID           Kind = "blank_id"
	InvalidID         Kind = "invalid_id"
	BlankDate         Kind = "blank_date"
	InvalidDateFormat Kind = "invalid_date_format"
	NonexistentDate   Kind = "nonexistent_date"
	Underage          Kind = "underage"
	TooOld            Kind = "too_old"
)

var kindMessages = map[Kind]string{
	BlankName:         "Name is blank.",
	InvalidName:       "Invalid name. Please enter a name containing only letters and single spaces.",
	BlankEmail:        "Email is blank.",
	InvalidEmail:      "Invalid email. The email must follow a valid format, such as 'nathan@email.com'.",
	BlankID:           "CPF is blank.",
	InvalidID:         "Invalid CPF. Please enter a valid CPF.",
	BlankDate:         "Birth date is blank.",
	InvalidDateFormat: "Invalid date format. Use 'dd/MM/yyyy', 'ddMMyyyy' or 'ddMMyy'.",
	NonexistentDate:   "Nonexistent date. Please enter a valid date.",
	Underage:          "You must be 18 or older to continue.",
	TooOld:            "Invalid birth date. Please enter a date at most 130 years ago.",
}

// Error returns the kind's code.
func (k Kind) Error() string {
	return string(k)
}

// Message returns the human-readable message shown to the user.
func (k Kind) Message() string {
	if msg, ok := kindMessages[k]; ok {
		return msg
	}
	return string(k)
}

// ValidationError reports a single failed rule for a field.
type ValidationError struct {
	Field   string
	Kind    Kind
	message string
}

func newValidationError(field string, kind Kind) *ValidationError {
	return &ValidationError{Field: field, Kind: kind}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Field + ": " + string(e.Kind)
}

// Unwrap exposes the Kind for errors.Is.
func (e *ValidationError) Unwrap() error {
	return e.Kind
}

// Message returns the human-readable message for the failure.
func (e *ValidationError) Message() string {
	if e.message != "" {
		return e.message
	}
	return e.Kind.Message()
}

// ValidationErrors is the ordered list of failures from one validation run:
// name, email, cpf, then birth date.
type ValidationErrors []*ValidationError

// Error implements the error interface.
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ""
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, err.Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is reports whether any contained error matches target.
func (ve ValidationErrors) Is(target error) bool {
	for _, err := range ve {
		if err.Kind == target {
			return true
		}
	}
	return false
}

// Messages returns the human-readable messages in order.
func (ve ValidationErrors) Messages() []string {
	messages := make([]string, 0, len(ve))
	for _, err := range ve {
		messages = append(messages, err.Message())
	}
	return messages
}

// Kinds returns the failed kinds in order.
func (ve ValidationErrors) Kinds() []Kind {
	kinds := make([]Kind, 0, len(ve))
	for _, err := range ve {
		kinds = append(kinds, err.Kind)
	}
	return kinds
}

// Has reports whether field has at least one error.
func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}
