// Package models provides the domain model for cadastro.
//
// Input carries the four raw strings typed by the user. A Validator turns an
// Input into either a User, whose fields are normalized and guaranteed to
// satisfy every rule, or a non-empty ValidationErrors listing each failed
// rule in field order.
//
// Example usage:
//
//	v := models.NewValidator()
//	user, errs := v.Validate(models.Input{
//	    Name:      "Nathan Almeida",
//	    Email:     "nathan@email.com",
//	    CPF:       "529.982.247-25",
//	    BirthDate: "30/09/2000",
//	})
//	if errs != nil {
//	    for _, msg := range errs.Messages() {
//	        fmt.Println("-", msg)
//	    }
//	}
package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Input holds the raw, unvalidated user data.
type Input struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	CPF       string `json:"cpf"`
	BirthDate string `json:"birth_date"`
}

// User is a validated user record.
//
// Name contains only ASCII letters and spaces. Email has the general
// local@domain.tld shape. CPF is in canonical XXX.XXX.XXX-XX form.
// BirthDate is an existing calendar date (UTC midnight) within the
// validator's age bounds on ValidatedAt.
type User struct {
	// ID identifies this validation run (UUID format).
	ID string `json:"id"`

	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CPF       string    `json:"cpf"`
	BirthDate time.Time `json:"birth_date"`

	// ValidatedAt is the clock reading the age checks were made against.
	ValidatedAt time.Time `json:"validated_at"`
}

// FormattedBirthDate returns the birth date as dd/MM/yyyy.
func (u *User) FormattedBirthDate() string {
	return u.BirthDate.Format(DateLayout)
}

// Validator validates Input. The zero value is not usable; use NewValidator.
type Validator struct {
	// StrictName rejects names containing a double space.
	StrictName bool

	// MinAge and MaxAge bound the accepted age in years, both inclusive.
	MinAge int
	MaxAge int

	// Now supplies the current time for the age checks.
	Now func() time.Time
}

// Option configures a Validator.
type Option func(*Validator)

// WithStrictName sets whether names with a double space are rejected.
func WithStrictName(strict bool) Option {
	return func(v *Validator) {
		v.StrictName = strict
	}
}

// WithAgeRange sets the inclusive age bounds.
func WithAgeRange(minAge, maxAge int) Option {
	return func(v *Validator) {
		v.MinAge = minAge
		v.MaxAge = maxAge
	}
}

// WithClock sets the time source used for the age checks.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) {
		v.Now = now
	}
}

// NewValidator creates a Validator with strict names, ages 18 to 130 and the
// system clock.
func NewValidator(opts ...Option) *Validator {
	v := &Validator{
		StrictName: true,
		MinAge:     DefaultMinAge,
		MaxAge:     DefaultMaxAge,
		Now:        time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate checks every field of in independently. It returns the validated
// User and nil, or nil and the failures in field order. Fields are trimmed
// before validation.
func (v *Validator) Validate(in Input) (*User, ValidationErrors) {
	now := v.Now()
	var errs ValidationErrors

	name, err := ValidateName(strings.TrimSpace(in.Name), v.StrictName)
	errs = collect(errs, err)

	email, err := ValidateEmail(strings.TrimSpace(in.Email))
	errs = collect(errs, err)

	cpf, err := ValidateCPF(strings.TrimSpace(in.CPF))
	errs = collect(errs, err)

	birth, err := ValidateBirthDate(strings.TrimSpace(in.BirthDate), now, v.MinAge, v.MaxAge)
	errs = collect(errs, err)

	if len(errs) > 0 {
		return nil, errs
	}

	return &User{
		ID:          uuid.New().String(),
		Name:        name,
		Email:       email,
		CPF:         cpf,
		BirthDate:   birth,
		ValidatedAt: now,
	}, nil
}

func collect(errs ValidationErrors, err error) ValidationErrors {
	if err == nil {
		return errs
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return append(errs, ve)
	}
	return errs
}
