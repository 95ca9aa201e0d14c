package models

import (
	"errors"

	"github.com/guilhermegouw/cadastro/internal/cpf"
)

// ValidateCPF checks a CPF, which may carry punctuation, and returns it in
// canonical XXX.XXX.XXX-XX form.
func ValidateCPF(raw string) (string, error) {
	canonical, err := cpf.Validate(raw)
	switch {
	case errors.Is(err, cpf.ErrBlank):
		return "", newValidationError(FieldCPF, BlankID)
	case err != nil:
		return "", newValidationError(FieldCPF, InvalidID)
	}
	return canonical, nil
}
