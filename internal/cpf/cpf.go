// Package cpf implements the Brazilian CPF (Cadastro de Pessoas Físicas)
// check-digit rule and its canonical XXX.XXX.XXX-XX rendering.
//
// The rule is fixed by the Receita Federal: nine base digits followed by two
// check digits, each derived from a weighted sum modulo 11. Sequences of
// eleven identical digits satisfy the arithmetic but are never issued, so
// they are rejected explicitly.
package cpf

import (
	"errors"
	"math/rand/v2"
	"regexp"
	"strings"
)

// Length is the number of digits in a CPF.
const Length = 11

// Errors returned by Validate.
var (
	// ErrBlank is returned when the input is empty or whitespace-only.
	ErrBlank = errors.New("cpf is blank")

	// ErrInvalid is returned when the digits do not form a valid CPF.
	ErrInvalid = errors.New("cpf is invalid")
)

var nonDigits = regexp.MustCompile(`\D`)

// Strip removes every non-digit character from s.
func Strip(s string) string {
	return nonDigits.ReplaceAllString(s, "")
}

// Validate checks raw against the CPF rule and returns its canonical form.
// Punctuation and any other non-digit characters are ignored.
func Validate(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", ErrBlank
	}

	digits := Strip(raw)
	if len(digits) != Length {
		return "", ErrInvalid
	}
	if repeated(digits) {
		return "", ErrInvalid
	}

	first, second := CheckDigits(digits[:9])
	if int(digits[9]-'0') != first || int(digits[10]-'0') != second {
		return "", ErrInvalid
	}

	return Format(digits), nil
}

// IsValid reports whether raw is a valid CPF.
func IsValid(raw string) bool {
	_, err := Validate(raw)
	return err == nil
}

// CheckDigits computes the two check digits for the nine base digits.
// It panics if base is not nine ASCII digits.
func CheckDigits(base string) (first, second int) {
	if len(base) != 9 {
		panic("cpf: base must have 9 digits")
	}

	sum := 0
	for i := 0; i < 9; i++ {
		sum += digit(base[i]) * (10 - i)
	}
	first = reduce(sum)

	sum = 0
	for i := 0; i < 9; i++ {
		sum += digit(base[i]) * (11 - i)
	}
	sum += first * 2
	second = reduce(sum)

	return first, second
}

// Format renders eleven digits as DDD.DDD.DDD-DD. Any other input is
// returned unchanged.
func Format(digits string) string {
	if len(digits) != Length {
		return digits
	}
	return digits[0:3] + "." + digits[3:6] + "." + digits[6:9] + "-" + digits[9:11]
}

// Mask hides the middle groups of a canonical CPF, keeping the first three
// and the check digits: 529.***.***-25. Used for log lines.
func Mask(canonical string) string {
	digits := Strip(canonical)
	if len(digits) != Length {
		return "***"
	}
	return digits[0:3] + ".***.***-" + digits[9:11]
}

// Generate returns a random valid CPF in canonical form.
func Generate(r *rand.Rand) string {
	var b strings.Builder
	b.Grow(Length)
	for {
		b.Reset()
		for i := 0; i < 9; i++ {
			b.WriteByte(byte('0' + r.IntN(10)))
		}
		base := b.String()
		if !repeated(base) {
			first, second := CheckDigits(base)
			b.WriteByte(byte('0' + first))
			b.WriteByte(byte('0' + second))
			break
		}
	}
	return Format(b.String())
}

func reduce(sum int) int {
	d := 11 - (sum % 11)
	if d >= 10 {
		return 0
	}
	return d
}

func repeated(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}

func digit(b byte) int {
	if b < '0' || b > '9' {
		panic("cpf: non-digit in base")
	}
	return int(b - '0')
}
