package models

import (
	"errors"
	"testing"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		strict   bool
		wantKind Kind
	}{
		{name: "valid name", input: "Nathan Almeida", strict: true},
		{name: "single word", input: "Nathan", strict: true},
		{name: "mixed case", input: "nathan ALMEIDA", strict: true},
		{name: "double space relaxed", input: "Nathan  Almeida", strict: false},
		{name: "empty", input: "", strict: true, wantKind: BlankName},
		{name: "double space strict", input: "Nathan  Almeida", strict: true, wantKind: InvalidName},
		{name: "digits", input: "Nathan1", strict: true, wantKind: InvalidName},
		{name: "accented letter", input: "João Silva", strict: true, wantKind: InvalidName},
		{name: "hyphen", input: "Mary-Jane", strict: true, wantKind: InvalidName},
		{name: "tab", input: "Nathan\tAlmeida", strict: false, wantKind: InvalidName},
		{name: "symbol", input: "Nathan@Almeida", strict: true, wantKind: InvalidName},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ValidateName(tc.input, tc.strict)
			assertKind(t, err, tc.wantKind)
			if tc.wantKind == "" && got != tc.input {
				t.Errorf("ValidateName() = %q, want input unchanged", got)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKind Kind
	}{
		{name: "valid email", input: "nathan@email.com"},
		{name: "upper case", input: "NATHAN@EMAIL.COM"},
		{name: "dots in local part", input: "nathan.almeida@example.com"},
		{name: "plus tag and subdomain", input: "nathan+tag@mail.example.co"},
		{name: "six letter tld", input: "nathan@email.museum"},
		{name: "percent and hyphen", input: "a%b-c_d@my-host.org"},
		{name: "empty", input: "", wantKind: BlankEmail},
		{name: "no at", input: "nathanemail.com", wantKind: InvalidEmail},
		{name: "dot right after at", input: "nathan@.com", wantKind: InvalidEmail},
		{name: "no tld", input: "nathan@email", wantKind: InvalidEmail},
		{name: "one letter tld", input: "nathan@email.c", wantKind: InvalidEmail},
		{name: "seven letter tld", input: "nathan@email.abcdefg", wantKind: InvalidEmail},
		{name: "digit in tld", input: "nathan@email.c0m", wantKind: InvalidEmail},
		{name: "space", input: "nathan almeida@email.com", wantKind: InvalidEmail},
		{name: "no local part", input: "@email.com", wantKind: InvalidEmail},
		{name: "trailing text", input: "nathan@email.com extra", wantKind: InvalidEmail},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ValidateEmail(tc.input)
			assertKind(t, err, tc.wantKind)
			if tc.wantKind == "" && got != tc.input {
				t.Errorf("ValidateEmail() = %q, want input unchanged", got)
			}
		})
	}
}

func TestValidateCPF(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     string
		wantKind Kind
	}{
		{name: "canonical", input: "529.982.247-25", want: "529.982.247-25"},
		{name: "digits only", input: "52998224725", want: "529.982.247-25"},
		{name: "empty", input: "", wantKind: BlankID},
		{name: "checksum mismatch", input: "123.456.789-00", wantKind: InvalidID},
		{name: "repeated digits", input: "11111111111", wantKind: InvalidID},
		{name: "letters only", input: "abc", wantKind: InvalidID},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ValidateCPF(tc.input)
			assertKind(t, err, tc.wantKind)
			if got != tc.want {
				t.Errorf("ValidateCPF() = %q, want %q", got, tc.want)
			}
		})
	}
}

func assertKind(t *testing.T, err error, want Kind) {
	t.Helper()

	if want == "" {
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		return
	}

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("Expected *ValidationError with kind %q, got %v", want, err)
	}
	if ve.Kind != want {
		t.Errorf("Kind = %q, want %q", ve.Kind, want)
	}
}
