// Package prompt collects user data from line-oriented input.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/guilhermegouw/cadastro/internal/models"
)

// Session prompts on out and reads one line per field from in.
type Session struct {
	in  *bufio.Reader
	out io.Writer
}

// NewSession creates a session reading from in and prompting on out.
func NewSession(in io.Reader, out io.Writer) *Session {
	return &Session{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Field describes one prompted field.
type Field struct {
	Label  string
	Prompt string
	set    func(*models.Input, string)
}

// Set stores value in the matching Input field.
func (f Field) Set(in *models.Input, value string) {
	f.set(in, value)
}

// Fields returns the prompted fields in order.
func Fields() []Field {
	return []Field{
		{
			Label:  "Name",
			Prompt: "Enter your name:",
			set:    func(in *models.Input, v string) { in.Name = v },
		},
		{
			Label:  "Email",
			Prompt: "Enter your email:",
			set:    func(in *models.Input, v string) { in.Email = v },
		},
		{
			Label:  "CPF",
			Prompt: "Enter your CPF:",
			set:    func(in *models.Input, v string) { in.CPF = v },
		},
		{
			Label: "Birth date",
			Prompt: fmt.Sprintf("Enter your birth date (%s):",
				strings.Join(models.AcceptedDateFormats(), ", ")),
			set: func(in *models.Input, v string) { in.BirthDate = v },
		},
	}
}

// Collect prompts for every field and returns the trimmed answers. If input
// ends early the remaining fields are left empty.
func (s *Session) Collect() (models.Input, error) {
	var input models.Input

	for _, f := range Fields() {
		if _, err := fmt.Fprintln(s.out, f.Prompt); err != nil {
			return input, fmt.Errorf("writing prompt: %w", err)
		}

		line, err := s.readLine()
		if err != nil {
			return input, err
		}
		f.Set(&input, line)
	}

	return input, nil
}

// readLine returns the next trimmed line of any length. At end of input it
// returns the unterminated remainder, or "" once nothing is left.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
