// Package tui provides the interactive terminal form for the cadastro CLI.
package tui

import (
	"errors"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/atotto/clipboard"
	"golang.org/x/term"

	"github.com/guilhermegouw/cadastro/internal/models"
)

// ErrNotTerminal is returned by Run when stdin is not a TTY.
var ErrNotTerminal = errors.New("the interactive form requires a terminal: stdin/stdout must be connected to a TTY")

// ErrCanceled is returned by Run when the user quits before submitting.
var ErrCanceled = errors.New("form canceled")

// Run shows the form until the user quits and returns the last validation
// outcome.
func Run(v *models.Validator) (*models.User, models.ValidationErrors, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, nil, ErrNotTerminal
	}

	var copyFn func(string) error
	if !clipboard.Unsupported {
		copyFn = clipboard.WriteAll
	}

	final, err := tea.NewProgram(New(v, copyFn)).Run()
	if err != nil {
		return nil, nil, fmt.Errorf("running form: %w", err)
	}

	m, ok := final.(*Model)
	if !ok || !m.Submitted() {
		return nil, nil, ErrCanceled
	}

	user, errs := m.Result()
	return user, errs, nil
}
