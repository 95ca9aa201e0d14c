// Package report renders a validation result as text or JSON.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rivo/uniseg"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/guilhermegouw/cadastro/internal/models"
	"github.com/guilhermegouw/cadastro/internal/tui/styles"
)

// Headings printed above the two kinds of result.
const (
	UserHeading   = "User data:"
	ErrorsHeading = "Errors found:"
)

// Line is one label/value row of a successful report.
type Line struct {
	Label string
	Value string
}

// Lines returns the display rows for a validated user.
func Lines(u *models.User) []Line {
	return []Line{
		{Label: "Name", Value: u.Name},
		{Label: "Email", Value: u.Email},
		{Label: "CPF", Value: u.CPF},
		{Label: "Birth date", Value: u.FormattedBirthDate()},
	}
}

// Text writes either the user data or the error list. A nil theme writes
// plain text.
func Text(w io.Writer, user *models.User, errs models.ValidationErrors, theme *styles.Theme) error {
	_, err := io.WriteString(w, RenderText(user, errs, theme))
	return err
}

// RenderText returns what Text writes.
func RenderText(user *models.User, errs models.ValidationErrors, theme *styles.Theme) string {
	render := plain
	if theme != nil {
		render = styled(theme)
	}

	var b strings.Builder
	if len(errs) > 0 {
		b.WriteString(render.heading(ErrorsHeading, true) + "\n")
		for _, msg := range errs.Messages() {
			b.WriteString(render.bullet("- "+msg) + "\n")
		}
		return b.String()
	}

	if user == nil {
		return ""
	}

	lines := Lines(user)
	width := 0
	for _, l := range lines {
		width = max(width, uniseg.StringWidth(l.Label))
	}

	b.WriteString(render.heading(UserHeading, false) + "\n")
	for _, l := range lines {
		pad := strings.Repeat(" ", width-uniseg.StringWidth(l.Label))
		b.WriteString(render.label(l.Label+":") + pad + " " + render.value(l.Value) + "\n")
	}
	return b.String()
}

type renderer struct {
	heading func(s string, failed bool) string
	bullet  func(string) string
	label   func(string) string
	value   func(string) string
}

func identity(s string) string { return s }

var plain = renderer{
	heading: func(s string, _ bool) string { return s },
	bullet:  identity,
	label:   identity,
	value:   identity,
}

func styled(t *styles.Theme) renderer {
	s := t.S()
	return renderer{
		heading: func(text string, failed bool) string {
			if failed {
				return s.Error.Bold(true).Render(text)
			}
			return s.Success.Bold(true).Render(text)
		},
		bullet: func(text string) string { return s.Error.Render(text) },
		label:  func(text string) string { return s.Label.Render(text) },
		value:  func(text string) string { return s.Text.Render(text) },
	}
}

// JSON writes the result as an indented JSON document:
//
//	{"valid": true, "user": {...}}
//	{"valid": false, "errors": [{"field": ..., "code": ..., "message": ...}]}
func JSON(w io.Writer, user *models.User, errs models.ValidationErrors) error {
	doc, err := RenderJSON(user, errs)
	if err != nil {
		return err
	}
	_, err = w.Write(doc)
	return err
}

// RenderJSON returns what JSON writes.
func RenderJSON(user *models.User, errs models.ValidationErrors) ([]byte, error) {
	doc := []byte(`{}`)
	var err error

	set := func(path string, value any) {
		if err != nil {
			return
		}
		doc, err = sjson.SetBytes(doc, path, value)
	}

	valid := len(errs) == 0 && user != nil
	set("valid", valid)

	if valid {
		set("user.id", user.ID)
		set("user.name", user.Name)
		set("user.email", user.Email)
		set("user.cpf", user.CPF)
		set("user.birth_date", user.FormattedBirthDate())
		set("user.validated_at", user.ValidatedAt.Format(time.RFC3339))
	} else {
		set("errors", []any{})
		for _, e := range errs {
			set("errors.-1", map[string]string{
				"field":   e.Field,
				"code":    string(e.Kind),
				"message": e.Message(),
			})
		}
	}

	if err != nil {
		return nil, fmt.Errorf("building json report: %w", err)
	}
	return pretty.Pretty(doc), nil
}
