package render

import (
	"fmt"
	"strings"

	"github.com/guilhermegouw/cadastro/internal/models"
)

// RuleSet describes the active validation settings.
type RuleSet struct {
	StrictName bool
	MinAge     int
	MaxAge     int
}

// RulesMarkdown documents the validation rules for the given settings.
func RulesMarkdown(rs RuleSet) string {
	var b strings.Builder

	b.WriteString("# Validation rules\n\n")

	b.WriteString("## Name\n\n")
	b.WriteString("- Required.\n")
	b.WriteString("- Only ASCII letters (`A-Z`, `a-z`) and spaces.\n")
	if rs.StrictName {
		b.WriteString("- Words separated by a single space.\n")
	} else {
		b.WriteString("- Double spaces are accepted.\n")
	}

	b.WriteString("\n## Email\n\n")
	b.WriteString("- Required.\n")
	b.WriteString("- `local@domain.tld`, where the TLD has 2 to 6 letters. Case-insensitive.\n")

	b.WriteString("\n## CPF\n\n")
	b.WriteString("- Required. Punctuation is ignored.\n")
	b.WriteString("- Exactly 11 digits, not all the same.\n")
	b.WriteString("- Both check digits must match (modulo 11).\n")
	b.WriteString("- Shown as `XXX.XXX.XXX-XX`.\n")

	b.WriteString("\n## Birth date\n\n")
	b.WriteString("- Required.\n")
	formats := models.AcceptedDateFormats()
	quoted := make([]string, 0, len(formats))
	for _, f := range formats {
		quoted = append(quoted, "`"+f+"`")
	}
	fmt.Fprintf(&b, "- Accepted formats, tried in order: %s.\n", strings.Join(quoted, ", "))
	b.WriteString("- Two-digit years are read as 20yy.\n")
	b.WriteString("- The date must exist in the calendar.\n")
	fmt.Fprintf(&b, "- Age between %d and %d years, both inclusive.\n", rs.MinAge, rs.MaxAge)

	return b.String()
}
