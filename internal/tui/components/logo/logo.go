// Package logo renders the cadastro wordmark.
package logo

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/guilhermegouw/cadastro/internal/tui/styles"
)

const wordmark = `
╔═╗╔═╗╔╦╗╔═╗╔═╗╔╦╗╦═╗╔═╗
║  ╠═╣ ║║╠═╣╚═╗ ║ ╠╦╝║ ║
╚═╝╩ ╩═╩╝╩ ╩╚═╝ ╩ ╩╚═╚═╝
`

// Render returns the wordmark with the current theme gradient.
func Render() string {
	t := styles.CurrentTheme()
	return styles.ApplyForegroundGrad(strings.Trim(wordmark, "\n"), t.Primary, t.Secondary)
}

// RenderWithTagline returns the wordmark with a tagline below it.
func RenderWithTagline(tagline string) string {
	t := styles.CurrentTheme()
	return lipgloss.JoinVertical(lipgloss.Left, Render(), t.S().Muted.Render(tagline))
}

// Width returns the display width of the wordmark.
func Width() int {
	return lipgloss.Width(strings.Trim(wordmark, "\n"))
}
