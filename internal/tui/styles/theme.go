// Package styles defines the terminal color theme shared by the TUI and
// the text report.
package styles

import (
	"image/color"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme holds the palette and the styles derived from it.
type Theme struct {
	Name   string
	IsDark bool

	Primary   color.Color
	Secondary color.Color
	Accent    color.Color

	FgBase   color.Color
	FgMuted  color.Color
	FgSubtle color.Color

	Border      color.Color
	BorderFocus color.Color

	Success color.Color
	Error   color.Color
	Warning color.Color

	styles *Styles
}

// Styles are the lipgloss styles used across the UI.
type Styles struct {
	Title   lipgloss.Style
	Text    lipgloss.Style
	Label   lipgloss.Style
	Muted   lipgloss.Style
	Subtle  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Box     lipgloss.Style
}

// S returns the theme's styles.
func (t *Theme) S() *Styles {
	return t.styles
}

func (t *Theme) buildStyles() {
	base := lipgloss.NewStyle().Foreground(t.FgBase)
	t.styles = &Styles{
		Title:   lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Text:    base,
		Label:   lipgloss.NewStyle().Foreground(t.Secondary).Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle:  lipgloss.NewStyle().Foreground(t.FgSubtle),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
	}
}

// ParseHex parses a #rrggbb color. Invalid input yields black.
func ParseHex(hex string) color.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.Black
	}
	return c
}

var (
	current     *Theme
	currentOnce sync.Once
)

// CurrentTheme returns the active theme.
func CurrentTheme() *Theme {
	currentOnce.Do(func() {
		current = NewDefaultTheme()
	})
	return current
}
