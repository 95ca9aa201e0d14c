// Package render renders markdown documents for the terminal.
package render

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/muesli/termenv"

	"github.com/guilhermegouw/cadastro/internal/tui/styles"
)

// MarkdownRenderer renders markdown with the app theme. The glamour
// renderer is cached and rebuilt only when the width changes.
type MarkdownRenderer struct {
	renderer    *glamour.TermRenderer
	profile     termenv.Profile
	cachedWidth int
	mu          sync.Mutex
}

// NewMarkdownRenderer creates a renderer for the given color profile. Use
// termenv.Ascii for uncolored output.
func NewMarkdownRenderer(profile termenv.Profile) *MarkdownRenderer {
	return &MarkdownRenderer{profile: profile}
}

// Render renders markdown content to styled terminal output. On failure the
// raw content is returned along with the error.
func (m *MarkdownRenderer) Render(content string, width int) (string, error) {
	if content == "" {
		return "", nil
	}

	renderer, err := m.getRenderer(width)
	if err != nil {
		return content, err
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content, err
	}

	return rendered, nil
}

func (m *MarkdownRenderer) getRenderer(width int) (*glamour.TermRenderer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.renderer != nil && m.cachedWidth == width {
		return m.renderer, nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(buildStyle()),
		glamour.WithWordWrap(width),
		glamour.WithColorProfile(m.profile),
	)
	if err != nil {
		return nil, fmt.Errorf("creating markdown renderer: %w", err)
	}

	m.renderer = renderer
	m.cachedWidth = width
	return renderer, nil
}

// buildStyle creates a glamour style config that matches the app theme.
func buildStyle() ansi.StyleConfig {
	t := styles.CurrentTheme()

	style := glamourstyles.DarkStyleConfig

	primaryHex := colorToHex(t.Primary)
	secondaryHex := colorToHex(t.Secondary)
	accentHex := colorToHex(t.Accent)
	mutedHex := colorToHex(t.FgMuted)
	baseHex := colorToHex(t.FgBase)

	style.H1.Color = stringPtr(accentHex)
	style.H1.Bold = boolPtr(true)
	style.H1.Prefix = ""
	style.H1.Suffix = ""
	style.H2.Color = stringPtr(primaryHex)
	style.H2.Bold = boolPtr(true)
	style.H2.Prefix = ""
	style.H3.Color = stringPtr(secondaryHex)
	style.H3.Prefix = ""

	style.Code.Color = stringPtr(secondaryHex)
	style.Item.BlockPrefix = "  "
	style.Enumeration.BlockPrefix = "  "
	style.BlockQuote.Color = stringPtr(mutedHex)
	style.Strong.Bold = boolPtr(true)
	style.Table.Color = stringPtr(baseHex)

	return style
}

func stringPtr(s string) *string { return &s }
func boolPtr(b bool) *bool       { return &b }

func colorToHex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
