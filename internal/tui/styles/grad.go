package styles

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// ApplyForegroundGrad colors each line of text with a horizontal gradient
// from one color to another. Spaces are left unstyled.
func ApplyForegroundGrad(text string, from, to color.Color) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = gradLine(line, from, to)
	}
	return strings.Join(lines, "\n")
}

func gradLine(line string, from, to color.Color) string {
	var clusters []string
	g := uniseg.NewGraphemes(line)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}
	if len(clusters) == 0 {
		return line
	}

	ramp := Blend(from, to, len(clusters))

	var b strings.Builder
	for i, c := range clusters {
		if strings.TrimSpace(c) == "" {
			b.WriteString(c)
			continue
		}
		b.WriteString(lipgloss.NewStyle().Foreground(ramp[i]).Render(c))
	}
	return b.String()
}

// Blend returns n colors evenly spaced between from and to, blended in
// CIE-L*u*v* space.
func Blend(from, to color.Color, n int) []color.Color {
	if n <= 0 {
		return nil
	}

	a, _ := colorful.MakeColor(from)
	z, _ := colorful.MakeColor(to)

	out := make([]color.Color, n)
	for i := range n {
		var t float64
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		out[i] = a.BlendLuv(z, t).Clamped()
	}
	return out
}
