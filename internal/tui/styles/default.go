package styles

// NewDefaultTheme creates a clean dark theme for cadastro.
func NewDefaultTheme() *Theme {
	t := &Theme{
		Name:   "default",
		IsDark: true,

		Primary:   ParseHex("#61afef"), // Soft blue
		Secondary: ParseHex("#56b6c2"), // Cyan
		Accent:    ParseHex("#c678dd"), // Purple accent

		FgBase:   ParseHex("#abb2bf"), // Light gray text
		FgMuted:  ParseHex("#7f848e"), // Muted gray
		FgSubtle: ParseHex("#5c6370"), // Subtle gray

		Border:      ParseHex("#3e4451"),
		BorderFocus: ParseHex("#61afef"),

		Success: ParseHex("#98c379"), // Green
		Error:   ParseHex("#e06c75"), // Red
		Warning: ParseHex("#e5c07b"), // Yellow
	}
	t.buildStyles()
	return t
}
