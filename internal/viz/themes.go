package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI
type Theme struct {
	Name       string
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Axis       lipgloss.Color
	// Sheets cycles when a surface has more sheets than colors.
	Sheets []lipgloss.Color
}

// Available themes
var (
	ThemeCyberpunk = Theme{
		Name:       "cyberpunk",
		Primary:    lipgloss.Color("#ff00ff"), // Magenta
		Secondary:  lipgloss.Color("#00ffff"), // Cyan
		Accent:     lipgloss.Color("#ffff00"), // Yellow
		Background: lipgloss.Color("#0a0a0a"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#666666"),
		Axis:       lipgloss.Color("#888888"),
		Sheets: []lipgloss.Color{
			"#00ffff", "#ff00ff", "#ffff00", "#00ff88",
			"#ff8800", "#8888ff", "#ff4488", "#88ff00",
		},
	}

	ThemeRetroGreen = Theme{
		Name:       "retro",
		Primary:    lipgloss.Color("#00ff00"), // Green phosphor
		Secondary:  lipgloss.Color("#00cc00"),
		Accent:     lipgloss.Color("#88ff88"),
		Background: lipgloss.Color("#001100"),
		Text:       lipgloss.Color("#00ff00"),
		Muted:      lipgloss.Color("#005500"),
		Axis:       lipgloss.Color("#007700"),
		Sheets: []lipgloss.Color{
			"#00ff00", "#88ff88", "#00aa00", "#ccffcc",
		},
	}

	ThemeMinimal = Theme{
		Name:       "minimal",
		Primary:    lipgloss.Color("#ffffff"),
		Secondary:  lipgloss.Color("#cccccc"),
		Accent:     lipgloss.Color("#0088ff"),
		Background: lipgloss.Color("#000000"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#888888"),
		Axis:       lipgloss.Color("#555555"),
		Sheets: []lipgloss.Color{
			"#ffffff", "#0088ff", "#aaaaaa", "#66bbff",
		},
	}

	ThemeOcean = Theme{
		Name:       "ocean",
		Primary:    lipgloss.Color("#0077be"), // Ocean blue
		Secondary:  lipgloss.Color("#00a8cc"),
		Accent:     lipgloss.Color("#ffd700"),
		Background: lipgloss.Color("#001a33"),
		Text:       lipgloss.Color("#e0f0ff"),
		Muted:      lipgloss.Color("#4488aa"),
		Axis:       lipgloss.Color("#336688"),
		Sheets: []lipgloss.Color{
			"#00a8cc", "#ffd700", "#0077be", "#00ff88", "#e0f0ff", "#ff4444",
		},
	}

	ThemeSunset = Theme{
		Name:       "sunset",
		Primary:    lipgloss.Color("#ff6b6b"), // Coral
		Secondary:  lipgloss.Color("#feca57"),
		Accent:     lipgloss.Color("#ff9ff3"),
		Background: lipgloss.Color("#2d1b2e"),
		Text:       lipgloss.Color("#fff5f5"),
		Muted:      lipgloss.Color("#8b6b8c"),
		Axis:       lipgloss.Color("#8b6b8c"),
		Sheets: []lipgloss.Color{
			"#ff6b6b", "#feca57", "#ff9ff3", "#5fd068", "#ffc048", "#ff4757",
		},
	}

	// All available themes
	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to cyberpunk.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
}

// NextTheme returns the theme after t in Themes, wrapping around.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// SheetColor is the color of sheet k; axes use the Axis color.
func (t Theme) SheetColor(k int) lipgloss.Color {
	if k < 0 || len(t.Sheets) == 0 {
		return t.Axis
	}
	return t.Sheets[k%len(t.Sheets)]
}

// LayerStyle returns a style function for Canvas.StyledString.
func (t Theme) LayerStyle() func(layer int) lipgloss.Style {
	styles := make(map[int]lipgloss.Style)
	return func(layer int) lipgloss.Style {
		s, ok := styles[layer]
		if !ok {
			s = lipgloss.NewStyle().Foreground(t.SheetColor(layer))
			styles[layer] = s
		}
		return s
	}
}
