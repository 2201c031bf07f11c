package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI
type Theme struct {
	Name    string
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Arrow   lipgloss.Color
	// Phase caption colors keyed by freefall.Phase.Color.
	Phase map[string]lipgloss.Color
}

var (
	ThemeClassic = Theme{
		Name:    "classic",
		Primary: lipgloss.Color("#1e90ff"), // dodger blue ball
		Accent:  lipgloss.Color("#8b4513"), // saddle brown ground
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#888899"),
		Arrow:   lipgloss.Color("#ffa500"),
		Phase: map[string]lipgloss.Color{
			"blue":  lipgloss.Color("#1e90ff"),
			"green": lipgloss.Color("#2ecc40"),
			"red":   lipgloss.Color("#ff4136"),
		},
	}

	ThemeNight = Theme{
		Name:    "night",
		Primary: lipgloss.Color("#c0c0ff"),
		Accent:  lipgloss.Color("#444466"),
		Text:    lipgloss.Color("#e0e0ff"),
		Muted:   lipgloss.Color("#666688"),
		Arrow:   lipgloss.Color("#ffcc00"),
		Phase: map[string]lipgloss.Color{
			"blue":  lipgloss.Color("#7fb3ff"),
			"green": lipgloss.Color("#7fff9f"),
			"red":   lipgloss.Color("#ff7f7f"),
		},
	}

	ThemeRetroGreen = Theme{
		Name:    "retro",
		Primary: lipgloss.Color("#00ff00"), // Green phosphor
		Accent:  lipgloss.Color("#00cc00"),
		Text:    lipgloss.Color("#00ff00"),
		Muted:   lipgloss.Color("#005500"),
		Arrow:   lipgloss.Color("#88ff88"),
		Phase: map[string]lipgloss.Color{
			"blue":  lipgloss.Color("#88ff88"),
			"green": lipgloss.Color("#00ff00"),
			"red":   lipgloss.Color("#ffff00"),
		},
	}

	ThemeOcean = Theme{
		Name:    "ocean",
		Primary: lipgloss.Color("#0077be"),
		Accent:  lipgloss.Color("#00a8cc"),
		Text:    lipgloss.Color("#e0f0ff"),
		Muted:   lipgloss.Color("#4488aa"),
		Arrow:   lipgloss.Color("#ffd700"),
		Phase: map[string]lipgloss.Color{
			"blue":  lipgloss.Color("#00a8cc"),
			"green": lipgloss.Color("#00ff88"),
			"red":   lipgloss.Color("#ff4444"),
		},
	}

	Themes = []Theme{
		ThemeClassic,
		ThemeNight,
		ThemeRetroGreen,
		ThemeOcean,
	}
)

// GetTheme returns a theme by name, falling back to classic.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

func themeIndex(name string) int {
	for i, t := range Themes {
		if t.Name == name {
			return i
		}
	}
	return 0
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
