package viz

import "github.com/charmbracelet/lipgloss"

// Theme colors the chamber display. Track strokes are keyed by particle
// family so a reveal reads at a glance.
type Theme struct {
	Name    string
	Baryon  lipgloss.Color
	Meson   lipgloss.Color
	Lepton  lipgloss.Color
	Boson   lipgloss.Color
	Neutral lipgloss.Color
	Label   lipgloss.Color
	Hover   lipgloss.Color
	Accent  lipgloss.Color
	Muted   lipgloss.Color
}

var (
	// ThemeChamber mimics a lit hydrogen chamber photograph.
	ThemeChamber = Theme{
		Name:    "chamber",
		Baryon:  lipgloss.Color("#00ccff"),
		Meson:   lipgloss.Color("#ffcc00"),
		Lepton:  lipgloss.Color("#ff88ff"),
		Boson:   lipgloss.Color("#88ff88"),
		Neutral: lipgloss.Color("#555566"),
		Label:   lipgloss.Color("#ffffff"),
		Hover:   lipgloss.Color("#ff00ff"),
		Accent:  lipgloss.Color("#00ffff"),
		Muted:   lipgloss.Color("#666688"),
	}

	ThemePhosphor = Theme{
		Name:    "phosphor",
		Baryon:  lipgloss.Color("#00ff00"),
		Meson:   lipgloss.Color("#88ff88"),
		Lepton:  lipgloss.Color("#00cc00"),
		Boson:   lipgloss.Color("#ccffcc"),
		Neutral: lipgloss.Color("#005500"),
		Label:   lipgloss.Color("#00ff00"),
		Hover:   lipgloss.Color("#ffffff"),
		Accent:  lipgloss.Color("#88ff88"),
		Muted:   lipgloss.Color("#005500"),
	}

	// ThemeFilm is the high-contrast look of archival chamber film.
	ThemeFilm = Theme{
		Name:    "film",
		Baryon:  lipgloss.Color("#ffffff"),
		Meson:   lipgloss.Color("#cccccc"),
		Lepton:  lipgloss.Color("#aaaaaa"),
		Boson:   lipgloss.Color("#dddddd"),
		Neutral: lipgloss.Color("#444444"),
		Label:   lipgloss.Color("#ffffff"),
		Hover:   lipgloss.Color("#ffff00"),
		Accent:  lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#888888"),
	}

	Themes = []Theme{ThemeChamber, ThemePhosphor, ThemeFilm}
)

// GetTheme returns a theme by name, defaulting to chamber.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeChamber
}

// ThemeNames returns the available theme names.
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
