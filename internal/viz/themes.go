package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for the TUI. Band themes are named after
// common gel stains.
type Theme struct {
	Name    string
	Band    lipgloss.Color
	Frame   lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
}

var (
	ThemeEthidium = Theme{
		Name:    "ethidium",
		Band:    lipgloss.Color("#ff8800"), // EtBr under UV
		Frame:   lipgloss.Color("#444466"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#666688"),
		Success: lipgloss.Color("#00ff88"),
		Warning: lipgloss.Color("#ffcc00"),
		Error:   lipgloss.Color("#ff4444"),
	}

	ThemeSybr = Theme{
		Name:    "sybr",
		Band:    lipgloss.Color("#55ff55"),
		Frame:   lipgloss.Color("#335533"),
		Text:    lipgloss.Color("#e0ffe0"),
		Muted:   lipgloss.Color("#447744"),
		Success: lipgloss.Color("#88ff88"),
		Warning: lipgloss.Color("#ffff00"),
		Error:   lipgloss.Color("#ff0000"),
	}

	ThemeMethylene = Theme{
		Name:    "methylene",
		Band:    lipgloss.Color("#66aaff"),
		Frame:   lipgloss.Color("#334466"),
		Text:    lipgloss.Color("#e0f0ff"),
		Muted:   lipgloss.Color("#4488aa"),
		Success: lipgloss.Color("#00ff88"),
		Warning: lipgloss.Color("#ffcc00"),
		Error:   lipgloss.Color("#ff4757"),
	}

	ThemeMinimal = Theme{
		Name:    "minimal",
		Band:    lipgloss.Color("#ffffff"),
		Frame:   lipgloss.Color("#888888"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#888888"),
		Success: lipgloss.Color("#00ff00"),
		Warning: lipgloss.Color("#ffaa00"),
		Error:   lipgloss.Color("#ff0000"),
	}

	CurrentTheme = ThemeEthidium

	Themes = []Theme{
		ThemeEthidium,
		ThemeSybr,
		ThemeMethylene,
		ThemeMinimal,
	}
)

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeEthidium
}

// SetTheme changes the current theme.
func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// ThemeNames returns the available theme names.
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
