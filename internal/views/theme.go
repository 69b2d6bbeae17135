package views

import "github.com/charmbracelet/lipgloss"

// Theme is the palette every renderer draws with.
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Muted     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Danger    lipgloss.Color
	Text      lipgloss.Color
}

var themes = []Theme{
	{
		Name:      "horizon",
		Primary:   lipgloss.Color("#7aa2f7"),
		Secondary: lipgloss.Color("#bb9af7"),
		Accent:    lipgloss.Color("#7dcfff"),
		Muted:     lipgloss.Color("#565f89"),
		Success:   lipgloss.Color("#9ece6a"),
		Warning:   lipgloss.Color("#e0af68"),
		Danger:    lipgloss.Color("#f7768e"),
		Text:      lipgloss.Color("#c0caf5"),
	},
	{
		Name:      "nebula",
		Primary:   lipgloss.Color("#c678dd"),
		Secondary: lipgloss.Color("#61afef"),
		Accent:    lipgloss.Color("#e5c07b"),
		Muted:     lipgloss.Color("#5c6370"),
		Success:   lipgloss.Color("#98c379"),
		Warning:   lipgloss.Color("#d19a66"),
		Danger:    lipgloss.Color("#e06c75"),
		Text:      lipgloss.Color("#abb2bf"),
	},
	{
		Name:      "cyberpunk",
		Primary:   lipgloss.Color("#ff2a6d"),
		Secondary: lipgloss.Color("#05d9e8"),
		Accent:    lipgloss.Color("#f9f871"),
		Muted:     lipgloss.Color("#4a4e69"),
		Success:   lipgloss.Color("#01ff89"),
		Warning:   lipgloss.Color("#ffb400"),
		Danger:    lipgloss.Color("#ff003c"),
		Text:      lipgloss.Color("#d1f7ff"),
	},
}

// ThemeNames lists the selectable themes in cycling order.
func ThemeNames() []string {
	out := make([]string, 0, len(themes))
	for _, t := range themes {
		out = append(out, t.Name)
	}
	return out
}

// ThemeByName falls back to the first theme for unknown names.
func ThemeByName(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return themes[0]
}

func IsTheme(name string) bool {
	for _, t := range themes {
		if t.Name == name {
			return true
		}
	}
	return false
}

// NextTheme returns the theme after name, wrapping around.
func NextTheme(name string) string {
	for i, t := range themes {
		if t.Name == name {
			return themes[(i+1)%len(themes)].Name
		}
	}
	return themes[0].Name
}

type styles struct {
	title    lipgloss.Style
	tab      lipgloss.Style
	tabOn    lipgloss.Style
	panel    lipgloss.Style
	modal    lipgloss.Style
	selected lipgloss.Style
	muted    lipgloss.Style
	ok       lipgloss.Style
	warn     lipgloss.Style
	danger   lipgloss.Style
	text     lipgloss.Style
	accent   lipgloss.Style
}

func (t Theme) styles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		tab:      lipgloss.NewStyle().Padding(0, 1).Foreground(t.Muted),
		tabOn:    lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(t.Text).Background(t.Primary),
		panel:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Muted).Padding(0, 1),
		modal:    lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(t.Secondary).Padding(1, 2),
		selected: lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		muted:    lipgloss.NewStyle().Foreground(t.Muted),
		ok:       lipgloss.NewStyle().Foreground(t.Success),
		warn:     lipgloss.NewStyle().Foreground(t.Warning),
		danger:   lipgloss.NewStyle().Foreground(t.Danger),
		text:     lipgloss.NewStyle().Foreground(t.Text),
		accent:   lipgloss.NewStyle().Foreground(t.Secondary),
	}
}
