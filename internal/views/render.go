package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Theme   Theme
	Header  string
	HUD     string
	Body    string
	Overlay string
	Status  StatusData
	Footer  string
	Width   int
	Height  int
}

type TabData struct {
	Label  string
	Active bool
	// Mark wraps the rendered tab so mouse clicks can be resolved to it.
	Mark func(string) string
}

type StatusData struct {
	Mode    string
	Search  string
	Text    string
	IsError bool
}

type HUDData struct {
	Level       int
	CurrentXP   int
	NextLevelXP int
	XPBarView   string
	Streak      int
	ThemeName   string
}

// RenderApp stacks the header, HUD, body and status line. An overlay, when
// present, is drawn centered in place of the body.
func RenderApp(data AppData) string {
	st := data.Theme.styles()
	body := data.Body
	if data.Overlay != "" {
		width := data.Width
		if width <= 0 {
			width = lipgloss.Width(data.Overlay)
		}
		body = lipgloss.PlaceHorizontal(width, lipgloss.Center, data.Overlay)
	}
	lines := []string{data.Header}
	if data.HUD != "" {
		lines = append(lines, data.HUD)
	}
	lines = append(lines, body, RenderStatusBar(data.Theme, data.Status))
	if data.Footer != "" {
		lines = append(lines, st.muted.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

func RenderHeader(theme Theme, title string, tabs []TabData) string {
	st := theme.styles()
	parts := []string{st.title.Render(title)}
	for _, tab := range tabs {
		style := st.tab
		if tab.Active {
			style = st.tabOn
		}
		rendered := style.Render(tab.Label)
		if tab.Mark != nil {
			rendered = tab.Mark(rendered)
		}
		parts = append(parts, rendered)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func RenderHUD(theme Theme, data HUDData) string {
	st := theme.styles()
	parts := []string{
		st.accent.Render("LVL " + itoa(data.Level)),
		data.XPBarView,
		st.text.Render(itoa(data.CurrentXP) + "/" + itoa(data.NextLevelXP) + " xp"),
	}
	if data.Streak > 0 {
		parts = append(parts, st.warn.Render("streak "+itoa(data.Streak)+"d"))
	}
	if data.ThemeName != "" {
		parts = append(parts, st.muted.Render("["+data.ThemeName+"]"))
	}
	return strings.Join(parts, "  ")
}

func RenderStatusBar(theme Theme, data StatusData) string {
	st := theme.styles()
	parts := []string{st.selected.Render(strings.ToUpper(data.Mode))}
	if data.Search != "" {
		parts = append(parts, st.accent.Render("filter: "+data.Search))
	}
	if data.Text != "" {
		if data.IsError {
			parts = append(parts, st.danger.Render("error: "+data.Text))
		} else {
			parts = append(parts, st.ok.Render(data.Text))
		}
	}
	return strings.Join(parts, " | ")
}

func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
