package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type TaskItemData struct {
	ID       string
	Title    string
	Status   string
	Priority string
	XP       int
	Due      string
	Overdue  bool
}

type DashboardData struct {
	TableView string
	Items     []TaskItemData
	Selected  int
	Search    string
}

type KanbanColumnData struct {
	Title    string
	Items    []TaskItemData
	Selected int
}

type KanbanData struct {
	Columns       []KanbanColumnData
	FocusedColumn int
	ColumnWidth   int
}

type FocusData struct {
	Timer        string
	Running      bool
	ProgressView string
	ProgressPct  int
	TaskTitle    string
}

type WeeklyBarData struct {
	Day   string
	Count int
}

type AnalyticsData struct {
	Weekly         []WeeklyBarData
	Level          int
	CurrentXP      int
	NextLevelXP    int
	Streak         int
	CompletedToday int
	TotalTasks     int
	DoneTasks      int
}

type FormFieldData struct {
	Label  string
	View   string
	Active bool
}

type FormData struct {
	Editing bool
	Fields  []FormFieldData
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
	HelpView    string
}

type InspectorData struct {
	Task            TaskItemData
	CreatedAt       string
	CompletedAt     string
	DescriptionView string
}

func RenderSplash(theme Theme, title, subtitle string) string {
	st := theme.styles()
	banner := st.title.Render(strings.ToUpper(title))
	return st.modal.Render(lipgloss.JoinVertical(lipgloss.Center,
		banner,
		st.text.Render(subtitle),
		"",
		st.muted.Render("press any key to continue, q to quit"),
	))
}

func RenderDashboardPanel(theme Theme, data DashboardData) string {
	st := theme.styles()
	var b strings.Builder
	b.WriteString(st.title.Render("dashboard") + "\n")
	if len(data.Items) == 0 {
		if data.Search != "" {
			b.WriteString(st.muted.Render(fmt.Sprintf("no tasks match %q", data.Search)))
		} else {
			b.WriteString(st.muted.Render("no tasks yet, press n to create one"))
		}
		return st.panel.Render(b.String())
	}
	if data.TableView != "" {
		b.WriteString(data.TableView)
		return st.panel.Render(b.String())
	}
	for i, item := range data.Items {
		b.WriteString(renderTaskLine(st, item, i == data.Selected) + "\n")
	}
	return st.panel.Render(strings.TrimSuffix(b.String(), "\n"))
}

func RenderKanbanPanel(theme Theme, data KanbanData) string {
	st := theme.styles()
	width := data.ColumnWidth
	if width <= 0 {
		width = 30
	}
	cols := make([]string, 0, len(data.Columns))
	for i, col := range data.Columns {
		var b strings.Builder
		heading := fmt.Sprintf("%s (%d)", col.Title, len(col.Items))
		if i == data.FocusedColumn {
			b.WriteString(st.selected.Render("▶ "+heading) + "\n")
		} else {
			b.WriteString(st.title.Render("  "+heading) + "\n")
		}
		if len(col.Items) == 0 {
			b.WriteString(st.muted.Render("(empty)"))
		}
		for j, item := range col.Items {
			b.WriteString(renderTaskLine(st, item, j == col.Selected) + "\n")
		}
		style := st.panel.Width(width)
		if i == data.FocusedColumn {
			style = style.BorderForeground(theme.Primary)
		}
		cols = append(cols, style.Render(strings.TrimSuffix(b.String(), "\n")))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func RenderFocusPanel(theme Theme, data FocusData) string {
	st := theme.styles()
	state := st.muted.Render("paused")
	if data.Running {
		state = st.ok.Render("running")
	}
	lines := []string{
		st.title.Render("focus"),
	}
	if data.TaskTitle != "" {
		lines = append(lines, st.text.Render("task: "+data.TaskTitle))
	}
	lines = append(lines,
		st.selected.Render(data.Timer)+"  "+state,
		fmt.Sprintf("%s %d%%", data.ProgressView, data.ProgressPct),
		st.muted.Render("[t] start/pause  [r] reset"),
	)
	return st.panel.Render(strings.Join(lines, "\n"))
}

func RenderAnalyticsPanel(theme Theme, data AnalyticsData) string {
	st := theme.styles()
	var b strings.Builder
	b.WriteString(st.title.Render("analytics") + "\n")
	b.WriteString(fmt.Sprintf("level %d  %d/%d xp\n", data.Level, data.CurrentXP, data.NextLevelXP))
	b.WriteString(fmt.Sprintf("tasks %d  done %d  today %d  streak %dd\n", data.TotalTasks, data.DoneTasks, data.CompletedToday, data.Streak))
	b.WriteString("\n" + st.accent.Render("completions, last active days") + "\n")
	if len(data.Weekly) == 0 {
		b.WriteString(st.muted.Render("no completions yet"))
		return st.panel.Render(b.String())
	}
	peak := 0
	for _, w := range data.Weekly {
		if w.Count > peak {
			peak = w.Count
		}
	}
	for _, w := range data.Weekly {
		b.WriteString(fmt.Sprintf("%s %s %d\n", w.Day, st.ok.Render(bar(w.Count, peak, 24)), w.Count))
	}
	return st.panel.Render(strings.TrimSuffix(b.String(), "\n"))
}

func RenderFormModal(theme Theme, data FormData) string {
	st := theme.styles()
	title := "new task"
	if data.Editing {
		title = "edit task"
	}
	lines := []string{st.title.Render(title), ""}
	for _, f := range data.Fields {
		label := st.muted.Render(fmt.Sprintf("%-12s", f.Label))
		if f.Active {
			label = st.selected.Render(fmt.Sprintf("%-12s", f.Label))
		}
		lines = append(lines, label+" "+f.View)
	}
	lines = append(lines, "", st.muted.Render("tab/shift+tab field  ←/→ priority  enter save  esc cancel"))
	return st.modal.Render(strings.Join(lines, "\n"))
}

func RenderHelpPanel(theme Theme, data HelpPanelData) string {
	st := theme.styles()
	lines := []string{st.title.Render("help: " + strings.ToLower(data.CurrentView))}
	lines = append(lines, data.Bindings...)
	if data.HelpView != "" {
		lines = append(lines, "", data.HelpView)
	}
	return st.modal.Render(strings.Join(lines, "\n"))
}

func RenderInspector(theme Theme, data InspectorData) string {
	st := theme.styles()
	t := data.Task
	lines := []string{
		st.title.Render(t.Title),
		fmt.Sprintf("status: %s  priority: %s  xp: %d", t.Status, t.Priority, t.XP),
	}
	if t.Due != "" {
		due := "due: " + t.Due
		if t.Overdue {
			due = st.danger.Render(due + " (overdue)")
		}
		lines = append(lines, due)
	}
	lines = append(lines, st.muted.Render("created: "+data.CreatedAt))
	if data.CompletedAt != "" {
		lines = append(lines, st.ok.Render("completed: "+data.CompletedAt))
	}
	lines = append(lines, "")
	if strings.TrimSpace(data.DescriptionView) == "" {
		lines = append(lines, st.muted.Render("(no description)"))
	} else {
		lines = append(lines, data.DescriptionView)
	}
	lines = append(lines, "", st.muted.Render("enter/esc close"))
	return st.modal.Render(strings.Join(lines, "\n"))
}

func RenderQuitConfirm(theme Theme) string {
	st := theme.styles()
	return st.modal.Render(st.warn.Render("quit zenith?") + "\n\n" + st.muted.Render("[y] yes  [n] no"))
}

func renderTaskLine(st styles, item TaskItemData, selected bool) string {
	cursor := "  "
	if selected {
		cursor = "> "
	}
	line := fmt.Sprintf("%s%s %s %s", cursor, statusBadge(item.Status), priorityBadge(st, item.Priority), item.Title)
	if item.Due != "" {
		due := " due:" + item.Due
		if item.Overdue {
			due = st.danger.Render(due + "!")
		}
		line += due
	}
	if selected {
		return st.selected.Render(line)
	}
	return line
}

func statusBadge(status string) string {
	switch status {
	case "DONE":
		return "[x]"
	case "DOING":
		return "[~]"
	default:
		return "[ ]"
	}
}

func priorityBadge(st styles, priority string) string {
	switch priority {
	case "HIGH":
		return st.danger.Render("!!!")
	case "MEDIUM":
		return st.warn.Render("!! ")
	default:
		return st.muted.Render("!  ")
	}
}

func bar(count, peak, width int) string {
	if peak <= 0 || count <= 0 {
		return ""
	}
	n := count * width / peak
	if n < 1 {
		n = 1
	}
	return strings.Repeat("█", n)
}

func itoa(v int) string {
	return strconv.Itoa(v)
}
