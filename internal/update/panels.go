package update

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/sandeepkv93/zenith/internal/model"
	"github.com/sandeepkv93/zenith/internal/views"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	theme := views.ThemeByName(m.theme)
	if m.view == ViewSplash {
		return views.RenderSplash(theme, "zenith", "tasks, focus and xp in one terminal")
	}
	out := views.RenderApp(views.AppData{
		Theme:   theme,
		Header:  views.RenderHeader(theme, "zenith", m.tabs()),
		HUD:     m.renderHUD(theme),
		Body:    m.renderBody(theme),
		Overlay: m.renderOverlay(theme),
		Status: views.StatusData{
			Mode:    string(m.mode),
			Search:  m.search,
			Text:    m.status.Text,
			IsError: m.status.IsError,
		},
		Footer: m.renderFooter(),
		Width:  m.width,
		Height: m.height,
	})
	if m.zones != nil {
		return m.zones.Scan(out)
	}
	return out
}

func (m Model) tabs() []views.TabData {
	out := make([]views.TabData, 0, len(cycleOrder))
	for i, v := range cycleOrder {
		tab := views.TabData{Label: strconv.Itoa(i+1) + " " + string(v), Active: v == m.view}
		if m.zones != nil {
			id := tabZoneID(v)
			tab.Mark = func(s string) string { return m.zones.Mark(id, s) }
		}
		out = append(out, tab)
	}
	return out
}

func (m Model) renderHUD(theme views.Theme) string {
	p := m.cache.profile
	return views.RenderHUD(theme, views.HUDData{
		Level:       p.Level,
		CurrentXP:   p.CurrentXP,
		NextLevelXP: p.NextLevelXP,
		XPBarView:   m.xpProgress.ViewAs(p.Progress()),
		Streak:      m.cache.streak,
		ThemeName:   m.theme,
	})
}

func (m Model) renderBody(theme views.Theme) string {
	now := m.now()
	switch m.view {
	case ViewKanban:
		return m.renderKanban(theme, now)
	case ViewFocus:
		return m.renderFocus(theme)
	case ViewAnalytics:
		return m.renderAnalytics(theme)
	default:
		return m.renderDashboard(theme, now)
	}
}

// renderOverlay picks the topmost modal. Only one is drawn at a time.
func (m Model) renderOverlay(theme views.Theme) string {
	switch {
	case m.confirmingQuit:
		return views.RenderQuitConfirm(theme)
	case m.mode == ModeEditing:
		return m.renderForm(theme)
	case m.helpVisible:
		return m.renderHelpView()
	case m.inspecting:
		return m.renderInspector(theme)
	}
	return ""
}

func taskColumns(width int) []table.Column {
	title := max(20, width-48)
	return []table.Column{
		{Title: "", Width: 3},
		{Title: "Title", Width: title},
		{Title: "Status", Width: 11},
		{Title: "Priority", Width: 8},
		{Title: "XP", Width: 4},
		{Title: "Due", Width: 11},
	}
}

func (m Model) renderDashboard(theme views.Theme, now time.Time) string {
	items := m.cache.list(ListDashboard)
	selected := cursorIndex(m.nav.Cursor(ListDashboard))
	data := views.DashboardData{
		Items:    toItemsData(items, now),
		Selected: selected,
		Search:   m.search,
	}
	if len(items) > 0 {
		rows := make([]table.Row, 0, len(items))
		for _, t := range items {
			due := model.FormatDueDate(t.DueDate)
			if t.Overdue(now) {
				due += "!"
			}
			rows = append(rows, table.Row{statusMark(t.Status), t.Title, t.Status.Label(), string(t.Priority), strconv.Itoa(t.XPReward), due})
		}
		tbl := m.taskTable
		tbl.SetRows(rows)
		tbl.SetCursor(max(selected, 0))
		data.TableView = tbl.View()
	}
	return views.RenderDashboardPanel(theme, data)
}

func statusMark(s model.Status) string {
	switch s {
	case model.StatusDone:
		return "[x]"
	case model.StatusDoing:
		return "[~]"
	default:
		return "[ ]"
	}
}

func (m Model) renderKanban(theme views.Theme, now time.Time) string {
	cols := make([]views.KanbanColumnData, 0, kanbanColumns)
	for col := 0; col < kanbanColumns; col++ {
		list := columnList(col)
		st := model.StatusForColumn(col)
		cols = append(cols, views.KanbanColumnData{
			Title:    st.Label(),
			Items:    toItemsData(m.cache.list(list), now),
			Selected: cursorIndex(m.nav.Cursor(list)),
		})
	}
	return views.RenderKanbanPanel(theme, views.KanbanData{
		Columns:       cols,
		FocusedColumn: m.nav.FocusedColumn(),
		ColumnWidth:   max(24, (m.width-8)/kanbanColumns),
	})
}

func (m Model) renderFocus(theme views.Theme) string {
	pct := m.timer.Progress()
	data := views.FocusData{
		Timer:        formatDuration(m.timer.Remaining()),
		Running:      m.timer.Running(),
		ProgressView: m.focusProgress.ViewAs(pct),
		ProgressPct:  int(pct * 100),
	}
	if task, ok := m.selectedTask(); ok {
		data.TaskTitle = task.Title
	}
	return views.RenderFocusPanel(theme, data)
}

func (m Model) renderAnalytics(theme views.Theme) string {
	weekly := make([]views.WeeklyBarData, 0, len(m.cache.weekly))
	for _, w := range m.cache.weekly {
		weekly = append(weekly, views.WeeklyBarData{Day: w.Day, Count: w.Count})
	}
	done := 0
	for _, t := range m.cache.all {
		if t.Status == model.StatusDone {
			done++
		}
	}
	p := m.cache.profile
	return views.RenderAnalyticsPanel(theme, views.AnalyticsData{
		Weekly:         weekly,
		Level:          p.Level,
		CurrentXP:      p.CurrentXP,
		NextLevelXP:    p.NextLevelXP,
		Streak:         m.cache.streak,
		CompletedToday: m.cache.completedToday,
		TotalTasks:     len(m.cache.all),
		DoneTasks:      done,
	})
}

func (m Model) renderForm(theme views.Theme) string {
	f := m.form
	active := f.Active()
	field := func(ff FormField, view string) views.FormFieldData {
		return views.FormFieldData{Label: ff.String(), View: view, Active: active == ff}
	}
	return views.RenderFormModal(theme, views.FormData{
		Editing: f.Editing(),
		Fields: []views.FormFieldData{
			field(FieldTitle, f.TitleView()),
			field(FieldPriority, "< "+string(f.Priority())+" >"),
			field(FieldXP, f.XPView()),
			field(FieldDueDate, f.DueView()),
			field(FieldDescription, f.DescriptionView()),
		},
	})
}

func (m Model) renderInspector(theme views.Theme) string {
	task, ok := m.selectedTask()
	if !ok {
		return ""
	}
	vp := m.inspector
	vp.SetContent(views.RenderMarkdown(task.Description))
	return views.RenderInspector(theme, views.InspectorData{
		Task:            toItemData(task, m.now()),
		CreatedAt:       formatTimestamp(&task.CreatedAt),
		CompletedAt:     formatTimestamp(task.CompletedAt),
		DescriptionView: vp.View(),
	})
}
