package update

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(typed.Width, typed.Height)
		return m, nil
	case TickMsg:
		if m.timer.Tick(typed.At) {
			m.status = StatusBar{Text: "focus session complete"}
			m.logger.Info("focus session complete", zap.Int("duration_sec", m.timer.Total()))
		}
		return m, tickCmd(m.pollInterval)
	case tea.MouseMsg:
		return m.handleMouse(typed), nil
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m.quit()
	}
	if m.view == ViewSplash {
		if key.Matches(msg, m.keys.Quit) {
			return m.quit()
		}
		m.setView(ViewDashboard)
		return m, nil
	}
	if m.confirmingQuit {
		return m.handleQuitConfirmKey(msg)
	}
	switch m.mode {
	case ModeEditing:
		return m.handleEditingKey(msg)
	case ModeSearch:
		return m.handleSearchKey(msg), nil
	default:
		return m.handleNormalKey(msg)
	}
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.confirmingQuit = false
	m.logger.Info("quit requested", zap.String("view", string(m.view)))
	return m, tea.Quit
}

func (m Model) handleQuitConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		return m.quit()
	case key.Matches(msg, m.keys.Cancel):
		m.confirmingQuit = false
	}
	return m, nil
}

func (m Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.helpVisible = !m.helpVisible
	case key.Matches(msg, m.keys.Quit):
		if m.cfg.ConfirmQuit {
			m.confirmingQuit = true
			return m, nil
		}
		return m.quit()
	case key.Matches(msg, m.keys.CycleView):
		m.setView(m.view.Next())
	case key.Matches(msg, m.keys.New):
		m.startCreate()
	case key.Matches(msg, m.keys.Edit):
		m.startEdit()
	case key.Matches(msg, m.keys.Search):
		m.setMode(ModeSearch)
	case key.Matches(msg, m.keys.Theme):
		m.cycleTheme()
	case key.Matches(msg, m.keys.TimerToggle):
		m.timer.Toggle(m.now())
	case key.Matches(msg, m.keys.TimerReset):
		m.timer.Reset()
	case key.Matches(msg, m.keys.ToggleStatus):
		if m.view == ViewDashboard {
			m.toggleSelected()
		}
	case key.Matches(msg, m.keys.Delete):
		if m.view == ViewDashboard {
			m.deleteSelected()
		}
	case key.Matches(msg, m.keys.Inspect):
		if m.view == ViewDashboard && m.cache.length(ListDashboard) > 0 {
			m.inspecting = !m.inspecting
		}
	case key.Matches(msg, m.keys.Escape):
		m.handleEscape()
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Left):
		if m.view == ViewKanban {
			m.nav.ShiftColumn(-1)
		}
	case key.Matches(msg, m.keys.Right):
		if m.view == ViewKanban {
			m.nav.ShiftColumn(1)
		}
	default:
		for i, b := range m.keys.ViewKeys {
			if key.Matches(msg, b) {
				m.setView(cycleOrder[i])
				break
			}
		}
	}
	return m, nil
}

func (m *Model) handleEscape() {
	switch {
	case m.inspecting:
		m.inspecting = false
	case m.helpVisible:
		m.helpVisible = false
	case m.search != "":
		m.applySearch("")
	}
}

func (m *Model) moveCursor(delta int) {
	var list ListKey
	switch m.view {
	case ViewDashboard:
		list = ListDashboard
	case ViewKanban:
		list = m.nav.FocusedList()
	default:
		return
	}
	n := m.cache.length(list)
	if delta < 0 {
		m.nav.Retreat(list, n)
	} else {
		m.nav.Advance(list, n)
	}
}

func (m Model) handleEditingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.form.Reset()
		m.setMode(ModeNormal)
		m.status = StatusBar{Text: "edit cancelled"}
		return m, nil
	case key.Matches(msg, m.keys.NextField):
		m.form.NextField()
		return m, nil
	case key.Matches(msg, m.keys.PrevField):
		m.form.PrevField()
		return m, nil
	}
	active := m.form.Active()
	if active == FieldPriority {
		switch msg.Type {
		case tea.KeyLeft:
			m.form.DecrementPriority()
		case tea.KeyRight:
			m.form.IncrementPriority()
		}
	}
	if key.Matches(msg, m.keys.Save) && active != FieldDescription {
		m.saveForm()
		return m, nil
	}
	if active == FieldPriority {
		return m, nil
	}
	return m, m.form.Input(msg)
}

func (m Model) handleSearchKey(msg tea.KeyMsg) Model {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		m.setMode(ModeNormal)
	case tea.KeyBackspace:
		if m.search == "" {
			return m
		}
		r := []rune(m.search)
		m.applySearch(string(r[:len(r)-1]))
	case tea.KeySpace:
		m.applySearch(m.search + " ")
	case tea.KeyRunes:
		m.applySearch(m.search + string(msg.Runes))
	}
	return m
}

func (m Model) handleMouse(msg tea.MouseMsg) Model {
	if m.zones == nil || m.view == ViewSplash || m.mode != ModeNormal || m.confirmingQuit {
		return m
	}
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m
	}
	for _, v := range cycleOrder {
		if info := m.zones.Get(tabZoneID(v)); info != nil && info.InBounds(msg) {
			m.setView(v)
			break
		}
	}
	return m
}

func (m *Model) setView(v View) {
	if v == m.view {
		return
	}
	m.logger.Debug("view changed", zap.String("from", string(m.view)), zap.String("to", string(v)))
	m.view = v
	m.inspecting = false
}

func (m *Model) setMode(mode InputMode) {
	if mode == m.mode {
		return
	}
	m.logger.Debug("mode changed", zap.String("from", string(m.mode)), zap.String("to", string(mode)))
	m.mode = mode
}
