package update

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/zenith/internal/views"
)

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpView() string {
	var plain []string
	for _, b := range m.viewBindings() {
		plain = append(plain, "- "+b.Help().Key+": "+b.Help().Desc)
	}
	return views.RenderHelpPanel(views.ThemeByName(m.theme), views.HelpPanelData{
		CurrentView: string(m.view),
		Bindings:    plain,
		HelpView:    m.helpModel.FullHelpView(m.helpKeys().FullHelp()),
	})
}

func (m Model) renderFooter() string {
	return m.helpModel.ShortHelpView(m.helpKeys().ShortHelp())
}

func (m Model) helpKeys() helpKeyMap {
	global := m.globalBindings()
	return helpKeyMap{
		short: []key.Binding{m.keys.Help, m.keys.CycleView, m.keys.New, m.keys.Search, m.keys.Quit},
		full:  [][]key.Binding{global[:len(global)/2], global[len(global)/2:]},
	}
}

func (m Model) globalBindings() []key.Binding {
	out := []key.Binding{
		m.keys.CycleView,
		m.keys.New,
		m.keys.Search,
		m.keys.TimerToggle,
		m.keys.TimerReset,
		m.keys.Theme,
		m.keys.Help,
		m.keys.Quit,
	}
	return append(out, m.keys.ViewKeys[:]...)
}

func (m Model) viewBindings() []key.Binding {
	switch m.view {
	case ViewDashboard:
		return []key.Binding{m.keys.Down, m.keys.Up, m.keys.Edit, m.keys.ToggleStatus, m.keys.Delete, m.keys.Inspect, m.keys.Escape}
	case ViewKanban:
		return []key.Binding{m.keys.Down, m.keys.Up, m.keys.Left, m.keys.Right}
	case ViewFocus:
		return []key.Binding{m.keys.TimerToggle, m.keys.TimerReset}
	default:
		return []key.Binding{m.keys.CycleView}
	}
}
