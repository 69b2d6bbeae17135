package update

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/zenith/internal/config"
)

// keyMap holds every binding the router matches against. The configurable
// ones come from the [keys] table of the config file.
type keyMap struct {
	ForceQuit    key.Binding
	Quit         key.Binding
	Help         key.Binding
	CycleView    key.Binding
	ViewKeys     [4]key.Binding
	New          key.Binding
	Edit         key.Binding
	Up           key.Binding
	Down         key.Binding
	Left         key.Binding
	Right        key.Binding
	TimerToggle  key.Binding
	TimerReset   key.Binding
	ToggleStatus key.Binding
	Delete       key.Binding
	Search       key.Binding
	Inspect      key.Binding
	Escape       key.Binding
	Theme        key.Binding

	Confirm   key.Binding
	Cancel    key.Binding
	NextField key.Binding
	PrevField key.Binding
	Save      key.Binding
	Backspace key.Binding
}

func newKeyMap(km config.Keymap) keyMap {
	bind := func(raw, help string) key.Binding {
		keys := config.SplitKeys(raw)
		label := raw
		if len(keys) > 0 {
			label = keyLabel(keys[0])
		}
		return key.NewBinding(key.WithKeys(keys...), key.WithHelp(label, help))
	}
	return keyMap{
		ForceQuit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "force quit")),
		Quit:         bind(km.Quit, "quit"),
		Help:         bind(km.Help, "toggle help"),
		CycleView:    bind(km.CycleView, "next view"),
		ViewKeys:     viewKeyBindings(),
		New:          bind(km.New, "new task"),
		Edit:         bind(km.Edit, "edit task"),
		Up:           key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "move up")),
		Down:         key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "move down")),
		Left:         key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "prev column")),
		Right:        key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "next column")),
		TimerToggle:  bind(km.TimerToggle, "start/pause timer"),
		TimerReset:   bind(km.TimerReset, "reset timer"),
		ToggleStatus: bind(km.ToggleStatus, "cycle status"),
		Delete:       bind(km.Delete, "delete task"),
		Search:       bind(km.Search, "search"),
		Inspect:      bind(km.Inspect, "inspect task"),
		Escape:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close / clear search")),
		Theme:        bind(km.Theme, "cycle theme"),

		Confirm:   key.NewBinding(key.WithKeys("y", "Y", "enter"), key.WithHelp("y", "confirm")),
		Cancel:    key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "cancel")),
		NextField: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Save:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("backspace", "delete char")),
	}
}

func viewKeyBindings() [4]key.Binding {
	var out [4]key.Binding
	for i, v := range cycleOrder {
		k := string(rune('1' + i))
		out[i] = key.NewBinding(key.WithKeys(k), key.WithHelp(k, string(v)))
	}
	return out
}

func keyLabel(k string) string {
	if k == " " {
		return "space"
	}
	return k
}
