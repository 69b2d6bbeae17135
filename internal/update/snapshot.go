package update

import (
	"slices"

	"github.com/sandeepkv93/zenith/internal/model"
)

// Snapshot is a read-only copy of everything a renderer may draw.
type Snapshot struct {
	View           View
	Mode           InputMode
	Tasks          []model.Task
	Dashboard      Cursor
	Columns        [kanbanColumns]Cursor
	FocusedColumn  int
	Form           FormSnapshot
	TimerRemaining int
	TimerTotal     int
	TimerRunning   bool
	Profile        model.UserProfile
	Weekly         []model.WeeklyStat
	Streak         int
	CompletedToday int
	Search         string
	HelpVisible    bool
	Inspecting     bool
	ConfirmingQuit bool
	Status         StatusBar
	Theme          string
}

type FormSnapshot struct {
	Title       string
	Description string
	Priority    model.Priority
	XP          string
	DueDate     string
	Active      FormField
	EditID      string
}

func (m Model) Snapshot() Snapshot {
	s := Snapshot{
		View:           m.view,
		Mode:           m.mode,
		Tasks:          slices.Clone(m.cache.visible),
		Dashboard:      m.nav.Cursor(ListDashboard),
		FocusedColumn:  m.nav.FocusedColumn(),
		TimerRemaining: m.timer.Remaining(),
		TimerTotal:     m.timer.Total(),
		TimerRunning:   m.timer.Running(),
		Profile:        m.cache.profile,
		Weekly:         slices.Clone(m.cache.weekly),
		Streak:         m.cache.streak,
		CompletedToday: m.cache.completedToday,
		Search:         m.search,
		HelpVisible:    m.helpVisible,
		Inspecting:     m.inspecting,
		ConfirmingQuit: m.confirmingQuit,
		Status:         m.status,
		Theme:          m.theme,
		Form: FormSnapshot{
			Title:       m.form.TitleValue(),
			Description: m.form.DescriptionValue(),
			Priority:    m.form.Priority(),
			XP:          m.form.XPValue(),
			DueDate:     m.form.DueValue(),
			Active:      m.form.Active(),
			EditID:      m.form.EditID(),
		},
	}
	for col := 0; col < kanbanColumns; col++ {
		s.Columns[col] = m.nav.Cursor(columnList(col))
	}
	return s
}
