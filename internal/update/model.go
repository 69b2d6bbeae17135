package update

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/sandeepkv93/zenith/internal/config"
	"github.com/sandeepkv93/zenith/internal/storage"
	"go.uber.org/zap"
)

type View string

const (
	ViewSplash    View = "Splash"
	ViewDashboard View = "Dashboard"
	ViewKanban    View = "Kanban"
	ViewFocus     View = "Focus"
	ViewAnalytics View = "Analytics"
)

var cycleOrder = [...]View{ViewDashboard, ViewKanban, ViewFocus, ViewAnalytics}

// Next is the following view in the tab cycle. Splash is never re-entered.
func (v View) Next() View {
	for i, c := range cycleOrder {
		if c == v {
			return cycleOrder[(i+1)%len(cycleOrder)]
		}
	}
	return ViewDashboard
}

type InputMode string

const (
	ModeNormal  InputMode = "Normal"
	ModeEditing InputMode = "Editing"
	ModeSearch  InputMode = "Search"
)

type StatusBar struct {
	Text    string
	IsError bool
}

// Options carries the optional collaborators of a Model.
type Options struct {
	Logger  *zap.Logger
	Now     func() time.Time
	Zones   *zone.Manager
	Context context.Context
}

// Model is the whole session: view, mode, overlays, cached store contents
// and the sub-states for navigation, the form and the focus timer.
type Model struct {
	view           View
	mode           InputMode
	helpVisible    bool
	inspecting     bool
	confirmingQuit bool
	quitting       bool
	status         StatusBar
	theme          string
	search         string

	cache taskCache
	nav   Navigation
	form  FormState
	timer FocusTimer

	store        storage.Store
	logger       *zap.Logger
	keys         keyMap
	cfg          config.Config
	ctx          context.Context
	now          func() time.Time
	zones        *zone.Manager
	pollInterval time.Duration

	helpModel     help.Model
	taskTable     table.Model
	focusProgress progress.Model
	xpProgress    progress.Model
	inspector     viewport.Model
	width         int
	height        int
}

const (
	defaultWidth  = 100
	defaultHeight = 30
)

// NewModel builds the session and performs the first refresh. A store that
// cannot be read at this point is a startup failure.
func NewModel(store storage.Store, cfg config.Config, opts Options) (Model, error) {
	if store == nil {
		return Model{}, errors.New("update: nil store")
	}
	m := Model{
		view:         ViewDashboard,
		mode:         ModeNormal,
		store:        store,
		logger:       opts.Logger,
		keys:         newKeyMap(cfg.Keys),
		cfg:          cfg,
		ctx:          opts.Context,
		now:          opts.Now,
		zones:        opts.Zones,
		pollInterval: time.Duration(cfg.PollIntervalMS) * time.Millisecond,
		form:         newFormState(),
		timer:        NewFocusTimer(cfg.FocusMinutes * 60),
		width:        defaultWidth,
		height:       defaultHeight,
	}
	if cfg.ShowSplash {
		m.view = ViewSplash
	}
	if m.logger == nil {
		m.logger = zap.NewNop()
	}
	if m.ctx == nil {
		m.ctx = context.Background()
	}
	if m.now == nil {
		m.now = time.Now
	}
	if m.pollInterval <= 0 {
		m.pollInterval = 250 * time.Millisecond
	}
	m.initBubbleComponents()
	m.loadTheme()
	if err := m.refresh(); err != nil {
		return Model{}, fmt.Errorf("initial refresh: %w", err)
	}
	return m, nil
}

func (m *Model) initBubbleComponents() {
	m.helpModel = help.New()
	m.taskTable = table.New(
		table.WithColumns(taskColumns(m.width)),
		table.WithFocused(true),
		table.WithHeight(m.height-10),
	)
	m.focusProgress = progress.New(progress.WithDefaultGradient(), progress.WithWidth(40))
	m.xpProgress = progress.New(progress.WithGradient("#7aa2f7", "#bb9af7"), progress.WithWidth(20), progress.WithoutPercentage())
	m.inspector = viewport.New(60, 10)
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.helpModel.Width = width
	m.taskTable.SetColumns(taskColumns(width))
	m.taskTable.SetWidth(width - 4)
	m.taskTable.SetHeight(max(5, height-10))
	m.focusProgress.Width = max(20, min(60, width-20))
	m.inspector.Width = max(30, min(80, width-10))
	m.inspector.Height = max(5, height/2)
}

func (m Model) Init() tea.Cmd {
	return tickCmd(m.pollInterval)
}

func (m Model) CurrentView() View      { return m.view }
func (m Model) Mode() InputMode        { return m.mode }
func (m Model) Status() StatusBar      { return m.status }
func (m Model) Search() string         { return m.search }
func (m Model) Theme() string          { return m.theme }
func (m Model) HelpVisible() bool      { return m.helpVisible }
func (m Model) Inspecting() bool       { return m.inspecting }
func (m Model) ConfirmingQuit() bool   { return m.confirmingQuit }
func (m Model) Quitting() bool         { return m.quitting }
func (m Model) Timer() FocusTimer      { return m.timer }
func (m Model) Form() FormState        { return m.form }
func (m Model) Navigation() Navigation { return m.nav }
