package update

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/zenith/internal/model"
)

type FormField int

const (
	FieldTitle FormField = iota
	FieldPriority
	FieldXP
	FieldDueDate
	FieldDescription
	formFieldCount
)

func (f FormField) String() string {
	switch f {
	case FieldTitle:
		return "Title"
	case FieldPriority:
		return "Priority"
	case FieldXP:
		return "XP"
	case FieldDueDate:
		return "Due Date"
	case FieldDescription:
		return "Description"
	default:
		return "?"
	}
}

func (f FormField) next() FormField { return (f + 1) % formFieldCount }
func (f FormField) prev() FormField { return (f + formFieldCount - 1) % formFieldCount }

const defaultXPText = "10"

// FormState stages a create or edit until it is saved.
type FormState struct {
	title       textinput.Model
	xp          textinput.Model
	due         textinput.Model
	description textarea.Model
	priority    model.Priority
	active      FormField
	editID      string
}

// formValues are the parsed contents of a form ready for the store.
type formValues struct {
	Title       string
	Description string
	Priority    model.Priority
	XPReward    int
	DueDate     *time.Time
}

func newFormState() FormState {
	title := textinput.New()
	title.Placeholder = "Task title..."
	title.CharLimit = 256
	title.Width = 48

	xp := textinput.New()
	xp.Placeholder = defaultXPText
	xp.CharLimit = 9
	xp.Width = 10

	due := textinput.New()
	due.Placeholder = "YYYY-MM-DD"
	due.CharLimit = 10
	due.Width = 12

	desc := textarea.New()
	desc.Placeholder = "Detailed description (markdown)..."
	desc.ShowLineNumbers = false
	desc.SetWidth(48)
	desc.SetHeight(5)

	f := FormState{title: title, xp: xp, due: due, description: desc}
	f.Reset()
	return f
}

// Reset clears every buffer to its default and forgets the edit target.
func (f *FormState) Reset() {
	f.title.SetValue("")
	f.xp.SetValue(defaultXPText)
	f.due.SetValue("")
	f.description.SetValue("")
	f.priority = model.PriorityMedium
	f.editID = ""
	f.cursorsToEnd()
	f.focus(FieldTitle)
}

// Load pre-populates the form from task and makes it the edit target.
func (f *FormState) Load(task model.Task) {
	f.Reset()
	f.title.SetValue(task.Title)
	f.description.SetValue(task.Description)
	f.priority = task.Priority
	if !f.priority.IsValid() {
		f.priority = model.PriorityMedium
	}
	f.xp.SetValue(strconv.Itoa(task.XPReward))
	f.due.SetValue(model.FormatDueDate(task.DueDate))
	f.editID = task.ID
	f.cursorsToEnd()
}

func (f *FormState) cursorsToEnd() {
	f.title.CursorEnd()
	f.xp.CursorEnd()
	f.due.CursorEnd()
}

func (f FormState) Active() FormField        { return f.active }
func (f FormState) Priority() model.Priority { return f.priority }
func (f FormState) EditID() string           { return f.editID }
func (f FormState) Editing() bool            { return f.editID != "" }

func (f *FormState) NextField() { f.focus(f.active.next()) }
func (f *FormState) PrevField() { f.focus(f.active.prev()) }

func (f *FormState) IncrementPriority() { f.priority = f.priority.Increment() }
func (f *FormState) DecrementPriority() { f.priority = f.priority.Decrement() }

func (f *FormState) focus(field FormField) {
	f.active = field
	f.title.Blur()
	f.xp.Blur()
	f.due.Blur()
	f.description.Blur()
	switch field {
	case FieldTitle:
		f.title.Focus()
	case FieldXP:
		f.xp.Focus()
	case FieldDueDate:
		f.due.Focus()
	case FieldDescription:
		f.description.Focus()
	}
}

// Input routes a key to the active buffer. The XP buffer only takes digits
// plus editing keys; anything else is dropped.
func (f *FormState) Input(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch f.active {
	case FieldTitle:
		f.title, cmd = f.title.Update(msg)
	case FieldXP:
		if !acceptsXPKey(msg) {
			return nil
		}
		f.xp, cmd = f.xp.Update(msg)
	case FieldDueDate:
		f.due, cmd = f.due.Update(msg)
	case FieldDescription:
		f.description, cmd = f.description.Update(msg)
	}
	return cmd
}

func acceptsXPKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyRunes:
		return len(msg.Runes) > 0 && allDigits(msg.Runes)
	case tea.KeyBackspace, tea.KeyDelete:
		return true
	default:
		return false
	}
}

func allDigits(rs []rune) bool {
	for _, r := range rs {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

var newlineCollapser = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// Values parses the buffers. ok is false when the trimmed title is empty,
// in which case nothing should be saved.
func (f FormState) Values() (formValues, bool) {
	title := strings.TrimSpace(newlineCollapser.Replace(f.title.Value()))
	if title == "" {
		return formValues{}, false
	}
	return formValues{
		Title:       title,
		Description: f.description.Value(),
		Priority:    f.priority,
		XPReward:    model.ParseXPReward(f.xp.Value()),
		DueDate:     model.ParseDueDate(f.due.Value()),
	}, true
}

// Field views for the renderer.
func (f FormState) TitleView() string       { return f.title.View() }
func (f FormState) XPView() string          { return f.xp.View() }
func (f FormState) DueView() string         { return f.due.View() }
func (f FormState) DescriptionView() string { return f.description.View() }

func (f FormState) TitleValue() string       { return f.title.Value() }
func (f FormState) XPValue() string          { return f.xp.Value() }
func (f FormState) DueValue() string         { return f.due.Value() }
func (f FormState) DescriptionValue() string { return f.description.Value() }
