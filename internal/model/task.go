package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus   = errors.New("model: invalid task status")
	ErrInvalidPriority = errors.New("model: invalid task priority")
)

// DefaultXPReward is granted when the reward text is empty or unusable.
const DefaultXPReward = 10

// DueDateLayout is the only accepted shape for typed due dates.
const DueDateLayout = "2006-01-02"

type Status string

const (
	StatusTodo  Status = "TODO"
	StatusDoing Status = "DOING"
	StatusDone  Status = "DONE"
)

// Statuses lists the workflow in kanban column order.
var Statuses = []Status{StatusTodo, StatusDoing, StatusDone}

func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusDoing, StatusDone:
		return true
	default:
		return false
	}
}

// Next walks the workflow Todo -> Doing -> Done -> Todo.
func (s Status) Next() Status {
	switch s {
	case StatusTodo:
		return StatusDoing
	case StatusDoing:
		return StatusDone
	default:
		return StatusTodo
	}
}

func (s Status) Label() string {
	switch s {
	case StatusDoing:
		return "In Progress"
	case StatusDone:
		return "Completed"
	default:
		return "Todo"
	}
}

// Column returns the kanban column index of the status.
func (s Status) Column() int {
	for i, st := range Statuses {
		if st == s {
			return i
		}
	}
	return 0
}

// StatusForColumn maps a kanban column index back to its status. Out of range
// indexes fall back to Todo.
func StatusForColumn(col int) Status {
	if col < 0 || col >= len(Statuses) {
		return StatusTodo
	}
	return Statuses[col]
}

func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToUpper(strings.TrimSpace(raw)))
	if !s.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
	return s, nil
}

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// Decrement rotates High -> Medium -> Low -> High.
func (p Priority) Decrement() Priority {
	switch p {
	case PriorityHigh:
		return PriorityMedium
	case PriorityMedium:
		return PriorityLow
	default:
		return PriorityHigh
	}
}

// Increment rotates High -> Low -> Medium -> High.
func (p Priority) Increment() Priority {
	switch p {
	case PriorityHigh:
		return PriorityLow
	case PriorityLow:
		return PriorityMedium
	default:
		return PriorityHigh
	}
}

func ParsePriority(raw string) (Priority, error) {
	p := Priority(strings.ToUpper(strings.TrimSpace(raw)))
	if !p.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPriority, raw)
	}
	return p, nil
}

type Task struct {
	ID          string
	Title       string
	Description string
	Status      Status
	Priority    Priority
	XPReward    int
	DueDate     *time.Time
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// NewTask builds a Todo task with a fresh id.
func NewTask(title, description string, priority Priority, xp int, due *time.Time, now time.Time) Task {
	if !priority.IsValid() {
		priority = PriorityMedium
	}
	if xp <= 0 {
		xp = DefaultXPReward
	}
	return Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Status:      StatusTodo,
		Priority:    priority,
		XPReward:    xp,
		DueDate:     due,
		CreatedAt:   now.UTC(),
	}
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("model: task title is required")
	}
	if !t.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, t.Status)
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, t.Priority)
	}
	if t.XPReward <= 0 {
		return errors.New("model: xp reward must be positive")
	}
	if t.CreatedAt.IsZero() {
		return errors.New("model: task created_at is required")
	}
	if t.Status == StatusDone && t.CompletedAt == nil {
		return errors.New("model: completed_at is required when task status is DONE")
	}
	if t.Status != StatusDone && t.CompletedAt != nil {
		return errors.New("model: completed_at must be nil when task status is not DONE")
	}
	return nil
}

// Overdue reports whether an unfinished task is past its due date.
func (t Task) Overdue(now time.Time) bool {
	if t.DueDate == nil || t.Status == StatusDone {
		return false
	}
	return now.After(*t.DueDate)
}

// Matches is a case-insensitive substring test over title and description.
func (t Task) Matches(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(t.Title), q) ||
		strings.Contains(strings.ToLower(t.Description), q)
}

// ParseXPReward parses reward text, falling back to DefaultXPReward.
func ParseXPReward(raw string) int {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 32)
	if err != nil || v <= 0 {
		return DefaultXPReward
	}
	return int(v)
}

// ParseDueDate reads YYYY-MM-DD as the last second of that day in UTC.
// Anything else yields nil.
func ParseDueDate(raw string) *time.Time {
	d, err := time.Parse(DueDateLayout, strings.TrimSpace(raw))
	if err != nil {
		return nil
	}
	due := time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 0, time.UTC)
	return &due
}

// FormatDueDate renders a due date for editing, or "" when unset.
func FormatDueDate(due *time.Time) string {
	if due == nil {
		return ""
	}
	return due.UTC().Format(DueDateLayout)
}
