package storage

import (
	"context"
	"errors"
	"time"

	"github.com/sandeepkv93/zenith/internal/model"
)

var ErrNotFound = errors.New("storage: not found")

// Store is the persistence surface the application state machine consumes.
// Every call is a short synchronous round trip.
type Store interface {
	CreateTask(ctx context.Context, in model.Task) error
	// ListTasks returns every task, newest created first.
	ListTasks(ctx context.Context) ([]model.Task, error)
	// UpdateTaskStatus also sets completed_at when moving into DONE and
	// clears it otherwise.
	UpdateTaskStatus(ctx context.Context, id string, status model.Status) error
	UpdateTaskContent(ctx context.Context, id, title, description string, priority model.Priority, due *time.Time) error
	DeleteTask(ctx context.Context, id string) error

	GetProfile(ctx context.Context) (model.UserProfile, error)
	AwardXP(ctx context.Context, amount int) error

	// WeeklyCompletionStats returns at most seven days with completions,
	// most recent first.
	WeeklyCompletionStats(ctx context.Context) ([]model.WeeklyStat, error)
}

// StatsStore is implemented by stores that can derive streak figures.
type StatsStore interface {
	CompletionStreak(ctx context.Context, now time.Time) (int, error)
	CompletedOn(ctx context.Context, day time.Time) (int, error)
}

// SettingsStore persists small key/value preferences such as the theme.
type SettingsStore interface {
	GetSetting(ctx context.Context, key string) (string, bool, error)
	SetSetting(ctx context.Context, key, value string) error
}

const SettingTheme = "theme"
