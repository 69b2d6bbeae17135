package update

import (
	"context"
	"slices"
	"sort"
	"time"

	"github.com/sandeepkv93/zenith/internal/model"
	"github.com/sandeepkv93/zenith/internal/storage"
)

// memStore is an in-memory Store. Setting fail[op] makes that call return
// the given error.
type memStore struct {
	tasks      []model.Task
	profile    model.UserProfile
	settings   map[string]string
	fail       map[string]error
	awardCalls int
	now        time.Time
}

func newMemStore() *memStore {
	return &memStore{
		profile:  model.DefaultProfile(),
		settings: make(map[string]string),
		fail:     make(map[string]error),
		now:      time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC),
	}
}

func (s *memStore) err(op string) error {
	return s.fail[op]
}

func (s *memStore) index(id string) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (s *memStore) CreateTask(_ context.Context, in model.Task) error {
	if err := s.err("CreateTask"); err != nil {
		return err
	}
	if err := in.Validate(); err != nil {
		return err
	}
	s.tasks = append(s.tasks, in)
	return nil
}

func (s *memStore) ListTasks(context.Context) ([]model.Task, error) {
	if err := s.err("ListTasks"); err != nil {
		return nil, err
	}
	out := slices.Clone(s.tasks)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *memStore) UpdateTaskStatus(_ context.Context, id string, status model.Status) error {
	if err := s.err("UpdateTaskStatus"); err != nil {
		return err
	}
	i := s.index(id)
	if i < 0 {
		return storage.ErrNotFound
	}
	s.tasks[i].Status = status
	s.tasks[i].CompletedAt = nil
	if status == model.StatusDone {
		done := s.now
		s.tasks[i].CompletedAt = &done
	}
	return nil
}

func (s *memStore) UpdateTaskContent(_ context.Context, id, title, description string, priority model.Priority, due *time.Time) error {
	if err := s.err("UpdateTaskContent"); err != nil {
		return err
	}
	i := s.index(id)
	if i < 0 {
		return storage.ErrNotFound
	}
	s.tasks[i].Title = title
	s.tasks[i].Description = description
	s.tasks[i].Priority = priority
	s.tasks[i].DueDate = due
	return nil
}

func (s *memStore) DeleteTask(_ context.Context, id string) error {
	if err := s.err("DeleteTask"); err != nil {
		return err
	}
	i := s.index(id)
	if i < 0 {
		return storage.ErrNotFound
	}
	s.tasks = slices.Delete(s.tasks, i, i+1)
	return nil
}

func (s *memStore) GetProfile(context.Context) (model.UserProfile, error) {
	if err := s.err("GetProfile"); err != nil {
		return model.UserProfile{}, err
	}
	return s.profile, nil
}

func (s *memStore) AwardXP(_ context.Context, amount int) error {
	if err := s.err("AwardXP"); err != nil {
		return err
	}
	s.awardCalls++
	s.profile = s.profile.AwardXP(amount)
	return nil
}

func (s *memStore) WeeklyCompletionStats(context.Context) ([]model.WeeklyStat, error) {
	if err := s.err("WeeklyCompletionStats"); err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	for _, t := range s.tasks {
		if t.Status == model.StatusDone && t.CompletedAt != nil {
			counts[t.CompletedAt.UTC().Format(model.DueDateLayout)]++
		}
	}
	out := make([]model.WeeklyStat, 0, len(counts))
	for day, n := range counts {
		out = append(out, model.WeeklyStat{Day: day, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day > out[j].Day })
	if len(out) > 7 {
		out = out[:7]
	}
	return out, nil
}

func (s *memStore) CompletionStreak(context.Context, time.Time) (int, error) {
	if err := s.err("CompletionStreak"); err != nil {
		return 0, err
	}
	for _, t := range s.tasks {
		if t.Status == model.StatusDone {
			return 1, nil
		}
	}
	return 0, nil
}

func (s *memStore) CompletedOn(_ context.Context, day time.Time) (int, error) {
	if err := s.err("CompletedOn"); err != nil {
		return 0, err
	}
	n := 0
	for _, t := range s.tasks {
		if t.CompletedAt != nil && t.CompletedAt.UTC().Format(model.DueDateLayout) == day.UTC().Format(model.DueDateLayout) {
			n++
		}
	}
	return n, nil
}

func (s *memStore) GetSetting(_ context.Context, key string) (string, bool, error) {
	if err := s.err("GetSetting"); err != nil {
		return "", false, err
	}
	v, ok := s.settings[key]
	return v, ok, nil
}

func (s *memStore) SetSetting(_ context.Context, key, value string) error {
	if err := s.err("SetSetting"); err != nil {
		return err
	}
	s.settings[key] = value
	return nil
}

func (s *memStore) task(t interface{ Fatalf(string, ...any) }, title string) model.Task {
	for _, task := range s.tasks {
		if task.Title == title {
			return task
		}
	}
	t.Fatalf("task %q not in store", title)
	return model.Task{}
}
