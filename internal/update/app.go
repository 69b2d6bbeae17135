package update

import (
	"fmt"

	"github.com/sandeepkv93/zenith/internal/model"
	"github.com/sandeepkv93/zenith/internal/storage"
	"go.uber.org/zap"
)

// refresh reloads everything the views show from the store. The cache is
// only replaced once every read succeeded.
func (m *Model) refresh() error {
	tasks, err := m.store.ListTasks(m.ctx)
	if err != nil {
		return fmt.Errorf("list tasks: %w", err)
	}
	profile, err := m.store.GetProfile(m.ctx)
	if err != nil {
		return fmt.Errorf("get profile: %w", err)
	}
	weekly, err := m.store.WeeklyCompletionStats(m.ctx)
	if err != nil {
		return fmt.Errorf("weekly stats: %w", err)
	}
	next := newTaskCache(tasks, m.search)
	next.profile = profile
	next.weekly = weekly
	if stats, ok := m.store.(storage.StatsStore); ok {
		now := m.now()
		if next.streak, err = stats.CompletionStreak(m.ctx, now); err != nil {
			return fmt.Errorf("completion streak: %w", err)
		}
		if next.completedToday, err = stats.CompletedOn(m.ctx, now); err != nil {
			return fmt.Errorf("completed today: %w", err)
		}
	}
	m.cache = next
	m.nav.ClampAll(m.cache.length)
	if m.cache.length(ListDashboard) == 0 {
		m.inspecting = false
	}
	return nil
}

// refreshAfter runs the refresh that follows a successful mutation. The
// mutation already happened, so a failure here is only reported.
func (m *Model) refreshAfter(op string) {
	if err := m.refresh(); err != nil {
		m.reportError(op+": refresh", "", err)
	}
}

func (m *Model) reportError(op, taskID string, err error) {
	m.status = StatusBar{Text: fmt.Sprintf("%s failed: %v", op, err), IsError: true}
	m.logger.Error("store call failed",
		zap.String("op", op),
		zap.String("task_id", taskID),
		zap.Error(err),
	)
}

func (m Model) selectedTask() (model.Task, bool) {
	return m.cache.at(ListDashboard, m.nav.Cursor(ListDashboard))
}

func (m *Model) applySearch(query string) {
	prev := m.search
	m.search = query
	if err := m.refresh(); err != nil {
		m.search = prev
		m.reportError("search", "", err)
	}
}

func (m *Model) startCreate() {
	m.form.Reset()
	m.inspecting = false
	m.helpVisible = false
	m.setMode(ModeEditing)
}

func (m *Model) startEdit() {
	if m.view != ViewDashboard {
		return
	}
	task, ok := m.selectedTask()
	if !ok {
		return
	}
	m.form.Load(task)
	m.inspecting = false
	m.helpVisible = false
	m.setMode(ModeEditing)
}

// saveForm persists the staged form. An empty title leaves the form open and
// does nothing. A failed store call keeps the form so the input is not lost.
func (m *Model) saveForm() {
	vals, ok := m.form.Values()
	if !ok {
		return
	}
	if id := m.form.EditID(); id != "" {
		if err := m.store.UpdateTaskContent(m.ctx, id, vals.Title, vals.Description, vals.Priority, vals.DueDate); err != nil {
			m.reportError("update task", id, err)
			return
		}
		m.status = StatusBar{Text: fmt.Sprintf("updated %q", vals.Title)}
	} else {
		task := model.NewTask(vals.Title, vals.Description, vals.Priority, vals.XPReward, vals.DueDate, m.now())
		if err := m.store.CreateTask(m.ctx, task); err != nil {
			m.reportError("create task", task.ID, err)
			return
		}
		m.status = StatusBar{Text: fmt.Sprintf("created %q (+%d xp on done)", task.Title, task.XPReward)}
	}
	m.form.Reset()
	m.setMode(ModeNormal)
	m.refreshAfter("save")
}

// toggleSelected advances the selected task's status. Entering DONE from
// another status awards the task's XP; if the award fails the status change
// is rolled back.
func (m *Model) toggleSelected() {
	task, ok := m.selectedTask()
	if !ok {
		return
	}
	next := task.Status.Next()
	if err := m.store.UpdateTaskStatus(m.ctx, task.ID, next); err != nil {
		m.reportError("update status", task.ID, err)
		return
	}
	awarded := next == model.StatusDone && task.Status != model.StatusDone
	if awarded {
		if err := m.store.AwardXP(m.ctx, task.XPReward); err != nil {
			if rerr := m.store.UpdateTaskStatus(m.ctx, task.ID, task.Status); rerr != nil {
				m.logger.Warn("status rollback failed", zap.String("task_id", task.ID), zap.Error(rerr))
				m.refreshAfter("award xp")
			}
			m.reportError("award xp", task.ID, err)
			return
		}
	}
	level := m.cache.profile.Level
	m.status = StatusBar{Text: fmt.Sprintf("%q is now %s", task.Title, next.Label())}
	if awarded {
		m.status.Text += fmt.Sprintf(" (+%d xp)", task.XPReward)
	}
	m.refreshAfter("toggle status")
	if !m.status.IsError && m.cache.profile.Level > level {
		m.status = StatusBar{Text: fmt.Sprintf("level up! you reached level %d", m.cache.profile.Level)}
		m.logger.Info("level up", zap.Int("level", m.cache.profile.Level))
	}
}

func (m *Model) deleteSelected() {
	task, ok := m.selectedTask()
	if !ok {
		return
	}
	if err := m.store.DeleteTask(m.ctx, task.ID); err != nil {
		m.reportError("delete task", task.ID, err)
		return
	}
	m.status = StatusBar{Text: fmt.Sprintf("deleted %q", task.Title)}
	m.refreshAfter("delete")
}
