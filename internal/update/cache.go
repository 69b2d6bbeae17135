package update

import (
	"github.com/sandeepkv93/zenith/internal/model"
)

// taskCache mirrors the store after the latest refresh. It is replaced
// wholesale, never patched.
type taskCache struct {
	all            []model.Task
	visible        []model.Task
	profile        model.UserProfile
	weekly         []model.WeeklyStat
	streak         int
	completedToday int
}

func newTaskCache(all []model.Task, query string) taskCache {
	return taskCache{all: all, visible: filterTasks(all, query)}
}

// filterTasks keeps store order and drops tasks not matching query.
func filterTasks(tasks []model.Task, query string) []model.Task {
	if query == "" {
		return tasks
	}
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Matches(query) {
			out = append(out, t)
		}
	}
	return out
}

func (c taskCache) column(status model.Status) []model.Task {
	out := make([]model.Task, 0)
	for _, t := range c.visible {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out
}

// list returns the tasks a cursor ranges over.
func (c taskCache) list(key ListKey) []model.Task {
	if key == ListDashboard {
		return c.visible
	}
	if st, ok := key.status(); ok {
		return c.column(st)
	}
	return nil
}

func (c taskCache) length(key ListKey) int {
	return len(c.list(key))
}

func (c taskCache) at(key ListKey, cur Cursor) (model.Task, bool) {
	i, ok := cur.Index()
	if !ok {
		return model.Task{}, false
	}
	items := c.list(key)
	if i < 0 || i >= len(items) {
		return model.Task{}, false
	}
	return items[i], true
}
