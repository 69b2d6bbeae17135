package update

import (
	"testing"

	"github.com/sandeepkv93/zenith/internal/model"
)

func TestTaskCacheFilterAndColumns(t *testing.T) {
	all := []model.Task{
		{ID: "1", Title: "Buy milk", Status: model.StatusTodo},
		{ID: "2", Title: "Walk dog", Description: "around the MILL pond", Status: model.StatusDoing},
		{ID: "3", Title: "File taxes", Status: model.StatusDone},
	}
	c := newTaskCache(all, "mil")
	if len(c.all) != 3 || c.length(ListDashboard) != 2 {
		t.Fatalf("expected 2 of 3 visible, got %d", c.length(ListDashboard))
	}
	if c.visible[0].ID != "1" || c.visible[1].ID != "2" {
		t.Fatal("filter must keep store order")
	}
	if c.length(ListTodo) != 1 || c.length(ListDoing) != 1 || c.length(ListDone) != 0 {
		t.Fatalf("unexpected column sizes: %d %d %d", c.length(ListTodo), c.length(ListDoing), c.length(ListDone))
	}

	var cur Cursor
	if _, ok := c.at(ListDashboard, cur); ok {
		t.Fatal("unset cursor must not resolve a task")
	}
	cur.Advance(2)
	cur.Advance(2)
	task, ok := c.at(ListDashboard, cur)
	if !ok || task.ID != "2" {
		t.Fatalf("expected task 2, got %+v", task)
	}
	if _, ok := c.at(ListDone, cur); ok {
		t.Fatal("out of range cursor must not resolve")
	}

	if got := newTaskCache(all, "").length(ListDashboard); got != 3 {
		t.Fatalf("empty query must keep everything, got %d", got)
	}
}
