package update

import (
	"fmt"
	"strings"
	"time"

	"github.com/sandeepkv93/zenith/internal/model"
	"github.com/sandeepkv93/zenith/internal/views"
)

func formatDuration(totalSec int) string {
	if totalSec < 0 {
		totalSec = 0
	}
	min := totalSec / 60
	sec := totalSec % 60
	return fmt.Sprintf("%02d:%02d", min, sec)
}

func formatTimestamp(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Local().Format("2006-01-02 15:04")
}

func toItemData(t model.Task, now time.Time) views.TaskItemData {
	return views.TaskItemData{
		ID:       t.ID,
		Title:    t.Title,
		Status:   string(t.Status),
		Priority: string(t.Priority),
		XP:       t.XPReward,
		Due:      model.FormatDueDate(t.DueDate),
		Overdue:  t.Overdue(now),
	}
}

func toItemsData(tasks []model.Task, now time.Time) []views.TaskItemData {
	out := make([]views.TaskItemData, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toItemData(t, now))
	}
	return out
}

func tabZoneID(v View) string {
	return "tab-" + strings.ToLower(string(v))
}

func cursorIndex(c Cursor) int {
	if i, ok := c.Index(); ok {
		return i
	}
	return -1
}
