package update

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const defaultFocusSeconds = 25 * 60

// FocusTimer is a countdown that advances in whole seconds of wall-clock time.
type FocusTimer struct {
	totalSec     int
	remainingSec int
	running      bool
	lastTick     time.Time
}

func NewFocusTimer(totalSec int) FocusTimer {
	if totalSec <= 0 {
		totalSec = defaultFocusSeconds
	}
	return FocusTimer{totalSec: totalSec, remainingSec: totalSec}
}

func (t FocusTimer) Total() int     { return t.totalSec }
func (t FocusTimer) Remaining() int { return t.remainingSec }
func (t FocusTimer) Running() bool  { return t.running }

// Toggle starts or pauses the countdown. Starting a finished session reloads
// the full duration.
func (t *FocusTimer) Toggle(now time.Time) {
	if t.running {
		t.running = false
		t.lastTick = time.Time{}
		return
	}
	if t.remainingSec <= 0 {
		t.remainingSec = t.totalSec
	}
	t.running = true
	t.lastTick = now
}

func (t *FocusTimer) Reset() {
	t.running = false
	t.remainingSec = t.totalSec
	t.lastTick = time.Time{}
}

// Tick subtracts the whole seconds elapsed since the last tick. Sub-second
// gaps change nothing. It reports true when this tick finished the session.
func (t *FocusTimer) Tick(now time.Time) bool {
	if !t.running {
		return false
	}
	if t.lastTick.IsZero() {
		t.lastTick = now
		return false
	}
	elapsed := int(now.Sub(t.lastTick) / time.Second)
	if elapsed < 1 {
		return false
	}
	if elapsed >= t.remainingSec {
		t.remainingSec = 0
		t.running = false
		t.lastTick = time.Time{}
		return true
	}
	t.remainingSec -= elapsed
	t.lastTick = now
	return false
}

// Progress is the elapsed share of the session in [0, 1].
func (t FocusTimer) Progress() float64 {
	if t.totalSec <= 0 {
		return 0
	}
	pct := float64(t.totalSec-t.remainingSec) / float64(t.totalSec)
	if pct < 0 {
		return 0
	}
	if pct > 1 {
		return 1
	}
	return pct
}

// TickMsg drives the focus timer at the poll interval.
type TickMsg struct {
	At time.Time
}

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(at time.Time) tea.Msg { return TickMsg{At: at} })
}
