package update

import (
	"testing"
	"time"
)

func TestFocusTimerDefaults(t *testing.T) {
	timer := NewFocusTimer(0)
	if timer.Total() != 1500 || timer.Remaining() != 1500 || timer.Running() {
		t.Fatalf("unexpected default timer: %+v", timer)
	}
}

func TestFocusTimerSubSecondTicksAreCoalesced(t *testing.T) {
	start := time.Date(2026, 2, 9, 9, 0, 0, 0, time.UTC)
	timer := NewFocusTimer(60)
	timer.Toggle(start)

	timer.Tick(start.Add(400 * time.Millisecond))
	timer.Tick(start.Add(900 * time.Millisecond))
	if timer.Remaining() != 60 {
		t.Fatalf("expected no change below one second, got %d", timer.Remaining())
	}

	timer.Tick(start.Add(2500 * time.Millisecond))
	if timer.Remaining() != 58 {
		t.Fatalf("expected two whole seconds subtracted, got %d", timer.Remaining())
	}
}

func TestFocusTimerAutoStopsAtZero(t *testing.T) {
	start := time.Date(2026, 2, 9, 9, 0, 0, 0, time.UTC)
	timer := NewFocusTimer(5)
	timer.Toggle(start)

	if finished := timer.Tick(start.Add(3 * time.Second)); finished {
		t.Fatal("did not expect session to finish yet")
	}
	if finished := timer.Tick(start.Add(30 * time.Second)); !finished {
		t.Fatal("expected session to finish")
	}
	if timer.Remaining() != 0 || timer.Running() {
		t.Fatalf("expected stopped timer at zero, got %+v", timer)
	}
	if finished := timer.Tick(start.Add(40 * time.Second)); finished {
		t.Fatal("a stopped timer must not finish again")
	}
}

func TestFocusTimerPauseAndResume(t *testing.T) {
	start := time.Date(2026, 2, 9, 9, 0, 0, 0, time.UTC)
	timer := NewFocusTimer(100)
	timer.Toggle(start)
	timer.Tick(start.Add(10 * time.Second))
	timer.Toggle(start.Add(10 * time.Second))
	if timer.Running() {
		t.Fatal("expected paused timer")
	}

	timer.Tick(start.Add(60 * time.Second))
	if timer.Remaining() != 90 {
		t.Fatalf("paused timer must not count down, got %d", timer.Remaining())
	}

	timer.Toggle(start.Add(60 * time.Second))
	timer.Tick(start.Add(65 * time.Second))
	if timer.Remaining() != 85 {
		t.Fatalf("expected resume from pause anchor, got %d", timer.Remaining())
	}
}

func TestFocusTimerReset(t *testing.T) {
	start := time.Date(2026, 2, 9, 9, 0, 0, 0, time.UTC)
	timer := NewFocusTimer(100)
	timer.Toggle(start)
	timer.Tick(start.Add(30 * time.Second))
	timer.Reset()
	if timer.Remaining() != timer.Total() || timer.Running() {
		t.Fatalf("expected reset timer, got %+v", timer)
	}
}

func TestFocusTimerRestartAfterFinish(t *testing.T) {
	start := time.Date(2026, 2, 9, 9, 0, 0, 0, time.UTC)
	timer := NewFocusTimer(2)
	timer.Toggle(start)
	timer.Tick(start.Add(5 * time.Second))
	timer.Toggle(start.Add(6 * time.Second))
	if !timer.Running() || timer.Remaining() != 2 {
		t.Fatalf("expected fresh session, got %+v", timer)
	}
	if timer.Progress() != 0 {
		t.Fatalf("expected zero progress, got %v", timer.Progress())
	}
}
