package update

import "testing"

func TestCursorAdvanceWraps(t *testing.T) {
	var c Cursor
	c.Advance(3)
	if i, ok := c.Index(); !ok || i != 0 {
		t.Fatalf("expected unset cursor to land on 0, got %d %v", i, ok)
	}
	c.Advance(3)
	c.Advance(3)
	if i, _ := c.Index(); i != 2 {
		t.Fatalf("expected index 2, got %d", i)
	}
	c.Advance(3)
	if i, _ := c.Index(); i != 0 {
		t.Fatalf("expected wrap to 0, got %d", i)
	}
}

func TestCursorRetreatWraps(t *testing.T) {
	var c Cursor
	c.Retreat(4)
	if i, ok := c.Index(); !ok || i != 0 {
		t.Fatalf("expected unset cursor to land on 0, got %d %v", i, ok)
	}
	c.Retreat(4)
	if i, _ := c.Index(); i != 3 {
		t.Fatalf("expected wrap to last index, got %d", i)
	}
	c.Retreat(4)
	if i, _ := c.Index(); i != 2 {
		t.Fatalf("expected index 2, got %d", i)
	}
}

func TestCursorNoOpOnEmptyList(t *testing.T) {
	var c Cursor
	c.Advance(0)
	c.Retreat(0)
	if _, ok := c.Index(); ok {
		t.Fatal("expected cursor to stay unset on empty list")
	}

	c.Advance(2)
	c.Advance(0)
	if i, ok := c.Index(); !ok || i != 0 {
		t.Fatalf("expected set cursor unchanged, got %d %v", i, ok)
	}
}

func TestCursorClamp(t *testing.T) {
	var c Cursor
	c.Clamp(3)
	if i, ok := c.Index(); !ok || i != 0 {
		t.Fatalf("expected unset cursor to become 0, got %d %v", i, ok)
	}
	c.Retreat(3)
	c.Clamp(2)
	if i, _ := c.Index(); i != 1 {
		t.Fatalf("expected clamp to new last index, got %d", i)
	}
	c.Clamp(0)
	if _, ok := c.Index(); ok {
		t.Fatal("expected cleared cursor on empty list")
	}
}

func TestNavigationCursorsAreIndependent(t *testing.T) {
	var n Navigation
	n.Advance(ListTodo, 3)
	n.Advance(ListTodo, 3)
	n.Advance(ListDone, 2)
	if i, _ := n.Cursor(ListTodo).Index(); i != 1 {
		t.Fatalf("expected todo cursor at 1, got %d", i)
	}
	if i, _ := n.Cursor(ListDone).Index(); i != 0 {
		t.Fatalf("expected done cursor at 0, got %d", i)
	}
	if _, ok := n.Cursor(ListDoing).Index(); ok {
		t.Fatal("expected doing cursor untouched")
	}

	copied := n
	copied.Advance(ListTodo, 3)
	if i, _ := n.Cursor(ListTodo).Index(); i != 1 {
		t.Fatalf("copy must not share cursor state, got %d", i)
	}
}

func TestNavigationShiftColumnWraps(t *testing.T) {
	var n Navigation
	n.ShiftColumn(-1)
	if n.FocusedColumn() != 2 || n.FocusedList() != ListDone {
		t.Fatalf("expected wrap to column 2, got %d", n.FocusedColumn())
	}
	n.ShiftColumn(1)
	if n.FocusedColumn() != 0 || n.FocusedList() != ListTodo {
		t.Fatalf("expected wrap to column 0, got %d", n.FocusedColumn())
	}
	n.ShiftColumn(1)
	if n.FocusedColumn() != 1 {
		t.Fatalf("expected column 1, got %d", n.FocusedColumn())
	}
}

func TestNavigationClampAll(t *testing.T) {
	var n Navigation
	n.Retreat(ListDashboard, 5)
	n.Retreat(ListDashboard, 5)
	lengths := map[ListKey]int{ListDashboard: 2, ListTodo: 1, ListDoing: 0, ListDone: 3}
	n.ClampAll(func(k ListKey) int { return lengths[k] })
	if i, _ := n.Cursor(ListDashboard).Index(); i != 1 {
		t.Fatalf("expected dashboard clamped to 1, got %d", i)
	}
	if i, ok := n.Cursor(ListTodo).Index(); !ok || i != 0 {
		t.Fatalf("expected todo set to 0, got %d %v", i, ok)
	}
	if _, ok := n.Cursor(ListDoing).Index(); ok {
		t.Fatal("expected doing cursor cleared")
	}
}
