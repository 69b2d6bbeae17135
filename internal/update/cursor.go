package update

import "github.com/sandeepkv93/zenith/internal/model"

// Cursor is an optional index into a list-shaped view.
type Cursor struct {
	index int
	set   bool
}

func (c Cursor) Index() (int, bool) {
	return c.index, c.set
}

// Advance moves forward, wrapping from the last index to 0. An unset cursor
// lands on 0. No-op when the list is empty.
func (c *Cursor) Advance(length int) {
	if length <= 0 {
		return
	}
	if !c.set || c.index >= length-1 {
		c.index, c.set = 0, true
		return
	}
	c.index++
}

// Retreat moves backward, wrapping from 0 to the last index. An unset cursor
// lands on 0. No-op when the list is empty.
func (c *Cursor) Retreat(length int) {
	if length <= 0 {
		return
	}
	if !c.set {
		c.index, c.set = 0, true
		return
	}
	if c.index <= 0 {
		c.index = length - 1
		return
	}
	c.index--
}

// Clamp keeps the cursor valid after the list changed shape.
func (c *Cursor) Clamp(length int) {
	switch {
	case length <= 0:
		c.Clear()
	case !c.set:
		c.index, c.set = 0, true
	case c.index >= length:
		c.index = length - 1
	case c.index < 0:
		c.index = 0
	}
}

func (c *Cursor) Clear() {
	c.index, c.set = 0, false
}

// ListKey identifies one cursor-bearing list.
type ListKey int

const (
	ListDashboard ListKey = iota
	ListTodo
	ListDoing
	ListDone
	listKeyCount
)

func columnList(col int) ListKey {
	return ListTodo + ListKey(col)
}

func (k ListKey) status() (model.Status, bool) {
	if k < ListTodo || k >= listKeyCount {
		return "", false
	}
	return model.StatusForColumn(int(k - ListTodo)), true
}

const kanbanColumns = 3

// Navigation holds one cursor per list plus the focused kanban column. The
// cursors live in an array so copies of the model never share them.
type Navigation struct {
	cursors [listKeyCount]Cursor
	column  int
}

func (n Navigation) Cursor(key ListKey) Cursor {
	return n.cursors[key]
}

func (n *Navigation) Advance(key ListKey, length int) {
	n.cursors[key].Advance(length)
}

func (n *Navigation) Retreat(key ListKey, length int) {
	n.cursors[key].Retreat(length)
}

func (n *Navigation) Clamp(key ListKey, length int) {
	n.cursors[key].Clamp(length)
}

func (n Navigation) FocusedColumn() int {
	return n.column
}

// FocusedList is the kanban cursor that receives j/k.
func (n Navigation) FocusedList() ListKey {
	return columnList(n.column)
}

// ShiftColumn moves the focused column circularly over the three columns.
func (n *Navigation) ShiftColumn(delta int) {
	n.column = ((n.column+delta)%kanbanColumns + kanbanColumns) % kanbanColumns
}

// ClampAll clamps every cursor against the length reported for its list.
func (n *Navigation) ClampAll(length func(ListKey) int) {
	for key := ListKey(0); key < listKeyCount; key++ {
		n.cursors[key].Clamp(length(key))
	}
}
