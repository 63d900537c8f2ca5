package tracker

import (
	"errors"

	"tempo/pkg/activity"
	"tempo/pkg/date"
)

var ErrClipboardEmpty = errors.New("clipboard is empty")

// Tracker ties the state, the history and the selection together behind the
// command surface the UI talks to. Mutations validate first, then touch the
// state, then record themselves in the history, then fix up the cursor.
type Tracker struct {
	state   *State
	history History
	cursor  Cursor

	clipboard *activity.Activity
}

func New(records []activity.Activity) *Tracker {
	return &Tracker{state: NewState(records)}
}

// Submit adds a, or replaces the stored activity with the same ID wherever
// it lives. Either way the mutation lands in the history.
func (t *Tracker) Submit(a activity.Activity) {
	if old := t.state.Add(a); old != nil {
		t.history.Forward(Action{Kind: ActionEdit, Activity: *old})
	} else {
		t.history.Forward(Action{Kind: ActionAdd, Activity: a})
	}
	t.cursor.Clamp(t.state)
}

// DeleteSelected removes the activity under the cursor and moves the
// selection to the row above it.
func (t *Tracker) DeleteSelected() (activity.Activity, bool) {
	d, i, ok := t.cursor.Pos()
	if !ok {
		return activity.Activity{}, false
	}
	a, ok := t.state.Remove(d, i)
	if !ok {
		return activity.Activity{}, false
	}
	t.history.Forward(Action{Kind: ActionDelete, Activity: a})
	if t.state.Empty() {
		t.cursor = Cursor{}
	} else {
		t.cursor.Prev(t.state)
	}
	return a, true
}

func (t *Tracker) Undo() {
	t.history.Undo(t.state)
	t.cursor.Clamp(t.state)
}

func (t *Tracker) Redo() {
	t.history.Redo(t.state)
	t.cursor.Clamp(t.state)
}

func (t *Tracker) CanUndo() bool { return t.history.CanUndo() }
func (t *Tracker) CanRedo() bool { return t.history.CanRedo() }

// Yank copies the selected activity into the clipboard.
func (t *Tracker) Yank() (activity.Activity, bool) {
	a, ok := t.Selected()
	if !ok {
		return activity.Activity{}, false
	}
	t.clipboard = &a
	return a, true
}

// Paste inserts a copy of the clipboard under a fresh ID, on the same day
// the yanked activity was on.
func (t *Tracker) Paste() (activity.Activity, error) {
	if t.clipboard == nil {
		return activity.Activity{}, ErrClipboardEmpty
	}
	a := *t.clipboard
	a.ID = activity.NewID()
	t.state.Add(a)
	t.history.Forward(Action{Kind: ActionAdd, Activity: a})
	t.cursor.Clamp(t.state)
	return a, nil
}

func (t *Tracker) SelectNext()  { t.cursor.Next(t.state) }
func (t *Tracker) SelectPrev()  { t.cursor.Prev(t.state) }
func (t *Tracker) SelectFirst() { t.cursor.First(t.state) }
func (t *Tracker) SelectLast()  { t.cursor.Last(t.state) }

// Selected returns the activity under the cursor.
func (t *Tracker) Selected() (activity.Activity, bool) {
	d, i, ok := t.cursor.Pos()
	if !ok {
		return activity.Activity{}, false
	}
	vec, ok := t.state.Day(d)
	if !ok || i >= vec.Len() {
		return activity.Activity{}, false
	}
	return vec.At(i), true
}

// SelectedPos exposes the cursor coordinate for rendering.
func (t *Tracker) SelectedPos() (date.Date, int, bool) {
	return t.cursor.Pos()
}

// Each visits every day newest first, for rendering and aggregation.
func (t *Tracker) Each(fn func(d date.Date, acts []activity.Activity) bool) {
	t.state.Each(fn)
}

// Activities flattens the state for saving.
func (t *Tracker) Activities() []activity.Activity {
	return t.state.Activities()
}

func (t *Tracker) Len() int    { return t.state.Len() }
func (t *Tracker) Empty() bool { return t.state.Empty() }

// LastEnd is the most recent end time on the most recent day that has one.
// It feeds the "last" shorthand when typing a start time.
func (t *Tracker) LastEnd() *date.Clock {
	var last *date.Clock
	t.state.Each(func(_ date.Date, acts []activity.Activity) bool {
		for _, a := range acts {
			if a.End != nil && (last == nil || last.Before(*a.End)) {
				end := *a.End
				last = &end
			}
		}
		return last == nil
	})
	return last
}
