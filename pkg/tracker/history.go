package tracker

import "tempo/pkg/activity"

// ActionKind says which mutation an Action describes.
type ActionKind int

const (
	ActionAdd ActionKind = iota
	ActionDelete
	ActionEdit
)

// Action is one reversible mutation. For add and delete it carries the
// activity that was added or deleted. For edit it carries the superseded
// value: undoing and redoing an edit both swap that value with the live
// record, so the action is its own inverse.
type Action struct {
	Kind     ActionKind
	Activity activity.Activity
}

// History is the undo/redo log. Actions in past are applied, actions in
// future have been undone and are available for redo. Actions reference
// activities by value and ID, never by index, so they stay valid while the
// state re-sorts underneath them.
type History struct {
	past   []Action
	future []Action
}

// Forward records a freshly applied action. Doing anything new after an
// undo discards the redo trail.
func (h *History) Forward(a Action) {
	h.past = append(h.past, a)
	h.future = nil
}

// Undo reverts the most recent applied action against st. It does nothing
// when there is nothing to undo.
func (h *History) Undo(st *State) {
	n := len(h.past)
	if n == 0 {
		return
	}
	a := h.past[n-1]
	h.past = h.past[:n-1]
	h.invert(st, &a)
	h.future = append(h.future, a)
}

// Redo re-applies the most recently undone action against st.
func (h *History) Redo(st *State) {
	n := len(h.future)
	if n == 0 {
		return
	}
	a := h.future[n-1]
	h.future = h.future[:n-1]
	h.apply(st, &a)
	h.past = append(h.past, a)
}

func (h *History) CanUndo() bool { return len(h.past) > 0 }
func (h *History) CanRedo() bool { return len(h.future) > 0 }

func (h *History) apply(st *State, a *Action) {
	switch a.Kind {
	case ActionAdd:
		st.Add(a.Activity)
	case ActionDelete:
		if _, ok := st.RemoveByID(a.Activity.Day, a.Activity.ID); !ok {
			panic("tracker: redoing a delete of an unknown activity")
		}
	case ActionEdit:
		h.swap(st, a, "redo")
	}
}

func (h *History) invert(st *State, a *Action) {
	switch a.Kind {
	case ActionAdd:
		if _, ok := st.RemoveByID(a.Activity.Day, a.Activity.ID); !ok {
			panic("tracker: undoing an add of an unknown activity")
		}
	case ActionDelete:
		st.Add(a.Activity)
	case ActionEdit:
		h.swap(st, a, "undo")
	}
}

// swap exchanges the action's stored value with the live record carrying the
// same ID, wherever it currently lives. The action then holds the displaced
// value, ready to swap back on the next undo or redo.
func (h *History) swap(st *State, a *Action, op string) {
	cur := st.Add(a.Activity)
	if cur == nil {
		panic("tracker: " + op + " of an edit with no live activity to swap")
	}
	a.Activity = *cur
}
