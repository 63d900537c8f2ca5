package tracker

import (
	"testing"

	"github.com/matryer/is"

	"tempo/pkg/activity"
	"tempo/pkg/date"
)

func TestTracker_SubmitAddsAndEdits(t *testing.T) {
	is := is.New(t)

	tr := New(nil)
	a := act(day(1), 9, 0, "standup")
	tr.Submit(a)
	is.Equal(tr.Len(), 1)
	is.True(tr.CanUndo())

	edited := a
	edited.Action = "retro"
	tr.Submit(edited)
	is.Equal(tr.Len(), 1)

	tr.Undo()
	acts := tr.Activities()
	is.Equal(acts[0].Action, "standup")

	tr.Undo()
	is.True(tr.Empty())
	is.True(!tr.CanUndo())

	tr.Redo()
	tr.Redo()
	is.Equal(tr.Activities()[0].Action, "retro")
}

func TestTracker_DeleteSelected(t *testing.T) {
	is := is.New(t)

	tr := New([]activity.Activity{
		act(day(2), 9, 0, "a"),
		act(day(2), 12, 0, "b"),
		act(day(1), 9, 0, "c"),
	})

	tr.SelectNext()
	tr.SelectNext() // day(2) index 1

	deleted, ok := tr.DeleteSelected()
	is.True(ok)
	is.Equal(deleted.Action, "b")
	is.Equal(tr.Len(), 2)

	sel, ok := tr.Selected()
	is.True(ok)
	is.Equal(sel.Action, "a") // selection moved to the row above

	tr.Undo()
	is.Equal(tr.Len(), 3)
}

func TestTracker_DeleteLastActivityClearsSelection(t *testing.T) {
	is := is.New(t)

	tr := New([]activity.Activity{act(day(1), 9, 0, "only")})
	tr.SelectFirst()

	_, ok := tr.DeleteSelected()
	is.True(ok)
	is.True(tr.Empty())
	_, ok = tr.Selected()
	is.True(!ok)

	_, ok = tr.DeleteSelected() // nothing selected
	is.True(!ok)
}

func TestTracker_YankPaste(t *testing.T) {
	is := is.New(t)

	tr := New([]activity.Activity{act(day(1), 9, 0, "standup")})

	_, err := tr.Paste()
	is.Equal(err, ErrClipboardEmpty)

	tr.SelectFirst()
	yanked, ok := tr.Yank()
	is.True(ok)

	pasted, err := tr.Paste()
	is.NoErr(err)
	is.True(pasted.ID != yanked.ID)
	is.Equal(pasted.Action, yanked.Action)
	is.Equal(pasted.Day, yanked.Day)
	is.Equal(tr.Len(), 2)

	tr.Undo() // paste is a plain add
	is.Equal(tr.Len(), 1)
}

func TestTracker_PasteSurvivesSourceDeletion(t *testing.T) {
	is := is.New(t)

	tr := New([]activity.Activity{act(day(1), 9, 0, "standup")})
	tr.SelectFirst()
	tr.Yank()
	tr.DeleteSelected()
	is.True(tr.Empty())

	pasted, err := tr.Paste()
	is.NoErr(err)
	is.Equal(pasted.Action, "standup")
	is.Equal(tr.Len(), 1)
}

func TestTracker_LastEnd(t *testing.T) {
	is := is.New(t)

	end := func(a activity.Activity, h, m int) activity.Activity {
		e := date.ClockOf(h, m)
		a.End = &e
		return a
	}

	t.Run("empty tracker has none", func(t *testing.T) {
		is := is.New(t)
		is.Equal(New(nil).LastEnd(), (*date.Clock)(nil))
	})

	t.Run("running activities have none", func(t *testing.T) {
		is := is.New(t)
		tr := New([]activity.Activity{act(day(1), 9, 0, "open")})
		is.Equal(tr.LastEnd(), (*date.Clock)(nil))
	})

	t.Run("latest end of the newest day that has one", func(t *testing.T) {
		is := is.New(t)
		tr := New([]activity.Activity{
			end(act(day(1), 9, 0, "old"), 17, 0),
			end(act(day(2), 9, 0, "a"), 12, 0),
			end(act(day(2), 13, 0, "b"), 15, 30),
			act(day(2), 16, 0, "running"),
		})
		got := tr.LastEnd()
		is.True(got != nil)
		is.Equal(*got, date.ClockOf(15, 30))
	})
}
