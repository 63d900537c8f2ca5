package tracker

import (
	"testing"

	"github.com/matryer/is"

	"tempo/pkg/activity"
	"tempo/pkg/date"
)

// twoDays builds a state with two rows on the newest day and one on the older.
func twoDays() *State {
	return NewState([]activity.Activity{
		act(day(2), 9, 0, "a"),
		act(day(2), 12, 0, "b"),
		act(day(1), 9, 0, "c"),
	})
}

func pos(t *testing.T, c Cursor) (date.Date, int) {
	t.Helper()
	d, i, ok := c.Pos()
	if !ok {
		t.Fatal("cursor has no selection")
	}
	return d, i
}

func TestCursor_NextWalksDisplayOrder(t *testing.T) {
	is := is.New(t)

	st := twoDays()
	var c Cursor

	c.Next(st) // nothing selected yet: start at the first row
	d, i := pos(t, c)
	is.Equal(d, day(2))
	is.Equal(i, 0)

	c.Next(st)
	d, i = pos(t, c)
	is.Equal(d, day(2))
	is.Equal(i, 1)

	c.Next(st) // crosses into the older day
	d, i = pos(t, c)
	is.Equal(d, day(1))
	is.Equal(i, 0)

	c.Next(st) // wraps to the top
	d, i = pos(t, c)
	is.Equal(d, day(2))
	is.Equal(i, 0)
}

func TestCursor_PrevWalksBackwards(t *testing.T) {
	is := is.New(t)

	st := twoDays()
	var c Cursor

	c.Prev(st) // nothing selected yet: start at the last row
	d, i := pos(t, c)
	is.Equal(d, day(1))
	is.Equal(i, 0)

	c.Prev(st) // crosses into the newer day, at its last row
	d, i = pos(t, c)
	is.Equal(d, day(2))
	is.Equal(i, 1)

	c.Prev(st)
	c.Prev(st) // wraps to the bottom
	d, i = pos(t, c)
	is.Equal(d, day(1))
	is.Equal(i, 0)
}

func TestCursor_FirstLast(t *testing.T) {
	is := is.New(t)

	st := twoDays()
	var c Cursor

	c.Last(st)
	d, i := pos(t, c)
	is.Equal(d, day(1))
	is.Equal(i, 0)

	c.First(st)
	d, i = pos(t, c)
	is.Equal(d, day(2))
	is.Equal(i, 0)
}

func TestCursor_EmptyState(t *testing.T) {
	is := is.New(t)

	st := NewState(nil)
	var c Cursor
	c.Next(st)
	_, _, ok := c.Pos()
	is.True(!ok)
	c.Prev(st)
	_, _, ok = c.Pos()
	is.True(!ok)
}

func TestCursor_ClampAfterMutation(t *testing.T) {
	is := is.New(t)

	t.Run("index past the end snaps to the last row", func(t *testing.T) {
		is := is.New(t)
		st := twoDays()
		var c Cursor
		c.Last(st)
		c.Next(st)
		c.Next(st) // day(2) index 1
		st.Remove(day(2), 1)
		c.Clamp(st)
		d, i := pos(t, c)
		is.Equal(d, day(2))
		is.Equal(i, 0)
	})

	t.Run("vanished day re-resolves to the first row", func(t *testing.T) {
		is := is.New(t)
		st := twoDays()
		var c Cursor
		c.Last(st) // day(1)
		st.Remove(day(1), 0)
		c.Clamp(st)
		d, i := pos(t, c)
		is.Equal(d, day(2))
		is.Equal(i, 0)
	})

	t.Run("empty state clears the selection", func(t *testing.T) {
		is := is.New(t)
		st := NewState([]activity.Activity{act(day(1), 9, 0, "only")})
		var c Cursor
		c.First(st)
		st.Remove(day(1), 0)
		c.Clamp(st)
		_, _, ok := c.Pos()
		is.True(!ok)
	})
}
