package tracker

import (
	"testing"

	"github.com/matryer/is"

	"tempo/pkg/activity"
	"tempo/pkg/date"
)

func TestState_DaysIterateNewestFirst(t *testing.T) {
	is := is.New(t)

	st := NewState([]activity.Activity{
		act(day(3), 9, 0, "wed"),
		act(day(1), 9, 0, "mon"),
		act(day(5), 9, 0, "fri"),
	})

	var order []date.Date
	st.Each(func(d date.Date, _ []activity.Activity) bool {
		order = append(order, d)
		return true
	})
	is.Equal(order, []date.Date{day(5), day(3), day(1)})

	first, ok := st.FirstDay()
	is.True(ok)
	is.Equal(first, day(5))
	last, ok := st.LastDay()
	is.True(ok)
	is.Equal(last, day(1))
}

func TestState_NextPrevDay(t *testing.T) {
	is := is.New(t)

	st := NewState([]activity.Activity{
		act(day(1), 9, 0, "mon"),
		act(day(3), 9, 0, "wed"),
		act(day(5), 9, 0, "fri"),
	})

	next, ok := st.NextDay(day(5))
	is.True(ok)
	is.Equal(next, day(3))

	next, ok = st.NextDay(day(4)) // between two buckets
	is.True(ok)
	is.Equal(next, day(3))

	_, ok = st.NextDay(day(1))
	is.True(!ok)

	prev, ok := st.PrevDay(day(1))
	is.True(ok)
	is.Equal(prev, day(3))

	_, ok = st.PrevDay(day(5))
	is.True(!ok)
}

func TestState_AddSameIDMovesAcrossDays(t *testing.T) {
	is := is.New(t)

	a := act(day(1), 9, 0, "standup")
	st := NewState([]activity.Activity{a})

	moved := a
	moved.Day = day(2)
	prev := st.Add(moved)

	is.True(prev != nil)
	is.Equal(*prev, a)
	is.Equal(st.NumDays(), 1) // the emptied source day is gone
	_, ok := st.Day(day(1))
	is.True(!ok)
	vec, ok := st.Day(day(2))
	is.True(ok)
	is.Equal(vec.At(0).ID, a.ID)
}

func TestState_RemovePrunesEmptyDay(t *testing.T) {
	is := is.New(t)

	a := act(day(1), 9, 0, "only")
	st := NewState([]activity.Activity{a, act(day(2), 10, 0, "other")})

	got, ok := st.Remove(day(1), 0)
	is.True(ok)
	is.Equal(got, a)
	_, ok = st.Day(day(1))
	is.True(!ok)
	is.Equal(st.NumDays(), 1)

	_, ok = st.Remove(day(1), 0)
	is.True(!ok)
}

func TestState_Activities(t *testing.T) {
	is := is.New(t)

	st := NewState([]activity.Activity{
		act(day(1), 12, 0, "c"),
		act(day(2), 9, 0, "a"),
		act(day(1), 9, 0, "b"),
	})

	acts := st.Activities()
	is.Equal(len(acts), 3)
	is.Equal(acts[0].Action, "a") // newest day first
	is.Equal(acts[1].Action, "b") // then sorted within the day
	is.Equal(acts[2].Action, "c")
	is.Equal(st.Len(), 3)
	is.True(!st.Empty())
}
