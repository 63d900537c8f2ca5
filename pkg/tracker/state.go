package tracker

import (
	"github.com/google/btree"

	"tempo/pkg/activity"
	"tempo/pkg/date"
)

// State is every logged activity, bucketed per day. Days iterate newest
// first. A day only exists while it has activities: emptied buckets are
// pruned immediately.
type State struct {
	days *btree.BTree
}

// dayItem orders the tree by date descending, so ascending over the tree
// walks days in reverse-chronological order.
type dayItem struct {
	date date.Date
	vec  *DayVec
}

func (d *dayItem) Less(than btree.Item) bool {
	return d.date.After(than.(*dayItem).date)
}

func NewState(records []activity.Activity) *State {
	s := &State{days: btree.New(2)}
	for _, a := range records {
		s.bucket(a.Day).Add(a)
	}
	return s
}

// Add inserts a, routed to its day. If some activity anywhere in the state
// already carries a.ID it is removed first and returned: same-ID submission
// is an edit, even when the edit moved the activity to another day.
func (s *State) Add(a activity.Activity) *activity.Activity {
	prev := s.removeAnywhere(a.ID)
	s.bucket(a.Day).Add(a)
	return prev
}

// Remove deletes the activity at position i of the given day.
func (s *State) Remove(d date.Date, i int) (activity.Activity, bool) {
	vec, ok := s.Day(d)
	if !ok {
		return activity.Activity{}, false
	}
	a, ok := vec.Remove(i)
	if ok && vec.Len() == 0 {
		s.days.Delete(&dayItem{date: d})
	}
	return a, ok
}

func (s *State) RemoveByID(d date.Date, id activity.ID) (activity.Activity, bool) {
	vec, ok := s.Day(d)
	if !ok {
		return activity.Activity{}, false
	}
	a, ok := vec.RemoveByID(id)
	if ok && vec.Len() == 0 {
		s.days.Delete(&dayItem{date: d})
	}
	return a, ok
}

func (s *State) FindByID(d date.Date, id activity.ID) (*Guard, bool) {
	vec, ok := s.Day(d)
	if !ok {
		return nil, false
	}
	return vec.FindByID(id)
}

// Day returns the bucket for d, if d has any activities.
func (s *State) Day(d date.Date) (*DayVec, bool) {
	item := s.days.Get(&dayItem{date: d})
	if item == nil {
		return nil, false
	}
	return item.(*dayItem).vec, true
}

// Each visits every day newest first. Returning false stops the walk.
func (s *State) Each(fn func(d date.Date, acts []activity.Activity) bool) {
	s.days.Ascend(func(item btree.Item) bool {
		di := item.(*dayItem)
		return fn(di.date, di.vec.v)
	})
}

// FirstDay is the most recent day with activities.
func (s *State) FirstDay() (date.Date, bool) {
	if s.days.Len() == 0 {
		return date.Date{}, false
	}
	return s.days.Min().(*dayItem).date, true
}

// LastDay is the oldest day with activities.
func (s *State) LastDay() (date.Date, bool) {
	if s.days.Len() == 0 {
		return date.Date{}, false
	}
	return s.days.Max().(*dayItem).date, true
}

// NextDay is the closest day older than d with activities.
func (s *State) NextDay(d date.Date) (date.Date, bool) {
	var next date.Date
	found := false
	s.days.AscendGreaterOrEqual(&dayItem{date: d}, func(item btree.Item) bool {
		di := item.(*dayItem)
		if di.date.Compare(d) == 0 {
			return true
		}
		next, found = di.date, true
		return false
	})
	return next, found
}

// PrevDay is the closest day newer than d with activities.
func (s *State) PrevDay(d date.Date) (date.Date, bool) {
	var prev date.Date
	found := false
	s.days.DescendLessOrEqual(&dayItem{date: d}, func(item btree.Item) bool {
		di := item.(*dayItem)
		if di.date.Compare(d) == 0 {
			return true
		}
		prev, found = di.date, true
		return false
	})
	return prev, found
}

// NumDays reports how many days have activities.
func (s *State) NumDays() int { return s.days.Len() }

// Len reports the total number of activities.
func (s *State) Len() int {
	n := 0
	s.Each(func(_ date.Date, acts []activity.Activity) bool {
		n += len(acts)
		return true
	})
	return n
}

func (s *State) Empty() bool { return s.days.Len() == 0 }

// Activities flattens the state, newest day first, sorted within each day.
func (s *State) Activities() []activity.Activity {
	out := make([]activity.Activity, 0, s.Len())
	s.Each(func(_ date.Date, acts []activity.Activity) bool {
		out = append(out, acts...)
		return true
	})
	return out
}

func (s *State) bucket(d date.Date) *DayVec {
	if vec, ok := s.Day(d); ok {
		return vec
	}
	vec := &DayVec{}
	s.days.ReplaceOrInsert(&dayItem{date: d, vec: vec})
	return vec
}

// removeAnywhere searches every day for id, removes the match and prunes the
// day it came from when that empties it.
func (s *State) removeAnywhere(id activity.ID) *activity.Activity {
	var (
		from  date.Date
		found *activity.Activity
	)
	s.days.Ascend(func(item btree.Item) bool {
		di := item.(*dayItem)
		if g, ok := di.vec.FindByID(id); ok {
			a := g.Delete()
			from, found = di.date, &a
			return false
		}
		return true
	})
	if found != nil {
		if vec, ok := s.Day(from); ok && vec.Len() == 0 {
			s.days.Delete(&dayItem{date: from})
		}
	}
	return found
}
