package tracker

import (
	"sort"

	"tempo/pkg/activity"
)

// DayVec holds one day's activities, always sorted by the activity order.
// No two elements ever share an ID.
type DayVec struct {
	v []activity.Activity
}

func (d *DayVec) Len() int { return len(d.v) }

// At returns the activity at index i. It panics out of range, like a slice.
func (d *DayVec) At(i int) activity.Activity { return d.v[i] }

// Slice exposes the backing slice for iteration. Callers must not mutate it.
func (d *DayVec) Slice() []activity.Activity { return d.v }

// Add inserts a at its sorted position. If an element with the same ID is
// already present it is removed first and returned: an edit is a removal of
// the old value plus an insertion of the new one under the same ID.
func (d *DayVec) Add(a activity.Activity) *activity.Activity {
	var prev *activity.Activity
	if i := d.indexOf(a.ID); i >= 0 {
		old := d.remove(i)
		prev = &old
	}
	i := sort.Search(len(d.v), func(i int) bool { return a.Less(d.v[i]) })
	d.v = append(d.v, activity.Activity{})
	copy(d.v[i+1:], d.v[i:])
	d.v[i] = a
	return prev
}

// Remove deletes and returns the element at index i, or false when i is out
// of range. Removal keeps the remaining elements sorted.
func (d *DayVec) Remove(i int) (activity.Activity, bool) {
	if i < 0 || i >= len(d.v) {
		return activity.Activity{}, false
	}
	return d.remove(i), true
}

func (d *DayVec) RemoveByID(id activity.ID) (activity.Activity, bool) {
	i := d.indexOf(id)
	if i < 0 {
		return activity.Activity{}, false
	}
	return d.remove(i), true
}

// FindByID returns a guard around the element with the given ID. The caller
// may mutate the element through the guard and must Release it afterwards;
// releasing restores the sort order whatever happened in between.
func (d *DayVec) FindByID(id activity.ID) (*Guard, bool) {
	i := d.indexOf(id)
	if i < 0 {
		return nil, false
	}
	return &Guard{vec: d, index: i}, true
}

func (d *DayVec) indexOf(id activity.ID) int {
	for i, a := range d.v {
		if a.ID == id {
			return i
		}
	}
	return -1
}

func (d *DayVec) remove(i int) activity.Activity {
	a := d.v[i]
	d.v = append(d.v[:i], d.v[i+1:]...)
	return a
}

func (d *DayVec) sort() {
	sort.Slice(d.v, func(i, j int) bool { return d.v[i].Less(d.v[j]) })
}

// Guard is a scoped handle on one element of a DayVec. The vector cannot
// tell whether the caller touched a sort-relevant field, so Release re-sorts
// unconditionally. Release is idempotent and safe under defer.
type Guard struct {
	vec   *DayVec
	index int
	done  bool
}

// Activity returns the guarded element. The pointer is only valid until
// Release or Delete.
func (g *Guard) Activity() *activity.Activity {
	if g.done {
		panic("tracker: use of released guard")
	}
	return &g.vec.v[g.index]
}

// Release gives the element back to the vector and restores its sort order.
func (g *Guard) Release() {
	if g.done {
		return
	}
	g.done = true
	g.vec.sort()
}

// Delete removes the guarded element instead of releasing it.
func (g *Guard) Delete() activity.Activity {
	if g.done {
		panic("tracker: use of released guard")
	}
	g.done = true
	return g.vec.remove(g.index)
}
