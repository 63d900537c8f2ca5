package tracker

import "tempo/pkg/date"

// Cursor is the selected (day, index) coordinate, or nothing. It is derived
// state: it never enters the history, and it must be revalidated against the
// state after every structural mutation.
type Cursor struct {
	date  date.Date
	index int
	ok    bool
}

func (c Cursor) Pos() (date.Date, int, bool) {
	return c.date, c.index, c.ok
}

// Next moves one row down the display order: through the day, then to the
// first row of the next (older) day, wrapping to the newest day at the end.
func (c *Cursor) Next(st *State) {
	if !c.ok {
		c.first(st)
		return
	}
	vec, exists := st.Day(c.date)
	if !exists {
		// the selected day was deleted from under the cursor
		c.first(st)
		return
	}
	if c.index+1 < vec.Len() {
		c.index++
		return
	}
	if d, ok := st.NextDay(c.date); ok {
		c.set(d, 0)
		return
	}
	c.first(st)
}

// Prev moves one row up, wrapping to the last row of the oldest day.
func (c *Cursor) Prev(st *State) {
	if !c.ok {
		c.last(st)
		return
	}
	if _, exists := st.Day(c.date); !exists {
		c.first(st)
		return
	}
	if c.index > 0 {
		c.index--
		return
	}
	if d, ok := st.PrevDay(c.date); ok {
		vec, _ := st.Day(d)
		c.set(d, vec.Len()-1)
		return
	}
	c.last(st)
}

// First selects the first row: the newest day's first activity.
func (c *Cursor) First(st *State) { c.first(st) }

// Last selects the last row: the oldest day's last activity.
func (c *Cursor) Last(st *State) { c.last(st) }

// Clamp drags the cursor back onto a live row after the state changed. A
// vanished day re-resolves to the first row, an out-of-range index snaps to
// the day's last row, and an empty state clears the selection.
func (c *Cursor) Clamp(st *State) {
	if !c.ok {
		return
	}
	if st.Empty() {
		c.ok = false
		return
	}
	vec, exists := st.Day(c.date)
	if !exists {
		c.first(st)
		return
	}
	if c.index >= vec.Len() {
		c.index = vec.Len() - 1
	}
}

func (c *Cursor) first(st *State) {
	d, ok := st.FirstDay()
	if !ok {
		c.ok = false
		return
	}
	c.set(d, 0)
}

func (c *Cursor) last(st *State) {
	d, ok := st.LastDay()
	if !ok {
		c.ok = false
		return
	}
	vec, _ := st.Day(d)
	c.set(d, vec.Len()-1)
}

func (c *Cursor) set(d date.Date, i int) {
	c.date, c.index, c.ok = d, i, true
}
