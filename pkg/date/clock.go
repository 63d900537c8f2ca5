package date

import (
	"fmt"
	"time"
)

// Clock is a time of day with minute precision.
type Clock struct {
	minutes int
}

func ClockOf(hour, minute int) Clock {
	return Clock{minutes: hour*60 + minute}
}

func ClockNow() Clock {
	now := time.Now()
	return ClockOf(now.Hour(), now.Minute())
}

func (c Clock) Hour() int   { return c.minutes / 60 }
func (c Clock) Minute() int { return c.minutes % 60 }

func (c Clock) Compare(o Clock) int { return cmp(c.minutes, o.minutes) }
func (c Clock) Before(o Clock) bool { return c.minutes < o.minutes }

// Sub returns the duration elapsed from o to c.
func (c Clock) Sub(o Clock) time.Duration {
	return time.Duration(c.minutes-o.minutes) * time.Minute
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// ParseClockISO parses the "15:04" file format.
func ParseClockISO(s string) (Clock, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return Clock{}, err
	}
	return ClockOf(t.Hour(), t.Minute()), nil
}
