package date

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

var ErrNoPreviousTime = errors.New("no previous time available")

// ParseClock parses user input for a time of day relative to now.
// "now" (or an empty string when assumeNow is set) means the current time,
// "last" means the previously recorded time. A bare hour adopts the current
// minute, but only when it names the current hour.
func ParseClock(s string, assumeNow bool, last *Clock, now Clock) (Clock, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "now") || (s == "" && assumeNow) {
		return now, nil
	}
	if strings.EqualFold(s, "last") {
		if last == nil {
			return Clock{}, ErrNoPreviousTime
		}
		return *last, nil
	}

	hs, ms, hasMinute := strings.Cut(s, ":")
	hour, err := strconv.Atoi(strings.TrimSpace(hs))
	if err != nil {
		return Clock{}, errors.New("failed to parse time: invalid hour")
	}
	var minute int
	if !hasMinute || strings.TrimSpace(ms) == "" {
		if hour != now.Hour() {
			return Clock{}, errors.New("can't use current minute because you are not inputing current hour")
		}
		minute = now.Minute()
	} else {
		minute, err = strconv.Atoi(strings.TrimSpace(ms))
		if err != nil {
			return Clock{}, errors.New("failed to parse time: invalid minute")
		}
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return Clock{}, errors.New("failed to parse time: hour or minute out of bounds")
	}
	return ClockOf(hour, minute), nil
}

// ParseDay parses user input of the shape day[/month[/year]], with "/" or "-"
// as separators. Missing components keep today's values, so "" is today and
// "1/6" is the first of June this year.
func ParseDay(s string, today Date) (Date, error) {
	d := today
	fields := strings.Split(strings.ReplaceAll(s, "-", "/"), "/")

	if len(fields) >= 1 && strings.TrimSpace(fields[0]) != "" {
		day, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil {
			return Date{}, errors.New("failed to parse date: invalid day")
		}
		d.day = day
		if !d.valid() {
			return Date{}, errors.New("failed to parse date: day out of bounds")
		}
	}
	if len(fields) >= 2 {
		month, err := strconv.Atoi(strings.TrimSpace(fields[1]))
		if err != nil {
			return Date{}, errors.New("failed to parse date: invalid month number")
		}
		if month < 1 || month > 12 {
			return Date{}, errors.New("failed to parse date: month number out of bounds")
		}
		d.month = time.Month(month)
		if !d.valid() {
			return Date{}, errors.New("failed to parse date: invalid month")
		}
	}
	if len(fields) >= 3 {
		year, err := strconv.Atoi(strings.TrimSpace(fields[2]))
		if err != nil {
			return Date{}, errors.New("failed to parse date: invalid year")
		}
		d.year = year
		if !d.valid() {
			return Date{}, errors.New("failed to parse date: year out of bounds")
		}
	}
	return d, nil
}

func (d Date) valid() bool {
	if d.month < time.January || d.month > time.December || d.day < 1 {
		return false
	}
	t := time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
	y, m, day := t.Date()
	return y == d.year && m == d.month && day == d.day
}
