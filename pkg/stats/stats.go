// Package stats aggregates worked time across the tracker: totals,
// averages, and overtime against the configured work day.
package stats

import (
	"fmt"
	"time"

	"tempo/pkg/activity"
	"tempo/pkg/date"
	"tempo/pkg/persist"
)

// DayTotal is the time worked on one day. Known is false while any of the
// day's activities is still running, because the total would be a lie.
type DayTotal struct {
	Day   date.Date
	Total time.Duration
	Known bool
}

// Summary is everything the stats pane and the stats subcommand show.
type Summary struct {
	Total    time.Duration
	Average  time.Duration
	Overtime time.Duration

	DaysWorked int
	DaysOff    int
	Holidays   int
}

// Source is the part of the tracker the statistics read.
type Source interface {
	Each(fn func(d date.Date, acts []activity.Activity) bool)
}

// PerDay computes each day's total, newest day first.
func PerDay(src Source) []DayTotal {
	var out []DayTotal
	src.Each(func(d date.Date, acts []activity.Activity) bool {
		out = append(out, dayTotal(d, acts))
		return true
	})
	return out
}

// Compute aggregates the whole tracker. A worked day is expected to take
// cfg.WorkDayHours unless it is a weekend, a day off, or a holiday when
// holidays are free; whatever exceeds the expectation is overtime.
func Compute(src Source, cfg persist.Config, daysOff, holidays []date.Date) Summary {
	off := dateSet(daysOff)
	hol := dateSet(holidays)

	s := Summary{DaysOff: len(daysOff), Holidays: len(holidays)}
	var expected time.Duration
	src.Each(func(d date.Date, acts []activity.Activity) bool {
		t := dayTotal(d, acts)
		if !t.Known {
			return true
		}
		s.DaysWorked++
		s.Total += t.Total
		if !d.Weekend() && !off[d] && !(cfg.FreeHolidays && hol[d]) {
			expected += time.Duration(float64(time.Hour) * cfg.WorkDayHours)
		}
		return true
	})
	if s.DaysWorked > 0 {
		s.Average = s.Total / time.Duration(s.DaysWorked)
	}
	s.Overtime = s.Total - expected
	return s
}

// FormatDuration renders a (possibly negative) duration as hh:mm.
func FormatDuration(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}
	h := int(d.Hours())
	m := int(d.Minutes()) - h*60
	return fmt.Sprintf("%s%02d:%02d", sign, h, m)
}

func dayTotal(d date.Date, acts []activity.Activity) DayTotal {
	t := DayTotal{Day: d, Known: true}
	for _, a := range acts {
		dur, done := a.Duration()
		if !done {
			t.Known = false
			t.Total = 0
			return t
		}
		t.Total += dur
	}
	return t
}

func dateSet(ds []date.Date) map[date.Date]bool {
	m := make(map[date.Date]bool, len(ds))
	for _, d := range ds {
		m[d] = true
	}
	return m
}
