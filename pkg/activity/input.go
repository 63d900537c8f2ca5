package activity

import (
	"errors"

	"tempo/pkg/date"
)

var (
	ErrActionRequired = errors.New("action field is mandatory")
	ErrEndBeforeStart = errors.New("end time can't be before start time")
)

// Input is the raw text of the activity editor, before validation.
type Input struct {
	Action string
	Issue  string
	Start  string
	End    string
	Day    string
}

// Ref supplies the moment the input is interpreted against: blanks and
// relative words like "now" or "last" resolve relative to it.
type Ref struct {
	Today date.Date
	Now   date.Clock
	Last  *date.Clock
}

// New validates the input and builds a fresh activity with a new ID.
func New(in Input, ref Ref) (Activity, error) {
	a, err := build(in, ref)
	if err != nil {
		return Activity{}, err
	}
	a.ID = NewID()
	return a, nil
}

// Edited validates the input and builds a replacement for prev, keeping its
// ID so the tracker merges it with the original.
func Edited(prev Activity, in Input, ref Ref) (Activity, error) {
	a, err := build(in, ref)
	if err != nil {
		return Activity{}, err
	}
	a.ID = prev.ID
	return a, nil
}

func build(in Input, ref Ref) (Activity, error) {
	if in.Action == "" {
		return Activity{}, ErrActionRequired
	}
	start, err := date.ParseClock(in.Start, true, ref.Last, ref.Now)
	if err != nil {
		return Activity{}, err
	}
	var end *date.Clock
	if in.End != "" {
		e, err := date.ParseClock(in.End, false, nil, ref.Now)
		if err != nil {
			return Activity{}, err
		}
		if e.Before(start) {
			return Activity{}, ErrEndBeforeStart
		}
		end = &e
	}
	day, err := date.ParseDay(in.Day, ref.Today)
	if err != nil {
		return Activity{}, err
	}
	return Activity{
		Day:    day,
		Start:  start,
		End:    end,
		Action: in.Action,
		Issue:  in.Issue,
	}, nil
}

// EditInput renders an activity back into editor text.
func EditInput(a Activity) Input {
	end := ""
	if a.End != nil {
		end = a.End.String()
	}
	return Input{
		Action: a.Action,
		Issue:  a.Issue,
		Start:  a.Start.String(),
		End:    end,
		Day:    a.Day.String(),
	}
}
