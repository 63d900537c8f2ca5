package activity

import (
	"bytes"
	"strings"
	"time"

	"github.com/google/uuid"

	"tempo/pkg/date"
)

// ID identifies one logical activity for the whole session. It survives
// edits: submitting an edited copy under the same ID replaces the original.
type ID = uuid.UUID

func NewID() ID {
	return uuid.New()
}

// Activity is one logged unit of work. A nil End means it is still running.
type Activity struct {
	ID     ID
	Day    date.Date
	Start  date.Clock
	End    *date.Clock
	Action string
	Issue  string
}

// Compare implements the total order used for storage: day, start time,
// end time (still-running first), action, issue, and finally the ID so no
// two distinct activities ever compare equal.
func (a Activity) Compare(b Activity) int {
	if c := a.Day.Compare(b.Day); c != 0 {
		return c
	}
	if c := a.Start.Compare(b.Start); c != 0 {
		return c
	}
	if c := compareEnd(a.End, b.End); c != 0 {
		return c
	}
	if c := strings.Compare(a.Action, b.Action); c != 0 {
		return c
	}
	if c := strings.Compare(a.Issue, b.Issue); c != 0 {
		return c
	}
	return bytes.Compare(a.ID[:], b.ID[:])
}

func (a Activity) Less(b Activity) bool { return a.Compare(b) < 0 }

// Duration reports the time spent, or false while the activity is running.
func (a Activity) Duration() (time.Duration, bool) {
	if a.End == nil {
		return 0, false
	}
	return a.End.Sub(a.Start), true
}

func compareEnd(a, b *date.Clock) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	default:
		return a.Compare(*b)
	}
}
