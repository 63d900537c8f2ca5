package persist

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"tempo/pkg/activity"
	"tempo/pkg/date"
)

// CSV reads and writes the activity file: one record per line, with a
// header, days as 2006-01-02 and times as 15:04. End time and issue may be
// blank.
type CSV struct {
	file string
}

func InCSV(file string) *CSV {
	return &CSV{file: file}
}

func (c CSV) Path() string { return c.file }

var header = []string{"day", "start_time", "end_time", "action", "issue"}

// Load reads every record in the file. A missing file is an empty tracker,
// not an error.
func (c CSV) Load() ([]activity.Activity, error) {
	f, err := os.Open(c.file)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return read(f)
}

// Save writes the records sorted ascending by day so the file stays stable
// and diffable. The in-memory state is the source of truth: a failed save
// leaves it untouched and the caller decides what to do with the error.
func (c CSV) Save(records []activity.Activity) error {
	f, err := os.OpenFile(c.file, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()
	return Write(f, records)
}

// Write serializes records to w in the file format. It is split from Save
// so a failed save can fall back to dumping the same bytes elsewhere.
func Write(w io.Writer, records []activity.Activity) error {
	sorted := make([]activity.Activity, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, a := range sorted {
		end := ""
		if a.End != nil {
			end = a.End.String()
		}
		row := []string{a.Day.ISO(), a.Start.String(), end, a.Action, a.Issue}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func read(r io.Reader) ([]activity.Activity, error) {
	cr := csv.NewReader(r)
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	var out []activity.Activity
	for i, row := range rows {
		if i == 0 {
			// header
			continue
		}
		a, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("activity file: line %d: %w", i+1, err)
		}
		out = append(out, a)
	}
	return out, nil
}

func parseRow(row []string) (activity.Activity, error) {
	if len(row) != len(header) {
		return activity.Activity{}, fmt.Errorf("expected %d fields, got %d", len(header), len(row))
	}
	day, err := date.ParseISO(row[0])
	if err != nil {
		return activity.Activity{}, err
	}
	start, err := date.ParseClockISO(row[1])
	if err != nil {
		return activity.Activity{}, err
	}
	var end *date.Clock
	if row[2] != "" {
		e, err := date.ParseClockISO(row[2])
		if err != nil {
			return activity.Activity{}, err
		}
		end = &e
	}
	return activity.Activity{
		ID:     activity.NewID(),
		Day:    day,
		Start:  start,
		End:    end,
		Action: row[3],
		Issue:  row[4],
	}, nil
}
