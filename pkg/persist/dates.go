package persist

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"tempo/pkg/date"
)

// Days off and holidays live next to the activity file, one 2006-01-02 date
// per line.

func DaysOffPath(file string) string  { return file + "-off" }
func HolidaysPath(file string) string { return file + "-holidays" }

func LoadDates(path string) ([]date.Date, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []date.Date
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		if sc.Text() == "" {
			continue
		}
		d, err := date.ParseISO(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("%s: line %d: %w", path, line, err)
		}
		out = append(out, d)
	}
	return out, sc.Err()
}

func SaveDates(path string, dates []date.Date) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	for _, d := range dates {
		fmt.Fprintln(w, d.ISO())
	}
	return w.Flush()
}
