package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"tempo/pkg/date"
	"tempo/pkg/persist"
	"tempo/pkg/stats"
	"tempo/pkg/tracker"
)

var filePath string

func main() {
	root := &cobra.Command{
		Use:           "tempo",
		Short:         "Terminal activity tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI()
		},
	}
	root.PersistentFlags().StringVarP(&filePath, "file", "f", "./activities.csv", "path to the activity file")

	root.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Print aggregate statistics and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats()
		},
	})

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runTUI() error {
	store, trk, cfg, daysOff, holidays, err := load()
	if err != nil {
		return err
	}

	a := newApp(store, trk, cfg, daysOff, holidays)
	p := tea.NewProgram(a)
	p.EnterAltScreen()
	defer p.ExitAltScreen()

	if err := p.Start(); err != nil {
		return err
	}

	// Last chance save. The in-memory records stay the source of truth: if
	// the file cannot be written, dump them to stderr so nothing is lost.
	if err := store.Save(a.tracker.Activities()); err != nil {
		fmt.Fprintf(os.Stderr, "fatal error writing file %q: %v\n", store.Path(), err)
		if err := persist.Write(os.Stderr, a.tracker.Activities()); err != nil {
			fmt.Fprintf(os.Stderr, "failed to serialize activities: %v\n", err)
		}
		return err
	}
	return nil
}

func runStats() error {
	_, trk, cfg, daysOff, holidays, err := load()
	if err != nil {
		return err
	}
	s := stats.Compute(trk, cfg, daysOff, holidays)
	fmt.Printf("total worked    %s\n", stats.FormatDuration(s.Total))
	fmt.Printf("average per day %s\n", stats.FormatDuration(s.Average))
	fmt.Printf("overtime        %s\n", stats.FormatDuration(s.Overtime))
	fmt.Printf("days worked     %d\n", s.DaysWorked)
	fmt.Printf("days off        %d\n", s.DaysOff)
	fmt.Printf("holidays        %d\n", s.Holidays)
	return nil
}

func load() (*persist.CSV, *tracker.Tracker, persist.Config, []date.Date, []date.Date, error) {
	store := persist.InCSV(filePath)
	records, err := store.Load()
	if err != nil {
		return nil, nil, persist.Config{}, nil, nil, err
	}
	daysOff, err := persist.LoadDates(persist.DaysOffPath(filePath))
	if err != nil {
		return nil, nil, persist.Config{}, nil, nil, err
	}
	holidays, err := persist.LoadDates(persist.HolidaysPath(filePath))
	if err != nil {
		return nil, nil, persist.Config{}, nil, nil, err
	}
	cfg, err := persist.LoadConfig(persist.ConfigPath(filePath))
	if err != nil {
		return nil, nil, persist.Config{}, nil, nil, err
	}
	return store, tracker.New(records), cfg, daysOff, holidays, nil
}
