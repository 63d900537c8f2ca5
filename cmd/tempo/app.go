package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tempo/internal/ui"
	"tempo/pkg/activity"
	"tempo/pkg/combo"
	"tempo/pkg/date"
	"tempo/pkg/persist"
	"tempo/pkg/stats"
	"tempo/pkg/tracker"
)

type app struct {
	viewport viewport.Model
	width    int
	height   int
	loaded   bool

	store    *persist.CSV
	tracker  *tracker.Tracker
	cfg      persist.Config
	daysOff  []date.Date
	holidays []date.Date

	editor    editor
	combos    combo.Buffer
	showStats bool
	status    string
}

func newApp(store *persist.CSV, trk *tracker.Tracker, cfg persist.Config, daysOff, holidays []date.Date) *app {
	return &app{
		viewport: viewport.Model{},
		store:    store,
		tracker:  trk,
		cfg:      cfg,
		daysOff:  daysOff,
		holidays: holidays,
	}
}

// Init is the first function that will be called. It returns an optional
// initial command. To not perform an initial command return nil.
func (m app) Init() tea.Cmd {
	return nil
}

// Update is called when a message is received. Use it to inspect messages
// and, in response, update the model and/or send a command.
func (m *app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.loaded = true
	case tea.KeyMsg:
		m.status = ""
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.editor != nil {
			cmd = m.updateEditor(msg)
		} else {
			cmd = m.updateNormal(msg)
		}
	}
	m.render()
	return m, cmd
}

func (m *app) updateNormal(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q":
		return tea.Quit
	case "j":
		m.tracker.SelectNext()
	case "k":
		m.tracker.SelectPrev()
	case "g":
		m.tracker.SelectFirst()
	case "G":
		m.tracker.SelectLast()
	case "o":
		m.editor = newActivityEditor(nil)
	case "e":
		if a, ok := m.tracker.Selected(); ok {
			m.editor = newActivityEditor(&a)
		}
	case "u":
		m.tracker.Undo()
		m.save()
	case "ctrl+r":
		m.tracker.Redo()
		m.save()
	case "p":
		if _, err := m.tracker.Paste(); err != nil {
			m.status = err.Error()
		} else {
			m.save()
		}
	case "s":
		m.showStats = !m.showStats
	case "c":
		m.editor = newConfigEditor(m.cfg)
	case "z":
		m.editor = newDateListEditor(listDaysOff)
	case "Z":
		m.editor = newDateListEditor(listHolidays)
	}
	if c, ok := m.combos.Feed(msg.String()); ok {
		switch c {
		case combo.Delete:
			if _, ok := m.tracker.DeleteSelected(); ok {
				m.save()
			}
		case combo.Yank:
			if a, ok := m.tracker.Yank(); ok {
				// best effort: a yank is still usable in-app when the
				// system clipboard is unavailable
				_ = clipboard.WriteAll(yankText(a))
				m.status = "yanked " + a.Action
			}
		}
	}
	return nil
}

func (m *app) save() {
	if err := m.store.Save(m.tracker.Activities()); err != nil {
		m.status = err.Error()
	}
}

func yankText(a activity.Activity) string {
	end := ""
	if a.End != nil {
		end = a.End.String()
	}
	return fmt.Sprintf("%s %s-%s %s %s", a.Day, a.Start, end, a.Action, a.Issue)
}

func (m *app) render() {
	if !m.loaded {
		return
	}
	bottom := m.bottom()
	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-1-countLines(bottom), 0)

	content, selected := m.rowLines()
	m.viewport.SetContent(strings.Join(content, "\n"))
	m.scrollTo(selected)
}

func (m *app) scrollTo(line int) {
	if line < 0 {
		return
	}
	if line >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.YOffset = line - m.viewport.Height + 1
	}
	if line < m.viewport.YOffset {
		m.viewport.YOffset = line
	}
}

// rowLines flattens the tracker into display lines, newest day first, and
// reports which line is selected (-1 when nothing is).
func (m *app) rowLines() ([]string, int) {
	var (
		lines    []string
		selected = -1
	)
	selDay, selIndex, selOK := m.tracker.SelectedPos()
	totals := stats.PerDay(m.tracker)
	day := 0
	m.tracker.Each(func(d date.Date, acts []activity.Activity) bool {
		total := "running"
		if t := totals[day]; t.Known {
			total = stats.FormatDuration(t.Total)
		}
		day++
		lines = append(lines, ui.DayRow.Render(m.pad(fmt.Sprintf(" %s  %s", d, total))))
		for i, a := range acts {
			style := ui.Row
			if a.End == nil {
				style = ui.Running
			}
			if selOK && selDay.Compare(d) == 0 && selIndex == i {
				style = ui.SelectedRow
				selected = len(lines)
			}
			lines = append(lines, style.Render(m.pad(rowText(m.actionWidth(), a))))
		}
		return true
	})
	if len(lines) == 0 {
		lines = append(lines, ui.StatusBar.Render("no activities yet. press o to log one"))
	}
	return lines, selected
}

func rowText(actionWidth int, a activity.Activity) string {
	end := "     "
	spent := "     "
	if a.End != nil {
		end = a.End.String()
		d, _ := a.Duration()
		spent = stats.FormatDuration(d)
	}
	issue := a.Issue
	if issue != "" {
		issue = "[" + issue + "] "
	}
	return fmt.Sprintf(" %s  %s  %s  %s", clip(issue+a.Action, actionWidth), a.Start, end, spent)
}

func (m *app) header() string {
	return ui.Header.Render(m.pad(fmt.Sprintf(" %s  start  end    spent", clip("action", m.actionWidth()))))
}

func (m *app) actionWidth() int {
	return max(m.width-24, 10)
}

func (m *app) pad(s string) string {
	if n := m.width - lipgloss.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

func clip(s string, width int) string {
	if len(s) > width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}

func (m app) bottom() string {
	switch {
	case m.editor != nil:
		return m.editor.view()
	case m.showStats:
		return m.statsView()
	case m.status != "":
		return ui.ErrorLine.Render(m.status)
	default:
		return ui.StatusBar.Render("j/k move · o new · e edit · dd delete · yy yank · p paste · u undo · ctrl+r redo · s stats · c config · q quit")
	}
}

func (m app) statsView() string {
	s := stats.Compute(m.tracker, m.cfg, m.daysOff, m.holidays)
	line := func(title, value string) string {
		return ui.StatTitle.Render(fmt.Sprintf(" %-16s", title)) + ui.StatValue.Render(value)
	}
	return strings.Join([]string{
		line("total worked", stats.FormatDuration(s.Total)),
		line("average per day", stats.FormatDuration(s.Average)),
		line("overtime", stats.FormatDuration(s.Overtime)),
		line("days off", fmt.Sprintf("%d", s.DaysOff)),
		line("holidays", fmt.Sprintf("%d", s.Holidays)),
	}, "\n")
}

// View renders the program's UI, which is just a string. The view is
// rendered after every Update.
func (m app) View() string {
	if !m.loaded {
		return "loading..."
	}
	return m.header() + "\n" + m.viewport.View() + "\n" + m.bottom()
}

func countLines(s string) int {
	return strings.Count(s, "\n") + 1
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
