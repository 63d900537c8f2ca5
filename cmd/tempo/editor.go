package main

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tempo/internal/ui"
	"tempo/pkg/activity"
	"tempo/pkg/date"
	"tempo/pkg/persist"
)

// editor is the modal pop-up at the bottom of the screen. The variant set
// is closed: activity, config, and date-list editing, nothing else.
type editor interface {
	view() string
}

type activityEditor struct {
	form
	prev *activity.Activity
}

type configEditor struct {
	form
}

type dateList int

const (
	listDaysOff dateList = iota
	listHolidays
)

type dateListEditor struct {
	form
	target dateList
}

func newActivityEditor(prev *activity.Activity) *activityEditor {
	title := "new activity"
	values := make([]string, 5)
	focus := 0
	if prev != nil {
		title = "edit activity"
		in := activity.EditInput(*prev)
		values = []string{in.Issue, in.Action, in.Start, in.End, in.Day}
		focus = 1
	}
	return &activityEditor{
		form: newForm(title, []string{"issue", "action", "start time", "end time", "day"}, values, focus),
		prev: prev,
	}
}

func newConfigEditor(cfg persist.Config) *configEditor {
	values := []string{
		strconv.FormatFloat(cfg.WorkDayHours, 'f', -1, 64),
		strconv.FormatBool(cfg.FreeHolidays),
	}
	return &configEditor{
		form: newForm("config", []string{"workday hours", "free holidays"}, values, 0),
	}
}

func (e *configEditor) parse() (persist.Config, error) {
	hours, err := strconv.ParseFloat(strings.TrimSpace(e.value(0)), 64)
	if err != nil {
		return persist.Config{}, errors.New("please provide a number")
	}
	if hours < 0 {
		return persist.Config{}, errors.New("work hours need to be a positive number")
	}
	free, err := strconv.ParseBool(strings.TrimSpace(e.value(1)))
	if err != nil {
		return persist.Config{}, errors.New("free holidays needs to be a boolean")
	}
	return persist.Config{WorkDayHours: hours, FreeHolidays: free}, nil
}

func newDateListEditor(target dateList) *dateListEditor {
	title := "toggle day off"
	if target == listHolidays {
		title = "toggle holiday"
	}
	return &dateListEditor{
		form:   newForm(title, []string{"day"}, []string{""}, 0),
		target: target,
	}
}

// updateEditor routes keys while a pop-up is open. Insert mode types into
// the focused field; otherwise j/k move between fields, i re-enters insert
// mode, enter submits and esc abandons the pending edit.
func (m *app) updateEditor(msg tea.KeyMsg) tea.Cmd {
	f := m.editorForm()
	if f.inserting {
		switch msg.Type {
		case tea.KeyTab:
			f.next()
		case tea.KeyShiftTab:
			f.prev()
		case tea.KeyEsc:
			f.stopInserting()
		default:
			return f.typeInto(msg)
		}
		return nil
	}
	switch {
	case msg.Type == tea.KeyEsc:
		m.editor = nil
	case msg.Type == tea.KeyEnter:
		m.submitEditor()
	case msg.String() == "i":
		f.startInserting()
	case msg.String() == "j":
		f.next()
	case msg.String() == "k":
		f.prev()
	case msg.String() == "q":
		m.editor = nil
	}
	return nil
}

func (m *app) editorForm() *form {
	switch ed := m.editor.(type) {
	case *activityEditor:
		return &ed.form
	case *configEditor:
		return &ed.form
	case *dateListEditor:
		return &ed.form
	}
	panic("tempo: unknown editor variant")
}

// submitEditor validates the pop-up and applies it. Validation failures
// stay inside the editor so the user can correct them; nothing is mutated
// until validation passed.
func (m *app) submitEditor() {
	switch ed := m.editor.(type) {
	case *activityEditor:
		in := activity.Input{
			Issue:  ed.value(0),
			Action: ed.value(1),
			Start:  ed.value(2),
			End:    ed.value(3),
			Day:    ed.value(4),
		}
		ref := activity.Ref{Today: date.Today(), Now: date.ClockNow(), Last: m.tracker.LastEnd()}
		var (
			a   activity.Activity
			err error
		)
		if ed.prev != nil {
			a, err = activity.Edited(*ed.prev, in, ref)
		} else {
			a, err = activity.New(in, ref)
		}
		if err != nil {
			ed.err = err.Error()
			return
		}
		m.tracker.Submit(a)
		m.editor = nil
		m.save()
	case *configEditor:
		cfg, err := ed.parse()
		if err != nil {
			ed.err = err.Error()
			return
		}
		m.cfg = cfg
		if err := persist.SaveConfig(persist.ConfigPath(m.store.Path()), cfg); err != nil {
			m.status = err.Error()
		}
		m.editor = nil
	case *dateListEditor:
		d, err := date.ParseDay(ed.value(0), date.Today())
		if err != nil {
			ed.err = err.Error()
			return
		}
		var path string
		switch ed.target {
		case listDaysOff:
			m.daysOff = toggleDate(m.daysOff, d)
			path = persist.DaysOffPath(m.store.Path())
			err = persist.SaveDates(path, m.daysOff)
		case listHolidays:
			m.holidays = toggleDate(m.holidays, d)
			path = persist.HolidaysPath(m.store.Path())
			err = persist.SaveDates(path, m.holidays)
		}
		if err != nil {
			m.status = err.Error()
		}
		m.editor = nil
	}
}

// toggleDate adds d to ds, or removes it when already present, keeping the
// list sorted.
func toggleDate(ds []date.Date, d date.Date) []date.Date {
	for i, e := range ds {
		if e.Compare(d) == 0 {
			return append(ds[:i], ds[i+1:]...)
		}
	}
	ds = append(ds, d)
	sort.Slice(ds, func(i, j int) bool { return ds[i].Before(ds[j]) })
	return ds
}

// form is the field handling shared by every editor variant.
type form struct {
	title     string
	labels    []string
	inputs    []textinput.Model
	focus     int
	inserting bool
	err       string
}

func newForm(title string, labels, values []string, focus int) form {
	inputs := make([]textinput.Model, len(labels))
	for i := range labels {
		in := textinput.NewModel()
		in.Prompt = ""
		in.Width = 40
		in.SetValue(values[i])
		inputs[i] = in
	}
	f := form{
		title:     title,
		labels:    labels,
		inputs:    inputs,
		focus:     focus,
		inserting: true,
	}
	f.inputs[focus].Focus()
	return f
}

func (f *form) value(i int) string { return f.inputs[i].Value() }

func (f *form) next() { f.setFocus((f.focus + 1) % len(f.inputs)) }

func (f *form) prev() { f.setFocus((f.focus - 1 + len(f.inputs)) % len(f.inputs)) }

func (f *form) setFocus(i int) {
	f.inputs[f.focus].Blur()
	f.focus = i
	if f.inserting {
		f.inputs[i].Focus()
	}
}

func (f *form) startInserting() {
	f.inserting = true
	f.inputs[f.focus].Focus()
}

func (f *form) stopInserting() {
	f.inserting = false
	f.inputs[f.focus].Blur()
}

func (f *form) typeInto(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f form) view() string {
	out := []string{ui.StatusBar.Render(" " + f.title)}
	for i := range f.inputs {
		style := ui.FieldTitle
		if i == f.focus {
			style = ui.FieldChosen
			if f.inserting {
				style = ui.FieldFocused
			}
		}
		out = append(out, style.Render(fmt.Sprintf(" %-14s", f.labels[i]))+f.inputs[i].View())
	}
	if f.err != "" {
		out = append(out, ui.ErrorLine.Render(" "+f.err))
	}
	out = append(out, ui.StatusBar.Render(" i insert · tab or j/k fields · enter submit · esc cancel"))
	return strings.Join(out, "\n")
}
