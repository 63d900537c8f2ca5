package ui

import "github.com/charmbracelet/lipgloss"

const (
	Background = lipgloss.Color("#000")

	Primary   = lipgloss.Color("#fff")
	Secondary = lipgloss.Color("#888")
	Faded     = lipgloss.Color("#555")

	Blue   = lipgloss.Color("#4db7ff")
	Green  = lipgloss.Color("#00a352")
	Red    = lipgloss.Color("#c42912")
	Yellow = lipgloss.Color("#c4b810")
)

var (
	Header = lipgloss.NewStyle().Foreground(Secondary).Bold(true)

	DayRow      = lipgloss.NewStyle().Foreground(Background).Background(Blue).Bold(true)
	Row         = lipgloss.NewStyle().Foreground(Primary)
	SelectedRow = lipgloss.NewStyle().Foreground(Background).Background(Green).Bold(true)
	Running     = lipgloss.NewStyle().Foreground(Yellow)

	FieldTitle   = lipgloss.NewStyle().Foreground(Secondary)
	FieldFocused = lipgloss.NewStyle().Foreground(Yellow)
	FieldChosen  = lipgloss.NewStyle().Foreground(Blue)

	ErrorLine = lipgloss.NewStyle().Foreground(Red)
	StatusBar = lipgloss.NewStyle().Foreground(Faded)
	StatTitle = lipgloss.NewStyle().Foreground(Secondary)
	StatValue = lipgloss.NewStyle().Foreground(Blue).Bold(true)
)
