package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Gonga3/study-planner/internal/planner"
)

// Study planner theme (CLI + TUI).

const (
	IconPlanner  = "🎓"
	IconCalendar = "📅"
	IconTask     = "📝"
	IconHabit    = "✅"
	IconTarget   = "🎯"
	IconPending  = "⏳"
	IconDone     = "✅"
	IconFire     = "🔥"
	IconBroom    = "🧹"
	IconInfo     = "ℹ️"
	IconWarn     = "⚠️"
	IconError    = "🧨"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)
	ActiveTab   = lipgloss.NewStyle().Bold(true).Foreground(cGold).Underline(true)
	Tab         = lipgloss.NewStyle().Foreground(cMuted)

	CellDone = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	CellOpen = lipgloss.NewStyle().Foreground(cMuted)
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

func PriorityText(p planner.Priority) string {
	switch p {
	case planner.PriorityHigh:
		return Bad.Render("high")
	case planner.PriorityMedium:
		return Warn.Render("medium")
	case planner.PriorityLow:
		return Muted.Render("low")
	default:
		return Muted.Render(string(p))
	}
}

func TaskIcon(completed bool) string {
	if completed {
		return IconDone
	}
	return IconPending
}

// TaskLine renders one task row the way every view lists tasks.
func TaskLine(t planner.Task) string {
	title := t.Title
	if t.Completed {
		title = Muted.Render(title)
	}
	return fmt.Sprintf("%s #%d %s %s %s",
		TaskIcon(t.Completed), t.ID, title,
		Muted.Render(fmt.Sprintf("(%d min)", t.DurationMinutes)),
		PriorityText(t.Priority))
}

// SessionLine renders a class session as "name start - end".
func SessionLine(c planner.ClassSession) string {
	return fmt.Sprintf("%s %s", c.Name, Muted.Render(c.Start+" - "+c.End))
}

// ViceSince is the "since" caption of a negative habit.
func ViceSince(h planner.NegativeHabit) string {
	if h.StartDate == "" {
		return "not started"
	}
	return "since " + h.StartDate
}

// ProgressBar renders value/total as a fixed-width bar.
func ProgressBar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	filled := value * width / total
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
