package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Gonga3/study-planner/internal/engine"
	"github.com/Gonga3/study-planner/internal/planner"
	"github.com/Gonga3/study-planner/internal/ui"
)

type tab int

const (
	tabSchedule tab = iota
	tabTasks
	tabHabits
	tabChallenge
	tabCount
)

var tabTitles = [tabCount]string{
	ui.IconCalendar + " Schedule",
	ui.IconTask + " Tasks",
	ui.IconHabit + " Habits",
	ui.IconTarget + " Challenge",
}

type addKind int

const (
	addNone addKind = iota
	addTask
	addHabit
	addVice
)

var addPrompts = map[addKind]string{
	addTask:  "New task: ",
	addHabit: "New habit: ",
	addVice:  "Habit to quit: ",
}

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	tab      tab
	week     planner.Week
	state    planner.State
	tasks    []planner.Task
	selected int

	adding addKind
	input  textinput.Model

	lastLog string
	loading bool
}

type loadedMsg struct {
	state planner.State
	tasks []planner.Task
}

type actionMsg struct {
	log     string
	changed bool
	err     error
}

// habitRow is one line of the habits tab. Positive habits come first.
type habitRow struct {
	name     string
	negative bool
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	input := textinput.New()
	input.CharLimit = 200
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		week:    svc.CurrentWeek(),
		input:   input,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		return loadedMsg{state: m.svc.State(), tasks: m.svc.ListTasks()}
	}
}

func (m boardModel) actionCmd(done string, fn func() (bool, error)) tea.Cmd {
	return func() tea.Msg {
		changed, err := fn()
		return actionMsg{log: done, changed: changed, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.state = msg.state
		m.tasks = msg.tasks
		m.clampSelection()
		return m, nil
	case actionMsg:
		var saveErr *engine.SaveError
		switch {
		case errors.As(msg.err, &saveErr):
			m.lastLog = "Not saved (kept in memory): " + saveErr.Err.Error()
		case msg.err != nil:
			m.lastLog = "Failed: " + msg.err.Error()
		case !msg.changed:
			m.lastLog = "Nothing changed."
		default:
			m.lastLog = fmt.Sprintf("%s at %s.", msg.log, time.Now().Format("15:04:05"))
		}
		return m, m.loadCmd()
	case tea.KeyMsg:
		if m.adding != addNone {
			return m.handleInputKey(msg)
		}
		return m.handleKey(msg)
	}
	if m.adding != addNone {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m boardModel) startAdding(kind addKind) (tea.Model, tea.Cmd) {
	m.adding = kind
	m.input.Prompt = addPrompts[kind]
	m.input.SetValue("")
	return m, m.input.Focus()
}

func (m boardModel) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.adding = addNone
		m.input.Blur()
		return m, nil
	case "enter":
		kind, val := m.adding, strings.TrimSpace(m.input.Value())
		m.adding = addNone
		m.input.Blur()
		if val == "" {
			return m, nil
		}
		return m, m.addAction(kind, val)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// addAction creates the item typed into the input. Tasks get the default
// duration and low priority; the CLI sets both.
func (m boardModel) addAction(kind addKind, val string) tea.Cmd {
	switch kind {
	case addTask:
		return m.actionCmd("Added "+val, func() (bool, error) {
			t, err := m.svc.AddTask(m.ctx, planner.NewTask{
				Title:           val,
				DurationMinutes: planner.DefaultTaskMinutes,
				Priority:        planner.PriorityLow,
			})
			return t != nil, err
		})
	case addHabit:
		return m.actionCmd("Added habit "+val, func() (bool, error) {
			name, err := m.svc.AddHabit(m.ctx, val)
			return name != "", err
		})
	case addVice:
		return m.actionCmd("Tracking "+val, func() (bool, error) {
			name, err := m.svc.AddVice(m.ctx, val)
			return name != "", err
		})
	}
	return nil
}

func (m boardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "tab":
		m.tab = (m.tab + 1) % tabCount
		m.selected = 0
		return m, nil
	case "shift+tab":
		m.tab = (m.tab + tabCount - 1) % tabCount
		m.selected = 0
		return m, nil
	case "r":
		m.loading = true
		m.lastLog = "Refreshing…"
		return m, m.loadCmd()
	case "w":
		if m.week == planner.WeekEven {
			m.week = planner.WeekOdd
		} else {
			m.week = planner.WeekEven
		}
		return m, nil
	case "up", "k":
		m.move(-m.stride())
		return m, nil
	case "down", "j":
		m.move(m.stride())
		return m, nil
	case "left", "h":
		if m.tab == tabChallenge {
			m.move(-1)
		}
		return m, nil
	case "right", "l":
		if m.tab == tabChallenge {
			m.move(1)
		}
		return m, nil
	case "c", " ", "enter":
		return m, m.primaryAction()
	case "d", "x":
		return m, m.deleteAction()
	case "a":
		switch m.tab {
		case tabTasks:
			return m.startAdding(addTask)
		case tabHabits:
			return m.startAdding(addHabit)
		}
	case "v":
		if m.tab == tabHabits {
			return m.startAdding(addVice)
		}
	}
	return m, nil
}

// stride is how far up/down moves: a grid row on the challenge tab.
func (m boardModel) stride() int {
	if m.tab == tabChallenge {
		return 10
	}
	return 1
}

func (m *boardModel) move(delta int) {
	m.selected += delta
	m.clampSelection()
}

func (m *boardModel) clampSelection() {
	n := m.rowCount()
	if m.selected >= n {
		m.selected = n - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m boardModel) rowCount() int {
	switch m.tab {
	case tabTasks:
		return len(m.tasks)
	case tabHabits:
		return len(m.habitRows())
	case tabChallenge:
		return planner.ChallengeDays
	default:
		return 0
	}
}

func (m boardModel) habitRows() []habitRow {
	var rows []habitRow
	for _, name := range m.state.HabitNames() {
		rows = append(rows, habitRow{name: name})
	}
	for _, name := range m.state.ViceNames() {
		rows = append(rows, habitRow{name: name, negative: true})
	}
	return rows
}

func (m boardModel) primaryAction() tea.Cmd {
	switch m.tab {
	case tabTasks:
		if m.selected >= len(m.tasks) {
			return nil
		}
		t := m.tasks[m.selected]
		if t.Completed {
			return nil
		}
		return m.actionCmd(fmt.Sprintf("Completed #%d", t.ID), func() (bool, error) {
			return m.svc.CompleteTask(m.ctx, t.ID)
		})
	case tabHabits:
		rows := m.habitRows()
		if m.selected >= len(rows) {
			return nil
		}
		row := rows[m.selected]
		if row.negative {
			return m.actionCmd("Started over on "+row.name, func() (bool, error) {
				return m.svc.StartOverVice(m.ctx, row.name)
			})
		}
		return m.actionCmd("Marked "+row.name, func() (bool, error) {
			return m.svc.MarkHabitToday(m.ctx, row.name)
		})
	case tabChallenge:
		day := m.selected + 1
		return m.actionCmd(fmt.Sprintf("Toggled day %d", day), func() (bool, error) {
			return m.svc.ToggleDay(m.ctx, day)
		})
	}
	return nil
}

func (m boardModel) deleteAction() tea.Cmd {
	switch m.tab {
	case tabTasks:
		if m.selected >= len(m.tasks) {
			return nil
		}
		id := m.tasks[m.selected].ID
		return m.actionCmd(fmt.Sprintf("Deleted #%d", id), func() (bool, error) {
			return m.svc.DeleteTask(m.ctx, id)
		})
	case tabHabits:
		rows := m.habitRows()
		if m.selected >= len(rows) {
			return nil
		}
		row := rows[m.selected]
		return m.actionCmd("Deleted "+row.name, func() (bool, error) {
			if row.negative {
				return m.svc.DeleteVice(m.ctx, row.name)
			}
			return m.svc.DeleteHabit(m.ctx, row.name)
		})
	}
	return nil
}

func (m boardModel) View() string {
	var b strings.Builder
	b.WriteString(ui.Heading(ui.IconPlanner, "Study planner"))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")
	if m.loading {
		b.WriteString("Loading…\n")
	} else {
		switch m.tab {
		case tabSchedule:
			b.WriteString(m.renderSchedule())
		case tabTasks:
			b.WriteString(m.renderTasks())
		case tabHabits:
			b.WriteString(m.renderHabits())
		case tabChallenge:
			b.WriteString(m.renderChallenge())
		}
	}
	b.WriteString("\n")
	if m.adding != addNone {
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(ui.Muted.Render("enter: save · esc: cancel"))
		b.WriteString("\n")
		b.WriteString(m.lastLog)
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(ui.Muted.Render(m.helpLine()))
	b.WriteString("\n")
	b.WriteString(m.lastLog)
	b.WriteString("\n")
	return b.String()
}

func (m boardModel) renderTabs() string {
	parts := make([]string, tabCount)
	for i, title := range tabTitles {
		if tab(i) == m.tab {
			parts[i] = ui.ActiveTab.Render(title)
		} else {
			parts[i] = ui.Tab.Render(title)
		}
	}
	return strings.Join(parts, "   ")
}

func (m boardModel) renderSchedule() string {
	lines := []string{ui.H2.Render(fmt.Sprintf("%s week", m.week))}
	sched := m.state.Schedule(m.week)
	for _, day := range planner.Weekdays {
		lines = append(lines, ui.Key.Render(string(day)))
		classes := planner.ListDay(sched, day)
		if len(classes) == 0 {
			lines = append(lines, "  "+ui.Muted.Render("no classes"))
			continue
		}
		for _, c := range classes {
			lines = append(lines, "  "+ui.SessionLine(c))
		}
	}
	return strings.Join(lines, "\n") + "\n"
}

func (m boardModel) renderTasks() string {
	if len(m.tasks) == 0 {
		return ui.Muted.Render("(no tasks, press a to add one)") + "\n"
	}
	lines := make([]string, 0, len(m.tasks))
	for i, t := range m.tasks {
		lines = append(lines, cursor(i == m.selected)+ui.TaskLine(t))
	}
	return strings.Join(lines, "\n") + "\n"
}

func (m boardModel) renderHabits() string {
	rows := m.habitRows()
	if len(rows) == 0 {
		return ui.Muted.Render("(no habits)") + "\n"
	}
	var lines []string
	for i, row := range rows {
		if i == 0 && !row.negative {
			lines = append(lines, ui.H2.Render("Building"))
		}
		if row.negative && (i == 0 || !rows[i-1].negative) {
			lines = append(lines, ui.H2.Render("Quitting"))
		}
		var detail string
		if row.negative {
			h := m.state.NegativeHabits[row.name]
			detail = ui.Muted.Render(fmt.Sprintf("%d days clean, %s", h.DaysSober, ui.ViceSince(h)))
		} else {
			detail = ui.Gold.Render(fmt.Sprintf("%s %d", ui.IconFire, m.state.PositiveHabits[row.name].Streak))
		}
		lines = append(lines, cursor(i == m.selected)+row.name+" "+detail)
	}
	return strings.Join(lines, "\n") + "\n"
}

func (m boardModel) renderChallenge() string {
	grid := m.state.Challenge
	var lines []string
	for _, row := range grid.Rows() {
		cells := make([]string, len(row))
		for i, n := range row {
			label := fmt.Sprintf("%3d", n)
			switch {
			case n-1 == m.selected:
				cells[i] = ui.SelectedRow.Render(label)
			case grid.Done(n):
				cells[i] = ui.CellDone.Render(label)
			default:
				cells[i] = ui.CellOpen.Render(label)
			}
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	s := grid.Summary()
	lines = append(lines, "", fmt.Sprintf("%d of %d days (%.1f%%) %s", s.Completed, planner.ChallengeDays, s.Percentage, ui.ProgressBar(s.Completed, planner.ChallengeDays, 30)))
	return strings.Join(lines, "\n") + "\n"
}

func (m boardModel) helpLine() string {
	keys := []string{"tab: switch", "q: quit", "r: refresh"}
	switch m.tab {
	case tabSchedule:
		keys = append(keys, "w: even/odd week")
	case tabTasks:
		keys = append(keys, "j/k: move", "a: add", "c: complete", "d: delete")
	case tabHabits:
		keys = append(keys, "j/k: move", "a: add habit", "v: add habit to quit", "c: mark today / start over", "d: delete")
	case tabChallenge:
		keys = append(keys, "arrows: move", "c: toggle day")
	}
	return strings.Join(keys, " · ")
}

func cursor(selected bool) string {
	if selected {
		return "> "
	}
	return "  "
}
