// Package ui provides the optional interactive terminal interface.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/nibzard/tasker/internal/store"
	"github.com/nibzard/tasker/internal/task"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4db7ff"))
	fadedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#555"))
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888"))
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4db7ff"))
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#555")).Strikethrough(true)
	markStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00a352"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#c42912"))
)

// taskFilter restricts which tasks the list shows.
type taskFilter int

const (
	filterAll taskFilter = iota
	filterOpen
	filterDone
)

func (f taskFilter) String() string {
	switch f {
	case filterOpen:
		return "open"
	case filterDone:
		return "done"
	default:
		return "all"
	}
}

// Run starts the interactive session against the given store. It requires
// a terminal on stdout. Every mutation goes through the same synchronous
// load-mutate-save cycle the CLI handlers use.
func Run(ctx context.Context, st *store.Store, logger *log.Logger) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}

	model := newTUIModel(st, logger)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	finalModel, err := program.Run()
	if err != nil {
		return err
	}
	if m, ok := finalModel.(*tuiModel); ok && m.ioErr != nil {
		return m.ioErr
	}
	return nil
}

type tuiModel struct {
	st     *store.Store
	logger *log.Logger

	list    task.List
	loadErr error
	ioErr   error

	cursor   int
	filter   taskFilter
	input    textinput.Model
	adding   bool
	showHelp bool
	status   string
	width    int

	tickInterval time.Duration
}

type tickMsg time.Time

func newTUIModel(st *store.Store, logger *log.Logger) *tuiModel {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "task description"
	input.CharLimit = 200
	input.Width = 50

	return &tuiModel{
		st:           st,
		logger:       logger,
		input:        input,
		tickInterval: time.Second,
	}
}

func (m *tuiModel) Init() tea.Cmd {
	m.refresh()
	return tea.Batch(textinput.Blink, tickCmd(m.tickInterval))
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.adding {
		return m.updateAdding(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			m.moveCursor(-1)
			return m, nil
		case "down", "j":
			m.moveCursor(1)
			return m, nil
		case "a":
			m.adding = true
			m.status = ""
			return m, m.input.Focus()
		case "c", "enter", " ":
			m.completeSelected()
			return m, nil
		case "d", "x":
			m.deleteSelected()
			return m, nil
		case "1":
			m.setFilter(filterOpen)
			return m, nil
		case "2":
			m.setFilter(filterDone)
			return m, nil
		case "0":
			m.setFilter(filterAll)
			return m, nil
		case "r", "f5":
			m.refresh()
			m.status = "Reloaded"
			return m, nil
		case "h", "?":
			m.showHelp = !m.showHelp
			return m, nil
		}
	case tickMsg:
		m.refresh()
		return m, tickCmd(m.tickInterval)
	}

	return m, nil
}

// updateAdding handles messages while the add prompt is focused.
func (m *tuiModel) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		// Keep ticking, but leave the list alone while typing.
		return m, tickCmd(m.tickInterval)
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.adding = false
			m.input.Reset()
			m.input.Blur()
			return m, nil
		case "enter":
			m.commitAdd()
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *tuiModel) View() string {
	var b strings.Builder
	m.writeTitle(&b)

	if m.showHelp {
		writeHelp(&b)
		m.writeFooter(&b)
		return b.String()
	}

	if m.loadErr != nil {
		b.WriteString(errorStyle.Render("Error loading tasks file:") + "\n")
		b.WriteString("  " + m.loadErr.Error() + "\n\n")
		m.writeFooter(&b)
		return b.String()
	}

	m.writeSummary(&b)
	m.writeTasks(&b)

	if m.adding {
		b.WriteString("\nNew task " + m.input.View() + "\n")
	}

	if m.status != "" {
		b.WriteString("\n" + subtleStyle.Render(m.status) + "\n")
	}

	m.writeFooter(&b)
	return b.String()
}

func (m *tuiModel) writeTitle(b *strings.Builder) {
	b.WriteString(titleStyle.Render("tasker"))
	b.WriteString("  ")
	b.WriteString(fadedStyle.Render(m.st.Path()))
	b.WriteString("\n\n")
}

func (m *tuiModel) writeSummary(b *strings.Builder) {
	open, done := m.list.Counts()
	summary := fmt.Sprintf("%d open ∙ %d done", open, done)
	if m.filter != filterAll {
		summary += fmt.Sprintf("  [filter: %s, 0 to clear]", m.filter)
	}
	b.WriteString(subtleStyle.Render(summary) + "\n\n")
}

func (m *tuiModel) writeTasks(b *strings.Builder) {
	visible := m.visible()
	if len(visible) == 0 {
		b.WriteString(fadedStyle.Render("  No tasks found.") + "\n")
		return
	}

	for pos, idx := range visible {
		t := m.list[idx]

		prefix := "  "
		if pos == m.cursor {
			prefix = cursorStyle.Render("❯ ")
		}

		mark := t.Mark()
		if t.Completed {
			mark = markStyle.Render(mark)
		}

		text := t.Text
		if max := m.maxTextWidth(); len(text) > max {
			text = text[:max-3] + "..."
		}
		if t.Completed {
			text = doneStyle.Render(text)
		}

		line := fmt.Sprintf("%s%s [%s] %s %s",
			prefix,
			subtleStyle.Render(fmt.Sprintf("#%d", t.ID)),
			mark,
			text,
			fadedStyle.Render("("+t.CreatedStamp()+")"),
		)
		b.WriteString(line + "\n")
	}
}

func (m *tuiModel) writeFooter(b *strings.Builder) {
	b.WriteString("\n")
	b.WriteString(fadedStyle.Render("a add ∙ c complete ∙ d delete ∙ 1/2/0 filter ∙ h help ∙ q quit"))
	b.WriteString("\n")
}

func writeHelp(b *strings.Builder) {
	b.WriteString("Keyboard Shortcuts\n\n")
	b.WriteString("  q, ctrl+c    Quit\n")
	b.WriteString("  j/k, arrows  Move cursor\n")
	b.WriteString("  a            Add a task (enter to confirm, esc to cancel)\n")
	b.WriteString("  c, enter     Complete the selected task\n")
	b.WriteString("  d, x         Delete the selected task\n")
	b.WriteString("  1            Show only open tasks\n")
	b.WriteString("  2            Show only completed tasks\n")
	b.WriteString("  0            Clear filter\n")
	b.WriteString("  r, F5        Reload from disk\n")
	b.WriteString("  h, ?         Toggle this help screen\n")
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// visible returns the indexes into m.list that pass the current filter.
func (m *tuiModel) visible() []int {
	idxs := make([]int, 0, len(m.list))
	for i, t := range m.list {
		switch m.filter {
		case filterOpen:
			if t.Completed {
				continue
			}
		case filterDone:
			if !t.Completed {
				continue
			}
		}
		idxs = append(idxs, i)
	}
	return idxs
}

func (m *tuiModel) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

func (m *tuiModel) clampCursor() {
	visible := m.visible()
	if len(visible) == 0 {
		m.cursor = 0
		return
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(visible) {
		m.cursor = len(visible) - 1
	}
}

func (m *tuiModel) setFilter(f taskFilter) {
	m.filter = f
	m.cursor = 0
	m.status = ""
}

// selectedID returns the id of the task under the cursor.
func (m *tuiModel) selectedID() (int, bool) {
	visible := m.visible()
	if len(visible) == 0 || m.cursor >= len(visible) {
		return 0, false
	}
	return m.list[visible[m.cursor]].ID, true
}

func (m *tuiModel) maxTextWidth() int {
	if m.width > 30 {
		return m.width - 24
	}
	return 60
}

// refresh reloads the list from disk.
func (m *tuiModel) refresh() {
	list, err := m.st.Load()
	if err != nil {
		m.loadErr = err
		return
	}
	m.loadErr = nil
	m.list = list
	m.clampCursor()
}

func (m *tuiModel) commitAdd() {
	text := strings.TrimSpace(m.input.Value())
	m.adding = false
	m.input.Reset()
	m.input.Blur()
	if text == "" {
		return
	}

	list, err := m.st.Load()
	if err != nil {
		m.fail("load tasks", err)
		return
	}
	t := list.Add(text)
	if err := m.st.Save(list); err != nil {
		m.fail("save tasks", err)
		return
	}
	m.status = fmt.Sprintf("Added task #%d", t.ID)
	m.refresh()
}

func (m *tuiModel) completeSelected() {
	id, ok := m.selectedID()
	if !ok {
		return
	}

	list, err := m.st.Load()
	if err != nil {
		m.fail("load tasks", err)
		return
	}
	if err := list.Complete(id); err != nil {
		m.status = fmt.Sprintf("Task #%d not found", id)
		m.refresh()
		return
	}
	if err := m.st.Save(list); err != nil {
		m.fail("save tasks", err)
		return
	}
	m.status = fmt.Sprintf("Marked task #%d as complete", id)
	m.refresh()
}

func (m *tuiModel) deleteSelected() {
	id, ok := m.selectedID()
	if !ok {
		return
	}

	list, err := m.st.Load()
	if err != nil {
		m.fail("load tasks", err)
		return
	}
	if err := list.Delete(id); err != nil {
		m.status = fmt.Sprintf("Task #%d not found", id)
		m.refresh()
		return
	}
	if err := m.st.Save(list); err != nil {
		m.fail("save tasks", err)
		return
	}
	m.status = fmt.Sprintf("Deleted task #%d", id)
	m.refresh()
}

// fail records a failed store operation and surfaces it in the status line.
func (m *tuiModel) fail(op string, err error) {
	m.ioErr = fmt.Errorf("%s: %w", op, err)
	m.status = errorStyle.Render(fmt.Sprintf("%s: %v", op, err))
	m.logger.Error(op, "err", err)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
