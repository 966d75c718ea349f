// Package ui provides an optional read-only terminal task browser.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/talaatharb/taskcheck/internal/config"
	"github.com/talaatharb/taskcheck/internal/taskfile"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	passStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	footerStyle   = lipgloss.NewStyle().Faint(true)
)

// Run starts the task browser for the configured store.
// The browser never writes the store back; it only reloads from disk.
func Run(ctx context.Context, cfg *config.Config) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}

	model := newBrowserModel(cfg.TasksFile)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

type browserModel struct {
	path          string
	loadErr       error
	file          *taskfile.File
	cursor        int
	onlyRemaining bool
	showDetail    bool
}

func newBrowserModel(path string) *browserModel {
	return &browserModel{path: path}
}

func (m *browserModel) Init() tea.Cmd {
	m.refresh()
	return nil
}

func (m *browserModel) refresh() {
	f, err := taskfile.Load(m.path)
	if err != nil {
		m.loadErr = err
		m.file = nil
		return
	}
	m.loadErr = nil
	m.file = f
	m.clampCursor()
}

func (m *browserModel) visible() []taskfile.Task {
	if m.file == nil {
		return nil
	}
	if m.onlyRemaining {
		return m.file.Remaining()
	}
	return m.file.Tasks
}

func (m *browserModel) clampCursor() {
	n := len(m.visible())
	if n == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			m.cursor--
			m.clampCursor()
		case "down", "j":
			m.cursor++
			m.clampCursor()
		case "enter":
			if len(m.visible()) > 0 {
				m.showDetail = true
			}
		case "esc":
			m.showDetail = false
		case "p":
			m.onlyRemaining = !m.onlyRemaining
			m.cursor = 0
			m.showDetail = false
		case "r", "f5":
			m.refresh()
		}
	}
	return m, nil
}

func (m *browserModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Task Browser") + "\n\n")

	if m.loadErr != nil {
		b.WriteString("Error loading task store:\n")
		b.WriteString("  " + m.loadErr.Error() + "\n\n")
		writeFooter(&b)
		return b.String()
	}
	if m.file == nil {
		b.WriteString("Loading...\n\n")
		writeFooter(&b)
		return b.String()
	}

	writeCounts(&b, m.file)

	if m.showDetail {
		if tasks := m.visible(); m.cursor < len(tasks) {
			writeDetail(&b, &tasks[m.cursor])
		}
		writeFooter(&b)
		return b.String()
	}

	writeList(&b, m.visible(), m.cursor, m.onlyRemaining)
	writeFooter(&b)
	return b.String()
}

func writeCounts(b *strings.Builder, f *taskfile.File) {
	c := f.Count()
	b.WriteString(fmt.Sprintf("Total: %d  Passing: %d  Remaining: %d\n\n", c.Total, c.Passing, c.Remaining))
}

func writeList(b *strings.Builder, tasks []taskfile.Task, cursor int, onlyRemaining bool) {
	if onlyRemaining {
		b.WriteString("Remaining tasks (p to show all)\n\n")
	} else {
		b.WriteString("All tasks (p to show remaining only)\n\n")
	}

	if len(tasks) == 0 {
		b.WriteString("  No tasks to show.\n\n")
		return
	}

	for i, t := range tasks {
		line := fmt.Sprintf("  %s %d: %s", passMarker(t), t.ID, t.Title)
		if i == cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")
}

func writeDetail(b *strings.Builder, t *taskfile.Task) {
	b.WriteString(fmt.Sprintf("# %d: %s\n", t.ID, t.Title))
	b.WriteString(fmt.Sprintf("passes: %t\n\n", t.Passes))
	b.WriteString("Description:\n")
	b.WriteString(t.Description + "\n\n")
	b.WriteString("Acceptance criteria (Gherkin):\n")
	b.WriteString(t.AcceptanceCriteria + "\n\n")
}

func passMarker(t taskfile.Task) string {
	if t.Passes {
		return passStyle.Render("✓")
	}
	return failStyle.Render("✗")
}

func writeFooter(b *strings.Builder) {
	b.WriteString(footerStyle.Render("↑/↓ move | enter detail | esc back | p filter | r reload | q quit") + "\n")
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, _ := f.Stat()
	return (info.Mode() & os.ModeCharDevice) != 0
}
