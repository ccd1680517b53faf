package prompt

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// selectModel is a single-choice list driven by the arrow keys.
type selectModel struct {
	prompt    string
	items     []string
	cursor    int
	chosen    bool
	cancelled bool
}

func newSelectModel(prompt string, items []string) selectModel {
	return selectModel{prompt: prompt, items: items}
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc", "q":
		m.cancelled = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = len(m.items) - 1
	case "enter":
		m.chosen = true
		return m, tea.Quit
	}
	return m, nil
}

func (m selectModel) View() string {
	if m.chosen || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("? "+m.prompt) + "\n")
	for i, item := range m.items {
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> "+item) + "\n")
		} else {
			b.WriteString("  " + item + "\n")
		}
	}
	b.WriteString(hintStyle.Render("↑/↓ to move, enter to select, esc to cancel") + "\n")
	return b.String()
}

func runSelector(in io.Reader, out io.Writer, prompt string, items []string) (int, error) {
	program := tea.NewProgram(newSelectModel(prompt, items), tea.WithInput(in), tea.WithOutput(out))
	final, err := program.Run()
	if err != nil {
		return 0, fmt.Errorf("running selector: %w", err)
	}

	m := final.(selectModel)
	if m.cancelled || !m.chosen {
		return 0, ErrCancelled
	}
	fmt.Fprintf(out, "? %s %s\n", m.prompt, cursorStyle.Render(m.items[m.cursor]))
	return m.cursor, nil
}
