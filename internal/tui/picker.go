package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/firefly-engineering/sshconf/internal/sshconfig"
)

// Action represents the action to take after picker selection
type Action int

const (
	ActionNone Action = iota
	ActionShow
	ActionEdit
	ActionQuit
)

// PickerResult holds the result of the picker
type PickerResult struct {
	Action Action
	Entry  *sshconfig.Entry
}

// hostItem implements list.Item for host display
type hostItem struct {
	entry *sshconfig.Entry
	// shadowed is set on every block after the first with the same name;
	// lookups by name never reach it.
	shadowed bool
}

func (i hostItem) Title() string {
	return i.entry.Hostname
}

func (i hostItem) Description() string {
	hostName, ok := i.entry.Lookup(sshconfig.KindHostName)
	if !ok {
		hostName = "-"
	}
	port, ok := i.entry.Lookup(sshconfig.KindPort)
	if !ok {
		port = "-"
	}

	statusIcon := "●"
	if i.shadowed {
		statusIcon = "○"
	}

	desc := fmt.Sprintf("%s %s | port %s | %d directives",
		statusIcon,
		truncate(hostName, 40),
		port,
		len(i.entry.Statements),
	)
	if i.shadowed {
		desc += " | shadowed"
	}
	return desc
}

func (i hostItem) FilterValue() string {
	return i.entry.Hostname
}

// truncate shortens s to at most maxLen runes.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)
)

// Model is the bubbletea model for the host picker
type Model struct {
	list     list.Model
	result   PickerResult
	quitting bool
	width    int
	height   int
}

func newItems(entries []*sshconfig.Entry) []list.Item {
	seen := make(map[string]bool, len(entries))
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = hostItem{entry: e, shadowed: seen[e.Hostname]}
		seen[e.Hostname] = true
	}
	return items
}

// NewPicker creates a new host picker
func NewPicker(entries []*sshconfig.Entry, title string) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = selectedStyle
	delegate.Styles.SelectedDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	l := list.New(newItems(entries), delegate, 80, 20)
	l.Title = title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle

	return Model{
		list: l,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		// Don't handle keys if filtering
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(hostItem); ok {
				m.result = PickerResult{
					Action: ActionShow,
					Entry:  item.entry,
				}
				m.quitting = true
				return m, tea.Quit
			}

		case "e":
			if item, ok := m.list.SelectedItem().(hostItem); ok {
				m.result = PickerResult{
					Action: ActionEdit,
					Entry:  item.entry,
				}
				m.quitting = true
				return m, tea.Quit
			}

		case "q", "esc":
			m.result = PickerResult{Action: ActionQuit}
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	help := helpStyle.Render("[enter] Show  [e] Edit command  [/] Filter  [q] Quit")

	return m.list.View() + "\n" + help
}

// Result returns the picker result
func (m Model) Result() PickerResult {
	return m.result
}

// RunPicker runs the interactive host picker
func RunPicker(entries []*sshconfig.Entry, title string) (PickerResult, error) {
	if len(entries) == 0 {
		return PickerResult{Action: ActionNone}, nil
	}

	m := NewPicker(entries, title)
	p := tea.NewProgram(m, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return PickerResult{}, err
	}

	return finalModel.(Model).Result(), nil
}

// SimpleList is the non-interactive fallback that lists hosts as text
func SimpleList(entries []*sshconfig.Entry, title string) string {
	var sb strings.Builder

	sb.WriteString(title + "\n")
	sb.WriteString(strings.Repeat("─", 60) + "\n\n")

	if len(entries) == 0 {
		sb.WriteString("No Host blocks found.\n")
		return sb.String()
	}

	for i, item := range newItems(entries) {
		h := item.(hostItem)
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, h.Title()))
		sb.WriteString(fmt.Sprintf("   %s\n\n", h.Description()))
	}

	return sb.String()
}
