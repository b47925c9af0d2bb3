package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pdfmerge.dev/pdfmerge/internal/errors"
)

type selectKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Toggle   key.Binding
	MoveUp   key.Binding
	MoveDown key.Binding
	Confirm  key.Binding
	Cancel   key.Binding
}

func (k selectKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.MoveUp, k.MoveDown, k.Confirm, k.Cancel}
}

func (k selectKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Toggle},
		{k.MoveUp, k.MoveDown},
		{k.Confirm, k.Cancel},
	}
}

var defaultSelectKeys = selectKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "toggle"),
	),
	MoveUp: key.NewBinding(
		key.WithKeys("shift+up", "K"),
		key.WithHelp("K", "earlier"),
	),
	MoveDown: key.NewBinding(
		key.WithKeys("shift+down", "J"),
		key.WithHelp("J", "later"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "merge"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("ctrl+c", "q", "esc"),
		key.WithHelp("q/esc", "cancel"),
	),
}

// selectModel is the bubbletea model for picking files and their merge order.
// The order files are toggled in is the order their pages appear in the
// output; K/J move a file earlier or later within that order.
type selectModel struct {
	files     []string
	order     []int // indices into files, in merge order
	cursor    int
	confirmed bool
	canceled  bool
	styles    selectStyles
	keys      selectKeyMap
	help      help.Model
}

type selectStyles struct {
	title    lipgloss.Style
	cursor   lipgloss.Style
	selected lipgloss.Style
	badge    lipgloss.Style
	dim      lipgloss.Style
	file     lipgloss.Style
}

func newSelectStyles() selectStyles {
	return selectStyles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginBottom(1),
		cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
		selected: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		badge:    lipgloss.NewStyle().Foreground(lipgloss.Color("76")).Bold(true),
		dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		file:     lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	}
}

func newSelectModel(files []string) selectModel {
	return selectModel{
		files:  files,
		cursor: 0,
		styles: newSelectStyles(),
		keys:   defaultSelectKeys,
		help:   help.New(),
	}
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

// orderPos returns the merge-order position of a file index, or -1
func (m selectModel) orderPos(fileIdx int) int {
	for pos, idx := range m.order {
		if idx == fileIdx {
			return pos
		}
	}
	return -1
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.canceled = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.files)-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Toggle):
			if pos := m.orderPos(m.cursor); pos >= 0 {
				m.order = append(m.order[:pos], m.order[pos+1:]...)
			} else {
				m.order = append(m.order, m.cursor)
			}

		case key.Matches(msg, m.keys.MoveUp):
			if pos := m.orderPos(m.cursor); pos > 0 {
				m.order[pos], m.order[pos-1] = m.order[pos-1], m.order[pos]
			}

		case key.Matches(msg, m.keys.MoveDown):
			if pos := m.orderPos(m.cursor); pos >= 0 && pos < len(m.order)-1 {
				m.order[pos], m.order[pos+1] = m.order[pos+1], m.order[pos]
			}

		case key.Matches(msg, m.keys.Confirm):
			if len(m.order) > 0 {
				m.confirmed = true
				return m, tea.Quit
			}
		}
	}

	return m, nil
}

func (m selectModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.title.Render("Select PDFs to Merge"))
	b.WriteString("\n")

	for i, file := range m.files {
		cursor := "  "
		style := m.styles.file
		if i == m.cursor {
			cursor = m.styles.cursor.Render("▸ ")
			style = m.styles.selected
		}

		badge := m.styles.dim.Render("[ ]")
		if pos := m.orderPos(i); pos >= 0 {
			badge = m.styles.badge.Render(fmt.Sprintf("[%d]", pos+1))
		}

		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, badge, style.Render(file)))
	}

	b.WriteString("\n")
	if len(m.order) == 0 {
		b.WriteString(m.styles.dim.Render("Select at least one file to merge."))
	} else {
		names := make([]string, len(m.order))
		for pos, idx := range m.order {
			names[pos] = m.files[idx]
		}
		b.WriteString(m.styles.dim.Render("Merge order: " + strings.Join(names, " → ")))
	}
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}

// NewSelectModel creates a tea.Model for a file selection prompt
func NewSelectModel(files []string) tea.Model {
	return newSelectModel(files)
}

// RunSelectTUI runs the selection TUI and returns the chosen file indices
// (0-based, into files) in merge order.
func RunSelectTUI(files []string) ([]int, error) {
	m := newSelectModel(files)
	p := tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithOutput(os.Stdout))

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	res := finalModel.(selectModel)
	if res.canceled {
		return nil, errors.ErrCanceled
	}

	return res.order, nil
}
