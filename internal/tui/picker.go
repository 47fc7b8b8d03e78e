// Package tui provides the Bubble Tea metric picker.
package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/readage/internal/readability"
)

// ErrCancelled is returned when the picker is closed without a choice.
var ErrCancelled = errors.New("metric selection cancelled")

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Choose: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "choose")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "cancel")),
}

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	optionStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// Picker lets the user choose a selection with the keyboard.
type Picker struct {
	options   []readability.Selection
	cursor    int
	chosen    readability.Selection
	cancelled bool
}

// NewPicker returns a picker over every supported selection.
func NewPicker() *Picker {
	return &Picker{options: readability.Selections}
}

// Init implements tea.Model.
func (p *Picker) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (p *Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	switch {
	case key.Matches(keyMsg, keys.Quit):
		p.cancelled = true
		return p, tea.Quit
	case key.Matches(keyMsg, keys.Up):
		if p.cursor > 0 {
			p.cursor--
		}
	case key.Matches(keyMsg, keys.Down):
		if p.cursor < len(p.options)-1 {
			p.cursor++
		}
	case key.Matches(keyMsg, keys.Choose):
		p.chosen = p.options[p.cursor]
		return p, tea.Quit
	}
	return p, nil
}

// View implements tea.Model.
func (p *Picker) View() string {
	if p.chosen != "" || p.cancelled {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Which score do you want to calculate?"))
	b.WriteString("\n\n")
	for i, sel := range p.options {
		label := optionLabel(sel)
		if i == p.cursor {
			b.WriteString(selectedStyle.Render("> " + label))
		} else {
			b.WriteString(optionStyle.Render("  " + label))
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	b.WriteString(footerStyle.Render(helpLine(keys.Up, keys.Down, keys.Choose, keys.Quit)))
	b.WriteByte('\n')
	return b.String()
}

// Selected returns the chosen selection, or ErrCancelled.
func (p *Picker) Selected() (readability.Selection, error) {
	if p.chosen == "" {
		return "", ErrCancelled
	}
	return p.chosen, nil
}

// Run shows the picker on the given streams until a choice is made.
func Run(in io.Reader, out io.Writer) (readability.Selection, error) {
	program := tea.NewProgram(NewPicker(), tea.WithInput(in), tea.WithOutput(out))
	final, err := program.Run()
	if err != nil {
		return "", fmt.Errorf("failed to run picker: %w", err)
	}
	picker, ok := final.(*Picker)
	if !ok {
		return "", fmt.Errorf("unexpected picker model %T", final)
	}
	return picker.Selected()
}

func optionLabel(sel readability.Selection) string {
	if sel.IsAll() {
		return "all  (every metric and the average age)"
	}
	return fmt.Sprintf("%-5s(%s)", string(sel), readability.Metric(sel).Name())
}

func helpLine(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
