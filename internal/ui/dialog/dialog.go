package dialog

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jjconsole/jjconsole/internal/theme"
)

// Kind selects the interaction shape of a dialog.
type Kind int

const (
	// Confirm asks a yes/no question; Enter or "y" confirms.
	Confirm Kind = iota
	// Select offers a toggle list; Space toggles, Enter submits the
	// toggled values. Submitting with nothing toggled cancels, so callers
	// never receive an empty selection.
	Select
)

// Item is one selectable row of a Select dialog.
type Item struct {
	Label   string
	Value   string
	Toggled bool
}

// Result is the single outcome a finished dialog produces.
type Result struct {
	Confirmed bool
	Values    []string
}

// Cancelled reports whether the dialog was dismissed without effect.
func (r Result) Cancelled() bool {
	return !r.Confirmed
}

// Model is a modal dialog overlaying the active view. It consumes every
// key event while open.
type Model struct {
	kind   Kind
	title  string
	prompt string
	items  []Item
	cursor int
	styles *theme.Styles
}

func NewConfirm(title, prompt string) *Model {
	return &Model{kind: Confirm, title: title, prompt: prompt, styles: theme.Default()}
}

func NewSelect(title, prompt string, items []Item) *Model {
	return &Model{kind: Select, title: title, prompt: prompt, items: items, styles: theme.Default()}
}

// Update consumes one key event. done reports whether the dialog
// finished; the result is only meaningful when it did.
func (m *Model) Update(msg tea.KeyMsg) (done bool, result Result) {
	switch msg.String() {
	case "esc", "q", "ctrl+c", "n":
		return true, Result{}
	}
	switch m.kind {
	case Confirm:
		switch msg.String() {
		case "y", "enter":
			return true, Result{Confirmed: true}
		}
	case Select:
		switch msg.String() {
		case "up", "k", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j", "ctrl+n":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case " ":
			if m.cursor >= 0 && m.cursor < len(m.items) {
				m.items[m.cursor].Toggled = !m.items[m.cursor].Toggled
			}
		case "a":
			for i := range m.items {
				m.items[i].Toggled = true
			}
		case "enter":
			values := m.toggledValues()
			if len(values) == 0 {
				return true, Result{}
			}
			return true, Result{Confirmed: true, Values: values}
		}
	}
	return false, Result{}
}

func (m *Model) toggledValues() []string {
	var values []string
	for _, item := range m.items {
		if item.Toggled {
			values = append(values, item.Value)
		}
	}
	return values
}

// View renders the dialog box.
func (m *Model) View(width int) string {
	s := m.styles
	var b strings.Builder
	b.WriteString(s.DialogTitle.Render(m.title))
	if m.prompt != "" {
		b.WriteString("\n")
		b.WriteString(s.DialogItem.Render(m.prompt))
	}
	switch m.kind {
	case Confirm:
		b.WriteString("\n\n")
		b.WriteString(s.DialogItem.Render("y: confirm    n/esc: cancel"))
	case Select:
		b.WriteString("\n")
		for i, item := range m.items {
			b.WriteString("\n")
			marker := "[ ] "
			if item.Toggled {
				marker = "[x] "
			}
			line := marker + item.Label
			switch {
			case i == m.cursor:
				b.WriteString(s.DialogFocused.Render(line))
			case item.Toggled:
				b.WriteString(s.DialogToggled.Render(line))
			default:
				b.WriteString(s.DialogItem.Render(line))
			}
		}
		b.WriteString("\n\n")
		b.WriteString(s.DialogItem.Render("space: toggle    a: all    enter: apply    esc: cancel"))
	}
	box := s.DialogBorder.Render(b.String())
	if width <= 0 {
		return box
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, box)
}
