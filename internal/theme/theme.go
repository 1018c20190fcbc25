package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Loading      *lipgloss.Style
	Item         *lipgloss.Style
	SelectedItem *lipgloss.Style
	GraphPrefix  *lipgloss.Style
	WorkingCopy  *lipgloss.Style
	Conflict     *lipgloss.Style
	Bookmark     *lipgloss.Style
	EmptyChange  *lipgloss.Style

	DiffAdded      *lipgloss.Style
	DiffDeleted    *lipgloss.Style
	DiffContext    *lipgloss.Style
	DiffFileHeader *lipgloss.Style
	DiffLineNumber *lipgloss.Style

	Error        *lipgloss.Style
	Info         *lipgloss.Style
	Header       *lipgloss.Style
	Footer       *lipgloss.Style
	Filter       *lipgloss.Style
	FilterPrompt *lipgloss.Style
	PreviewTitle *lipgloss.Style
	PreviewBody  *lipgloss.Style
	PreviewError *lipgloss.Style

	DialogBorder  *lipgloss.Style
	DialogTitle   *lipgloss.Style
	DialogItem    *lipgloss.Style
	DialogFocused *lipgloss.Style
	DialogToggled *lipgloss.Style
}

var defaultStyles = Styles{
	Loading: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Italic(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	GraphPrefix: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	WorkingCopy: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("114")).Bold(true),
	),
	Conflict: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Bookmark: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("176")),
	),
	EmptyChange: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	),
	DiffAdded: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
	),
	DiffDeleted: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	),
	DiffContext: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	DiffFileHeader: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
	),
	DiffLineNumber: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	PreviewTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	PreviewBody: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	PreviewError: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	DialogBorder: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("33")).Padding(0, 1),
	),
	DialogTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	DialogItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	DialogFocused: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	DialogToggled: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("114")).Bold(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
