package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Shelf         *lipgloss.Style
	ShelfTitle    *lipgloss.Style
	Card          *lipgloss.Style
	FocusedCard   *lipgloss.Style
	SelectedCard  *lipgloss.Style
	DisabledCard  *lipgloss.Style
	SideNavItem   *lipgloss.Style
	SideNavFocus  *lipgloss.Style
	Slit          *lipgloss.Style
	Header        *lipgloss.Style
	Footer        *lipgloss.Style
	Filter        *lipgloss.Style
	FilterPrompt  *lipgloss.Style
	Error         *lipgloss.Style
	Info          *lipgloss.Style
	PlayerBar     *lipgloss.Style
	PlayerControl *lipgloss.Style
	PlayerFocus   *lipgloss.Style
}

var defaultStyles = Styles{
	Shelf: ptr(
		lipgloss.NewStyle().PaddingLeft(1),
	),
	ShelfTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Card: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Padding(0, 1),
	),
	FocusedCard: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("33")).Bold(true).Padding(0, 1),
	),
	SelectedCard: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Padding(0, 1),
	),
	DisabledCard: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Padding(0, 1),
	),
	SideNavItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")).PaddingLeft(1),
	),
	SideNavFocus: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("33")).Bold(true).PaddingLeft(1),
	),
	Slit: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
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
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	PlayerBar: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	PlayerControl: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Padding(0, 1),
	),
	PlayerFocus: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("33")).Bold(true).Padding(0, 1),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
