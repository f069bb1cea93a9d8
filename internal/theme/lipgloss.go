package theme

import "github.com/charmbracelet/lipgloss"

// Styles contains lipgloss styles for the chrome of tools that present a
// theme, built from the theme's roles.
type Styles struct {
	Theme   *Theme
	Title   lipgloss.Style
	Text    lipgloss.Style
	Muted   lipgloss.Style
	Accent  lipgloss.Style
	Panel   lipgloss.Style
	Focus   lipgloss.Style
	Select  lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Status  lipgloss.Style
}

// BuildStyles converts a theme into lipgloss styles.
func BuildStyles(t *Theme) Styles {
	s := t.Scheme()
	return Styles{
		Theme:   t,
		Title:   t.Data().Lipgloss().Bold(true),
		Text:    t.Data().Lipgloss(),
		Muted:   t.Container().Lipgloss(),
		Accent:  lipgloss.NewStyle().Foreground(s.Primary[3]).Bold(true),
		Panel:   t.Data().Lipgloss().BorderStyle(lipgloss.NormalBorder()).BorderForeground(s.Gray[2]),
		Focus:   t.Focus().Lipgloss().Bold(true),
		Select:  t.Select().Lipgloss(),
		Warning: lipgloss.NewStyle().Foreground(s.Orange[3]),
		Error:   lipgloss.NewStyle().Foreground(s.Red[3]),
		Status:  t.Status().Lipgloss(),
	}
}
