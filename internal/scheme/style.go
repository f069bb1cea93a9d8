package scheme

import "github.com/charmbracelet/lipgloss"

// Style is a foreground/background pair plus the few text attributes the
// widget styles use. An empty color means "inherit"; the zero Style sets
// nothing at all.
type Style struct {
	Foreground Shade
	Background Shade
	Underline  bool
}

// NewStyle returns a style with both colors set.
func NewStyle(fg, bg Shade) Style {
	return Style{Foreground: fg, Background: bg}
}

// Fg returns a copy of s with the foreground replaced.
func (s Style) Fg(c Shade) Style {
	s.Foreground = c
	return s
}

// Bg returns a copy of s with the background replaced.
func (s Style) Bg(c Shade) Style {
	s.Background = c
	return s
}

// Underlined returns a copy of s with underlining enabled.
func (s Style) Underlined() Style {
	s.Underline = true
	return s
}

// IsZero reports whether s sets no attribute.
func (s Style) IsZero() bool {
	return s == Style{}
}

// Lipgloss converts s into a lipgloss style. Unset colors are left unset.
func (s Style) Lipgloss() lipgloss.Style {
	out := lipgloss.NewStyle()
	if s.Foreground != "" {
		out = out.Foreground(s.Foreground)
	}
	if s.Background != "" {
		out = out.Background(s.Background)
	}
	if s.Underline {
		out = out.Underline(true)
	}
	return out
}

// Render renders text with s.
func (s Style) Render(text string) string {
	return s.Lipgloss().Render(text)
}
