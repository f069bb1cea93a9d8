// Package tui implements the interactive style gallery.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/opencode-ai/tinct/internal/logging"
	"github.com/opencode-ai/tinct/internal/scheme"
	"github.com/opencode-ai/tinct/internal/theme"
	"github.com/opencode-ai/tinct/internal/tui/components"
)

// Config selects what the gallery shows first.
type Config struct {
	// Schemes are the scheme names to cycle through.
	Schemes []string
	// Scheme is the initially selected scheme.
	Scheme string
	// Name is the theme display name.
	Name string
}

// Run launches the gallery with every built-in scheme.
func Run() error {
	return RunWithConfig(Config{Schemes: scheme.Names()})
}

// RunWithConfig launches the gallery program.
func RunWithConfig(cfg Config) error {
	m, err := initialModel(cfg)
	if err != nil {
		return err
	}
	program := tea.NewProgram(m, tea.WithAltScreen())
	_, err = program.Run()
	return err
}

type model struct {
	width     int
	height    int
	name      string
	schemes   []string
	schemeIdx int
	widgetIdx int
	theme     *theme.Theme
	styles    theme.Styles
	focused   bool
}

const (
	minWidth  = 60
	minHeight = 15
)

func initialModel(cfg Config) (model, error) {
	schemes := cfg.Schemes
	if len(schemes) == 0 {
		schemes = scheme.Names()
	}
	name := cfg.Name
	if name == "" {
		name = "dark"
	}

	m := model{name: name, schemes: schemes}
	for i, s := range schemes {
		if strings.EqualFold(s, cfg.Scheme) {
			m.schemeIdx = i
		}
	}
	if err := m.loadScheme(); err != nil {
		return model{}, err
	}
	return m, nil
}

func (m *model) loadScheme() error {
	s, err := scheme.Lookup(m.schemes[m.schemeIdx])
	if err != nil {
		return err
	}
	m.theme = theme.New(m.name, s)
	m.styles = theme.BuildStyles(m.theme)
	logger := logging.Component("tui")
	logger.Debug().Str("scheme", m.schemes[m.schemeIdx]).Msg("scheme selected")
	return nil
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "right", "l", "tab":
			m.schemeIdx = (m.schemeIdx + 1) % len(m.schemes)
			cmd := m.reload()
			return m, cmd
		case "left", "h", "shift+tab":
			m.schemeIdx = (m.schemeIdx + len(m.schemes) - 1) % len(m.schemes)
			cmd := m.reload()
			return m, cmd
		case "down", "j":
			m.widgetIdx = (m.widgetIdx + 1) % len(theme.Widgets())
		case "up", "k":
			m.widgetIdx = (m.widgetIdx + len(theme.Widgets()) - 1) % len(theme.Widgets())
		case "f":
			m.focused = !m.focused
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// reload rebuilds the theme in place; a failure quits with the error logged.
func (m *model) reload() tea.Cmd {
	if err := m.loadScheme(); err != nil {
		logger := logging.Component("tui")
		logger.Error().Err(err).Msg("failed to load scheme")
		return tea.Quit
	}
	return nil
}

func (m model) View() string {
	if m.width > 0 && m.height > 0 {
		if m.width < minWidth || m.height < minHeight {
			return fmt.Sprintf("%s\n", strings.Join(m.smallViewLines(), "\n"))
		}
	}

	widget := theme.Widgets()[m.widgetIdx]
	lines := []string{
		m.styles.Title.Render(fmt.Sprintf("tinct: %s / %s", m.schemes[m.schemeIdx], m.theme.Name())),
		"",
		m.styles.Accent.Render(string(widget)),
		"",
	}

	entries, err := theme.ForWidget(m.theme, widget)
	if err != nil {
		lines = append(lines, m.styles.Error.Render(err.Error()))
	} else {
		lines = append(lines, components.Entries(entries, m.styles.Text))
	}

	lines = append(lines, "", m.sample(widget))
	lines = append(lines, "", m.styles.Muted.Render("Shortcuts: q quit | ←/→ scheme | ↑/↓ widget | f focus"))

	return fmt.Sprintf("%s\n", strings.Join(lines, "\n"))
}

func (m model) smallViewLines() []string {
	message := fmt.Sprintf("Terminal too small (%dx%d).", m.width, m.height)
	hint := fmt.Sprintf("Resize to at least %dx%d.", minWidth, minHeight)

	return []string{
		m.styles.Warning.Render(message),
		m.styles.Muted.Render(hint),
		m.styles.Muted.Render("Press q to quit."),
	}
}

// sample renders a mock-up of the widget where one exists.
func (m model) sample(w theme.Widget) string {
	t := m.theme
	switch w {
	case theme.WidgetButton:
		return components.Button(t.Button(), "OK", m.focused)
	case theme.WidgetList:
		return components.List(t.List(), []string{"alpha", "beta", "gamma"}, 1, m.focused, 16)
	case theme.WidgetTable:
		return components.Table(t.Table(), []string{"name", "size"}, [][]string{{"a.txt", "12"}, {"b.txt", "7"}}, 1, 8)
	case theme.WidgetInput:
		return components.Input(t.Input(), "hello", m.focused, true, 16)
	case theme.WidgetStatusLine:
		return components.StatusLine(t.StatusLine(), "ready", []string{"R 1ms", "E 0ms", "A 2ms"}, 48)
	case theme.WidgetMenu:
		return components.Menu(t.Menu(), []string{"File", "Edit", "View"}, 0)
	case theme.WidgetChoice:
		return components.Popup(t.Choice().Popup, []string{"first", "second"})
	case theme.WidgetMsgDialog:
		d := t.MsgDialog()
		return d.Style.Render(" Saved. ") + " " + components.Button(d.Button, "OK", m.focused)
	default:
		return components.EmptyPreview(w).Render(m.styles)
	}
}
