package components

import (
	"fmt"
	"strings"

	"github.com/opencode-ai/tinct/internal/theme"
)

// EmptyState is a placeholder shown where a view has nothing to draw.
type EmptyState struct {
	Title       string
	Subtitle    string
	Suggestions []Suggestion
}

// Suggestion is a command the user can run instead.
type Suggestion struct {
	Command     string
	Description string
}

// Render renders the empty state with the given styles.
func (e EmptyState) Render(styleSet theme.Styles) string {
	lines := []string{styleSet.Muted.Render(e.Title)}
	if e.Subtitle != "" {
		lines = append(lines, styleSet.Muted.Render(e.Subtitle))
	}

	if len(e.Suggestions) > 0 {
		lines = append(lines, "", styleSet.Text.Render("Try:"))
		for _, s := range e.Suggestions {
			line := "  " + styleSet.Accent.Render(s.Command)
			if s.Description != "" {
				line += styleSet.Muted.Render("  # " + s.Description)
			}
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

// EmptyPreview is shown for widget kinds without a mock-up.
func EmptyPreview(w theme.Widget) EmptyState {
	return EmptyState{
		Title:    fmt.Sprintf("No preview for %s", w),
		Subtitle: "The style fields above are still applied by the widget.",
		Suggestions: []Suggestion{
			{Command: fmt.Sprintf("tinct show %s", w), Description: "print the fields as a table"},
		},
	}
}
