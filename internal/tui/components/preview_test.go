package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/opencode-ai/tinct/internal/scheme"
	"github.com/opencode-ai/tinct/internal/theme"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func testTheme() *theme.Theme {
	return theme.New("test", scheme.Imperial)
}

func TestEntriesListsFields(t *testing.T) {
	th := testTheme()
	entries, err := theme.ForWidget(th, theme.WidgetButton)
	if err != nil {
		t.Fatalf("ForWidget: %v", err)
	}

	out := Entries(entries, lipgloss.NewStyle())
	for _, field := range []string{"style", "focus", "armed"} {
		if !strings.Contains(out, field) {
			t.Errorf("expected field %q in output:\n%s", field, out)
		}
	}
	if !strings.Contains(out, string(th.Button().Armed.Background)) {
		t.Errorf("expected armed background in output:\n%s", out)
	}
}

func TestEntriesMarksUnsetFields(t *testing.T) {
	out := Entries([]theme.Entry{{Widget: theme.WidgetInput, Field: "scroll.thumb"}}, lipgloss.NewStyle())
	if !strings.Contains(out, "scroll.thumb  -") {
		t.Errorf("expected unset marker, got %q", out)
	}
}

func TestEntriesDescribeBorder(t *testing.T) {
	th := testTheme()
	entries, err := theme.ForWidget(th, theme.WidgetChoice)
	if err != nil {
		t.Fatalf("ForWidget: %v", err)
	}

	out := Entries(entries, lipgloss.NewStyle())
	if !strings.Contains(out, "popup.border") {
		t.Errorf("expected popup.border row in output:\n%s", out)
	}
	if !strings.Contains(out, "bordered") {
		t.Errorf("expected bordered marker in output:\n%s", out)
	}

	out = Entries([]theme.Entry{{Widget: theme.WidgetMenu, Field: "popup.border"}}, lipgloss.NewStyle())
	if !strings.Contains(out, "no border") {
		t.Errorf("expected no border marker, got %q", out)
	}
}

func TestButton(t *testing.T) {
	out := Button(testTheme().Button(), "OK", true)
	if out != "[ OK ]" {
		t.Errorf("Button() = %q", out)
	}
}

func TestListPadsRows(t *testing.T) {
	out := List(testTheme().List(), []string{"one", "two", "three"}, 1, false, 8)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "one     ▲" {
		t.Errorf("first row = %q", lines[0])
	}
	if lines[2] != "three   ▼" {
		t.Errorf("last row = %q", lines[2])
	}
}

func TestTable(t *testing.T) {
	out := Table(testTheme().Table(), []string{"name", "size"}, [][]string{{"a", "1"}, {"b", "2"}}, 0, 5)
	if !strings.HasPrefix(out, "name  size ") {
		t.Errorf("unexpected header: %q", out)
	}
	if strings.Count(out, "\n") != 2 {
		t.Errorf("expected header plus 2 rows, got %q", out)
	}
}

func TestInput(t *testing.T) {
	out := Input(testTheme().Input(), "abc", false, false, 6)
	if out != "abc   " {
		t.Errorf("Input() = %q", out)
	}
}

func TestStatusLineWidth(t *testing.T) {
	out := StatusLine(testTheme().StatusLine(), "ready", []string{"R", "E", "A"}, 30)
	if got := lipgloss.Width(out); got != 30 {
		t.Errorf("status line width = %d, want 30: %q", got, out)
	}
	if !strings.HasSuffix(out, " R  E  A ") {
		t.Errorf("unexpected segments: %q", out)
	}
}

func TestPopupHasBorder(t *testing.T) {
	out := Popup(testTheme().Choice().Popup, []string{"alpha", "beta"})
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected bordered popup of 4 lines, got %d: %q", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "┌") {
		t.Errorf("expected top-left corner, got %q", lines[0])
	}
	if strings.Contains(out, "\x1b") {
		t.Errorf("expected no escape sequences without color, got %q", out)
	}
}

func TestMenu(t *testing.T) {
	out := Menu(testTheme().Menu(), []string{"File", "Edit"}, 1)
	if out != " File  Edit " {
		t.Errorf("Menu() = %q", out)
	}
}
