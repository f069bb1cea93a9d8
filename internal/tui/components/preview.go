// Package components renders small widget mock-ups from theme styles.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/tinct/internal/theme"
)

const swatchText = " Aa "

// Entries renders one line per style field: the field name followed by a swatch.
func Entries(entries []theme.Entry, label lipgloss.Style) string {
	width := 0
	for _, e := range entries {
		if len(e.Field) > width {
			width = len(e.Field)
		}
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		name := label.Render(fmt.Sprintf("%-*s", width, e.Field))
		sample := "-"
		if !e.Style.IsZero() {
			sample = e.Style.Render(swatchText)
		}
		desc := describe(e.Style)
		if e.IsBorder() {
			desc = describeBorder(e)
		}
		lines = append(lines, fmt.Sprintf("%s  %s  %s", name, sample, desc))
	}
	return strings.Join(lines, "\n")
}

func describe(s theme.Style) string {
	if s.IsZero() {
		return ""
	}
	fg, bg := string(s.Foreground), string(s.Background)
	if fg == "" {
		fg = "-"
	}
	if bg == "" {
		bg = "-"
	}
	out := fg + " on " + bg
	if s.Underline {
		out += " underline"
	}
	return out
}

func describeBorder(e theme.Entry) string {
	if !e.Bordered {
		return "no border"
	}
	return "bordered, " + describe(e.Style)
}

// Button renders a button label in its base or focus style.
func Button(b theme.ButtonStyle, label string, focused bool) string {
	style := b.Style
	if focused && !b.Focus.IsZero() {
		style = b.Focus
	}
	return style.Render("[ " + label + " ]")
}

// List renders items padded to width, highlighting the selected row.
func List(l theme.ListStyle, items []string, selected int, focused bool, width int) string {
	lines := make([]string, 0, len(items))
	for i, item := range items {
		style := l.Style
		if i == selected {
			style = l.Select
			if focused {
				style = l.Focus
			}
		}
		lines = append(lines, style.Render(pad(item, width))+scrollCell(l.Scroll, i, len(items)))
	}
	return strings.Join(lines, "\n")
}

// Table renders rows of cells with fixed column width.
func Table(t theme.TableStyle, header []string, rows [][]string, selected int, colWidth int) string {
	lines := []string{t.Style.Render(joinCells(header, colWidth))}
	for i, row := range rows {
		style := t.Style
		if i == selected {
			style = t.SelectRow
			if t.ShowRowFocus && !t.Focus.IsZero() {
				style = t.Focus
			}
		}
		lines = append(lines, style.Render(joinCells(row, colWidth))+scrollCell(t.Scroll, i, len(rows)))
	}
	return strings.Join(lines, "\n")
}

// Input renders a text field, using the invalid style when valid is false.
func Input(s theme.TextStyle, value string, focused, valid bool, width int) string {
	style := s.Style
	if focused && !s.Focus.IsZero() {
		style = s.Focus
	}
	if !valid && !s.Invalid.IsZero() {
		style = s.Invalid
	}
	return style.Render(pad(value, width))
}

// StatusLine renders the message followed by the indicator segments.
func StatusLine(s theme.StatusLineStyle, message string, segments []string, width int) string {
	var right []string
	used := 0
	for i, seg := range segments {
		if i >= len(s.Segments) {
			break
		}
		cell := " " + seg + " "
		used += lipgloss.Width(cell)
		right = append(right, s.Segments[i].Render(cell))
	}
	left := pad(" "+message, width-used)
	return s.Style.Render(left) + strings.Join(right, "")
}

// Popup renders lines inside the popup frame.
func Popup(p theme.PopupStyle, lines []string) string {
	return p.Lipgloss().Render(strings.Join(lines, "\n"))
}

// Menu renders menu bar items, marking the selected one.
func Menu(m theme.MenuStyle, items []string, selected int) string {
	cells := make([]string, 0, len(items))
	for i, item := range items {
		style := m.Style
		if i == selected {
			style = m.Select
		}
		cells = append(cells, style.Render(" "+item+" "))
	}
	return strings.Join(cells, "")
}

func scrollCell(s theme.ScrollStyle, row, total int) string {
	switch {
	case total <= 1:
		return s.Track.Render(" ")
	case row == 0:
		return s.Begin.Render("▲")
	case row == total-1:
		return s.End.Render("▼")
	case row == 1:
		return s.Thumb.Render("█")
	default:
		return s.Track.Render("│")
	}
}

func joinCells(cells []string, width int) string {
	padded := make([]string, len(cells))
	for i, c := range cells {
		padded[i] = pad(c, width)
	}
	return strings.Join(padded, " ")
}

func pad(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
