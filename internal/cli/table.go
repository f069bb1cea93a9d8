// Package cli provides table helpers for human-readable output.
package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/opencode-ai/tinct/internal/scheme"
	"github.com/opencode-ai/tinct/internal/theme"
)

const (
	tablePadding = 2
	swatchText   = " Aa "
)

func writeTable(out io.Writer, headers []string, rows [][]string) error {
	writer := tabwriter.NewWriter(out, 0, 0, tablePadding, ' ', tabwriter.StripEscape)
	if len(headers) > 0 {
		fmt.Fprintln(writer, strings.Join(headers, "\t"))
	}
	for _, row := range rows {
		fmt.Fprintln(writer, strings.Join(row, "\t"))
	}
	return writer.Flush()
}

// escapeCell hides ANSI sequences from tabwriter's width calculation.
func escapeCell(s string) string {
	if !strings.Contains(s, "\x1b") {
		return s
	}
	return string(tabwriter.Escape) + s + string(tabwriter.Escape)
}

func formatShade(c scheme.Shade) string {
	if c == "" {
		return "-"
	}
	return string(c)
}

func formatYesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

func swatch(s scheme.Style) string {
	if s.IsZero() {
		return "-"
	}
	return escapeCell(s.Render(swatchText))
}

func formatBorder(e theme.Entry) string {
	if !e.IsBorder() {
		return "-"
	}
	return formatYesNo(e.Bordered)
}
