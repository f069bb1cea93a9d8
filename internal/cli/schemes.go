// Package cli provides scheme listing commands.
package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/tinct/internal/scheme"
)

func init() {
	rootCmd.AddCommand(schemesCmd)
	schemesCmd.Flags().BoolVar(&schemesRamps, "ramps", false, "print every ramp of the selected scheme")
}

var schemesRamps bool

var schemesCmd = &cobra.Command{
	Use:   "schemes",
	Short: "List built-in color schemes",
	Long:  "List the built-in color schemes, or with --ramps the shades of the selected scheme.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if schemesRamps {
			return printRamps(cmd)
		}
		return printSchemes(cmd)
	},
}

func printSchemes(cmd *cobra.Command) error {
	selected := ""
	if cfg := GetConfig(); cfg != nil {
		selected = strings.ToLower(cfg.Theme.Scheme)
	}

	rows := make([][]string, 0, len(scheme.Schemes))
	for _, name := range scheme.Names() {
		s := scheme.Schemes[name]
		rows = append(rows, []string{
			name,
			formatYesNo(name == selected),
			rampSwatches(s, s.Primary),
			rampSwatches(s, s.Secondary),
		})
	}
	return writeTable(cmd.OutOrStdout(), []string{"SCHEME", "SELECTED", "PRIMARY", "SECONDARY"}, rows)
}

func printRamps(cmd *cobra.Command) error {
	t, err := currentTheme()
	if err != nil {
		return err
	}
	s := t.Scheme()

	rows := make([][]string, 0, len(scheme.RampNames()))
	for _, name := range scheme.RampNames() {
		ramp := s.Ramp(name)
		row := []string{name.String()}
		for _, shade := range ramp {
			row = append(row, string(shade))
		}
		row = append(row, rampSwatches(s, ramp))
		rows = append(rows, row)
	}
	return writeTable(cmd.OutOrStdout(), []string{"RAMP", "0", "1", "2", "3", "SAMPLE"}, rows)
}

func rampSwatches(s scheme.Scheme, ramp scheme.Ramp) string {
	var b strings.Builder
	for _, shade := range ramp {
		b.WriteString(scheme.NewStyle(s.TextColor(shade), shade).Render(" "))
	}
	return escapeCell(b.String())
}
