// Package cli provides widget style inspection commands.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/tinct/internal/logging"
	"github.com/opencode-ai/tinct/internal/theme"
)

func init() {
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(rolesCmd)
}

var showCmd = &cobra.Command{
	Use:   "show [widget...]",
	Short: "Print widget styles",
	Long:  "Print the style fields of the given widget kinds, or of every widget kind when none is given.",
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := currentTheme()
		if err != nil {
			return err
		}

		var entries []theme.Entry
		if len(args) == 0 {
			entries = theme.Catalog(t)
		}
		for _, arg := range args {
			w, err := theme.ParseWidget(arg)
			if err != nil {
				return err
			}
			found, err := theme.ForWidget(t, w)
			if err != nil {
				return err
			}
			entries = append(entries, found...)
		}

		logger := logging.Component("cli")
		logger.Debug().
			Str("theme", t.Name()).
			Int("entries", len(entries)).
			Msg("printing widget styles")

		rows := make([][]string, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, []string{
				string(e.Widget),
				e.Field,
				formatShade(e.Style.Foreground),
				formatShade(e.Style.Background),
				formatYesNo(e.Style.Underline),
				formatBorder(e),
				swatch(e.Style),
			})
		}
		return writeTable(cmd.OutOrStdout(), []string{"WIDGET", "FIELD", "FG", "BG", "UNDERLINE", "BORDER", "SAMPLE"}, rows)
	},
}

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "Print the semantic role table",
	Long:  "Print how each semantic role maps to scheme shades and the colors it resolves to.",
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := currentTheme()
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(theme.Roles()))
		for _, r := range theme.Roles() {
			spec := r.Spec()
			fgRule := "contrast"
			if !spec.Contrast {
				fgRule = shadeRef(spec.Fg)
			}
			style := t.Role(r)
			rows = append(rows, []string{
				r.String(),
				shadeRef(spec.Bg),
				fgRule,
				formatShade(style.Foreground),
				formatShade(style.Background),
				swatch(style),
			})
		}
		return writeTable(cmd.OutOrStdout(), []string{"ROLE", "BACKGROUND", "FOREGROUND", "FG", "BG", "SAMPLE"}, rows)
	},
}

func shadeRef(ref theme.ShadeRef) string {
	return fmt.Sprintf("%s[%d]", ref.Ramp, ref.N)
}
