// Package cli provides theme listing commands.
package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/palette/internal/color"
	"github.com/opencode-ai/palette/internal/registry"
)

var themesAppearance string

func init() {
	rootCmd.AddCommand(familiesCmd)
	rootCmd.AddCommand(themesCmd)

	themesCmd.Flags().StringVar(&themesAppearance, "appearance", "", "filter by appearance (light, dark)")
}

var familiesCmd = &cobra.Command{
	Use:   "families",
	Short: "List theme families",
	Long:  "List every loaded theme family in name order.",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := openRegistry()
		if err != nil {
			return err
		}

		rows := make([][]string, 0)
		for _, f := range reg.Families() {
			rows = append(rows, []string{
				f.Name(),
				f.Author(),
				string(f.Provenance()),
				strconv.Itoa(len(f.ThemeNames())),
			})
		}
		return writeTable(cmd.OutOrStdout(),
			[]string{styleHeader("NAME"), styleHeader("AUTHOR"), styleHeader("PROVENANCE"), styleHeader("THEMES")},
			rows)
	},
}

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List themes",
	Long:  "List every theme across all families. With --appearance, list only light or dark themes, ordered alphabetically by theme name.",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := openRegistry()
		if err != nil {
			return err
		}

		var entries []registry.Entry
		if themesAppearance != "" {
			appearance, err := color.ParseAppearance(strings.ToLower(themesAppearance))
			if err != nil {
				return err
			}
			entries = reg.ThemesByAppearance(appearance)
		} else {
			entries = reg.Themes()
		}

		current, _ := reg.Current()

		rows := make([][]string, 0, len(entries))
		for _, e := range entries {
			marker := ""
			if e.Family.Name() == current.Family && e.Theme.Name() == current.Theme {
				marker = "*"
			}
			rows = append(rows, []string{
				e.Theme.Name(),
				e.Family.Name(),
				string(e.Theme.Appearance()),
				marker,
			})
		}
		return writeTable(cmd.OutOrStdout(),
			[]string{styleHeader("THEME"), styleHeader("FAMILY"), styleHeader("APPEARANCE"), ""},
			rows)
	},
}
