// Package cli provides the show command.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/palette/internal/schema"
)

var (
	showJSON    bool
	showVerbose bool
)

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().BoolVar(&showJSON, "json", false, "emit the resolved colors as JSON")
	showCmd.Flags().BoolVarP(&showVerbose, "verbose", "v", false, "include identifier descriptions")
}

// shownColor is one resolved entry in --json output. Entries are emitted as
// an array so schema order survives the round trip.
type shownColor struct {
	ID          string    `json:"id"`
	Hex         string    `json:"hex"`
	Hsla        []float64 `json:"hsla"`
	Description string    `json:"description,omitempty"`
}

var showCmd = &cobra.Command{
	Use:   "show [<family>/<theme>]",
	Short: "Show a theme's resolved colors",
	Long:  "Resolve every UI color of a theme and print it. Without an argument the current theme is shown.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := openRegistry()
		if err != nil {
			return err
		}

		ref, err := reg.Current()
		if len(args) == 1 {
			ref, err = parseThemeRef(args[0])
		}
		if err != nil {
			return err
		}

		colors, err := reg.Resolve(ref)
		if err != nil {
			return err
		}

		if showJSON {
			out := make([]shownColor, 0, colors.Len())
			for _, id := range colors.IDs() {
				c, _ := colors.Get(id)
				sc := shownColor{
					ID:   string(id),
					Hex:  hslaToHex(c),
					Hsla: []float64{c.H, c.S, c.L, c.A},
				}
				if showVerbose {
					if entry, ok := schema.Lookup(id); ok {
						sc.Description = entry.Description
					}
				}
				out = append(out, sc)
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n", ref)

		headers := []string{"", styleHeader("IDENTIFIER"), styleHeader("HEX"), styleHeader("HSLA")}
		if showVerbose {
			headers = append(headers, styleHeader("DESCRIPTION"))
		}

		rows := make([][]string, 0, colors.Len())
		for _, id := range colors.IDs() {
			c, _ := colors.Get(id)
			row := []string{swatch(c), string(id), hslaToHex(c), c.String()}
			if showVerbose {
				var desc string
				if entry, ok := schema.Lookup(id); ok {
					desc = entry.Description
				}
				row = append(row, desc)
			}
			rows = append(rows, row)
		}
		return writeTable(cmd.OutOrStdout(), headers, rows)
	},
}
