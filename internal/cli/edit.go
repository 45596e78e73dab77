// Package cli provides the edit command.
package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/palette/internal/color"
	"github.com/opencode-ai/palette/internal/registry"
	"github.com/opencode-ai/palette/internal/schema"
	"github.com/opencode-ai/palette/internal/themefile"
)

var (
	editColor  string
	editRef    string
	editAuthor string
)

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().StringVar(&editColor, "color", "", "new static color as h,s,l,a (each in [0,1])")
	editCmd.Flags().StringVar(&editRef, "ref", "", "new ramp reference as set/transparency/index")
	editCmd.Flags().StringVar(&editAuthor, "author", "", "author for a theme converted from a system family")
}

var editCmd = &cobra.Command{
	Use:   "edit <family>/<theme> <identifier>",
	Short: "Override one UI color of a theme",
	Long: `Override a single UI color identifier with a new value. Editing a theme in a
system family converts it into a new editable user family; editing a user
theme changes it in place. Either --color or --ref must be given.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, err := parseThemeRef(args[0])
		if err != nil {
			return err
		}
		id := schema.ID(args[1])

		newRef, err := parseEditValue(editColor, editRef)
		if err != nil {
			return err
		}

		reg, err := openRegistry()
		if err != nil {
			return err
		}

		family, th, err := reg.ApplyEdit(ref, id, newRef, registry.EditOptions{Author: editAuthor})
		if err != nil {
			return err
		}

		result := registry.ThemeRef{Family: family.Name(), Theme: th.Name()}
		if result == ref {
			fmt.Fprintf(cmd.OutOrStdout(), "updated %s\n", result)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", result)
		}
		return nil
	},
}

// parseEditValue turns exactly one of the two flag forms into a reference.
func parseEditValue(colorFlag, refFlag string) (color.Reference, error) {
	switch {
	case colorFlag != "" && refFlag != "":
		return color.Reference{}, errors.New("--color and --ref are mutually exclusive")
	case colorFlag != "":
		return parseStaticColor(colorFlag)
	case refFlag != "":
		return themefile.ParseScaleRef(refFlag)
	default:
		return color.Reference{}, errors.New("one of --color or --ref is required")
	}
}

func parseStaticColor(s string) (color.Reference, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return color.Reference{}, fmt.Errorf("color %q is not h,s,l,a", s)
	}
	var ch [4]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return color.Reference{}, fmt.Errorf("color %q: channel %d is not a number", s, i)
		}
		ch[i] = v
	}
	return color.StaticRef(color.New(ch[0], ch[1], ch[2], ch[3])), nil
}
