// Package cli provides the current-theme commands.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(currentCmd)
	currentCmd.AddCommand(currentSetCmd)
}

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the current theme",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := openRegistry()
		if err != nil {
			return err
		}
		current, err := reg.Current()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), current.String())
		return nil
	},
}

var currentSetCmd = &cobra.Command{
	Use:   "set <family>/<theme>",
	Short: "Set the current theme",
	Long:  "Set the current theme to an existing (family, theme) pair and remember the choice in the config file.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, err := parseThemeRef(args[0])
		if err != nil {
			return err
		}

		reg, err := openRegistry()
		if err != nil {
			return err
		}
		if err := reg.SetCurrent(ref); err != nil {
			return err
		}

		viper.Set("current", ref.String())
		if err := viper.WriteConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return fmt.Errorf("persist current theme: %w", err)
			}
			if err := writeFreshConfig(); err != nil {
				return fmt.Errorf("persist current theme: %w", err)
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "current theme set to %s\n", ref)
		return nil
	},
}
