// Package cli implements the palette command tree over the theme registry.
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/opencode-ai/palette/internal/logging"
	"github.com/opencode-ai/palette/internal/registry"
	"github.com/opencode-ai/palette/internal/theme"
	"github.com/opencode-ai/palette/internal/themefile"
)

var (
	cfgFile   string
	logLevel  string
	logFormat string
	noColor   bool
)

var rootCmd = &cobra.Command{
	Use:           "palette",
	Short:         "Resolve and edit UI color themes",
	Long:          "Palette resolves the final color of every UI element for a chosen theme,\nand converts built-in themes into editable user themes.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}
		return logging.Setup(viper.GetString("log_level"), viper.GetString("log_format"))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default <user config dir>/palette/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (console, json)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "palette: %v\n", err)
	}
	return err
}

func initConfig() error {
	viper.SetDefault("log_level", "warn")
	viper.SetDefault("log_format", "console")
	viper.SetDefault("themes_dir", "")
	viper.SetDefault("current", "")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		base, err := os.UserConfigDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(base, "palette"))
		}
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("PALETTE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	// Flags win over config file and environment.
	if logLevel != "" {
		viper.Set("log_level", logLevel)
	}
	if logFormat != "" {
		viper.Set("log_format", logFormat)
	}
	return nil
}

// writeFreshConfig creates the config file for the first time so a setting
// can be persisted before any config exists.
func writeFreshConfig() error {
	base, err := os.UserConfigDir()
	if err != nil {
		return err
	}
	dir := filepath.Join(base, "palette")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return viper.WriteConfigAs(filepath.Join(dir, "config.yaml"))
}

// themesDir returns the configured user themes directory, falling back to the
// default location.
func themesDir() (string, error) {
	if dir := viper.GetString("themes_dir"); dir != "" {
		return dir, nil
	}
	return themefile.DefaultDir()
}

// openRegistry builds the registry: the built-in system family plus every
// user theme document found in the themes directory. Units that fail to load
// are logged and skipped so one broken file never hides the rest.
func openRegistry() (*registry.Registry, error) {
	dir, err := themesDir()
	if err != nil {
		return nil, err
	}
	logger := logging.Component("cli")

	reg := registry.New(themefile.NewDirStore(dir))
	if err := reg.Add(theme.BuiltinFamily()); err != nil {
		return nil, err
	}

	families, failures := themefile.LoadDir(dir)
	for _, failure := range failures {
		logger.Warn().Err(failure.Err).Str("path", failure.Path).Msg("skipping theme document")
	}
	for _, f := range families {
		if err := reg.Add(f); err != nil {
			logger.Warn().Err(err).Str("family", f.Name()).Msg("skipping theme family")
		}
	}

	if current := viper.GetString("current"); current != "" {
		ref, err := parseThemeRef(current)
		if err == nil {
			err = reg.SetCurrent(ref)
		}
		if err != nil {
			logger.Warn().Err(err).Str("current", current).Msg("configured current theme is invalid")
		}
	}
	return reg, nil
}

// parseThemeRef parses the "<family>/<theme>" argument form. Family names
// cannot contain a slash; theme names may.
func parseThemeRef(s string) (registry.ThemeRef, error) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" || strings.TrimSpace(parts[1]) == "" {
		return registry.ThemeRef{}, fmt.Errorf("theme reference %q is not <family>/<theme>", s)
	}
	return registry.ThemeRef{
		Family: strings.TrimSpace(parts[0]),
		Theme:  strings.TrimSpace(parts[1]),
	}, nil
}
