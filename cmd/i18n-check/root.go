package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/i18n-tools/i18n-check/internal/config"
)

// errInconsistent signals a failed consistency gate. The report has
// already been printed, so main exits 1 without an extra error line.
var errInconsistent = errors.New("inconsistencies found")

var configPath string

var rootCmd = &cobra.Command{
	Use:   "i18n-check",
	Short: "Validate translation key consistency across locale files",
	Long: `i18n-check parses every configured locale file into a flat set of dotted
key paths and compares each language against the reference language,
reporting missing and extra translation keys.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"path to the config file (default .i18n-check.yaml if present)")
	rootCmd.AddCommand(checkCmd, reportCmd, missingCmd, extraCmd, keysCmd)
}

func loadConfig() (*config.Config, error) {
	return config.Load(configPath)
}
