package main

import (
	"github.com/spf13/cobra"

	"github.com/i18n-tools/i18n-check/internal/extract"
)

var (
	keysLocale string
	keysFormat string
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List the key set extracted from one locale file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		keys := extract.Load(cfg.FilePath(keysLocale))
		return outputStrings(cmd.OutOrStdout(), keys.Sorted(), keysFormat, "keys in "+keysLocale)
	},
}

func init() {
	keysCmd.Flags().StringVar(&keysLocale, "locale", "", "target locale code (required)")
	keysCmd.Flags().StringVar(&keysFormat, "format", "text", "output format: text, json")
	keysCmd.MarkFlagRequired("locale")
}
