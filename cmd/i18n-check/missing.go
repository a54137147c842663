package main

import (
	"github.com/spf13/cobra"

	"github.com/i18n-tools/i18n-check/internal/diff"
	"github.com/i18n-tools/i18n-check/internal/extract"
)

var (
	missingLocale string
	missingFormat string
)

var missingCmd = &cobra.Command{
	Use:   "missing",
	Short: "Keys present in the reference locale but absent from --locale",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ref := extract.Load(cfg.FilePath(cfg.Reference))
		candidate := extract.Load(cfg.FilePath(missingLocale))
		res := diff.Compare(ref, candidate)
		return outputStrings(cmd.OutOrStdout(), res.Missing, missingFormat, "missing keys in "+missingLocale)
	},
}

func init() {
	missingCmd.Flags().StringVar(&missingLocale, "locale", "", "target locale code (required)")
	missingCmd.Flags().StringVar(&missingFormat, "format", "text", "output format: text, json")
	missingCmd.MarkFlagRequired("locale")
}
