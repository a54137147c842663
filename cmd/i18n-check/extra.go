package main

import (
	"github.com/spf13/cobra"

	"github.com/i18n-tools/i18n-check/internal/diff"
	"github.com/i18n-tools/i18n-check/internal/extract"
)

var (
	extraLocale string
	extraFormat string
)

var extraCmd = &cobra.Command{
	Use:   "extra",
	Short: "Keys present in --locale but absent from the reference locale",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ref := extract.Load(cfg.FilePath(cfg.Reference))
		candidate := extract.Load(cfg.FilePath(extraLocale))
		res := diff.Compare(ref, candidate)
		return outputStrings(cmd.OutOrStdout(), res.Extra, extraFormat, "extra keys in "+extraLocale)
	},
}

func init() {
	extraCmd.Flags().StringVar(&extraLocale, "locale", "", "target locale code (required)")
	extraCmd.Flags().StringVar(&extraFormat, "format", "text", "output format: text, json")
	extraCmd.MarkFlagRequired("locale")
}
