package main

import (
	"github.com/spf13/cobra"

	"github.com/i18n-tools/i18n-check/internal/report"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report missing and extra keys per locale (truncated listing)",
	Long: `Compare every locale against the reference language and report both
missing and extra keys, listing the first few of each per locale.
Exits 1 if any locale has any inconsistency.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if !report.New(cfg, cmd.OutOrStdout()).Strict() {
			return errInconsistent
		}
		return nil
	},
}
