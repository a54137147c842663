package main

import (
	"github.com/spf13/cobra"

	"github.com/i18n-tools/i18n-check/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "List every missing key per locale with a summary table",
	Long: `Compare every locale against the reference language and list every
missing key with a sequential index, followed by a per-locale summary.
Extra keys are not checked. Exits 1 if any key is missing anywhere.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if !report.New(cfg, cmd.OutOrStdout()).Exhaustive() {
			return errInconsistent
		}
		return nil
	},
}
