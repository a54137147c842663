// i18n-check validates that every locale file defines the same set of
// translation keys as the reference language.
//
// Usage:
//
//	i18n-check <subcommand> [flags]
//
// Run "i18n-check --help" for a list of subcommands.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errInconsistent) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
