package main

import (
	"encoding/json"
	"fmt"
	"io"
)

// outputStrings prints a list of strings in text or JSON format.
func outputStrings(w io.Writer, items []string, format, label string) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	}

	if len(items) == 0 {
		fmt.Fprintf(w, "No %s found.\n", label)
		return nil
	}

	fmt.Fprintf(w, "Found %d %s:\n", len(items), label)
	for _, item := range items {
		fmt.Fprintf(w, "  %s\n", item)
	}
	return nil
}
