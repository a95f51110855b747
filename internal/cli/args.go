package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RequireSearchText validates that exactly one search_text argument is provided.
// Returns a helpful error message with usage and examples if missing or too many.
// The empty string is a valid search text.
func RequireSearchText(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <search_text>

Usage: %s

Example:
  %s TODO --dir ./notes`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d (quote search text that contains spaces)", len(args))
	}
	return nil
}
