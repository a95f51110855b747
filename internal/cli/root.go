package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tsea <search_text>",
	Short: "Search the text files of a directory for a literal string",
	Long: `tsea scans the top-level .txt files of a directory and prints every line
containing the search text, annotated with the file name and line number:

  notes/todo.txt (line 3): buy milk

Matching is a literal, case-sensitive substring test. Subdirectories are not
searched. An empty search text ("") matches every line.

Configuration (highest precedence first):
  1. Command line flags
  2. Environment variables TSEA_DIR and TSEA_COLOR (a .env file is honored)
  3. .tsea.yaml in the working directory, or the file given with --config

Exit Codes:
  0  - Success (with or without matches)
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Target directory could not be read`,
	Example: `  # Search the current directory
  tsea TODO

  # Search another directory without color
  tsea "connection refused" --dir ./logs --no-color

  # Search text that starts with a dash
  tsea -- --force`,
	Args:              RequireSearchText,
	RunE:              runSearch,
	ValidArgsFunction: cobra.NoFileCompletions,
	SilenceUsage:      true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for tsea")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output on stderr")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
