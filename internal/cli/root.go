package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "treekeep",
	Short: "File-structure catalog tool",
	Long: `treekeep keeps an in-memory catalog of a file/directory tree, lets you
edit it through slash-delimited paths, and persists the whole catalog as one
JSON document after every successful change.

The catalog models structure only: names and nesting, no content. The one
exception is the report command, which reads real file contents off disk to
build a Markdown report of everything the catalog tracks.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Path did not resolve to a directory
  12 - Name already taken in the target directory
  13 - Named file, directory, or document not found
  14 - Persisted structure could not be parsed`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().String("store", "",
		"Directory holding the persisted structure document.\n"+
			"Precedence: --store > $TREEKEEP_STORE > treekeep.yaml > ./json_files")
	rootCmd.PersistentFlags().String("env-file", "",
		"Load environment variables from the given .env file before resolving settings")
}

// getVerboseFlag safely retrieves the verbose flag value.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
