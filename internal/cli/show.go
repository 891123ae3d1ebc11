package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/treekeep/internal/tui"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the catalog as indented JSON",
	Long: `Print a human-readable rendering of the whole catalog to stdout.

The output matches the persisted document format: top-level directory names
mapping to records of files and nested directories. Read-only.`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the catalog interactively",
	Long: `Open an interactive terminal browser over the catalog.

Navigate with the arrow keys, open directories with enter, go back with esc.
When stdin or stdout is not a terminal (pipes, CI), browse falls back to the
same static rendering as 'treekeep show'.`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(browseCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx, err := setup(cmd)
	if err != nil {
		return err
	}

	rendered, err := ctx.manager.Render()
	if err != nil {
		return err
	}
	fmt.Println(rendered)
	return nil
}

func runBrowse(cmd *cobra.Command, args []string) error {
	ctx, err := setup(cmd)
	if err != nil {
		return err
	}

	if !tui.IsInteractive() {
		rendered, err := ctx.manager.Render()
		if err != nil {
			return err
		}
		fmt.Println(rendered)
		return nil
	}

	return tui.Run(ctx.manager.Structure())
}
