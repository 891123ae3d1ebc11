package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rmDirCmd = &cobra.Command{
	Use:   "rm-dir <path>",
	Short: "Remove a directory and its subtree from the catalog",
	Long: `Remove the directory at the given catalog path.

Removal cascades: every file and subdirectory below the target is dropped
from the catalog with it. The real filesystem is never touched.

Examples:
  treekeep rm-dir project/src/util
  treekeep rm-dir project              # Removes a whole top-level tree`,
	Args: cobra.ExactArgs(1),
	RunE: runRmDir,
}

var rmFileCmd = &cobra.Command{
	Use:   "rm-file <path>",
	Short: "Remove a file from the catalog",
	Long: `Remove the file at the given catalog path.

Examples:
  treekeep rm-file project/env.py`,
	Args: cobra.ExactArgs(1),
	RunE: runRmFile,
}

func init() {
	rootCmd.AddCommand(rmDirCmd)
	rootCmd.AddCommand(rmFileCmd)
}

func runRmDir(cmd *cobra.Command, args []string) error {
	parent, name, err := splitTarget(args[0])
	if err != nil {
		return err
	}

	ctx, err := setup(cmd)
	if err != nil {
		return err
	}

	if parent == "" {
		if err := ctx.manager.DeleteTopLevel(name); err != nil {
			return err
		}
	} else {
		if err := ctx.manager.DeleteDirectoryAt(parent, name); err != nil {
			return err
		}
	}

	fmt.Printf("Removed directory %q\n", args[0])
	return nil
}

func runRmFile(cmd *cobra.Command, args []string) error {
	parent, name, err := splitTarget(args[0])
	if err != nil {
		return err
	}
	if parent == "" {
		return fmt.Errorf("files live inside a directory; path %q has no directory part", args[0])
	}

	ctx, err := setup(cmd)
	if err != nil {
		return err
	}

	if err := ctx.manager.DeleteFileAt(parent, name); err != nil {
		return err
	}

	fmt.Printf("Removed file %q\n", args[0])
	return nil
}
