package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/treekeep/pkg/treekeep"
)

var addDirCmd = &cobra.Command{
	Use:   "add-dir <path>",
	Short: "Add a directory to the catalog",
	Long: `Add a directory at the given catalog path.

The final path segment is the new directory's name; everything before it must
already exist. A single segment creates a top-level directory.

Examples:
  treekeep add-dir project              # New top-level directory
  treekeep add-dir project/src          # New subdirectory under project
  treekeep add-dir project/src/util     # project/src must already exist`,
	Args: cobra.ExactArgs(1),
	RunE: runAddDir,
}

var addFileCmd = &cobra.Command{
	Use:   "add-file <path>",
	Short: "Add a file to the catalog",
	Long: `Add a file at the given catalog path.

The final path segment is the file name; the directory path before it must
already exist. Files always live inside a directory, so at least two segments
are required.

Examples:
  treekeep add-file project/env.py
  treekeep add-file project/src/main.go`,
	Args: cobra.ExactArgs(1),
	RunE: runAddFile,
}

func init() {
	rootCmd.AddCommand(addDirCmd)
	rootCmd.AddCommand(addFileCmd)
}

func runAddDir(cmd *cobra.Command, args []string) error {
	parent, name, err := splitTarget(args[0])
	if err != nil {
		return err
	}

	ctx, err := setup(cmd)
	if err != nil {
		return err
	}

	if parent == "" {
		if err := ctx.manager.AddTopLevel(treekeep.NewDirectory(name)); err != nil {
			return err
		}
	} else {
		if err := ctx.manager.AddDirectoryAt(parent, treekeep.NewDirectory(name)); err != nil {
			return err
		}
	}

	fmt.Printf("Added directory %q\n", args[0])
	return nil
}

func runAddFile(cmd *cobra.Command, args []string) error {
	parent, name, err := splitTarget(args[0])
	if err != nil {
		return err
	}
	if parent == "" {
		return fmt.Errorf("files must live inside a directory; path %q has no directory part", args[0])
	}

	ctx, err := setup(cmd)
	if err != nil {
		return err
	}

	if err := ctx.manager.AddFileAt(parent, treekeep.NewFile(name)); err != nil {
		return err
	}

	fmt.Printf("Added file %q\n", args[0])
	return nil
}
