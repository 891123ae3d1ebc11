package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/treekeep/internal/files/filesystem"
	"github.com/vvka-141/treekeep/internal/report"
	"github.com/vvka-141/treekeep/pkg/treekeep"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a Markdown report of all cataloged files",
	Long: `Generate a Markdown report listing every file in the catalog together
with its current content read from disk.

Files missing on disk render a placeholder instead of failing the report;
binary files render their detected type and size instead of raw bytes.

Examples:
  treekeep report                          # Write full_report.md
  treekeep report -o docs/files.md         # Custom output path
  treekeep report -o -                     # Print to stdout
  treekeep report --content-root /srv/app  # Catalog paths are relative to /srv/app`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

var (
	reportOutput      string
	reportContentRoot string
)

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "",
		"Output path for the Markdown report, or '-' for stdout\n"+
			"(default: report_output from treekeep.yaml, else "+treekeep.DefaultReportFileName+")")
	reportCmd.Flags().StringVar(&reportContentRoot, "content-root", "",
		"Directory prepended to catalog paths when reading file contents")
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx, err := setup(cmd)
	if err != nil {
		return err
	}

	contentRoot := reportContentRoot
	if contentRoot == "" {
		contentRoot = ctx.config.ContentRoot
	}

	gen := report.NewGenerator(filesystem.NewOSFileSystem(), ctx.logger)
	md := gen.Generate(ctx.manager.Structure(), contentRoot)

	output := reportOutput
	if output == "" {
		output = ctx.config.ReportOutput
	}
	if output == "" {
		output = treekeep.DefaultReportFileName
	}

	if output == "-" {
		fmt.Print(md)
		return nil
	}

	if err := os.WriteFile(output, []byte(md), 0o644); err != nil {
		return fmt.Errorf("failed to write report to %q: %w", output, err)
	}
	ctx.logger.Info("report written to %q", output)
	return nil
}
