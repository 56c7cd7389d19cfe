package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/reindex/internal/domain"
	m "github.com/mouse-blink/reindex/internal/model"
)

var fixDryRunFlag bool

// fixCmd represents the fix command.
var fixCmd = newFixCmd()

func newFixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix [files...]",
		Short: "Add one level of ../ to relative imports in moved files",
		Long: `Fix rewrites relative import specifiers in files that were moved one
directory level deeper. Every specifier starting with ./ or ../ gains one
parent-traversal segment; bare package imports are left alone.

Without arguments, nested index files under the root are selected by the
structural heuristic. Pass explicit file paths to process exactly those
files instead.`,
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Fix(domain.PassArgs{
				Root:    m.Path(rootDirFlag),
				Files:   parseFiles(args),
				DryRun:  fixDryRunFlag,
				Reports: m.Path(reportsOutputDirFlag),
			})
		},
	}
	cmd.Flags().BoolVarP(&fixDryRunFlag, "dry-run", "n", false, "preview rewrites as diffs without writing")

	return cmd
}

func init() {
	rootCmd.AddCommand(fixCmd)
}
