package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/reindex/internal/domain"
	m "github.com/mouse-blink/reindex/internal/model"
)

var repairDryRunFlag bool

// repairCmd represents the repair command.
var repairCmd = newRepairCmd()

func newRepairCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repair [files...]",
		Short: "Remove one level of ../ from over-corrected imports",
		Long: `Repair undoes a double application of fix: it strips exactly one leading
../ segment from every relative specifier that has one. Specifiers without
a ../ segment are left untouched.`,
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Repair(domain.PassArgs{
				Root:    m.Path(rootDirFlag),
				Files:   parseFiles(args),
				DryRun:  repairDryRunFlag,
				Reports: m.Path(reportsOutputDirFlag),
			})
		},
	}
	cmd.Flags().BoolVarP(&repairDryRunFlag, "dry-run", "n", false, "preview rewrites as diffs without writing")

	return cmd
}

func init() {
	rootCmd.AddCommand(repairCmd)
}
