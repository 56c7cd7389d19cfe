package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/reindex/internal/domain"
	m "github.com/mouse-blink/reindex/internal/model"
)

var moveDryRunFlag bool

// moveCmd represents the move command.
var moveCmd = newMoveCmd()

func newMoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move [files...]",
		Short: "Relocate TypeScript files into nested index directories",
		Long: `Move performs the full refactoring pass: every non-index, non-test .ts and
.tsx file under the root is rewritten with one extra ../ level and written
to <dir>/<name>/index.<ext>. The addition and removal are staged through
git so file history survives the rename, and a sibling <name>.css moves
along with its component.

A git failure on one file is recorded and the batch continues; filesystem
errors abort the run.`,
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Move(domain.MoveArgs{
				PassArgs: domain.PassArgs{
					Root:    m.Path(rootDirFlag),
					Files:   parseFiles(args),
					DryRun:  moveDryRunFlag,
					Reports: m.Path(reportsOutputDirFlag),
				},
			})
		},
	}
	cmd.Flags().BoolVarP(&moveDryRunFlag, "dry-run", "n", false, "preview moves and rewrites without touching the tree")

	return cmd
}

func init() {
	rootCmd.AddCommand(moveCmd)
}
