package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/reindex/internal/domain"
	m "github.com/mouse-blink/reindex/internal/model"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [files...]",
		Short: "List fix candidates and their specifier counts",
		Long: `List shows which files the structural heuristic would select for a fix
pass, how many relative import specifiers each contains, and whether a fix
would change it. Nothing is written.`,
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.List(domain.ListArgs{
				Root:  m.Path(rootDirFlag),
				Files: parseFiles(args),
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
