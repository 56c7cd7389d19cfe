// Package cmd provides the root command and CLI setup for reindex.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/reindex/internal/adapter"
	"github.com/mouse-blink/reindex/internal/controller"
	"github.com/mouse-blink/reindex/internal/domain"
	m "github.com/mouse-blink/reindex/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var gitAdapter adapter.GitAdapter
var reportStore adapter.ReportStore
var ui controller.UI
var workflow domain.Workflow

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	gitAdapter = adapter.NewLocalGitAdapter()
	reportStore = adapter.NewReportStore()
	workflow = domain.NewWorkflow(fsAdapter, gitAdapter, reportStore, ui)
}

var rootDirFlag string
var reportsOutputDirFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reindex",
		Short: "Nested-index refactor toolkit for TypeScript trees",
		Long: `Reindex supports a source-tree refactor that moves TypeScript files into
nested index directories (Widget.tsx becomes Widget/index.tsx) and rewrites
relative import specifiers to compensate for the new directory depth.

Moved files are located by a structural rule: an index.ts/index.tsx file
nested more than one level below the root is assumed to have been relocated.
Pass explicit file paths to any subcommand to bypass that heuristic.`,
	}

	cmd.PersistentFlags().StringVarP(&rootDirFlag, "root", "r", "src", "root directory of the source tree to scan")
	cmd.PersistentFlags().StringVar(&reportsOutputDirFlag, "reports", ".reindex-reports", "directory where run reports are written")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parseFiles(args []string) []m.Path {
	files := make([]m.Path, 0, len(args))
	for _, arg := range args {
		files = append(files, m.Path(arg))
	}

	return files
}
