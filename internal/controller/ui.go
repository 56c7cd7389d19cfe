// Package controller provides output adapters for displaying refactoring
// progress and results.
package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/reindex/internal/model"
)

// UI defines the interface for reporting a run to the user.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// Start announces a pass and the number of files it will visit.
	Start(title string, total int) error
	// FileDone reports the outcome of one processed file.
	FileDone(result m.FileResult)
	// Summary renders the closing counts for the pass.
	Summary(report m.RunReport) error
	// Candidates renders the candidate table for the list command.
	Candidates(results []m.FileResult) error
	// Close releases any resources the UI holds.
	Close()
}

// NewUI creates a UI based on whether TTY mode is enabled.
// When useTTY is true, it returns a TUI (Bubble Tea).
// When useTTY is false, it returns a SimpleUI (plain text).
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY checks if the given writer is a terminal (TTY).
// Returns false if the output is redirected to a file or pipe.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
