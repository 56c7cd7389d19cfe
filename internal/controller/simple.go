package controller

import (
	"strings"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/reindex/internal/model"
)

const bannerWidth = 50

// SimpleUI implements UI using cobra Command's plain output. It is used
// when stdout is a pipe or file, so it emits no ANSI sequences.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start prints the pass banner.
func (s *SimpleUI) Start(title string, total int) error {
	s.cmd.Printf("%s...\n", title)
	s.cmd.Println(strings.Repeat("=", bannerWidth))
	s.cmd.Printf("Found %d files to process\n\n", total)

	return nil
}

// FileDone prints a status line for one processed file. Untouched files
// stay quiet so the output mirrors the set of files actually modified.
func (s *SimpleUI) FileDone(result m.FileResult) {
	switch {
	case result.Error != "":
		s.cmd.Printf("  ✗ %s: %s\n", result.File, result.Error)
	case result.Target != "":
		s.cmd.Printf("  ✓ Moved: %s -> %s\n", result.File, result.Target)

		if result.Styles != "" {
			s.cmd.Printf("    with styles: %s\n", result.Styles)
		}
	case result.Changed:
		s.cmd.Printf("  ✓ Fixed: %s\n", result.File)
	}

	if result.Diff != "" {
		s.cmd.Println(indent(result.Diff, "    "))
	}
}

// Summary prints the closing counts.
func (s *SimpleUI) Summary(report m.RunReport) error {
	s.cmd.Println()
	s.cmd.Println(strings.Repeat("=", bannerWidth))
	s.cmd.Printf("Files changed: %d\n", report.Changed)
	s.cmd.Printf("Errors: %d\n", report.Errors)
	s.cmd.Println(strings.Repeat("=", bannerWidth))

	return nil
}

// Candidates renders the candidate table for the list command.
func (s *SimpleUI) Candidates(results []m.FileResult) error {
	if len(results) == 0 {
		s.cmd.Println("No candidate files found")

		return nil
	}

	s.cmd.Printf("\n%s", renderCandidateTable(results))

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {
}

func indent(text, prefix string) string {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}

	return strings.Join(lines, "\n")
}
