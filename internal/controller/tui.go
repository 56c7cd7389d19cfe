package controller

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/reindex/internal/model"
)

// Message types.
type fileDoneMsg struct {
	result m.FileResult
}

type summaryMsg struct {
	report m.RunReport
}

// TUI implements UI using Bubble Tea for interactive display. The program
// loop runs in its own goroutine while the workflow sends one message per
// processed file.
type TUI struct {
	output  io.Writer
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the progress view.
func (t *TUI) Start(title string, total int) error {
	t.program = tea.NewProgram(newRunModel(title, total), tea.WithOutput(t.output))
	t.done = make(chan struct{})

	go func() {
		defer close(t.done)

		_, _ = t.program.Run()
	}()

	return nil
}

// FileDone forwards a per-file result to the progress view.
func (t *TUI) FileDone(result m.FileResult) {
	if t.program == nil {
		return
	}

	t.program.Send(fileDoneMsg{result: result})
}

// Summary delivers the final counts and waits for the view to render them
// and quit.
func (t *TUI) Summary(report m.RunReport) error {
	if t.program == nil {
		return nil
	}

	t.program.Send(summaryMsg{report: report})
	<-t.done

	return nil
}

// Candidates renders the candidate table. The listing is static output,
// so no interactive loop is needed.
func (t *TUI) Candidates(results []m.FileResult) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(t.output, "No candidate files found")

		return err
	}

	_, err := fmt.Fprintf(t.output, "\n%s", renderCandidateTable(results))

	return err
}

// Close stops the program if it is still running.
func (t *TUI) Close() {
	if t.program == nil {
		return
	}

	t.program.Quit()
	<-t.done
}
