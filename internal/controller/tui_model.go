package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/reindex/internal/model"
)

const maxVisibleLines = 10

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("6"))

	fixedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("2"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("1"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	summaryStyle = lipgloss.NewStyle().
			Bold(true)
)

// runModel is the Bubble Tea model for a refactoring pass: a progress bar
// over the file batch plus a rolling window of recent status lines.
type runModel struct {
	title    string
	total    int
	done     int
	progress progress.Model
	lines    []string
	report   *m.RunReport
}

func newRunModel(title string, total int) runModel {
	return runModel{
		title:    title,
		total:    total,
		progress: progress.New(progress.WithDefaultGradient()),
	}
}

func (r runModel) Init() tea.Cmd {
	return nil
}

func (r runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return r, tea.Quit
		}

	case tea.WindowSizeMsg:
		width := msg.Width - 4
		if width > 80 {
			width = 80
		}

		if width > 0 {
			r.progress.Width = width
		}

	case fileDoneMsg:
		r.done++

		if line := statusLine(msg.result); line != "" {
			r.lines = append(r.lines, line)
		}

		if msg.result.Diff != "" {
			for _, line := range strings.Split(strings.TrimSuffix(msg.result.Diff, "\n"), "\n") {
				r.lines = append(r.lines, mutedStyle.Render("  "+line))
			}
		}

		if len(r.lines) > maxVisibleLines {
			r.lines = r.lines[len(r.lines)-maxVisibleLines:]
		}

	case summaryMsg:
		r.report = &msg.report

		return r, tea.Quit
	}

	return r, nil
}

func (r runModel) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(r.title))
	sb.WriteString("\n\n")

	percent := 1.0
	if r.total > 0 {
		percent = float64(r.done) / float64(r.total)
	}

	sb.WriteString(r.progress.ViewAs(percent))
	sb.WriteString(mutedStyle.Render(fmt.Sprintf("  %d/%d", r.done, r.total)))
	sb.WriteString("\n\n")

	for _, line := range r.lines {
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	if r.report != nil {
		sb.WriteString("\n")
		sb.WriteString(summaryStyle.Render(fmt.Sprintf("Files changed: %d   Errors: %d", r.report.Changed, r.report.Errors)))
		sb.WriteString("\n")
	}

	return sb.String()
}

func statusLine(result m.FileResult) string {
	switch {
	case result.Error != "":
		return errorStyle.Render(fmt.Sprintf("✗ %s: %s", result.File, result.Error))
	case result.Target != "":
		line := fixedStyle.Render(fmt.Sprintf("✓ %s -> %s", result.File, result.Target))
		if result.Styles != "" {
			line += mutedStyle.Render(" +styles")
		}

		return line
	case result.Changed:
		return fixedStyle.Render(fmt.Sprintf("✓ %s", result.File))
	default:
		return ""
	}
}
