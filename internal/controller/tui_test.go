package controller

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/reindex/internal/model"
)

func TestRunModel_TracksProgress(t *testing.T) {
	model := newRunModel("Fixing import paths after refactoring", 3)

	next, _ := model.Update(fileDoneMsg{result: m.FileResult{File: "src/a/index.ts", Changed: true}})
	run, ok := next.(runModel)
	require.True(t, ok)

	assert.Equal(t, 1, run.done)
	require.Len(t, run.lines, 1)
	assert.Contains(t, run.lines[0], "src/a/index.ts")

	view := run.View()
	assert.Contains(t, view, "Fixing import paths after refactoring")
	assert.Contains(t, view, "1/3")
}

func TestRunModel_UnchangedFilesAdvanceSilently(t *testing.T) {
	model := newRunModel("title", 2)

	next, _ := model.Update(fileDoneMsg{result: m.FileResult{File: "src/a/index.ts", Changed: false}})
	run := next.(runModel)

	assert.Equal(t, 1, run.done)
	assert.Empty(t, run.lines)
}

func TestRunModel_SummaryQuits(t *testing.T) {
	model := newRunModel("title", 1)

	next, cmd := model.Update(summaryMsg{report: m.RunReport{Changed: 4, Errors: 1}})
	run := next.(runModel)

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	view := run.View()
	assert.Contains(t, view, "Files changed: 4")
	assert.Contains(t, view, "Errors: 1")
}

func TestRunModel_LineWindowIsBounded(t *testing.T) {
	model := newRunModel("title", 100)

	var current tea.Model = model
	for i := range 50 {
		current, _ = current.(runModel).Update(fileDoneMsg{result: m.FileResult{
			File:    m.Path(string(rune('a'+i%26)) + "/index.ts"),
			Changed: true,
		}})
	}

	run := current.(runModel)
	assert.Equal(t, 50, run.done)
	assert.LessOrEqual(t, len(run.lines), maxVisibleLines)
}

func TestRunModel_QuitKeys(t *testing.T) {
	model := newRunModel("title", 1)

	for _, key := range []string{"q", "ctrl+c"} {
		var msg tea.KeyMsg
		if key == "q" {
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
		} else {
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		}

		_, cmd := model.Update(msg)
		require.NotNil(t, cmd, key)
		assert.Equal(t, tea.Quit(), cmd(), key)
	}
}

func TestStatusLine(t *testing.T) {
	assert.Contains(t, statusLine(m.FileResult{File: "a.ts", Changed: true}), "✓ a.ts")
	assert.Contains(t, statusLine(m.FileResult{File: "a.ts", Target: "a/index.ts", Changed: true}), "a.ts -> a/index.ts")
	assert.Contains(t, statusLine(m.FileResult{File: "a.ts", Error: "boom"}), "✗ a.ts: boom")
	assert.Empty(t, statusLine(m.FileResult{File: "a.ts", Changed: false}))
}

func TestTUI_CandidatesFallsBackToTable(t *testing.T) {
	var buf testBuffer

	tui := NewTUI(&buf)
	err := tui.Candidates([]m.FileResult{{File: "src/a/b/index.ts", Specifiers: 2, Changed: true}})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "src/a/b/index.ts")
}

// testBuffer is a minimal io.Writer that is not an *os.File, keeping the
// TUI on its non-interactive paths in tests.
type testBuffer struct {
	data []byte
}

func (b *testBuffer) Write(p []byte) (int, error) {
	b.data = append(b.data, p...)

	return len(p), nil
}

func (b *testBuffer) String() string {
	return string(b.data)
}
