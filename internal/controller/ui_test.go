package controller

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestNewUI_SelectsImplementation(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	ui := NewUI(cmd, false)
	_, ok := ui.(*SimpleUI)
	assert.True(t, ok, "non-TTY output should use SimpleUI")

	ui = NewUI(cmd, true)
	_, ok = ui.(*TUI)
	assert.True(t, ok, "TTY output should use TUI")
}

func TestIsTTY_FalseForBuffer(t *testing.T) {
	assert.False(t, IsTTY(&bytes.Buffer{}))
}
