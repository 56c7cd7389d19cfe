package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/reindex/internal/domain"
	domainmocks "github.com/mouse-blink/reindex/internal/domain/mocks"
	m "github.com/mouse-blink/reindex/internal/model"
)

func TestRepairCmd_Defaults(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newRepairCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Repair", mock.MatchedBy(func(args domain.PassArgs) bool {
		return args.Root == m.Path("src") && !args.DryRun
	})).Return(nil)

	cmd.SetArgs([]string{"repair"})
	require.NoError(t, cmd.Execute())
}

func TestRepairCmd_ReportsFlag(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newRepairCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Repair", mock.MatchedBy(func(args domain.PassArgs) bool {
		return args.Reports == m.Path("out/reports")
	})).Return(nil)

	cmd.SetArgs([]string{"repair", "--reports", "out/reports"})
	require.NoError(t, cmd.Execute())
}
