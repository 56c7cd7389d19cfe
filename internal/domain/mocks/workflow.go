// Package mocks provides testify mocks for the domain interfaces.
package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/mouse-blink/reindex/internal/domain"
)

// MockWorkflow is a mock implementation of domain.Workflow.
type MockWorkflow struct {
	mock.Mock
}

type mockConstructorTestingT interface {
	mock.TestingT
	Cleanup(func())
}

// NewMockWorkflow creates a new MockWorkflow and registers a cleanup hook
// that asserts the mock's expectations.
func NewMockWorkflow(t mockConstructorTestingT) *MockWorkflow {
	m := &MockWorkflow{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// Fix provides a mock function with given fields: args.
func (m *MockWorkflow) Fix(args domain.PassArgs) error {
	ret := m.Called(args)

	return ret.Error(0)
}

// Repair provides a mock function with given fields: args.
func (m *MockWorkflow) Repair(args domain.PassArgs) error {
	ret := m.Called(args)

	return ret.Error(0)
}

// Move provides a mock function with given fields: args.
func (m *MockWorkflow) Move(args domain.MoveArgs) error {
	ret := m.Called(args)

	return ret.Error(0)
}

// List provides a mock function with given fields: args.
func (m *MockWorkflow) List(args domain.ListArgs) error {
	ret := m.Called(args)

	return ret.Error(0)
}
