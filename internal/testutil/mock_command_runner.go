package testutil

import (
	"github.com/stretchr/testify/mock"

	"runsh/internal/core/domain"
)

// MockCommandRunner provides a testify mock for ports.CommandRunner
type MockCommandRunner struct {
	mock.Mock
}

func (m *MockCommandRunner) Run(name string, args ...string) (*domain.ExecutionResult, error) {
	callArgs := m.Called(name, args)
	if callArgs.Get(0) == nil {
		return nil, callArgs.Error(1)
	}
	return callArgs.Get(0).(*domain.ExecutionResult), callArgs.Error(1)
}
