package ports

import "runsh/internal/core/domain"

// CommandRunner executes a command synchronously, blocking until it
// terminates and collecting both output streams to completion. The
// child inherits the caller's environment and working directory.
type CommandRunner interface {
	Run(name string, args ...string) (*domain.ExecutionResult, error)
}
