package domain

import "fmt"

// ExecutionResult captures the outcome of running a script: both output
// streams collected to completion and the child's exit status. One is
// produced per invocation and discarded after its content is relayed.
type ExecutionResult struct {
	Script   string
	Stdout   string
	Stderr   string
	ExitCode int
}

func (r *ExecutionResult) Succeeded() bool {
	return r.ExitCode == 0
}

// ExitError propagates a script's non-zero exit status to the process
// exit code, distinguishing it from the tool's own usage and validation
// errors. The diagnostics are written before the error is returned, so
// callers only need the code.
type ExitError struct {
	Script string
	Code   int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("shell script %s exited with status %d", e.Script, e.Code)
}
