package command_runner

import (
	"bytes"
	"errors"
	"os/exec"

	"runsh/internal/core/domain"
	"runsh/internal/ports"
)

// OsCommandRunner executes commands using os/exec. Output is buffered in
// full before the call returns; nothing is streamed to the terminal.
type OsCommandRunner struct{}

func ProvideOsCommandRunner() *OsCommandRunner {
	return &OsCommandRunner{}
}

func (r *OsCommandRunner) Run(name string, args ...string) (*domain.ExecutionResult, error) {
	cmd := exec.Command(name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := &domain.ExecutionResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			// The command never ran (interpreter missing, not
			// executable, ...). There is no exit status to relay.
			return nil, err
		}
		result.ExitCode = exitErr.ExitCode()
	}

	return result, nil
}

var _ ports.CommandRunner = (*OsCommandRunner)(nil)
