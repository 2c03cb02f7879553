package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"runsh/internal/core/domain"
)

func TestRelayResult_SuccessWritesStdoutVerbatim(t *testing.T) {
	var stdout, stderr bytes.Buffer
	result := &domain.ExecutionResult{Script: "hello.sh", Stdout: "hello\n"}

	err := relayResult(result, &stdout, &stderr)

	require.NoError(t, err)
	assert.Equal(t, "hello\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRelayResult_SuccessWithEmptyOutputWritesNothing(t *testing.T) {
	var stdout, stderr bytes.Buffer
	result := &domain.ExecutionResult{Script: "quiet.sh"}

	err := relayResult(result, &stdout, &stderr)

	require.NoError(t, err)
	assert.Empty(t, stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRelayResult_FailureSurfacesDiagnosticsOnStderr(t *testing.T) {
	var stdout, stderr bytes.Buffer
	result := &domain.ExecutionResult{
		Script:   "/build/fail.sh",
		Stdout:   "partial output\n",
		Stderr:   "oops",
		ExitCode: 3,
	}

	err := relayResult(result, &stdout, &stderr)

	require.Error(t, err)
	var exitErr *domain.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 3, exitErr.Code)
	assert.Equal(t, "/build/fail.sh", exitErr.Script)

	// Nothing belongs on stdout when the script failed.
	assert.Empty(t, stdout.String())

	combined := stderr.String()
	assert.Contains(t, combined, "error running shell script: /build/fail.sh")
	assert.Contains(t, combined, "partial output")
	assert.Contains(t, combined, "oops")
	// The header comes before the relayed streams.
	assert.Less(t,
		bytes.Index(stderr.Bytes(), []byte("/build/fail.sh")),
		bytes.Index(stderr.Bytes(), []byte("oops")),
		"header should precede the child's streams")
}

func TestRelayResult_FailureSkipsEmptyStreams(t *testing.T) {
	var stdout, stderr bytes.Buffer
	result := &domain.ExecutionResult{Script: "fail.sh", ExitCode: 1}

	err := relayResult(result, &stdout, &stderr)

	require.Error(t, err)
	assert.Equal(t, 1, err.(*domain.ExitError).Code)
	assert.Contains(t, stderr.String(), "error running shell script: fail.sh")
	// Only the header and its newline; no blank lines for empty streams.
	assert.Equal(t, 1, bytes.Count(stderr.Bytes(), []byte("\n")))
}
