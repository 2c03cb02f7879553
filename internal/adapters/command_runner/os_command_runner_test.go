package command_runner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.sh")
	// No execute bit on purpose; the interpreter only needs to read it.
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write script: %v", err)
	}
	return path
}

func TestOsCommandRunner_Run_CapturesStdout(t *testing.T) {
	script := writeScript(t, "#!/bin/bash\necho hello\n")
	sut := ProvideOsCommandRunner()

	result, err := sut.Run("/bin/bash", script)

	require.NoError(t, err)
	assert.Equal(t, 0, result.ExitCode)
	assert.Equal(t, "hello\n", result.Stdout)
	assert.Empty(t, result.Stderr)
}

func TestOsCommandRunner_Run_CapturesStderrAndExitCode(t *testing.T) {
	script := writeScript(t, "#!/bin/bash\necho oops >&2\nexit 3\n")
	sut := ProvideOsCommandRunner()

	result, err := sut.Run("/bin/bash", script)

	// A non-zero exit status is a result, not an error.
	require.NoError(t, err)
	assert.Equal(t, 3, result.ExitCode)
	assert.Equal(t, "oops\n", result.Stderr)
	assert.Empty(t, result.Stdout)
}

func TestOsCommandRunner_Run_ForwardsArguments(t *testing.T) {
	script := writeScript(t, "#!/bin/bash\necho \"$1\"\n")
	sut := ProvideOsCommandRunner()

	result, err := sut.Run("/bin/bash", script, "foo", "bar")

	require.NoError(t, err)
	assert.Equal(t, "foo\n", result.Stdout)
}

func TestOsCommandRunner_Run_SeparatesStreams(t *testing.T) {
	script := writeScript(t, "#!/bin/bash\necho out\necho err >&2\nexit 1\n")
	sut := ProvideOsCommandRunner()

	result, err := sut.Run("/bin/bash", script)

	require.NoError(t, err)
	assert.Equal(t, 1, result.ExitCode)
	assert.Equal(t, "out\n", result.Stdout)
	assert.Equal(t, "err\n", result.Stderr)
}

func TestOsCommandRunner_Run_IsDeterministicAcrossInvocations(t *testing.T) {
	script := writeScript(t, "#!/bin/bash\necho hello\n")
	sut := ProvideOsCommandRunner()

	first, err := sut.Run("/bin/bash", script)
	require.NoError(t, err)
	second, err := sut.Run("/bin/bash", script)
	require.NoError(t, err)

	assert.Equal(t, first.Stdout, second.Stdout)
	assert.Equal(t, first.ExitCode, second.ExitCode)
}

func TestOsCommandRunner_Run_InterpreterMissing(t *testing.T) {
	sut := ProvideOsCommandRunner()

	result, err := sut.Run("/nonexistent/interpreter", "script.sh")

	assert.Nil(t, result)
	assert.Error(t, err)
}
