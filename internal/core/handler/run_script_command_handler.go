package handler

import (
	"fmt"

	"runsh/internal/core"
	"runsh/internal/core/domain"
	"runsh/internal/ports"
)

type RunScriptCommandHandler struct {
	configRepository core.ConfigRepository
	fileSystem       ports.FileSystem
	commandRunner    ports.CommandRunner
}

func ProvideRunScriptCommandHandler(
	configRepository core.ConfigRepository,
	fileSystem ports.FileSystem,
	commandRunner ports.CommandRunner,
) RunScriptCommandHandler {
	return RunScriptCommandHandler{
		configRepository: configRepository,
		fileSystem:       fileSystem,
		commandRunner:    commandRunner,
	}
}

// Handle runs a shell script through the configured interpreter and
// returns the captured result. The script is made executable first,
// as an explicit precondition of the invocation; callers should treat
// this as a side effect on the script file. Arguments are forwarded
// verbatim as the script's positional parameters.
func (h *RunScriptCommandHandler) Handle(scriptPath string, scriptArgs []string) (*domain.ExecutionResult, error) {
	config, err := h.configRepository.LoadConfig()
	if err != nil {
		return nil, err
	}

	script, err := h.resolveScript(config, scriptPath)
	if err != nil {
		return nil, err
	}

	if err := h.fileSystem.MakeExecutable(script); err != nil {
		return nil, fmt.Errorf("failed to make script executable: %v", err)
	}

	runArgs := append([]string{script}, scriptArgs...)
	result, err := h.commandRunner.Run(config.Interpreter, runArgs...)
	if err != nil {
		return nil, err
	}
	result.Script = script

	return result, nil
}

// resolveScript maps the invocation argument to a script file. A path
// that exists on disk always wins; only then are configured aliases
// consulted.
func (h *RunScriptCommandHandler) resolveScript(config *domain.Config, scriptPath string) (string, error) {
	exists, err := h.fileSystem.FileExists(scriptPath)
	if err != nil {
		return "", err
	}
	if exists {
		return scriptPath, nil
	}

	if aliased, ok := config.Scripts[scriptPath]; ok {
		aliasExists, err := h.fileSystem.FileExists(aliased)
		if err != nil {
			return "", err
		}
		if aliasExists {
			return aliased, nil
		}
		return "", fmt.Errorf("shell script not found: %s", aliased)
	}

	return "", fmt.Errorf("shell script not found: %s", scriptPath)
}
