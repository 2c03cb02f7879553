//go:build wireinject
// +build wireinject

package app

import (
	"runsh/internal/adapters/command_runner"
	"runsh/internal/adapters/filesystem"
	"runsh/internal/core"
	"runsh/internal/core/handler"
	"runsh/internal/ports"

	"github.com/google/wire"
)

var Adapter = wire.NewSet(
	command_runner.ProvideOsCommandRunner,
	wire.Bind(new(ports.CommandRunner), new(*command_runner.OsCommandRunner)),
	filesystem.ProvideOsFileSystem,
	wire.Bind(new(ports.FileSystem), new(*filesystem.OsFileSystem)),
)

// CoreSet provides domain/core dependencies
var CoreSet = wire.NewSet(
	core.ProvideFileSystemConfigRepository,
	wire.Bind(new(core.ConfigRepository), new(*core.FileSystemConfigRepository)),
)

// CommandHandlerSet combines all sets needed for command handlers
var CommandHandlerSet = wire.NewSet(
	Adapter,
	CoreSet,
)

func InjectConfigRepo() (core.ConfigRepository, error) {
	wire.Build(
		Adapter,
		CoreSet,
	)
	return &core.FileSystemConfigRepository{}, nil
}

func InjectRunScriptCommandHandler() (handler.RunScriptCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideRunScriptCommandHandler,
	)
	return handler.RunScriptCommandHandler{}, nil
}

func InjectInitializeCommandHandler() (handler.InitializeCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideInitializeCommandHandler,
	)
	return handler.InitializeCommandHandler{}, nil
}
