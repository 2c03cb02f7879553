package core

import (
	"fmt"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"runsh/internal/core/domain"
	"runsh/internal/ports"
)

var configFilePath = filepath.Join("~", ".runsh.yaml")

type ConfigRepository interface {
	LoadConfig() (*domain.Config, error)
	SaveConfig(*domain.Config) error
	ConfigExists() (bool, error)
}

type FileSystemConfigRepository struct {
	fileSystem ports.FileSystem
	config     *domain.Config
}

func ProvideFileSystemConfigRepository(fileSystem ports.FileSystem) *FileSystemConfigRepository {
	return &FileSystemConfigRepository{
		fileSystem: fileSystem,
	}
}

// LoadConfig reads ~/.runsh.yaml. A missing config file is not an
// error: the tool must stay usable as a bare script wrapper, so
// defaults are returned instead.
func (c *FileSystemConfigRepository) LoadConfig() (*domain.Config, error) {
	if c.config != nil {
		return c.config, nil
	}

	exists, err := c.fileSystem.FileExists(configFilePath)
	if err != nil {
		return nil, err
	}
	if !exists {
		c.config = &domain.Config{Interpreter: domain.DefaultInterpreter}
		return c.config, nil
	}

	data, err := c.fileSystem.ReadFile(configFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	var config domain.Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %v", err)
	}

	config.ApplyDefaults()
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %v", err)
	}

	c.config = &config

	return &config, nil
}

func (c *FileSystemConfigRepository) SaveConfig(config *domain.Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %v", err)
	}

	if err := c.fileSystem.WriteFile(configFilePath, data, ports.ReadWrite); err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	c.config = nil
	return nil
}

func (c *FileSystemConfigRepository) ConfigExists() (bool, error) {
	return c.fileSystem.FileExists(configFilePath)
}
