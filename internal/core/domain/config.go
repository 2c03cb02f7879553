package domain

import "fmt"

// DefaultInterpreter is the POSIX shell used when the config does not
// name one.
const DefaultInterpreter = "/bin/bash"

// Config holds the application configuration.
type Config struct {
	// Interpreter is the shell binary scripts are executed with.
	Interpreter string `yaml:"interpreter"`
	// Scripts maps alias names to script paths. An alias is only
	// consulted when the invocation argument does not exist on disk.
	Scripts map[string]string `yaml:"scripts,omitempty"`
}

func CreateDefaultConfig() Config {
	return Config{
		Interpreter: DefaultInterpreter,
		Scripts: map[string]string{
			"sample": "./scripts/sample.sh",
		},
	}
}

// ApplyDefaults fills in zero values so a partial config file still
// yields a runnable configuration.
func (c *Config) ApplyDefaults() {
	if c.Interpreter == "" {
		c.Interpreter = DefaultInterpreter
	}
}

func (c *Config) Validate() error {
	for name, path := range c.Scripts {
		if name == "" {
			return fmt.Errorf("script alias with empty name")
		}
		if path == "" {
			return fmt.Errorf("script alias '%s' has an empty path", name)
		}
	}
	return nil
}
