package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/DCX-dev/stonepack/internal/output"
)

// ConfigFileName is the configuration file looked up in the working
// directory when no explicit path is given.
const ConfigFileName = "config.toml"

// Loader loads the optional config.toml file.
type Loader struct {
	configPath string // Explicit --config path
	logger     output.LoggerInterface
}

// NewLoader creates a Loader. configPath may be empty, in which case only
// ./config.toml is consulted.
func NewLoader(configPath string, logger output.LoggerInterface) *Loader {
	if logger == nil {
		logger = output.DefaultLogger
	}
	return &Loader{
		configPath: configPath,
		logger:     logger,
	}
}

// Load parses the config file and returns its contents plus the path that
// was read. A missing ./config.toml is not an error; a missing explicit
// --config path is.
func (l *Loader) Load() (*FileConfig, string, error) {
	path := l.configPath
	if path == "" {
		if _, err := os.Stat(ConfigFileName); err != nil {
			return &FileConfig{}, "", nil
		}
		path = ConfigFileName
	} else if _, err := os.Stat(path); err != nil {
		return nil, "", fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg FileConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	l.logger.Debug("Loaded config file: %s", path)
	return &cfg, path, nil
}
