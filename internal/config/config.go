package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Output contains configuration for the rendered line destination.
type Output struct {
	// Color selects escape-code styling: "auto", "always", or "never".
	Color string `toml:"color"`
}

// Logging contains configuration for event formatting and filtering.
type Logging struct {
	// RootModule is the top-level module name stripped from nested
	// module paths. Defaults to the binary name.
	RootModule string `toml:"root_module"`
	// Filter is an explicit filter expression. When set it overrides
	// the --quiet/--verbose arithmetic, exactly like LANTERN_LOG.
	Filter string `toml:"filter"`
}

// Config encapsulates all configuration values for lantern.
type Config struct {
	Logging Logging `toml:"logging"`
	Output  Output  `toml:"output"`
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Logging: Logging{RootModule: "lantern"},
		Output:  Output{Color: "auto"},
	}
}

// DefaultConfigPath returns the default configuration file location.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "lantern", "config.toml"), nil
}

// Load parses and validates a configuration file. An empty path falls
// back to the default location; a missing file yields the defaults.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return "", false, err
		}
		path = defaultPath
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return path, false, nil
		}
		return "", false, fmt.Errorf("stat config: %w", err)
	}
	if info.IsDir() {
		return "", false, fmt.Errorf("config path %s is a directory", path)
	}
	return path, true, nil
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Logging.RootModule) == "" {
		return errors.New("logging.root_module must be set")
	}
	switch strings.ToLower(strings.TrimSpace(c.Output.Color)) {
	case "auto", "always", "never", "":
	default:
		return fmt.Errorf("output.color must be auto, always, or never, got %q", c.Output.Color)
	}
	return nil
}

// WriteSample writes the annotated sample configuration to path,
// refusing to overwrite an existing file.
func WriteSample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ensure config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
