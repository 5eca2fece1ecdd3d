package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/meshkit/pkg/pipeline"
)

var (
	// ErrFeatureBits is returned when configured feature bits overlap the
	// topology or morph target bits of a pipeline key.
	ErrFeatureBits = errors.New("config: feature bits overlap reserved key bits")
	// ErrTopology is returned for a default topology outside the known set.
	ErrTopology = errors.New("config: invalid default topology")
	// ErrOutputDir is returned when buffers are written without an output dir.
	ErrOutputDir = errors.New("config: output dir required to write buffers")
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	// Explicit path takes priority over the search locations.
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings that would otherwise produce wrong pipeline keys
// or misplaced buffers.
func (c *Config) Validate() error {
	if reserved := pipeline.Key(c.Mesh.FeatureBits) & pipeline.ReservedBits; reserved != 0 {
		return fmt.Errorf("%w: feature_bits %#x sets %#x", ErrFeatureBits, c.Mesh.FeatureBits, reserved.Bits())
	}
	if !c.Mesh.DefaultTopology.Valid() {
		return fmt.Errorf("%w: %v", ErrTopology, c.Mesh.DefaultTopology)
	}
	if c.Output.WriteBuffers && c.Output.Dir == "" {
		return ErrOutputDir
	}
	return nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./meshtool.yaml",
		filepath.Join(ConfigDir(), "meshtool.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "meshkit")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "meshkit")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "meshkit")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "meshkit")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
