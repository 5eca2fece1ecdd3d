// Package config handles meshtool configuration loading and management.
package config

import "github.com/Faultbox/meshkit/pkg/mesh"

// Config holds all meshtool settings.
type Config struct {
	Mesh    MeshConfig    `yaml:"mesh"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// MeshConfig holds mesh building settings.
type MeshConfig struct {
	Validate     bool `yaml:"validate"`      // Check buffer invariants after building
	MorphTargets bool `yaml:"morph_targets"` // Set the morph targets bit in pipeline keys
	// FeatureBits are downstream pipeline key bits ORed into every key.
	FeatureBits uint64 `yaml:"feature_bits"`
	// DefaultTopology is used when a key is requested without a topology.
	DefaultTopology mesh.Topology `yaml:"default_topology"`
}

// OutputConfig holds buffer output settings.
type OutputConfig struct {
	Dir          string `yaml:"dir"`
	WriteBuffers bool   `yaml:"write_buffers"` // Write .vtx/.idx files per shape
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Mesh: MeshConfig{
			Validate:        true,
			MorphTargets:    false,
			FeatureBits:     0,
			DefaultTopology: mesh.DefaultTopology,
		},
		Output: OutputConfig{
			Dir:          "out",
			WriteBuffers: false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
