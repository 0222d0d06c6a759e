/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ssargent/cdstream/pkg/cd"
	"github.com/ssargent/cdstream/pkg/segment"
)

// Config represents the cdtool configuration
type Config struct {
	DataDir  string   `yaml:"data_dir"`
	Port     int      `yaml:"port"`
	Bind     string   `yaml:"bind"`
	Security Security `yaml:"security"`
	Logging  Logging  `yaml:"logging"`
	Codec    Codec    `yaml:"codec"`
	Store    Store    `yaml:"store"`
}

// Security contains security-related configuration
type Security struct {
	APIKey string `yaml:"api_key"`
}

// Logging contains logging configuration
type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text or json
}

// Codec contains defaults for reading and building record streams
type Codec struct {
	ItemKind         string `yaml:"item_kind"`
	FileSegmentSize  int    `yaml:"file_segment_size"`
	ImageSegmentSize int    `yaml:"image_segment_size"`
	BlobSegmentSize  int    `yaml:"blob_segment_size"`
	SplitLines       bool   `yaml:"split_lines"`
}

// Store contains item store configuration
type Store struct {
	Compression string `yaml:"compression"` // snappy or none
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		DataDir: "./data",
		Port:    8080,
		Bind:    "127.0.0.1",
		Security: Security{
			APIKey: "auto",
		},
		Logging: Logging{
			Level:  "info",
			Format: "text",
		},
		Codec: Codec{
			ItemKind:         cd.KindComposite.String(),
			FileSegmentSize:  segment.DefaultCapacity,
			ImageSegmentSize: segment.DefaultCapacity,
			BlobSegmentSize:  segment.DefaultCapacity,
			SplitLines:       true,
		},
		Store: Store{
			Compression: "snappy",
		},
	}
}

// LoadConfig loads configuration from the specified path. Sections missing
// from the file keep their default values.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	// Validate path to prevent directory traversal
	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}
	return config, nil
}

// SaveConfig saves the configuration to the specified path with secure permissions
func SaveConfig(config *Config, configPath string) error {
	// Ensure config directory exists
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Write with secure permissions (0600)
	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks values that would otherwise fail later, deep inside a
// command.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	switch c.Logging.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Logging.Format)
	}
	switch c.Store.Compression {
	case "", "none", "snappy":
	default:
		return fmt.Errorf("unknown compression %q", c.Store.Compression)
	}
	if _, err := c.ItemKind(); err != nil {
		return err
	}
	for _, k := range c.SegmentKinds() {
		if err := k.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ItemKind returns the configured default item kind.
func (c *Config) ItemKind() (cd.ItemKind, error) {
	return cd.ParseItemKind(c.Codec.ItemKind)
}

// SegmentKinds returns the segment kinds with the configured capacities.
func (c *Config) SegmentKinds() []segment.Kind {
	return []segment.Kind{
		segment.File.WithCapacity(c.Codec.FileSegmentSize),
		segment.Image.WithCapacity(c.Codec.ImageSegmentSize),
		segment.Blob.WithCapacity(c.Codec.BlobSegmentSize),
	}
}

// GenerateSecureKey generates a cryptographically secure random key
func GenerateSecureKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate secure key: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// BootstrapConfig creates a new configuration with a generated API key
func BootstrapConfig(configPath string, dataDir string) (*Config, error) {
	config := DefaultConfig()
	if dataDir != "" {
		config.DataDir = dataDir
	}

	apiKey, err := GenerateSecureKey(32) // 256 bits
	if err != nil {
		return nil, fmt.Errorf("failed to generate API key: %w", err)
	}
	config.Security.APIKey = apiKey

	// Save the configuration
	if err := SaveConfig(config, configPath); err != nil {
		return nil, fmt.Errorf("failed to save bootstrap config: %w", err)
	}

	return config, nil
}

// GetDefaultConfigPath returns the default configuration path for the current platform
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./cdtool.yaml"
	}

	// For Linux/macOS, use ~/.config/cdtool/config.yaml
	configDir := filepath.Join(homeDir, ".config", "cdtool")
	return filepath.Join(configDir, "config.yaml")
}

// ConfigExists checks if a configuration file exists
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}
