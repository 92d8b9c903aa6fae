package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yourusername/mado-cli/internal/geometry"
	"github.com/yourusername/mado-cli/internal/types"
)

const (
	DefaultConfigDir  = ".config/mado"
	DefaultConfigFile = "config.yaml"

	DefaultPresetID = "default"
)

// Defaults
const (
	DefaultSmallStep    = 1
	DefaultLargeStep    = 5
	DefaultPollInterval = "250ms"
	DefaultAlignment    = "edge"
	DefaultBackend      = "remote"
	DefaultSocket       = "/tmp/mado-host.sock"
	DefaultTimeout      = "5s"
	DefaultPresetFrame  = "1280x774+58+48"
)

// Default returns the built-in configuration
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills every unset field
func (c *Config) ApplyDefaults() {
	s := &c.Settings
	if s.SmallStep == 0 {
		s.SmallStep = DefaultSmallStep
	}
	if s.LargeStep == 0 {
		s.LargeStep = DefaultLargeStep
	}
	if s.PollInterval == "" {
		s.PollInterval = DefaultPollInterval
	}
	if s.Alignment == "" {
		s.Alignment = DefaultAlignment
	}
	if s.Backend == "" {
		s.Backend = DefaultBackend
	}
	if c.Host.Socket == "" {
		c.Host.Socket = DefaultSocket
	}
	if c.Host.Timeout == "" {
		c.Host.Timeout = DefaultTimeout
	}
	if _, err := c.GetPreset(DefaultPresetID); err != nil {
		c.Presets = append(c.Presets, PresetConfig{
			ID:          DefaultPresetID,
			Description: "Snap hot-key rectangle",
			Frame:       DefaultPresetFrame,
		})
	}
}

// LoadConfig loads configuration from the specified path or default location
// If path is empty, uses ~/.config/mado/config.yaml (or config.json) and
// falls back to the built-in defaults when neither exists.
// Supports both .yaml and .json extensions
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot determine home directory: %w", err)
		}
		// Try YAML first, then JSON
		yamlPath := filepath.Join(home, DefaultConfigDir, "config.yaml")
		jsonPath := filepath.Join(home, DefaultConfigDir, "config.json")

		if _, err := os.Stat(yamlPath); err == nil {
			path = yamlPath
		} else if _, err := os.Stat(jsonPath); err == nil {
			path = jsonPath
		} else {
			return Default(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	return LoadConfigFromBytes(data, ext)
}

// LoadConfigFromBytes loads configuration from raw bytes
// format should be "yaml" or "json"
func LoadConfigFromBytes(data []byte, format string) (*Config, error) {
	var cfg Config

	switch format {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case "json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", format)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// GetConfigPath returns the default config file path
func GetConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, DefaultConfigDir, DefaultConfigFile)
}

// WriteDefault writes the commented default config to path. It refuses to
// overwrite an existing file unless force is set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists: %s", path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to stat config file: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(DefaultYAML), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// GetPreset returns a preset by ID
func (c *Config) GetPreset(id string) (*PresetConfig, error) {
	for i := range c.Presets {
		if c.Presets[i].ID == id {
			return &c.Presets[i], nil
		}
	}
	return nil, fmt.Errorf("preset not found: %s", id)
}

// GetPresetIDs returns all available preset IDs
func (c *Config) GetPresetIDs() []string {
	ids := make([]string, len(c.Presets))
	for i, p := range c.Presets {
		ids[i] = p.ID
	}
	return ids
}

// PresetFrame returns a preset's raw flipped-global rectangle
func (c *Config) PresetFrame(id string) (types.Rect, error) {
	p, err := c.GetPreset(id)
	if err != nil {
		return types.Rect{}, err
	}
	return ParseFrameSpec(p.Frame)
}

// GetPollInterval returns the refresh tick
func (c *Config) GetPollInterval() time.Duration {
	d, err := parseDuration(c.Settings.PollInterval)
	if err != nil {
		return 250 * time.Millisecond
	}
	return d
}

// GetTimeout returns the host request timeout
func (c *Config) GetTimeout() time.Duration {
	d, err := parseDuration(c.Host.Timeout)
	if err != nil {
		return 5 * time.Second
	}
	return d
}

// GetAlignMode returns the configured alignment mode
func (c *Config) GetAlignMode() geometry.AlignMode {
	mode, err := geometry.ParseAlignMode(c.Settings.Alignment)
	if err != nil {
		return geometry.AlignEdge
	}
	return mode
}

// DefaultYAML is written by "mado config init"
const DefaultYAML = `# mado configuration

settings:
  # Arrow keys move or resize by smallStep; holding shift uses largeStep
  smallStep: 1
  largeStep: 5

  # Refresh tick for watch and interactive mode
  pollInterval: 250ms

  # edge: align right/up to the usable frame's true edge
  # legacy: use the usable frame's width/height as if its origin were zero
  alignment: edge

  # remote (accessibility host over a unix socket) or x11
  backend: remote

host:
  socket: /tmp/mado-host.sock
  timeout: 5s

# Snap presets are raw screen rectangles, origin at the top-left of the
# primary display. Formats: "WxH+X+Y" or "X,Y,W,H".
presets:
  - id: default
    description: Snap hot-key rectangle
    frame: 1280x774+58+48
`
