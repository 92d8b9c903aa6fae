package config

import (
	"fmt"

	"github.com/yourusername/mado-cli/internal/geometry"
)

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	if err := validateSettings(&c.Settings); err != nil {
		return fmt.Errorf("settings: %w", err)
	}

	if err := validateHost(&c.Host); err != nil {
		return fmt.Errorf("host: %w", err)
	}

	// Validate presets
	presetIDs := make(map[string]bool)
	for i, preset := range c.Presets {
		if preset.ID == "" {
			return fmt.Errorf("preset %d: missing ID", i)
		}
		if presetIDs[preset.ID] {
			return fmt.Errorf("duplicate preset ID: %s", preset.ID)
		}
		presetIDs[preset.ID] = true

		if err := validatePreset(&preset); err != nil {
			return fmt.Errorf("preset %s: %w", preset.ID, err)
		}
	}

	return nil
}

func validateSettings(s *Settings) error {
	if s.SmallStep <= 0 {
		return fmt.Errorf("smallStep must be positive, got %v", s.SmallStep)
	}
	if s.LargeStep <= 0 {
		return fmt.Errorf("largeStep must be positive, got %v", s.LargeStep)
	}
	if s.PollInterval != "" {
		if _, err := parseDuration(s.PollInterval); err != nil {
			return fmt.Errorf("pollInterval: %w", err)
		}
	}
	if _, err := geometry.ParseAlignMode(s.Alignment); err != nil {
		return err
	}
	switch s.Backend {
	case "", "remote", "x11":
	default:
		return fmt.Errorf("unknown backend %q (want remote or x11)", s.Backend)
	}
	return nil
}

func validateHost(h *HostConfig) error {
	if h.Timeout != "" {
		if _, err := parseDuration(h.Timeout); err != nil {
			return fmt.Errorf("timeout: %w", err)
		}
	}
	return nil
}

func validatePreset(p *PresetConfig) error {
	r, err := ParseFrameSpec(p.Frame)
	if err != nil {
		return err
	}
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("frame must have positive size, got %s", p.Frame)
	}
	return nil
}
