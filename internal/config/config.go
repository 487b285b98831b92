// Package config holds the effect-bearing knobs of the tree engine.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config controls classification thresholds, click-point sampling, the
// annotation renderer, and snapshot timing.
type Config struct {
	// AreaThreshold is the minimum bounding-box area (exclusive, in square
	// pixels) for a control to count as visible.
	AreaThreshold int `yaml:"area_threshold"`

	// ControlShrink scales a control's box before sampling its click
	// point. 0.5 keeps the middle half in each dimension.
	ControlShrink float64 `yaml:"control_shrink"`

	// ScrollShrink is the same factor for scrollable containers.
	ScrollShrink float64 `yaml:"scroll_shrink"`

	// RenderScale scales the screenshot and bounding boxes in the
	// annotated snapshot.
	RenderScale float64 `yaml:"render_scale"`

	// SettleDelayMs is waited before reading the root control so that
	// just-triggered UI transitions finish animating.
	SettleDelayMs int `yaml:"settle_delay_ms"`

	// AvoidedApps are top-level application names excluded from traversal.
	AvoidedApps []string `yaml:"avoided_apps"`

	// Seed seeds click-point sampling and annotation colors. 0 means
	// time-seeded (non-reproducible).
	Seed int64 `yaml:"seed"`
}

// Default returns the standard configuration.
func Default() Config {
	return Config{
		AreaThreshold: 0,
		ControlShrink: 0.5,
		ScrollShrink:  0.8,
		RenderScale:   0.7,
		SettleDelayMs: 500,
		AvoidedApps:   []string{"Program Manager", "Taskbar"},
	}
}

// SettleDelay returns the settle delay as a duration.
func (c Config) SettleDelay() time.Duration {
	return time.Duration(c.SettleDelayMs) * time.Millisecond
}

// Load reads a YAML config file, overlaying it on the defaults. Fields
// absent from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the engine cannot work with.
func (c Config) Validate() error {
	if c.ControlShrink <= 0 || c.ControlShrink > 1 {
		return fmt.Errorf("control_shrink must be in (0, 1], got %v", c.ControlShrink)
	}
	if c.ScrollShrink <= 0 || c.ScrollShrink > 1 {
		return fmt.Errorf("scroll_shrink must be in (0, 1], got %v", c.ScrollShrink)
	}
	if c.RenderScale <= 0 {
		return fmt.Errorf("render_scale must be positive, got %v", c.RenderScale)
	}
	if c.SettleDelayMs < 0 {
		return fmt.Errorf("settle_delay_ms must not be negative, got %d", c.SettleDelayMs)
	}
	if c.AreaThreshold < 0 {
		return fmt.Errorf("area_threshold must not be negative, got %d", c.AreaThreshold)
	}
	return nil
}
