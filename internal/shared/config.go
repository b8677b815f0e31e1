package shared

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Picker PickerConfig `toml:"picker"`
	Device DeviceConfig `toml:"device"`
	Log    LogConfig    `toml:"log"`
}

// PickerConfig contains the defaults applied to every picker the CLI opens.
type PickerConfig struct {
	Title          string  `toml:"title"`
	CancelLabel    string  `toml:"cancel_label"`
	ConfirmLabel   string  `toml:"confirm_label"`
	DurationMS     int     `toml:"duration_ms"`
	OverlayColor   string  `toml:"overlay_color"`
	OverlayOpacity float64 `toml:"overlay_opacity"`
	FrameRate      int     `toml:"frame_rate"`
	MaxVisible     int     `toml:"max_visible"`
}

// Duration returns DurationMS as a [time.Duration].
func (p PickerConfig) Duration() time.Duration {
	return time.Duration(p.DurationMS) * time.Millisecond
}

// DeviceConfig selects the device profile used for safe-area adaptation.
//
// When Platform is set the explicit geometry wins over Profile.
type DeviceConfig struct {
	Profile  string `toml:"profile"`
	Platform string `toml:"platform"`
	Width    int    `toml:"width"`
	Height   int    `toml:"height"`
	IsPad    bool   `toml:"is_pad"`
	IsTV     bool   `toml:"is_tv"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// Keys missing from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// Validate reports the first invalid setting, wrapped in [ErrInvalidConfig].
func (c *Config) Validate() error {
	p := c.Picker
	if p.DurationMS < 0 {
		return fmt.Errorf("%w: duration_ms must not be negative, got %d", ErrInvalidConfig, p.DurationMS)
	}
	if p.OverlayOpacity < 0 || p.OverlayOpacity > 1 {
		return fmt.Errorf("%w: overlay_opacity must be within [0, 1], got %v", ErrInvalidConfig, p.OverlayOpacity)
	}
	if _, err := colorful.Hex(p.OverlayColor); err != nil {
		return fmt.Errorf("%w: overlay_color %q: %v", ErrInvalidConfig, p.OverlayColor, err)
	}
	if p.FrameRate < 1 || p.FrameRate > 240 {
		return fmt.Errorf("%w: frame_rate must be within [1, 240], got %d", ErrInvalidConfig, p.FrameRate)
	}
	if p.MaxVisible < 1 {
		return fmt.Errorf("%w: max_visible must be positive, got %d", ErrInvalidConfig, p.MaxVisible)
	}
	return nil
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
