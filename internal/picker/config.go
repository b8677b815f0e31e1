package picker

import (
	"slices"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/desertthunder/pickx/internal/shared"
)

const (
	DefaultCancelLabel    = "Cancel"
	DefaultConfirmLabel   = "Confirm"
	DefaultDuration       = 330 * time.Millisecond
	DefaultOverlayColor   = "#000000"
	DefaultOverlayOpacity = 0.3
	DefaultBackdropColor  = "#c6c6c6"
	DefaultMaxVisible     = 5
)

// Style holds the timing and color overrides of a picker.
//
// A zero Duration or OverlayOpacity selects the default; a negative one disables the animation or the tint.
type Style struct {
	Duration       time.Duration
	OverlayColor   string
	OverlayOpacity float64
	BackdropColor  string          // Color of backdrop text before it is tinted
	TitleStyle     *lipgloss.Style // nil keeps the default title style
}

// Config is the read-only description of a picker supplied by its owner.
type Config struct {
	Items        []string
	Title        string
	CancelLabel  string
	ConfirmLabel string
	MaxVisible   int // Spinner rows shown at once
	Style        Style
}

// ConfigFromSettings builds a Config for items from the [picker] section of the config file.
//
// In the file 0 means "off" for duration_ms and overlay_opacity, so those are mapped to the negative values
// that disable them here.
func ConfigFromSettings(items []string, s shared.PickerConfig) Config {
	d := s.Duration()
	if d == 0 {
		d = -1
	}
	opacity := s.OverlayOpacity
	if opacity == 0 {
		opacity = -1
	}
	return Config{
		Items:        items,
		Title:        s.Title,
		CancelLabel:  s.CancelLabel,
		ConfirmLabel: s.ConfirmLabel,
		MaxVisible:   s.MaxVisible,
		Style: Style{
			Duration:       d,
			OverlayColor:   s.OverlayColor,
			OverlayOpacity: opacity,
		},
	}
}

// withDefaults returns a copy of c with empty fields filled in. The item slice is cloned so the owner may reuse
// its own.
func (c Config) withDefaults() Config {
	c.Items = slices.Clone(c.Items)
	if c.CancelLabel == "" {
		c.CancelLabel = DefaultCancelLabel
	}
	if c.ConfirmLabel == "" {
		c.ConfirmLabel = DefaultConfirmLabel
	}
	if c.MaxVisible <= 0 {
		c.MaxVisible = DefaultMaxVisible
	}
	if c.Style.Duration == 0 {
		c.Style.Duration = DefaultDuration
	}
	if c.Style.OverlayColor == "" {
		c.Style.OverlayColor = DefaultOverlayColor
	}
	if c.Style.OverlayOpacity == 0 {
		c.Style.OverlayOpacity = DefaultOverlayOpacity
	}
	if c.Style.BackdropColor == "" {
		c.Style.BackdropColor = DefaultBackdropColor
	}
	return c
}
