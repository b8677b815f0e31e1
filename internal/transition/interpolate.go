package transition

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Easing maps linear time in [0, 1] to eased progress in [0, 1].
type Easing func(t float64) float64

// Linear is the identity curve.
func Linear(t float64) float64 { return t }

// EaseInOut is a symmetric cubic curve: slow start, fast middle, slow end.
func EaseInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// EaseOut decelerates toward the end.
func EaseOut(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// Lerp interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// OverlayColor returns the backdrop tint at progress: base (the transparent backdrop) at 0, blending toward
// overlay until it reaches opacity at 1.
func OverlayColor(progress float64, base, overlay colorful.Color, opacity float64) colorful.Color {
	return base.BlendRgb(overlay, clamp(progress)*clamp(opacity)).Clamped()
}

// SheetOffset returns how many rows below its resting position the sheet sits at progress. travel rows is fully
// off-screen (progress 0) and 0 is resting (progress 1).
func SheetOffset(progress float64, travel int) int {
	if travel <= 0 {
		return 0
	}
	return int(math.Round((1 - clamp(progress)) * float64(travel)))
}

// ParseColor parses a "#rrggbb" or "#rgb" hex color.
func ParseColor(s string) (colorful.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c, nil
}

// MustParseColor is ParseColor for compile-time constants.
func MustParseColor(s string) colorful.Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
