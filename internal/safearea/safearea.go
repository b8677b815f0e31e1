// package safearea computes the extra bottom inset needed on devices with a home-indicator
// region, and keeps a small catalog of device profiles to emulate them from a terminal.
package safearea

import (
	"fmt"
	"slices"
	"strings"

	"github.com/desertthunder/pickx/internal/models"
	"github.com/desertthunder/pickx/internal/shared"
)

// HomeIndicatorInset is the inset, in points, reserved below the sheet on notched phones.
const HomeIndicatorInset = 20

// PointsPerRow is how many points one terminal row stands for when an inset is drawn.
const PointsPerRow = 20

// notchedDimensions are the screen edges (portrait height or landscape width) of the
// notched iPhone generations.
var notchedDimensions = []int{812, 896}

// ExtraBottomInset returns the inset in points to keep clear below the sheet.
//
// Only phone-class iOS devices whose height or width matches a notched profile get an
// inset; pads, TVs and every other platform get 0.
func ExtraBottomInset(d models.Device) int {
	if d.Platform != models.PlatformIOS || d.IsPad || d.IsTV {
		return 0
	}
	if slices.Contains(notchedDimensions, d.Height) || slices.Contains(notchedDimensions, d.Width) {
		return HomeIndicatorInset
	}
	return 0
}

// Rows converts an inset in points to whole terminal rows, rounding up.
func Rows(points int) int {
	if points <= 0 {
		return 0
	}
	return (points + PointsPerRow - 1) / PointsPerRow
}

var profiles = []models.Device{
	{Name: "terminal", Platform: models.PlatformTerminal},
	{Name: "iphone-8", Platform: models.PlatformIOS, Width: 375, Height: 667},
	{Name: "iphone-x", Platform: models.PlatformIOS, Width: 375, Height: 812},
	{Name: "iphone-xs-max", Platform: models.PlatformIOS, Width: 414, Height: 896},
	{Name: "iphone-xr", Platform: models.PlatformIOS, Width: 414, Height: 896},
	{Name: "iphone-x-landscape", Platform: models.PlatformIOS, Width: 812, Height: 375},
	{Name: "ipad-pro", Platform: models.PlatformIOS, Width: 834, Height: 1112, IsPad: true},
	{Name: "apple-tv", Platform: models.PlatformIOS, Width: 1920, Height: 1080, IsTV: true},
	{Name: "pixel-3", Platform: models.PlatformAndroid, Width: 393, Height: 786},
	{Name: "android-tall", Platform: models.PlatformAndroid, Width: 412, Height: 896},
}

// Profiles returns a copy of the built-in device catalog.
func Profiles() []models.Device {
	return slices.Clone(profiles)
}

// Lookup finds a built-in profile by name (case-insensitive).
func Lookup(name string) (models.Device, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, d := range profiles {
		if d.Name == name {
			return d, nil
		}
	}
	return models.Device{}, fmt.Errorf("%w: %q", shared.ErrUnknownDevice, name)
}

// Default is the profile used when nothing is configured.
func Default() models.Device {
	return profiles[0]
}
