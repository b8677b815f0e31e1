// package models defines the data model shared by the picker packages
package models

import "fmt"

// Platform identifies the operating system family a [Device] belongs to.
type Platform string

const (
	PlatformIOS      Platform = "ios"
	PlatformAndroid  Platform = "android"
	PlatformTerminal Platform = "terminal"
)

// Device describes the screen a picker is laid out on.
//
// Width and Height are in points for emulated devices and are only compared against
// known profiles, never used for drawing.
type Device struct {
	Name     string   `json:"name" toml:"name" yaml:"name"`
	Platform Platform `json:"platform" toml:"platform" yaml:"platform"`
	Width    int      `json:"width" toml:"width" yaml:"width"`
	Height   int      `json:"height" toml:"height" yaml:"height"`
	IsPad    bool     `json:"is_pad" toml:"is_pad" yaml:"is_pad"`
	IsTV     bool     `json:"is_tv" toml:"is_tv" yaml:"is_tv"`
}

func (d Device) String() string {
	kind := "phone"
	switch {
	case d.IsTV:
		kind = "tv"
	case d.IsPad:
		kind = "pad"
	}
	return fmt.Sprintf("%s %dx%d (%s)", d.Platform, d.Width, d.Height, kind)
}

// Visibility is the lifecycle state of a picker modal.
type Visibility int

const (
	Hidden Visibility = iota
	Showing
	Interactive
	Dismissing
)

func (v Visibility) String() string {
	switch v {
	case Hidden:
		return "hidden"
	case Showing:
		return "showing"
	case Interactive:
		return "interactive"
	case Dismissing:
		return "dismissing"
	default:
		return fmt.Sprintf("visibility(%d)", int(v))
	}
}

// Visible reports whether the modal occupies the screen in this state.
func (v Visibility) Visible() bool {
	return v != Hidden
}

// Outcome records why a picker session ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeConfirmed
	OutcomeCanceled
)

func (o Outcome) String() string {
	switch o {
	case OutcomeConfirmed:
		return "confirmed"
	case OutcomeCanceled:
		return "canceled"
	default:
		return "none"
	}
}

// Selection is a committed picker value.
type Selection struct {
	Label string `json:"label"`
	Index int    `json:"index"`
}

func (s Selection) String() string {
	return fmt.Sprintf("%d:%s", s.Index, s.Label)
}
