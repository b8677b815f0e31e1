package picker

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/desertthunder/pickx/internal/models"
	"github.com/desertthunder/pickx/internal/selection"
	"github.com/desertthunder/pickx/internal/transition"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	defaultWidth = 48
	marker       = "› "
	moreAbove    = "▲"
	moreBelow    = "▼"
	emptyLabel   = "(no options)"
)

// Sheet accent colors, shared with hosts that draw around the picker.
const (
	AccentColor = "#7D56F4"
	ActionColor = "#04B575"
	MutedColor  = "#626262"
)

var styles = newSheetStyles(AccentColor, ActionColor, MutedColor)

// sheetStyles is the stylesheet of the sheet itself. The title style can be overridden per picker.
type sheetStyles struct {
	title    lipgloss.Style
	action   lipgloss.Style
	inert    lipgloss.Style
	selected lipgloss.Style
	item     lipgloss.Style
	muted    lipgloss.Style
	rule     lipgloss.Style
}

func newSheetStyles(accent, ok, muted string) sheetStyles {
	return sheetStyles{
		title:    lipgloss.NewStyle().Foreground(lipgloss.Color(accent)).Bold(true),
		action:   lipgloss.NewStyle().Foreground(lipgloss.Color(ok)).Bold(true),
		inert:    lipgloss.NewStyle().Foreground(lipgloss.Color(muted)).Faint(true),
		selected: lipgloss.NewStyle().Foreground(lipgloss.Color(accent)).Bold(true),
		item:     lipgloss.NewStyle().Foreground(lipgloss.Color(muted)),
		muted:    lipgloss.NewStyle().Foreground(lipgloss.Color(muted)),
		rule:     lipgloss.NewStyle().Foreground(lipgloss.Color(muted)),
	}
}

// Snapshot is the read-only state a picker is drawn from.
type Snapshot struct {
	Visibility models.Visibility
	Items      []string
	Committed  selection.Choice
	Transient  selection.Choice
	Progress   float64
	Config     Config
	Overlay    colorful.Color
	Backdrop   colorful.Color
	Width      int
	Height     int
	InsetRows  int // Blank rows kept below the sheet for the home indicator
	Offset     int
	Help       string
}

// Render draws s over background and returns the full screen.
//
// A hidden picker returns background untouched. Otherwise the sheet rests at the bottom of the screen, shifted
// down by the open animation, and every background row above it is tinted toward the overlay color.
func Render(s Snapshot, background string) string {
	if !s.Visibility.Visible() {
		return background
	}

	width := s.Width
	if width <= 0 {
		width = defaultWidth
	}

	var bg []string
	if background != "" {
		bg = strings.Split(background, "\n")
	}

	sheet := Sheet(s, width)
	height := s.Height
	if height <= 0 {
		height = max(len(bg), len(sheet))
	}

	top := height - len(sheet) + transition.SheetOffset(s.Progress, len(sheet))
	out := make([]string, height)
	for row := range out {
		if row >= top && row-top < len(sheet) {
			out[row] = sheet[row-top]
			continue
		}

		var line string
		if row < len(bg) {
			line = bg[row]
		}
		out[row] = tint(s, line, width)
	}
	return strings.Join(out, "\n")
}

// Sheet returns the rows of the sheet, each width cells wide, including the safe-area rows.
func Sheet(s Snapshot, width int) []string {
	cfg := s.Config
	n := len(s.Items)

	rows := []string{
		styles.rule.Render(strings.Repeat("─", width)),
		header(s, width),
		"",
	}

	if n == 0 {
		rows = append(rows, styles.muted.Render(center(emptyLabel, width)))
	} else {
		highlighted := selection.Displayed(s.Committed, s.Transient, n)
		end := min(n, s.Offset+cfg.MaxVisible)

		rows = append(rows, indicator(s.Offset > 0, moreAbove, width))
		for i := s.Offset; i < end; i++ {
			label := ansi.Truncate(s.Items[i], width-4, "…")
			if i == highlighted {
				rows = append(rows, styles.selected.Render(center(marker+label, width)))
			} else {
				rows = append(rows, styles.item.Render(center("  "+label, width)))
			}
		}
		rows = append(rows, indicator(end < n, moreBelow, width))
	}

	rows = append(rows, "", ansi.Truncate(s.Help, width, ""))
	for range s.InsetRows {
		rows = append(rows, "")
	}

	for i, row := range rows {
		rows[i] = pad(row, width)
	}
	return rows
}

// header lays out cancel on the left, the title in the middle and confirm on the right.
func header(s Snapshot, width int) string {
	cfg := s.Config

	titleStyle := styles.title
	if cfg.Style.TitleStyle != nil {
		titleStyle = *cfg.Style.TitleStyle
	}

	confirmStyle := styles.action
	if !selection.ConfirmActive(s.Committed, s.Transient, len(s.Items)) {
		confirmStyle = styles.inert
	}

	cancel := styles.muted.Render(cfg.CancelLabel)
	confirm := confirmStyle.Render(cfg.ConfirmLabel)

	room := width - lipgloss.Width(cancel) - lipgloss.Width(confirm)
	if room <= 0 {
		return cancel + " " + confirm
	}
	title := titleStyle.Render(ansi.Truncate(cfg.Title, max(0, room-2), "…"))
	return cancel + lipgloss.PlaceHorizontal(room, lipgloss.Center, title) + confirm
}

func indicator(show bool, glyph string, width int) string {
	if !show {
		return ""
	}
	return styles.muted.Render(center(glyph, width))
}

// tint recolors a background row toward the overlay color for the current progress.
func tint(s Snapshot, line string, width int) string {
	if s.Progress <= 0 || s.Config.Style.OverlayOpacity <= 0 {
		return line
	}
	plain := pad(ansi.Truncate(ansi.Strip(line), width, ""), width)
	c := transition.OverlayColor(s.Progress, s.Backdrop, s.Overlay, s.Config.Style.OverlayOpacity)
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render(plain)
}

func center(text string, width int) string {
	w := ansi.StringWidth(text)
	if w >= width {
		return ansi.Truncate(text, width, "")
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + text
}

func pad(line string, width int) string {
	w := ansi.StringWidth(line)
	if w > width {
		return ansi.Truncate(line, width, "")
	}
	return line + strings.Repeat(" ", width-w)
}
