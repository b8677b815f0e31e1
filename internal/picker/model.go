package picker

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/pickx/internal/models"
	"github.com/desertthunder/pickx/internal/safearea"
	"github.com/desertthunder/pickx/internal/selection"
	"github.com/desertthunder/pickx/internal/shared"
	"github.com/desertthunder/pickx/internal/transition"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/sahilm/fuzzy"
)

var (
	_ Handle = (*Model)(nil)
)

// typeAheadTimeout is how long typed characters keep accumulating into one search.
const typeAheadTimeout = time.Second

// Model is a single picker instance. It is driven entirely from the owner's Update and is not safe for
// concurrent use.
type Model struct {
	id     string
	config Config
	device models.Device

	committed  selection.Choice
	transient  selection.Choice
	visibility models.Visibility
	outcome    models.Outcome
	result     models.Selection

	engine   *transition.Engine
	overlay  colorful.Color
	backdrop colorful.Color

	width  int
	height int
	offset int // First spinner row in the scroll window

	search     string
	searchedAt time.Time

	onValueChange func(label string, index int)
	onCancel      func()
	onDismiss     func()
	ref           func(Handle)

	keys      keyMap
	help      help.Model
	logger    *log.Logger
	now       func() time.Time
	frameRate int
}

// Option configures a [Model].
type Option func(*Model)

// WithValue sets the committed value the picker starts with.
func WithValue(c selection.Choice) Option {
	return func(m *Model) { m.committed = c }
}

// WithOnValueChange registers the callback fired once per confirm that commits a value.
func WithOnValueChange(fn func(label string, index int)) Option {
	return func(m *Model) { m.onValueChange = fn }
}

// WithOnCancel registers the callback fired after the close animation of a cancel.
func WithOnCancel(fn func()) Option {
	return func(m *Model) { m.onCancel = fn }
}

// WithOnDismiss registers the callback fired on confirm, right before the close animation starts.
func WithOnDismiss(fn func()) Option {
	return func(m *Model) { m.onDismiss = fn }
}

// WithRef registers the callback that receives the picker's [Handle]. It runs once, from [New].
func WithRef(fn func(Handle)) Option {
	return func(m *Model) { m.ref = fn }
}

// WithDevice sets the device used for safe-area adaptation.
func WithDevice(d models.Device) Option {
	return func(m *Model) { m.device = d }
}

// WithLogger sets the logger. Pickers log nothing by default.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithClock replaces time.Now for animations and type-ahead, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}

// WithFrameRate sets the animation frame rate.
func WithFrameRate(fps int) Option {
	return func(m *Model) { m.frameRate = fps }
}

// New creates a hidden picker for cfg.
func New(cfg Config, opts ...Option) *Model {
	m := &Model{
		id:         shared.GenerateID(),
		config:     cfg.withDefaults(),
		device:     safearea.Default(),
		visibility: models.Hidden,
		keys:       newKeyMap(),
		help:       help.New(),
		logger:     shared.DiscardLogger(),
		now:        time.Now,
		frameRate:  transition.DefaultFrameRate,
	}
	for _, opt := range opts {
		opt(m)
	}

	m.logger = shared.WithLogger(m.logger, "picker", m.id[:8])
	m.overlay = m.parseColor(m.config.Style.OverlayColor, DefaultOverlayColor)
	m.backdrop = m.parseColor(m.config.Style.BackdropColor, DefaultBackdropColor)
	m.engine = transition.New(m.id,
		transition.WithClock(m.now),
		transition.WithFrameRate(m.frameRate),
		transition.WithLogger(m.logger),
	)

	if m.ref != nil {
		m.ref(m)
	}
	return m
}

func (m *Model) parseColor(s, fallback string) colorful.Color {
	c, err := transition.ParseColor(s)
	if err != nil {
		m.logger.Warn("falling back to default color", "err", err, "default", fallback)
		return transition.MustParseColor(fallback)
	}
	return c
}

// ID returns the instance identifier that tags this picker's frames and [ClosedMsg].
func (m *Model) ID() string { return m.id }

// Visibility returns the lifecycle state.
func (m *Model) Visibility() models.Visibility { return m.visibility }

// Progress returns the animation progress in [0, 1].
func (m *Model) Progress() float64 { return m.engine.Progress() }

// Committed returns the owner-controlled value.
func (m *Model) Committed() selection.Choice { return m.committed }

// Transient returns the value the user moved the spinner to since the picker was last shown.
func (m *Model) Transient() selection.Choice { return m.transient }

// Items returns the configured labels.
func (m *Model) Items() []string { return m.config.Items }

// Highlighted returns the index the spinner shows as selected.
func (m *Model) Highlighted() int {
	return selection.Displayed(m.committed, m.transient, len(m.config.Items))
}

// ConfirmActive reports whether confirm would commit anything right now.
func (m *Model) ConfirmActive() bool {
	return selection.ConfirmActive(m.committed, m.transient, len(m.config.Items))
}

// SetValue updates the committed value. Out-of-range values are kept but treated as absent.
func (m *Model) SetValue(c selection.Choice) {
	m.committed = c
}

// SetSize sets the screen the picker draws on.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Show opens the picker, from any state. The transient selection is cleared and the open animation restarts
// from the current progress.
func (m *Model) Show() tea.Cmd {
	m.visibility = models.Showing
	m.transient = selection.Unset()
	m.outcome = models.OutcomeNone
	m.result = models.Selection{}
	m.search = ""
	m.scrollTo(m.Highlighted())

	m.logger.Debug("show", "committed", m.committed, "items", len(m.config.Items))
	return m.engine.AnimateTo(transition.Shown, m.config.Style.Duration, m.opened)
}

// SpinnerChange moves the transient selection to index. It is ignored unless the picker is open and index
// addresses an item.
func (m *Model) SpinnerChange(index int) {
	if !m.open() || index < 0 || index >= len(m.config.Items) {
		return
	}
	m.transient = selection.Selected(index)
	m.scrollTo(index)
}

// Confirm commits the effective value and starts the close animation.
//
// It does nothing when the item list is empty, when the picker is not open, or when the user explicitly moved
// back to the committed value.
func (m *Model) Confirm() tea.Cmd {
	if !m.open() || !m.ConfirmActive() {
		return nil
	}
	label, index, ok := selection.Effective(m.config.Items, m.transient)
	if !ok {
		return nil
	}

	m.logger.Info("confirm", "label", label, "index", index)
	if m.onValueChange != nil {
		m.onValueChange(label, index)
	}
	if m.onDismiss != nil {
		m.onDismiss()
	}

	m.visibility = models.Dismissing
	m.outcome = models.OutcomeConfirmed
	m.result = models.Selection{Label: label, Index: index}
	return m.engine.AnimateTo(transition.Hidden, m.config.Style.Duration, m.closed)
}

// Cancel starts the close animation without touching the selection.
func (m *Model) Cancel() tea.Cmd {
	if !m.open() {
		return nil
	}

	m.logger.Info("cancel")
	m.visibility = models.Dismissing
	m.outcome = models.OutcomeCanceled
	m.result = models.Selection{}
	return m.engine.AnimateTo(transition.Hidden, m.config.Style.Duration, m.closed)
}

// Unmount tears the picker down: the in-flight animation is dropped without completing and every piece of
// session state returns to its initial value. Frames still queued for this picker are ignored.
func (m *Model) Unmount() {
	m.engine.Reset()
	m.visibility = models.Hidden
	m.transient = selection.Unset()
	m.outcome = models.OutcomeNone
	m.result = models.Selection{}
	m.offset = 0
	m.search = ""
	m.logger.Debug("unmounted")
}

// Update handles frames addressed to this picker, window resizes and, while open, keys.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case transition.FrameMsg:
		if msg.ID != m.id {
			return m, nil
		}
		return m, m.engine.Update(msg)

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if !m.open() {
			return m, nil
		}
		return m, m.handleKeys(msg)
	}

	return m, nil
}

func (m *Model) handleKeys(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.confirm):
		return m.Confirm()
	case key.Matches(msg, m.keys.cancel):
		return m.Cancel()
	case key.Matches(msg, m.keys.up):
		m.move(-1)
	case key.Matches(msg, m.keys.down):
		m.move(1)
	case key.Matches(msg, m.keys.pageUp):
		m.move(-m.config.MaxVisible)
	case key.Matches(msg, m.keys.pageDown):
		m.move(m.config.MaxVisible)
	case key.Matches(msg, m.keys.first):
		m.SpinnerChange(0)
	case key.Matches(msg, m.keys.last):
		m.SpinnerChange(len(m.config.Items) - 1)
	case msg.Type == tea.KeyRunes:
		m.typeAhead(msg.Runes)
	}
	return nil
}

func (m *Model) move(delta int) {
	n := len(m.config.Items)
	if n == 0 {
		return
	}
	m.SpinnerChange(max(0, min(n-1, m.Highlighted()+delta)))
}

// typeAhead jumps to the best fuzzy match for the characters typed within [typeAheadTimeout] of each other.
func (m *Model) typeAhead(runes []rune) {
	now := m.now()
	if now.Sub(m.searchedAt) > typeAheadTimeout {
		m.search = ""
	}
	m.search += string(runes)
	m.searchedAt = now

	matches := fuzzy.Find(m.search, m.config.Items)
	if len(matches) == 0 {
		return
	}
	m.logger.Debug("type-ahead", "query", m.search, "match", matches[0].Str)
	m.SpinnerChange(matches[0].Index)
}

// scrollTo moves the scroll window so index is visible.
func (m *Model) scrollTo(index int) {
	rows := m.config.MaxVisible
	switch {
	case index < m.offset:
		m.offset = index
	case index >= m.offset+rows:
		m.offset = index - rows + 1
	}
	m.offset = max(0, min(m.offset, len(m.config.Items)-rows))
}

func (m *Model) open() bool {
	return m.visibility == models.Showing || m.visibility == models.Interactive
}

func (m *Model) opened() tea.Cmd {
	if m.visibility == models.Showing {
		m.visibility = models.Interactive
		m.logger.Debug("interactive")
	}
	return nil
}

func (m *Model) closed() tea.Cmd {
	m.visibility = models.Hidden
	outcome, result := m.outcome, m.result

	m.logger.Debug("hidden", "outcome", outcome)
	if outcome == models.OutcomeCanceled && m.onCancel != nil {
		m.onCancel()
	}

	msg := ClosedMsg{ID: m.id, Outcome: outcome, Selection: result}
	return func() tea.Msg { return msg }
}

// Snapshot captures everything [Render] needs.
func (m *Model) Snapshot() Snapshot {
	return Snapshot{
		Visibility: m.visibility,
		Items:      m.config.Items,
		Committed:  m.committed,
		Transient:  m.transient,
		Progress:   m.engine.Progress(),
		Config:     m.config,
		Overlay:    m.overlay,
		Backdrop:   m.backdrop,
		Width:      m.width,
		Height:     m.height,
		InsetRows:  safearea.Rows(safearea.ExtraBottomInset(m.device)),
		Offset:     m.offset,
		Help:       m.help.ShortHelpView(m.keys.ShortHelp()),
	}
}

// View renders the picker full-screen over a blank backdrop.
func (m *Model) View() string {
	return Render(m.Snapshot(), "")
}

// Overlay renders the picker over background, the owner's own view.
func (m *Model) Overlay(background string) string {
	return Render(m.Snapshot(), background)
}
