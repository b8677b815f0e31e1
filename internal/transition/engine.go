// package transition drives a single normalized progress value (0 = hidden, 1 = shown) toward a target over a
// fixed duration, one Bubble Tea frame at a time.
//
// Frames are [FrameMsg] values tagged with the engine's ID and a generation counter. Starting a new animation
// or calling [Engine.Stop] bumps the generation, so frames of a superseded animation are dropped and its
// completion callback never runs.
package transition

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/pickx/internal/shared"
	"golang.org/x/time/rate"
)

const (
	Hidden = 0.0
	Shown  = 1.0

	DefaultFrameRate = 60
)

// FrameMsg advances the animation with the matching ID and generation.
type FrameMsg struct {
	ID   string
	Gen  uint64
	Time time.Time
}

// Engine owns one progress value. It is not safe for concurrent use; call it from Update only.
type Engine struct {
	id  string
	gen uint64

	progress float64
	from     float64
	target   float64
	start    time.Time
	duration time.Duration

	animating  bool
	onComplete func() tea.Cmd

	now      func() time.Time
	interval time.Duration
	ease     Easing
	logger   *log.Logger
	frameLog rate.Sometimes
}

// Option configures an [Engine].
type Option func(*Engine)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithFrameRate sets how many frames per second are scheduled while animating.
func WithFrameRate(fps int) Option {
	return func(e *Engine) {
		if fps > 0 {
			e.interval = time.Second / time.Duration(fps)
		}
	}
}

// WithEasing sets the timing curve. The default is [EaseInOut].
func WithEasing(fn Easing) Option {
	return func(e *Engine) {
		if fn != nil {
			e.ease = fn
		}
	}
}

// WithLogger sets the logger used for frame tracing at debug level.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an engine at progress 0 identified by id.
func New(id string, opts ...Option) *Engine {
	e := &Engine{
		id:       id,
		now:      time.Now,
		interval: time.Second / DefaultFrameRate,
		ease:     EaseInOut,
		logger:   shared.DiscardLogger(),
		frameLog: rate.Sometimes{Interval: 250 * time.Millisecond},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ID returns the identifier frames are tagged with.
func (e *Engine) ID() string { return e.id }

// Progress returns the live progress value in [0, 1].
func (e *Engine) Progress() float64 { return e.progress }

// Target returns the value the current (or last) animation moves toward.
func (e *Engine) Target() float64 { return e.target }

// Animating reports whether an animation is in flight.
func (e *Engine) Animating() bool { return e.animating }

// Frame returns the frame message the in-flight animation is waiting for.
func (e *Engine) Frame() FrameMsg {
	return FrameMsg{ID: e.id, Gen: e.gen, Time: e.now()}
}

// AnimateTo starts moving progress from its live value to target over d and returns the first frame command.
//
// Any animation already in flight is canceled: its frames are dropped and its onComplete never runs. When d is
// not positive, or progress already equals target, the engine settles immediately and the command returned is
// whatever onComplete returns.
func (e *Engine) AnimateTo(target float64, d time.Duration, onComplete func() tea.Cmd) tea.Cmd {
	e.gen++
	e.from = e.progress
	e.target = clamp(target)
	e.start = e.now()
	e.duration = d
	e.onComplete = onComplete

	e.logger.Debug("animate", "id", e.id, "gen", e.gen, "from", e.from, "to", e.target, "duration", d)

	if d <= 0 || e.from == e.target {
		return e.settle()
	}

	e.animating = true
	return e.tick()
}

// Update advances the animation for a frame addressed to this engine. Frames for other engines, superseded
// generations or a stopped engine return nil.
func (e *Engine) Update(msg FrameMsg) tea.Cmd {
	if msg.ID != e.id || msg.Gen != e.gen || !e.animating {
		return nil
	}

	t := float64(e.now().Sub(e.start)) / float64(e.duration)
	if t >= 1 {
		return e.settle()
	}
	if t < 0 {
		t = 0
	}

	e.progress = clamp(Lerp(e.from, e.target, e.ease(t)))
	e.frameLog.Do(func() {
		e.logger.Debug("frame", "id", e.id, "gen", e.gen, "progress", e.progress)
	})
	return e.tick()
}

// Stop cancels the in-flight animation without running its completion callback. Progress stays where it is.
func (e *Engine) Stop() {
	e.gen++
	e.animating = false
	e.onComplete = nil
}

// Reset stops the engine and returns progress to [Hidden].
func (e *Engine) Reset() {
	e.Stop()
	e.progress = Hidden
	e.from = Hidden
	e.target = Hidden
}

func (e *Engine) settle() tea.Cmd {
	e.progress = e.target
	e.animating = false

	done := e.onComplete
	e.onComplete = nil

	e.logger.Debug("settled", "id", e.id, "gen", e.gen, "progress", e.progress)

	if done == nil {
		return nil
	}
	return done()
}

func (e *Engine) tick() tea.Cmd {
	id, gen := e.id, e.gen
	return tea.Tick(e.interval, func(t time.Time) tea.Msg {
		return FrameMsg{ID: id, Gen: gen, Time: t}
	})
}
