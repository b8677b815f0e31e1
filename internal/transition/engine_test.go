package transition

import (
	"math"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	th "github.com/desertthunder/pickx/internal/testing"
)

const duration = 300 * time.Millisecond

func newEngine(clock *th.Clock) *Engine {
	return New("engine-1", WithClock(clock.Now), WithEasing(Linear))
}

// completion returns an onComplete callback that counts its calls.
func completion(count *int) func() tea.Cmd {
	return func() tea.Cmd {
		*count++
		return nil
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestEngine(t *testing.T) {
	t.Run("starts hidden", func(t *testing.T) {
		e := New("x")
		if e.Progress() != Hidden || e.Animating() {
			t.Errorf("expected idle engine at 0, got progress %v animating %v", e.Progress(), e.Animating())
		}
	})

	t.Run("AnimateTo returns a frame command", func(t *testing.T) {
		clock := th.NewClock()
		e := newEngine(clock)

		if cmd := e.AnimateTo(Shown, duration, nil); cmd == nil {
			t.Fatal("expected a frame command")
		}
		if !e.Animating() || e.Target() != Shown {
			t.Errorf("expected animation toward 1")
		}
	})

	t.Run("frames advance progress and complete once", func(t *testing.T) {
		clock := th.NewClock()
		e := newEngine(clock)
		done := 0

		e.AnimateTo(Shown, duration, completion(&done))

		clock.Advance(duration / 2)
		if cmd := e.Update(e.Frame()); cmd == nil {
			t.Error("expected the next frame to be scheduled")
		}
		if !approx(e.Progress(), 0.5) {
			t.Errorf("expected progress 0.5, got %v", e.Progress())
		}
		if done != 0 {
			t.Errorf("completion ran early")
		}

		frame := e.Frame()
		clock.Advance(duration)
		e.Update(frame)
		if e.Progress() != Shown || e.Animating() {
			t.Errorf("expected settled at 1, got %v animating %v", e.Progress(), e.Animating())
		}
		if done != 1 {
			t.Errorf("expected one completion, got %d", done)
		}

		e.Update(frame)
		if done != 1 {
			t.Errorf("a repeated frame must not complete again, got %d", done)
		}
	})

	t.Run("frames for another engine are ignored", func(t *testing.T) {
		clock := th.NewClock()
		e := newEngine(clock)
		e.AnimateTo(Shown, duration, nil)

		clock.Advance(duration / 2)
		if cmd := e.Update(FrameMsg{ID: "someone-else", Gen: e.Frame().Gen}); cmd != nil {
			t.Error("expected nil command for a foreign frame")
		}
		if e.Progress() != Hidden {
			t.Errorf("foreign frame moved progress to %v", e.Progress())
		}
	})

	t.Run("restart cancels the previous completion", func(t *testing.T) {
		clock := th.NewClock()
		e := newEngine(clock)
		first, second := 0, 0

		e.AnimateTo(Shown, duration, completion(&first))
		clock.Advance(duration / 2)
		stale := e.Frame()
		e.Update(stale)

		e.AnimateTo(Hidden, duration, completion(&second))
		if e.Progress() != 0.5 {
			t.Errorf("restart must begin from the live value, got %v", e.Progress())
		}

		clock.Advance(2 * duration)
		if cmd := e.Update(stale); cmd != nil {
			t.Error("stale frame should be dropped")
		}
		if first != 0 || e.Progress() != 0.5 {
			t.Errorf("stale frame had an effect: first=%d progress=%v", first, e.Progress())
		}

		e.Update(e.Frame())
		if first != 0 || second != 1 {
			t.Errorf("expected only the latest completion, got first=%d second=%d", first, second)
		}
		if e.Progress() != Hidden {
			t.Errorf("expected progress 0, got %v", e.Progress())
		}
	})

	t.Run("restart from the middle keeps continuity", func(t *testing.T) {
		clock := th.NewClock()
		e := newEngine(clock)

		e.AnimateTo(Shown, duration, nil)
		clock.Advance(duration / 4)
		e.Update(e.Frame())
		live := e.Progress()

		e.AnimateTo(Hidden, duration, nil)
		clock.Advance(time.Millisecond)
		e.Update(e.Frame())
		if e.Progress() > live || live-e.Progress() > 0.01 {
			t.Errorf("expected a small step down from %v, got %v", live, e.Progress())
		}
	})

	t.Run("Stop suppresses completion", func(t *testing.T) {
		clock := th.NewClock()
		e := newEngine(clock)
		done := 0

		e.AnimateTo(Shown, duration, completion(&done))
		frame := e.Frame()
		e.Stop()

		clock.Advance(2 * duration)
		if cmd := e.Update(frame); cmd != nil {
			t.Error("expected nil command after Stop")
		}
		if done != 0 {
			t.Errorf("completion ran after Stop")
		}
		if e.Animating() {
			t.Error("engine still animating after Stop")
		}
	})

	t.Run("Reset returns to hidden", func(t *testing.T) {
		clock := th.NewClock()
		e := newEngine(clock)
		e.AnimateTo(Shown, 0, nil)
		e.Reset()
		if e.Progress() != Hidden || e.Target() != Hidden {
			t.Errorf("expected reset to 0, got %v", e.Progress())
		}
	})

	t.Run("zero duration settles synchronously", func(t *testing.T) {
		e := New("x")
		done := 0
		e.AnimateTo(Shown, 0, completion(&done))
		if e.Progress() != Shown || done != 1 || e.Animating() {
			t.Errorf("expected immediate settle, got progress %v done %d", e.Progress(), done)
		}
	})

	t.Run("animating to the current value settles synchronously", func(t *testing.T) {
		e := New("x")
		done := 0
		e.AnimateTo(Hidden, duration, completion(&done))
		if done != 1 || e.Animating() {
			t.Errorf("expected immediate settle, got done %d animating %v", done, e.Animating())
		}
	})

	t.Run("completion command is returned", func(t *testing.T) {
		type doneMsg struct{}
		e := New("x")
		cmd := e.AnimateTo(Shown, 0, func() tea.Cmd {
			return func() tea.Msg { return doneMsg{} }
		})
		if cmd == nil {
			t.Fatal("expected the completion command")
		}
		if _, ok := cmd().(doneMsg); !ok {
			t.Error("expected doneMsg from the completion command")
		}
	})

	t.Run("targets are clamped", func(t *testing.T) {
		e := New("x")
		e.AnimateTo(3, 0, nil)
		if e.Progress() != Shown {
			t.Errorf("expected clamp to 1, got %v", e.Progress())
		}
	})

	t.Run("eased progress stays within bounds", func(t *testing.T) {
		clock := th.NewClock()
		e := New("x", WithClock(clock.Now))
		e.AnimateTo(Shown, duration, nil)
		for i := 0; i < 20; i++ {
			clock.Advance(duration / 25)
			e.Update(e.Frame())
			if p := e.Progress(); p < 0 || p > 1 {
				t.Fatalf("progress out of range: %v", p)
			}
		}
	})
}
