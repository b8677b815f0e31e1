// package testing contains shared testing utilities
package testing

import (
	"errors"
	"io"
	"os"
	"sync"
	"testing"
	"time"
)

// Epoch is the start time of every [Clock].
var Epoch = time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)

// Clock is a manually advanced time source for animation tests.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock returns a Clock set to [Epoch].
func NewClock() *Clock {
	return &Clock{now: Epoch}
}

// Now returns the current fake time. Pass it where a func() time.Time is expected.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d and returns the new time.
func (c *Clock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	return c.now
}

// Calls records callback invocations in order.
type Calls struct {
	Events []string
}

// Record returns a func() that appends name when called.
func (c *Calls) Record(name string) func() {
	return func() { c.Events = append(c.Events, name) }
}

// Count returns how many times name was recorded.
func (c *Calls) Count(name string) int {
	n := 0
	for _, e := range c.Events {
		if e == name {
			n++
		}
	}
	return n
}

// Fruits is a small item list shared by picker tests.
func Fruits() []string {
	return []string{"Apple", "Banana", "Cherry", "Durian", "Elderberry", "Fig", "Grape"}
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

func MustWriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write file %s: %v", path, err)
	}
}
