package copyflow

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/papapumpkin/skillarc/internal/clipboard"
	"github.com/papapumpkin/skillarc/internal/telemetry"
)

// manualClock is a Scheduler whose time only moves when Advance is called.
type manualClock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*manualTimer

	// leakyStop makes Stop report failure and leave the timer armed, the way
	// a real timer behaves when it has already fired concurrently.
	leakyStop bool
}

type manualTimer struct {
	clock   *manualClock
	at      time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (c *manualClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &manualTimer{clock: c, at: c.now + d, f: f}
	c.timers = append(c.timers, t)
	return t
}

func (t *manualTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.clock.leakyStop || t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// Advance moves the clock forward by d, firing due timers in order.
func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now + d
	c.mu.Unlock()

	for {
		c.mu.Lock()
		var next *manualTimer
		for _, t := range c.timers {
			if t.fired || t.stopped || t.at > target {
				continue
			}
			if next == nil || t.at < next.at {
				next = t
			}
		}
		if next == nil {
			c.now = target
			c.mu.Unlock()
			return
		}
		c.now = next.at
		next.fired = true
		c.mu.Unlock()
		next.f()
	}
}

func (c *manualClock) armed() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.fired && !t.stopped {
			n++
		}
	}
	return n
}

// recorder captures OnChange transitions.
type recorder struct {
	mu  sync.Mutex
	got []bool
}

func (r *recorder) record(v bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, v)
}

func (r *recorder) transitions() []bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]bool(nil), r.got...)
}

func okWriter() (clipboard.Writer, *[]string) {
	var mu sync.Mutex
	var written []string
	w := clipboard.Func(func(_ context.Context, text string) error {
		mu.Lock()
		defer mu.Unlock()
		written = append(written, text)
		return nil
	})
	return w, &written
}

func failingWriter() clipboard.Writer {
	return clipboard.Func(func(context.Context, string) error {
		return clipboard.ErrUnavailable
	})
}

func TestCopySuccessThenReset(t *testing.T) {
	t.Parallel()

	clock := &manualClock{}
	rec := &recorder{}
	w, written := okWriter()
	s := New(w, Options{Scheduler: clock, OnChange: rec.record})

	if s.Copied() {
		t.Fatal("new session should start idle")
	}
	if !s.Copy(context.Background(), "prompt") {
		t.Fatal("Copy returned false on a working clipboard")
	}
	if !s.Copied() {
		t.Error("Copied() = false right after a successful copy")
	}
	if len(*written) != 1 || (*written)[0] != "prompt" {
		t.Errorf("clipboard received %v, want [prompt]", *written)
	}

	clock.Advance(DefaultWindow - time.Millisecond)
	if !s.Copied() {
		t.Error("confirmation cleared before the window elapsed")
	}

	clock.Advance(time.Millisecond)
	if s.Copied() {
		t.Error("confirmation still showing after the window elapsed")
	}

	want := []bool{true, false}
	if got := rec.transitions(); !equalBools(got, want) {
		t.Errorf("transitions = %v, want %v", got, want)
	}
}

func TestCopyAgainRestartsWindow(t *testing.T) {
	t.Parallel()

	clock := &manualClock{}
	rec := &recorder{}
	w, _ := okWriter()
	s := New(w, Options{Scheduler: clock, OnChange: rec.record})

	s.Copy(context.Background(), "first")
	clock.Advance(1000 * time.Millisecond)
	s.Copy(context.Background(), "second")

	if n := clock.armed(); n != 1 {
		t.Errorf("%d resets armed after second copy, want exactly 1", n)
	}

	// The original 1600ms mark passes without clearing the flag.
	clock.Advance(600 * time.Millisecond)
	if !s.Copied() {
		t.Fatal("stale reset cleared the confirmation at t=1600ms")
	}

	clock.Advance(999 * time.Millisecond)
	if !s.Copied() {
		t.Fatal("confirmation cleared before t=2600ms")
	}

	clock.Advance(time.Millisecond)
	if s.Copied() {
		t.Error("confirmation still showing at t=2600ms")
	}

	// The flag stayed up continuously: exactly one rise and one fall.
	want := []bool{true, false}
	if got := rec.transitions(); !equalBools(got, want) {
		t.Errorf("transitions = %v, want %v", got, want)
	}
}

func TestStaleResetIgnoredWhenStopLosesRace(t *testing.T) {
	t.Parallel()

	clock := &manualClock{leakyStop: true}
	w, _ := okWriter()
	s := New(w, Options{Scheduler: clock})

	s.Copy(context.Background(), "first")
	clock.Advance(1000 * time.Millisecond)
	s.Copy(context.Background(), "second")

	// The first reset still fires at 1600ms because Stop could not cancel it.
	clock.Advance(600 * time.Millisecond)
	if !s.Copied() {
		t.Fatal("stale reset truncated the new confirmation window")
	}

	clock.Advance(1000 * time.Millisecond)
	if s.Copied() {
		t.Error("current reset did not clear the confirmation")
	}
}

func TestCopyFailureLeavesStateAndLogs(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.ErrorLevel)
	path := filepath.Join(t.TempDir(), "events.jsonl")
	em, err := telemetry.NewEmitter(path)
	if err != nil {
		t.Fatalf("NewEmitter: %v", err)
	}

	clock := &manualClock{}
	rec := &recorder{}
	s := New(failingWriter(), Options{
		Scheduler: clock,
		Logger:    zap.New(core),
		Telemetry: em,
		OnChange:  rec.record,
	})

	if s.Copy(context.Background(), "prompt") {
		t.Error("Copy returned true on a failing clipboard")
	}
	if s.Copied() {
		t.Error("Copied() = true after a failed copy")
	}
	if n := clock.armed(); n != 0 {
		t.Errorf("%d resets armed after a failed copy, want 0", n)
	}
	if got := rec.transitions(); len(got) != 0 {
		t.Errorf("transitions = %v, want none", got)
	}

	entries := logs.FilterMessage("copy failed").All()
	if len(entries) != 1 {
		t.Fatalf("logged %d copy failures, want 1", len(entries))
	}
	if errField, ok := entries[0].ContextMap()["error"]; !ok || !strings.Contains(errField.(string), "clipboard unavailable") {
		t.Errorf("log entry error field = %v", entries[0].ContextMap()["error"])
	}

	if err := em.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), `"kind":"copy_failed"`) {
		t.Errorf("telemetry missing copy_failed event:\n%s", data)
	}
}

func TestCopyFailureWhileConfirmedKeepsWindow(t *testing.T) {
	t.Parallel()

	clock := &manualClock{}
	var fail bool
	w := clipboard.Func(func(context.Context, string) error {
		if fail {
			return errors.New("permission denied")
		}
		return nil
	})
	s := New(w, Options{Scheduler: clock})

	s.Copy(context.Background(), "ok")
	clock.Advance(1000 * time.Millisecond)
	fail = true
	if s.Copy(context.Background(), "denied") {
		t.Fatal("Copy returned true on failure")
	}
	if !s.Copied() {
		t.Fatal("failed copy cleared an active confirmation")
	}

	// The window is not extended by the failed attempt.
	clock.Advance(600 * time.Millisecond)
	if s.Copied() {
		t.Error("failed copy restarted the confirmation window")
	}
}

func TestCustomWindow(t *testing.T) {
	t.Parallel()

	clock := &manualClock{}
	w, _ := okWriter()
	s := New(w, Options{Scheduler: clock, Window: 250 * time.Millisecond})

	if s.Window() != 250*time.Millisecond {
		t.Errorf("Window() = %v, want 250ms", s.Window())
	}
	s.Copy(context.Background(), "x")
	clock.Advance(250 * time.Millisecond)
	if s.Copied() {
		t.Error("confirmation outlived the custom window")
	}
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	w, _ := okWriter()
	s := New(w, Options{})
	if s.Window() != DefaultWindow {
		t.Errorf("Window() = %v, want %v", s.Window(), DefaultWindow)
	}
	if _, ok := s.sched.(realScheduler); !ok {
		t.Errorf("default scheduler = %T, want realScheduler", s.sched)
	}
	if s.logger == nil {
		t.Error("default logger is nil")
	}
}

func TestCloseCancelsPendingReset(t *testing.T) {
	t.Parallel()

	clock := &manualClock{}
	rec := &recorder{}
	w, _ := okWriter()
	s := New(w, Options{Scheduler: clock, OnChange: rec.record})

	s.Copy(context.Background(), "x")
	s.Close()
	clock.Advance(5 * time.Second)

	if got := rec.transitions(); !equalBools(got, []bool{true}) {
		t.Errorf("transitions after Close = %v, want [true]", got)
	}
}

func TestRealSchedulerClearsFlag(t *testing.T) {
	t.Parallel()

	w, _ := okWriter()
	done := make(chan struct{})
	s := New(w, Options{
		Window: 20 * time.Millisecond,
		OnChange: func(copied bool) {
			if !copied {
				close(done)
			}
		},
	})

	s.Copy(context.Background(), "x")
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("confirmation never cleared with the real scheduler")
	}
	if s.Copied() {
		t.Error("Copied() = true after reset callback")
	}
}

func equalBools(a, b []bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
