// Package copyflow drives the "copy prompt" interaction: write the prompt to
// the clipboard, raise a transient "copied" flag on success, and lower it
// again once the confirmation window has elapsed with no newer copy.
//
// State machine:
//
//	Idle (copied=false) --Copy ok--> Confirmed (copied=true)
//	Confirmed --Copy ok--> Confirmed (window restarts)
//	Confirmed --window elapsed--> Idle
//
// A failed write changes nothing; it is logged and swallowed.
package copyflow

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/papapumpkin/skillarc/internal/clipboard"
	"github.com/papapumpkin/skillarc/internal/telemetry"
)

// DefaultWindow is how long the confirmation stays visible after a copy.
const DefaultWindow = 1600 * time.Millisecond

// Timer is a cancellable handle to a scheduled callback.
type Timer interface {
	// Stop prevents the callback from running. It reports whether the call
	// stopped it; false means the callback already ran or is running.
	Stop() bool
}

// Scheduler runs f once after d has elapsed.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// realScheduler schedules on the runtime timer heap.
type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Options configures a Session. Zero values select the defaults.
type Options struct {
	Window    time.Duration      // confirmation window; DefaultWindow when zero
	Scheduler Scheduler          // time.AfterFunc when nil
	Logger    *zap.Logger        // zap.NewNop when nil
	Telemetry *telemetry.Emitter // optional event sink
	OnChange  func(copied bool)  // called after every transition of the flag
}

// Session owns the copied flag of one UI session and the single pending
// reset that will clear it.
type Session struct {
	clip     clipboard.Writer
	window   time.Duration
	sched    Scheduler
	logger   *zap.Logger
	events   *telemetry.Emitter
	onChange func(bool)

	mu      sync.Mutex
	copied  bool
	pending Timer
	gen     uint64 // bumped on every confirmation; identifies the live reset
}

// New creates a Session writing through clip.
func New(clip clipboard.Writer, opts Options) *Session {
	s := &Session{
		clip:     clip,
		window:   opts.Window,
		sched:    opts.Scheduler,
		logger:   opts.Logger,
		events:   opts.Telemetry,
		onChange: opts.OnChange,
	}
	if s.window <= 0 {
		s.window = DefaultWindow
	}
	if s.sched == nil {
		s.sched = realScheduler{}
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	return s
}

// Window returns the confirmation window in effect.
func (s *Session) Window() time.Duration {
	return s.window
}

// Copied reports whether a copy confirmation is currently showing.
func (s *Session) Copied() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copied
}

// Copy writes text to the clipboard. On success the flag is raised at once
// and any pending reset is replaced by a fresh one a full window away. On
// failure the error is logged and recorded, the flag is left untouched, and
// Copy returns false; no error reaches the caller.
func (s *Session) Copy(ctx context.Context, text string) bool {
	if err := s.clip.WriteText(ctx, text); err != nil {
		s.logger.Error("copy failed", zap.Error(err), zap.Int("bytes", len(text)))
		s.emit(telemetry.KindCopyFailed, map[string]string{"error": err.Error()})
		return false
	}
	s.confirm()
	s.emit(telemetry.KindPromptCopied, map[string]int{"bytes": len(text)})
	return true
}

// confirm raises the flag and (re)arms the reset.
func (s *Session) confirm() {
	s.mu.Lock()
	if s.pending != nil {
		s.pending.Stop()
	}
	s.gen++
	gen := s.gen
	changed := !s.copied
	s.copied = true
	s.pending = s.sched.AfterFunc(s.window, func() { s.expire(gen) })
	s.mu.Unlock()

	if changed {
		s.notify(true)
	}
}

// expire clears the flag if gen still names the latest confirmation. A reset
// whose Stop lost the race with its own firing carries a stale gen and is
// ignored.
func (s *Session) expire(gen uint64) {
	s.mu.Lock()
	if gen != s.gen || !s.copied {
		s.mu.Unlock()
		return
	}
	s.copied = false
	s.pending = nil
	s.mu.Unlock()

	s.logger.Debug("copy confirmation cleared")
	s.emit(telemetry.KindCopyReset, nil)
	s.notify(false)
}

// Close cancels any pending reset. The flag keeps its current value.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
	s.gen++
}

func (s *Session) notify(copied bool) {
	if s.onChange != nil {
		s.onChange(copied)
	}
}

func (s *Session) emit(kind string, data any) {
	if err := s.events.Emit(telemetry.Event{Kind: kind, Data: data}); err != nil {
		s.logger.Warn("telemetry write failed", zap.String("kind", kind), zap.Error(err))
	}
}
