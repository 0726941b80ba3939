package tui

import (
	"errors"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/papapumpkin/skillarc/internal/catalog"
	"github.com/papapumpkin/skillarc/internal/telemetry"
)

// Bridge forwards events produced outside the BubbleTea loop (copy
// confirmation changes, catalog file changes) to the program as typed
// messages. tea.Program.Send is goroutine-safe, so the copy session's timer
// and the catalog watcher can both call through it. Until a program is
// attached every event is dropped.
type Bridge struct {
	logger *zap.Logger
	events *telemetry.Emitter

	mu      sync.Mutex
	program *tea.Program
	wg      sync.WaitGroup
}

// NewBridge creates a bridge that logs to logger and records catalog
// reloads on events. Either may be nil.
func NewBridge(logger *zap.Logger, events *telemetry.Emitter) *Bridge {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bridge{logger: logger, events: events}
}

// Attach sets the program that receives forwarded messages.
func (b *Bridge) Attach(p *tea.Program) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.program = p
}

func (b *Bridge) send(msg tea.Msg) {
	b.mu.Lock()
	p := b.program
	b.mu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

// CopyChanged is the copy session's change hook. It sends MsgCopyState.
func (b *Bridge) CopyChanged(copied bool) {
	b.send(MsgCopyState{Copied: copied})
}

// Watch reloads the catalog on every change reported by w until its
// Changes channel closes.
func (b *Bridge) Watch(w *catalog.Watcher) {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		for ch := range w.Changes {
			b.send(b.Reload(ch.Path))
		}
	}()
}

// Wait blocks until every Watch goroutine has exited.
func (b *Bridge) Wait() {
	b.wg.Wait()
}

// Reload resolves the catalog at path and returns the message describing
// the outcome, logging and recording it on the way.
func (b *Bridge) Reload(path string) tea.Msg {
	cats, err := catalog.Resolve(path)
	if err != nil {
		level := b.logger.Warn
		if !errors.Is(err, catalog.ErrInvalidCatalog) && !errors.Is(err, catalog.ErrNoCatalog) {
			level = b.logger.Error
		}
		level("catalog reload failed", zap.String("path", path), zap.Error(err))
		b.emit(telemetry.KindCatalogInvalid, map[string]string{"path": path, "error": err.Error()})
		return MsgCatalogInvalid{Path: path, Err: err}
	}
	b.logger.Info("catalog reloaded", zap.String("path", path), zap.Int("skills", catalog.SkillCount(cats)))
	b.emit(telemetry.KindCatalogReloaded, map[string]any{"path": path, "skills": catalog.SkillCount(cats)})
	return MsgCatalogReloaded{Path: path, Catalog: cats}
}

func (b *Bridge) emit(kind string, data any) {
	if err := b.events.Emit(telemetry.Event{Kind: kind, Data: data}); err != nil {
		b.logger.Warn("telemetry write failed", zap.String("kind", kind), zap.Error(err))
	}
}
