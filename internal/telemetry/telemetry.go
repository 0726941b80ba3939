// Package telemetry provides a JSONL event stream recording what happened in
// a skillarc session: prompt copies and their failures, confirmation resets,
// and catalog reloads. Every event is stamped with the session it belongs to
// so several sessions can share one file.
package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event kinds identify the type of telemetry event.
const (
	KindSessionStart    = "session_start"
	KindPromptCopied    = "prompt_copied"
	KindCopyFailed      = "copy_failed"
	KindCopyReset       = "copy_reset"
	KindCatalogReloaded = "catalog_reloaded"
	KindCatalogInvalid  = "catalog_invalid"
)

// Event represents a single telemetry record.
type Event struct {
	Timestamp time.Time `json:"ts"`
	Kind      string    `json:"kind"`
	SessionID string    `json:"session,omitempty"`
	Data      any       `json:"data,omitempty"`
}

// Emitter writes telemetry events to a JSONL file. It is safe for concurrent
// use by multiple goroutines. A nil *Emitter is a valid no-op emitter.
type Emitter struct {
	file      *os.File
	enc       *json.Encoder
	sessionID string
	mu        sync.Mutex
}

// NewEmitter creates a new Emitter that writes JSONL events to the file at
// path under a freshly generated session ID. The file is created if it does
// not exist, or appended to if it does.
func NewEmitter(path string) (*Emitter, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("telemetry: open %s: %w", path, err)
	}
	return &Emitter{
		file:      f,
		enc:       json.NewEncoder(f),
		sessionID: uuid.New().String(),
	}, nil
}

// SessionID returns the ID stamped on every event. It is empty for a nil Emitter.
func (e *Emitter) SessionID() string {
	if e == nil {
		return ""
	}
	return e.sessionID
}

// Emit writes a single event. A zero Timestamp is filled with the current
// time and an empty SessionID with the emitter's. Calling Emit on a nil
// Emitter is a no-op.
func (e *Emitter) Emit(evt Event) error {
	if e == nil {
		return nil
	}
	if evt.Timestamp.IsZero() {
		evt.Timestamp = time.Now().UTC()
	}
	if evt.SessionID == "" {
		evt.SessionID = e.sessionID
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.enc.Encode(evt); err != nil {
		return fmt.Errorf("telemetry: encode event: %w", err)
	}
	return nil
}

// Close closes the underlying file. Calling Close on a nil Emitter is a no-op.
func (e *Emitter) Close() error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.file.Close(); err != nil {
		return fmt.Errorf("telemetry: close: %w", err)
	}
	return nil
}
