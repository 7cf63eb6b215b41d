// Package tracelog provides a JSONL trace of viewport-tracker transitions.
// Every attach, detach, reveal, active-section change and navigation is
// recorded as a structured JSON event tagged with the session that produced
// it, so a scroll session can be replayed when debugging the tracker. The
// trace is local to the machine and opt-in.
package tracelog

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event kinds identify the type of trace event.
const (
	KindAttach   = "attach"
	KindDetach   = "detach"
	KindDegraded = "degraded"
	KindReveal   = "reveal"
	KindActive   = "active"
	KindNavigate = "navigate"
)

// Event represents a single trace record. Each event carries a timestamp,
// a kind tag, the session id, an optional section id and arbitrary
// structured data.
type Event struct {
	Timestamp time.Time `json:"ts"`
	Kind      string    `json:"kind"`
	Session   string    `json:"session,omitempty"`
	Section   string    `json:"section,omitempty"`
	Data      any       `json:"data,omitempty"`
}

// Emitter writes trace events to a JSONL file. It is safe for concurrent
// use by multiple goroutines. A nil *Emitter is a valid no-op emitter.
type Emitter struct {
	file    *os.File
	enc     *json.Encoder
	session string
	now     func() time.Time
	mu      sync.Mutex
}

// NewEmitter creates a new Emitter that writes JSONL events to the file at
// path. The file is created if it does not exist, or appended to if it does.
// Each emitter gets a fresh random session id.
func NewEmitter(path string) (*Emitter, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("tracelog: open %s: %w", path, err)
	}
	return &Emitter{
		file:    f,
		enc:     json.NewEncoder(f),
		session: uuid.NewString(),
		now:     time.Now,
	}, nil
}

// Session returns the emitter's session id, or "" for a nil emitter.
func (e *Emitter) Session() string {
	if e == nil {
		return ""
	}
	return e.session
}

// Emit writes a single event to the JSONL file. Missing timestamps and
// session ids are filled in. Calling Emit on a nil Emitter is a no-op.
func (e *Emitter) Emit(evt Event) error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if evt.Timestamp.IsZero() {
		evt.Timestamp = e.now()
	}
	if evt.Session == "" {
		evt.Session = e.session
	}
	if err := e.enc.Encode(evt); err != nil {
		return fmt.Errorf("tracelog: encode event: %w", err)
	}
	return nil
}

// Record is shorthand for emitting an event of the given kind about one
// section.
func (e *Emitter) Record(kind, section string, data any) error {
	return e.Emit(Event{Kind: kind, Section: section, Data: data})
}

// Close flushes and closes the underlying file. Calling Close on a nil
// Emitter is a no-op.
func (e *Emitter) Close() error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.file.Close(); err != nil {
		return fmt.Errorf("tracelog: close: %w", err)
	}
	return nil
}
