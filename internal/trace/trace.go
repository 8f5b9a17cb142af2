// Package trace writes the optional trace file of the back-end.
//
// The tracer is switched on and off by the tracing toggle. While active it
// records every dispatched command and every outbound event.
package trace

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/aretw0/b3270/pkg/domain"
	"github.com/aretw0/b3270/pkg/events"
)

// DefaultPath returns the trace file used when none is configured.
func DefaultPath() string {
	return filepath.Join(os.TempDir(), fmt.Sprintf("x3trc.%d.txt", os.Getpid()))
}

// Tracer appends timestamped lines to the trace file.
type Tracer struct {
	mu     sync.Mutex
	path   string
	file   io.WriteCloser
	now    func() time.Time
	logger *slog.Logger
}

// Option configures a Tracer.
type Option func(*Tracer)

// WithPath sets the trace file. An empty path selects DefaultPath.
func WithPath(path string) Option {
	return func(t *Tracer) {
		if path != "" {
			t.path = path
		}
	}
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(t *Tracer) {
		t.now = now
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Tracer) {
		t.logger = logger
	}
}

// New creates an inactive tracer.
func New(opts ...Option) *Tracer {
	t := &Tracer{path: DefaultPath(), now: time.Now}
	for _, opt := range opts {
		opt(t)
	}
	if t.logger == nil {
		t.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return t
}

// Path returns the trace file name.
func (t *Tracer) Path() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.path
}

// SetPath changes the trace file. It fails while tracing is active.
func (t *Tracer) SetPath(path string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.file != nil {
		return domain.ErrTraceActive
	}
	if path == "" {
		path = DefaultPath()
	}
	t.path = path
	return nil
}

// Active reports whether the trace file is open.
func (t *Tracer) Active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.file != nil
}

// Start opens the trace file for appending. Starting an active tracer does
// nothing.
func (t *Tracer) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.file != nil {
		return nil
	}
	f, err := os.OpenFile(t.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open trace file: %w", err)
	}
	t.file = f
	t.writeLocked("Trace started")
	t.logger.Info("tracing started", "file", t.path)
	return nil
}

// Stop closes the trace file. Stopping an inactive tracer does nothing.
func (t *Tracer) Stop() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.file == nil {
		return nil
	}
	t.writeLocked("Trace stopped")
	err := t.file.Close()
	t.file = nil
	t.logger.Info("tracing stopped", "file", t.path)
	return err
}

// Printf writes one line when tracing is active.
func (t *Tracer) Printf(format string, args ...any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.file == nil {
		return
	}
	t.writeLocked(fmt.Sprintf(format, args...))
}

// Emit records an outbound event. It implements events.Sink.
func (t *Tracer) Emit(_ context.Context, ev domain.Event) error {
	t.Printf("> %s", events.Format(ev))
	return nil
}

func (t *Tracer) writeLocked(msg string) {
	stamp := t.now().Format("20060102.150405.000")
	if _, err := fmt.Fprintf(t.file, "%s %s\n", stamp, msg); err != nil {
		t.logger.Warn("trace write failed", "error", err)
	}
}
