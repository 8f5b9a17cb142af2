package tracker

import (
	"io"
	"log/slog"

	"github.com/aretw0/b3270/pkg/domain"
)

// StateSource supplies the engine's connection state.
type StateSource interface {
	State() domain.ConnectionState
	Host() string
}

// Eraser clears the screen buffer.
type Eraser interface {
	Erase()
}

// Connection reports connection-state transitions.
type Connection struct {
	source  StateSource
	screen  Eraser
	stats   *Stats
	emitter Emitter
	logger  *slog.Logger
	last    domain.ConnectionState
}

// ConnectionOption configures a Connection tracker.
type ConnectionOption func(*Connection)

// WithConnectionLogger sets the structured logger.
func WithConnectionLogger(logger *slog.Logger) ConnectionOption {
	return func(c *Connection) {
		c.logger = logger
	}
}

// NewConnection creates a tracker that starts out not connected. stats may
// be nil.
func NewConnection(source StateSource, screen Eraser, stats *Stats, emitter Emitter, opts ...ConnectionOption) *Connection {
	c := &Connection{
		source:  source,
		screen:  screen,
		stats:   stats,
		emitter: emitter,
		last:    domain.NotConnected,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c
}

// State returns the last reported state.
func (c *Connection) State() domain.ConnectionState {
	return c.last
}

// Notify reads the engine's current state and passes it to Observe.
func (c *Connection) Notify() {
	snap := Snapshot{State: c.source.State(), Host: c.source.Host()}
	if c.stats != nil {
		snap.Counters = c.stats.source.Counters()
	}
	c.Observe(snap)
}

// Observe compares snap with the last reported state and emits a connection
// event if it changed. The final stats of a session and the baseline of the
// next one come from snap, not from the live engine.
func (c *Connection) Observe(snap Snapshot) {
	state := snap.State
	if state == c.last {
		return
	}
	previous := c.last
	c.last = state
	c.logger.Debug("connection state changed", "from", previous, "to", state)

	if state == domain.NotConnected {
		if c.stats != nil {
			c.stats.StopAt(snap.Counters)
		}
		c.emitter.Emit(domain.TagConnection, domain.A("state", state.String()))
		return
	}

	c.emitter.Emit(domain.TagConnection,
		domain.A("state", state.String()),
		domain.A("host", snap.Host),
	)
	if previous == domain.NotConnected {
		c.screen.Erase()
	}
	if c.stats != nil {
		c.stats.StartAt(snap.Counters)
	}
}
