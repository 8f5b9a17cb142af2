// Package memory provides an in-memory protocol engine.
//
// The engine holds connection state, counters and security posture and lets
// the caller drive them directly. It backs the offline CLI mode and the tests
// of everything that consumes ports.Engine.
package memory

import (
	"slices"
	"sync"

	"github.com/aretw0/b3270/pkg/domain"
)

// Engine implements ports.Engine in memory.
// Safe for concurrent use; subscribers are called without the lock held.
type Engine struct {
	mu          sync.RWMutex
	state       domain.ConnectionState
	host        string
	counters    domain.Counters
	security    domain.SecurityInfo
	tls         domain.TLSSupport
	subscribers []func(domain.ChangeKind)
}

// Option configures an Engine.
type Option func(*Engine)

// WithTLS sets the TLS support the engine reports.
func WithTLS(tls domain.TLSSupport) Option {
	return func(e *Engine) {
		e.tls = tls
	}
}

// NewEngine creates a disconnected engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		tls: domain.TLSSupport{
			Supported: true,
			Provider:  "crypto/tls",
			Options:   []string{"accept-hostname", "verify-host-cert", "min-protocol", "max-protocol"},
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State returns the current connection state.
func (e *Engine) State() domain.ConnectionState {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state
}

// Host returns the connected host name.
func (e *Engine) Host() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.host
}

// Counters returns the traffic counters.
func (e *Engine) Counters() domain.Counters {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.counters
}

// Security returns the TLS posture.
func (e *Engine) Security() domain.SecurityInfo {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.security
}

// TLS describes the TLS support.
func (e *Engine) TLS() domain.TLSSupport {
	e.mu.RLock()
	defer e.mu.RUnlock()
	tls := e.tls
	tls.Options = append([]string(nil), e.tls.Options...)
	return tls
}

// Subscribe registers a change callback.
func (e *Engine) Subscribe(fn func(domain.ChangeKind)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.subscribers = append(e.subscribers, fn)
}

// Connect starts a new session with host and moves straight to 3270 mode.
// The counters of the previous session are discarded.
func (e *Engine) Connect(host string) {
	e.mu.Lock()
	e.host = host
	e.counters = domain.Counters{}
	e.mu.Unlock()
	e.SetState(domain.Connected3270)
}

// Disconnect ends the session and drops its security posture.
func (e *Engine) Disconnect() {
	e.mu.Lock()
	wasSecure := e.security.Secure
	e.host = ""
	e.security = domain.SecurityInfo{}
	e.mu.Unlock()
	e.SetState(domain.NotConnected)
	if wasSecure {
		e.notify(domain.ChangeSecure)
	}
}

// SetState moves the engine to state and notifies subscribers. Setting the
// current state notifies as well, since real engines repeat notifications.
func (e *Engine) SetState(state domain.ConnectionState) {
	e.mu.Lock()
	e.state = state
	e.mu.Unlock()

	switch {
	case state == domain.NotConnected, state >= domain.ConnectedInitial:
		e.notify(domain.ChangeConnect)
	default:
		e.notify(domain.ChangeHalfConnect)
	}
	switch state {
	case domain.Connected3270, domain.ConnectedTN3270E, domain.ConnectedSSCP:
		e.notify(domain.Change3270Mode)
	case domain.ConnectedNVT, domain.ConnectedNVTCharmode, domain.ConnectedENVT:
		e.notify(domain.ChangeLineMode)
	}
}

// SetSecurity replaces the TLS posture and notifies subscribers.
func (e *Engine) SetSecurity(info domain.SecurityInfo) {
	e.mu.Lock()
	e.security = info
	e.mu.Unlock()
	e.notify(domain.ChangeSecure)
}

// AddReceived accounts for inbound traffic.
func (e *Engine) AddReceived(bytes, records int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.counters.BytesReceived += bytes
	e.counters.RecordsReceived += records
}

// AddSent accounts for outbound traffic.
func (e *Engine) AddSent(bytes, records int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.counters.BytesSent += bytes
	e.counters.RecordsSent += records
}

func (e *Engine) notify(kind domain.ChangeKind) {
	e.mu.RLock()
	subs := slices.Clone(e.subscribers)
	e.mu.RUnlock()
	for _, fn := range subs {
		fn(kind)
	}
}
