package ports

import "github.com/aretw0/b3270/pkg/domain"

// Engine is the protocol engine as seen by the event layer. It is only read;
// connection transitions are driven by the engine itself.
type Engine interface {
	// State returns the current connection state.
	State() domain.ConnectionState

	// Host returns the name of the connected host, or "" when disconnected.
	Host() string

	// Counters returns the traffic counters of the current session.
	Counters() domain.Counters

	// Security returns the TLS posture of the current session.
	Security() domain.SecurityInfo

	// TLS describes the TLS support built into the engine.
	TLS() domain.TLSSupport

	// Subscribe registers fn to be called after every state change.
	// Callbacks run on the goroutine that changed the engine.
	Subscribe(fn func(kind domain.ChangeKind))
}
