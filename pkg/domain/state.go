package domain

import "fmt"

// ConnectionState is the engine's connection lifecycle state.
type ConnectionState int

const (
	NotConnected ConnectionState = iota
	SSLPasswordPending
	Resolving
	Pending
	Negotiating
	ConnectedInitial
	ConnectedNVT
	ConnectedNVTCharmode
	Connected3270
	ConnectedUnbound
	ConnectedENVT
	ConnectedSSCP
	ConnectedTN3270E

	numConnectionStates
)

// stateNames is indexed by ConnectionState.
var stateNames = []string{
	"not-connected",
	"ssl-password-pending",
	"resolving",
	"pending",
	"negotiating",
	"connected-initial",
	"connected-nvt",
	"connected-nvt-charmode",
	"connected-3270",
	"connected-unbound",
	"connected-e-nvt",
	"connected-sscp",
	"connected-tn3270e",
}

// ValidateStateNames reports ErrStateTable if the name table does not cover
// every ConnectionState exactly once. It is checked once at startup.
func ValidateStateNames() error {
	return validateNames(stateNames)
}

func validateNames(names []string) error {
	if len(names) != int(numConnectionStates) {
		return fmt.Errorf("%w: %d names for %d states", ErrStateTable, len(names), numConnectionStates)
	}
	return nil
}

// String returns the wire name of the state.
func (s ConnectionState) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("unknown-state-%d", int(s))
	}
	return stateNames[s]
}

// Connected reports whether the engine is anywhere past not-connected,
// including the half-connected states.
func (s ConnectionState) Connected() bool {
	return s != NotConnected
}

// ConnectionStates lists every state in order.
func ConnectionStates() []ConnectionState {
	out := make([]ConnectionState, numConnectionStates)
	for i := range out {
		out[i] = ConnectionState(i)
	}
	return out
}

// ParseConnectionState maps a wire name back to its state.
func ParseConnectionState(name string) (ConnectionState, bool) {
	for i, n := range stateNames {
		if n == name {
			return ConnectionState(i), true
		}
	}
	return NotConnected, false
}

// ChangeKind identifies which aspect of the engine changed.
type ChangeKind int

const (
	ChangeConnect ChangeKind = iota
	ChangeHalfConnect
	Change3270Mode
	ChangeLineMode
	ChangeSecure
)

// Counters are the engine's traffic totals for the current connection.
type Counters struct {
	BytesReceived   int64
	RecordsReceived int64
	BytesSent       int64
	RecordsSent     int64
}

// SecurityInfo describes the TLS posture of the current connection.
type SecurityInfo struct {
	Secure   bool
	Verified bool
	Session  string
	HostCert string
}

// TLSSupport describes what the engine's TLS provider can do.
type TLSSupport struct {
	Supported bool
	Provider  string
	Options   []string
}
