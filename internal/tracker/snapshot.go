package tracker

import "github.com/aretw0/b3270/pkg/domain"

// Source is everything a Snapshot reads from the engine.
type Source interface {
	StateSource
	CounterSource
	SecuritySource
}

// Snapshot is the engine state as it was when the engine reported a change.
// The loop may run the matching Observe calls much later, after the engine
// has moved on.
type Snapshot struct {
	State    domain.ConnectionState
	Host     string
	Counters domain.Counters
	Security domain.SecurityInfo
}

// Capture reads a Snapshot from source. Call it from the engine callback.
func Capture(source Source) Snapshot {
	return Snapshot{
		State:    source.State(),
		Host:     source.Host(),
		Counters: source.Counters(),
		Security: source.Security(),
	}
}
