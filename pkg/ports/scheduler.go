package ports

import "time"

// TimeoutID identifies an armed timeout. The zero value never names one.
type TimeoutID uint64

// Scheduler runs one-shot callbacks on the event loop.
type Scheduler interface {
	// AddTimeout arms fn to run once after d.
	AddTimeout(d time.Duration, fn func()) TimeoutID

	// RemoveTimeout cancels a pending timeout. Removing an unknown or
	// already fired timeout does nothing.
	RemoveTimeout(id TimeoutID)
}
