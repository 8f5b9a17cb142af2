// Package tracker turns engine state into edge-triggered UI events.
//
// Connection reports connection-state transitions, Security reports TLS
// posture flips and Stats reports traffic counters while connected. All
// three only emit when something actually changed, and all three must be
// driven from the event loop.
package tracker

import "github.com/aretw0/b3270/pkg/domain"

// Emitter is the part of the event emitter the trackers need.
type Emitter interface {
	Emit(tag string, attrs ...domain.Attr) domain.Event
}
