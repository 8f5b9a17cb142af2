package runner

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// SignalManager cancels a context when the process is asked to stop.
type SignalManager struct {
	ctx    context.Context
	cancel context.CancelFunc
}

// NewSignalManager derives a context from parent that is canceled on
// SIGINT or SIGTERM, or when Stop is called.
func NewSignalManager(parent context.Context) *SignalManager {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	return &SignalManager{ctx: ctx, cancel: cancel}
}

// Context returns the signal context.
func (sm *SignalManager) Context() context.Context {
	return sm.ctx
}

// Stop releases the signal handler and cancels the context.
func (sm *SignalManager) Stop() {
	sm.cancel()
}
