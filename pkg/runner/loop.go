package runner

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/b3270/pkg/ports"
)

// ErrLoopStopped is returned when work is posted to a loop that has exited.
var ErrLoopStopped = errors.New("event loop stopped")

// Loop runs posted work on a single goroutine, one closure at a time.
// It implements ports.Scheduler.
type Loop struct {
	mu      sync.Mutex
	pending []func()
	wake    chan struct{}
	quit    chan struct{}
	stopped bool
	timers  map[ports.TimeoutID]*time.Timer
	nextID  ports.TimeoutID
	logger  *slog.Logger
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) LoopOption {
	return func(l *Loop) {
		l.logger = logger
	}
}

// NewLoop creates a loop. Nothing runs until Run is called.
func NewLoop(opts ...LoopOption) *Loop {
	l := &Loop{
		wake:   make(chan struct{}, 1),
		quit:   make(chan struct{}),
		timers: make(map[ports.TimeoutID]*time.Timer),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return l
}

// Post queues fn to run on the loop. It never blocks and may be called from
// any goroutine, including the loop itself.
func (l *Loop) Post(fn func()) error {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return ErrLoopStopped
	}
	l.pending = append(l.pending, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
	return nil
}

// Do runs fn on the loop and waits for it to finish. It must not be called
// from the loop goroutine. If the loop stops before fn runs, Do returns
// ErrLoopStopped.
func (l *Loop) Do(ctx context.Context, fn func()) error {
	done := make(chan struct{})
	if err := l.Post(func() {
		defer close(done)
		fn()
	}); err != nil {
		return err
	}
	select {
	case <-done:
		return nil
	case <-l.quit:
		select {
		case <-done:
			return nil
		default:
			return ErrLoopStopped
		}
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run processes posted work until ctx is canceled. Work still queued at
// that point is discarded and pending timeouts are canceled.
func (l *Loop) Run(ctx context.Context) error {
	l.logger.Debug("event loop started")
	defer l.stop()

	for {
		for fn := l.next(); fn != nil; fn = l.next() {
			fn()
			if ctx.Err() != nil {
				return nil
			}
		}
		select {
		case <-ctx.Done():
			return nil
		case <-l.wake:
		}
	}
}

// AddTimeout arms fn to run on the loop once after d.
func (l *Loop) AddTimeout(d time.Duration, fn func()) ports.TimeoutID {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.nextID++
	id := l.nextID
	l.timers[id] = time.AfterFunc(d, func() {
		_ = l.Post(func() {
			// The timeout may have been removed after the timer fired.
			l.mu.Lock()
			_, live := l.timers[id]
			delete(l.timers, id)
			l.mu.Unlock()
			if live {
				fn()
			}
		})
	})
	return id
}

// RemoveTimeout cancels a pending timeout.
func (l *Loop) RemoveTimeout(id ports.TimeoutID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if t, ok := l.timers[id]; ok {
		t.Stop()
		delete(l.timers, id)
	}
}

func (l *Loop) next() func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.pending) == 0 {
		return nil
	}
	fn := l.pending[0]
	l.pending[0] = nil
	l.pending = l.pending[1:]
	return fn
}

func (l *Loop) stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.stopped {
		close(l.quit)
	}
	l.stopped = true
	if n := len(l.pending); n > 0 {
		l.logger.Debug("discarding queued work", "count", n)
	}
	l.pending = nil
	for id, t := range l.timers {
		t.Stop()
		delete(l.timers, id)
	}
	l.logger.Debug("event loop stopped")
}
