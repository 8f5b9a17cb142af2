package events

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/aretw0/b3270/pkg/domain"
)

// Sink receives every emitted event.
type Sink interface {
	Emit(ctx context.Context, ev domain.Event) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ctx context.Context, ev domain.Event) error

// Emit calls f.
func (f SinkFunc) Emit(ctx context.Context, ev domain.Event) error {
	return f(ctx, ev)
}

// Emitter builds events and delivers them to its sinks in order.
type Emitter struct {
	sinks  []Sink
	hooks  domain.Hooks
	logger *slog.Logger
}

// Option defines a functional option for configuring the Emitter.
type Option func(*Emitter)

// WithSink adds a sink. Sinks receive events in the order they were added.
func WithSink(s Sink) Option {
	return func(e *Emitter) {
		e.sinks = append(e.sinks, s)
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.Hooks) Option {
	return func(e *Emitter) {
		e.hooks = hooks
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Emitter) {
		e.logger = logger
	}
}

// NewEmitter creates an emitter.
func NewEmitter(opts ...Option) *Emitter {
	e := &Emitter{}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return e
}

// AddSink adds a sink after construction.
func (e *Emitter) AddSink(s Sink) {
	e.sinks = append(e.sinks, s)
}

// Emit builds an event from tag and attrs and sends it.
func (e *Emitter) Emit(tag string, attrs ...domain.Attr) domain.Event {
	ev := domain.NewEvent(tag, attrs...)
	e.Send(context.Background(), ev)
	return ev
}

// Send delivers ev to every sink. A failing sink is logged and does not stop
// delivery to the others.
func (e *Emitter) Send(ctx context.Context, ev domain.Event) {
	for _, s := range e.sinks {
		if err := s.Emit(ctx, ev); err != nil {
			e.logger.Warn("event sink failed", "tag", ev.Tag(), "error", err)
		}
	}
	if e.hooks.OnEvent != nil {
		e.hooks.OnEvent(ctx, ev)
	}
}

// LineSink writes one formatted line per event.
type LineSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewLineSink creates a sink writing to w.
func NewLineSink(w io.Writer) *LineSink {
	return &LineSink{w: w}
}

// Emit writes the event as a single line with one Write call.
func (s *LineSink) Emit(_ context.Context, ev domain.Event) error {
	line := Format(ev) + "\n"
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := io.WriteString(s.w, line)
	return err
}

// Recorder keeps every event it receives. It is meant for tests.
type Recorder struct {
	mu     sync.Mutex
	events []domain.Event
}

// Emit records ev.
func (r *Recorder) Emit(_ context.Context, ev domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return nil
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []domain.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Event, len(r.events))
	copy(out, r.events)
	return out
}

// Tagged returns the recorded events with the given tag.
func (r *Recorder) Tagged(tag string) []domain.Event {
	var out []domain.Event
	for _, ev := range r.Events() {
		if ev.Tag() == tag {
			out = append(out, ev)
		}
	}
	return out
}

// Tags returns the tags of the recorded events, in order.
func (r *Recorder) Tags() []string {
	evs := r.Events()
	out := make([]string, len(evs))
	for i, ev := range evs {
		out[i] = ev.Tag()
	}
	return out
}

// Reset forgets every recorded event.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
