// Package toggles holds the emulator's named boolean settings.
//
// A Registry is built once at startup and passed to every component that
// reads or changes toggles. Set is the only way to change a value; it runs
// the toggle's callback and reports the change as a toggle event.
package toggles

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/b3270/pkg/domain"
)

// Index identifies a toggle.
type Index int

const (
	MonoCase Index = iota
	AltCursor
	CursorBlink
	Tracing
	VisibleControl
	Crosshair
	OverlayPaste
)

// names holds the display name of every known toggle.
var names = map[Index]string{
	MonoCase:       "monoCase",
	AltCursor:      "altCursor",
	CursorBlink:    "cursorBlink",
	Tracing:        "trace",
	VisibleControl: "visibleControl",
	Crosshair:      "crosshair",
	OverlayPaste:   "overlayPaste",
}

// Defaults lists the standard toggles in registration order.
var Defaults = []Index{MonoCase, AltCursor, CursorBlink, Tracing, VisibleControl, Crosshair, OverlayPaste}

// Name returns the display name of ix, or "" if it is unknown.
func (ix Index) Name() string {
	return names[ix]
}

// Callback runs after a toggle's value is stored. init is true only while
// Initialize applies the startup values. A returned error reverts the value.
type Callback func(ix Index, value bool, init bool) error

// Emitter is the part of the event emitter the registry needs.
type Emitter interface {
	Emit(tag string, attrs ...domain.Attr) domain.Event
}

type entry struct {
	index    Index
	name     string
	value    bool
	callback Callback
}

// Registry is the set of registered toggles.
type Registry struct {
	entries   []*entry
	byIndex   map[Index]*entry
	emitter   Emitter
	tracePath func() string
	logger    *slog.Logger
}

// Option defines a functional option for configuring the Registry.
type Option func(*Registry)

// WithEmitter sets where toggle events are sent.
func WithEmitter(e Emitter) Option {
	return func(r *Registry) {
		r.emitter = e
	}
}

// WithTracePath reports the active trace file for the tracing toggle event.
func WithTracePath(fn func() string) Option {
	return func(r *Registry) {
		r.tracePath = fn
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{byIndex: make(map[Index]*entry)}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r
}

// Register adds a toggle with its callback. Registering an index twice
// replaces the callback but keeps the registration order.
func (r *Registry) Register(ix Index, cb Callback) error {
	name := ix.Name()
	if name == "" {
		return fmt.Errorf("%w: index %d", domain.ErrInvalidToggle, ix)
	}
	if e, ok := r.byIndex[ix]; ok {
		e.callback = cb
		return nil
	}
	e := &entry{index: ix, name: name, callback: cb}
	r.entries = append(r.entries, e)
	r.byIndex[ix] = e
	return nil
}

// Lookup finds a toggle by display name.
func (r *Registry) Lookup(name string) (Index, bool) {
	for _, e := range r.entries {
		if e.name == name {
			return e.index, true
		}
	}
	return 0, false
}

// Names returns the registered display names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.name
	}
	return out
}

// Value reports the current value of ix. Unknown toggles read as false.
func (r *Registry) Value(ix Index) bool {
	if e, ok := r.byIndex[ix]; ok {
		return e.value
	}
	return false
}

// Configure stores a startup value without running callbacks. Initialize
// applies it later.
func (r *Registry) Configure(ix Index, value bool) error {
	e, ok := r.byIndex[ix]
	if !ok {
		return fmt.Errorf("%w: %d", domain.ErrInvalidToggle, ix)
	}
	e.value = value
	return nil
}

// Initialize runs every callback once, in registration order, with init set,
// and reports each toggle's startup value.
func (r *Registry) Initialize() {
	for _, e := range r.entries {
		if e.callback != nil {
			if err := e.callback(e.index, e.value, true); err != nil {
				r.logger.Warn("toggle initialization failed", "toggle", e.name, "error", err)
				e.value = false
			}
		}
		r.report(e)
	}
}

// Set changes ix to value. Setting a toggle to its current value does nothing.
func (r *Registry) Set(ix Index, value bool) error {
	e, ok := r.byIndex[ix]
	if !ok {
		return fmt.Errorf("%w: %d", domain.ErrInvalidToggle, ix)
	}
	if e.value == value {
		return nil
	}

	e.value = value
	if e.callback != nil {
		if err := e.callback(ix, value, false); err != nil {
			e.value = !value
			return fmt.Errorf("toggle %s: %w", e.name, err)
		}
	}
	r.logger.Debug("toggle changed", "toggle", e.name, "value", value)
	r.report(e)
	return nil
}

// Flip inverts ix.
func (r *Registry) Flip(ix Index) error {
	return r.Set(ix, !r.Value(ix))
}

func (r *Registry) report(e *entry) {
	if r.emitter == nil {
		return
	}
	file := ""
	if e.index == Tracing && e.value && r.tracePath != nil {
		file = r.tracePath()
	}
	r.emitter.Emit(domain.TagToggle,
		domain.A("name", e.name),
		domain.Bool("value", e.value),
		domain.NonEmpty("file", file),
	)
}
