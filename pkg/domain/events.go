package domain

import "context"

// Event tags emitted on the outbound channel.
const (
	TagHello       = "hello"
	TagModel       = "model"
	TagSSLHello    = "ssl-hello"
	TagReady       = "ready"
	TagConnection  = "connection"
	TagSSL         = "ssl"
	TagStats       = "stats"
	TagToggle      = "toggle"
	TagRunResult   = "run-result"
	TagPopup       = "popup"
	TagIconName    = "icon-name"
	TagWindowTitle = "window-title"
	TagFont        = "font"
)

// Attr is a single key/value pair of an Event. An absent value is omitted on
// the wire rather than sent empty.
type Attr struct {
	Key     string
	Value   string
	Present bool
}

// A builds a present attribute.
func A(key, value string) Attr {
	return Attr{Key: key, Value: value, Present: true}
}

// Opt builds an attribute that is present only when ok is true.
func Opt(key, value string, ok bool) Attr {
	return Attr{Key: key, Value: value, Present: ok}
}

// NonEmpty builds an attribute that is present only when value is not empty.
func NonEmpty(key, value string) Attr {
	return Attr{Key: key, Value: value, Present: value != ""}
}

// Bool builds a present "true"/"false" attribute.
func Bool(key string, v bool) Attr {
	if v {
		return A(key, "true")
	}
	return A(key, "false")
}

// Event is an immutable, ordered record for the UI.
type Event struct {
	tag   string
	attrs []Attr
}

// NewEvent builds an event, dropping absent attributes. The attribute slice
// is copied so later changes by the caller cannot leak in.
func NewEvent(tag string, attrs ...Attr) Event {
	kept := make([]Attr, 0, len(attrs))
	for _, a := range attrs {
		if a.Present {
			kept = append(kept, a)
		}
	}
	return Event{tag: tag, attrs: kept}
}

// Tag returns the event name.
func (e Event) Tag() string { return e.tag }

// Attrs returns a copy of the present attributes, in order.
func (e Event) Attrs() []Attr {
	out := make([]Attr, len(e.attrs))
	copy(out, e.attrs)
	return out
}

// Get returns the value of the first attribute named key.
func (e Event) Get(key string) (string, bool) {
	for _, a := range e.attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// Hooks defines callbacks for back-end observability.
type Hooks struct {
	OnEvent  func(context.Context, Event)
	OnAction func(context.Context, string, Result)
}
