package actions

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/b3270/pkg/domain"
	"github.com/aretw0/b3270/pkg/screen"
	"github.com/aretw0/b3270/pkg/toggles"
)

// StateSource reports whether a session is up.
type StateSource interface {
	State() domain.ConnectionState
}

// CounterSource supplies the traffic counters.
type CounterSource interface {
	Counters() domain.Counters
}

// TraceControl is the trace file as seen by the Trace action. Turning
// tracing on and off goes through the tracing toggle.
type TraceControl interface {
	Path() string
	SetPath(path string) error
}

// Env is what the built-in actions operate on.
type Env struct {
	Screen   *screen.Screen
	Engine   StateSource
	Counters CounterSource
	Toggles  *toggles.Registry
	Tracer   TraceControl
}

// Builtins returns the standard actions bound to env.
func Builtins(env Env) []Action {
	return []Action{
		{Name: "Model", Min: 0, Max: 2, Handler: env.model},
		{Name: "Trace", Min: 0, Max: 2, Handler: env.trace},
		{Name: "ClearRegion", Min: 4, Max: 4, Handler: env.clearRegion},
		{Name: "Toggle", Min: 1, Max: 2, Handler: env.toggle},
		{Name: "Stats", Min: 0, Max: 0, Handler: env.stats},
	}
}

// model reports the model with no arguments. With one it changes the model
// and clears the oversize; with two it sets both.
func (env Env) model(args []string) domain.Result {
	if len(args) == 0 {
		return domain.Ok(env.Screen.Model().String())
	}
	if env.Engine.State().Connected() {
		return domain.Fail(domain.ErrConnected)
	}

	number, color, err := screen.ParseModel(args[0])
	if err != nil {
		return domain.Fail(err)
	}
	want := screen.Model{Number: number, Color: color}
	if len(args) > 1 {
		want.OvRows, want.OvCols, err = screen.ParseOversize(args[1])
		if err != nil {
			return domain.Fail(err)
		}
	}

	if err := env.Screen.SetModel(want); err != nil {
		return domain.Fail(err)
	}
	if env.Screen.Model() != want {
		return domain.Result{}
	}
	return domain.Ok("")
}

// trace accepts no arguments, On, On with a file name, or Off.
func (env Env) trace(args []string) domain.Result {
	tracing := env.Toggles.Value(toggles.Tracing)
	if len(args) == 0 {
		if tracing {
			return domain.Ok("On," + env.Tracer.Path())
		}
		return domain.Ok("Off")
	}

	switch strings.ToLower(args[0]) {
	case "off":
		if len(args) > 1 {
			return domain.Fail(fmt.Errorf("%w: too many arguments for 'Off'", domain.ErrArgumentCount))
		}
		if !tracing {
			return domain.Ok("")
		}
		path := env.Tracer.Path()
		if err := env.Toggles.Set(toggles.Tracing, false); err != nil {
			return domain.Fail(err)
		}
		return domain.Ok("Off," + path)

	case "on":
		if tracing {
			if len(args) > 1 {
				return domain.Fail(domain.ErrTraceActive)
			}
			return domain.Ok("")
		}
		previous := env.Tracer.Path()
		if len(args) > 1 {
			if err := env.Tracer.SetPath(args[1]); err != nil {
				return domain.Fail(err)
			}
		}
		if err := env.Toggles.Set(toggles.Tracing, true); err != nil {
			// A failed start leaves the trace file as it was.
			if perr := env.Tracer.SetPath(previous); perr != nil {
				return domain.Fail(errors.Join(err, perr))
			}
			return domain.Fail(err)
		}
		return domain.Ok("On," + env.Tracer.Path())
	}
	return domain.Fail(fmt.Errorf("%w: must be On or Off", domain.ErrInvalidParameter))
}

func (env Env) clearRegion(args []string) domain.Result {
	var n [4]int
	for i, arg := range args {
		v, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil {
			return domain.Fail(fmt.Errorf("%w: %q is not a number", domain.ErrInvalidParameter, arg))
		}
		n[i] = v
	}
	if err := env.Screen.ClearRegion(n[0], n[1], n[2], n[3]); err != nil {
		return domain.Fail(err)
	}
	return domain.Ok("")
}

// toggle flips the named toggle, or sets it to true/set or false/clear.
func (env Env) toggle(args []string) domain.Result {
	ix, ok := env.Toggles.Lookup(args[0])
	if !ok {
		return domain.Fail(fmt.Errorf("%w: %s", domain.ErrInvalidToggle, args[0]))
	}
	if len(args) == 1 {
		if err := env.Toggles.Flip(ix); err != nil {
			return domain.Fail(err)
		}
		return domain.Ok("")
	}

	var value bool
	switch strings.ToLower(args[1]) {
	case "true", "set":
		value = true
	case "false", "clear":
	default:
		return domain.Fail(fmt.Errorf("%w: value must be true, false, set or clear", domain.ErrInvalidParameter))
	}
	if err := env.Toggles.Set(ix, value); err != nil {
		return domain.Fail(err)
	}
	return domain.Ok("")
}

func (env Env) stats(args []string) domain.Result {
	c := env.Counters.Counters()
	return domain.Ok(fmt.Sprintf("bytes-received %d records-received %d bytes-sent %d records-sent %d",
		c.BytesReceived, c.RecordsReceived, c.BytesSent, c.RecordsSent))
}
