package actions

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/b3270/pkg/domain"
)

// Tracer records dispatched commands.
type Tracer interface {
	Printf(format string, args ...any)
}

// Dispatcher validates commands against a Table and runs them.
type Dispatcher struct {
	table  *Table
	tracer Tracer
	hooks  domain.Hooks
	logger *slog.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithTracer records every command in the trace file.
func WithTracer(t Tracer) Option {
	return func(d *Dispatcher) {
		d.tracer = t
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.Hooks) Option {
	return func(d *Dispatcher) {
		d.hooks = hooks
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

// NewDispatcher creates a dispatcher over table.
func NewDispatcher(table *Table, opts ...Option) *Dispatcher {
	d := &Dispatcher{table: table}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return d
}

// Table returns the action table.
func (d *Dispatcher) Table() *Table {
	return d.table
}

// Run parses line and executes it.
func (d *Dispatcher) Run(ctx context.Context, line string) domain.Result {
	cmd, err := ParseCommand(line)
	if err != nil {
		d.logger.Debug("unparsable command", "line", line, "error", err)
		return domain.Fail(err)
	}
	return d.Execute(ctx, cmd)
}

// Execute runs cmd. Errors name the action they came from.
func (d *Dispatcher) Execute(ctx context.Context, cmd Command) domain.Result {
	if d.tracer != nil {
		d.tracer.Printf("action %s", cmd)
	}

	res := d.execute(cmd)
	if res.Err != nil {
		res.Err = fmt.Errorf("%s: %w", cmd.Name, res.Err)
		d.logger.Debug("action failed", "action", cmd.Name, "error", res.Err)
	}
	if d.hooks.OnAction != nil {
		d.hooks.OnAction(ctx, cmd.Name, res)
	}
	return res
}

func (d *Dispatcher) execute(cmd Command) domain.Result {
	a, ok := d.table.Lookup(cmd.Name)
	if !ok {
		return domain.Fail(domain.ErrUnknownAction)
	}
	if n := len(cmd.Args); n < a.Min || n > a.Max {
		return domain.Fail(fmt.Errorf("%w: got %d, want %s", domain.ErrArgumentCount, n, argRange(a.Min, a.Max)))
	}
	return a.Handler(cmd.Args)
}

func argRange(lo, hi int) string {
	if lo == hi {
		return fmt.Sprint(lo)
	}
	return fmt.Sprintf("%d to %d", lo, hi)
}
