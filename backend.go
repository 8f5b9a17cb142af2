package b3270

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/aretw0/b3270/internal/trace"
	"github.com/aretw0/b3270/internal/tracker"
	"github.com/aretw0/b3270/pkg/actions"
	"github.com/aretw0/b3270/pkg/adapters/memory"
	"github.com/aretw0/b3270/pkg/domain"
	"github.com/aretw0/b3270/pkg/events"
	"github.com/aretw0/b3270/pkg/ports"
	"github.com/aretw0/b3270/pkg/runner"
	"github.com/aretw0/b3270/pkg/screen"
	"github.com/aretw0/b3270/pkg/toggles"
	"github.com/aretw0/b3270/pkg/version"
)

// Backend is the high-level entry point of the b3270 library.
// It wires the engine, the screen, the toggles and the trackers onto one
// event loop and speaks the line protocol with the UI.
type Backend struct {
	engine     ports.Engine
	loop       *runner.Loop
	emitter    *events.Emitter
	screen     *screen.Screen
	toggles    *toggles.Registry
	tracer     *trace.Tracer
	stats      *tracker.Stats
	conn       *tracker.Connection
	security   *tracker.Security
	dispatcher *actions.Dispatcher
	version    version.Spec
	started    bool

	// Options
	sinks         []events.Sink
	hooks         domain.Hooks
	logger        *slog.Logger
	minVersion    string
	model         screen.Model
	statsInterval time.Duration
	tracePath     string
	toggleValues  map[string]bool
}

// Option defines a functional option for configuring the Backend.
type Option func(*Backend)

// WithEngine sets the protocol engine. By default an in-memory engine that
// never connects is used.
func WithEngine(engine ports.Engine) Option {
	return func(b *Backend) {
		b.engine = engine
	}
}

// WithOutput sends events to w, one line each.
func WithOutput(w io.Writer) Option {
	return WithSink(events.NewLineSink(w))
}

// WithSink adds an event sink. Sinks receive events in the order they were added.
func WithSink(s events.Sink) Option {
	return func(b *Backend) {
		b.sinks = append(b.sinks, s)
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.Hooks) Option {
	return func(b *Backend) {
		b.hooks = hooks
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Backend) {
		b.logger = logger
	}
}

// WithMinVersion makes New fail unless the build is at least this version.
func WithMinVersion(v string) Option {
	return func(b *Backend) {
		b.minVersion = v
	}
}

// WithModel sets the initial terminal model and oversize.
func WithModel(m screen.Model) Option {
	return func(b *Backend) {
		b.model = m
	}
}

// WithStatsInterval sets the traffic counter poll interval.
func WithStatsInterval(d time.Duration) Option {
	return func(b *Backend) {
		b.statsInterval = d
	}
}

// WithTracePath sets the trace file used when tracing is turned on.
func WithTracePath(path string) Option {
	return func(b *Backend) {
		b.tracePath = path
	}
}

// WithToggle sets the startup value of a toggle, by display name.
func WithToggle(name string, value bool) Option {
	return func(b *Backend) {
		if b.toggleValues == nil {
			b.toggleValues = make(map[string]bool)
		}
		b.toggleValues[name] = value
	}
}

// New checks the startup conditions and builds a Backend. Every error it
// returns is fatal: the state-name table is inconsistent, a version string
// is malformed, the build is older than the requested minimum, or the
// initial model or toggles are invalid. No event has been emitted yet.
func New(opts ...Option) (*Backend, error) {
	b := &Backend{model: screen.DefaultModel}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		b.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if err := domain.ValidateStateNames(); err != nil {
		return nil, err
	}
	spec, err := version.Check(Version, b.minVersion)
	if err != nil {
		return nil, err
	}
	b.version = spec
	if err := b.model.Validate(); err != nil {
		return nil, err
	}

	if b.engine == nil {
		b.engine = memory.NewEngine()
	}
	b.loop = runner.NewLoop(runner.WithLogger(b.logger))
	b.tracer = trace.New(trace.WithPath(b.tracePath), trace.WithLogger(b.logger))

	sinks := append([]events.Sink{}, b.sinks...)
	sinks = append(sinks, b.tracer)
	emitterOpts := []events.Option{events.WithHooks(b.hooks), events.WithLogger(b.logger)}
	for _, s := range sinks {
		emitterOpts = append(emitterOpts, events.WithSink(s))
	}
	b.emitter = events.NewEmitter(emitterOpts...)

	b.screen = screen.New(screen.WithModel(b.model), screen.WithLogger(b.logger))

	if err := b.initToggles(); err != nil {
		return nil, err
	}

	b.stats = tracker.NewStats(b.engine, b.loop, b.emitter,
		tracker.WithInterval(b.statsInterval),
		tracker.WithStatsLogger(b.logger),
	)
	b.conn = tracker.NewConnection(b.engine, b.screen, b.stats, b.emitter,
		tracker.WithConnectionLogger(b.logger),
	)
	b.security = tracker.NewSecurity(b.engine, b.emitter)

	table, err := actions.NewTable(actions.Builtins(actions.Env{
		Screen:   b.screen,
		Engine:   b.engine,
		Counters: b.engine,
		Toggles:  b.toggles,
		Tracer:   b.tracer,
	})...)
	if err != nil {
		return nil, err
	}
	b.dispatcher = actions.NewDispatcher(table,
		actions.WithTracer(b.tracer),
		actions.WithHooks(b.hooks),
		actions.WithLogger(b.logger),
	)

	// The state is read in the callback so that transitions made before the
	// loop gets to them are each reported.
	b.engine.Subscribe(func(kind domain.ChangeKind) {
		snap := tracker.Capture(b.engine)
		if err := b.loop.Post(func() { b.onChange(kind, snap) }); err != nil {
			b.logger.Debug("engine change after shutdown", "kind", kind)
		}
	})
	return b, nil
}

func (b *Backend) initToggles() error {
	b.toggles = toggles.NewRegistry(
		toggles.WithEmitter(b.emitter),
		toggles.WithTracePath(b.tracer.Path),
		toggles.WithLogger(b.logger),
	)
	for _, ix := range toggles.Defaults {
		if err := b.toggles.Register(ix, b.onToggle); err != nil {
			return err
		}
	}
	for name, value := range b.toggleValues {
		ix, ok := b.toggles.Lookup(name)
		if !ok {
			return fmt.Errorf("%w: %s", domain.ErrInvalidToggle, name)
		}
		if err := b.toggles.Configure(ix, value); err != nil {
			return err
		}
	}
	return nil
}

func (b *Backend) onToggle(ix toggles.Index, value bool, init bool) error {
	if ix != toggles.Tracing {
		b.logger.Debug("toggle applied", "toggle", ix.Name(), "value", value, "init", init)
		return nil
	}
	if value {
		return b.tracer.Start()
	}
	return b.tracer.Stop()
}

func (b *Backend) onChange(kind domain.ChangeKind, snap tracker.Snapshot) {
	if kind == domain.ChangeSecure {
		b.security.Observe(snap.Security)
		return
	}
	b.conn.Observe(snap)
}

// Start emits the startup handshake: hello, model, the initial toggle
// values, ssl-hello and ready. It runs once; Run calls it if needed. It must
// not be called while the loop is running.
func (b *Backend) Start() {
	if b.started {
		return
	}
	b.started = true

	b.emitter.Emit(domain.TagHello,
		domain.A("version", b.version.String()),
		domain.A("build", Build),
		domain.A("copyright", Copyright),
	)
	b.emitter.Emit(domain.TagModel, domain.A("name", b.screen.Model().Name()))
	b.toggles.Initialize()

	tls := b.engine.TLS()
	b.emitter.Emit(domain.TagSSLHello,
		domain.Bool("supported", tls.Supported),
		domain.NonEmpty("provider", tls.Provider),
		domain.A("options", strings.Join(tls.Options, " ")),
	)
	b.emitter.Emit(domain.TagReady)

	// The engine may already be past not-connected.
	b.conn.Notify()
	b.security.Notify()
}

// Run starts the backend and processes commands from in until it ends or
// ctx is canceled. With a nil in, only ctx ends the run. Commands already
// read when in ends are still executed. Tracing stops when Run returns.
func (b *Backend) Run(ctx context.Context, in io.Reader) error {
	b.Start()

	loopCtx, stopLoop := context.WithCancel(context.Background())
	loopDone := make(chan struct{})
	go func() {
		defer close(loopDone)
		_ = b.loop.Run(loopCtx)
	}()
	defer func() {
		stopLoop()
		<-loopDone
		if err := b.tracer.Stop(); err != nil {
			b.logger.Warn("failed to close trace file", "error", err)
		}
	}()

	if in == nil {
		<-ctx.Done()
		return nil
	}

	pumpDone := make(chan error, 1)
	go func() {
		pumpDone <- runner.NewPump(in).Run(ctx, b.post)
	}()

	select {
	case err := <-pumpDone:
		if errors.Is(err, context.Canceled) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read commands: %w", err)
		}
		b.logger.Debug("input closed, draining queued commands")
		_ = b.loop.Do(ctx, func() {})
		return nil
	case <-ctx.Done():
		return nil
	}
}

func (b *Backend) post(line string) {
	_ = b.loop.Post(func() {
		b.handleLine(context.Background(), line)
	})
}

// Do runs fn on the event loop and waits for it. Use it to drive the engine
// or read core state from another goroutine while Run is active.
func (b *Backend) Do(ctx context.Context, fn func()) error {
	return b.loop.Do(ctx, fn)
}

// Execute runs one command line on the event loop, exactly as if the UI
// had sent it, and returns its result.
func (b *Backend) Execute(ctx context.Context, line string) (domain.Result, error) {
	var res domain.Result
	err := b.loop.Do(ctx, func() {
		res = b.handleLine(ctx, line)
	})
	return res, err
}

// Snapshot returns a copy of the screen, taken on the event loop.
func (b *Backend) Snapshot(ctx context.Context) (screen.Snapshot, error) {
	var snap screen.Snapshot
	err := b.loop.Do(ctx, func() {
		snap = b.screen.Snapshot()
	})
	return snap, err
}

func (b *Backend) handleLine(ctx context.Context, line string) domain.Result {
	var res domain.Result
	if clean, err := runner.SanitizeCommand(line); err != nil {
		res = domain.Fail(fmt.Errorf("%w: %v", domain.ErrSyntax, err))
	} else {
		res = b.dispatcher.Run(ctx, clean)
	}

	if res.Err != nil {
		b.emitter.Emit(domain.TagPopup,
			domain.A("type", "error"),
			domain.A("text", res.Err.Error()),
		)
	}
	b.emitter.Emit(domain.TagRunResult,
		domain.Bool("success", res.Success),
		domain.NonEmpty("text", res.Text),
	)
	return res
}

// XtermText reports an xterm text escape from the host: codes 0 and 1 set
// the icon name, 0 and 2 the window title, 50 the font. Other codes are
// ignored. It must be called on the event loop.
func (b *Backend) XtermText(code int, text string) {
	if code == 0 || code == 1 {
		b.emitter.Emit(domain.TagIconName, domain.A("text", text))
	}
	if code == 0 || code == 2 {
		b.emitter.Emit(domain.TagWindowTitle, domain.A("text", text))
	}
	if code == 50 {
		b.emitter.Emit(domain.TagFont, domain.A("text", text))
	}
}

// Close stops tracing. It is only needed when Run was never called.
func (b *Backend) Close() error {
	return b.tracer.Stop()
}

// Actions returns the action table.
func (b *Backend) Actions() *actions.Table {
	return b.dispatcher.Table()
}
