package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/aretw0/b3270"
	httpAdapter "github.com/aretw0/b3270/internal/adapters/http"
	"github.com/aretw0/b3270/internal/adapters/redis"
	"github.com/aretw0/b3270/internal/config"
	"github.com/aretw0/b3270/internal/logging"
	"github.com/aretw0/b3270/internal/metrics"
	"github.com/aretw0/b3270/internal/presentation/tui"
	"github.com/aretw0/b3270/pkg/screen"
)

// shutdownTimeout bounds the graceful HTTP shutdown.
const shutdownTimeout = 5 * time.Second

// Stdio carries the process streams. Out is the event channel to the UI;
// Err receives logs and diagnostics.
type Stdio struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
	// Interactive is set when In is a terminal.
	Interactive bool
}

// Run builds the back-end from cfg and serves the UI until its input ends
// or ctx is canceled. An error means the back-end could not start or its
// input failed; the caller should exit with status 1.
func Run(ctx context.Context, cfg config.Config, stdio Stdio) error {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := logging.NewWriter(stdio.Err, level)

	backend, closers, err := build(ctx, cfg, stdio, logger)
	defer func() {
		for _, c := range closers {
			c()
		}
	}()
	if err != nil {
		return err
	}

	if stdio.Interactive {
		tui.PrintBanner(stdio.Err, b3270.Version)
	}
	return backend.Run(ctx, stdio.In)
}

// build wires the back-end and its optional outer surfaces. The returned
// closers run in order when the run ends, even after a failure.
func build(ctx context.Context, cfg config.Config, stdio Stdio, logger *slog.Logger) (*b3270.Backend, []func(), error) {
	var closers []func()

	model, err := screen.NewModel(cfg.Model, cfg.Oversize)
	if err != nil {
		return nil, closers, err
	}

	m := metrics.New()
	opts := []b3270.Option{
		b3270.WithLogger(logger),
		b3270.WithOutput(stdio.Out),
		b3270.WithHooks(m.Hooks()),
		b3270.WithMinVersion(cfg.MinVersion),
		b3270.WithModel(model),
		b3270.WithStatsInterval(cfg.StatsInterval),
		b3270.WithTracePath(cfg.TraceFile),
	}
	for name, value := range cfg.Toggles {
		opts = append(opts, b3270.WithToggle(name, value))
	}

	if cfg.Redis.Address != "" {
		pub := redis.New(cfg.Redis.Address, "", 0,
			redis.WithChannel(cfg.Redis.Channel),
			redis.WithHistory(cfg.Redis.History),
		)
		closers = append(closers, func() { pub.Close() })

		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err := pub.Ping(pingCtx)
		cancel()
		if err != nil {
			return nil, closers, err
		}
		logger.Info("publishing events to redis", "address", cfg.Redis.Address, "channel", pub.Channel())
		opts = append(opts, b3270.WithSink(pub))
	}

	var streams *httpAdapter.StreamManager
	if cfg.Httpd != "" {
		streams = httpAdapter.NewStreamManager(logger)
		opts = append(opts, b3270.WithSink(streams))
	}

	backend, err := b3270.New(opts...)
	if err != nil {
		return nil, closers, err
	}

	if cfg.Httpd != "" {
		handler := httpAdapter.NewHandler(backend,
			httpAdapter.WithStreams(streams),
			httpAdapter.WithGatherer(m.Registry),
			httpAdapter.WithLogger(logger),
		)
		stop, err := serveHTTP(cfg.Httpd, handler, logger)
		if err != nil {
			backend.Close()
			return nil, closers, err
		}
		closers = append([]func(){stop}, closers...)
	}
	return backend, closers, nil
}

// serveHTTP listens on addr before returning, so a bad address is a
// startup error. The returned function shuts the server down gracefully.
func serveHTTP(addr string, handler http.Handler, logger *slog.Logger) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "address", ln.Addr().String())
		serverErrors <- srv.Serve(ln)
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Warn("graceful shutdown did not complete", "timeout", shutdownTimeout, "error", err)
			if err := srv.Close(); err != nil {
				logger.Error("failed to close http server", "error", err)
			}
		}
		if err := <-serverErrors; err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "error", err)
		}
	}, nil
}
