package http

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/aretw0/b3270"
	"github.com/aretw0/b3270/pkg/domain"
	"github.com/aretw0/b3270/pkg/screen"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// maxBodySize bounds a POST /actions body.
const maxBodySize = 64 << 10

//go:embed openapi.yaml
var rawSpec []byte

// Backend is the part of the b3270 back-end the HTTP API drives. Both
// methods run on the back-end's event loop.
type Backend interface {
	Execute(ctx context.Context, line string) (domain.Result, error)
	Snapshot(ctx context.Context) (screen.Snapshot, error)
}

// Server holds the handlers of the HTTP API.
type Server struct {
	Backend    Backend
	Streams    *StreamManager
	gatherer   prometheus.Gatherer
	logger     *slog.Logger
	apiVersion string
}

// Option configures the Server.
type Option func(*Server)

// WithStreams sets the stream manager feeding GET /events. Register the
// same manager as an event sink on the back-end.
func WithStreams(sm *StreamManager) Option {
	return func(s *Server) {
		s.Streams = sm
	}
}

// WithGatherer exposes g on GET /metrics.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.gatherer = g
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// LoadSpec parses and validates the embedded OpenAPI description.
func LoadSpec(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx
	doc, err := loader.LoadFromData(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("failed to load API description: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid API description: %w", err)
	}
	return doc, nil
}

// NewHandler creates the HTTP handler for backend.
func NewHandler(backend Backend, opts ...Option) http.Handler {
	s := &Server{
		Backend:    backend,
		apiVersion: "unknown",
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if s.Streams == nil {
		s.Streams = NewStreamManager(s.logger)
	}
	if doc, err := LoadSpec(context.Background()); err != nil {
		s.logger.Error("failed to load OpenAPI description", "error", err)
	} else if doc.Info != nil {
		s.apiVersion = doc.Info.Version
	}

	r := chi.NewRouter()
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(rawSpec)
	})
	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Post("/actions", s.RunAction)
	r.Get("/actions/{cmd}", s.GetAction)
	r.Get("/screen", s.GetScreen)
	r.Get("/events", s.SubscribeEvents)
	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ActionResponse is the JSON body returned for an action.
type ActionResponse struct {
	Success bool   `json:"success"`
	Text    string `json:"text,omitempty"`
	Error   string `json:"error,omitempty"`
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles GET /info.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"app":         "b3270-httpd",
		"version":     b3270.Version,
		"api_version": s.apiVersion,
	})
}

// RunAction handles POST /actions. The body is one command line.
func (s *Server) RunAction(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("RunAction: invalid request body", "error", err)
		return
	}
	s.execute(w, r, strings.TrimSpace(string(body)))
}

// GetAction handles GET /actions/{cmd}.
func (s *Server) GetAction(w http.ResponseWriter, r *http.Request) {
	cmd := chi.URLParam(r, "cmd")
	if v, err := url.PathUnescape(cmd); err == nil {
		cmd = v
	}
	s.execute(w, r, cmd)
}

func (s *Server) execute(w http.ResponseWriter, r *http.Request, line string) {
	if line == "" {
		http.Error(w, "Missing command", http.StatusBadRequest)
		return
	}

	res, err := s.Backend.Execute(r.Context(), line)
	if err != nil {
		s.unavailable(w, "Execute", err)
		return
	}

	resp := ActionResponse{Success: res.Success, Text: res.Text}
	if res.Err != nil {
		resp.Error = res.Err.Error()
	}
	status := http.StatusOK
	if !res.Success {
		status = http.StatusBadRequest
	}
	s.logger.Debug("action run over HTTP", "command", line, "success", res.Success)
	writeJSON(w, status, resp)
}

// GetScreen handles GET /screen.
func (s *Server) GetScreen(w http.ResponseWriter, r *http.Request) {
	snap, err := s.Backend.Snapshot(r.Context())
	if err != nil {
		s.unavailable(w, "Snapshot", err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) unavailable(w http.ResponseWriter, op string, err error) {
	status := http.StatusServiceUnavailable
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		status = http.StatusGatewayTimeout
	}
	http.Error(w, fmt.Sprintf("%s error: %v", op, err), status)
	s.logger.Warn(op+" failed", "error", err)
}

// SubscribeEvents handles GET /events, streaming every event line as a
// server-sent event until the client goes away.
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		s.logger.Error("SubscribeEvents: streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch, cancel := s.Streams.Subscribe()
	defer cancel()

	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			s.logger.Debug("SSE client disconnected")
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
