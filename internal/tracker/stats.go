package tracker

import (
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/aretw0/b3270/pkg/domain"
	"github.com/aretw0/b3270/pkg/ports"
)

// DefaultStatsInterval is the delay between two counter polls.
const DefaultStatsInterval = 2 * time.Second

// CounterSource supplies the current traffic counters.
type CounterSource interface {
	Counters() domain.Counters
}

// Stats reports traffic counters whenever they differ from the last report.
type Stats struct {
	source   CounterSource
	sched    ports.Scheduler
	emitter  Emitter
	interval time.Duration
	logger   *slog.Logger

	last  domain.Counters
	timer ports.TimeoutID
}

// StatsOption configures a Stats reporter.
type StatsOption func(*Stats)

// WithInterval sets the poll interval. Non-positive values are ignored.
func WithInterval(d time.Duration) StatsOption {
	return func(s *Stats) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithStatsLogger sets the structured logger.
func WithStatsLogger(logger *slog.Logger) StatsOption {
	return func(s *Stats) {
		s.logger = logger
	}
}

// NewStats creates an idle reporter.
func NewStats(source CounterSource, sched ports.Scheduler, emitter Emitter, opts ...StatsOption) *Stats {
	s := &Stats{
		source:   source,
		sched:    sched,
		emitter:  emitter,
		interval: DefaultStatsInterval,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s
}

// Running reports whether the poll is armed.
func (s *Stats) Running() bool {
	return s.timer != 0
}

// Start begins polling for a new session. The baseline is reset to zero and
// compared once right away. Starting a running reporter does nothing.
func (s *Stats) Start() {
	s.StartAt(s.source.Counters())
}

// StartAt is Start with the counters first compared against the zero
// baseline given by the caller.
func (s *Stats) StartAt(current domain.Counters) {
	if s.Running() {
		return
	}
	s.last = domain.Counters{}
	s.report(current)
	s.arm()
}

// Stop cancels the poll and reports any change not yet reported. Stopping
// an idle reporter does nothing.
func (s *Stats) Stop() {
	s.StopAt(s.source.Counters())
}

// StopAt is Stop with the final counters given by the caller.
func (s *Stats) StopAt(final domain.Counters) {
	if !s.Running() {
		return
	}
	s.sched.RemoveTimeout(s.timer)
	s.timer = 0
	s.report(final)
}

// Flush emits a stats event if the counters moved since the last report,
// and reports whether it did.
func (s *Stats) Flush() bool {
	return s.report(s.source.Counters())
}

func (s *Stats) report(current domain.Counters) bool {
	changed := current != s.last
	s.last = current
	if !changed {
		return false
	}
	s.emitter.Emit(domain.TagStats,
		domain.A("bytes-received", strconv.FormatInt(current.BytesReceived, 10)),
		domain.A("records-received", strconv.FormatInt(current.RecordsReceived, 10)),
		domain.A("bytes-sent", strconv.FormatInt(current.BytesSent, 10)),
		domain.A("records-sent", strconv.FormatInt(current.RecordsSent, 10)),
	)
	return true
}

// Last returns the most recently reported counters.
func (s *Stats) Last() domain.Counters {
	return s.last
}

func (s *Stats) arm() {
	s.timer = s.sched.AddTimeout(s.interval, s.poll)
}

func (s *Stats) poll() {
	s.timer = 0
	if s.Flush() {
		s.logger.Debug("stats reported", "counters", s.last)
	}
	s.arm()
}
