// Package metrics exposes the back-end's activity as Prometheus collectors.
//
// The collectors are fed through domain.Hooks, so nothing in the core
// depends on Prometheus.
package metrics

import (
	"context"
	"strconv"

	"github.com/aretw0/b3270/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors and the registry they are registered with.
type Metrics struct {
	Registry *prometheus.Registry

	events     *prometheus.CounterVec
	actions    *prometheus.CounterVec
	traffic    *prometheus.GaugeVec
	connection *prometheus.GaugeVec
	secure     prometheus.Gauge
}

// New creates the collectors on a private registry.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		events: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "b3270_events_total",
				Help: "Total number of events sent to the UI",
			},
			[]string{"tag"},
		),
		actions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "b3270_actions_total",
				Help: "Total number of actions run, by outcome",
			},
			[]string{"action", "result"},
		),
		traffic: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "b3270_session_traffic",
				Help: "Traffic counters of the current session, as last reported",
			},
			[]string{"counter"},
		),
		connection: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "b3270_connection_state",
				Help: "1 for the current connection state, 0 for the others",
			},
			[]string{"state"},
		),
		secure: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "b3270_session_secure",
				Help: "1 while the session is protected by TLS",
			},
		),
	}
	m.Registry.MustRegister(m.events, m.actions, m.traffic, m.connection, m.secure)
	m.setState(domain.NotConnected.String())
	return m
}

// Hooks returns the hooks that feed the collectors.
func (m *Metrics) Hooks() domain.Hooks {
	return domain.Hooks{
		OnEvent:  m.observeEvent,
		OnAction: m.observeAction,
	}
}

func (m *Metrics) observeEvent(_ context.Context, ev domain.Event) {
	m.events.WithLabelValues(ev.Tag()).Inc()

	switch ev.Tag() {
	case domain.TagConnection:
		if state, ok := ev.Get("state"); ok {
			m.setState(state)
		}
	case domain.TagSSL:
		secure, _ := ev.Get("secure")
		if secure == "true" {
			m.secure.Set(1)
		} else {
			m.secure.Set(0)
		}
	case domain.TagStats:
		for _, a := range ev.Attrs() {
			if v, err := strconv.ParseFloat(a.Value, 64); err == nil {
				m.traffic.WithLabelValues(a.Key).Set(v)
			}
		}
	}
}

func (m *Metrics) observeAction(_ context.Context, name string, res domain.Result) {
	result := "success"
	if !res.Success {
		result = "failure"
	}
	m.actions.WithLabelValues(name, result).Inc()
}

func (m *Metrics) setState(current string) {
	for _, state := range domain.ConnectionStates() {
		v := 0.0
		if state.String() == current {
			v = 1
		}
		m.connection.WithLabelValues(state.String()).Set(v)
	}
}
