package http

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/traverse"
	"github.com/aretw0/traverse/internal/report"
	"github.com/aretw0/traverse/pkg/domain"
)

// Metrics holds the Prometheus collectors fed by engine hooks.
type Metrics struct {
	Solves  *prometheus.CounterVec
	Closure *prometheus.GaugeVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Solves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "traverse_solves_total",
				Help: "Total number of traverse solves by outcome",
			},
			[]string{"traverse", "outcome"},
		),
		Closure: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "traverse_closure_error_feet",
				Help: "Closure error of the last successful solve, in feet",
			},
			[]string{"traverse"},
		),
	}
	reg.MustRegister(m.Solves, m.Closure)
	return m
}

// Hooks adapts the collectors to engine lifecycle hooks.
func (m *Metrics) Hooks() traverse.Hooks {
	return traverse.Hooks{
		OnSolved: func(name string, rep *report.Report) {
			m.Solves.WithLabelValues(name, "ok").Inc()
			m.Closure.WithLabelValues(name).Set(rep.ClosureError)
		},
		OnFailed: func(name string, err error) {
			m.Solves.WithLabelValues(name, outcome(err)).Inc()
		},
	}
}

func outcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientVertices):
		return "insufficient_vertices"
	case errors.Is(err, domain.ErrNormalizationOverflow):
		return "overflow"
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid_input"
	default:
		return "error"
	}
}
