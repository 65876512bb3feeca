// Package metrics provides Prometheus instrumentation for the storefront.
//
// There is no HTTP server, so metrics live on a private registry that the
// CLI can dump in the text exposition format:
//
//	reg := metrics.NewRegistry()
//	m := metrics.NewStoreMetrics(reg, "fruitfuel")
//	st := store.New(initial, store.WithMetrics(m))
//	…
//	metrics.WriteText(os.Stdout, reg)
package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/common/expfmt"
)

// Transition outcomes used as the "outcome" label.
const (
	OutcomeApplied  = "applied"
	OutcomeRejected = "rejected"
)

// StoreMetrics instruments the state store.
type StoreMetrics struct {
	// Transitions counts dispatched actions by kind and outcome.
	Transitions *prometheus.CounterVec

	// TransitionDuration tracks how long the reducer takes per action kind.
	TransitionDuration *prometheus.HistogramVec

	// CartLines is the number of distinct products in the cart.
	CartLines prometheus.Gauge

	// CartUnits is the total quantity across all cart lines.
	CartUnits prometheus.Gauge

	// OrdersRecorded counts checked-out orders.
	OrdersRecorded prometheus.Counter
}

// NewRegistry returns a registry with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// NewStoreMetrics creates the store metrics and registers them on reg.
func NewStoreMetrics(reg prometheus.Registerer, namespace string) *StoreMetrics {
	m := &StoreMetrics{
		Transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "store",
				Name:      "transitions_total",
				Help:      "Total dispatched store actions.",
			},
			[]string{"action", "outcome"},
		),
		TransitionDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "store",
				Name:      "transition_duration_seconds",
				Help:      "Time spent computing a transition.",
				Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
			},
			[]string{"action"},
		),
		CartLines: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "cart",
			Name:      "lines",
			Help:      "Distinct products currently in the cart.",
		}),
		CartUnits: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "cart",
			Name:      "units",
			Help:      "Total units currently in the cart.",
		}),
		OrdersRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "checkout",
			Name:      "orders_total",
			Help:      "Orders handed to the payment collaborator.",
		}),
	}
	reg.MustRegister(m.Transitions, m.TransitionDuration, m.CartLines, m.CartUnits, m.OrdersRecorded)
	return m
}

// ObserveTransition records one dispatch:
//
//	defer m.ObserveTransition(kind, time.Now(), &err)
func (m *StoreMetrics) ObserveTransition(action string, start time.Time, errp *error) {
	if m == nil {
		return
	}
	outcome := OutcomeApplied
	if errp != nil && *errp != nil {
		outcome = OutcomeRejected
	}
	m.Transitions.WithLabelValues(action, outcome).Inc()
	m.TransitionDuration.WithLabelValues(action).Observe(time.Since(start).Seconds())
}

// SetCart updates the cart gauges.
func (m *StoreMetrics) SetCart(lines, units int) {
	if m == nil {
		return
	}
	m.CartLines.Set(float64(lines))
	m.CartUnits.Set(float64(units))
}

// WriteText writes every metric family in g in the Prometheus text format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics: write %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
