package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "kasaglow"

// Booking exposes counters/histograms for the booking wizard.
type Booking struct {
	gatherer       prometheus.Gatherer
	transitions    *prometheus.CounterVec
	confirmed      *prometheus.CounterVec
	payments       *prometheus.CounterVec
	slotsOffered   prometheus.Histogram
	activeSessions prometheus.Gauge
}

// New registers the booking metrics on a fresh registry served by Handler.
func New() *Booking {
	return NewWithRegistry(prometheus.NewRegistry())
}

func NewWithRegistry(reg *prometheus.Registry) *Booking {
	m := &Booking{
		gatherer: reg,
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "wizard",
			Name:      "transitions_total",
			Help:      "Wizard transitions by name and outcome",
		}, []string{"transition", "outcome"}),
		confirmed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "booking",
			Name:      "confirmed_total",
			Help:      "Bookings appended to the booking log",
		}, []string{"service"}),
		payments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "payment",
			Name:      "attempts_total",
			Help:      "Payment attempts by method and outcome",
		}, []string{"method", "outcome"}),
		slotsOffered: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "availability",
			Name:      "slots_offered",
			Help:      "Number of slots returned per availability query",
			Buckets:   prometheus.LinearBuckets(0, 4, 6),
		}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "wizard",
			Name:      "active_sessions",
			Help:      "Wizard sessions currently held in memory",
		}),
	}

	reg.MustRegister(m.transitions, m.confirmed, m.payments, m.slotsOffered, m.activeSessions)

	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Booking) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}

	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

func (m *Booking) ObserveTransition(transition string, err error) {
	if m == nil {
		return
	}

	m.transitions.WithLabelValues(transition, outcome(err)).Inc()
}

func (m *Booking) ObserveConfirmed(service string) {
	if m == nil {
		return
	}

	m.confirmed.WithLabelValues(service).Inc()
}

func (m *Booking) ObservePayment(method string, err error) {
	if m == nil {
		return
	}

	m.payments.WithLabelValues(method, outcome(err)).Inc()
}

func (m *Booking) ObserveSlotsOffered(count int) {
	if m == nil {
		return
	}

	m.slotsOffered.Observe(float64(count))
}

func (m *Booking) SetActiveSessions(count int) {
	if m == nil {
		return
	}

	m.activeSessions.Set(float64(count))
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}

	return "ok"
}
