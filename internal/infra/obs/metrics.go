package obs

import (
	"time"

	"scan-bridge/internal/domain/scan"
	"scan-bridge/internal/usecase"

	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	RequestsTotal    prometheus.Counter
	SettlementsTotal *prometheus.CounterVec   // outcome=decoded|dismissed|timed_out|...
	SettleSeconds    *prometheus.HistogramVec // outcome
	SessionsActive   prometheus.Gauge
	DecodeEvents     *prometheus.CounterVec // result=accepted|suppressed|dropped
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scan_requests_total",
			Help: "Total scan requests admitted by the broker",
		}),
		SettlementsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scan_settlements_total",
				Help: "Total scan request settlements by outcome",
			},
			[]string{"outcome"},
		),
		SettleSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "scan_settle_seconds",
				Help:    "Time from admission to settlement",
				Buckets: prometheus.ExponentialBuckets(0.05, 2, 12), // 50ms .. ~100s
			},
			[]string{"outcome"},
		),
		SessionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "capture_sessions_active",
			Help: "1 while the capture surface is mounted",
		}),
		DecodeEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "decode_events_total",
				Help: "Raw decode events by debounce result",
			},
			[]string{"result"},
		),
	}

	reg.MustRegister(
		m.RequestsTotal,
		m.SettlementsTotal,
		m.SettleSeconds,
		m.SessionsActive,
		m.DecodeEvents,
	)

	return m
}

func (m *Metrics) RequestAdmitted() {
	m.RequestsTotal.Inc()
}

func (m *Metrics) Settled(outcome scan.Outcome, elapsed time.Duration) {
	m.SettlementsTotal.WithLabelValues(outcome.String()).Inc()
	m.SettleSeconds.WithLabelValues(outcome.String()).Observe(elapsed.Seconds())
}

func (m *Metrics) SurfaceMounted(mounted bool) {
	if mounted {
		m.SessionsActive.Set(1)
		return
	}
	m.SessionsActive.Set(0)
}

func (m *Metrics) DecodeEvent(result string) {
	m.DecodeEvents.WithLabelValues(result).Inc()
}

var _ usecase.Observer = (*Metrics)(nil)
