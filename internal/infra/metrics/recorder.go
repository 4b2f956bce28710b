package metrics

import (
	"time"

	"storefront/internal/domain/payment"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "storefront"

// Recorder owns every collector the service exports. Collectors are
// registered once on the given registerer.
type Recorder struct {
	checkouts       *prometheus.CounterVec
	actions         *prometheus.CounterVec
	resolutions     *prometheus.CounterVec
	sweepFailures   prometheus.Counter
	sessionsCleaned prometheus.Counter
	stuckReferences prometheus.Gauge
	sweepDuration   prometheus.Histogram
	gatewayLatency  *prometheus.HistogramVec
}

func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		checkouts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "checkout", Name: "reconciliations_total",
			Help: "Checkout reconciliations by result.",
		}, []string{"result"}),
		actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "checkout", Name: "actions_total",
			Help: "Reservation actions applied by committed reconciliations.",
		}, []string{"kind"}),
		resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "sweeper", Name: "resolutions_total",
			Help: "Payment references resolved by the sweeper, by gateway outcome.",
		}, []string{"outcome"}),
		sweepFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "sweeper", Name: "failures_total",
			Help: "References whose resolution transaction failed.",
		}),
		sessionsCleaned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "sweeper", Name: "sessions_cleaned_total",
			Help: "Expired sessions removed with their cart items.",
		}),
		stuckReferences: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: "sweeper", Name: "stuck_references",
			Help: "References left unresolved for several consecutive sweeps in the last run.",
		}),
		sweepDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: "sweeper", Name: "run_duration_seconds",
			Help:    "Wall time of one sweep run.",
			Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}),
		gatewayLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: "gateway", Name: "verify_duration_seconds",
			Help:    "Latency of transaction verification calls, by outcome.",
			Buckets: prometheus.DefBuckets,
		}, []string{"outcome"}),
	}

	reg.MustRegister(
		r.checkouts,
		r.actions,
		r.resolutions,
		r.sweepFailures,
		r.sessionsCleaned,
		r.stuckReferences,
		r.sweepDuration,
		r.gatewayLatency,
	)
	return r
}

func (r *Recorder) ObserveCheckout(result string) {
	r.checkouts.WithLabelValues(result).Inc()
}

func (r *Recorder) ObserveAction(kind string) {
	r.actions.WithLabelValues(kind).Inc()
}

func (r *Recorder) ObserveResolution(outcome payment.Outcome) {
	r.resolutions.WithLabelValues(outcome.String()).Inc()
}

func (r *Recorder) ObserveSweep(elapsed time.Duration, sessionsCleaned, failures, stuck int) {
	r.sweepDuration.Observe(elapsed.Seconds())
	r.stuckReferences.Set(float64(stuck))
	r.sessionsCleaned.Add(float64(sessionsCleaned))
	r.sweepFailures.Add(float64(failures))
}

func (r *Recorder) ObserveVerification(outcome payment.Outcome, elapsed time.Duration) {
	r.gatewayLatency.WithLabelValues(outcome.String()).Observe(elapsed.Seconds())
}
