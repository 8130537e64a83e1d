package submit

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts submission attempts; a nil *Metrics records nothing
type Metrics struct {
	attempts *prometheus.CounterVec
	duration *prometheus.HistogramVec
	rejected prometheus.Counter
}

// NewMetrics registers the submission metrics on reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		attempts: f.NewCounterVec(prometheus.CounterOpts{
			Name: "nounquest_submissions_total",
			Help: "Total number of finished submission attempts by outcome.",
		}, []string{"outcome"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "nounquest_submission_duration_seconds",
			Help:    "Wall time from submit to terminal outcome.",
			Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		}, []string{"outcome"}),
		rejected: f.NewCounter(prometheus.CounterOpts{
			Name: "nounquest_submissions_rejected_total",
			Help: "Submissions refused because another attempt was in flight.",
		}),
	}
}

func (m *Metrics) observe(k Kind, took time.Duration) {
	if m == nil {
		return
	}
	m.attempts.WithLabelValues(k.String()).Inc()
	m.duration.WithLabelValues(k.String()).Observe(took.Seconds())
}

func (m *Metrics) reject() {
	if m == nil {
		return
	}
	m.rejected.Inc()
}
