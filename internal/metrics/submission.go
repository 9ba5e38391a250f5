package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const unknown = "unknown"

var (
	submissionAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "submission",
		Name:      "attempts_total",
		Help:      "Count of extrinsic submission attempts.",
	}, []string{"call", "chain", "status"})

	submissionAttemptDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "submission",
		Name:      "attempt_duration_seconds",
		Help:      "Duration of a single submission attempt.",
		Buckets:   prometheus.ExponentialBuckets(0.05, 2, 12),
	}, []string{"call", "chain", "status"})

	submissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "submission",
		Name:      "submissions_total",
		Help:      "Count of finished submissions by outcome.",
	}, []string{"call", "chain", "outcome"})

	submissionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "submission",
		Name:      "duration_seconds",
		Help:      "Duration of a submission including retries.",
		Buckets:   prometheus.ExponentialBuckets(0.5, 2, 10),
	}, []string{"call", "chain", "outcome"})

	submissionRetriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "submission",
		Name:      "retries_total",
		Help:      "Count of submission retries.",
	}, []string{"call", "chain"})
)

// Submission tracks metrics for the extrinsic submission engine.
type Submission struct {
	chain string
}

// NewSubmission constructs a Submission collector.
func NewSubmission(chain string) *Submission {
	if chain == "" {
		chain = unknown
	}
	return &Submission{chain: chain}
}

// ObserveAttempt records the result of one attempt.
func (m Submission) ObserveAttempt(call string, err error, started time.Time) {
	status := statusOf(err)
	submissionAttemptsTotal.WithLabelValues(call, m.chain, status).Inc()
	submissionAttemptDuration.WithLabelValues(call, m.chain, status).Observe(time.Since(started).Seconds())
}

// ObserveSubmission records a finished submission.
func (m Submission) ObserveSubmission(call, outcome string, attempts int, started time.Time) {
	submissionsTotal.WithLabelValues(call, m.chain, outcome).Inc()
	submissionDuration.WithLabelValues(call, m.chain, outcome).Observe(time.Since(started).Seconds())
	if attempts > 1 {
		submissionRetriesTotal.WithLabelValues(call, m.chain).Add(float64(attempts - 1))
	}
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
