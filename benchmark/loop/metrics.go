package loop

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	verificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "attestation_bench_verifications_total",
		Help: "Number of attestation signatures verified by benchmark loops.",
	}, []string{"mode"})
	loopsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "attestation_bench_loops_total",
		Help: "Number of completed timed verification loops.",
	}, []string{"mode"})
	loopOvershootSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "attestation_bench_loop_overshoot_seconds",
		Help:    "Time a loop ran past its deadline while finishing the last unit of work.",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
	}, []string{"mode"})
)
