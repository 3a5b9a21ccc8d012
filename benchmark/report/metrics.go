package report

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var trialThroughput = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Name: "attestation_bench_trial_throughput",
	Help: "Verifications per second measured by the most recent trial.",
}, []string{"mode", "batch_size"})
