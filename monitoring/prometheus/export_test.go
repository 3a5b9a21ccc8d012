package prometheus

import "github.com/prometheus/client_golang/prometheus"

// LogEntries returns the log counter for level and prefix.
func LogEntries(level, prefix string) prometheus.Counter {
	return counterVec.WithLabelValues(level, prefix)
}
