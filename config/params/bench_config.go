package params

import (
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// BenchConfig holds the constants of a benchmark run. Values are fixed for
// the duration of a run and never derived from measurements.
type BenchConfig struct {
	PoolSize      int           // PoolSize is the number of signed attestations generated up front.
	TrialDuration time.Duration // TrialDuration is the wall clock length of each trial.
	TrialCount    int           // TrialCount is the number of trials per configuration.
	BatchSizes    []int         // BatchSizes are the simulated batch sizes, measured in ascending order.
	Seed          int64         // Seed makes the attestation pool reproducible when non-zero.
}

// DefaultBenchConfig returns the reference benchmark settings.
func DefaultBenchConfig() *BenchConfig {
	return &BenchConfig{
		PoolSize:      100,
		TrialDuration: 5 * time.Second,
		TrialCount:    3,
		BatchSizes:    []int{1, 10, 50, 100},
	}
}

// Copy returns a deep copy of the config.
func (c *BenchConfig) Copy() *BenchConfig {
	cp := *c
	cp.BatchSizes = make([]int, len(c.BatchSizes))
	copy(cp.BatchSizes, c.BatchSizes)
	return &cp
}

// Validate checks the config for values the benchmark cannot run with and
// sorts the batch sizes ascending. Seeds are non-negative because the YAML
// flag source drops values below one.
func (c *BenchConfig) Validate() error {
	if c.PoolSize <= 0 {
		return errors.Errorf("pool size must be positive, got %d", c.PoolSize)
	}
	if c.TrialDuration <= 0 {
		return errors.Errorf("trial duration must be positive, got %s", c.TrialDuration)
	}
	if c.TrialCount <= 0 {
		return errors.Errorf("trial count must be positive, got %d", c.TrialCount)
	}
	for _, b := range c.BatchSizes {
		if b <= 0 {
			return errors.Errorf("batch sizes must be positive, got %d", b)
		}
	}
	if c.Seed < 0 {
		return errors.Errorf("seed must not be negative, got %d", c.Seed)
	}
	sort.Ints(c.BatchSizes)
	return nil
}

// Fields returns the config as log fields.
func (c *BenchConfig) Fields() logrus.Fields {
	return logrus.Fields{
		"poolSize":      c.PoolSize,
		"trialDuration": c.TrialDuration,
		"trialCount":    c.TrialCount,
		"batchSizes":    c.BatchSizes,
		"seed":          c.Seed,
	}
}
