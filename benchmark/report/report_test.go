package report_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/attestation-bench/benchmark/loop"
	"github.com/prysmaticlabs/attestation-bench/benchmark/report"
	"github.com/prysmaticlabs/attestation-bench/config/params"
	"github.com/prysmaticlabs/attestation-bench/crypto/rand"
	"github.com/prysmaticlabs/attestation-bench/testing/assert"
	"github.com/prysmaticlabs/attestation-bench/testing/require"
)

// tickingClock moves a mock clock forward 1ms per reading, so a loop of
// duration d performs exactly d/1ms units of work.
type tickingClock struct {
	mock *clock.Mock
}

func (c *tickingClock) Now() time.Time {
	c.mock.Add(time.Millisecond)
	return c.mock.Now()
}

func testConfig() *params.BenchConfig {
	return &params.BenchConfig{
		PoolSize:      2,
		TrialDuration: 3 * time.Millisecond,
		TrialCount:    2,
		BatchSizes:    []int{2, 1},
		Seed:          7,
	}
}

func TestNewRunner_InvalidConfig(t *testing.T) {
	_, err := report.NewRunner(nil, &bytes.Buffer{})
	assert.ErrorContains(t, "nil benchmark config", err)

	cfg := testConfig()
	cfg.TrialCount = 0
	_, err = report.NewRunner(cfg, &bytes.Buffer{})
	assert.ErrorContains(t, "invalid benchmark config", err)
}

func TestRunner_Run(t *testing.T) {
	started := time.Date(2024, 3, 1, 12, 30, 0, 0, time.Local)
	wall := clock.NewMock()
	wall.Set(started)

	generated := 0
	var out bytes.Buffer
	r, err := report.NewRunner(testConfig(), &out,
		report.WithClock(wall),
		report.WithProgress(func() { generated++ }),
		report.WithLoopOptions(loop.WithClock(&tickingClock{mock: clock.NewMock()})),
	)
	require.NoError(t, err)

	res, err := r.Run()
	require.NoError(t, err)
	assert.Equal(t, 2, generated)
	assert.Equal(t, 2, res.PoolSize)
	assert.Equal(t, started, res.Started)
	assert.Equal(t, started, res.Completed)

	require.NotNil(t, res.Individual)
	assert.Equal(t, "individual", res.Individual.Mode)
	require.Equal(t, 2, len(res.Individual.Samples))
	for _, s := range res.Individual.Samples {
		assert.InDelta(t, 1000.0, s, 1e-6)
	}
	assert.InDelta(t, 1000.0, res.Individual.Summary.Mean, 1e-6)
	assert.InDelta(t, 0.0, res.Individual.Summary.StdDev, 1e-6)

	// Batch sizes are measured in ascending order.
	require.Equal(t, 2, len(res.Batches))
	assert.Equal(t, 1, res.Batches[0].BatchSize)
	assert.Equal(t, 2, res.Batches[1].BatchSize)
	assert.InDelta(t, 1000.0, res.Batches[0].Summary.Mean, 1e-6)
	assert.InDelta(t, 1.0, res.Batches[0].Speedup, 1e-9)
	assert.InDelta(t, 2000.0, res.Batches[1].Summary.Mean, 1e-6)
	assert.InDelta(t, 2.0, res.Batches[1].Speedup, 1e-9)
	for _, b := range res.Batches {
		assert.Equal(t, "batch", b.Mode)
		assert.Equal(t, b.Summary.Mean/res.Individual.Summary.Mean, b.Speedup)
	}

	text := out.String()
	for _, want := range []string{
		"BLS Signature Verification Benchmark for Ethereum Attestations",
		"Started at: 2024-03-01 12:30:00",
		"Generating 2 test attestations...",
		"Running 2 individual verification benchmark trials",
		"  Trial 1/2 ... 1000.00 verifications/second",
		"Individual Verification Results:",
		"  Average: 1000.00 verifications/second",
		"  Std Dev: 0.00",
		"Batch size: 1",
		"  Batch Size 2 Results:",
		"    Average: 2000.00 verifications/second",
		"    Speedup: 2.00x compared to individual verification",
		"Individual verification trial results (verifications/second):",
		"  Trial 2: 1000.00",
		"Completed at: 2024-03-01 12:30:00",
	} {
		assert.Equal(t, true, strings.Contains(text, want), "missing %q in report", want)
	}
	assert.Equal(t, true, strings.Index(text, "Batch size: 1") < strings.Index(text, "Batch size: 2"))
	assert.Equal(t, true, strings.Index(text, "Batch size: 2") < strings.Index(text, "Individual verification trial results"))
}

func TestRunner_Run_GenerationFailure(t *testing.T) {
	r, err := report.NewRunner(testConfig(), &bytes.Buffer{}, report.WithRandomness(bytes.NewReader(make([]byte, 10))))
	require.NoError(t, err)
	_, err = r.Run()
	assert.ErrorContains(t, "could not generate attestation pool", err)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestRunner_Run_WriteFailure(t *testing.T) {
	r, err := report.NewRunner(testConfig(), failingWriter{},
		report.WithRandomness(rand.NewSeededGenerator(3)),
		report.WithLoopOptions(loop.WithClock(&tickingClock{mock: clock.NewMock()})),
	)
	require.NoError(t, err)
	res, err := r.Run()
	assert.ErrorContains(t, "disk full", err)
	require.NotNil(t, res)
	assert.Equal(t, 2, len(res.Batches))
}

func TestNewRunner_DoesNotMutateConfig(t *testing.T) {
	cfg := testConfig()
	_, err := report.NewRunner(cfg, &bytes.Buffer{})
	require.NoError(t, err)
	assert.DeepEqual(t, []int{2, 1}, cfg.BatchSizes)
}
