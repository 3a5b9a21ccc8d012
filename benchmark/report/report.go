// Package report runs the full benchmark: it builds one attestation pool,
// measures individual and simulated batch verification over repeated trials
// and renders the results as text.
package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/attestation-bench/benchmark/loop"
	"github.com/prysmaticlabs/attestation-bench/benchmark/pregen"
	"github.com/prysmaticlabs/attestation-bench/benchmark/stats"
	"github.com/prysmaticlabs/attestation-bench/config/params"
	"github.com/prysmaticlabs/attestation-bench/crypto/rand"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("prefix", "report")

const (
	timestampFormat = "2006-01-02 15:04:05"
	rule            = "======================================================================"
)

// Trials holds the samples of one measured configuration.
type Trials struct {
	Mode      string
	BatchSize int // zero for individual verification
	Samples   []float64
	Summary   stats.Summary
	// Speedup is the batch average over the individual average. Unset for
	// individual verification.
	Speedup float64
}

// Result is everything a run measured.
type Result struct {
	Started    time.Time
	Completed  time.Time
	PoolSize   int
	Individual *Trials
	Batches    []*Trials // ascending batch size
}

// Option configures a Runner.
type Option func(*Runner)

// WithRandomness replaces the source the attestation pool is drawn from.
func WithRandomness(r io.Reader) Option {
	return func(rn *Runner) {
		rn.randomness = r
	}
}

// WithProgress is called once per generated attestation.
func WithProgress(fn func()) Option {
	return func(rn *Runner) {
		rn.progress = fn
	}
}

// WithClock sets the clock used for the start and completion timestamps.
func WithClock(c clock.Clock) Option {
	return func(rn *Runner) {
		rn.clock = c
	}
}

// WithLoopOptions passes options to every loop driver the runner creates.
func WithLoopOptions(opts ...loop.Option) Option {
	return func(rn *Runner) {
		rn.loopOpts = append(rn.loopOpts, opts...)
	}
}

// Runner executes a benchmark described by a BenchConfig.
type Runner struct {
	cfg        *params.BenchConfig
	out        io.Writer
	clock      clock.Clock
	randomness io.Reader
	progress   func()
	loopOpts   []loop.Option
}

// NewRunner validates cfg and returns a runner writing its report to out.
// Without WithRandomness, a non-zero cfg.Seed selects a seeded source and a
// zero seed selects the cryptographic one.
func NewRunner(cfg *params.BenchConfig, out io.Writer, opts ...Option) (*Runner, error) {
	if cfg == nil {
		return nil, errors.New("nil benchmark config")
	}
	cfg = cfg.Copy()
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid benchmark config")
	}
	r := &Runner{
		cfg:   cfg,
		out:   out,
		clock: clock.New(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.randomness == nil {
		if cfg.Seed != 0 {
			r.randomness = rand.NewSeededGenerator(cfg.Seed)
		} else {
			r.randomness = rand.NewGenerator()
		}
	}
	return r, nil
}

// Run generates the pool and measures every configuration. Pool generation
// failures are returned. A verification failure inside a trial panics.
func (r *Runner) Run() (*Result, error) {
	p := &printer{w: r.out}
	res := &Result{
		Started:  r.clock.Now(),
		PoolSize: r.cfg.PoolSize,
	}
	p.printf("BLS Signature Verification Benchmark for Ethereum Attestations\n")
	p.printf("%s\n", rule)
	p.printf("Started at: %s\n", res.Started.Format(timestampFormat))

	p.printf("\nGenerating %d test attestations...\n", r.cfg.PoolSize)
	genOpts := make([]pregen.Option, 0, 1)
	if r.progress != nil {
		genOpts = append(genOpts, pregen.WithProgress(r.progress))
	}
	pool, err := pregen.GeneratePool(r.randomness, r.cfg.PoolSize, genOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "could not generate attestation pool")
	}
	p.printf("Test attestations generated successfully.\n")

	driver, err := loop.NewDriver(pool, r.loopOpts...)
	if err != nil {
		return nil, err
	}

	p.printf("\nRunning %d individual verification benchmark trials (each %s):\n", r.cfg.TrialCount, formatDuration(r.cfg.TrialDuration))
	individual, err := r.runTrials(p, driver, 0)
	if err != nil {
		return nil, err
	}
	res.Individual = individual
	p.printf("\nIndividual Verification Results:\n")
	p.printf("  Average: %.2f verifications/second\n", individual.Summary.Mean)
	p.printf("  Median:  %.2f verifications/second\n", individual.Summary.Median)
	p.printf("  Std Dev: %.2f\n", individual.Summary.StdDev)

	p.printf("\nBatch Verification Results:\n")
	for _, size := range r.cfg.BatchSizes {
		p.printf("\nBatch size: %d\n", size)
		p.printf("Running %d batch verification benchmark trials (each %s):\n", r.cfg.TrialCount, formatDuration(r.cfg.TrialDuration))
		batch, err := r.runTrials(p, driver, size)
		if err != nil {
			return nil, err
		}
		batch.Speedup = stats.Speedup(batch.Summary.Mean, individual.Summary.Mean)
		res.Batches = append(res.Batches, batch)

		p.printf("\n  Batch Size %d Results:\n", size)
		p.printf("    Average: %.2f verifications/second\n", batch.Summary.Mean)
		p.printf("    Median:  %.2f verifications/second\n", batch.Summary.Median)
		p.printf("    Std Dev: %.2f\n", batch.Summary.StdDev)
		p.printf("    Speedup: %.2fx compared to individual verification\n", batch.Speedup)
	}

	p.printf("\nIndividual verification trial results (verifications/second):\n")
	for i, s := range individual.Samples {
		p.printf("  Trial %d: %.2f\n", i+1, s)
	}

	res.Completed = r.clock.Now()
	p.printf("\nCompleted at: %s\n", res.Completed.Format(timestampFormat))
	if p.err != nil {
		return res, errors.Wrap(p.err, "could not write report")
	}
	return res, nil
}

// runTrials measures one configuration. A batch size of zero selects
// individual verification.
func (r *Runner) runTrials(p *printer, driver *loop.Driver, batchSize int) (*Trials, error) {
	t := &Trials{
		Mode:      "individual",
		BatchSize: batchSize,
		Samples:   make([]float64, 0, r.cfg.TrialCount),
	}
	label := "0"
	if batchSize > 0 {
		t.Mode = "batch"
		label = strconv.Itoa(batchSize)
	}
	seconds := r.cfg.TrialDuration.Seconds()
	for i := 0; i < r.cfg.TrialCount; i++ {
		p.printf("  Trial %d/%d ... ", i+1, r.cfg.TrialCount)
		var count uint64
		if batchSize > 0 {
			count = driver.RunBatch(r.cfg.TrialDuration, batchSize)
		} else {
			count = driver.RunIndividual(r.cfg.TrialDuration)
		}
		throughput := stats.Throughput(count, seconds)
		t.Samples = append(t.Samples, throughput)
		trialThroughput.WithLabelValues(t.Mode, label).Set(throughput)
		p.printf("%.2f verifications/second\n", throughput)
		log.WithFields(logrus.Fields{
			"mode":          t.Mode,
			"batchSize":     batchSize,
			"trial":         i + 1,
			"verifications": humanize.Comma(int64(count)),
		}).Debug("Trial finished")
	}
	summary, err := stats.Compute(t.Samples)
	if err != nil {
		return nil, errors.Wrapf(err, "could not summarise %s trials", t.Mode)
	}
	t.Summary = summary
	return t, nil
}

func formatDuration(d time.Duration) string {
	if d%time.Second == 0 {
		secs := int64(d / time.Second)
		if secs == 1 {
			return "1 second"
		}
		return fmt.Sprintf("%d seconds", secs)
	}
	return d.String()
}

// printer keeps the first write error and drops everything after it.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
