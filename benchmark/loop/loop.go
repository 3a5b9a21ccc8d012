// Package loop runs timed verification workloads over a fixed attestation
// pool and counts how many verifications complete before the deadline.
package loop

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/attestation-bench/benchmark/verification"
	"github.com/prysmaticlabs/attestation-bench/consensus-types/attestation"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("prefix", "loop")

const (
	modeIndividual = "individual"
	modeBatch      = "batch"
)

// ErrVerificationMismatch is the panic value, wrapped with context, raised
// when a pool attestation fails to verify during a timed loop.
var ErrVerificationMismatch = errors.New("signature verification failed inside benchmark loop")

// ErrEmptyPool is returned when a driver is built without attestations.
var ErrEmptyPool = errors.New("attestation pool is empty")

// State of a Driver.
type State int32

const (
	// Idle drivers have not started a loop yet.
	Idle State = iota
	// Running drivers are inside a timed loop.
	Running
	// Done drivers have finished their last loop.
	Done
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("unknown(%d)", int32(s))
	}
}

// Clock is the time source of a Driver.
type Clock interface {
	Now() time.Time
}

// Option configures a Driver.
type Option func(*Driver)

// WithClock replaces the wall clock used for deadlines.
func WithClock(c Clock) Option {
	return func(d *Driver) {
		d.clock = c
	}
}

// Driver runs timed loops over a read-only attestation pool. A loop always
// completes at least one unit of work and then keeps going until the
// deadline, computed once at loop entry, has passed. The last unit may
// finish after the deadline. Loops cannot be cancelled.
type Driver struct {
	pool  []*attestation.SignedAttestation
	clock Clock
	state int32
}

// NewDriver returns a driver over pool. The pool is not copied and must not
// be mutated while the driver is in use.
func NewDriver(pool []*attestation.SignedAttestation, opts ...Option) (*Driver, error) {
	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}
	d := &Driver{
		pool:  pool,
		clock: clock.New(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// State reports where the driver is in its Idle -> Running -> Done cycle.
func (d *Driver) State() State {
	return State(atomic.LoadInt32(&d.state))
}

// RunIndividual verifies pool[count % len(pool)] one attestation at a time
// until duration has elapsed and returns the number of verifications.
// A failed verification panics.
func (d *Driver) RunIndividual(duration time.Duration) uint64 {
	n := uint64(len(d.pool))
	count := d.run(modeIndividual, duration, func(count uint64) uint64 {
		idx := count % n
		if !verification.VerifyOne(d.pool[idx]) {
			fatal(modeIndividual, idx, 1)
		}
		return 1
	})
	return count
}

// RunBatch verifies batchSize consecutive attestations per iteration with the
// simulated batch check, advancing the start index by batchSize each time,
// until duration has elapsed. It returns the number of verifications, always
// a multiple of batchSize. A failed batch panics.
func (d *Driver) RunBatch(duration time.Duration, batchSize int) uint64 {
	if batchSize <= 0 {
		panic(fmt.Sprintf("batch size must be positive, got %d", batchSize))
	}
	n := uint64(len(d.pool))
	size := uint64(batchSize)
	count := d.run(modeBatch, duration, func(count uint64) uint64 {
		start := count % n
		if !verification.VerifyBatchSimulated(d.pool, int(start), batchSize) {
			fatal(modeBatch, start, batchSize)
		}
		return size
	})
	return count
}

// run drives the busy loop. unit performs one unit of work given the number
// of verifications completed so far and returns how many it added.
func (d *Driver) run(mode string, duration time.Duration, unit func(count uint64) uint64) uint64 {
	atomic.StoreInt32(&d.state, int32(Running))
	defer atomic.StoreInt32(&d.state, int32(Done))

	deadline := d.clock.Now().Add(duration)
	var count uint64
	for {
		count += unit(count)
		now := d.clock.Now()
		if !now.Before(deadline) {
			loopOvershootSeconds.WithLabelValues(mode).Observe(now.Sub(deadline).Seconds())
			break
		}
	}
	verificationsTotal.WithLabelValues(mode).Add(float64(count))
	loopsTotal.WithLabelValues(mode).Inc()
	log.WithFields(logrus.Fields{
		"mode":          mode,
		"duration":      duration,
		"verifications": count,
	}).Debug("Timed loop finished")
	return count
}

func fatal(mode string, start uint64, size int) {
	err := errors.Wrapf(ErrVerificationMismatch, "%s verification of pool index %d (batch size %d)", mode, start, size)
	log.WithError(err).Error("Benchmark data is inconsistent, aborting")
	panic(err)
}

// RunIndividual runs a single individual verification loop over pool.
func RunIndividual(pool []*attestation.SignedAttestation, duration time.Duration) (uint64, error) {
	d, err := NewDriver(pool)
	if err != nil {
		return 0, err
	}
	return d.RunIndividual(duration), nil
}

// RunBatch runs a single simulated batch verification loop over pool.
func RunBatch(pool []*attestation.SignedAttestation, duration time.Duration, batchSize int) (uint64, error) {
	d, err := NewDriver(pool)
	if err != nil {
		return 0, err
	}
	return d.RunBatch(duration, batchSize), nil
}
