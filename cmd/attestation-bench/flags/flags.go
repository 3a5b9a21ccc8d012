// Package flags defines the command line flags of the attestation benchmark.
package flags

import (
	"time"

	"github.com/urfave/cli/v2"
)

var (
	// PoolSizeFlag sets how many signed attestations are generated before measuring.
	PoolSizeFlag = &cli.IntFlag{
		Name:  "pool-size",
		Usage: "Number of signed attestations generated up front and verified in rotation",
		Value: 100,
	}
	// TrialDurationFlag sets the length of every trial.
	TrialDurationFlag = &cli.DurationFlag{
		Name:  "trial-duration",
		Usage: "Wall clock duration of each trial",
		Value: 5 * time.Second,
	}
	// TrialCountFlag sets the number of trials per configuration.
	TrialCountFlag = &cli.IntFlag{
		Name:  "trials",
		Usage: "Number of trials run for individual verification and for every batch size",
		Value: 3,
	}
	// BatchSizesFlag lists the simulated batch sizes to measure.
	BatchSizesFlag = &cli.IntSliceFlag{
		Name:  "batch-sizes",
		Usage: "Simulated batch sizes to measure. This flag may be used multiple times.",
		Value: cli.NewIntSlice(1, 10, 50, 100),
	}
	// SeedFlag makes generated attestations reproducible.
	SeedFlag = &cli.IntFlag{
		Name:  "seed",
		Usage: "Seed for attestation and key generation. Zero draws from the system's secure randomness.",
	}
	// DisableProgressFlag hides the pool generation progress bar.
	DisableProgressFlag = &cli.BoolFlag{
		Name:  "disable-progress",
		Usage: "Do not render a progress bar while generating attestations",
	}
	// VectorsFileFlag is the path of a test vector file.
	VectorsFileFlag = &cli.StringFlag{
		Name:     "file",
		Usage:    "Path of the test vector file",
		Required: true,
	}
	// VectorsCountFlag sets how many vectors are generated.
	VectorsCountFlag = &cli.IntFlag{
		Name:  "count",
		Usage: "Number of test vectors to generate",
		Value: 10,
	}
)
