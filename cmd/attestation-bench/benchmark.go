package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/k0kubun/go-ansi"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/attestation-bench/benchmark/report"
	"github.com/prysmaticlabs/attestation-bench/cmd/attestation-bench/flags"
	"github.com/prysmaticlabs/attestation-bench/config/params"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func runBenchmark(cliCtx *cli.Context) error {
	return benchmark(cliCtx, os.Stdout)
}

func benchmark(cliCtx *cli.Context, out io.Writer) error {
	cfg := benchConfig(cliCtx)
	log.WithFields(cfg.Fields()).Debug("Benchmark configuration")

	var opts []report.Option
	if !cliCtx.Bool(flags.DisableProgressFlag.Name) {
		bar := initializeProgressBar(cfg.PoolSize, "Generating attestations")
		opts = append(opts, report.WithProgress(func() {
			if err := bar.Add(1); err != nil {
				log.WithError(err).Debug("Could not render progress")
			}
		}))
	}
	runner, err := report.NewRunner(cfg, out, opts...)
	if err != nil {
		return err
	}
	start := time.Now()
	res, err := runner.Run()
	if err != nil {
		return errors.Wrap(err, "benchmark failed")
	}
	log.WithFields(logrus.Fields{
		"elapsed":               time.Since(start).Round(time.Millisecond),
		"configurations":        len(res.Batches) + 1,
		"individualPerSecond":   humanize.CommafWithDigits(res.Individual.Summary.Mean, 2),
		"attestationsGenerated": humanize.Comma(int64(res.PoolSize)),
	}).Info("Benchmark complete")
	return nil
}

// benchConfig reads the run settings from the flags. The flag defaults match
// params.DefaultBenchConfig. IsSet is not consulted since altsrc fills slice
// flags from the config file without marking them as set.
func benchConfig(cliCtx *cli.Context) *params.BenchConfig {
	return &params.BenchConfig{
		PoolSize:      cliCtx.Int(flags.PoolSizeFlag.Name),
		TrialDuration: cliCtx.Duration(flags.TrialDurationFlag.Name),
		TrialCount:    cliCtx.Int(flags.TrialCountFlag.Name),
		BatchSizes:    append([]int(nil), cliCtx.IntSlice(flags.BatchSizesFlag.Name)...),
		Seed:          int64(cliCtx.Int(flags.SeedFlag.Name)),
	}
}

func initializeProgressBar(numItems int, msg string) *progressbar.ProgressBar {
	return progressbar.NewOptions(
		numItems,
		progressbar.OptionFullWidth(),
		progressbar.OptionSetWriter(ansi.NewAnsiStderr()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() { fmt.Fprintln(os.Stderr) }),
		progressbar.OptionSetDescription(msg),
	)
}
