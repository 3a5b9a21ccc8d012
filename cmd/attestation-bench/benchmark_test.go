package main

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prysmaticlabs/attestation-bench/cmd"
	"github.com/prysmaticlabs/attestation-bench/cmd/attestation-bench/flags"
	"github.com/prysmaticlabs/attestation-bench/config/params"
	"github.com/prysmaticlabs/attestation-bench/testing/assert"
	"github.com/prysmaticlabs/attestation-bench/testing/require"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/urfave/cli/v2"
)

func benchFlagSet() *flag.FlagSet {
	set := flag.NewFlagSet("test", 0)
	set.Int(flags.PoolSizeFlag.Name, flags.PoolSizeFlag.Value, "")
	set.Duration(flags.TrialDurationFlag.Name, flags.TrialDurationFlag.Value, "")
	set.Int(flags.TrialCountFlag.Name, flags.TrialCountFlag.Value, "")
	set.Var(cli.NewIntSlice(flags.BatchSizesFlag.Value.Value()...), flags.BatchSizesFlag.Name, "")
	set.Int(flags.SeedFlag.Name, flags.SeedFlag.Value, "")
	set.Bool(flags.DisableProgressFlag.Name, false, "")
	return set
}

func TestBenchConfig_Defaults(t *testing.T) {
	app := cli.App{}
	cliCtx := cli.NewContext(&app, benchFlagSet(), nil)
	assert.DeepEqual(t, params.DefaultBenchConfig(), benchConfig(cliCtx))
}

func TestBenchConfig_Overrides(t *testing.T) {
	app := cli.App{}
	set := benchFlagSet()
	require.NoError(t, set.Set(flags.PoolSizeFlag.Name, "7"))
	require.NoError(t, set.Set(flags.TrialDurationFlag.Name, "250ms"))
	require.NoError(t, set.Set(flags.TrialCountFlag.Name, "2"))
	require.NoError(t, set.Set(flags.BatchSizesFlag.Name, "20"))
	require.NoError(t, set.Set(flags.BatchSizesFlag.Name, "5"))
	require.NoError(t, set.Set(flags.SeedFlag.Name, "42"))
	cliCtx := cli.NewContext(&app, set, nil)

	want := &params.BenchConfig{
		PoolSize:      7,
		TrialDuration: 250 * time.Millisecond,
		TrialCount:    2,
		BatchSizes:    []int{20, 5},
		Seed:          42,
	}
	assert.DeepEqual(t, want, benchConfig(cliCtx))
}

func TestBenchConfig_FromConfigFile(t *testing.T) {
	formatter, level := logrus.StandardLogger().Formatter, logrus.GetLevel()
	t.Cleanup(func() {
		logrus.SetFormatter(formatter)
		logrus.SetLevel(level)
	})

	path := filepath.Join(t.TempDir(), "bench.yaml")
	yml := "pool-size: 7\ntrials: 2\nbatch-sizes: [7, 3]\nseed: 42\n"
	require.NoError(t, os.WriteFile(path, []byte(yml), 0600))

	app := &cli.App{Flags: appFlags}
	set := flag.NewFlagSet("test", 0)
	for _, f := range appFlags {
		require.NoError(t, f.Apply(set))
	}
	require.NoError(t, set.Set(cmd.ConfigFileFlag.Name, path))
	cliCtx := cli.NewContext(app, set, nil)
	require.NoError(t, before(cliCtx))

	want := &params.BenchConfig{
		PoolSize:      7,
		TrialDuration: flags.TrialDurationFlag.Value,
		TrialCount:    2,
		BatchSizes:    []int{7, 3},
		Seed:          42,
	}
	cfg := benchConfig(cliCtx)
	assert.DeepEqual(t, want, cfg)
	require.NoError(t, cfg.Validate())
	assert.DeepEqual(t, []int{3, 7}, cfg.BatchSizes)
	assert.DeepEqual(t, []int{1, 10, 50, 100}, flags.BatchSizesFlag.Value.Value())
}

func TestBenchmark_NegativeSeed(t *testing.T) {
	app := cli.App{}
	set := benchFlagSet()
	require.NoError(t, set.Set(flags.SeedFlag.Name, "-1"))
	require.NoError(t, set.Set(flags.DisableProgressFlag.Name, "true"))
	cliCtx := cli.NewContext(&app, set, nil)
	err := benchmark(cliCtx, &bytes.Buffer{})
	assert.ErrorContains(t, "seed must not be negative", err)
}

func TestBenchmark(t *testing.T) {
	hook := logtest.NewGlobal()
	app := cli.App{}
	set := benchFlagSet()
	require.NoError(t, set.Set(flags.PoolSizeFlag.Name, "2"))
	require.NoError(t, set.Set(flags.TrialDurationFlag.Name, "1ms"))
	require.NoError(t, set.Set(flags.TrialCountFlag.Name, "1"))
	require.NoError(t, set.Set(flags.BatchSizesFlag.Name, "2"))
	require.NoError(t, set.Set(flags.SeedFlag.Name, "3"))
	require.NoError(t, set.Set(flags.DisableProgressFlag.Name, "true"))
	cliCtx := cli.NewContext(&app, set, nil)

	var out bytes.Buffer
	require.NoError(t, benchmark(cliCtx, &out))
	assert.Equal(t, true, strings.Contains(out.String(), "Batch size: 2"))
	assert.Equal(t, true, strings.Contains(out.String(), "Completed at:"))
	assert.LogsContain(t, hook, "Benchmark complete")
}

func TestBenchmark_InvalidConfig(t *testing.T) {
	app := cli.App{}
	set := benchFlagSet()
	require.NoError(t, set.Set(flags.TrialCountFlag.Name, "0"))
	require.NoError(t, set.Set(flags.DisableProgressFlag.Name, "true"))
	cliCtx := cli.NewContext(&app, set, nil)
	err := benchmark(cliCtx, &bytes.Buffer{})
	assert.ErrorContains(t, "trial count must be positive", err)
}
