// Package main defines the attestation benchmark binary. It measures how many
// BLS signatures over attestation data a single core verifies per second,
// one at a time and in simulated batches.
package main

import (
	"os"

	"github.com/prysmaticlabs/attestation-bench/cmd"
	"github.com/prysmaticlabs/attestation-bench/cmd/attestation-bench/flags"
	"github.com/prysmaticlabs/attestation-bench/io/logs"
	"github.com/prysmaticlabs/attestation-bench/monitoring/prometheus"
	"github.com/prysmaticlabs/attestation-bench/runtime/version"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
)

var log = logrus.WithField("prefix", "main")

var appFlags = []cli.Flag{
	flags.PoolSizeFlag,
	flags.TrialDurationFlag,
	flags.TrialCountFlag,
	flags.BatchSizesFlag,
	flags.SeedFlag,
	flags.DisableProgressFlag,
	cmd.VerbosityFlag,
	cmd.LogFormat,
	cmd.LogFileName,
	cmd.ConfigFileFlag,
	cmd.MonitoringAddrFlag,
}

func init() {
	appFlags = cmd.WrapFlags(appFlags)
}

// metricsServer is set by before when --monitoring-addr is given.
var metricsServer *prometheus.Server

func main() {
	app := cli.App{}
	app.Name = "attestation-bench"
	app.Usage = "measures BLS signature verification throughput over Ethereum attestation data"
	app.Version = version.Version()
	app.Flags = appFlags
	app.Action = runBenchmark
	app.Commands = []*cli.Command{vectorsCommand}
	app.Before = before
	app.After = func(_ *cli.Context) error {
		if metricsServer != nil {
			return metricsServer.Stop()
		}
		return nil
	}

	if err := app.Run(os.Args); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func before(ctx *cli.Context) error {
	// Load any flags from file, if specified.
	if ctx.IsSet(cmd.ConfigFileFlag.Name) {
		if err := altsrc.InitInputSourceWithContext(
			appFlags,
			altsrc.NewYamlSourceFromFlagFunc(
				cmd.ConfigFileFlag.Name))(ctx); err != nil {
			return err
		}
	}

	// If persistent log files are written we disable log coloring, since the
	// ANSI codes end up in the file.
	logFileName := ctx.String(cmd.LogFileName.Name)
	if err := logs.SetLoggingFormat(ctx.String(cmd.LogFormat.Name), logFileName != ""); err != nil {
		return err
	}
	level, err := logrus.ParseLevel(ctx.String(cmd.VerbosityFlag.Name))
	if err != nil {
		return err
	}
	logrus.SetLevel(level)
	logrus.AddHook(prometheus.NewLogrusCollector())

	if logFileName != "" {
		if err := logs.ConfigurePersistentLogging(logFileName); err != nil {
			log.WithError(err).Error("Failed to configuring logging to disk.")
		}
	}

	if addr := ctx.String(cmd.MonitoringAddrFlag.Name); addr != "" {
		srv, err := prometheus.NewServer(addr)
		if err != nil {
			return err
		}
		srv.Start()
		metricsServer = srv
		log.WithField("address", srv.Addr()).Info("Serving prometheus metrics")
	}

	log.WithField("runtime", version.Runtime()).Debug(version.Version())
	return nil
}
