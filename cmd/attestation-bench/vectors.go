package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/attestation-bench/benchmark/vectors"
	"github.com/prysmaticlabs/attestation-bench/cmd/attestation-bench/flags"
	"github.com/prysmaticlabs/attestation-bench/crypto/rand"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

const vectorFilePermissions = 0600

var vectorsCommand = &cli.Command{
	Name:  "vectors",
	Usage: "commands for signed attestation test vectors",
	Subcommands: []*cli.Command{
		{
			Name:  "generate",
			Usage: "writes signed attestation vectors to a yaml file",
			Flags: []cli.Flag{
				flags.VectorsFileFlag,
				flags.VectorsCountFlag,
				flags.SeedFlag,
			},
			Action: generateVectors,
		},
		{
			Name:  "check",
			Usage: "verifies every vector in a yaml file",
			Flags: []cli.Flag{
				flags.VectorsFileFlag,
			},
			Action: checkVectors,
		},
	},
}

func generateVectors(cliCtx *cli.Context) error {
	seed := int64(cliCtx.Int(flags.SeedFlag.Name))
	r := rand.NewGenerator()
	if seed != 0 {
		r = rand.NewSeededGenerator(seed)
	}
	f, err := vectors.Generate(r, cliCtx.Int(flags.VectorsCountFlag.Name))
	if err != nil {
		return errors.Wrap(err, "could not generate vectors")
	}
	enc, err := vectors.Encode(f)
	if err != nil {
		return err
	}
	path := cliCtx.String(flags.VectorsFileFlag.Name)
	if err := os.WriteFile(path, enc, vectorFilePermissions); err != nil {
		return errors.Wrapf(err, "could not write %s", path)
	}
	log.WithFields(logrus.Fields{
		"file":  path,
		"count": len(f.Vectors),
	}).Info("Wrote test vectors")
	return nil
}

func checkVectors(cliCtx *cli.Context) error {
	path := cliCtx.String(flags.VectorsFileFlag.Name)
	enc, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		return errors.Wrapf(err, "could not read %s", path)
	}
	f, err := vectors.Decode(enc)
	if err != nil {
		return err
	}
	res, err := vectors.Check(f)
	if err != nil {
		return err
	}
	for _, failure := range res.Failures {
		log.WithFields(logrus.Fields{
			"index":  failure.Index,
			"reason": failure.Reason,
		}).Error("Vector check failed")
	}
	if !res.OK() {
		return errors.Errorf("%d of %d vectors failed", len(res.Failures), len(f.Vectors))
	}
	log.WithField("count", res.Passed).Info("All vectors verified")
	return nil
}
