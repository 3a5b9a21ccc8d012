// Package pregen builds the pool of signed attestations the benchmark
// verifies. Every value, including key material, is drawn from the injected
// randomness source so a seeded source yields a reproducible pool.
package pregen

import (
	"io"

	"github.com/pkg/errors"
	fieldparams "github.com/prysmaticlabs/attestation-bench/config/fieldparams"
	"github.com/prysmaticlabs/attestation-bench/consensus-types/attestation"
	"github.com/prysmaticlabs/attestation-bench/consensus-types/primitives"
	"github.com/prysmaticlabs/attestation-bench/crypto/bls"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("prefix", "pregen")

type options struct {
	progress func()
}

// Option configures GeneratePool.
type Option func(*options)

// WithProgress registers a callback invoked once per generated attestation.
func WithProgress(fn func()) Option {
	return func(o *options) {
		o.progress = fn
	}
}

// RandomAttestation draws attestation data from r. Slot and epochs cover the
// full uint64 range, the committee index is reduced into [0, 65536) and every
// root is 32 uniformly random bytes.
func RandomAttestation(r io.Reader) (*attestation.AttestationData, error) {
	var buf [fieldparams.AttestationDataLength]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, errors.Wrap(err, "could not read attestation randomness")
	}
	data := &attestation.AttestationData{}
	if err := data.UnmarshalSSZ(buf[:]); err != nil {
		return nil, err
	}
	data.CommitteeIndex = data.CommitteeIndex % primitives.CommitteeIndex(fieldparams.CommitteeIndexSpan)
	return data, nil
}

// GeneratePool returns count freshly signed attestations, each with its own
// key pair. The first failure aborts generation; there is no retry since a
// failing randomness source or key derivation cannot recover.
func GeneratePool(r io.Reader, count int, opts ...Option) ([]*attestation.SignedAttestation, error) {
	if count <= 0 {
		return nil, errors.Errorf("pool size must be positive, got %d", count)
	}
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	pool := make([]*attestation.SignedAttestation, 0, count)
	for i := 0; i < count; i++ {
		signed, err := SignedAttestation(r)
		if err != nil {
			return nil, errors.Wrapf(err, "could not generate attestation %d", i)
		}
		pool = append(pool, signed)
		if o.progress != nil {
			o.progress()
		}
	}
	log.WithField("count", count).Debug("Generated attestation pool")
	return pool, nil
}

// SignedAttestation generates random attestation data, a key pair seeded
// from r, and signs the serialized data under the domain separation tag.
func SignedAttestation(r io.Reader) (*attestation.SignedAttestation, error) {
	data, err := RandomAttestation(r)
	if err != nil {
		return nil, err
	}
	var ikm [fieldparams.BLSSeedLength]byte
	if _, err := io.ReadFull(r, ikm[:]); err != nil {
		return nil, errors.Wrap(err, "could not read key seed")
	}
	sk, err := bls.SecretKeyFromSeed(ikm[:])
	if err != nil {
		return nil, errors.Wrap(err, "could not generate secret key")
	}
	sig := sk.SignWithDST(data.Serialize(), bls.DomainSeparationTag)
	signed, err := attestation.NewSigned(*data, sig, sk.PublicKey())
	if err != nil {
		return nil, err
	}
	if logrus.IsLevelEnabled(logrus.TraceLevel) {
		root, err := data.HashTreeRoot()
		if err == nil {
			log.WithFields(logrus.Fields{
				"slot":           data.Slot,
				"committeeIndex": data.CommitteeIndex,
				"dataRoot":       attestation.Root(root).String(),
			}).Trace("Signed attestation")
		}
	}
	return signed, nil
}
