// Package verification checks signed attestations against the external BLS
// primitive, one at a time or as a simulated batch.
//
// The batch mode is a sequential simulation: it verifies each signature on
// its own and only reports the group outcome. It performs no aggregate or
// pairing-batched check, so its throughput is expected to track the
// individual mode rather than improve on it.
package verification

import (
	"github.com/prysmaticlabs/attestation-bench/consensus-types/attestation"
	"github.com/prysmaticlabs/attestation-bench/crypto/bls"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("prefix", "verification")

const (
	// groupCheck validates the signature is in the G2 subgroup before the pairing check.
	groupCheck = true
	// pkValidate re-validates the public key on every call; keys are trusted here.
	pkValidate = false
)

// VerifyOne re-serializes the attestation data and verifies the stored
// signature under the domain separation tag with no augmentation data.
// Any failure reported by the primitive yields false.
func VerifyOne(s *attestation.SignedAttestation) bool {
	data := s.Data()
	msg := data.Serialize()
	err := s.Signature().VerifyWithOptions(s.PublicKey(), msg, bls.DomainSeparationTag, nil, groupCheck, pkValidate)
	if err != nil {
		log.WithError(err).WithFields(logrus.Fields{
			"slot":           data.Slot,
			"committeeIndex": data.CommitteeIndex,
		}).Debug("Attestation signature did not verify")
		return false
	}
	return true
}

// VerifyBatchSimulated verifies batchSize attestations of pool starting at
// start, wrapping around the end of the pool. It stops at the first failure
// and returns false without looking at the remaining elements. An empty pool
// or a non-positive batch size is reported as a failure.
func VerifyBatchSimulated(pool []*attestation.SignedAttestation, start, batchSize int) bool {
	n := len(pool)
	if n == 0 || batchSize <= 0 || start < 0 {
		return false
	}
	for i := 0; i < batchSize; i++ {
		if !VerifyOne(pool[(start+i)%n]) {
			return false
		}
	}
	return true
}
