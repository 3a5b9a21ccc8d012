// Package attestation defines the attestation payload that is signed and
// verified by the benchmark, together with its signed envelope.
package attestation

import (
	"github.com/prysmaticlabs/attestation-bench/consensus-types/primitives"
)

// AttestationData is a vote on a pair of checkpoints, the message every
// benchmark signature commits to. Values are immutable once built; all fields
// are plain values so copying the struct copies everything.
type AttestationData struct {
	Slot            primitives.Slot
	CommitteeIndex  primitives.CommitteeIndex
	BeaconBlockRoot Root
	SourceEpoch     primitives.Epoch
	SourceRoot      Root
	TargetEpoch     primitives.Epoch
	TargetRoot      Root
}

// Serialize returns the 128 byte little endian encoding that is signed:
//
//	slot(8) | index(8) | beacon_block_root(32) | source_epoch(8) | source_root(32) | target_epoch(8) | target_root(32)
//
// The layout matches the SSZ encoding of the consensus AttestationData container.
func (a *AttestationData) Serialize() []byte {
	// Encoding fixed size fields cannot fail.
	enc, _ := a.MarshalSSZTo(make([]byte, 0, a.SizeSSZ()))
	return enc
}
