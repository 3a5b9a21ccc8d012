package attestation

import (
	ssz "github.com/ferranbt/fastssz"
	"github.com/prysmaticlabs/attestation-bench/consensus-types/primitives"
)

// MarshalSSZ ssz marshals the AttestationData object
func (a *AttestationData) MarshalSSZ() ([]byte, error) {
	return ssz.MarshalSSZ(a)
}

// MarshalSSZTo ssz marshals the AttestationData object to a target array
func (a *AttestationData) MarshalSSZTo(buf []byte) (dst []byte, err error) {
	dst = buf

	// Field (0) 'Slot'
	dst = ssz.MarshalUint64(dst, uint64(a.Slot))

	// Field (1) 'CommitteeIndex'
	dst = ssz.MarshalUint64(dst, uint64(a.CommitteeIndex))

	// Field (2) 'BeaconBlockRoot'
	dst = append(dst, a.BeaconBlockRoot[:]...)

	// Field (3) 'Source'
	dst = ssz.MarshalUint64(dst, uint64(a.SourceEpoch))
	dst = append(dst, a.SourceRoot[:]...)

	// Field (4) 'Target'
	dst = ssz.MarshalUint64(dst, uint64(a.TargetEpoch))
	dst = append(dst, a.TargetRoot[:]...)

	return
}

// UnmarshalSSZ ssz unmarshals the AttestationData object
func (a *AttestationData) UnmarshalSSZ(buf []byte) error {
	var err error
	size := uint64(len(buf))
	if size != 128 {
		return ssz.ErrSize
	}

	// Field (0) 'Slot'
	a.Slot = primitives.Slot(ssz.UnmarshallUint64(buf[0:8]))

	// Field (1) 'CommitteeIndex'
	a.CommitteeIndex = primitives.CommitteeIndex(ssz.UnmarshallUint64(buf[8:16]))

	// Field (2) 'BeaconBlockRoot'
	copy(a.BeaconBlockRoot[:], buf[16:48])

	// Field (3) 'Source'
	a.SourceEpoch = primitives.Epoch(ssz.UnmarshallUint64(buf[48:56]))
	copy(a.SourceRoot[:], buf[56:88])

	// Field (4) 'Target'
	a.TargetEpoch = primitives.Epoch(ssz.UnmarshallUint64(buf[88:96]))
	copy(a.TargetRoot[:], buf[96:128])

	return err
}

// SizeSSZ returns the ssz encoded size in bytes for the AttestationData object
func (a *AttestationData) SizeSSZ() (size int) {
	size = 128
	return
}

// HashTreeRoot ssz hashes the AttestationData object
func (a *AttestationData) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(a)
}

// HashTreeRootWith ssz hashes the AttestationData object with a hasher
func (a *AttestationData) HashTreeRootWith(hh ssz.HashWalker) (err error) {
	indx := hh.Index()

	// Field (0) 'Slot'
	hh.PutUint64(uint64(a.Slot))

	// Field (1) 'CommitteeIndex'
	hh.PutUint64(uint64(a.CommitteeIndex))

	// Field (2) 'BeaconBlockRoot'
	hh.PutBytes(a.BeaconBlockRoot[:])

	// Field (3) 'Source'
	{
		subIndx := hh.Index()
		hh.PutUint64(uint64(a.SourceEpoch))
		hh.PutBytes(a.SourceRoot[:])
		hh.Merkleize(subIndx)
	}

	// Field (4) 'Target'
	{
		subIndx := hh.Index()
		hh.PutUint64(uint64(a.TargetEpoch))
		hh.PutBytes(a.TargetRoot[:])
		hh.Merkleize(subIndx)
	}

	hh.Merkleize(indx)
	return
}
