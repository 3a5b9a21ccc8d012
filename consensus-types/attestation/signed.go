package attestation

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/attestation-bench/crypto/bls/common"
)

var (
	// ErrNilSignature is returned when a signed attestation is built without a signature.
	ErrNilSignature = errors.New("nil signature")
	// ErrNilPublicKey is returned when a signed attestation is built without a public key.
	ErrNilPublicKey = errors.New("nil public key")
)

// SignedAttestation bundles attestation data with the signature over its
// serialized form and the public key that verifies it. It is write-once:
// fields are only set by NewSigned.
type SignedAttestation struct {
	data      AttestationData
	signature common.Signature
	publicKey common.PublicKey
}

// NewSigned builds a signed attestation. The data is copied.
func NewSigned(data AttestationData, sig common.Signature, pub common.PublicKey) (*SignedAttestation, error) {
	if sig == nil {
		return nil, ErrNilSignature
	}
	if pub == nil {
		return nil, ErrNilPublicKey
	}
	return &SignedAttestation{
		data:      data,
		signature: sig,
		publicKey: pub,
	}, nil
}

// Data returns a copy of the attestation data.
func (s *SignedAttestation) Data() AttestationData {
	return s.data
}

// Signature over Data().Serialize().
func (s *SignedAttestation) Signature() common.Signature {
	return s.signature
}

// PublicKey of the signer.
func (s *SignedAttestation) PublicKey() common.PublicKey {
	return s.publicKey
}
