// Package common provides the BLS interfaces that are implemented by the various BLS wrappers.
//
// This package should not be used by downstream consumers. These interfaces are re-exporter by
// github.com/prysmaticlabs/attestation-bench/crypto/bls. This package exists to prevent an import circular
// dependency.
package common

// SecretKey represents a BLS secret or private key.
type SecretKey interface {
	PublicKey() PublicKey
	Sign(msg []byte) Signature
	SignWithDST(msg, dst []byte) Signature
	Marshal() []byte
}

// PublicKey represents a BLS public key.
type PublicKey interface {
	Marshal() []byte
	Copy() PublicKey
	Equals(p2 PublicKey) bool
}

// Signature represents a BLS signature.
type Signature interface {
	Verify(pubKey PublicKey, msg []byte) bool
	// VerifyWithOptions exposes the full core verification call: groupCheck
	// validates the signature subgroup before hashing msg to the curve under
	// dst, pkValidate additionally validates the public key, aug is optional
	// augmentation data prepended to msg.
	VerifyWithOptions(pubKey PublicKey, msg, dst, aug []byte, groupCheck, pkValidate bool) error
	Marshal() []byte
	Copy() Signature
}
