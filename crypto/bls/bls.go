// Package bls implements a go-wrapper around a library implementing the
// BLS12-381 curve and signature scheme. This package exposes the small public
// API the attestation benchmark needs: key generation, signing and
// verification under an explicit domain separation tag.
package bls

import (
	"github.com/prysmaticlabs/attestation-bench/crypto/bls/blst"
	"github.com/prysmaticlabs/attestation-bench/crypto/bls/common"
)

// Internal types for blst.
type (
	// SecretKey represents a BLS secret or private key.
	SecretKey = common.SecretKey
	// PublicKey represents a BLS public key.
	PublicKey = common.PublicKey
	// Signature represents a BLS signature.
	Signature = common.Signature
)

// DomainSeparationTag used for every signature in this module.
var DomainSeparationTag = []byte(common.DomainSeparationTag)

// SecretKeyFromBytes creates a BLS private key from a BigEndian byte slice.
func SecretKeyFromBytes(privKey []byte) (SecretKey, error) {
	return blst.SecretKeyFromBytes(privKey)
}

// SecretKeyFromSeed derives a BLS private key from 32 or more bytes of input key material.
func SecretKeyFromSeed(ikm []byte) (SecretKey, error) {
	return blst.SecretKeyFromSeed(ikm)
}

// PublicKeyFromBytes creates a BLS public key from a  BigEndian byte slice.
func PublicKeyFromBytes(pubKey []byte) (PublicKey, error) {
	return blst.PublicKeyFromBytes(pubKey)
}

// SignatureFromBytes creates a BLS signature from a LittleEndian byte slice.
func SignatureFromBytes(sig []byte) (Signature, error) {
	return blst.SignatureFromBytes(sig)
}

// RandKey creates a new private key using a random input.
func RandKey() (SecretKey, error) {
	return blst.RandKey()
}
