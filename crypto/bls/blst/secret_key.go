package blst

import (
	"crypto/subtle"
	"fmt"

	"github.com/pkg/errors"
	fieldparams "github.com/prysmaticlabs/attestation-bench/config/fieldparams"
	"github.com/prysmaticlabs/attestation-bench/crypto/bls/common"
	"github.com/prysmaticlabs/attestation-bench/crypto/rand"
	blst "github.com/supranational/blst/bindings/go"
)

// bls12SecretKey used in the BLS signature scheme.
type bls12SecretKey struct {
	p *blst.SecretKey
}

// RandKey creates a new private key from 32 bytes of CSPRNG output.
func RandKey() (common.SecretKey, error) {
	// Generate 32 bytes of randomness
	var ikm [fieldparams.BLSSeedLength]byte
	_, err := rand.NewGenerator().Read(ikm[:])
	if err != nil {
		return nil, err
	}
	return SecretKeyFromSeed(ikm[:])
}

// SecretKeyFromSeed derives a secret key from the given input key material
// (KeyGen of the IETF draft) without any key info.
func SecretKeyFromSeed(ikm []byte) (common.SecretKey, error) {
	if len(ikm) < fieldparams.BLSSeedLength {
		return nil, errors.Wrapf(common.ErrInvalidSeed, "got %d bytes", len(ikm))
	}
	p := blst.KeyGen(ikm)
	if p == nil {
		return nil, common.ErrInvalidSeed
	}
	secKey := &bls12SecretKey{p: p}
	if IsZero(secKey.Marshal()) {
		return nil, common.ErrZeroKey
	}
	return secKey, nil
}

// SecretKeyFromBytes creates a BLS private key from a BigEndian byte slice.
func SecretKeyFromBytes(privKey []byte) (common.SecretKey, error) {
	if len(privKey) != fieldparams.BLSSecretKeyLength {
		return nil, fmt.Errorf("secret key must be %d bytes", fieldparams.BLSSecretKeyLength)
	}
	if IsZero(privKey) {
		return nil, common.ErrZeroKey
	}
	secKey := new(blst.SecretKey).Deserialize(privKey)
	if secKey == nil {
		return nil, common.ErrSecretUnmarshal
	}
	return &bls12SecretKey{p: secKey}, nil
}

// IsZero checks if the secret key is a zero key.
func IsZero(sKey []byte) bool {
	b := byte(0)
	for _, s := range sKey {
		b |= s
	}
	return subtle.ConstantTimeByteEq(b, 0) == 1
}

// PublicKey obtains the public key corresponding to the BLS secret key.
func (s *bls12SecretKey) PublicKey() common.PublicKey {
	return &PublicKey{p: new(blstPublicKey).From(s.p)}
}

// Sign a message using a secret key - in a beacon/validator client.
//
// In IETF draft BLS specification:
// Sign(SK, message) -> signature: a signing algorithm that generates
//
//	a deterministic signature given a secret key SK and a message.
//
// In Ethereum proof of stake specification:
// def Sign(SK: int, message: Bytes) -> BLSSignature
func (s *bls12SecretKey) Sign(msg []byte) common.Signature {
	return s.SignWithDST(msg, dst)
}

// SignWithDST signs msg under an explicit domain separation tag.
func (s *bls12SecretKey) SignWithDST(msg, tag []byte) common.Signature {
	signature := new(blstSignature).Sign(s.p, msg, tag)
	return &Signature{s: signature}
}

// Marshal a secret key into a LittleEndian byte slice.
func (s *bls12SecretKey) Marshal() []byte {
	keyBytes := s.p.Serialize()
	if len(keyBytes) < fieldparams.BLSSecretKeyLength {
		emptyBytes := make([]byte, fieldparams.BLSSecretKeyLength-len(keyBytes))
		keyBytes = append(emptyBytes, keyBytes...)
	}
	return keyBytes
}
