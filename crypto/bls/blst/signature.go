package blst

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	fieldparams "github.com/prysmaticlabs/attestation-bench/config/fieldparams"
	"github.com/prysmaticlabs/attestation-bench/crypto/bls/common"
)

var dst = []byte(common.DomainSeparationTag)

// Signature used in the BLS signature scheme.
type Signature struct {
	s *blstSignature
}

// SignatureFromBytes creates a BLS signature from a LittleEndian byte slice.
func SignatureFromBytes(sig []byte) (common.Signature, error) {
	if len(sig) != fieldparams.BLSSignatureLength {
		return nil, fmt.Errorf("signature must be %d bytes", fieldparams.BLSSignatureLength)
	}
	// A single signer never produces the point at infinity.
	if bytes.Equal(sig, common.InfiniteSignature[:]) {
		return nil, common.ErrInfiniteSignature
	}
	signature := new(blstSignature).Uncompress(sig)
	if signature == nil {
		return nil, errors.New("could not unmarshal bytes into signature")
	}
	// Group check signature.
	if !signature.SigValidate(false) {
		return nil, errors.New("signature not in group")
	}
	return &Signature{s: signature}, nil
}

// Verify a bls signature given a public key, a message.
//
// In IETF draft BLS specification:
// Verify(PK, message, signature) -> VALID or INVALID: a verification
//
//	algorithm that outputs VALID if signature is a valid signature of
//	message under public key PK, and INVALID otherwise.
//
// In the Ethereum proof of stake specification:
// def Verify(PK: BLSPubkey, message: Bytes, signature: BLSSignature) -> bool
func (s *Signature) Verify(pubKey common.PublicKey, msg []byte) bool {
	// Signature and PKs are assumed to have been validated upon decompression!
	return s.s.Verify(false, pubKey.(*PublicKey).p, false, msg, dst)
}

// VerifyWithOptions runs the core verification with every knob of the
// underlying library exposed. A nil error means the signature is valid.
func (s *Signature) VerifyWithOptions(pubKey common.PublicKey, msg, tag, aug []byte, groupCheck, pkValidate bool) error {
	pub, ok := pubKey.(*PublicKey)
	if !ok || pub == nil || pub.p == nil {
		return errors.Wrap(common.ErrVerificationFailed, "unsupported public key")
	}
	var valid bool
	if len(aug) > 0 {
		valid = s.s.Verify(groupCheck, pub.p, pkValidate, msg, tag, aug)
	} else {
		valid = s.s.Verify(groupCheck, pub.p, pkValidate, msg, tag)
	}
	if !valid {
		return common.ErrVerificationFailed
	}
	return nil
}

// Marshal a signature into a LittleEndian byte slice.
func (s *Signature) Marshal() []byte {
	return s.s.Compress()
}

// Copy returns a full deep copy of a signature.
func (s *Signature) Copy() common.Signature {
	sign := *s.s
	return &Signature{s: &sign}
}
