package blst_test

import (
	"testing"

	"github.com/prysmaticlabs/attestation-bench/crypto/bls/blst"
	"github.com/prysmaticlabs/attestation-bench/crypto/bls/common"
	"github.com/prysmaticlabs/attestation-bench/testing/assert"
	"github.com/prysmaticlabs/attestation-bench/testing/require"
)

func TestSignVerify(t *testing.T) {
	priv, err := blst.RandKey()
	require.NoError(t, err)
	pub := priv.PublicKey()
	msg := []byte("hello")
	sig := priv.Sign(msg)
	assert.Equal(t, true, sig.Verify(pub, msg), "Signature did not verify")
}

func TestVerifyWithOptions(t *testing.T) {
	priv, err := blst.RandKey()
	require.NoError(t, err)
	pub := priv.PublicKey()
	msg := make([]byte, 128)
	for i := range msg {
		msg[i] = byte(i)
	}
	tag := []byte(common.DomainSeparationTag)
	sig := priv.SignWithDST(msg, tag)

	require.NoError(t, sig.VerifyWithOptions(pub, msg, tag, nil, true, false))
	require.NoError(t, sig.VerifyWithOptions(pub, msg, tag, nil, true, true))

	for i := range msg {
		tampered := make([]byte, len(msg))
		copy(tampered, msg)
		tampered[i] ^= 0x01
		err := sig.VerifyWithOptions(pub, tampered, tag, nil, true, false)
		require.ErrorIs(t, err, common.ErrVerificationFailed, "byte %d flipped", i)
	}

	err = sig.VerifyWithOptions(pub, msg, []byte("BLS_SIG_BLS12381G2_XMD:SHA-256_SSWU_RO_NUL_"), nil, true, false)
	assert.ErrorIs(t, err, common.ErrVerificationFailed)

	other, err := blst.RandKey()
	require.NoError(t, err)
	err = sig.VerifyWithOptions(other.PublicKey(), msg, tag, nil, true, false)
	assert.ErrorIs(t, err, common.ErrVerificationFailed)
}

func TestSignatureFromBytes(t *testing.T) {
	priv, err := blst.RandKey()
	require.NoError(t, err)
	msg := []byte("round trip")
	sig := priv.Sign(msg)

	decoded, err := blst.SignatureFromBytes(sig.Marshal())
	require.NoError(t, err)
	assert.DeepEqual(t, sig.Marshal(), decoded.Marshal())
	assert.Equal(t, true, decoded.Verify(priv.PublicKey(), msg))

	_, err = blst.SignatureFromBytes(make([]byte, 95))
	assert.ErrorContains(t, "signature must be 96 bytes", err)

	_, err = blst.SignatureFromBytes(common.InfiniteSignature[:])
	assert.ErrorIs(t, err, common.ErrInfiniteSignature)
}

func TestPublicKeyFromBytes(t *testing.T) {
	priv, err := blst.RandKey()
	require.NoError(t, err)
	raw := priv.PublicKey().Marshal()

	pub, err := blst.PublicKeyFromBytes(raw)
	require.NoError(t, err)
	assert.Equal(t, true, pub.Equals(priv.PublicKey()))

	// Second lookup may be served from the cache and must still be equal.
	cached, err := blst.PublicKeyFromBytes(raw)
	require.NoError(t, err)
	assert.Equal(t, true, cached.Equals(pub))

	_, err = blst.PublicKeyFromBytes(common.InfinitePublicKey[:])
	assert.ErrorIs(t, err, common.ErrInfinitePubKey)

	_, err = blst.PublicKeyFromBytes([]byte{0x01})
	assert.ErrorContains(t, "public key must be 48 bytes", err)
}
