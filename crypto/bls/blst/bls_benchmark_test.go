package blst_test

import (
	"testing"

	"github.com/prysmaticlabs/attestation-bench/crypto/bls/blst"
	"github.com/prysmaticlabs/attestation-bench/crypto/bls/common"
	"github.com/prysmaticlabs/attestation-bench/testing/require"
)

func BenchmarkSignature_Verify(b *testing.B) {
	sk, err := blst.RandKey()
	require.NoError(b, err)

	msg := []byte("Some msg")
	sig := sk.Sign(msg)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !sig.Verify(sk.PublicKey(), msg) {
			b.Fatal("could not verify sig")
		}
	}
}

func BenchmarkSignature_VerifyWithOptions(b *testing.B) {
	sk, err := blst.RandKey()
	require.NoError(b, err)

	msg := make([]byte, 128)
	tag := []byte(common.DomainSeparationTag)
	sig := sk.SignWithDST(msg, tag)
	pub := sk.PublicKey()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := sig.VerifyWithOptions(pub, msg, tag, nil, true, false); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSecretKey_Marshal(b *testing.B) {
	key, err := blst.RandKey()
	require.NoError(b, err)
	d := key.Marshal()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := blst.SecretKeyFromBytes(d)
		_ = err
	}
}
