package field_params

const (
	RootLength            = 32      // RootLength defines the byte length of a Merkle root.
	BLSSecretKeyLength    = 32      // BLSSecretKeyLength defines the byte length of a BLS secret key.
	BLSSeedLength         = 32      // BLSSeedLength defines the byte length of the key generation input material.
	BLSSignatureLength    = 96      // BLSSignatureLength defines the byte length of a BLSSignature.
	BLSPubkeyLength       = 48      // BLSPubkeyLength defines the byte length of a BLS public key.
	AttestationDataLength = 128     // AttestationDataLength defines the byte length of a serialized AttestationData.
	CommitteeIndexSpan    = 1 << 16 // CommitteeIndexSpan is the exclusive upper bound of generated committee indices.
)
