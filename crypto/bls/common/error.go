package common

import "github.com/pkg/errors"

// ErrZeroKey describes an error due to a zero secret key.
var ErrZeroKey = errors.New("received secret key is zero")

// ErrSecretUnmarshal describes an error which happens during unmarshalling
// a secret key.
var ErrSecretUnmarshal = errors.New("could not unmarshal bytes into secret key")

// ErrInfinitePubKey describes an error due to an infinite public key.
var ErrInfinitePubKey = errors.New("received an infinite public key")

// ErrInfiniteSignature describes an error due to an infinite signature.
var ErrInfiniteSignature = errors.New("received an infinite signature")

// ErrInvalidSeed is returned when key generation input material is too short.
var ErrInvalidSeed = errors.New("key generation seed must be at least 32 bytes")

// ErrVerificationFailed is returned when a signature does not verify.
var ErrVerificationFailed = errors.New("signature verification failed")
