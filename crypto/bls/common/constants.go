package common

// ZeroSecretKey represents a zero secret key.
var ZeroSecretKey = [32]byte{}

// InfinitePublicKey represents an infinite public key (G1 Point at Infinity).
var InfinitePublicKey = [48]byte{0xC0}

// InfiniteSignature represents an infinite signature (G2 Point at Infinity).
var InfiniteSignature = [96]byte{0xC0}

// DomainSeparationTag is the ciphersuite identifier of the proof-of-possession
// scheme with signatures in G2. Every signature produced or checked by this
// module is bound to it.
const DomainSeparationTag = "BLS_SIG_BLS12381G2_XMD:SHA-256_SSWU_RO_POP_"
