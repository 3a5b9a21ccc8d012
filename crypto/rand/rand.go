/*
Package rand defines methods of obtaining random number generators.

One is expected to use randomness from this package only, without introducing any other packages.
This limits the scope of code that needs to be hardened.

There are two modes, one for deterministic and another non-deterministic randomness:
1. For reproducible attestation pools and vector files, use a seeded generator:

	import "github.com/prysmaticlabs/attestation-bench/crypto/rand"
	randGen := rand.NewSeededGenerator(seed)
	randGen.Read(buf)

2. For cryptographically secure non-deterministic randomness (test pools used for
published numbers), use:

	randGen := rand.NewGenerator()

Both generators implement io.Reader, which is what the attestation pool generator consumes.
*/
package rand

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand"
	"sync"
)

type source struct{}

var lock sync.RWMutex
var _ mrand.Source64 = (*source)(nil) /* #nosec G404 */

// Seed does nothing when crypto/rand is used as source.
func (_ *source) Seed(_ int64) {}

// Int63 returns uniformly-distributed random (as in CSPRNG) value in range [0, 1<<63) range.
// Panics if random generator reader cannot return data.
func (s *source) Int63() int64 {
	return int64(s.Uint64() & ^uint64(1<<63))
}

// Uint64 returns uniformly-distributed random (as in CSPRNG) value in range [0, 1<<64) range.
// Panics if random generator reader cannot return data.
func (_ *source) Uint64() (val uint64) {
	lock.RLock()
	defer lock.RUnlock()
	if err := binary.Read(rand.Reader, binary.BigEndian, &val); err != nil {
		panic(err)
	}
	return
}

// Rand is alias for underlying random generator.
type Rand = mrand.Rand // #nosec G404

// NewGenerator returns a new generator that uses random values from crypto/rand as a source
// (cryptographically secure random number generator).
// Panics if crypto/rand input cannot be read.
// Use it for everything where crypto secure non-deterministic randomness is required. Performance
// takes a hit, so use sparingly.
func NewGenerator() *Rand {
	return mrand.New(&source{}) // #nosec G404 -- excluded
}

// NewSeededGenerator returns a pseudo-random generator fully determined by seed.
// Pools generated from the same seed contain the same attestations and keys.
func NewSeededGenerator(seed int64) *Rand {
	return mrand.New(mrand.NewSource(seed)) // #nosec G404 -- excluded
}
