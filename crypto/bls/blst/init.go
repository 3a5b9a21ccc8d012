package blst

import (
	"runtime"

	"github.com/dgraph-io/ristretto"
	"github.com/pkg/errors"
	blst "github.com/supranational/blst/bindings/go"
)

func init() {
	// Reserve 1 core for general application work
	maxProcs := runtime.GOMAXPROCS(0) - 1
	if maxProcs <= 0 {
		maxProcs = 1
	}
	blst.SetMaxProcs(maxProcs)
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: maxKeys,
		MaxCost:     1 << 26, // ~64mb is cache max size
		BufferItems: 64,
	})
	if err != nil {
		panic(errors.Wrap(err, "could not initiate public keys cache"))
	}
	pubkeyCache = cache
}
