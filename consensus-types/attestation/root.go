package attestation

import (
	"fmt"

	"github.com/pkg/errors"
	fieldparams "github.com/prysmaticlabs/attestation-bench/config/fieldparams"
)

// ErrInvalidRootLength is returned when a root is built from a slice that is not exactly 32 bytes.
var ErrInvalidRootLength = errors.New("root must be exactly 32 bytes")

// Root is an opaque 32 byte hash such as a block or checkpoint root.
type Root [fieldparams.RootLength]byte

// RootFromBytes copies b into a Root. The input length must be exactly 32 bytes.
func RootFromBytes(b []byte) (Root, error) {
	var r Root
	if len(b) != fieldparams.RootLength {
		return r, errors.Wrapf(ErrInvalidRootLength, "got %d bytes", len(b))
	}
	copy(r[:], b)
	return r, nil
}

// String returns the 0x prefixed hex form of the root.
func (r Root) String() string {
	return fmt.Sprintf("%#x", r[:])
}
