// Package primitives defines the integer types used by attestation payloads.
package primitives

import "fmt"

// Slot represents a single slot.
type Slot uint64

// Epoch represents a single epoch.
type Epoch uint64

// CommitteeIndex in Ethereum.
type CommitteeIndex uint64

// String returns the decimal representation of the slot.
func (s Slot) String() string {
	return fmt.Sprintf("%d", uint64(s))
}

// String returns the decimal representation of the epoch.
func (e Epoch) String() string {
	return fmt.Sprintf("%d", uint64(e))
}

// String returns the decimal representation of the committee index.
func (c CommitteeIndex) String() string {
	return fmt.Sprintf("%d", uint64(c))
}
