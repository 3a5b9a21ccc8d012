// Package vectors reads and writes signed attestation test vectors. A vector
// file pins the serialized message, public key and signature of each
// attestation so other implementations can be checked against this one.
package vectors

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/attestation-bench/benchmark/pregen"
	"github.com/prysmaticlabs/attestation-bench/benchmark/verification"
	"github.com/prysmaticlabs/attestation-bench/consensus-types/attestation"
	"github.com/prysmaticlabs/attestation-bench/consensus-types/primitives"
	"github.com/prysmaticlabs/attestation-bench/crypto/bls"
	"github.com/prysmaticlabs/attestation-bench/crypto/bls/common"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

var log = logrus.WithField("prefix", "vectors")

// ErrMalformedKeyMaterial is returned when a vector's public key or signature
// does not decode to a valid curve point.
var ErrMalformedKeyMaterial = errors.New("malformed key material")

// Checkpoint is an epoch and root pair.
type Checkpoint struct {
	Epoch uint64 `yaml:"epoch"`
	Root  string `yaml:"root"`
}

// Data mirrors attestation.AttestationData with hex encoded roots.
type Data struct {
	Slot            uint64     `yaml:"slot"`
	Index           uint64     `yaml:"index"`
	BeaconBlockRoot string     `yaml:"beacon_block_root"`
	Source          Checkpoint `yaml:"source"`
	Target          Checkpoint `yaml:"target"`
}

// Input of a single vector. Message is the serialized Data.
type Input struct {
	Data      Data   `yaml:"data"`
	Message   string `yaml:"message"`
	Pubkey    string `yaml:"pubkey"`
	Signature string `yaml:"signature"`
}

// Vector pairs an input with the expected verification outcome.
type Vector struct {
	Input  Input `yaml:"input"`
	Output bool  `yaml:"output"`
}

// File is the on-disk vector format.
type File struct {
	DST     string    `yaml:"dst"`
	Vectors []*Vector `yaml:"vectors"`
}

// Failure describes a vector that did not check out.
type Failure struct {
	Index  int
	Reason string
}

// Result of checking a vector file.
type Result struct {
	Passed   int
	Failures []Failure
}

// OK reports whether every vector passed.
func (r *Result) OK() bool {
	return len(r.Failures) == 0
}

// Generate signs count random attestations drawn from r and returns them as
// vectors that are expected to verify.
func Generate(r io.Reader, count int) (*File, error) {
	pool, err := pregen.GeneratePool(r, count)
	if err != nil {
		return nil, err
	}
	f := &File{
		DST:     common.DomainSeparationTag,
		Vectors: make([]*Vector, len(pool)),
	}
	for i, s := range pool {
		f.Vectors[i] = FromSigned(s)
	}
	return f, nil
}

// FromSigned encodes a signed attestation as a vector.
func FromSigned(s *attestation.SignedAttestation) *Vector {
	data := s.Data()
	return &Vector{
		Input: Input{
			Data: Data{
				Slot:            uint64(data.Slot),
				Index:           uint64(data.CommitteeIndex),
				BeaconBlockRoot: hexutil.Encode(data.BeaconBlockRoot[:]),
				Source: Checkpoint{
					Epoch: uint64(data.SourceEpoch),
					Root:  hexutil.Encode(data.SourceRoot[:]),
				},
				Target: Checkpoint{
					Epoch: uint64(data.TargetEpoch),
					Root:  hexutil.Encode(data.TargetRoot[:]),
				},
			},
			Message:   hexutil.Encode(data.Serialize()),
			Pubkey:    hexutil.Encode(s.PublicKey().Marshal()),
			Signature: hexutil.Encode(s.Signature().Marshal()),
		},
		Output: true,
	}
}

// Encode serializes f as YAML.
func Encode(f *File) ([]byte, error) {
	enc, err := yaml.Marshal(f)
	if err != nil {
		return nil, errors.Wrap(err, "could not marshal vectors")
	}
	return enc, nil
}

// Decode parses a YAML vector file.
func Decode(b []byte) (*File, error) {
	f := &File{}
	if err := yaml.Unmarshal(b, f); err != nil {
		return nil, errors.Wrap(err, "could not unmarshal vectors")
	}
	return f, nil
}

// Check verifies every vector in f. Vectors signed under another domain
// separation tag are rejected outright. A vector whose public key or
// signature does not decode passes only if it is expected to fail.
func Check(f *File) (*Result, error) {
	if f.DST != common.DomainSeparationTag {
		return nil, errors.Errorf("unsupported domain separation tag %q", f.DST)
	}
	res := &Result{}
	for i, v := range f.Vectors {
		if reason := checkVector(v); reason != "" {
			log.WithFields(logrus.Fields{
				"index":  i,
				"reason": reason,
			}).Debug("Vector failed")
			res.Failures = append(res.Failures, Failure{Index: i, Reason: reason})
			continue
		}
		res.Passed++
	}
	return res, nil
}

func checkVector(v *Vector) string {
	signed, err := v.Signed()
	if err != nil {
		if !v.Output && errors.Is(err, ErrMalformedKeyMaterial) {
			return ""
		}
		return err.Error()
	}
	data := signed.Data()
	msg, err := hexutil.Decode(v.Input.Message)
	if err != nil {
		return errors.Wrap(err, "could not decode message").Error()
	}
	if !bytes.Equal(msg, data.Serialize()) {
		decoded := &attestation.AttestationData{}
		if err := decoded.UnmarshalSSZ(msg); err != nil {
			return errors.Wrap(err, "could not decode message").Error()
		}
		return fmt.Sprintf("message encodes slot %d index %d, data has slot %d index %d",
			decoded.Slot, decoded.CommitteeIndex, data.Slot, data.CommitteeIndex)
	}
	if got := verification.VerifyOne(signed); got != v.Output {
		return fmt.Sprintf("verification returned %t, expected %t", got, v.Output)
	}
	return ""
}

// Signed decodes the vector into a signed attestation.
func (v *Vector) Signed() (*attestation.SignedAttestation, error) {
	data, err := v.Input.Data.attestationData()
	if err != nil {
		return nil, err
	}
	pubBytes, err := hexutil.Decode(v.Input.Pubkey)
	if err != nil {
		return nil, errors.Wrap(err, "could not decode public key")
	}
	pub, err := bls.PublicKeyFromBytes(pubBytes)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedKeyMaterial, "public key: %v", err)
	}
	sigBytes, err := hexutil.Decode(v.Input.Signature)
	if err != nil {
		return nil, errors.Wrap(err, "could not decode signature")
	}
	sig, err := bls.SignatureFromBytes(sigBytes)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedKeyMaterial, "signature: %v", err)
	}
	return attestation.NewSigned(data, sig, pub)
}

func (d *Data) attestationData() (attestation.AttestationData, error) {
	var data attestation.AttestationData
	beaconBlockRoot, err := decodeRoot(d.BeaconBlockRoot)
	if err != nil {
		return data, errors.Wrap(err, "beacon block root")
	}
	sourceRoot, err := decodeRoot(d.Source.Root)
	if err != nil {
		return data, errors.Wrap(err, "source root")
	}
	targetRoot, err := decodeRoot(d.Target.Root)
	if err != nil {
		return data, errors.Wrap(err, "target root")
	}
	data = attestation.AttestationData{
		Slot:            primitives.Slot(d.Slot),
		CommitteeIndex:  primitives.CommitteeIndex(d.Index),
		BeaconBlockRoot: beaconBlockRoot,
		SourceEpoch:     primitives.Epoch(d.Source.Epoch),
		SourceRoot:      sourceRoot,
		TargetEpoch:     primitives.Epoch(d.Target.Epoch),
		TargetRoot:      targetRoot,
	}
	return data, nil
}

func decodeRoot(s string) (attestation.Root, error) {
	b, err := hexutil.Decode(s)
	if err != nil {
		return attestation.Root{}, err
	}
	return attestation.RootFromBytes(b)
}
