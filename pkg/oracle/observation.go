package oracle

import (
	"bytes"
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/rateleg/swap-contract/pkg/bitcoin"
	"github.com/rateleg/swap-contract/pkg/rational"
)

var (
	// ErrInvalidSignature occurs when an observation's signature does not
	// verify under the oracle public key.
	ErrInvalidSignature = errors.New("Observation signature invalid")
)

// sigHashPrefix domain-separates observation signatures from any other
// message the oracle key might sign.
var sigHashPrefix = []byte("rate-observation:1")

// Observation is a rate attested by the oracle at a logical time. The
// rate is exact; the oracle never publishes floating point.
type Observation struct {
	Value  rational.Rational `json:"Value"`
	AtSlot uint64            `json:"AtSlot"`
}

// SigHash returns the hash the oracle signs: a double SHA256 over the
// prefixed, little-endian serialized payload. The serialization is fixed;
// any change invalidates existing signatures.
func (o Observation) SigHash() ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, len(sigHashPrefix)+24))

	if _, err := buf.Write(sigHashPrefix); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.LittleEndian, o.Value.Num); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.LittleEndian, o.Value.Denom); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.LittleEndian, o.AtSlot); err != nil {
		return nil, err
	}

	return bitcoin.DoubleSha256(buf.Bytes()), nil
}

// SignedObservation is an observation plus the oracle's signature over
// its sig hash. It is supplied once at settlement time and discarded
// after evaluation.
type SignedObservation struct {
	Observation Observation `json:"Observation"`
	Signature   []byte      `json:"Signature"`
}

// Sign produces a SignedObservation under the given oracle key.
func Sign(key bitcoin.Key, o Observation) (*SignedObservation, error) {
	if err := o.Value.Validate(); err != nil {
		return nil, errors.Wrap(err, "Invalid observation value")
	}

	hash, err := o.SigHash()
	if err != nil {
		return nil, errors.Wrap(err, "Failed to build sig hash")
	}

	sig, err := key.Sign(hash)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to sign observation")
	}

	return &SignedObservation{
		Observation: o,
		Signature:   sig,
	}, nil
}

// Verify checks the signature against the oracle public key for exactly
// this payload. It returns ErrInvalidSignature when the signature does
// not verify, including when it is malformed.
func (so *SignedObservation) Verify(pubkey bitcoin.PublicKey) error {
	hash, err := so.Observation.SigHash()
	if err != nil {
		return errors.Wrap(err, "Failed to build sig hash")
	}

	sig, err := bitcoin.DecodeSignatureBytes(so.Signature)
	if err != nil {
		return errors.Wrap(ErrInvalidSignature, err.Error())
	}

	if !sig.Verify(hash, pubkey) {
		return ErrInvalidSignature
	}

	return nil
}
