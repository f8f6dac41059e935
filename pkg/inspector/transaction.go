package inspector

import (
	"encoding/json"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/pkg/errors"

	"github.com/rateleg/swap-contract/pkg/bitcoin"
)

// Transaction is a read-only view of a candidate settlement transaction
// supplied by the host ledger. Validation never mutates it.
type Transaction struct {
	Hash    *chainhash.Hash `json:"Hash,omitempty"`
	Inputs  []Input         `json:"Inputs"`
	Outputs []Output        `json:"Outputs"`
}

// NewTransactionFromJSON parses a transaction view from a JSON document,
// as produced by host tooling and test fixtures.
func NewTransactionFromJSON(b []byte) (*Transaction, error) {
	itx := &Transaction{}
	if err := json.Unmarshal(b, itx); err != nil {
		return nil, errors.Wrap(err, "Failed to unmarshal transaction")
	}

	return itx, nil
}

// InputsValue returns the total value of the transaction inputs.
func (itx *Transaction) InputsValue() int64 {
	total := int64(0)
	for _, input := range itx.Inputs {
		total += input.Value
	}
	return total
}

// OutputsValue returns the total value of the transaction outputs.
func (itx *Transaction) OutputsValue() int64 {
	total := int64(0)
	for _, output := range itx.Outputs {
		total += output.Value
	}
	return total
}

// PaysTo returns true if any output pays to the given identity.
func (itx *Transaction) PaysTo(pkh *bitcoin.Hash20) bool {
	for _, output := range itx.Outputs {
		if output.DestinationPKH().Equal(pkh) {
			return true
		}
	}
	return false
}
