package inspector

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/rateleg/swap-contract/pkg/bitcoin"
)

// Input is a spent funding source. Address identifies who authorized the
// spend; the host ledger resolves it from the unlocking data before the
// view is handed to validation.
type Input struct {
	Address bitcoin.Address `json:"Address"`
	Index   uint32          `json:"Index"`
	Value   int64           `json:"Value"`
	UTXO    UTXO            `json:"UTXO"`
}

// IsSignedBy returns true if the input spend was authorized by the given
// public key hash identity.
func (in *Input) IsSignedBy(pkh *bitcoin.Hash20) bool {
	return in.Address.PKH().Equal(pkh)
}

// Output is a payment destination with its amount.
type Output struct {
	Address bitcoin.Address `json:"Address"`
	Index   uint32          `json:"Index"`
	Value   int64           `json:"Value"`
}

// DestinationPKH returns the public key hash identity the output pays to.
func (out *Output) DestinationPKH() *bitcoin.Hash20 {
	return out.Address.PKH()
}

// UTXO references the funding output an input spends.
type UTXO struct {
	Hash  chainhash.Hash `json:"Hash"`
	Index uint32         `json:"Index"`
	Value int64          `json:"Value"`
}
