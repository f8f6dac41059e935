package state

import (
	"github.com/rateleg/swap-contract/pkg/bitcoin"
	"github.com/rateleg/swap-contract/pkg/rational"
)

// Swap represents an interest rate swap contract between a fixed rate
// party and a floating rate party.
type Swap struct {
	ID       string          `json:"ID,omitempty"`
	Terms    SwapTerms       `json:"Terms"`
	Parties  PartyIdentities `json:"Parties"`
	Revision uint32          `json:"Revision,omitempty"`

	Settled        bool   `json:"Settled,omitempty"`
	SettlementTxID string `json:"SettlementTxID,omitempty"`

	CreatedAt int64 `json:"CreatedAt,omitempty"`
	UpdatedAt int64 `json:"UpdatedAt,omitempty"`
}

// SwapTerms are the contract parameters. They are fixed when the contract
// is created and never amended.
type SwapTerms struct {
	// Notional is the principal, in smallest currency units, that
	// interest is computed on. It is never itself transferred.
	Notional int64 `json:"Notional"`

	// ObservationSlot is the logical time at which the floating rate
	// must be observed. The oracle's observation must carry this exact
	// slot.
	ObservationSlot uint64 `json:"ObservationSlot"`

	// FixedRate is the rate agreed at contract start.
	FixedRate rational.Rational `json:"FixedRate"`

	// FloatingRate is a contractual placeholder. Settlement uses the
	// observed rate from the oracle, never this field.
	FloatingRate rational.Rational `json:"FloatingRate"`

	// Margin is the collateral each party posts, in smallest currency
	// units. It bounds the maximum swing of the payout.
	Margin int64 `json:"Margin"`

	// OraclePubKey is the compressed secp256k1 public key that must have
	// signed the rate observation.
	OraclePubKey []byte `json:"OraclePubKey"`
}

// PartyIdentities are the public key hashes receiving each leg's payout.
// They can be reassigned when a party transfers their position, but only
// through swap.Transfer, never by the settlement evaluation.
type PartyIdentities struct {
	FixedLegPKH bitcoin.Hash20 `json:"FixedLegPKH"`
	FloatLegPKH bitcoin.Hash20 `json:"FloatLegPKH"`
}
