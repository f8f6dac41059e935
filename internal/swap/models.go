package swap

import (
	"github.com/rateleg/swap-contract/internal/platform/state"
)

// Leg identifies one side of the swap.
type Leg int

const (
	FixedLeg Leg = iota
	FloatLeg
)

func (l Leg) String() string {
	switch l {
	case FixedLeg:
		return "fixed"
	case FloatLeg:
		return "float"
	}
	return "unknown"
}

// NewSwap contains the information needed to instantiate a swap contract.
// Terms are fixed for the contract's life once created.
type NewSwap struct {
	Terms   state.SwapTerms       `json:"Terms"`
	Parties state.PartyIdentities `json:"Parties"`
}

// UpdateSwap contains the bookkeeping fields that may change after
// creation. Contract terms are never amended; party identities change
// only through Transfer.
type UpdateSwap struct {
	Revision       *uint32 `json:"Revision,omitempty"`
	Settled        *bool   `json:"Settled,omitempty"`
	SettlementTxID *string `json:"SettlementTxID,omitempty"`
}
