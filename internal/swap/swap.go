package swap

import (
	"context"
	"math"

	"github.com/pkg/errors"
	"go.opencensus.io/trace"

	"github.com/rateleg/swap-contract/internal/platform/db"
	"github.com/rateleg/swap-contract/internal/platform/state"
	"github.com/rateleg/swap-contract/pkg/bitcoin"
)

var (
	// ErrNotFound abstracts the standard not found error.
	ErrNotFound = errors.New("Swap not found")

	// ErrInvalidTerms occurs when contract terms fail validation.
	ErrInvalidTerms = errors.New("Swap terms invalid")

	// ErrSameParty occurs when both legs would be held by the same
	// identity.
	ErrSameParty = errors.New("Swap legs held by same party")

	// ErrSettled occurs when modifying a contract that already settled.
	ErrSettled = errors.New("Swap already settled")
)

// Retrieve gets the specified swap from the database.
func Retrieve(ctx context.Context, dbConn *db.DB, contractID string) (*state.Swap, error) {
	ctx, span := trace.StartSpan(ctx, "internal.swap.Retrieve")
	defer span.End()

	s, err := Fetch(ctx, dbConn, contractID)
	if err != nil {
		return nil, err
	}

	// A stored record can be corrupted or written by hand. Terms that
	// fail validation never reach settlement evaluation.
	if err := validateTerms(&s.Terms); err != nil {
		return nil, err
	}

	return s, nil
}

// Create the swap contract record.
func Create(ctx context.Context, dbConn *db.DB, contractID string, nu *NewSwap, now int64) error {
	ctx, span := trace.StartSpan(ctx, "internal.swap.Create")
	defer span.End()

	if err := validateTerms(&nu.Terms); err != nil {
		return err
	}

	if nu.Parties.FixedLegPKH.Equal(&nu.Parties.FloatLegPKH) {
		return ErrSameParty
	}

	s := state.Swap{
		ID:        contractID,
		Terms:     nu.Terms,
		Parties:   nu.Parties,
		Revision:  0,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return Save(ctx, dbConn, &s)
}

// Update the swap bookkeeping fields.
func Update(ctx context.Context, dbConn *db.DB, contractID string, upd *UpdateSwap, now int64) error {
	ctx, span := trace.StartSpan(ctx, "internal.swap.Update")
	defer span.End()

	s, err := Fetch(ctx, dbConn, contractID)
	if err != nil {
		return err
	}

	if upd.Revision != nil {
		s.Revision = *upd.Revision
	}
	if upd.Settled != nil {
		s.Settled = *upd.Settled
	}
	if upd.SettlementTxID != nil {
		s.SettlementTxID = *upd.SettlementTxID
	}

	s.UpdatedAt = now

	return Save(ctx, dbConn, s)
}

// Transfer reassigns one leg's position to a new identity. This is the
// only path that changes party identities; settlement evaluation never
// does.
func Transfer(ctx context.Context, dbConn *db.DB, contractID string, leg Leg, newPKH *bitcoin.Hash20, now int64) error {
	ctx, span := trace.StartSpan(ctx, "internal.swap.Transfer")
	defer span.End()

	s, err := Fetch(ctx, dbConn, contractID)
	if err != nil {
		return err
	}

	if s.Settled {
		return ErrSettled
	}

	switch leg {
	case FixedLeg:
		if newPKH.Equal(&s.Parties.FloatLegPKH) {
			return ErrSameParty
		}
		s.Parties.FixedLegPKH = *newPKH
	case FloatLeg:
		if newPKH.Equal(&s.Parties.FixedLegPKH) {
			return ErrSameParty
		}
		s.Parties.FloatLegPKH = *newPKH
	default:
		return errors.New("Unknown leg")
	}

	s.Revision++
	s.UpdatedAt = now

	return Save(ctx, dbConn, s)
}

// MarkSettled records a successful settlement against the contract.
func MarkSettled(ctx context.Context, dbConn *db.DB, contractID string, txID string, now int64) error {
	ctx, span := trace.StartSpan(ctx, "internal.swap.MarkSettled")
	defer span.End()

	settled := true
	return Update(ctx, dbConn, contractID, &UpdateSwap{
		Settled:        &settled,
		SettlementTxID: &txID,
	}, now)
}

func validateTerms(terms *state.SwapTerms) error {
	if terms.Notional < 0 {
		return errors.Wrap(ErrInvalidTerms, "negative notional")
	}
	if terms.Margin < 0 {
		return errors.Wrap(ErrInvalidTerms, "negative margin")
	}
	if terms.Margin > math.MaxInt64/2 {
		return errors.Wrap(ErrInvalidTerms, "margin too large")
	}
	if err := terms.FixedRate.Validate(); err != nil {
		return errors.Wrap(ErrInvalidTerms, "fixed rate")
	}
	if err := terms.FloatingRate.Validate(); err != nil {
		return errors.Wrap(ErrInvalidTerms, "floating rate")
	}
	if _, err := bitcoin.DecodePublicKeyBytes(terms.OraclePubKey); err != nil {
		return errors.Wrap(ErrInvalidTerms, "oracle public key")
	}
	return nil
}
