package settlement

import (
	"context"

	"github.com/pkg/errors"

	"github.com/rateleg/swap-contract/internal/platform/logger"
	"github.com/rateleg/swap-contract/internal/platform/state"
	"github.com/rateleg/swap-contract/pkg/bitcoin"
	"github.com/rateleg/swap-contract/pkg/inspector"
	"github.com/rateleg/swap-contract/pkg/oracle"
)

var (
	// ErrBadTerms occurs when the stored contract terms are unusable,
	// such as a rate with a zero denominator or negative amounts.
	ErrBadTerms = errors.New("Contract terms malformed")

	// ErrBadSignature occurs when the observation does not verify under
	// the contract's oracle public key.
	ErrBadSignature = errors.New("Observation signature check failed")

	// ErrBadObservation occurs when a correctly signed observation
	// carries an unusable payload, such as a zero denominator rate.
	ErrBadObservation = errors.New("Observation payload invalid")

	// ErrWrongSlot occurs when the observation was made at a different
	// logical time than the contract requires.
	ErrWrongSlot = errors.New("Observation at wrong slot")

	// ErrBadTxShape occurs when the transaction does not have exactly
	// two inputs and two outputs. This is a contract level malformation,
	// not a rejection.
	ErrBadTxShape = errors.New("Transaction does not have settlement shape")
)

// Evaluate decides whether the transaction legally settles the swap.
//
// A nil error with a false verdict is a clean rejection: the transaction
// is well formed but does not pay the right parties the right amounts. A
// non-nil error is a hard failure (bad signature, wrong slot, wrong
// input/output cardinality) and no verdict is produced.
//
// The evaluation is pure and deterministic. The host runtime evaluates it
// once per spent margin input; both evaluations see the same values and
// must produce the same verdict.
//
// The observation slot is only compared for exact equality with the
// contract's observation slot. Whether that slot is after contract start
// is not checked: the oracle's slot stamping is trusted.
func Evaluate(ctx context.Context, terms state.SwapTerms, parties state.PartyIdentities,
	obs *oracle.SignedObservation, itx *inspector.Transaction, mode ClampMode) (bool, error) {

	log := logger.NewLoggerFromContext(ctx).Sugar()

	// Stored terms are validated at creation, but a record can still be
	// corrupted or written by hand. Unusable terms are a hard failure,
	// never a panic.
	if err := validTerms(terms); err != nil {
		return false, err
	}

	// 1. Authenticate the observation.
	pubkey, err := bitcoin.DecodePublicKeyBytes(terms.OraclePubKey)
	if err != nil {
		return false, errors.Wrap(ErrBadSignature, "parse oracle public key")
	}

	if err := obs.Verify(pubkey); err != nil {
		return false, errors.Wrap(ErrBadSignature, err.Error())
	}

	if obs.Observation.AtSlot != terms.ObservationSlot {
		return false, errors.Wrapf(ErrWrongSlot, "got %d, want %d",
			obs.Observation.AtSlot, terms.ObservationSlot)
	}

	if err := obs.Observation.Value.Validate(); err != nil {
		return false, errors.Wrap(ErrBadObservation, err.Error())
	}
	rate := obs.Observation.Value.Rat()

	// 2, 3. Compute the leg payments and clamp to the collateral.
	payments, err := ComputePayments(terms, rate, mode)
	if err != nil {
		return false, err
	}

	// 4. Both margin deposits must be spent, in either order.
	inputsOk, err := checkInputs(itx, parties, terms.Margin)
	if err != nil {
		return false, err
	}

	// 5. Both payouts must go to the parties, bounded by the remainders,
	// in either order.
	outputsOk, err := checkOutputs(itx, parties, payments)
	if err != nil {
		return false, err
	}

	if !inputsOk {
		log.Warnf("settlement : Margin inputs do not match parties")
	}
	if !outputsOk {
		log.Warnf("settlement : Payout outputs exceed remainders or miss parties")
	}

	return inputsOk && outputsOk, nil
}

// validTerms rejects terms the arithmetic cannot safely evaluate.
func validTerms(terms state.SwapTerms) error {
	if terms.Notional < 0 {
		return errors.Wrap(ErrBadTerms, "negative notional")
	}
	if terms.Margin < 0 {
		return errors.Wrap(ErrBadTerms, "negative margin")
	}
	if terms.Margin > maxMargin {
		return errors.Wrapf(ErrBadTerms, "margin above %d", maxMargin)
	}
	if err := terms.FixedRate.Validate(); err != nil {
		return errors.Wrap(ErrBadTerms, "fixed rate")
	}
	return nil
}

// checkInputs verifies that the two inputs are the two parties' margin
// deposits. Either input may belong to either leg.
func checkInputs(itx *inspector.Transaction, parties state.PartyIdentities, margin int64) (bool, error) {
	if len(itx.Inputs) != 2 {
		return false, errors.Wrapf(ErrBadTxShape, "%d inputs", len(itx.Inputs))
	}

	t1 := &itx.Inputs[0]
	t2 := &itx.Inputs[1]

	straight := isMarginDeposit(t1, &parties.FixedLegPKH, margin) &&
		isMarginDeposit(t2, &parties.FloatLegPKH, margin)
	swapped := isMarginDeposit(t2, &parties.FixedLegPKH, margin) &&
		isMarginDeposit(t1, &parties.FloatLegPKH, margin)

	return straight || swapped, nil
}

// isMarginDeposit is true when the input was authorized by the party and
// carries exactly the margin amount.
func isMarginDeposit(in *inspector.Input, pkh *bitcoin.Hash20, margin int64) bool {
	return in.IsSignedBy(pkh) && in.Value == margin
}

// checkOutputs verifies that the two outputs pay the two parties no more
// than their remainders. Underpayment is tolerated, overpayment is not.
func checkOutputs(itx *inspector.Transaction, parties state.PartyIdentities, payments *Payments) (bool, error) {
	if len(itx.Outputs) != 2 {
		return false, errors.Wrapf(ErrBadTxShape, "%d outputs", len(itx.Outputs))
	}

	o1 := &itx.Outputs[0]
	o2 := &itx.Outputs[1]

	straight := isPayout(o1, &parties.FixedLegPKH, payments.FixedRemainder) &&
		isPayout(o2, &parties.FloatLegPKH, payments.FloatRemainder)
	swapped := isPayout(o2, &parties.FixedLegPKH, payments.FixedRemainder) &&
		isPayout(o1, &parties.FloatLegPKH, payments.FloatRemainder)

	return straight || swapped, nil
}

// isPayout is true when the output pays the party at most the remainder.
func isPayout(out *inspector.Output, pkh *bitcoin.Hash20, remainder int64) bool {
	return out.DestinationPKH().Equal(pkh) && out.Value <= remainder
}
