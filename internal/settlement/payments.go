package settlement

import (
	"math"
	"math/big"

	"github.com/pkg/errors"

	"github.com/rateleg/swap-contract/internal/platform/state"
	"github.com/rateleg/swap-contract/pkg/rational"
)

// maxMargin is the largest collateral amount whose clamp bound 2*margin
// still fits an int64.
const maxMargin = math.MaxInt64 / 2

// ClampMode selects the payout clamp variant.
type ClampMode int

const (
	// ClampBounded keeps a remainder within [0, 2*margin].
	ClampBounded ClampMode = iota

	// ClampLiteral reproduces the legacy contract formula
	// min(0, max(2*margin, x)). The min/max order is inverted relative
	// to ClampBounded, which forces every remainder to zero. It is kept
	// selectable for behavioral fidelity with legacy deployments.
	ClampLiteral
)

var (
	// ErrUnknownClampMode occurs when configuration names a clamp
	// variant that does not exist.
	ErrUnknownClampMode = errors.New("Unknown clamp mode")

	// ErrAmountOverflow occurs when a computed payment does not fit a
	// 64 bit currency amount.
	ErrAmountOverflow = errors.New("Payment amount overflows int64")
)

// ClampModeFromString maps a configuration value to a ClampMode.
func ClampModeFromString(s string) (ClampMode, error) {
	switch s {
	case "bounded":
		return ClampBounded, nil
	case "literal":
		return ClampLiteral, nil
	}

	return 0, errors.Wrap(ErrUnknownClampMode, s)
}

func (m ClampMode) String() string {
	switch m {
	case ClampBounded:
		return "bounded"
	case ClampLiteral:
		return "literal"
	}

	return "unknown"
}

// Payments are the settlement amounts derived from the contract terms and
// the observed rate.
type Payments struct {
	// Fixed and Float are the raw leg payments. They are computed with
	// the identical formula round(notional + notional*(rate-fixedRate)),
	// so they are always equal. The contract defines both legs
	// this way and the symmetry is preserved exactly rather than
	// corrected.
	Fixed int64
	Float int64

	// FixedRemainder and FloatRemainder bound what each party may be
	// paid out of the posted collateral.
	FixedRemainder int64
	FloatRemainder int64
}

// ComputePayments derives the settlement amounts. rate is the observed
// floating rate from the authenticated oracle observation. All
// intermediate arithmetic is exact rational math; the only rounding is
// the pinned half-away-from-zero conversion to currency units.
func ComputePayments(terms state.SwapTerms, rate *big.Rat, mode ClampMode) (*Payments, error) {
	if terms.Margin > maxMargin {
		return nil, errors.Wrapf(ErrAmountOverflow, "margin %d", terms.Margin)
	}
	if err := terms.FixedRate.Validate(); err != nil {
		return nil, errors.Wrap(ErrBadTerms, "fixed rate")
	}

	fixedRate := terms.FixedRate.Rat()
	notional := new(big.Rat).SetInt64(terms.Notional)

	// delta = notional * (rate - fixedRate)
	rateDelta := new(big.Rat).Sub(rate, fixedRate)
	delta := new(big.Rat).Mul(notional, rateDelta)

	payment := rational.RoundHalfAwayFromZero(new(big.Rat).Add(notional, delta))
	if !payment.IsInt64() {
		return nil, errors.Wrap(ErrAmountOverflow, payment.String())
	}

	// Both legs use the identical rounded quantity.
	fixedPayment := payment.Int64()
	floatPayment := fixedPayment

	margin := terms.Margin

	result := &Payments{
		Fixed:          fixedPayment,
		Float:          floatPayment,
		FixedRemainder: clamp((margin-fixedPayment)+floatPayment, margin, mode),
		FloatRemainder: clamp((margin-floatPayment)+fixedPayment, margin, mode),
	}

	return result, nil
}

func clamp(x, margin int64, mode ClampMode) int64 {
	switch mode {
	case ClampLiteral:
		// The legacy formula. max(2*margin, x) is never below zero for
		// a non-negative margin, so the outer min pins the result to
		// zero.
		return min64(0, max64(2*margin, x))
	default:
		return max64(0, min64(2*margin, x))
	}
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
