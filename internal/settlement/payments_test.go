package settlement

import (
	"math/big"
	"testing"

	"github.com/pkg/errors"

	"github.com/rateleg/swap-contract/internal/platform/state"
	"github.com/rateleg/swap-contract/pkg/rational"
)

func TestComputePaymentsExactRational(t *testing.T) {
	// notional 1_000_000, fixed 1/20, observed 3/40, margin 100_000:
	// rateDelta = 1/40, delta = 25_000, both payments = 1_025_000.
	terms := state.SwapTerms{
		Notional:  1000000,
		FixedRate: rational.Rational{Num: 1, Denom: 20},
		Margin:    100000,
	}

	rate := big.NewRat(3, 40)

	payments, err := ComputePayments(terms, rate, ClampBounded)
	if err != nil {
		t.Fatal(err)
	}

	if payments.Fixed != 1025000 {
		t.Errorf("Fixed payment: got %d, want %d", payments.Fixed, 1025000)
	}
	if payments.Float != 1025000 {
		t.Errorf("Float payment: got %d, want %d", payments.Float, 1025000)
	}
	if payments.Fixed != payments.Float {
		t.Errorf("Leg payments must be identical by construction")
	}

	// The payment terms cancel in the clamp argument, so both remainders
	// are exactly the margin.
	if payments.FixedRemainder != terms.Margin {
		t.Errorf("Fixed remainder: got %d, want %d", payments.FixedRemainder, terms.Margin)
	}
	if payments.FloatRemainder != terms.Margin {
		t.Errorf("Float remainder: got %d, want %d", payments.FloatRemainder, terms.Margin)
	}
}

func TestComputePaymentsRounding(t *testing.T) {
	// notional 10, fixed 0, observed 1/20: delta = 1/2 exactly. The
	// pinned rounding mode is half away from zero, so the payment is 11.
	terms := state.SwapTerms{
		Notional:  10,
		FixedRate: rational.Rational{Num: 0, Denom: 1},
		Margin:    100,
	}

	payments, err := ComputePayments(terms, big.NewRat(1, 20), ClampBounded)
	if err != nil {
		t.Fatal(err)
	}

	if payments.Fixed != 11 {
		t.Errorf("Got %d, want 11 (half rounds away from zero)", payments.Fixed)
	}
}

func TestClampBounded(t *testing.T) {
	margin := int64(100000)

	tests := []struct {
		name string
		x    int64
		want int64
	}{
		{"negative pins to zero", -5000, 0},
		{"zero stays", 0, 0},
		{"within bound passes", margin, margin},
		{"upper bound passes", 2 * margin, 2 * margin},
		{"above bound pins to 2*margin", 2*margin + 1, 2 * margin},
	}

	for _, tt := range tests {
		if got := clamp(tt.x, margin, ClampBounded); got != tt.want {
			t.Errorf("%s: clamp(%d) = %d, want %d", tt.name, tt.x, got, tt.want)
		}
	}
}

func TestClampLiteral(t *testing.T) {
	// min(0, max(2*margin, x)) with a non-negative margin: the inner max
	// is never below zero, so the outer min always yields zero. The
	// inverted order is reproduced deliberately, not corrected.
	margin := int64(100000)

	for _, x := range []int64{-300000, -1, 0, margin, 2 * margin, 2*margin + 1, 900000} {
		if got := clamp(x, margin, ClampLiteral); got != 0 {
			t.Errorf("literal clamp(%d) = %d, want 0", x, got)
		}
	}
}

func TestClampModeFromString(t *testing.T) {
	mode, err := ClampModeFromString("bounded")
	if err != nil || mode != ClampBounded {
		t.Errorf("bounded: got %v, %v", mode, err)
	}

	mode, err = ClampModeFromString("literal")
	if err != nil || mode != ClampLiteral {
		t.Errorf("literal: got %v, %v", mode, err)
	}

	if _, err := ClampModeFromString("sane"); errors.Cause(err) != ErrUnknownClampMode {
		t.Errorf("Got %v, want ErrUnknownClampMode", err)
	}
}

func TestComputePaymentsMarginOverflow(t *testing.T) {
	// 2*margin must not wrap around before the clamp sees it.
	terms := state.SwapTerms{
		Notional:  1000000,
		FixedRate: rational.Rational{Num: 1, Denom: 20},
		Margin:    1 << 62,
	}

	_, err := ComputePayments(terms, big.NewRat(3, 40), ClampBounded)
	if errors.Cause(err) != ErrAmountOverflow {
		t.Errorf("Got %v, want ErrAmountOverflow", err)
	}
}

func TestComputePaymentsMalformedRate(t *testing.T) {
	terms := state.SwapTerms{
		Notional:  1000000,
		FixedRate: rational.Rational{Num: 1, Denom: 0},
		Margin:    100000,
	}

	_, err := ComputePayments(terms, big.NewRat(3, 40), ClampBounded)
	if errors.Cause(err) != ErrBadTerms {
		t.Errorf("Got %v, want ErrBadTerms", err)
	}
}

func TestComputePaymentsOverflow(t *testing.T) {
	terms := state.SwapTerms{
		Notional:  1 << 62,
		FixedRate: rational.Rational{Num: 0, Denom: 1},
		Margin:    100,
	}

	// rate 10/1 multiplies the notional past int64.
	_, err := ComputePayments(terms, big.NewRat(10, 1), ClampBounded)
	if errors.Cause(err) != ErrAmountOverflow {
		t.Errorf("Got %v, want ErrAmountOverflow", err)
	}
}
