package rational

import (
	"fmt"
	"math/big"

	"github.com/pkg/errors"
)

var (
	// ErrZeroDenominator occurs when a rational is built with a zero
	// denominator.
	ErrZeroDenominator = errors.New("Rational has zero denominator")
)

// Rational is an exact numerator/denominator pair. It is the wire and
// storage form of a rate. All arithmetic is done on *big.Rat so no
// precision is ever lost; binary floating point must never enter rate or
// payment calculations.
type Rational struct {
	Num   int64 `json:"Num"`
	Denom int64 `json:"Denom"`
}

// New returns a Rational, rejecting a zero denominator.
func New(num, denom int64) (Rational, error) {
	if denom == 0 {
		return Rational{}, ErrZeroDenominator
	}
	return Rational{Num: num, Denom: denom}, nil
}

// FromRat converts a *big.Rat. Fails if either component overflows int64.
func FromRat(r *big.Rat) (Rational, error) {
	if !r.Num().IsInt64() || !r.Denom().IsInt64() {
		return Rational{}, fmt.Errorf("Rational overflows int64 : %s", r.RatString())
	}
	return Rational{Num: r.Num().Int64(), Denom: r.Denom().Int64()}, nil
}

// Rat returns the value as a *big.Rat. The result does not share state
// with the Rational.
func (r Rational) Rat() *big.Rat {
	return big.NewRat(r.Num, r.Denom)
}

// Validate returns an error if the Rational is not usable.
func (r Rational) Validate() error {
	if r.Denom == 0 {
		return ErrZeroDenominator
	}
	return nil
}

func (r Rational) String() string {
	return fmt.Sprintf("%d/%d", r.Num, r.Denom)
}

// Equal returns true if the two rationals represent the same value.
// 1/2 equals 2/4.
func (r Rational) Equal(o Rational) bool {
	return r.Rat().Cmp(o.Rat()) == 0
}

// RoundHalfAwayFromZero converts an exact rational to the nearest integer
// currency amount. Exact halves round away from zero, so 1/2 becomes 1
// and -1/2 becomes -1. This is the pinned rounding mode for all
// settlement amounts; changing it moves settlements by one smallest unit.
func RoundHalfAwayFromZero(r *big.Rat) *big.Int {
	num := new(big.Int).Set(r.Num())
	denom := r.Denom() // always > 0 for big.Rat

	negative := num.Sign() < 0
	if negative {
		num.Neg(num)
	}

	quo, rem := new(big.Int).QuoRem(num, denom, new(big.Int))

	// 2*rem >= denom means the fraction is at least one half.
	rem.Lsh(rem, 1)
	if rem.Cmp(denom) >= 0 {
		quo.Add(quo, big.NewInt(1))
	}

	if negative {
		quo.Neg(quo)
	}
	return quo
}
