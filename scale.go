package fixnum

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/govalues/decimal"
)

// maxUint64Digits is the number of decimal digits in math.MaxUint64.
const maxUint64Digits = 20

// pow10 returns 10^n.
func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

// ScaleToUint64 returns floor(d × 10^prec), the decimal expressed as a whole
// number of atomic units.
// Unlike [NewAmountFromDecimal], ScaleToUint64 neither canonicalizes the result
// nor rejects inexact values: digits beyond the precision are discarded.
//
// ScaleToUint64 returns an error if:
//   - the precision is negative;
//   - the decimal is negative;
//   - the result does not fit in a uint64.
func ScaleToUint64(d decimal.Decimal, prec int) (uint64, error) {
	n, err := scaleToUint64(d, prec)
	if err != nil {
		return 0, fmt.Errorf("scaling %v by 10^%v: %w", d, prec, err)
	}
	return n, nil
}

func scaleToUint64(d decimal.Decimal, prec int) (uint64, error) {
	if prec < 0 {
		return 0, ErrPrecision
	}
	if d.IsZero() {
		return 0, nil
	}
	if d.IsNeg() {
		return 0, ErrNegative
	}
	n := new(big.Int).SetUint64(d.Coef())
	shift := prec - d.Scale()
	switch {
	case shift >= maxUint64Digits:
		// coef is at least 1, so the product has more than 20 digits
		return 0, ErrOverflow
	case shift >= 0:
		n.Mul(n, pow10(shift))
	default:
		n.Quo(n, pow10(-shift))
	}
	if !n.IsUint64() {
		return 0, ErrOverflow
	}
	return n.Uint64(), nil
}

// DecimalToFr returns floor(d × 10^prec) as an element of the BN254 scalar field.
// See also function [ScaleToUint64].
func DecimalToFr(d decimal.Decimal, prec int) (fr.Element, error) {
	n, err := ScaleToUint64(d, prec)
	if err != nil {
		return fr.Element{}, err
	}
	var e fr.Element
	e.SetUint64(n)
	return e, nil
}
