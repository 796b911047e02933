package fixnum

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/govalues/decimal"
)

var (
	// ErrPrecision is returned when a decimal cannot be represented exactly
	// as an integer number of atomic units at the requested precision.
	ErrPrecision = errors.New("precision cannot represent value exactly")
	// ErrOverflow is returned when a value does not fit the target width.
	ErrOverflow = errors.New("amount overflow")
	// ErrNegative is returned for negative values, which have no unsigned
	// representation.
	ErrNegative = errors.New("negative amount")
	// ErrDecode is returned when a binary record is truncated or not canonical.
	ErrDecode = errors.New("invalid amount encoding")
)

const (
	// MaxExponent is the largest power of ten an amount can carry.
	MaxExponent = math.MaxUint8
	// MaxSignificand is the largest significand an amount can carry.
	MaxSignificand = math.MaxUint32
)

// Amount type represents a non-negative monetary amount as significand × 10^exponent
// atomic units, where the size of an atomic unit is given by an external
// precision (the number of decimal places of the base unit, e.g. 18 for ETH).
// The decimal value of an amount is significand × 10^(exponent - precision).
//
// Amount is always kept in canonical form: the significand is never divisible
// by 10, and zero is stored with a zero exponent. Each value therefore has
// exactly one representation, so amounts can be compared with == and their
// encodings can be hashed.
//
// Its zero value corresponds to 0.
// Amount is designed to be safe for concurrent use by multiple goroutines.
type Amount struct {
	exp uint8  // power of ten
	sig uint32 // significand
}

// newAmountUnsafe creates a new amount without canonicalization.
// Use it only if you are absolutely sure that the arguments are canonical.
func newAmountUnsafe(sig uint32, exp uint8) Amount {
	return Amount{exp: exp, sig: sig}
}

// NewAmount returns an amount equal to sig × 10^exp atomic units.
// Trailing zeros of the significand are moved into the exponent.
//
// NewAmount returns an error if the exponent of the canonical form
// is greater than [MaxExponent].
func NewAmount(sig uint32, exp uint8) (Amount, error) {
	if sig == 0 {
		return Amount{}, nil
	}
	s, e := sig, int(exp)
	for s%10 == 0 {
		s /= 10
		e++
	}
	if e > MaxExponent {
		return Amount{}, fmt.Errorf("canonicalizing %ve%v: %w", sig, exp, ErrOverflow)
	}
	return newAmountUnsafe(s, uint8(e)), nil
}

// MustNewAmount is like [NewAmount] but panics if the amount cannot be constructed.
// It simplifies safe initialization of global variables holding amounts.
func MustNewAmount(sig uint32, exp uint8) Amount {
	a, err := NewAmount(sig, exp)
	if err != nil {
		panic(fmt.Sprintf("NewAmount(%v, %v) failed: %v", sig, exp, err))
	}
	return a
}

// NewAmountFromDecimal converts a decimal to an amount at the given precision.
// For example, 0.1 at precision 18 is 1 × 10^17 atomic units.
// No rounding takes place: the conversion either is exact or fails.
// See also method [Amount.Decimal].
//
// NewAmountFromDecimal returns an error if:
//   - the precision is negative;
//   - the decimal is negative;
//   - decimal × 10^prec is not an integer;
//   - the canonical significand is greater than [MaxSignificand];
//   - the canonical exponent is greater than [MaxExponent].
func NewAmountFromDecimal(d decimal.Decimal, prec int) (Amount, error) {
	a, err := newAmountFromDecimal(d, prec)
	if err != nil {
		return Amount{}, fmt.Errorf("converting %v at precision %v: %w", d, prec, err)
	}
	return a, nil
}

func newAmountFromDecimal(d decimal.Decimal, prec int) (Amount, error) {
	if d.IsZero() {
		return Amount{}, nil
	}
	if prec < 0 {
		return Amount{}, ErrPrecision
	}
	if d.IsNeg() {
		return Amount{}, ErrNegative
	}
	// After trimming, d = coef / 10^scale and coef has no trailing zeros
	// unless scale is 0.
	d = d.Trim(0)
	coef, scale := d.Coef(), d.Scale()
	if scale > prec {
		return Amount{}, ErrPrecision
	}
	exp := prec - scale
	for coef%10 == 0 {
		coef /= 10
		exp++
	}
	if exp > MaxExponent {
		return Amount{}, ErrOverflow
	}
	if coef > MaxSignificand {
		return Amount{}, ErrOverflow
	}
	return newAmountUnsafe(uint32(coef), uint8(exp)), nil
}

// ParseAmount converts a decimal string to an amount at the given precision.
// See also constructors [NewAmountFromDecimal] and [decimal.Parse].
func ParseAmount(amount string, prec int) (Amount, error) {
	d, err := decimal.Parse(amount)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount: %w", err)
	}
	return NewAmountFromDecimal(d, prec)
}

// MustParseAmount is like [ParseAmount] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding amounts.
func MustParseAmount(amount string, prec int) Amount {
	a, err := ParseAmount(amount, prec)
	if err != nil {
		panic(fmt.Sprintf("ParseAmount(%q, %v) failed: %v", amount, prec, err))
	}
	return a
}

// Exponent returns the power of ten of the amount.
func (a Amount) Exponent() uint8 {
	return a.exp
}

// Significand returns the significand of the amount.
func (a Amount) Significand() uint32 {
	return a.sig
}

// IsZero returns:
//
//	true  if a = 0
//	false otherwise
func (a Amount) IsZero() bool {
	return a.sig == 0
}

// Decimal returns the decimal value of the amount at the given precision,
// that is significand × 10^exponent / 10^prec.
// The result has no trailing zeros after the decimal point.
// See also constructor [NewAmountFromDecimal].
//
// Decimal returns an error if:
//   - the precision is negative;
//   - the result has more than [decimal.MaxScale] digits after the decimal point;
//   - the result has more than [decimal.MaxPrec] digits.
func (a Amount) Decimal(prec int) (decimal.Decimal, error) {
	d, err := a.decimal(prec)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v at precision %v: %w", a, prec, err)
	}
	return d, nil
}

func (a Amount) decimal(prec int) (decimal.Decimal, error) {
	if prec < 0 {
		return decimal.Decimal{}, ErrPrecision
	}
	if a.IsZero() {
		return decimal.Decimal{}, nil
	}
	shift := int(a.exp) - prec
	if shift < 0 {
		if -shift > decimal.MaxScale {
			return decimal.Decimal{}, ErrOverflow
		}
		return decimal.New(int64(a.sig), -shift)
	}
	if shift >= decimal.MaxPrec {
		return decimal.Decimal{}, ErrOverflow
	}
	d, err := decimal.New(int64(a.sig), 0)
	if err != nil {
		return decimal.Decimal{}, err
	}
	e, err := decimal.New(pow10(shift).Int64(), 0)
	if err != nil {
		return decimal.Decimal{}, err
	}
	d, err = d.Mul(e)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %w", ErrOverflow, err)
	}
	return d, nil
}

// BigInt returns significand × 10^exponent, the amount in atomic units.
// Unlike [Amount.Decimal], the result is not divided by any precision.
func (a Amount) BigInt() *big.Int {
	n := new(big.Int).SetUint64(uint64(a.sig))
	if a.exp == 0 {
		return n
	}
	return n.Mul(n, pow10(int(a.exp)))
}

// Fr returns the amount in atomic units reduced modulo the order of the
// BN254 scalar field, [fr.Modulus].
// Amounts below the modulus map to distinct elements; larger ones, which
// need an exponent of at least 67, wrap around.
// See also method [Amount.FrExact].
func (a Amount) Fr() fr.Element {
	var e fr.Element
	e.SetBigInt(a.BigInt())
	return e
}

// FrExact is like [Amount.Fr] but returns an error instead of reducing
// amounts that are not smaller than the field modulus.
func (a Amount) FrExact() (fr.Element, error) {
	n := a.BigInt()
	if n.Cmp(fr.Modulus()) >= 0 {
		return fr.Element{}, fmt.Errorf("converting %v to field element: %w", a, ErrOverflow)
	}
	var e fr.Element
	e.SetBigInt(n)
	return e, nil
}

// String method implements the [fmt.Stringer] interface and returns
// the amount as significand, letter 'e' and exponent, e.g. "123456e13".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount) String() string {
	buf := make([]byte, 0, 14)
	buf = strconv.AppendUint(buf, uint64(a.sig), 10)
	buf = append(buf, 'e')
	buf = strconv.AppendUint(buf, uint64(a.exp), 10)
	return string(buf)
}
