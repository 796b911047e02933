package fixnum

import (
	"errors"
	"fmt"
	"strings"

	"github.com/govalues/decimal"
)

// Token type represents an asset traded on the rollup.
// The zero value is [XXX], which indicates an unknown token.
//
// Token is implemented as an integer index into an in-memory table that
// stores the symbol and the precision of each asset.
// When persisting a token, use the symbol returned by [Token.Symbol],
// rather than the integer index, as the mapping between index and
// a particular token may change in future versions.
type Token uint8

// Tokens known to the rollup.
const (
	XXX Token = iota
	ETH
	WBTC
	USDT
	USDC
	DAI
)

var errInvalidToken = errors.New("invalid token")

var symbolLookup = [...]string{
	XXX:  "XXX",
	ETH:  "ETH",
	WBTC: "WBTC",
	USDT: "USDT",
	USDC: "USDC",
	DAI:  "DAI",
}

var precLookup = [...]uint8{
	XXX:  0,
	ETH:  18,
	WBTC: 8,
	USDT: 6,
	USDC: 6,
	DAI:  18,
}

var tokenLookup = func() map[string]Token {
	m := make(map[string]Token, len(symbolLookup))
	for t, sym := range symbolLookup {
		m[sym] = Token(t)
	}
	return m
}()

// ParseToken converts a symbol to a token.
// The symbol is case-insensitive:
//
//	ETH
//	eth
//
// ParseToken returns an error if the symbol does not represent a known token.
func ParseToken(sym string) (Token, error) {
	t, ok := tokenLookup[strings.ToUpper(sym)]
	if !ok {
		return XXX, fmt.Errorf("%w %q", errInvalidToken, sym)
	}
	return t, nil
}

// MustParseToken is like [ParseToken] but panics if the symbol cannot be parsed.
// It simplifies safe initialization of global variables holding tokens.
func MustParseToken(sym string) Token {
	t, err := ParseToken(sym)
	if err != nil {
		panic(fmt.Sprintf("ParseToken(%q) failed: %v", sym, err))
	}
	return t
}

// Symbol returns the ticker symbol of the token.
// This method always returns a valid symbol.
func (t Token) Symbol() string {
	if int(t) >= len(symbolLookup) {
		return symbolLookup[XXX]
	}
	return symbolLookup[t]
}

// Prec returns the number of decimal places of the token's base unit,
// for example 18 for ETH, whose atomic unit is 10^-18 ETH.
func (t Token) Prec() int {
	if int(t) >= len(precLookup) {
		return 0
	}
	return int(precLookup[t])
}

// String method implements the [fmt.Stringer] interface and returns
// the symbol of the token.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (t Token) String() string {
	return t.Symbol()
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// See also constructor [ParseToken].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (t *Token) UnmarshalText(text []byte) error {
	var err error
	*t, err = ParseToken(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", XXX, err)
	}
	return nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
// MarshalText always returns a valid symbol.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (t Token) MarshalText() ([]byte, error) {
	return []byte(t.Symbol()), nil
}

// Amount converts a decimal to an amount at the precision of the token.
// See also constructor [NewAmountFromDecimal].
func (t Token) Amount(d decimal.Decimal) (Amount, error) {
	a, err := NewAmountFromDecimal(d, t.Prec())
	if err != nil {
		return Amount{}, fmt.Errorf("%v: %w", t, err)
	}
	return a, nil
}

// Decimal converts an amount to a decimal at the precision of the token.
// See also method [Amount.Decimal].
func (t Token) Decimal(a Amount) (decimal.Decimal, error) {
	d, err := a.Decimal(t.Prec())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%v: %w", t, err)
	}
	return d, nil
}

// ParseTokenAmount converts token symbol and decimal strings to a token and
// an amount at the precision of that token.
// See also constructors [ParseToken] and [ParseAmount].
func ParseTokenAmount(sym, amount string) (Token, Amount, error) {
	t, err := ParseToken(sym)
	if err != nil {
		return XXX, Amount{}, fmt.Errorf("parsing token: %w", err)
	}
	a, err := ParseAmount(amount, t.Prec())
	if err != nil {
		return XXX, Amount{}, fmt.Errorf("%v: %w", t, err)
	}
	return t, a, nil
}
