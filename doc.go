/*
Package fixnum implements a canonical fixed-point representation for monetary
amounts on a rollup.
It bridges three forms of the same value: a [decimal.Decimal] as shown to
users, a 5-byte binary record as stored and transmitted, and an element of
the BN254 scalar field as consumed by a proving circuit.

# Representation

An [Amount] holds a 32-bit significand and an 8-bit exponent and stands for
significand × 10^exponent atomic units.
The size of an atomic unit is set by a precision, the number of decimal places
of the base unit: with precision 18, the amount 1 × 10^17 is 0.1.
The precision is not part of the amount; it travels out-of-band, usually as
the [Token.Prec] of the asset.

Amounts are always canonical: the significand is never divisible by 10 and
zero has a zero exponent.
Two amounts with the same value therefore have identical binary records,
which makes the records suitable for hashing and content addressing.

# Binary Format

The binary record is [EncodedLen] bytes long:

	| Offset | Size | Field                    |
	| ------ | ---- | ------------------------ |
	| 0      | 1    | exponent                 |
	| 1      | 4    | significand, big-endian  |

There is no length prefix and no version byte.

# Conversions

  - [NewAmountFromDecimal] normalizes a decimal at a given precision.
  - [Amount.Encode] and [Decode] convert to and from the binary record.
  - [Amount.Decimal] converts back to a decimal at a given precision.
  - [Amount.BigInt] and [Amount.Fr] return the amount in atomic units, without
    dividing by the precision.
  - [ScaleToUint64] and [DecimalToFr] scale a decimal to a flat integer,
    discarding digits beyond the precision.

No conversion uses binary floating-point arithmetic.

# Errors

Conversions never round. A value that cannot be represented exactly yields
[ErrPrecision], a value that does not fit yields [ErrOverflow], a negative
value yields [ErrNegative], and a short or non-canonical record yields
[ErrDecode]. The errors are wrapped with context and can be matched with
[errors.Is].
*/
package fixnum
