package fixnum

import (
	"database/sql/driver"
	"encoding/binary"
	"fmt"
)

// EncodedLen is the size of a binary amount record.
const EncodedLen = 5

// Encode returns the binary record of the amount: one byte of exponent
// followed by the significand as a big-endian 32-bit unsigned integer.
// The result is always [EncodedLen] bytes long.
// See also constructor [Decode].
func (a Amount) Encode() []byte {
	return a.appendRecord(make([]byte, 0, EncodedLen))
}

func (a Amount) appendRecord(data []byte) []byte {
	data = append(data, a.exp)
	return binary.BigEndian.AppendUint32(data, a.sig)
}

// Decode reads an amount from the first [EncodedLen] bytes of data.
// Any bytes after them are ignored, so records packed back to back can be
// decoded by advancing data in steps of [EncodedLen].
// See also method [Amount.Encode].
//
// Decode returns an error if:
//   - data is shorter than [EncodedLen];
//   - the record is not canonical, i.e. the significand is divisible by 10
//     or zero is stored with a non-zero exponent.
//
// A producer that writes the same value in another form, such as 10e0
// (000000000a) instead of 1e1 (0100000001) or zero as 0a00000000, is refused.
func Decode(data []byte) (Amount, error) {
	if len(data) < EncodedLen {
		return Amount{}, fmt.Errorf("%w: need %v bytes, got %v", ErrDecode, EncodedLen, len(data))
	}
	exp := data[0]
	sig := binary.BigEndian.Uint32(data[1:EncodedLen])
	if sig == 0 && exp != 0 || sig != 0 && sig%10 == 0 {
		return Amount{}, fmt.Errorf("%w: non-canonical record %ve%v", ErrDecode, sig, exp)
	}
	return newAmountUnsafe(sig, exp), nil
}

// UnmarshalBinary implements the [encoding.BinaryUnmarshaler] interface.
// Unlike [Decode], it requires data to be exactly [EncodedLen] bytes long.
//
// [encoding.BinaryUnmarshaler]: https://pkg.go.dev/encoding#BinaryUnmarshaler
func (a *Amount) UnmarshalBinary(data []byte) error {
	if len(data) != EncodedLen {
		return fmt.Errorf("unmarshaling %T: %w: need %v bytes, got %v", Amount{}, ErrDecode, EncodedLen, len(data))
	}
	var err error
	*a, err = Decode(data)
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Amount{}, err)
	}
	return nil
}

// AppendBinary implements the [encoding.BinaryAppender] interface.
// See also method [Amount.Encode].
//
// [encoding.BinaryAppender]: https://pkg.go.dev/encoding#BinaryAppender
func (a Amount) AppendBinary(data []byte) ([]byte, error) {
	return a.appendRecord(data), nil
}

// MarshalBinary implements the [encoding.BinaryMarshaler] interface.
// See also method [Amount.Encode].
//
// [encoding.BinaryMarshaler]: https://pkg.go.dev/encoding#BinaryMarshaler
func (a Amount) MarshalBinary() ([]byte, error) {
	return a.Encode(), nil
}

// Scan implements the [sql.Scanner] interface.
// The column must hold the binary record produced by [Amount.Value].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (a *Amount) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case []byte:
		err = a.UnmarshalBinary(value)
	case nil:
		err = fmt.Errorf("%T does not support null values", Amount{})
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, Amount{}, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
// The amount is stored as its binary record.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (a Amount) Value() (driver.Value, error) {
	return a.Encode(), nil
}
