package message

import (
	"fmt"
	"strings"
)

// Kind is the type of balance change carried by a message.
type Kind uint8

// Supported message kinds.
const (
	Unknown Kind = iota
	Deposit
	Withdraw
	Transfer
)

var kindNames = [...]string{
	Unknown:  "unknown",
	Deposit:  "deposit",
	Withdraw: "withdraw",
	Transfer: "transfer",
}

// ParseKind converts a case-insensitive name to a message kind.
func ParseKind(name string) (Kind, error) {
	lower := strings.ToLower(name)
	for k, n := range kindNames {
		if k != int(Unknown) && n == lower {
			return Kind(k), nil
		}
	}
	return Unknown, fmt.Errorf("%w: unknown kind %q", errInvalidMessage, name)
}

func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		return kindNames[Unknown]
	}
	return kindNames[k]
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (k *Kind) UnmarshalText(text []byte) error {
	var err error
	*k, err = ParseKind(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Unknown, err)
	}
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
