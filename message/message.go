package message

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/govalues/decimal"

	"github.com/rollupkit/fixnum"
)

var errInvalidMessage = errors.New("invalid message")

// Message is a balance change submitted to the rollup, one per line of a
// message stream.
type Message struct {
	Kind   Kind            `json:"kind"`
	UserID uint32          `json:"user_id"`
	Token  fixnum.Token    `json:"token"`
	Amount decimal.Decimal `json:"amount"`
}

// Parse decodes a message from one JSON object, for example:
//
//	{"kind":"deposit","user_id":3,"token":"ETH","amount":"0.1"}
//
// Parse returns an error if the object cannot be decoded, if the kind or the
// token is missing, or if the amount is negative.
func Parse(line []byte) (Message, error) {

	var msg Message
	err := json.Unmarshal(line, &msg)
	if err != nil {
		return Message{}, fmt.Errorf("could not decode message: %w", err)
	}

	if msg.Kind == Unknown {
		return Message{}, fmt.Errorf("%w: missing kind", errInvalidMessage)
	}
	if msg.Token == fixnum.XXX {
		return Message{}, fmt.Errorf("%w: missing token", errInvalidMessage)
	}
	if msg.Amount.IsNeg() {
		return Message{}, fmt.Errorf("%w: negative amount %v", errInvalidMessage, msg.Amount)
	}

	return msg, nil
}

// Fixed returns the amount of the message normalized at the precision of its
// token.
func (m Message) Fixed() (fixnum.Amount, error) {
	return m.Token.Amount(m.Amount)
}
