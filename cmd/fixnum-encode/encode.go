package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/rollupkit/fixnum/message"
)

// encodeMessages normalizes the amount of every message received on in and
// writes its binary record to w, until in is closed.
func encodeMessages(log zerolog.Logger, in <-chan message.Message, w io.Writer) (uint, error) {

	encoded := uint(0)
	for msg := range in {

		amount, err := msg.Fixed()
		if err != nil {
			return encoded, fmt.Errorf("could not normalize amount (user: %d, token: %s): %w", msg.UserID, msg.Token, err)
		}

		record := amount.Encode()
		_, err = w.Write(record)
		if err != nil {
			return encoded, fmt.Errorf("could not write record: %w", err)
		}

		fr := amount.Fr()
		log.Debug().
			Str("kind", msg.Kind.String()).
			Uint32("user", msg.UserID).
			Str("token", msg.Token.Symbol()).
			Str("amount", msg.Amount.String()).
			Hex("record", record).
			Str("fr", fr.Text(16)).
			Msg("amount encoded")

		encoded++
	}

	return encoded, nil
}

// closeOutput flushes the buffered records and closes the output file.
func closeOutput(buffered *bufio.Writer, file io.Closer) error {

	err := buffered.Flush()
	if err != nil {
		return fmt.Errorf("could not flush records: %w", err)
	}

	err = file.Close()
	if err != nil {
		return fmt.Errorf("could not close output: %w", err)
	}

	return nil
}
