package msgloader

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var (
	// ErrBackpressure is returned when the consumer does not accept a message
	// within the configured send timeout.
	ErrBackpressure = errors.New("consumer did not accept message in time")
	// ErrBrokerUnsupported is returned when loading from a message broker.
	ErrBrokerUnsupported = errors.New("message broker transport not supported")
)

// ParseFunc converts one line of input into a message. The line is only
// valid for the duration of the call.
type ParseFunc[T any] func(line []byte) (T, error)

// Loader reads line-delimited messages from a source and forwards them to a
// consumer channel. It is the single producer for that channel, but it never
// closes it: the goroutine that runs the loader does so once it returns.
type Loader[T any] struct {
	log   zerolog.Logger
	parse ParseFunc[T]
	cfg   Config
}

// New creates a loader that parses lines with the given function.
func New[T any](log zerolog.Logger, parse ParseFunc[T], options ...Option) *Loader[T] {

	cfg := DefaultConfig
	for _, option := range options {
		option(&cfg)
	}

	l := Loader[T]{
		log:   log.With().Str("component", "msgloader").Logger(),
		parse: parse,
		cfg:   cfg,
	}

	return &l
}

// LoadFile loads all messages from the file at the given path.
func (l *Loader[T]) LoadFile(ctx context.Context, path string, out chan<- T) (uint, error) {

	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("could not open message file (path: %s): %w", path, err)
	}
	defer file.Close()

	l.log.Info().Str("path", path).Msg("loading messages from file")

	return l.Load(ctx, file, out)
}

// LoadBroker is the extension point for loading messages from a message
// broker. No broker transport exists yet.
func (l *Loader[T]) LoadBroker(_ context.Context, broker string, _ chan<- T) (uint, error) {
	return 0, fmt.Errorf("could not load from broker (broker: %s): %w", broker, ErrBrokerUnsupported)
}

// Load parses every non-blank line of the reader and sends the resulting
// messages to out, in order. It returns the number of messages sent.
//
// Load stops on the first line that cannot be parsed, unless the loader was
// configured to skip invalid lines. It also stops with ErrBackpressure when
// the consumer does not take a message within the send timeout, and with the
// context error when the context is canceled.
func (l *Loader[T]) Load(ctx context.Context, r io.Reader, out chan<- T) (uint, error) {

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, min(bufio.MaxScanTokenSize, l.cfg.MaxLineSize)), l.cfg.MaxLineSize)

	sent := uint(0)
	number := 0
	for scanner.Scan() {
		number++

		err := ctx.Err()
		if err != nil {
			return sent, err
		}

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		msg, err := l.parse(line)
		if err != nil && l.cfg.SkipInvalid {
			l.log.Warn().Int("line", number).Err(err).Msg("skipping invalid message")
			continue
		}
		if err != nil {
			return sent, fmt.Errorf("could not parse message (line: %d): %w", number, err)
		}

		err = l.send(ctx, msg, out)
		if err != nil {
			return sent, fmt.Errorf("could not forward message (line: %d): %w", number, err)
		}
		sent++
	}

	err := scanner.Err()
	if err != nil {
		return sent, fmt.Errorf("could not read messages (line: %d): %w", number+1, err)
	}

	l.log.Debug().Int("lines", number).Uint("messages", sent).Msg("message source exhausted")

	return sent, nil
}

func (l *Loader[T]) send(ctx context.Context, msg T, out chan<- T) error {

	select {
	case out <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if l.cfg.SendTimeout <= 0 {
		return ErrBackpressure
	}

	l.log.Debug().Dur("timeout", l.cfg.SendTimeout).Msg("consumer busy, waiting")

	timer := time.NewTimer(l.cfg.SendTimeout)
	defer timer.Stop()

	select {
	case out <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return ErrBackpressure
	}
}
