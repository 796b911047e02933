package main

import (
	"bufio"
	"context"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/rollupkit/fixnum/message"
	"github.com/rollupkit/fixnum/msgloader"
)

const (
	success = 0
	failure = 1
)

func main() {
	os.Exit(run())
}

func run() int {

	// Command line parameter initialization.
	var (
		flagBuffer  uint
		flagInput   string
		flagLevel   string
		flagOutput  string
		flagSkip    bool
		flagTimeout time.Duration
	)

	pflag.UintVarP(&flagBuffer, "buffer", "b", 64, "number of parsed messages buffered between loader and encoder")
	pflag.StringVarP(&flagInput, "input", "i", "", "path to the line-delimited JSON message file")
	pflag.StringVarP(&flagLevel, "level", "l", "info", "log level for JSON logger output")
	pflag.StringVarP(&flagOutput, "output", "o", "-", "path for the binary amount records, or - to discard them")
	pflag.BoolVar(&flagSkip, "skip-invalid", false, "skip lines that cannot be parsed instead of failing")
	pflag.DurationVarP(&flagTimeout, "timeout", "t", msgloader.DefaultConfig.SendTimeout, "maximum time to wait for the encoder to accept a message")

	pflag.Parse()

	// Logger initialization.
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	log := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	level, err := zerolog.ParseLevel(flagLevel)
	if err != nil {
		log.Error().Str("level", flagLevel).Err(err).Msg("could not parse log level")
		return failure
	}
	log = log.Level(level)

	if flagInput == "" {
		log.Error().Msg("input file is required")
		return failure
	}

	// Open the output for the binary records, if requested.
	var output io.Writer = io.Discard
	var file *os.File
	var buffered *bufio.Writer
	if flagOutput != "-" {
		file, err = os.Create(flagOutput)
		if err != nil {
			log.Error().Str("output", flagOutput).Err(err).Msg("could not create output file")
			return failure
		}
		defer file.Close()
		buffered = bufio.NewWriter(file)
		output = buffered
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// The loading goroutine owns the channel and closes it once LoadFile
	// returns, which in turn ends the encoder loop.
	load := msgloader.New(log, message.Parse,
		msgloader.WithSendTimeout(flagTimeout),
		msgloader.WithSkipInvalid(flagSkip),
	)
	messages := make(chan message.Message, flagBuffer)

	var loaded, encoded uint
	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		defer close(messages)
		var err error
		loaded, err = load.LoadFile(ctx, flagInput, messages)
		return err
	})
	group.Go(func() error {
		var err error
		encoded, err = encodeMessages(log, messages, output)
		return err
	})

	err = group.Wait()
	if err != nil {
		log.Error().Err(err).Uint("loaded", loaded).Uint("encoded", encoded).Msg("could not encode messages")
		return failure
	}

	if file != nil {
		err = closeOutput(buffered, file)
		if err != nil {
			log.Error().Str("output", flagOutput).Err(err).Msg("could not write output file")
			return failure
		}
	}

	log.Info().Uint("loaded", loaded).Uint("encoded", encoded).Msg("all messages encoded")

	return success
}
