package msgloader

import (
	"time"
)

// DefaultConfig is the default configuration for a message loader.
var DefaultConfig = Config{
	SendTimeout: 5 * time.Second,
	MaxLineSize: 1 << 20,
	SkipInvalid: false,
}

// Config is the configuration for a message loader.
type Config struct {
	// SendTimeout bounds how long the loader waits for the consumer to
	// accept a message. Zero means the send must succeed immediately.
	SendTimeout time.Duration
	MaxLineSize int
	SkipInvalid bool
}

// Option is a function that can be applied to a Config.
type Option func(*Config)

// WithSendTimeout sets how long the loader waits on a full channel before
// giving up with ErrBackpressure.
func WithSendTimeout(timeout time.Duration) Option {
	return func(cfg *Config) {
		cfg.SendTimeout = timeout
	}
}

// WithMaxLineSize sets the size of the longest line the loader accepts.
func WithMaxLineSize(size int) Option {
	return func(cfg *Config) {
		cfg.MaxLineSize = size
	}
}

// WithSkipInvalid makes the loader log and skip lines it cannot parse,
// instead of stopping on the first one.
func WithSkipInvalid(skip bool) Option {
	return func(cfg *Config) {
		cfg.SkipInvalid = skip
	}
}
