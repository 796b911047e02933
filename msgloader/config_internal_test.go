package msgloader

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNew_Options(t *testing.T) {

	t.Run("default config", func(t *testing.T) {
		l := New(zerolog.Nop(), func([]byte) (string, error) { return "", nil })

		assert.Equal(t, DefaultConfig, l.cfg)
	})

	t.Run("options override defaults", func(t *testing.T) {
		l := New(zerolog.Nop(), func([]byte) (string, error) { return "", nil },
			WithSendTimeout(time.Millisecond),
			WithMaxLineSize(128),
			WithSkipInvalid(true),
		)

		assert.Equal(t, time.Millisecond, l.cfg.SendTimeout)
		assert.Equal(t, 128, l.cfg.MaxLineSize)
		assert.True(t, l.cfg.SkipInvalid)
	})
}
