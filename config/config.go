// Package config provides configuration settings for the slug generator.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go-alphabet/alphabet"
)

// ErrBatchExceedsBurst is returned when rate limiting is on and a single
// batch could never fit in the limiter's burst.
var ErrBatchExceedsBurst = errors.New("max batch exceeds rate limit burst")

// Config holds the configuration settings for slug generation.
type Config struct {
	// Charset is the ordered set of characters slugs are written in.
	Charset string `validate:"required"`
	// Restriction, when set, is the set Charset must be a subset of.
	Restriction string
	// Start is the index of the first slug handed out.
	Start int64 `validate:"gte=0"`
	// MaxBatch caps the number of slugs produced by a single call.
	MaxBatch int `validate:"gt=0"`

	// RateLimit is the burst of slugs that may be issued at once; one more
	// becomes available every RatePeriod.
	RateLimit        int           `validate:"gt=0"`
	RatePeriod       time.Duration `validate:"gt=0"`
	DisableRateLimit bool
}

// DefaultConfig returns the default configuration settings.
func DefaultConfig() *Config {
	return &Config{
		Charset:          alphabet.Base62,
		Restriction:      alphabet.URLUnreservedRFC3986,
		Start:            0,
		MaxBatch:         100,
		RateLimit:        1000,
		RatePeriod:       time.Millisecond,
		DisableRateLimit: false,
	}
}

var validate = validator.New()

// Validate checks the field constraints. The charset itself is checked by
// Alphabet.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if !c.DisableRateLimit && c.MaxBatch > c.RateLimit {
		return fmt.Errorf("invalid config: %w: %d > %d", ErrBatchExceedsBurst, c.MaxBatch, c.RateLimit)
	}
	return nil
}

// Alphabet builds the charset alphabet and verifies it against the
// restriction alphabet, if any.
func (c *Config) Alphabet() (alphabet.Alphabet, error) {
	charset, err := alphabet.From(c.Charset)
	if err != nil {
		return alphabet.Alphabet{}, fmt.Errorf("charset: %w", err)
	}
	if c.Restriction == "" {
		return charset, nil
	}
	restriction, err := alphabet.From(c.Restriction)
	if err != nil {
		return alphabet.Alphabet{}, fmt.Errorf("restriction: %w", err)
	}
	if err := charset.Verify(&restriction); err != nil {
		return alphabet.Alphabet{}, fmt.Errorf("charset: %w", err)
	}
	return charset, nil
}
