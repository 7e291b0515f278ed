// Package urlgen hands out short URL slugs in sequence from an alphabet.
package urlgen

import (
	"errors"
	"fmt"
	"math"
	"time"

	"go-alphabet/alphabet"
	"go-alphabet/config"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Common errors returned by Generator.
var (
	ErrInvalidBatchSize = errors.New("invalid batch size")
	ErrExhausted        = errors.New("slug space exhausted")
	ErrRateLimited      = errors.New("rate limit exceeded")
)

// Generator produces slugs for consecutive indices. Two generators with the
// same configuration produce the same slugs.
//
// A Generator is not safe for concurrent use.
type Generator struct {
	alphabet alphabet.Alphabet
	next     int64
	maxBatch int
	done     bool
	limiter  *rate.Limiter // nil when rate limiting is disabled
	logger   *zap.Logger
}

// New creates a Generator from cfg. The charset is checked against the
// configured restriction before any slug is produced.
func New(cfg *config.Config, logger *zap.Logger) (*Generator, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if logger == nil {
		var err error
		logger, err = zap.NewProduction()
		if err != nil {
			panic("Failed to initialize zap logger: " + err.Error())
		}
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("Rejected generator config", zap.Error(err))
		return nil, err
	}
	a, err := cfg.Alphabet()
	if err != nil {
		logger.Error("Rejected generator config", zap.Error(err))
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	g := &Generator{
		alphabet: a,
		next:     cfg.Start,
		maxBatch: cfg.MaxBatch,
		logger:   logger,
	}
	if !cfg.DisableRateLimit {
		g.limiter = rate.NewLimiter(rate.Every(cfg.RatePeriod), cfg.RateLimit)
	}

	logger.Info("Slug generator created",
		zap.String("charset", a.String()),
		zap.Int("base", a.Len()),
		zap.Int64("start", cfg.Start),
		zap.Bool("rateLimited", g.limiter != nil))
	return g, nil
}

// Position returns the index of the next slug to be handed out. Once the
// generator is exhausted it keeps the index the final batch started at.
func (g *Generator) Position() int64 { return g.next }

// Exhausted reports whether the slug for the largest index has been issued.
func (g *Generator) Exhausted() bool { return g.done }

// Alphabet returns the alphabet slugs are written in.
func (g *Generator) Alphabet() alphabet.Alphabet { return g.alphabet }

// Next returns the slug at the current position and advances by one.
func (g *Generator) Next() (string, error) {
	slugs, err := g.Batch(1)
	if err != nil {
		return "", err
	}
	return slugs[0], nil
}

// Batch returns the next n slugs in order. The position only advances when
// the whole batch is produced.
func (g *Generator) Batch(n int) ([]string, error) {
	if g.done {
		return nil, ErrExhausted
	}
	if n <= 0 || n > g.maxBatch {
		return nil, fmt.Errorf("%w: %d (allowed 1..%d)", ErrInvalidBatchSize, n, g.maxBatch)
	}

	slugs, err := g.alphabet.Generate(g.next, int64(n))
	if err != nil {
		g.logger.Error("Slug generation failed",
			zap.Int64("position", g.next),
			zap.Int("count", n),
			zap.Error(err))
		return nil, err
	}
	if g.limiter != nil && !g.limiter.AllowN(time.Now(), n) {
		g.logger.Warn("Rate limit exceeded",
			zap.Int64("position", g.next),
			zap.Int("count", n))
		return nil, ErrRateLimited
	}

	g.logger.Debug("Slugs generated",
		zap.Int64("position", g.next),
		zap.Int("count", n),
		zap.String("first", slugs[0]),
		zap.String("last", slugs[len(slugs)-1]))
	if int64(n) > math.MaxInt64-g.next {
		g.done = true
		g.logger.Warn("Slug space exhausted", zap.Int64("position", g.next))
		return slugs, nil
	}
	g.next += int64(n)
	return slugs, nil
}
