package uuidv7

import (
	"errors"
	"log/slog"
	"time"

	"github.com/kyuff/uuidv7/internal/logger"
)

type Config struct {
	logger Logger
	clock  func() time.Time
	rand   RandomSource
}

func (c *Config) validate() error {
	if c.logger == nil {
		return errors.New("missing logger")
	}

	if c.clock == nil {
		return errors.New("missing clock")
	}

	return nil
}

type Option func(cfg *Config)

func defaultOptions() *Config {
	return applyOptions(&Config{},
		// add default options here
		WithNoopLogger(),
		WithWallClock(),
	)
}

func applyOptions(options *Config, opts ...Option) *Config {
	for _, opt := range opts {
		opt(options)
	}

	return options
}

func WithLogger(logger Logger) Option {
	return func(opt *Config) {
		opt.logger = logger
	}
}
func WithNoopLogger() Option {
	return WithLogger(logger.Noop{})
}

func WithDefaultSlog() Option {
	return WithSlog(slog.Default())
}

func WithSlog(log *slog.Logger) Option {
	return WithLogger(
		logger.NewSlog(log),
	)
}

// WithClock uses the provided function as the wall-clock source.
// Mostly useful for tests; identifiers only order correctly when the
// clock reports real milliseconds since the Unix epoch.
func WithClock(clock func() time.Time) Option {
	return func(cfg *Config) {
		cfg.clock = clock
	}
}

func WithWallClock() Option {
	return WithClock(time.Now)
}

// WithRandomSource installs src as the initial randomness provider.
// Equivalent to calling SetRandomSource after New.
func WithRandomSource(src RandomSource) Option {
	return func(cfg *Config) {
		cfg.rand = src
	}
}
