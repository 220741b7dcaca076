package validator

import (
	"errors"
	"log/slog"

	"github.com/getsentry/sentry-go"

	"github.com/dmitrymomot/formrules/pkg/config"
	"github.com/dmitrymomot/formrules/pkg/logger"
)

// Config holds the environment-driven settings of a Validator.
type Config struct {
	// LogLevel of the fault logger: debug, info, warn or error.
	LogLevel string `env:"VALIDATOR_LOG_LEVEL" envDefault:"info"`

	// LogFormat of the fault logger: json or text.
	LogFormat string `env:"VALIDATOR_LOG_FORMAT" envDefault:"json"`

	// OverridableFutureMessage lets custom messages replace the future rule message.
	OverridableFutureMessage bool `env:"VALIDATOR_FUTURE_MESSAGE_OVERRIDABLE" envDefault:"false"`

	// SentryDSN enables fault reporting to Sentry when set.
	SentryDSN         string `env:"VALIDATOR_SENTRY_DSN"`
	SentryEnvironment string `env:"VALIDATOR_SENTRY_ENVIRONMENT" envDefault:"development"`
}

// FromConfig creates a Validator whose fault logger follows cfg.
// Options are applied after the configuration and may override it.
// The log format is matched case-insensitively; empty means json.
func FromConfig(cfg Config, opts ...Option) (*Validator, error) {
	format := logger.FormatJSON
	if cfg.LogFormat != "" {
		f, err := logger.ParseFormat(cfg.LogFormat)
		if err != nil {
			return nil, errors.Join(ErrInvalidConfig, err)
		}
		format = f
	}

	log, err := logger.Build(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithFormat(format),
		logger.WithSentry(sentry.ClientOptions{
			Dsn:         cfg.SentryDSN,
			Environment: cfg.SentryEnvironment,
		}, slog.LevelError),
	)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	base := []Option{
		WithLogger(log),
		WithOverridableFutureMessage(cfg.OverridableFutureMessage),
	}
	return New(append(base, opts...)...), nil
}

// NewFromConfig is FromConfig for startup code.
// Panics on an invalid log format or a Sentry DSN that cannot be used.
func NewFromConfig(cfg Config, opts ...Option) *Validator {
	v, err := FromConfig(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return v
}

// NewFromEnv loads Config from the environment and calls FromConfig.
func NewFromEnv(opts ...Option) (*Validator, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	return FromConfig(cfg, opts...)
}
