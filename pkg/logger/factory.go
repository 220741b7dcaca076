package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/getsentry/sentry-go"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"
)

// Format represents logger output format.
type Format string

const (
	// FormatJSON outputs structured logs for log aggregation systems.
	FormatJSON Format = "json"
	// FormatText outputs human-readable logs.
	FormatText Format = "text"
)

// Option configures logger creation.
type Option func(*config)

func WithLevel(l slog.Level) Option {
	return func(c *config) { c.level = l }
}

// WithFormat sets output format. An invalid format makes Build fail and New panic.
func WithFormat(f Format) Option {
	return func(c *config) {
		switch f {
		case FormatJSON, FormatText:
			c.format = f
		default:
			c.err = errors.Join(c.err, fmt.Errorf("%w %q: must be %q or %q", ErrInvalidFormat, f, FormatJSON, FormatText))
		}
	}
}

// ParseFormat maps a format name to Format, ignoring case and surrounding spaces.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatJSON, FormatText:
		return f, nil
	}
	return "", fmt.Errorf("%w %q: must be %q or %q", ErrInvalidFormat, s, FormatJSON, FormatText)
}

func WithTextFormatter() Option {
	return func(c *config) { c.format = FormatText }
}

func WithJSONFormatter() Option {
	return func(c *config) { c.format = FormatJSON }
}

// WithOutput sets custom output destination, ignoring nil writers.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithAttr adds static attributes to every log record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) {
		if len(attrs) > 0 {
			c.attrs = append(c.attrs, attrs...)
		}
	}
}

// WithContextExtractors registers functions that inject dynamic attributes from context.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(c *config) {
		for _, ex := range extractors {
			if ex != nil {
				c.extractors = append(c.extractors, ex)
			}
		}
	}
}

// WithContextValue adds an extractor logging ctx.Value(key) under name.
func WithContextValue(name string, key any) Option {
	return func(c *config) {
		if name == "" || key == nil {
			return
		}
		c.extractors = append(c.extractors, func(ctx context.Context) (slog.Attr, bool) {
			if v := ctx.Value(key); v != nil {
				return slog.Any(name, v), true
			}
			return slog.Attr{}, false
		})
	}
}

// WithHandlers fans records out to additional handlers next to the primary one.
func WithHandlers(handlers ...slog.Handler) Option {
	return func(c *config) {
		for _, h := range handlers {
			if h != nil {
				c.handlers = append(c.handlers, h)
			}
		}
	}
}

// WithSentry forwards records at or above level to Sentry through a client
// and hub owned by the built logger. An empty DSN leaves Sentry disabled.
func WithSentry(opts sentry.ClientOptions, level slog.Level) Option {
	return func(c *config) {
		if opts.Dsn == "" {
			return
		}
		c.sentry = &opts
		c.sentryLevel = level
	}
}

// ParseLevel maps a level name to slog.Level, falling back to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}

type config struct {
	level       slog.Level
	format      Format
	output      io.Writer
	attrs       []slog.Attr
	extractors  []ContextExtractor
	handlers    []slog.Handler
	sentry      *sentry.ClientOptions
	sentryLevel slog.Level
	err         error
}

func defaultConfig() *config {
	return &config{
		level:       slog.LevelInfo,
		format:      FormatJSON,
		output:      os.Stdout,
		sentryLevel: slog.LevelError,
	}
}

// New creates a configured slog.Logger.
// Panics on an invalid option or a Sentry client that cannot be created.
func New(opts ...Option) *slog.Logger {
	log, err := Build(opts...)
	if err != nil {
		panic(err)
	}
	return log
}

// Build creates a configured slog.Logger, reporting configuration problems as errors.
func Build(opts ...Option) (*slog.Logger, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	handlerOpts := &slog.HandlerOptions{Level: cfg.level}

	var handler slog.Handler
	if cfg.format == FormatText {
		handler = slog.NewTextHandler(cfg.output, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(cfg.output, handlerOpts)
	}

	handlers := append([]slog.Handler{handler}, cfg.handlers...)

	if cfg.sentry != nil {
		client, err := sentry.NewClient(*cfg.sentry)
		if err != nil {
			return nil, errors.Join(ErrSentryClient, err)
		}
		handlers = append(handlers, slogsentry.Option{
			Level:     cfg.sentryLevel,
			Hub:       sentry.NewHub(client, sentry.NewScope()),
			AddSource: true,
		}.NewSentryHandler())
	}

	if len(handlers) > 1 {
		handler = slogmulti.Fanout(handlers...)
	}

	if len(cfg.attrs) > 0 {
		handler = handler.WithAttrs(cfg.attrs)
	}

	if len(cfg.extractors) > 0 {
		handler = NewLogHandlerDecorator(handler, cfg.extractors...)
	}

	return slog.New(handler), nil
}
