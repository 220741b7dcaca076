package logger

import "errors"

var (
	// ErrInvalidFormat is returned for a log format other than json or text.
	ErrInvalidFormat = errors.New("logger: invalid log format")

	// ErrSentryClient is returned when the Sentry client cannot be created.
	ErrSentryClient = errors.New("logger: failed to create sentry client")
)
