package ruleset

import "errors"

var (
	// ErrInvalidDocument is returned when the input is not a rule document.
	ErrInvalidDocument = errors.New("ruleset: invalid document")

	// ErrInvalidRules is returned when the rules section is malformed.
	ErrInvalidRules = errors.New("ruleset: invalid rules")

	// ErrInvalidMessages is returned when the messages section is malformed.
	ErrInvalidMessages = errors.New("ruleset: invalid messages")
)
