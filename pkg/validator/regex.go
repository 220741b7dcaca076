package validator

import "regexp"

// Pre-compiled regular expressions for built-in rules and numeric parsing
var (
	alphaRegex        = regexp.MustCompile(`^[a-zA-Z]+$`)
	alphaNumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	dateRegex         = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	minLettersRegex   = regexp.MustCompile(`^[a-zA-Z]{3,}$`)

	decimalRegex     = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)
	hexRegex         = regexp.MustCompile(`^0[xX][0-9a-fA-F]+$`)
	octalRegex       = regexp.MustCompile(`^0[oO][0-7]+$`)
	binaryRegex      = regexp.MustCompile(`^0[bB][01]+$`)
	floatPrefixRegex = regexp.MustCompile(`^[+-]?(Infinity|(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?)`)
	intPrefixRegex   = regexp.MustCompile(`^[+-]?\d+`)
	hexPrefixRegex   = regexp.MustCompile(`^[+-]?0[xX][0-9a-fA-F]+`)
)
