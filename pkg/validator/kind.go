package validator

// Kind identifies a built-in rule.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindRequired
	KindString
	KindMinLength
	KindMaxLength
	KindAlpha
	KindAlphaNumeric
	KindFormat
	KindNumber
	KindMin
	KindMax
	KindInteger
	KindFloat
	KindPositive
	KindNegative
	KindDate
	KindPast
	KindFuture
	KindMinLetters
)

var kindNames = [...]string{
	KindUnknown:      "",
	KindRequired:     "required",
	KindString:       "string",
	KindMinLength:    "minLength",
	KindMaxLength:    "maxLength",
	KindAlpha:        "alpha",
	KindAlphaNumeric: "alphaNumeric",
	KindFormat:       "format",
	KindNumber:       "number",
	KindMin:          "min",
	KindMax:          "max",
	KindInteger:      "integer",
	KindFloat:        "float",
	KindPositive:     "positive",
	KindNegative:     "negative",
	KindDate:         "date",
	KindPast:         "past",
	KindFuture:       "future",
	KindMinLetters:   "minLetters",
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		if name != "" {
			m[name] = Kind(k)
		}
	}
	return m
}()

// KindOf resolves a rule name to its built-in kind. Names are case-sensitive;
// anything not built in yields KindUnknown.
func KindOf(name string) Kind {
	return kindsByName[name]
}

// String returns the rule name as written in rule expressions.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return ""
}

// Builtin reports whether k names a built-in rule.
func (k Kind) Builtin() bool {
	return k != KindUnknown && int(k) < len(kindNames)
}
