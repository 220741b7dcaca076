package validator

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
)

// checkBuiltin reports whether value passes the built-in rule k.
// Unknown kinds always pass.
func (v *Validator) checkBuiltin(k Kind, value any, arg string) (bool, error) {
	switch k {
	case KindRequired:
		if s, ok := asString(value); ok {
			return strings.TrimSpace(s) != "", nil
		}
		return truthy(value), nil

	case KindString:
		_, ok := asString(value)
		return ok, nil

	case KindMinLength, KindMaxLength:
		n, ok, err := length(value)
		if err != nil {
			return false, err
		}
		limit := parseIntPrefix(arg)
		if !ok || math.IsNaN(limit) {
			return true, nil
		}
		if k == KindMinLength {
			return !(float64(n) < limit), nil
		}
		return !(float64(n) > limit), nil

	case KindAlpha:
		return alphaRegex.MatchString(stringify(value)), nil

	case KindAlphaNumeric:
		return alphaNumericRegex.MatchString(stringify(value)), nil

	case KindFormat:
		re, err := v.pattern(arg)
		if err != nil {
			return false, err
		}
		return re.MatchString(stringify(value)), nil

	case KindNumber:
		return !math.IsNaN(toNumber(value)), nil

	case KindMin:
		// NaN on either side compares false, so unparsable input passes
		return !(looseFloat(value) < parseFloatPrefix(arg)), nil

	case KindMax:
		return !(looseFloat(value) > parseFloatPrefix(arg)), nil

	case KindInteger:
		return isInteger(value), nil

	case KindFloat:
		return isFinite(value), nil

	case KindPositive:
		return !(toNumber(value) <= 0), nil

	case KindNegative:
		return !(toNumber(value) >= 0), nil

	case KindDate:
		return dateRegex.MatchString(stringify(value)), nil

	case KindPast:
		t, ok := toTime(value)
		return ok && t.Before(v.now()), nil

	case KindFuture:
		t, ok := toTime(value)
		return ok && t.After(v.now()), nil

	case KindMinLetters:
		return minLettersRegex.MatchString(stringify(value)), nil

	case KindUnknown:
		return true, nil
	}

	panic(fmt.Sprintf("validator: unhandled rule kind %d", k))
}

// pattern compiles a format argument, caching compiled expressions per validator.
func (v *Validator) pattern(expr string) (*regexp.Regexp, error) {
	if re, ok := v.patterns.Load(expr); ok {
		return re.(*regexp.Regexp), nil
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, errors.Join(ErrInvalidPattern, err)
	}
	v.patterns.Store(expr, re)
	return re, nil
}

// DefaultMessage returns the message reported when the built-in rule k fails on field.
func DefaultMessage(k Kind, field, arg string) string {
	switch k {
	case KindRequired:
		return fmt.Sprintf("Field '%s' is required.", field)
	case KindString:
		return fmt.Sprintf("Field '%s' must be a string.", field)
	case KindMinLength:
		return fmt.Sprintf("Field '%s' must be at least %s characters long.", field, arg)
	case KindMaxLength:
		return fmt.Sprintf("Field '%s' must not exceed %s characters.", field, arg)
	case KindAlpha:
		return fmt.Sprintf("Field '%s' must contain only alphabetic characters.", field)
	case KindAlphaNumeric:
		return fmt.Sprintf("Field '%s' must contain only alphanumeric characters.", field)
	case KindFormat:
		return fmt.Sprintf("Field '%s' does not match the required format.", field)
	case KindNumber:
		return fmt.Sprintf("Field '%s' must be a number.", field)
	case KindMin:
		return fmt.Sprintf("Field '%s' must be >= %s.", field, arg)
	case KindMax:
		return fmt.Sprintf("Field '%s' must be <= %s.", field, arg)
	case KindInteger:
		return fmt.Sprintf("Field '%s' must be an integer.", field)
	case KindFloat:
		return fmt.Sprintf("Field '%s' must be a float.", field)
	case KindPositive:
		return fmt.Sprintf("Field '%s' must be a positive number.", field)
	case KindNegative:
		return fmt.Sprintf("Field '%s' must be a negative number.", field)
	case KindDate:
		return fmt.Sprintf("Field '%s' must be in YYYY-MM-DD format.", field)
	case KindPast:
		return fmt.Sprintf("Field '%s' must be a date in the past.", field)
	case KindFuture:
		return fmt.Sprintf("Field '%s' must be a date in the future.", field)
	case KindMinLetters:
		return fmt.Sprintf("Field '%s' must contain at least 3 letters.", field)
	}
	return ""
}

// CustomMessage returns the message reported when the custom rule named rule fails on field.
func CustomMessage(field, rule string) string {
	return fmt.Sprintf("Field '%s' failed custom validation '%s'.", field, rule)
}

// FaultMessage is appended once when a run is aborted by an execution fault.
const FaultMessage = "An error occurred during validation."
