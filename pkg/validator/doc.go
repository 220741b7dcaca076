// Package validator validates records of input values against compact,
// per-field rule expressions and reports human-readable failure messages.
//
// A rule set maps field names to pipe-delimited rule strings. Each rule is
// either a bare name or a name with an argument separated by the first colon:
//
//	rules := validator.RuleSet{
//	    validator.Field("name", "required|string|minLength:3|maxLength:50"),
//	    validator.Field("age", "number|min:18"),
//	    validator.Field("code", `format:^[A-Z]{2}:\d+$`),
//	}
//
// # Built-in rules
//
// required, string, minLength, maxLength, alpha, alphaNumeric, format,
// number, min, max, integer, float, positive, negative, date, past, future
// and minLetters. Unknown rule names are ignored.
//
// # Custom rules
//
// Custom checks are registered per Validator with AddRule and take precedence
// over built-in rules of the same name. A check may block, for instance on a
// database lookup; FutureCheck adapts checks that already return an
// async.Future.
//
//	v := validator.New()
//	v.AddRule("username", func(ctx context.Context, value any, _ string) (bool, error) {
//	    name, _ := value.(string)
//	    taken, err := users.Exists(ctx, name)
//	    return !taken, err
//	})
//
//	msgs := v.Validate(ctx, data, rules, validator.Messages{
//	    "age": {"min": "Too young"},
//	})
//	if msgs != nil {
//	    // render msgs
//	}
//
// # Error Handling
//
// Failed checks are reported as messages, never as Go errors. Validate never
// panics either: when a check returns an error or panics, evaluation stops,
// the fault is handed to the FaultHandler (by default logged through slog)
// and "An error occurred during validation." is appended to the messages
// collected so far. Check returns the same outcome as a ValidationErrors error.
// Attributes stored in ctx with logger.ContextWithAttrs, such as a request ID,
// are attached to the logged fault.
//
// # Value Semantics
//
// Values are looked up by field name; pointers are dereferenced and nil
// stands for a missing value. Numeric rules accept any Go integer or float
// type as well as json.Number, and min, max, positive, negative and number
// also parse numeric strings. past and future accept time.Time, date and
// RFC 3339 strings, and Unix milliseconds.
package validator
