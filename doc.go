// Package formrules is a declarative field-validation toolkit for Go services.
//
// Fields are described with compact rule strings such as
// "required|minLength:3|maxLength:50" and checked against a record of input
// values. Every failed rule produces a human-readable message; messages are
// returned in rule-set order so they can be shown to the user as they are.
//
// Packages:
//
//   - pkg/validator: rule registry, built-in rules and the validation engine
//   - pkg/ruleset: rule sets and custom messages loaded from YAML or JSON documents
//   - pkg/async: futures for custom checks that resolve asynchronously
//   - pkg/logger: slog construction with optional Sentry fan-out
//   - pkg/config: environment-driven configuration loading
//
// Basic Usage:
//
//	v := validator.New()
//	msgs := v.Validate(ctx, map[string]any{"name": "Al", "age": 16},
//		validator.RuleSet{
//			validator.Field("name", "required|minLength:3"),
//			validator.Field("age", "number|min:18"),
//		},
//		validator.Messages{"age": {"min": "You must be an adult"}},
//	)
//	// msgs: ["Field 'name' must be at least 3 characters long.", "You must be an adult"]
//
// Rule sets kept in files:
//
//	doc, err := ruleset.LoadFile("rules/signup.yaml")
//	if err != nil {
//		return err
//	}
//	msgs := doc.Validate(ctx, v, input)
//
// Configuration from the environment:
//
//	v, err := validator.NewFromEnv()
package formrules
