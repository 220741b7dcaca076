package validator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formrules/pkg/logger"
)

// FaultHandler receives every execution fault, wrapped in a *FaultError.
type FaultHandler func(ctx context.Context, err error)

// Option configures a Validator.
type Option func(*Validator)

// WithLogger sets the logger used by the default fault handler.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

// WithFaultHandler replaces the default fault handler, which logs the fault.
func WithFaultHandler(h FaultHandler) Option {
	return func(v *Validator) {
		if h != nil {
			v.onFault = h
		}
	}
}

// WithLogContext adds extractors whose attributes are attached to fault log
// records. Attributes stored with logger.ContextWithAttrs are always included.
func WithLogContext(extractors ...logger.ContextExtractor) Option {
	return func(v *Validator) {
		v.extractors = append(v.extractors, extractors...)
	}
}

// WithClock sets the time source used by the past and future rules.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) {
		if now != nil {
			v.now = now
		}
	}
}

// WithOverridableFutureMessage lets custom messages replace the default
// message of the future rule. Off by default, where the default message of
// future is always reported.
func WithOverridableFutureMessage(enabled bool) Option {
	return func(v *Validator) {
		v.overridableFuture = enabled
	}
}

// Validator evaluates rule sets against input records.
// It is safe for concurrent use; custom rules may be added at any time.
type Validator struct {
	registry          *Registry
	logger            *slog.Logger
	extractors        []logger.ContextExtractor
	onFault           FaultHandler
	now               func() time.Time
	overridableFuture bool
	patterns          sync.Map
}

// New creates a Validator with its own empty rule registry.
func New(opts ...Option) *Validator {
	v := &Validator{
		registry:   NewRegistry(),
		logger:     slog.Default(),
		extractors: []logger.ContextExtractor{logger.AttrsFromContext},
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}
	v.logger = slog.New(logger.NewLogHandlerDecorator(v.logger.Handler(), v.extractors...))
	if v.onFault == nil {
		v.onFault = v.logFault
	}
	return v
}

// AddRule registers a custom check, replacing any check of the same name.
// Custom checks shadow built-in rules with the same name.
func (v *Validator) AddRule(name string, fn CheckFunc) {
	v.registry.Register(name, fn)
}

// Registry exposes the validator's custom rule registry.
func (v *Validator) Registry() *Registry {
	return v.registry
}

// Validate checks data against rules and returns the failure messages in
// evaluation order, or nil when every check passes. Fields are visited in
// rule set order and every rule of a field is evaluated, even after a failure.
//
// Validate never panics and never returns an error: an execution fault stops
// the run, is passed to the fault handler, and shows up as a trailing
// FaultMessage after the failures collected so far.
func (v *Validator) Validate(ctx context.Context, data map[string]any, rules RuleSet, messages Messages) []string {
	return v.run(ctx, data, rules, messages).Messages()
}

// Check is Validate returning a ValidationErrors error, or nil when valid.
func (v *Validator) Check(ctx context.Context, data map[string]any, rules RuleSet, messages Messages) error {
	errs := v.run(ctx, data, rules, messages)
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

func (v *Validator) run(ctx context.Context, data map[string]any, rules RuleSet, messages Messages) (errs ValidationErrors) {
	if ctx == nil {
		ctx = context.Background()
	}

	var field, rule string
	defer func() {
		if r := recover(); r != nil {
			errs = v.abort(ctx, errs, field, rule, fmt.Errorf("%w: %v", ErrCheckPanicked, r))
		}
	}()

	for _, fr := range rules {
		field = fr.Field
		value := indirect(data[field])

		for _, expr := range ParseRules(fr.Rules) {
			rule = expr.Name

			msg, failed, err := v.evaluate(ctx, field, expr, value, messages)
			if err != nil {
				return v.abort(ctx, errs, field, rule, err)
			}
			if failed {
				errs.Add(ValidationError{Field: field, Rule: rule, Message: msg})
			}
		}
	}

	return errs
}

// evaluate runs one expression. Registered custom checks win over built-ins.
func (v *Validator) evaluate(ctx context.Context, field string, expr Expr, value any, messages Messages) (string, bool, error) {
	if check, ok := v.registry.Lookup(expr.Name); ok {
		valid, err := check(ctx, value, expr.Arg)
		if err != nil || valid {
			return "", false, err
		}
		if msg, ok := messages.Lookup(field, expr.Name); ok {
			return msg, true, nil
		}
		return CustomMessage(field, expr.Name), true, nil
	}

	kind := KindOf(expr.Name)
	valid, err := v.checkBuiltin(kind, value, expr.Arg)
	if err != nil || valid {
		return "", false, err
	}
	if kind != KindFuture || v.overridableFuture {
		if msg, ok := messages.Lookup(field, expr.Name); ok {
			return msg, true, nil
		}
	}
	return DefaultMessage(kind, field, expr.Arg), true, nil
}

func (v *Validator) abort(ctx context.Context, errs ValidationErrors, field, rule string, err error) ValidationErrors {
	fault := &FaultError{ID: uuid.NewString(), Field: field, Rule: rule, Err: err}
	v.report(ctx, fault)
	errs.Add(ValidationError{Message: FaultMessage})
	return errs
}

// report hands the fault to the handler; a panicking handler is ignored.
func (v *Validator) report(ctx context.Context, err error) {
	defer func() { _ = recover() }()
	v.onFault(ctx, err)
}

func (v *Validator) logFault(ctx context.Context, err error) {
	attrs := []any{logger.Component("validator"), logger.Error(err)}
	var fault *FaultError
	if errors.As(err, &fault) {
		attrs = append(attrs,
			logger.FaultID(fault.ID),
			logger.Field(fault.Field),
			logger.Rule(fault.Rule),
		)
	}
	v.logger.ErrorContext(ctx, "validation fault", attrs...)
}
