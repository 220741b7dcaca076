package validator

import (
	"slices"
	"strings"
)

const (
	ruleSeparator = "|"
	argSeparator  = ":"
)

// Expr is one parsed rule expression: `name` or `name:arg`.
type Expr struct {
	Name   string
	Arg    string
	HasArg bool
}

// ParseExpr splits s on the first colon only, so arguments may contain colons.
func ParseExpr(s string) Expr {
	name, arg, found := strings.Cut(s, argSeparator)
	return Expr{Name: name, Arg: arg, HasArg: found}
}

// ParseRules splits a pipe-delimited rule string into expressions, keeping their order.
func ParseRules(s string) []Expr {
	parts := strings.Split(s, ruleSeparator)
	exprs := make([]Expr, len(parts))
	for i, part := range parts {
		exprs[i] = ParseExpr(part)
	}
	return exprs
}

func (e Expr) String() string {
	if e.HasArg {
		return e.Name + argSeparator + e.Arg
	}
	return e.Name
}

// FieldRules binds a rule string to a field name.
type FieldRules struct {
	Field string
	Rules string
}

// Field is shorthand for FieldRules{Field: name, Rules: rules}.
func Field(name, rules string) FieldRules {
	return FieldRules{Field: name, Rules: rules}
}

// RuleSet lists fields in the order they are validated.
type RuleSet []FieldRules

// RulesFromMap builds a RuleSet from a map. Maps carry no order, so fields are sorted by name.
func RulesFromMap(m map[string]string) RuleSet {
	fields := make([]string, 0, len(m))
	for field := range m {
		fields = append(fields, field)
	}
	slices.Sort(fields)

	rs := make(RuleSet, len(fields))
	for i, field := range fields {
		rs[i] = Field(field, m[field])
	}
	return rs
}

func (rs RuleSet) Fields() []string {
	fields := make([]string, len(rs))
	for i, fr := range rs {
		fields[i] = fr.Field
	}
	return fields
}

// Messages overrides default failure messages, keyed by field then rule name.
type Messages map[string]map[string]string

// Lookup returns the override for (field, rule). Empty overrides count as absent.
func (m Messages) Lookup(field, rule string) (string, bool) {
	msg := m[field][rule]
	return msg, msg != ""
}

// Set stores an override, allocating nested maps as needed.
func (m Messages) Set(field, rule, message string) {
	if m[field] == nil {
		m[field] = make(map[string]string)
	}
	m[field][rule] = message
}
