package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formrules/pkg/validator"
)

func TestParseExpr(t *testing.T) {
	tests := []struct {
		in   string
		want validator.Expr
	}{
		{"required", validator.Expr{Name: "required"}},
		{"min:18", validator.Expr{Name: "min", Arg: "18", HasArg: true}},
		{"min:", validator.Expr{Name: "min", Arg: "", HasArg: true}},
		{`format:^\d{2}:\d{2}$`, validator.Expr{Name: "format", Arg: `^\d{2}:\d{2}$`, HasArg: true}},
		{"", validator.Expr{}},
		{"Required", validator.Expr{Name: "Required"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := validator.ParseExpr(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, got.String())
		})
	}
}

func TestParseRules(t *testing.T) {
	t.Run("keeps order", func(t *testing.T) {
		got := validator.ParseRules("required|minLength:3|format:a:b")
		assert.Equal(t, []validator.Expr{
			{Name: "required"},
			{Name: "minLength", Arg: "3", HasArg: true},
			{Name: "format", Arg: "a:b", HasArg: true},
		}, got)
	})

	t.Run("single rule", func(t *testing.T) {
		assert.Equal(t, []validator.Expr{{Name: "string"}}, validator.ParseRules("string"))
	})

	t.Run("empty segments become unnamed expressions", func(t *testing.T) {
		got := validator.ParseRules("required||string")
		assert.Len(t, got, 3)
		assert.Equal(t, "", got[1].Name)
	})
}

func TestKindOf(t *testing.T) {
	names := []string{
		"required", "string", "minLength", "maxLength", "alpha", "alphaNumeric",
		"format", "number", "min", "max", "integer", "float", "positive",
		"negative", "date", "past", "future", "minLetters",
	}
	for _, name := range names {
		k := validator.KindOf(name)
		assert.True(t, k.Builtin(), name)
		assert.Equal(t, name, k.String())
	}

	assert.Equal(t, validator.KindUnknown, validator.KindOf("bogusRule"))
	assert.Equal(t, validator.KindUnknown, validator.KindOf("Required"))
	assert.Equal(t, validator.KindUnknown, validator.KindOf(""))
	assert.False(t, validator.KindUnknown.Builtin())
	assert.Equal(t, "", validator.Kind(200).String())
}

func TestRulesFromMap(t *testing.T) {
	rs := validator.RulesFromMap(map[string]string{
		"name":  "required",
		"age":   "min:18",
		"email": "required|string",
	})

	assert.Equal(t, []string{"age", "email", "name"}, rs.Fields())
	assert.Equal(t, validator.Field("email", "required|string"), rs[1])
}

func TestMessages(t *testing.T) {
	m := validator.Messages{}
	m.Set("age", "min", "Too young")
	m.Set("age", "max", "")

	msg, ok := m.Lookup("age", "min")
	assert.True(t, ok)
	assert.Equal(t, "Too young", msg)

	_, ok = m.Lookup("age", "max")
	assert.False(t, ok, "empty override falls back to the default")

	_, ok = m.Lookup("name", "required")
	assert.False(t, ok)

	var none validator.Messages
	_, ok = none.Lookup("age", "min")
	assert.False(t, ok)
}
