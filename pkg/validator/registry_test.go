package validator_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formrules/pkg/validator"
)

func alwaysValid(context.Context, any, string) (bool, error)   { return true, nil }
func alwaysInvalid(context.Context, any, string) (bool, error) { return false, nil }

func TestRegistry(t *testing.T) {
	t.Run("register and lookup", func(t *testing.T) {
		r := validator.NewRegistry()
		assert.False(t, r.Has("unique"))
		assert.Nil(t, r.Get("unique"))

		r.Register("unique", alwaysValid)

		assert.True(t, r.Has("unique"))
		fn := r.Get("unique")
		require.NotNil(t, fn)
		ok, err := fn(context.Background(), "x", "")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("last registration wins", func(t *testing.T) {
		r := validator.NewRegistry()
		r.Register("unique", alwaysValid)
		r.Register("unique", alwaysInvalid)

		fn, ok := r.Lookup("unique")
		require.True(t, ok)
		valid, err := fn(context.Background(), "x", "")
		require.NoError(t, err)
		assert.False(t, valid)
		assert.Equal(t, []string{"unique"}, r.Names())
	})

	t.Run("ignores empty name and nil function", func(t *testing.T) {
		r := validator.NewRegistry()
		r.Register("", alwaysValid)
		r.Register("nil", nil)

		assert.Empty(t, r.Names())
		assert.False(t, r.Has(""))
		assert.False(t, r.Has("nil"))
	})

	t.Run("names are sorted", func(t *testing.T) {
		r := validator.NewRegistry()
		r.Register("zeta", alwaysValid)
		r.Register("alpha", alwaysValid)
		r.Register("mid", alwaysValid)

		assert.Equal(t, []string{"alpha", "mid", "zeta"}, r.Names())
	})

	t.Run("concurrent register and lookup", func(t *testing.T) {
		r := validator.NewRegistry()
		var wg sync.WaitGroup
		for i := range 50 {
			wg.Add(2)
			go func() {
				defer wg.Done()
				r.Register(fmt.Sprintf("rule%d", i), alwaysValid)
			}()
			go func() {
				defer wg.Done()
				r.Has(fmt.Sprintf("rule%d", i))
			}()
		}
		wg.Wait()
		assert.Len(t, r.Names(), 50)
	})
}

func TestValidator_RegistriesAreIsolated(t *testing.T) {
	a := validator.New()
	b := validator.New()

	a.AddRule("shared", alwaysValid)

	assert.True(t, a.Registry().Has("shared"))
	assert.False(t, b.Registry().Has("shared"))
}
