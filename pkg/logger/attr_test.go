package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formrules/pkg/logger"
)

func TestAttrs(t *testing.T) {
	t.Run("error attr", func(t *testing.T) {
		err := errors.New("boom")
		attr := logger.Error(err)
		assert.Equal(t, "error", attr.Key)
		assert.Equal(t, err, attr.Value.Any())
	})

	t.Run("nil error yields empty attr", func(t *testing.T) {
		assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
	})

	t.Run("validation attrs", func(t *testing.T) {
		assert.True(t, logger.Component("validator").Equal(slog.String("component", "validator")))
		assert.True(t, logger.Field("email").Equal(slog.String("field", "email")))
		assert.True(t, logger.Rule("required").Equal(slog.String("rule", "required")))
		assert.True(t, logger.FaultID("id-1").Equal(slog.String("fault_id", "id-1")))
	})

	t.Run("group attr", func(t *testing.T) {
		g := logger.Group("check", logger.Rule("min"))
		assert.Equal(t, "check", g.Key)
		assert.Equal(t, slog.KindGroup, g.Value.Kind())
		assert.Len(t, g.Value.Group(), 1)
	})
}
