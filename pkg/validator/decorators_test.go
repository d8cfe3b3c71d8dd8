package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/validext/pkg/validator"
)

func TestNot(t *testing.T) {
	t.Parallel()

	t.Run("negates a valid origin", func(t *testing.T) {
		origin := validator.AlwaysValid()
		v := validator.Not(origin, "foo")

		res := v.Validate(42)
		assert.NotEqual(t, validator.IsValid(origin, 42), res.Valid())
		assert.Equal(t, map[string]string{validator.CodeNegated: "foo"}, res.Messages.Map())
	})

	t.Run("negates an invalid origin without messages", func(t *testing.T) {
		v := validator.Not(failing("a", "A"), "foo")

		res := v.Validate(42)
		assert.True(t, res.Valid())
		assert.Empty(t, res.Messages)
	})

	t.Run("double negation restores validity", func(t *testing.T) {
		v := validator.Not(validator.Not(mustComparison(t, validator.OpGreater, 1), "inner"), "outer")
		assert.True(t, validator.IsValid(v, 2))
		assert.False(t, validator.IsValid(v, 0))
	})
}

func TestWithMessage(t *testing.T) {
	t.Parallel()

	t.Run("uses the custom message", func(t *testing.T) {
		v := validator.WithMessage("bar", "baz", validator.Not(validator.AlwaysValid(), "foo"))

		res := v.Validate("bat")
		assert.False(t, res.Valid())
		assert.Equal(t, map[string]string{"bar": "baz"}, res.Messages.Map())
	})

	t.Run("collapses several messages into one", func(t *testing.T) {
		v := validator.WithMessage("bar", "baz", validator.Any(failing("a", "A"), failing("b", "B")))

		res := v.Validate(1)
		assert.Len(t, res.Messages, 1)
		assert.Equal(t, map[string]string{"bar": "baz"}, res.Messages.Map())
	})

	t.Run("reports nothing when valid", func(t *testing.T) {
		v := validator.WithMessage("foo", "bar", validator.AlwaysValid())

		res := v.Validate("baz")
		assert.True(t, res.Valid())
		assert.Empty(t, res.Messages)
	})
}
