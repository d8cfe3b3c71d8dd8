package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validext/pkg/validator"
)

// spy counts Validate calls and delegates to next.
type spy struct {
	calls int
	next  validator.Validator
}

func (s *spy) Validate(value any) validator.Result {
	s.calls++
	return s.next.Validate(value)
}

func failing(code, text string) validator.Validator {
	return validator.Func(func(any) validator.Result {
		return validator.Fail(code, text, nil)
	})
}

func mustComparison(t *testing.T, op validator.Operator, compared any) validator.Validator {
	t.Helper()
	v, err := validator.NewComparison(validator.ComparisonConfig{Operator: op, Compared: compared})
	require.NoError(t, err)
	return v
}

func TestAny(t *testing.T) {
	t.Parallel()

	t.Run("is valid without validators", func(t *testing.T) {
		assert.True(t, validator.IsValid(validator.Any(), 42))
	})

	t.Run("is valid when a validator passes", func(t *testing.T) {
		assert.True(t, validator.IsValid(validator.Any(validator.AlwaysValid()), 42))
	})

	t.Run("is invalid when every validator fails", func(t *testing.T) {
		v := validator.Any(mustComparison(t, validator.OpGreater, 43))
		assert.False(t, validator.IsValid(v, 42))
	})

	t.Run("stops at the first success", func(t *testing.T) {
		after := &spy{next: mustComparison(t, validator.OpGreater, 43)}
		v := validator.Any(validator.AlwaysValid(), after)

		res := v.Validate(42)
		assert.True(t, res.Valid())
		assert.Empty(t, res.Messages)
		assert.Zero(t, after.calls)
	})

	t.Run("discards messages of earlier failures on success", func(t *testing.T) {
		v := validator.Any(failing("a", "A"), validator.AlwaysValid())
		res := v.Validate(1)
		assert.True(t, res.Valid())
		assert.Empty(t, res.Messages)
	})

	t.Run("merges messages of every failure in order", func(t *testing.T) {
		v := validator.Any(failing("a", "A"), failing("b", "B"), failing("a", "A2"))

		res := v.Validate(1)
		assert.False(t, res.Valid())
		assert.Equal(t, []string{"a", "b"}, res.Messages.Codes())
		assert.Equal(t, []string{"A2", "B"}, res.Messages.Texts())
	})

	t.Run("skips nil validators", func(t *testing.T) {
		v := validator.Any(nil, failing("a", "A"))
		assert.Equal(t, 1, v.Len())
	})
}

func TestChain(t *testing.T) {
	t.Parallel()

	t.Run("is valid without validators", func(t *testing.T) {
		assert.True(t, validator.IsValid(validator.Chain(), 42))
	})

	t.Run("is valid when every validator passes", func(t *testing.T) {
		v := validator.Chain(validator.AlwaysValid(), mustComparison(t, validator.OpLess, 43))
		assert.True(t, validator.IsValid(v, 42))
	})

	t.Run("is invalid when a validator fails", func(t *testing.T) {
		v := validator.Chain(validator.AlwaysValid(), mustComparison(t, validator.OpGreater, 43))
		assert.False(t, validator.IsValid(v, 42))
	})

	t.Run("breaks on the first failure", func(t *testing.T) {
		first := mustComparison(t, validator.OpLess, 10)
		second := &spy{next: mustComparison(t, validator.OpGreater, 43)}
		v := validator.FastFailChain(first, second)

		res := v.Validate(42)
		assert.False(t, res.Valid())
		assert.Equal(t, first.Validate(42).Messages, res.Messages)
		assert.Len(t, res.Messages, 1)
		assert.Zero(t, second.calls)
	})
}
