package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/validext/pkg/validator"
)

func TestMessages(t *testing.T) {
	t.Parallel()

	t.Run("With replaces a code in place", func(t *testing.T) {
		m := validator.Messages{{Code: "a", Text: "A"}, {Code: "b", Text: "B"}}
		out := m.With(validator.Message{Code: "a", Text: "A2"})

		assert.Equal(t, []string{"A2", "B"}, out.Texts())
		assert.Equal(t, []string{"A", "B"}, m.Texts(), "original must stay untouched")
	})

	t.Run("Merge appends new codes", func(t *testing.T) {
		a := validator.Messages{{Code: "a", Text: "A"}}
		b := validator.Messages{{Code: "b", Text: "B"}, {Code: "a", Text: "A2"}}

		out := a.Merge(b)
		assert.Equal(t, []string{"a", "b"}, out.Codes())
		assert.Equal(t, map[string]string{"a": "A2", "b": "B"}, out.Map())
	})

	t.Run("Get and Has look up by code", func(t *testing.T) {
		m := validator.Messages{{Code: "a", Text: "A"}}

		text, ok := m.Get("a")
		assert.True(t, ok)
		assert.Equal(t, "A", text)
		assert.True(t, m.Has("a"))
		assert.False(t, m.Has("b"))
		assert.Equal(t, 1, m.Len())
	})
}

func TestFormat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Must be 3 but is 4.", validator.Format("Must be %{want} but is %{got}.", map[string]string{"want": "3", "got": "4"}))
	assert.Equal(t, "Keep %{unknown}.", validator.Format("Keep %{unknown}.", map[string]string{"x": "y"}))
	assert.Equal(t, "plain", validator.Format("plain", nil))
}

func TestFail(t *testing.T) {
	t.Parallel()

	params := map[string]string{"value": "7"}
	res := validator.Fail("code", "got %{value}", params)
	params["value"] = "changed"

	assert.False(t, res.Valid())
	assert.Equal(t, "got 7", res.Messages[0].Text)
	assert.Equal(t, "7", res.Messages[0].Params["value"])
	assert.True(t, validator.Pass().Valid())
}

func TestFreeform(t *testing.T) {
	t.Parallel()

	fizz := mustDivisibleBy(t, 3)
	buzz := mustDivisibleBy(t, 5)
	fizzbuzz := validator.FastFailChain(fizz, buzz)

	v := validator.Freeform(func(value any, r *validator.Reporter) {
		if validator.IsValid(fizz, value) {
			r.Error("fizz", "Fizz")
		}
		if validator.IsValid(buzz, value) {
			r.Error("buzz", "Buzz")
		}
		if validator.IsValid(fizzbuzz, value) {
			r.Errorf("fizzbuzz", "FizzBuzz %{n}", map[string]string{"n": "!"})
		}
	})

	res := v.Validate(9)
	assert.False(t, res.Valid())
	assert.Equal(t, map[string]string{"fizz": "Fizz"}, res.Messages.Map())

	res = v.Validate(1)
	assert.True(t, res.Valid())
	assert.Empty(t, res.Messages)

	res = v.Validate(15)
	assert.False(t, res.Valid())
	assert.Equal(t, []string{"fizz", "buzz", "fizzbuzz"}, res.Messages.Codes())
	assert.Equal(t, []string{"Fizz", "Buzz", "FizzBuzz !"}, res.Messages.Texts())
}

func mustDivisibleBy(t *testing.T, divisor any) validator.Validator {
	t.Helper()
	v, err := validator.NewDivisibleBy(validator.DivisibleByConfig{Divisor: divisor})
	if err != nil {
		t.Fatal(err)
	}
	return v
}
