package validator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validext/pkg/validator"
)

type label struct{ name string }

func (l label) String() string { return l.name }

func TestContainsString(t *testing.T) {
	t.Parallel()

	t.Run("is case-sensitive by default", func(t *testing.T) {
		v, err := validator.NewContainsString(validator.ContainsStringConfig{Needle: "Foo"})
		require.NoError(t, err)

		assert.True(t, validator.IsValid(v, "Foobar"))
		assert.False(t, validator.IsValid(v, "foobar"))
	})

	t.Run("ignores case when asked", func(t *testing.T) {
		v, err := validator.NewContainsString(validator.ContainsStringConfig{Needle: "foo", IgnoreCase: true})
		require.NoError(t, err)

		assert.True(t, validator.IsValid(v, "Foobar"))
		assert.True(t, validator.IsValid(v, "foobar"))
		assert.False(t, validator.IsValid(v, "barbaz"))
	})

	t.Run("folds non-ASCII case", func(t *testing.T) {
		v, err := validator.NewContainsString(validator.ContainsStringConfig{Needle: "ÄPFEL", IgnoreCase: true})
		require.NoError(t, err)
		assert.True(t, validator.IsValid(v, "grüne äpfel"))
	})

	t.Run("reports the needle", func(t *testing.T) {
		v, err := validator.NewContainsString(validator.ContainsStringConfig{Needle: "baz"})
		require.NoError(t, err)

		res := v.Validate("foobar")
		assert.False(t, res.Valid())
		assert.Equal(t, map[string]string{"notContainsString": `Must contain string "baz".`}, res.Messages.Map())
	})

	t.Run("uses the string form of the value", func(t *testing.T) {
		v, err := validator.NewContainsString(validator.ContainsStringConfig{Needle: "42"})
		require.NoError(t, err)

		assert.True(t, validator.IsValid(v, 1420))
		assert.True(t, validator.IsValid(v, label{"answer 42"}))
	})

	t.Run("accepts stringers and nil as needles", func(t *testing.T) {
		v, err := validator.NewContainsString(validator.ContainsStringConfig{Needle: label{"bar"}})
		require.NoError(t, err)
		assert.Equal(t, "bar", v.Needle())
		assert.True(t, validator.IsValid(v, "foobar"))

		v, err = validator.NewContainsString(validator.ContainsStringConfig{Needle: nil})
		require.NoError(t, err)
		assert.True(t, validator.IsValid(v, "anything"))
	})

	t.Run("rejects other needles", func(t *testing.T) {
		for _, needle := range []any{42, []string{"a"}, errors.New("x")} {
			_, err := validator.NewContainsString(validator.ContainsStringConfig{Needle: needle})
			require.ErrorIs(t, err, validator.ErrInvalidNeedle)
			assert.Contains(t, err.Error(), "Invalid 'needle': Must be string or implement fmt.Stringer")
		}
	})
}

func TestRegex(t *testing.T) {
	t.Parallel()

	t.Run("matches delimited patterns", func(t *testing.T) {
		v, err := validator.NewRegex(validator.RegexConfig{Pattern: "/^foo$/"})
		require.NoError(t, err)

		assert.True(t, validator.IsValid(v, "foo"))
		assert.False(t, validator.IsValid(v, "foo bar"))
		assert.Equal(t, "/^foo$/", v.Pattern())
	})

	t.Run("applies modifiers", func(t *testing.T) {
		v, err := validator.NewRegex(validator.RegexConfig{Pattern: "#^foo$#i"})
		require.NoError(t, err)
		assert.True(t, validator.IsValid(v, "FOO"))

		v, err = validator.NewRegex(validator.RegexConfig{Pattern: "{^b.r$}ms"})
		require.NoError(t, err)
		assert.True(t, validator.IsValid(v, "foo\nbar"))
	})

	t.Run("accepts bare patterns", func(t *testing.T) {
		v, err := validator.NewRegex(validator.RegexConfig{Pattern: `^\d+$`})
		require.NoError(t, err)
		assert.True(t, validator.IsValid(v, "123"))
		assert.True(t, validator.IsValid(v, 123))
		assert.False(t, validator.IsValid(v, 1.5))
	})

	t.Run("treats brackets as delimiters only before modifiers", func(t *testing.T) {
		cases := map[string]struct {
			pattern string
			match   string
			reject  string
		}{
			"character class":     {"[abc]", "b", "xyz"},
			"quantified class":    {"[0-9]+", "42", "x"},
			"leading group":       {"(a)|b", "b", "c"},
			"angle brackets":      {"<x>", "<x>", "x"},
			"delimited with flag": {"(^ab$)i", "AB", "abc"},
			"braces with flags":   {"{^b.r$}ms", "foo\nbar", "baz"},
		}

		for name, tc := range cases {
			t.Run(name, func(t *testing.T) {
				v, err := validator.NewRegex(validator.RegexConfig{Pattern: tc.pattern})
				require.NoError(t, err)

				assert.True(t, validator.IsValid(v, tc.match))
				assert.False(t, validator.IsValid(v, tc.reject))
			})
		}
	})

	t.Run("passes unmodified bracket patterns to the regex engine", func(t *testing.T) {
		_, err := validator.NewRegex(validator.RegexConfig{Pattern: "{2}x"})
		require.ErrorIs(t, err, validator.ErrInvalidPattern)
		assert.NotContains(t, err.Error(), "unsupported modifier")
	})

	t.Run("reports mismatches", func(t *testing.T) {
		v, err := validator.NewRegex(validator.RegexConfig{Pattern: "/^foo$/"})
		require.NoError(t, err)

		res := v.Validate("bar")
		assert.Equal(t, map[string]string{"regexNotMatch": "Must match pattern '/^foo$/' but bar does not."}, res.Messages.Map())
	})

	t.Run("rejects non-scalar values", func(t *testing.T) {
		v, err := validator.NewRegex(validator.RegexConfig{Pattern: "/./"})
		require.NoError(t, err)

		for _, value := range []any{nil, true, []string{"a"}} {
			res := v.Validate(value)
			assert.True(t, res.Messages.Has(validator.CodeRegexInvalid))
		}
	})

	t.Run("rejects broken patterns", func(t *testing.T) {
		for _, pattern := range []string{"/foo", "/(foo/", "/foo/x", "/a(?=b)/"} {
			_, err := validator.NewRegex(validator.RegexConfig{Pattern: pattern})
			require.ErrorIs(t, err, validator.ErrInvalidPattern, pattern)
		}
	})
}
