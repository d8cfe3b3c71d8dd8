package validator_test

import (
	"bytes"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/validext/pkg/validator"
)

func TestKindOf(t *testing.T) {
	t.Parallel()

	var nilMap map[string]int
	var nilFunc func()

	cases := []struct {
		value any
		kind  validator.Kind
	}{
		{nil, validator.KindNull},
		{nilMap, validator.KindNull},
		{nilFunc, validator.KindNull},
		{true, validator.KindBool},
		{time.Second, validator.KindInt},
		{uint8(1), validator.KindInt},
		{float32(1), validator.KindFloat},
		{"s", validator.KindString},
		{[2]int{}, validator.KindList},
		{[]byte("x"), validator.KindList},
		{map[string]int{}, validator.KindMap},
		{func() {}, validator.KindFunc},
		{make(chan struct{}), validator.KindChan},
		{os.Stdin, validator.KindResource},
		{struct{}{}, validator.KindObject},
		{&bytes.Buffer{}, validator.KindObject},
		{complex(1, 2), validator.KindOther},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.kind, validator.KindOf(tc.value), "%#v", tc.value)
	}
}

func TestIsNumeric(t *testing.T) {
	t.Parallel()

	for _, v := range []any{1, -2.5, "42", " 42 ", "-1.5e3", ".5", "5."} {
		assert.True(t, validator.IsNumeric(v), "%#v", v)
	}
	for _, v := range []any{"", "forty-two", "0x1A", "1_000", "NaN", "inf", true, nil} {
		assert.False(t, validator.IsNumeric(v), "%#v", v)
	}
}

func TestMessageRendering(t *testing.T) {
	t.Parallel()

	v := mustComparison(t, validator.OpIdentical, []string{"a", "b"})

	cases := map[string]struct {
		value any
		want  string
	}{
		"null":     {nil, "Must be identical to [a, b] but is null."},
		"bool":     {false, "Must be identical to [a, b] but is false."},
		"float":    {4.0, "Must be identical to [a, b] but is 4."},
		"stringer": {time.Second, "Must be identical to [a, b] but is 1s."},
		"map":      {map[string]int{"y": 2, "x": 1}, "Must be identical to [a, b] but is [x: 1, y: 2]."},
		"struct":   {struct{}{}, "Must be identical to [a, b] but is struct {} object."},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			text, ok := v.Validate(tc.value).Messages.Get(validator.CodeNotIdentical)
			assert.True(t, ok)
			assert.Equal(t, tc.want, text)
		})
	}
}
