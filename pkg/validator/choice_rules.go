package validator

import "fmt"

const CodeNotOneOf = "notOneOf"

const oneOfTemplate = "Must be one of %{haystack} but is %{value}."

// OneOfConfig configures a OneOf validator. Every haystack entry must be
// null, a bool, a number or a string.
type OneOfConfig struct {
	Haystack []any
}

// OneOf checks strict membership in a fixed haystack.
type OneOf struct {
	haystack []Scalar
	rendered string
}

func NewOneOf(cfg OneOfConfig) (*OneOf, error) {
	haystack := make([]Scalar, len(cfg.Haystack))
	for i, item := range cfg.Haystack {
		s, err := ScalarOf(item)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d is %T", ErrNonScalarHaystack, i, item)
		}
		haystack[i] = s
	}
	return NewOneOfScalars(haystack...), nil
}

// NewOneOfScalars builds a OneOf from values already known to be scalar.
func NewOneOfScalars(haystack ...Scalar) *OneOf {
	h := make([]Scalar, len(haystack))
	copy(h, haystack)
	return &OneOf{haystack: h, rendered: describeList(h)}
}

// Haystack returns a copy of the accepted values.
func (o *OneOf) Haystack() []Scalar {
	h := make([]Scalar, len(o.haystack))
	copy(h, o.haystack)
	return h
}

func (o *OneOf) Contains(value any) bool {
	for _, s := range o.haystack {
		if strictEqual(value, s.value) {
			return true
		}
	}
	return false
}

func (o *OneOf) Validate(value any) Result {
	if o.Contains(value) {
		return Pass()
	}
	return Fail(CodeNotOneOf, oneOfTemplate, map[string]string{
		"haystack": o.rendered,
		"value":    describe(value),
	})
}
