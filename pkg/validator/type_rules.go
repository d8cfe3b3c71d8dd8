package validator

import (
	"fmt"
	"reflect"
)

const CodeNotOfType = "notOfType"

const typeTemplate = "Must be of type '%{type}' but %{value} is not."

// TypeNames lists the names accepted by NewType. Aliases share a predicate:
// bool/boolean, int/integer and double/float/real.
var TypeNames = []string{
	"array",
	"bool",
	"boolean",
	"double",
	"float",
	"int",
	"integer",
	"null",
	"numeric",
	"object",
	"real",
	"resource",
	"string",
	"scalar",
	"callable",
	"iterable",
}

var typePredicates = map[string]func(any) bool{
	"array":    isArray,
	"bool":     kindIs(KindBool),
	"boolean":  kindIs(KindBool),
	"double":   kindIs(KindFloat),
	"float":    kindIs(KindFloat),
	"real":     kindIs(KindFloat),
	"int":      kindIs(KindInt),
	"integer":  kindIs(KindInt),
	"null":     kindIs(KindNull),
	"numeric":  IsNumeric,
	"object":   kindIs(KindObject),
	"resource": kindIs(KindResource),
	"string":   kindIs(KindString),
	"scalar":   func(v any) bool { return KindOf(v).IsScalar() },
	"callable": kindIs(KindFunc),
	"iterable": isIterable,
}

var supportedTypes = NewOneOfScalars(func() []Scalar {
	s := make([]Scalar, len(TypeNames))
	for i, name := range TypeNames {
		s[i] = String(name)
	}
	return s
}()...)

// TypeConfig configures a Type validator. An empty Type means "null".
type TypeConfig struct {
	Type string
}

// Type checks that a value belongs to a named type.
//
// Go values map onto the names as follows: array is a slice, array or map;
// object is a struct or a pointer to one; resource is an io.Closer; callable
// is a func; iterable is anything range can walk, including iter.Seq and
// iter.Seq2 functions.
type Type struct {
	name  string
	check func(any) bool
}

func NewType(cfg TypeConfig) (*Type, error) {
	name := cfg.Type
	if name == "" {
		name = "null"
	}

	if res := supportedTypes.Validate(name); !res.Valid() {
		return nil, fmt.Errorf("%w: Invalid 'type': %s", ErrUnsupportedType, res.Messages[0].Text)
	}

	return &Type{name: name, check: typePredicates[name]}, nil
}

func (t *Type) Name() string {
	return t.name
}

func (t *Type) Validate(value any) Result {
	if t.check(value) {
		return Pass()
	}
	return Fail(CodeNotOfType, typeTemplate, map[string]string{
		"type":  t.name,
		"value": describe(value),
	})
}

func kindIs(k Kind) func(any) bool {
	return func(v any) bool {
		return KindOf(v) == k
	}
}

func isArray(v any) bool {
	k := KindOf(v)
	return k == KindList || k == KindMap
}

func isIterable(v any) bool {
	switch KindOf(v) {
	case KindList, KindMap, KindChan:
		return true
	case KindFunc:
		return isSeq(reflect.TypeOf(v))
	}
	return false
}

// isSeq matches func(yield func(...) bool) with at most two yielded values.
func isSeq(t reflect.Type) bool {
	if t.NumIn() != 1 || t.NumOut() != 0 {
		return false
	}
	yield := t.In(0)
	return yield.Kind() == reflect.Func &&
		yield.NumIn() <= 2 &&
		yield.NumOut() == 1 &&
		yield.Out(0).Kind() == reflect.Bool
}
