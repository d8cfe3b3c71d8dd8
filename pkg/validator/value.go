package validator

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/big"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Kind classifies a dynamic value for type checks and comparisons.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindList
	KindMap
	KindFunc
	KindChan
	KindResource
	KindObject
	KindOther
)

var kindNames = [...]string{
	KindNull:     "null",
	KindBool:     "bool",
	KindInt:      "int",
	KindFloat:    "float",
	KindString:   "string",
	KindList:     "list",
	KindMap:      "map",
	KindFunc:     "func",
	KindChan:     "chan",
	KindResource: "resource",
	KindObject:   "object",
	KindOther:    "other",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsScalar reports whether the kind is bool, int, float or string.
func (k Kind) IsScalar() bool {
	return k == KindBool || k == KindInt || k == KindFloat || k == KindString
}

// KindOf classifies v. Nil pointers, maps, slices, funcs and channels are null.
// Any non-nil io.Closer is a resource.
func KindOf(v any) Kind {
	if v == nil {
		return KindNull
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return KindNull
		}
	}

	if _, ok := v.(io.Closer); ok {
		return KindResource
	}

	switch rv.Kind() {
	case reflect.Bool:
		return KindBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return KindInt
	case reflect.Float32, reflect.Float64:
		return KindFloat
	case reflect.String:
		return KindString
	case reflect.Slice, reflect.Array:
		return KindList
	case reflect.Map:
		return KindMap
	case reflect.Func:
		return KindFunc
	case reflect.Chan:
		return KindChan
	case reflect.Struct:
		return KindObject
	case reflect.Pointer:
		if rv.Elem().Kind() == reflect.Struct {
			return KindObject
		}
	}
	return KindOther
}

// Scalar is a haystack entry: null, bool, int, float or string.
type Scalar struct {
	kind  Kind
	value any
}

func Null() Scalar              { return Scalar{kind: KindNull} }
func Bool(b bool) Scalar        { return Scalar{kind: KindBool, value: b} }
func Int(i int64) Scalar        { return Scalar{kind: KindInt, value: i} }
func Float(f float64) Scalar    { return Scalar{kind: KindFloat, value: f} }
func String(s string) Scalar    { return Scalar{kind: KindString, value: s} }
func (s Scalar) Kind() Kind     { return s.kind }
func (s Scalar) Value() any     { return s.value }
func (s Scalar) String() string { return describe(s.value) }

// ScalarOf converts v into a Scalar. Values of any other kind return ErrNotScalar.
func ScalarOf(v any) (Scalar, error) {
	switch KindOf(v) {
	case KindNull:
		return Null(), nil
	case KindBool:
		return Bool(reflect.ValueOf(v).Bool()), nil
	case KindInt:
		rv := reflect.ValueOf(v)
		if rv.CanInt() {
			return Int(rv.Int()), nil
		}
		u := rv.Uint()
		if u <= math.MaxInt64 {
			return Int(int64(u)), nil
		}
		return Scalar{kind: KindInt, value: u}, nil
	case KindFloat:
		return Float(reflect.ValueOf(v).Float()), nil
	case KindString:
		return String(reflect.ValueOf(v).String()), nil
	}
	return Scalar{}, fmt.Errorf("%w: %T", ErrNotScalar, v)
}

var numericPattern = regexp.MustCompile(`^[ \t\n\r\v\f]*[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?[ \t\n\r\v\f]*$`)

// IsNumericString reports whether s is a decimal or exponent number with
// optional surrounding whitespace.
func IsNumericString(s string) bool {
	return numericPattern.MatchString(s)
}

// IsNumeric reports whether v is an int, a float or a numeric string.
func IsNumeric(v any) bool {
	switch KindOf(v) {
	case KindInt, KindFloat:
		return true
	case KindString:
		return IsNumericString(reflect.ValueOf(v).String())
	}
	return false
}

// maxDecimalExponent bounds the exponent of values handled as decimals.
// Cmp and Mod rescale operands to a common exponent, so larger exponents are
// compared as floats instead.
const maxDecimalExponent = 1000

// toDecimal converts numbers, numeric strings and decimals. NaN, infinities
// and exponents beyond maxDecimalExponent are rejected.
func toDecimal(v any) (decimal.Decimal, bool) {
	if d, ok := v.(decimal.Decimal); ok {
		return d, inDecimalRange(d)
	}
	rv := reflect.ValueOf(v)
	switch KindOf(v) {
	case KindInt:
		if rv.CanInt() {
			return decimal.NewFromInt(rv.Int()), true
		}
		return decimal.NewFromBigInt(new(big.Int).SetUint64(rv.Uint()), 0), true
	case KindFloat:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return decimal.Decimal{}, false
		}
		return decimal.NewFromFloat(f), true
	case KindString:
		s := rv.String()
		if !IsNumericString(s) {
			return decimal.Decimal{}, false
		}
		d, err := decimal.NewFromString(strings.TrimSpace(s))
		if err != nil {
			return decimal.Decimal{}, false
		}
		return d, inDecimalRange(d)
	}
	return decimal.Decimal{}, false
}

func inDecimalRange(d decimal.Decimal) bool {
	exp := d.Exponent()
	return exp <= maxDecimalExponent && exp >= -maxDecimalExponent
}

// toFloat converts numbers and numeric strings. Strings out of float range
// become ±Inf or 0.

func toFloat(v any) (float64, bool) {
	if d, ok := v.(decimal.Decimal); ok {
		f, err := strconv.ParseFloat(d.Coefficient().String()+"e"+strconv.Itoa(int(d.Exponent())), 64)
		return f, err == nil || errors.Is(err, strconv.ErrRange)
	}
	rv := reflect.ValueOf(v)
	switch KindOf(v) {
	case KindInt:
		if rv.CanInt() {
			return float64(rv.Int()), true
		}
		return float64(rv.Uint()), true
	case KindFloat:
		return rv.Float(), true
	case KindString:
		s := rv.String()
		if !IsNumericString(s) {
			return 0, false
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// truthy follows the usual dynamic-language rules: zero values, empty
// strings, "0" and empty collections are false.
func truthy(v any) bool {
	rv := reflect.ValueOf(v)
	switch KindOf(v) {
	case KindNull:
		return false
	case KindBool:
		return rv.Bool()
	case KindInt:
		if rv.CanInt() {
			return rv.Int() != 0
		}
		return rv.Uint() != 0
	case KindFloat:
		return rv.Float() != 0
	case KindString:
		s := rv.String()
		return s != "" && s != "0"
	case KindList, KindMap:
		return rv.Len() > 0
	}
	return true
}

// toString is the string form of v used when a string is expected: nil and
// false become "", true becomes "1".
func toString(v any) string {
	switch KindOf(v) {
	case KindNull:
		return ""
	case KindBool:
		if reflect.ValueOf(v).Bool() {
			return "1"
		}
		return ""
	}
	return describe(v)
}

// describe renders v for messages.
func describe(v any) string {
	if KindOf(v) == KindNull {
		return "null"
	}

	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float64:
		return formatFloat(x, 64)
	case float32:
		return formatFloat(float64(x), 32)
	case fmt.Stringer:
		return x.String()
	case error:
		return x.Error()
	}

	rv := reflect.ValueOf(v)
	switch KindOf(v) {
	case KindBool:
		return strconv.FormatBool(rv.Bool())
	case KindInt:
		if rv.CanInt() {
			return strconv.FormatInt(rv.Int(), 10)
		}
		return strconv.FormatUint(rv.Uint(), 10)
	case KindFloat:
		return formatFloat(rv.Float(), rv.Type().Bits())
	case KindString:
		return rv.String()
	case KindList:
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = describe(rv.Index(i).Interface())
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindMap:
		parts := make([]string, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			parts = append(parts, describe(iter.Key().Interface())+": "+describe(iter.Value().Interface()))
		}
		sort.Strings(parts)
		return "[" + strings.Join(parts, ", ") + "]"
	case KindResource:
		return fmt.Sprintf("%T resource", v)
	}
	return fmt.Sprintf("%T object", v)
}

func formatFloat(f float64, bits int) string {
	return strconv.FormatFloat(f, 'g', -1, bits)
}

// describeList renders a haystack as "[a, b, c]".
func describeList[T any](items []T) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = describe(item)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// cmpUnordered is returned by looseCompare when operands have no ordering.
const cmpUnordered = 2

// strictEqual reports identical kind and value. All integer types share one
// kind, as do both float types.
func strictEqual(a, b any) bool {
	ka, kb := KindOf(a), KindOf(b)
	if ka != kb {
		return false
	}
	switch ka {
	case KindNull:
		return true
	case KindBool:
		return reflect.ValueOf(a).Bool() == reflect.ValueOf(b).Bool()
	case KindInt:
		da, _ := toDecimal(a)
		db, _ := toDecimal(b)
		return da.Equal(db)
	case KindFloat:
		return reflect.ValueOf(a).Float() == reflect.ValueOf(b).Float()
	case KindString:
		return reflect.ValueOf(a).String() == reflect.ValueOf(b).String()
	case KindObject, KindResource, KindChan:
		ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
		if ra.Kind() == reflect.Pointer || ra.Kind() == reflect.Chan {
			return ra.Type() == rb.Type() && ra.Pointer() == rb.Pointer()
		}
	}
	return reflect.DeepEqual(a, b)
}

// looseCompare compares with type coercion and returns -1, 0, 1 or
// cmpUnordered.
func looseCompare(a, b any) int {
	ka, kb := KindOf(a), KindOf(b)

	switch {
	case ka == KindNull && kb == KindNull:
		return 0
	case ka == KindNull && kb == KindString:
		return strings.Compare("", reflect.ValueOf(b).String())
	case ka == KindString && kb == KindNull:
		return strings.Compare(reflect.ValueOf(a).String(), "")
	case ka == KindBool || kb == KindBool || ka == KindNull || kb == KindNull:
		return compareBool(truthy(a), truthy(b))
	}

	if isStringLike(a, ka) && isStringLike(b, kb) {
		sa, sb := toString(a), toString(b)
		if IsNumericString(sa) && IsNumericString(sb) {
			return compareNumbers(sa, sb)
		}
		return strings.Compare(sa, sb)
	}

	na, nb := isNumber(ka), isNumber(kb)
	switch {
	case na && nb:
		return compareNumbers(a, b)
	case na && isStringLike(b, kb):
		if IsNumericString(toString(b)) {
			return compareNumbers(a, toString(b))
		}
		return strings.Compare(toString(a), toString(b))
	case nb && isStringLike(a, ka):
		if IsNumericString(toString(a)) {
			return compareNumbers(toString(a), b)
		}
		return strings.Compare(toString(a), toString(b))
	}

	switch {
	case ka == KindList && kb == KindList:
		return compareLists(reflect.ValueOf(a), reflect.ValueOf(b))
	case ka == KindMap && kb == KindMap:
		return compareMaps(reflect.ValueOf(a), reflect.ValueOf(b))
	case ka == KindList || ka == KindMap:
		return 1
	case kb == KindList || kb == KindMap:
		return -1
	}

	if strictEqual(a, b) || reflect.DeepEqual(a, b) {
		return 0
	}
	return cmpUnordered
}

func isNumber(k Kind) bool {
	return k == KindInt || k == KindFloat
}

// isStringLike covers strings and values that render themselves as strings.
func isStringLike(v any, k Kind) bool {
	if k == KindString {
		return true
	}
	if k == KindObject || k == KindOther {
		_, ok := v.(fmt.Stringer)
		return ok
	}
	return false
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	}
	return 1
}

func compareNumbers(a, b any) int {
	da, okA := toDecimal(a)
	db, okB := toDecimal(b)
	if okA && okB {
		return da.Cmp(db)
	}
	fa, _ := toFloat(a)
	fb, _ := toFloat(b)
	switch {
	case math.IsNaN(fa) || math.IsNaN(fb):
		return cmpUnordered
	case fa < fb:
		return -1
	case fa > fb:
		return 1
	}
	return 0
}

func compareLists(a, b reflect.Value) int {
	if a.Len() != b.Len() {
		return compareLen(a.Len(), b.Len())
	}
	for i := 0; i < a.Len(); i++ {
		if c := looseCompare(a.Index(i).Interface(), b.Index(i).Interface()); c != 0 {
			return c
		}
	}
	return 0
}

func compareMaps(a, b reflect.Value) int {
	if a.Len() != b.Len() {
		return compareLen(a.Len(), b.Len())
	}
	if a.Type().Key() != b.Type().Key() {
		return cmpUnordered
	}
	iter := a.MapRange()
	for iter.Next() {
		other := b.MapIndex(iter.Key())
		if !other.IsValid() {
			return cmpUnordered
		}
		if c := looseCompare(iter.Value().Interface(), other.Interface()); c != 0 {
			return c
		}
	}
	return 0
}

func compareLen(a, b int) int {
	if a < b {
		return -1
	}
	return 1
}
