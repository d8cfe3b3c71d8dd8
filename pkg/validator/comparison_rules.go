package validator

import "fmt"

// Operator is a comparison operator token.
type Operator string

const (
	OpEqual          Operator = "=="
	OpIdentical      Operator = "==="
	OpNotEqual       Operator = "!="
	OpNotEqualAlt    Operator = "<>"
	OpNotIdentical   Operator = "!=="
	OpLess           Operator = "<"
	OpGreater        Operator = ">"
	OpLessOrEqual    Operator = "<="
	OpGreaterOrEqual Operator = ">="
)

const (
	CodeNotEqual                = "notEqual"
	CodeNotIdentical            = "notIdentical"
	CodeIsEqual                 = "isEqual"
	CodeIsIdentical             = "isIdentical"
	CodeNotLessThan             = "notLessThan"
	CodeNotGreaterThan          = "notGreaterThan"
	CodeNotLessThanOrEqualTo    = "notLessThanOrEqualTo"
	CodeNotGreaterThanOrEqualTo = "notGreaterThanOrEqualTo"
)

// Operators lists the supported comparison operators.
var Operators = []Operator{
	OpEqual,
	OpIdentical,
	OpNotEqual,
	OpNotEqualAlt,
	OpNotIdentical,
	OpLess,
	OpGreater,
	OpLessOrEqual,
	OpGreaterOrEqual,
}

var operatorCodes = map[Operator]string{
	OpEqual:          CodeNotEqual,
	OpIdentical:      CodeNotIdentical,
	OpNotEqual:       CodeIsEqual,
	OpNotEqualAlt:    CodeIsEqual,
	OpNotIdentical:   CodeIsIdentical,
	OpLess:           CodeNotLessThan,
	OpGreater:        CodeNotGreaterThan,
	OpLessOrEqual:    CodeNotLessThanOrEqualTo,
	OpGreaterOrEqual: CodeNotGreaterThanOrEqualTo,
}

var comparisonTemplates = map[string]string{
	CodeNotEqual:                "Must be equal to %{compared} but is %{value}.",
	CodeNotIdentical:            "Must be identical to %{compared} but is %{value}.",
	CodeIsEqual:                 "Must not be equal to %{compared} but is %{value}.",
	CodeIsIdentical:             "Must not be identical to %{compared}.",
	CodeNotLessThan:             "Must be less than %{compared} but is %{value}.",
	CodeNotGreaterThan:          "Must be greater than %{compared} but is %{value}.",
	CodeNotLessThanOrEqualTo:    "Must be less than or equal to %{compared} but is %{value}.",
	CodeNotGreaterThanOrEqualTo: "Must be greater than or equal to %{compared} but is %{value}.",
}

var supportedOperators = NewOneOfScalars(func() []Scalar {
	s := make([]Scalar, len(Operators))
	for i, op := range Operators {
		s[i] = String(string(op))
	}
	return s
}()...)

// ComparisonConfig configures a Comparison. An empty Operator means "===".
type ComparisonConfig struct {
	Operator Operator
	Compared any
}

// Comparison checks "value <operator> compared". "==", "!=" and "<>" as well
// as the ordering operators coerce operand types; "===" and "!==" do not.
type Comparison struct {
	operator Operator
	compared any
}

func NewComparison(cfg ComparisonConfig) (*Comparison, error) {
	op := cfg.Operator
	if op == "" {
		op = OpIdentical
	}

	if res := supportedOperators.Validate(string(op)); !res.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedOperator, res.Messages[0].Text)
	}

	return &Comparison{operator: op, compared: cfg.Compared}, nil
}

func (c *Comparison) Operator() Operator {
	return c.operator
}

func (c *Comparison) Compared() any {
	return c.compared
}

func (c *Comparison) Validate(value any) Result {
	if compare(value, c.operator, c.compared) {
		return Pass()
	}

	code := operatorCodes[c.operator]
	return Fail(code, comparisonTemplates[code], map[string]string{
		"compared": describe(c.compared),
		"value":    describe(value),
	})
}

// Compare evaluates "a <op> b". Unknown operators yield false.
func Compare(a any, op Operator, b any) bool {
	return compare(a, op, b)
}

func compare(a any, op Operator, b any) bool {
	switch op {
	case OpIdentical:
		return strictEqual(a, b)
	case OpNotIdentical:
		return !strictEqual(a, b)
	}

	c := looseCompare(a, b)
	switch op {
	case OpEqual:
		return c == 0
	case OpNotEqual, OpNotEqualAlt:
		return c != 0
	case OpLess:
		return c == -1
	case OpGreater:
		return c == 1
	case OpLessOrEqual:
		return c == -1 || c == 0
	case OpGreaterOrEqual:
		return c == 1 || c == 0
	}
	return false
}
