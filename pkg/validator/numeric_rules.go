package validator

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

const (
	CodeNotDivisibleBy = "notDivisibleBy"
	CodeNotNumeric     = "notNumeric"
)

const (
	divisibleTemplate  = "Must be evenly divisible by %{divisor} but %{value} is not."
	notNumericTemplate = "Must be numeric but %{value} is not."
)

// DivisibleByConfig configures a DivisibleBy validator. Divisor may be any
// number, a numeric string or a decimal.Decimal, and must not be zero.
type DivisibleByConfig struct {
	Divisor any
}

// DivisibleBy checks that a numeric value leaves no remainder. Arithmetic is
// exact, so 0.3 is divisible by 0.1.
type DivisibleBy struct {
	divisor  decimal.Decimal
	rendered string
}

func NewDivisibleBy(cfg DivisibleByConfig) (*DivisibleBy, error) {
	d, ok := toDecimal(cfg.Divisor)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not numeric", ErrInvalidDivisor, describe(cfg.Divisor))
	}
	if d.IsZero() {
		return nil, fmt.Errorf("%w: divisor must not be zero", ErrInvalidDivisor)
	}
	return &DivisibleBy{divisor: d, rendered: describe(cfg.Divisor)}, nil
}

func (d *DivisibleBy) Divisor() decimal.Decimal {
	return d.divisor
}

func (d *DivisibleBy) Validate(value any) Result {
	divisible, numeric := d.divides(value)
	if !numeric {
		return Fail(CodeNotNumeric, notNumericTemplate, map[string]string{
			"value": describe(value),
		})
	}

	if divisible {
		return Pass()
	}
	return Fail(CodeNotDivisibleBy, divisibleTemplate, map[string]string{
		"divisor": d.rendered,
		"value":   describe(value),
	})
}

// divides reports whether value is a multiple of the divisor. Values too
// large for exact arithmetic are checked as floats; infinity divides nothing.
func (d *DivisibleBy) divides(value any) (divisible, numeric bool) {
	if n, ok := toDecimal(value); ok {
		return n.Mod(d.divisor).IsZero(), true
	}
	f, ok := toFloat(value)
	if !ok || KindOf(value) == KindFloat {
		return false, false
	}
	if math.IsInf(f, 0) {
		return false, true
	}
	return math.Mod(f, d.divisor.InexactFloat64()) == 0, true
}
