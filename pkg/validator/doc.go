// Package validator provides small value validators that compose into trees:
// atomic checks, logical combinators, negation and message overrides.
//
// Every validator implements a single method:
//
//	Validate(value any) Result
//
// A Result carries an ordered set of Messages keyed by error code; the value
// is valid when the set is empty. Results are returned by value and
// validators hold no per-call state, so a validator can be shared freely
// between goroutines.
//
// # Building blocks
//
// Atomic validators decide validity from one rule:
//   - Comparison   – "value <op> compared" with loose (==, !=, <>, <, >, <=, >=) or strict (===, !==) semantics
//   - Type         – membership in one of sixteen named types (int, numeric, iterable, ...)
//   - OneOf        – strict membership in a haystack of scalars
//   - ContainsString – substring check, optionally case-insensitive
//   - DivisibleBy  – exact decimal remainder check
//   - Regex        – pattern match, accepting "/expr/flags" patterns
//
// Combinators and decorators wrap other validators:
//   - Any          – logical OR, stops at the first success
//   - Chain        – logical AND, stops at the first failure
//   - Not          – inverts a validator with a fixed message
//   - WithMessage  – collapses every failure into one code and message
//
// NewByOperator maps operator tokens such as "IN", "NOT REGEX" or "===" to
// the matching validator.
//
// # Configuration errors
//
// Constructors take typed configuration structs and reject unsupported
// settings with an error wrapping one of the package sentinels
// (ErrUnsupportedOperator, ErrInvalidDivisor, ...). A failed validation is
// never an error:
//
//	v, err := validator.NewDivisibleBy(validator.DivisibleByConfig{Divisor: 3})
//	if err != nil {
//		return err
//	}
//	res := v.Validate(43)
//	// res.Valid() == false
//	// res.Messages.Map() == map[string]string{"notDivisibleBy": "Must be evenly divisible by 3 but 43 is not."}
//
// # Field errors
//
// Check and Apply turn results into ValidationErrors, which implement error
// and carry a "validation.<code>" translation key per message:
//
//	err := validator.Apply(
//	    validator.Check("age", form.Age, adult),
//	    validator.Check("role", form.Role, roles),
//	)
//	if verrs := validator.ErrorsOf(err); verrs != nil {
//	    // verrs.Texts("age")
//	}
package validator
