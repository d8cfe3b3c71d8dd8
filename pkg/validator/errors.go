package validator

import "errors"

// Configuration errors are returned by constructors. Failed validation is
// never an error; it is reported through Result.
var (
	// ErrValidationFailed is matched by ValidationErrors via errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrUnsupportedOperator is returned for an unknown comparison operator.
	ErrUnsupportedOperator = errors.New("unsupported comparison operator")

	// ErrUnsupportedType is returned for an unknown type name.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrNotScalar is returned when a value cannot be converted to a Scalar.
	ErrNotScalar = errors.New("value is not scalar")

	// ErrNonScalarHaystack is returned when a OneOf haystack holds a non-scalar entry.
	ErrNonScalarHaystack = errors.New("haystack must contain only scalar values")

	// ErrInvalidNeedle is returned when a needle is neither a string, a fmt.Stringer nor nil.
	ErrInvalidNeedle = errors.New("invalid needle")

	// ErrInvalidDivisor is returned for a zero or non-numeric divisor.
	ErrInvalidDivisor = errors.New("invalid divisor")

	// ErrInvalidPattern is returned when a regular expression cannot be compiled.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrUnknownOperator is returned for an operator token with no validator.
	ErrUnknownOperator = errors.New("unknown operator token")

	// ErrInvalidCompared is returned when the compared value does not fit the operator token.
	ErrInvalidCompared = errors.New("invalid compared value")
)
