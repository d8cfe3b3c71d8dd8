package validator

// AnyValidator is valid when at least one child is. Children run in order and
// evaluation stops at the first success. With no children every value is valid.
type AnyValidator struct {
	validators []Validator
}

// Any combines validators with logical OR. Nil entries are skipped.
func Any(validators ...Validator) *AnyValidator {
	return &AnyValidator{validators: compact(validators)}
}

func (a *AnyValidator) Len() int {
	return len(a.validators)
}

// Validate reports the merged messages of every child when none succeeds.
func (a *AnyValidator) Validate(value any) Result {
	if len(a.validators) == 0 {
		return Pass()
	}

	var messages Messages
	for _, v := range a.validators {
		res := v.Validate(value)
		if res.Valid() {
			return Pass()
		}
		messages = messages.Merge(res.Messages)
	}
	return Result{Messages: messages}
}

// ChainValidator is valid when every child is. Evaluation stops at the first
// failure and only that child's messages are reported.
type ChainValidator struct {
	validators []Validator
}

// Chain combines validators with short-circuit logical AND. Nil entries are skipped.
func Chain(validators ...Validator) *ChainValidator {
	return &ChainValidator{validators: compact(validators)}
}

// FastFailChain is an alias of Chain.
func FastFailChain(validators ...Validator) *ChainValidator {
	return Chain(validators...)
}

func (c *ChainValidator) Len() int {
	return len(c.validators)
}

func (c *ChainValidator) Validate(value any) Result {
	for _, v := range c.validators {
		if res := v.Validate(value); !res.Valid() {
			return res
		}
	}
	return Pass()
}

func compact(validators []Validator) []Validator {
	out := make([]Validator, 0, len(validators))
	for _, v := range validators {
		if v != nil {
			out = append(out, v)
		}
	}
	return out
}
