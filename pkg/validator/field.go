package validator

import (
	"errors"
	"slices"
	"strings"
)

// ValidationError is one failure of one field, with translation support.
type ValidationError struct {
	Field             string
	Code              string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors holds every failure of an Apply call in rule order.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	var b strings.Builder
	b.WriteString(ErrValidationFailed.Error())
	for i, e := range ve {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(e.Field + ": " + e.Message)
	}
	return b.String()
}

// Is makes errors.Is(err, ErrValidationFailed) true for any ValidationErrors.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

// Fields lists the failed fields once each, in first-failure order.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	for _, e := range ve {
		if !slices.Contains(fields, e.Field) {
			fields = append(fields, e.Field)
		}
	}
	return fields
}

// ForField returns the failures of one field.
func (ve ValidationErrors) ForField(field string) ValidationErrors {
	var out ValidationErrors
	for _, e := range ve {
		if e.Field == field {
			out = append(out, e)
		}
	}
	return out
}

// Texts returns the messages of one field.
func (ve ValidationErrors) Texts(field string) []string {
	var texts []string
	for _, e := range ve.ForField(field) {
		texts = append(texts, e.Message)
	}
	return texts
}

// Codes returns the codes of one field.
func (ve ValidationErrors) Codes(field string) []string {
	var codes []string
	for _, e := range ve.ForField(field) {
		codes = append(codes, e.Code)
	}
	return codes
}

// Rule binds a validator to a named field value.
type Rule struct {
	Field     string
	Value     any
	Validator Validator
}

// Check builds a Rule for Apply.
func Check(field string, value any, v Validator) Rule {
	return Rule{Field: field, Value: value, Validator: v}
}

// Errors validates the rule and converts each message into a ValidationError.
func (r Rule) Errors() ValidationErrors {
	return FieldErrors(r.Field, r.Validator.Validate(r.Value))
}

// FieldErrors converts a result into field errors. The translation key is
// "validation.<code>" and the message params become translation values.
func FieldErrors(field string, res Result) ValidationErrors {
	if res.Valid() {
		return nil
	}

	errs := make(ValidationErrors, 0, len(res.Messages))
	for _, msg := range res.Messages {
		values := make(map[string]any, len(msg.Params)+1)
		values["field"] = field
		for k, v := range msg.Params {
			values[k] = v
		}
		errs = append(errs, ValidationError{
			Field:             field,
			Code:              msg.Code,
			Message:           msg.Text,
			TranslationKey:    "validation." + msg.Code,
			TranslationValues: values,
		})
	}
	return errs
}

// Apply runs every rule and returns the collected ValidationErrors, or nil.
func Apply(rules ...Rule) error {
	var errs ValidationErrors
	for _, rule := range rules {
		errs = append(errs, rule.Errors()...)
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ErrorsOf unwraps the ValidationErrors carried by err, or returns nil.
func ErrorsOf(err error) ValidationErrors {
	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		return verrs
	}
	return nil
}
