package validator

// CodeNegated is the code of the message reported by Not.
const CodeNegated = "negated"

// NotValidator inverts another validator.
type NotValidator struct {
	origin  Validator
	message string
}

// Not is valid exactly when origin is not. When origin accepts the value the
// result carries the single message {negated: message}.
func Not(origin Validator, message string) *NotValidator {
	return &NotValidator{origin: origin, message: message}
}

func (n *NotValidator) Validate(value any) Result {
	if n.origin.Validate(value).Valid() {
		return Result{Messages: Messages{{Code: CodeNegated, Text: n.message}}}
	}
	return Pass()
}

// MessageOverride replaces every failure of its origin with one fixed message.
type MessageOverride struct {
	code    string
	message string
	origin  Validator
}

// WithMessage keeps origin's outcome but reports {code: message} on failure,
// however many messages origin produced.
func WithMessage(code, message string, origin Validator) *MessageOverride {
	return &MessageOverride{code: code, message: message, origin: origin}
}

func (m *MessageOverride) Validate(value any) Result {
	if m.origin.Validate(value).Valid() {
		return Pass()
	}
	return Result{Messages: Messages{{Code: m.code, Text: m.message}}}
}
