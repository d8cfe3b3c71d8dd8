package validator

import (
	"maps"
	"regexp"
)

// Validator decides whether a value is valid. Implementations keep no
// per-call state, so one instance can be shared between goroutines.
type Validator interface {
	Validate(value any) Result
}

// Message is a single failure reason.
type Message struct {
	Code   string
	Text   string
	Params map[string]string
}

// Messages is an ordered set of failure reasons keyed by code.
type Messages []Message

func (m Messages) Len() int {
	return len(m)
}

func (m Messages) Has(code string) bool {
	_, ok := m.Get(code)
	return ok
}

// Get returns the text recorded for code.
func (m Messages) Get(code string) (string, bool) {
	for _, msg := range m {
		if msg.Code == code {
			return msg.Text, true
		}
	}
	return "", false
}

func (m Messages) Codes() []string {
	codes := make([]string, len(m))
	for i, msg := range m {
		codes[i] = msg.Code
	}
	return codes
}

func (m Messages) Texts() []string {
	texts := make([]string, len(m))
	for i, msg := range m {
		texts[i] = msg.Text
	}
	return texts
}

// Map returns code -> text. Order is lost; use the slice when it matters.
func (m Messages) Map() map[string]string {
	out := make(map[string]string, len(m))
	for _, msg := range m {
		out[msg.Code] = msg.Text
	}
	return out
}

// With returns a copy of m with msg added. A message with the same code is
// replaced in place.
func (m Messages) With(msg Message) Messages {
	out := make(Messages, len(m), len(m)+1)
	copy(out, m)
	for i := range out {
		if out[i].Code == msg.Code {
			out[i] = msg
			return out
		}
	}
	return append(out, msg)
}

// Merge returns m followed by other, with later codes replacing earlier ones.
func (m Messages) Merge(other Messages) Messages {
	out := make(Messages, len(m), len(m)+len(other))
	copy(out, m)
	for _, msg := range other {
		out = out.With(msg)
	}
	return out
}

// Result is the outcome of one Validate call.
type Result struct {
	Messages Messages
}

// Valid reports whether no failure was recorded.
func (r Result) Valid() bool {
	return len(r.Messages) == 0
}

// Pass returns a valid result.
func Pass() Result {
	return Result{}
}

// Fail returns an invalid result with a single message rendered from tmpl.
func Fail(code, tmpl string, params map[string]string) Result {
	return Result{Messages: Messages{{
		Code:   code,
		Text:   Format(tmpl, params),
		Params: maps.Clone(params),
	}}}
}

// IsValid validates value and reports the boolean outcome only.
func IsValid(v Validator, value any) bool {
	return v.Validate(value).Valid()
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// Format replaces "%{name}" placeholders with params. Unknown placeholders
// are kept as is.
func Format(tmpl string, params map[string]string) string {
	if len(params) == 0 {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}

// Func adapts an ordinary function to the Validator interface.
type Func func(value any) Result

func (f Func) Validate(value any) Result {
	return f(value)
}

// AlwaysValid accepts every value.
func AlwaysValid() Validator {
	return Func(func(any) Result { return Pass() })
}

// Reporter collects messages inside a Freeform validator.
type Reporter struct {
	messages Messages
}

// Error records a failure. Reporting the same code twice keeps the last text.
func (r *Reporter) Error(code, text string) {
	r.messages = r.messages.With(Message{Code: code, Text: text})
}

// Errorf records a failure rendered from a "%{name}" template.
func (r *Reporter) Errorf(code, tmpl string, params map[string]string) {
	r.messages = r.messages.With(Message{Code: code, Text: Format(tmpl, params), Params: maps.Clone(params)})
}

// Freeform builds a validator from a function that reports any number of
// failures. The value is valid when nothing was reported.
func Freeform(fn func(value any, r *Reporter)) Validator {
	return Func(func(value any) Result {
		r := &Reporter{}
		fn(value, r)
		return Result{Messages: r.messages}
	})
}
