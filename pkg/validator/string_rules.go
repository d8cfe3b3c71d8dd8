package validator

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

const (
	CodeNotContainsString = "notContainsString"
	CodeRegexNotMatch     = "regexNotMatch"
	CodeRegexInvalid      = "regexInvalid"
)

const (
	containsTemplate      = `Must contain string "%{needle}".`
	regexNotMatchTemplate = "Must match pattern '%{pattern}' but %{value} does not."
	regexInvalidTemplate  = "Must be a string, integer or float."
)

var validNeedles = WithMessage(
	"noMatchingTypes",
	"Must be string or implement fmt.Stringer",
	Any(
		mustType("string"),
		Func(func(v any) Result {
			if _, ok := v.(fmt.Stringer); ok && KindOf(v) != KindNull {
				return Pass()
			}
			return Fail("notStringer", "Must implement fmt.Stringer.", nil)
		}),
		mustType("null"),
	),
)

// ContainsStringConfig configures a ContainsString validator. Needle must be
// a string, a fmt.Stringer or nil (the empty string).
type ContainsStringConfig struct {
	Needle     any
	IgnoreCase bool
}

// ContainsString checks that the string form of a value contains the needle.
type ContainsString struct {
	needle     string
	ignoreCase bool
}

func NewContainsString(cfg ContainsStringConfig) (*ContainsString, error) {
	if res := validNeedles.Validate(cfg.Needle); !res.Valid() {
		return nil, fmt.Errorf("%w: Invalid 'needle': %s", ErrInvalidNeedle, res.Messages[0].Text)
	}
	return &ContainsString{needle: toString(cfg.Needle), ignoreCase: cfg.IgnoreCase}, nil
}

func (c *ContainsString) Needle() string {
	return c.needle
}

func (c *ContainsString) Validate(value any) Result {
	haystack, needle := toString(value), c.needle
	if c.ignoreCase {
		// A Caser is stateful, so each call folds with its own.
		haystack = cases.Fold().String(haystack)
		needle = cases.Fold().String(needle)
	}

	if strings.Contains(haystack, needle) {
		return Pass()
	}
	return Fail(CodeNotContainsString, containsTemplate, map[string]string{
		"needle": c.needle,
		"value":  describe(value),
	})
}

// RegexConfig configures a Regex validator. Pattern is either delimited with
// trailing flags ("/^foo$/i") or a bare RE2 expression.
type RegexConfig struct {
	Pattern string
}

// Regex matches the string form of scalar values against a pattern.
type Regex struct {
	pattern string
	re      *regexp.Regexp
}

func NewRegex(cfg RegexConfig) (*Regex, error) {
	expr, err := translatePattern(cfg.Pattern)
	if err != nil {
		return nil, err
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidPattern, cfg.Pattern, err)
	}
	return &Regex{pattern: cfg.Pattern, re: re}, nil
}

func (r *Regex) Pattern() string {
	return r.pattern
}

func (r *Regex) Validate(value any) Result {
	switch KindOf(value) {
	case KindString, KindInt, KindFloat:
	default:
		return Fail(CodeRegexInvalid, regexInvalidTemplate, nil)
	}

	if r.re.MatchString(toString(value)) {
		return Pass()
	}
	return Fail(CodeRegexNotMatch, regexNotMatchTemplate, map[string]string{
		"pattern": r.pattern,
		"value":   describe(value),
	})
}

var closingDelimiters = map[byte]byte{'(': ')', '[': ']', '{': '}', '<': '>'}

const (
	patternDelimiters = "/#~%@!|+;,"
	patternModifiers  = "imsUuD"
)

// translatePattern turns "/expr/flags" into "(?flags)expr". Patterns without
// a recognised delimiter are returned unchanged. Bracket pairs only count as
// delimiters when followed by modifiers, so "[abc]" and "(a)|b" stay bare.
func translatePattern(pattern string) (string, error) {
	if len(pattern) < 2 {
		return pattern, nil
	}

	open := pattern[0]
	closer, bracketed := closingDelimiters[open]
	if !bracketed {
		if !strings.ContainsRune(patternDelimiters, rune(open)) {
			return pattern, nil
		}
		closer = open
	}

	end := strings.LastIndexByte(pattern, closer)
	if bracketed && (end <= 0 || !isModifierList(pattern[end+1:])) {
		return pattern, nil
	}
	if end <= 0 {
		return "", fmt.Errorf("%w: %q: no ending delimiter %q", ErrInvalidPattern, pattern, closer)
	}

	expr, modifiers := pattern[1:end], pattern[end+1:]
	var flags strings.Builder
	for _, m := range modifiers {
		switch m {
		case 'i', 'm', 's', 'U':
			flags.WriteRune(m)
		case 'u', 'D':
			// RE2 is always UTF-8 and "$" already anchors at the very end without m.
		default:
			return "", fmt.Errorf("%w: %q: unsupported modifier %q", ErrInvalidPattern, pattern, m)
		}
	}

	if flags.Len() == 0 {
		return expr, nil
	}
	return "(?" + flags.String() + ")" + expr, nil
}

func isModifierList(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune(patternModifiers, r) {
			return false
		}
	}
	return true
}

func mustType(name string) *Type {
	t, err := NewType(TypeConfig{Type: name})
	if err != nil {
		panic(err)
	}
	return t
}
