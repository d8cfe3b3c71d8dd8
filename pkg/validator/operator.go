package validator

import (
	"fmt"
	"reflect"
	"sort"
)

// Operator tokens understood by NewByOperator besides the comparison operators.
const (
	TokenRegex       = "REGEX"
	TokenNotRegex    = "NOT REGEX"
	TokenIn          = "IN"
	TokenNotIn       = "NOT IN"
	TokenContains    = "CONTAINS"
	TokenNotContains = "NOT CONTAINS"
	TokenLike        = "LIKE"
	TokenNotLike     = "NOT LIKE"
)

// Codes reported by the negated operator tokens.
const (
	CodeRegexMatch     = "regexMatch"
	CodeIsOneOf        = "isOneOf"
	CodeContainsString = "containsString"
	CodeContainsLike   = "containsLike"
)

type operatorFactory func(compared any) (Validator, error)

var operatorTable = map[string]operatorFactory{
	TokenRegex: func(compared any) (Validator, error) {
		return newRegexFor(TokenRegex, compared)
	},
	TokenNotRegex: func(compared any) (Validator, error) {
		re, err := newRegexFor(TokenNotRegex, compared)
		if err != nil {
			return nil, err
		}
		msg := fmt.Sprintf("Must not match pattern '%s'.", re.Pattern())
		return WithMessage(CodeRegexMatch, msg, Not(re, msg)), nil
	},
	TokenIn: func(compared any) (Validator, error) {
		return newOneOfFor(TokenIn, compared)
	},
	TokenNotIn: func(compared any) (Validator, error) {
		o, err := newOneOfFor(TokenNotIn, compared)
		if err != nil {
			return nil, err
		}
		msg := fmt.Sprintf("Must not be one of %s.", o.rendered)
		return WithMessage(CodeIsOneOf, msg, Not(o, msg)), nil
	},
	TokenContains: func(compared any) (Validator, error) {
		return NewContainsString(ContainsStringConfig{Needle: compared})
	},
	TokenNotContains: func(compared any) (Validator, error) {
		c, err := NewContainsString(ContainsStringConfig{Needle: compared})
		if err != nil {
			return nil, err
		}
		msg := fmt.Sprintf("Must not contain string %q.", c.Needle())
		return WithMessage(CodeContainsString, msg, Not(c, msg)), nil
	},
}

var likeTable = map[string]operatorFactory{
	TokenLike: func(compared any) (Validator, error) {
		return NewContainsString(ContainsStringConfig{Needle: compared, IgnoreCase: true})
	},
	TokenNotLike: func(compared any) (Validator, error) {
		c, err := NewContainsString(ContainsStringConfig{Needle: compared, IgnoreCase: true})
		if err != nil {
			return nil, err
		}
		msg := fmt.Sprintf("Must not contain string %q in any case.", c.Needle())
		return WithMessage(CodeContainsLike, msg, Not(c, msg)), nil
	},
}

func init() {
	for _, op := range Operators {
		operatorTable[string(op)] = func(compared any) (Validator, error) {
			return NewComparison(ComparisonConfig{Operator: op, Compared: compared})
		}
	}
}

// ByOperatorConfig selects a validator by operator token. LIKE and NOT LIKE
// are only recognised when AllowLike is set.
type ByOperatorConfig struct {
	Operator  string
	Compared  any
	AllowLike bool
}

// ByOperator delegates to the validator its operator token maps to.
type ByOperator struct {
	operator string
	origin   Validator
}

func NewByOperator(cfg ByOperatorConfig) (*ByOperator, error) {
	factory, ok := operatorTable[cfg.Operator]
	if !ok && cfg.AllowLike {
		factory, ok = likeTable[cfg.Operator]
	}
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperator, cfg.Operator)
	}

	origin, err := factory(cfg.Compared)
	if err != nil {
		return nil, fmt.Errorf("operator %q: %w", cfg.Operator, err)
	}
	return &ByOperator{operator: cfg.Operator, origin: origin}, nil
}

// OperatorTokens returns every token NewByOperator accepts, sorted.
func OperatorTokens(allowLike bool) []string {
	tokens := make([]string, 0, len(operatorTable)+len(likeTable))
	for token := range operatorTable {
		tokens = append(tokens, token)
	}
	if allowLike {
		for token := range likeTable {
			tokens = append(tokens, token)
		}
	}
	sort.Strings(tokens)
	return tokens
}

func (b *ByOperator) Operator() string {
	return b.operator
}

func (b *ByOperator) Validate(value any) Result {
	return b.origin.Validate(value)
}

func newRegexFor(token string, compared any) (*Regex, error) {
	pattern, ok := compared.(string)
	if !ok {
		return nil, fmt.Errorf("%w: %s expects a string pattern, got %T", ErrInvalidCompared, token, compared)
	}
	return NewRegex(RegexConfig{Pattern: pattern})
}

func newOneOfFor(token string, compared any) (*OneOf, error) {
	rv := reflect.ValueOf(compared)
	if KindOf(compared) != KindList {
		return nil, fmt.Errorf("%w: %s expects a list, got %T", ErrInvalidCompared, token, compared)
	}
	haystack := make([]any, rv.Len())
	for i := range haystack {
		haystack[i] = rv.Index(i).Interface()
	}
	return NewOneOf(OneOfConfig{Haystack: haystack})
}
