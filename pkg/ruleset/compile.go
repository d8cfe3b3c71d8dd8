package ruleset

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/validext/pkg/logger"
	"github.com/dmitrymomot/validext/pkg/metrics"
	"github.com/dmitrymomot/validext/pkg/validator"
)

// CodeInvalid is used when a node sets message without code.
const CodeInvalid = "invalid"

const defaultNegationMessage = "Must not match the rule."

// Option configures Compile.
type Option func(*options)

type options struct {
	allowLike bool
	logger    *slog.Logger
	collector *metrics.Collector
}

// WithAllowLike enables the LIKE and NOT LIKE operators.
func WithAllowLike(allow bool) Option {
	return func(o *options) { o.allowLike = allow }
}

// WithLogger sets the logger used by the compiled RuleSet.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics counts every field validation under the field path.
func WithMetrics(c *metrics.Collector) Option {
	return func(o *options) { o.collector = c }
}

// Compile builds the validators of def. Every configuration error is
// reported here, before any document is checked.
func Compile(def Definition, opts ...Option) (*RuleSet, error) {
	o := options{logger: logger.Discard()}
	for _, opt := range opts {
		opt(&o)
	}

	if len(def.Fields) == 0 {
		return nil, ErrEmptyRuleSet
	}

	fields := make([]compiledField, 0, len(def.Fields))
	for i, f := range def.Fields {
		if f.Path == "" {
			return nil, fmt.Errorf("%w: field #%d has no path", ErrInvalidRule, i+1)
		}
		v, err := compileNode(&f.Rule, o.allowLike)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Path, err)
		}
		if o.collector != nil {
			v = o.collector.Instrument(f.Path, v)
		}
		fields = append(fields, compiledField{path: f.Path, operator: f.Rule.Operator, validator: v})
	}

	o.logger.Debug("rule set compiled", slog.Int("fields", len(fields)))
	return &RuleSet{fields: fields, logger: o.logger}, nil
}

// CompileFile parses and compiles a rule set file.
func CompileFile(path string, opts ...Option) (*RuleSet, error) {
	def, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	return Compile(def, opts...)
}

func compileNode(n *Node, allowLike bool) (validator.Validator, error) {
	kinds := n.kinds()
	switch len(kinds) {
	case 0:
		return nil, errorAt(n.line, "rule needs one of %s", strings.Join(kindKeys, ", "))
	case 1:
	default:
		return nil, errorAt(n.line, "rule sets more than one kind: %s", strings.Join(kinds, ", "))
	}
	if n.Code != "" && n.Message == "" {
		return nil, errorAt(n.line, "code %q given without message", n.Code)
	}

	kind := kinds[0]
	v, err := buildKind(kind, n, allowLike)
	if err != nil {
		if kind == kindAny || kind == kindAll || kind == kindNot {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidRule, err)
	}

	if n.Message == "" {
		return v, nil
	}
	if kind == kindNot && n.Code == "" {
		return v, nil
	}
	code := n.Code
	if code == "" {
		code = CodeInvalid
	}
	return validator.WithMessage(code, n.Message, v), nil
}

func buildKind(kind string, n *Node, allowLike bool) (validator.Validator, error) {
	switch kind {
	case kindOperator:
		return validator.NewByOperator(validator.ByOperatorConfig{
			Operator:  n.Operator,
			Compared:  n.Compared,
			AllowLike: allowLike,
		})
	case kindType:
		return validator.NewType(validator.TypeConfig{Type: n.Type})
	case kindOneOf:
		return validator.NewOneOf(validator.OneOfConfig{Haystack: n.OneOf})
	case kindContains:
		return validator.NewContainsString(validator.ContainsStringConfig{
			Needle:     n.Contains,
			IgnoreCase: n.IgnoreCase,
		})
	case kindDivisibleBy:
		return validator.NewDivisibleBy(validator.DivisibleByConfig{Divisor: n.DivisibleBy})
	case kindRegex:
		return validator.NewRegex(validator.RegexConfig{Pattern: n.Regex})
	case kindAny:
		children, err := compileChildren(n.Any, allowLike)
		if err != nil {
			return nil, err
		}
		return validator.Any(children...), nil
	case kindAll:
		children, err := compileChildren(n.All, allowLike)
		if err != nil {
			return nil, err
		}
		return validator.Chain(children...), nil
	case kindNot:
		inner, err := compileNode(n.Not, allowLike)
		if err != nil {
			return nil, err
		}
		msg := n.Message
		if msg == "" {
			msg = defaultNegationMessage
		}
		return validator.Not(inner, msg), nil
	}
	return nil, fmt.Errorf("unknown rule kind %q", kind)
}

func compileChildren(nodes []Node, allowLike bool) ([]validator.Validator, error) {
	out := make([]validator.Validator, len(nodes))
	for i := range nodes {
		v, err := compileNode(&nodes[i], allowLike)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func errorAt(line int, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if line > 0 {
		return fmt.Errorf("%w: line %d: %s", ErrInvalidRule, line, msg)
	}
	return fmt.Errorf("%w: %s", ErrInvalidRule, msg)
}
