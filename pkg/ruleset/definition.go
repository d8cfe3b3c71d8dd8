package ruleset

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Definition is the decoded form of a rule set file.
type Definition struct {
	Fields []FieldRule `yaml:"fields" json:"fields"`
}

// FieldRule applies Rule to the value found at Path (gjson syntax).
type FieldRule struct {
	Path string `yaml:"path" json:"path"`
	Rule Node   `yaml:"rule" json:"rule"`
}

// Node describes one validator. Exactly one of the kind keys (operator,
// type, one_of, contains, divisible_by, regex, any, all, not) must be set.
// Message, with an optional Code, replaces the failure messages of the node;
// on a "not" node Message is the negation message.
type Node struct {
	Operator    string `yaml:"operator,omitempty" json:"operator,omitempty"`
	Compared    any    `yaml:"compared,omitempty" json:"compared,omitempty"`
	Type        string `yaml:"type,omitempty" json:"type,omitempty"`
	OneOf       []any  `yaml:"one_of,omitempty" json:"one_of,omitempty"`
	Contains    string `yaml:"contains,omitempty" json:"contains,omitempty"`
	IgnoreCase  bool   `yaml:"ignore_case,omitempty" json:"ignore_case,omitempty"`
	DivisibleBy any    `yaml:"divisible_by,omitempty" json:"divisible_by,omitempty"`
	Regex       string `yaml:"regex,omitempty" json:"regex,omitempty"`
	Any         []Node `yaml:"any,omitempty" json:"any,omitempty"`
	All         []Node `yaml:"all,omitempty" json:"all,omitempty"`
	Not         *Node  `yaml:"not,omitempty" json:"not,omitempty"`
	Message     string `yaml:"message,omitempty" json:"message,omitempty"`
	Code        string `yaml:"code,omitempty" json:"code,omitempty"`

	// keys present in the decoded mapping; nil for nodes built in code
	keys []string
	line int
}

const (
	kindOperator    = "operator"
	kindType        = "type"
	kindOneOf       = "one_of"
	kindContains    = "contains"
	kindDivisibleBy = "divisible_by"
	kindRegex       = "regex"
	kindAny         = "any"
	kindAll         = "all"
	kindNot         = "not"
)

var (
	kindKeys  = []string{kindOperator, kindType, kindOneOf, kindContains, kindDivisibleBy, kindRegex, kindAny, kindAll, kindNot}
	knownKeys = append([]string{"compared", "ignore_case", "message", "code"}, kindKeys...)
)

// UnmarshalYAML records which keys were present so that explicit empty
// values (type: "", one_of: []) still select a kind.
func (n *Node) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return errorAt(value.Line, "rule must be a mapping")
	}

	type plain Node
	if err := value.Decode((*plain)(n)); err != nil {
		return err
	}

	n.line = value.Line
	n.keys = make([]string, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		key := value.Content[i].Value
		if !slices.Contains(knownKeys, key) {
			return errorAt(value.Content[i].Line, "unknown key %q", key)
		}
		n.keys = append(n.keys, key)
	}
	return nil
}

// UnmarshalJSON records the keys present, like UnmarshalYAML, and keeps
// numbers as json.Number until ParseJSON normalizes them.
func (n *Node) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return errorAt(0, "rule must be an object")
	}
	keys := make([]string, 0, len(raw))
	for key := range raw {
		if !slices.Contains(knownKeys, key) {
			return errorAt(0, "unknown key %q", key)
		}
		keys = append(keys, key)
	}
	slices.SortFunc(keys, func(a, b string) int {
		return slices.Index(knownKeys, a) - slices.Index(knownKeys, b)
	})

	type plain Node
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode((*plain)(n)); err != nil {
		return err
	}
	n.keys = keys
	return nil
}

// kinds returns the kind keys set on n.
func (n *Node) kinds() []string {
	if n.keys != nil {
		var kinds []string
		for _, k := range n.keys {
			if slices.Contains(kindKeys, k) {
				kinds = append(kinds, k)
			}
		}
		return kinds
	}

	set := map[string]bool{
		kindOperator:    n.Operator != "",
		kindType:        n.Type != "",
		kindOneOf:       n.OneOf != nil,
		kindContains:    n.Contains != "",
		kindDivisibleBy: n.DivisibleBy != nil,
		kindRegex:       n.Regex != "",
		kindAny:         n.Any != nil,
		kindAll:         n.All != nil,
		kindNot:         n.Not != nil,
	}
	var kinds []string
	for _, k := range kindKeys {
		if set[k] {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// Parse decodes a YAML rule set.
func Parse(data []byte) (Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		if errors.Is(err, ErrInvalidRule) {
			return Definition{}, err
		}
		return Definition{}, errors.Join(ErrFailedToParse, err)
	}
	return def, nil
}

// ParseJSON decodes a JSON rule set. Integral numbers become int64 and the
// rest float64, matching how documents are read.
func ParseJSON(data []byte) (Definition, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	dec.DisallowUnknownFields()

	var def Definition
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, ErrInvalidRule) {
			return Definition{}, err
		}
		return Definition{}, errors.Join(ErrFailedToParse, err)
	}
	for i := range def.Fields {
		def.Fields[i].Rule.normalizeNumbers()
	}
	return def, nil
}

// ParseFile reads a rule set file; ".json" files are decoded as JSON and
// everything else as YAML.
func ParseFile(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, errors.Join(ErrFailedToReadFile, err)
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return ParseJSON(data)
	}
	return Parse(data)
}

func (n *Node) normalizeNumbers() {
	n.Compared = normalizeNumber(n.Compared)
	n.DivisibleBy = normalizeNumber(n.DivisibleBy)
	for i := range n.OneOf {
		n.OneOf[i] = normalizeNumber(n.OneOf[i])
	}
	for i := range n.Any {
		n.Any[i].normalizeNumbers()
	}
	for i := range n.All {
		n.All[i].normalizeNumbers()
	}
	if n.Not != nil {
		n.Not.normalizeNumbers()
	}
}

func normalizeNumber(v any) any {
	switch x := v.(type) {
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i
		}
		if f, err := x.Float64(); err == nil {
			return f
		}
		return x.String()
	case []any:
		for i := range x {
			x[i] = normalizeNumber(x[i])
		}
		return x
	case map[string]any:
		for k := range x {
			x[k] = normalizeNumber(x[k])
		}
		return x
	}
	return v
}
