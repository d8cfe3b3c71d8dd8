package ruleset

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/tidwall/gjson"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/validext/pkg/logger"
	"github.com/dmitrymomot/validext/pkg/validator"
)

type compiledField struct {
	path      string
	operator  string // set for operator rules
	validator validator.Validator
}

// RuleSet validates JSON documents field by field. It is safe for
// concurrent use.
type RuleSet struct {
	fields []compiledField
	logger *slog.Logger
}

// Paths returns the field paths in definition order.
func (rs *RuleSet) Paths() []string {
	paths := make([]string, len(rs.fields))
	for i, f := range rs.fields {
		paths[i] = f.path
	}
	return paths
}

// Validate checks doc against every field rule. It returns nil when the
// document is valid, validator.ValidationErrors when a rule fails and
// ErrInvalidDocument when doc is not JSON.
func (rs *RuleSet) Validate(ctx context.Context, doc []byte) error {
	if !gjson.ValidBytes(doc) {
		return ErrInvalidDocument
	}

	var errs validator.ValidationErrors
	for _, f := range rs.fields {
		fieldErrs := validator.Check(f.path, Lookup(doc, f.path), f.validator).Errors()
		if len(fieldErrs) == 0 {
			continue
		}
		attrs := []slog.Attr{logger.Field(f.path), logger.Codes(fieldErrs.Codes(f.path))}
		if f.operator != "" {
			attrs = append(attrs, logger.Operator(f.operator))
		}
		rs.logger.LogAttrs(ctx, slog.LevelDebug, "field rule failed", attrs...)
		errs = append(errs, fieldErrs...)
	}

	rs.logger.DebugContext(ctx, "document validated", logger.Valid(len(errs) == 0))
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// DocumentKey is the context key under which ValidateAll stores the name of
// the document being validated.
type DocumentKey struct{}

// Document is a named JSON document.
type Document struct {
	Name string
	Data []byte
}

// ValidateAll validates docs concurrently with at most limit goroutines
// (unbounded when limit <= 0). The returned slice holds one Validate error
// per document, in order.
func (rs *RuleSet) ValidateAll(ctx context.Context, docs []Document, limit int) ([]error, error) {
	errs := make([]error, len(docs))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, doc := range docs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			errs[i] = rs.Validate(context.WithValue(ctx, DocumentKey{}, doc.Name), doc.Data)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return errs, nil
}

// Lookup returns the value at path in doc as a Go value: nil for null or
// missing paths, int64 for integral numbers that fit, float64 for other
// numbers, and []any / map[string]any for arrays and objects.
func Lookup(doc []byte, path string) any {
	return toValue(gjson.GetBytes(doc, path))
}

func toValue(r gjson.Result) any {
	switch r.Type {
	case gjson.Null:
		return nil
	case gjson.False:
		return false
	case gjson.True:
		return true
	case gjson.String:
		return r.Str
	case gjson.Number:
		if i, err := strconv.ParseInt(r.Raw, 10, 64); err == nil {
			return i
		}
		return r.Num
	case gjson.JSON:
		if r.IsArray() {
			items := r.Array()
			out := make([]any, len(items))
			for i, item := range items {
				out[i] = toValue(item)
			}
			return out
		}
		out := make(map[string]any)
		r.ForEach(func(key, value gjson.Result) bool {
			out[key.Str] = toValue(value)
			return true
		})
		return out
	}
	return nil
}
