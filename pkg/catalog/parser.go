package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parser decodes catalog content into language -> key -> template. Nested
// maps are flattened into dot-separated keys.
type Parser interface {
	Parse(ctx context.Context, content []byte) (Templates, error)
	SupportsFileExtension(ext string) bool
}

// Templates maps a language tag to message templates keyed by code.
type Templates map[string]map[string]string

// ParserForFile returns the parser matching the file extension, or nil.
func ParserForFile(filename string) Parser {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	for _, p := range []Parser{YAMLParser{}, JSONParser{}} {
		if p.SupportsFileExtension(ext) {
			return p
		}
	}
	return nil
}

// YAMLParser reads YAML catalogs.
type YAMLParser struct{}

func (YAMLParser) Parse(ctx context.Context, content []byte) (Templates, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParse, err)
	}
	return flattenLanguages(data)
}

func (YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}

// JSONParser reads JSON catalogs.
type JSONParser struct{}

func (JSONParser) Parse(ctx context.Context, content []byte) (Templates, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	var data map[string]any
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParse, err)
	}
	return flattenLanguages(data)
}

func (JSONParser) SupportsFileExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "json")
}

func flattenLanguages(data map[string]any) (Templates, error) {
	out := make(Templates, len(data))
	for lang, val := range data {
		m, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q: expected map, got %T", ErrFailedToParse, lang, val)
		}
		templates := make(map[string]string)
		if err := flatten("", m, templates); err != nil {
			return nil, fmt.Errorf("language %q: %w", lang, err)
		}
		out[lang] = templates
	}
	return out, nil
}

func flatten(prefix string, in map[string]any, out map[string]string) error {
	for key, val := range in {
		if prefix != "" {
			key = prefix + "." + key
		}
		switch v := val.(type) {
		case string:
			out[key] = v
		case map[string]any:
			if err := flatten(key, v, out); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: key %q holds %T", ErrInvalidTemplate, key, val)
		}
	}
	return nil
}
