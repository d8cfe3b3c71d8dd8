package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path"
)

// Source loads templates for a Catalog.
type Source interface {
	Load(ctx context.Context) (Templates, error)
}

// MapSource serves templates kept in memory.
type MapSource struct {
	Data Templates
}

func (s *MapSource) Load(_ context.Context) (Templates, error) {
	out := make(Templates, len(s.Data))
	for lang, templates := range s.Data {
		out[lang] = maps.Clone(templates)
	}
	return out, nil
}

// FileSource reads one YAML or JSON file from disk.
type FileSource struct {
	Path string
}

func (s *FileSource) Load(ctx context.Context) (Templates, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	content, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	return parseFile(ctx, s.Path, content)
}

// FSSource merges every catalog file found in Dir of an fs.FS, such as an
// embed.FS. Files with unknown extensions are skipped.
type FSSource struct {
	FS  fs.FS
	Dir string
}

func (s *FSSource) Load(ctx context.Context) (Templates, error) {
	dir := s.Dir
	if dir == "" {
		dir = "."
	}

	entries, err := fs.ReadDir(s.FS, dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	out := make(Templates)
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}
		if entry.IsDir() || ParserForFile(entry.Name()) == nil {
			continue
		}

		name := path.Join(dir, entry.Name())
		content, err := fs.ReadFile(s.FS, name)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}
		templates, err := parseFile(ctx, name, content)
		if err != nil {
			return nil, err
		}
		for lang, t := range templates {
			if out[lang] == nil {
				out[lang] = make(map[string]string, len(t))
			}
			maps.Copy(out[lang], t)
		}
	}
	return out, nil
}

func parseFile(ctx context.Context, name string, content []byte) (Templates, error) {
	parser := ParserForFile(name)
	if parser == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoParser, name)
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, name)
	}

	templates, err := parser.Parse(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return templates, nil
}
