package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/validext/pkg/logger"
	"github.com/dmitrymomot/validext/pkg/validator"
)

// DefaultLanguage is used when no WithDefaultLanguage option is given.
const DefaultLanguage = "en"

// Catalog re-renders validator messages from per-language templates.
type Catalog struct {
	source      Source
	defaultLang string
	logger      *slog.Logger
	logMissing  bool

	mu        sync.RWMutex
	templates Templates
	langs     []string
	matcher   language.Matcher
}

// New loads templates from source.
func New(ctx context.Context, source Source, opts ...Option) (*Catalog, error) {
	if source == nil {
		return nil, ErrNilSource
	}

	c := &Catalog{
		source:      source,
		defaultLang: DefaultLanguage,
		logger:      discardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.Reload(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// Reload reads the source again and swaps templates atomically.
func (c *Catalog) Reload(ctx context.Context) error {
	templates, err := c.source.Load(ctx)
	if err != nil {
		return err
	}
	if templates == nil {
		templates = make(Templates)
	}

	// The default language is always matchable, even without templates.
	langs := []string{c.defaultLang}
	for lang := range templates {
		if lang != c.defaultLang {
			langs = append(langs, lang)
		}
	}
	sort.Strings(langs[1:])

	tags := make([]language.Tag, len(langs))
	for i, lang := range langs {
		tag, err := language.Parse(lang)
		if err != nil {
			return errors.Join(fmt.Errorf("%w: %q", ErrInvalidLanguage, lang), err)
		}
		tags[i] = tag
	}

	c.mu.Lock()
	c.templates = templates
	c.langs = langs
	c.matcher = language.NewMatcher(tags)
	c.mu.Unlock()

	c.logger.InfoContext(ctx, "message catalog loaded", slog.Any("languages", c.Languages()))
	return nil
}

// Languages returns the languages with templates, sorted.
func (c *Catalog) Languages() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	langs := make([]string, 0, len(c.templates))
	for lang := range c.templates {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// Resolve picks the best catalog language for lang, which may be a single
// tag or an Accept-Language value. Unmatched input resolves to the default.
func (c *Catalog) Resolve(lang string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.resolve(lang)
}

func (c *Catalog) resolve(lang string) string {
	if _, ok := c.templates[lang]; ok {
		return lang
	}
	desired, _, err := language.ParseAcceptLanguage(lang)
	if err != nil {
		return c.defaultLang
	}
	_, idx, conf := c.matcher.Match(desired...)
	if conf == language.No {
		return c.defaultLang
	}
	return c.langs[idx]
}

// Template returns the template for code in lang, trying the key
// "validation.<code>" as well. It falls back to the default language.
func (c *Catalog) Template(lang, code string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.template(c.resolve(lang), code)
}

func (c *Catalog) template(lang, code string) (string, bool) {
	for _, l := range []string{lang, c.defaultLang} {
		templates := c.templates[l]
		if tmpl, ok := templates[code]; ok {
			return tmpl, true
		}
		if tmpl, ok := templates["validation."+code]; ok {
			return tmpl, true
		}
	}
	return "", false
}

// Localize returns msgs re-rendered for lang. Messages without a template
// keep their text.
func (c *Catalog) Localize(lang string, msgs validator.Messages) validator.Messages {
	if len(msgs) == 0 {
		return msgs
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	resolved := c.resolve(lang)
	out := make(validator.Messages, len(msgs))
	for i, msg := range msgs {
		out[i] = msg
		tmpl, ok := c.template(resolved, msg.Code)
		if !ok {
			if c.logMissing {
				c.logger.Warn("message template not found", logger.Lang(resolved), logger.Code(msg.Code))
			}
			continue
		}
		out[i].Text = validator.Format(tmpl, msg.Params)
	}
	return out
}

// LocalizeErrors re-renders field errors for lang.
func (c *Catalog) LocalizeErrors(lang string, errs validator.ValidationErrors) validator.ValidationErrors {
	if len(errs) == 0 {
		return errs
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	resolved := c.resolve(lang)
	out := make(validator.ValidationErrors, len(errs))
	for i, e := range errs {
		out[i] = e
		tmpl, ok := c.template(resolved, e.Code)
		if !ok {
			continue
		}
		params := make(map[string]string, len(e.TranslationValues))
		for k, v := range e.TranslationValues {
			params[k] = fmt.Sprint(v)
		}
		out[i].Message = validator.Format(tmpl, params)
	}
	return out
}

// Localized wraps v so that every result is rendered in lang.
func (c *Catalog) Localized(lang string, v validator.Validator) validator.Validator {
	return validator.Func(func(value any) validator.Result {
		res := v.Validate(value)
		if res.Valid() {
			return res
		}
		return validator.Result{Messages: c.Localize(lang, res.Messages)}
	})
}
