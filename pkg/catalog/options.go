package catalog

import (
	"io"
	"log/slog"
)

// Option configures a Catalog.
type Option func(*Catalog)

// WithDefaultLanguage sets the language used when a requested language has
// no match. Defaults to "en".
func WithDefaultLanguage(lang string) Option {
	return func(c *Catalog) {
		if lang != "" {
			c.defaultLang = lang
		}
	}
}

// WithLogger sets the logger. A discard logger is used by default.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMissingTemplatesLogging logs codes that have no template in the
// resolved or default language.
func WithMissingTemplatesLogging(enabled bool) Option {
	return func(c *Catalog) {
		c.logMissing = enabled
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
