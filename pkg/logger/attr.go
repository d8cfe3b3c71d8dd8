package logger

import (
	"log/slog"
	"strings"
)

// KeyDocument is the attribute key used by Document.
const KeyDocument = "document"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Code records a validator error code.
func Code(code string) slog.Attr {
	return slog.String("code", code)
}

// Codes records every code of a failed validation, comma separated.
func Codes(codes []string) slog.Attr {
	return slog.String("codes", strings.Join(codes, ","))
}

// Operator records an operator token.
func Operator(op string) slog.Attr {
	return slog.String("operator", op)
}

// Field records a document field path.
func Field(path string) slog.Attr {
	return slog.String("field", path)
}

// Lang records a resolved language tag.
func Lang(lang string) slog.Attr {
	return slog.String("lang", lang)
}

// Document records the name of the validated document.
func Document(name string) slog.Attr {
	return slog.String(KeyDocument, name)
}

// Valid records a validation outcome.
func Valid(ok bool) slog.Attr {
	return slog.Bool("valid", ok)
}
