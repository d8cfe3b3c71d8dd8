package catalog

import "errors"

var (
	ErrNilSource        = errors.New("catalog source is nil")
	ErrInvalidLanguage  = errors.New("invalid language tag")
	ErrInvalidTemplate  = errors.New("message template must be a string")
	ErrNoParser         = errors.New("no parser for file extension")
	ErrEmptyFile        = errors.New("catalog file is empty")
	ErrLoadingCancelled = errors.New("loading catalog cancelled")
	ErrFailedToReadFile = errors.New("failed to read catalog file")
	ErrFailedToParse    = errors.New("failed to parse catalog content")
)
