package ruleset

import "errors"

var (
	ErrInvalidRule      = errors.New("invalid rule")
	ErrInvalidDocument  = errors.New("invalid JSON document")
	ErrEmptyRuleSet     = errors.New("rule set has no fields")
	ErrFailedToReadFile = errors.New("failed to read rule set file")
	ErrFailedToParse    = errors.New("failed to parse rule set")
)
