// Package config loads settings of the validext command from the environment.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: optional
// .env files are loaded first (existing variables win), then every
// VALIDEXT_* variable is parsed into Config.
//
//	VALIDEXT_RULES        rule set file
//	VALIDEXT_LANG         message language, default "en"
//	VALIDEXT_CATALOG      message catalog file (YAML or JSON)
//	VALIDEXT_ALLOW_LIKE   accept LIKE / NOT LIKE operators
//	VALIDEXT_LOG_LEVEL    debug, info, warn or error; default "info"
//	VALIDEXT_LOG_FORMAT   text or json; default "text"
//	VALIDEXT_CONCURRENCY  documents checked in parallel, 0 for unbounded; default 4
//
// Errors can be compared with errors.Is against ErrParsingConfig,
// ErrLoadingEnvFile and ErrInvalidConfig.
package config
