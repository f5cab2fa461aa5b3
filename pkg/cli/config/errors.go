package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration validation
var (
	ErrInvalidCatalog   = goerr.New("invalid catalog")
	ErrInvalidLogLevel  = goerr.New("invalid log level")
	ErrInvalidLogFormat = goerr.New("invalid log format")
)

// Context keys for error values
const (
	CatalogPathKey = "catalog_path"
	EntryIndexKey  = "entry_index"
	LogLevelKey    = "log_level"
	LogFormatKey   = "log_format"
)
