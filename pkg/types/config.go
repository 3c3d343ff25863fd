package types

import (
	"errors"
	"time"
)

// Config holds the runtime options of the fieldkit engines.
type Config struct {
	// SchemaFile is an optional YAML file replacing the built-in schemas.
	SchemaFile string `json:"schema_file" yaml:"schema_file"`
	// Store names the external naming convention used by the mapper.
	Store string `json:"store" yaml:"store"`
	// Strict makes unknown fields fail validation instead of passing.
	Strict bool `json:"strict" yaml:"strict"`
	// CheckSchemaFields makes whole-record validation also visit declared
	// fields that are absent from the record.
	CheckSchemaFields bool `json:"check_schema_fields" yaml:"check_schema_fields"`
	// Timezone is the IANA zone dates are displayed in.
	Timezone string `json:"timezone" yaml:"timezone"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level" yaml:"log_level"`
}

// Default configuration values.
const (
	StoreSharePoint = "sharepoint"
	DefaultTimezone = "Pacific/Auckland"
	DefaultLogLevel = "warn"
)

// Config validation errors.
var (
	ErrStoreEmpty      = errors.New("store must not be empty")
	ErrTimezoneInvalid = errors.New("unknown timezone")
	ErrLogLevelUnknown = errors.New("unknown log level")
)

var knownLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Store:             StoreSharePoint,
		CheckSchemaFields: true,
		Timezone:          DefaultTimezone,
		LogLevel:          DefaultLogLevel,
	}
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.Store == "" {
		return ErrStoreEmpty
	}
	if c.Timezone != "" {
		if _, err := time.LoadLocation(c.Timezone); err != nil {
			return ErrTimezoneInvalid
		}
	}
	if c.LogLevel != "" && !knownLogLevels[c.LogLevel] {
		return ErrLogLevelUnknown
	}
	return nil
}
