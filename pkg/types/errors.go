package types

import "errors"

// Schema and registry errors.
var (
	ErrUnknownEntityType = errors.New("unknown entity type")
	ErrInvalidSchema     = errors.New("invalid schema")
	ErrUnknownFieldType  = errors.New("unknown field type")
	ErrDuplicateField    = errors.New("duplicate field")
	ErrUnknownGenerator  = errors.New("unknown default generator")
	ErrUnknownStore      = errors.New("unknown external store")
)
