// Package types defines the schema model shared by the fieldkit engines:
// field definitions, ordered entity schemas, records, name mapping tables,
// validation results, configuration and the standard error values.
//
// Everything in this package is plain data. Schemas and mapping tables are
// built once and never mutated, so they are safe to share between goroutines.
package types
