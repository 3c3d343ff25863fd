// Package schema holds the entity schema registry: the built-in jobs,
// activities and triage schemas, the external store name mapping tables,
// permissive field accessors, named default generators and a YAML loader
// for replacing the built-in definitions at startup.
//
// A Registry is immutable after construction and safe for concurrent use.
package schema
