// Package transform reshapes records: it fills unset fields from schema
// defaults and renames fields between the canonical names used by the
// validator and formatter and the column names of an external store.
//
// All functions return new records and leave their input untouched.
package transform
