package types

// Record is one loosely typed entity, keyed by field name. A key that is
// absent is unset; a key present with nil, "" or 0 is set.
type Record map[string]any

// Has reports whether key is present in the record, whatever its value.
func (r Record) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// Clone returns a shallow copy of the record. Cloning a nil record returns
// an empty, non-nil record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// IsEmptyValue reports whether v counts as "no value" for validation:
// nil or the empty string.
func IsEmptyValue(v any) bool {
	switch s := v.(type) {
	case nil:
		return true
	case string:
		return s == ""
	}
	return false
}
