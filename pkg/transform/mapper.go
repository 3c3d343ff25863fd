package transform

import (
	"github.com/mesh-intelligence/fieldkit/pkg/schema"
	"github.com/mesh-intelligence/fieldkit/pkg/types"
)

// Mapper renames records for one external store using the mapping tables
// of a Registry. Entity types without a table are passed through unchanged.
type Mapper struct {
	registry *schema.Registry
	store    string
}

// NewMapper returns a Mapper for store backed by r.
func NewMapper(r *schema.Registry, store string) *Mapper {
	return &Mapper{registry: r, store: store}
}

// Store returns the external store name.
func (m *Mapper) Store() string {
	return m.store
}

// Table returns the mapping table for entity; false means identity.
func (m *Mapper) Table(entity string) (types.MappingTable, bool) {
	if m.registry == nil {
		return nil, false
	}
	return m.registry.MappingFor(m.store, entity)
}

// FromExternal converts r from external to canonical names.
func (m *Mapper) FromExternal(r types.Record, entity string) types.Record {
	table, _ := m.Table(entity)
	return FromExternal(r, table)
}

// ToExternal converts r from canonical to external names.
func (m *Mapper) ToExternal(r types.Record, entity string) types.Record {
	table, _ := m.Table(entity)
	return ToExternal(r, table)
}

// FromExternal renames the external keys of r listed in table to their
// internal names and copies every other key verbatim. When several
// external names share an internal name, the first registered one present
// in r supplies the value and the others are dropped. A mapped value wins
// over an unmapped key of the same name. A nil table copies r unchanged.
func FromExternal(r types.Record, table types.MappingTable) types.Record {
	out := make(types.Record, len(r))
	sources := make(map[string]bool, len(table))
	for _, p := range table {
		sources[p.External] = true
		v, ok := r[p.External]
		if !ok || out.Has(p.Internal) {
			continue
		}
		out[p.Internal] = v
	}
	for k, v := range r {
		if sources[k] || out.Has(k) {
			continue
		}
		out[k] = v
	}
	return out
}

// ToExternal renames the internal keys of r listed in table to their
// external names and copies every other key verbatim. An internal name
// reached from several external names is written under the first
// registered one only. A nil table copies r unchanged.
func ToExternal(r types.Record, table types.MappingTable) types.Record {
	out := make(types.Record, len(r))
	targets := make(map[string]bool, len(table))
	for _, p := range table {
		if targets[p.Internal] {
			continue
		}
		targets[p.Internal] = true
		if v, ok := r[p.Internal]; ok {
			out[p.External] = v
		}
	}
	for k, v := range r {
		if targets[k] || out.Has(k) {
			continue
		}
		out[k] = v
	}
	return out
}
