package schema

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/mesh-intelligence/fieldkit/pkg/types"
)

// Mappings holds one mapping table per entity type for a single external
// store.
type Mappings map[string]types.MappingTable

// Registry is the process-wide set of entity schemas and name mapping
// tables. It is built once and only read afterwards.
type Registry struct {
	order    []string
	schemas  map[string]*types.EntitySchema
	mappings map[string]Mappings
}

// NewRegistry builds a registry from schemas, in order, and the mapping
// tables of each external store. Mapping tables are copied.
// Returns ErrInvalidSchema if two schemas share an entity name.
func NewRegistry(schemas []*types.EntitySchema, stores map[string]Mappings) (*Registry, error) {
	r := &Registry{
		order:    make([]string, 0, len(schemas)),
		schemas:  make(map[string]*types.EntitySchema, len(schemas)),
		mappings: make(map[string]Mappings, len(stores)),
	}
	for _, s := range schemas {
		if s == nil {
			return nil, fmt.Errorf("%w: nil schema", types.ErrInvalidSchema)
		}
		if _, dup := r.schemas[s.Name()]; dup {
			return nil, fmt.Errorf("%w: entity %q registered twice", types.ErrInvalidSchema, s.Name())
		}
		r.order = append(r.order, s.Name())
		r.schemas[s.Name()] = s
	}
	for store, tables := range stores {
		copied := make(Mappings, len(tables))
		for entity, table := range tables {
			copied[entity] = append(types.MappingTable(nil), table...)
		}
		r.mappings[store] = copied
	}
	return r, nil
}

// Default returns the registry of built-in schemas and SharePoint mapping
// tables. It is constructed on first use.
var Default = sync.OnceValue(func() *Registry {
	r, err := NewRegistry(
		[]*types.EntitySchema{Jobs, Activities, Triage},
		map[string]Mappings{types.StoreSharePoint: SharePointMappings()},
	)
	if err != nil {
		panic(err)
	}
	return r
})

// SchemaFor returns the schema registered for entity.
// Returns ErrUnknownEntityType if there is none.
func (r *Registry) SchemaFor(entity string) (*types.EntitySchema, error) {
	s, ok := r.schemas[entity]
	if !ok {
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownEntityType, entity)
	}
	return s, nil
}

// Entities returns the registered entity names in registration order.
func (r *Registry) Entities() []string {
	return append([]string(nil), r.order...)
}

// Stores returns the names of the external stores with mapping tables,
// sorted.
func (r *Registry) Stores() []string {
	names := make([]string, 0, len(r.mappings))
	for name := range r.mappings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasStore reports whether any mapping tables are registered for store.
func (r *Registry) HasStore(store string) bool {
	_, ok := r.mappings[store]
	return ok
}

// RequireStore returns ErrUnknownStore when no mapping tables are
// registered for store.
func (r *Registry) RequireStore(store string) error {
	if r.HasStore(store) {
		return nil
	}
	return fmt.Errorf("%w: %q (known: %s)", types.ErrUnknownStore, store, strings.Join(r.Stores(), ", "))
}

// MappingFor returns a copy of the mapping table for entity in store.
// The second result is false when no table exists; callers treat that as
// identity mapping.
func (r *Registry) MappingFor(store, entity string) (types.MappingTable, bool) {
	table, ok := r.mappings[store][entity]
	if !ok {
		return nil, false
	}
	return append(types.MappingTable(nil), table...), true
}
