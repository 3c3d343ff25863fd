package types

import "fmt"

// EntitySchema is the ordered set of field definitions for one entity type.
// Field order is the order of construction. An EntitySchema is immutable
// once built; accessors return copies.
type EntitySchema struct {
	name   string
	order  []string
	fields map[string]FieldDef
}

// NewEntitySchema builds a schema for the named entity from fields in order.
// Returns ErrDuplicateField if a name repeats and ErrUnknownFieldType if a
// definition uses an unrecognized type.
func NewEntitySchema(name string, fields ...NamedField) (*EntitySchema, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty entity name", ErrInvalidSchema)
	}
	s := &EntitySchema{
		name:   name,
		order:  make([]string, 0, len(fields)),
		fields: make(map[string]FieldDef, len(fields)),
	}
	for _, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("%w: %s: empty field name", ErrInvalidSchema, name)
		}
		if _, ok := s.fields[f.Name]; ok {
			return nil, fmt.Errorf("%w: %s.%s", ErrDuplicateField, name, f.Name)
		}
		if !IsValidFieldType(f.Def.Type) {
			return nil, fmt.Errorf("%w: %s.%s has type %q", ErrUnknownFieldType, name, f.Name, f.Def.Type)
		}
		def := f.Def
		def.Values = append([]string(nil), f.Def.Values...)
		s.order = append(s.order, f.Name)
		s.fields[f.Name] = def
	}
	return s, nil
}

// MustEntitySchema is like NewEntitySchema but panics on error. It is meant
// for package-level schema constants.
func MustEntitySchema(name string, fields ...NamedField) *EntitySchema {
	s, err := NewEntitySchema(name, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the entity type this schema describes.
func (s *EntitySchema) Name() string {
	return s.name
}

// Fields returns the field names in declaration order.
func (s *EntitySchema) Fields() []string {
	return append([]string(nil), s.order...)
}

// Field returns the definition of the named field.
func (s *EntitySchema) Field(name string) (FieldDef, bool) {
	if s == nil {
		return FieldDef{}, false
	}
	f, ok := s.fields[name]
	if !ok {
		return FieldDef{}, false
	}
	f.Values = append([]string(nil), f.Values...)
	return f, true
}

// Has reports whether the schema declares the named field.
func (s *EntitySchema) Has(name string) bool {
	if s == nil {
		return false
	}
	_, ok := s.fields[name]
	return ok
}

// Len returns the number of declared fields.
func (s *EntitySchema) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}
