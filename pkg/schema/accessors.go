package schema

import "github.com/mesh-intelligence/fieldkit/pkg/types"

// The accessors below never fail. A field missing from the schema yields
// the documented fallback so that callers keep working while schemas grow.

// DisplayName returns the field's label, or the field name itself.
func DisplayName(field string, s *types.EntitySchema) string {
	if f, ok := s.Field(field); ok && f.DisplayName != "" {
		return f.DisplayName
	}
	return field
}

// FieldType returns the field's type, or FieldTypeString.
func FieldType(field string, s *types.EntitySchema) types.FieldType {
	if f, ok := s.Field(field); ok && f.Type != "" {
		return f.Type
	}
	return types.FieldTypeString
}

// IsRequired reports whether the field is required; unknown fields are not.
func IsRequired(field string, s *types.EntitySchema) bool {
	f, ok := s.Field(field)
	return ok && f.Required
}

// Choices returns the legal values of a choice field in declaration order,
// or an empty slice.
func Choices(field string, s *types.EntitySchema) []string {
	f, ok := s.Field(field)
	if !ok || f.Values == nil {
		return []string{}
	}
	return f.Values
}
