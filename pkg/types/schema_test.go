package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntitySchemaPreservesOrder(t *testing.T) {
	s, err := NewEntitySchema("jobs",
		NamedField{Name: "title", Def: FieldDef{Type: FieldTypeString, DisplayName: "Job Title"}},
		NamedField{Name: "status", Def: FieldDef{Type: FieldTypeChoice, Values: []string{"Open"}}},
		NamedField{Name: "cost", Def: FieldDef{Type: FieldTypeCurrency}},
	)
	require.NoError(t, err)

	assert.Equal(t, "jobs", s.Name())
	assert.Equal(t, []string{"title", "status", "cost"}, s.Fields())
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Has("status"))
	assert.False(t, s.Has("priority"))

	f, ok := s.Field("title")
	require.True(t, ok)
	assert.Equal(t, "Job Title", f.DisplayName)
}

func TestNewEntitySchemaErrors(t *testing.T) {
	tests := []struct {
		name    string
		entity  string
		fields  []NamedField
		wantErr error
	}{
		{"empty entity name", "", nil, ErrInvalidSchema},
		{"empty field name", "jobs", []NamedField{{Name: "", Def: FieldDef{Type: FieldTypeString}}}, ErrInvalidSchema},
		{
			"duplicate field",
			"jobs",
			[]NamedField{
				{Name: "title", Def: FieldDef{Type: FieldTypeString}},
				{Name: "title", Def: FieldDef{Type: FieldTypeText}},
			},
			ErrDuplicateField,
		},
		{"unknown type", "jobs", []NamedField{{Name: "flag", Def: FieldDef{Type: "boolean"}}}, ErrUnknownFieldType},
		{"missing type", "jobs", []NamedField{{Name: "flag", Def: FieldDef{}}}, ErrUnknownFieldType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEntitySchema(tt.entity, tt.fields...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
		})
	}
}

func TestEntitySchemaIsImmutable(t *testing.T) {
	values := []string{"Yes", "No"}
	s := MustEntitySchema("triage",
		NamedField{Name: "consent", Def: FieldDef{Type: FieldTypeChoice, Values: values}},
	)

	values[0] = "Changed"
	f, _ := s.Field("consent")
	assert.Equal(t, []string{"Yes", "No"}, f.Values)

	f.Values[1] = "Changed"
	again, _ := s.Field("consent")
	assert.Equal(t, []string{"Yes", "No"}, again.Values)

	names := s.Fields()
	names[0] = "other"
	assert.Equal(t, []string{"consent"}, s.Fields())
}

func TestMustEntitySchemaPanics(t *testing.T) {
	assert.Panics(t, func() {
		MustEntitySchema("jobs", NamedField{Name: "x", Def: FieldDef{Type: "bogus"}})
	})
}

func TestNilEntitySchemaAccessors(t *testing.T) {
	var s *EntitySchema
	assert.False(t, s.Has("title"))
	assert.Equal(t, 0, s.Len())
	_, ok := s.Field("title")
	assert.False(t, ok)
}
