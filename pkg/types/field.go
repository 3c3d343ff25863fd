package types

import "regexp"

// FieldType names the kind of value a field holds.
type FieldType string

// Field types understood by the validator and formatter.
const (
	FieldTypeString   FieldType = "string"
	FieldTypeText     FieldType = "text"
	FieldTypeNumber   FieldType = "number"
	FieldTypeCurrency FieldType = "currency"
	FieldTypeDatetime FieldType = "datetime"
	FieldTypeChoice   FieldType = "choice"
)

// validFieldTypes is the set of recognized field types.
var validFieldTypes = map[FieldType]bool{
	FieldTypeString:   true,
	FieldTypeText:     true,
	FieldTypeNumber:   true,
	FieldTypeCurrency: true,
	FieldTypeDatetime: true,
	FieldTypeChoice:   true,
}

// IsValidFieldType reports whether ft is a recognized field type.
func IsValidFieldType(ft FieldType) bool {
	return validFieldTypes[ft]
}

// IsTextual reports whether values of this type are validated as strings.
func (ft FieldType) IsTextual() bool {
	return ft == FieldTypeString || ft == FieldTypeText
}

// IsNumeric reports whether values of this type are coerced to numbers.
func (ft FieldType) IsNumeric() bool {
	return ft == FieldTypeNumber || ft == FieldTypeCurrency
}

// Constraints holds the optional per-type limits of a field. A nil pointer
// means the limit is not set; MinLength, MaxLength and Pattern apply to
// string and text fields, Min and Max to number and currency fields.
type Constraints struct {
	MinLength *int
	MaxLength *int
	Pattern   *regexp.Regexp
	Min       *float64
	Max       *float64
}

// FieldDef describes one field of one entity type.
type FieldDef struct {
	Type        FieldType
	Required    bool
	DisplayName string
	Validation  *Constraints // nil when the field has no constraints.
	Values      []string     // Legal values of a choice field, in display order.
	Default     Default      // nil when the field has no default.
}

// HasChoice reports whether v is one of the field's legal values.
// Comparison is exact and case-sensitive.
func (f FieldDef) HasChoice(v string) bool {
	for _, c := range f.Values {
		if c == v {
			return true
		}
	}
	return false
}

// NamedField pairs a field name with its definition for ordered schema
// construction.
type NamedField struct {
	Name string
	Def  FieldDef
}

// Int returns a pointer to v, for filling Constraints literals.
func Int(v int) *int { return &v }

// Float returns a pointer to v, for filling Constraints literals.
func Float(v float64) *float64 { return &v }
