// Package validate checks record values against entity schemas.
//
// Validation never returns an error: every outcome is a FieldResult or an
// ObjectResult carrying human-readable messages built from the field's
// display name. Unknown fields pass unless the Validator is strict.
package validate

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mesh-intelligence/fieldkit/internal/coerce"
	"github.com/mesh-intelligence/fieldkit/pkg/types"
)

// Options selects the validation policies.
type Options struct {
	// Strict fails fields that the schema does not declare.
	Strict bool
	// RecordKeysOnly limits whole-record validation to the keys present in
	// the record, so an absent required field goes unreported. By default
	// declared fields missing from the record are validated as absent.
	RecordKeysOnly bool
}

// Validator validates fields and records under a fixed set of Options.
// The zero value is lenient and checks declared fields.
type Validator struct {
	opts Options
}

// New returns a Validator using opts.
func New(opts Options) *Validator {
	return &Validator{opts: opts}
}

var defaultValidator = New(Options{})

// ValidateField validates one value with the default lenient Validator.
func ValidateField(name string, value any, s *types.EntitySchema) types.FieldResult {
	return defaultValidator.Field(name, value, s)
}

// ValidateObject validates a whole record with the default Validator.
func ValidateObject(r types.Record, s *types.EntitySchema) types.ObjectResult {
	return defaultValidator.Object(r, s)
}

// Field validates value as the named field of s. Rules run in order:
// unknown field, required, empty optional, then the type-specific checks.
func (v *Validator) Field(name string, value any, s *types.EntitySchema) types.FieldResult {
	def, ok := s.Field(name)
	if !ok {
		if v.opts.Strict {
			return types.Fail(fmt.Sprintf("%s is not a recognized field", name))
		}
		return types.Pass
	}

	label := def.DisplayName
	if label == "" {
		label = name
	}

	if types.IsEmptyValue(value) {
		if def.Required {
			return types.Fail(label + " is required")
		}
		return types.Pass
	}

	switch {
	case def.Type.IsTextual():
		return checkText(label, value, def.Validation)
	case def.Type.IsNumeric():
		notNumber := "must be a number"
		if def.Type == types.FieldTypeCurrency {
			notNumber = "must be a valid amount"
		}
		return checkNumber(label, value, def.Validation, notNumber)
	case def.Type == types.FieldTypeDatetime:
		if _, ok := coerce.Time(value, time.UTC); !ok {
			return types.Fail(label + " must be a valid date")
		}
	case def.Type == types.FieldTypeChoice:
		return checkChoice(label, value, def)
	}
	return types.Pass
}

// Object validates every key of r and, unless RecordKeysOnly is set,
// every field declared by s. Errors holds one message per failing field.
func (v *Validator) Object(r types.Record, s *types.EntitySchema) types.ObjectResult {
	res := types.ObjectResult{Valid: true, Errors: map[string]string{}}
	check := func(name string, value any) {
		if fr := v.Field(name, value, s); !fr.Valid {
			res.Errors[name] = fr.Message
			res.Valid = false
		}
	}
	for name, value := range r {
		check(name, value)
	}
	if !v.opts.RecordKeysOnly && s != nil {
		for _, name := range s.Fields() {
			if !r.Has(name) {
				check(name, nil)
			}
		}
	}
	return res
}

func checkText(label string, value any, c *types.Constraints) types.FieldResult {
	str, ok := value.(string)
	if !ok {
		return types.Fail(label + " must be text")
	}
	if c == nil {
		return types.Pass
	}
	n := utf8.RuneCountInString(str)
	if c.MinLength != nil && n < *c.MinLength {
		return types.Fail(fmt.Sprintf("%s must be at least %d characters", label, *c.MinLength))
	}
	if c.MaxLength != nil && n > *c.MaxLength {
		return types.Fail(fmt.Sprintf("%s must be no more than %d characters", label, *c.MaxLength))
	}
	if c.Pattern != nil && !c.Pattern.MatchString(str) {
		return types.Fail(label + " format is invalid")
	}
	return types.Pass
}

func checkNumber(label string, value any, c *types.Constraints, notNumber string) types.FieldResult {
	n, ok := coerce.Number(value)
	if !ok {
		return types.Fail(label + " " + notNumber)
	}
	if c == nil {
		return types.Pass
	}
	if c.Min != nil && n < *c.Min {
		return types.Fail(fmt.Sprintf("%s must be at least %s", label, formatBound(*c.Min)))
	}
	if c.Max != nil && n > *c.Max {
		return types.Fail(fmt.Sprintf("%s must be no more than %s", label, formatBound(*c.Max)))
	}
	return types.Pass
}

func checkChoice(label string, value any, def types.FieldDef) types.FieldResult {
	if len(def.Values) == 0 {
		return types.Pass
	}
	if str, ok := value.(string); ok && def.HasChoice(str) {
		return types.Pass
	}
	return types.Fail(fmt.Sprintf("%s must be one of: %s", label, strings.Join(def.Values, ", ")))
}

func formatBound(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
