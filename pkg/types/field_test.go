package types

import "testing"

func TestIsValidFieldType(t *testing.T) {
	valid := []FieldType{
		FieldTypeString, FieldTypeText, FieldTypeNumber,
		FieldTypeCurrency, FieldTypeDatetime, FieldTypeChoice,
	}
	for _, ft := range valid {
		if !IsValidFieldType(ft) {
			t.Errorf("IsValidFieldType(%q) = false, want true", ft)
		}
	}
	invalid := []FieldType{"", "integer", "boolean", "date"}
	for _, ft := range invalid {
		if IsValidFieldType(ft) {
			t.Errorf("IsValidFieldType(%q) = true, want false", ft)
		}
	}
}

func TestFieldTypeClasses(t *testing.T) {
	if !FieldTypeText.IsTextual() || !FieldTypeString.IsTextual() {
		t.Error("string and text should be textual")
	}
	if FieldTypeChoice.IsTextual() {
		t.Error("choice should not be textual")
	}
	if !FieldTypeCurrency.IsNumeric() || !FieldTypeNumber.IsNumeric() {
		t.Error("number and currency should be numeric")
	}
	if FieldTypeDatetime.IsNumeric() {
		t.Error("datetime should not be numeric")
	}
}

func TestFieldDefHasChoice(t *testing.T) {
	f := FieldDef{Type: FieldTypeChoice, Values: []string{"Yes", "No", "Does Not Apply"}}
	tests := []struct {
		value string
		want  bool
	}{
		{"Yes", true},
		{"Does Not Apply", true},
		{"yes", false},
		{"", false},
		{"Maybe", false},
	}
	for _, tt := range tests {
		if got := f.HasChoice(tt.value); got != tt.want {
			t.Errorf("HasChoice(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestResolveDefault(t *testing.T) {
	if got := ResolveDefault(nil); got != nil {
		t.Errorf("ResolveDefault(nil) = %v, want nil", got)
	}
	if got := ResolveDefault(Literal{Value: "Open"}); got != "Open" {
		t.Errorf("ResolveDefault(Literal) = %v, want Open", got)
	}

	calls := 0
	gen := Generator(func() any {
		calls++
		return calls
	})
	if got := ResolveDefault(gen); got != 1 {
		t.Errorf("first ResolveDefault(Generator) = %v, want 1", got)
	}
	if got := ResolveDefault(gen); got != 2 {
		t.Errorf("second ResolveDefault(Generator) = %v, want 2", got)
	}

	var nilGen Generator
	if got := ResolveDefault(nilGen); got != nil {
		t.Errorf("ResolveDefault(nil Generator) = %v, want nil", got)
	}
}

func TestRecordHasAndClone(t *testing.T) {
	r := Record{"cost": 0, "notes": "", "owner": nil}
	for _, k := range []string{"cost", "notes", "owner"} {
		if !r.Has(k) {
			t.Errorf("Has(%q) = false, want true", k)
		}
	}
	if r.Has("title") {
		t.Error("Has(title) = true, want false")
	}

	c := r.Clone()
	c["cost"] = 10
	if r["cost"] != 0 {
		t.Errorf("Clone shares storage: original cost = %v", r["cost"])
	}

	var nilRecord Record
	if got := nilRecord.Clone(); got == nil {
		t.Error("Clone of nil record returned nil")
	}
}

func TestIsEmptyValue(t *testing.T) {
	tests := []struct {
		value any
		want  bool
	}{
		{nil, true},
		{"", true},
		{" ", false},
		{0, false},
		{false, false},
		{"x", false},
	}
	for _, tt := range tests {
		if got := IsEmptyValue(tt.value); got != tt.want {
			t.Errorf("IsEmptyValue(%#v) = %v, want %v", tt.value, got, tt.want)
		}
	}
}
