package types

// FieldResult is the outcome of validating a single field.
// Message is empty when Valid is true.
type FieldResult struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

// ObjectResult is the outcome of validating a whole record. Errors maps
// each failing field to its message and is never nil.
type ObjectResult struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors"`
}

// Pass is the result of a field that passed validation.
var Pass = FieldResult{Valid: true}

// Fail returns a failing field result with the given message.
func Fail(message string) FieldResult {
	return FieldResult{Valid: false, Message: message}
}
