package schema

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	upperRe      = regexp.MustCompile(`([A-Z])`)
	nonAlnumRe   = regexp.MustCompile(`[^a-zA-Z0-9\s]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// HumanizeFieldName turns a camelCase field name into a Title Case label:
// "customerPhone" becomes "Customer Phone".
func HumanizeFieldName(field string) string {
	spaced := upperRe.ReplaceAllString(field, " $1")
	return strings.TrimSpace(upperFirst(spaced))
}

// GenerateInternalName derives an external-style column name from a
// display label: punctuation and whitespace are dropped and a leading
// lower-case letter is capitalized. "Vehicle Rego #" becomes "VehicleRego".
func GenerateInternalName(displayName string) string {
	s := nonAlnumRe.ReplaceAllString(displayName, "")
	s = whitespaceRe.ReplaceAllString(s, "")
	return upperFirst(s)
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || !unicode.IsLower(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
