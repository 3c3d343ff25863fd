// Package format renders record values for display in the admin pages,
// using New Zealand conventions: NZD amounts, day-first dates and 3-3-4
// phone grouping.
//
// Every function is total. Input that cannot be parsed is returned as its
// plain string form rather than failing.
package format

import (
	"fmt"
	"html"
	"math"
	"regexp"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/mesh-intelligence/fieldkit/internal/coerce"
	"github.com/mesh-intelligence/fieldkit/pkg/schema"
	"github.com/mesh-intelligence/fieldkit/pkg/types"
)

// Display layouts for the en-NZ locale.
const (
	DateLayout     = "02/01/2006"
	DateTimeLayout = "02/01/2006, 3:04:05 pm"
)

// exactCents bounds the amounts FormatFloat renders through int64 cents.
// Larger amounts have no meaningful cents and are grouped as whole dollars.
const exactCents = 1e15

// DefaultBadgeClass is used for values without a known badge style.
const DefaultBadgeClass = "status-default"

var badgeClasses = map[string]string{
	"Open":        "status-open",
	"In Progress": "status-in-progress",
	"Completed":   "status-completed",
	"Cancelled":   "status-cancelled",
	"Blocked":     "status-blocked",
	"Low":         "priority-low",
	"Medium":      "priority-medium",
	"High":        "priority-high",
	"Emergency":   "priority-emergency",
}

var phoneRe = regexp.MustCompile(`(\d{3})(\d{3})(\d{4})`)

// Formatter renders dates in a fixed time zone. Currency, phone and badge
// rendering do not depend on the zone.
type Formatter struct {
	loc *time.Location
}

// New returns a Formatter that displays dates in loc; nil means UTC.
func New(loc *time.Location) *Formatter {
	if loc == nil {
		loc = time.UTC
	}
	return &Formatter{loc: loc}
}

// NewInZone returns a Formatter for the named IANA zone.
func NewInZone(name string) (*Formatter, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", types.ErrTimezoneInvalid, name)
	}
	return New(loc), nil
}

// Default returns the Formatter for New Zealand time, falling back to UTC
// when the zone database is unavailable.
var Default = sync.OnceValue(func() *Formatter {
	f, err := NewInZone(types.DefaultTimezone)
	if err != nil {
		return New(time.UTC)
	}
	return f
})

// Location returns the zone dates are displayed in.
func (f *Formatter) Location() *time.Location {
	return f.loc
}

// Currency renders v as an NZD amount such as $1,234.50. Empty input gives
// "" and non-numeric input is returned unchanged.
func (f *Formatter) Currency(v any) string {
	return Currency(v)
}

// Date renders v as dd/mm/yyyy. Falsy input gives "" and unparsable input
// is returned unchanged.
func (f *Formatter) Date(v any) string {
	return f.render(v, DateLayout)
}

// DateTime renders v as "dd/mm/yyyy, h:mm:ss am".
func (f *Formatter) DateTime(v any) string {
	return f.render(v, DateTimeLayout)
}

func (f *Formatter) render(v any, layout string) string {
	if coerce.IsFalsy(v) {
		return ""
	}
	t, ok := coerce.Time(v, f.loc)
	if !ok {
		return coerce.String(v)
	}
	return t.In(f.loc).Format(layout)
}

// Field renders v according to the declared type of the named field:
// currency and datetime fields are formatted, everything else is shown as
// plain text.
func (f *Formatter) Field(name string, v any, s *types.EntitySchema) string {
	switch schema.FieldType(name, s) {
	case types.FieldTypeCurrency:
		return f.Currency(v)
	case types.FieldTypeDatetime:
		return f.DateTime(v)
	}
	if v == nil {
		return ""
	}
	return coerce.String(v)
}

// Currency renders v as an NZD amount such as $1,234.50 or -$42.00.
// Empty input gives "" and non-numeric input is returned unchanged.
func Currency(v any) string {
	if types.IsEmptyValue(v) {
		return ""
	}
	n, ok := coerce.Number(v)
	if !ok {
		return coerce.String(v)
	}
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	if math.IsInf(n, 0) {
		return sign + "$∞"
	}
	if n >= exactCents {
		return sign + "$" + humanize.Commaf(math.Round(n)) + ".00"
	}
	return sign + "$" + humanize.FormatFloat("#,###.##", n)
}

// Date renders v as dd/mm/yyyy in New Zealand time.
func Date(v any) string {
	return Default().Date(v)
}

// DateTime renders v as "dd/mm/yyyy, h:mm:ss am" in New Zealand time.
func DateTime(v any) string {
	return Default().DateTime(v)
}

// Phone rewrites the first run of ten digits in v as (ddd) ddd-dddd.
// Input without such a run is returned unchanged; length is not checked.
func Phone(v any) string {
	if coerce.IsFalsy(v) {
		return ""
	}
	s := coerce.String(v)
	m := phoneRe.FindStringSubmatchIndex(s)
	if m == nil {
		return s
	}
	return s[:m[0]] + "(" + s[m[2]:m[3]] + ") " + s[m[4]:m[5]] + "-" + s[m[6]:m[7]] + s[m[1]:]
}

// BadgeClass returns the style class for a status or priority value.
func BadgeClass(value string) string {
	if c, ok := badgeClasses[value]; ok {
		return c
	}
	return DefaultBadgeClass
}

// StatusBadge renders v as a span styled by its status or priority class.
// The value is HTML-escaped.
func StatusBadge(v any) string {
	var s string
	if v != nil {
		s = coerce.String(v)
	}
	return fmt.Sprintf(`<span class="status-badge %s">%s</span>`, BadgeClass(s), html.EscapeString(s))
}
