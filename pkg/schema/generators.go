package schema

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/fieldkit/pkg/types"
)

// ISOTimestampLayout renders UTC instants with millisecond precision,
// e.g. 2024-01-15T09:30:00.000Z.
const ISOTimestampLayout = "2006-01-02T15:04:05.000Z"

// now is the clock used by the time generators; tests replace it.
var now = time.Now

// Generator names accepted in schema files.
const (
	GeneratorNow   = "now"
	GeneratorToday = "today"
	GeneratorUUID  = "uuid"
)

// NowISO is the "current timestamp" default.
var NowISO = types.Generator(func() any {
	return now().UTC().Format(ISOTimestampLayout)
})

// Today is the "current date" default, in UTC.
var Today = types.Generator(func() any {
	return now().UTC().Format(time.DateOnly)
})

// NewID is the "fresh identifier" default: a UUID v7 string.
var NewID = types.Generator(func() any {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
})

var generators = map[string]types.Generator{
	GeneratorNow:   NowISO,
	GeneratorToday: Today,
	GeneratorUUID:  NewID,
}

// LookupGenerator returns the named default generator.
// Returns ErrUnknownGenerator for unrecognized names.
func LookupGenerator(name string) (types.Generator, error) {
	g, ok := generators[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", types.ErrUnknownGenerator, name, strings.Join(GeneratorNames(), ", "))
	}
	return g, nil
}

// GeneratorNames lists the recognized generator names, sorted.
func GeneratorNames() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
