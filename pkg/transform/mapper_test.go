package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/fieldkit/pkg/schema"
	"github.com/mesh-intelligence/fieldkit/pkg/types"
)

func sharePoint() *Mapper {
	return NewMapper(schema.Default(), types.StoreSharePoint)
}

func TestFromExternalJobs(t *testing.T) {
	in := types.Record{
		"ID":       17,
		"Title":    "Lockout at Ponsonby",
		"Author":   "dispatcher-3",
		"Created":  "2024-01-15T09:30:00Z",
		"Odata":    "etag-1",
		"Priority": "High",
	}
	out := sharePoint().FromExternal(in, schema.EntityJobs)

	assert.Equal(t, types.Record{
		"id":          17,
		"title":       "Lockout at Ponsonby",
		"createdBy":   "dispatcher-3",
		"createdDate": "2024-01-15T09:30:00Z",
		"priority":    "High",
		"Odata":       "etag-1",
	}, out)
	assert.Contains(t, in, "Title", "input must not be mutated")
}

func TestToExternalJobs(t *testing.T) {
	out := sharePoint().ToExternal(types.Record{
		"title":      "Tow to depot",
		"modifiedBy": "ops",
		"internal":   true,
	}, schema.EntityJobs)

	assert.Equal(t, types.Record{
		"Title":    "Tow to depot",
		"Editor":   "ops",
		"internal": true,
	}, out)
}

func TestRoundTripInjectiveTable(t *testing.T) {
	m := sharePoint()
	table, ok := m.Table(schema.EntityJobs)
	require.True(t, ok)
	require.True(t, table.IsInjective())

	canonical := types.Record{}
	for i, p := range table {
		canonical[p.Internal] = i
	}
	back := m.FromExternal(m.ToExternal(canonical, schema.EntityJobs), schema.EntityJobs)
	assert.Equal(t, canonical, back)

	external := types.Record{}
	for i, p := range table {
		external[p.External] = i
	}
	again := m.ToExternal(m.FromExternal(external, schema.EntityJobs), schema.EntityJobs)
	assert.Equal(t, external, again)
}

func TestActivitiesJobIDAlias(t *testing.T) {
	m := sharePoint()

	t.Run("legacy alias is read", func(t *testing.T) {
		out := m.FromExternal(types.Record{"JobReference": 42}, schema.EntityActivities)
		assert.Equal(t, types.Record{"jobId": 42}, out)
	})

	t.Run("first registered alias is written", func(t *testing.T) {
		out := m.ToExternal(types.Record{"jobId": 42}, schema.EntityActivities)
		assert.Equal(t, types.Record{"JobID": 42}, out)
	})

	t.Run("round trip loses the alias", func(t *testing.T) {
		in := types.Record{"JobReference": 42, "When": "2024-01-15"}
		out := m.ToExternal(m.FromExternal(in, schema.EntityActivities), schema.EntityActivities)
		assert.Equal(t, types.Record{"JobID": 42, "When": "2024-01-15"}, out)
		assert.NotEqual(t, in, out)
	})

	t.Run("both aliases present, first registered wins", func(t *testing.T) {
		out := m.FromExternal(types.Record{"JobReference": 9, "JobID": 42}, schema.EntityActivities)
		assert.Equal(t, types.Record{"jobId": 42}, out)
	})

	t.Run("canonical round trip survives", func(t *testing.T) {
		in := types.Record{"jobId": 42, "type": "Call"}
		back := m.FromExternal(m.ToExternal(in, schema.EntityActivities), schema.EntityActivities)
		assert.Equal(t, in, back)
	})
}

func TestUnmappedEntityIsIdentity(t *testing.T) {
	m := sharePoint()
	in := types.Record{"callerName": "Aroha", "Title": "x"}

	for _, entity := range []string{schema.EntityTriage, "invoices"} {
		assert.Equal(t, in, m.FromExternal(in, entity), entity)
		assert.Equal(t, in, m.ToExternal(in, entity), entity)
	}

	unknownStore := NewMapper(schema.Default(), "dynamics")
	assert.Equal(t, in, unknownStore.FromExternal(in, schema.EntityJobs))

	nilRegistry := NewMapper(nil, types.StoreSharePoint)
	assert.Equal(t, in, nilRegistry.ToExternal(in, schema.EntityJobs))
}

func TestMappedValueWinsOverPassThroughKey(t *testing.T) {
	table := types.MappingTable{{External: "Title", Internal: "title"}}

	out := FromExternal(types.Record{"Title": "mapped", "title": "raw"}, table)
	assert.Equal(t, types.Record{"title": "mapped"}, out)

	out = ToExternal(types.Record{"title": "mapped", "Title": "raw"}, table)
	assert.Equal(t, types.Record{"Title": "mapped"}, out)
}

func TestMapperStore(t *testing.T) {
	assert.Equal(t, types.StoreSharePoint, sharePoint().Store())
}
