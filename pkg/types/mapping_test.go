package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMappingTableLookups(t *testing.T) {
	table := MappingTable{
		{External: "ID", Internal: "id"},
		{External: "JobID", Internal: "jobId"},
		{External: "JobReference", Internal: "jobId"},
	}

	internal, ok := table.InternalFor("JobReference")
	assert.True(t, ok)
	assert.Equal(t, "jobId", internal)

	external, ok := table.ExternalFor("jobId")
	assert.True(t, ok)
	assert.Equal(t, "JobID", external, "first registered external name wins")

	_, ok = table.ExternalFor("notes")
	assert.False(t, ok)
	_, ok = table.InternalFor("Notes")
	assert.False(t, ok)
}

func TestMappingTableInjectivity(t *testing.T) {
	injective := MappingTable{
		{External: "Author", Internal: "createdBy"},
		{External: "Editor", Internal: "modifiedBy"},
	}
	assert.True(t, injective.IsInjective())
	assert.Empty(t, injective.Aliases())

	aliased := MappingTable{
		{External: "JobID", Internal: "jobId"},
		{External: "Status", Internal: "status"},
		{External: "JobReference", Internal: "jobId"},
	}
	assert.False(t, aliased.IsInjective())
	assert.Equal(t, map[string][]string{"jobId": {"JobID", "JobReference"}}, aliased.Aliases())
}
