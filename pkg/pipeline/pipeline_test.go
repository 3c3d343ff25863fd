package pipeline

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/fieldkit/pkg/format"
	"github.com/mesh-intelligence/fieldkit/pkg/schema"
	"github.com/mesh-intelligence/fieldkit/pkg/types"
	"github.com/mesh-intelligence/fieldkit/pkg/validate"
)

func newTestPipeline(t *testing.T, opts validate.Options) (*Pipeline, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return New(Config{
		Validation: opts,
		Formatter:  format.New(time.UTC),
		Logger:     logger,
	}), &buf
}

func TestIngestJob(t *testing.T) {
	p, logs := newTestPipeline(t, validate.Options{})

	res := p.Ingest(schema.EntityJobs, types.Record{
		"ID":       17,
		"Title":    "Flat battery, Ponsonby",
		"Customer": "Acme Co",
		"Author":   "dispatcher-3",
		"Created":  "2024-01-15T09:30:00Z",
		"Cost":     0,
		"Odata":    "etag-1",
	})

	assert.True(t, res.Validation.Valid, "errors: %v", res.Validation.Errors)
	assert.Equal(t, "Open", res.Record["status"], "default applied after mapping")
	assert.Equal(t, "Medium", res.Record["priority"])
	assert.Equal(t, 0, res.Record["cost"], "present zero is not replaced")
	assert.Equal(t, "$0.00", res.Display["cost"])
	assert.Equal(t, "15/01/2024, 9:30:00 am", res.Display["createdDate"])
	assert.Equal(t, "etag-1", res.Record["Odata"])

	assert.Equal(t, []string{"id", "title", "status", "priority", "customer", "createdDate", "createdBy", "cost", "Odata"}, res.Order)
	assert.Contains(t, logs.String(), "Field not in schema")
}

func TestIngestInvalidRecordLogs(t *testing.T) {
	p, logs := newTestPipeline(t, validate.Options{})

	res := p.Ingest(schema.EntityJobs, types.Record{"Status": "Open", "Customer": "Acme Co", "Title": ""})

	assert.False(t, res.Validation.Valid)
	assert.Equal(t, "Job Title is required", res.Validation.Errors["title"])
	assert.NotContains(t, res.Validation.Errors, "status")
	assert.NotContains(t, res.Validation.Errors, "customer")
	assert.Contains(t, logs.String(), "Record failed validation")
	assert.Contains(t, logs.String(), "field=title")
}

func TestIngestUnknownEntityIsPassThrough(t *testing.T) {
	p, logs := newTestPipeline(t, validate.Options{Strict: true})

	in := types.Record{"InvoiceNo": "INV-1", "Amount": 10}
	res := p.Ingest("invoices", in)

	assert.True(t, res.Validation.Valid)
	assert.Equal(t, in, res.Record)
	assert.Equal(t, "10", res.Display["Amount"])
	assert.Equal(t, []string{"Amount", "InvoiceNo"}, res.Order)
	assert.Contains(t, logs.String(), "Unknown entity type")
	assert.Contains(t, logs.String(), "No mapping table")
}

func TestPrepareTriageSubmission(t *testing.T) {
	p, _ := newTestPipeline(t, validate.Options{})

	res := p.Prepare(schema.EntityTriage, types.Record{
		"emergencyType": "Fuel Delivery",
		"callerName":    "Aroha",
		"mobileNumber":  "021 555 0199",
		"submittedBy":   "dispatcher-3",
	})

	require.True(t, res.Validation.Valid, "errors: %v", res.Validation.Errors)
	assert.NotEmpty(t, res.Record["submittedAt"], "generator default applied")
}

func TestEgressActivity(t *testing.T) {
	p, _ := newTestPipeline(t, validate.Options{})

	out := p.Egress(schema.EntityActivities, types.Record{"jobId": 42, "type": "Call", "performedDate": "2024-01-15"})
	assert.Equal(t, types.Record{"JobID": 42, "ActivityType": "Call", "When": "2024-01-15"}, out)
}

func TestPipelineDefaults(t *testing.T) {
	p := New(Config{})
	assert.Same(t, schema.Default(), p.Registry())
	assert.Equal(t, types.StoreSharePoint, p.mapper.Store())
}

func TestPipelineConcurrentUse(t *testing.T) {
	p := New(Config{Formatter: format.New(time.UTC), Logger: slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res := p.Ingest(schema.EntityActivities, types.Record{
				"ID":           i + 1,
				"JobReference": 7,
				"PerformedBy":  "tech",
			})
			assert.Equal(t, 7, res.Record["jobId"])
			assert.True(t, res.Validation.Valid, "errors: %v", res.Validation.Errors)
		}(i)
	}
	wg.Wait()
}
