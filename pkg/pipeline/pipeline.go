// Package pipeline runs records through the fieldkit engines in order:
// external names are mapped to canonical names, defaults are applied, the
// result is validated and every field is rendered for display. The reverse
// path maps canonical records back to external names before writing.
package pipeline

import (
	"errors"
	"log/slog"
	"sort"

	"github.com/mesh-intelligence/fieldkit/pkg/format"
	"github.com/mesh-intelligence/fieldkit/pkg/schema"
	"github.com/mesh-intelligence/fieldkit/pkg/transform"
	"github.com/mesh-intelligence/fieldkit/pkg/types"
	"github.com/mesh-intelligence/fieldkit/pkg/validate"
)

// Config wires the engines used by a Pipeline. Zero fields take defaults:
// the built-in registry, the SharePoint store, lenient validation, New
// Zealand date display and slog.Default().
type Config struct {
	Registry   *schema.Registry
	Store      string
	Validation validate.Options
	Formatter  *format.Formatter
	Logger     *slog.Logger
}

// Pipeline is safe for concurrent use; it holds only immutable state.
type Pipeline struct {
	registry  *schema.Registry
	mapper    *transform.Mapper
	validator *validate.Validator
	formatter *format.Formatter
	logger    *slog.Logger
}

// Result is the outcome of running one record through the pipeline.
type Result struct {
	Entity     string             `json:"entity"`
	Record     types.Record       `json:"record"`
	Validation types.ObjectResult `json:"validation"`
	Display    map[string]string  `json:"display"`
	// Order lists the record's fields: declared fields in schema order,
	// then any others sorted by name.
	Order []string `json:"order"`
}

// New builds a Pipeline from cfg.
func New(cfg Config) *Pipeline {
	if cfg.Registry == nil {
		cfg.Registry = schema.Default()
	}
	if cfg.Store == "" {
		cfg.Store = types.StoreSharePoint
	}
	if cfg.Formatter == nil {
		cfg.Formatter = format.Default()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Pipeline{
		registry:  cfg.Registry,
		mapper:    transform.NewMapper(cfg.Registry, cfg.Store),
		validator: validate.New(cfg.Validation),
		formatter: cfg.Formatter,
		logger:    cfg.Logger,
	}
}

// Registry returns the schema registry the pipeline reads.
func (p *Pipeline) Registry() *schema.Registry {
	return p.registry
}

// Ingest takes a record named in the external store's convention and
// returns it in canonical form with defaults, validation and display
// strings. Unknown entity types pass through unchanged and validate.
func (p *Pipeline) Ingest(entity string, external types.Record) Result {
	if _, ok := p.mapper.Table(entity); !ok {
		p.logger.Debug("No mapping table, keeping external names",
			slog.String("entity", entity), slog.String("store", p.mapper.Store()))
	}
	return p.Prepare(entity, p.mapper.FromExternal(external, entity))
}

// Prepare runs a canonical record, such as a form submission, through
// defaults, validation and display rendering.
func (p *Pipeline) Prepare(entity string, canonical types.Record) Result {
	s, err := p.registry.SchemaFor(entity)
	if err != nil {
		if errors.Is(err, types.ErrUnknownEntityType) {
			p.logger.Debug("Unknown entity type, skipping defaults and validation", slog.String("entity", entity))
		}
		rec := canonical.Clone()
		return Result{
			Entity:     entity,
			Record:     rec,
			Validation: types.ObjectResult{Valid: true, Errors: map[string]string{}},
			Display:    p.display(rec, nil),
			Order:      fieldOrder(rec, nil),
		}
	}

	rec := transform.ApplyDefaults(canonical, s)
	res := p.validator.Object(rec, s)
	if !res.Valid {
		p.logger.Info("Record failed validation",
			slog.String("entity", entity), slog.Int("errors", len(res.Errors)))
		for field, msg := range res.Errors {
			p.logger.Debug("Field failed validation",
				slog.String("entity", entity), slog.String("field", field), slog.String("message", msg))
		}
	}
	for field := range rec {
		if !s.Has(field) {
			p.logger.Debug("Field not in schema", slog.String("entity", entity), slog.String("field", field))
		}
	}

	return Result{
		Entity:     entity,
		Record:     rec,
		Validation: res,
		Display:    p.display(rec, s),
		Order:      fieldOrder(rec, s),
	}
}

// Egress maps a canonical record back to the external store's names.
func (p *Pipeline) Egress(entity string, canonical types.Record) types.Record {
	return p.mapper.ToExternal(canonical, entity)
}

func (p *Pipeline) display(rec types.Record, s *types.EntitySchema) map[string]string {
	out := make(map[string]string, len(rec))
	for field, v := range rec {
		out[field] = p.formatter.Field(field, v, s)
	}
	return out
}

func fieldOrder(rec types.Record, s *types.EntitySchema) []string {
	order := make([]string, 0, len(rec))
	if s != nil {
		for _, name := range s.Fields() {
			if rec.Has(name) {
				order = append(order, name)
			}
		}
	}
	var rest []string
	for field := range rec {
		if !s.Has(field) {
			rest = append(rest, field)
		}
	}
	sort.Strings(rest)
	return append(order, rest...)
}
