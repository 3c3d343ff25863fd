package schema

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/fieldkit/pkg/types"
)

// fileYAML is the YAML form of a registry:
//
//	entities:
//	  jobs:
//	    title:
//	      type: string
//	      required: true
//	      display_name: Job Title
//	      validation: {min_length: 1, max_length: 255}
//	    status:
//	      type: choice
//	      values: [Open, Closed]
//	      default: Open
//	    createdDate:
//	      type: datetime
//	      default: {generator: now}
//	mappings:
//	  sharepoint:
//	    jobs:
//	      - {external: Title, internal: title}
//
// Entities and fields keep the order in which they appear in the document.
type fileYAML struct {
	Entities yaml.Node                        `yaml:"entities"`
	Mappings map[string]map[string][]pairYAML `yaml:"mappings,omitempty"`
}

type pairYAML struct {
	External string `yaml:"external"`
	Internal string `yaml:"internal"`
}

type fieldYAML struct {
	Type        string           `yaml:"type"`
	Required    bool             `yaml:"required"`
	DisplayName string           `yaml:"display_name"`
	Validation  *constraintsYAML `yaml:"validation,omitempty"`
	Values      []string         `yaml:"values,omitempty"`
	Default     yaml.Node        `yaml:"default,omitempty"`
}

type constraintsYAML struct {
	MinLength *int     `yaml:"min_length,omitempty"`
	MaxLength *int     `yaml:"max_length,omitempty"`
	Pattern   string   `yaml:"pattern,omitempty"`
	Min       *float64 `yaml:"min,omitempty"`
	Max       *float64 `yaml:"max,omitempty"`
}

// LoadFile reads and parses a YAML schema file into a Registry.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema file: %w", err)
	}
	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("schema file %s: %w", path, err)
	}
	return r, nil
}

// Parse builds a Registry from YAML data. Errors wrap ErrInvalidSchema,
// ErrUnknownFieldType, ErrDuplicateField or ErrUnknownGenerator.
func Parse(data []byte) (*Registry, error) {
	var f fileYAML
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidSchema, err)
	}

	var schemas []*types.EntitySchema
	if f.Entities.Kind != 0 {
		if f.Entities.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%w: entities must be a mapping", types.ErrInvalidSchema)
		}
		for i := 0; i+1 < len(f.Entities.Content); i += 2 {
			name := f.Entities.Content[i].Value
			s, err := parseEntity(name, f.Entities.Content[i+1])
			if err != nil {
				return nil, err
			}
			schemas = append(schemas, s)
		}
	}

	stores := make(map[string]Mappings, len(f.Mappings))
	for store, entities := range f.Mappings {
		m := make(Mappings, len(entities))
		for entity, pairs := range entities {
			table := make(types.MappingTable, 0, len(pairs))
			for _, p := range pairs {
				if p.External == "" || p.Internal == "" {
					return nil, fmt.Errorf("%w: %s.%s: mapping pair needs external and internal names", types.ErrInvalidSchema, store, entity)
				}
				table = append(table, types.MappingPair{External: p.External, Internal: p.Internal})
			}
			m[entity] = table
		}
		stores[store] = m
	}

	return NewRegistry(schemas, stores)
}

func parseEntity(name string, node *yaml.Node) (*types.EntitySchema, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: entity %q must be a mapping of fields", types.ErrInvalidSchema, name)
	}
	fields := make([]types.NamedField, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		fieldName := node.Content[i].Value
		var fy fieldYAML
		if err := node.Content[i+1].Decode(&fy); err != nil {
			return nil, fmt.Errorf("%w: %s.%s: %v", types.ErrInvalidSchema, name, fieldName, err)
		}
		def, err := fy.toFieldDef()
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", name, fieldName, err)
		}
		fields = append(fields, types.NamedField{Name: fieldName, Def: def})
	}
	return types.NewEntitySchema(name, fields...)
}

func (fy fieldYAML) toFieldDef() (types.FieldDef, error) {
	def := types.FieldDef{
		Type:        types.FieldType(fy.Type),
		Required:    fy.Required,
		DisplayName: fy.DisplayName,
		Values:      fy.Values,
	}
	if fy.Validation != nil {
		c := &types.Constraints{
			MinLength: fy.Validation.MinLength,
			MaxLength: fy.Validation.MaxLength,
			Min:       fy.Validation.Min,
			Max:       fy.Validation.Max,
		}
		if fy.Validation.Pattern != "" {
			re, err := regexp.Compile(fy.Validation.Pattern)
			if err != nil {
				return types.FieldDef{}, fmt.Errorf("%w: pattern: %v", types.ErrInvalidSchema, err)
			}
			c.Pattern = re
		}
		def.Validation = c
	}
	d, err := parseDefault(&fy.Default)
	if err != nil {
		return types.FieldDef{}, err
	}
	def.Default = d
	return def, nil
}

// parseDefault reads a default node. A mapping with a single "generator"
// key names a generator; anything else is a literal.
func parseDefault(node *yaml.Node) (types.Default, error) {
	if node.Kind == 0 {
		return nil, nil
	}
	if node.Kind == yaml.MappingNode && len(node.Content) == 2 && node.Content[0].Value == "generator" {
		g, err := LookupGenerator(node.Content[1].Value)
		if err != nil {
			return nil, err
		}
		return g, nil
	}
	var v any
	if err := node.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: default: %v", types.ErrInvalidSchema, err)
	}
	return types.Literal{Value: v}, nil
}
