package transform

import "github.com/mesh-intelligence/fieldkit/pkg/types"

// ApplyDefaults returns a copy of r in which every field declared by s
// that is absent from r and has a default is set to that default.
// Present fields are never replaced, even when nil, "" or 0. Generators
// run once per filled field, at the time of the call.
func ApplyDefaults(r types.Record, s *types.EntitySchema) types.Record {
	out := r.Clone()
	if s == nil {
		return out
	}
	for _, name := range s.Fields() {
		if out.Has(name) {
			continue
		}
		def, _ := s.Field(name)
		if def.Default == nil {
			continue
		}
		out[name] = types.ResolveDefault(def.Default)
	}
	return out
}
