package types

// MappingPair links one external (backing store) field name to one
// internal (canonical) field name.
type MappingPair struct {
	External string `yaml:"external" json:"external"`
	Internal string `yaml:"internal" json:"internal"`
}

// MappingTable is the ordered list of name pairs for one entity type.
// Order is registration order and decides which external name is used
// when several map to the same internal name.
type MappingTable []MappingPair

// InternalFor returns the internal name registered for external.
func (t MappingTable) InternalFor(external string) (string, bool) {
	for _, p := range t {
		if p.External == external {
			return p.Internal, true
		}
	}
	return "", false
}

// ExternalFor returns the first registered external name for internal.
func (t MappingTable) ExternalFor(internal string) (string, bool) {
	for _, p := range t {
		if p.Internal == internal {
			return p.External, true
		}
	}
	return "", false
}

// IsInjective reports whether no two external names share an internal name.
// Only injective tables round-trip without losing aliases.
func (t MappingTable) IsInjective() bool {
	return len(t.Aliases()) == 0
}

// Aliases returns, for every internal name reached from more than one
// external name, the external names in registration order.
func (t MappingTable) Aliases() map[string][]string {
	byInternal := make(map[string][]string, len(t))
	for _, p := range t {
		byInternal[p.Internal] = append(byInternal[p.Internal], p.External)
	}
	out := make(map[string][]string)
	for internal, externals := range byInternal {
		if len(externals) > 1 {
			out[internal] = externals
		}
	}
	return out
}
