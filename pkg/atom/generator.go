package atom

import "atomfeed/pkg/iri"

// Generator identifies the agent that produced a feed.
// The zero value means "absent".
type Generator struct {
	Name    string  `json:"name"`
	URI     iri.IRI `json:"uri,omitzero"`
	Version string  `json:"version,omitempty"`
	Base    iri.IRI `json:"base,omitzero"`
	Lang    string  `json:"lang,omitempty"`
}

// NewGenerator returns a generator with the given human-readable name.
func NewGenerator(name string) Generator {
	return Generator{Name: name}
}

// WithURI returns a copy of the generator with the given IRI.
func (g Generator) WithURI(u iri.IRI) Generator {
	g.URI = u
	return g
}

// WithVersion returns a copy of the generator with the given version.
func (g Generator) WithVersion(version string) Generator {
	g.Version = version
	return g
}

// IsZero reports whether the generator is absent.
func (g Generator) IsZero() bool {
	return g == Generator{}
}
