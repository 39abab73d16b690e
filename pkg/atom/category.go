package atom

import "atomfeed/pkg/iri"

// Category is an Atom category construct: a term, optionally scoped by a
// scheme IRI and carrying a human-readable label.
type Category struct {
	Term   string  `json:"term"`
	Scheme iri.IRI `json:"scheme,omitzero"`
	Label  string  `json:"label,omitempty"`
	Base   iri.IRI `json:"base,omitzero"`
	Lang   string  `json:"lang,omitempty"`
}

// NewCategory returns a category with the given term.
func NewCategory(term string) Category {
	return Category{Term: term}
}

// WithScheme returns a copy of the category with the given scheme IRI.
func (c Category) WithScheme(scheme iri.IRI) Category {
	c.Scheme = scheme
	return c
}

// WithLabel returns a copy of the category with the given label.
func (c Category) WithLabel(label string) Category {
	c.Label = label
	return c
}

// WithBase returns a copy of the category with the given base IRI.
func (c Category) WithBase(base iri.IRI) Category {
	c.Base = base
	return c
}

// WithLang returns a copy of the category with the given language tag.
func (c Category) WithLang(lang string) Category {
	c.Lang = lang
	return c
}
