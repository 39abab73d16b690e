package atom

import "atomfeed/pkg/iri"

// Person is an Atom person construct: a name with optional IRI and email.
// Name is non-empty by convention but not enforced here.
type Person struct {
	Name  string  `json:"name"`
	URI   iri.IRI `json:"uri,omitzero"`
	Email Email   `json:"email,omitzero"`
	Base  iri.IRI `json:"base,omitzero"`
	Lang  string  `json:"lang,omitempty"`
}

// NewPerson returns a person construct with the given name.
func NewPerson(name string) Person {
	return Person{Name: name}
}

// WithURI returns a copy of the person with the given IRI.
func (p Person) WithURI(u iri.IRI) Person {
	p.URI = u
	return p
}

// WithEmail returns a copy of the person with the given email address.
func (p Person) WithEmail(e Email) Person {
	p.Email = e
	return p
}

// WithBase returns a copy of the person with the given base IRI.
func (p Person) WithBase(base iri.IRI) Person {
	p.Base = base
	return p
}

// WithLang returns a copy of the person with the given language tag.
func (p Person) WithLang(lang string) Person {
	p.Lang = lang
	return p
}

// Author is the authorship role of a person construct. It is a distinct
// type from Contributor so the two cannot be swapped accidentally.
type Author struct {
	Person
}

// NewAuthor returns an author with the given name.
func NewAuthor(name string) Author {
	return Author{Person: NewPerson(name)}
}

// AsAuthor wraps a person construct in the author role.
func AsAuthor(p Person) Author {
	return Author{Person: p}
}

// Contributor is the contribution role of a person construct.
type Contributor struct {
	Person
}

// NewContributor returns a contributor with the given name.
func NewContributor(name string) Contributor {
	return Contributor{Person: NewPerson(name)}
}

// AsContributor wraps a person construct in the contributor role.
func AsContributor(p Person) Contributor {
	return Contributor{Person: p}
}
