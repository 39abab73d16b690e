package atom

import "atomfeed/pkg/iri"

// TextKind identifies the markup kind of a text construct, matching the
// values of the Atom "type" attribute.
type TextKind string

// Recognized text kinds.
const (
	TextPlain TextKind = "text"
	TextHTML  TextKind = "html"
	TextXHTML TextKind = "xhtml"
)

// Text is an Atom text construct: human-readable content tagged with its
// markup kind. The model does not verify that Value is well-formed for the
// kind; that is a render-time concern. The zero value means "absent".
type Text struct {
	Kind  TextKind `json:"kind"`
	Value string   `json:"value"`
	Base  iri.IRI  `json:"base,omitzero"`
	Lang  string   `json:"lang,omitempty"`
}

// PlainText returns a plain-text construct.
func PlainText(value string) Text {
	return Text{Kind: TextPlain, Value: value}
}

// HTMLText returns a text construct carrying escaped HTML markup.
func HTMLText(value string) Text {
	return Text{Kind: TextHTML, Value: value}
}

// XHTMLText returns a text construct carrying XHTML markup.
func XHTMLText(value string) Text {
	return Text{Kind: TextXHTML, Value: value}
}

// WithBase returns a copy of the construct with the given base IRI.
func (t Text) WithBase(base iri.IRI) Text {
	t.Base = base
	return t
}

// WithLang returns a copy of the construct with the given language tag.
func (t Text) WithLang(lang string) Text {
	t.Lang = lang
	return t
}

// IsZero reports whether the text construct is absent.
func (t Text) IsZero() bool {
	return t == Text{}
}
