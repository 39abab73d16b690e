package atom

import (
	"encoding/base64"
	"strings"

	"atomfeed/pkg/iri"
)

// ContentKind identifies the kind of an entry's content. The set is open:
// the named kinds text, html and xhtml match the text-construct kinds, and
// any other value is a media type. Equality is by the underlying string.
type ContentKind string

// Named content kinds.
const (
	ContentText  ContentKind = "text"
	ContentHTML  ContentKind = "html"
	ContentXHTML ContentKind = "xhtml"
)

// MediaKind returns the content kind for the given media type.
func MediaKind(mediaType string) ContentKind {
	return ContentKind(mediaType)
}

// IsMedia reports whether the kind is a media type rather than one of the
// named text kinds. An unspecified kind defaults to text.
func (k ContentKind) IsMedia() bool {
	switch k {
	case "", ContentText, ContentHTML, ContentXHTML:
		return false
	}
	return true
}

// IsComposite reports whether the kind is an XML media type, which the
// format treats as markup rather than opaque data.
func (k ContentKind) IsComposite() bool {
	return k.IsMedia() &&
		(strings.HasSuffix(string(k), "/xml") || strings.HasSuffix(string(k), "+xml"))
}

// IsBinary reports whether content of this kind must be carried as opaque
// base64-encoded bytes: a media type that is neither XML nor text.
func (k ContentKind) IsBinary() bool {
	return k.IsMedia() && !k.IsComposite() && !strings.HasPrefix(string(k), "text/")
}

// Content is the body of an entry, either inline (Value set) or out of line
// (Src set); the constructors keep the two mutually exclusive. The zero
// value means "absent".
type Content struct {
	Kind  ContentKind `json:"kind,omitempty"`
	Value string      `json:"value,omitempty"`
	Src   iri.IRI     `json:"src,omitzero"`
	Base  iri.IRI     `json:"base,omitzero"`
	Lang  string      `json:"lang,omitempty"`
}

// InlineContent returns content carried directly in the entry.
func InlineContent(kind ContentKind, value string) Content {
	return Content{Kind: kind, Value: value}
}

// OutOfLineContent returns content referenced by IRI rather than carried in
// the entry. Entries holding such content must also carry a summary.
func OutOfLineContent(kind ContentKind, src iri.IRI) Content {
	return Content{Kind: kind, Src: src}
}

// BinaryContent returns inline content holding the given bytes
// base64-encoded, tagged with their media type.
func BinaryContent(data []byte, mediaType string) Content {
	return Content{
		Kind:  MediaKind(mediaType),
		Value: base64.StdEncoding.EncodeToString(data),
	}
}

// IsZero reports whether the content is absent.
func (c Content) IsZero() bool {
	return c == Content{}
}

// IsInline reports whether the content is carried in the entry itself.
func (c Content) IsInline() bool {
	return !c.IsZero() && c.Src.IsZero()
}

// IsOutOfLine reports whether the content is referenced by IRI.
func (c Content) IsOutOfLine() bool {
	return !c.Src.IsZero()
}

// WithBase returns a copy of the content with the given base IRI.
func (c Content) WithBase(base iri.IRI) Content {
	c.Base = base
	return c
}

// WithLang returns a copy of the content with the given language tag.
func (c Content) WithLang(lang string) Content {
	c.Lang = lang
	return c
}
