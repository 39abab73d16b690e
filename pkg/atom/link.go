package atom

import "atomfeed/pkg/iri"

// Relation is the role a link plays relative to its owning feed or entry.
// The set is open: any registered or extension relation is representable,
// and equality is by the underlying string, so Relation("self") and
// RelSelf compare equal. The zero value means "unspecified", which the
// format defines to mean alternate.
type Relation string

// Relations registered by RFC 4287 and RFC 4685.
const (
	RelAlternate Relation = "alternate"
	RelRelated   Relation = "related"
	RelSelf      Relation = "self"
	RelEnclosure Relation = "enclosure"
	RelVia       Relation = "via"
	RelReplies   Relation = "replies"
)

// Link is an Atom link construct: a reference from a feed or entry to a
// related resource.
type Link struct {
	Href     iri.IRI  `json:"href"`
	Rel      Relation `json:"rel,omitempty"`
	Type     string   `json:"type,omitempty"`
	HrefLang string   `json:"hreflang,omitempty"`
	Title    string   `json:"title,omitempty"`
	Length   int64    `json:"length,omitempty"`
	Base     iri.IRI  `json:"base,omitzero"`
	Lang     string   `json:"lang,omitempty"`
}

// NewLink returns a link targeting href with no explicit relation.
func NewLink(href iri.IRI) Link {
	return Link{Href: href}
}

// AlternateLink returns a link explicitly tagged as an alternate
// representation of its owner.
func AlternateLink(href iri.IRI) Link {
	return Link{Href: href, Rel: RelAlternate}
}

// IsAlternate reports whether the link's effective relation is alternate.
// An unspecified relation defaults to alternate, so this must never be
// tested by comparing Rel to RelAlternate directly.
func (l Link) IsAlternate() bool {
	return l.Rel == "" || l.Rel == RelAlternate
}

// WithRel returns a copy of the link with the given relation.
func (l Link) WithRel(rel Relation) Link {
	l.Rel = rel
	return l
}

// WithType returns a copy of the link with the given media type hint.
func (l Link) WithType(mediaType string) Link {
	l.Type = mediaType
	return l
}

// WithHrefLang returns a copy of the link with the given target language.
func (l Link) WithHrefLang(lang string) Link {
	l.HrefLang = lang
	return l
}

// WithTitle returns a copy of the link with the given title.
func (l Link) WithTitle(title string) Link {
	l.Title = title
	return l
}

// WithLength returns a copy of the link with the given advisory length
// in bytes.
func (l Link) WithLength(length int64) Link {
	l.Length = length
	return l
}

// WithBase returns a copy of the link with the given base IRI.
func (l Link) WithBase(base iri.IRI) Link {
	l.Base = base
	return l
}

// WithLang returns a copy of the link with the given language tag.
func (l Link) WithLang(lang string) Link {
	l.Lang = lang
	return l
}
